package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userhub/modules/users"
	"github.com/dmitrymomot/userhub/schemas"
)

func newTestRouter(t *testing.T) (http.Handler, *users.Service) {
	t.Helper()
	svc := newTestService(newFakeStorage())
	return users.Router(svc, nil), svc
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const createBody = `{
	"nickname": "john_doe_123",
	"email": "john.doe@example.com",
	"first_name": "John",
	"last_name": "Doe",
	"role": "AUTHENTICATED",
	"bio": "I am a software engineer.",
	"profile_picture_url": "https://example.com/profile_pictures/john_doe.jpg",
	"password": "SecurePassword123!"
}`

func TestCreateEndpoint(t *testing.T) {
	t.Run("valid payload answers 201 with links", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/", createBody)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp schemas.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "john_doe_123", resp.Nickname)
		assert.Len(t, resp.Links, 3)
	})

	t.Run("validation failure answers 422 listing every field", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body := strings.Replace(createBody, "john_doe_123", "us", 1)
		body = strings.Replace(body, "AUTHENTICATED", "invalid_role", 1)

		rec := doJSON(t, router, http.MethodPost, "/", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var errResp schemas.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "Validation Failed", errResp.Error)

		fields := make([]string, 0, len(errResp.Fields))
		for _, f := range errResp.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"nickname", "role"}, fields)
	})

	t.Run("duplicate email answers 409", func(t *testing.T) {
		router, _ := newTestRouter(t)

		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/", createBody).Code)

		dup := strings.Replace(createBody, "john_doe_123", "other_nick", 1)
		rec := doJSON(t, router, http.MethodPost, "/", dup)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed json answers 400", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/", `{"nickname":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong content type answers 415", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestGetUpdateDeleteEndpoints(t *testing.T) {
	seed := func(t *testing.T) (http.Handler, schemas.UserResponse) {
		t.Helper()
		router, svc := newTestRouter(t)
		resp, err := svc.Create(context.Background(), validCreate())
		require.NoError(t, err)
		return router, resp
	}

	t.Run("get answers the stored profile", func(t *testing.T) {
		router, created := seed(t)

		rec := doJSON(t, router, http.MethodGet, "/"+created.ID.String(), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp schemas.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("malformed id answers 404", func(t *testing.T) {
		router, _ := seed(t)
		rec := doJSON(t, router, http.MethodGet, "/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("patch merges fields", func(t *testing.T) {
		router, created := seed(t)

		rec := doJSON(t, router, http.MethodPatch, "/"+created.ID.String(), `{"nickname":"j_doe"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp schemas.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "j_doe", resp.Nickname)
		assert.Equal(t, created.Email, resp.Email)
	})

	t.Run("patch with invalid nickname answers 422", func(t *testing.T) {
		router, created := seed(t)
		rec := doJSON(t, router, http.MethodPatch, "/"+created.ID.String(), `{"nickname":"test user"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("delete answers 204 then 404", func(t *testing.T) {
		router, created := seed(t)

		assert.Equal(t, http.StatusNoContent, doJSON(t, router, http.MethodDelete, "/"+created.ID.String(), "").Code)
		assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/"+created.ID.String(), "").Code)
	})

	t.Run("professional status toggles", func(t *testing.T) {
		router, created := seed(t)

		rec := doJSON(t, router, http.MethodPut, "/"+created.ID.String()+"/professional-status", `{"is_professional":true}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var status schemas.ProfessionalStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.True(t, status.IsProfessional)
	})
}

func TestListEndpoint(t *testing.T) {
	t.Run("lists with pagination defaults", func(t *testing.T) {
		router, svc := newTestRouter(t)
		for i := range 3 {
			req := validCreate()
			req.Nickname = "user_" + string(rune('a'+i))
			req.Email = req.Nickname + "@example.com"
			_, err := svc.Create(context.Background(), req)
			require.NoError(t, err)
		}

		rec := doJSON(t, router, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var list schemas.UserListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 10, list.Size)
		assert.Len(t, list.Items, 3)
	})

	t.Run("invalid pagination answers 400", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rec := doJSON(t, router, http.MethodGet, "/?page=zero", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
