package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userhub/pkg/binder"
)

type payload struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func jsonRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestJSON(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		var v payload
		require.NoError(t, binder.JSON(jsonRequest(t, `{"name":"John","age":30}`), &v))
		assert.Equal(t, payload{Name: "John", Age: 30}, v)
	})

	t.Run("accepts charset parameter", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var v payload
		assert.NoError(t, binder.JSON(r, &v))
	})

	t.Run("rejects missing content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

		var v payload
		assert.ErrorIs(t, binder.JSON(r, &v), binder.ErrMissingContentType)
	})

	t.Run("rejects non-json content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")

		var v payload
		assert.ErrorIs(t, binder.JSON(r, &v), binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var v payload
		assert.ErrorIs(t, binder.JSON(jsonRequest(t, `{"name":"x","extra":true}`), &v), binder.ErrInvalidJSON)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		var v payload
		assert.ErrorIs(t, binder.JSON(jsonRequest(t, ``), &v), binder.ErrInvalidJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		var v payload
		assert.ErrorIs(t, binder.JSON(jsonRequest(t, `{"name":"x"}{"name":"y"}`), &v), binder.ErrInvalidJSON)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var v payload
		assert.ErrorIs(t, binder.JSON(jsonRequest(t, `{"name":`), &v), binder.ErrInvalidJSON)
	})
}

func TestQuery(t *testing.T) {
	t.Run("defaults when absent", func(t *testing.T) {
		p, err := binder.Query(httptest.NewRequest(http.MethodGet, "/users", nil))
		require.NoError(t, err)
		assert.Equal(t, binder.Pagination{Page: 1, Size: 10}, p)
	})

	t.Run("parses explicit values", func(t *testing.T) {
		p, err := binder.Query(httptest.NewRequest(http.MethodGet, "/users?page=3&size=25", nil))
		require.NoError(t, err)
		assert.Equal(t, binder.Pagination{Page: 3, Size: 25}, p)
		assert.Equal(t, 50, p.Offset())
	})

	t.Run("rejects non-integer page", func(t *testing.T) {
		_, err := binder.Query(httptest.NewRequest(http.MethodGet, "/users?page=abc", nil))
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})

	t.Run("rejects zero and negative page", func(t *testing.T) {
		for _, q := range []string{"page=0", "page=-1"} {
			_, err := binder.Query(httptest.NewRequest(http.MethodGet, "/users?"+q, nil))
			assert.ErrorIs(t, err, binder.ErrInvalidQuery, q)
		}
	})

	t.Run("rejects oversized size", func(t *testing.T) {
		_, err := binder.Query(httptest.NewRequest(http.MethodGet, "/users?size=101", nil))
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})
}
