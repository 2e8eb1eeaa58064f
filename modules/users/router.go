package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/userhub/pkg/binder"
	"github.com/dmitrymomot/userhub/pkg/httpx"
	"github.com/dmitrymomot/userhub/pkg/validator"
	"github.com/dmitrymomot/userhub/schemas"
)

// Router mounts the user CRUD endpoints. The authenticate middleware guards
// everything except registration; pass chi middlewares as needed.
func Router(svc *Service, authenticate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", createHandler(svc))

	r.Group(func(r chi.Router) {
		if authenticate != nil {
			r.Use(authenticate)
		}
		r.Get("/", listHandler(svc))
		r.Get("/{userID}", getHandler(svc))
		r.Patch("/{userID}", updateHandler(svc))
		r.Delete("/{userID}", deleteHandler(svc))
		r.Put("/{userID}/professional-status", professionalStatusHandler(svc))
	})

	return r
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req schemas.UserCreate
		if err := binder.JSON(r, &req); err != nil {
			httpx.WriteBindError(w, err)
			return
		}

		resp, err := svc.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, resp)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		resp, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req schemas.UserUpdate
		if err := binder.JSON(r, &req); err != nil {
			httpx.WriteBindError(w, err)
			return
		}

		resp, err := svc.Update(r.Context(), id, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := binder.Query(r)
		if err != nil {
			httpx.WriteBindError(w, err)
			return
		}

		resp, err := svc.List(r.Context(), page.Page, page.Size)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

func professionalStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req schemas.ProfessionalStatus
		if err := binder.JSON(r, &req); err != nil {
			httpx.WriteBindError(w, err)
			return
		}

		if err := svc.SetProfessionalStatus(r.Context(), id, req); err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, req)
	}
}

// userID parses the path parameter, answering 404 for malformed ids since
// they cannot name any resource.
func userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "Not Found", "The requested resource was not found.")
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Not Found", "The requested resource was not found.")
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrNicknameTaken):
		httpx.WriteError(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrEmptyUpdate):
		httpx.WriteError(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.")
	}
}
