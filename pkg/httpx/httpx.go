// Package httpx writes API responses in the shapes defined by the schemas
// package: plain JSON payloads for success, ErrorResponse bodies for
// failures, and a 422 with the per-field breakdown for validation errors.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/userhub/pkg/binder"
	"github.com/dmitrymomot/userhub/pkg/validator"
	"github.com/dmitrymomot/userhub/schemas"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse body.
func WriteError(w http.ResponseWriter, status int, errText, details string) {
	WriteJSON(w, status, schemas.ErrorResponse{Error: errText, Details: details})
}

// WriteValidationError writes the aggregated field failures as a 422 body,
// so the client sees every offending field in one response.
func WriteValidationError(w http.ResponseWriter, verrs validator.ValidationErrors) {
	WriteJSON(w, http.StatusUnprocessableEntity, schemas.NewValidationErrorResponse(verrs))
}

// WriteBindError classifies a request binding or validation failure:
// validation errors become a 422 with the field list, unsupported media
// types a 415, and everything else a 400.
func WriteBindError(w http.ResponseWriter, err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		WriteValidationError(w, verrs)
		return
	}

	status := http.StatusBadRequest
	if errors.Is(err, binder.ErrUnsupportedMediaType) || errors.Is(err, binder.ErrMissingContentType) {
		status = http.StatusUnsupportedMediaType
	}
	WriteError(w, status, http.StatusText(status), err.Error())
}
