package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/userhub/pkg/validator"
)

// UserResponse is the public representation of a stored user. Password
// material never appears here.
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Nickname    string     `json:"nickname"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	Role        Role       `json:"role"`
	Bio         string     `json:"bio,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	UpdatedAt   time.Time  `json:"updated_at,omitzero"`
	Links       []Link     `json:"links"`
}

// Validate checks the response shape, including every attached link.
func (u UserResponse) Validate() error {
	verrs := validator.ExtractValidationErrors(validator.Apply(
		validator.ValidNickname("nickname", u.Nickname, NicknameMinLen, NicknameMaxLen),
		validator.ValidEmail("email", u.Email),
		validator.InListString("role", string(u.Role), roleNames()),
	))

	for _, link := range u.Links {
		for _, lerr := range validator.ExtractValidationErrors(link.Validate()) {
			lerr.Field = "links." + lerr.Field
			verrs.Add(lerr)
		}
	}

	if verrs.IsEmpty() {
		return nil
	}
	return verrs
}

// UserListResponse is the paginated wrapper for user collections. Item order
// is preserved exactly as produced by the service.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

func (l UserListResponse) Validate() error {
	return validator.Apply(
		validator.NonNegative("total", l.Total),
		validator.NonNegative("page", l.Page),
		validator.NonNegative("size", l.Size),
	)
}

// ErrorResponse is the body returned for failed requests. Fields holds the
// per-field breakdown for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details string       `json:"details"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e ErrorResponse) Validate() error {
	return validator.Apply(
		validator.RequiredString("error", e.Error),
		validator.RequiredString("details", e.Details),
	)
}

// FieldError is the wire form of a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// NewValidationErrorResponse flattens aggregated validation errors into an
// ErrorResponse suitable for a 422 body.
func NewValidationErrorResponse(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))
	for _, err := range verrs {
		fields = append(fields, FieldError{
			Field:   err.Field,
			Message: err.Message,
			Value:   err.Value,
		})
	}
	return ErrorResponse{
		Error:   "Validation Failed",
		Details: verrs.Error(),
		Fields:  fields,
	}
}
