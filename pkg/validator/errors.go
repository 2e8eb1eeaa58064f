package validator

import "errors"

// Sentinel errors shared across the application for coarse classification of
// validation failures.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty or absent.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidFormat is returned when a field fails a charset or pattern rule.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidChoice is returned when a value is not in the allowed set.
	ErrInvalidChoice = errors.New("value not allowed")

	// ErrInvalidScheme is returned when a URL uses a disallowed or malformed scheme.
	ErrInvalidScheme = errors.New("invalid url scheme")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")
)
