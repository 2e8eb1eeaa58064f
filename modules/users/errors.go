package users

import "errors"

var (
	// ErrNotFound is returned when no user matches the given identifier.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email is already taken")

	// ErrNicknameTaken is returned when the nickname is already in use.
	ErrNicknameTaken = errors.New("nickname is already taken")

	// ErrEmptyUpdate is returned when an update request carries no fields.
	ErrEmptyUpdate = errors.New("update request carries no fields")

	// ErrInvalidCredentials is returned for a failed login without revealing
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
