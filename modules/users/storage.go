package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/userhub/schemas"
)

// User is the stored account record. The password hash never leaves this
// package; responses are built through toResponse.
type User struct {
	ID             uuid.UUID
	Profile        schemas.UserBase
	PasswordHash   []byte
	IsProfessional bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Storage is the persistence boundary for user records. Implementations
// report uniqueness conflicts with ErrEmailTaken / ErrNicknameTaken and
// missing rows with ErrNotFound.
type Storage interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns one page of users ordered by creation time plus the
	// total number of records.
	List(ctx context.Context, offset, limit int) ([]User, int, error)
	SetProfessionalStatus(ctx context.Context, id uuid.UUID, isProfessional bool) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
