package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/userhub/pkg/validator"
	"github.com/dmitrymomot/userhub/schemas"
)

// Config holds the tunables of the user service.
type Config struct {
	// BaseURL prefixes the hypermedia links attached to responses.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	// BcryptCost controls password hashing work factor.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
}

// Service implements the user-management operations on top of a Storage.
type Service struct {
	storage  Storage
	log      *slog.Logger
	baseURL  string
	cost     int
	password validator.PasswordStrengthConfig
}

// NewService wires a user service. The password strength policy is applied
// at registration; the schema layer itself only requires a non-empty value.
func NewService(cfg Config, storage Storage, log *slog.Logger) *Service {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		storage:  storage,
		log:      log,
		baseURL:  cfg.BaseURL,
		cost:     cost,
		password: validator.DefaultPasswordStrength(),
	}
}

// Create validates the registration payload, hashes the password, and
// stores the new user. All field failures are reported together.
func (s *Service) Create(ctx context.Context, req schemas.UserCreate) (schemas.UserResponse, error) {
	verrs := validator.ExtractValidationErrors(req.Validate())

	// The strength policy only applies when a password is present at all;
	// an empty password is already reported by the schema rule.
	if req.Password != "" {
		verrs = append(verrs, validator.ExtractValidationErrors(validator.Apply(
			validator.StrongPassword("password", req.Password, s.password),
			validator.NotCommonPassword("password", req.Password),
		))...)
	}
	if !verrs.IsEmpty() {
		return schemas.UserResponse{}, verrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return schemas.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.New(),
		Profile:      req.UserBase,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.Create(ctx, user); err != nil {
		return schemas.UserResponse{}, err
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("nickname", user.Profile.Nickname),
	)

	return s.toResponse(user), nil
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (schemas.UserResponse, error) {
	user, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return schemas.UserResponse{}, err
	}
	return s.toResponse(user), nil
}

// Update validates the partial record, merges its present fields into the
// stored profile, and persists the result. The stored record is replaced
// wholesale; no partially-validated state is ever written.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req schemas.UserUpdate) (schemas.UserResponse, error) {
	if req.IsEmpty() {
		return schemas.UserResponse{}, ErrEmptyUpdate
	}
	if err := req.Validate(); err != nil {
		return schemas.UserResponse{}, err
	}

	user, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return schemas.UserResponse{}, err
	}

	user.Profile = req.ApplyTo(user.Profile)
	user.UpdatedAt = time.Now().UTC()

	if err := s.storage.Update(ctx, user); err != nil {
		return schemas.UserResponse{}, err
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", id.String()))

	return s.toResponse(user), nil
}

// Delete removes a user permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.storage.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

// List returns one page of users wrapped with pagination scalars. Item
// order follows storage order.
func (s *Service) List(ctx context.Context, page, size int) (schemas.UserListResponse, error) {
	if err := validator.Apply(
		validator.MinNum("page", page, 1),
		validator.MinNum("size", size, 1),
	); err != nil {
		return schemas.UserListResponse{}, err
	}

	records, total, err := s.storage.List(ctx, (page-1)*size, size)
	if err != nil {
		return schemas.UserListResponse{}, err
	}

	items := make([]schemas.UserResponse, len(records))
	for i, user := range records {
		items[i] = s.toResponse(user)
	}

	return schemas.UserListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}

// SetProfessionalStatus flips the professional flag on a profile.
func (s *Service) SetProfessionalStatus(ctx context.Context, id uuid.UUID, status schemas.ProfessionalStatus) error {
	return s.storage.SetProfessionalStatus(ctx, id, status.IsProfessional)
}

// Authenticate verifies credentials and records the login time. Returned
// errors deliberately do not reveal whether the email exists.
func (s *Service) Authenticate(ctx context.Context, req schemas.LoginRequest) (schemas.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return schemas.UserResponse{}, err
	}

	user, err := s.storage.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return schemas.UserResponse{}, ErrInvalidCredentials
		}
		return schemas.UserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return schemas.UserResponse{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.storage.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.WarnContext(ctx, "failed to record login time",
			slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
	}
	user.LastLoginAt = &now

	return s.toResponse(user), nil
}

// toResponse maps a stored record to its public shape with hypermedia links.
func (s *Service) toResponse(user User) schemas.UserResponse {
	return schemas.UserResponse{
		ID:          user.ID,
		Nickname:    user.Profile.Nickname,
		Email:       user.Profile.Email,
		FirstName:   user.Profile.FirstName,
		LastName:    user.Profile.LastName,
		Role:        user.Profile.Role,
		Bio:         user.Profile.Bio,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Links:       resourceLinks(s.baseURL, user.ID),
	}
}
