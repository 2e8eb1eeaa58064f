package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/userhub/pkg/pg"
	"github.com/dmitrymomot/userhub/schemas"
)

func roleFromDB(role string) schemas.Role { return schemas.Role(role) }

// PostgresStorage persists users in the users table.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

const userColumns = `id, nickname, email, first_name, last_name, role, bio,
	profile_picture_url, linkedin_profile_url, github_profile_url,
	password_hash, is_professional, last_login_at, created_at, updated_at`

func (s *PostgresStorage) Create(ctx context.Context, user User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		user.ID,
		user.Profile.Nickname,
		user.Profile.Email,
		user.Profile.FirstName,
		user.Profile.LastName,
		string(user.Profile.Role),
		user.Profile.Bio,
		user.Profile.ProfilePictureURL,
		user.Profile.LinkedinURL,
		user.Profile.GithubURL,
		user.PasswordHash,
		user.IsProfessional,
		user.LastLoginAt,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return classifyConflict(err)
	}
	return nil
}

func (s *PostgresStorage) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return s.getBy(ctx, "id = $1", id)
}

func (s *PostgresStorage) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.getBy(ctx, "email = $1", email)
}

func (s *PostgresStorage) getBy(ctx context.Context, where string, arg any) (User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)

	var user User
	var role string
	err := row.Scan(
		&user.ID,
		&user.Profile.Nickname,
		&user.Profile.Email,
		&user.Profile.FirstName,
		&user.Profile.LastName,
		&role,
		&user.Profile.Bio,
		&user.Profile.ProfilePictureURL,
		&user.Profile.LinkedinURL,
		&user.Profile.GithubURL,
		&user.PasswordHash,
		&user.IsProfessional,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("query user: %w", err)
	}
	user.Profile.Role = roleFromDB(role)
	return user, nil
}

func (s *PostgresStorage) Update(ctx context.Context, user User) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET
			nickname = $2, email = $3, first_name = $4, last_name = $5,
			role = $6, bio = $7, profile_picture_url = $8,
			linkedin_profile_url = $9, github_profile_url = $10,
			updated_at = $11
		WHERE id = $1`,
		user.ID,
		user.Profile.Nickname,
		user.Profile.Email,
		user.Profile.FirstName,
		user.Profile.LastName,
		string(user.Profile.Role),
		user.Profile.Bio,
		user.Profile.ProfilePictureURL,
		user.Profile.LinkedinURL,
		user.Profile.GithubURL,
		user.UpdatedAt,
	)
	if err != nil {
		return classifyConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) List(ctx context.Context, offset, limit int) ([]User, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var records []User
	for rows.Next() {
		var user User
		var role string
		if err := rows.Scan(
			&user.ID,
			&user.Profile.Nickname,
			&user.Profile.Email,
			&user.Profile.FirstName,
			&user.Profile.LastName,
			&role,
			&user.Profile.Bio,
			&user.Profile.ProfilePictureURL,
			&user.Profile.LinkedinURL,
			&user.Profile.GithubURL,
			&user.PasswordHash,
			&user.IsProfessional,
			&user.LastLoginAt,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		user.Profile.Role = roleFromDB(role)
		records = append(records, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return records, total, nil
}

func (s *PostgresStorage) SetProfessionalStatus(ctx context.Context, id uuid.UUID, isProfessional bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET is_professional = $2, updated_at = now() WHERE id = $1`,
		id, isProfessional)
	if err != nil {
		return fmt.Errorf("set professional status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// classifyConflict maps unique constraint violations to the domain errors
// the API reports, keyed on the constraint name.
func classifyConflict(err error) error {
	if !pg.IsDuplicateKeyError(err) {
		return fmt.Errorf("store user: %w", err)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "users_email"):
		return ErrEmailTaken
	case strings.Contains(msg, "users_nickname"):
		return ErrNicknameTaken
	}
	return errors.Join(ErrEmailTaken, err)
}
