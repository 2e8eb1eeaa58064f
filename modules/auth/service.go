package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userhub/modules/users"
	"github.com/dmitrymomot/userhub/pkg/binder"
	"github.com/dmitrymomot/userhub/pkg/httpx"
	"github.com/dmitrymomot/userhub/pkg/validator"
	"github.com/dmitrymomot/userhub/schemas"
)

// Config holds auth settings loaded from the environment.
type Config struct {
	SigningKey     string        `env:"JWT_SIGNING_KEY,required"`            // SigningKey signs access tokens; at least 32 bytes recommended.
	Issuer         string        `env:"JWT_ISSUER" envDefault:"userhub"`     // Issuer appears in the iss claim.
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`     // AccessTokenTTL bounds token lifetime.
	LoginAttempts  int           `env:"LOGIN_RATE_LIMIT" envDefault:"10"`    // LoginAttempts per window and email.
	LoginWindow    time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"1m"`   // LoginWindow is the rate limit window.
}

// Authenticator verifies credentials; implemented by the users service.
type Authenticator interface {
	Authenticate(ctx context.Context, req schemas.LoginRequest) (schemas.UserResponse, error)
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresIn   int                  `json:"expires_in"`
	User        schemas.UserResponse `json:"user"`
}

// Service handles the login flow: validation, rate limiting, credential
// verification, and token issuance.
type Service struct {
	authenticator Authenticator
	tokens        *TokenService
	limiter       Limiter
	log           *slog.Logger
}

func NewService(authenticator Authenticator, tokens *TokenService, limiter Limiter, log *slog.Logger) *Service {
	if limiter == nil {
		limiter = NoopLimiter{}
	}
	return &Service{
		authenticator: authenticator,
		tokens:        tokens,
		limiter:       limiter,
		log:           log,
	}
}

// Login validates the credential payload and exchanges it for a token.
func (s *Service) Login(ctx context.Context, req schemas.LoginRequest) (TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return TokenResponse{}, err
	}

	allowed, err := s.limiter.Allow(ctx, strings.ToLower(req.Email))
	if err != nil {
		// A broken limiter must not lock every user out.
		s.log.WarnContext(ctx, "rate limiter unavailable", slog.String("error", err.Error()))
	} else if !allowed {
		return TokenResponse{}, ErrRateLimited
	}

	user, err := s.authenticator.Authenticate(ctx, req)
	if err != nil {
		return TokenResponse{}, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return TokenResponse{}, err
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
		User:        user,
	}, nil
}

// Router mounts the auth endpoints.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", s.loginHandler)
	return r
}

func (s *Service) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req schemas.LoginRequest
	if err := binder.JSON(r, &req); err != nil {
		httpx.WriteBindError(w, err)
		return
	}

	resp, err := s.Login(r.Context(), req)
	if err != nil {
		s.writeLoginError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (s *Service) writeLoginError(w http.ResponseWriter, err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	switch {
	case errors.Is(err, ErrRateLimited):
		httpx.WriteError(w, http.StatusTooManyRequests, "Too Many Requests", err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.")
	}
}
