package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/userhub/pkg/httpx"
)

type contextKey struct{}

// ClaimsFromContext returns the verified claims placed by Middleware.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(Claims)
	return claims, ok
}

// Middleware authenticates bearer tokens and stores the verified claims in
// the request context. Requests without a valid token are answered with 401.
func Middleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, claims)))
		})
	}
}

// RequireRole answers 403 unless the authenticated user has one of the
// given roles. Must be mounted after Middleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
				return
			}
			if !allowed[string(claims.Role)] {
				httpx.WriteError(w, http.StatusForbidden, "Forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
