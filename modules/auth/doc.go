// Package auth implements credential login with JWT access tokens.
//
// The login flow validates the payload, applies a per-email rate limit,
// verifies the credentials against the users module, and issues a signed
// HS256 token. Middleware and RequireRole guard the rest of the API.
package auth
