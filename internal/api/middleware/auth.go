// Package middleware contains the HTTP middleware chain: authentication,
// request logging, and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
	"nc-news/internal/service/auth"
)

// AuthMiddleware validates bearer tokens and attaches the authenticated
// username to the request context.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates an AuthMiddleware using the given token service.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	if tokens == nil {
		panic("token service cannot be nil")
	}
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token. A missing or
// malformed Authorization header yields "No token provided"; a present but
// unverifiable token yields "Invalid token".
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			shared.RespondWithAppError(w, r, apperr.Unauthorized("No token provided"))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" {
			shared.RespondWithAppError(w, r, apperr.Unauthorized("No token provided"))
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), tokenString)
		if err != nil {
			shared.RespondWithAppError(w, r, apperr.Unauthorized("Invalid token"))
			return
		}

		ctx := shared.WithUsername(r.Context(), claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
