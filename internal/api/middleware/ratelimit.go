package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"

	"nc-news/internal/api/shared"
	"nc-news/internal/config"
)

func limitHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusTooManyRequests, shared.ErrorResponse{
		Status:  "fail",
		Message: "Too many requests, please try again later",
	})
}

// GlobalRateLimiter limits all API traffic per client IP.
func GlobalRateLimiter(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.GlobalRequests,
		cfg.GlobalWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(limitHandler),
	)
}

// AuthRateLimiter is the stricter limiter applied to login and signup.
func AuthRateLimiter(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.AuthRequests,
		cfg.AuthWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(limitHandler),
	)
}
