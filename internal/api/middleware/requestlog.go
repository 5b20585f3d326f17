package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"nc-news/internal/api/shared"
	"nc-news/internal/platform/logger"
)

// sensitiveParams are query parameters whose values never reach the logs.
var sensitiveParams = map[string]bool{
	"password":      true,
	"token":         true,
	"authorization": true,
}

func redactQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	redacted := url.Values{}
	for key, vals := range values {
		if sensitiveParams[key] {
			redacted.Set(key, "[REDACTED]")
			continue
		}
		redacted[key] = vals
	}
	return redacted.Encode()
}

// RequestLogger assigns each request a UUID, attaches a request-scoped
// logger to the context, and logs method, path, status, size, and duration
// on completion. Header and body contents are never logged.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			log := base.With(slog.String("request_id", requestID))

			ctx := shared.WithRequestID(r.Context(), requestID)
			ctx = logger.WithLogger(ctx, log)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if query := redactQuery(r.URL.Query()); query != "" {
				attrs = append(attrs, slog.String("query", query))
			}
			log.LogAttrs(ctx, slog.LevelInfo, "request completed", attrs...)
		})
	}
}
