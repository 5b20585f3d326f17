// Package shared holds the response envelope writers and request context
// keys used across handlers and middleware.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nc-news/internal/apperr"
	"nc-news/internal/platform/logger"
)

// ErrorResponse is the error envelope: status is "fail" for client errors
// and "error" for server errors.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithAppError maps any error to the error envelope. Errors without
// an application kind are treated as internal; their detail goes to the
// server log, never to the client.
func RespondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)
	if appErr == nil {
		appErr = apperr.Internal(err)
	}

	log := logger.FromContext(r.Context())
	attrs := []slog.Attr{
		slog.Int("status_code", appErr.Status()),
		slog.String("message", appErr.Message),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
	}
	level := slog.LevelDebug
	if appErr.Status() >= http.StatusInternalServerError {
		level = slog.LevelError
		if cause := appErr.Unwrap(); cause != nil {
			attrs = append(attrs, slog.String("error", cause.Error()))
		}
	}
	log.LogAttrs(r.Context(), level, "request failed", attrs...)

	RespondWithJSON(w, r, appErr.Status(), ErrorResponse{
		Status:  appErr.EnvelopeStatus(),
		Message: appErr.Message,
	})
}
