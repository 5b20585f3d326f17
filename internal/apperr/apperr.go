// Package apperr defines the application's error taxonomy: a closed set of
// error kinds, each mapped to an HTTP status, carried by a single Error type
// that the API layer renders into the response envelope.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error into one of the statuses the API can return.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindMethodNotAllowed
	KindConflict
	KindInternal
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error with a kind and a client-facing message.
// Err, when set, is the underlying cause; it is logged but never sent to
// clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// EnvelopeStatus returns the status field of the error envelope: "fail" for
// client errors, "error" for server errors.
func (e *Error) EnvelopeStatus() string {
	if e.Status() >= http.StatusInternalServerError {
		return "error"
	}
	return "fail"
}

func newError(kind Kind, message, fallback string) *Error {
	if message == "" {
		message = fallback
	}
	return &Error{Kind: kind, Message: message}
}

// BadRequest returns a 400 error. An empty message defaults to
// "Bad request".
func BadRequest(message string) *Error {
	return newError(KindBadRequest, message, "Bad request")
}

// Unauthorized returns a 401 error. An empty message defaults to
// "Unauthorized".
func Unauthorized(message string) *Error {
	return newError(KindUnauthorized, message, "Unauthorized")
}

// Forbidden returns a 403 error. An empty message defaults to "Forbidden".
func Forbidden(message string) *Error {
	return newError(KindForbidden, message, "Forbidden")
}

// NotFound returns a 404 error. An empty message defaults to "Not found".
func NotFound(message string) *Error {
	return newError(KindNotFound, message, "Not found")
}

// MethodNotAllowed returns a 405 error. An empty message defaults to
// "Method not allowed".
func MethodNotAllowed(message string) *Error {
	return newError(KindMethodNotAllowed, message, "Method not allowed")
}

// Conflict returns a 409 error. An empty message defaults to
// "Already exists".
func Conflict(message string) *Error {
	return newError(KindConflict, message, "Already exists")
}

// Internal returns a 500 error wrapping the cause. Clients always see
// "Something went wrong"; the cause stays server-side.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong", Err: err}
}

// From extracts an *Error from err's chain, or nil when there is none.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	e := From(err)
	return e != nil && e.Kind == kind
}
