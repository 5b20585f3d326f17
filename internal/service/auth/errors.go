// Package auth provides token issuing and password hashing for the API.
package auth

import "errors"

var (
	// ErrInvalidToken is returned when a token fails signature, format, or
	// expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmptyToken is returned when an empty token string is presented.
	ErrEmptyToken = errors.New("empty token")
)
