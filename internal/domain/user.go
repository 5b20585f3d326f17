// Package domain defines the core entities and the input validation rules
// shared by the API layer.
package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"nc-news/internal/apperr"
)

// DefaultAvatarURL is applied when a user signs up without an avatar.
const DefaultAvatarURL = "https://www.gravatar.com/avatar/?d=mp"

// User is a registered account. The username is the primary identifier and
// the value carried in auth tokens. The password hash never leaves the
// server.
type User struct {
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateSignup applies the signup rules in order and returns the first
// failure as a BadRequest error. The check order is part of the contract:
// required fields (username, name, email, password), then email format,
// then username shape, then the password policy.
func ValidateSignup(username, name, email, password string) error {
	required := []struct {
		field, value string
	}{
		{"username", username},
		{"name", name},
		{"email", email},
		{"password", password},
	}
	for _, f := range required {
		if f.value == "" {
			return apperr.BadRequest("Missing " + f.field)
		}
	}

	if !emailRe.MatchString(email) {
		return apperr.BadRequest("Invalid email format")
	}

	if !usernameRe.MatchString(username) {
		return apperr.BadRequest(
			"Username must be 3-20 characters and contain only letters, numbers, and underscores")
	}

	return validatePassword(password)
}

// validatePassword checks the password policy rule by rule; the first
// failing rule's message is returned.
func validatePassword(password string) error {
	rules := []struct {
		ok      bool
		message string
	}{
		{len(password) >= 8, "Password must be at least 8 characters long"},
		{len(password) <= 50, "Password must not exceed 50 characters"},
		{strings.ContainsFunc(password, unicode.IsUpper), "Password must contain at least one uppercase letter"},
		{strings.ContainsFunc(password, unicode.IsLower), "Password must contain at least one lowercase letter"},
		{strings.ContainsAny(password, "0123456789"), "Password must contain at least one number"},
		{strings.ContainsAny(password, `!@#$%^&*(),.?":{}|<>`), "Password must contain at least one special character"},
		{!strings.ContainsFunc(password, unicode.IsSpace), "Password must not contain spaces"},
	}

	for _, r := range rules {
		if !r.ok {
			return apperr.BadRequest(r.message)
		}
	}
	return nil
}
