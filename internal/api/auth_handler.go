package api

import (
	"log/slog"
	"net/http"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/platform/logger"
	"nc-news/internal/service/auth"
	"nc-news/internal/store"
)

// AuthHandler handles signup, login, and the current-user endpoint.
type AuthHandler struct {
	users     store.UserStore
	tokens    auth.TokenService
	passwords auth.PasswordService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(
	users store.UserStore,
	tokens auth.TokenService,
	passwords auth.PasswordService,
) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, passwords: passwords}
}

func authUserOf(user domain.User) AuthUser {
	return AuthUser{Username: user.Username, Name: user.Name, Email: user.Email}
}

// Signup handles POST /api/auth/signup. Validation runs in a fixed order
// and the first failing rule's message is returned.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	if err := domain.ValidateSignup(req.Username, req.Name, req.Email, req.Password); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to hash password",
			slog.String("error", err.Error()))
		shared.RespondWithAppError(w, r, apperr.Internal(err))
		return
	}

	user, err := h.users.Create(r.Context(), domain.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	token, err := h.tokens.GenerateToken(r.Context(), user.Username)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		shared.RespondWithAppError(w, r, apperr.Internal(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		User:  authUserOf(user),
		Token: token,
	})
}

// Login handles POST /api/auth/login. An unknown email and a wrong password
// produce the identical response; the client cannot probe for accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if req.Email == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Missing email"))
		return
	}
	if req.Password == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Missing password"))
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			shared.RespondWithAppError(w, r, apperr.Unauthorized("Invalid credentials"))
			return
		}
		shared.RespondWithAppError(w, r, err)
		return
	}

	if err := h.passwords.Compare(user.PasswordHash, req.Password); err != nil {
		shared.RespondWithAppError(w, r, apperr.Unauthorized("Invalid credentials"))
		return
	}

	token, err := h.tokens.GenerateToken(r.Context(), user.Username)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		shared.RespondWithAppError(w, r, apperr.Internal(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		User:  authUserOf(user),
		Token: token,
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username := shared.UsernameFromContext(r.Context())

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	user.PasswordHash = ""
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"user": user})
}
