package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
	"nc-news/internal/store"
)

// UserHandler handles user requests.
type UserHandler struct {
	users store.UserStore
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"users": users})
}

// Get handles GET /api/users/{username}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	user.PasswordHash = ""
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"user": user})
}

// UpdateProfile handles PATCH /api/users/{username}. A missing target user
// is reported before the ownership check.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if _, err := h.users.GetByUsername(r.Context(), username); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if username != shared.UsernameFromContext(r.Context()) {
		shared.RespondWithAppError(w, r, apperr.Forbidden("Cannot update other users"))
		return
	}

	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), username, req.Name, req.AvatarURL)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"user": user})
}

// UpdateAvatar handles PUT /api/users/{username}/avatar. The avatar URL is
// required; the missing-user check still precedes the ownership check.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req UpdateAvatarRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if req.AvatarURL == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Bad request"))
		return
	}

	if _, err := h.users.GetByUsername(r.Context(), username); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if username != shared.UsernameFromContext(r.Context()) {
		shared.RespondWithAppError(w, r, apperr.Forbidden("Cannot update other users"))
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), username, nil, &req.AvatarURL)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"user": user})
}

// Delete handles DELETE /api/users/{username}. Self only; the user's
// articles and comments go with them atomically.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if _, err := h.users.GetByUsername(r.Context(), username); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if username != shared.UsernameFromContext(r.Context()) {
		shared.RespondWithAppError(w, r, apperr.Forbidden("Cannot delete other users"))
		return
	}

	if err := h.users.Delete(r.Context(), username); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
