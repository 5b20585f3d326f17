package api

import (
	"net/http"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/store"
)

// TopicHandler handles topic requests.
type TopicHandler struct {
	topics store.TopicStore
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(topics store.TopicStore) *TopicHandler {
	return &TopicHandler{topics: topics}
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.List(r.Context())
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"topics": topics})
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if req.Slug == "" || req.Description == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Bad request"))
		return
	}

	topic, err := h.topics.Create(r.Context(), domain.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"topic": topic})
}
