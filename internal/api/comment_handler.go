package api

import (
	"net/http"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/store"
)

// CommentHandler handles comment requests.
type CommentHandler struct {
	comments store.CommentStore
	articles store.ArticleStore
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(comments store.CommentStore, articles store.ArticleStore) *CommentHandler {
	return &CommentHandler{comments: comments, articles: articles}
}

// ListByArticle handles GET /api/articles/{article_id}/comments. The
// article must exist even when it has no comments.
func (h *CommentHandler) ListByArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	page, err := parsePage(r)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	if _, err := h.articles.GetByID(r.Context(), articleID); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	comments, total, err := h.comments.ListByArticle(r.Context(), articleID, page)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"comments":    comments,
		"total_count": total,
	})
}

// Create handles POST /api/articles/{article_id}/comments. The comment's
// author is the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if req.Body == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Bad request"))
		return
	}

	if _, err := h.articles.GetByID(r.Context(), articleID); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	comment, err := h.comments.Create(r.Context(), domain.Comment{
		ArticleID: articleID,
		Body:      req.Body,
		Author:    shared.UsernameFromContext(r.Context()),
	})
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"comment": comment})
}

// UpdateBody handles PUT /api/comments/{comment_id}. A missing comment is
// reported before the ownership check.
func (h *CommentHandler) UpdateBody(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	var req UpdateBodyRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if req.Body == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Bad request"))
		return
	}

	comment, err := h.comments.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if comment.Author != shared.UsernameFromContext(r.Context()) {
		shared.RespondWithAppError(w, r,
			apperr.Forbidden("Forbidden - user does not own the comment"))
		return
	}

	updated, err := h.comments.UpdateBody(r.Context(), id, req.Body)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"comment": updated})
}

// Vote handles PATCH /api/comments/{comment_id}. Any authenticated user may
// vote; the delta is unclamped.
func (h *CommentHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	var req VoteRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if req.IncVotes == nil {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Bad request"))
		return
	}

	comment, err := h.comments.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"comment": comment})
}

// Delete handles DELETE /api/comments/{comment_id}. Owner only.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	comment, err := h.comments.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if comment.Author != shared.UsernameFromContext(r.Context()) {
		shared.RespondWithAppError(w, r,
			apperr.Forbidden("Forbidden - user does not own the comment"))
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
