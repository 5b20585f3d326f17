package api

import (
	"net/http"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/store"
)

// ArticleHandler handles article requests. It orchestrates the existence
// checks the contract requires before touching the articles table.
type ArticleHandler struct {
	articles store.ArticleStore
	topics   store.TopicStore
	users    store.UserStore
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(
	articles store.ArticleStore,
	topics store.TopicStore,
	users store.UserStore,
) *ArticleHandler {
	return &ArticleHandler{articles: articles, topics: topics, users: users}
}

// List handles GET /api/articles. Filtering by a topic that does not exist
// is a 404; a topic that exists but matches nothing is an empty 200.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sortBy := query.Get("sort_by")
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := query.Get("order")
	if order == "" {
		order = "desc"
	}
	sortBy, order, err := domain.ValidateArticleSort(sortBy, order)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	page, err := parsePage(r)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	topic := query.Get("topic")
	if topic != "" {
		if _, err := h.topics.GetBySlug(r.Context(), topic); err != nil {
			shared.RespondWithAppError(w, r, err)
			return
		}
	}

	articles, total, err := h.articles.List(r.Context(), store.ArticleFilter{
		Topic:  topic,
		Author: query.Get("author"),
		SortBy: sortBy,
		Order:  order,
		Page:   page,
	})
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"articles":    articles,
		"total_count": total,
	})
}

// Search handles GET /api/articles/search.
func (h *ArticleHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Search query required"))
		return
	}

	page, err := parsePage(r)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	articles, total, err := h.articles.Search(r.Context(), q, page)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"articles":    articles,
		"total_count": total,
	})
}

// Get handles GET /api/articles/{article_id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"article": article})
}

// Create handles POST /api/articles. The author is the authenticated user
// and must still exist, as must the topic; the two absences are reported
// distinctly.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	username := shared.UsernameFromContext(r.Context())

	var req CreateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if req.Title == "" || req.Body == "" || req.Topic == "" {
		shared.RespondWithAppError(w, r, apperr.BadRequest("Bad request"))
		return
	}

	if _, err := h.users.GetByUsername(r.Context(), username); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			err = apperr.NotFound("Author not found")
		}
		shared.RespondWithAppError(w, r, err)
		return
	}
	if _, err := h.topics.GetBySlug(r.Context(), req.Topic); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	article, err := h.articles.Create(r.Context(), domain.Article{
		Title:         req.Title,
		Topic:         req.Topic,
		Author:        username,
		Body:          req.Body,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"article": article})
}

// UpdateBody handles PUT /api/articles/{article_id}. A missing article is
// reported before the ownership check.
func (h *ArticleHandler) UpdateBody(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
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

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if article.Author != shared.UsernameFromContext(r.Context()) {
		shared.RespondWithAppError(w, r,
			apperr.Forbidden("Forbidden - user does not own the article"))
		return
	}

	updated, err := h.articles.UpdateBody(r.Context(), id, req.Body)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"article": updated})
}

// Vote handles PATCH /api/articles/{article_id}. The delta is additive and
// unclamped; any authenticated user may vote.
func (h *ArticleHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
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

	article, err := h.articles.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"article": article})
}

// Delete handles DELETE /api/articles/{article_id}. Owner only; the
// article's comments go with it.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	if article.Author != shared.UsernameFromContext(r.Context()) {
		shared.RespondWithAppError(w, r,
			apperr.Forbidden("Forbidden - user does not own the article"))
		return
	}

	if err := h.articles.Delete(r.Context(), id); err != nil {
		shared.RespondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
