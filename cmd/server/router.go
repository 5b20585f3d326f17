package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"nc-news/internal/api"
	apimiddleware "nc-news/internal/api/middleware"
	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
)

// setupRouter builds the full route table with the middleware chain.
func (app *application) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.RequestLogger(app.logger))
	r.Use(apimiddleware.GlobalRateLimiter(app.config.RateLimit))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithAppError(w, req, apperr.NotFound(
			fmt.Sprintf("Can't find %s on this server", req.URL.Path)))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithAppError(w, req, apperr.MethodNotAllowed("Method not allowed"))
	})

	apiHandler := api.NewAPIHandler()
	topicHandler := api.NewTopicHandler(app.topicStore)
	articleHandler := api.NewArticleHandler(app.articleStore, app.topicStore, app.userStore)
	commentHandler := api.NewCommentHandler(app.commentStore, app.articleStore)
	userHandler := api.NewUserHandler(app.userStore)
	authHandler := api.NewAuthHandler(app.userStore, app.tokenService, app.passwordService)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.tokenService)
	authLimiter := apimiddleware.AuthRateLimiter(app.config.RateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", apiHandler.Describe)

		r.Get("/topics", topicHandler.List)
		r.Get("/articles", articleHandler.List)
		// registered before the {article_id} pattern can swallow it
		r.Get("/articles/search", articleHandler.Search)
		r.Get("/articles/{article_id}", articleHandler.Get)
		r.Get("/articles/{article_id}/comments", commentHandler.ListByArticle)
		r.Get("/users", userHandler.List)
		r.Get("/users/{username}", userHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authLimiter)
			r.Post("/auth/signup", authHandler.Signup)
			r.Post("/auth/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Post("/topics", topicHandler.Create)

			r.Post("/articles", articleHandler.Create)
			r.Put("/articles/{article_id}", articleHandler.UpdateBody)
			r.Patch("/articles/{article_id}", articleHandler.Vote)
			r.Delete("/articles/{article_id}", articleHandler.Delete)
			r.Post("/articles/{article_id}/comments", commentHandler.Create)

			r.Put("/comments/{comment_id}", commentHandler.UpdateBody)
			r.Patch("/comments/{comment_id}", commentHandler.Vote)
			r.Delete("/comments/{comment_id}", commentHandler.Delete)

			r.Patch("/users/{username}", userHandler.UpdateProfile)
			r.Delete("/users/{username}", userHandler.Delete)
			r.Put("/users/{username}/avatar", userHandler.UpdateAvatar)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
