package main

import (
	"database/sql"
	"log/slog"

	"nc-news/internal/config"
	"nc-news/internal/platform/postgres"
	"nc-news/internal/service/auth"
	"nc-news/internal/store"
)

// application holds the wired dependencies for the server: configuration,
// logging, the connection pool, the stores, and the auth services.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	topicStore   store.TopicStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
	userStore    store.UserStore

	tokenService    auth.TokenService
	passwordService auth.PasswordService
}

// newApplication wires the stores and services onto the given connection
// pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	tokens, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		topicStore:      postgres.NewPostgresTopicStore(db, logger),
		articleStore:    postgres.NewPostgresArticleStore(db, logger),
		commentStore:    postgres.NewPostgresCommentStore(db, logger),
		userStore:       postgres.NewPostgresUserStore(db, logger),
		tokenService:    tokens,
		passwordService: auth.NewBcryptService(cfg.Auth.BcryptCost),
	}, nil
}
