package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/platform/logger"
	"nc-news/internal/store"
)

// PostgresTopicStore implements store.TopicStore against PostgreSQL.
type PostgresTopicStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTopicStore creates a topic store on the given connection pool.
// If logger is nil, the slog default is used.
func NewPostgresTopicStore(db *sql.DB, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List.
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, description FROM topics ORDER BY slug`)
	if err != nil {
		log.Error("failed to list topics", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	topics := []domain.Topic{}
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, MapError(err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return topics, nil
}

// GetBySlug implements store.TopicStore.GetBySlug.
func (s *PostgresTopicStore) GetBySlug(ctx context.Context, slug string) (domain.Topic, error) {
	var t domain.Topic
	err := s.db.QueryRowContext(ctx,
		`SELECT slug, description FROM topics WHERE slug = $1`, slug).
		Scan(&t.Slug, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Topic{}, apperr.NotFound("Topic not found")
	}
	if err != nil {
		return domain.Topic{}, MapError(err)
	}
	return t, nil
}

// Create implements store.TopicStore.Create.
func (s *PostgresTopicStore) Create(ctx context.Context, topic domain.Topic) (domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var created domain.Topic
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO topics (slug, description)
		 VALUES ($1, $2)
		 RETURNING slug, description`,
		topic.Slug, topic.Description).
		Scan(&created.Slug, &created.Description)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.Topic{}, apperr.Conflict("Topic already exists")
		}
		log.Error("failed to create topic",
			slog.String("slug", topic.Slug),
			slog.String("error", err.Error()))
		return domain.Topic{}, MapError(err)
	}
	return created, nil
}
