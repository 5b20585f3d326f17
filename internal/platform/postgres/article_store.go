package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/platform/logger"
	"nc-news/internal/store"
)

// PostgresArticleStore implements store.ArticleStore against PostgreSQL.
// The comment_count column is always derived from the comments table.
type PostgresArticleStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresArticleStore creates an article store on the given connection
// pool. If logger is nil, the slog default is used.
func NewPostgresArticleStore(db *sql.DB, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// commentCountFor returns the number of comments on an article. It runs on
// any DBTX so transactional and pooled callers share it.
func commentCountFor(ctx context.Context, q store.DBTX, articleID int64) (int, error) {
	var count int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE article_id = $1`, articleID).
		Scan(&count)
	return count, err
}

// List implements store.ArticleStore.List. SortBy and Order in the filter
// are interpolated into the query and must come through the sort allow-list.
func (s *PostgresArticleStore) List(
	ctx context.Context,
	filter store.ArticleFilter,
) ([]domain.Article, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM articles
		 WHERE ($1 = '' OR topic = $1) AND ($2 = '' OR author = $2)`,
		filter.Topic, filter.Author).
		Scan(&total)
	if err != nil {
		log.Error("failed to count articles", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	query := fmt.Sprintf(
		`SELECT a.article_id, a.title, a.topic, a.author, a.created_at,
		        a.votes, a.article_img_url, COUNT(c.comment_id)::int AS comment_count
		 FROM articles a
		 LEFT JOIN comments c ON c.article_id = a.article_id
		 WHERE ($1 = '' OR a.topic = $1) AND ($2 = '' OR a.author = $2)
		 GROUP BY a.article_id
		 ORDER BY %s %s
		 LIMIT $3 OFFSET $4`,
		filter.SortBy, filter.Order)

	rows, err := s.db.QueryContext(ctx, query,
		filter.Topic, filter.Author, filter.Page.Limit, filter.Page.Offset())
	if err != nil {
		log.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount); err != nil {
			return nil, 0, MapError(err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}
	return articles, total, nil
}

// Search implements store.ArticleStore.Search with a case-insensitive
// substring match over title and body, newest first.
func (s *PostgresArticleStore) Search(
	ctx context.Context,
	query string,
	page store.Page,
) ([]domain.Article, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM articles
		 WHERE title ILIKE '%' || $1 || '%' OR body ILIKE '%' || $1 || '%'`,
		query).
		Scan(&total)
	if err != nil {
		log.Error("failed to count search results", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT a.article_id, a.title, a.topic, a.author, a.created_at,
		        a.votes, a.article_img_url, COUNT(c.comment_id)::int AS comment_count
		 FROM articles a
		 LEFT JOIN comments c ON c.article_id = a.article_id
		 WHERE a.title ILIKE '%' || $1 || '%' OR a.body ILIKE '%' || $1 || '%'
		 GROUP BY a.article_id
		 ORDER BY a.created_at DESC
		 LIMIT $2 OFFSET $3`,
		query, page.Limit, page.Offset())
	if err != nil {
		log.Error("failed to search articles", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount); err != nil {
			return nil, 0, MapError(err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}
	return articles, total, nil
}

// GetByID implements store.ArticleStore.GetByID.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	var a domain.Article
	err := s.db.QueryRowContext(ctx,
		`SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at,
		        a.votes, a.article_img_url, COUNT(c.comment_id)::int AS comment_count
		 FROM articles a
		 LEFT JOIN comments c ON c.article_id = a.article_id
		 WHERE a.article_id = $1
		 GROUP BY a.article_id`, id).
		Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, apperr.NotFound("Article not found")
	}
	if err != nil {
		return domain.Article{}, MapError(err)
	}
	return a, nil
}

// Create implements store.ArticleStore.Create. A new article always has a
// comment count of zero.
func (s *PostgresArticleStore) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if article.ArticleImgURL == "" {
		article.ArticleImgURL = domain.DefaultArticleImageURL
	}

	var created domain.Article
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO articles (title, topic, author, body, article_img_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`,
		article.Title, article.Topic, article.Author, article.Body, article.ArticleImgURL).
		Scan(&created.ArticleID, &created.Title, &created.Topic, &created.Author,
			&created.Body, &created.CreatedAt, &created.Votes, &created.ArticleImgURL)
	if err != nil {
		log.Error("failed to create article",
			slog.String("author", article.Author),
			slog.String("error", err.Error()))
		return domain.Article{}, MapError(err)
	}
	created.CommentCount = 0
	return created, nil
}

// UpdateBody implements store.ArticleStore.UpdateBody.
func (s *PostgresArticleStore) UpdateBody(ctx context.Context, id int64, body string) (domain.Article, error) {
	var a domain.Article
	err := s.db.QueryRowContext(ctx,
		`UPDATE articles SET body = $2
		 WHERE article_id = $1
		 RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`,
		id, body).
		Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, apperr.NotFound("Article not found")
	}
	if err != nil {
		return domain.Article{}, MapError(err)
	}

	count, err := commentCountFor(ctx, s.db, id)
	if err != nil {
		return domain.Article{}, MapError(err)
	}
	a.CommentCount = count
	return a, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes. The delta is
// applied as-is; votes may go negative.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) (domain.Article, error) {
	var a domain.Article
	err := s.db.QueryRowContext(ctx,
		`UPDATE articles SET votes = votes + $2
		 WHERE article_id = $1
		 RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`,
		id, delta).
		Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, apperr.NotFound("Article not found")
	}
	if err != nil {
		return domain.Article{}, MapError(err)
	}

	count, err := commentCountFor(ctx, s.db, id)
	if err != nil {
		return domain.Article{}, MapError(err)
	}
	a.CommentCount = count
	return a, nil
}

// Delete implements store.ArticleStore.Delete. Comments on the article are
// removed in the same transaction, since the schema declares no cascading
// deletes.
func (s *PostgresArticleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM comments WHERE article_id = $1`, id); err != nil {
			return MapError(err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM articles WHERE article_id = $1`, id)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result, apperr.NotFound("Article not found"))
	})
	if err != nil && apperr.From(err) == nil {
		log.Error("failed to delete article",
			slog.Int64("article_id", id),
			slog.String("error", err.Error()))
		return apperr.Internal(err)
	}
	return err
}
