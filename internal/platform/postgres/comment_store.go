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

// PostgresCommentStore implements store.CommentStore against PostgreSQL.
type PostgresCommentStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresCommentStore creates a comment store on the given connection
// pool. If logger is nil, the slog default is used.
func NewPostgresCommentStore(db *sql.DB, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentColumns = `comment_id, article_id, body, author, votes, created_at`

func scanComment(row *sql.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.CommentID, &c.ArticleID, &c.Body, &c.Author,
		&c.Votes, &c.CreatedAt)
	return c, err
}

// ListByArticle implements store.CommentStore.ListByArticle, newest first.
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int64,
	page store.Page,
) ([]domain.Comment, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	total, err := commentCountFor(ctx, s.db, articleID)
	if err != nil {
		log.Error("failed to count comments", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+commentColumns+`
		 FROM comments
		 WHERE article_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		articleID, page.Limit, page.Offset())
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Body, &c.Author,
			&c.Votes, &c.CreatedAt); err != nil {
			return nil, 0, MapError(err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}
	return comments, total, nil
}

// GetByID implements store.CommentStore.GetByID.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE comment_id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, apperr.NotFound("Comment not found")
	}
	if err != nil {
		return domain.Comment{}, MapError(err)
	}
	return c, nil
}

// Create implements store.CommentStore.Create.
func (s *PostgresCommentStore) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	created, err := scanComment(s.db.QueryRowContext(ctx,
		`INSERT INTO comments (article_id, body, author)
		 VALUES ($1, $2, $3)
		 RETURNING `+commentColumns,
		comment.ArticleID, comment.Body, comment.Author))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return domain.Comment{}, apperr.NotFound("Article not found")
		}
		log.Error("failed to create comment",
			slog.Int64("article_id", comment.ArticleID),
			slog.String("error", err.Error()))
		return domain.Comment{}, MapError(err)
	}
	return created, nil
}

// UpdateBody implements store.CommentStore.UpdateBody.
func (s *PostgresCommentStore) UpdateBody(ctx context.Context, id int64, body string) (domain.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx,
		`UPDATE comments SET body = $2
		 WHERE comment_id = $1
		 RETURNING `+commentColumns,
		id, body))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, apperr.NotFound("Comment not found")
	}
	if err != nil {
		return domain.Comment{}, MapError(err)
	}
	return c, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes. The delta is
// applied as-is; votes may go negative.
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, id int64, delta int) (domain.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx,
		`UPDATE comments SET votes = votes + $2
		 WHERE comment_id = $1
		 RETURNING `+commentColumns,
		id, delta))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, apperr.NotFound("Comment not found")
	}
	if err != nil {
		return domain.Comment{}, MapError(err)
	}
	return c, nil
}

// Delete implements store.CommentStore.Delete.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, apperr.NotFound("Comment not found"))
}
