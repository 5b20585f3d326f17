package store

import (
	"context"

	"nc-news/internal/domain"
)

// Page describes pagination for list queries. Limit is the page size and
// Number is the 1-based page number.
type Page struct {
	Limit  int
	Number int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ArticleFilter describes the filtering, sorting, and pagination applied to
// an article listing. SortBy and Order must already be validated against the
// sortable-column allow-list.
type ArticleFilter struct {
	Topic  string
	Author string
	SortBy string
	Order  string
	Page   Page
}

// TopicStore defines the persistence operations for topics.
type TopicStore interface {
	// List returns all topics.
	List(ctx context.Context) ([]domain.Topic, error)

	// GetBySlug returns the topic with the given slug, or a NotFound error.
	GetBySlug(ctx context.Context, slug string) (domain.Topic, error)

	// Create inserts a new topic. A duplicate slug yields a Conflict error.
	Create(ctx context.Context, topic domain.Topic) (domain.Topic, error)
}

// ArticleStore defines the persistence operations for articles.
type ArticleStore interface {
	// List returns a page of articles matching the filter together with the
	// total number of matching rows. List items omit the article body.
	List(ctx context.Context, filter ArticleFilter) ([]domain.Article, int, error)

	// Search returns a page of articles whose title or body contains the
	// query, case-insensitively, newest first, with the total match count.
	Search(ctx context.Context, query string, page Page) ([]domain.Article, int, error)

	// GetByID returns the article with its derived comment count, or a
	// NotFound error.
	GetByID(ctx context.Context, id int64) (domain.Article, error)

	// Create inserts a new article and returns it with generated fields.
	Create(ctx context.Context, article domain.Article) (domain.Article, error)

	// UpdateBody replaces the article body and returns the updated article.
	UpdateBody(ctx context.Context, id int64, body string) (domain.Article, error)

	// IncrementVotes adds delta to the article's votes and returns the
	// updated article. Votes are not clamped.
	IncrementVotes(ctx context.Context, id int64, delta int) (domain.Article, error)

	// Delete removes the article and its comments in a single transaction.
	Delete(ctx context.Context, id int64) error
}

// CommentStore defines the persistence operations for comments.
type CommentStore interface {
	// ListByArticle returns a page of an article's comments, newest first,
	// with the total comment count for the article.
	ListByArticle(ctx context.Context, articleID int64, page Page) ([]domain.Comment, int, error)

	// GetByID returns the comment, or a NotFound error.
	GetByID(ctx context.Context, id int64) (domain.Comment, error)

	// Create inserts a new comment and returns it with generated fields.
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)

	// UpdateBody replaces the comment body and returns the updated comment.
	UpdateBody(ctx context.Context, id int64, body string) (domain.Comment, error)

	// IncrementVotes adds delta to the comment's votes and returns the
	// updated comment.
	IncrementVotes(ctx context.Context, id int64, delta int) (domain.Comment, error)

	// Delete removes the comment.
	Delete(ctx context.Context, id int64) error
}

// UserStore defines the persistence operations for users.
type UserStore interface {
	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername returns the user with the given username, or a NotFound
	// error.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// GetByEmail returns the user with the given email, or a NotFound error.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user. A duplicate username or email yields a
	// Conflict error.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// UpdateProfile updates the user's name and/or avatar URL. Nil fields
	// are left unchanged.
	UpdateProfile(ctx context.Context, username string, name, avatarURL *string) (domain.User, error)

	// Delete removes the user together with their articles, their comments,
	// and all comments on their articles, in a single transaction.
	Delete(ctx context.Context, username string) error
}
