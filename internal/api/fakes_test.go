package api

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/store"
)

// In-memory store fakes mirroring the error semantics of the postgres
// implementations.

type fakeTopicStore struct {
	topics map[string]domain.Topic
}

func newFakeTopicStore(topics ...domain.Topic) *fakeTopicStore {
	s := &fakeTopicStore{topics: map[string]domain.Topic{}}
	for _, t := range topics {
		s.topics[t.Slug] = t
	}
	return s
}

func (s *fakeTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	slugs := make([]string, 0, len(s.topics))
	for slug := range s.topics {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	out := []domain.Topic{}
	for _, slug := range slugs {
		out = append(out, s.topics[slug])
	}
	return out, nil
}

func (s *fakeTopicStore) GetBySlug(ctx context.Context, slug string) (domain.Topic, error) {
	t, ok := s.topics[slug]
	if !ok {
		return domain.Topic{}, apperr.NotFound("Topic not found")
	}
	return t, nil
}

func (s *fakeTopicStore) Create(ctx context.Context, topic domain.Topic) (domain.Topic, error) {
	if _, ok := s.topics[topic.Slug]; ok {
		return domain.Topic{}, apperr.Conflict("Topic already exists")
	}
	s.topics[topic.Slug] = topic
	return topic, nil
}

type fakeArticleStore struct {
	articles map[int64]domain.Article
	nextID   int64
}

func newFakeArticleStore(articles ...domain.Article) *fakeArticleStore {
	s := &fakeArticleStore{articles: map[int64]domain.Article{}, nextID: 1}
	for _, a := range articles {
		s.articles[a.ArticleID] = a
		if a.ArticleID >= s.nextID {
			s.nextID = a.ArticleID + 1
		}
	}
	return s
}

func (s *fakeArticleStore) sorted() []domain.Article {
	out := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func paginate[T any](items []T, page store.Page) []T {
	offset := page.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func (s *fakeArticleStore) List(
	ctx context.Context,
	filter store.ArticleFilter,
) ([]domain.Article, int, error) {
	matched := []domain.Article{}
	for _, a := range s.sorted() {
		if filter.Topic != "" && a.Topic != filter.Topic {
			continue
		}
		if filter.Author != "" && a.Author != filter.Author {
			continue
		}
		a.Body = ""
		matched = append(matched, a)
	}
	return paginate(matched, filter.Page), len(matched), nil
}

func (s *fakeArticleStore) Search(
	ctx context.Context,
	query string,
	page store.Page,
) ([]domain.Article, int, error) {
	q := strings.ToLower(query)
	matched := []domain.Article{}
	for _, a := range s.sorted() {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Body), q) {
			a.Body = ""
			matched = append(matched, a)
		}
	}
	return paginate(matched, page), len(matched), nil
}

func (s *fakeArticleStore) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, apperr.NotFound("Article not found")
	}
	return a, nil
}

func (s *fakeArticleStore) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = domain.DefaultArticleImageURL
	}
	article.ArticleID = s.nextID
	article.CreatedAt = time.Now()
	s.nextID++
	s.articles[article.ArticleID] = article
	return article, nil
}

func (s *fakeArticleStore) UpdateBody(ctx context.Context, id int64, body string) (domain.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, apperr.NotFound("Article not found")
	}
	a.Body = body
	s.articles[id] = a
	return a, nil
}

func (s *fakeArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) (domain.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, apperr.NotFound("Article not found")
	}
	a.Votes += delta
	s.articles[id] = a
	return a, nil
}

func (s *fakeArticleStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.articles[id]; !ok {
		return apperr.NotFound("Article not found")
	}
	delete(s.articles, id)
	return nil
}

type fakeCommentStore struct {
	comments map[int64]domain.Comment
	nextID   int64
}

func newFakeCommentStore(comments ...domain.Comment) *fakeCommentStore {
	s := &fakeCommentStore{comments: map[int64]domain.Comment{}, nextID: 1}
	for _, c := range comments {
		s.comments[c.CommentID] = c
		if c.CommentID >= s.nextID {
			s.nextID = c.CommentID + 1
		}
	}
	return s
}

func (s *fakeCommentStore) ListByArticle(
	ctx context.Context,
	articleID int64,
	page store.Page,
) ([]domain.Comment, int, error) {
	matched := []domain.Comment{}
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, page), len(matched), nil
}

func (s *fakeCommentStore) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, apperr.NotFound("Comment not found")
	}
	return c, nil
}

func (s *fakeCommentStore) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	comment.CommentID = s.nextID
	comment.CreatedAt = time.Now()
	s.nextID++
	s.comments[comment.CommentID] = comment
	return comment, nil
}

func (s *fakeCommentStore) UpdateBody(ctx context.Context, id int64, body string) (domain.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, apperr.NotFound("Comment not found")
	}
	c.Body = body
	s.comments[id] = c
	return c, nil
}

func (s *fakeCommentStore) IncrementVotes(ctx context.Context, id int64, delta int) (domain.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, apperr.NotFound("Comment not found")
	}
	c.Votes += delta
	s.comments[id] = c
	return c, nil
}

func (s *fakeCommentStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.comments[id]; !ok {
		return apperr.NotFound("Comment not found")
	}
	delete(s.comments, id)
	return nil
}

type fakeUserStore struct {
	users   map[string]domain.User
	deleted []string
}

func newFakeUserStore(users ...domain.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]domain.User{}}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *fakeUserStore) List(ctx context.Context) ([]domain.User, error) {
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	sort.Strings(names)
	out := []domain.User{}
	for _, name := range names {
		u := s.users[name]
		out = append(out, domain.User{
			Username:  u.Username,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
		})
	}
	return out, nil
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return domain.User{}, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, apperr.NotFound("User not found")
}

func (s *fakeUserStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if _, ok := s.users[user.Username]; ok {
		return domain.User{}, apperr.Conflict("Username or email already exists")
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.User{}, apperr.Conflict("Username or email already exists")
		}
	}
	if user.AvatarURL == "" {
		user.AvatarURL = domain.DefaultAvatarURL
	}
	if user.Role == "" {
		user.Role = "user"
	}
	user.CreatedAt = time.Now()
	s.users[user.Username] = user
	return user, nil
}

func (s *fakeUserStore) UpdateProfile(
	ctx context.Context,
	username string,
	name, avatarURL *string,
) (domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return domain.User{}, apperr.NotFound("User not found")
	}
	if name != nil {
		u.Name = *name
	}
	if avatarURL != nil {
		u.AvatarURL = *avatarURL
	}
	s.users[username] = u
	return u, nil
}

func (s *fakeUserStore) Delete(ctx context.Context, username string) error {
	if _, ok := s.users[username]; !ok {
		return apperr.NotFound("User not found")
	}
	delete(s.users, username)
	s.deleted = append(s.deleted, username)
	return nil
}

// asUser wraps a handler so requests carry an authenticated username, the
// way the auth middleware would set it.
func asUser(username string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r.WithContext(shared.WithUsername(r.Context(), username)))
	}
}
