package domain

import "time"

// Comment is a comment on an article.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
