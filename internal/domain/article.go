package domain

import (
	"strings"
	"time"

	"nc-news/internal/apperr"
)

// DefaultArticleImageURL is applied when an article is posted without an
// image URL.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a posted article. CommentCount is derived from the comments
// table, never stored. Body is omitted from list responses, where the list
// query does not select it.
type Article struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// articleSortColumns is the allow-list for the sort_by query parameter.
// comment_count is a virtual column computed by the list query.
var articleSortColumns = map[string]bool{
	"article_id":    true,
	"title":         true,
	"topic":         true,
	"author":        true,
	"created_at":    true,
	"votes":         true,
	"comment_count": true,
}

// ValidateArticleSort checks sort_by against the column allow-list and
// order against asc/desc (case-insensitive). It returns the normalized
// lowercase order.
func ValidateArticleSort(sortBy, order string) (string, string, error) {
	if !articleSortColumns[sortBy] {
		return "", "", apperr.BadRequest("")
	}

	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return "", "", apperr.BadRequest("")
	}

	return sortBy, order, nil
}
