package domain

// Topic is a category that articles belong to. The slug is the primary
// identifier; topics are immutable once created.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
