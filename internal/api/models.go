package api

// Request payloads. Pointer fields distinguish absent from zero values
// where the contract needs it.

// CreateTopicRequest is the payload for POST /api/topics.
type CreateTopicRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CreateArticleRequest is the payload for POST /api/articles. The author is
// always the authenticated user.
type CreateArticleRequest struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Body          string `json:"body"`
	ArticleImgURL string `json:"article_img_url"`
}

// UpdateBodyRequest is the payload for the body-replacement endpoints.
type UpdateBodyRequest struct {
	Body string `json:"body"`
}

// VoteRequest is the payload for the vote-delta endpoints.
type VoteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// CreateCommentRequest is the payload for POST /api/articles/{article_id}/comments.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// UpdateProfileRequest is the payload for PATCH /api/users/{username}.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateAvatarRequest is the payload for PUT /api/users/{username}/avatar.
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url"`
}

// SignupRequest is the payload for POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the trimmed user representation returned by signup and login.
type AuthUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// AuthResponse is the successful response for signup and login.
type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}
