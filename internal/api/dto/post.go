package dto

import "time"

// CreatePostDTO publishes a post.
type CreatePostDTO struct {
	Content  string  `json:"content" binding:"required" validate:"min=1,max=5000"`
	MediaRef *string `json:"media_ref,omitempty" validate:"omitempty,max=512"`
	Privacy  string  `json:"privacy" validate:"omitempty,oneof=public followers private"`
	Tags     *string `json:"tags,omitempty"`
}

// UpdatePostDTO edits content or privacy.
type UpdatePostDTO struct {
	Content *string `json:"content,omitempty" validate:"omitempty,min=1,max=5000"`
	Privacy *string `json:"privacy,omitempty" validate:"omitempty,oneof=public followers private"`
	Tags    *string `json:"tags,omitempty"`
}

// PostDTO is a post with its author summary.
type PostDTO struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	Username      string    `json:"username"`
	Content       string    `json:"content"`
	MediaRef      *string   `json:"media_ref,omitempty"`
	Privacy       string    `json:"privacy"`
	Tags          *string   `json:"tags,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	Liked         bool      `json:"liked"`
	CreatedAt     time.Time `json:"created_at"`
}
