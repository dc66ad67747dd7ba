package dto

import "time"

// CreateCommentDTO adds a comment to a post.
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// CommentDTO is one comment with its author summary.
type CommentDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResultDTO reports the outcome of a like toggle.
type LikeResultDTO struct {
	PostID     uint64 `json:"post_id"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likes_count"`
}
