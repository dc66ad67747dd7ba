package dto

import "time"

// RegisterDTO registers an externally-authenticated identity.
type RegisterDTO struct {
	ExternalID string  `json:"external_id" binding:"required" validate:"min=1,max=128"`
	Username   string  `json:"username" binding:"required" validate:"min=3,max=50"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	UserType   string  `json:"user_type" binding:"required" validate:"oneof=individual gym brand"`
}

// LoginDTO exchanges an external identity for a session token.
type LoginDTO struct {
	ExternalID string `json:"external_id" binding:"required" validate:"min=1,max=128"`
}

// TokenDTO carries the issued session token.
type TokenDTO struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"user_id"`
	UserType string `json:"user_type"`
}

// UserDTO is the public shape of an account.
type UserDTO struct {
	ID                  uint64     `json:"id"`
	Username            string     `json:"username"`
	Email               *string    `json:"email,omitempty"`
	UserType            string     `json:"user_type"`
	FollowerCount       int64      `json:"follower_count"`
	FollowingCount      int64      `json:"following_count"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
}

// UpdateUserDTO updates mutable account fields.
type UpdateUserDTO struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}
