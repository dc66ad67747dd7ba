package dto

import "time"

// FollowDTO targets another account.
type FollowDTO struct {
	UserID uint64 `json:"user_id" binding:"required"`
}

// FollowEntryDTO is one row in a follower or following list.
type FollowEntryDTO struct {
	UserID     uint64    `json:"user_id"`
	Username   string    `json:"username"`
	UserType   string    `json:"user_type"`
	FollowedAt time.Time `json:"followed_at"`
}

// FollowStatsDTO carries the denormalized counters.
type FollowStatsDTO struct {
	UserID         uint64 `json:"user_id"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
}
