package dto

import "time"

// RecordActivityDTO appends one ledger entry. UserID is stamped from the
// authenticated caller, never read from the request body.
type RecordActivityDTO struct {
	UserID      uint64  `json:"-"`
	Kind        string  `json:"kind" binding:"required"`
	Points      int64   `json:"points"`
	Description string  `json:"description" validate:"max=255"`
	RelatedID   *uint64 `json:"related_id,omitempty"`
	Metadata    *string `json:"metadata,omitempty"`
}

// ActivityTransactionDTO is one ledger row.
type ActivityTransactionDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Kind        string    `json:"kind"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	RelatedID   *uint64   `json:"related_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeaderboardEntryDTO is one leaderboard row.
type LeaderboardEntryDTO struct {
	Position      int    `json:"position"`
	UserID        uint64 `json:"user_id"`
	Username      string `json:"username"`
	ActivityScore int64  `json:"activity_score"`
}

// RankingDTO is a single user's place on the board.
type RankingDTO struct {
	UserID        uint64 `json:"user_id"`
	Position      int64  `json:"position"`
	TotalUsers    int64  `json:"total_users"`
	ActivityScore int64  `json:"activity_score"`
}
