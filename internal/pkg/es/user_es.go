package es

// UserES is the discovery document for the user index.
type UserES struct {
	ID            uint64 `json:"id"`
	Username      string `json:"username"`
	UserType      string `json:"user_type"`
	FollowerCount int64  `json:"follower_count"`
}
