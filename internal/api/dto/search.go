package dto

// SearchUserDTO is one discovery result.
type SearchUserDTO struct {
	ID            uint64 `json:"id"`
	Username      string `json:"username"`
	UserType      string `json:"user_type"`
	FollowerCount int64  `json:"follower_count"`
}
