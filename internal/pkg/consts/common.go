package consts

const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// FollowCacheCap bounds the follower/following zsets mirrored from CDC;
// windows past the cap always come from the database.
const FollowCacheCap = 1000
