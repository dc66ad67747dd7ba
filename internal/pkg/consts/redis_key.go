package consts

const (
	UserHomeInfoKey       = "user:home:info:"
	UserFollowerKey       = "user:follower:"
	UserFollowingKey      = "user:following:"
	UserFollowDirtyKey    = "user:follow:dirty"
	ActivityDirtyKey      = "activity:score:dirty"
	LeaderboardKey        = "activity:leaderboard"
)

const (
	FollowRecountLock     = "lock:follow:recount:"
	ActivityReconcileLock = "lock:activity:reconcile:"
)
