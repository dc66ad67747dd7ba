package kafka

import (
	"Stride/internal/pkg/consts"
	"Stride/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	redisv9 "github.com/redis/go-redis/v9"
)

// UserFollowsHandler mirrors follow-edge changes into the Redis follower
// and following zsets, and marks touched users dirty so the reconcile job
// re-checks their counters against the edge table.
type UserFollowsHandler struct {
}

func NewUserFollowsHandler() *UserFollowsHandler {
	return &UserFollowsHandler{}
}

func (s *UserFollowsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("user follows consumer setup")
	return nil
}

func (s *UserFollowsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("user follows consumer cleanup")
	return nil
}

func (s *UserFollowsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("user-follows consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("user-follows process batch error", "err", err)
		return err
	}
	log.Info("user-follows consume claim end")
	return nil
}

func (s *UserFollowsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "user_follows")
	if err != nil || canalMsg == nil {
		return nil
	}

	rdb := redis.GetRdbClient()

	pipe := rdb.Pipeline()
	var affectedUIDs []interface{}

	for _, row := range canalMsg.Data {
		followerID := StrToUint64(row["follower_id"])
		followingID := StrToUint64(row["following_id"])
		affectedUIDs = append(affectedUIDs, followerID, followingID)

		fdrKey := consts.UserFollowerKey + strconv.FormatUint(followingID, 10)
		fngKey := consts.UserFollowingKey + strconv.FormatUint(followerID, 10)

		if canalMsg.Type == consts.INSERT {
			// zset score is the edge's own created_at so replays keep the
			// original follow order
			followedAt := float64(StrToUnix(row["created_at"]))
			pipe.ZAdd(ctx, fdrKey, redisv9.Z{Score: followedAt, Member: followerID})
			pipe.ZRemRangeByRank(ctx, fdrKey, 0, -(consts.FollowCacheCap + 1))
			pipe.ZAdd(ctx, fngKey, redisv9.Z{Score: followedAt, Member: followingID})
			pipe.ZRemRangeByRank(ctx, fngKey, 0, -(consts.FollowCacheCap + 1))
		} else if canalMsg.Type == consts.DELETE {
			pipe.ZRem(ctx, fdrKey, followerID)
			pipe.ZRem(ctx, fngKey, followingID)
		}
	}

	if len(affectedUIDs) > 0 {
		pipe.SAdd(ctx, consts.UserFollowDirtyKey, affectedUIDs...)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Error("Redis Pipeline Exec failed", "err", err, "msg_key", string(msg.Key))
		return err
	}

	return nil
}
