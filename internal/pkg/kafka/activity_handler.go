package kafka

import (
	"Stride/internal/pkg/consts"
	"Stride/internal/pkg/redis"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ActivityHandler watches the append-only ledger table. Each new entry
// marks its user dirty for score reconciliation and drops the cached
// leaderboard so the next read rebuilds it.
type ActivityHandler struct {
}

func NewActivityHandler() *ActivityHandler {
	return &ActivityHandler{}
}

func (s *ActivityHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("activity consumer setup")
	return nil
}

func (s *ActivityHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("activity consumer cleanup")
	return nil
}

func (s *ActivityHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("activity consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("activity process batch error", "err", err)
		return err
	}
	log.Info("activity consume claim end")
	return nil
}

func (s *ActivityHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "activity_transactions")
	if err != nil || canalMsg == nil {
		return nil
	}

	// the ledger is append-only, only inserts matter
	if canalMsg.Type != consts.INSERT {
		return nil
	}

	rdb := redis.GetRdbClient()
	pipe := rdb.Pipeline()

	var affectedUIDs []interface{}
	for _, row := range canalMsg.Data {
		userID := StrToUint64(row["user_id"])
		if userID == 0 {
			continue
		}
		affectedUIDs = append(affectedUIDs, userID)
	}

	if len(affectedUIDs) > 0 {
		pipe.SAdd(ctx, consts.ActivityDirtyKey, affectedUIDs...)
		pipe.Del(ctx, consts.LeaderboardKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Error("Redis Pipeline Exec failed", "err", err, "msg_key", string(msg.Key))
		return err
	}

	return nil
}
