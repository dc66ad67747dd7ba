package kafka

import (
	"Stride/internal/pkg/consts"
	"Stride/internal/pkg/es"
	"Stride/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
)

// UsersHandler keeps the Elasticsearch discovery index and the user home
// cache in step with the users table. The canal event timestamp is used as
// the external version so stale updates lose.
type UsersHandler struct {
	userESRepo es.UserRepo
}

func NewUsersHandler(userESRepo es.UserRepo) *UsersHandler {
	return &UsersHandler{userESRepo: userESRepo}
}

func (s *UsersHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("users consumer setup")
	return nil
}

func (s *UsersHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("users consumer cleanup")
	return nil
}

func (s *UsersHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("users consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("users process batch error", "err", err)
		return err
	}
	log.Info("users consume claim end")
	return nil
}

func (s *UsersHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "users")
	if err != nil || canalMsg == nil {
		return nil
	}

	for _, row := range canalMsg.Data {
		userID := StrToUint64(row["id"])
		if userID == 0 {
			continue
		}

		if canalMsg.Type == consts.DELETE {
			if err := s.userESRepo.DeleteUser(ctx, userID); err != nil {
				return err
			}
		} else {
			username, _ := row["username"].(string)
			userType, _ := row["user_type"].(string)
			doc := &es.UserES{
				ID:            userID,
				Username:      username,
				UserType:      userType,
				FollowerCount: StrToInt64(row["follower_count"]),
			}
			if err := s.userESRepo.IndexUser(ctx, doc, canalMsg.ES); err != nil {
				return err
			}
		}

		// home info cache is rebuilt lazily on next read
		if err := redis.DeleteKey(ctx, consts.UserHomeInfoKey+strconv.FormatUint(userID, 10)); err != nil {
			log.Warn("Failed to drop user home cache", "err", err, "user_id", userID)
		}
	}

	return nil
}
