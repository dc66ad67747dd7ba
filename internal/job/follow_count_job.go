package job

import (
	"Stride/internal/pkg/consts"
	"Stride/internal/pkg/logger"
	"Stride/internal/pkg/redis"
	"Stride/internal/pkg/util"
	"Stride/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// FollowCountJob drains the follow dirty set and recounts each touched
// user's counters from the edge table. Renaming the set first means edges
// changed mid-run land in a fresh dirty set for the next pass.
type FollowCountJob struct {
	userFollowSvc service.UserFollowService
}

func NewFollowCountJob(userFollowSvc service.UserFollowService) *FollowCountJob {
	return &FollowCountJob{userFollowSvc: userFollowSvc}
}

func (s *FollowCountJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.FollowRecountLock, traceID, 10*time.Minute, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.FollowRecountLock, traceID)

	processingKey := consts.UserFollowDirtyKey + ":processing"
	if err = redis.Rename(ctx, consts.UserFollowDirtyKey, processingKey); err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "err", err)
		return
	}

	set, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert set to int slice error", "err", err)
		return
	}

	for _, userID := range set {
		if _, err = s.userFollowSvc.RecountUser(ctx, userID); err != nil {
			log.ErrorContext(ctx, "recount follow counters error", "err", err, "user_id", userID)
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete dirty set error", "err", err)
	}

	log.InfoContext(ctx, "follow counter reconcile done", "users", len(set))
}
