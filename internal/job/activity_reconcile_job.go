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

// ActivityReconcileJob replays the ledger for every user whose score was
// touched since the last run and rewrites the rollup. Replay applies the
// zero clamp entry by entry, so a rollup that drifted from a missed event
// converges back to the ledger's truth.
type ActivityReconcileJob struct {
	activitySvc service.ActivityService
}

func NewActivityReconcileJob(activitySvc service.ActivityService) *ActivityReconcileJob {
	return &ActivityReconcileJob{activitySvc: activitySvc}
}

func (s *ActivityReconcileJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.ActivityReconcileLock, traceID, 10*time.Minute, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.ActivityReconcileLock, traceID)

	processingKey := consts.ActivityDirtyKey + ":processing"
	if err = redis.Rename(ctx, consts.ActivityDirtyKey, processingKey); err != nil {
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
		if _, err = s.activitySvc.ReplayScore(ctx, userID); err != nil {
			log.ErrorContext(ctx, "replay activity score error", "err", err, "user_id", userID)
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete dirty set error", "err", err)
	}

	if len(set) > 0 {
		if err = redis.DeleteKey(ctx, consts.LeaderboardKey); err != nil {
			log.ErrorContext(ctx, "drop leaderboard cache error", "err", err)
		}
	}

	log.InfoContext(ctx, "activity score reconcile done", "users", len(set))
}
