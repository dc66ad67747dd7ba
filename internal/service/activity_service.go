package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/pkg/consts"
	"Stride/internal/pkg/redis"
	"Stride/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

const LeaderboardSize = 100
const leaderboardTTL = 30 * time.Second

type ActivityService interface {
	RecordActivity(ctx context.Context, record *dto.RecordActivityDTO) (*dto.ActivityTransactionDTO, error)
	GetHistory(ctx context.Context, userID uint64, limit, offset int) ([]*dto.ActivityTransactionDTO, error)
	GetLeaderboard(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error)
	GetRanking(ctx context.Context, userID uint64) (*dto.RankingDTO, error)
	ReplayScore(ctx context.Context, userID uint64) (int64, error)
}

type ActivityServiceImpl struct {
	userRepo     repository.UserRepo
	profileRepo  repository.ProfileRepo
	activityRepo repository.ActivityRepo
}

func NewActivityService(userRepo repository.UserRepo, profileRepo repository.ProfileRepo, activityRepo repository.ActivityRepo) ActivityService {
	return &ActivityServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
	}
}

// applyDelta is one replay step: the score never drops below zero, and the
// clamp applies per entry, not on the running sum.
func applyDelta(score, delta int64) int64 {
	score += delta
	if score < 0 {
		return 0
	}
	return score
}

// RecordActivity appends the ledger entry unconditionally, then folds the
// delta into the rollup. Only individual accounts carry a score; for
// everyone else the entry still lands in the ledger and the rollup step is
// skipped. An unknown kind is the only rejection.
func (s *ActivityServiceImpl) RecordActivity(ctx context.Context, record *dto.RecordActivityDTO) (*dto.ActivityTransactionDTO, error) {
	if !model.ValidActivityKind(record.Kind) {
		return nil, ErrInvalidActivityKind
	}

	now := time.Now()
	tx := &model.ActivityTransaction{
		UserID:      record.UserID,
		Kind:        record.Kind,
		Points:      record.Points,
		Description: record.Description,
		RelatedID:   record.RelatedID,
		Metadata:    record.Metadata,
		CreatedAt:   now,
	}
	if err := s.activityRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserById(ctx, record.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil && user.UserType == model.UserTypeIndividual {
		updated, err := s.profileRepo.ApplyScoreDelta(ctx, record.UserID, record.Points, now)
		if err != nil {
			return nil, err
		}
		if !updated {
			log.Warn("Activity recorded without profile rollup",
				"user_id", record.UserID, "kind", record.Kind)
		}
	}

	return toActivityDTO(tx), nil
}

func (s *ActivityServiceImpl) GetHistory(ctx context.Context, userID uint64, limit, offset int) ([]*dto.ActivityTransactionDTO, error) {
	txs, err := s.activityRepo.GetTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivityTransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toActivityDTO(tx))
	}
	return out, nil
}

// GetLeaderboard serves a prefix of the cached top list. The cache always
// holds the full top LeaderboardSize rows, so any smaller limit is a prefix
// of any larger one.
func (s *ActivityServiceImpl) GetLeaderboard(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	if limit <= 0 || limit > LeaderboardSize {
		limit = LeaderboardSize
	}

	var entries []*dto.LeaderboardEntryDTO
	cached, err := redis.GetValue(ctx, consts.LeaderboardKey)
	if err == nil && cached != "" {
		if err = json.Unmarshal([]byte(cached), &entries); err == nil {
			if limit < len(entries) {
				entries = entries[:limit]
			}
			return entries, nil
		}
	}

	entries, err = s.buildLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if err = redis.SetWithExpiration(ctx, consts.LeaderboardKey, string(data), leaderboardTTL); err != nil {
			log.Warn("Failed to cache leaderboard", "err", err)
		}
	}

	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *ActivityServiceImpl) buildLeaderboard(ctx context.Context) ([]*dto.LeaderboardEntryDTO, error) {
	profiles, err := s.profileRepo.GetRankedIndividuals(ctx, LeaderboardSize, 0)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []*dto.LeaderboardEntryDTO{}, nil
	}

	ids := make([]uint64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(profiles))
	for i, p := range profiles {
		entry := &dto.LeaderboardEntryDTO{
			Position:      i + 1,
			UserID:        p.UserID,
			ActivityScore: p.ActivityScore,
		}
		if user, ok := byID[p.UserID]; ok {
			entry.Username = user.Username
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetRanking reports one user's place on the board. Accounts without an
// individual profile have no ranking and get (nil, nil).
func (s *ActivityServiceImpl) GetRanking(ctx context.Context, userID uint64) (*dto.RankingDTO, error) {
	profile, err := s.profileRepo.GetIndividualProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	above, err := s.profileRepo.GetIndividualsAbove(ctx, profile)
	if err != nil {
		return nil, err
	}
	total, err := s.profileRepo.CountIndividuals(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.RankingDTO{
		UserID:        userID,
		Position:      above + 1,
		TotalUsers:    total,
		ActivityScore: profile.ActivityScore,
	}, nil
}

// ReplayScore recomputes the rollup from the full ledger in order and writes
// it back. Used by the reconcile job when an entry is suspected lost.
func (s *ActivityServiceImpl) ReplayScore(ctx context.Context, userID uint64) (int64, error) {
	ledger, err := s.activityRepo.GetLedgerForReplay(ctx, userID)
	if err != nil {
		return 0, err
	}

	var score int64
	lastUpdate := time.Now()
	for _, tx := range ledger {
		score = applyDelta(score, tx.Points)
		lastUpdate = tx.CreatedAt
	}

	if err = s.profileRepo.SetActivityScore(ctx, userID, score, lastUpdate); err != nil {
		return 0, err
	}
	return score, nil
}

func toActivityDTO(tx *model.ActivityTransaction) *dto.ActivityTransactionDTO {
	return &dto.ActivityTransactionDTO{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Kind:        tx.Kind,
		Points:      tx.Points,
		Description: tx.Description,
		RelatedID:   tx.RelatedID,
		CreatedAt:   tx.CreatedAt,
	}
}
