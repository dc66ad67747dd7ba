package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/pkg/consts"
	"Stride/internal/pkg/redis"
	"Stride/internal/repository"
	"context"
	"strconv"
	"time"
)

type UserFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FollowEntryDTO, error)
	GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FollowEntryDTO, error)
	GetFollowStats(ctx context.Context, userID uint64) (*dto.FollowStatsDTO, error)
	RecountUser(ctx context.Context, userID uint64) (*dto.FollowStatsDTO, error)
}

type UserFollowServiceImpl struct {
	userRepo       repository.UserRepo
	userFollowRepo repository.UserFollowRepo
}

func NewUserFollowService(userRepo repository.UserRepo, userFollowRepo repository.UserFollowRepo) UserFollowService {
	return &UserFollowServiceImpl{userRepo: userRepo, userFollowRepo: userFollowRepo}
}

// Follow creates the edge and bumps both counters. The repo insert is the
// arbiter under concurrency: of N racing identical follows exactly one
// creates the edge, the rest surface as already-following.
func (s *UserFollowServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetUserById(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	created, err := s.userFollowRepo.CreateFollowWithCounters(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return err
	}
	if !created {
		return ErrAlreadyFollowing
	}
	return nil
}

func (s *UserFollowServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrFollowSelf
	}

	deleted, err := s.userFollowRepo.DeleteFollowWithCounters(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFollowing
	}
	return nil
}

func (s *UserFollowServiceImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	edge, err := s.userFollowRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	return edge != nil, nil
}

func (s *UserFollowServiceImpl) GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FollowEntryDTO, error) {
	key := consts.UserFollowerKey + strconv.FormatUint(userID, 10)
	if edges, ok := s.edgesFromCache(ctx, key, true, limit, offset); ok {
		return s.hydrateEntries(ctx, edges, true)
	}

	edges, err := s.userFollowRepo.GetUserFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.hydrateEntries(ctx, edges, true)
}

func (s *UserFollowServiceImpl) GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FollowEntryDTO, error) {
	key := consts.UserFollowingKey + strconv.FormatUint(userID, 10)
	if edges, ok := s.edgesFromCache(ctx, key, false, limit, offset); ok {
		return s.hydrateEntries(ctx, edges, false)
	}

	edges, err := s.userFollowRepo.GetUserFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.hydrateEntries(ctx, edges, false)
}

// edgesFromCache serves a page from the CDC-mirrored zset. An empty window,
// a window past the cache cap or any decode hiccup is a miss and the caller
// goes to the edge table instead.
func (s *UserFollowServiceImpl) edgesFromCache(ctx context.Context, key string, followerSide bool, limit, offset int) ([]*model.UserFollow, bool) {
	if limit <= 0 || offset+limit > consts.FollowCacheCap {
		return nil, false
	}
	zs, err := redis.ZRevRangeWithScores(ctx, key, int64(offset), int64(offset+limit-1))
	if err != nil || len(zs) == 0 {
		return nil, false
	}

	edges := make([]*model.UserFollow, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			return nil, false
		}
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			return nil, false
		}
		edge := &model.UserFollow{CreatedAt: time.Unix(int64(z.Score), 0)}
		if followerSide {
			edge.FollowerID = id
		} else {
			edge.FollowingID = id
		}
		edges = append(edges, edge)
	}
	return edges, true
}

// hydrateEntries joins edges against the users table. followerSide selects
// which end of each edge is the "other" account.
func (s *UserFollowServiceImpl) hydrateEntries(ctx context.Context, edges []*model.UserFollow, followerSide bool) ([]*dto.FollowEntryDTO, error) {
	if len(edges) == 0 {
		return []*dto.FollowEntryDTO{}, nil
	}

	ids := make([]uint64, 0, len(edges))
	for _, edge := range edges {
		if followerSide {
			ids = append(ids, edge.FollowerID)
		} else {
			ids = append(ids, edge.FollowingID)
		}
	}

	users, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	entries := make([]*dto.FollowEntryDTO, 0, len(edges))
	for _, edge := range edges {
		id := edge.FollowingID
		if followerSide {
			id = edge.FollowerID
		}
		user, ok := byID[id]
		if !ok {
			// edge to a vanished account, skip
			continue
		}
		entries = append(entries, &dto.FollowEntryDTO{
			UserID:     user.ID,
			Username:   user.Username,
			UserType:   user.UserType,
			FollowedAt: edge.CreatedAt,
		})
	}
	return entries, nil
}

func (s *UserFollowServiceImpl) GetFollowStats(ctx context.Context, userID uint64) (*dto.FollowStatsDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.FollowStatsDTO{
		UserID:         user.ID,
		FollowerCount:  user.FollowerCount,
		FollowingCount: user.FollowingCount,
	}, nil
}

// RecountUser recomputes both counters from the edge table and writes them
// back, returning the fresh values. Shared by the repair endpoint and the
// nightly reconcile job.
func (s *UserFollowServiceImpl) RecountUser(ctx context.Context, userID uint64) (*dto.FollowStatsDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followers, err := s.userFollowRepo.GetUserFollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.userFollowRepo.GetUserFollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = s.userRepo.UpdateUserFollowCount(ctx, userID, followers, following); err != nil {
		return nil, err
	}
	return &dto.FollowStatsDTO{
		UserID:         userID,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}
