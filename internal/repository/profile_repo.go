package repository

import (
	"Stride/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetIndividualProfile(ctx context.Context, userID uint64) (*model.IndividualProfile, error)
	GetGymProfile(ctx context.Context, userID uint64) (*model.GymProfile, error)
	GetBrandProfile(ctx context.Context, userID uint64) (*model.BrandProfile, error)
	CreateIndividualProfile(ctx context.Context, profile *model.IndividualProfile) error
	CreateGymProfile(ctx context.Context, profile *model.GymProfile) error
	CreateBrandProfile(ctx context.Context, profile *model.BrandProfile) error
	UpdateIndividualProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error
	UpdateGymProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error
	UpdateBrandProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error
	ApplyScoreDelta(ctx context.Context, userID uint64, delta int64, at time.Time) (bool, error)
	SetActivityScore(ctx context.Context, userID uint64, score int64, at time.Time) error
	GetRankedIndividuals(ctx context.Context, limit, offset int) ([]*model.IndividualProfile, error)
	CountIndividuals(ctx context.Context) (int64, error)
	GetIndividualsAbove(ctx context.Context, profile *model.IndividualProfile) (int64, error)
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db: db}
}

func (s *ProfileRepoImpl) GetIndividualProfile(ctx context.Context, userID uint64) (*model.IndividualProfile, error) {
	profile := &model.IndividualProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *ProfileRepoImpl) GetGymProfile(ctx context.Context, userID uint64) (*model.GymProfile, error) {
	profile := &model.GymProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *ProfileRepoImpl) GetBrandProfile(ctx context.Context, userID uint64) (*model.BrandProfile, error) {
	profile := &model.BrandProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *ProfileRepoImpl) CreateIndividualProfile(ctx context.Context, profile *model.IndividualProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

func (s *ProfileRepoImpl) CreateGymProfile(ctx context.Context, profile *model.GymProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

func (s *ProfileRepoImpl) CreateBrandProfile(ctx context.Context, profile *model.BrandProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

func (s *ProfileRepoImpl) UpdateIndividualProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.IndividualProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

func (s *ProfileRepoImpl) UpdateGymProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.GymProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

func (s *ProfileRepoImpl) UpdateBrandProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.BrandProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

// ApplyScoreDelta bumps the rollup in place, clamped at 0 on the way down.
// Returns false when no individual profile row exists for the user.
func (s *ProfileRepoImpl) ApplyScoreDelta(ctx context.Context, userID uint64, delta int64, at time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.IndividualProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"activity_score":       gorm.Expr("GREATEST(activity_score + ?, 0)", delta),
			"last_activity_update": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SetActivityScore overwrites the rollup, used by the reconcile job.
func (s *ProfileRepoImpl) SetActivityScore(ctx context.Context, userID uint64, score int64, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&model.IndividualProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"activity_score":       score,
			"last_activity_update": at,
		}).Error
}

// GetRankedIndividuals returns individual profiles in leaderboard order:
// higher score first, earlier last update breaks ties, then lower user id.
func (s *ProfileRepoImpl) GetRankedIndividuals(ctx context.Context, limit, offset int) ([]*model.IndividualProfile, error) {
	var profiles []*model.IndividualProfile
	result := s.db.WithContext(ctx).
		Order("activity_score DESC, last_activity_update ASC, user_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

func (s *ProfileRepoImpl) CountIndividuals(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.IndividualProfile{}).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetIndividualsAbove counts profiles that rank strictly ahead of the given
// one under the leaderboard ordering, so position = count + 1.
func (s *ProfileRepoImpl) GetIndividualsAbove(ctx context.Context, profile *model.IndividualProfile) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.IndividualProfile{}).
		Where("activity_score > ?"+
			" OR (activity_score = ? AND last_activity_update < ?)"+
			" OR (activity_score = ? AND last_activity_update = ? AND user_id < ?)",
			profile.ActivityScore,
			profile.ActivityScore, profile.LastActivityUpdate,
			profile.ActivityScore, profile.LastActivityUpdate, profile.UserID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
