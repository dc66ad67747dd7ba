package repository

import (
	"Stride/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainingRequestRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.TrainingRequest, error)
	GetByPair(ctx context.Context, requesterID, trainerID uint64) (*model.TrainingRequest, error)
	Create(ctx context.Context, req *model.TrainingRequest) (bool, error)
	UpdateStatus(ctx context.Context, id uint64, fromStatus, toStatus string) (bool, error)
	GetByTrainer(ctx context.Context, trainerID uint64, status string, limit, offset int) ([]*model.TrainingRequest, error)
	GetByRequester(ctx context.Context, requesterID uint64, limit, offset int) ([]*model.TrainingRequest, error)
}

type TrainingRequestRepoImpl struct {
	db *gorm.DB
}

func NewTrainingRequestRepo(db *gorm.DB) TrainingRequestRepo {
	return &TrainingRequestRepoImpl{db: db}
}

func (s *TrainingRequestRepoImpl) GetByID(ctx context.Context, id uint64) (*model.TrainingRequest, error) {
	req := &model.TrainingRequest{}
	result := s.db.WithContext(ctx).First(req, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return req, nil
}

func (s *TrainingRequestRepoImpl) GetByPair(ctx context.Context, requesterID, trainerID uint64) (*model.TrainingRequest, error) {
	req := &model.TrainingRequest{}
	result := s.db.WithContext(ctx).
		Where("requester_id = ? AND trainer_id = ?", requesterID, trainerID).
		First(req)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return req, nil
}

// Create inserts the request; the unique (requester, trainer) index absorbs
// concurrent duplicates. Returns false when the pair already has a request.
func (s *TrainingRequestRepoImpl) Create(ctx context.Context, req *model.TrainingRequest) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(req)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateStatus moves a request between states with a compare-and-set on the
// current status, so two concurrent decisions cannot both win.
func (s *TrainingRequestRepoImpl) UpdateStatus(ctx context.Context, id uint64, fromStatus, toStatus string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.TrainingRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *TrainingRequestRepoImpl) GetByTrainer(ctx context.Context, trainerID uint64, status string, limit, offset int) ([]*model.TrainingRequest, error) {
	var reqs []*model.TrainingRequest
	query := s.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	result := query.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&reqs)
	if result.Error != nil {
		return nil, result.Error
	}
	return reqs, nil
}

func (s *TrainingRequestRepoImpl) GetByRequester(ctx context.Context, requesterID uint64, limit, offset int) ([]*model.TrainingRequest, error) {
	var reqs []*model.TrainingRequest
	result := s.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&reqs)
	if result.Error != nil {
		return nil, result.Error
	}
	return reqs, nil
}
