package repository

import (
	"Stride/internal/model"
	"context"

	"gorm.io/gorm"
)

type ActivityRepo interface {
	CreateTransaction(ctx context.Context, tx *model.ActivityTransaction) error
	GetTransactionsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.ActivityTransaction, error)
	GetLedgerForReplay(ctx context.Context, userID uint64) ([]*model.ActivityTransaction, error)
	SumPointsByUser(ctx context.Context, userID uint64) (int64, error)
}

type ActivityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &ActivityRepoImpl{db: db}
}

func (s *ActivityRepoImpl) CreateTransaction(ctx context.Context, tx *model.ActivityTransaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

// GetTransactionsByUser lists the ledger newest first for display.
func (s *ActivityRepoImpl) GetTransactionsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.ActivityTransaction, error) {
	var txs []*model.ActivityTransaction
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&txs)
	if result.Error != nil {
		return nil, result.Error
	}
	return txs, nil
}

// GetLedgerForReplay returns the full ledger oldest first. Replay order
// matters: the score clamp at 0 is applied per step, not on the sum.
func (s *ActivityRepoImpl) GetLedgerForReplay(ctx context.Context, userID uint64) ([]*model.ActivityTransaction, error) {
	var txs []*model.ActivityTransaction
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&txs)
	if result.Error != nil {
		return nil, result.Error
	}
	return txs, nil
}

func (s *ActivityRepoImpl) SumPointsByUser(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	result := s.db.WithContext(ctx).
		Model(&model.ActivityTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&sum)
	if result.Error != nil {
		return 0, result.Error
	}
	return sum, nil
}
