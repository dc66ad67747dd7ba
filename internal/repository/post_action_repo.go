package repository

import (
	"Stride/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostActionRepo interface {
	GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error)
	AddLike(ctx context.Context, like *model.Like) (bool, error)
	RemoveLike(ctx context.Context, userID, postID uint64) (bool, error)
	AddComment(ctx context.Context, comment *model.PostComment) error
	GetComment(ctx context.Context, id uint64) (*model.PostComment, error)
	RemoveComment(ctx context.Context, id uint64, postID uint64) error
	GetCommentsByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db: db}
}

func (s *PostActionRepoImpl) GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error) {
	like := &model.Like{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return like, nil
}

// AddLike inserts the like and bumps the post counter together. The composite
// primary key makes repeated likes a no-op, so the counter moves at most once
// per (user, post).
func (s *PostActionRepoImpl) AddLike(ctx context.Context, like *model.Like) (bool, error) {
	added := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		added = true
		return tx.Model(&model.Post{}).
			Where("id = ?", like.PostID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (s *PostActionRepoImpl) RemoveLike(ctx context.Context, userID, postID uint64) (bool, error) {
	removed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (s *PostActionRepoImpl) AddComment(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

func (s *PostActionRepoImpl) GetComment(ctx context.Context, id uint64) (*model.PostComment, error) {
	comment := &model.PostComment{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = 0", id).
		First(comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *PostActionRepoImpl) RemoveComment(ctx context.Context, id uint64, postID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.PostComment{}).
			Where("id = ? AND is_deleted = 0", id).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("comments_count", gorm.Expr("GREATEST(comments_count - 1, 0)")).Error
	})
}

func (s *PostActionRepoImpl) GetCommentsByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error) {
	var comments []*model.PostComment
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND is_deleted = 0", postID).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}
