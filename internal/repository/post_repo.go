package repository

import (
	"Stride/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error)
	GetPublicFeed(ctx context.Context, limit, offset int) ([]*model.Post, error)
	GetFollowingFeed(ctx context.Context, followerID uint64, limit, offset int) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, fields map[string]interface{}) error
	SoftDeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = 0", id).
		First(post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) GetPostsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = 0", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPublicFeed(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("privacy = ? AND is_deleted = 0", model.PostPrivacyPublic).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// GetFollowingFeed pulls public and followers-only posts from accounts the
// viewer follows, newest first.
func (s *PostRepoImpl) GetFollowingFeed(ctx context.Context, followerID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("user_id IN (?)",
			s.db.Model(&model.UserFollow{}).
				Select("following_id").
				Where("follower_id = ?", followerID)).
		Where("privacy IN ?", []string{model.PostPrivacyPublic, model.PostPrivacyFollowers}).
		Where("is_deleted = 0").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s *PostRepoImpl) SoftDeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
