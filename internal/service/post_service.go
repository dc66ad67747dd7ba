package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/repository"
	"context"
	"time"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, create *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDTO, error)
	GetUserPosts(ctx context.Context, viewerID, userID uint64, limit, offset int) ([]*dto.PostDTO, error)
	GetFeed(ctx context.Context, viewerID uint64, limit, offset int) ([]*dto.PostDTO, error)
	GetPublicFeed(ctx context.Context, limit, offset int) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, update *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, userID, postID uint64) error
}

type PostServiceImpl struct {
	userRepo        repository.UserRepo
	postRepo        repository.PostRepo
	postActionRepo  repository.PostActionRepo
	userFollowRepo  repository.UserFollowRepo
	activityService ActivityService
}

func NewPostService(userRepo repository.UserRepo, postRepo repository.PostRepo, postActionRepo repository.PostActionRepo, userFollowRepo repository.UserFollowRepo, activityService ActivityService) PostService {
	return &PostServiceImpl{
		userRepo:        userRepo,
		postRepo:        postRepo,
		postActionRepo:  postActionRepo,
		userFollowRepo:  userFollowRepo,
		activityService: activityService,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, create *dto.CreatePostDTO) (*dto.PostDTO, error) {
	privacy := create.Privacy
	if privacy == "" {
		privacy = model.PostPrivacyPublic
	}
	if !model.ValidPostPrivacy(privacy) {
		return nil, ErrParamInvalid
	}

	post := &model.Post{
		UserID:    userID,
		Content:   create.Content,
		MediaRef:  create.MediaRef,
		Privacy:   privacy,
		Tags:      create.Tags,
		CreatedAt: time.Now(),
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	// posting earns activity points; the post stands if scoring fails
	_, _ = s.activityService.RecordActivity(ctx, &dto.RecordActivityDTO{
		UserID:      userID,
		Kind:        model.ActivityWorkoutPosted,
		Points:      10,
		Description: "posted a workout",
		RelatedID:   &post.ID,
	})

	return s.toPostDTO(ctx, 0, post)
}

// canView applies the privacy gate. Authors always see their own posts;
// followers-only posts need an edge from the viewer to the author.
func (s *PostServiceImpl) canView(ctx context.Context, viewerID uint64, post *model.Post) (bool, error) {
	if post.UserID == viewerID {
		return true, nil
	}
	switch post.Privacy {
	case model.PostPrivacyPublic:
		return true, nil
	case model.PostPrivacyFollowers:
		if viewerID == 0 {
			return false, nil
		}
		edge, err := s.userFollowRepo.GetUserFollow(ctx, viewerID, post.UserID)
		if err != nil {
			return false, err
		}
		return edge != nil, nil
	default:
		return false, nil
	}
}

func (s *PostServiceImpl) GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	visible, err := s.canView(ctx, viewerID, post)
	if err != nil {
		return nil, err
	}
	if !visible {
		// hidden posts are indistinguishable from absent ones
		return nil, ErrPostNotFound
	}

	return s.toPostDTO(ctx, viewerID, post)
}

func (s *PostServiceImpl) GetUserPosts(ctx context.Context, viewerID, userID uint64, limit, offset int) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		visible, err := s.canView(ctx, viewerID, post)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}
		item, err := s.toPostDTO(ctx, viewerID, post)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *PostServiceImpl) GetFeed(ctx context.Context, viewerID uint64, limit, offset int) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetFollowingFeed(ctx, viewerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, viewerID, posts)
}

func (s *PostServiceImpl) GetPublicFeed(ctx context.Context, limit, offset int) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPublicFeed(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, 0, posts)
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, update *dto.UpdatePostDTO) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotAuthorized
	}

	fields := map[string]interface{}{}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Privacy != nil {
		if !model.ValidPostPrivacy(*update.Privacy) {
			return ErrParamInvalid
		}
		fields["privacy"] = *update.Privacy
	}
	if update.Tags != nil {
		fields["tags"] = *update.Tags
	}
	if len(fields) == 0 {
		return ErrProfileNoChanges
	}

	return s.postRepo.UpdatePost(ctx, postID, fields)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotAuthorized
	}
	return s.postRepo.SoftDeletePost(ctx, postID)
}

func (s *PostServiceImpl) toPostDTO(ctx context.Context, viewerID uint64, post *model.Post) (*dto.PostDTO, error) {
	item := &dto.PostDTO{
		ID:            post.ID,
		UserID:        post.UserID,
		Content:       post.Content,
		MediaRef:      post.MediaRef,
		Privacy:       post.Privacy,
		Tags:          post.Tags,
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		CreatedAt:     post.CreatedAt,
	}

	author, err := s.userRepo.GetUserById(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	if author != nil {
		item.Username = author.Username
	}

	if viewerID != 0 {
		like, err := s.postActionRepo.GetLike(ctx, viewerID, post.ID)
		if err != nil {
			return nil, err
		}
		item.Liked = like != nil
	}
	return item, nil
}

func (s *PostServiceImpl) toPostDTOs(ctx context.Context, viewerID uint64, posts []*model.Post) ([]*dto.PostDTO, error) {
	out := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		item, err := s.toPostDTO(ctx, viewerID, post)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
