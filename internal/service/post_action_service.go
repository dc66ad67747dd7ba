package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/repository"
	"context"
	"time"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeResultDTO, error)
	AddComment(ctx context.Context, userID, postID uint64, create *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	GetComments(ctx context.Context, postID uint64, limit, offset int) ([]*dto.CommentDTO, error)
}

type PostActionServiceImpl struct {
	userRepo        repository.UserRepo
	postRepo        repository.PostRepo
	postActionRepo  repository.PostActionRepo
	activityService ActivityService
}

func NewPostActionService(userRepo repository.UserRepo, postRepo repository.PostRepo, postActionRepo repository.PostActionRepo, activityService ActivityService) PostActionService {
	return &PostActionServiceImpl{
		userRepo:        userRepo,
		postRepo:        postRepo,
		postActionRepo:  postActionRepo,
		activityService: activityService,
	}
}

// ToggleLike flips the like state for (user, post). Both directions are
// idempotent under races: the composite key arbitrates the insert, the
// delete is a no-op when another toggle got there first.
func (s *PostActionServiceImpl) ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeResultDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	existing, err := s.postActionRepo.GetLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	liked := false
	if existing == nil {
		added, err := s.postActionRepo.AddLike(ctx, &model.Like{
			UserID:    userID,
			PostID:    postID,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return nil, err
		}
		liked = true
		if added && post.UserID != userID {
			_, _ = s.activityService.RecordActivity(ctx, &dto.RecordActivityDTO{
				UserID:      post.UserID,
				Kind:        model.ActivityCommunityInteraction,
				Points:      1,
				Description: "post liked",
				RelatedID:   &postID,
			})
		}
	} else {
		if _, err = s.postActionRepo.RemoveLike(ctx, userID, postID); err != nil {
			return nil, err
		}
	}

	fresh, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	count := 0
	if fresh != nil {
		count = fresh.LikesCount
	}
	return &dto.LikeResultDTO{
		PostID:     postID,
		Liked:      liked,
		LikesCount: count,
	}, nil
}

func (s *PostActionServiceImpl) AddComment(ctx context.Context, userID, postID uint64, create *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.PostComment{
		PostID:    postID,
		UserID:    userID,
		Content:   create.Content,
		CreatedAt: time.Now(),
	}
	if err = s.postActionRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		_, _ = s.activityService.RecordActivity(ctx, &dto.RecordActivityDTO{
			UserID:      post.UserID,
			Kind:        model.ActivityCommunityInteraction,
			Points:      2,
			Description: "post commented",
			RelatedID:   &postID,
		})
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := toCommentDTO(comment)
	if user != nil {
		item.Username = user.Username
	}
	return item, nil
}

// DeleteComment allows the comment author or the post author to remove it.
func (s *PostActionServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.postActionRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if comment.UserID != userID {
		post, err := s.postRepo.GetPostByID(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post == nil || post.UserID != userID {
			return ErrNotAuthorized
		}
	}

	return s.postActionRepo.RemoveComment(ctx, commentID, comment.PostID)
}

func (s *PostActionServiceImpl) GetComments(ctx context.Context, postID uint64, limit, offset int) ([]*dto.CommentDTO, error) {
	comments, err := s.postActionRepo.GetCommentsByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []*dto.CommentDTO{}, nil
	}

	ids := make([]uint64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	users, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	out := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item := toCommentDTO(c)
		item.Username = names[c.UserID]
		out = append(out, item)
	}
	return out, nil
}

func toCommentDTO(c *model.PostComment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
