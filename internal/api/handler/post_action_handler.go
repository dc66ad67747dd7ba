package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"Stride/internal/pkg/util"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	postActionSvc service.PostActionService
}

func NewPostActionHandler(postActionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{postActionSvc: postActionSvc}
}

// ToggleLike flips the caller's like on a post.
func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.postActionSvc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) AddComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var createDTO dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.postActionSvc.AddComment(c.Request.Context(), userID, postID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postActionSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)

	comments, err := s.postActionSvc.GetComments(c.Request.Context(), postID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
