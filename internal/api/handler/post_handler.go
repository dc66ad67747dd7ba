package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"Stride/internal/pkg/util"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.CreatePostDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetUserPosts(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)

	posts, err := s.postSvc.GetUserPosts(c.Request.Context(), viewerID, userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetFeed serves posts from accounts the caller follows.
func (s *PostHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	posts, err := s.postSvc.GetFeed(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPublicFeed(c *gin.Context) {
	limit, offset := getPagination(c)

	posts, err := s.postSvc.GetPublicFeed(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdatePostDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
