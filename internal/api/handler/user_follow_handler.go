package handler

import (
	"Stride/internal/pkg/response"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	followingID, ok := pathID(c, "following_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userFollowSvc.Follow(c.Request.Context(), userID, followingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	followingID, ok := pathID(c, "following_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userFollowSvc.Unfollow(c.Request.Context(), userID, followingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) IsFollowing(c *gin.Context) {
	userID := c.GetUint64("user_id")
	followingID, ok := pathID(c, "following_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	following, err := s.userFollowSvc.IsFollowing(c.Request.Context(), userID, followingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"following": following})
}

func (s *UserFollowHandler) GetFollowers(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)

	followers, err := s.userFollowSvc.GetFollowers(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *UserFollowHandler) GetFollowing(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)

	following, err := s.userFollowSvc.GetFollowing(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, following)
}

func (s *UserFollowHandler) GetFollowStats(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	stats, err := s.userFollowSvc.GetFollowStats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// Recount recomputes the caller's counters from the edge table, a repair
// hatch for counters that drifted.
func (s *UserFollowHandler) Recount(c *gin.Context) {
	userID := c.GetUint64("user_id")

	stats, err := s.userFollowSvc.RecountUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
