package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"Stride/internal/pkg/util"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetMe returns the caller's account with its profile variant.
func (s *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetUint64("user_id")

	user, err := s.userSvc.GetUserWithProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	user, err := s.userSvc.GetUserWithProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var updateDTO dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.UpdateUser(c.Request.Context(), userID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
