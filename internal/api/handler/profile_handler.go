package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"Stride/internal/pkg/util"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (s *ProfileHandler) CreateIndividualProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var profileDTO dto.IndividualProfileDTO
	if err := c.ShouldBindJSON(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.profileSvc.CreateIndividualProfile(c.Request.Context(), userID, &profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProfileHandler) CreateGymProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var profileDTO dto.GymProfileDTO
	if err := c.ShouldBindJSON(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.profileSvc.CreateGymProfile(c.Request.Context(), userID, &profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProfileHandler) CreateBrandProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var profileDTO dto.BrandProfileDTO
	if err := c.ShouldBindJSON(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.profileSvc.CreateBrandProfile(c.Request.Context(), userID, &profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProfileHandler) UpdateIndividualProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var profileDTO dto.IndividualProfileDTO
	if err := c.ShouldBindJSON(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.profileSvc.UpdateIndividualProfile(c.Request.Context(), userID, &profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProfileHandler) UpdateGymProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var profileDTO dto.GymProfileDTO
	if err := c.ShouldBindJSON(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.profileSvc.UpdateGymProfile(c.Request.Context(), userID, &profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProfileHandler) UpdateBrandProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var profileDTO dto.BrandProfileDTO
	if err := c.ShouldBindJSON(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&profileDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.profileSvc.UpdateBrandProfile(c.Request.Context(), userID, &profileDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
