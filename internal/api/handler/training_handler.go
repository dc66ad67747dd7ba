package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"Stride/internal/pkg/util"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
)

type TrainingHandler struct {
	trainingSvc service.TrainingService
}

func NewTrainingHandler(trainingSvc service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingSvc: trainingSvc}
}

func (s *TrainingHandler) CreateRequest(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.CreateTrainingRequestDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	req, err := s.trainingSvc.CreateRequest(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, req)
}

func (s *TrainingHandler) DecideRequest(c *gin.Context) {
	userID := c.GetUint64("user_id")
	requestID, ok := pathID(c, "request_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var decideDTO dto.DecideTrainingRequestDTO
	if err := c.ShouldBindJSON(&decideDTO); err != nil {
		response.Error(c, err)
		return
	}

	req, err := s.trainingSvc.DecideRequest(c.Request.Context(), userID, requestID, decideDTO.Accept)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, req)
}

// GetIncoming lists requests aimed at the caller as trainer.
func (s *TrainingHandler) GetIncoming(c *gin.Context) {
	userID := c.GetUint64("user_id")
	status := c.Query("status")
	limit, offset := getPagination(c)

	reqs, err := s.trainingSvc.GetIncoming(c.Request.Context(), userID, status, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reqs)
}

// GetOutgoing lists requests the caller opened.
func (s *TrainingHandler) GetOutgoing(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	reqs, err := s.trainingSvc.GetOutgoing(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reqs)
}
