package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"Stride/internal/pkg/util"
	"Stride/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// RecordActivity appends one ledger entry for the caller.
func (s *ActivityHandler) RecordActivity(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var recordDTO dto.RecordActivityDTO
	if err := c.ShouldBindJSON(&recordDTO); err != nil {
		response.Error(c, err)
		return
	}
	recordDTO.UserID = userID
	if err := util.ValidateDTO(&recordDTO); err != nil {
		response.Error(c, err)
		return
	}

	tx, err := s.activitySvc.RecordActivity(c.Request.Context(), &recordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tx)
}

func (s *ActivityHandler) GetHistory(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)

	history, err := s.activitySvc.GetHistory(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

func (s *ActivityHandler) GetLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(service.LeaderboardSize))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = service.LeaderboardSize
	}

	board, err := s.activitySvc.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}

// GetRanking returns the user's board position; data is null for accounts
// that carry no activity score.
func (s *ActivityHandler) GetRanking(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ranking, err := s.activitySvc.GetRanking(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ranking)
}
