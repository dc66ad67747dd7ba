package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"Stride/internal/pkg/util"
	"Stride/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type IMHandler struct {
	imSvc service.IMService
}

func NewIMHandler(imSvc service.IMService) *IMHandler {
	return &IMHandler{imSvc: imSvc}
}

func (s *IMHandler) SendMessage(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var sendDTO dto.SendMessageDTO
	if err := c.ShouldBindJSON(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}

	msg, err := s.imSvc.SendMessage(c.Request.Context(), userID, &sendDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}

func (s *IMHandler) GetConversations(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	convs, err := s.imSvc.GetConversations(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, convs)
}

// GetHistory pages backwards through a conversation; last_seq is the
// oldest seq already loaded, 0 for the first page.
func (s *IMHandler) GetHistory(c *gin.Context) {
	userID := c.GetUint64("user_id")
	conversationID, ok := pathID(c, "conversation_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	lastSeq, _ := strconv.ParseUint(c.DefaultQuery("last_seq", "0"), 10, 64)
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	msgs, err := s.imSvc.GetHistory(c.Request.Context(), userID, conversationID, lastSeq, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msgs)
}

// GetNewMessages pages forwards from after_seq, for polling clients.
func (s *IMHandler) GetNewMessages(c *gin.Context) {
	userID := c.GetUint64("user_id")
	conversationID, ok := pathID(c, "conversation_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	afterSeq, _ := strconv.ParseUint(c.DefaultQuery("after_seq", "0"), 10, 64)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}

	msgs, err := s.imSvc.GetNewMessages(c.Request.Context(), userID, conversationID, afterSeq, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msgs)
}

func (s *IMHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	conversationID, ok := pathID(c, "conversation_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var markDTO dto.MarkReadDTO
	if err := c.ShouldBindJSON(&markDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.imSvc.MarkRead(c.Request.Context(), userID, conversationID, markDTO.Seq); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
