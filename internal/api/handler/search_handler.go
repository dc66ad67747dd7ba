package handler

import (
	"Stride/internal/pkg/response"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// SearchUsers queries the discovery index by username, optionally filtered
// to one account kind.
func (s *SearchHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	userType := c.Query("user_type")
	limit, offset := getPagination(c)

	results, err := s.searchSvc.SearchUsers(c.Request.Context(), query, userType, offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, results)
}
