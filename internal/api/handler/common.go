package handler

import (
	"Stride/internal/pkg/consts"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getPagination converts page/page_size query params to limit/offset.
func getPagination(c *gin.Context) (int, int) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", strconv.Itoa(consts.DefaultPageSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}
	return pageSize, (page - 1) * pageSize
}

// pathID parses a required uint64 path parameter.
func pathID(c *gin.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
