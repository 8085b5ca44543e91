package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 100 // Default page size
	maxLimit     = 100 // Upper bound enforced at the HTTP boundary
)

// pagination reads skip/limit; invalid values fall back to the defaults
func pagination(c *gin.Context) (offset, limit int) {
	limit = defaultLimit
	if s := c.Query("skip"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			offset = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = min(v, maxLimit)
		}
	}
	return offset, limit
}

// idParam parses a positive numeric path parameter
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
