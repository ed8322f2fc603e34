package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tvhub/pkg/response"
)

// parseIDParam reads a numeric path parameter, answering 400 itself when
// the value is not a positive integer.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
