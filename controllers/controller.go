package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Edsonffff/catering-new/pkg/resp"
)

// pathID reads the :id param; responds 400 itself when it is not a number.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
