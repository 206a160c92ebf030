package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive numeric path parameter. On failure it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidID, "invalid "+name, gin.H{"value": raw})
		return 0, false
	}
	return uint(id), true
}
