package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultTierCount = 10
	maxTierCount     = 50
)

func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return ""
	}
	return idStr
}

// parseTierCount reads a per-difficulty count query parameter. Missing
// or unparsable values fall back to the default; the result is clamped
// to [0, maxTierCount].
func parseTierCount(raw string) int {
	count := defaultTierCount
	if raw != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			count = parsed
		}
	}
	if count < 0 {
		return 0
	}
	if count > maxTierCount {
		return maxTierCount
	}
	return count
}
