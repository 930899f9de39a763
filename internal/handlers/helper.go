package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseUintParam extracts and validates a numeric path parameter.
// Writes a 400 response and returns 0 when the value is not a positive integer.
func parseUintParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name + " parameter",
			Details: "must be a positive integer",
		})
		return 0
	}
	return uint(value)
}

// parseIntQuery returns the query parameter as an int, or the default when
// absent or malformed.
func parseIntQuery(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// parseBoolQueryPtr returns a pointer to the parsed boolean query parameter,
// or nil when the parameter is absent or malformed.
func parseBoolQueryPtr(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
