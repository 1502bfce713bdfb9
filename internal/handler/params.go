package handler

import (
	"strconv"

	"restaurant-forum-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(id), nil
}

// parseUintQuery reads an optional non-negative integer query parameter.
func parseUintQuery(c *gin.Context, name string) uint {
	value, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

// parseIntQuery reads an optional integer query parameter with a default.
func parseIntQuery(c *gin.Context, name string, def int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value <= 0 {
		return def
	}
	return value
}
