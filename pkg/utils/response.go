package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-forum-backend/pkg/apperr"
)

// SuccessResponse sends the standard success envelope
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

// ErrorResponse translates a domain error into the standard error envelope
func ErrorResponse(c *gin.Context, err error) {
	c.JSON(apperr.StatusOf(err), gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// AbortWithError aborts the request chain with the standard error envelope
func AbortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.StatusOf(err), gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}
