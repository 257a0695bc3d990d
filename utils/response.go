package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse writes data as the bare response body, the shape the auction client decodes
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
