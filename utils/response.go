package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a success envelope in the gateway format
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a failure envelope; err is only logged by the caller, the
// client sees message
func JSONError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
		"data":    nil,
	})
}
