package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONRetryable marks an error the client may retry wholesale, e.g. a failed
// stats fan-out.
func JSONRetryable(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message, "retryable": true})
}
