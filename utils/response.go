package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. The request ID set by the
// logging middleware is echoed so failures can be matched to log lines.
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	if id := c.GetString(RequestIDKey); id != "" {
		body["request_id"] = id
	}
	c.JSON(status, body)
}

// RequestIDKey is the gin context key holding the current request ID
const RequestIDKey = "request_id"
