package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire format every endpoint answers with, success or not.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(200, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(201, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success:   false,
		Message:   message,
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// ValidationError carries the field->message map as the data payload.
func ValidationError(c *gin.Context, details interface{}) {
	c.JSON(400, Envelope{
		Success:   false,
		Message:   "Validation failed",
		Data:      details,
		Timestamp: time.Now(),
	})
}
