package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body shape every endpoint answers with:
// {"success": 0|1, "message": "...", "data": {...}}
// Clients key off the integer success flag, so it stays 0/1, not a bool.
type Envelope struct {
	Success int         `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: 1, Message: message, Data: data})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: 0, Message: message})
}

// NoContent answers delete endpoints. net/http strips bodies from 204
// responses, so no envelope is written.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
