package handlers

import (
	"net/http"
	"strings"

	"globaltrotter/services"

	"github.com/gin-gonic/gin"
)

type AssistantRequest struct {
	Message string `json:"message" binding:"required"`
}

// AssistantHandler answers the chat widget from a canned keyword table.
// No AI call happens here.
func AssistantHandler(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message must not be empty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": services.AssistantReply(message)})
}
