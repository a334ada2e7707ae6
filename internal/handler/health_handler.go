package handler

import "github.com/gin-gonic/gin"

// HealthHandler provides the health endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth responds with service status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true})
}
