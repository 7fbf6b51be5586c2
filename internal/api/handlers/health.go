package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Provider  string `json:"provider" example:"openai"`
	Timestamp int64  `json:"timestamp"`
}

// Health handles GET /health
func Health(providerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Provider:  providerName,
			Timestamp: time.Now().Unix(),
		})
	}
}
