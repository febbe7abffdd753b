package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Provider  string `json:"provider"`
}

// HandleHealth returns the health status of the service
// Used for Cloud Run liveness probe
func HandleHealth(c *gin.Context) {
	status := "healthy"
	provider := "unavailable"
	if r, _ := current(); r != nil {
		provider = r.Provider()
	} else {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Provider:  provider,
	})
}

// HandleReadiness returns whether the service is ready to accept traffic
// Used for Cloud Run startup probe - stricter than health
func HandleReadiness(c *gin.Context) {
	if r, _ := current(); r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "recommender_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
