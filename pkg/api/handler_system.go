package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentfoundry/maestro/pkg/database"
)

// Health handles GET /health. Reports database connectivity and, when a
// worker pool runs in this replica, its health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	body := gin.H{
		"status":   "healthy",
		"database": dbHealth,
	}
	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			body["status"] = "degraded"
		}
	}

	c.JSON(http.StatusOK, body)
}

// GetDashboard handles GET /api/v1/dashboard, returning the live snapshot
// document (the same shape written to dashboard_snapshot.json).
func (s *Server) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.obs.CurrentSnapshot())
}
