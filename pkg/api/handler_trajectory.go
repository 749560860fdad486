package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/pkg/models"
)

// ListTrajectories handles GET /api/v1/trajectories. Filters: outcome
// (default success), agent, limit.
func (s *Server) ListTrajectories(c *gin.Context) {
	outcome := models.Outcome(c.DefaultQuery("outcome", string(models.OutcomeSuccess)))
	switch outcome {
	case models.OutcomeSuccess, models.OutcomeFailure, models.OutcomePartial:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid outcome: " + string(outcome)})
		return
	}

	records, err := s.trajectories.QueryByOutcome(c.Request.Context(), outcome, c.Query("agent"), limitParam(c, 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query trajectories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trajectories": records, "count": len(records)})
}

// GetTrajectory handles GET /api/v1/trajectories/:id.
func (s *Server) GetTrajectory(c *gin.Context) {
	record, err := s.trajectories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "trajectory not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load trajectory"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListAntiPatterns handles GET /api/v1/anti-patterns?task_type=...
func (s *Server) ListAntiPatterns(c *gin.Context) {
	taskType := c.Query("task_type")
	if taskType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_type is required"})
		return
	}

	patterns, err := s.trajectories.QueryAntiPatterns(c.Request.Context(), taskType, limitParam(c, 5))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query anti-patterns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"anti_patterns": patterns, "count": len(patterns)})
}

// limitParam parses the limit query parameter, falling back to def.
func limitParam(c *gin.Context, def int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > 500 {
		return def
	}
	return limit
}
