package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetBudgetStatus handles GET /api/v1/budget/:agent.
func (s *Server) GetBudgetStatus(c *gin.Context) {
	agent := c.Param("agent")
	if !s.cfg.AgentRegistry.Has(agent) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown agent: " + agent})
		return
	}

	status, err := s.governor.BudgetStatus(c.Request.Context(), agent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load budget status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// ListAuditEntries handles GET /api/v1/budget/:agent/audit. The window query
// parameter selects the month (YYYY-MM, default current).
func (s *Server) ListAuditEntries(c *gin.Context) {
	agent := c.Param("agent")
	if !s.cfg.AgentRegistry.Has(agent) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown agent: " + agent})
		return
	}

	window := c.Query("window")
	if window == "" {
		window = time.Now().UTC().Format("2006-01")
	} else if _, err := time.Parse("2006-01", window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be YYYY-MM"})
		return
	}

	entries, err := s.governor.AuditEntries(c.Request.Context(), agent, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit entries"})
		return
	}

	// Verify signatures on the way out so tampering is visible to operators.
	verified := 0
	for _, entry := range entries {
		if s.governor.VerifyAuditEntry(entry) == nil {
			verified++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"window":   window,
		"entries":  entries,
		"count":    len(entries),
		"verified": verified,
	})
}
