// Package api exposes the control plane's HTTP surface: task submission and
// tracking, trajectory queries, budget status, and the dashboard snapshot.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/agentfoundry/maestro/pkg/budget"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/database"
	"github.com/agentfoundry/maestro/pkg/observability"
	"github.com/agentfoundry/maestro/pkg/queue"
	"github.com/agentfoundry/maestro/pkg/trajectory"
)

// RunCanceller cancels an in-flight run on this pod. Satisfied by
// queue.WorkerPool.
type RunCanceller interface {
	CancelRun(runID string) bool
	Health() *queue.PoolHealth
}

// Server holds the handler dependencies. Construct with NewServer and mount
// with RegisterRoutes.
type Server struct {
	cfg          *config.Config
	db           *database.Client
	trajectories *trajectory.Store
	governor     *budget.Governor
	obs          *observability.Manager
	pool         RunCanceller
}

// NewServer creates the API server. pool may be nil when the replica serves
// queries only.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	trajectories *trajectory.Store,
	governor *budget.Governor,
	obs *observability.Manager,
	pool RunCanceller,
) *Server {
	return &Server{
		cfg:          cfg,
		db:           db,
		trajectories: trajectories,
		governor:     governor,
		obs:          obs,
		pool:         pool,
	}
}

// RegisterRoutes mounts all endpoints on the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks", s.SubmitTask)
		v1.GET("/tasks", s.ListTasks)
		v1.GET("/tasks/:id", s.GetTask)
		v1.POST("/tasks/:id/cancel", s.CancelTask)

		v1.GET("/trajectories", s.ListTrajectories)
		v1.GET("/trajectories/:id", s.GetTrajectory)
		v1.GET("/anti-patterns", s.ListAntiPatterns)

		v1.GET("/budget/:agent", s.GetBudgetStatus)
		v1.GET("/budget/:agent/audit", s.ListAuditEntries)

		v1.GET("/dashboard", s.GetDashboard)
	}
}
