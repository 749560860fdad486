// Package queue provides task run queue management and processing
// infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/taskrun"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor processes one claimed task run end to end. The executor owns
// the execution pipeline (routing, budget, correction, trajectory); the
// worker only handles claiming, heartbeat, and the terminal status update.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.TaskRun) *ExecutionResult
}

// ExecutionResult is the terminal state of one run. Intermediate state
// (trajectory, audit entries, memory writes) was already persisted by the
// executor during processing.
type ExecutionResult struct {
	Status        taskrun.Status // completed, failed, timed_out, cancelled
	Result        string         // Artifact text (if completed)
	ErrorKind     string         // Envelope error kind (if failed)
	Error         error          // Error details (if failed/timed_out)
	Attempts      int
	CorrelationID string
	ModelTier     string
	Difficulty    string
	EstimatedCost float64
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
