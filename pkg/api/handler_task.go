package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/taskrun"
	"github.com/agentfoundry/maestro/pkg/models"
)

// SubmitTaskRequest is the body of POST /api/v1/tasks.
type SubmitTaskRequest struct {
	AgentName     string   `json:"agent_name" binding:"required"`
	UserID        string   `json:"user_id"`
	Description   string   `json:"description" binding:"required"`
	TaskType      string   `json:"task_type"`
	Priority      float64  `json:"priority"`
	RequiredTools []string `json:"required_tools"`
	NumSteps      int      `json:"num_steps"`
	BatchSize     int      `json:"batch_size"`
}

// TaskRunResponse is the API view of one task run.
type TaskRunResponse struct {
	ID            string     `json:"id"`
	AgentName     string     `json:"agent_name"`
	UserID        string     `json:"user_id"`
	Description   string     `json:"description"`
	TaskType      string     `json:"task_type,omitempty"`
	Status        string     `json:"status"`
	Result        string     `json:"result,omitempty"`
	ErrorKind     string     `json:"error_kind,omitempty"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	Attempts      int        `json:"attempts"`
	ModelTier     string     `json:"model_tier,omitempty"`
	Difficulty    string     `json:"difficulty,omitempty"`
	EstimatedCost float64    `json:"estimated_cost,omitempty"`
	CorrelationID string     `json:"correlation_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// SubmitTask handles POST /api/v1/tasks. The run is persisted as pending and
// picked up by the worker pool; the response carries the run id for polling.
func (s *Server) SubmitTask(c *gin.Context) {
	var req SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !s.cfg.AgentRegistry.Has(req.AgentName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown agent: " + req.AgentName})
		return
	}

	if req.BatchSize < 1 {
		req.BatchSize = 1
	}
	task := &models.Task{
		Description:   req.Description,
		TaskType:      req.TaskType,
		Priority:      req.Priority,
		RequiredTools: req.RequiredTools,
		NumSteps:      req.NumSteps,
		BatchSize:     req.BatchSize,
	}
	if err := task.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	create := s.db.TaskRun.Create().
		SetID(uuid.New().String()).
		SetAgentName(req.AgentName).
		SetDescription(req.Description).
		SetTaskType(req.TaskType).
		SetPriority(req.Priority).
		SetRequiredTools(req.RequiredTools).
		SetNumSteps(req.NumSteps).
		SetBatchSize(req.BatchSize)
	if req.UserID != "" {
		create = create.SetUserID(req.UserID)
	}

	run, err := create.Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue task"})
		return
	}

	c.JSON(http.StatusAccepted, taskRunResponse(run))
}

// GetTask handles GET /api/v1/tasks/:id.
func (s *Server) GetTask(c *gin.Context) {
	run, err := s.db.TaskRun.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task run"})
		return
	}
	c.JSON(http.StatusOK, taskRunResponse(run))
}

// ListTasks handles GET /api/v1/tasks with optional status and agent filters.
func (s *Server) ListTasks(c *gin.Context) {
	query := s.db.TaskRun.Query().
		Where(taskrun.DeletedAtIsNil()).
		Order(ent.Desc(taskrun.FieldCreatedAt)).
		Limit(limitParam(c, 20))

	if status := c.Query("status"); status != "" {
		if err := taskrun.StatusValidator(taskrun.Status(status)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + status})
			return
		}
		query = query.Where(taskrun.StatusEQ(taskrun.Status(status)))
	}
	if agent := c.Query("agent"); agent != "" {
		query = query.Where(taskrun.AgentNameEQ(agent))
	}

	runs, err := query.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list task runs"})
		return
	}

	out := make([]*TaskRunResponse, len(runs))
	for i, run := range runs {
		out[i] = taskRunResponse(run)
	}
	c.JSON(http.StatusOK, gin.H{"tasks": out, "count": len(out)})
}

// CancelTask handles POST /api/v1/tasks/:id/cancel. Pending runs are
// cancelled directly; in-progress runs are marked cancelling and the owning
// pod's context is cancelled when the run is local.
func (s *Server) CancelTask(c *gin.Context) {
	ctx := c.Request.Context()

	run, err := s.db.TaskRun.Get(ctx, c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task run"})
		return
	}

	switch run.Status {
	case taskrun.StatusPending:
		// Conditional update: only cancel if still pending, losing the race
		// to a worker claim is fine.
		n, err := s.db.TaskRun.Update().
			Where(taskrun.ID(run.ID), taskrun.StatusEQ(taskrun.StatusPending)).
			SetStatus(taskrun.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil || n == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "task run was claimed before cancellation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})

	case taskrun.StatusInProgress, taskrun.StatusCancelling:
		if err := s.db.TaskRun.UpdateOneID(run.ID).
			SetStatus(taskrun.StatusCancelling).
			Exec(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark task run cancelling"})
			return
		}
		local := false
		if s.pool != nil {
			local = s.pool.CancelRun(run.ID)
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelling", "cancelled_locally": local})

	default:
		c.JSON(http.StatusConflict, gin.H{"error": "task run is not in a cancellable state"})
	}
}

func taskRunResponse(run *ent.TaskRun) *TaskRunResponse {
	resp := &TaskRunResponse{
		ID:            run.ID,
		AgentName:     run.AgentName,
		UserID:        run.UserID,
		Description:   run.Description,
		TaskType:      run.TaskType,
		Status:        string(run.Status),
		Attempts:      run.Attempts,
		ModelTier:     run.ModelTier,
		Difficulty:    run.Difficulty,
		EstimatedCost: run.EstimatedCost,
		CorrelationID: run.CorrelationID,
		CreatedAt:     run.CreatedAt,
		StartedAt:     run.StartedAt,
		CompletedAt:   run.CompletedAt,
	}
	if run.Result != nil {
		resp.Result = *run.Result
	}
	if run.ErrorKind != nil {
		resp.ErrorKind = *run.ErrorKind
	}
	if run.ErrorMessage != nil {
		resp.ErrorMessage = *run.ErrorMessage
	}
	return resp
}
