package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/taskrun"
	"github.com/agentfoundry/maestro/pkg/models"
	"github.com/agentfoundry/maestro/pkg/runtime"
)

// AgentExecutor bridges claimed task runs to the agent runtime.
type AgentExecutor struct {
	runtime *runtime.Runtime
}

// NewAgentExecutor creates the executor backed by the shared agent runtime.
func NewAgentExecutor(rt *runtime.Runtime) *AgentExecutor {
	return &AgentExecutor{runtime: rt}
}

var _ RunExecutor = (*AgentExecutor)(nil)

// Execute runs one claimed task run through the agent pipeline and maps the
// response envelope to the run's terminal state.
func (e *AgentExecutor) Execute(ctx context.Context, run *ent.TaskRun) *ExecutionResult {
	resp := e.runtime.Execute(ctx, &runtime.Request{
		AgentName: run.AgentName,
		UserID:    run.UserID,
		Task: &models.Task{
			ID:            run.ID,
			Description:   run.Description,
			TaskType:      run.TaskType,
			Priority:      run.Priority,
			RequiredTools: run.RequiredTools,
			NumSteps:      run.NumSteps,
			BatchSize:     run.BatchSize,
		},
	})

	result := &ExecutionResult{
		Attempts:      resp.Attempts,
		CorrelationID: resp.CorrelationID,
	}
	if resp.Routing != nil {
		result.ModelTier = string(resp.Routing.ModelTier)
		result.Difficulty = string(resp.Routing.DifficultyCategory)
		result.EstimatedCost = resp.Routing.EstimatedCost
	}

	if resp.OK {
		result.Status = taskrun.StatusCompleted
		result.Result = resp.Artifact
		return result
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Status = taskrun.StatusTimedOut
	case errors.Is(ctx.Err(), context.Canceled):
		result.Status = taskrun.StatusCancelled
	default:
		result.Status = taskrun.StatusFailed
	}
	result.ErrorKind = resp.ErrorKind
	result.Error = fmt.Errorf("%s: %s", resp.ErrorKind, resp.Message)
	return result
}
