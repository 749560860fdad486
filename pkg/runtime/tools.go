package runtime

import (
	"context"
	"sync"
	"time"

	"github.com/agentfoundry/maestro/pkg/models"
)

// Tool is one capability an agent may invoke during a run.
type Tool interface {
	Name() string
	Invoke(ctx context.Context, args map[string]any) (string, error)
}

// ToolFunc adapts a function to the Tool interface.
type ToolFunc struct {
	ToolName string
	Fn       func(ctx context.Context, args map[string]any) (string, error)
}

func (t ToolFunc) Name() string { return t.ToolName }

func (t ToolFunc) Invoke(ctx context.Context, args map[string]any) (string, error) {
	return t.Fn(ctx, args)
}

// stepRecorder collects ActionSteps in call order for the trajectory.
type stepRecorder struct {
	mu    sync.Mutex
	steps []models.ActionStep
	now   func() time.Time
}

func newStepRecorder() *stepRecorder {
	return &stepRecorder{now: time.Now}
}

func (r *stepRecorder) record(toolName string, args map[string]any, result, reasoning string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, models.ActionStep{
		Timestamp:      r.now().UTC(),
		ToolName:       toolName,
		ToolArgs:       args,
		ToolResult:     result,
		AgentReasoning: reasoning,
	})
}

func (r *stepRecorder) snapshot() []models.ActionStep {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ActionStep(nil), r.steps...)
}
