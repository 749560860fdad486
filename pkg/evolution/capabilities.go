package evolution

import (
	"context"
	"time"

	"github.com/agentfoundry/maestro/pkg/models"
)

// VariantRequest is the prompt context for generating one code variant.
// SeedPatterns carry proven strategies from earlier runs and other agents.
type VariantRequest struct {
	AgentType       string
	ParentVersion   string
	ParentCode      string
	Diagnosis       string
	ImprovementType ImprovementType
	SeedPatterns    []*Pattern
}

// Diagnoser summarizes grouped failure trajectories into a diagnosis text.
type Diagnoser interface {
	SummarizeFailures(ctx context.Context, agentType string, failures []*models.TrajectoryRecord) (string, error)
}

// VariantGenerator produces a code variant that preserves all existing
// functionality.
type VariantGenerator interface {
	GenerateVariant(ctx context.Context, req VariantRequest) (string, error)
}

// SandboxLimits are the resource caps for one sandboxed run.
type SandboxLimits struct {
	Timeout       time.Duration
	MemoryLimitMB int
	CPUQuota      float64
}

// SandboxResult is the outcome of one isolated run. A non-zero exit code
// rejects the variant.
type SandboxResult struct {
	ExitCode int
	Logs     string
}

// Sandbox runs variant code in an isolated, network-less runtime.
type Sandbox interface {
	Run(ctx context.Context, code string, limits SandboxLimits) (*SandboxResult, error)
}

// BenchmarkMetrics are the scores from one benchmark evaluation, each in
// [0,1].
type BenchmarkMetrics struct {
	OverallScore float64 `json:"overall_score"`
	Correctness  float64 `json:"correctness"`
	Efficiency   float64 `json:"efficiency"`
	Robustness   float64 `json:"robustness"`
}

// Benchmark evaluates a variant against the agent's benchmark suite.
type Benchmark interface {
	Evaluate(ctx context.Context, agentType, code string) (*BenchmarkMetrics, error)
}

// FailureSource supplies recent failure trajectories for diagnosis.
type FailureSource interface {
	QueryByOutcome(ctx context.Context, outcome models.Outcome, agentFilter string, limit int) ([]*models.TrajectoryRecord, error)
}

func (m *BenchmarkMetrics) asMap() map[string]float64 {
	if m == nil {
		return nil
	}
	return map[string]float64{
		"overall_score": m.OverallScore,
		"correctness":   m.Correctness,
		"efficiency":    m.Efficiency,
		"robustness":    m.Robustness,
	}
}
