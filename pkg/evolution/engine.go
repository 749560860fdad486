package evolution

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/models"
)

// barrenGenerationLimit halts a run after this many generations without an
// acceptance while the archive holds at most barrenArchiveLimit variants.
const (
	barrenGenerationLimit = 10
	barrenArchiveLimit    = 2
	failureQueryLimit     = 20
)

// RunReport summarizes one evolution run.
type RunReport struct {
	AgentType   string  `json:"agent_type"`
	Generations int     `json:"generations"`
	Attempts    int     `json:"attempts"`
	Accepted    int     `json:"accepted"`
	BestScore   float64 `json:"best_score"`
	Halted      string  `json:"halted"` // max_generations | barren
	Converged   bool    `json:"converged"`
}

// Engine runs offline evolution for one agent type at a time: select,
// diagnose, generate, rubric-gate, sandbox, benchmark, accept.
type Engine struct {
	cfg       *config.EvolutionConfig
	archive   *Archive
	patterns  *PatternStore
	failures  FailureSource
	diagnoser Diagnoser
	generator VariantGenerator
	gate      *RubricGate
	sandbox   Sandbox
	benchmark Benchmark
	randFn    func() float64
}

// NewEngine wires the engine. All capabilities are required.
func NewEngine(
	cfg *config.EvolutionConfig,
	archive *Archive,
	patterns *PatternStore,
	failures FailureSource,
	diagnoser Diagnoser,
	generator VariantGenerator,
	gate *RubricGate,
	sandbox Sandbox,
	benchmark Benchmark,
) (*Engine, error) {
	if archive == nil || patterns == nil || failures == nil || diagnoser == nil ||
		generator == nil || gate == nil || sandbox == nil || benchmark == nil {
		return nil, fmt.Errorf("all evolution capabilities are required")
	}
	return &Engine{
		cfg:       cfg,
		archive:   archive,
		patterns:  patterns,
		failures:  failures,
		diagnoser: diagnoser,
		generator: generator,
		gate:      gate,
		sandbox:   sandbox,
		benchmark: benchmark,
		randFn:    rand.Float64,
	}, nil
}

type attemptResult struct {
	accepted bool
	parent   Parent
	score    float64
	outcome  *ConsensusOutcome
}

// Run evolves one agent type starting from a baseline variant. baselineCode
// is the agent's current implementation; its benchmark score is measured
// once at the start when the archive is empty.
func (e *Engine) Run(ctx context.Context, agentType, taskType string, capabilities []string, baselineCode string) (*RunReport, error) {
	report := &RunReport{AgentType: agentType}

	seeds, err := e.patterns.Seed(ctx, agentType, taskType, capabilities)
	if err != nil {
		slog.Warn("Pattern seeding unavailable, evolving without seeds",
			"agent_type", agentType, "error", err)
		seeds = nil
	}

	pool, err := e.archive.Parents(ctx, agentType)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		baseline, benchErr := e.benchmark.Evaluate(ctx, agentType, baselineCode)
		if benchErr != nil {
			return nil, fmt.Errorf("failed to benchmark baseline: %w", benchErr)
		}
		pool = []Parent{{
			Version:        "baseline",
			Code:           baselineCode,
			BenchmarkScore: baseline.OverallScore,
		}}
		report.BestScore = baseline.OverallScore
	} else {
		for _, parent := range pool {
			if parent.BenchmarkScore > report.BestScore {
				report.BestScore = parent.BenchmarkScore
			}
		}
	}

	barren := 0
	for generation := 1; generation <= e.cfg.MaxGenerations; generation++ {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Generations = generation

		parents := selectParents(pool, e.cfg.PopulationSize, e.randFn)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			results []attemptResult
		)
		for _, parent := range parents {
			wg.Add(1)
			go func(parent Parent) {
				defer wg.Done()
				result := e.evolveOne(ctx, agentType, taskType, generation, parent, seeds)
				mu.Lock()
				results = append(results, result)
				mu.Unlock()
			}(parent)
		}
		wg.Wait()

		acceptedThisGen := 0
		for _, result := range results {
			report.Attempts++
			if !result.accepted {
				continue
			}
			acceptedThisGen++
			report.Accepted++
			pool = append(pool, result.parent)
			if result.score > report.BestScore {
				report.BestScore = result.score
			}
			if result.outcome != nil && result.outcome.Converged {
				report.Converged = true
			}
		}

		if acceptedThisGen == 0 {
			barren++
		} else {
			barren = 0
		}
		if barren >= barrenGenerationLimit {
			size, sizeErr := e.archive.Size(ctx, agentType)
			if sizeErr != nil {
				return nil, sizeErr
			}
			if size <= barrenArchiveLimit {
				report.Halted = "barren"
				return report, nil
			}
		}
	}

	report.Halted = "max_generations"
	return report, nil
}

// evolveOne runs one variant through the full pipeline. Every path records
// an attempt; rejections never abort the generation.
func (e *Engine) evolveOne(ctx context.Context, agentType, taskType string, generation int, parent Parent, seeds []*Pattern) attemptResult {
	attempt := &Attempt{
		AgentType:     agentType,
		ParentVersion: parent.Version,
		Generation:    generation,
		MetricsBefore: map[string]float64{"overall_score": parent.BenchmarkScore},
	}
	rejected := attemptResult{}

	failures, err := e.failures.QueryByOutcome(ctx, models.OutcomeFailure, agentType, failureQueryLimit)
	if err != nil {
		slog.Warn("Failure trajectory query unavailable, diagnosing without history",
			"agent_type", agentType, "error", err)
		failures = nil
	}

	diagnosis := ""
	if len(failures) > 0 {
		diagnosis, err = e.diagnoser.SummarizeFailures(ctx, agentType, failures)
		if err != nil {
			slog.Warn("Diagnosis failed, continuing without it",
				"agent_type", agentType, "error", err)
			diagnosis = ""
		}
	}
	attempt.Diagnosis = diagnosis
	attempt.ImprovementType = classifyImprovement(diagnosis)

	code, err := e.generator.GenerateVariant(ctx, VariantRequest{
		AgentType:       agentType,
		ParentVersion:   parent.Version,
		ParentCode:      parent.Code,
		Diagnosis:       diagnosis,
		ImprovementType: attempt.ImprovementType,
		SeedPatterns:    seeds,
	})
	if err != nil {
		attempt.SandboxLogs = fmt.Sprintf("variant generation failed: %v", err)
		e.record(ctx, attempt)
		return rejected
	}
	attempt.ProposedChanges = code

	verdict, err := e.gate.Evaluate(ctx, code, diagnosis)
	if err != nil {
		attempt.SandboxLogs = fmt.Sprintf("rubric gate failed: %v", err)
		e.record(ctx, attempt)
		return rejected
	}
	attempt.RubricReward = verdict.Reward
	if verdict.Verdict != "pass" {
		attempt.SandboxLogs = fmt.Sprintf("rubric verdict fail: shortcuts=%v feedback=%s", verdict.Shortcuts, verdict.Feedback)
		e.record(ctx, attempt)
		return rejected
	}

	sandboxCtx, cancel := context.WithTimeout(ctx, e.cfg.SandboxTimeout)
	defer cancel()
	sandboxResult, err := e.sandbox.Run(sandboxCtx, code, SandboxLimits{
		Timeout:       e.cfg.SandboxTimeout,
		MemoryLimitMB: e.cfg.SandboxMemoryLimitMB,
		CPUQuota:      e.cfg.SandboxCPUQuota,
	})
	if err != nil {
		attempt.SandboxLogs = fmt.Sprintf("sandbox failed: %v", err)
		e.record(ctx, attempt)
		return rejected
	}
	attempt.SandboxLogs = sandboxResult.Logs
	if sandboxResult.ExitCode != 0 {
		attempt.SandboxLogs = fmt.Sprintf("exit code %d: %s", sandboxResult.ExitCode, sandboxResult.Logs)
		e.record(ctx, attempt)
		return rejected
	}

	after, err := e.benchmark.Evaluate(ctx, agentType, code)
	if err != nil {
		attempt.SandboxLogs = fmt.Sprintf("benchmark failed: %v", err)
		e.record(ctx, attempt)
		return rejected
	}
	attempt.MetricsAfter = after.asMap()

	rawDelta := after.OverallScore - parent.BenchmarkScore
	attempt.ImprovementDelta = rawDelta
	effective := rawDelta * verdict.Reward
	attempt.Accepted = effective >= e.cfg.AcceptanceThreshold

	attemptID := e.record(ctx, attempt)
	if !attempt.Accepted || attemptID == "" {
		return rejected
	}

	if _, err := e.archive.SaveArtifact(agentType, attemptID, code); err != nil {
		slog.Warn("Failed to save evolved artifact", "attempt_id", attemptID, "error", err)
	}

	pattern := &Pattern{
		AgentType:           agentType,
		TaskType:            taskType,
		CodeDiff:            code,
		StrategyDescription: strategyDescription(attempt),
		BenchmarkScore:      after.OverallScore,
		SuccessRate:         after.Correctness,
		Capabilities:        nil,
		SourceAgent:         agentType,
	}
	if _, err := e.patterns.Save(ctx, pattern); err != nil {
		slog.Warn("Failed to save evolution pattern", "attempt_id", attemptID, "error", err)
	}
	outcome := e.patterns.PersistOutcome(ctx, pattern)

	return attemptResult{
		accepted: true,
		parent: Parent{
			Version:        attemptID,
			Code:           code,
			BenchmarkScore: after.OverallScore,
		},
		score:   after.OverallScore,
		outcome: outcome,
	}
}

// record persists the attempt; persistence failures are logged, never
// propagated, so a storage blip cannot abort a generation.
func (e *Engine) record(ctx context.Context, attempt *Attempt) string {
	id, err := e.archive.Record(ctx, attempt)
	if err != nil {
		slog.Warn("Failed to record evolution attempt",
			"agent_type", attempt.AgentType,
			"generation", attempt.Generation,
			"error", err)
		return ""
	}
	return id
}

func strategyDescription(attempt *Attempt) string {
	if attempt.Diagnosis == "" {
		return fmt.Sprintf("%s variant of %s", attempt.ImprovementType, attempt.ParentVersion)
	}
	return fmt.Sprintf("%s addressing: %s", attempt.ImprovementType, attempt.Diagnosis)
}
