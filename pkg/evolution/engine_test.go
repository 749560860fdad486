package evolution

import (
	"context"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/memory"
	"github.com/agentfoundry/maestro/pkg/models"
	testdb "github.com/agentfoundry/maestro/test/database"
)

type stubFailureSource struct {
	records []*models.TrajectoryRecord
	err     error
}

func (s stubFailureSource) QueryByOutcome(context.Context, models.Outcome, string, int) ([]*models.TrajectoryRecord, error) {
	return s.records, s.err
}

type stubDiagnoser struct{ summary string }

func (s stubDiagnoser) SummarizeFailures(context.Context, string, []*models.TrajectoryRecord) (string, error) {
	return s.summary, nil
}

type stubGenerator struct{ code string }

func (s stubGenerator) GenerateVariant(context.Context, VariantRequest) (string, error) {
	return s.code, nil
}

type stubSandbox struct {
	calls    atomic.Int64
	exitCode int
}

func (s *stubSandbox) Run(context.Context, string, SandboxLimits) (*SandboxResult, error) {
	s.calls.Add(1)
	return &SandboxResult{ExitCode: s.exitCode, Logs: "sandbox ok"}, nil
}

// stubBenchmark scores variants by exact code text.
type stubBenchmark struct{ scores map[string]float64 }

func (s stubBenchmark) Evaluate(_ context.Context, _ string, code string) (*BenchmarkMetrics, error) {
	score := s.scores[code]
	return &BenchmarkMetrics{
		OverallScore: score,
		Correctness:  score,
		Efficiency:   score,
		Robustness:   score,
	}, nil
}

type engineFixture struct {
	engine  *Engine
	client  *ent.Client
	cfg     *config.EvolutionConfig
	sandbox *stubSandbox
}

func setupEngine(t *testing.T, variantCode string, scores map[string]float64) *engineFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	cfg := config.DefaultEvolutionConfig()
	cfg.MaxGenerations = 1
	cfg.PopulationSize = 1
	cfg.EvolvedDir = t.TempDir()

	gate, err := NewRubricGate(cfg, fixedVerifier{
		scores: RubricScores{Correctness: 1, Quality: 1, Robustness: 1, Generalization: 1},
	})
	require.NoError(t, err)

	sandbox := &stubSandbox{}
	archive := NewArchive(client.Client, cfg.EvolvedDir)
	patterns := NewPatternStore(client.Client, cfg, memory.NewFallbackStore(config.DefaultMemoryConfig()))

	engine, err := NewEngine(cfg, archive, patterns,
		stubFailureSource{records: []*models.TrajectoryRecord{{FailureRationale: "timeout calling vendor"}}},
		stubDiagnoser{summary: "requests crash with unhandled timeout"},
		stubGenerator{code: variantCode},
		gate, sandbox, stubBenchmark{scores: scores})
	require.NoError(t, err)

	return &engineFixture{engine: engine, client: client.Client, cfg: cfg, sandbox: sandbox}
}

func TestEngineAcceptsImprovedVariant(t *testing.T) {
	fx := setupEngine(t, "improved code", map[string]float64{
		"baseline code": 0.60,
		"improved code": 0.65,
	})
	ctx := context.Background()

	report, err := fx.engine.Run(ctx, "qa agent", "scraping", []string{"web"}, "baseline code")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Attempts)
	assert.Equal(t, 1, report.Accepted)
	assert.InDelta(t, 0.65, report.BestScore, 1e-9)

	rows, err := fx.client.EvolutionAttempt.Query().
		Where(evolutionattempt.AgentType("qa agent")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	attempt := rows[0]
	assert.True(t, attempt.Accepted)
	assert.Equal(t, evolutionattempt.ImprovementTypeErrorHandling, attempt.ImprovementType)
	assert.InDelta(t, 0.05, attempt.ImprovementDelta, 1e-9)
	// Accepted implies metrics_after >= metrics_before + threshold * reward.
	assert.GreaterOrEqual(t,
		attempt.MetricsAfter["overall_score"],
		attempt.MetricsBefore["overall_score"]+fx.cfg.AcceptanceThreshold*attempt.RubricReward)

	// The artifact lands under the sanitized agent directory.
	archive := NewArchive(fx.client, fx.cfg.EvolvedDir)
	path, err := archive.ArtifactPath("qa agent", attempt.ID)
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "improved code", string(content))

	size, err := archive.Size(ctx, "qa agent")
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestEngineRejectsBelowAcceptanceThreshold(t *testing.T) {
	fx := setupEngine(t, "barely different", map[string]float64{
		"baseline code":    0.60,
		"barely different": 0.605,
	})
	ctx := context.Background()

	report, err := fx.engine.Run(ctx, "qa", "scraping", nil, "baseline code")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Attempts)
	assert.Zero(t, report.Accepted)
	assert.InDelta(t, 0.60, report.BestScore, 1e-9)

	rows, err := fx.client.EvolutionAttempt.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Accepted)
}

func TestEngineRejectsShortcutBeforeSandbox(t *testing.T) {
	fx := setupEngine(t, "if test_mode:\n    return 0\n", map[string]float64{
		"baseline code": 0.60,
	})

	report, err := fx.engine.Run(context.Background(), "qa", "scraping", nil, "baseline code")
	require.NoError(t, err)
	assert.Zero(t, report.Accepted)
	assert.Zero(t, fx.sandbox.calls.Load())
}

func TestEngineBarrenEarlyStop(t *testing.T) {
	fx := setupEngine(t, "no better", map[string]float64{
		"baseline code": 0.60,
		"no better":     0.60,
	})
	fx.cfg.MaxGenerations = 50

	report, err := fx.engine.Run(context.Background(), "qa", "scraping", nil, "baseline code")
	require.NoError(t, err)
	assert.Equal(t, "barren", report.Halted)
	assert.Equal(t, barrenGenerationLimit, report.Generations)
	assert.Zero(t, report.Accepted)
}

func TestEngineConvergesIntoConsensus(t *testing.T) {
	mem := memory.NewFallbackStore(config.DefaultMemoryConfig())

	client := testdb.NewTestClient(t)
	cfg := config.DefaultEvolutionConfig()
	cfg.MaxGenerations = 1
	cfg.PopulationSize = 1
	cfg.EvolvedDir = t.TempDir()

	gate, err := NewRubricGate(cfg, fixedVerifier{
		scores: RubricScores{Correctness: 1, Quality: 1, Robustness: 1, Generalization: 1},
	})
	require.NoError(t, err)

	engine, err := NewEngine(cfg,
		NewArchive(client.Client, cfg.EvolvedDir),
		NewPatternStore(client.Client, cfg, mem),
		stubFailureSource{},
		stubDiagnoser{},
		stubGenerator{code: "excellent code"},
		gate, &stubSandbox{},
		stubBenchmark{scores: map[string]float64{
			"baseline code":  0.60,
			"excellent code": 0.95,
		}})
	require.NoError(t, err)

	report, err := engine.Run(context.Background(), "qa", "scraping", nil, "baseline code")
	require.NoError(t, err)
	assert.True(t, report.Converged)

	entries, err := mem.Retrieve(context.Background(), "qa", "consensus", "variant", "", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestPatternSeedFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultEvolutionConfig()
	store := NewPatternStore(client.Client, cfg, nil)
	ctx := context.Background()

	save := func(agentType string, successRate float64, capabilities []string) {
		_, err := store.Save(ctx, &Pattern{
			AgentType:           agentType,
			TaskType:            "scraping",
			StrategyDescription: "strategy",
			BenchmarkScore:      0.8,
			SuccessRate:         successRate,
			Capabilities:        capabilities,
		})
		require.NoError(t, err)
	}

	save("qa", 0.9, []string{"web"})
	save("qa", 0.5, []string{"web"})                       // below success threshold
	save("builder", 0.95, []string{"web", "ocr"})          // cross-agent, overlapping
	save("builder", 0.95, []string{"payments", "billing"}) // cross-agent, disjoint

	seeds, err := store.Seed(ctx, "qa", "scraping", []string{"web"})
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	for _, seed := range seeds {
		assert.GreaterOrEqual(t, seed.SuccessRate, cfg.PatternSuccessThreshold)
	}
}

func TestPatternSaveValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewPatternStore(client.Client, config.DefaultEvolutionConfig(), nil)
	ctx := context.Background()

	_, err := store.Save(ctx, &Pattern{TaskType: "scraping", StrategyDescription: "s", BenchmarkScore: 0.5, SuccessRate: 0.5})
	assert.Error(t, err)

	_, err = store.Save(ctx, &Pattern{AgentType: "qa", TaskType: "scraping", StrategyDescription: "s", BenchmarkScore: 1.5, SuccessRate: 0.5})
	assert.Error(t, err)
}

func TestConsensusOutcomeFallsBackOnMemoryFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultEvolutionConfig()
	store := NewPatternStore(client.Client, cfg, failingMemory{})

	outcome := store.PersistOutcome(context.Background(), &Pattern{
		PatternID:           "p-1",
		AgentType:           "qa",
		TaskType:            "scraping",
		StrategyDescription: "strategy",
		BenchmarkScore:      0.95,
		SuccessRate:         0.95,
	})
	assert.False(t, outcome.Converged)
	assert.InDelta(t, safeBaselineScore, outcome.Score, 1e-9)
}

type failingMemory struct{}

func (failingMemory) Store(context.Context, memory.StoreRequest) (string, error) {
	return "", assert.AnError
}
func (failingMemory) Retrieve(context.Context, string, string, string, string, int) ([]*memory.Entry, error) {
	return nil, assert.AnError
}
func (failingMemory) Get(context.Context, string, string, string) (*memory.Entry, error) {
	return nil, assert.AnError
}
func (failingMemory) Consolidate(context.Context, string, string) (*memory.ConsolidationReport, error) {
	return nil, assert.AnError
}
func (failingMemory) GetUserProfile(context.Context, string, string) (string, error) {
	return "", assert.AnError
}
func (failingMemory) Clear(context.Context, string, string) error { return assert.AnError }
