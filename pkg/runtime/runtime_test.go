package runtime

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/budget"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/llm"
	"github.com/agentfoundry/maestro/pkg/masking"
	"github.com/agentfoundry/maestro/pkg/memory"
	"github.com/agentfoundry/maestro/pkg/models"
	"github.com/agentfoundry/maestro/pkg/observability"
	"github.com/agentfoundry/maestro/pkg/refine"
	"github.com/agentfoundry/maestro/pkg/router"
	"github.com/agentfoundry/maestro/pkg/trajectory"
	testdb "github.com/agentfoundry/maestro/test/database"
)

// stubLLM scripts executor and evaluator responses. The two roles are told
// apart by the system prompt.
type stubLLM struct {
	mu        sync.Mutex
	solutions []string
	verdicts  []string
	execErr   error
	execCalls int
	evalCalls int
}

func (c *stubLLM) Generate(_ context.Context, input *llm.GenerateInput) (*llm.GenerateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.Contains(input.Messages[0].Content, "QA validator") {
		verdict := c.verdicts[minInt(c.evalCalls, len(c.verdicts)-1)]
		c.evalCalls++
		return &llm.GenerateResult{Content: verdict, TotalTokens: 50}, nil
	}

	if c.execErr != nil {
		return nil, c.execErr
	}
	solution := c.solutions[minInt(c.execCalls, len(c.solutions)-1)]
	c.execCalls++
	return &llm.GenerateResult{Content: solution, TotalTokens: 120}, nil
}

func (c *stubLLM) GenerateStructured(ctx context.Context, input *llm.GenerateInput, out interface{}) (*llm.GenerateResult, error) {
	result, err := c.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	return result, llm.DecodeJSON(result.Content, out)
}

func (c *stubLLM) Close() error { return nil }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

type stubSafety struct {
	blockAll bool
}

func (s *stubSafety) FilterTask(context.Context, string) (bool, string, error) {
	if s.blockAll {
		return false, "content policy violation", nil
	}
	return true, "", nil
}

// failingMemory rejects every operation, standing in for a substrate outage
// in strict mode.
type failingMemory struct{}

func (failingMemory) Store(context.Context, memory.StoreRequest) (string, error) {
	return "", errors.New("memory down")
}

func (failingMemory) Retrieve(context.Context, string, string, string, string, int) ([]*memory.Entry, error) {
	return nil, errors.New("memory down")
}

func (failingMemory) Get(context.Context, string, string, string) (*memory.Entry, error) {
	return nil, errors.New("memory down")
}

func (failingMemory) Consolidate(context.Context, string, string) (*memory.ConsolidationReport, error) {
	return nil, errors.New("memory down")
}

func (failingMemory) GetUserProfile(context.Context, string, string) (string, error) {
	return "", errors.New("memory down")
}

func (failingMemory) Clear(context.Context, string, string) error {
	return errors.New("memory down")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	allowFree := true
	reflection := 0.7
	consensus := 0.9
	attempts := 2

	obsCfg := config.DefaultObservabilityConfig()
	obsCfg.LogDir = t.TempDir()
	obsCfg.SamplingRatio = 1.0

	return &config.Config{
		Defaults: &config.Defaults{
			RoutingPolicy:         "budget",
			AllowFreeTier:         &allowFree,
			ContextStripThreshold: 0.5,
		},
		Budget:        config.DefaultBudgetConfig(),
		Memory:        config.DefaultMemoryConfig(),
		Observability: obsCfg,
		AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
			"builder": {
				Instructions:          "You build features.",
				Capabilities:          []string{"coding"},
				MaxCorrectionAttempts: &attempts,
				ReflectionThreshold:   &reflection,
				ConsensusThreshold:    &consensus,
			},
		}),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"local-free":    {Tier: "FREE", Type: "local", Model: "llama-3.1-8b-instruct"},
			"premium":       {Tier: "PREMIUM", Type: "openai", Model: "gpt-5", PricePer1MTokens: 10},
			"ultra-premium": {Tier: "ULTRA_PREMIUM", Type: "anthropic", Model: "claude-opus-4-5", PricePer1MTokens: 25},
		}),
	}
}

type fixture struct {
	runtime      *Runtime
	cfg          *config.Config
	llm          *stubLLM
	memory       memory.Store
	trajectories *trajectory.Store
	governor     *budget.Governor
}

type fixtureOption func(*fixture)

func withSafety(filter router.SafetyFilter) fixtureOption {
	return func(f *fixture) {
		f.runtime.router = router.New(f.cfg, router.WithSafetyFilter(filter))
	}
}

func setupRuntime(t *testing.T, client *stubLLM, opts ...fixtureOption) *fixture {
	t.Helper()

	cfg := testConfig(t)
	db := testdb.NewTestClient(t)

	signer, err := budget.NewSigner([]byte("test-secret"))
	require.NoError(t, err)
	governor := budget.NewGovernor(db.Client, cfg.Budget, cfg.AgentRegistry, signer, nil, nil, nil,
		masking.NewService(&config.MaskingDefaults{Enabled: false}))

	obs, err := observability.NewManager(cfg.Observability)
	require.NoError(t, err)
	t.Cleanup(func() { _ = obs.Shutdown(context.Background()) })

	f := &fixture{
		cfg:          cfg,
		llm:          client,
		memory:       memory.NewFallbackStore(cfg.Memory),
		trajectories: trajectory.NewStore(db.Client),
		governor:     governor,
	}
	f.runtime, err = New(cfg, router.New(cfg), governor, f.memory, f.trajectories, client, obs)
	require.NoError(t, err)

	for _, opt := range opts {
		opt(f)
	}
	return f
}

func trivialTask() *models.Task {
	return &models.Task{
		Description: "say hello to the user",
		TaskType:    "greeting",
		BatchSize:   1,
	}
}

func expensiveTask() *models.Task {
	return &models.Task{
		Description: "Design and implement a scalable distributed microservices architecture " +
			"with authentication, database migration, deployment pipeline, caching and " +
			"message queue integration across kubernetes and docker infrastructure, " +
			"including api design, sql schema optimization, oauth and encryption.",
		TaskType:      "architecture",
		Priority:      0.9,
		NumSteps:      9,
		RequiredTools: []string{"docker", "kubernetes", "database", "auth", "ci/cd"},
		BatchSize:     1,
	}
}

const validVerdict = `{"valid": true, "confidence": 0.95, "issues": [], "suggestions": []}`
const invalidVerdict = `{"valid": false, "confidence": 0.4, "issues": [{"category": "correctness", "severity": "high", "description": "wrong output"}]}`

func TestExecuteSuccessFirstAttempt(t *testing.T) {
	client := &stubLLM{solutions: []string{"hello there"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{
		AgentName: "builder",
		UserID:    "alice",
		Task:      trivialTask(),
	})

	require.True(t, resp.OK, "expected success, got %s: %s", resp.ErrorKind, resp.Message)
	assert.Equal(t, "hello there", resp.Artifact)
	assert.Equal(t, 1, resp.Attempts)
	assert.NotEmpty(t, resp.CorrelationID)
	assert.Equal(t, refine.StateTerminatedOK, resp.SessionState)
	require.NotNil(t, resp.Routing)
	assert.Equal(t, models.TierFree, resp.Routing.ModelTier)

	// The run trace is persisted with the QA confidence as reward.
	require.NotEmpty(t, resp.TrajectoryID)
	record, err := f.trajectories.Get(ctx, resp.TrajectoryID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, record.FinalOutcome)
	assert.InDelta(t, 0.95, record.Reward, 1e-9)
	assert.Equal(t, resp.CorrelationID, record.CorrelationID)

	// Generate and evaluate both leave steps in the trace.
	toolNames := make([]string, 0, len(record.Steps))
	for _, step := range record.Steps {
		toolNames = append(toolNames, step.ToolName)
	}
	assert.Contains(t, toolNames, "llm_generate")
	assert.Contains(t, toolNames, "qa_evaluate")
}

func TestExecutePromotesStrategyAboveThresholds(t *testing.T) {
	client := &stubLLM{solutions: []string{"the answer"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: trivialTask()})
	require.True(t, resp.OK)

	// Score 0.95 clears both thresholds: agent namespace and consensus.
	entries, err := f.memory.Retrieve(ctx, "builder", "alice", "strategy say hello", "", 5)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, memory.TypeStrategy, entries[0].Type)

	shared, err := f.memory.Retrieve(ctx, "builder", "consensus", "strategy say hello", "", 5)
	require.NoError(t, err)
	require.NotEmpty(t, shared)
	assert.Equal(t, memory.TypeConsensus, shared[0].Type)
}

func TestExecuteLowScoreSkipsPromotion(t *testing.T) {
	verdict := `{"valid": true, "confidence": 0.6, "issues": []}`
	client := &stubLLM{solutions: []string{"ok"}, verdicts: []string{verdict}}
	f := setupRuntime(t, client)
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: trivialTask()})
	require.True(t, resp.OK)

	entries, err := f.memory.Retrieve(ctx, "builder", "alice", "strategy say hello", "", 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExecuteFreeTierSkipsGovernor(t *testing.T) {
	client := &stubLLM{solutions: []string{"hi"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: trivialTask()})
	require.True(t, resp.OK)
	assert.Zero(t, resp.Routing.EstimatedCost)

	window := time.Now().UTC().Format("2006-01")
	entries, err := f.governor.AuditEntries(ctx, "builder", window)
	require.NoError(t, err)
	assert.Empty(t, entries, "free-tier runs must not touch the audit log")
}

func TestExecuteBudgetExceeded(t *testing.T) {
	client := &stubLLM{solutions: []string{"unused"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	f.cfg.Budget.DefaultMonthlyLimit = 0.001
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: expensiveTask()})

	require.False(t, resp.OK)
	assert.Equal(t, ErrKindBudgetExceeded, resp.ErrorKind)
	assert.Empty(t, resp.Artifact)
	assert.Equal(t, 0, f.llm.execCalls, "blocked runs must not call the model")
}

func TestExecuteSafetyBlocked(t *testing.T) {
	client := &stubLLM{solutions: []string{"unused"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client, withSafety(&stubSafety{blockAll: true}))
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: trivialTask()})

	require.False(t, resp.OK)
	assert.Equal(t, ErrKindSafetyBlocked, resp.ErrorKind)
	assert.Contains(t, resp.Message, "content policy")
	assert.Equal(t, 0, f.llm.execCalls)
}

func TestExecuteUnknownAgent(t *testing.T) {
	client := &stubLLM{solutions: []string{"unused"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)

	resp := f.runtime.Execute(context.Background(), &Request{AgentName: "ghost", UserID: "alice", Task: trivialTask()})

	require.False(t, resp.OK)
	assert.Equal(t, ErrKindConfiguration, resp.ErrorKind)
}

func TestExecuteCorrectionExhaustionRecordsTrajectory(t *testing.T) {
	client := &stubLLM{
		solutions: []string{"attempt one", "attempt two"},
		verdicts:  []string{invalidVerdict},
	}
	f := setupRuntime(t, client)
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: trivialTask()})

	require.False(t, resp.OK)
	assert.Equal(t, ErrKindExecution, resp.ErrorKind)
	assert.Equal(t, 2, resp.Attempts)
	assert.Equal(t, "attempt two", resp.Artifact, "last solution is still returned")
	assert.Len(t, resp.History, 2)

	// The failed run still leaves a trajectory for anti-pattern mining.
	require.NotEmpty(t, resp.TrajectoryID)
	record, err := f.trajectories.Get(ctx, resp.TrajectoryID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePartial, record.FinalOutcome)
	assert.Zero(t, record.Reward)
	assert.Contains(t, record.FailureRationale, "2 attempts")
}

func TestExecuteProviderFailure(t *testing.T) {
	client := &stubLLM{execErr: errors.New("connection refused"), verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	ctx := context.Background()

	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: trivialTask()})

	require.False(t, resp.OK)
	assert.Equal(t, ErrKindProvider, resp.ErrorKind)
	assert.Contains(t, resp.Message, "connection refused")

	// A failure trajectory is recorded even when no attempt produced output.
	require.NotEmpty(t, resp.TrajectoryID)
	record, err := f.trajectories.Get(ctx, resp.TrajectoryID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, record.FinalOutcome)
}

func TestExecuteMemoryFailureDoesNotAbort(t *testing.T) {
	client := &stubLLM{solutions: []string{"still fine"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	f.runtime.memory = failingMemory{}

	resp := f.runtime.Execute(context.Background(), &Request{AgentName: "builder", UserID: "alice", Task: trivialTask()})

	require.True(t, resp.OK, "memory outages must not fail the run")
	assert.Equal(t, "still fine", resp.Artifact)
}

func TestExecuteToolFailureIsFatal(t *testing.T) {
	client := &stubLLM{solutions: []string{"unused"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	f.runtime.RegisterTool(ToolFunc{
		ToolName: "repo",
		Fn: func(context.Context, map[string]any) (string, error) {
			return "", errors.New("git clone failed")
		},
	})
	ctx := context.Background()

	task := trivialTask()
	task.RequiredTools = []string{"repo"}
	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: task})

	require.False(t, resp.OK)
	assert.Equal(t, ErrKindExecution, resp.ErrorKind)
	assert.Contains(t, resp.Message, "git clone failed")
	assert.Equal(t, 0, f.llm.execCalls)

	record, err := f.trajectories.Get(ctx, resp.TrajectoryID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, record.FinalOutcome)
	require.Len(t, record.Steps, 1)
	assert.Equal(t, "repo", record.Steps[0].ToolName)
}

func TestExecuteToolOutputFeedsContext(t *testing.T) {
	client := &stubLLM{solutions: []string{"built"}, verdicts: []string{validVerdict}}
	f := setupRuntime(t, client)
	f.runtime.RegisterTool(ToolFunc{
		ToolName: "kb_search",
		Fn: func(context.Context, map[string]any) (string, error) {
			return "three related documents", nil
		},
	})
	ctx := context.Background()

	task := trivialTask()
	task.RequiredTools = []string{"kb_search"}
	resp := f.runtime.Execute(ctx, &Request{AgentName: "builder", UserID: "alice", Task: task})

	require.True(t, resp.OK)
	record, err := f.trajectories.Get(ctx, resp.TrajectoryID)
	require.NoError(t, err)

	toolNames := make([]string, 0, len(record.Steps))
	for _, step := range record.Steps {
		toolNames = append(toolNames, step.ToolName)
	}
	assert.Equal(t, "kb_search", toolNames[0], "tool steps precede model steps")
	assert.Contains(t, toolNames, "llm_generate")
}

func TestExecuteValidatesRequest(t *testing.T) {
	client := &stubLLM{}
	f := setupRuntime(t, client)

	resp := f.runtime.Execute(context.Background(), &Request{AgentName: "builder"})
	require.False(t, resp.OK)
	assert.Equal(t, ErrKindValidation, resp.ErrorKind)
}
