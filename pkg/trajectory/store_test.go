package trajectory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/models"
	testdb "github.com/agentfoundry/maestro/test/database"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewStore(client.Client)
}

func failureRecord(agentID, taskType, rationale, fix string, createdAt time.Time) *models.TrajectoryRecord {
	return &models.TrajectoryRecord{
		AgentID:          agentID,
		TaskDescription:  "scrape vendor pricing page",
		TaskType:         taskType,
		FinalOutcome:     models.OutcomeFailure,
		FailureRationale: rationale,
		ErrorCategory:    "tool_error",
		FixApplied:       fix,
		CreatedAt:        createdAt,
	}
}

func TestStoreAndGetRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	stepTime := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	record := &models.TrajectoryRecord{
		AgentID:         "builder",
		TaskDescription: "generate landing page",
		TaskType:        "codegen",
		InitialState:    "empty workspace",
		Steps: []models.ActionStep{
			{
				Timestamp:      stepTime,
				ToolName:       "write_file",
				ToolArgs:       map[string]any{"path": "index.html"},
				ToolResult:     "ok",
				AgentReasoning: "start from the template",
			},
			{
				Timestamp:  stepTime.Add(time.Second),
				ToolName:   "run_lint",
				ToolResult: "clean",
			},
		},
		FinalOutcome:  models.OutcomeSuccess,
		Reward:        0.85,
		Duration:      4200 * time.Millisecond,
		CorrelationID: "corr-1",
	}

	id, err := store.Store(ctx, record)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "builder", got.AgentID)
	assert.Equal(t, models.OutcomeSuccess, got.FinalOutcome)
	assert.InDelta(t, 0.85, got.Reward, 1e-9)
	assert.Equal(t, 4200*time.Millisecond, got.Duration)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "write_file", got.Steps[0].ToolName)
	assert.Equal(t, "index.html", got.Steps[0].ToolArgs["path"])
	assert.Equal(t, "run_lint", got.Steps[1].ToolName)
}

// Stored trajectories are immutable: callers mutating their copies never
// affect the persisted record.
func TestStoredTrajectoryIsImmutable(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	record := &models.TrajectoryRecord{
		AgentID:         "builder",
		TaskDescription: "generate landing page",
		Steps: []models.ActionStep{
			{ToolName: "write_file", ToolResult: "ok"},
		},
		FinalOutcome: models.OutcomeSuccess,
		Reward:       0.9,
	}
	id, err := store.Store(ctx, record)
	require.NoError(t, err)

	first, err := store.Get(ctx, id)
	require.NoError(t, err)
	first.Steps[0].ToolName = "tampered"
	first.FinalOutcome = models.OutcomeFailure

	second, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "write_file", second.Steps[0].ToolName)
	assert.Equal(t, models.OutcomeSuccess, second.FinalOutcome)
}

func TestStoreRejectsDuplicateID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	record := &models.TrajectoryRecord{
		TrajectoryID:    "traj-1",
		AgentID:         "builder",
		TaskDescription: "task",
		FinalOutcome:    models.OutcomeSuccess,
	}
	_, err := store.Store(ctx, record)
	require.NoError(t, err)

	_, err = store.Store(ctx, record)
	assert.Error(t, err)
}

func TestQueryByOutcome(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.Store(ctx, failureRecord("qa", "scraping", fmt.Sprintf("rationale %d", i), "", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := store.Store(ctx, &models.TrajectoryRecord{
		AgentID:         "builder",
		TaskDescription: "other agent failure",
		FinalOutcome:    models.OutcomeFailure,
		CreatedAt:       base,
	})
	require.NoError(t, err)
	_, err = store.Store(ctx, &models.TrajectoryRecord{
		AgentID:         "qa",
		TaskDescription: "a success",
		FinalOutcome:    models.OutcomeSuccess,
		CreatedAt:       base,
	})
	require.NoError(t, err)

	failures, err := store.QueryByOutcome(ctx, models.OutcomeFailure, "qa", 10)
	require.NoError(t, err)
	require.Len(t, failures, 3)
	// Newest first.
	assert.Equal(t, "rationale 2", failures[0].FailureRationale)

	limited, err := store.QueryByOutcome(ctx, models.OutcomeFailure, "", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestQueryAntiPatterns(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.Store(ctx, failureRecord("qa", "scraping", "selector not found", "update selector", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := store.Store(ctx, failureRecord("qa", "scraping", "rate limited", "add backoff", base))
	require.NoError(t, err)

	// Failure without rationale is not indexed.
	_, err = store.Store(ctx, &models.TrajectoryRecord{
		AgentID:         "qa",
		TaskDescription: "no rationale",
		TaskType:        "scraping",
		FinalOutcome:    models.OutcomeFailure,
		CreatedAt:       base,
	})
	require.NoError(t, err)

	patterns, err := store.QueryAntiPatterns(ctx, "scraping", 5)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.Equal(t, "selector not found", patterns[0].FailureRationale)
	assert.Equal(t, 3, patterns[0].Frequency)
	assert.Equal(t, "update selector", patterns[0].FixApplied)
	assert.Equal(t, "rate limited", patterns[1].FailureRationale)
	assert.Equal(t, 1, patterns[1].Frequency)

	top1, err := store.QueryAntiPatterns(ctx, "scraping", 1)
	require.NoError(t, err)
	require.Len(t, top1, 1)
	assert.Equal(t, "selector not found", top1[0].FailureRationale)

	none, err := store.QueryAntiPatterns(ctx, "unknown-type", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStoreValidation(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.Store(ctx, nil)
	assert.Error(t, err)

	_, err = store.Store(ctx, &models.TrajectoryRecord{AgentID: "qa", TaskDescription: "x", FinalOutcome: "bogus"})
	assert.Error(t, err)

	_, err = store.Store(ctx, &models.TrajectoryRecord{AgentID: "qa", TaskDescription: "x", FinalOutcome: models.OutcomeSuccess, Reward: 1.5})
	assert.Error(t, err)
}
