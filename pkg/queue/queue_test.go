package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/taskrun"
	"github.com/agentfoundry/maestro/pkg/config"
	testdb "github.com/agentfoundry/maestro/test/database"
)

// stubExecutor completes every run with a fixed artifact, recording the order
// runs were processed in.
type stubExecutor struct {
	mu        sync.Mutex
	processed []string
	delay     time.Duration
	fail      bool
}

func (e *stubExecutor) Execute(ctx context.Context, run *ent.TaskRun) *ExecutionResult {
	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
		}
	}

	e.mu.Lock()
	e.processed = append(e.processed, run.ID)
	e.mu.Unlock()

	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return &ExecutionResult{Status: taskrun.StatusCancelled, Error: context.Canceled}
	case e.fail:
		return &ExecutionResult{
			Status:    taskrun.StatusFailed,
			ErrorKind: "execution",
			Error:     errors.New("boom"),
			Attempts:  3,
		}
	default:
		return &ExecutionResult{
			Status:        taskrun.StatusCompleted,
			Result:        "done: " + run.Description,
			Attempts:      1,
			CorrelationID: "corr-" + run.ID,
			ModelTier:     "FREE",
			Difficulty:    "trivial",
		}
	}
}

func (e *stubExecutor) order() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.processed...)
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.RunTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = time.Hour
	return cfg
}

func createRun(t *testing.T, client *ent.Client, description string) *ent.TaskRun {
	t.Helper()
	run, err := client.TaskRun.Create().
		SetID(uuid.New().String()).
		SetAgentName("builder").
		SetUserID("alice").
		SetDescription(description).
		SetTaskType("test").
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func waitForStatus(t *testing.T, client *ent.Client, runID string, want taskrun.Status) *ent.TaskRun {
	t.Helper()
	var run *ent.TaskRun
	require.Eventually(t, func() bool {
		var err error
		run, err = client.TaskRun.Get(context.Background(), runID)
		require.NoError(t, err)
		return run.Status == want
	}, 10*time.Second, 25*time.Millisecond, "run %s never reached %s", runID, want)
	return run
}

func TestPoolProcessesPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	executor := &stubExecutor{}
	pool := NewWorkerPool("pod-1", client, fastQueueConfig(), executor)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	run := createRun(t, client, "build the widget")
	final := waitForStatus(t, client, run.ID, taskrun.StatusCompleted)

	require.NotNil(t, final.Result)
	assert.Equal(t, "done: build the widget", *final.Result)
	assert.Equal(t, 1, final.Attempts)
	assert.Equal(t, "corr-"+run.ID, final.CorrelationID)
	assert.Equal(t, "FREE", final.ModelTier)
	require.NotNil(t, final.PodID)
	assert.Equal(t, "pod-1", *final.PodID)
	assert.NotNil(t, final.StartedAt)
	assert.NotNil(t, final.CompletedAt)
}

func TestPoolRecordsFailure(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	executor := &stubExecutor{fail: true}
	pool := NewWorkerPool("pod-1", client, fastQueueConfig(), executor)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	run := createRun(t, client, "doomed")
	final := waitForStatus(t, client, run.ID, taskrun.StatusFailed)

	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, "execution", *final.ErrorKind)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, "boom", *final.ErrorMessage)
	assert.Equal(t, 3, final.Attempts)
}

func TestPoolProcessesFIFO(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	executor := &stubExecutor{}

	cfg := fastQueueConfig()
	cfg.WorkerCount = 1

	var ids []string
	for i := 0; i < 3; i++ {
		run, err := client.TaskRun.Create().
			SetID(uuid.New().String()).
			SetAgentName("builder").
			SetDescription(fmt.Sprintf("task %d", i)).
			SetCreatedAt(time.Now().Add(time.Duration(i) * time.Millisecond)).
			Save(context.Background())
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	pool := NewWorkerPool("pod-1", client, cfg, executor)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	for _, id := range ids {
		waitForStatus(t, client, id, taskrun.StatusCompleted)
	}
	assert.Equal(t, ids, executor.order(), "single worker processes oldest first")
}

func TestPoolCancelRun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	executor := &stubExecutor{delay: 5 * time.Second}
	pool := NewWorkerPool("pod-1", client, fastQueueConfig(), executor)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	run := createRun(t, client, "long running")
	waitForStatus(t, client, run.ID, taskrun.StatusInProgress)

	require.Eventually(t, func() bool {
		return pool.CancelRun(run.ID)
	}, 5*time.Second, 25*time.Millisecond)

	final := waitForStatus(t, client, run.ID, taskrun.StatusCancelled)
	assert.NotNil(t, final.CompletedAt)
}

func TestCancelRunUnknownID(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	pool := NewWorkerPool("pod-1", client, fastQueueConfig(), &stubExecutor{})
	assert.False(t, pool.CancelRun("no-such-run"))
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := fastQueueConfig()
	cfg.OrphanThreshold = time.Minute
	pool := NewWorkerPool("pod-1", client, cfg, &stubExecutor{})
	ctx := context.Background()

	stale := time.Now().Add(-10 * time.Minute)
	orphan, err := client.TaskRun.Create().
		SetID(uuid.New().String()).
		SetAgentName("builder").
		SetDescription("abandoned").
		SetStatus(taskrun.StatusInProgress).
		SetPodID("pod-dead").
		SetLastInteractionAt(stale).
		Save(ctx)
	require.NoError(t, err)

	// A run with a fresh heartbeat must be left alone.
	healthy, err := client.TaskRun.Create().
		SetID(uuid.New().String()).
		SetAgentName("builder").
		SetDescription("still working").
		SetStatus(taskrun.StatusInProgress).
		SetPodID("pod-2").
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	recovered, err := client.TaskRun.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, taskrun.StatusTimedOut, recovered.Status)
	require.NotNil(t, recovered.ErrorMessage)
	assert.Contains(t, *recovered.ErrorMessage, "pod-dead")

	untouched, err := client.TaskRun.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, taskrun.StatusInProgress, untouched.Status)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	mine, err := client.TaskRun.Create().
		SetID(uuid.New().String()).
		SetAgentName("builder").
		SetDescription("crashed mid-run").
		SetStatus(taskrun.StatusInProgress).
		SetPodID("pod-1").
		Save(ctx)
	require.NoError(t, err)

	other, err := client.TaskRun.Create().
		SetID(uuid.New().String()).
		SetAgentName("builder").
		SetDescription("someone else's run").
		SetStatus(taskrun.StatusInProgress).
		SetPodID("pod-2").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, "pod-1"))

	recovered, err := client.TaskRun.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, taskrun.StatusTimedOut, recovered.Status)

	untouched, err := client.TaskRun.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, taskrun.StatusInProgress, untouched.Status)
}

func TestPoolHealth(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	pool := NewWorkerPool("pod-1", client, fastQueueConfig(), &stubExecutor{})

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	createRun(t, client, "queued")

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
}

func TestStartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	pool := NewWorkerPool("pod-1", client, fastQueueConfig(), &stubExecutor{})

	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Len(t, pool.workers, 2, "duplicate Start must not spawn more workers")
}
