package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/ent/taskrun"
	"github.com/agentfoundry/maestro/pkg/budget"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/database"
	"github.com/agentfoundry/maestro/pkg/masking"
	"github.com/agentfoundry/maestro/pkg/models"
	"github.com/agentfoundry/maestro/pkg/observability"
	"github.com/agentfoundry/maestro/pkg/queue"
	"github.com/agentfoundry/maestro/pkg/trajectory"
	testdb "github.com/agentfoundry/maestro/test/database"
)

type apiFixture struct {
	router       *gin.Engine
	db           *database.Client
	trajectories *trajectory.Store
	governor     *budget.Governor
	pool         *stubPool
}

type stubPool struct {
	cancelled []string
	found     bool
}

func (p *stubPool) CancelRun(runID string) bool {
	p.cancelled = append(p.cancelled, runID)
	return p.found
}

func (p *stubPool) Health() *queue.PoolHealth {
	return &queue.PoolHealth{IsHealthy: true, PodID: "pod-test", TotalWorkers: 1}
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults: &config.Defaults{RoutingPolicy: "budget"},
		Budget:   config.DefaultBudgetConfig(),
		AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
			"builder": {Capabilities: []string{"coding"}},
		}),
		LLMProviderRegistry: config.NewLLMProviderRegistry(nil),
	}

	signer, err := budget.NewSigner([]byte("test-secret"))
	require.NoError(t, err)
	governor := budget.NewGovernor(db.Client, cfg.Budget, cfg.AgentRegistry, signer, nil, nil, nil,
		masking.NewService(&config.MaskingDefaults{Enabled: false}))

	obsCfg := config.DefaultObservabilityConfig()
	obsCfg.LogDir = t.TempDir()
	obs, err := observability.NewManager(obsCfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = obs.Shutdown(context.Background()) })

	trajectories := trajectory.NewStore(db.Client)
	pool := &stubPool{found: true}

	router := gin.New()
	NewServer(cfg, db, trajectories, governor, obs, pool).RegisterRoutes(router)

	return &apiFixture{
		router:       router,
		db:           db,
		trajectories: trajectories,
		governor:     governor,
		pool:         pool,
	}
}

func (f *apiFixture) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSubmitTask(t *testing.T) {
	f := setupAPI(t)

	w := f.request(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{
		AgentName:   "builder",
		UserID:      "alice",
		Description: "build the landing page",
		TaskType:    "frontend",
	})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "builder", body["agent_name"])

	run, err := f.db.TaskRun.Get(context.Background(), body["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, taskrun.StatusPending, run.Status)
	assert.Equal(t, "alice", run.UserID)
}

func TestSubmitTaskUnknownAgent(t *testing.T) {
	f := setupAPI(t)

	w := f.request(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{
		AgentName:   "ghost",
		Description: "anything",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown agent")
}

func TestSubmitTaskMissingDescription(t *testing.T) {
	f := setupAPI(t)

	w := f.request(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{AgentName: "builder"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTaskNotFound(t *testing.T) {
	f := setupAPI(t)

	w := f.request(t, http.MethodGet, "/api/v1/tasks/no-such-run", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasksFiltersByStatus(t *testing.T) {
	f := setupAPI(t)

	submit := func(desc string) string {
		w := f.request(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{
			AgentName:   "builder",
			Description: desc,
		})
		require.Equal(t, http.StatusAccepted, w.Code)
		return decodeBody(t, w)["id"].(string)
	}

	first := submit("first")
	submit("second")

	require.NoError(t, f.db.TaskRun.UpdateOneID(first).
		SetStatus(taskrun.StatusCompleted).
		Exec(context.Background()))

	w := f.request(t, http.MethodGet, "/api/v1/tasks?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])

	w = f.request(t, http.MethodGet, "/api/v1/tasks?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelPendingTask(t *testing.T) {
	f := setupAPI(t)

	w := f.request(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{
		AgentName:   "builder",
		Description: "to be cancelled",
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = f.request(t, http.MethodPost, "/api/v1/tasks/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	run, err := f.db.TaskRun.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, taskrun.StatusCancelled, run.Status)
	assert.NotNil(t, run.CompletedAt)
	assert.Empty(t, f.pool.cancelled, "pending cancellation never touches the pool")
}

func TestCancelInProgressTask(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	w := f.request(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{
		AgentName:   "builder",
		Description: "long running",
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	id := decodeBody(t, w)["id"].(string)

	require.NoError(t, f.db.TaskRun.UpdateOneID(id).
		SetStatus(taskrun.StatusInProgress).
		SetPodID("pod-test").
		Exec(ctx))

	w = f.request(t, http.MethodPost, "/api/v1/tasks/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{id}, f.pool.cancelled)

	run, err := f.db.TaskRun.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, taskrun.StatusCancelling, run.Status)
}

func TestCancelCompletedTaskConflicts(t *testing.T) {
	f := setupAPI(t)

	w := f.request(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{
		AgentName:   "builder",
		Description: "already done",
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	id := decodeBody(t, w)["id"].(string)

	require.NoError(t, f.db.TaskRun.UpdateOneID(id).
		SetStatus(taskrun.StatusCompleted).
		Exec(context.Background()))

	w = f.request(t, http.MethodPost, "/api/v1/tasks/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListTrajectoriesAndAntiPatterns(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	_, err := f.trajectories.Store(ctx, &models.TrajectoryRecord{
		AgentID:         "builder",
		TaskDescription: "deploy service",
		TaskType:        "deploy",
		FinalOutcome:    models.OutcomeSuccess,
		Reward:          0.9,
	})
	require.NoError(t, err)

	_, err = f.trajectories.Store(ctx, &models.TrajectoryRecord{
		AgentID:          "builder",
		TaskDescription:  "deploy service again",
		TaskType:         "deploy",
		FinalOutcome:     models.OutcomeFailure,
		FailureRationale: "missing credentials",
		FixApplied:       "mount the secret",
	})
	require.NoError(t, err)

	w := f.request(t, http.MethodGet, "/api/v1/trajectories?outcome=failure", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])

	w = f.request(t, http.MethodGet, "/api/v1/anti-patterns?task_type=deploy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])
	assert.Contains(t, w.Body.String(), "missing credentials")

	w = f.request(t, http.MethodGet, "/api/v1/anti-patterns", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBudgetStatus(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	_, err := f.governor.EnsureBudget(ctx, "builder", "llm", 10, nil, "corr-1")
	require.NoError(t, err)

	w := f.request(t, http.MethodGet, "/api/v1/budget/builder", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 10, body["monthly_spend"])

	w = f.request(t, http.MethodGet, "/api/v1/budget/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAuditEntriesVerifiesSignatures(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	_, err := f.governor.EnsureBudget(ctx, "builder", "llm", 5, nil, "corr-1")
	require.NoError(t, err)
	_, err = f.governor.EnsureBudget(ctx, "builder", "llm", 7, nil, "corr-2")
	require.NoError(t, err)

	w := f.request(t, http.MethodGet, "/api/v1/budget/builder/audit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["count"])
	assert.EqualValues(t, 2, body["verified"])

	w = f.request(t, http.MethodGet, "/api/v1/budget/builder/audit?window=not-a-month", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndDashboard(t *testing.T) {
	f := setupAPI(t)

	w := f.request(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])

	w = f.request(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "generated_at")
}
