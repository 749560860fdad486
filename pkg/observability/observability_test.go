package observability

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/config"
)

func testObsConfig(t *testing.T) *config.ObservabilityConfig {
	t.Helper()
	cfg := config.DefaultObservabilityConfig()
	cfg.LogDir = t.TempDir()
	cfg.SnapshotInterval = 10 * time.Millisecond
	return cfg
}

func TestCorrelationContextPropagation(t *testing.T) {
	corr := NewCorrelationContext("build me a landing page")
	require.NotEmpty(t, corr.CorrelationID)

	ctx := WithCorrelation(context.Background(), corr)
	assert.Equal(t, corr.CorrelationID, CorrelationID(ctx))
	assert.Same(t, corr, CorrelationFrom(ctx))

	child := corr.Child("span-1")
	assert.Equal(t, corr.CorrelationID, child.CorrelationID)
	assert.Equal(t, "span-1", child.ParentSpanID)

	assert.Empty(t, CorrelationID(context.Background()))
}

func TestSpanCarriesCorrelation(t *testing.T) {
	tracer := NewTracer(testObsConfig(t), nil)
	corr := NewCorrelationContext("req")
	ctx := WithCorrelation(context.Background(), corr.Child("parent-span"))

	span := tracer.StartSpan(ctx, SpanExecution, "tool_call")
	require.False(t, span.Noop())
	assert.Equal(t, corr.CorrelationID, span.CorrelationID)
	assert.Equal(t, "parent-span", span.ParentSpanID)

	span.SetAttribute("tool", "write_file")
	span.End(SpanStatusOK)
	assert.Equal(t, SpanStatusOK, span.Status)
	assert.Equal(t, "write_file", span.Attributes["tool"])
	assert.False(t, span.EndTime.IsZero())
}

func TestSpanSamplingRatioZero(t *testing.T) {
	cfg := testObsConfig(t)
	cfg.SamplingRatio = 0

	tracer := NewTracer(cfg, nil)
	span := tracer.StartSpan(context.Background(), SpanOrchestration, "noop")
	assert.True(t, span.Noop())

	// No-op spans swallow writes.
	span.SetAttribute("k", "v")
	span.End(SpanStatusError)
	assert.Empty(t, span.Attributes)
	assert.Empty(t, span.Status)
}

func TestSpanAllowedTypesFilter(t *testing.T) {
	cfg := testObsConfig(t)
	cfg.AllowedSpanTypes = []string{string(SpanExecution)}

	tracer := NewTracer(cfg, nil)
	assert.False(t, tracer.StartSpan(context.Background(), SpanExecution, "kept").Noop())
	assert.True(t, tracer.StartSpan(context.Background(), SpanInfrastructure, "dropped").Noop())
}

func TestSpanEndIsIdempotent(t *testing.T) {
	ended := 0
	tracer := NewTracer(testObsConfig(t), func(*Span) { ended++ })

	span := tracer.StartSpan(context.Background(), SpanExecution, "once")
	span.End(SpanStatusOK)
	span.End(SpanStatusError)

	assert.Equal(t, 1, ended)
	assert.Equal(t, SpanStatusOK, span.Status)
}

func TestMetricsMergeDefaultLabels(t *testing.T) {
	m := NewMetrics("maestro", "test")
	m.IncCounter("agent.calls", map[string]string{"agent": "qa"}, 1)
	m.IncCounter("agent.calls", map[string]string{"agent": "qa"}, 2)

	counters := m.Counters()
	assert.InDelta(t, 3, counters["agent.calls{agent=qa,environment=test,service=maestro}"], 1e-9)
}

func TestTimeOperationRecordsDuration(t *testing.T) {
	m := NewMetrics("maestro", "test")

	require.NoError(t, m.TimeOperation("route", nil, func() error { return nil }))
	wantErr := errors.New("provider down")
	assert.ErrorIs(t, m.TimeOperation("route", nil, func() error { return wantErr }), wantErr)

	durations := m.Durations()
	ok := durations["route.duration{environment=test,outcome=ok,service=maestro}"]
	failed := durations["route.duration{environment=test,outcome=error,service=maestro}"]
	assert.EqualValues(t, 1, ok.Count)
	assert.EqualValues(t, 1, failed.Count)
}

func TestManagerEventFeed(t *testing.T) {
	cfg := testObsConfig(t)
	m, err := NewManager(cfg)
	require.NoError(t, err)

	m.RecordEvent(Event{
		Category:      EventSpend,
		CorrelationID: "corr-1",
		AgentID:       "qa",
		Payload:       map[string]interface{}{"amount": 12.5},
	})
	m.RecordX402Alert(map[string]interface{}{"service": "serpapi", "amount": 120.0})

	require.NoError(t, m.Shutdown(context.Background()))

	events, err := os.ReadFile(filepath.Join(cfg.LogDir, "events.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(events)), "\n")
	require.Len(t, lines, 1)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.Equal(t, EventSpend, event.Category)
	assert.Equal(t, "corr-1", event.CorrelationID)
	assert.False(t, event.Timestamp.IsZero())

	alerts, err := os.ReadFile(filepath.Join(cfg.LogDir, "x402_alerts.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(alerts), "serpapi")
}

func TestManagerSnapshot(t *testing.T) {
	cfg := testObsConfig(t)
	m, err := NewManager(cfg)
	require.NoError(t, err)
	defer m.Shutdown(context.Background())

	m.Metrics.IncCounter("agent.calls", map[string]string{"agent": "qa"}, 1)
	m.RecordEvent(Event{Category: EventRubric, Payload: map[string]interface{}{"score": 0.8}})
	m.SetBudgetInfo(map[string]interface{}{"default_monthly_limit": 200.0})

	require.NoError(t, m.WriteSnapshot())

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, "dashboard_snapshot.json"))
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Len(t, snapshot.RecentEvents[EventRubric], 1)
	assert.NotEmpty(t, snapshot.Counters)
	assert.Equal(t, 200.0, snapshot.BudgetConfig["default_monthly_limit"])
}

func TestManagerSnapshotLoop(t *testing.T) {
	cfg := testObsConfig(t)
	m, err := NewManager(cfg)
	require.NoError(t, err)

	m.Start()
	m.Start() // idempotent

	path := filepath.Join(cfg.LogDir, "dashboard_snapshot.json")
	require.Eventually(t, func() bool {
		_, statErr := os.Stat(path)
		return statErr == nil
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Shutdown(context.Background()))
}

func TestRecentEventsAreBounded(t *testing.T) {
	cfg := testObsConfig(t)
	m, err := NewManager(cfg)
	require.NoError(t, err)
	defer m.Shutdown(context.Background())

	for i := 0; i < recentEventCap+20; i++ {
		m.RecordEvent(Event{Category: EventCompletion})
	}

	snapshot := m.snapshot()
	assert.Len(t, snapshot.RecentEvents[EventCompletion], recentEventCap)
}
