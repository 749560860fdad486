package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/agentfoundry/maestro/pkg/config"
)

// Event categories recorded to the dashboard feed.
const (
	EventCompletion    = "completion"
	EventRubric        = "rubric_report"
	EventHallucination = "hallucination"
	EventPolicy        = "policy_audit"
	EventAP2           = "ap2"
	EventX402          = "x402_transaction"
	EventSpend         = "spend"
)

const recentEventCap = 100

// Event is one dashboard feed entry, appended to events.jsonl.
type Event struct {
	Category      string                 `json:"category"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	AgentID       string                 `json:"agent_id,omitempty"`
	Timestamp     time.Time              `json:"timestamp"`
	Payload       map[string]interface{} `json:"payload,omitempty"`
}

// Snapshot is the periodic dashboard JSON document.
type Snapshot struct {
	GeneratedAt  time.Time                `json:"generated_at"`
	UptimeSec    float64                  `json:"uptime_sec"`
	Counters     map[string]float64       `json:"counters"`
	Durations    map[string]durationStat  `json:"durations"`
	RecentEvents map[string][]Event       `json:"recent_events"`
	BudgetConfig map[string]interface{}   `json:"budget_config,omitempty"`
	ActiveSpans  int                      `json:"active_spans"`
	Alerts       []map[string]interface{} `json:"alerts,omitempty"`
}

// Manager is the process-wide observability singleton. Lifecycle is
// init -> serve -> shutdown: Start launches the snapshot loop, Shutdown
// stops it and flushes the feed files.
type Manager struct {
	cfg     *config.ObservabilityConfig
	Metrics *Metrics
	Tracer  *Tracer

	mu          sync.Mutex
	recent      map[string][]Event
	alerts      []map[string]interface{}
	budgetInfo  map[string]interface{}
	activeSpans int

	events *os.File
	x402   *os.File

	startedAt time.Time
	stop      chan struct{}
	done      chan struct{}
	started   bool
}

var (
	defaultManager *Manager
	defaultOnce    sync.Once
	defaultErr     error
)

// Default returns the lazily constructed process-wide manager. Construction
// is idempotent; all callers share one instance.
func Default(cfg *config.ObservabilityConfig) (*Manager, error) {
	defaultOnce.Do(func() {
		defaultManager, defaultErr = NewManager(cfg)
	})
	return defaultManager, defaultErr
}

// NewManager creates a manager and opens the feed files under cfg.LogDir.
func NewManager(cfg *config.ObservabilityConfig) (*Manager, error) {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	events, err := os.OpenFile(filepath.Join(cfg.LogDir, "events.jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open events log: %w", err)
	}
	x402, err := os.OpenFile(filepath.Join(cfg.LogDir, "x402_alerts.jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		events.Close()
		return nil, fmt.Errorf("failed to open x402 alerts log: %w", err)
	}

	m := &Manager{
		cfg:       cfg,
		Metrics:   NewMetrics(cfg.Service, cfg.Environment),
		recent:    make(map[string][]Event),
		events:    events,
		x402:      x402,
		startedAt: time.Now().UTC(),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	m.Tracer = NewTracer(cfg, m.spanEnded)
	return m, nil
}

// Start launches the periodic snapshot loop. Calling Start twice is a no-op.
func (m *Manager) Start() {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()

	go m.snapshotLoop()
}

// Shutdown stops the snapshot loop, writes a final snapshot, and closes the
// feed files.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	started := m.started
	m.mu.Unlock()

	if started {
		close(m.stop)
		select {
		case <-m.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := m.WriteSnapshot(); err != nil {
		slog.Warn("Failed to write final dashboard snapshot", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.events.Close(); err != nil {
		return err
	}
	return m.x402.Close()
}

// RecordEvent appends an event to events.jsonl and the in-memory recents.
func (m *Manager) RecordEvent(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ring := append(m.recent[event.Category], event)
	if len(ring) > recentEventCap {
		ring = ring[len(ring)-recentEventCap:]
	}
	m.recent[event.Category] = ring

	m.appendJSONLocked(m.events, event)
}

// RecordX402Alert appends a payment alert to x402_alerts.jsonl.
func (m *Manager) RecordX402Alert(alert map[string]interface{}) {
	if _, ok := alert["timestamp"]; !ok {
		alert["timestamp"] = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerts = append(m.alerts, alert)
	if len(m.alerts) > recentEventCap {
		m.alerts = m.alerts[len(m.alerts)-recentEventCap:]
	}
	m.appendJSONLocked(m.x402, alert)
}

// SetBudgetInfo publishes the budget configuration shown in the snapshot.
func (m *Manager) SetBudgetInfo(info map[string]interface{}) {
	m.mu.Lock()
	m.budgetInfo = info
	m.mu.Unlock()
}

// CurrentSnapshot returns the dashboard document without writing it to disk.
func (m *Manager) CurrentSnapshot() *Snapshot {
	return m.snapshot()
}

// WriteSnapshot writes dashboard_snapshot.json atomically.
func (m *Manager) WriteSnapshot() error {
	snapshot := m.snapshot()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := filepath.Join(m.cfg.LogDir, "dashboard_snapshot.json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return os.Rename(tmp, path)
}

func (m *Manager) snapshot() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	recent := make(map[string][]Event, len(m.recent))
	for category, events := range m.recent {
		recent[category] = append([]Event(nil), events...)
	}
	alerts := append([]map[string]interface{}(nil), m.alerts...)

	return &Snapshot{
		GeneratedAt:  time.Now().UTC(),
		UptimeSec:    time.Since(m.startedAt).Seconds(),
		Counters:     m.Metrics.Counters(),
		Durations:    m.Metrics.Durations(),
		RecentEvents: recent,
		BudgetConfig: m.budgetInfo,
		ActiveSpans:  m.activeSpans,
		Alerts:       alerts,
	}
}

func (m *Manager) snapshotLoop() {
	defer close(m.done)

	ticker := time.NewTicker(m.cfg.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.WriteSnapshot(); err != nil {
				slog.Warn("Failed to write dashboard snapshot", "error", err)
			}
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) spanEnded(span *Span) {
	m.Metrics.IncCounter("spans.ended", map[string]string{
		"type":   string(span.Type),
		"status": string(span.Status),
	}, 1)
}

// appendJSONLocked writes one JSONL line; callers hold m.mu.
func (m *Manager) appendJSONLocked(f *os.File, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to encode feed entry", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		slog.Warn("Failed to append feed entry", "error", err)
	}
}
