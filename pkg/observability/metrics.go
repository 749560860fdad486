package observability

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Metrics is the process-wide metrics registry: labelled counters plus a
// timed-operation helper. Default labels (service, environment) are merged
// into every metric.
type Metrics struct {
	defaults map[string]string

	mu        sync.Mutex
	counters  map[string]float64
	durations map[string]*durationStat
	now       func() time.Time
}

type durationStat struct {
	Count        int64   `json:"count"`
	TotalSeconds float64 `json:"total_seconds"`
	LastSeconds  float64 `json:"last_seconds"`
}

// NewMetrics creates a registry with the given default labels.
func NewMetrics(service, environment string) *Metrics {
	return &Metrics{
		defaults:  map[string]string{"service": service, "environment": environment},
		counters:  make(map[string]float64),
		durations: make(map[string]*durationStat),
		now:       time.Now,
	}
}

// IncCounter adds delta to a labelled counter.
func (m *Metrics) IncCounter(name string, labels map[string]string, delta float64) {
	key := m.key(name, labels)
	m.mu.Lock()
	m.counters[key] += delta
	m.mu.Unlock()
}

// TimeOperation runs fn and records "<name>.duration" in seconds, labelled
// with the outcome.
func (m *Metrics) TimeOperation(name string, labels map[string]string, fn func() error) error {
	start := m.now()
	err := fn()
	elapsed := m.now().Sub(start).Seconds()

	merged := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		merged[k] = v
	}
	if err != nil {
		merged["outcome"] = "error"
	} else {
		merged["outcome"] = "ok"
	}

	key := m.key(name+".duration", merged)
	m.mu.Lock()
	stat, ok := m.durations[key]
	if !ok {
		stat = &durationStat{}
		m.durations[key] = stat
	}
	stat.Count++
	stat.TotalSeconds += elapsed
	stat.LastSeconds = elapsed
	m.mu.Unlock()

	return err
}

// Counters returns a copy of all counter values keyed by their serialized
// name and labels.
func (m *Metrics) Counters() map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]float64, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out
}

// Durations returns a copy of all timed-operation stats.
func (m *Metrics) Durations() map[string]durationStat {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]durationStat, len(m.durations))
	for k, v := range m.durations {
		out[k] = *v
	}
	return out
}

// key serializes a metric name plus merged labels into a stable string:
// name{k1=v1,k2=v2} with keys sorted.
func (m *Metrics) key(name string, labels map[string]string) string {
	merged := make(map[string]string, len(m.defaults)+len(labels))
	for k, v := range m.defaults {
		merged[k] = v
	}
	for k, v := range labels {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(merged[k])
	}
	b.WriteByte('}')
	return b.String()
}
