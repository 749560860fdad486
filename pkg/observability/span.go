package observability

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/pkg/config"
)

// SpanType classifies what layer of the system a span covers.
type SpanType string

const (
	SpanOrchestration  SpanType = "orchestration"
	SpanHTDAG          SpanType = "htdag"
	SpanHALO           SpanType = "halo"
	SpanAOP            SpanType = "aop"
	SpanExecution      SpanType = "execution"
	SpanInfrastructure SpanType = "infrastructure"
)

// SpanStatus is a span's terminal status.
type SpanStatus string

const (
	SpanStatusOK        SpanStatus = "ok"
	SpanStatusError     SpanStatus = "error"
	SpanStatusCancelled SpanStatus = "cancelled"
)

// Span is one recorded operation. Filtered spans are no-ops: attribute
// writes and End are accepted but nothing is recorded.
type Span struct {
	SpanID        string                 `json:"span_id"`
	Type          SpanType               `json:"type"`
	Name          string                 `json:"name"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	ParentSpanID  string                 `json:"parent_span_id,omitempty"`
	StartTime     time.Time              `json:"start_time"`
	EndTime       time.Time              `json:"end_time,omitempty"`
	Status        SpanStatus             `json:"status,omitempty"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`

	noop  bool
	onEnd func(*Span)
	mu    sync.Mutex
	ended bool
}

// Noop reports whether the span was filtered out by sampling.
func (s *Span) Noop() bool {
	return s.noop
}

// SetAttribute records a custom attribute on the span.
func (s *Span) SetAttribute(key string, value interface{}) {
	if s.noop {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Attributes == nil {
		s.Attributes = make(map[string]interface{})
	}
	s.Attributes[key] = value
}

// End finishes the span with a terminal status. Subsequent calls are
// ignored.
func (s *Span) End(status SpanStatus) {
	if s.noop {
		return
	}
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	s.EndTime = time.Now().UTC()
	s.Status = status
	onEnd := s.onEnd
	s.mu.Unlock()

	if onEnd != nil {
		onEnd(s)
	}
}

// Duration returns the span's elapsed time; zero until ended.
func (s *Span) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Tracer starts spans subject to the configured sampling ratio and
// allowed-type set.
type Tracer struct {
	ratio   float64
	allowed map[SpanType]bool
	sample  func() float64
	onEnd   func(*Span)
}

// NewTracer builds a tracer from config. onEnd receives every recorded span
// when it finishes; pass nil to discard.
func NewTracer(cfg *config.ObservabilityConfig, onEnd func(*Span)) *Tracer {
	var allowed map[SpanType]bool
	if len(cfg.AllowedSpanTypes) > 0 {
		allowed = make(map[SpanType]bool, len(cfg.AllowedSpanTypes))
		for _, t := range cfg.AllowedSpanTypes {
			allowed[SpanType(t)] = true
		}
	}
	return &Tracer{
		ratio:   cfg.SamplingRatio,
		allowed: allowed,
		sample:  rand.Float64,
		onEnd:   onEnd,
	}
}

// StartSpan opens a span, pulling the correlation context from ctx. Spans
// outside the sample or with a disallowed type are no-ops.
func (t *Tracer) StartSpan(ctx context.Context, spanType SpanType, name string) *Span {
	if !t.sampled(spanType) {
		return &Span{Type: spanType, Name: name, noop: true}
	}

	span := &Span{
		SpanID:    uuid.New().String(),
		Type:      spanType,
		Name:      name,
		StartTime: time.Now().UTC(),
		onEnd:     t.onEnd,
	}
	if corr := CorrelationFrom(ctx); corr != nil {
		span.CorrelationID = corr.CorrelationID
		span.ParentSpanID = corr.ParentSpanID
	}
	return span
}

func (t *Tracer) sampled(spanType SpanType) bool {
	if t.allowed != nil && !t.allowed[spanType] {
		return false
	}
	if t.ratio >= 1 {
		return true
	}
	if t.ratio <= 0 {
		return false
	}
	return t.sample() < t.ratio
}
