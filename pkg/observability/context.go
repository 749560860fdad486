// Package observability provides correlation contexts, sampled spans, a
// metrics registry, and the dashboard feed (snapshot plus JSONL event logs).
package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CorrelationContext identifies one user request. It is created at request
// entry and propagated to every span, metric, audit entry, and trajectory
// produced for the request.
type CorrelationContext struct {
	CorrelationID string    `json:"correlation_id"`
	UserRequest   string    `json:"user_request,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	ParentSpanID  string    `json:"parent_span_id,omitempty"`
}

// NewCorrelationContext creates a context for a fresh request.
func NewCorrelationContext(userRequest string) *CorrelationContext {
	return &CorrelationContext{
		CorrelationID: uuid.New().String(),
		UserRequest:   userRequest,
		Timestamp:     time.Now().UTC(),
	}
}

// Child derives a context that shares the correlation id but records the
// span it was spawned under.
func (c *CorrelationContext) Child(parentSpanID string) *CorrelationContext {
	return &CorrelationContext{
		CorrelationID: c.CorrelationID,
		UserRequest:   c.UserRequest,
		Timestamp:     c.Timestamp,
		ParentSpanID:  parentSpanID,
	}
}

type correlationKey struct{}

// WithCorrelation attaches a correlation context to a context.Context.
func WithCorrelation(ctx context.Context, corr *CorrelationContext) context.Context {
	return context.WithValue(ctx, correlationKey{}, corr)
}

// CorrelationFrom extracts the correlation context, or nil when absent.
func CorrelationFrom(ctx context.Context) *CorrelationContext {
	corr, _ := ctx.Value(correlationKey{}).(*CorrelationContext)
	return corr
}

// CorrelationID returns the request's correlation id, or "" when the context
// carries none.
func CorrelationID(ctx context.Context) string {
	if corr := CorrelationFrom(ctx); corr != nil {
		return corr.CorrelationID
	}
	return ""
}
