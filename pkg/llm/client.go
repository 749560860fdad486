// Package llm wraps the gRPC LLM sidecar behind a small client interface
// with structured-output decoding and an optional canned fallback.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/agentfoundry/maestro/pkg/config"
)

// Message is one conversation turn sent to the LLM service.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// GenerateInput is one generation request. Provider carries the registry
// entry the router resolved for the task's tier.
type GenerateInput struct {
	CorrelationID string
	Messages      []Message
	Provider      *config.LLMProviderConfig
	JSONSchema    string // non-empty constrains output to the schema
}

// GenerateResult is the aggregated response of one call.
type GenerateResult struct {
	Content      string
	InputTokens  int
	OutputTokens int
	TotalTokens  int

	// Canned marks a fallback response produced without a provider call.
	Canned bool
}

// Client is the LLM capability consumed by the runtime and the evolution
// engine.
type Client interface {
	// Generate runs one completion and aggregates the streamed response.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateResult, error)

	// GenerateStructured runs a completion and decodes the response JSON
	// into out, tolerating markdown-wrapped output.
	GenerateStructured(ctx context.Context, input *GenerateInput, out interface{}) (*GenerateResult, error)

	// Close releases the underlying connection.
	Close() error
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// DecodeJSON parses a model response as JSON with a two-step fallback:
// direct parse, then the first regex-extracted object. Model output is
// never trusted structurally; callers still validate field ranges.
func DecodeJSON(text string, out interface{}) error {
	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}
	if match := jsonObjectPattern.FindString(text); match != "" {
		if err := json.Unmarshal([]byte(match), out); err == nil {
			return nil
		}
	}
	return fmt.Errorf("response contains no parseable JSON object")
}
