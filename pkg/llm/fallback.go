package llm

import (
	"context"
	"log/slog"
)

// cannedResponse is returned when a provider call fails and the provider
// allows degraded operation.
const cannedResponse = `{"status": "degraded", "content": "The model service is temporarily unavailable. This is a canned placeholder response."}`

// FallbackClient wraps a Client and substitutes a canned response when the
// provider fails and its configuration allows it. Providers without
// AllowCannedFallback propagate the error unchanged.
type FallbackClient struct {
	inner Client
}

// NewFallbackClient wraps inner with canned-fallback behavior.
func NewFallbackClient(inner Client) *FallbackClient {
	return &FallbackClient{inner: inner}
}

func (c *FallbackClient) Generate(ctx context.Context, input *GenerateInput) (*GenerateResult, error) {
	result, err := c.inner.Generate(ctx, input)
	if err == nil {
		return result, nil
	}
	if input.Provider == nil || !input.Provider.AllowCannedFallback {
		return nil, err
	}

	slog.Warn("LLM call failed, returning canned fallback",
		"correlation_id", input.CorrelationID,
		"model", input.Provider.Model,
		"error", err)
	return &GenerateResult{Content: cannedResponse, Canned: true}, nil
}

func (c *FallbackClient) GenerateStructured(ctx context.Context, input *GenerateInput, out interface{}) (*GenerateResult, error) {
	result, err := c.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := DecodeJSON(result.Content, out); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *FallbackClient) Close() error {
	return c.inner.Close()
}
