package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/config"
)

func TestDecodeJSONDirect(t *testing.T) {
	var out struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, DecodeJSON(`{"valid": true}`, &out))
	assert.True(t, out.Valid)
}

func TestDecodeJSONMarkdownWrapped(t *testing.T) {
	text := "Here is the result:\n```json\n{\"score\": 0.8, \"notes\": \"fine\"}\n```\nDone."

	var out struct {
		Score float64 `json:"score"`
		Notes string  `json:"notes"`
	}
	require.NoError(t, DecodeJSON(text, &out))
	assert.InDelta(t, 0.8, out.Score, 1e-9)
	assert.Equal(t, "fine", out.Notes)
}

func TestDecodeJSONNoObject(t *testing.T) {
	var out map[string]interface{}
	assert.Error(t, DecodeJSON("sorry, I cannot answer that", &out))
	assert.Error(t, DecodeJSON("{broken", &out))
}

type scriptedClient struct {
	result *GenerateResult
	err    error
	calls  int
}

func (c *scriptedClient) Generate(context.Context, *GenerateInput) (*GenerateResult, error) {
	c.calls++
	return c.result, c.err
}

func (c *scriptedClient) GenerateStructured(ctx context.Context, input *GenerateInput, out interface{}) (*GenerateResult, error) {
	result, err := c.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	return result, DecodeJSON(result.Content, out)
}

func (c *scriptedClient) Close() error { return nil }

func TestFallbackClientPassesThroughSuccess(t *testing.T) {
	inner := &scriptedClient{result: &GenerateResult{Content: "fine answer"}}
	client := NewFallbackClient(inner)

	result, err := client.Generate(context.Background(), &GenerateInput{
		Provider: &config.LLMProviderConfig{AllowCannedFallback: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "fine answer", result.Content)
	assert.False(t, result.Canned)
}

func TestFallbackClientReturnsCannedOnFailure(t *testing.T) {
	inner := &scriptedClient{err: errors.New("deadline exceeded")}
	client := NewFallbackClient(inner)

	result, err := client.Generate(context.Background(), &GenerateInput{
		Provider: &config.LLMProviderConfig{AllowCannedFallback: true},
	})
	require.NoError(t, err)
	assert.True(t, result.Canned)
	assert.Contains(t, result.Content, "degraded")
}

func TestFallbackClientPropagatesWhenDisallowed(t *testing.T) {
	wantErr := errors.New("deadline exceeded")
	inner := &scriptedClient{err: wantErr}
	client := NewFallbackClient(inner)

	_, err := client.Generate(context.Background(), &GenerateInput{
		Provider: &config.LLMProviderConfig{AllowCannedFallback: false},
	})
	assert.ErrorIs(t, err, wantErr)

	_, err = client.Generate(context.Background(), &GenerateInput{})
	assert.ErrorIs(t, err, wantErr)
}

func TestFallbackClientStructuredDecodesCanned(t *testing.T) {
	inner := &scriptedClient{err: errors.New("provider down")}
	client := NewFallbackClient(inner)

	var out struct {
		Status string `json:"status"`
	}
	result, err := client.GenerateStructured(context.Background(), &GenerateInput{
		Provider: &config.LLMProviderConfig{AllowCannedFallback: true},
	}, &out)
	require.NoError(t, err)
	assert.True(t, result.Canned)
	assert.Equal(t, "degraded", out.Status)
}
