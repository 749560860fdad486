package llm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/agentfoundry/maestro/proto"
)

// GRPCClient implements Client by calling the LLM sidecar over gRPC and
// aggregating its response stream.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient connects to the LLM service at addr.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Generate sends one request and drains the response stream into a single
// result. Error chunks from the sidecar surface as errors.
func (c *GRPCClient) Generate(ctx context.Context, input *GenerateInput) (*GenerateResult, error) {
	if input.Provider != nil && input.Provider.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, input.Provider.Timeout)
		defer cancel()
	}

	stream, err := c.client.Generate(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	var content strings.Builder
	result := &GenerateResult{}
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("LLM stream error: %w", err)
		}

		switch chunk := resp.Content.(type) {
		case *llmv1.GenerateResponse_Text:
			content.WriteString(chunk.Text.Content)
		case *llmv1.GenerateResponse_Usage:
			result.InputTokens = int(chunk.Usage.InputTokens)
			result.OutputTokens = int(chunk.Usage.OutputTokens)
			result.TotalTokens = int(chunk.Usage.TotalTokens)
		case *llmv1.GenerateResponse_Error:
			return nil, fmt.Errorf("LLM provider error %s: %s", chunk.Error.Code, chunk.Error.Message)
		}
	}

	result.Content = content.String()
	return result, nil
}

// GenerateStructured runs Generate and decodes the response JSON into out.
func (c *GRPCClient) GenerateStructured(ctx context.Context, input *GenerateInput, out interface{}) (*GenerateResult, error) {
	result, err := c.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := DecodeJSON(result.Content, out); err != nil {
		return nil, fmt.Errorf("structured output decode failed: %w", err)
	}
	return result, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(input *GenerateInput) *llmv1.GenerateRequest {
	req := &llmv1.GenerateRequest{
		CorrelationId: input.CorrelationID,
		JsonSchema:    input.JSONSchema,
	}
	for _, msg := range input.Messages {
		req.Messages = append(req.Messages, &llmv1.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	if provider := input.Provider; provider != nil {
		cfg := &llmv1.LLMConfig{
			Provider:  provider.Type,
			Model:     provider.Model,
			ApiKeyEnv: provider.APIKeyEnv,
			BaseUrl:   provider.BaseURL,
			MaxTokens: int32(provider.MaxTokens),
		}
		if provider.Temperature != nil {
			temp := float32(*provider.Temperature)
			cfg.Temperature = &temp
		}
		req.Config = cfg
	}
	return req
}
