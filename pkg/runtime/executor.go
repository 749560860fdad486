package runtime

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/correction"
	"github.com/agentfoundry/maestro/pkg/llm"
	"github.com/agentfoundry/maestro/pkg/observability"
)

// maxRecordedResult bounds how much tool/model output lands in a single
// ActionStep.
const maxRecordedResult = 2000

// llmExecutor produces candidate solutions through the LLM capability,
// recording every call as an ActionStep.
type llmExecutor struct {
	client       llm.Client
	provider     *config.LLMProviderConfig
	instructions string
	recorder     *stepRecorder
	canned       atomic.Bool
}

func (e *llmExecutor) Execute(ctx context.Context, prompt string) (string, error) {
	result, err := e.client.Generate(ctx, &llm.GenerateInput{
		CorrelationID: observability.CorrelationID(ctx),
		Provider:      e.provider,
		Messages: []llm.Message{
			{Role: "system", Content: e.instructions},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		e.recorder.record("llm_generate", nil, fmt.Sprintf("error: %v", err), "")
		return "", err
	}
	if result.Canned {
		e.canned.Store(true)
	}

	e.recorder.record("llm_generate",
		map[string]any{"model": e.provider.Model, "tokens": result.TotalTokens},
		truncate(result.Content, maxRecordedResult),
		"generate candidate solution")
	return result.Content, nil
}

// qaEvaluator validates candidates through the LLM capability. It returns
// the model's raw output; the correction loop parses the verdict.
type qaEvaluator struct {
	client   llm.Client
	provider *config.LLMProviderConfig
	recorder *stepRecorder
}

const evaluatorInstructions = `You are a strict QA validator. Evaluate the solution against the task and respond with a JSON object:
{"valid": bool, "confidence": float, "issues": [{"category": "correctness|completeness|quality|safety", "severity": "low|medium|high", "description": "...", "suggestion": "..."}], "suggestions": ["..."]}`

func (e *qaEvaluator) Evaluate(ctx context.Context, req correction.EvalRequest) (string, error) {
	result, err := e.client.Generate(ctx, &llm.GenerateInput{
		CorrelationID: observability.CorrelationID(ctx),
		Provider:      e.provider,
		Messages: []llm.Message{
			{Role: "system", Content: evaluatorInstructions},
			{Role: "user", Content: buildEvalPrompt(req)},
		},
	})
	if err != nil {
		e.recorder.record("qa_evaluate", nil, fmt.Sprintf("error: %v", err), "")
		return "", err
	}

	e.recorder.record("qa_evaluate", nil, truncate(result.Content, maxRecordedResult), "validate candidate")
	return result.Content, nil
}

func buildEvalPrompt(req correction.EvalRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Task:\n%s\n\nSolution:\n%s\n", req.Task, req.Solution)
	if len(req.Expectations) > 0 {
		b.WriteString("\nExpectations:\n")
		for key, value := range req.Expectations {
			fmt.Fprintf(&b, "- %s: %s\n", key, value)
		}
	}
	if req.Context != "" {
		fmt.Fprintf(&b, "\nContext:\n%s\n", req.Context)
	}
	if len(req.Categories) > 0 {
		b.WriteString("\nCheck these categories: ")
		for i, category := range req.Categories {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(string(category))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
