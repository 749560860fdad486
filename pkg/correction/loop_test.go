package correction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedExecutor struct {
	solutions []string
	errs      []error
	calls     int
	prompts   []string
}

func (e *scriptedExecutor) Execute(_ context.Context, prompt string) (string, error) {
	i := e.calls
	e.calls++
	e.prompts = append(e.prompts, prompt)
	if i < len(e.errs) && e.errs[i] != nil {
		return "", e.errs[i]
	}
	if i < len(e.solutions) {
		return e.solutions[i], nil
	}
	return fmt.Sprintf("solution-%d", i+1), nil
}

type scriptedEvaluator struct {
	responses []string
	errs      []error
	calls     int
}

func (e *scriptedEvaluator) Evaluate(_ context.Context, _ EvalRequest) (string, error) {
	i := e.calls
	e.calls++
	if i < len(e.errs) && e.errs[i] != nil {
		return "", e.errs[i]
	}
	if i < len(e.responses) {
		return e.responses[i], nil
	}
	return `{"valid": true}`, nil
}

func TestFirstAttemptSuccess(t *testing.T) {
	loop := NewLoop(&scriptedExecutor{}, &scriptedEvaluator{}, 3, nil)

	result, err := loop.Run(context.Background(), "write a haiku", nil, "")
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 1, result.Attempts)

	snap := loop.Stats().Snapshot()
	assert.Equal(t, 1, snap.FirstAttemptValid)
	assert.Equal(t, 0, snap.CorrectedValid)
}

func TestCorrectedOnSecondAttempt(t *testing.T) {
	executor := &scriptedExecutor{}
	evaluator := &scriptedEvaluator{
		responses: []string{
			`{"valid": false, "issues": [{"category": "quality", "severity": "medium", "description": "too terse", "suggestion": "expand"}]}`,
			`{"valid": true}`,
		},
	}
	loop := NewLoop(executor, evaluator, 3, nil)

	result, err := loop.Run(context.Background(), "summarize the report", nil, "")
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 2, result.Attempts)
	assert.Len(t, result.History, 2)

	// The second prompt embeds the failed solution and the issue.
	require.Len(t, executor.prompts, 2)
	assert.Contains(t, executor.prompts[1], "solution-1")
	assert.Contains(t, executor.prompts[1], "too terse")
	assert.Contains(t, executor.prompts[1], "expand")

	snap := loop.Stats().Snapshot()
	assert.Equal(t, 1, snap.CorrectedValid)
	assert.Equal(t, 0, snap.FirstAttemptValid)
}

func TestExhaustedAttempts(t *testing.T) {
	evaluator := &scriptedEvaluator{
		responses: []string{
			`{"valid": false}`,
			`{"valid": false}`,
			`{"valid": false}`,
		},
	}
	loop := NewLoop(&scriptedExecutor{}, evaluator, 3, nil)

	result, err := loop.Run(context.Background(), "impossible task", nil, "")
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, "solution-3", result.Solution)

	snap := loop.Stats().Snapshot()
	assert.Equal(t, 1, snap.Failed)
}

func TestEvaluatorErrorCountsAsInvalid(t *testing.T) {
	evaluator := &scriptedEvaluator{
		errs: []error{errors.New("qa provider timeout"), nil},
	}
	loop := NewLoop(&scriptedExecutor{}, evaluator, 3, nil)

	result, err := loop.Run(context.Background(), "task", nil, "")
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 2, result.Attempts)

	first := result.History[0].Feedback
	require.Len(t, first.Issues, 1)
	assert.Equal(t, "high", first.Issues[0].Severity)
}

func TestExecutorErrorRetries(t *testing.T) {
	executor := &scriptedExecutor{
		errs: []error{errors.New("llm timeout"), nil},
	}
	loop := NewLoop(executor, &scriptedEvaluator{}, 3, nil)

	result, err := loop.Run(context.Background(), "task", nil, "")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 2, result.Attempts)
}

func TestAllExecutionsFail(t *testing.T) {
	boom := errors.New("provider down")
	executor := &scriptedExecutor{errs: []error{boom, boom}}
	loop := NewLoop(executor, &scriptedEvaluator{}, 2, nil)

	_, err := loop.Run(context.Background(), "task", nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestParseFeedback(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantValid  bool
		structured bool
	}{
		{
			name:       "bare json",
			raw:        `{"valid": true, "confidence": 0.9}`,
			wantValid:  true,
			structured: true,
		},
		{
			name:       "markdown fenced",
			raw:        "Here is my verdict:\n```json\n{\"valid\": false, \"issues\": []}\n```",
			wantValid:  false,
			structured: true,
		},
		{
			name:       "heuristic clean",
			raw:        "The solution looks good and complete.",
			wantValid:  true,
			structured: false,
		},
		{
			name:       "heuristic failure marker",
			raw:        "This response is invalid because the output is wrong.",
			wantValid:  false,
			structured: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback, structured := ParseFeedback(tt.raw)
			assert.Equal(t, tt.wantValid, feedback.Valid)
			assert.Equal(t, tt.structured, structured)
		})
	}
}

func TestStatsRates(t *testing.T) {
	loop := NewLoop(&scriptedExecutor{}, &scriptedEvaluator{
		responses: []string{
			`{"valid": true}`,  // session 1: first attempt
			`{"valid": false}`, // session 2: corrected on attempt 2
			`{"valid": true}`,
		},
	}, 3, nil)

	_, err := loop.Run(context.Background(), "a", nil, "")
	require.NoError(t, err)
	_, err = loop.Run(context.Background(), "b", nil, "")
	require.NoError(t, err)

	snap := loop.Stats().Snapshot()
	assert.Equal(t, 2, snap.TotalSessions)
	assert.InDelta(t, 0.5, snap.FirstAttemptSuccessRate, 1e-9)
	assert.InDelta(t, 0.5, snap.CorrectionSuccessRate, 1e-9)
	assert.InDelta(t, 1.5, snap.AvgAttempts, 1e-9)
}
