// Package correction wraps any executor in a QA-gated
// generate/validate/regenerate loop with bounded attempts.
package correction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agentfoundry/maestro/pkg/models"
)

// DefaultMaxAttempts bounds the loop when the agent config does not set one.
const DefaultMaxAttempts = 3

// Executor produces a candidate solution for a prompt.
type Executor interface {
	Execute(ctx context.Context, prompt string) (string, error)
}

// QAEvaluator validates a candidate solution. Returns the evaluator's raw
// output; the loop parses it into structured feedback.
type QAEvaluator interface {
	Evaluate(ctx context.Context, req EvalRequest) (string, error)
}

// EvalRequest carries everything the evaluator needs for one validation.
type EvalRequest struct {
	Task         string
	Solution     string
	Expectations map[string]string
	Context      string
	Categories   []models.QACategory
}

// AttemptRecord captures one loop iteration for the correction history.
type AttemptRecord struct {
	Attempt  int                `json:"attempt"`
	Solution string             `json:"solution"`
	Feedback *models.QAFeedback `json:"feedback"`
}

// Result is the loop's outcome. Valid=false after max attempts carries the
// last solution rather than an error.
type Result struct {
	Solution string             `json:"solution"`
	Valid    bool               `json:"valid"`
	Attempts int                `json:"attempts"`
	Feedback *models.QAFeedback `json:"feedback"`
	History  []AttemptRecord    `json:"history"`
	Duration time.Duration      `json:"duration"`
}

// Loop runs the self-correction cycle around an executor and evaluator.
// Safe for concurrent use; per-run state lives on the stack.
type Loop struct {
	executor    Executor
	evaluator   QAEvaluator
	maxAttempts int
	categories  []models.QACategory
	stats       *Stats
}

// NewLoop builds a correction loop. maxAttempts <= 0 selects the default;
// empty categories check all four validation dimensions.
func NewLoop(executor Executor, evaluator QAEvaluator, maxAttempts int, categories []models.QACategory) *Loop {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if len(categories) == 0 {
		categories = []models.QACategory{
			models.QACorrectness,
			models.QACompleteness,
			models.QAQuality,
			models.QASafety,
		}
	}
	return &Loop{
		executor:    executor,
		evaluator:   evaluator,
		maxAttempts: maxAttempts,
		categories:  categories,
		stats:       &Stats{},
	}
}

// Stats exposes the loop's aggregated outcome counters.
func (l *Loop) Stats() *Stats { return l.stats }

// Run executes the generate/validate/regenerate cycle for one task.
// Executor and evaluator failures both count as invalid attempts; a timeout
// on one attempt does not abort the loop. After max attempts the last
// solution is returned with Valid=false and a nil error, unless no attempt
// produced any solution at all.
func (l *Loop) Run(ctx context.Context, task string, expectations map[string]string, taskContext string) (*Result, error) {
	start := time.Now()
	prompt := task

	var history []AttemptRecord
	var solution string
	var feedback *models.QAFeedback
	var lastExecErr error

	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		candidate, err := l.executor.Execute(ctx, prompt)
		if err != nil {
			slog.Warn("Executor failed, counting attempt as invalid",
				"attempt", attempt, "error", err)
			lastExecErr = err
			feedback = &models.QAFeedback{
				Valid: false,
				Issues: []models.QAIssue{{
					Category:    models.QACorrectness,
					Severity:    "high",
					Description: fmt.Sprintf("execution failed: %v", err),
				}},
			}
			history = append(history, AttemptRecord{Attempt: attempt, Feedback: feedback})
			continue
		}
		solution = candidate

		feedback = l.evaluate(ctx, EvalRequest{
			Task:         task,
			Solution:     solution,
			Expectations: expectations,
			Context:      taskContext,
			Categories:   l.categories,
		})
		history = append(history, AttemptRecord{Attempt: attempt, Solution: solution, Feedback: feedback})

		if feedback.Valid {
			duration := time.Since(start)
			if attempt == 1 {
				l.stats.recordFirstAttempt(attempt, duration)
			} else {
				l.stats.recordCorrected(attempt, duration)
			}
			return &Result{
				Solution: solution,
				Valid:    true,
				Attempts: attempt,
				Feedback: feedback,
				History:  history,
				Duration: duration,
			}, nil
		}

		if attempt < l.maxAttempts {
			prompt = buildFixPrompt(task, solution, feedback)
		}
	}

	duration := time.Since(start)
	l.stats.recordFailed(l.maxAttempts, duration)

	if solution == "" && lastExecErr != nil {
		return nil, fmt.Errorf("all %d attempts failed to execute: %w", l.maxAttempts, lastExecErr)
	}

	return &Result{
		Solution: solution,
		Valid:    false,
		Attempts: l.maxAttempts,
		Feedback: feedback,
		History:  history,
		Duration: duration,
	}, nil
}

// evaluate runs the QA evaluator and parses its verdict. An evaluator error
// counts as an invalid attempt with a high-severity issue rather than
// aborting the loop.
func (l *Loop) evaluate(ctx context.Context, req EvalRequest) *models.QAFeedback {
	raw, err := l.evaluator.Evaluate(ctx, req)
	if err != nil {
		slog.Warn("QA evaluator failed, counting attempt as invalid", "error", err)
		return &models.QAFeedback{
			Valid: false,
			Issues: []models.QAIssue{{
				Category:    models.QAQuality,
				Severity:    "high",
				Description: fmt.Sprintf("QA evaluation failed: %v", err),
			}},
		}
	}

	feedback, structured := ParseFeedback(raw)
	if !structured {
		slog.Debug("QA output not structured, used heuristic validation", "valid", feedback.Valid)
	}
	return feedback
}

// buildFixPrompt embeds the failed solution and the evaluator's issues and
// suggestions into the next attempt's prompt.
func buildFixPrompt(task, solution string, feedback *models.QAFeedback) string {
	var b strings.Builder

	b.WriteString(task)
	b.WriteString("\n\nYour previous solution was rejected by validation:\n\n")
	b.WriteString(solution)
	b.WriteString("\n\nProblems found:\n")

	for _, issue := range feedback.Issues {
		fmt.Fprintf(&b, "- [%s/%s] %s", issue.Category, issue.Severity, issue.Description)
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, " (suggestion: %s)", issue.Suggestion)
		}
		b.WriteString("\n")
	}

	if len(feedback.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range feedback.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	b.WriteString("\nProduce a corrected solution that addresses every problem above.")
	return b.String()
}
