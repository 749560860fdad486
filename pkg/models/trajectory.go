package models

import "time"

// Outcome is the terminal result of one task execution.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomePartial Outcome = "partial"
)

// ActionStep records one tool call inside a trajectory.
type ActionStep struct {
	Timestamp      time.Time      `json:"timestamp"`
	ToolName       string         `json:"tool_name"`
	ToolArgs       map[string]any `json:"tool_args,omitempty"`
	ToolResult     string         `json:"tool_result,omitempty"`
	AgentReasoning string         `json:"agent_reasoning,omitempty"`
}

// TrajectoryRecord is the immutable record of one task execution, assembled
// by the agent runtime and persisted by the trajectory store.
type TrajectoryRecord struct {
	TrajectoryID     string       `json:"trajectory_id"`
	AgentID          string       `json:"agent_id"`
	TaskDescription  string       `json:"task_description"`
	TaskType         string       `json:"task_type,omitempty"`
	InitialState     string       `json:"initial_state,omitempty"`
	Steps            []ActionStep `json:"steps"`
	FinalOutcome     Outcome      `json:"final_outcome"`
	Reward           float64      `json:"reward"`
	Duration         time.Duration `json:"duration"`
	FailureRationale string       `json:"failure_rationale,omitempty"`
	ErrorCategory    string       `json:"error_category,omitempty"`
	FixApplied       string       `json:"fix_applied,omitempty"`
	CorrelationID    string       `json:"correlation_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// AntiPattern is a derived view over failure trajectories for one task type.
type AntiPattern struct {
	TaskType         string `json:"task_type"`
	FailureRationale string `json:"failure_rationale"`
	FixApplied       string `json:"fix_applied,omitempty"`
	Frequency        int    `json:"frequency"`
}
