package models

import "fmt"

// Task is the immutable description of one unit of agent work.
// It is the input to routing and execution; fields never change within a run.
type Task struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	TaskType      string   `json:"task_type,omitempty"`
	Priority      float64  `json:"priority"`
	RequiredTools []string `json:"required_tools,omitempty"`
	NumSteps      int      `json:"num_steps"`
	BatchSize     int      `json:"batch_size"`
}

// Validate checks task field ranges.
func (t *Task) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("task description is required")
	}
	if t.Priority < 0 || t.Priority > 1 {
		return fmt.Errorf("task priority must be in [0,1], got %v", t.Priority)
	}
	if t.NumSteps < 0 {
		return fmt.Errorf("task num_steps must be >= 0, got %d", t.NumSteps)
	}
	if t.BatchSize < 1 {
		return fmt.Errorf("task batch_size must be >= 1, got %d", t.BatchSize)
	}
	return nil
}
