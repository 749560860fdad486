// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/trajectory"
)

// Trajectory is the model entity for the Trajectory schema.
type Trajectory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// TaskDescription holds the value of the "task_description" field.
	TaskDescription string `json:"task_description,omitempty"`
	// Anti-pattern index key
	TaskType string `json:"task_type,omitempty"`
	// InitialState holds the value of the "initial_state" field.
	InitialState string `json:"initial_state,omitempty"`
	// Ordered ActionStep records (timestamp, tool_name, tool_args, tool_result, agent_reasoning)
	Steps []map[string]interface{} `json:"steps,omitempty"`
	// FinalOutcome holds the value of the "final_outcome" field.
	FinalOutcome trajectory.FinalOutcome `json:"final_outcome,omitempty"`
	// In [0,1]
	Reward float64 `json:"reward,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// FailureRationale holds the value of the "failure_rationale" field.
	FailureRationale string `json:"failure_rationale,omitempty"`
	// ErrorCategory holds the value of the "error_category" field.
	ErrorCategory string `json:"error_category,omitempty"`
	// FixApplied holds the value of the "fix_applied" field.
	FixApplied string `json:"fix_applied,omitempty"`
	// CorrelationID holds the value of the "correlation_id" field.
	CorrelationID string `json:"correlation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trajectory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trajectory.FieldSteps:
			values[i] = new([]byte)
		case trajectory.FieldReward:
			values[i] = new(sql.NullFloat64)
		case trajectory.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case trajectory.FieldID, trajectory.FieldAgentID, trajectory.FieldTaskDescription, trajectory.FieldTaskType, trajectory.FieldInitialState, trajectory.FieldFinalOutcome, trajectory.FieldFailureRationale, trajectory.FieldErrorCategory, trajectory.FieldFixApplied, trajectory.FieldCorrelationID:
			values[i] = new(sql.NullString)
		case trajectory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trajectory fields.
func (_m *Trajectory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trajectory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trajectory.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case trajectory.FieldTaskDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_description", values[i])
			} else if value.Valid {
				_m.TaskDescription = value.String
			}
		case trajectory.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case trajectory.FieldInitialState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_state", values[i])
			} else if value.Valid {
				_m.InitialState = value.String
			}
		case trajectory.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case trajectory.FieldFinalOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_outcome", values[i])
			} else if value.Valid {
				_m.FinalOutcome = trajectory.FinalOutcome(value.String)
			}
		case trajectory.FieldReward:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reward", values[i])
			} else if value.Valid {
				_m.Reward = value.Float64
			}
		case trajectory.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case trajectory.FieldFailureRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_rationale", values[i])
			} else if value.Valid {
				_m.FailureRationale = value.String
			}
		case trajectory.FieldErrorCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_category", values[i])
			} else if value.Valid {
				_m.ErrorCategory = value.String
			}
		case trajectory.FieldFixApplied:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fix_applied", values[i])
			} else if value.Valid {
				_m.FixApplied = value.String
			}
		case trajectory.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case trajectory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Trajectory.
// This includes values selected through modifiers, order, etc.
func (_m *Trajectory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Trajectory.
// Note that you need to call Trajectory.Unwrap() before calling this method if this Trajectory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trajectory) Update() *TrajectoryUpdateOne {
	return NewTrajectoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trajectory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trajectory) Unwrap() *Trajectory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trajectory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trajectory) String() string {
	var builder strings.Builder
	builder.WriteString("Trajectory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("task_description=")
	builder.WriteString(_m.TaskDescription)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("initial_state=")
	builder.WriteString(_m.InitialState)
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("final_outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalOutcome))
	builder.WriteString(", ")
	builder.WriteString("reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reward))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("failure_rationale=")
	builder.WriteString(_m.FailureRationale)
	builder.WriteString(", ")
	builder.WriteString("error_category=")
	builder.WriteString(_m.ErrorCategory)
	builder.WriteString(", ")
	builder.WriteString("fix_applied=")
	builder.WriteString(_m.FixApplied)
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Trajectories is a parsable slice of Trajectory.
type Trajectories []*Trajectory
