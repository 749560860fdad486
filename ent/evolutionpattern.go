// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
)

// EvolutionPattern is the model entity for the EvolutionPattern schema.
type EvolutionPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType string `json:"agent_type,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType string `json:"task_type,omitempty"`
	// CodeDiff holds the value of the "code_diff" field.
	CodeDiff string `json:"code_diff,omitempty"`
	// StrategyDescription holds the value of the "strategy_description" field.
	StrategyDescription string `json:"strategy_description,omitempty"`
	// In [0,1]
	BenchmarkScore float64 `json:"benchmark_score,omitempty"`
	// In [0,1]
	SuccessRate float64 `json:"success_rate,omitempty"`
	// Capabilities holds the value of the "capabilities" field.
	Capabilities []string `json:"capabilities,omitempty"`
	// SourceAgent holds the value of the "source_agent" field.
	SourceAgent string `json:"source_agent,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvolutionPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evolutionpattern.FieldCapabilities:
			values[i] = new([]byte)
		case evolutionpattern.FieldBenchmarkScore, evolutionpattern.FieldSuccessRate:
			values[i] = new(sql.NullFloat64)
		case evolutionpattern.FieldID, evolutionpattern.FieldAgentType, evolutionpattern.FieldTaskType, evolutionpattern.FieldCodeDiff, evolutionpattern.FieldStrategyDescription, evolutionpattern.FieldSourceAgent, evolutionpattern.FieldBusinessID:
			values[i] = new(sql.NullString)
		case evolutionpattern.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvolutionPattern fields.
func (_m *EvolutionPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evolutionpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evolutionpattern.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = value.String
			}
		case evolutionpattern.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case evolutionpattern.FieldCodeDiff:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code_diff", values[i])
			} else if value.Valid {
				_m.CodeDiff = value.String
			}
		case evolutionpattern.FieldStrategyDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_description", values[i])
			} else if value.Valid {
				_m.StrategyDescription = value.String
			}
		case evolutionpattern.FieldBenchmarkScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field benchmark_score", values[i])
			} else if value.Valid {
				_m.BenchmarkScore = value.Float64
			}
		case evolutionpattern.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = value.Float64
			}
		case evolutionpattern.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case evolutionpattern.FieldSourceAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_agent", values[i])
			} else if value.Valid {
				_m.SourceAgent = value.String
			}
		case evolutionpattern.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case evolutionpattern.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvolutionPattern.
// This includes values selected through modifiers, order, etc.
func (_m *EvolutionPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvolutionPattern.
// Note that you need to call EvolutionPattern.Unwrap() before calling this method if this EvolutionPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvolutionPattern) Update() *EvolutionPatternUpdateOne {
	return NewEvolutionPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvolutionPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvolutionPattern) Unwrap() *EvolutionPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvolutionPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvolutionPattern) String() string {
	var builder strings.Builder
	builder.WriteString("EvolutionPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_type=")
	builder.WriteString(_m.AgentType)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("code_diff=")
	builder.WriteString(_m.CodeDiff)
	builder.WriteString(", ")
	builder.WriteString("strategy_description=")
	builder.WriteString(_m.StrategyDescription)
	builder.WriteString(", ")
	builder.WriteString("benchmark_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BenchmarkScore))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRate))
	builder.WriteString(", ")
	builder.WriteString("capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capabilities))
	builder.WriteString(", ")
	builder.WriteString("source_agent=")
	builder.WriteString(_m.SourceAgent)
	builder.WriteString(", ")
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvolutionPatterns is a parsable slice of EvolutionPattern.
type EvolutionPatterns []*EvolutionPattern
