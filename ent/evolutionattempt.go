// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
)

// EvolutionAttempt is the model entity for the EvolutionAttempt schema.
type EvolutionAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType string `json:"agent_type,omitempty"`
	// ParentVersion holds the value of the "parent_version" field.
	ParentVersion string `json:"parent_version,omitempty"`
	// ImprovementType holds the value of the "improvement_type" field.
	ImprovementType evolutionattempt.ImprovementType `json:"improvement_type,omitempty"`
	// Diagnosis holds the value of the "diagnosis" field.
	Diagnosis string `json:"diagnosis,omitempty"`
	// ProposedChanges holds the value of the "proposed_changes" field.
	ProposedChanges string `json:"proposed_changes,omitempty"`
	// MetricsBefore holds the value of the "metrics_before" field.
	MetricsBefore map[string]float64 `json:"metrics_before,omitempty"`
	// MetricsAfter holds the value of the "metrics_after" field.
	MetricsAfter map[string]float64 `json:"metrics_after,omitempty"`
	// ImprovementDelta holds the value of the "improvement_delta" field.
	ImprovementDelta float64 `json:"improvement_delta,omitempty"`
	// RubricReward holds the value of the "rubric_reward" field.
	RubricReward float64 `json:"rubric_reward,omitempty"`
	// Accepted holds the value of the "accepted" field.
	Accepted bool `json:"accepted,omitempty"`
	// Generation holds the value of the "generation" field.
	Generation int `json:"generation,omitempty"`
	// SandboxLogs holds the value of the "sandbox_logs" field.
	SandboxLogs string `json:"sandbox_logs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvolutionAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evolutionattempt.FieldMetricsBefore, evolutionattempt.FieldMetricsAfter:
			values[i] = new([]byte)
		case evolutionattempt.FieldAccepted:
			values[i] = new(sql.NullBool)
		case evolutionattempt.FieldImprovementDelta, evolutionattempt.FieldRubricReward:
			values[i] = new(sql.NullFloat64)
		case evolutionattempt.FieldGeneration:
			values[i] = new(sql.NullInt64)
		case evolutionattempt.FieldID, evolutionattempt.FieldAgentType, evolutionattempt.FieldParentVersion, evolutionattempt.FieldImprovementType, evolutionattempt.FieldDiagnosis, evolutionattempt.FieldProposedChanges, evolutionattempt.FieldSandboxLogs:
			values[i] = new(sql.NullString)
		case evolutionattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvolutionAttempt fields.
func (_m *EvolutionAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evolutionattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evolutionattempt.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = value.String
			}
		case evolutionattempt.FieldParentVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_version", values[i])
			} else if value.Valid {
				_m.ParentVersion = value.String
			}
		case evolutionattempt.FieldImprovementType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_type", values[i])
			} else if value.Valid {
				_m.ImprovementType = evolutionattempt.ImprovementType(value.String)
			}
		case evolutionattempt.FieldDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis", values[i])
			} else if value.Valid {
				_m.Diagnosis = value.String
			}
		case evolutionattempt.FieldProposedChanges:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_changes", values[i])
			} else if value.Valid {
				_m.ProposedChanges = value.String
			}
		case evolutionattempt.FieldMetricsBefore:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics_before", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetricsBefore); err != nil {
					return fmt.Errorf("unmarshal field metrics_before: %w", err)
				}
			}
		case evolutionattempt.FieldMetricsAfter:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics_after", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetricsAfter); err != nil {
					return fmt.Errorf("unmarshal field metrics_after: %w", err)
				}
			}
		case evolutionattempt.FieldImprovementDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_delta", values[i])
			} else if value.Valid {
				_m.ImprovementDelta = value.Float64
			}
		case evolutionattempt.FieldRubricReward:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rubric_reward", values[i])
			} else if value.Valid {
				_m.RubricReward = value.Float64
			}
		case evolutionattempt.FieldAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepted", values[i])
			} else if value.Valid {
				_m.Accepted = value.Bool
			}
		case evolutionattempt.FieldGeneration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation", values[i])
			} else if value.Valid {
				_m.Generation = int(value.Int64)
			}
		case evolutionattempt.FieldSandboxLogs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_logs", values[i])
			} else if value.Valid {
				_m.SandboxLogs = value.String
			}
		case evolutionattempt.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvolutionAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *EvolutionAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvolutionAttempt.
// Note that you need to call EvolutionAttempt.Unwrap() before calling this method if this EvolutionAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvolutionAttempt) Update() *EvolutionAttemptUpdateOne {
	return NewEvolutionAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvolutionAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvolutionAttempt) Unwrap() *EvolutionAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvolutionAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvolutionAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("EvolutionAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_type=")
	builder.WriteString(_m.AgentType)
	builder.WriteString(", ")
	builder.WriteString("parent_version=")
	builder.WriteString(_m.ParentVersion)
	builder.WriteString(", ")
	builder.WriteString("improvement_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImprovementType))
	builder.WriteString(", ")
	builder.WriteString("diagnosis=")
	builder.WriteString(_m.Diagnosis)
	builder.WriteString(", ")
	builder.WriteString("proposed_changes=")
	builder.WriteString(_m.ProposedChanges)
	builder.WriteString(", ")
	builder.WriteString("metrics_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetricsBefore))
	builder.WriteString(", ")
	builder.WriteString("metrics_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetricsAfter))
	builder.WriteString(", ")
	builder.WriteString("improvement_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImprovementDelta))
	builder.WriteString(", ")
	builder.WriteString("rubric_reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.RubricReward))
	builder.WriteString(", ")
	builder.WriteString("accepted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accepted))
	builder.WriteString(", ")
	builder.WriteString("generation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Generation))
	builder.WriteString(", ")
	builder.WriteString("sandbox_logs=")
	builder.WriteString(_m.SandboxLogs)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvolutionAttempts is a parsable slice of EvolutionAttempt.
type EvolutionAttempts []*EvolutionAttempt
