// Code generated by ent, DO NOT EDIT.

package trajectory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trajectory type in the database.
	Label = "trajectory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "trajectory_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldInitialState holds the string denoting the initial_state field in the database.
	FieldInitialState = "initial_state"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldFinalOutcome holds the string denoting the final_outcome field in the database.
	FieldFinalOutcome = "final_outcome"
	// FieldReward holds the string denoting the reward field in the database.
	FieldReward = "reward"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldFailureRationale holds the string denoting the failure_rationale field in the database.
	FieldFailureRationale = "failure_rationale"
	// FieldErrorCategory holds the string denoting the error_category field in the database.
	FieldErrorCategory = "error_category"
	// FieldFixApplied holds the string denoting the fix_applied field in the database.
	FieldFixApplied = "fix_applied"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the trajectory in the database.
	Table = "trajectories"
)

// Columns holds all SQL columns for trajectory fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldTaskDescription,
	FieldTaskType,
	FieldInitialState,
	FieldSteps,
	FieldFinalOutcome,
	FieldReward,
	FieldDurationMs,
	FieldFailureRationale,
	FieldErrorCategory,
	FieldFixApplied,
	FieldCorrelationID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReward holds the default value on creation for the "reward" field.
	DefaultReward float64
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// FinalOutcome defines the type for the "final_outcome" enum field.
type FinalOutcome string

// FinalOutcome values.
const (
	FinalOutcomeSuccess FinalOutcome = "success"
	FinalOutcomeFailure FinalOutcome = "failure"
	FinalOutcomePartial FinalOutcome = "partial"
)

func (fo FinalOutcome) String() string {
	return string(fo)
}

// FinalOutcomeValidator is a validator for the "final_outcome" field enum values. It is called by the builders before save.
func FinalOutcomeValidator(fo FinalOutcome) error {
	switch fo {
	case FinalOutcomeSuccess, FinalOutcomeFailure, FinalOutcomePartial:
		return nil
	default:
		return fmt.Errorf("trajectory: invalid enum value for final_outcome field: %q", fo)
	}
}

// OrderOption defines the ordering options for the Trajectory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByInitialState orders the results by the initial_state field.
func ByInitialState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialState, opts...).ToFunc()
}

// ByFinalOutcome orders the results by the final_outcome field.
func ByFinalOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalOutcome, opts...).ToFunc()
}

// ByReward orders the results by the reward field.
func ByReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReward, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByFailureRationale orders the results by the failure_rationale field.
func ByFailureRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureRationale, opts...).ToFunc()
}

// ByErrorCategory orders the results by the error_category field.
func ByErrorCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCategory, opts...).ToFunc()
}

// ByFixApplied orders the results by the fix_applied field.
func ByFixApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFixApplied, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
