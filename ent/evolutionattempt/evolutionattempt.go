// Code generated by ent, DO NOT EDIT.

package evolutionattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evolutionattempt type in the database.
	Label = "evolution_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "attempt_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldParentVersion holds the string denoting the parent_version field in the database.
	FieldParentVersion = "parent_version"
	// FieldImprovementType holds the string denoting the improvement_type field in the database.
	FieldImprovementType = "improvement_type"
	// FieldDiagnosis holds the string denoting the diagnosis field in the database.
	FieldDiagnosis = "diagnosis"
	// FieldProposedChanges holds the string denoting the proposed_changes field in the database.
	FieldProposedChanges = "proposed_changes"
	// FieldMetricsBefore holds the string denoting the metrics_before field in the database.
	FieldMetricsBefore = "metrics_before"
	// FieldMetricsAfter holds the string denoting the metrics_after field in the database.
	FieldMetricsAfter = "metrics_after"
	// FieldImprovementDelta holds the string denoting the improvement_delta field in the database.
	FieldImprovementDelta = "improvement_delta"
	// FieldRubricReward holds the string denoting the rubric_reward field in the database.
	FieldRubricReward = "rubric_reward"
	// FieldAccepted holds the string denoting the accepted field in the database.
	FieldAccepted = "accepted"
	// FieldGeneration holds the string denoting the generation field in the database.
	FieldGeneration = "generation"
	// FieldSandboxLogs holds the string denoting the sandbox_logs field in the database.
	FieldSandboxLogs = "sandbox_logs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the evolutionattempt in the database.
	Table = "evolution_attempts"
)

// Columns holds all SQL columns for evolutionattempt fields.
var Columns = []string{
	FieldID,
	FieldAgentType,
	FieldParentVersion,
	FieldImprovementType,
	FieldDiagnosis,
	FieldProposedChanges,
	FieldMetricsBefore,
	FieldMetricsAfter,
	FieldImprovementDelta,
	FieldRubricReward,
	FieldAccepted,
	FieldGeneration,
	FieldSandboxLogs,
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
	// DefaultImprovementDelta holds the default value on creation for the "improvement_delta" field.
	DefaultImprovementDelta float64
	// DefaultRubricReward holds the default value on creation for the "rubric_reward" field.
	DefaultRubricReward float64
	// DefaultAccepted holds the default value on creation for the "accepted" field.
	DefaultAccepted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ImprovementType defines the type for the "improvement_type" enum field.
type ImprovementType string

// ImprovementType values.
const (
	ImprovementTypeBugFix        ImprovementType = "bug_fix"
	ImprovementTypeOptimization  ImprovementType = "optimization"
	ImprovementTypeNewFeature    ImprovementType = "new_feature"
	ImprovementTypeRefactor      ImprovementType = "refactor"
	ImprovementTypeErrorHandling ImprovementType = "error_handling"
)

func (it ImprovementType) String() string {
	return string(it)
}

// ImprovementTypeValidator is a validator for the "improvement_type" field enum values. It is called by the builders before save.
func ImprovementTypeValidator(it ImprovementType) error {
	switch it {
	case ImprovementTypeBugFix, ImprovementTypeOptimization, ImprovementTypeNewFeature, ImprovementTypeRefactor, ImprovementTypeErrorHandling:
		return nil
	default:
		return fmt.Errorf("evolutionattempt: invalid enum value for improvement_type field: %q", it)
	}
}

// OrderOption defines the ordering options for the EvolutionAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByParentVersion orders the results by the parent_version field.
func ByParentVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentVersion, opts...).ToFunc()
}

// ByImprovementType orders the results by the improvement_type field.
func ByImprovementType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementType, opts...).ToFunc()
}

// ByDiagnosis orders the results by the diagnosis field.
func ByDiagnosis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosis, opts...).ToFunc()
}

// ByProposedChanges orders the results by the proposed_changes field.
func ByProposedChanges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedChanges, opts...).ToFunc()
}

// ByImprovementDelta orders the results by the improvement_delta field.
func ByImprovementDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementDelta, opts...).ToFunc()
}

// ByRubricReward orders the results by the rubric_reward field.
func ByRubricReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRubricReward, opts...).ToFunc()
}

// ByAccepted orders the results by the accepted field.
func ByAccepted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccepted, opts...).ToFunc()
}

// ByGeneration orders the results by the generation field.
func ByGeneration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneration, opts...).ToFunc()
}

// BySandboxLogs orders the results by the sandbox_logs field.
func BySandboxLogs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxLogs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
