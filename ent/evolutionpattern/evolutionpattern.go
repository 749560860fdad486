// Code generated by ent, DO NOT EDIT.

package evolutionpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evolutionpattern type in the database.
	Label = "evolution_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldCodeDiff holds the string denoting the code_diff field in the database.
	FieldCodeDiff = "code_diff"
	// FieldStrategyDescription holds the string denoting the strategy_description field in the database.
	FieldStrategyDescription = "strategy_description"
	// FieldBenchmarkScore holds the string denoting the benchmark_score field in the database.
	FieldBenchmarkScore = "benchmark_score"
	// FieldSuccessRate holds the string denoting the success_rate field in the database.
	FieldSuccessRate = "success_rate"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldSourceAgent holds the string denoting the source_agent field in the database.
	FieldSourceAgent = "source_agent"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the evolutionpattern in the database.
	Table = "evolution_patterns"
)

// Columns holds all SQL columns for evolutionpattern fields.
var Columns = []string{
	FieldID,
	FieldAgentType,
	FieldTaskType,
	FieldCodeDiff,
	FieldStrategyDescription,
	FieldBenchmarkScore,
	FieldSuccessRate,
	FieldCapabilities,
	FieldSourceAgent,
	FieldBusinessID,
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
	// AgentTypeValidator is a validator for the "agent_type" field. It is called by the builders before save.
	AgentTypeValidator func(string) error
	// TaskTypeValidator is a validator for the "task_type" field. It is called by the builders before save.
	TaskTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the EvolutionPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByCodeDiff orders the results by the code_diff field.
func ByCodeDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodeDiff, opts...).ToFunc()
}

// ByStrategyDescription orders the results by the strategy_description field.
func ByStrategyDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyDescription, opts...).ToFunc()
}

// ByBenchmarkScore orders the results by the benchmark_score field.
func ByBenchmarkScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBenchmarkScore, opts...).ToFunc()
}

// BySuccessRate orders the results by the success_rate field.
func BySuccessRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessRate, opts...).ToFunc()
}

// BySourceAgent orders the results by the source_agent field.
func BySourceAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAgent, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
