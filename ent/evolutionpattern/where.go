// Code generated by ent, DO NOT EDIT.

package evolutionpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContainsFold(FieldID, id))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldAgentType, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldTaskType, v))
}

// CodeDiff applies equality check predicate on the "code_diff" field. It's identical to CodeDiffEQ.
func CodeDiff(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldCodeDiff, v))
}

// StrategyDescription applies equality check predicate on the "strategy_description" field. It's identical to StrategyDescriptionEQ.
func StrategyDescription(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldStrategyDescription, v))
}

// BenchmarkScore applies equality check predicate on the "benchmark_score" field. It's identical to BenchmarkScoreEQ.
func BenchmarkScore(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldBenchmarkScore, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldSuccessRate, v))
}

// SourceAgent applies equality check predicate on the "source_agent" field. It's identical to SourceAgentEQ.
func SourceAgent(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldSourceAgent, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldBusinessID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContainsFold(FieldAgentType, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContainsFold(FieldTaskType, v))
}

// CodeDiffEQ applies the EQ predicate on the "code_diff" field.
func CodeDiffEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldCodeDiff, v))
}

// CodeDiffNEQ applies the NEQ predicate on the "code_diff" field.
func CodeDiffNEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldCodeDiff, v))
}

// CodeDiffIn applies the In predicate on the "code_diff" field.
func CodeDiffIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldCodeDiff, vs...))
}

// CodeDiffNotIn applies the NotIn predicate on the "code_diff" field.
func CodeDiffNotIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldCodeDiff, vs...))
}

// CodeDiffGT applies the GT predicate on the "code_diff" field.
func CodeDiffGT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldCodeDiff, v))
}

// CodeDiffGTE applies the GTE predicate on the "code_diff" field.
func CodeDiffGTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldCodeDiff, v))
}

// CodeDiffLT applies the LT predicate on the "code_diff" field.
func CodeDiffLT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldCodeDiff, v))
}

// CodeDiffLTE applies the LTE predicate on the "code_diff" field.
func CodeDiffLTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldCodeDiff, v))
}

// CodeDiffContains applies the Contains predicate on the "code_diff" field.
func CodeDiffContains(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContains(FieldCodeDiff, v))
}

// CodeDiffHasPrefix applies the HasPrefix predicate on the "code_diff" field.
func CodeDiffHasPrefix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasPrefix(FieldCodeDiff, v))
}

// CodeDiffHasSuffix applies the HasSuffix predicate on the "code_diff" field.
func CodeDiffHasSuffix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasSuffix(FieldCodeDiff, v))
}

// CodeDiffIsNil applies the IsNil predicate on the "code_diff" field.
func CodeDiffIsNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIsNull(FieldCodeDiff))
}

// CodeDiffNotNil applies the NotNil predicate on the "code_diff" field.
func CodeDiffNotNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotNull(FieldCodeDiff))
}

// CodeDiffEqualFold applies the EqualFold predicate on the "code_diff" field.
func CodeDiffEqualFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEqualFold(FieldCodeDiff, v))
}

// CodeDiffContainsFold applies the ContainsFold predicate on the "code_diff" field.
func CodeDiffContainsFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContainsFold(FieldCodeDiff, v))
}

// StrategyDescriptionEQ applies the EQ predicate on the "strategy_description" field.
func StrategyDescriptionEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldStrategyDescription, v))
}

// StrategyDescriptionNEQ applies the NEQ predicate on the "strategy_description" field.
func StrategyDescriptionNEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldStrategyDescription, v))
}

// StrategyDescriptionIn applies the In predicate on the "strategy_description" field.
func StrategyDescriptionIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldStrategyDescription, vs...))
}

// StrategyDescriptionNotIn applies the NotIn predicate on the "strategy_description" field.
func StrategyDescriptionNotIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldStrategyDescription, vs...))
}

// StrategyDescriptionGT applies the GT predicate on the "strategy_description" field.
func StrategyDescriptionGT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldStrategyDescription, v))
}

// StrategyDescriptionGTE applies the GTE predicate on the "strategy_description" field.
func StrategyDescriptionGTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldStrategyDescription, v))
}

// StrategyDescriptionLT applies the LT predicate on the "strategy_description" field.
func StrategyDescriptionLT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldStrategyDescription, v))
}

// StrategyDescriptionLTE applies the LTE predicate on the "strategy_description" field.
func StrategyDescriptionLTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldStrategyDescription, v))
}

// StrategyDescriptionContains applies the Contains predicate on the "strategy_description" field.
func StrategyDescriptionContains(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContains(FieldStrategyDescription, v))
}

// StrategyDescriptionHasPrefix applies the HasPrefix predicate on the "strategy_description" field.
func StrategyDescriptionHasPrefix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasPrefix(FieldStrategyDescription, v))
}

// StrategyDescriptionHasSuffix applies the HasSuffix predicate on the "strategy_description" field.
func StrategyDescriptionHasSuffix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasSuffix(FieldStrategyDescription, v))
}

// StrategyDescriptionEqualFold applies the EqualFold predicate on the "strategy_description" field.
func StrategyDescriptionEqualFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEqualFold(FieldStrategyDescription, v))
}

// StrategyDescriptionContainsFold applies the ContainsFold predicate on the "strategy_description" field.
func StrategyDescriptionContainsFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContainsFold(FieldStrategyDescription, v))
}

// BenchmarkScoreEQ applies the EQ predicate on the "benchmark_score" field.
func BenchmarkScoreEQ(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldBenchmarkScore, v))
}

// BenchmarkScoreNEQ applies the NEQ predicate on the "benchmark_score" field.
func BenchmarkScoreNEQ(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldBenchmarkScore, v))
}

// BenchmarkScoreIn applies the In predicate on the "benchmark_score" field.
func BenchmarkScoreIn(vs ...float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldBenchmarkScore, vs...))
}

// BenchmarkScoreNotIn applies the NotIn predicate on the "benchmark_score" field.
func BenchmarkScoreNotIn(vs ...float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldBenchmarkScore, vs...))
}

// BenchmarkScoreGT applies the GT predicate on the "benchmark_score" field.
func BenchmarkScoreGT(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldBenchmarkScore, v))
}

// BenchmarkScoreGTE applies the GTE predicate on the "benchmark_score" field.
func BenchmarkScoreGTE(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldBenchmarkScore, v))
}

// BenchmarkScoreLT applies the LT predicate on the "benchmark_score" field.
func BenchmarkScoreLT(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldBenchmarkScore, v))
}

// BenchmarkScoreLTE applies the LTE predicate on the "benchmark_score" field.
func BenchmarkScoreLTE(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldBenchmarkScore, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float64) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldSuccessRate, v))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotNull(FieldCapabilities))
}

// SourceAgentEQ applies the EQ predicate on the "source_agent" field.
func SourceAgentEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldSourceAgent, v))
}

// SourceAgentNEQ applies the NEQ predicate on the "source_agent" field.
func SourceAgentNEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldSourceAgent, v))
}

// SourceAgentIn applies the In predicate on the "source_agent" field.
func SourceAgentIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldSourceAgent, vs...))
}

// SourceAgentNotIn applies the NotIn predicate on the "source_agent" field.
func SourceAgentNotIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldSourceAgent, vs...))
}

// SourceAgentGT applies the GT predicate on the "source_agent" field.
func SourceAgentGT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldSourceAgent, v))
}

// SourceAgentGTE applies the GTE predicate on the "source_agent" field.
func SourceAgentGTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldSourceAgent, v))
}

// SourceAgentLT applies the LT predicate on the "source_agent" field.
func SourceAgentLT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldSourceAgent, v))
}

// SourceAgentLTE applies the LTE predicate on the "source_agent" field.
func SourceAgentLTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldSourceAgent, v))
}

// SourceAgentContains applies the Contains predicate on the "source_agent" field.
func SourceAgentContains(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContains(FieldSourceAgent, v))
}

// SourceAgentHasPrefix applies the HasPrefix predicate on the "source_agent" field.
func SourceAgentHasPrefix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasPrefix(FieldSourceAgent, v))
}

// SourceAgentHasSuffix applies the HasSuffix predicate on the "source_agent" field.
func SourceAgentHasSuffix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasSuffix(FieldSourceAgent, v))
}

// SourceAgentIsNil applies the IsNil predicate on the "source_agent" field.
func SourceAgentIsNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIsNull(FieldSourceAgent))
}

// SourceAgentNotNil applies the NotNil predicate on the "source_agent" field.
func SourceAgentNotNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotNull(FieldSourceAgent))
}

// SourceAgentEqualFold applies the EqualFold predicate on the "source_agent" field.
func SourceAgentEqualFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEqualFold(FieldSourceAgent, v))
}

// SourceAgentContainsFold applies the ContainsFold predicate on the "source_agent" field.
func SourceAgentContainsFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContainsFold(FieldSourceAgent, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDIsNil applies the IsNil predicate on the "business_id" field.
func BusinessIDIsNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIsNull(FieldBusinessID))
}

// BusinessIDNotNil applies the NotNil predicate on the "business_id" field.
func BusinessIDNotNil() predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotNull(FieldBusinessID))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldContainsFold(FieldBusinessID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvolutionPattern) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvolutionPattern) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvolutionPattern) predicate.EvolutionPattern {
	return predicate.EvolutionPattern(sql.NotPredicates(p))
}
