// Code generated by ent, DO NOT EDIT.

package evolutionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContainsFold(FieldID, id))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldAgentType, v))
}

// ParentVersion applies equality check predicate on the "parent_version" field. It's identical to ParentVersionEQ.
func ParentVersion(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldParentVersion, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldDiagnosis, v))
}

// ProposedChanges applies equality check predicate on the "proposed_changes" field. It's identical to ProposedChangesEQ.
func ProposedChanges(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldProposedChanges, v))
}

// ImprovementDelta applies equality check predicate on the "improvement_delta" field. It's identical to ImprovementDeltaEQ.
func ImprovementDelta(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldImprovementDelta, v))
}

// RubricReward applies equality check predicate on the "rubric_reward" field. It's identical to RubricRewardEQ.
func RubricReward(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldRubricReward, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldAccepted, v))
}

// Generation applies equality check predicate on the "generation" field. It's identical to GenerationEQ.
func Generation(v int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldGeneration, v))
}

// SandboxLogs applies equality check predicate on the "sandbox_logs" field. It's identical to SandboxLogsEQ.
func SandboxLogs(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldSandboxLogs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContainsFold(FieldAgentType, v))
}

// ParentVersionEQ applies the EQ predicate on the "parent_version" field.
func ParentVersionEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldParentVersion, v))
}

// ParentVersionNEQ applies the NEQ predicate on the "parent_version" field.
func ParentVersionNEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldParentVersion, v))
}

// ParentVersionIn applies the In predicate on the "parent_version" field.
func ParentVersionIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldParentVersion, vs...))
}

// ParentVersionNotIn applies the NotIn predicate on the "parent_version" field.
func ParentVersionNotIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldParentVersion, vs...))
}

// ParentVersionGT applies the GT predicate on the "parent_version" field.
func ParentVersionGT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldParentVersion, v))
}

// ParentVersionGTE applies the GTE predicate on the "parent_version" field.
func ParentVersionGTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldParentVersion, v))
}

// ParentVersionLT applies the LT predicate on the "parent_version" field.
func ParentVersionLT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldParentVersion, v))
}

// ParentVersionLTE applies the LTE predicate on the "parent_version" field.
func ParentVersionLTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldParentVersion, v))
}

// ParentVersionContains applies the Contains predicate on the "parent_version" field.
func ParentVersionContains(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContains(FieldParentVersion, v))
}

// ParentVersionHasPrefix applies the HasPrefix predicate on the "parent_version" field.
func ParentVersionHasPrefix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasPrefix(FieldParentVersion, v))
}

// ParentVersionHasSuffix applies the HasSuffix predicate on the "parent_version" field.
func ParentVersionHasSuffix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasSuffix(FieldParentVersion, v))
}

// ParentVersionEqualFold applies the EqualFold predicate on the "parent_version" field.
func ParentVersionEqualFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEqualFold(FieldParentVersion, v))
}

// ParentVersionContainsFold applies the ContainsFold predicate on the "parent_version" field.
func ParentVersionContainsFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContainsFold(FieldParentVersion, v))
}

// ImprovementTypeEQ applies the EQ predicate on the "improvement_type" field.
func ImprovementTypeEQ(v ImprovementType) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldImprovementType, v))
}

// ImprovementTypeNEQ applies the NEQ predicate on the "improvement_type" field.
func ImprovementTypeNEQ(v ImprovementType) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldImprovementType, v))
}

// ImprovementTypeIn applies the In predicate on the "improvement_type" field.
func ImprovementTypeIn(vs ...ImprovementType) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldImprovementType, vs...))
}

// ImprovementTypeNotIn applies the NotIn predicate on the "improvement_type" field.
func ImprovementTypeNotIn(vs ...ImprovementType) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldImprovementType, vs...))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisIsNil applies the IsNil predicate on the "diagnosis" field.
func DiagnosisIsNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIsNull(FieldDiagnosis))
}

// DiagnosisNotNil applies the NotNil predicate on the "diagnosis" field.
func DiagnosisNotNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotNull(FieldDiagnosis))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContainsFold(FieldDiagnosis, v))
}

// ProposedChangesEQ applies the EQ predicate on the "proposed_changes" field.
func ProposedChangesEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldProposedChanges, v))
}

// ProposedChangesNEQ applies the NEQ predicate on the "proposed_changes" field.
func ProposedChangesNEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldProposedChanges, v))
}

// ProposedChangesIn applies the In predicate on the "proposed_changes" field.
func ProposedChangesIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldProposedChanges, vs...))
}

// ProposedChangesNotIn applies the NotIn predicate on the "proposed_changes" field.
func ProposedChangesNotIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldProposedChanges, vs...))
}

// ProposedChangesGT applies the GT predicate on the "proposed_changes" field.
func ProposedChangesGT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldProposedChanges, v))
}

// ProposedChangesGTE applies the GTE predicate on the "proposed_changes" field.
func ProposedChangesGTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldProposedChanges, v))
}

// ProposedChangesLT applies the LT predicate on the "proposed_changes" field.
func ProposedChangesLT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldProposedChanges, v))
}

// ProposedChangesLTE applies the LTE predicate on the "proposed_changes" field.
func ProposedChangesLTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldProposedChanges, v))
}

// ProposedChangesContains applies the Contains predicate on the "proposed_changes" field.
func ProposedChangesContains(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContains(FieldProposedChanges, v))
}

// ProposedChangesHasPrefix applies the HasPrefix predicate on the "proposed_changes" field.
func ProposedChangesHasPrefix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasPrefix(FieldProposedChanges, v))
}

// ProposedChangesHasSuffix applies the HasSuffix predicate on the "proposed_changes" field.
func ProposedChangesHasSuffix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasSuffix(FieldProposedChanges, v))
}

// ProposedChangesIsNil applies the IsNil predicate on the "proposed_changes" field.
func ProposedChangesIsNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIsNull(FieldProposedChanges))
}

// ProposedChangesNotNil applies the NotNil predicate on the "proposed_changes" field.
func ProposedChangesNotNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotNull(FieldProposedChanges))
}

// ProposedChangesEqualFold applies the EqualFold predicate on the "proposed_changes" field.
func ProposedChangesEqualFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEqualFold(FieldProposedChanges, v))
}

// ProposedChangesContainsFold applies the ContainsFold predicate on the "proposed_changes" field.
func ProposedChangesContainsFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContainsFold(FieldProposedChanges, v))
}

// MetricsBeforeIsNil applies the IsNil predicate on the "metrics_before" field.
func MetricsBeforeIsNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIsNull(FieldMetricsBefore))
}

// MetricsBeforeNotNil applies the NotNil predicate on the "metrics_before" field.
func MetricsBeforeNotNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotNull(FieldMetricsBefore))
}

// MetricsAfterIsNil applies the IsNil predicate on the "metrics_after" field.
func MetricsAfterIsNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIsNull(FieldMetricsAfter))
}

// MetricsAfterNotNil applies the NotNil predicate on the "metrics_after" field.
func MetricsAfterNotNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotNull(FieldMetricsAfter))
}

// ImprovementDeltaEQ applies the EQ predicate on the "improvement_delta" field.
func ImprovementDeltaEQ(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldImprovementDelta, v))
}

// ImprovementDeltaNEQ applies the NEQ predicate on the "improvement_delta" field.
func ImprovementDeltaNEQ(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldImprovementDelta, v))
}

// ImprovementDeltaIn applies the In predicate on the "improvement_delta" field.
func ImprovementDeltaIn(vs ...float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldImprovementDelta, vs...))
}

// ImprovementDeltaNotIn applies the NotIn predicate on the "improvement_delta" field.
func ImprovementDeltaNotIn(vs ...float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldImprovementDelta, vs...))
}

// ImprovementDeltaGT applies the GT predicate on the "improvement_delta" field.
func ImprovementDeltaGT(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldImprovementDelta, v))
}

// ImprovementDeltaGTE applies the GTE predicate on the "improvement_delta" field.
func ImprovementDeltaGTE(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldImprovementDelta, v))
}

// ImprovementDeltaLT applies the LT predicate on the "improvement_delta" field.
func ImprovementDeltaLT(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldImprovementDelta, v))
}

// ImprovementDeltaLTE applies the LTE predicate on the "improvement_delta" field.
func ImprovementDeltaLTE(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldImprovementDelta, v))
}

// RubricRewardEQ applies the EQ predicate on the "rubric_reward" field.
func RubricRewardEQ(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldRubricReward, v))
}

// RubricRewardNEQ applies the NEQ predicate on the "rubric_reward" field.
func RubricRewardNEQ(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldRubricReward, v))
}

// RubricRewardIn applies the In predicate on the "rubric_reward" field.
func RubricRewardIn(vs ...float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldRubricReward, vs...))
}

// RubricRewardNotIn applies the NotIn predicate on the "rubric_reward" field.
func RubricRewardNotIn(vs ...float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldRubricReward, vs...))
}

// RubricRewardGT applies the GT predicate on the "rubric_reward" field.
func RubricRewardGT(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldRubricReward, v))
}

// RubricRewardGTE applies the GTE predicate on the "rubric_reward" field.
func RubricRewardGTE(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldRubricReward, v))
}

// RubricRewardLT applies the LT predicate on the "rubric_reward" field.
func RubricRewardLT(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldRubricReward, v))
}

// RubricRewardLTE applies the LTE predicate on the "rubric_reward" field.
func RubricRewardLTE(v float64) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldRubricReward, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldAccepted, v))
}

// GenerationEQ applies the EQ predicate on the "generation" field.
func GenerationEQ(v int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldGeneration, v))
}

// GenerationNEQ applies the NEQ predicate on the "generation" field.
func GenerationNEQ(v int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldGeneration, v))
}

// GenerationIn applies the In predicate on the "generation" field.
func GenerationIn(vs ...int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldGeneration, vs...))
}

// GenerationNotIn applies the NotIn predicate on the "generation" field.
func GenerationNotIn(vs ...int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldGeneration, vs...))
}

// GenerationGT applies the GT predicate on the "generation" field.
func GenerationGT(v int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldGeneration, v))
}

// GenerationGTE applies the GTE predicate on the "generation" field.
func GenerationGTE(v int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldGeneration, v))
}

// GenerationLT applies the LT predicate on the "generation" field.
func GenerationLT(v int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldGeneration, v))
}

// GenerationLTE applies the LTE predicate on the "generation" field.
func GenerationLTE(v int) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldGeneration, v))
}

// SandboxLogsEQ applies the EQ predicate on the "sandbox_logs" field.
func SandboxLogsEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldSandboxLogs, v))
}

// SandboxLogsNEQ applies the NEQ predicate on the "sandbox_logs" field.
func SandboxLogsNEQ(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldSandboxLogs, v))
}

// SandboxLogsIn applies the In predicate on the "sandbox_logs" field.
func SandboxLogsIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldSandboxLogs, vs...))
}

// SandboxLogsNotIn applies the NotIn predicate on the "sandbox_logs" field.
func SandboxLogsNotIn(vs ...string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldSandboxLogs, vs...))
}

// SandboxLogsGT applies the GT predicate on the "sandbox_logs" field.
func SandboxLogsGT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldSandboxLogs, v))
}

// SandboxLogsGTE applies the GTE predicate on the "sandbox_logs" field.
func SandboxLogsGTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldSandboxLogs, v))
}

// SandboxLogsLT applies the LT predicate on the "sandbox_logs" field.
func SandboxLogsLT(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldSandboxLogs, v))
}

// SandboxLogsLTE applies the LTE predicate on the "sandbox_logs" field.
func SandboxLogsLTE(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldSandboxLogs, v))
}

// SandboxLogsContains applies the Contains predicate on the "sandbox_logs" field.
func SandboxLogsContains(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContains(FieldSandboxLogs, v))
}

// SandboxLogsHasPrefix applies the HasPrefix predicate on the "sandbox_logs" field.
func SandboxLogsHasPrefix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasPrefix(FieldSandboxLogs, v))
}

// SandboxLogsHasSuffix applies the HasSuffix predicate on the "sandbox_logs" field.
func SandboxLogsHasSuffix(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldHasSuffix(FieldSandboxLogs, v))
}

// SandboxLogsIsNil applies the IsNil predicate on the "sandbox_logs" field.
func SandboxLogsIsNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIsNull(FieldSandboxLogs))
}

// SandboxLogsNotNil applies the NotNil predicate on the "sandbox_logs" field.
func SandboxLogsNotNil() predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotNull(FieldSandboxLogs))
}

// SandboxLogsEqualFold applies the EqualFold predicate on the "sandbox_logs" field.
func SandboxLogsEqualFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEqualFold(FieldSandboxLogs, v))
}

// SandboxLogsContainsFold applies the ContainsFold predicate on the "sandbox_logs" field.
func SandboxLogsContainsFold(v string) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldContainsFold(FieldSandboxLogs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvolutionAttempt) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvolutionAttempt) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvolutionAttempt) predicate.EvolutionAttempt {
	return predicate.EvolutionAttempt(sql.NotPredicates(p))
}
