// Code generated by ent, DO NOT EDIT.

package trajectory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldAgentID, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldTaskType, v))
}

// InitialState applies equality check predicate on the "initial_state" field. It's identical to InitialStateEQ.
func InitialState(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldInitialState, v))
}

// Reward applies equality check predicate on the "reward" field. It's identical to RewardEQ.
func Reward(v float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldReward, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldDurationMs, v))
}

// FailureRationale applies equality check predicate on the "failure_rationale" field. It's identical to FailureRationaleEQ.
func FailureRationale(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldFailureRationale, v))
}

// ErrorCategory applies equality check predicate on the "error_category" field. It's identical to ErrorCategoryEQ.
func ErrorCategory(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldErrorCategory, v))
}

// FixApplied applies equality check predicate on the "fix_applied" field. It's identical to FixAppliedEQ.
func FixApplied(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldFixApplied, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldCorrelationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldAgentID, v))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldTaskDescription, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeIsNil applies the IsNil predicate on the "task_type" field.
func TaskTypeIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldTaskType))
}

// TaskTypeNotNil applies the NotNil predicate on the "task_type" field.
func TaskTypeNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldTaskType))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldTaskType, v))
}

// InitialStateEQ applies the EQ predicate on the "initial_state" field.
func InitialStateEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldInitialState, v))
}

// InitialStateNEQ applies the NEQ predicate on the "initial_state" field.
func InitialStateNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldInitialState, v))
}

// InitialStateIn applies the In predicate on the "initial_state" field.
func InitialStateIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldInitialState, vs...))
}

// InitialStateNotIn applies the NotIn predicate on the "initial_state" field.
func InitialStateNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldInitialState, vs...))
}

// InitialStateGT applies the GT predicate on the "initial_state" field.
func InitialStateGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldInitialState, v))
}

// InitialStateGTE applies the GTE predicate on the "initial_state" field.
func InitialStateGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldInitialState, v))
}

// InitialStateLT applies the LT predicate on the "initial_state" field.
func InitialStateLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldInitialState, v))
}

// InitialStateLTE applies the LTE predicate on the "initial_state" field.
func InitialStateLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldInitialState, v))
}

// InitialStateContains applies the Contains predicate on the "initial_state" field.
func InitialStateContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldInitialState, v))
}

// InitialStateHasPrefix applies the HasPrefix predicate on the "initial_state" field.
func InitialStateHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldInitialState, v))
}

// InitialStateHasSuffix applies the HasSuffix predicate on the "initial_state" field.
func InitialStateHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldInitialState, v))
}

// InitialStateIsNil applies the IsNil predicate on the "initial_state" field.
func InitialStateIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldInitialState))
}

// InitialStateNotNil applies the NotNil predicate on the "initial_state" field.
func InitialStateNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldInitialState))
}

// InitialStateEqualFold applies the EqualFold predicate on the "initial_state" field.
func InitialStateEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldInitialState, v))
}

// InitialStateContainsFold applies the ContainsFold predicate on the "initial_state" field.
func InitialStateContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldInitialState, v))
}

// FinalOutcomeEQ applies the EQ predicate on the "final_outcome" field.
func FinalOutcomeEQ(v FinalOutcome) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldFinalOutcome, v))
}

// FinalOutcomeNEQ applies the NEQ predicate on the "final_outcome" field.
func FinalOutcomeNEQ(v FinalOutcome) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldFinalOutcome, v))
}

// FinalOutcomeIn applies the In predicate on the "final_outcome" field.
func FinalOutcomeIn(vs ...FinalOutcome) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldFinalOutcome, vs...))
}

// FinalOutcomeNotIn applies the NotIn predicate on the "final_outcome" field.
func FinalOutcomeNotIn(vs ...FinalOutcome) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldFinalOutcome, vs...))
}

// RewardEQ applies the EQ predicate on the "reward" field.
func RewardEQ(v float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldReward, v))
}

// RewardNEQ applies the NEQ predicate on the "reward" field.
func RewardNEQ(v float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldReward, v))
}

// RewardIn applies the In predicate on the "reward" field.
func RewardIn(vs ...float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldReward, vs...))
}

// RewardNotIn applies the NotIn predicate on the "reward" field.
func RewardNotIn(vs ...float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldReward, vs...))
}

// RewardGT applies the GT predicate on the "reward" field.
func RewardGT(v float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldReward, v))
}

// RewardGTE applies the GTE predicate on the "reward" field.
func RewardGTE(v float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldReward, v))
}

// RewardLT applies the LT predicate on the "reward" field.
func RewardLT(v float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldReward, v))
}

// RewardLTE applies the LTE predicate on the "reward" field.
func RewardLTE(v float64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldReward, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldDurationMs, v))
}

// FailureRationaleEQ applies the EQ predicate on the "failure_rationale" field.
func FailureRationaleEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldFailureRationale, v))
}

// FailureRationaleNEQ applies the NEQ predicate on the "failure_rationale" field.
func FailureRationaleNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldFailureRationale, v))
}

// FailureRationaleIn applies the In predicate on the "failure_rationale" field.
func FailureRationaleIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldFailureRationale, vs...))
}

// FailureRationaleNotIn applies the NotIn predicate on the "failure_rationale" field.
func FailureRationaleNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldFailureRationale, vs...))
}

// FailureRationaleGT applies the GT predicate on the "failure_rationale" field.
func FailureRationaleGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldFailureRationale, v))
}

// FailureRationaleGTE applies the GTE predicate on the "failure_rationale" field.
func FailureRationaleGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldFailureRationale, v))
}

// FailureRationaleLT applies the LT predicate on the "failure_rationale" field.
func FailureRationaleLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldFailureRationale, v))
}

// FailureRationaleLTE applies the LTE predicate on the "failure_rationale" field.
func FailureRationaleLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldFailureRationale, v))
}

// FailureRationaleContains applies the Contains predicate on the "failure_rationale" field.
func FailureRationaleContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldFailureRationale, v))
}

// FailureRationaleHasPrefix applies the HasPrefix predicate on the "failure_rationale" field.
func FailureRationaleHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldFailureRationale, v))
}

// FailureRationaleHasSuffix applies the HasSuffix predicate on the "failure_rationale" field.
func FailureRationaleHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldFailureRationale, v))
}

// FailureRationaleIsNil applies the IsNil predicate on the "failure_rationale" field.
func FailureRationaleIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldFailureRationale))
}

// FailureRationaleNotNil applies the NotNil predicate on the "failure_rationale" field.
func FailureRationaleNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldFailureRationale))
}

// FailureRationaleEqualFold applies the EqualFold predicate on the "failure_rationale" field.
func FailureRationaleEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldFailureRationale, v))
}

// FailureRationaleContainsFold applies the ContainsFold predicate on the "failure_rationale" field.
func FailureRationaleContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldFailureRationale, v))
}

// ErrorCategoryEQ applies the EQ predicate on the "error_category" field.
func ErrorCategoryEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldErrorCategory, v))
}

// ErrorCategoryNEQ applies the NEQ predicate on the "error_category" field.
func ErrorCategoryNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldErrorCategory, v))
}

// ErrorCategoryIn applies the In predicate on the "error_category" field.
func ErrorCategoryIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldErrorCategory, vs...))
}

// ErrorCategoryNotIn applies the NotIn predicate on the "error_category" field.
func ErrorCategoryNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldErrorCategory, vs...))
}

// ErrorCategoryGT applies the GT predicate on the "error_category" field.
func ErrorCategoryGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldErrorCategory, v))
}

// ErrorCategoryGTE applies the GTE predicate on the "error_category" field.
func ErrorCategoryGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldErrorCategory, v))
}

// ErrorCategoryLT applies the LT predicate on the "error_category" field.
func ErrorCategoryLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldErrorCategory, v))
}

// ErrorCategoryLTE applies the LTE predicate on the "error_category" field.
func ErrorCategoryLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldErrorCategory, v))
}

// ErrorCategoryContains applies the Contains predicate on the "error_category" field.
func ErrorCategoryContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldErrorCategory, v))
}

// ErrorCategoryHasPrefix applies the HasPrefix predicate on the "error_category" field.
func ErrorCategoryHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldErrorCategory, v))
}

// ErrorCategoryHasSuffix applies the HasSuffix predicate on the "error_category" field.
func ErrorCategoryHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldErrorCategory, v))
}

// ErrorCategoryIsNil applies the IsNil predicate on the "error_category" field.
func ErrorCategoryIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldErrorCategory))
}

// ErrorCategoryNotNil applies the NotNil predicate on the "error_category" field.
func ErrorCategoryNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldErrorCategory))
}

// ErrorCategoryEqualFold applies the EqualFold predicate on the "error_category" field.
func ErrorCategoryEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldErrorCategory, v))
}

// ErrorCategoryContainsFold applies the ContainsFold predicate on the "error_category" field.
func ErrorCategoryContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldErrorCategory, v))
}

// FixAppliedEQ applies the EQ predicate on the "fix_applied" field.
func FixAppliedEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldFixApplied, v))
}

// FixAppliedNEQ applies the NEQ predicate on the "fix_applied" field.
func FixAppliedNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldFixApplied, v))
}

// FixAppliedIn applies the In predicate on the "fix_applied" field.
func FixAppliedIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldFixApplied, vs...))
}

// FixAppliedNotIn applies the NotIn predicate on the "fix_applied" field.
func FixAppliedNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldFixApplied, vs...))
}

// FixAppliedGT applies the GT predicate on the "fix_applied" field.
func FixAppliedGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldFixApplied, v))
}

// FixAppliedGTE applies the GTE predicate on the "fix_applied" field.
func FixAppliedGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldFixApplied, v))
}

// FixAppliedLT applies the LT predicate on the "fix_applied" field.
func FixAppliedLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldFixApplied, v))
}

// FixAppliedLTE applies the LTE predicate on the "fix_applied" field.
func FixAppliedLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldFixApplied, v))
}

// FixAppliedContains applies the Contains predicate on the "fix_applied" field.
func FixAppliedContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldFixApplied, v))
}

// FixAppliedHasPrefix applies the HasPrefix predicate on the "fix_applied" field.
func FixAppliedHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldFixApplied, v))
}

// FixAppliedHasSuffix applies the HasSuffix predicate on the "fix_applied" field.
func FixAppliedHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldFixApplied, v))
}

// FixAppliedIsNil applies the IsNil predicate on the "fix_applied" field.
func FixAppliedIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldFixApplied))
}

// FixAppliedNotNil applies the NotNil predicate on the "fix_applied" field.
func FixAppliedNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldFixApplied))
}

// FixAppliedEqualFold applies the EqualFold predicate on the "fix_applied" field.
func FixAppliedEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldFixApplied, v))
}

// FixAppliedContainsFold applies the ContainsFold predicate on the "fix_applied" field.
func FixAppliedContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldFixApplied, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldCorrelationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trajectory) predicate.Trajectory {
	return predicate.Trajectory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trajectory) predicate.Trajectory {
	return predicate.Trajectory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trajectory) predicate.Trajectory {
	return predicate.Trajectory(sql.NotPredicates(p))
}
