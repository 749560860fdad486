// Code generated by ent, DO NOT EDIT.

package taskrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldID, id))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldAgentName, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldUserID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDescription, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldTaskType, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPriority, v))
}

// NumSteps applies equality check predicate on the "num_steps" field. It's identical to NumStepsEQ.
func NumSteps(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldNumSteps, v))
}

// BatchSize applies equality check predicate on the "batch_size" field. It's identical to BatchSizeEQ.
func BatchSize(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldBatchSize, v))
}

// ModelTier applies equality check predicate on the "model_tier" field. It's identical to ModelTierEQ.
func ModelTier(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldModelTier, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDifficulty, v))
}

// EstimatedCost applies equality check predicate on the "estimated_cost" field. It's identical to EstimatedCostEQ.
func EstimatedCost(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldEstimatedCost, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldAttempts, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldResult, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCorrelationID, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCompletedAt, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDeletedAt, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldAgentName, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldUserID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldDescription, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeIsNil applies the IsNil predicate on the "task_type" field.
func TaskTypeIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldTaskType))
}

// TaskTypeNotNil applies the NotNil predicate on the "task_type" field.
func TaskTypeNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldTaskType))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldTaskType, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldPriority, v))
}

// RequiredToolsIsNil applies the IsNil predicate on the "required_tools" field.
func RequiredToolsIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldRequiredTools))
}

// RequiredToolsNotNil applies the NotNil predicate on the "required_tools" field.
func RequiredToolsNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldRequiredTools))
}

// NumStepsEQ applies the EQ predicate on the "num_steps" field.
func NumStepsEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldNumSteps, v))
}

// NumStepsNEQ applies the NEQ predicate on the "num_steps" field.
func NumStepsNEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldNumSteps, v))
}

// NumStepsIn applies the In predicate on the "num_steps" field.
func NumStepsIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldNumSteps, vs...))
}

// NumStepsNotIn applies the NotIn predicate on the "num_steps" field.
func NumStepsNotIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldNumSteps, vs...))
}

// NumStepsGT applies the GT predicate on the "num_steps" field.
func NumStepsGT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldNumSteps, v))
}

// NumStepsGTE applies the GTE predicate on the "num_steps" field.
func NumStepsGTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldNumSteps, v))
}

// NumStepsLT applies the LT predicate on the "num_steps" field.
func NumStepsLT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldNumSteps, v))
}

// NumStepsLTE applies the LTE predicate on the "num_steps" field.
func NumStepsLTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldNumSteps, v))
}

// BatchSizeEQ applies the EQ predicate on the "batch_size" field.
func BatchSizeEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldBatchSize, v))
}

// BatchSizeNEQ applies the NEQ predicate on the "batch_size" field.
func BatchSizeNEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldBatchSize, v))
}

// BatchSizeIn applies the In predicate on the "batch_size" field.
func BatchSizeIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldBatchSize, vs...))
}

// BatchSizeNotIn applies the NotIn predicate on the "batch_size" field.
func BatchSizeNotIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldBatchSize, vs...))
}

// BatchSizeGT applies the GT predicate on the "batch_size" field.
func BatchSizeGT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldBatchSize, v))
}

// BatchSizeGTE applies the GTE predicate on the "batch_size" field.
func BatchSizeGTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldBatchSize, v))
}

// BatchSizeLT applies the LT predicate on the "batch_size" field.
func BatchSizeLT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldBatchSize, v))
}

// BatchSizeLTE applies the LTE predicate on the "batch_size" field.
func BatchSizeLTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldBatchSize, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ModelTierEQ applies the EQ predicate on the "model_tier" field.
func ModelTierEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldModelTier, v))
}

// ModelTierNEQ applies the NEQ predicate on the "model_tier" field.
func ModelTierNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldModelTier, v))
}

// ModelTierIn applies the In predicate on the "model_tier" field.
func ModelTierIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldModelTier, vs...))
}

// ModelTierNotIn applies the NotIn predicate on the "model_tier" field.
func ModelTierNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldModelTier, vs...))
}

// ModelTierGT applies the GT predicate on the "model_tier" field.
func ModelTierGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldModelTier, v))
}

// ModelTierGTE applies the GTE predicate on the "model_tier" field.
func ModelTierGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldModelTier, v))
}

// ModelTierLT applies the LT predicate on the "model_tier" field.
func ModelTierLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldModelTier, v))
}

// ModelTierLTE applies the LTE predicate on the "model_tier" field.
func ModelTierLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldModelTier, v))
}

// ModelTierContains applies the Contains predicate on the "model_tier" field.
func ModelTierContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldModelTier, v))
}

// ModelTierHasPrefix applies the HasPrefix predicate on the "model_tier" field.
func ModelTierHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldModelTier, v))
}

// ModelTierHasSuffix applies the HasSuffix predicate on the "model_tier" field.
func ModelTierHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldModelTier, v))
}

// ModelTierIsNil applies the IsNil predicate on the "model_tier" field.
func ModelTierIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldModelTier))
}

// ModelTierNotNil applies the NotNil predicate on the "model_tier" field.
func ModelTierNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldModelTier))
}

// ModelTierEqualFold applies the EqualFold predicate on the "model_tier" field.
func ModelTierEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldModelTier, v))
}

// ModelTierContainsFold applies the ContainsFold predicate on the "model_tier" field.
func ModelTierContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldModelTier, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldDifficulty))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldDifficulty, v))
}

// EstimatedCostEQ applies the EQ predicate on the "estimated_cost" field.
func EstimatedCostEQ(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldEstimatedCost, v))
}

// EstimatedCostNEQ applies the NEQ predicate on the "estimated_cost" field.
func EstimatedCostNEQ(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldEstimatedCost, v))
}

// EstimatedCostIn applies the In predicate on the "estimated_cost" field.
func EstimatedCostIn(vs ...float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldEstimatedCost, vs...))
}

// EstimatedCostNotIn applies the NotIn predicate on the "estimated_cost" field.
func EstimatedCostNotIn(vs ...float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldEstimatedCost, vs...))
}

// EstimatedCostGT applies the GT predicate on the "estimated_cost" field.
func EstimatedCostGT(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldEstimatedCost, v))
}

// EstimatedCostGTE applies the GTE predicate on the "estimated_cost" field.
func EstimatedCostGTE(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldEstimatedCost, v))
}

// EstimatedCostLT applies the LT predicate on the "estimated_cost" field.
func EstimatedCostLT(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldEstimatedCost, v))
}

// EstimatedCostLTE applies the LTE predicate on the "estimated_cost" field.
func EstimatedCostLTE(v float64) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldEstimatedCost, v))
}

// EstimatedCostIsNil applies the IsNil predicate on the "estimated_cost" field.
func EstimatedCostIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldEstimatedCost))
}

// EstimatedCostNotNil applies the NotNil predicate on the "estimated_cost" field.
func EstimatedCostNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldEstimatedCost))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldAttempts, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldResult, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldCorrelationID, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldCompletedAt))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskRun) predicate.TaskRun {
	return predicate.TaskRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskRun) predicate.TaskRun {
	return predicate.TaskRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskRun) predicate.TaskRun {
	return predicate.TaskRun(sql.NotPredicates(p))
}
