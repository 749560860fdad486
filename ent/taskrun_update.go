// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/predicate"
	"github.com/agentfoundry/maestro/ent/taskrun"
)

// TaskRunUpdate is the builder for updating TaskRun entities.
type TaskRunUpdate struct {
	config
	hooks    []Hook
	mutation *TaskRunMutation
}

// Where appends a list predicates to the TaskRunUpdate builder.
func (_u *TaskRunUpdate) Where(ps ...predicate.TaskRun) *TaskRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *TaskRunUpdate) SetAgentName(v string) *TaskRunUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableAgentName(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskRunUpdate) SetUserID(v string) *TaskRunUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableUserID(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskRunUpdate) SetDescription(v string) *TaskRunUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableDescription(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskRunUpdate) SetTaskType(v string) *TaskRunUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableTaskType(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// ClearTaskType clears the value of the "task_type" field.
func (_u *TaskRunUpdate) ClearTaskType() *TaskRunUpdate {
	_u.mutation.ClearTaskType()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskRunUpdate) SetPriority(v float64) *TaskRunUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillablePriority(v *float64) *TaskRunUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskRunUpdate) AddPriority(v float64) *TaskRunUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRequiredTools sets the "required_tools" field.
func (_u *TaskRunUpdate) SetRequiredTools(v []string) *TaskRunUpdate {
	_u.mutation.SetRequiredTools(v)
	return _u
}

// AppendRequiredTools appends value to the "required_tools" field.
func (_u *TaskRunUpdate) AppendRequiredTools(v []string) *TaskRunUpdate {
	_u.mutation.AppendRequiredTools(v)
	return _u
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (_u *TaskRunUpdate) ClearRequiredTools() *TaskRunUpdate {
	_u.mutation.ClearRequiredTools()
	return _u
}

// SetNumSteps sets the "num_steps" field.
func (_u *TaskRunUpdate) SetNumSteps(v int) *TaskRunUpdate {
	_u.mutation.ResetNumSteps()
	_u.mutation.SetNumSteps(v)
	return _u
}

// SetNillableNumSteps sets the "num_steps" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableNumSteps(v *int) *TaskRunUpdate {
	if v != nil {
		_u.SetNumSteps(*v)
	}
	return _u
}

// AddNumSteps adds value to the "num_steps" field.
func (_u *TaskRunUpdate) AddNumSteps(v int) *TaskRunUpdate {
	_u.mutation.AddNumSteps(v)
	return _u
}

// SetBatchSize sets the "batch_size" field.
func (_u *TaskRunUpdate) SetBatchSize(v int) *TaskRunUpdate {
	_u.mutation.ResetBatchSize()
	_u.mutation.SetBatchSize(v)
	return _u
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableBatchSize(v *int) *TaskRunUpdate {
	if v != nil {
		_u.SetBatchSize(*v)
	}
	return _u
}

// AddBatchSize adds value to the "batch_size" field.
func (_u *TaskRunUpdate) AddBatchSize(v int) *TaskRunUpdate {
	_u.mutation.AddBatchSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskRunUpdate) SetStatus(v taskrun.Status) *TaskRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableStatus(v *taskrun.Status) *TaskRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *TaskRunUpdate) SetModelTier(v string) *TaskRunUpdate {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableModelTier(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// ClearModelTier clears the value of the "model_tier" field.
func (_u *TaskRunUpdate) ClearModelTier() *TaskRunUpdate {
	_u.mutation.ClearModelTier()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TaskRunUpdate) SetDifficulty(v string) *TaskRunUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableDifficulty(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *TaskRunUpdate) ClearDifficulty() *TaskRunUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *TaskRunUpdate) SetEstimatedCost(v float64) *TaskRunUpdate {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableEstimatedCost(v *float64) *TaskRunUpdate {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *TaskRunUpdate) AddEstimatedCost(v float64) *TaskRunUpdate {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (_u *TaskRunUpdate) ClearEstimatedCost() *TaskRunUpdate {
	_u.mutation.ClearEstimatedCost()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskRunUpdate) SetAttempts(v int) *TaskRunUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableAttempts(v *int) *TaskRunUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskRunUpdate) AddAttempts(v int) *TaskRunUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskRunUpdate) SetResult(v string) *TaskRunUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableResult(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskRunUpdate) ClearResult() *TaskRunUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *TaskRunUpdate) SetErrorKind(v string) *TaskRunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableErrorKind(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *TaskRunUpdate) ClearErrorKind() *TaskRunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskRunUpdate) SetErrorMessage(v string) *TaskRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableErrorMessage(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskRunUpdate) ClearErrorMessage() *TaskRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *TaskRunUpdate) SetCorrelationID(v string) *TaskRunUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableCorrelationID(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *TaskRunUpdate) ClearCorrelationID() *TaskRunUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskRunUpdate) SetPodID(v string) *TaskRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillablePodID(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskRunUpdate) ClearPodID() *TaskRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskRunUpdate) SetStartedAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableStartedAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskRunUpdate) ClearStartedAt() *TaskRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskRunUpdate) SetCompletedAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableCompletedAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskRunUpdate) ClearCompletedAt() *TaskRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *TaskRunUpdate) SetLastInteractionAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableLastInteractionAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *TaskRunUpdate) ClearLastInteractionAt() *TaskRunUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskRunUpdate) SetDeletedAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableDeletedAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskRunUpdate) ClearDeletedAt() *TaskRunUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the TaskRunMutation object of the builder.
func (_u *TaskRunUpdate) Mutation() *TaskRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrun.Table, taskrun.Columns, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(taskrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskrun.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskrun.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(taskrun.FieldTaskType, field.TypeString, value)
	}
	if _u.mutation.TaskTypeCleared() {
		_spec.ClearField(taskrun.FieldTaskType, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(taskrun.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(taskrun.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequiredTools(); ok {
		_spec.SetField(taskrun.FieldRequiredTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskrun.FieldRequiredTools, value)
		})
	}
	if _u.mutation.RequiredToolsCleared() {
		_spec.ClearField(taskrun.FieldRequiredTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.NumSteps(); ok {
		_spec.SetField(taskrun.FieldNumSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumSteps(); ok {
		_spec.AddField(taskrun.FieldNumSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchSize(); ok {
		_spec.SetField(taskrun.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchSize(); ok {
		_spec.AddField(taskrun.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(taskrun.FieldModelTier, field.TypeString, value)
	}
	if _u.mutation.ModelTierCleared() {
		_spec.ClearField(taskrun.FieldModelTier, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(taskrun.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(taskrun.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(taskrun.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(taskrun.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostCleared() {
		_spec.ClearField(taskrun.FieldEstimatedCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(taskrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(taskrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(taskrun.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(taskrun.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(taskrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(taskrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(taskrun.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(taskrun.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(taskrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(taskrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(taskrun.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(taskrun.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(taskrun.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(taskrun.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskRunUpdateOne is the builder for updating a single TaskRun entity.
type TaskRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskRunMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *TaskRunUpdateOne) SetAgentName(v string) *TaskRunUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableAgentName(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskRunUpdateOne) SetUserID(v string) *TaskRunUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableUserID(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskRunUpdateOne) SetDescription(v string) *TaskRunUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableDescription(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskRunUpdateOne) SetTaskType(v string) *TaskRunUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableTaskType(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// ClearTaskType clears the value of the "task_type" field.
func (_u *TaskRunUpdateOne) ClearTaskType() *TaskRunUpdateOne {
	_u.mutation.ClearTaskType()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskRunUpdateOne) SetPriority(v float64) *TaskRunUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillablePriority(v *float64) *TaskRunUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskRunUpdateOne) AddPriority(v float64) *TaskRunUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRequiredTools sets the "required_tools" field.
func (_u *TaskRunUpdateOne) SetRequiredTools(v []string) *TaskRunUpdateOne {
	_u.mutation.SetRequiredTools(v)
	return _u
}

// AppendRequiredTools appends value to the "required_tools" field.
func (_u *TaskRunUpdateOne) AppendRequiredTools(v []string) *TaskRunUpdateOne {
	_u.mutation.AppendRequiredTools(v)
	return _u
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (_u *TaskRunUpdateOne) ClearRequiredTools() *TaskRunUpdateOne {
	_u.mutation.ClearRequiredTools()
	return _u
}

// SetNumSteps sets the "num_steps" field.
func (_u *TaskRunUpdateOne) SetNumSteps(v int) *TaskRunUpdateOne {
	_u.mutation.ResetNumSteps()
	_u.mutation.SetNumSteps(v)
	return _u
}

// SetNillableNumSteps sets the "num_steps" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableNumSteps(v *int) *TaskRunUpdateOne {
	if v != nil {
		_u.SetNumSteps(*v)
	}
	return _u
}

// AddNumSteps adds value to the "num_steps" field.
func (_u *TaskRunUpdateOne) AddNumSteps(v int) *TaskRunUpdateOne {
	_u.mutation.AddNumSteps(v)
	return _u
}

// SetBatchSize sets the "batch_size" field.
func (_u *TaskRunUpdateOne) SetBatchSize(v int) *TaskRunUpdateOne {
	_u.mutation.ResetBatchSize()
	_u.mutation.SetBatchSize(v)
	return _u
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableBatchSize(v *int) *TaskRunUpdateOne {
	if v != nil {
		_u.SetBatchSize(*v)
	}
	return _u
}

// AddBatchSize adds value to the "batch_size" field.
func (_u *TaskRunUpdateOne) AddBatchSize(v int) *TaskRunUpdateOne {
	_u.mutation.AddBatchSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskRunUpdateOne) SetStatus(v taskrun.Status) *TaskRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableStatus(v *taskrun.Status) *TaskRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *TaskRunUpdateOne) SetModelTier(v string) *TaskRunUpdateOne {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableModelTier(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// ClearModelTier clears the value of the "model_tier" field.
func (_u *TaskRunUpdateOne) ClearModelTier() *TaskRunUpdateOne {
	_u.mutation.ClearModelTier()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TaskRunUpdateOne) SetDifficulty(v string) *TaskRunUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableDifficulty(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *TaskRunUpdateOne) ClearDifficulty() *TaskRunUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *TaskRunUpdateOne) SetEstimatedCost(v float64) *TaskRunUpdateOne {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableEstimatedCost(v *float64) *TaskRunUpdateOne {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *TaskRunUpdateOne) AddEstimatedCost(v float64) *TaskRunUpdateOne {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (_u *TaskRunUpdateOne) ClearEstimatedCost() *TaskRunUpdateOne {
	_u.mutation.ClearEstimatedCost()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskRunUpdateOne) SetAttempts(v int) *TaskRunUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableAttempts(v *int) *TaskRunUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskRunUpdateOne) AddAttempts(v int) *TaskRunUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskRunUpdateOne) SetResult(v string) *TaskRunUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableResult(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskRunUpdateOne) ClearResult() *TaskRunUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *TaskRunUpdateOne) SetErrorKind(v string) *TaskRunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableErrorKind(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *TaskRunUpdateOne) ClearErrorKind() *TaskRunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskRunUpdateOne) SetErrorMessage(v string) *TaskRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableErrorMessage(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskRunUpdateOne) ClearErrorMessage() *TaskRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *TaskRunUpdateOne) SetCorrelationID(v string) *TaskRunUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableCorrelationID(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *TaskRunUpdateOne) ClearCorrelationID() *TaskRunUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskRunUpdateOne) SetPodID(v string) *TaskRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillablePodID(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskRunUpdateOne) ClearPodID() *TaskRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskRunUpdateOne) SetStartedAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableStartedAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskRunUpdateOne) ClearStartedAt() *TaskRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskRunUpdateOne) SetCompletedAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskRunUpdateOne) ClearCompletedAt() *TaskRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *TaskRunUpdateOne) SetLastInteractionAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableLastInteractionAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *TaskRunUpdateOne) ClearLastInteractionAt() *TaskRunUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskRunUpdateOne) SetDeletedAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableDeletedAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskRunUpdateOne) ClearDeletedAt() *TaskRunUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the TaskRunMutation object of the builder.
func (_u *TaskRunUpdateOne) Mutation() *TaskRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskRunUpdate builder.
func (_u *TaskRunUpdateOne) Where(ps ...predicate.TaskRun) *TaskRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskRunUpdateOne) Select(field string, fields ...string) *TaskRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskRun entity.
func (_u *TaskRunUpdateOne) Save(ctx context.Context) (*TaskRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRunUpdateOne) SaveX(ctx context.Context) *TaskRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskRunUpdateOne) sqlSave(ctx context.Context) (_node *TaskRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrun.Table, taskrun.Columns, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskrun.FieldID)
		for _, f := range fields {
			if !taskrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(taskrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskrun.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskrun.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(taskrun.FieldTaskType, field.TypeString, value)
	}
	if _u.mutation.TaskTypeCleared() {
		_spec.ClearField(taskrun.FieldTaskType, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(taskrun.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(taskrun.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequiredTools(); ok {
		_spec.SetField(taskrun.FieldRequiredTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskrun.FieldRequiredTools, value)
		})
	}
	if _u.mutation.RequiredToolsCleared() {
		_spec.ClearField(taskrun.FieldRequiredTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.NumSteps(); ok {
		_spec.SetField(taskrun.FieldNumSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumSteps(); ok {
		_spec.AddField(taskrun.FieldNumSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchSize(); ok {
		_spec.SetField(taskrun.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchSize(); ok {
		_spec.AddField(taskrun.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(taskrun.FieldModelTier, field.TypeString, value)
	}
	if _u.mutation.ModelTierCleared() {
		_spec.ClearField(taskrun.FieldModelTier, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(taskrun.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(taskrun.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(taskrun.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(taskrun.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostCleared() {
		_spec.ClearField(taskrun.FieldEstimatedCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(taskrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(taskrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(taskrun.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(taskrun.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(taskrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(taskrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(taskrun.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(taskrun.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(taskrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(taskrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(taskrun.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(taskrun.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(taskrun.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(taskrun.FieldDeletedAt, field.TypeTime)
	}
	_node = &TaskRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
