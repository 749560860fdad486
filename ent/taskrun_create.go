// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/taskrun"
)

// TaskRunCreate is the builder for creating a TaskRun entity.
type TaskRunCreate struct {
	config
	mutation *TaskRunMutation
	hooks    []Hook
}

// SetAgentName sets the "agent_name" field.
func (_c *TaskRunCreate) SetAgentName(v string) *TaskRunCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TaskRunCreate) SetUserID(v string) *TaskRunCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableUserID(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskRunCreate) SetDescription(v string) *TaskRunCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskRunCreate) SetTaskType(v string) *TaskRunCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableTaskType(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskRunCreate) SetPriority(v float64) *TaskRunCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillablePriority(v *float64) *TaskRunCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRequiredTools sets the "required_tools" field.
func (_c *TaskRunCreate) SetRequiredTools(v []string) *TaskRunCreate {
	_c.mutation.SetRequiredTools(v)
	return _c
}

// SetNumSteps sets the "num_steps" field.
func (_c *TaskRunCreate) SetNumSteps(v int) *TaskRunCreate {
	_c.mutation.SetNumSteps(v)
	return _c
}

// SetNillableNumSteps sets the "num_steps" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableNumSteps(v *int) *TaskRunCreate {
	if v != nil {
		_c.SetNumSteps(*v)
	}
	return _c
}

// SetBatchSize sets the "batch_size" field.
func (_c *TaskRunCreate) SetBatchSize(v int) *TaskRunCreate {
	_c.mutation.SetBatchSize(v)
	return _c
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableBatchSize(v *int) *TaskRunCreate {
	if v != nil {
		_c.SetBatchSize(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskRunCreate) SetStatus(v taskrun.Status) *TaskRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableStatus(v *taskrun.Status) *TaskRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetModelTier sets the "model_tier" field.
func (_c *TaskRunCreate) SetModelTier(v string) *TaskRunCreate {
	_c.mutation.SetModelTier(v)
	return _c
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableModelTier(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetModelTier(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *TaskRunCreate) SetDifficulty(v string) *TaskRunCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableDifficulty(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *TaskRunCreate) SetEstimatedCost(v float64) *TaskRunCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableEstimatedCost(v *float64) *TaskRunCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TaskRunCreate) SetAttempts(v int) *TaskRunCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableAttempts(v *int) *TaskRunCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *TaskRunCreate) SetResult(v string) *TaskRunCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableResult(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *TaskRunCreate) SetErrorKind(v string) *TaskRunCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableErrorKind(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskRunCreate) SetErrorMessage(v string) *TaskRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableErrorMessage(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *TaskRunCreate) SetCorrelationID(v string) *TaskRunCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableCorrelationID(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *TaskRunCreate) SetPodID(v string) *TaskRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillablePodID(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskRunCreate) SetCreatedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableCreatedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskRunCreate) SetStartedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableStartedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskRunCreate) SetCompletedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableCompletedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *TaskRunCreate) SetLastInteractionAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableLastInteractionAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *TaskRunCreate) SetDeletedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableDeletedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskRunCreate) SetID(v string) *TaskRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskRunMutation object of the builder.
func (_c *TaskRunCreate) Mutation() *TaskRunMutation {
	return _c.mutation
}

// Save creates the TaskRun in the database.
func (_c *TaskRunCreate) Save(ctx context.Context) (*TaskRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskRunCreate) SaveX(ctx context.Context) *TaskRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskRunCreate) defaults() {
	if _, ok := _c.mutation.UserID(); !ok {
		v := taskrun.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := taskrun.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.NumSteps(); !ok {
		v := taskrun.DefaultNumSteps
		_c.mutation.SetNumSteps(v)
	}
	if _, ok := _c.mutation.BatchSize(); !ok {
		v := taskrun.DefaultBatchSize
		_c.mutation.SetBatchSize(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := taskrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := taskrun.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskRunCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "TaskRun.agent_name"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TaskRun.user_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "TaskRun.description"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "TaskRun.priority"`)}
	}
	if _, ok := _c.mutation.NumSteps(); !ok {
		return &ValidationError{Name: "num_steps", err: errors.New(`ent: missing required field "TaskRun.num_steps"`)}
	}
	if _, ok := _c.mutation.BatchSize(); !ok {
		return &ValidationError{Name: "batch_size", err: errors.New(`ent: missing required field "TaskRun.batch_size"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TaskRun.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskRun.created_at"`)}
	}
	return nil
}

func (_c *TaskRunCreate) sqlSave(ctx context.Context) (*TaskRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskRunCreate) createSpec() (*TaskRun, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskrun.Table, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(taskrun.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(taskrun.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(taskrun.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(taskrun.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(taskrun.FieldPriority, field.TypeFloat64, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.RequiredTools(); ok {
		_spec.SetField(taskrun.FieldRequiredTools, field.TypeJSON, value)
		_node.RequiredTools = value
	}
	if value, ok := _c.mutation.NumSteps(); ok {
		_spec.SetField(taskrun.FieldNumSteps, field.TypeInt, value)
		_node.NumSteps = value
	}
	if value, ok := _c.mutation.BatchSize(); ok {
		_spec.SetField(taskrun.FieldBatchSize, field.TypeInt, value)
		_node.BatchSize = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ModelTier(); ok {
		_spec.SetField(taskrun.FieldModelTier, field.TypeString, value)
		_node.ModelTier = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(taskrun.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(taskrun.FieldEstimatedCost, field.TypeFloat64, value)
		_node.EstimatedCost = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(taskrun.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(taskrun.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(taskrun.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(taskrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(taskrun.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(taskrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(taskrun.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(taskrun.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// TaskRunCreateBulk is the builder for creating many TaskRun entities in bulk.
type TaskRunCreateBulk struct {
	config
	err      error
	builders []*TaskRunCreate
}

// Save creates the TaskRun entities in the database.
func (_c *TaskRunCreateBulk) Save(ctx context.Context) ([]*TaskRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskRunCreateBulk) SaveX(ctx context.Context) []*TaskRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
