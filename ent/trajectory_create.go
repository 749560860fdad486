// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/trajectory"
)

// TrajectoryCreate is the builder for creating a Trajectory entity.
type TrajectoryCreate struct {
	config
	mutation *TrajectoryMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *TrajectoryCreate) SetAgentID(v string) *TrajectoryCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *TrajectoryCreate) SetTaskDescription(v string) *TrajectoryCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TrajectoryCreate) SetTaskType(v string) *TrajectoryCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableTaskType(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetInitialState sets the "initial_state" field.
func (_c *TrajectoryCreate) SetInitialState(v string) *TrajectoryCreate {
	_c.mutation.SetInitialState(v)
	return _c
}

// SetNillableInitialState sets the "initial_state" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableInitialState(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetInitialState(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *TrajectoryCreate) SetSteps(v []map[string]interface{}) *TrajectoryCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetFinalOutcome sets the "final_outcome" field.
func (_c *TrajectoryCreate) SetFinalOutcome(v trajectory.FinalOutcome) *TrajectoryCreate {
	_c.mutation.SetFinalOutcome(v)
	return _c
}

// SetReward sets the "reward" field.
func (_c *TrajectoryCreate) SetReward(v float64) *TrajectoryCreate {
	_c.mutation.SetReward(v)
	return _c
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableReward(v *float64) *TrajectoryCreate {
	if v != nil {
		_c.SetReward(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TrajectoryCreate) SetDurationMs(v int64) *TrajectoryCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableDurationMs(v *int64) *TrajectoryCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetFailureRationale sets the "failure_rationale" field.
func (_c *TrajectoryCreate) SetFailureRationale(v string) *TrajectoryCreate {
	_c.mutation.SetFailureRationale(v)
	return _c
}

// SetNillableFailureRationale sets the "failure_rationale" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableFailureRationale(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetFailureRationale(*v)
	}
	return _c
}

// SetErrorCategory sets the "error_category" field.
func (_c *TrajectoryCreate) SetErrorCategory(v string) *TrajectoryCreate {
	_c.mutation.SetErrorCategory(v)
	return _c
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableErrorCategory(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetErrorCategory(*v)
	}
	return _c
}

// SetFixApplied sets the "fix_applied" field.
func (_c *TrajectoryCreate) SetFixApplied(v string) *TrajectoryCreate {
	_c.mutation.SetFixApplied(v)
	return _c
}

// SetNillableFixApplied sets the "fix_applied" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableFixApplied(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetFixApplied(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *TrajectoryCreate) SetCorrelationID(v string) *TrajectoryCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableCorrelationID(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrajectoryCreate) SetCreatedAt(v time.Time) *TrajectoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableCreatedAt(v *time.Time) *TrajectoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrajectoryCreate) SetID(v string) *TrajectoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TrajectoryMutation object of the builder.
func (_c *TrajectoryCreate) Mutation() *TrajectoryMutation {
	return _c.mutation
}

// Save creates the Trajectory in the database.
func (_c *TrajectoryCreate) Save(ctx context.Context) (*Trajectory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrajectoryCreate) SaveX(ctx context.Context) *Trajectory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrajectoryCreate) defaults() {
	if _, ok := _c.mutation.Reward(); !ok {
		v := trajectory.DefaultReward
		_c.mutation.SetReward(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := trajectory.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trajectory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrajectoryCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Trajectory.agent_id"`)}
	}
	if _, ok := _c.mutation.TaskDescription(); !ok {
		return &ValidationError{Name: "task_description", err: errors.New(`ent: missing required field "Trajectory.task_description"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "Trajectory.steps"`)}
	}
	if _, ok := _c.mutation.FinalOutcome(); !ok {
		return &ValidationError{Name: "final_outcome", err: errors.New(`ent: missing required field "Trajectory.final_outcome"`)}
	}
	if v, ok := _c.mutation.FinalOutcome(); ok {
		if err := trajectory.FinalOutcomeValidator(v); err != nil {
			return &ValidationError{Name: "final_outcome", err: fmt.Errorf(`ent: validator failed for field "Trajectory.final_outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reward(); !ok {
		return &ValidationError{Name: "reward", err: errors.New(`ent: missing required field "Trajectory.reward"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "Trajectory.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Trajectory.created_at"`)}
	}
	return nil
}

func (_c *TrajectoryCreate) sqlSave(ctx context.Context) (*Trajectory, error) {
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
			return nil, fmt.Errorf("unexpected Trajectory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrajectoryCreate) createSpec() (*Trajectory, *sqlgraph.CreateSpec) {
	var (
		_node = &Trajectory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trajectory.Table, sqlgraph.NewFieldSpec(trajectory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(trajectory.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(trajectory.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(trajectory.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.InitialState(); ok {
		_spec.SetField(trajectory.FieldInitialState, field.TypeString, value)
		_node.InitialState = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(trajectory.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.FinalOutcome(); ok {
		_spec.SetField(trajectory.FieldFinalOutcome, field.TypeEnum, value)
		_node.FinalOutcome = value
	}
	if value, ok := _c.mutation.Reward(); ok {
		_spec.SetField(trajectory.FieldReward, field.TypeFloat64, value)
		_node.Reward = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(trajectory.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.FailureRationale(); ok {
		_spec.SetField(trajectory.FieldFailureRationale, field.TypeString, value)
		_node.FailureRationale = value
	}
	if value, ok := _c.mutation.ErrorCategory(); ok {
		_spec.SetField(trajectory.FieldErrorCategory, field.TypeString, value)
		_node.ErrorCategory = value
	}
	if value, ok := _c.mutation.FixApplied(); ok {
		_spec.SetField(trajectory.FieldFixApplied, field.TypeString, value)
		_node.FixApplied = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(trajectory.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trajectory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TrajectoryCreateBulk is the builder for creating many Trajectory entities in bulk.
type TrajectoryCreateBulk struct {
	config
	err      error
	builders []*TrajectoryCreate
}

// Save creates the Trajectory entities in the database.
func (_c *TrajectoryCreateBulk) Save(ctx context.Context) ([]*Trajectory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trajectory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrajectoryMutation)
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
func (_c *TrajectoryCreateBulk) SaveX(ctx context.Context) []*Trajectory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
