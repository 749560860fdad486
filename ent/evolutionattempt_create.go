// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
)

// EvolutionAttemptCreate is the builder for creating a EvolutionAttempt entity.
type EvolutionAttemptCreate struct {
	config
	mutation *EvolutionAttemptMutation
	hooks    []Hook
}

// SetAgentType sets the "agent_type" field.
func (_c *EvolutionAttemptCreate) SetAgentType(v string) *EvolutionAttemptCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetParentVersion sets the "parent_version" field.
func (_c *EvolutionAttemptCreate) SetParentVersion(v string) *EvolutionAttemptCreate {
	_c.mutation.SetParentVersion(v)
	return _c
}

// SetImprovementType sets the "improvement_type" field.
func (_c *EvolutionAttemptCreate) SetImprovementType(v evolutionattempt.ImprovementType) *EvolutionAttemptCreate {
	_c.mutation.SetImprovementType(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *EvolutionAttemptCreate) SetDiagnosis(v string) *EvolutionAttemptCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_c *EvolutionAttemptCreate) SetNillableDiagnosis(v *string) *EvolutionAttemptCreate {
	if v != nil {
		_c.SetDiagnosis(*v)
	}
	return _c
}

// SetProposedChanges sets the "proposed_changes" field.
func (_c *EvolutionAttemptCreate) SetProposedChanges(v string) *EvolutionAttemptCreate {
	_c.mutation.SetProposedChanges(v)
	return _c
}

// SetNillableProposedChanges sets the "proposed_changes" field if the given value is not nil.
func (_c *EvolutionAttemptCreate) SetNillableProposedChanges(v *string) *EvolutionAttemptCreate {
	if v != nil {
		_c.SetProposedChanges(*v)
	}
	return _c
}

// SetMetricsBefore sets the "metrics_before" field.
func (_c *EvolutionAttemptCreate) SetMetricsBefore(v map[string]float64) *EvolutionAttemptCreate {
	_c.mutation.SetMetricsBefore(v)
	return _c
}

// SetMetricsAfter sets the "metrics_after" field.
func (_c *EvolutionAttemptCreate) SetMetricsAfter(v map[string]float64) *EvolutionAttemptCreate {
	_c.mutation.SetMetricsAfter(v)
	return _c
}

// SetImprovementDelta sets the "improvement_delta" field.
func (_c *EvolutionAttemptCreate) SetImprovementDelta(v float64) *EvolutionAttemptCreate {
	_c.mutation.SetImprovementDelta(v)
	return _c
}

// SetNillableImprovementDelta sets the "improvement_delta" field if the given value is not nil.
func (_c *EvolutionAttemptCreate) SetNillableImprovementDelta(v *float64) *EvolutionAttemptCreate {
	if v != nil {
		_c.SetImprovementDelta(*v)
	}
	return _c
}

// SetRubricReward sets the "rubric_reward" field.
func (_c *EvolutionAttemptCreate) SetRubricReward(v float64) *EvolutionAttemptCreate {
	_c.mutation.SetRubricReward(v)
	return _c
}

// SetNillableRubricReward sets the "rubric_reward" field if the given value is not nil.
func (_c *EvolutionAttemptCreate) SetNillableRubricReward(v *float64) *EvolutionAttemptCreate {
	if v != nil {
		_c.SetRubricReward(*v)
	}
	return _c
}

// SetAccepted sets the "accepted" field.
func (_c *EvolutionAttemptCreate) SetAccepted(v bool) *EvolutionAttemptCreate {
	_c.mutation.SetAccepted(v)
	return _c
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_c *EvolutionAttemptCreate) SetNillableAccepted(v *bool) *EvolutionAttemptCreate {
	if v != nil {
		_c.SetAccepted(*v)
	}
	return _c
}

// SetGeneration sets the "generation" field.
func (_c *EvolutionAttemptCreate) SetGeneration(v int) *EvolutionAttemptCreate {
	_c.mutation.SetGeneration(v)
	return _c
}

// SetSandboxLogs sets the "sandbox_logs" field.
func (_c *EvolutionAttemptCreate) SetSandboxLogs(v string) *EvolutionAttemptCreate {
	_c.mutation.SetSandboxLogs(v)
	return _c
}

// SetNillableSandboxLogs sets the "sandbox_logs" field if the given value is not nil.
func (_c *EvolutionAttemptCreate) SetNillableSandboxLogs(v *string) *EvolutionAttemptCreate {
	if v != nil {
		_c.SetSandboxLogs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvolutionAttemptCreate) SetCreatedAt(v time.Time) *EvolutionAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvolutionAttemptCreate) SetNillableCreatedAt(v *time.Time) *EvolutionAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvolutionAttemptCreate) SetID(v string) *EvolutionAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EvolutionAttemptMutation object of the builder.
func (_c *EvolutionAttemptCreate) Mutation() *EvolutionAttemptMutation {
	return _c.mutation
}

// Save creates the EvolutionAttempt in the database.
func (_c *EvolutionAttemptCreate) Save(ctx context.Context) (*EvolutionAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvolutionAttemptCreate) SaveX(ctx context.Context) *EvolutionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvolutionAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvolutionAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvolutionAttemptCreate) defaults() {
	if _, ok := _c.mutation.ImprovementDelta(); !ok {
		v := evolutionattempt.DefaultImprovementDelta
		_c.mutation.SetImprovementDelta(v)
	}
	if _, ok := _c.mutation.RubricReward(); !ok {
		v := evolutionattempt.DefaultRubricReward
		_c.mutation.SetRubricReward(v)
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		v := evolutionattempt.DefaultAccepted
		_c.mutation.SetAccepted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evolutionattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvolutionAttemptCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "EvolutionAttempt.agent_type"`)}
	}
	if _, ok := _c.mutation.ParentVersion(); !ok {
		return &ValidationError{Name: "parent_version", err: errors.New(`ent: missing required field "EvolutionAttempt.parent_version"`)}
	}
	if _, ok := _c.mutation.ImprovementType(); !ok {
		return &ValidationError{Name: "improvement_type", err: errors.New(`ent: missing required field "EvolutionAttempt.improvement_type"`)}
	}
	if v, ok := _c.mutation.ImprovementType(); ok {
		if err := evolutionattempt.ImprovementTypeValidator(v); err != nil {
			return &ValidationError{Name: "improvement_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionAttempt.improvement_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImprovementDelta(); !ok {
		return &ValidationError{Name: "improvement_delta", err: errors.New(`ent: missing required field "EvolutionAttempt.improvement_delta"`)}
	}
	if _, ok := _c.mutation.RubricReward(); !ok {
		return &ValidationError{Name: "rubric_reward", err: errors.New(`ent: missing required field "EvolutionAttempt.rubric_reward"`)}
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "EvolutionAttempt.accepted"`)}
	}
	if _, ok := _c.mutation.Generation(); !ok {
		return &ValidationError{Name: "generation", err: errors.New(`ent: missing required field "EvolutionAttempt.generation"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvolutionAttempt.created_at"`)}
	}
	return nil
}

func (_c *EvolutionAttemptCreate) sqlSave(ctx context.Context) (*EvolutionAttempt, error) {
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
			return nil, fmt.Errorf("unexpected EvolutionAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvolutionAttemptCreate) createSpec() (*EvolutionAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &EvolutionAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evolutionattempt.Table, sqlgraph.NewFieldSpec(evolutionattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(evolutionattempt.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.ParentVersion(); ok {
		_spec.SetField(evolutionattempt.FieldParentVersion, field.TypeString, value)
		_node.ParentVersion = value
	}
	if value, ok := _c.mutation.ImprovementType(); ok {
		_spec.SetField(evolutionattempt.FieldImprovementType, field.TypeEnum, value)
		_node.ImprovementType = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(evolutionattempt.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.ProposedChanges(); ok {
		_spec.SetField(evolutionattempt.FieldProposedChanges, field.TypeString, value)
		_node.ProposedChanges = value
	}
	if value, ok := _c.mutation.MetricsBefore(); ok {
		_spec.SetField(evolutionattempt.FieldMetricsBefore, field.TypeJSON, value)
		_node.MetricsBefore = value
	}
	if value, ok := _c.mutation.MetricsAfter(); ok {
		_spec.SetField(evolutionattempt.FieldMetricsAfter, field.TypeJSON, value)
		_node.MetricsAfter = value
	}
	if value, ok := _c.mutation.ImprovementDelta(); ok {
		_spec.SetField(evolutionattempt.FieldImprovementDelta, field.TypeFloat64, value)
		_node.ImprovementDelta = value
	}
	if value, ok := _c.mutation.RubricReward(); ok {
		_spec.SetField(evolutionattempt.FieldRubricReward, field.TypeFloat64, value)
		_node.RubricReward = value
	}
	if value, ok := _c.mutation.Accepted(); ok {
		_spec.SetField(evolutionattempt.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	if value, ok := _c.mutation.Generation(); ok {
		_spec.SetField(evolutionattempt.FieldGeneration, field.TypeInt, value)
		_node.Generation = value
	}
	if value, ok := _c.mutation.SandboxLogs(); ok {
		_spec.SetField(evolutionattempt.FieldSandboxLogs, field.TypeString, value)
		_node.SandboxLogs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evolutionattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EvolutionAttemptCreateBulk is the builder for creating many EvolutionAttempt entities in bulk.
type EvolutionAttemptCreateBulk struct {
	config
	err      error
	builders []*EvolutionAttemptCreate
}

// Save creates the EvolutionAttempt entities in the database.
func (_c *EvolutionAttemptCreateBulk) Save(ctx context.Context) ([]*EvolutionAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvolutionAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvolutionAttemptMutation)
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
func (_c *EvolutionAttemptCreateBulk) SaveX(ctx context.Context) []*EvolutionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvolutionAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvolutionAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
