// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
)

// EvolutionPatternCreate is the builder for creating a EvolutionPattern entity.
type EvolutionPatternCreate struct {
	config
	mutation *EvolutionPatternMutation
	hooks    []Hook
}

// SetAgentType sets the "agent_type" field.
func (_c *EvolutionPatternCreate) SetAgentType(v string) *EvolutionPatternCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *EvolutionPatternCreate) SetTaskType(v string) *EvolutionPatternCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetCodeDiff sets the "code_diff" field.
func (_c *EvolutionPatternCreate) SetCodeDiff(v string) *EvolutionPatternCreate {
	_c.mutation.SetCodeDiff(v)
	return _c
}

// SetNillableCodeDiff sets the "code_diff" field if the given value is not nil.
func (_c *EvolutionPatternCreate) SetNillableCodeDiff(v *string) *EvolutionPatternCreate {
	if v != nil {
		_c.SetCodeDiff(*v)
	}
	return _c
}

// SetStrategyDescription sets the "strategy_description" field.
func (_c *EvolutionPatternCreate) SetStrategyDescription(v string) *EvolutionPatternCreate {
	_c.mutation.SetStrategyDescription(v)
	return _c
}

// SetBenchmarkScore sets the "benchmark_score" field.
func (_c *EvolutionPatternCreate) SetBenchmarkScore(v float64) *EvolutionPatternCreate {
	_c.mutation.SetBenchmarkScore(v)
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *EvolutionPatternCreate) SetSuccessRate(v float64) *EvolutionPatternCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *EvolutionPatternCreate) SetCapabilities(v []string) *EvolutionPatternCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetSourceAgent sets the "source_agent" field.
func (_c *EvolutionPatternCreate) SetSourceAgent(v string) *EvolutionPatternCreate {
	_c.mutation.SetSourceAgent(v)
	return _c
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_c *EvolutionPatternCreate) SetNillableSourceAgent(v *string) *EvolutionPatternCreate {
	if v != nil {
		_c.SetSourceAgent(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *EvolutionPatternCreate) SetBusinessID(v string) *EvolutionPatternCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_c *EvolutionPatternCreate) SetNillableBusinessID(v *string) *EvolutionPatternCreate {
	if v != nil {
		_c.SetBusinessID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvolutionPatternCreate) SetCreatedAt(v time.Time) *EvolutionPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvolutionPatternCreate) SetNillableCreatedAt(v *time.Time) *EvolutionPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvolutionPatternCreate) SetID(v string) *EvolutionPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EvolutionPatternMutation object of the builder.
func (_c *EvolutionPatternCreate) Mutation() *EvolutionPatternMutation {
	return _c.mutation
}

// Save creates the EvolutionPattern in the database.
func (_c *EvolutionPatternCreate) Save(ctx context.Context) (*EvolutionPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvolutionPatternCreate) SaveX(ctx context.Context) *EvolutionPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvolutionPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvolutionPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvolutionPatternCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evolutionpattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvolutionPatternCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "EvolutionPattern.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := evolutionpattern.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionPattern.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "EvolutionPattern.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := evolutionpattern.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionPattern.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StrategyDescription(); !ok {
		return &ValidationError{Name: "strategy_description", err: errors.New(`ent: missing required field "EvolutionPattern.strategy_description"`)}
	}
	if _, ok := _c.mutation.BenchmarkScore(); !ok {
		return &ValidationError{Name: "benchmark_score", err: errors.New(`ent: missing required field "EvolutionPattern.benchmark_score"`)}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "EvolutionPattern.success_rate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvolutionPattern.created_at"`)}
	}
	return nil
}

func (_c *EvolutionPatternCreate) sqlSave(ctx context.Context) (*EvolutionPattern, error) {
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
			return nil, fmt.Errorf("unexpected EvolutionPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvolutionPatternCreate) createSpec() (*EvolutionPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &EvolutionPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evolutionpattern.Table, sqlgraph.NewFieldSpec(evolutionpattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(evolutionpattern.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(evolutionpattern.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.CodeDiff(); ok {
		_spec.SetField(evolutionpattern.FieldCodeDiff, field.TypeString, value)
		_node.CodeDiff = value
	}
	if value, ok := _c.mutation.StrategyDescription(); ok {
		_spec.SetField(evolutionpattern.FieldStrategyDescription, field.TypeString, value)
		_node.StrategyDescription = value
	}
	if value, ok := _c.mutation.BenchmarkScore(); ok {
		_spec.SetField(evolutionpattern.FieldBenchmarkScore, field.TypeFloat64, value)
		_node.BenchmarkScore = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(evolutionpattern.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(evolutionpattern.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.SourceAgent(); ok {
		_spec.SetField(evolutionpattern.FieldSourceAgent, field.TypeString, value)
		_node.SourceAgent = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(evolutionpattern.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evolutionpattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EvolutionPatternCreateBulk is the builder for creating many EvolutionPattern entities in bulk.
type EvolutionPatternCreateBulk struct {
	config
	err      error
	builders []*EvolutionPatternCreate
}

// Save creates the EvolutionPattern entities in the database.
func (_c *EvolutionPatternCreateBulk) Save(ctx context.Context) ([]*EvolutionPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvolutionPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvolutionPatternMutation)
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
func (_c *EvolutionPatternCreateBulk) SaveX(ctx context.Context) []*EvolutionPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvolutionPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvolutionPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
