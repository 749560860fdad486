// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/memoryentry"
)

// MemoryEntryCreate is the builder for creating a MemoryEntry entity.
type MemoryEntryCreate struct {
	config
	mutation *MemoryEntryMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *MemoryEntryCreate) SetAgentID(v string) *MemoryEntryCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MemoryEntryCreate) SetUserID(v string) *MemoryEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *MemoryEntryCreate) SetTier(v memoryentry.Tier) *MemoryEntryCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableTier(v *memoryentry.Tier) *MemoryEntryCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetMemoryType sets the "memory_type" field.
func (_c *MemoryEntryCreate) SetMemoryType(v string) *MemoryEntryCreate {
	_c.mutation.SetMemoryType(v)
	return _c
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableMemoryType(v *string) *MemoryEntryCreate {
	if v != nil {
		_c.SetMemoryType(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryEntryCreate) SetContent(v string) *MemoryEntryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetHeatScore sets the "heat_score" field.
func (_c *MemoryEntryCreate) SetHeatScore(v float64) *MemoryEntryCreate {
	_c.mutation.SetHeatScore(v)
	return _c
}

// SetNillableHeatScore sets the "heat_score" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableHeatScore(v *float64) *MemoryEntryCreate {
	if v != nil {
		_c.SetHeatScore(*v)
	}
	return _c
}

// SetVisitCount sets the "visit_count" field.
func (_c *MemoryEntryCreate) SetVisitCount(v int) *MemoryEntryCreate {
	_c.mutation.SetVisitCount(v)
	return _c
}

// SetNillableVisitCount sets the "visit_count" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableVisitCount(v *int) *MemoryEntryCreate {
	if v != nil {
		_c.SetVisitCount(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MemoryEntryCreate) SetMetadata(v map[string]interface{}) *MemoryEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryEntryCreate) SetCreatedAt(v time.Time) *MemoryEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableCreatedAt(v *time.Time) *MemoryEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MemoryEntryCreate) SetUpdatedAt(v time.Time) *MemoryEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableUpdatedAt(v *time.Time) *MemoryEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *MemoryEntryCreate) SetExpiresAt(v time.Time) *MemoryEntryCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableExpiresAt(v *time.Time) *MemoryEntryCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryEntryCreate) SetID(v string) *MemoryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_c *MemoryEntryCreate) Mutation() *MemoryEntryMutation {
	return _c.mutation
}

// Save creates the MemoryEntry in the database.
func (_c *MemoryEntryCreate) Save(ctx context.Context) (*MemoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryEntryCreate) SaveX(ctx context.Context) *MemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryEntryCreate) defaults() {
	if _, ok := _c.mutation.Tier(); !ok {
		v := memoryentry.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.MemoryType(); !ok {
		v := memoryentry.DefaultMemoryType
		_c.mutation.SetMemoryType(v)
	}
	if _, ok := _c.mutation.HeatScore(); !ok {
		v := memoryentry.DefaultHeatScore
		_c.mutation.SetHeatScore(v)
	}
	if _, ok := _c.mutation.VisitCount(); !ok {
		v := memoryentry.DefaultVisitCount
		_c.mutation.SetVisitCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := memoryentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryEntryCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "MemoryEntry.agent_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MemoryEntry.user_id"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "MemoryEntry.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := memoryentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MemoryType(); !ok {
		return &ValidationError{Name: "memory_type", err: errors.New(`ent: missing required field "MemoryEntry.memory_type"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MemoryEntry.content"`)}
	}
	if _, ok := _c.mutation.HeatScore(); !ok {
		return &ValidationError{Name: "heat_score", err: errors.New(`ent: missing required field "MemoryEntry.heat_score"`)}
	}
	if _, ok := _c.mutation.VisitCount(); !ok {
		return &ValidationError{Name: "visit_count", err: errors.New(`ent: missing required field "MemoryEntry.visit_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MemoryEntry.updated_at"`)}
	}
	return nil
}

func (_c *MemoryEntryCreate) sqlSave(ctx context.Context) (*MemoryEntry, error) {
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
			return nil, fmt.Errorf("unexpected MemoryEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryEntryCreate) createSpec() (*MemoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryentry.Table, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(memoryentry.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(memoryentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(memoryentry.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.MemoryType(); ok {
		_spec.SetField(memoryentry.FieldMemoryType, field.TypeString, value)
		_node.MemoryType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memoryentry.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.HeatScore(); ok {
		_spec.SetField(memoryentry.FieldHeatScore, field.TypeFloat64, value)
		_node.HeatScore = value
	}
	if value, ok := _c.mutation.VisitCount(); ok {
		_spec.SetField(memoryentry.FieldVisitCount, field.TypeInt, value)
		_node.VisitCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(memoryentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(memoryentry.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	return _node, _spec
}

// MemoryEntryCreateBulk is the builder for creating many MemoryEntry entities in bulk.
type MemoryEntryCreateBulk struct {
	config
	err      error
	builders []*MemoryEntryCreate
}

// Save creates the MemoryEntry entities in the database.
func (_c *MemoryEntryCreateBulk) Save(ctx context.Context) ([]*MemoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryEntryMutation)
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
func (_c *MemoryEntryCreateBulk) SaveX(ctx context.Context) []*MemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
