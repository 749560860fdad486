// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/budgetledger"
)

// BudgetLedgerCreate is the builder for creating a BudgetLedger entity.
type BudgetLedgerCreate struct {
	config
	mutation *BudgetLedgerMutation
	hooks    []Hook
}

// SetMonthlyLimit sets the "monthly_limit" field.
func (_c *BudgetLedgerCreate) SetMonthlyLimit(v float64) *BudgetLedgerCreate {
	_c.mutation.SetMonthlyLimit(v)
	return _c
}

// SetMonthlySpend sets the "monthly_spend" field.
func (_c *BudgetLedgerCreate) SetMonthlySpend(v float64) *BudgetLedgerCreate {
	_c.mutation.SetMonthlySpend(v)
	return _c
}

// SetNillableMonthlySpend sets the "monthly_spend" field if the given value is not nil.
func (_c *BudgetLedgerCreate) SetNillableMonthlySpend(v *float64) *BudgetLedgerCreate {
	if v != nil {
		_c.SetMonthlySpend(*v)
	}
	return _c
}

// SetWindow sets the "window" field.
func (_c *BudgetLedgerCreate) SetWindow(v string) *BudgetLedgerCreate {
	_c.mutation.SetWindow(v)
	return _c
}

// SetPerTransactionAlert sets the "per_transaction_alert" field.
func (_c *BudgetLedgerCreate) SetPerTransactionAlert(v float64) *BudgetLedgerCreate {
	_c.mutation.SetPerTransactionAlert(v)
	return _c
}

// SetNillablePerTransactionAlert sets the "per_transaction_alert" field if the given value is not nil.
func (_c *BudgetLedgerCreate) SetNillablePerTransactionAlert(v *float64) *BudgetLedgerCreate {
	if v != nil {
		_c.SetPerTransactionAlert(*v)
	}
	return _c
}

// SetRequireManualAbove sets the "require_manual_above" field.
func (_c *BudgetLedgerCreate) SetRequireManualAbove(v float64) *BudgetLedgerCreate {
	_c.mutation.SetRequireManualAbove(v)
	return _c
}

// SetNillableRequireManualAbove sets the "require_manual_above" field if the given value is not nil.
func (_c *BudgetLedgerCreate) SetNillableRequireManualAbove(v *float64) *BudgetLedgerCreate {
	if v != nil {
		_c.SetRequireManualAbove(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetLedgerCreate) SetUpdatedAt(v time.Time) *BudgetLedgerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetLedgerCreate) SetNillableUpdatedAt(v *time.Time) *BudgetLedgerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetLedgerCreate) SetID(v string) *BudgetLedgerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BudgetLedgerMutation object of the builder.
func (_c *BudgetLedgerCreate) Mutation() *BudgetLedgerMutation {
	return _c.mutation
}

// Save creates the BudgetLedger in the database.
func (_c *BudgetLedgerCreate) Save(ctx context.Context) (*BudgetLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetLedgerCreate) SaveX(ctx context.Context) *BudgetLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetLedgerCreate) defaults() {
	if _, ok := _c.mutation.MonthlySpend(); !ok {
		v := budgetledger.DefaultMonthlySpend
		_c.mutation.SetMonthlySpend(v)
	}
	if _, ok := _c.mutation.PerTransactionAlert(); !ok {
		v := budgetledger.DefaultPerTransactionAlert
		_c.mutation.SetPerTransactionAlert(v)
	}
	if _, ok := _c.mutation.RequireManualAbove(); !ok {
		v := budgetledger.DefaultRequireManualAbove
		_c.mutation.SetRequireManualAbove(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budgetledger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetLedgerCreate) check() error {
	if _, ok := _c.mutation.MonthlyLimit(); !ok {
		return &ValidationError{Name: "monthly_limit", err: errors.New(`ent: missing required field "BudgetLedger.monthly_limit"`)}
	}
	if _, ok := _c.mutation.MonthlySpend(); !ok {
		return &ValidationError{Name: "monthly_spend", err: errors.New(`ent: missing required field "BudgetLedger.monthly_spend"`)}
	}
	if _, ok := _c.mutation.Window(); !ok {
		return &ValidationError{Name: "window", err: errors.New(`ent: missing required field "BudgetLedger.window"`)}
	}
	if _, ok := _c.mutation.PerTransactionAlert(); !ok {
		return &ValidationError{Name: "per_transaction_alert", err: errors.New(`ent: missing required field "BudgetLedger.per_transaction_alert"`)}
	}
	if _, ok := _c.mutation.RequireManualAbove(); !ok {
		return &ValidationError{Name: "require_manual_above", err: errors.New(`ent: missing required field "BudgetLedger.require_manual_above"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BudgetLedger.updated_at"`)}
	}
	return nil
}

func (_c *BudgetLedgerCreate) sqlSave(ctx context.Context) (*BudgetLedger, error) {
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
			return nil, fmt.Errorf("unexpected BudgetLedger.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetLedgerCreate) createSpec() (*BudgetLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetledger.Table, sqlgraph.NewFieldSpec(budgetledger.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MonthlyLimit(); ok {
		_spec.SetField(budgetledger.FieldMonthlyLimit, field.TypeFloat64, value)
		_node.MonthlyLimit = value
	}
	if value, ok := _c.mutation.MonthlySpend(); ok {
		_spec.SetField(budgetledger.FieldMonthlySpend, field.TypeFloat64, value)
		_node.MonthlySpend = value
	}
	if value, ok := _c.mutation.Window(); ok {
		_spec.SetField(budgetledger.FieldWindow, field.TypeString, value)
		_node.Window = value
	}
	if value, ok := _c.mutation.PerTransactionAlert(); ok {
		_spec.SetField(budgetledger.FieldPerTransactionAlert, field.TypeFloat64, value)
		_node.PerTransactionAlert = value
	}
	if value, ok := _c.mutation.RequireManualAbove(); ok {
		_spec.SetField(budgetledger.FieldRequireManualAbove, field.TypeFloat64, value)
		_node.RequireManualAbove = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetledger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BudgetLedgerCreateBulk is the builder for creating many BudgetLedger entities in bulk.
type BudgetLedgerCreateBulk struct {
	config
	err      error
	builders []*BudgetLedgerCreate
}

// Save creates the BudgetLedger entities in the database.
func (_c *BudgetLedgerCreateBulk) Save(ctx context.Context) ([]*BudgetLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetLedgerMutation)
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
func (_c *BudgetLedgerCreateBulk) SaveX(ctx context.Context) []*BudgetLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
