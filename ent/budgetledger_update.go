// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/budgetledger"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// BudgetLedgerUpdate is the builder for updating BudgetLedger entities.
type BudgetLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetLedgerMutation
}

// Where appends a list predicates to the BudgetLedgerUpdate builder.
func (_u *BudgetLedgerUpdate) Where(ps ...predicate.BudgetLedger) *BudgetLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMonthlyLimit sets the "monthly_limit" field.
func (_u *BudgetLedgerUpdate) SetMonthlyLimit(v float64) *BudgetLedgerUpdate {
	_u.mutation.ResetMonthlyLimit()
	_u.mutation.SetMonthlyLimit(v)
	return _u
}

// SetNillableMonthlyLimit sets the "monthly_limit" field if the given value is not nil.
func (_u *BudgetLedgerUpdate) SetNillableMonthlyLimit(v *float64) *BudgetLedgerUpdate {
	if v != nil {
		_u.SetMonthlyLimit(*v)
	}
	return _u
}

// AddMonthlyLimit adds value to the "monthly_limit" field.
func (_u *BudgetLedgerUpdate) AddMonthlyLimit(v float64) *BudgetLedgerUpdate {
	_u.mutation.AddMonthlyLimit(v)
	return _u
}

// SetMonthlySpend sets the "monthly_spend" field.
func (_u *BudgetLedgerUpdate) SetMonthlySpend(v float64) *BudgetLedgerUpdate {
	_u.mutation.ResetMonthlySpend()
	_u.mutation.SetMonthlySpend(v)
	return _u
}

// SetNillableMonthlySpend sets the "monthly_spend" field if the given value is not nil.
func (_u *BudgetLedgerUpdate) SetNillableMonthlySpend(v *float64) *BudgetLedgerUpdate {
	if v != nil {
		_u.SetMonthlySpend(*v)
	}
	return _u
}

// AddMonthlySpend adds value to the "monthly_spend" field.
func (_u *BudgetLedgerUpdate) AddMonthlySpend(v float64) *BudgetLedgerUpdate {
	_u.mutation.AddMonthlySpend(v)
	return _u
}

// SetWindow sets the "window" field.
func (_u *BudgetLedgerUpdate) SetWindow(v string) *BudgetLedgerUpdate {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *BudgetLedgerUpdate) SetNillableWindow(v *string) *BudgetLedgerUpdate {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetPerTransactionAlert sets the "per_transaction_alert" field.
func (_u *BudgetLedgerUpdate) SetPerTransactionAlert(v float64) *BudgetLedgerUpdate {
	_u.mutation.ResetPerTransactionAlert()
	_u.mutation.SetPerTransactionAlert(v)
	return _u
}

// SetNillablePerTransactionAlert sets the "per_transaction_alert" field if the given value is not nil.
func (_u *BudgetLedgerUpdate) SetNillablePerTransactionAlert(v *float64) *BudgetLedgerUpdate {
	if v != nil {
		_u.SetPerTransactionAlert(*v)
	}
	return _u
}

// AddPerTransactionAlert adds value to the "per_transaction_alert" field.
func (_u *BudgetLedgerUpdate) AddPerTransactionAlert(v float64) *BudgetLedgerUpdate {
	_u.mutation.AddPerTransactionAlert(v)
	return _u
}

// SetRequireManualAbove sets the "require_manual_above" field.
func (_u *BudgetLedgerUpdate) SetRequireManualAbove(v float64) *BudgetLedgerUpdate {
	_u.mutation.ResetRequireManualAbove()
	_u.mutation.SetRequireManualAbove(v)
	return _u
}

// SetNillableRequireManualAbove sets the "require_manual_above" field if the given value is not nil.
func (_u *BudgetLedgerUpdate) SetNillableRequireManualAbove(v *float64) *BudgetLedgerUpdate {
	if v != nil {
		_u.SetRequireManualAbove(*v)
	}
	return _u
}

// AddRequireManualAbove adds value to the "require_manual_above" field.
func (_u *BudgetLedgerUpdate) AddRequireManualAbove(v float64) *BudgetLedgerUpdate {
	_u.mutation.AddRequireManualAbove(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetLedgerUpdate) SetUpdatedAt(v time.Time) *BudgetLedgerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetLedgerMutation object of the builder.
func (_u *BudgetLedgerUpdate) Mutation() *BudgetLedgerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetLedgerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetLedgerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BudgetLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(budgetledger.Table, budgetledger.Columns, sqlgraph.NewFieldSpec(budgetledger.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MonthlyLimit(); ok {
		_spec.SetField(budgetledger.FieldMonthlyLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyLimit(); ok {
		_spec.AddField(budgetledger.FieldMonthlyLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MonthlySpend(); ok {
		_spec.SetField(budgetledger.FieldMonthlySpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySpend(); ok {
		_spec.AddField(budgetledger.FieldMonthlySpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(budgetledger.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerTransactionAlert(); ok {
		_spec.SetField(budgetledger.FieldPerTransactionAlert, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerTransactionAlert(); ok {
		_spec.AddField(budgetledger.FieldPerTransactionAlert, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequireManualAbove(); ok {
		_spec.SetField(budgetledger.FieldRequireManualAbove, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRequireManualAbove(); ok {
		_spec.AddField(budgetledger.FieldRequireManualAbove, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetledger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetLedgerUpdateOne is the builder for updating a single BudgetLedger entity.
type BudgetLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetLedgerMutation
}

// SetMonthlyLimit sets the "monthly_limit" field.
func (_u *BudgetLedgerUpdateOne) SetMonthlyLimit(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.ResetMonthlyLimit()
	_u.mutation.SetMonthlyLimit(v)
	return _u
}

// SetNillableMonthlyLimit sets the "monthly_limit" field if the given value is not nil.
func (_u *BudgetLedgerUpdateOne) SetNillableMonthlyLimit(v *float64) *BudgetLedgerUpdateOne {
	if v != nil {
		_u.SetMonthlyLimit(*v)
	}
	return _u
}

// AddMonthlyLimit adds value to the "monthly_limit" field.
func (_u *BudgetLedgerUpdateOne) AddMonthlyLimit(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.AddMonthlyLimit(v)
	return _u
}

// SetMonthlySpend sets the "monthly_spend" field.
func (_u *BudgetLedgerUpdateOne) SetMonthlySpend(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.ResetMonthlySpend()
	_u.mutation.SetMonthlySpend(v)
	return _u
}

// SetNillableMonthlySpend sets the "monthly_spend" field if the given value is not nil.
func (_u *BudgetLedgerUpdateOne) SetNillableMonthlySpend(v *float64) *BudgetLedgerUpdateOne {
	if v != nil {
		_u.SetMonthlySpend(*v)
	}
	return _u
}

// AddMonthlySpend adds value to the "monthly_spend" field.
func (_u *BudgetLedgerUpdateOne) AddMonthlySpend(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.AddMonthlySpend(v)
	return _u
}

// SetWindow sets the "window" field.
func (_u *BudgetLedgerUpdateOne) SetWindow(v string) *BudgetLedgerUpdateOne {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *BudgetLedgerUpdateOne) SetNillableWindow(v *string) *BudgetLedgerUpdateOne {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetPerTransactionAlert sets the "per_transaction_alert" field.
func (_u *BudgetLedgerUpdateOne) SetPerTransactionAlert(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.ResetPerTransactionAlert()
	_u.mutation.SetPerTransactionAlert(v)
	return _u
}

// SetNillablePerTransactionAlert sets the "per_transaction_alert" field if the given value is not nil.
func (_u *BudgetLedgerUpdateOne) SetNillablePerTransactionAlert(v *float64) *BudgetLedgerUpdateOne {
	if v != nil {
		_u.SetPerTransactionAlert(*v)
	}
	return _u
}

// AddPerTransactionAlert adds value to the "per_transaction_alert" field.
func (_u *BudgetLedgerUpdateOne) AddPerTransactionAlert(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.AddPerTransactionAlert(v)
	return _u
}

// SetRequireManualAbove sets the "require_manual_above" field.
func (_u *BudgetLedgerUpdateOne) SetRequireManualAbove(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.ResetRequireManualAbove()
	_u.mutation.SetRequireManualAbove(v)
	return _u
}

// SetNillableRequireManualAbove sets the "require_manual_above" field if the given value is not nil.
func (_u *BudgetLedgerUpdateOne) SetNillableRequireManualAbove(v *float64) *BudgetLedgerUpdateOne {
	if v != nil {
		_u.SetRequireManualAbove(*v)
	}
	return _u
}

// AddRequireManualAbove adds value to the "require_manual_above" field.
func (_u *BudgetLedgerUpdateOne) AddRequireManualAbove(v float64) *BudgetLedgerUpdateOne {
	_u.mutation.AddRequireManualAbove(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetLedgerUpdateOne) SetUpdatedAt(v time.Time) *BudgetLedgerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetLedgerMutation object of the builder.
func (_u *BudgetLedgerUpdateOne) Mutation() *BudgetLedgerMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetLedgerUpdate builder.
func (_u *BudgetLedgerUpdateOne) Where(ps ...predicate.BudgetLedger) *BudgetLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetLedgerUpdateOne) Select(field string, fields ...string) *BudgetLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BudgetLedger entity.
func (_u *BudgetLedgerUpdateOne) Save(ctx context.Context) (*BudgetLedger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetLedgerUpdateOne) SaveX(ctx context.Context) *BudgetLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetLedgerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BudgetLedgerUpdateOne) sqlSave(ctx context.Context) (_node *BudgetLedger, err error) {
	_spec := sqlgraph.NewUpdateSpec(budgetledger.Table, budgetledger.Columns, sqlgraph.NewFieldSpec(budgetledger.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BudgetLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetledger.FieldID)
		for _, f := range fields {
			if !budgetledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budgetledger.FieldID {
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
	if value, ok := _u.mutation.MonthlyLimit(); ok {
		_spec.SetField(budgetledger.FieldMonthlyLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyLimit(); ok {
		_spec.AddField(budgetledger.FieldMonthlyLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MonthlySpend(); ok {
		_spec.SetField(budgetledger.FieldMonthlySpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySpend(); ok {
		_spec.AddField(budgetledger.FieldMonthlySpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(budgetledger.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerTransactionAlert(); ok {
		_spec.SetField(budgetledger.FieldPerTransactionAlert, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerTransactionAlert(); ok {
		_spec.AddField(budgetledger.FieldPerTransactionAlert, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequireManualAbove(); ok {
		_spec.SetField(budgetledger.FieldRequireManualAbove, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRequireManualAbove(); ok {
		_spec.AddField(budgetledger.FieldRequireManualAbove, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetledger.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BudgetLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
