// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/paymentreceipt"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// PaymentReceiptUpdate is the builder for updating PaymentReceipt entities.
type PaymentReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentReceiptMutation
}

// Where appends a list predicates to the PaymentReceiptUpdate builder.
func (_u *PaymentReceiptUpdate) Where(ps ...predicate.PaymentReceipt) *PaymentReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentReceiptUpdate) SetStatus(v paymentreceipt.Status) *PaymentReceiptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentReceiptUpdate) SetNillableStatus(v *paymentreceipt.Status) *PaymentReceiptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PaymentReceiptMutation object of the builder.
func (_u *PaymentReceiptUpdate) Mutation() *PaymentReceiptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentReceiptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentReceiptUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentreceipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentReceipt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentreceipt.Table, paymentreceipt.Columns, sqlgraph.NewFieldSpec(paymentreceipt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paymentreceipt.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AssetSignatureCleared() {
		_spec.ClearField(paymentreceipt.FieldAssetSignature, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(paymentreceipt.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(paymentreceipt.FieldCorrelationID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentreceipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentReceiptUpdateOne is the builder for updating a single PaymentReceipt entity.
type PaymentReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentReceiptMutation
}

// SetStatus sets the "status" field.
func (_u *PaymentReceiptUpdateOne) SetStatus(v paymentreceipt.Status) *PaymentReceiptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentReceiptUpdateOne) SetNillableStatus(v *paymentreceipt.Status) *PaymentReceiptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PaymentReceiptMutation object of the builder.
func (_u *PaymentReceiptUpdateOne) Mutation() *PaymentReceiptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentReceiptUpdate builder.
func (_u *PaymentReceiptUpdateOne) Where(ps ...predicate.PaymentReceipt) *PaymentReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentReceiptUpdateOne) Select(field string, fields ...string) *PaymentReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentReceipt entity.
func (_u *PaymentReceiptUpdateOne) Save(ctx context.Context) (*PaymentReceipt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentReceiptUpdateOne) SaveX(ctx context.Context) *PaymentReceipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentreceipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentReceipt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentReceiptUpdateOne) sqlSave(ctx context.Context) (_node *PaymentReceipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentreceipt.Table, paymentreceipt.Columns, sqlgraph.NewFieldSpec(paymentreceipt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentReceipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentreceipt.FieldID)
		for _, f := range fields {
			if !paymentreceipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentreceipt.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paymentreceipt.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AssetSignatureCleared() {
		_spec.ClearField(paymentreceipt.FieldAssetSignature, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(paymentreceipt.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(paymentreceipt.FieldCorrelationID, field.TypeString)
	}
	_node = &PaymentReceipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentreceipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
