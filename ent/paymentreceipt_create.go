// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/paymentreceipt"
)

// PaymentReceiptCreate is the builder for creating a PaymentReceipt entity.
type PaymentReceiptCreate struct {
	config
	mutation *PaymentReceiptMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *PaymentReceiptCreate) SetAgentID(v string) *PaymentReceiptCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *PaymentReceiptCreate) SetVendor(v string) *PaymentReceiptCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetTxHash sets the "tx_hash" field.
func (_c *PaymentReceiptCreate) SetTxHash(v string) *PaymentReceiptCreate {
	_c.mutation.SetTxHash(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PaymentReceiptCreate) SetAmount(v float64) *PaymentReceiptCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetToken sets the "token" field.
func (_c *PaymentReceiptCreate) SetToken(v string) *PaymentReceiptCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetChain sets the "chain" field.
func (_c *PaymentReceiptCreate) SetChain(v string) *PaymentReceiptCreate {
	_c.mutation.SetChain(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PaymentReceiptCreate) SetStatus(v paymentreceipt.Status) *PaymentReceiptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PaymentReceiptCreate) SetNillableStatus(v *paymentreceipt.Status) *PaymentReceiptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssetSignature sets the "asset_signature" field.
func (_c *PaymentReceiptCreate) SetAssetSignature(v string) *PaymentReceiptCreate {
	_c.mutation.SetAssetSignature(v)
	return _c
}

// SetNillableAssetSignature sets the "asset_signature" field if the given value is not nil.
func (_c *PaymentReceiptCreate) SetNillableAssetSignature(v *string) *PaymentReceiptCreate {
	if v != nil {
		_c.SetAssetSignature(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PaymentReceiptCreate) SetMetadata(v map[string]interface{}) *PaymentReceiptCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *PaymentReceiptCreate) SetCorrelationID(v string) *PaymentReceiptCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *PaymentReceiptCreate) SetNillableCorrelationID(v *string) *PaymentReceiptCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentReceiptCreate) SetCreatedAt(v time.Time) *PaymentReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentReceiptCreate) SetNillableCreatedAt(v *time.Time) *PaymentReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentReceiptCreate) SetID(v string) *PaymentReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PaymentReceiptMutation object of the builder.
func (_c *PaymentReceiptCreate) Mutation() *PaymentReceiptMutation {
	return _c.mutation
}

// Save creates the PaymentReceipt in the database.
func (_c *PaymentReceiptCreate) Save(ctx context.Context) (*PaymentReceipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentReceiptCreate) SaveX(ctx context.Context) *PaymentReceipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentReceiptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := paymentreceipt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paymentreceipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentReceiptCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "PaymentReceipt.agent_id"`)}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "PaymentReceipt.vendor"`)}
	}
	if _, ok := _c.mutation.TxHash(); !ok {
		return &ValidationError{Name: "tx_hash", err: errors.New(`ent: missing required field "PaymentReceipt.tx_hash"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PaymentReceipt.amount"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "PaymentReceipt.token"`)}
	}
	if _, ok := _c.mutation.Chain(); !ok {
		return &ValidationError{Name: "chain", err: errors.New(`ent: missing required field "PaymentReceipt.chain"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PaymentReceipt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := paymentreceipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentReceipt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaymentReceipt.created_at"`)}
	}
	return nil
}

func (_c *PaymentReceiptCreate) sqlSave(ctx context.Context) (*PaymentReceipt, error) {
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
			return nil, fmt.Errorf("unexpected PaymentReceipt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaymentReceiptCreate) createSpec() (*PaymentReceipt, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentReceipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentreceipt.Table, sqlgraph.NewFieldSpec(paymentreceipt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(paymentreceipt.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(paymentreceipt.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.TxHash(); ok {
		_spec.SetField(paymentreceipt.FieldTxHash, field.TypeString, value)
		_node.TxHash = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(paymentreceipt.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(paymentreceipt.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.Chain(); ok {
		_spec.SetField(paymentreceipt.FieldChain, field.TypeString, value)
		_node.Chain = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(paymentreceipt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssetSignature(); ok {
		_spec.SetField(paymentreceipt.FieldAssetSignature, field.TypeString, value)
		_node.AssetSignature = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(paymentreceipt.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(paymentreceipt.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paymentreceipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PaymentReceiptCreateBulk is the builder for creating many PaymentReceipt entities in bulk.
type PaymentReceiptCreateBulk struct {
	config
	err      error
	builders []*PaymentReceiptCreate
}

// Save creates the PaymentReceipt entities in the database.
func (_c *PaymentReceiptCreateBulk) Save(ctx context.Context) ([]*PaymentReceipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentReceipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentReceiptMutation)
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
func (_c *PaymentReceiptCreateBulk) SaveX(ctx context.Context) []*PaymentReceipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
