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
	"github.com/agentfoundry/maestro/ent/memoryentry"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// MemoryEntryUpdate is the builder for updating MemoryEntry entities.
type MemoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryEntryMutation
}

// Where appends a list predicates to the MemoryEntryUpdate builder.
func (_u *MemoryEntryUpdate) Where(ps ...predicate.MemoryEntry) *MemoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MemoryEntryUpdate) SetAgentID(v string) *MemoryEntryUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableAgentID(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MemoryEntryUpdate) SetUserID(v string) *MemoryEntryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableUserID(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *MemoryEntryUpdate) SetTier(v memoryentry.Tier) *MemoryEntryUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableTier(v *memoryentry.Tier) *MemoryEntryUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetMemoryType sets the "memory_type" field.
func (_u *MemoryEntryUpdate) SetMemoryType(v string) *MemoryEntryUpdate {
	_u.mutation.SetMemoryType(v)
	return _u
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableMemoryType(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetMemoryType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryEntryUpdate) SetContent(v string) *MemoryEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableContent(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetHeatScore sets the "heat_score" field.
func (_u *MemoryEntryUpdate) SetHeatScore(v float64) *MemoryEntryUpdate {
	_u.mutation.ResetHeatScore()
	_u.mutation.SetHeatScore(v)
	return _u
}

// SetNillableHeatScore sets the "heat_score" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableHeatScore(v *float64) *MemoryEntryUpdate {
	if v != nil {
		_u.SetHeatScore(*v)
	}
	return _u
}

// AddHeatScore adds value to the "heat_score" field.
func (_u *MemoryEntryUpdate) AddHeatScore(v float64) *MemoryEntryUpdate {
	_u.mutation.AddHeatScore(v)
	return _u
}

// SetVisitCount sets the "visit_count" field.
func (_u *MemoryEntryUpdate) SetVisitCount(v int) *MemoryEntryUpdate {
	_u.mutation.ResetVisitCount()
	_u.mutation.SetVisitCount(v)
	return _u
}

// SetNillableVisitCount sets the "visit_count" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableVisitCount(v *int) *MemoryEntryUpdate {
	if v != nil {
		_u.SetVisitCount(*v)
	}
	return _u
}

// AddVisitCount adds value to the "visit_count" field.
func (_u *MemoryEntryUpdate) AddVisitCount(v int) *MemoryEntryUpdate {
	_u.mutation.AddVisitCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryEntryUpdate) SetMetadata(v map[string]interface{}) *MemoryEntryUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryEntryUpdate) ClearMetadata() *MemoryEntryUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryEntryUpdate) SetUpdatedAt(v time.Time) *MemoryEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MemoryEntryUpdate) SetExpiresAt(v time.Time) *MemoryEntryUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableExpiresAt(v *time.Time) *MemoryEntryUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MemoryEntryUpdate) ClearExpiresAt() *MemoryEntryUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_u *MemoryEntryUpdate) Mutation() *MemoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memoryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEntryUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := memoryentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryentry.Table, memoryentry.Columns, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(memoryentry.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(memoryentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(memoryentry.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MemoryType(); ok {
		_spec.SetField(memoryentry.FieldMemoryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeatScore(); ok {
		_spec.SetField(memoryentry.FieldHeatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatScore(); ok {
		_spec.AddField(memoryentry.FieldHeatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VisitCount(); ok {
		_spec.SetField(memoryentry.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitCount(); ok {
		_spec.AddField(memoryentry.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memoryentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memoryentry.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(memoryentry.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(memoryentry.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryEntryUpdateOne is the builder for updating a single MemoryEntry entity.
type MemoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryEntryMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *MemoryEntryUpdateOne) SetAgentID(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableAgentID(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MemoryEntryUpdateOne) SetUserID(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableUserID(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *MemoryEntryUpdateOne) SetTier(v memoryentry.Tier) *MemoryEntryUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableTier(v *memoryentry.Tier) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetMemoryType sets the "memory_type" field.
func (_u *MemoryEntryUpdateOne) SetMemoryType(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetMemoryType(v)
	return _u
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableMemoryType(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetMemoryType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryEntryUpdateOne) SetContent(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableContent(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetHeatScore sets the "heat_score" field.
func (_u *MemoryEntryUpdateOne) SetHeatScore(v float64) *MemoryEntryUpdateOne {
	_u.mutation.ResetHeatScore()
	_u.mutation.SetHeatScore(v)
	return _u
}

// SetNillableHeatScore sets the "heat_score" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableHeatScore(v *float64) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetHeatScore(*v)
	}
	return _u
}

// AddHeatScore adds value to the "heat_score" field.
func (_u *MemoryEntryUpdateOne) AddHeatScore(v float64) *MemoryEntryUpdateOne {
	_u.mutation.AddHeatScore(v)
	return _u
}

// SetVisitCount sets the "visit_count" field.
func (_u *MemoryEntryUpdateOne) SetVisitCount(v int) *MemoryEntryUpdateOne {
	_u.mutation.ResetVisitCount()
	_u.mutation.SetVisitCount(v)
	return _u
}

// SetNillableVisitCount sets the "visit_count" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableVisitCount(v *int) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetVisitCount(*v)
	}
	return _u
}

// AddVisitCount adds value to the "visit_count" field.
func (_u *MemoryEntryUpdateOne) AddVisitCount(v int) *MemoryEntryUpdateOne {
	_u.mutation.AddVisitCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryEntryUpdateOne) SetMetadata(v map[string]interface{}) *MemoryEntryUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryEntryUpdateOne) ClearMetadata() *MemoryEntryUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryEntryUpdateOne) SetUpdatedAt(v time.Time) *MemoryEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MemoryEntryUpdateOne) SetExpiresAt(v time.Time) *MemoryEntryUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableExpiresAt(v *time.Time) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MemoryEntryUpdateOne) ClearExpiresAt() *MemoryEntryUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_u *MemoryEntryUpdateOne) Mutation() *MemoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryEntryUpdate builder.
func (_u *MemoryEntryUpdateOne) Where(ps ...predicate.MemoryEntry) *MemoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryEntryUpdateOne) Select(field string, fields ...string) *MemoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryEntry entity.
func (_u *MemoryEntryUpdateOne) Save(ctx context.Context) (*MemoryEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEntryUpdateOne) SaveX(ctx context.Context) *MemoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memoryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := memoryentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *MemoryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryentry.Table, memoryentry.Columns, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryentry.FieldID)
		for _, f := range fields {
			if !memoryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryentry.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(memoryentry.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(memoryentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(memoryentry.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MemoryType(); ok {
		_spec.SetField(memoryentry.FieldMemoryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeatScore(); ok {
		_spec.SetField(memoryentry.FieldHeatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatScore(); ok {
		_spec.AddField(memoryentry.FieldHeatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VisitCount(); ok {
		_spec.SetField(memoryentry.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitCount(); ok {
		_spec.AddField(memoryentry.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memoryentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memoryentry.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(memoryentry.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(memoryentry.FieldExpiresAt, field.TypeTime)
	}
	_node = &MemoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
