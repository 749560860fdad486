// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// EvolutionAttemptUpdate is the builder for updating EvolutionAttempt entities.
type EvolutionAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *EvolutionAttemptMutation
}

// Where appends a list predicates to the EvolutionAttemptUpdate builder.
func (_u *EvolutionAttemptUpdate) Where(ps ...predicate.EvolutionAttempt) *EvolutionAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EvolutionAttemptMutation object of the builder.
func (_u *EvolutionAttemptUpdate) Mutation() *EvolutionAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvolutionAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvolutionAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvolutionAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvolutionAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvolutionAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evolutionattempt.Table, evolutionattempt.Columns, sqlgraph.NewFieldSpec(evolutionattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(evolutionattempt.FieldDiagnosis, field.TypeString)
	}
	if _u.mutation.ProposedChangesCleared() {
		_spec.ClearField(evolutionattempt.FieldProposedChanges, field.TypeString)
	}
	if _u.mutation.MetricsBeforeCleared() {
		_spec.ClearField(evolutionattempt.FieldMetricsBefore, field.TypeJSON)
	}
	if _u.mutation.MetricsAfterCleared() {
		_spec.ClearField(evolutionattempt.FieldMetricsAfter, field.TypeJSON)
	}
	if _u.mutation.SandboxLogsCleared() {
		_spec.ClearField(evolutionattempt.FieldSandboxLogs, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evolutionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvolutionAttemptUpdateOne is the builder for updating a single EvolutionAttempt entity.
type EvolutionAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvolutionAttemptMutation
}

// Mutation returns the EvolutionAttemptMutation object of the builder.
func (_u *EvolutionAttemptUpdateOne) Mutation() *EvolutionAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvolutionAttemptUpdate builder.
func (_u *EvolutionAttemptUpdateOne) Where(ps ...predicate.EvolutionAttempt) *EvolutionAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvolutionAttemptUpdateOne) Select(field string, fields ...string) *EvolutionAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvolutionAttempt entity.
func (_u *EvolutionAttemptUpdateOne) Save(ctx context.Context) (*EvolutionAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvolutionAttemptUpdateOne) SaveX(ctx context.Context) *EvolutionAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvolutionAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvolutionAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvolutionAttemptUpdateOne) sqlSave(ctx context.Context) (_node *EvolutionAttempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(evolutionattempt.Table, evolutionattempt.Columns, sqlgraph.NewFieldSpec(evolutionattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvolutionAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evolutionattempt.FieldID)
		for _, f := range fields {
			if !evolutionattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evolutionattempt.FieldID {
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
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(evolutionattempt.FieldDiagnosis, field.TypeString)
	}
	if _u.mutation.ProposedChangesCleared() {
		_spec.ClearField(evolutionattempt.FieldProposedChanges, field.TypeString)
	}
	if _u.mutation.MetricsBeforeCleared() {
		_spec.ClearField(evolutionattempt.FieldMetricsBefore, field.TypeJSON)
	}
	if _u.mutation.MetricsAfterCleared() {
		_spec.ClearField(evolutionattempt.FieldMetricsAfter, field.TypeJSON)
	}
	if _u.mutation.SandboxLogsCleared() {
		_spec.ClearField(evolutionattempt.FieldSandboxLogs, field.TypeString)
	}
	_node = &EvolutionAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evolutionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
