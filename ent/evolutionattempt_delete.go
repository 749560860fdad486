// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// EvolutionAttemptDelete is the builder for deleting a EvolutionAttempt entity.
type EvolutionAttemptDelete struct {
	config
	hooks    []Hook
	mutation *EvolutionAttemptMutation
}

// Where appends a list predicates to the EvolutionAttemptDelete builder.
func (_d *EvolutionAttemptDelete) Where(ps ...predicate.EvolutionAttempt) *EvolutionAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EvolutionAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvolutionAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EvolutionAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(evolutionattempt.Table, sqlgraph.NewFieldSpec(evolutionattempt.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EvolutionAttemptDeleteOne is the builder for deleting a single EvolutionAttempt entity.
type EvolutionAttemptDeleteOne struct {
	_d *EvolutionAttemptDelete
}

// Where appends a list predicates to the EvolutionAttemptDelete builder.
func (_d *EvolutionAttemptDeleteOne) Where(ps ...predicate.EvolutionAttempt) *EvolutionAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EvolutionAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{evolutionattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvolutionAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
