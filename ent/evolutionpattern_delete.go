// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// EvolutionPatternDelete is the builder for deleting a EvolutionPattern entity.
type EvolutionPatternDelete struct {
	config
	hooks    []Hook
	mutation *EvolutionPatternMutation
}

// Where appends a list predicates to the EvolutionPatternDelete builder.
func (_d *EvolutionPatternDelete) Where(ps ...predicate.EvolutionPattern) *EvolutionPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EvolutionPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvolutionPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EvolutionPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(evolutionpattern.Table, sqlgraph.NewFieldSpec(evolutionpattern.FieldID, field.TypeString))
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

// EvolutionPatternDeleteOne is the builder for deleting a single EvolutionPattern entity.
type EvolutionPatternDeleteOne struct {
	_d *EvolutionPatternDelete
}

// Where appends a list predicates to the EvolutionPatternDelete builder.
func (_d *EvolutionPatternDeleteOne) Where(ps ...predicate.EvolutionPattern) *EvolutionPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EvolutionPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{evolutionpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvolutionPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
