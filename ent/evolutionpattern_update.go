// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// EvolutionPatternUpdate is the builder for updating EvolutionPattern entities.
type EvolutionPatternUpdate struct {
	config
	hooks    []Hook
	mutation *EvolutionPatternMutation
}

// Where appends a list predicates to the EvolutionPatternUpdate builder.
func (_u *EvolutionPatternUpdate) Where(ps ...predicate.EvolutionPattern) *EvolutionPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *EvolutionPatternUpdate) SetAgentType(v string) *EvolutionPatternUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableAgentType(v *string) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *EvolutionPatternUpdate) SetTaskType(v string) *EvolutionPatternUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableTaskType(v *string) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetCodeDiff sets the "code_diff" field.
func (_u *EvolutionPatternUpdate) SetCodeDiff(v string) *EvolutionPatternUpdate {
	_u.mutation.SetCodeDiff(v)
	return _u
}

// SetNillableCodeDiff sets the "code_diff" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableCodeDiff(v *string) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetCodeDiff(*v)
	}
	return _u
}

// ClearCodeDiff clears the value of the "code_diff" field.
func (_u *EvolutionPatternUpdate) ClearCodeDiff() *EvolutionPatternUpdate {
	_u.mutation.ClearCodeDiff()
	return _u
}

// SetStrategyDescription sets the "strategy_description" field.
func (_u *EvolutionPatternUpdate) SetStrategyDescription(v string) *EvolutionPatternUpdate {
	_u.mutation.SetStrategyDescription(v)
	return _u
}

// SetNillableStrategyDescription sets the "strategy_description" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableStrategyDescription(v *string) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetStrategyDescription(*v)
	}
	return _u
}

// SetBenchmarkScore sets the "benchmark_score" field.
func (_u *EvolutionPatternUpdate) SetBenchmarkScore(v float64) *EvolutionPatternUpdate {
	_u.mutation.ResetBenchmarkScore()
	_u.mutation.SetBenchmarkScore(v)
	return _u
}

// SetNillableBenchmarkScore sets the "benchmark_score" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableBenchmarkScore(v *float64) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetBenchmarkScore(*v)
	}
	return _u
}

// AddBenchmarkScore adds value to the "benchmark_score" field.
func (_u *EvolutionPatternUpdate) AddBenchmarkScore(v float64) *EvolutionPatternUpdate {
	_u.mutation.AddBenchmarkScore(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *EvolutionPatternUpdate) SetSuccessRate(v float64) *EvolutionPatternUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableSuccessRate(v *float64) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *EvolutionPatternUpdate) AddSuccessRate(v float64) *EvolutionPatternUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *EvolutionPatternUpdate) SetCapabilities(v []string) *EvolutionPatternUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *EvolutionPatternUpdate) AppendCapabilities(v []string) *EvolutionPatternUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *EvolutionPatternUpdate) ClearCapabilities() *EvolutionPatternUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *EvolutionPatternUpdate) SetSourceAgent(v string) *EvolutionPatternUpdate {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableSourceAgent(v *string) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (_u *EvolutionPatternUpdate) ClearSourceAgent() *EvolutionPatternUpdate {
	_u.mutation.ClearSourceAgent()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *EvolutionPatternUpdate) SetBusinessID(v string) *EvolutionPatternUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *EvolutionPatternUpdate) SetNillableBusinessID(v *string) *EvolutionPatternUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// ClearBusinessID clears the value of the "business_id" field.
func (_u *EvolutionPatternUpdate) ClearBusinessID() *EvolutionPatternUpdate {
	_u.mutation.ClearBusinessID()
	return _u
}

// Mutation returns the EvolutionPatternMutation object of the builder.
func (_u *EvolutionPatternUpdate) Mutation() *EvolutionPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvolutionPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvolutionPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvolutionPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvolutionPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvolutionPatternUpdate) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := evolutionpattern.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionPattern.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := evolutionpattern.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionPattern.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EvolutionPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evolutionpattern.Table, evolutionpattern.Columns, sqlgraph.NewFieldSpec(evolutionpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(evolutionpattern.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(evolutionpattern.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeDiff(); ok {
		_spec.SetField(evolutionpattern.FieldCodeDiff, field.TypeString, value)
	}
	if _u.mutation.CodeDiffCleared() {
		_spec.ClearField(evolutionpattern.FieldCodeDiff, field.TypeString)
	}
	if value, ok := _u.mutation.StrategyDescription(); ok {
		_spec.SetField(evolutionpattern.FieldStrategyDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.BenchmarkScore(); ok {
		_spec.SetField(evolutionpattern.FieldBenchmarkScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBenchmarkScore(); ok {
		_spec.AddField(evolutionpattern.FieldBenchmarkScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(evolutionpattern.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(evolutionpattern.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(evolutionpattern.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evolutionpattern.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(evolutionpattern.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(evolutionpattern.FieldSourceAgent, field.TypeString, value)
	}
	if _u.mutation.SourceAgentCleared() {
		_spec.ClearField(evolutionpattern.FieldSourceAgent, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(evolutionpattern.FieldBusinessID, field.TypeString, value)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(evolutionpattern.FieldBusinessID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evolutionpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvolutionPatternUpdateOne is the builder for updating a single EvolutionPattern entity.
type EvolutionPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvolutionPatternMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *EvolutionPatternUpdateOne) SetAgentType(v string) *EvolutionPatternUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableAgentType(v *string) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *EvolutionPatternUpdateOne) SetTaskType(v string) *EvolutionPatternUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableTaskType(v *string) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetCodeDiff sets the "code_diff" field.
func (_u *EvolutionPatternUpdateOne) SetCodeDiff(v string) *EvolutionPatternUpdateOne {
	_u.mutation.SetCodeDiff(v)
	return _u
}

// SetNillableCodeDiff sets the "code_diff" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableCodeDiff(v *string) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetCodeDiff(*v)
	}
	return _u
}

// ClearCodeDiff clears the value of the "code_diff" field.
func (_u *EvolutionPatternUpdateOne) ClearCodeDiff() *EvolutionPatternUpdateOne {
	_u.mutation.ClearCodeDiff()
	return _u
}

// SetStrategyDescription sets the "strategy_description" field.
func (_u *EvolutionPatternUpdateOne) SetStrategyDescription(v string) *EvolutionPatternUpdateOne {
	_u.mutation.SetStrategyDescription(v)
	return _u
}

// SetNillableStrategyDescription sets the "strategy_description" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableStrategyDescription(v *string) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetStrategyDescription(*v)
	}
	return _u
}

// SetBenchmarkScore sets the "benchmark_score" field.
func (_u *EvolutionPatternUpdateOne) SetBenchmarkScore(v float64) *EvolutionPatternUpdateOne {
	_u.mutation.ResetBenchmarkScore()
	_u.mutation.SetBenchmarkScore(v)
	return _u
}

// SetNillableBenchmarkScore sets the "benchmark_score" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableBenchmarkScore(v *float64) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetBenchmarkScore(*v)
	}
	return _u
}

// AddBenchmarkScore adds value to the "benchmark_score" field.
func (_u *EvolutionPatternUpdateOne) AddBenchmarkScore(v float64) *EvolutionPatternUpdateOne {
	_u.mutation.AddBenchmarkScore(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *EvolutionPatternUpdateOne) SetSuccessRate(v float64) *EvolutionPatternUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableSuccessRate(v *float64) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *EvolutionPatternUpdateOne) AddSuccessRate(v float64) *EvolutionPatternUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *EvolutionPatternUpdateOne) SetCapabilities(v []string) *EvolutionPatternUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *EvolutionPatternUpdateOne) AppendCapabilities(v []string) *EvolutionPatternUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *EvolutionPatternUpdateOne) ClearCapabilities() *EvolutionPatternUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *EvolutionPatternUpdateOne) SetSourceAgent(v string) *EvolutionPatternUpdateOne {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableSourceAgent(v *string) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (_u *EvolutionPatternUpdateOne) ClearSourceAgent() *EvolutionPatternUpdateOne {
	_u.mutation.ClearSourceAgent()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *EvolutionPatternUpdateOne) SetBusinessID(v string) *EvolutionPatternUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *EvolutionPatternUpdateOne) SetNillableBusinessID(v *string) *EvolutionPatternUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// ClearBusinessID clears the value of the "business_id" field.
func (_u *EvolutionPatternUpdateOne) ClearBusinessID() *EvolutionPatternUpdateOne {
	_u.mutation.ClearBusinessID()
	return _u
}

// Mutation returns the EvolutionPatternMutation object of the builder.
func (_u *EvolutionPatternUpdateOne) Mutation() *EvolutionPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvolutionPatternUpdate builder.
func (_u *EvolutionPatternUpdateOne) Where(ps ...predicate.EvolutionPattern) *EvolutionPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvolutionPatternUpdateOne) Select(field string, fields ...string) *EvolutionPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvolutionPattern entity.
func (_u *EvolutionPatternUpdateOne) Save(ctx context.Context) (*EvolutionPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvolutionPatternUpdateOne) SaveX(ctx context.Context) *EvolutionPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvolutionPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvolutionPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvolutionPatternUpdateOne) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := evolutionpattern.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionPattern.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := evolutionpattern.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionPattern.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EvolutionPatternUpdateOne) sqlSave(ctx context.Context) (_node *EvolutionPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evolutionpattern.Table, evolutionpattern.Columns, sqlgraph.NewFieldSpec(evolutionpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvolutionPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evolutionpattern.FieldID)
		for _, f := range fields {
			if !evolutionpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evolutionpattern.FieldID {
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
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(evolutionpattern.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(evolutionpattern.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeDiff(); ok {
		_spec.SetField(evolutionpattern.FieldCodeDiff, field.TypeString, value)
	}
	if _u.mutation.CodeDiffCleared() {
		_spec.ClearField(evolutionpattern.FieldCodeDiff, field.TypeString)
	}
	if value, ok := _u.mutation.StrategyDescription(); ok {
		_spec.SetField(evolutionpattern.FieldStrategyDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.BenchmarkScore(); ok {
		_spec.SetField(evolutionpattern.FieldBenchmarkScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBenchmarkScore(); ok {
		_spec.AddField(evolutionpattern.FieldBenchmarkScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(evolutionpattern.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(evolutionpattern.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(evolutionpattern.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evolutionpattern.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(evolutionpattern.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(evolutionpattern.FieldSourceAgent, field.TypeString, value)
	}
	if _u.mutation.SourceAgentCleared() {
		_spec.ClearField(evolutionpattern.FieldSourceAgent, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(evolutionpattern.FieldBusinessID, field.TypeString, value)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(evolutionpattern.FieldBusinessID, field.TypeString)
	}
	_node = &EvolutionPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evolutionpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
