package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trajectory holds the schema definition for the Trajectory entity.
// Trajectories are append-only: rows are never updated after creation.
// Amendments are recorded as additional rows.
type Trajectory struct {
	ent.Schema
}

// Fields of the Trajectory.
func (Trajectory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trajectory_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Text("task_description").
			Immutable(),
		field.String("task_type").
			Optional().
			Immutable().
			Comment("Anti-pattern index key"),
		field.Text("initial_state").
			Optional().
			Immutable(),
		field.JSON("steps", []map[string]interface{}{}).
			Immutable().
			Comment("Ordered ActionStep records (timestamp, tool_name, tool_args, tool_result, agent_reasoning)"),
		field.Enum("final_outcome").
			Values("success", "failure", "partial").
			Immutable(),
		field.Float("reward").
			Default(0).
			Immutable().
			Comment("In [0,1]"),
		field.Int64("duration_ms").
			Default(0).
			Immutable(),
		field.Text("failure_rationale").
			Optional().
			Immutable(),
		field.String("error_category").
			Optional().
			Immutable(),
		field.Text("fix_applied").
			Optional().
			Immutable(),
		field.String("correlation_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Trajectory.
func (Trajectory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("final_outcome", "created_at"),
		index.Fields("task_type", "final_outcome"),
		index.Fields("correlation_id"),
	}
}
