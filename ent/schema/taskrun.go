package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskRun holds the schema definition for the TaskRun entity.
// A TaskRun is a queued unit of agent work: submitted via the API, claimed by
// a worker, executed by the agent runtime, and finalized with a result or an
// error envelope.
type TaskRun struct {
	ent.Schema
}

// Fields of the TaskRun.
func (TaskRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("agent_name").
			Comment("Agent that executes this run"),
		field.String("user_id").
			Default("default").
			Comment("Memory namespace owner"),
		field.Text("description"),
		field.String("task_type").
			Optional(),
		field.Float("priority").
			Default(0.5).
			Comment("In [0,1]"),
		field.JSON("required_tools", []string{}).
			Optional(),
		field.Int("num_steps").
			Default(0),
		field.Int("batch_size").
			Default(1),
		field.Enum("status").
			Values("pending", "in_progress", "cancelling", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.String("model_tier").
			Optional().
			Comment("Routing decision snapshot"),
		field.String("difficulty").
			Optional(),
		field.Float("estimated_cost").
			Optional(),
		field.Int("attempts").
			Default(0).
			Comment("Self-correction attempts consumed"),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("correlation_id").
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Indexes of the TaskRun.
func (TaskRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_name"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("correlation_id"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
