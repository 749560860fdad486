package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvolutionAttempt holds the schema definition for the EvolutionAttempt entity.
// Every attempt, accepted or not, is persisted; an attempt is the smallest
// unit of reproducibility for an evolution run.
type EvolutionAttempt struct {
	ent.Schema
}

// Fields of the EvolutionAttempt.
func (EvolutionAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("agent_type").
			Immutable(),
		field.String("parent_version").
			Immutable(),
		field.Enum("improvement_type").
			Values("bug_fix", "optimization", "new_feature", "refactor", "error_handling").
			Immutable(),
		field.Text("diagnosis").
			Optional().
			Immutable(),
		field.Text("proposed_changes").
			Optional().
			Immutable(),
		field.JSON("metrics_before", map[string]float64{}).
			Optional().
			Immutable(),
		field.JSON("metrics_after", map[string]float64{}).
			Optional().
			Immutable(),
		field.Float("improvement_delta").
			Default(0).
			Immutable(),
		field.Float("rubric_reward").
			Default(0).
			Immutable(),
		field.Bool("accepted").
			Default(false).
			Immutable(),
		field.Int("generation").
			Immutable(),
		field.Text("sandbox_logs").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EvolutionAttempt.
func (EvolutionAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type", "generation"),
		index.Fields("agent_type", "accepted"),
	}
}
