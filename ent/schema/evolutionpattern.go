package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvolutionPattern holds the schema definition for the EvolutionPattern entity.
// A pattern is a proven strategy extracted from an accepted evolution attempt,
// used to seed future rounds and shared across agents through the consensus
// namespace when its score clears the consensus threshold.
type EvolutionPattern struct {
	ent.Schema
}

// Fields of the EvolutionPattern.
func (EvolutionPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.String("agent_type").
			NotEmpty(),
		field.String("task_type").
			NotEmpty(),
		field.Text("code_diff").
			Optional(),
		field.Text("strategy_description"),
		field.Float("benchmark_score").
			Comment("In [0,1]"),
		field.Float("success_rate").
			Comment("In [0,1]"),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.String("source_agent").
			Optional(),
		field.String("business_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EvolutionPattern.
func (EvolutionPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type", "task_type"),
		index.Fields("task_type", "success_rate"),
	}
}
