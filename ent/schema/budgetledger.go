package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// BudgetLedger holds the schema definition for the BudgetLedger entity.
// One row per agent; the spend governor is the single logical writer.
type BudgetLedger struct {
	ent.Schema
}

// Fields of the BudgetLedger.
func (BudgetLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable().
			Comment("Agent name; one ledger row per agent"),
		field.Float("monthly_limit"),
		field.Float("monthly_spend").
			Default(0),
		field.String("window").
			Comment("Calendar month, YYYY-MM"),
		field.Float("per_transaction_alert").
			Default(100).
			Comment("Amounts at or above this emit an alert"),
		field.Float("require_manual_above").
			Default(500).
			Comment("Amounts at or above this require manual review"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
