package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity.
// Every approved spend appends exactly one signed entry. Rows are immutable;
// the signature is HMAC-SHA256 over the canonical JSON form minus the
// signature field itself.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("service").
			Immutable(),
		field.Float("amount").
			Immutable(),
		field.String("status").
			Immutable().
			Comment("auto_approved, manual_review, approved, denied"),
		field.String("window").
			Immutable().
			Comment("Budget window, YYYY-MM"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Redacted before storage; never holds clear-text credentials"),
		field.String("signature").
			Immutable(),
		field.String("correlation_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "window"),
		index.Fields("agent_id", "created_at"),
	}
}
