package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryEntry holds the schema definition for the MemoryEntry entity.
// Entries live in exactly one tier at a time; tier transitions are performed
// by the memory substrate, never by callers.
type MemoryEntry struct {
	ent.Schema
}

// Fields of the MemoryEntry.
func (MemoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Comment("Owning agent namespace"),
		field.String("user_id").
			Comment("Owning user namespace"),
		field.Enum("tier").
			Values("short", "mid", "long", "consensus", "persona", "whiteboard").
			Default("short"),
		field.String("memory_type").
			Default("conversation").
			Comment("Entry classification (conversation, knowledge, strategy, ...)"),
		field.Text("content"),
		field.Float("heat_score").
			Default(0).
			Comment("Non-negative; incremented on retrieval, drives mid->long promotion"),
		field.Int("visit_count").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("short: created_at+24h, mid: created_at+7d, long: null"),
	}
}

// Indexes of the MemoryEntry.
func (MemoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "user_id", "tier"),
		index.Fields("agent_id", "user_id", "tier", "heat_score"),
		index.Fields("tier", "created_at"),

		// Partial index for TTL sweeps
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("expires_at IS NOT NULL")),
	}
}
