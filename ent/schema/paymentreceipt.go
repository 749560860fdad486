package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PaymentReceipt holds the schema definition for the PaymentReceipt entity.
// One receipt per external vendor call recorded through the micro-payment
// ledger. Cacheable creative assets are looked up by (vendor, asset_signature)
// and reused within the configured TTL instead of charging again.
type PaymentReceipt struct {
	ent.Schema
}

// Fields of the PaymentReceipt.
func (PaymentReceipt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("receipt_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("vendor").
			Immutable(),
		field.String("tx_hash").
			Immutable(),
		field.Float("amount").
			Immutable(),
		field.String("token").
			Immutable().
			Comment("Payment token symbol (e.g. USDC)"),
		field.String("chain").
			Immutable().
			Comment("Settlement chain (e.g. base)"),
		field.Enum("status").
			Values("paid", "reused", "failed").
			Default("paid"),
		field.String("asset_signature").
			Optional().
			Immutable().
			Comment("Content signature for cacheable creative assets"),
		field.JSON("metadata", map[string]interface{}{}).
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

// Indexes of the PaymentReceipt.
func (PaymentReceipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "created_at"),
		index.Fields("vendor", "asset_signature"),
	}
}
