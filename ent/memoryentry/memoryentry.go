// Code generated by ent, DO NOT EDIT.

package memoryentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryentry type in the database.
	Label = "memory_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldMemoryType holds the string denoting the memory_type field in the database.
	FieldMemoryType = "memory_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldHeatScore holds the string denoting the heat_score field in the database.
	FieldHeatScore = "heat_score"
	// FieldVisitCount holds the string denoting the visit_count field in the database.
	FieldVisitCount = "visit_count"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the memoryentry in the database.
	Table = "memory_entries"
)

// Columns holds all SQL columns for memoryentry fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldUserID,
	FieldTier,
	FieldMemoryType,
	FieldContent,
	FieldHeatScore,
	FieldVisitCount,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMemoryType holds the default value on creation for the "memory_type" field.
	DefaultMemoryType string
	// DefaultHeatScore holds the default value on creation for the "heat_score" field.
	DefaultHeatScore float64
	// DefaultVisitCount holds the default value on creation for the "visit_count" field.
	DefaultVisitCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// TierShort is the default value of the Tier enum.
const DefaultTier = TierShort

// Tier values.
const (
	TierShort      Tier = "short"
	TierMid        Tier = "mid"
	TierLong       Tier = "long"
	TierConsensus  Tier = "consensus"
	TierPersona    Tier = "persona"
	TierWhiteboard Tier = "whiteboard"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierShort, TierMid, TierLong, TierConsensus, TierPersona, TierWhiteboard:
		return nil
	default:
		return fmt.Errorf("memoryentry: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the MemoryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByMemoryType orders the results by the memory_type field.
func ByMemoryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByHeatScore orders the results by the heat_score field.
func ByHeatScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeatScore, opts...).ToFunc()
}

// ByVisitCount orders the results by the visit_count field.
func ByVisitCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
