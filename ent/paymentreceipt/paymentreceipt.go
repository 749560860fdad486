// Code generated by ent, DO NOT EDIT.

package paymentreceipt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the paymentreceipt type in the database.
	Label = "payment_receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "receipt_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldTxHash holds the string denoting the tx_hash field in the database.
	FieldTxHash = "tx_hash"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldChain holds the string denoting the chain field in the database.
	FieldChain = "chain"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssetSignature holds the string denoting the asset_signature field in the database.
	FieldAssetSignature = "asset_signature"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the paymentreceipt in the database.
	Table = "payment_receipts"
)

// Columns holds all SQL columns for paymentreceipt fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldVendor,
	FieldTxHash,
	FieldAmount,
	FieldToken,
	FieldChain,
	FieldStatus,
	FieldAssetSignature,
	FieldMetadata,
	FieldCorrelationID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPaid is the default value of the Status enum.
const DefaultStatus = StatusPaid

// Status values.
const (
	StatusPaid   Status = "paid"
	StatusReused Status = "reused"
	StatusFailed Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPaid, StatusReused, StatusFailed:
		return nil
	default:
		return fmt.Errorf("paymentreceipt: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PaymentReceipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByTxHash orders the results by the tx_hash field.
func ByTxHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTxHash, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByChain orders the results by the chain field.
func ByChain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChain, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssetSignature orders the results by the asset_signature field.
func ByAssetSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssetSignature, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
