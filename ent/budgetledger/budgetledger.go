// Code generated by ent, DO NOT EDIT.

package budgetledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the budgetledger type in the database.
	Label = "budget_ledger"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldMonthlyLimit holds the string denoting the monthly_limit field in the database.
	FieldMonthlyLimit = "monthly_limit"
	// FieldMonthlySpend holds the string denoting the monthly_spend field in the database.
	FieldMonthlySpend = "monthly_spend"
	// FieldWindow holds the string denoting the window field in the database.
	FieldWindow = "window"
	// FieldPerTransactionAlert holds the string denoting the per_transaction_alert field in the database.
	FieldPerTransactionAlert = "per_transaction_alert"
	// FieldRequireManualAbove holds the string denoting the require_manual_above field in the database.
	FieldRequireManualAbove = "require_manual_above"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the budgetledger in the database.
	Table = "budget_ledgers"
)

// Columns holds all SQL columns for budgetledger fields.
var Columns = []string{
	FieldID,
	FieldMonthlyLimit,
	FieldMonthlySpend,
	FieldWindow,
	FieldPerTransactionAlert,
	FieldRequireManualAbove,
	FieldUpdatedAt,
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
	// DefaultMonthlySpend holds the default value on creation for the "monthly_spend" field.
	DefaultMonthlySpend float64
	// DefaultPerTransactionAlert holds the default value on creation for the "per_transaction_alert" field.
	DefaultPerTransactionAlert float64
	// DefaultRequireManualAbove holds the default value on creation for the "require_manual_above" field.
	DefaultRequireManualAbove float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BudgetLedger queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMonthlyLimit orders the results by the monthly_limit field.
func ByMonthlyLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyLimit, opts...).ToFunc()
}

// ByMonthlySpend orders the results by the monthly_spend field.
func ByMonthlySpend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlySpend, opts...).ToFunc()
}

// ByWindow orders the results by the window field.
func ByWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindow, opts...).ToFunc()
}

// ByPerTransactionAlert orders the results by the per_transaction_alert field.
func ByPerTransactionAlert(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerTransactionAlert, opts...).ToFunc()
}

// ByRequireManualAbove orders the results by the require_manual_above field.
func ByRequireManualAbove(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireManualAbove, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
