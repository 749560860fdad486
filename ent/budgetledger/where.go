// Code generated by ent, DO NOT EDIT.

package budgetledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldContainsFold(FieldID, id))
}

// MonthlyLimit applies equality check predicate on the "monthly_limit" field. It's identical to MonthlyLimitEQ.
func MonthlyLimit(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldMonthlyLimit, v))
}

// MonthlySpend applies equality check predicate on the "monthly_spend" field. It's identical to MonthlySpendEQ.
func MonthlySpend(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldMonthlySpend, v))
}

// Window applies equality check predicate on the "window" field. It's identical to WindowEQ.
func Window(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldWindow, v))
}

// PerTransactionAlert applies equality check predicate on the "per_transaction_alert" field. It's identical to PerTransactionAlertEQ.
func PerTransactionAlert(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldPerTransactionAlert, v))
}

// RequireManualAbove applies equality check predicate on the "require_manual_above" field. It's identical to RequireManualAboveEQ.
func RequireManualAbove(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldRequireManualAbove, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// MonthlyLimitEQ applies the EQ predicate on the "monthly_limit" field.
func MonthlyLimitEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldMonthlyLimit, v))
}

// MonthlyLimitNEQ applies the NEQ predicate on the "monthly_limit" field.
func MonthlyLimitNEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNEQ(FieldMonthlyLimit, v))
}

// MonthlyLimitIn applies the In predicate on the "monthly_limit" field.
func MonthlyLimitIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldIn(FieldMonthlyLimit, vs...))
}

// MonthlyLimitNotIn applies the NotIn predicate on the "monthly_limit" field.
func MonthlyLimitNotIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNotIn(FieldMonthlyLimit, vs...))
}

// MonthlyLimitGT applies the GT predicate on the "monthly_limit" field.
func MonthlyLimitGT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGT(FieldMonthlyLimit, v))
}

// MonthlyLimitGTE applies the GTE predicate on the "monthly_limit" field.
func MonthlyLimitGTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGTE(FieldMonthlyLimit, v))
}

// MonthlyLimitLT applies the LT predicate on the "monthly_limit" field.
func MonthlyLimitLT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLT(FieldMonthlyLimit, v))
}

// MonthlyLimitLTE applies the LTE predicate on the "monthly_limit" field.
func MonthlyLimitLTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLTE(FieldMonthlyLimit, v))
}

// MonthlySpendEQ applies the EQ predicate on the "monthly_spend" field.
func MonthlySpendEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldMonthlySpend, v))
}

// MonthlySpendNEQ applies the NEQ predicate on the "monthly_spend" field.
func MonthlySpendNEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNEQ(FieldMonthlySpend, v))
}

// MonthlySpendIn applies the In predicate on the "monthly_spend" field.
func MonthlySpendIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldIn(FieldMonthlySpend, vs...))
}

// MonthlySpendNotIn applies the NotIn predicate on the "monthly_spend" field.
func MonthlySpendNotIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNotIn(FieldMonthlySpend, vs...))
}

// MonthlySpendGT applies the GT predicate on the "monthly_spend" field.
func MonthlySpendGT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGT(FieldMonthlySpend, v))
}

// MonthlySpendGTE applies the GTE predicate on the "monthly_spend" field.
func MonthlySpendGTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGTE(FieldMonthlySpend, v))
}

// MonthlySpendLT applies the LT predicate on the "monthly_spend" field.
func MonthlySpendLT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLT(FieldMonthlySpend, v))
}

// MonthlySpendLTE applies the LTE predicate on the "monthly_spend" field.
func MonthlySpendLTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLTE(FieldMonthlySpend, v))
}

// WindowEQ applies the EQ predicate on the "window" field.
func WindowEQ(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldWindow, v))
}

// WindowNEQ applies the NEQ predicate on the "window" field.
func WindowNEQ(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNEQ(FieldWindow, v))
}

// WindowIn applies the In predicate on the "window" field.
func WindowIn(vs ...string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldIn(FieldWindow, vs...))
}

// WindowNotIn applies the NotIn predicate on the "window" field.
func WindowNotIn(vs ...string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNotIn(FieldWindow, vs...))
}

// WindowGT applies the GT predicate on the "window" field.
func WindowGT(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGT(FieldWindow, v))
}

// WindowGTE applies the GTE predicate on the "window" field.
func WindowGTE(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGTE(FieldWindow, v))
}

// WindowLT applies the LT predicate on the "window" field.
func WindowLT(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLT(FieldWindow, v))
}

// WindowLTE applies the LTE predicate on the "window" field.
func WindowLTE(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLTE(FieldWindow, v))
}

// WindowContains applies the Contains predicate on the "window" field.
func WindowContains(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldContains(FieldWindow, v))
}

// WindowHasPrefix applies the HasPrefix predicate on the "window" field.
func WindowHasPrefix(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldHasPrefix(FieldWindow, v))
}

// WindowHasSuffix applies the HasSuffix predicate on the "window" field.
func WindowHasSuffix(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldHasSuffix(FieldWindow, v))
}

// WindowEqualFold applies the EqualFold predicate on the "window" field.
func WindowEqualFold(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEqualFold(FieldWindow, v))
}

// WindowContainsFold applies the ContainsFold predicate on the "window" field.
func WindowContainsFold(v string) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldContainsFold(FieldWindow, v))
}

// PerTransactionAlertEQ applies the EQ predicate on the "per_transaction_alert" field.
func PerTransactionAlertEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldPerTransactionAlert, v))
}

// PerTransactionAlertNEQ applies the NEQ predicate on the "per_transaction_alert" field.
func PerTransactionAlertNEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNEQ(FieldPerTransactionAlert, v))
}

// PerTransactionAlertIn applies the In predicate on the "per_transaction_alert" field.
func PerTransactionAlertIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldIn(FieldPerTransactionAlert, vs...))
}

// PerTransactionAlertNotIn applies the NotIn predicate on the "per_transaction_alert" field.
func PerTransactionAlertNotIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNotIn(FieldPerTransactionAlert, vs...))
}

// PerTransactionAlertGT applies the GT predicate on the "per_transaction_alert" field.
func PerTransactionAlertGT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGT(FieldPerTransactionAlert, v))
}

// PerTransactionAlertGTE applies the GTE predicate on the "per_transaction_alert" field.
func PerTransactionAlertGTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGTE(FieldPerTransactionAlert, v))
}

// PerTransactionAlertLT applies the LT predicate on the "per_transaction_alert" field.
func PerTransactionAlertLT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLT(FieldPerTransactionAlert, v))
}

// PerTransactionAlertLTE applies the LTE predicate on the "per_transaction_alert" field.
func PerTransactionAlertLTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLTE(FieldPerTransactionAlert, v))
}

// RequireManualAboveEQ applies the EQ predicate on the "require_manual_above" field.
func RequireManualAboveEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldRequireManualAbove, v))
}

// RequireManualAboveNEQ applies the NEQ predicate on the "require_manual_above" field.
func RequireManualAboveNEQ(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNEQ(FieldRequireManualAbove, v))
}

// RequireManualAboveIn applies the In predicate on the "require_manual_above" field.
func RequireManualAboveIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldIn(FieldRequireManualAbove, vs...))
}

// RequireManualAboveNotIn applies the NotIn predicate on the "require_manual_above" field.
func RequireManualAboveNotIn(vs ...float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNotIn(FieldRequireManualAbove, vs...))
}

// RequireManualAboveGT applies the GT predicate on the "require_manual_above" field.
func RequireManualAboveGT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGT(FieldRequireManualAbove, v))
}

// RequireManualAboveGTE applies the GTE predicate on the "require_manual_above" field.
func RequireManualAboveGTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGTE(FieldRequireManualAbove, v))
}

// RequireManualAboveLT applies the LT predicate on the "require_manual_above" field.
func RequireManualAboveLT(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLT(FieldRequireManualAbove, v))
}

// RequireManualAboveLTE applies the LTE predicate on the "require_manual_above" field.
func RequireManualAboveLTE(v float64) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLTE(FieldRequireManualAbove, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BudgetLedger) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BudgetLedger) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BudgetLedger) predicate.BudgetLedger {
	return predicate.BudgetLedger(sql.NotPredicates(p))
}
