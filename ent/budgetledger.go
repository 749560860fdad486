// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/budgetledger"
)

// BudgetLedger is the model entity for the BudgetLedger schema.
type BudgetLedger struct {
	config `json:"-"`
	// ID of the ent.
	// Agent name; one ledger row per agent
	ID string `json:"id,omitempty"`
	// MonthlyLimit holds the value of the "monthly_limit" field.
	MonthlyLimit float64 `json:"monthly_limit,omitempty"`
	// MonthlySpend holds the value of the "monthly_spend" field.
	MonthlySpend float64 `json:"monthly_spend,omitempty"`
	// Calendar month, YYYY-MM
	Window string `json:"window,omitempty"`
	// Amounts at or above this emit an alert
	PerTransactionAlert float64 `json:"per_transaction_alert,omitempty"`
	// Amounts at or above this require manual review
	RequireManualAbove float64 `json:"require_manual_above,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BudgetLedger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budgetledger.FieldMonthlyLimit, budgetledger.FieldMonthlySpend, budgetledger.FieldPerTransactionAlert, budgetledger.FieldRequireManualAbove:
			values[i] = new(sql.NullFloat64)
		case budgetledger.FieldID, budgetledger.FieldWindow:
			values[i] = new(sql.NullString)
		case budgetledger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BudgetLedger fields.
func (_m *BudgetLedger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budgetledger.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case budgetledger.FieldMonthlyLimit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_limit", values[i])
			} else if value.Valid {
				_m.MonthlyLimit = value.Float64
			}
		case budgetledger.FieldMonthlySpend:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_spend", values[i])
			} else if value.Valid {
				_m.MonthlySpend = value.Float64
			}
		case budgetledger.FieldWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window", values[i])
			} else if value.Valid {
				_m.Window = value.String
			}
		case budgetledger.FieldPerTransactionAlert:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field per_transaction_alert", values[i])
			} else if value.Valid {
				_m.PerTransactionAlert = value.Float64
			}
		case budgetledger.FieldRequireManualAbove:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field require_manual_above", values[i])
			} else if value.Valid {
				_m.RequireManualAbove = value.Float64
			}
		case budgetledger.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BudgetLedger.
// This includes values selected through modifiers, order, etc.
func (_m *BudgetLedger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BudgetLedger.
// Note that you need to call BudgetLedger.Unwrap() before calling this method if this BudgetLedger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BudgetLedger) Update() *BudgetLedgerUpdateOne {
	return NewBudgetLedgerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BudgetLedger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BudgetLedger) Unwrap() *BudgetLedger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BudgetLedger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BudgetLedger) String() string {
	var builder strings.Builder
	builder.WriteString("BudgetLedger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("monthly_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyLimit))
	builder.WriteString(", ")
	builder.WriteString("monthly_spend=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlySpend))
	builder.WriteString(", ")
	builder.WriteString("window=")
	builder.WriteString(_m.Window)
	builder.WriteString(", ")
	builder.WriteString("per_transaction_alert=")
	builder.WriteString(fmt.Sprintf("%v", _m.PerTransactionAlert))
	builder.WriteString(", ")
	builder.WriteString("require_manual_above=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireManualAbove))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BudgetLedgers is a parsable slice of BudgetLedger.
type BudgetLedgers []*BudgetLedger
