// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// BudgetLedger is the predicate function for budgetledger builders.
type BudgetLedger func(*sql.Selector)

// EvolutionAttempt is the predicate function for evolutionattempt builders.
type EvolutionAttempt func(*sql.Selector)

// EvolutionPattern is the predicate function for evolutionpattern builders.
type EvolutionPattern func(*sql.Selector)

// MemoryEntry is the predicate function for memoryentry builders.
type MemoryEntry func(*sql.Selector)

// PaymentReceipt is the predicate function for paymentreceipt builders.
type PaymentReceipt func(*sql.Selector)

// TaskRun is the predicate function for taskrun builders.
type TaskRun func(*sql.Selector)

// Trajectory is the predicate function for trajectory builders.
type Trajectory func(*sql.Selector)
