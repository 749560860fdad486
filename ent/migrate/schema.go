// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "service", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeString},
		{Name: "window", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "signature", Type: field.TypeString},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_agent_id_window",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1], AuditEntriesColumns[5]},
			},
			{
				Name:    "auditentry_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1], AuditEntriesColumns[9]},
			},
		},
	}
	// BudgetLedgersColumns holds the columns for the "budget_ledgers" table.
	BudgetLedgersColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "monthly_limit", Type: field.TypeFloat64},
		{Name: "monthly_spend", Type: field.TypeFloat64, Default: 0},
		{Name: "window", Type: field.TypeString},
		{Name: "per_transaction_alert", Type: field.TypeFloat64, Default: 100},
		{Name: "require_manual_above", Type: field.TypeFloat64, Default: 500},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BudgetLedgersTable holds the schema information for the "budget_ledgers" table.
	BudgetLedgersTable = &schema.Table{
		Name:       "budget_ledgers",
		Columns:    BudgetLedgersColumns,
		PrimaryKey: []*schema.Column{BudgetLedgersColumns[0]},
	}
	// EvolutionAttemptsColumns holds the columns for the "evolution_attempts" table.
	EvolutionAttemptsColumns = []*schema.Column{
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "parent_version", Type: field.TypeString},
		{Name: "improvement_type", Type: field.TypeEnum, Enums: []string{"bug_fix", "optimization", "new_feature", "refactor", "error_handling"}},
		{Name: "diagnosis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "proposed_changes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metrics_before", Type: field.TypeJSON, Nullable: true},
		{Name: "metrics_after", Type: field.TypeJSON, Nullable: true},
		{Name: "improvement_delta", Type: field.TypeFloat64, Default: 0},
		{Name: "rubric_reward", Type: field.TypeFloat64, Default: 0},
		{Name: "accepted", Type: field.TypeBool, Default: false},
		{Name: "generation", Type: field.TypeInt},
		{Name: "sandbox_logs", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EvolutionAttemptsTable holds the schema information for the "evolution_attempts" table.
	EvolutionAttemptsTable = &schema.Table{
		Name:       "evolution_attempts",
		Columns:    EvolutionAttemptsColumns,
		PrimaryKey: []*schema.Column{EvolutionAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evolutionattempt_agent_type_generation",
				Unique:  false,
				Columns: []*schema.Column{EvolutionAttemptsColumns[1], EvolutionAttemptsColumns[11]},
			},
			{
				Name:    "evolutionattempt_agent_type_accepted",
				Unique:  false,
				Columns: []*schema.Column{EvolutionAttemptsColumns[1], EvolutionAttemptsColumns[10]},
			},
		},
	}
	// EvolutionPatternsColumns holds the columns for the "evolution_patterns" table.
	EvolutionPatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString},
		{Name: "code_diff", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "strategy_description", Type: field.TypeString, Size: 2147483647},
		{Name: "benchmark_score", Type: field.TypeFloat64},
		{Name: "success_rate", Type: field.TypeFloat64},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "source_agent", Type: field.TypeString, Nullable: true},
		{Name: "business_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EvolutionPatternsTable holds the schema information for the "evolution_patterns" table.
	EvolutionPatternsTable = &schema.Table{
		Name:       "evolution_patterns",
		Columns:    EvolutionPatternsColumns,
		PrimaryKey: []*schema.Column{EvolutionPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evolutionpattern_agent_type_task_type",
				Unique:  false,
				Columns: []*schema.Column{EvolutionPatternsColumns[1], EvolutionPatternsColumns[2]},
			},
			{
				Name:    "evolutionpattern_task_type_success_rate",
				Unique:  false,
				Columns: []*schema.Column{EvolutionPatternsColumns[2], EvolutionPatternsColumns[6]},
			},
		},
	}
	// MemoryEntriesColumns holds the columns for the "memory_entries" table.
	MemoryEntriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"short", "mid", "long", "consensus", "persona", "whiteboard"}, Default: "short"},
		{Name: "memory_type", Type: field.TypeString, Default: "conversation"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "heat_score", Type: field.TypeFloat64, Default: 0},
		{Name: "visit_count", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// MemoryEntriesTable holds the schema information for the "memory_entries" table.
	MemoryEntriesTable = &schema.Table{
		Name:       "memory_entries",
		Columns:    MemoryEntriesColumns,
		PrimaryKey: []*schema.Column{MemoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryentry_agent_id_user_id_tier",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[1], MemoryEntriesColumns[2], MemoryEntriesColumns[3]},
			},
			{
				Name:    "memoryentry_agent_id_user_id_tier_heat_score",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[1], MemoryEntriesColumns[2], MemoryEntriesColumns[3], MemoryEntriesColumns[6]},
			},
			{
				Name:    "memoryentry_tier_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[3], MemoryEntriesColumns[9]},
			},
			{
				Name:    "memoryentry_expires_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "expires_at IS NOT NULL",
				},
			},
		},
	}
	// PaymentReceiptsColumns holds the columns for the "payment_receipts" table.
	PaymentReceiptsColumns = []*schema.Column{
		{Name: "receipt_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "vendor", Type: field.TypeString},
		{Name: "tx_hash", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "token", Type: field.TypeString},
		{Name: "chain", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"paid", "reused", "failed"}, Default: "paid"},
		{Name: "asset_signature", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PaymentReceiptsTable holds the schema information for the "payment_receipts" table.
	PaymentReceiptsTable = &schema.Table{
		Name:       "payment_receipts",
		Columns:    PaymentReceiptsColumns,
		PrimaryKey: []*schema.Column{PaymentReceiptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paymentreceipt_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PaymentReceiptsColumns[1], PaymentReceiptsColumns[11]},
			},
			{
				Name:    "paymentreceipt_vendor_asset_signature",
				Unique:  false,
				Columns: []*schema.Column{PaymentReceiptsColumns[2], PaymentReceiptsColumns[8]},
			},
		},
	}
	// TaskRunsColumns holds the columns for the "task_runs" table.
	TaskRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Default: "default"},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "task_type", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeFloat64, Default: 0.5},
		{Name: "required_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "num_steps", Type: field.TypeInt, Default: 0},
		{Name: "batch_size", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "cancelling", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "model_tier", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "estimated_cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// TaskRunsTable holds the schema information for the "task_runs" table.
	TaskRunsTable = &schema.Table{
		Name:       "task_runs",
		Columns:    TaskRunsColumns,
		PrimaryKey: []*schema.Column{TaskRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskrun_status",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[9]},
			},
			{
				Name:    "taskrun_agent_name",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[1]},
			},
			{
				Name:    "taskrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[9], TaskRunsColumns[19]},
			},
			{
				Name:    "taskrun_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[9], TaskRunsColumns[22]},
			},
			{
				Name:    "taskrun_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[17]},
			},
			{
				Name:    "taskrun_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[23]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TrajectoriesColumns holds the columns for the "trajectories" table.
	TrajectoriesColumns = []*schema.Column{
		{Name: "trajectory_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "task_description", Type: field.TypeString, Size: 2147483647},
		{Name: "task_type", Type: field.TypeString, Nullable: true},
		{Name: "initial_state", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "final_outcome", Type: field.TypeEnum, Enums: []string{"success", "failure", "partial"}},
		{Name: "reward", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "failure_rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_category", Type: field.TypeString, Nullable: true},
		{Name: "fix_applied", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrajectoriesTable holds the schema information for the "trajectories" table.
	TrajectoriesTable = &schema.Table{
		Name:       "trajectories",
		Columns:    TrajectoriesColumns,
		PrimaryKey: []*schema.Column{TrajectoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trajectory_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TrajectoriesColumns[1]},
			},
			{
				Name:    "trajectory_final_outcome_created_at",
				Unique:  false,
				Columns: []*schema.Column{TrajectoriesColumns[6], TrajectoriesColumns[13]},
			},
			{
				Name:    "trajectory_task_type_final_outcome",
				Unique:  false,
				Columns: []*schema.Column{TrajectoriesColumns[3], TrajectoriesColumns[6]},
			},
			{
				Name:    "trajectory_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{TrajectoriesColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEntriesTable,
		BudgetLedgersTable,
		EvolutionAttemptsTable,
		EvolutionPatternsTable,
		MemoryEntriesTable,
		PaymentReceiptsTable,
		TaskRunsTable,
		TrajectoriesTable,
	}
)

func init() {
}
