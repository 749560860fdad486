// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentfoundry/maestro/ent/auditentry"
	"github.com/agentfoundry/maestro/ent/budgetledger"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
	"github.com/agentfoundry/maestro/ent/memoryentry"
	"github.com/agentfoundry/maestro/ent/paymentreceipt"
	"github.com/agentfoundry/maestro/ent/schema"
	"github.com/agentfoundry/maestro/ent/taskrun"
	"github.com/agentfoundry/maestro/ent/trajectory"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[9].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	budgetledgerFields := schema.BudgetLedger{}.Fields()
	_ = budgetledgerFields
	// budgetledgerDescMonthlySpend is the schema descriptor for monthly_spend field.
	budgetledgerDescMonthlySpend := budgetledgerFields[2].Descriptor()
	// budgetledger.DefaultMonthlySpend holds the default value on creation for the monthly_spend field.
	budgetledger.DefaultMonthlySpend = budgetledgerDescMonthlySpend.Default.(float64)
	// budgetledgerDescPerTransactionAlert is the schema descriptor for per_transaction_alert field.
	budgetledgerDescPerTransactionAlert := budgetledgerFields[4].Descriptor()
	// budgetledger.DefaultPerTransactionAlert holds the default value on creation for the per_transaction_alert field.
	budgetledger.DefaultPerTransactionAlert = budgetledgerDescPerTransactionAlert.Default.(float64)
	// budgetledgerDescRequireManualAbove is the schema descriptor for require_manual_above field.
	budgetledgerDescRequireManualAbove := budgetledgerFields[5].Descriptor()
	// budgetledger.DefaultRequireManualAbove holds the default value on creation for the require_manual_above field.
	budgetledger.DefaultRequireManualAbove = budgetledgerDescRequireManualAbove.Default.(float64)
	// budgetledgerDescUpdatedAt is the schema descriptor for updated_at field.
	budgetledgerDescUpdatedAt := budgetledgerFields[6].Descriptor()
	// budgetledger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budgetledger.DefaultUpdatedAt = budgetledgerDescUpdatedAt.Default.(func() time.Time)
	// budgetledger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budgetledger.UpdateDefaultUpdatedAt = budgetledgerDescUpdatedAt.UpdateDefault.(func() time.Time)
	evolutionattemptFields := schema.EvolutionAttempt{}.Fields()
	_ = evolutionattemptFields
	// evolutionattemptDescImprovementDelta is the schema descriptor for improvement_delta field.
	evolutionattemptDescImprovementDelta := evolutionattemptFields[8].Descriptor()
	// evolutionattempt.DefaultImprovementDelta holds the default value on creation for the improvement_delta field.
	evolutionattempt.DefaultImprovementDelta = evolutionattemptDescImprovementDelta.Default.(float64)
	// evolutionattemptDescRubricReward is the schema descriptor for rubric_reward field.
	evolutionattemptDescRubricReward := evolutionattemptFields[9].Descriptor()
	// evolutionattempt.DefaultRubricReward holds the default value on creation for the rubric_reward field.
	evolutionattempt.DefaultRubricReward = evolutionattemptDescRubricReward.Default.(float64)
	// evolutionattemptDescAccepted is the schema descriptor for accepted field.
	evolutionattemptDescAccepted := evolutionattemptFields[10].Descriptor()
	// evolutionattempt.DefaultAccepted holds the default value on creation for the accepted field.
	evolutionattempt.DefaultAccepted = evolutionattemptDescAccepted.Default.(bool)
	// evolutionattemptDescCreatedAt is the schema descriptor for created_at field.
	evolutionattemptDescCreatedAt := evolutionattemptFields[13].Descriptor()
	// evolutionattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	evolutionattempt.DefaultCreatedAt = evolutionattemptDescCreatedAt.Default.(func() time.Time)
	evolutionpatternFields := schema.EvolutionPattern{}.Fields()
	_ = evolutionpatternFields
	// evolutionpatternDescAgentType is the schema descriptor for agent_type field.
	evolutionpatternDescAgentType := evolutionpatternFields[1].Descriptor()
	// evolutionpattern.AgentTypeValidator is a validator for the "agent_type" field. It is called by the builders before save.
	evolutionpattern.AgentTypeValidator = evolutionpatternDescAgentType.Validators[0].(func(string) error)
	// evolutionpatternDescTaskType is the schema descriptor for task_type field.
	evolutionpatternDescTaskType := evolutionpatternFields[2].Descriptor()
	// evolutionpattern.TaskTypeValidator is a validator for the "task_type" field. It is called by the builders before save.
	evolutionpattern.TaskTypeValidator = evolutionpatternDescTaskType.Validators[0].(func(string) error)
	// evolutionpatternDescCreatedAt is the schema descriptor for created_at field.
	evolutionpatternDescCreatedAt := evolutionpatternFields[10].Descriptor()
	// evolutionpattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	evolutionpattern.DefaultCreatedAt = evolutionpatternDescCreatedAt.Default.(func() time.Time)
	memoryentryFields := schema.MemoryEntry{}.Fields()
	_ = memoryentryFields
	// memoryentryDescMemoryType is the schema descriptor for memory_type field.
	memoryentryDescMemoryType := memoryentryFields[4].Descriptor()
	// memoryentry.DefaultMemoryType holds the default value on creation for the memory_type field.
	memoryentry.DefaultMemoryType = memoryentryDescMemoryType.Default.(string)
	// memoryentryDescHeatScore is the schema descriptor for heat_score field.
	memoryentryDescHeatScore := memoryentryFields[6].Descriptor()
	// memoryentry.DefaultHeatScore holds the default value on creation for the heat_score field.
	memoryentry.DefaultHeatScore = memoryentryDescHeatScore.Default.(float64)
	// memoryentryDescVisitCount is the schema descriptor for visit_count field.
	memoryentryDescVisitCount := memoryentryFields[7].Descriptor()
	// memoryentry.DefaultVisitCount holds the default value on creation for the visit_count field.
	memoryentry.DefaultVisitCount = memoryentryDescVisitCount.Default.(int)
	// memoryentryDescCreatedAt is the schema descriptor for created_at field.
	memoryentryDescCreatedAt := memoryentryFields[9].Descriptor()
	// memoryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryentry.DefaultCreatedAt = memoryentryDescCreatedAt.Default.(func() time.Time)
	// memoryentryDescUpdatedAt is the schema descriptor for updated_at field.
	memoryentryDescUpdatedAt := memoryentryFields[10].Descriptor()
	// memoryentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memoryentry.DefaultUpdatedAt = memoryentryDescUpdatedAt.Default.(func() time.Time)
	// memoryentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memoryentry.UpdateDefaultUpdatedAt = memoryentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	paymentreceiptFields := schema.PaymentReceipt{}.Fields()
	_ = paymentreceiptFields
	// paymentreceiptDescCreatedAt is the schema descriptor for created_at field.
	paymentreceiptDescCreatedAt := paymentreceiptFields[11].Descriptor()
	// paymentreceipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentreceipt.DefaultCreatedAt = paymentreceiptDescCreatedAt.Default.(func() time.Time)
	taskrunFields := schema.TaskRun{}.Fields()
	_ = taskrunFields
	// taskrunDescUserID is the schema descriptor for user_id field.
	taskrunDescUserID := taskrunFields[2].Descriptor()
	// taskrun.DefaultUserID holds the default value on creation for the user_id field.
	taskrun.DefaultUserID = taskrunDescUserID.Default.(string)
	// taskrunDescPriority is the schema descriptor for priority field.
	taskrunDescPriority := taskrunFields[5].Descriptor()
	// taskrun.DefaultPriority holds the default value on creation for the priority field.
	taskrun.DefaultPriority = taskrunDescPriority.Default.(float64)
	// taskrunDescNumSteps is the schema descriptor for num_steps field.
	taskrunDescNumSteps := taskrunFields[7].Descriptor()
	// taskrun.DefaultNumSteps holds the default value on creation for the num_steps field.
	taskrun.DefaultNumSteps = taskrunDescNumSteps.Default.(int)
	// taskrunDescBatchSize is the schema descriptor for batch_size field.
	taskrunDescBatchSize := taskrunFields[8].Descriptor()
	// taskrun.DefaultBatchSize holds the default value on creation for the batch_size field.
	taskrun.DefaultBatchSize = taskrunDescBatchSize.Default.(int)
	// taskrunDescAttempts is the schema descriptor for attempts field.
	taskrunDescAttempts := taskrunFields[13].Descriptor()
	// taskrun.DefaultAttempts holds the default value on creation for the attempts field.
	taskrun.DefaultAttempts = taskrunDescAttempts.Default.(int)
	// taskrunDescCreatedAt is the schema descriptor for created_at field.
	taskrunDescCreatedAt := taskrunFields[19].Descriptor()
	// taskrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskrun.DefaultCreatedAt = taskrunDescCreatedAt.Default.(func() time.Time)
	trajectoryFields := schema.Trajectory{}.Fields()
	_ = trajectoryFields
	// trajectoryDescReward is the schema descriptor for reward field.
	trajectoryDescReward := trajectoryFields[7].Descriptor()
	// trajectory.DefaultReward holds the default value on creation for the reward field.
	trajectory.DefaultReward = trajectoryDescReward.Default.(float64)
	// trajectoryDescDurationMs is the schema descriptor for duration_ms field.
	trajectoryDescDurationMs := trajectoryFields[8].Descriptor()
	// trajectory.DefaultDurationMs holds the default value on creation for the duration_ms field.
	trajectory.DefaultDurationMs = trajectoryDescDurationMs.Default.(int64)
	// trajectoryDescCreatedAt is the schema descriptor for created_at field.
	trajectoryDescCreatedAt := trajectoryFields[13].Descriptor()
	// trajectory.DefaultCreatedAt holds the default value on creation for the created_at field.
	trajectory.DefaultCreatedAt = trajectoryDescCreatedAt.Default.(func() time.Time)
}
