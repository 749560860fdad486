// Package budget implements the spend governor: per-agent monthly budgets
// with signed audit entries, and a per-request micro-payment ledger for
// external vendor calls.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/auditentry"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/masking"
	"github.com/agentfoundry/maestro/pkg/models"
)

// Audit entry statuses.
const (
	StatusAutoApproved = "auto_approved"
	StatusApproved     = "approved"
	StatusManualReview = "manual_review"
)

// ApprovalCapability authorizes spends above the auto-approval limit.
type ApprovalCapability interface {
	RequestPurchase(ctx context.Context, req models.PurchaseRequest) (*models.PurchaseDecision, error)
}

// PaymentCapability records micro-payments to external vendors.
type PaymentCapability interface {
	RecordManualPayment(ctx context.Context, agent, vendor string, amount float64, metadata map[string]interface{}) (*models.Receipt, error)
}

// Alert describes a spend at or above the per-transaction alert threshold.
type Alert struct {
	Agent     string    `json:"agent"`
	Service   string    `json:"service"`
	Amount    float64   `json:"amount"`
	Window    string    `json:"window"`
	Timestamp time.Time `json:"timestamp"`
}

// Governor enforces budgets. It is the single logical writer of the
// BudgetLedger; concurrent spend requests for the same agent are serialized.
type Governor struct {
	client   *ent.Client
	cfg      *config.BudgetConfig
	agents   *config.AgentRegistry
	approval ApprovalCapability
	payments PaymentCapability
	vendors  *VendorCache
	masker   *masking.Service
	signer   *Signer

	mu         sync.Mutex
	agentLocks map[string]*sync.Mutex

	alertFn func(Alert)
	now     func() time.Time
}

// NewGovernor builds the spend governor. The signer is required; approval and
// payment capabilities may be nil for deployments that only track spend.
func NewGovernor(
	client *ent.Client,
	cfg *config.BudgetConfig,
	agents *config.AgentRegistry,
	signer *Signer,
	approval ApprovalCapability,
	payments PaymentCapability,
	vendors VendorLookup,
	masker *masking.Service,
) *Governor {
	return &Governor{
		client:     client,
		cfg:        cfg,
		agents:     agents,
		approval:   approval,
		payments:   payments,
		vendors:    NewVendorCache(vendors, cfg.VendorCacheTTL),
		masker:     masker,
		signer:     signer,
		agentLocks: make(map[string]*sync.Mutex),
		now:        time.Now,
	}
}

// SetAlertFunc registers a callback invoked for per-transaction alerts.
func (g *Governor) SetAlertFunc(fn func(Alert)) {
	g.alertFn = fn
}

// EnsureBudget validates, approves, signs and records one spend against the
// agent's monthly budget. Returns the appended audit record. Rejected spends
// leave the ledger and audit log untouched.
func (g *Governor) EnsureBudget(ctx context.Context, agent, service string, amount float64, metadata map[string]interface{}, correlationID string) (*AuditRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %v", ErrValidation, amount)
	}
	if costRange, ok := g.cfg.ServiceCostRanges[service]; ok {
		if amount < costRange[0] || amount > costRange[1] {
			return nil, fmt.Errorf("%w: %s costs %v, outside documented range [%v, %v]",
				ErrValidation, service, amount, costRange[0], costRange[1])
		}
	}

	unlock := g.lockAgent(agent)
	defer unlock()

	window := g.currentWindow()

	ledger, err := g.ledgerForWindow(ctx, agent, window)
	if err != nil {
		return nil, err
	}

	if ledger.MonthlySpend+amount > ledger.MonthlyLimit {
		return nil, fmt.Errorf("%w: agent %s spend %.2f + %.2f exceeds monthly limit %.2f",
			ErrBudgetExceeded, agent, ledger.MonthlySpend, amount, ledger.MonthlyLimit)
	}

	status, err := g.approve(ctx, agent, service, amount, ledger.RequireManualAbove, metadata)
	if err != nil {
		return nil, err
	}

	if amount >= ledger.PerTransactionAlert {
		alert := Alert{Agent: agent, Service: service, Amount: amount, Window: window, Timestamp: g.now()}
		slog.Warn("Spend at or above per-transaction alert threshold",
			"agent", agent, "service", service, "amount", amount)
		if g.alertFn != nil {
			g.alertFn(alert)
		}
	}

	record := &AuditRecord{
		AuditID:       uuid.New().String(),
		AgentID:       agent,
		Service:       service,
		Amount:        amount,
		Status:        status,
		Window:        window,
		Metadata:      g.maskMetadata(metadata),
		CorrelationID: correlationID,
		// Truncated to microseconds so the canonical form survives a
		// timestamptz round-trip and stored entries still verify.
		Timestamp: g.now().UTC().Truncate(time.Microsecond),
	}

	signature, err := g.signer.Sign(record)
	if err != nil {
		return nil, err
	}
	// Verification is re-run before the entry is accepted.
	if err := g.signer.Verify(record, signature); err != nil {
		return nil, err
	}
	record.Signature = signature

	if err := g.appendAndIncrement(ctx, record); err != nil {
		return nil, err
	}

	slog.Info("Spend approved and recorded",
		"agent", agent, "service", service, "amount", amount,
		"status", status, "window", window, "correlation_id", correlationID)

	return record, nil
}

// approve classifies the spend and consults the approval capability when the
// amount is above the auto-approval limit.
func (g *Governor) approve(ctx context.Context, agent, service string, amount, requireManualAbove float64, metadata map[string]interface{}) (string, error) {
	if amount <= g.cfg.AutoApprovalLimit {
		return StatusAutoApproved, nil
	}

	if g.approval == nil {
		return "", fmt.Errorf("%w: no approval capability configured for amount %v above auto-approval limit",
			ErrConfiguration, amount)
	}

	manual := amount >= requireManualAbove
	categories := []string{"external_service"}
	if manual {
		categories = append(categories, "manual_review")
	}

	decision, err := g.approval.RequestPurchase(ctx, models.PurchaseRequest{
		Agent:      agent,
		Service:    service,
		Price:      amount,
		Categories: categories,
		Metadata:   metadata,
	})
	if err != nil {
		return "", fmt.Errorf("approval request failed: %w", err)
	}
	if decision.Status != models.ApprovalApproved {
		return "", fmt.Errorf("%w: %s spend of %v for %s returned %s",
			ErrApprovalDenied, agent, amount, service, decision.Status)
	}

	if manual {
		return StatusManualReview, nil
	}
	return StatusApproved, nil
}

// ledgerForWindow loads the agent's ledger, creating it on first spend and
// resetting the spend counter when the calendar month rolls over. The reset
// is idempotent within a month.
func (g *Governor) ledgerForWindow(ctx context.Context, agent, window string) (*ent.BudgetLedger, error) {
	ledger, err := g.client.BudgetLedger.Get(ctx, agent)
	if ent.IsNotFound(err) {
		return g.client.BudgetLedger.Create().
			SetID(agent).
			SetMonthlyLimit(g.monthlyLimit(agent)).
			SetWindow(window).
			SetPerTransactionAlert(g.cfg.PerTransactionAlert).
			SetRequireManualAbove(g.cfg.RequireManualAbove).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load budget ledger for %s: %w", agent, err)
	}

	if ledger.Window != window {
		ledger, err = ledger.Update().
			SetWindow(window).
			SetMonthlySpend(0).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to roll budget window for %s: %w", agent, err)
		}
		slog.Info("Budget window rolled over", "agent", agent, "window", window)
	}

	return ledger, nil
}

// appendAndIncrement writes the signed audit entry and bumps the spend
// counter in one transaction.
func (g *Governor) appendAndIncrement(ctx context.Context, record *AuditRecord) error {
	tx, err := g.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	_, err = tx.AuditEntry.Create().
		SetID(record.AuditID).
		SetAgentID(record.AgentID).
		SetService(record.Service).
		SetAmount(record.Amount).
		SetStatus(record.Status).
		SetWindow(record.Window).
		SetMetadata(record.Metadata).
		SetSignature(record.Signature).
		SetCorrelationID(record.CorrelationID).
		SetCreatedAt(record.Timestamp).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	_, err = tx.BudgetLedger.UpdateOneID(record.AgentID).
		AddMonthlySpend(record.Amount).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to increment monthly spend: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit spend: %w", err)
	}
	return nil
}

// Status reports the agent's budget position for the current window.
type Status struct {
	Agent        string  `json:"agent"`
	MonthlyLimit float64 `json:"monthly_limit"`
	MonthlySpend float64 `json:"monthly_spend"`
	Remaining    float64 `json:"remaining"`
	Window       string  `json:"window"`
}

// BudgetStatus returns the agent's current window position without mutating
// the ledger.
func (g *Governor) BudgetStatus(ctx context.Context, agent string) (*Status, error) {
	window := g.currentWindow()

	ledger, err := g.client.BudgetLedger.Get(ctx, agent)
	if ent.IsNotFound(err) {
		limit := g.monthlyLimit(agent)
		return &Status{Agent: agent, MonthlyLimit: limit, Remaining: limit, Window: window}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load budget ledger for %s: %w", agent, err)
	}

	spend := ledger.MonthlySpend
	if ledger.Window != window {
		spend = 0
	}
	return &Status{
		Agent:        agent,
		MonthlyLimit: ledger.MonthlyLimit,
		MonthlySpend: spend,
		Remaining:    ledger.MonthlyLimit - spend,
		Window:       window,
	}, nil
}

// AuditEntries returns the agent's signed audit entries for a window, oldest
// first.
func (g *Governor) AuditEntries(ctx context.Context, agent, window string) ([]*ent.AuditEntry, error) {
	return g.client.AuditEntry.Query().
		Where(auditentry.AgentID(agent), auditentry.Window(window)).
		Order(ent.Asc(auditentry.FieldCreatedAt)).
		All(ctx)
}

// VerifyAuditEntry re-checks the stored signature of a persisted entry.
func (g *Governor) VerifyAuditEntry(entry *ent.AuditEntry) error {
	record := &AuditRecord{
		AuditID:       entry.ID,
		AgentID:       entry.AgentID,
		Service:       entry.Service,
		Amount:        entry.Amount,
		Status:        entry.Status,
		Window:        entry.Window,
		Metadata:      entry.Metadata,
		CorrelationID: entry.CorrelationID,
		Timestamp:     entry.CreatedAt.UTC().Truncate(time.Microsecond),
	}
	return g.signer.Verify(record, entry.Signature)
}

// CurrentWindow returns the active budget window label.
func (g *Governor) CurrentWindow() string { return g.currentWindow() }

func (g *Governor) currentWindow() string {
	return g.now().UTC().Format("2006-01")
}

func (g *Governor) monthlyLimit(agent string) float64 {
	if g.agents != nil {
		if cfg, err := g.agents.Get(agent); err == nil && cfg.MonthlyLimit != nil && *cfg.MonthlyLimit > 0 {
			return *cfg.MonthlyLimit
		}
	}
	return g.cfg.DefaultMonthlyLimit
}

func (g *Governor) maskMetadata(metadata map[string]interface{}) map[string]interface{} {
	if g.masker == nil {
		return metadata
	}
	return g.masker.MaskMetadata(metadata)
}

// lockAgent serializes spend processing per agent.
func (g *Governor) lockAgent(agent string) func() {
	g.mu.Lock()
	lock, ok := g.agentLocks[agent]
	if !ok {
		lock = &sync.Mutex{}
		g.agentLocks[agent] = lock
	}
	g.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
