package budget

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/auditentry"
	"github.com/agentfoundry/maestro/ent/paymentreceipt"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/masking"
	"github.com/agentfoundry/maestro/pkg/models"
	testdb "github.com/agentfoundry/maestro/test/database"
)

type stubApproval struct {
	status   models.ApprovalStatus
	requests []models.PurchaseRequest
}

func (s *stubApproval) RequestPurchase(_ context.Context, req models.PurchaseRequest) (*models.PurchaseDecision, error) {
	s.requests = append(s.requests, req)
	return &models.PurchaseDecision{Status: s.status}, nil
}

type stubPayments struct {
	calls int
}

func (s *stubPayments) RecordManualPayment(_ context.Context, _, _ string, amount float64, _ map[string]interface{}) (*models.Receipt, error) {
	s.calls++
	return &models.Receipt{
		TxHash: fmt.Sprintf("0xtx%d", s.calls),
		Amount: amount,
		Token:  "USDC",
		Chain:  "base",
		Status: "paid",
	}, nil
}

type stubVendorLookup struct {
	calls int
}

func (s *stubVendorLookup) Lookup(_ context.Context, vendor string) (*models.VendorInfo, error) {
	s.calls++
	return &models.VendorInfo{AcceptedTokens: []string{"USDC"}, PreferredChain: "base"}, nil
}

func setupGovernor(t *testing.T, cfg *config.BudgetConfig) (*Governor, *stubApproval, *stubPayments) {
	t.Helper()
	client := testdb.NewTestClient(t)

	signer, err := NewSigner([]byte("test-secret"))
	require.NoError(t, err)

	approval := &stubApproval{status: models.ApprovalApproved}
	payments := &stubPayments{}

	gov := NewGovernor(client.Client, cfg, nil, signer, approval, payments, &stubVendorLookup{},
		masking.NewService(&config.MaskingDefaults{Enabled: true, PatternGroup: "security"}))
	return gov, approval, payments
}

func TestEnsureBudgetAutoApproval(t *testing.T) {
	gov, approval, _ := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	record, err := gov.EnsureBudget(ctx, "builder", "serpapi", 40, map[string]interface{}{"query": "a"}, "corr-1")
	require.NoError(t, err)

	assert.Equal(t, StatusAutoApproved, record.Status)
	assert.Empty(t, approval.requests, "auto-approved spends must not call the approval capability")

	// Exactly one signed entry appended, and it verifies after the round-trip.
	entries, err := gov.AuditEntries(ctx, "builder", gov.CurrentWindow())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NoError(t, gov.VerifyAuditEntry(entries[0]))

	status, err := gov.BudgetStatus(ctx, "builder")
	require.NoError(t, err)
	assert.InDelta(t, 40, status.MonthlySpend, 1e-9)
}

func TestEnsureBudgetExceeded(t *testing.T) {
	gov, _, _ := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	// Ledger at 180 of 200.
	_, err := gov.client.BudgetLedger.Create().
		SetID("builder").
		SetMonthlyLimit(200).
		SetMonthlySpend(180).
		SetWindow(gov.CurrentWindow()).
		Save(ctx)
	require.NoError(t, err)

	_, err = gov.EnsureBudget(ctx, "builder", "serpapi", 30, nil, "corr-2")
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	// Spend unchanged, no audit entry appended.
	ledger, err := gov.client.BudgetLedger.Get(ctx, "builder")
	require.NoError(t, err)
	assert.InDelta(t, 180, ledger.MonthlySpend, 1e-9)

	entries, err := gov.AuditEntries(ctx, "builder", gov.CurrentWindow())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureBudgetApprovalDenied(t *testing.T) {
	gov, approval, _ := setupGovernor(t, config.DefaultBudgetConfig())
	approval.status = models.ApprovalDenied
	ctx := context.Background()

	_, err := gov.EnsureBudget(ctx, "builder", "registrar", 120, nil, "corr-3")
	assert.ErrorIs(t, err, ErrApprovalDenied)

	entries, err := gov.AuditEntries(ctx, "builder", gov.CurrentWindow())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureBudgetManualReview(t *testing.T) {
	cfg := config.DefaultBudgetConfig()
	cfg.DefaultMonthlyLimit = 1000
	cfg.RequireManualAbove = 100
	gov, approval, _ := setupGovernor(t, cfg)
	ctx := context.Background()

	// Above auto-approval but below the manual threshold.
	record, err := gov.EnsureBudget(ctx, "builder", "registrar", 80, nil, "corr-4")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, record.Status)

	// At the manual threshold the request carries the manual_review category.
	record, err = gov.EnsureBudget(ctx, "builder", "registrar", 150, nil, "corr-5")
	require.NoError(t, err)
	assert.Equal(t, StatusManualReview, record.Status)

	require.Len(t, approval.requests, 2)
	assert.NotContains(t, approval.requests[0].Categories, "manual_review")
	assert.Contains(t, approval.requests[1].Categories, "manual_review")
}

func TestEnsureBudgetValidation(t *testing.T) {
	cfg := config.DefaultBudgetConfig()
	cfg.ServiceCostRanges = map[string][2]float64{"domain": {5, 20}}
	gov, _, _ := setupGovernor(t, cfg)
	ctx := context.Background()

	_, err := gov.EnsureBudget(ctx, "builder", "serpapi", 0, nil, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = gov.EnsureBudget(ctx, "builder", "serpapi", -3, nil, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = gov.EnsureBudget(ctx, "builder", "domain", 40, nil, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWindowRollover(t *testing.T) {
	gov, _, _ := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	_, err := gov.EnsureBudget(ctx, "builder", "serpapi", 40, nil, "")
	require.NoError(t, err)

	// Advance into the next month; the counter resets once.
	gov.now = func() time.Time { return time.Now().UTC().AddDate(0, 1, 0) }

	status, err := gov.BudgetStatus(ctx, "builder")
	require.NoError(t, err)
	assert.Zero(t, status.MonthlySpend)

	_, err = gov.EnsureBudget(ctx, "builder", "serpapi", 10, nil, "")
	require.NoError(t, err)

	ledger, err := gov.client.BudgetLedger.Get(ctx, "builder")
	require.NoError(t, err)
	assert.InDelta(t, 10, ledger.MonthlySpend, 1e-9)
	assert.Equal(t, gov.CurrentWindow(), ledger.Window)
}

// Invariant: within one window the audit total never exceeds the limit.
func TestAuditTotalBoundedByLimit(t *testing.T) {
	cfg := config.DefaultBudgetConfig()
	cfg.DefaultMonthlyLimit = 100
	gov, _, _ := setupGovernor(t, cfg)
	ctx := context.Background()

	total := 0.0
	for i := 0; i < 5; i++ {
		record, err := gov.EnsureBudget(ctx, "builder", "serpapi", 30, nil, "")
		if err != nil {
			assert.ErrorIs(t, err, ErrBudgetExceeded)
			continue
		}
		total += record.Amount
	}

	entries, err := gov.AuditEntries(ctx, "builder", gov.CurrentWindow())
	require.NoError(t, err)

	sum := 0.0
	for _, e := range entries {
		sum += e.Amount
		assert.NoError(t, gov.VerifyAuditEntry(e))
	}
	assert.InDelta(t, total, sum, 1e-9)
	assert.LessOrEqual(t, sum, 100.0)
	assert.Len(t, entries, 3)
}

func TestEnsureBudgetMasksMetadata(t *testing.T) {
	gov, _, _ := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	record, err := gov.EnsureBudget(ctx, "builder", "serpapi", 10,
		map[string]interface{}{"vendor": "serpapi", "api_key": "sk-live-1234567890"}, "")
	require.NoError(t, err)

	assert.Equal(t, "serpapi", record.Metadata["vendor"])
	assert.Equal(t, "__MASKED__", record.Metadata["api_key"])

	entries, err := gov.AuditEntries(ctx, "builder", gov.CurrentWindow())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "__MASKED__", entries[0].Metadata["api_key"])
}

func TestAlertThreshold(t *testing.T) {
	gov, _, _ := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	var alerts []Alert
	gov.SetAlertFunc(func(a Alert) { alerts = append(alerts, a) })

	_, err := gov.EnsureBudget(ctx, "builder", "registrar", 120, nil, "")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "builder", alerts[0].Agent)
	assert.InDelta(t, 120, alerts[0].Amount, 1e-9)

	_, err = gov.EnsureBudget(ctx, "builder", "serpapi", 10, nil, "")
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestChargeRecordsReceipt(t *testing.T) {
	gov, _, payments := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	receipt, err := gov.Charge(ctx, "marketing", "image-gen", 2.5,
		map[string]interface{}{"prompt": "logo"}, "corr-7")
	require.NoError(t, err)

	assert.Equal(t, paymentreceipt.StatusPaid, receipt.Status)
	assert.Equal(t, "0xtx1", receipt.TxHash)
	assert.Equal(t, 1, payments.calls)

	// Vendor hints merged into stored metadata.
	assert.Equal(t, "base", receipt.Metadata["preferred_chain"])
}

// A governor wired without a payment capability tracks LLM spend normally
// but rejects micro-payments with a configuration error.
func TestChargeWithoutPaymentCapability(t *testing.T) {
	client := testdb.NewTestClient(t)
	signer, err := NewSigner([]byte("test-secret"))
	require.NoError(t, err)

	gov := NewGovernor(client.Client, config.DefaultBudgetConfig(), nil, signer, nil, nil, nil,
		masking.NewService(&config.MaskingDefaults{Enabled: true, PatternGroup: "security"}))

	_, err = gov.Charge(context.Background(), "marketing", "image-gen", 2.5, nil, "corr-1")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestChargeAssetReuse(t *testing.T) {
	gov, _, payments := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	meta := map[string]interface{}{"asset_signature": "logo-v1"}

	first, err := gov.Charge(ctx, "marketing", "image-gen", 2.5, meta, "")
	require.NoError(t, err)
	assert.Equal(t, paymentreceipt.StatusPaid, first.Status)

	second, err := gov.Charge(ctx, "marketing", "image-gen", 2.5,
		map[string]interface{}{"asset_signature": "logo-v1"}, "")
	require.NoError(t, err)
	assert.Equal(t, paymentreceipt.StatusReused, second.Status)
	assert.Zero(t, second.Amount)
	assert.Equal(t, first.TxHash, second.TxHash)

	// No second payment was made.
	assert.Equal(t, 1, payments.calls)
}

func TestChargeAssetExpired(t *testing.T) {
	cfg := config.DefaultBudgetConfig()
	cfg.AssetTTL = time.Millisecond
	gov, _, payments := setupGovernor(t, cfg)
	ctx := context.Background()

	_, err := gov.Charge(ctx, "marketing", "image-gen", 2.5,
		map[string]interface{}{"asset_signature": "logo-v1"}, "")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second, err := gov.Charge(ctx, "marketing", "image-gen", 2.5,
		map[string]interface{}{"asset_signature": "logo-v1"}, "")
	require.NoError(t, err)
	assert.Equal(t, paymentreceipt.StatusPaid, second.Status)
	assert.Equal(t, 2, payments.calls)
}

func TestChargeDebitCap(t *testing.T) {
	cfg := config.DefaultBudgetConfig()
	cfg.DebitCap = 5
	gov, _, _ := setupGovernor(t, cfg)
	ctx := context.Background()

	_, err := gov.Charge(ctx, "marketing", "image-gen", 4, nil, "")
	require.NoError(t, err)

	_, err = gov.Charge(ctx, "marketing", "image-gen", 2, nil, "")
	assert.ErrorIs(t, err, ErrBudgetExceeded)
}

func TestChargeValidation(t *testing.T) {
	gov, _, _ := setupGovernor(t, config.DefaultBudgetConfig())

	_, err := gov.Charge(context.Background(), "marketing", "image-gen", 0, nil, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuditEntriesOrdered(t *testing.T) {
	gov, _, _ := setupGovernor(t, config.DefaultBudgetConfig())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := gov.EnsureBudget(ctx, "builder", "serpapi", float64(i), nil, "")
		require.NoError(t, err)
	}

	entries, err := gov.client.AuditEntry.Query().
		Where(auditentry.AgentID("builder")).
		Order(ent.Asc(auditentry.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, !entries[1].CreatedAt.Before(entries[0].CreatedAt))
	assert.True(t, !entries[2].CreatedAt.Before(entries[1].CreatedAt))
}
