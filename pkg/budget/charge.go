package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/paymentreceipt"
)

// Charge records one micro-payment to an external vendor through the
// per-request ledger. Cacheable creative assets (identified by an
// asset_signature in metadata) are reused within the asset TTL instead of
// paying again. Exceeding the per-agent debit cap fails the enclosing
// operation.
func (g *Governor) Charge(ctx context.Context, agent, vendor string, amount float64, metadata map[string]interface{}, correlationID string) (*ent.PaymentReceipt, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: charge amount must be positive, got %v", ErrValidation, amount)
	}
	if g.payments == nil {
		return nil, fmt.Errorf("%w: no payment capability configured", ErrConfiguration)
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	// Merge vendor capability hints. A failed lookup is not fatal; the
	// payment capability falls back to its own defaults.
	if info, err := g.vendors.Lookup(ctx, vendor); err != nil {
		slog.Warn("Vendor lookup failed, charging without hints", "vendor", vendor, "error", err)
	} else if info != nil {
		if len(info.AcceptedTokens) > 0 {
			metadata["accepted_tokens"] = info.AcceptedTokens
		}
		if info.PreferredChain != "" {
			metadata["preferred_chain"] = info.PreferredChain
		}
	}

	unlock := g.lockAgent(agent)
	defer unlock()

	assetSignature, _ := metadata["asset_signature"].(string)
	if assetSignature != "" {
		reused, err := g.reuseCachedAsset(ctx, agent, vendor, assetSignature, correlationID)
		if err != nil {
			return nil, err
		}
		if reused != nil {
			return reused, nil
		}
	}

	if err := g.checkDebitCap(ctx, agent, amount); err != nil {
		return nil, err
	}

	receipt, err := g.payments.RecordManualPayment(ctx, agent, vendor, amount, metadata)
	if err != nil {
		return nil, fmt.Errorf("payment capability failed for %s: %w", vendor, err)
	}

	stored, err := g.client.PaymentReceipt.Create().
		SetID(uuid.New().String()).
		SetAgentID(agent).
		SetVendor(vendor).
		SetTxHash(receipt.TxHash).
		SetAmount(receipt.Amount).
		SetToken(receipt.Token).
		SetChain(receipt.Chain).
		SetStatus(paymentreceipt.StatusPaid).
		SetAssetSignature(assetSignature).
		SetMetadata(g.maskMetadata(metadata)).
		SetCorrelationID(correlationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist payment receipt: %w", err)
	}

	slog.Info("Micro-payment recorded",
		"agent", agent, "vendor", vendor, "amount", receipt.Amount,
		"tx_hash", receipt.TxHash, "correlation_id", correlationID)

	return stored, nil
}

// reuseCachedAsset returns a reuse receipt when a paid receipt for the same
// (vendor, asset_signature) exists within the asset TTL. The reuse is
// recorded as a zero-amount receipt pointing at the original transaction.
func (g *Governor) reuseCachedAsset(ctx context.Context, agent, vendor, assetSignature, correlationID string) (*ent.PaymentReceipt, error) {
	cutoff := g.now().Add(-g.cfg.AssetTTL)

	cached, err := g.client.PaymentReceipt.Query().
		Where(
			paymentreceipt.Vendor(vendor),
			paymentreceipt.AssetSignature(assetSignature),
			paymentreceipt.StatusEQ(paymentreceipt.StatusPaid),
			paymentreceipt.CreatedAtGT(cutoff),
		).
		Order(ent.Desc(paymentreceipt.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached assets: %w", err)
	}

	reused, err := g.client.PaymentReceipt.Create().
		SetID(uuid.New().String()).
		SetAgentID(agent).
		SetVendor(vendor).
		SetTxHash(cached.TxHash).
		SetAmount(0).
		SetToken(cached.Token).
		SetChain(cached.Chain).
		SetStatus(paymentreceipt.StatusReused).
		SetAssetSignature(assetSignature).
		SetCorrelationID(correlationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record asset reuse: %w", err)
	}

	slog.Info("Cached asset reused, no new charge",
		"agent", agent, "vendor", vendor, "asset_signature", assetSignature)

	return reused, nil
}

// checkDebitCap enforces the per-agent micro-payment cap for the current
// window.
func (g *Governor) checkDebitCap(ctx context.Context, agent string, amount float64) error {
	if g.cfg.DebitCap <= 0 {
		return nil
	}

	monthStart := g.monthStart()

	amounts, err := g.client.PaymentReceipt.Query().
		Where(
			paymentreceipt.AgentID(agent),
			paymentreceipt.StatusEQ(paymentreceipt.StatusPaid),
			paymentreceipt.CreatedAtGTE(monthStart),
		).
		Select(paymentreceipt.FieldAmount).
		Float64s(ctx)
	if err != nil {
		return fmt.Errorf("failed to total receipts for %s: %w", agent, err)
	}

	spent := 0.0
	for _, a := range amounts {
		spent += a
	}

	if spent+amount > g.cfg.DebitCap {
		return fmt.Errorf("%w: agent %s debits %.2f + %.2f exceed cap %.2f",
			ErrBudgetExceeded, agent, spent, amount, g.cfg.DebitCap)
	}
	return nil
}

func (g *Governor) monthStart() time.Time {
	now := g.now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
