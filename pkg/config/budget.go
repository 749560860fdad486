package config

import "time"

// BudgetConfig contains spend-governor tunables.
type BudgetConfig struct {
	// DefaultMonthlyLimit in USD, applied to agents without an override.
	DefaultMonthlyLimit float64 `yaml:"default_monthly_limit"`

	// AutoApprovalLimit: amounts at or below this are auto-approved.
	AutoApprovalLimit float64 `yaml:"auto_approval_limit"`

	// PerTransactionAlert: amounts at or above this emit an alert.
	PerTransactionAlert float64 `yaml:"per_transaction_alert"`

	// RequireManualAbove: amounts at or above this require manual review.
	RequireManualAbove float64 `yaml:"require_manual_above"`

	// DebitCap is the per-agent micro-payment ledger cap per window.
	DebitCap float64 `yaml:"debit_cap"`

	// AssetTTL is how long a cached creative asset stays reusable.
	AssetTTL time.Duration `yaml:"asset_ttl"`

	// AuditSecretEnv names the environment variable holding the HMAC secret
	// used to sign audit entries.
	AuditSecretEnv string `yaml:"audit_secret_env"`

	// VendorCacheTTL bounds vendor capability hint staleness.
	VendorCacheTTL time.Duration `yaml:"vendor_cache_ttl"`

	// ServiceCostRanges documents the allowed [min,max] cost per service.
	// Requests outside the range are rejected before any approval call.
	ServiceCostRanges map[string][2]float64 `yaml:"service_cost_ranges,omitempty"`
}

// DefaultBudgetConfig returns the built-in budget defaults.
func DefaultBudgetConfig() *BudgetConfig {
	return &BudgetConfig{
		DefaultMonthlyLimit: 200,
		AutoApprovalLimit:   50,
		PerTransactionAlert: 100,
		RequireManualAbove:  500,
		DebitCap:            1000,
		AssetTTL:            24 * time.Hour,
		AuditSecretEnv:      "AP2_SECRET",
		VendorCacheTTL:      15 * time.Minute,
	}
}
