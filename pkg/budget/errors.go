package budget

import "errors"

// Sentinel errors for spend governance. Callers match with errors.Is.
var (
	// ErrValidation indicates an invalid spend request (non-positive amount,
	// cost outside the service's documented range).
	ErrValidation = errors.New("invalid spend request")

	// ErrBudgetExceeded indicates a monthly cap or per-request debit cap breach.
	ErrBudgetExceeded = errors.New("budget exceeded")

	// ErrApprovalDenied indicates the approval capability returned a
	// non-approved status.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrSignature indicates an audit signature failed verification.
	ErrSignature = errors.New("audit signature mismatch")

	// ErrConfiguration indicates missing governor configuration, such as an
	// unset HMAC secret.
	ErrConfiguration = errors.New("spend governor misconfigured")
)
