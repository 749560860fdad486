package models

import "time"

// ApprovalStatus is the decision of the external approval capability.
type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalDenied   ApprovalStatus = "denied"
	ApprovalPending  ApprovalStatus = "pending_approval"
)

// PurchaseRequest asks the approval capability to authorize a spend.
type PurchaseRequest struct {
	Agent      string         `json:"agent"`
	UserID     string         `json:"user_id,omitempty"`
	Service    string         `json:"service"`
	Price      float64        `json:"price"`
	Categories []string       `json:"categories,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// PurchaseDecision is the approval capability's answer.
// BatchApproval is optional: some approval paths never produce it.
type PurchaseDecision struct {
	Status        ApprovalStatus `json:"status"`
	Intent        string         `json:"intent,omitempty"`
	Cart          map[string]any `json:"cart,omitempty"`
	BatchApproval string         `json:"batch_approval,omitempty"`
}

// Receipt is the record of one micro-payment to an external vendor.
type Receipt struct {
	ReceiptID string         `json:"receipt_id"`
	TxHash    string         `json:"tx_hash"`
	Amount    float64        `json:"amount"`
	Token     string         `json:"token"`
	Chain     string         `json:"chain"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// VendorInfo carries vendor capability hints merged into charge metadata.
type VendorInfo struct {
	AcceptedTokens []string `json:"accepted_tokens,omitempty"`
	PreferredChain string   `json:"preferred_chain,omitempty"`
}
