package budget

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// AuditRecord is the serializable form of one signed audit entry. The
// signature covers the canonical JSON encoding of every other field.
type AuditRecord struct {
	AuditID       string                 `json:"audit_id"`
	AgentID       string                 `json:"agent_id"`
	Service       string                 `json:"service"`
	Amount        float64                `json:"amount"`
	Status        string                 `json:"status"`
	Window        string                 `json:"window"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	Timestamp     time.Time              `json:"timestamp"`
	Signature     string                 `json:"signature,omitempty"`
}

// Signer signs and verifies audit records with HMAC-SHA256.
type Signer struct {
	secret []byte
}

// NewSigner creates a signer over the given secret.
func NewSigner(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty audit secret", ErrConfiguration)
	}
	return &Signer{secret: secret}, nil
}

// NewSignerFromEnv reads the HMAC secret from the named environment variable.
func NewSignerFromEnv(envName string) (*Signer, error) {
	secret := os.Getenv(envName)
	if secret == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrConfiguration, envName)
	}
	return NewSigner([]byte(secret))
}

// Sign computes the hex HMAC-SHA256 over the record's canonical form. The
// record's own Signature field is excluded.
func (s *Signer) Sign(rec *AuditRecord) (string, error) {
	canonical, err := canonicalize(rec)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify re-computes the signature and compares in constant time.
func (s *Signer) Verify(rec *AuditRecord, signature string) error {
	expected, err := s.Sign(rec)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: audit entry %s", ErrSignature, rec.AuditID)
	}
	return nil
}

// canonicalize serializes the record without its signature. encoding/json
// emits struct fields in declaration order and sorts map keys, so the
// encoding is deterministic.
func canonicalize(rec *AuditRecord) ([]byte, error) {
	unsigned := *rec
	unsigned.Signature = ""
	data, err := json.Marshal(&unsigned)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize audit record: %w", err)
	}
	return data, nil
}
