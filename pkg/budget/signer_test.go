package budget

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *AuditRecord {
	return &AuditRecord{
		AuditID:       "a-1",
		AgentID:       "builder",
		Service:       "serpapi",
		Amount:        12.5,
		Status:        StatusAutoApproved,
		Window:        "2026-08",
		Metadata:      map[string]interface{}{"query": "golang jobs"},
		CorrelationID: "corr-1",
		Timestamp:     time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC),
	}
}

func TestSignAndVerify(t *testing.T) {
	signer, err := NewSigner([]byte("test-secret"))
	require.NoError(t, err)

	rec := testRecord()
	sig, err := signer.Sign(rec)
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	assert.NoError(t, signer.Verify(rec, sig))
}

func TestVerifyDetectsTampering(t *testing.T) {
	signer, err := NewSigner([]byte("test-secret"))
	require.NoError(t, err)

	rec := testRecord()
	sig, err := signer.Sign(rec)
	require.NoError(t, err)

	rec.Amount = 9999
	err = signer.Verify(rec, sig)
	assert.ErrorIs(t, err, ErrSignature)
}

func TestSignExcludesSignatureField(t *testing.T) {
	signer, err := NewSigner([]byte("test-secret"))
	require.NoError(t, err)

	rec := testRecord()
	sig, err := signer.Sign(rec)
	require.NoError(t, err)

	// Signing a record that already carries its signature yields the same value.
	rec.Signature = sig
	again, err := signer.Sign(rec)
	require.NoError(t, err)
	assert.Equal(t, sig, again)
}

func TestDifferentSecretsDiffer(t *testing.T) {
	a, err := NewSigner([]byte("secret-a"))
	require.NoError(t, err)
	b, err := NewSigner([]byte("secret-b"))
	require.NoError(t, err)

	rec := testRecord()
	sigA, err := a.Sign(rec)
	require.NoError(t, err)

	assert.ErrorIs(t, b.Verify(rec, sigA), ErrSignature)
}

func TestEmptySecretRejected(t *testing.T) {
	_, err := NewSigner(nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewSignerFromEnv(t *testing.T) {
	t.Setenv("TEST_AUDIT_SECRET", "from-env")
	signer, err := NewSignerFromEnv("TEST_AUDIT_SECRET")
	require.NoError(t, err)
	require.NotNil(t, signer)

	_, err = NewSignerFromEnv("TEST_AUDIT_SECRET_MISSING")
	assert.ErrorIs(t, err, ErrConfiguration)
}

// The signed canonical form must survive a serialize/parse round-trip
// bit-for-bit.
func TestAuditRecordRoundTrip(t *testing.T) {
	signer, err := NewSigner([]byte("test-secret"))
	require.NoError(t, err)

	rec := testRecord()
	rec.Signature, err = signer.Sign(rec)
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var parsed AuditRecord
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.NoError(t, signer.Verify(&parsed, parsed.Signature))

	reserialized, err := json.Marshal(&parsed)
	require.NoError(t, err)
	assert.Equal(t, data, reserialized)
}
