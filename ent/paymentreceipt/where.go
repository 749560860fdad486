// Code generated by ent, DO NOT EDIT.

package paymentreceipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldAgentID, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldVendor, v))
}

// TxHash applies equality check predicate on the "tx_hash" field. It's identical to TxHashEQ.
func TxHash(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldTxHash, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldAmount, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldToken, v))
}

// Chain applies equality check predicate on the "chain" field. It's identical to ChainEQ.
func Chain(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldChain, v))
}

// AssetSignature applies equality check predicate on the "asset_signature" field. It's identical to AssetSignatureEQ.
func AssetSignature(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldAssetSignature, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldCorrelationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldAgentID, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldVendor, v))
}

// TxHashEQ applies the EQ predicate on the "tx_hash" field.
func TxHashEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldTxHash, v))
}

// TxHashNEQ applies the NEQ predicate on the "tx_hash" field.
func TxHashNEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldTxHash, v))
}

// TxHashIn applies the In predicate on the "tx_hash" field.
func TxHashIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldTxHash, vs...))
}

// TxHashNotIn applies the NotIn predicate on the "tx_hash" field.
func TxHashNotIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldTxHash, vs...))
}

// TxHashGT applies the GT predicate on the "tx_hash" field.
func TxHashGT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldTxHash, v))
}

// TxHashGTE applies the GTE predicate on the "tx_hash" field.
func TxHashGTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldTxHash, v))
}

// TxHashLT applies the LT predicate on the "tx_hash" field.
func TxHashLT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldTxHash, v))
}

// TxHashLTE applies the LTE predicate on the "tx_hash" field.
func TxHashLTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldTxHash, v))
}

// TxHashContains applies the Contains predicate on the "tx_hash" field.
func TxHashContains(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContains(FieldTxHash, v))
}

// TxHashHasPrefix applies the HasPrefix predicate on the "tx_hash" field.
func TxHashHasPrefix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasPrefix(FieldTxHash, v))
}

// TxHashHasSuffix applies the HasSuffix predicate on the "tx_hash" field.
func TxHashHasSuffix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasSuffix(FieldTxHash, v))
}

// TxHashEqualFold applies the EqualFold predicate on the "tx_hash" field.
func TxHashEqualFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldTxHash, v))
}

// TxHashContainsFold applies the ContainsFold predicate on the "tx_hash" field.
func TxHashContainsFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldTxHash, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldAmount, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldToken, v))
}

// ChainEQ applies the EQ predicate on the "chain" field.
func ChainEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldChain, v))
}

// ChainNEQ applies the NEQ predicate on the "chain" field.
func ChainNEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldChain, v))
}

// ChainIn applies the In predicate on the "chain" field.
func ChainIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldChain, vs...))
}

// ChainNotIn applies the NotIn predicate on the "chain" field.
func ChainNotIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldChain, vs...))
}

// ChainGT applies the GT predicate on the "chain" field.
func ChainGT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldChain, v))
}

// ChainGTE applies the GTE predicate on the "chain" field.
func ChainGTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldChain, v))
}

// ChainLT applies the LT predicate on the "chain" field.
func ChainLT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldChain, v))
}

// ChainLTE applies the LTE predicate on the "chain" field.
func ChainLTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldChain, v))
}

// ChainContains applies the Contains predicate on the "chain" field.
func ChainContains(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContains(FieldChain, v))
}

// ChainHasPrefix applies the HasPrefix predicate on the "chain" field.
func ChainHasPrefix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasPrefix(FieldChain, v))
}

// ChainHasSuffix applies the HasSuffix predicate on the "chain" field.
func ChainHasSuffix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasSuffix(FieldChain, v))
}

// ChainEqualFold applies the EqualFold predicate on the "chain" field.
func ChainEqualFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldChain, v))
}

// ChainContainsFold applies the ContainsFold predicate on the "chain" field.
func ChainContainsFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldChain, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldStatus, vs...))
}

// AssetSignatureEQ applies the EQ predicate on the "asset_signature" field.
func AssetSignatureEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldAssetSignature, v))
}

// AssetSignatureNEQ applies the NEQ predicate on the "asset_signature" field.
func AssetSignatureNEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldAssetSignature, v))
}

// AssetSignatureIn applies the In predicate on the "asset_signature" field.
func AssetSignatureIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldAssetSignature, vs...))
}

// AssetSignatureNotIn applies the NotIn predicate on the "asset_signature" field.
func AssetSignatureNotIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldAssetSignature, vs...))
}

// AssetSignatureGT applies the GT predicate on the "asset_signature" field.
func AssetSignatureGT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldAssetSignature, v))
}

// AssetSignatureGTE applies the GTE predicate on the "asset_signature" field.
func AssetSignatureGTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldAssetSignature, v))
}

// AssetSignatureLT applies the LT predicate on the "asset_signature" field.
func AssetSignatureLT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldAssetSignature, v))
}

// AssetSignatureLTE applies the LTE predicate on the "asset_signature" field.
func AssetSignatureLTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldAssetSignature, v))
}

// AssetSignatureContains applies the Contains predicate on the "asset_signature" field.
func AssetSignatureContains(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContains(FieldAssetSignature, v))
}

// AssetSignatureHasPrefix applies the HasPrefix predicate on the "asset_signature" field.
func AssetSignatureHasPrefix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasPrefix(FieldAssetSignature, v))
}

// AssetSignatureHasSuffix applies the HasSuffix predicate on the "asset_signature" field.
func AssetSignatureHasSuffix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasSuffix(FieldAssetSignature, v))
}

// AssetSignatureIsNil applies the IsNil predicate on the "asset_signature" field.
func AssetSignatureIsNil() predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIsNull(FieldAssetSignature))
}

// AssetSignatureNotNil applies the NotNil predicate on the "asset_signature" field.
func AssetSignatureNotNil() predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotNull(FieldAssetSignature))
}

// AssetSignatureEqualFold applies the EqualFold predicate on the "asset_signature" field.
func AssetSignatureEqualFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldAssetSignature, v))
}

// AssetSignatureContainsFold applies the ContainsFold predicate on the "asset_signature" field.
func AssetSignatureContainsFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldAssetSignature, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotNull(FieldMetadata))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldContainsFold(FieldCorrelationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentReceipt) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentReceipt) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentReceipt) predicate.PaymentReceipt {
	return predicate.PaymentReceipt(sql.NotPredicates(p))
}
