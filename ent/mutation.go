// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/auditentry"
	"github.com/agentfoundry/maestro/ent/budgetledger"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
	"github.com/agentfoundry/maestro/ent/memoryentry"
	"github.com/agentfoundry/maestro/ent/paymentreceipt"
	"github.com/agentfoundry/maestro/ent/predicate"
	"github.com/agentfoundry/maestro/ent/taskrun"
	"github.com/agentfoundry/maestro/ent/trajectory"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEntry       = "AuditEntry"
	TypeBudgetLedger     = "BudgetLedger"
	TypeEvolutionAttempt = "EvolutionAttempt"
	TypeEvolutionPattern = "EvolutionPattern"
	TypeMemoryEntry      = "MemoryEntry"
	TypePaymentReceipt   = "PaymentReceipt"
	TypeTaskRun          = "TaskRun"
	TypeTrajectory       = "Trajectory"
)

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_id       *string
	service        *string
	amount         *float64
	addamount      *float64
	status         *string
	window         *string
	metadata       *map[string]interface{}
	signature      *string
	correlation_id *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditEntry, error)
	predicates     []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AuditEntryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AuditEntryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AuditEntryMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetService sets the "service" field.
func (m *AuditEntryMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *AuditEntryMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ResetService resets all changes to the "service" field.
func (m *AuditEntryMutation) ResetService() {
	m.service = nil
}

// SetAmount sets the "amount" field.
func (m *AuditEntryMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *AuditEntryMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *AuditEntryMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *AuditEntryMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *AuditEntryMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetStatus sets the "status" field.
func (m *AuditEntryMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditEntryMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditEntryMutation) ResetStatus() {
	m.status = nil
}

// SetWindow sets the "window" field.
func (m *AuditEntryMutation) SetWindow(s string) {
	m.window = &s
}

// Window returns the value of the "window" field in the mutation.
func (m *AuditEntryMutation) Window() (r string, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// ResetWindow resets all changes to the "window" field.
func (m *AuditEntryMutation) ResetWindow() {
	m.window = nil
}

// SetMetadata sets the "metadata" field.
func (m *AuditEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditentry.FieldMetadata)
}

// SetSignature sets the "signature" field.
func (m *AuditEntryMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *AuditEntryMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ResetSignature resets all changes to the "signature" field.
func (m *AuditEntryMutation) ResetSignature() {
	m.signature = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AuditEntryMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AuditEntryMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *AuditEntryMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[auditentry.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *AuditEntryMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AuditEntryMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, auditentry.FieldCorrelationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.agent_id != nil {
		fields = append(fields, auditentry.FieldAgentID)
	}
	if m.service != nil {
		fields = append(fields, auditentry.FieldService)
	}
	if m.amount != nil {
		fields = append(fields, auditentry.FieldAmount)
	}
	if m.status != nil {
		fields = append(fields, auditentry.FieldStatus)
	}
	if m.window != nil {
		fields = append(fields, auditentry.FieldWindow)
	}
	if m.metadata != nil {
		fields = append(fields, auditentry.FieldMetadata)
	}
	if m.signature != nil {
		fields = append(fields, auditentry.FieldSignature)
	}
	if m.correlation_id != nil {
		fields = append(fields, auditentry.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldAgentID:
		return m.AgentID()
	case auditentry.FieldService:
		return m.Service()
	case auditentry.FieldAmount:
		return m.Amount()
	case auditentry.FieldStatus:
		return m.Status()
	case auditentry.FieldWindow:
		return m.Window()
	case auditentry.FieldMetadata:
		return m.Metadata()
	case auditentry.FieldSignature:
		return m.Signature()
	case auditentry.FieldCorrelationID:
		return m.CorrelationID()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case auditentry.FieldService:
		return m.OldService(ctx)
	case auditentry.FieldAmount:
		return m.OldAmount(ctx)
	case auditentry.FieldStatus:
		return m.OldStatus(ctx)
	case auditentry.FieldWindow:
		return m.OldWindow(ctx)
	case auditentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditentry.FieldSignature:
		return m.OldSignature(ctx)
	case auditentry.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case auditentry.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case auditentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case auditentry.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditentry.FieldWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case auditentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditentry.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case auditentry.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, auditentry.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldMetadata) {
		fields = append(fields, auditentry.FieldMetadata)
	}
	if m.FieldCleared(auditentry.FieldCorrelationID) {
		fields = append(fields, auditentry.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	case auditentry.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case auditentry.FieldService:
		m.ResetService()
		return nil
	case auditentry.FieldAmount:
		m.ResetAmount()
		return nil
	case auditentry.FieldStatus:
		m.ResetStatus()
		return nil
	case auditentry.FieldWindow:
		m.ResetWindow()
		return nil
	case auditentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditentry.FieldSignature:
		m.ResetSignature()
		return nil
	case auditentry.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// BudgetLedgerMutation represents an operation that mutates the BudgetLedger nodes in the graph.
type BudgetLedgerMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	monthly_limit            *float64
	addmonthly_limit         *float64
	monthly_spend            *float64
	addmonthly_spend         *float64
	window                   *string
	per_transaction_alert    *float64
	addper_transaction_alert *float64
	require_manual_above     *float64
	addrequire_manual_above  *float64
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*BudgetLedger, error)
	predicates               []predicate.BudgetLedger
}

var _ ent.Mutation = (*BudgetLedgerMutation)(nil)

// budgetledgerOption allows management of the mutation configuration using functional options.
type budgetledgerOption func(*BudgetLedgerMutation)

// newBudgetLedgerMutation creates new mutation for the BudgetLedger entity.
func newBudgetLedgerMutation(c config, op Op, opts ...budgetledgerOption) *BudgetLedgerMutation {
	m := &BudgetLedgerMutation{
		config:        c,
		op:            op,
		typ:           TypeBudgetLedger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetLedgerID sets the ID field of the mutation.
func withBudgetLedgerID(id string) budgetledgerOption {
	return func(m *BudgetLedgerMutation) {
		var (
			err   error
			once  sync.Once
			value *BudgetLedger
		)
		m.oldValue = func(ctx context.Context) (*BudgetLedger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BudgetLedger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudgetLedger sets the old BudgetLedger of the mutation.
func withBudgetLedger(node *BudgetLedger) budgetledgerOption {
	return func(m *BudgetLedgerMutation) {
		m.oldValue = func(context.Context) (*BudgetLedger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetLedgerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetLedgerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BudgetLedger entities.
func (m *BudgetLedgerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetLedgerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetLedgerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BudgetLedger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMonthlyLimit sets the "monthly_limit" field.
func (m *BudgetLedgerMutation) SetMonthlyLimit(f float64) {
	m.monthly_limit = &f
	m.addmonthly_limit = nil
}

// MonthlyLimit returns the value of the "monthly_limit" field in the mutation.
func (m *BudgetLedgerMutation) MonthlyLimit() (r float64, exists bool) {
	v := m.monthly_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyLimit returns the old "monthly_limit" field's value of the BudgetLedger entity.
// If the BudgetLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetLedgerMutation) OldMonthlyLimit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyLimit: %w", err)
	}
	return oldValue.MonthlyLimit, nil
}

// AddMonthlyLimit adds f to the "monthly_limit" field.
func (m *BudgetLedgerMutation) AddMonthlyLimit(f float64) {
	if m.addmonthly_limit != nil {
		*m.addmonthly_limit += f
	} else {
		m.addmonthly_limit = &f
	}
}

// AddedMonthlyLimit returns the value that was added to the "monthly_limit" field in this mutation.
func (m *BudgetLedgerMutation) AddedMonthlyLimit() (r float64, exists bool) {
	v := m.addmonthly_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyLimit resets all changes to the "monthly_limit" field.
func (m *BudgetLedgerMutation) ResetMonthlyLimit() {
	m.monthly_limit = nil
	m.addmonthly_limit = nil
}

// SetMonthlySpend sets the "monthly_spend" field.
func (m *BudgetLedgerMutation) SetMonthlySpend(f float64) {
	m.monthly_spend = &f
	m.addmonthly_spend = nil
}

// MonthlySpend returns the value of the "monthly_spend" field in the mutation.
func (m *BudgetLedgerMutation) MonthlySpend() (r float64, exists bool) {
	v := m.monthly_spend
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlySpend returns the old "monthly_spend" field's value of the BudgetLedger entity.
// If the BudgetLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetLedgerMutation) OldMonthlySpend(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlySpend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlySpend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlySpend: %w", err)
	}
	return oldValue.MonthlySpend, nil
}

// AddMonthlySpend adds f to the "monthly_spend" field.
func (m *BudgetLedgerMutation) AddMonthlySpend(f float64) {
	if m.addmonthly_spend != nil {
		*m.addmonthly_spend += f
	} else {
		m.addmonthly_spend = &f
	}
}

// AddedMonthlySpend returns the value that was added to the "monthly_spend" field in this mutation.
func (m *BudgetLedgerMutation) AddedMonthlySpend() (r float64, exists bool) {
	v := m.addmonthly_spend
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlySpend resets all changes to the "monthly_spend" field.
func (m *BudgetLedgerMutation) ResetMonthlySpend() {
	m.monthly_spend = nil
	m.addmonthly_spend = nil
}

// SetWindow sets the "window" field.
func (m *BudgetLedgerMutation) SetWindow(s string) {
	m.window = &s
}

// Window returns the value of the "window" field in the mutation.
func (m *BudgetLedgerMutation) Window() (r string, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the BudgetLedger entity.
// If the BudgetLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetLedgerMutation) OldWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// ResetWindow resets all changes to the "window" field.
func (m *BudgetLedgerMutation) ResetWindow() {
	m.window = nil
}

// SetPerTransactionAlert sets the "per_transaction_alert" field.
func (m *BudgetLedgerMutation) SetPerTransactionAlert(f float64) {
	m.per_transaction_alert = &f
	m.addper_transaction_alert = nil
}

// PerTransactionAlert returns the value of the "per_transaction_alert" field in the mutation.
func (m *BudgetLedgerMutation) PerTransactionAlert() (r float64, exists bool) {
	v := m.per_transaction_alert
	if v == nil {
		return
	}
	return *v, true
}

// OldPerTransactionAlert returns the old "per_transaction_alert" field's value of the BudgetLedger entity.
// If the BudgetLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetLedgerMutation) OldPerTransactionAlert(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerTransactionAlert is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerTransactionAlert requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerTransactionAlert: %w", err)
	}
	return oldValue.PerTransactionAlert, nil
}

// AddPerTransactionAlert adds f to the "per_transaction_alert" field.
func (m *BudgetLedgerMutation) AddPerTransactionAlert(f float64) {
	if m.addper_transaction_alert != nil {
		*m.addper_transaction_alert += f
	} else {
		m.addper_transaction_alert = &f
	}
}

// AddedPerTransactionAlert returns the value that was added to the "per_transaction_alert" field in this mutation.
func (m *BudgetLedgerMutation) AddedPerTransactionAlert() (r float64, exists bool) {
	v := m.addper_transaction_alert
	if v == nil {
		return
	}
	return *v, true
}

// ResetPerTransactionAlert resets all changes to the "per_transaction_alert" field.
func (m *BudgetLedgerMutation) ResetPerTransactionAlert() {
	m.per_transaction_alert = nil
	m.addper_transaction_alert = nil
}

// SetRequireManualAbove sets the "require_manual_above" field.
func (m *BudgetLedgerMutation) SetRequireManualAbove(f float64) {
	m.require_manual_above = &f
	m.addrequire_manual_above = nil
}

// RequireManualAbove returns the value of the "require_manual_above" field in the mutation.
func (m *BudgetLedgerMutation) RequireManualAbove() (r float64, exists bool) {
	v := m.require_manual_above
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireManualAbove returns the old "require_manual_above" field's value of the BudgetLedger entity.
// If the BudgetLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetLedgerMutation) OldRequireManualAbove(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireManualAbove is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireManualAbove requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireManualAbove: %w", err)
	}
	return oldValue.RequireManualAbove, nil
}

// AddRequireManualAbove adds f to the "require_manual_above" field.
func (m *BudgetLedgerMutation) AddRequireManualAbove(f float64) {
	if m.addrequire_manual_above != nil {
		*m.addrequire_manual_above += f
	} else {
		m.addrequire_manual_above = &f
	}
}

// AddedRequireManualAbove returns the value that was added to the "require_manual_above" field in this mutation.
func (m *BudgetLedgerMutation) AddedRequireManualAbove() (r float64, exists bool) {
	v := m.addrequire_manual_above
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequireManualAbove resets all changes to the "require_manual_above" field.
func (m *BudgetLedgerMutation) ResetRequireManualAbove() {
	m.require_manual_above = nil
	m.addrequire_manual_above = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BudgetLedgerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BudgetLedgerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BudgetLedger entity.
// If the BudgetLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetLedgerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BudgetLedgerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BudgetLedgerMutation builder.
func (m *BudgetLedgerMutation) Where(ps ...predicate.BudgetLedger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetLedgerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetLedgerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BudgetLedger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetLedgerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetLedgerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BudgetLedger).
func (m *BudgetLedgerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetLedgerMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.monthly_limit != nil {
		fields = append(fields, budgetledger.FieldMonthlyLimit)
	}
	if m.monthly_spend != nil {
		fields = append(fields, budgetledger.FieldMonthlySpend)
	}
	if m.window != nil {
		fields = append(fields, budgetledger.FieldWindow)
	}
	if m.per_transaction_alert != nil {
		fields = append(fields, budgetledger.FieldPerTransactionAlert)
	}
	if m.require_manual_above != nil {
		fields = append(fields, budgetledger.FieldRequireManualAbove)
	}
	if m.updated_at != nil {
		fields = append(fields, budgetledger.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetLedgerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budgetledger.FieldMonthlyLimit:
		return m.MonthlyLimit()
	case budgetledger.FieldMonthlySpend:
		return m.MonthlySpend()
	case budgetledger.FieldWindow:
		return m.Window()
	case budgetledger.FieldPerTransactionAlert:
		return m.PerTransactionAlert()
	case budgetledger.FieldRequireManualAbove:
		return m.RequireManualAbove()
	case budgetledger.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetLedgerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budgetledger.FieldMonthlyLimit:
		return m.OldMonthlyLimit(ctx)
	case budgetledger.FieldMonthlySpend:
		return m.OldMonthlySpend(ctx)
	case budgetledger.FieldWindow:
		return m.OldWindow(ctx)
	case budgetledger.FieldPerTransactionAlert:
		return m.OldPerTransactionAlert(ctx)
	case budgetledger.FieldRequireManualAbove:
		return m.OldRequireManualAbove(ctx)
	case budgetledger.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BudgetLedger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetLedgerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budgetledger.FieldMonthlyLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyLimit(v)
		return nil
	case budgetledger.FieldMonthlySpend:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlySpend(v)
		return nil
	case budgetledger.FieldWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case budgetledger.FieldPerTransactionAlert:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerTransactionAlert(v)
		return nil
	case budgetledger.FieldRequireManualAbove:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireManualAbove(v)
		return nil
	case budgetledger.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetLedger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetLedgerMutation) AddedFields() []string {
	var fields []string
	if m.addmonthly_limit != nil {
		fields = append(fields, budgetledger.FieldMonthlyLimit)
	}
	if m.addmonthly_spend != nil {
		fields = append(fields, budgetledger.FieldMonthlySpend)
	}
	if m.addper_transaction_alert != nil {
		fields = append(fields, budgetledger.FieldPerTransactionAlert)
	}
	if m.addrequire_manual_above != nil {
		fields = append(fields, budgetledger.FieldRequireManualAbove)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetLedgerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budgetledger.FieldMonthlyLimit:
		return m.AddedMonthlyLimit()
	case budgetledger.FieldMonthlySpend:
		return m.AddedMonthlySpend()
	case budgetledger.FieldPerTransactionAlert:
		return m.AddedPerTransactionAlert()
	case budgetledger.FieldRequireManualAbove:
		return m.AddedRequireManualAbove()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetLedgerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budgetledger.FieldMonthlyLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyLimit(v)
		return nil
	case budgetledger.FieldMonthlySpend:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlySpend(v)
		return nil
	case budgetledger.FieldPerTransactionAlert:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerTransactionAlert(v)
		return nil
	case budgetledger.FieldRequireManualAbove:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequireManualAbove(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetLedger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetLedgerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetLedgerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetLedgerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BudgetLedger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetLedgerMutation) ResetField(name string) error {
	switch name {
	case budgetledger.FieldMonthlyLimit:
		m.ResetMonthlyLimit()
		return nil
	case budgetledger.FieldMonthlySpend:
		m.ResetMonthlySpend()
		return nil
	case budgetledger.FieldWindow:
		m.ResetWindow()
		return nil
	case budgetledger.FieldPerTransactionAlert:
		m.ResetPerTransactionAlert()
		return nil
	case budgetledger.FieldRequireManualAbove:
		m.ResetRequireManualAbove()
		return nil
	case budgetledger.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BudgetLedger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetLedgerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetLedgerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetLedgerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetLedgerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetLedgerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetLedgerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetLedgerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BudgetLedger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetLedgerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BudgetLedger edge %s", name)
}

// EvolutionAttemptMutation represents an operation that mutates the EvolutionAttempt nodes in the graph.
type EvolutionAttemptMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_type           *string
	parent_version       *string
	improvement_type     *evolutionattempt.ImprovementType
	diagnosis            *string
	proposed_changes     *string
	metrics_before       *map[string]float64
	metrics_after        *map[string]float64
	improvement_delta    *float64
	addimprovement_delta *float64
	rubric_reward        *float64
	addrubric_reward     *float64
	accepted             *bool
	generation           *int
	addgeneration        *int
	sandbox_logs         *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*EvolutionAttempt, error)
	predicates           []predicate.EvolutionAttempt
}

var _ ent.Mutation = (*EvolutionAttemptMutation)(nil)

// evolutionattemptOption allows management of the mutation configuration using functional options.
type evolutionattemptOption func(*EvolutionAttemptMutation)

// newEvolutionAttemptMutation creates new mutation for the EvolutionAttempt entity.
func newEvolutionAttemptMutation(c config, op Op, opts ...evolutionattemptOption) *EvolutionAttemptMutation {
	m := &EvolutionAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeEvolutionAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvolutionAttemptID sets the ID field of the mutation.
func withEvolutionAttemptID(id string) evolutionattemptOption {
	return func(m *EvolutionAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *EvolutionAttempt
		)
		m.oldValue = func(ctx context.Context) (*EvolutionAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvolutionAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvolutionAttempt sets the old EvolutionAttempt of the mutation.
func withEvolutionAttempt(node *EvolutionAttempt) evolutionattemptOption {
	return func(m *EvolutionAttemptMutation) {
		m.oldValue = func(context.Context) (*EvolutionAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvolutionAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvolutionAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvolutionAttempt entities.
func (m *EvolutionAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvolutionAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvolutionAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvolutionAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *EvolutionAttemptMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *EvolutionAttemptMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *EvolutionAttemptMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetParentVersion sets the "parent_version" field.
func (m *EvolutionAttemptMutation) SetParentVersion(s string) {
	m.parent_version = &s
}

// ParentVersion returns the value of the "parent_version" field in the mutation.
func (m *EvolutionAttemptMutation) ParentVersion() (r string, exists bool) {
	v := m.parent_version
	if v == nil {
		return
	}
	return *v, true
}

// OldParentVersion returns the old "parent_version" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldParentVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentVersion: %w", err)
	}
	return oldValue.ParentVersion, nil
}

// ResetParentVersion resets all changes to the "parent_version" field.
func (m *EvolutionAttemptMutation) ResetParentVersion() {
	m.parent_version = nil
}

// SetImprovementType sets the "improvement_type" field.
func (m *EvolutionAttemptMutation) SetImprovementType(et evolutionattempt.ImprovementType) {
	m.improvement_type = &et
}

// ImprovementType returns the value of the "improvement_type" field in the mutation.
func (m *EvolutionAttemptMutation) ImprovementType() (r evolutionattempt.ImprovementType, exists bool) {
	v := m.improvement_type
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementType returns the old "improvement_type" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldImprovementType(ctx context.Context) (v evolutionattempt.ImprovementType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementType: %w", err)
	}
	return oldValue.ImprovementType, nil
}

// ResetImprovementType resets all changes to the "improvement_type" field.
func (m *EvolutionAttemptMutation) ResetImprovementType() {
	m.improvement_type = nil
}

// SetDiagnosis sets the "diagnosis" field.
func (m *EvolutionAttemptMutation) SetDiagnosis(s string) {
	m.diagnosis = &s
}

// Diagnosis returns the value of the "diagnosis" field in the mutation.
func (m *EvolutionAttemptMutation) Diagnosis() (r string, exists bool) {
	v := m.diagnosis
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosis returns the old "diagnosis" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldDiagnosis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosis: %w", err)
	}
	return oldValue.Diagnosis, nil
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (m *EvolutionAttemptMutation) ClearDiagnosis() {
	m.diagnosis = nil
	m.clearedFields[evolutionattempt.FieldDiagnosis] = struct{}{}
}

// DiagnosisCleared returns if the "diagnosis" field was cleared in this mutation.
func (m *EvolutionAttemptMutation) DiagnosisCleared() bool {
	_, ok := m.clearedFields[evolutionattempt.FieldDiagnosis]
	return ok
}

// ResetDiagnosis resets all changes to the "diagnosis" field.
func (m *EvolutionAttemptMutation) ResetDiagnosis() {
	m.diagnosis = nil
	delete(m.clearedFields, evolutionattempt.FieldDiagnosis)
}

// SetProposedChanges sets the "proposed_changes" field.
func (m *EvolutionAttemptMutation) SetProposedChanges(s string) {
	m.proposed_changes = &s
}

// ProposedChanges returns the value of the "proposed_changes" field in the mutation.
func (m *EvolutionAttemptMutation) ProposedChanges() (r string, exists bool) {
	v := m.proposed_changes
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedChanges returns the old "proposed_changes" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldProposedChanges(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedChanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedChanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedChanges: %w", err)
	}
	return oldValue.ProposedChanges, nil
}

// ClearProposedChanges clears the value of the "proposed_changes" field.
func (m *EvolutionAttemptMutation) ClearProposedChanges() {
	m.proposed_changes = nil
	m.clearedFields[evolutionattempt.FieldProposedChanges] = struct{}{}
}

// ProposedChangesCleared returns if the "proposed_changes" field was cleared in this mutation.
func (m *EvolutionAttemptMutation) ProposedChangesCleared() bool {
	_, ok := m.clearedFields[evolutionattempt.FieldProposedChanges]
	return ok
}

// ResetProposedChanges resets all changes to the "proposed_changes" field.
func (m *EvolutionAttemptMutation) ResetProposedChanges() {
	m.proposed_changes = nil
	delete(m.clearedFields, evolutionattempt.FieldProposedChanges)
}

// SetMetricsBefore sets the "metrics_before" field.
func (m *EvolutionAttemptMutation) SetMetricsBefore(value map[string]float64) {
	m.metrics_before = &value
}

// MetricsBefore returns the value of the "metrics_before" field in the mutation.
func (m *EvolutionAttemptMutation) MetricsBefore() (r map[string]float64, exists bool) {
	v := m.metrics_before
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricsBefore returns the old "metrics_before" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldMetricsBefore(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricsBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricsBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricsBefore: %w", err)
	}
	return oldValue.MetricsBefore, nil
}

// ClearMetricsBefore clears the value of the "metrics_before" field.
func (m *EvolutionAttemptMutation) ClearMetricsBefore() {
	m.metrics_before = nil
	m.clearedFields[evolutionattempt.FieldMetricsBefore] = struct{}{}
}

// MetricsBeforeCleared returns if the "metrics_before" field was cleared in this mutation.
func (m *EvolutionAttemptMutation) MetricsBeforeCleared() bool {
	_, ok := m.clearedFields[evolutionattempt.FieldMetricsBefore]
	return ok
}

// ResetMetricsBefore resets all changes to the "metrics_before" field.
func (m *EvolutionAttemptMutation) ResetMetricsBefore() {
	m.metrics_before = nil
	delete(m.clearedFields, evolutionattempt.FieldMetricsBefore)
}

// SetMetricsAfter sets the "metrics_after" field.
func (m *EvolutionAttemptMutation) SetMetricsAfter(value map[string]float64) {
	m.metrics_after = &value
}

// MetricsAfter returns the value of the "metrics_after" field in the mutation.
func (m *EvolutionAttemptMutation) MetricsAfter() (r map[string]float64, exists bool) {
	v := m.metrics_after
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricsAfter returns the old "metrics_after" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldMetricsAfter(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricsAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricsAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricsAfter: %w", err)
	}
	return oldValue.MetricsAfter, nil
}

// ClearMetricsAfter clears the value of the "metrics_after" field.
func (m *EvolutionAttemptMutation) ClearMetricsAfter() {
	m.metrics_after = nil
	m.clearedFields[evolutionattempt.FieldMetricsAfter] = struct{}{}
}

// MetricsAfterCleared returns if the "metrics_after" field was cleared in this mutation.
func (m *EvolutionAttemptMutation) MetricsAfterCleared() bool {
	_, ok := m.clearedFields[evolutionattempt.FieldMetricsAfter]
	return ok
}

// ResetMetricsAfter resets all changes to the "metrics_after" field.
func (m *EvolutionAttemptMutation) ResetMetricsAfter() {
	m.metrics_after = nil
	delete(m.clearedFields, evolutionattempt.FieldMetricsAfter)
}

// SetImprovementDelta sets the "improvement_delta" field.
func (m *EvolutionAttemptMutation) SetImprovementDelta(f float64) {
	m.improvement_delta = &f
	m.addimprovement_delta = nil
}

// ImprovementDelta returns the value of the "improvement_delta" field in the mutation.
func (m *EvolutionAttemptMutation) ImprovementDelta() (r float64, exists bool) {
	v := m.improvement_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementDelta returns the old "improvement_delta" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldImprovementDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementDelta: %w", err)
	}
	return oldValue.ImprovementDelta, nil
}

// AddImprovementDelta adds f to the "improvement_delta" field.
func (m *EvolutionAttemptMutation) AddImprovementDelta(f float64) {
	if m.addimprovement_delta != nil {
		*m.addimprovement_delta += f
	} else {
		m.addimprovement_delta = &f
	}
}

// AddedImprovementDelta returns the value that was added to the "improvement_delta" field in this mutation.
func (m *EvolutionAttemptMutation) AddedImprovementDelta() (r float64, exists bool) {
	v := m.addimprovement_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetImprovementDelta resets all changes to the "improvement_delta" field.
func (m *EvolutionAttemptMutation) ResetImprovementDelta() {
	m.improvement_delta = nil
	m.addimprovement_delta = nil
}

// SetRubricReward sets the "rubric_reward" field.
func (m *EvolutionAttemptMutation) SetRubricReward(f float64) {
	m.rubric_reward = &f
	m.addrubric_reward = nil
}

// RubricReward returns the value of the "rubric_reward" field in the mutation.
func (m *EvolutionAttemptMutation) RubricReward() (r float64, exists bool) {
	v := m.rubric_reward
	if v == nil {
		return
	}
	return *v, true
}

// OldRubricReward returns the old "rubric_reward" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldRubricReward(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRubricReward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRubricReward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRubricReward: %w", err)
	}
	return oldValue.RubricReward, nil
}

// AddRubricReward adds f to the "rubric_reward" field.
func (m *EvolutionAttemptMutation) AddRubricReward(f float64) {
	if m.addrubric_reward != nil {
		*m.addrubric_reward += f
	} else {
		m.addrubric_reward = &f
	}
}

// AddedRubricReward returns the value that was added to the "rubric_reward" field in this mutation.
func (m *EvolutionAttemptMutation) AddedRubricReward() (r float64, exists bool) {
	v := m.addrubric_reward
	if v == nil {
		return
	}
	return *v, true
}

// ResetRubricReward resets all changes to the "rubric_reward" field.
func (m *EvolutionAttemptMutation) ResetRubricReward() {
	m.rubric_reward = nil
	m.addrubric_reward = nil
}

// SetAccepted sets the "accepted" field.
func (m *EvolutionAttemptMutation) SetAccepted(b bool) {
	m.accepted = &b
}

// Accepted returns the value of the "accepted" field in the mutation.
func (m *EvolutionAttemptMutation) Accepted() (r bool, exists bool) {
	v := m.accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccepted returns the old "accepted" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldAccepted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccepted: %w", err)
	}
	return oldValue.Accepted, nil
}

// ResetAccepted resets all changes to the "accepted" field.
func (m *EvolutionAttemptMutation) ResetAccepted() {
	m.accepted = nil
}

// SetGeneration sets the "generation" field.
func (m *EvolutionAttemptMutation) SetGeneration(i int) {
	m.generation = &i
	m.addgeneration = nil
}

// Generation returns the value of the "generation" field in the mutation.
func (m *EvolutionAttemptMutation) Generation() (r int, exists bool) {
	v := m.generation
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneration returns the old "generation" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldGeneration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneration: %w", err)
	}
	return oldValue.Generation, nil
}

// AddGeneration adds i to the "generation" field.
func (m *EvolutionAttemptMutation) AddGeneration(i int) {
	if m.addgeneration != nil {
		*m.addgeneration += i
	} else {
		m.addgeneration = &i
	}
}

// AddedGeneration returns the value that was added to the "generation" field in this mutation.
func (m *EvolutionAttemptMutation) AddedGeneration() (r int, exists bool) {
	v := m.addgeneration
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeneration resets all changes to the "generation" field.
func (m *EvolutionAttemptMutation) ResetGeneration() {
	m.generation = nil
	m.addgeneration = nil
}

// SetSandboxLogs sets the "sandbox_logs" field.
func (m *EvolutionAttemptMutation) SetSandboxLogs(s string) {
	m.sandbox_logs = &s
}

// SandboxLogs returns the value of the "sandbox_logs" field in the mutation.
func (m *EvolutionAttemptMutation) SandboxLogs() (r string, exists bool) {
	v := m.sandbox_logs
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxLogs returns the old "sandbox_logs" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldSandboxLogs(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxLogs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxLogs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxLogs: %w", err)
	}
	return oldValue.SandboxLogs, nil
}

// ClearSandboxLogs clears the value of the "sandbox_logs" field.
func (m *EvolutionAttemptMutation) ClearSandboxLogs() {
	m.sandbox_logs = nil
	m.clearedFields[evolutionattempt.FieldSandboxLogs] = struct{}{}
}

// SandboxLogsCleared returns if the "sandbox_logs" field was cleared in this mutation.
func (m *EvolutionAttemptMutation) SandboxLogsCleared() bool {
	_, ok := m.clearedFields[evolutionattempt.FieldSandboxLogs]
	return ok
}

// ResetSandboxLogs resets all changes to the "sandbox_logs" field.
func (m *EvolutionAttemptMutation) ResetSandboxLogs() {
	m.sandbox_logs = nil
	delete(m.clearedFields, evolutionattempt.FieldSandboxLogs)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvolutionAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvolutionAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvolutionAttempt entity.
// If the EvolutionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvolutionAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EvolutionAttemptMutation builder.
func (m *EvolutionAttemptMutation) Where(ps ...predicate.EvolutionAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvolutionAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvolutionAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvolutionAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvolutionAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvolutionAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvolutionAttempt).
func (m *EvolutionAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvolutionAttemptMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_type != nil {
		fields = append(fields, evolutionattempt.FieldAgentType)
	}
	if m.parent_version != nil {
		fields = append(fields, evolutionattempt.FieldParentVersion)
	}
	if m.improvement_type != nil {
		fields = append(fields, evolutionattempt.FieldImprovementType)
	}
	if m.diagnosis != nil {
		fields = append(fields, evolutionattempt.FieldDiagnosis)
	}
	if m.proposed_changes != nil {
		fields = append(fields, evolutionattempt.FieldProposedChanges)
	}
	if m.metrics_before != nil {
		fields = append(fields, evolutionattempt.FieldMetricsBefore)
	}
	if m.metrics_after != nil {
		fields = append(fields, evolutionattempt.FieldMetricsAfter)
	}
	if m.improvement_delta != nil {
		fields = append(fields, evolutionattempt.FieldImprovementDelta)
	}
	if m.rubric_reward != nil {
		fields = append(fields, evolutionattempt.FieldRubricReward)
	}
	if m.accepted != nil {
		fields = append(fields, evolutionattempt.FieldAccepted)
	}
	if m.generation != nil {
		fields = append(fields, evolutionattempt.FieldGeneration)
	}
	if m.sandbox_logs != nil {
		fields = append(fields, evolutionattempt.FieldSandboxLogs)
	}
	if m.created_at != nil {
		fields = append(fields, evolutionattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvolutionAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evolutionattempt.FieldAgentType:
		return m.AgentType()
	case evolutionattempt.FieldParentVersion:
		return m.ParentVersion()
	case evolutionattempt.FieldImprovementType:
		return m.ImprovementType()
	case evolutionattempt.FieldDiagnosis:
		return m.Diagnosis()
	case evolutionattempt.FieldProposedChanges:
		return m.ProposedChanges()
	case evolutionattempt.FieldMetricsBefore:
		return m.MetricsBefore()
	case evolutionattempt.FieldMetricsAfter:
		return m.MetricsAfter()
	case evolutionattempt.FieldImprovementDelta:
		return m.ImprovementDelta()
	case evolutionattempt.FieldRubricReward:
		return m.RubricReward()
	case evolutionattempt.FieldAccepted:
		return m.Accepted()
	case evolutionattempt.FieldGeneration:
		return m.Generation()
	case evolutionattempt.FieldSandboxLogs:
		return m.SandboxLogs()
	case evolutionattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvolutionAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evolutionattempt.FieldAgentType:
		return m.OldAgentType(ctx)
	case evolutionattempt.FieldParentVersion:
		return m.OldParentVersion(ctx)
	case evolutionattempt.FieldImprovementType:
		return m.OldImprovementType(ctx)
	case evolutionattempt.FieldDiagnosis:
		return m.OldDiagnosis(ctx)
	case evolutionattempt.FieldProposedChanges:
		return m.OldProposedChanges(ctx)
	case evolutionattempt.FieldMetricsBefore:
		return m.OldMetricsBefore(ctx)
	case evolutionattempt.FieldMetricsAfter:
		return m.OldMetricsAfter(ctx)
	case evolutionattempt.FieldImprovementDelta:
		return m.OldImprovementDelta(ctx)
	case evolutionattempt.FieldRubricReward:
		return m.OldRubricReward(ctx)
	case evolutionattempt.FieldAccepted:
		return m.OldAccepted(ctx)
	case evolutionattempt.FieldGeneration:
		return m.OldGeneration(ctx)
	case evolutionattempt.FieldSandboxLogs:
		return m.OldSandboxLogs(ctx)
	case evolutionattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvolutionAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvolutionAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evolutionattempt.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case evolutionattempt.FieldParentVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentVersion(v)
		return nil
	case evolutionattempt.FieldImprovementType:
		v, ok := value.(evolutionattempt.ImprovementType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementType(v)
		return nil
	case evolutionattempt.FieldDiagnosis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosis(v)
		return nil
	case evolutionattempt.FieldProposedChanges:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedChanges(v)
		return nil
	case evolutionattempt.FieldMetricsBefore:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricsBefore(v)
		return nil
	case evolutionattempt.FieldMetricsAfter:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricsAfter(v)
		return nil
	case evolutionattempt.FieldImprovementDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementDelta(v)
		return nil
	case evolutionattempt.FieldRubricReward:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRubricReward(v)
		return nil
	case evolutionattempt.FieldAccepted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccepted(v)
		return nil
	case evolutionattempt.FieldGeneration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneration(v)
		return nil
	case evolutionattempt.FieldSandboxLogs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxLogs(v)
		return nil
	case evolutionattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvolutionAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvolutionAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addimprovement_delta != nil {
		fields = append(fields, evolutionattempt.FieldImprovementDelta)
	}
	if m.addrubric_reward != nil {
		fields = append(fields, evolutionattempt.FieldRubricReward)
	}
	if m.addgeneration != nil {
		fields = append(fields, evolutionattempt.FieldGeneration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvolutionAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evolutionattempt.FieldImprovementDelta:
		return m.AddedImprovementDelta()
	case evolutionattempt.FieldRubricReward:
		return m.AddedRubricReward()
	case evolutionattempt.FieldGeneration:
		return m.AddedGeneration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvolutionAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evolutionattempt.FieldImprovementDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImprovementDelta(v)
		return nil
	case evolutionattempt.FieldRubricReward:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRubricReward(v)
		return nil
	case evolutionattempt.FieldGeneration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeneration(v)
		return nil
	}
	return fmt.Errorf("unknown EvolutionAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvolutionAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evolutionattempt.FieldDiagnosis) {
		fields = append(fields, evolutionattempt.FieldDiagnosis)
	}
	if m.FieldCleared(evolutionattempt.FieldProposedChanges) {
		fields = append(fields, evolutionattempt.FieldProposedChanges)
	}
	if m.FieldCleared(evolutionattempt.FieldMetricsBefore) {
		fields = append(fields, evolutionattempt.FieldMetricsBefore)
	}
	if m.FieldCleared(evolutionattempt.FieldMetricsAfter) {
		fields = append(fields, evolutionattempt.FieldMetricsAfter)
	}
	if m.FieldCleared(evolutionattempt.FieldSandboxLogs) {
		fields = append(fields, evolutionattempt.FieldSandboxLogs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvolutionAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvolutionAttemptMutation) ClearField(name string) error {
	switch name {
	case evolutionattempt.FieldDiagnosis:
		m.ClearDiagnosis()
		return nil
	case evolutionattempt.FieldProposedChanges:
		m.ClearProposedChanges()
		return nil
	case evolutionattempt.FieldMetricsBefore:
		m.ClearMetricsBefore()
		return nil
	case evolutionattempt.FieldMetricsAfter:
		m.ClearMetricsAfter()
		return nil
	case evolutionattempt.FieldSandboxLogs:
		m.ClearSandboxLogs()
		return nil
	}
	return fmt.Errorf("unknown EvolutionAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvolutionAttemptMutation) ResetField(name string) error {
	switch name {
	case evolutionattempt.FieldAgentType:
		m.ResetAgentType()
		return nil
	case evolutionattempt.FieldParentVersion:
		m.ResetParentVersion()
		return nil
	case evolutionattempt.FieldImprovementType:
		m.ResetImprovementType()
		return nil
	case evolutionattempt.FieldDiagnosis:
		m.ResetDiagnosis()
		return nil
	case evolutionattempt.FieldProposedChanges:
		m.ResetProposedChanges()
		return nil
	case evolutionattempt.FieldMetricsBefore:
		m.ResetMetricsBefore()
		return nil
	case evolutionattempt.FieldMetricsAfter:
		m.ResetMetricsAfter()
		return nil
	case evolutionattempt.FieldImprovementDelta:
		m.ResetImprovementDelta()
		return nil
	case evolutionattempt.FieldRubricReward:
		m.ResetRubricReward()
		return nil
	case evolutionattempt.FieldAccepted:
		m.ResetAccepted()
		return nil
	case evolutionattempt.FieldGeneration:
		m.ResetGeneration()
		return nil
	case evolutionattempt.FieldSandboxLogs:
		m.ResetSandboxLogs()
		return nil
	case evolutionattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvolutionAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvolutionAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvolutionAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvolutionAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvolutionAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvolutionAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvolutionAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvolutionAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvolutionAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvolutionAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvolutionAttempt edge %s", name)
}

// EvolutionPatternMutation represents an operation that mutates the EvolutionPattern nodes in the graph.
type EvolutionPatternMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_type           *string
	task_type            *string
	code_diff            *string
	strategy_description *string
	benchmark_score      *float64
	addbenchmark_score   *float64
	success_rate         *float64
	addsuccess_rate      *float64
	capabilities         *[]string
	appendcapabilities   []string
	source_agent         *string
	business_id          *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*EvolutionPattern, error)
	predicates           []predicate.EvolutionPattern
}

var _ ent.Mutation = (*EvolutionPatternMutation)(nil)

// evolutionpatternOption allows management of the mutation configuration using functional options.
type evolutionpatternOption func(*EvolutionPatternMutation)

// newEvolutionPatternMutation creates new mutation for the EvolutionPattern entity.
func newEvolutionPatternMutation(c config, op Op, opts ...evolutionpatternOption) *EvolutionPatternMutation {
	m := &EvolutionPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeEvolutionPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvolutionPatternID sets the ID field of the mutation.
func withEvolutionPatternID(id string) evolutionpatternOption {
	return func(m *EvolutionPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *EvolutionPattern
		)
		m.oldValue = func(ctx context.Context) (*EvolutionPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvolutionPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvolutionPattern sets the old EvolutionPattern of the mutation.
func withEvolutionPattern(node *EvolutionPattern) evolutionpatternOption {
	return func(m *EvolutionPatternMutation) {
		m.oldValue = func(context.Context) (*EvolutionPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvolutionPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvolutionPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvolutionPattern entities.
func (m *EvolutionPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvolutionPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvolutionPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvolutionPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *EvolutionPatternMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *EvolutionPatternMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *EvolutionPatternMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetTaskType sets the "task_type" field.
func (m *EvolutionPatternMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *EvolutionPatternMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *EvolutionPatternMutation) ResetTaskType() {
	m.task_type = nil
}

// SetCodeDiff sets the "code_diff" field.
func (m *EvolutionPatternMutation) SetCodeDiff(s string) {
	m.code_diff = &s
}

// CodeDiff returns the value of the "code_diff" field in the mutation.
func (m *EvolutionPatternMutation) CodeDiff() (r string, exists bool) {
	v := m.code_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeDiff returns the old "code_diff" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldCodeDiff(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeDiff: %w", err)
	}
	return oldValue.CodeDiff, nil
}

// ClearCodeDiff clears the value of the "code_diff" field.
func (m *EvolutionPatternMutation) ClearCodeDiff() {
	m.code_diff = nil
	m.clearedFields[evolutionpattern.FieldCodeDiff] = struct{}{}
}

// CodeDiffCleared returns if the "code_diff" field was cleared in this mutation.
func (m *EvolutionPatternMutation) CodeDiffCleared() bool {
	_, ok := m.clearedFields[evolutionpattern.FieldCodeDiff]
	return ok
}

// ResetCodeDiff resets all changes to the "code_diff" field.
func (m *EvolutionPatternMutation) ResetCodeDiff() {
	m.code_diff = nil
	delete(m.clearedFields, evolutionpattern.FieldCodeDiff)
}

// SetStrategyDescription sets the "strategy_description" field.
func (m *EvolutionPatternMutation) SetStrategyDescription(s string) {
	m.strategy_description = &s
}

// StrategyDescription returns the value of the "strategy_description" field in the mutation.
func (m *EvolutionPatternMutation) StrategyDescription() (r string, exists bool) {
	v := m.strategy_description
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyDescription returns the old "strategy_description" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldStrategyDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyDescription: %w", err)
	}
	return oldValue.StrategyDescription, nil
}

// ResetStrategyDescription resets all changes to the "strategy_description" field.
func (m *EvolutionPatternMutation) ResetStrategyDescription() {
	m.strategy_description = nil
}

// SetBenchmarkScore sets the "benchmark_score" field.
func (m *EvolutionPatternMutation) SetBenchmarkScore(f float64) {
	m.benchmark_score = &f
	m.addbenchmark_score = nil
}

// BenchmarkScore returns the value of the "benchmark_score" field in the mutation.
func (m *EvolutionPatternMutation) BenchmarkScore() (r float64, exists bool) {
	v := m.benchmark_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBenchmarkScore returns the old "benchmark_score" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldBenchmarkScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBenchmarkScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBenchmarkScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBenchmarkScore: %w", err)
	}
	return oldValue.BenchmarkScore, nil
}

// AddBenchmarkScore adds f to the "benchmark_score" field.
func (m *EvolutionPatternMutation) AddBenchmarkScore(f float64) {
	if m.addbenchmark_score != nil {
		*m.addbenchmark_score += f
	} else {
		m.addbenchmark_score = &f
	}
}

// AddedBenchmarkScore returns the value that was added to the "benchmark_score" field in this mutation.
func (m *EvolutionPatternMutation) AddedBenchmarkScore() (r float64, exists bool) {
	v := m.addbenchmark_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBenchmarkScore resets all changes to the "benchmark_score" field.
func (m *EvolutionPatternMutation) ResetBenchmarkScore() {
	m.benchmark_score = nil
	m.addbenchmark_score = nil
}

// SetSuccessRate sets the "success_rate" field.
func (m *EvolutionPatternMutation) SetSuccessRate(f float64) {
	m.success_rate = &f
	m.addsuccess_rate = nil
}

// SuccessRate returns the value of the "success_rate" field in the mutation.
func (m *EvolutionPatternMutation) SuccessRate() (r float64, exists bool) {
	v := m.success_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRate returns the old "success_rate" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldSuccessRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessRate: %w", err)
	}
	return oldValue.SuccessRate, nil
}

// AddSuccessRate adds f to the "success_rate" field.
func (m *EvolutionPatternMutation) AddSuccessRate(f float64) {
	if m.addsuccess_rate != nil {
		*m.addsuccess_rate += f
	} else {
		m.addsuccess_rate = &f
	}
}

// AddedSuccessRate returns the value that was added to the "success_rate" field in this mutation.
func (m *EvolutionPatternMutation) AddedSuccessRate() (r float64, exists bool) {
	v := m.addsuccess_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessRate resets all changes to the "success_rate" field.
func (m *EvolutionPatternMutation) ResetSuccessRate() {
	m.success_rate = nil
	m.addsuccess_rate = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *EvolutionPatternMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *EvolutionPatternMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *EvolutionPatternMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *EvolutionPatternMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *EvolutionPatternMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[evolutionpattern.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *EvolutionPatternMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[evolutionpattern.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *EvolutionPatternMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, evolutionpattern.FieldCapabilities)
}

// SetSourceAgent sets the "source_agent" field.
func (m *EvolutionPatternMutation) SetSourceAgent(s string) {
	m.source_agent = &s
}

// SourceAgent returns the value of the "source_agent" field in the mutation.
func (m *EvolutionPatternMutation) SourceAgent() (r string, exists bool) {
	v := m.source_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAgent returns the old "source_agent" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldSourceAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAgent: %w", err)
	}
	return oldValue.SourceAgent, nil
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (m *EvolutionPatternMutation) ClearSourceAgent() {
	m.source_agent = nil
	m.clearedFields[evolutionpattern.FieldSourceAgent] = struct{}{}
}

// SourceAgentCleared returns if the "source_agent" field was cleared in this mutation.
func (m *EvolutionPatternMutation) SourceAgentCleared() bool {
	_, ok := m.clearedFields[evolutionpattern.FieldSourceAgent]
	return ok
}

// ResetSourceAgent resets all changes to the "source_agent" field.
func (m *EvolutionPatternMutation) ResetSourceAgent() {
	m.source_agent = nil
	delete(m.clearedFields, evolutionpattern.FieldSourceAgent)
}

// SetBusinessID sets the "business_id" field.
func (m *EvolutionPatternMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *EvolutionPatternMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ClearBusinessID clears the value of the "business_id" field.
func (m *EvolutionPatternMutation) ClearBusinessID() {
	m.business_id = nil
	m.clearedFields[evolutionpattern.FieldBusinessID] = struct{}{}
}

// BusinessIDCleared returns if the "business_id" field was cleared in this mutation.
func (m *EvolutionPatternMutation) BusinessIDCleared() bool {
	_, ok := m.clearedFields[evolutionpattern.FieldBusinessID]
	return ok
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *EvolutionPatternMutation) ResetBusinessID() {
	m.business_id = nil
	delete(m.clearedFields, evolutionpattern.FieldBusinessID)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvolutionPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvolutionPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvolutionPattern entity.
// If the EvolutionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvolutionPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EvolutionPatternMutation builder.
func (m *EvolutionPatternMutation) Where(ps ...predicate.EvolutionPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvolutionPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvolutionPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvolutionPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvolutionPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvolutionPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvolutionPattern).
func (m *EvolutionPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvolutionPatternMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent_type != nil {
		fields = append(fields, evolutionpattern.FieldAgentType)
	}
	if m.task_type != nil {
		fields = append(fields, evolutionpattern.FieldTaskType)
	}
	if m.code_diff != nil {
		fields = append(fields, evolutionpattern.FieldCodeDiff)
	}
	if m.strategy_description != nil {
		fields = append(fields, evolutionpattern.FieldStrategyDescription)
	}
	if m.benchmark_score != nil {
		fields = append(fields, evolutionpattern.FieldBenchmarkScore)
	}
	if m.success_rate != nil {
		fields = append(fields, evolutionpattern.FieldSuccessRate)
	}
	if m.capabilities != nil {
		fields = append(fields, evolutionpattern.FieldCapabilities)
	}
	if m.source_agent != nil {
		fields = append(fields, evolutionpattern.FieldSourceAgent)
	}
	if m.business_id != nil {
		fields = append(fields, evolutionpattern.FieldBusinessID)
	}
	if m.created_at != nil {
		fields = append(fields, evolutionpattern.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvolutionPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evolutionpattern.FieldAgentType:
		return m.AgentType()
	case evolutionpattern.FieldTaskType:
		return m.TaskType()
	case evolutionpattern.FieldCodeDiff:
		return m.CodeDiff()
	case evolutionpattern.FieldStrategyDescription:
		return m.StrategyDescription()
	case evolutionpattern.FieldBenchmarkScore:
		return m.BenchmarkScore()
	case evolutionpattern.FieldSuccessRate:
		return m.SuccessRate()
	case evolutionpattern.FieldCapabilities:
		return m.Capabilities()
	case evolutionpattern.FieldSourceAgent:
		return m.SourceAgent()
	case evolutionpattern.FieldBusinessID:
		return m.BusinessID()
	case evolutionpattern.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvolutionPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evolutionpattern.FieldAgentType:
		return m.OldAgentType(ctx)
	case evolutionpattern.FieldTaskType:
		return m.OldTaskType(ctx)
	case evolutionpattern.FieldCodeDiff:
		return m.OldCodeDiff(ctx)
	case evolutionpattern.FieldStrategyDescription:
		return m.OldStrategyDescription(ctx)
	case evolutionpattern.FieldBenchmarkScore:
		return m.OldBenchmarkScore(ctx)
	case evolutionpattern.FieldSuccessRate:
		return m.OldSuccessRate(ctx)
	case evolutionpattern.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case evolutionpattern.FieldSourceAgent:
		return m.OldSourceAgent(ctx)
	case evolutionpattern.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case evolutionpattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvolutionPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvolutionPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evolutionpattern.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case evolutionpattern.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case evolutionpattern.FieldCodeDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeDiff(v)
		return nil
	case evolutionpattern.FieldStrategyDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyDescription(v)
		return nil
	case evolutionpattern.FieldBenchmarkScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBenchmarkScore(v)
		return nil
	case evolutionpattern.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRate(v)
		return nil
	case evolutionpattern.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case evolutionpattern.FieldSourceAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAgent(v)
		return nil
	case evolutionpattern.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case evolutionpattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvolutionPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvolutionPatternMutation) AddedFields() []string {
	var fields []string
	if m.addbenchmark_score != nil {
		fields = append(fields, evolutionpattern.FieldBenchmarkScore)
	}
	if m.addsuccess_rate != nil {
		fields = append(fields, evolutionpattern.FieldSuccessRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvolutionPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evolutionpattern.FieldBenchmarkScore:
		return m.AddedBenchmarkScore()
	case evolutionpattern.FieldSuccessRate:
		return m.AddedSuccessRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvolutionPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evolutionpattern.FieldBenchmarkScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBenchmarkScore(v)
		return nil
	case evolutionpattern.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRate(v)
		return nil
	}
	return fmt.Errorf("unknown EvolutionPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvolutionPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evolutionpattern.FieldCodeDiff) {
		fields = append(fields, evolutionpattern.FieldCodeDiff)
	}
	if m.FieldCleared(evolutionpattern.FieldCapabilities) {
		fields = append(fields, evolutionpattern.FieldCapabilities)
	}
	if m.FieldCleared(evolutionpattern.FieldSourceAgent) {
		fields = append(fields, evolutionpattern.FieldSourceAgent)
	}
	if m.FieldCleared(evolutionpattern.FieldBusinessID) {
		fields = append(fields, evolutionpattern.FieldBusinessID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvolutionPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvolutionPatternMutation) ClearField(name string) error {
	switch name {
	case evolutionpattern.FieldCodeDiff:
		m.ClearCodeDiff()
		return nil
	case evolutionpattern.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case evolutionpattern.FieldSourceAgent:
		m.ClearSourceAgent()
		return nil
	case evolutionpattern.FieldBusinessID:
		m.ClearBusinessID()
		return nil
	}
	return fmt.Errorf("unknown EvolutionPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvolutionPatternMutation) ResetField(name string) error {
	switch name {
	case evolutionpattern.FieldAgentType:
		m.ResetAgentType()
		return nil
	case evolutionpattern.FieldTaskType:
		m.ResetTaskType()
		return nil
	case evolutionpattern.FieldCodeDiff:
		m.ResetCodeDiff()
		return nil
	case evolutionpattern.FieldStrategyDescription:
		m.ResetStrategyDescription()
		return nil
	case evolutionpattern.FieldBenchmarkScore:
		m.ResetBenchmarkScore()
		return nil
	case evolutionpattern.FieldSuccessRate:
		m.ResetSuccessRate()
		return nil
	case evolutionpattern.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case evolutionpattern.FieldSourceAgent:
		m.ResetSourceAgent()
		return nil
	case evolutionpattern.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case evolutionpattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvolutionPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvolutionPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvolutionPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvolutionPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvolutionPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvolutionPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvolutionPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvolutionPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvolutionPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvolutionPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvolutionPattern edge %s", name)
}

// MemoryEntryMutation represents an operation that mutates the MemoryEntry nodes in the graph.
type MemoryEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_id       *string
	user_id        *string
	tier           *memoryentry.Tier
	memory_type    *string
	content        *string
	heat_score     *float64
	addheat_score  *float64
	visit_count    *int
	addvisit_count *int
	metadata       *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	expires_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*MemoryEntry, error)
	predicates     []predicate.MemoryEntry
}

var _ ent.Mutation = (*MemoryEntryMutation)(nil)

// memoryentryOption allows management of the mutation configuration using functional options.
type memoryentryOption func(*MemoryEntryMutation)

// newMemoryEntryMutation creates new mutation for the MemoryEntry entity.
func newMemoryEntryMutation(c config, op Op, opts ...memoryentryOption) *MemoryEntryMutation {
	m := &MemoryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryEntryID sets the ID field of the mutation.
func withMemoryEntryID(id string) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryEntry
		)
		m.oldValue = func(ctx context.Context) (*MemoryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryEntry sets the old MemoryEntry of the mutation.
func withMemoryEntry(node *MemoryEntry) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		m.oldValue = func(context.Context) (*MemoryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryEntry entities.
func (m *MemoryEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *MemoryEntryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *MemoryEntryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *MemoryEntryMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetUserID sets the "user_id" field.
func (m *MemoryEntryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MemoryEntryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MemoryEntryMutation) ResetUserID() {
	m.user_id = nil
}

// SetTier sets the "tier" field.
func (m *MemoryEntryMutation) SetTier(value memoryentry.Tier) {
	m.tier = &value
}

// Tier returns the value of the "tier" field in the mutation.
func (m *MemoryEntryMutation) Tier() (r memoryentry.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldTier(ctx context.Context) (v memoryentry.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *MemoryEntryMutation) ResetTier() {
	m.tier = nil
}

// SetMemoryType sets the "memory_type" field.
func (m *MemoryEntryMutation) SetMemoryType(s string) {
	m.memory_type = &s
}

// MemoryType returns the value of the "memory_type" field in the mutation.
func (m *MemoryEntryMutation) MemoryType() (r string, exists bool) {
	v := m.memory_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryType returns the old "memory_type" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldMemoryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryType: %w", err)
	}
	return oldValue.MemoryType, nil
}

// ResetMemoryType resets all changes to the "memory_type" field.
func (m *MemoryEntryMutation) ResetMemoryType() {
	m.memory_type = nil
}

// SetContent sets the "content" field.
func (m *MemoryEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryEntryMutation) ResetContent() {
	m.content = nil
}

// SetHeatScore sets the "heat_score" field.
func (m *MemoryEntryMutation) SetHeatScore(f float64) {
	m.heat_score = &f
	m.addheat_score = nil
}

// HeatScore returns the value of the "heat_score" field in the mutation.
func (m *MemoryEntryMutation) HeatScore() (r float64, exists bool) {
	v := m.heat_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHeatScore returns the old "heat_score" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldHeatScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeatScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeatScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeatScore: %w", err)
	}
	return oldValue.HeatScore, nil
}

// AddHeatScore adds f to the "heat_score" field.
func (m *MemoryEntryMutation) AddHeatScore(f float64) {
	if m.addheat_score != nil {
		*m.addheat_score += f
	} else {
		m.addheat_score = &f
	}
}

// AddedHeatScore returns the value that was added to the "heat_score" field in this mutation.
func (m *MemoryEntryMutation) AddedHeatScore() (r float64, exists bool) {
	v := m.addheat_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeatScore resets all changes to the "heat_score" field.
func (m *MemoryEntryMutation) ResetHeatScore() {
	m.heat_score = nil
	m.addheat_score = nil
}

// SetVisitCount sets the "visit_count" field.
func (m *MemoryEntryMutation) SetVisitCount(i int) {
	m.visit_count = &i
	m.addvisit_count = nil
}

// VisitCount returns the value of the "visit_count" field in the mutation.
func (m *MemoryEntryMutation) VisitCount() (r int, exists bool) {
	v := m.visit_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitCount returns the old "visit_count" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldVisitCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitCount: %w", err)
	}
	return oldValue.VisitCount, nil
}

// AddVisitCount adds i to the "visit_count" field.
func (m *MemoryEntryMutation) AddVisitCount(i int) {
	if m.addvisit_count != nil {
		*m.addvisit_count += i
	} else {
		m.addvisit_count = &i
	}
}

// AddedVisitCount returns the value that was added to the "visit_count" field in this mutation.
func (m *MemoryEntryMutation) AddedVisitCount() (r int, exists bool) {
	v := m.addvisit_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisitCount resets all changes to the "visit_count" field.
func (m *MemoryEntryMutation) ResetVisitCount() {
	m.visit_count = nil
	m.addvisit_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *MemoryEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MemoryEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MemoryEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[memoryentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MemoryEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MemoryEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, memoryentry.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MemoryEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MemoryEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MemoryEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *MemoryEntryMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *MemoryEntryMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *MemoryEntryMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[memoryentry.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *MemoryEntryMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *MemoryEntryMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, memoryentry.FieldExpiresAt)
}

// Where appends a list predicates to the MemoryEntryMutation builder.
func (m *MemoryEntryMutation) Where(ps ...predicate.MemoryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryEntry).
func (m *MemoryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent_id != nil {
		fields = append(fields, memoryentry.FieldAgentID)
	}
	if m.user_id != nil {
		fields = append(fields, memoryentry.FieldUserID)
	}
	if m.tier != nil {
		fields = append(fields, memoryentry.FieldTier)
	}
	if m.memory_type != nil {
		fields = append(fields, memoryentry.FieldMemoryType)
	}
	if m.content != nil {
		fields = append(fields, memoryentry.FieldContent)
	}
	if m.heat_score != nil {
		fields = append(fields, memoryentry.FieldHeatScore)
	}
	if m.visit_count != nil {
		fields = append(fields, memoryentry.FieldVisitCount)
	}
	if m.metadata != nil {
		fields = append(fields, memoryentry.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, memoryentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, memoryentry.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, memoryentry.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryentry.FieldAgentID:
		return m.AgentID()
	case memoryentry.FieldUserID:
		return m.UserID()
	case memoryentry.FieldTier:
		return m.Tier()
	case memoryentry.FieldMemoryType:
		return m.MemoryType()
	case memoryentry.FieldContent:
		return m.Content()
	case memoryentry.FieldHeatScore:
		return m.HeatScore()
	case memoryentry.FieldVisitCount:
		return m.VisitCount()
	case memoryentry.FieldMetadata:
		return m.Metadata()
	case memoryentry.FieldCreatedAt:
		return m.CreatedAt()
	case memoryentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case memoryentry.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case memoryentry.FieldUserID:
		return m.OldUserID(ctx)
	case memoryentry.FieldTier:
		return m.OldTier(ctx)
	case memoryentry.FieldMemoryType:
		return m.OldMemoryType(ctx)
	case memoryentry.FieldContent:
		return m.OldContent(ctx)
	case memoryentry.FieldHeatScore:
		return m.OldHeatScore(ctx)
	case memoryentry.FieldVisitCount:
		return m.OldVisitCount(ctx)
	case memoryentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case memoryentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memoryentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case memoryentry.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryentry.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case memoryentry.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case memoryentry.FieldTier:
		v, ok := value.(memoryentry.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case memoryentry.FieldMemoryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryType(v)
		return nil
	case memoryentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memoryentry.FieldHeatScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeatScore(v)
		return nil
	case memoryentry.FieldVisitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitCount(v)
		return nil
	case memoryentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case memoryentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memoryentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case memoryentry.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryEntryMutation) AddedFields() []string {
	var fields []string
	if m.addheat_score != nil {
		fields = append(fields, memoryentry.FieldHeatScore)
	}
	if m.addvisit_count != nil {
		fields = append(fields, memoryentry.FieldVisitCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryentry.FieldHeatScore:
		return m.AddedHeatScore()
	case memoryentry.FieldVisitCount:
		return m.AddedVisitCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryentry.FieldHeatScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeatScore(v)
		return nil
	case memoryentry.FieldVisitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisitCount(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryentry.FieldMetadata) {
		fields = append(fields, memoryentry.FieldMetadata)
	}
	if m.FieldCleared(memoryentry.FieldExpiresAt) {
		fields = append(fields, memoryentry.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ClearField(name string) error {
	switch name {
	case memoryentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	case memoryentry.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ResetField(name string) error {
	switch name {
	case memoryentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case memoryentry.FieldUserID:
		m.ResetUserID()
		return nil
	case memoryentry.FieldTier:
		m.ResetTier()
		return nil
	case memoryentry.FieldMemoryType:
		m.ResetMemoryType()
		return nil
	case memoryentry.FieldContent:
		m.ResetContent()
		return nil
	case memoryentry.FieldHeatScore:
		m.ResetHeatScore()
		return nil
	case memoryentry.FieldVisitCount:
		m.ResetVisitCount()
		return nil
	case memoryentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case memoryentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memoryentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case memoryentry.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry edge %s", name)
}

// PaymentReceiptMutation represents an operation that mutates the PaymentReceipt nodes in the graph.
type PaymentReceiptMutation struct {
	config
	op              Op
	typ             string
	id              *string
	agent_id        *string
	vendor          *string
	tx_hash         *string
	amount          *float64
	addamount       *float64
	token           *string
	chain           *string
	status          *paymentreceipt.Status
	asset_signature *string
	metadata        *map[string]interface{}
	correlation_id  *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PaymentReceipt, error)
	predicates      []predicate.PaymentReceipt
}

var _ ent.Mutation = (*PaymentReceiptMutation)(nil)

// paymentreceiptOption allows management of the mutation configuration using functional options.
type paymentreceiptOption func(*PaymentReceiptMutation)

// newPaymentReceiptMutation creates new mutation for the PaymentReceipt entity.
func newPaymentReceiptMutation(c config, op Op, opts ...paymentreceiptOption) *PaymentReceiptMutation {
	m := &PaymentReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentReceiptID sets the ID field of the mutation.
func withPaymentReceiptID(id string) paymentreceiptOption {
	return func(m *PaymentReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentReceipt
		)
		m.oldValue = func(ctx context.Context) (*PaymentReceipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentReceipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentReceipt sets the old PaymentReceipt of the mutation.
func withPaymentReceipt(node *PaymentReceipt) paymentreceiptOption {
	return func(m *PaymentReceiptMutation) {
		m.oldValue = func(context.Context) (*PaymentReceipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentReceipt entities.
func (m *PaymentReceiptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentReceiptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentReceiptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentReceipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *PaymentReceiptMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *PaymentReceiptMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *PaymentReceiptMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetVendor sets the "vendor" field.
func (m *PaymentReceiptMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *PaymentReceiptMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *PaymentReceiptMutation) ResetVendor() {
	m.vendor = nil
}

// SetTxHash sets the "tx_hash" field.
func (m *PaymentReceiptMutation) SetTxHash(s string) {
	m.tx_hash = &s
}

// TxHash returns the value of the "tx_hash" field in the mutation.
func (m *PaymentReceiptMutation) TxHash() (r string, exists bool) {
	v := m.tx_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTxHash returns the old "tx_hash" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldTxHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxHash: %w", err)
	}
	return oldValue.TxHash, nil
}

// ResetTxHash resets all changes to the "tx_hash" field.
func (m *PaymentReceiptMutation) ResetTxHash() {
	m.tx_hash = nil
}

// SetAmount sets the "amount" field.
func (m *PaymentReceiptMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PaymentReceiptMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *PaymentReceiptMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *PaymentReceiptMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *PaymentReceiptMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetToken sets the "token" field.
func (m *PaymentReceiptMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *PaymentReceiptMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *PaymentReceiptMutation) ResetToken() {
	m.token = nil
}

// SetChain sets the "chain" field.
func (m *PaymentReceiptMutation) SetChain(s string) {
	m.chain = &s
}

// Chain returns the value of the "chain" field in the mutation.
func (m *PaymentReceiptMutation) Chain() (r string, exists bool) {
	v := m.chain
	if v == nil {
		return
	}
	return *v, true
}

// OldChain returns the old "chain" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldChain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChain: %w", err)
	}
	return oldValue.Chain, nil
}

// ResetChain resets all changes to the "chain" field.
func (m *PaymentReceiptMutation) ResetChain() {
	m.chain = nil
}

// SetStatus sets the "status" field.
func (m *PaymentReceiptMutation) SetStatus(pa paymentreceipt.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PaymentReceiptMutation) Status() (r paymentreceipt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldStatus(ctx context.Context) (v paymentreceipt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PaymentReceiptMutation) ResetStatus() {
	m.status = nil
}

// SetAssetSignature sets the "asset_signature" field.
func (m *PaymentReceiptMutation) SetAssetSignature(s string) {
	m.asset_signature = &s
}

// AssetSignature returns the value of the "asset_signature" field in the mutation.
func (m *PaymentReceiptMutation) AssetSignature() (r string, exists bool) {
	v := m.asset_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetSignature returns the old "asset_signature" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldAssetSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetSignature: %w", err)
	}
	return oldValue.AssetSignature, nil
}

// ClearAssetSignature clears the value of the "asset_signature" field.
func (m *PaymentReceiptMutation) ClearAssetSignature() {
	m.asset_signature = nil
	m.clearedFields[paymentreceipt.FieldAssetSignature] = struct{}{}
}

// AssetSignatureCleared returns if the "asset_signature" field was cleared in this mutation.
func (m *PaymentReceiptMutation) AssetSignatureCleared() bool {
	_, ok := m.clearedFields[paymentreceipt.FieldAssetSignature]
	return ok
}

// ResetAssetSignature resets all changes to the "asset_signature" field.
func (m *PaymentReceiptMutation) ResetAssetSignature() {
	m.asset_signature = nil
	delete(m.clearedFields, paymentreceipt.FieldAssetSignature)
}

// SetMetadata sets the "metadata" field.
func (m *PaymentReceiptMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PaymentReceiptMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PaymentReceiptMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[paymentreceipt.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PaymentReceiptMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[paymentreceipt.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PaymentReceiptMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, paymentreceipt.FieldMetadata)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *PaymentReceiptMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *PaymentReceiptMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *PaymentReceiptMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[paymentreceipt.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *PaymentReceiptMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[paymentreceipt.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *PaymentReceiptMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, paymentreceipt.FieldCorrelationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaymentReceipt entity.
// If the PaymentReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PaymentReceiptMutation builder.
func (m *PaymentReceiptMutation) Where(ps ...predicate.PaymentReceipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentReceipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentReceipt).
func (m *PaymentReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentReceiptMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent_id != nil {
		fields = append(fields, paymentreceipt.FieldAgentID)
	}
	if m.vendor != nil {
		fields = append(fields, paymentreceipt.FieldVendor)
	}
	if m.tx_hash != nil {
		fields = append(fields, paymentreceipt.FieldTxHash)
	}
	if m.amount != nil {
		fields = append(fields, paymentreceipt.FieldAmount)
	}
	if m.token != nil {
		fields = append(fields, paymentreceipt.FieldToken)
	}
	if m.chain != nil {
		fields = append(fields, paymentreceipt.FieldChain)
	}
	if m.status != nil {
		fields = append(fields, paymentreceipt.FieldStatus)
	}
	if m.asset_signature != nil {
		fields = append(fields, paymentreceipt.FieldAssetSignature)
	}
	if m.metadata != nil {
		fields = append(fields, paymentreceipt.FieldMetadata)
	}
	if m.correlation_id != nil {
		fields = append(fields, paymentreceipt.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, paymentreceipt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentreceipt.FieldAgentID:
		return m.AgentID()
	case paymentreceipt.FieldVendor:
		return m.Vendor()
	case paymentreceipt.FieldTxHash:
		return m.TxHash()
	case paymentreceipt.FieldAmount:
		return m.Amount()
	case paymentreceipt.FieldToken:
		return m.Token()
	case paymentreceipt.FieldChain:
		return m.Chain()
	case paymentreceipt.FieldStatus:
		return m.Status()
	case paymentreceipt.FieldAssetSignature:
		return m.AssetSignature()
	case paymentreceipt.FieldMetadata:
		return m.Metadata()
	case paymentreceipt.FieldCorrelationID:
		return m.CorrelationID()
	case paymentreceipt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentreceipt.FieldAgentID:
		return m.OldAgentID(ctx)
	case paymentreceipt.FieldVendor:
		return m.OldVendor(ctx)
	case paymentreceipt.FieldTxHash:
		return m.OldTxHash(ctx)
	case paymentreceipt.FieldAmount:
		return m.OldAmount(ctx)
	case paymentreceipt.FieldToken:
		return m.OldToken(ctx)
	case paymentreceipt.FieldChain:
		return m.OldChain(ctx)
	case paymentreceipt.FieldStatus:
		return m.OldStatus(ctx)
	case paymentreceipt.FieldAssetSignature:
		return m.OldAssetSignature(ctx)
	case paymentreceipt.FieldMetadata:
		return m.OldMetadata(ctx)
	case paymentreceipt.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case paymentreceipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentReceipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentreceipt.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case paymentreceipt.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case paymentreceipt.FieldTxHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxHash(v)
		return nil
	case paymentreceipt.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case paymentreceipt.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case paymentreceipt.FieldChain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChain(v)
		return nil
	case paymentreceipt.FieldStatus:
		v, ok := value.(paymentreceipt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case paymentreceipt.FieldAssetSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetSignature(v)
		return nil
	case paymentreceipt.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case paymentreceipt.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case paymentreceipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentReceipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, paymentreceipt.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentreceipt.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentreceipt.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentReceipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paymentreceipt.FieldAssetSignature) {
		fields = append(fields, paymentreceipt.FieldAssetSignature)
	}
	if m.FieldCleared(paymentreceipt.FieldMetadata) {
		fields = append(fields, paymentreceipt.FieldMetadata)
	}
	if m.FieldCleared(paymentreceipt.FieldCorrelationID) {
		fields = append(fields, paymentreceipt.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentReceiptMutation) ClearField(name string) error {
	switch name {
	case paymentreceipt.FieldAssetSignature:
		m.ClearAssetSignature()
		return nil
	case paymentreceipt.FieldMetadata:
		m.ClearMetadata()
		return nil
	case paymentreceipt.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown PaymentReceipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentReceiptMutation) ResetField(name string) error {
	switch name {
	case paymentreceipt.FieldAgentID:
		m.ResetAgentID()
		return nil
	case paymentreceipt.FieldVendor:
		m.ResetVendor()
		return nil
	case paymentreceipt.FieldTxHash:
		m.ResetTxHash()
		return nil
	case paymentreceipt.FieldAmount:
		m.ResetAmount()
		return nil
	case paymentreceipt.FieldToken:
		m.ResetToken()
		return nil
	case paymentreceipt.FieldChain:
		m.ResetChain()
		return nil
	case paymentreceipt.FieldStatus:
		m.ResetStatus()
		return nil
	case paymentreceipt.FieldAssetSignature:
		m.ResetAssetSignature()
		return nil
	case paymentreceipt.FieldMetadata:
		m.ResetMetadata()
		return nil
	case paymentreceipt.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case paymentreceipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PaymentReceipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentReceiptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentReceiptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentReceiptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentReceiptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PaymentReceipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentReceiptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PaymentReceipt edge %s", name)
}

// TaskRunMutation represents an operation that mutates the TaskRun nodes in the graph.
type TaskRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_name           *string
	user_id              *string
	description          *string
	task_type            *string
	priority             *float64
	addpriority          *float64
	required_tools       *[]string
	appendrequired_tools []string
	num_steps            *int
	addnum_steps         *int
	batch_size           *int
	addbatch_size        *int
	status               *taskrun.Status
	model_tier           *string
	difficulty           *string
	estimated_cost       *float64
	addestimated_cost    *float64
	attempts             *int
	addattempts          *int
	result               *string
	error_kind           *string
	error_message        *string
	correlation_id       *string
	pod_id               *string
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	last_interaction_at  *time.Time
	deleted_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*TaskRun, error)
	predicates           []predicate.TaskRun
}

var _ ent.Mutation = (*TaskRunMutation)(nil)

// taskrunOption allows management of the mutation configuration using functional options.
type taskrunOption func(*TaskRunMutation)

// newTaskRunMutation creates new mutation for the TaskRun entity.
func newTaskRunMutation(c config, op Op, opts ...taskrunOption) *TaskRunMutation {
	m := &TaskRunMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskRunID sets the ID field of the mutation.
func withTaskRunID(id string) taskrunOption {
	return func(m *TaskRunMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskRun
		)
		m.oldValue = func(ctx context.Context) (*TaskRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskRun sets the old TaskRun of the mutation.
func withTaskRun(node *TaskRun) taskrunOption {
	return func(m *TaskRunMutation) {
		m.oldValue = func(context.Context) (*TaskRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskRun entities.
func (m *TaskRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *TaskRunMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *TaskRunMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *TaskRunMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetUserID sets the "user_id" field.
func (m *TaskRunMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskRunMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskRunMutation) ResetUserID() {
	m.user_id = nil
}

// SetDescription sets the "description" field.
func (m *TaskRunMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskRunMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskRunMutation) ResetDescription() {
	m.description = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskRunMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskRunMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ClearTaskType clears the value of the "task_type" field.
func (m *TaskRunMutation) ClearTaskType() {
	m.task_type = nil
	m.clearedFields[taskrun.FieldTaskType] = struct{}{}
}

// TaskTypeCleared returns if the "task_type" field was cleared in this mutation.
func (m *TaskRunMutation) TaskTypeCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldTaskType]
	return ok
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskRunMutation) ResetTaskType() {
	m.task_type = nil
	delete(m.clearedFields, taskrun.FieldTaskType)
}

// SetPriority sets the "priority" field.
func (m *TaskRunMutation) SetPriority(f float64) {
	m.priority = &f
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskRunMutation) Priority() (r float64, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldPriority(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds f to the "priority" field.
func (m *TaskRunMutation) AddPriority(f float64) {
	if m.addpriority != nil {
		*m.addpriority += f
	} else {
		m.addpriority = &f
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskRunMutation) AddedPriority() (r float64, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskRunMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetRequiredTools sets the "required_tools" field.
func (m *TaskRunMutation) SetRequiredTools(s []string) {
	m.required_tools = &s
	m.appendrequired_tools = nil
}

// RequiredTools returns the value of the "required_tools" field in the mutation.
func (m *TaskRunMutation) RequiredTools() (r []string, exists bool) {
	v := m.required_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredTools returns the old "required_tools" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldRequiredTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredTools: %w", err)
	}
	return oldValue.RequiredTools, nil
}

// AppendRequiredTools adds s to the "required_tools" field.
func (m *TaskRunMutation) AppendRequiredTools(s []string) {
	m.appendrequired_tools = append(m.appendrequired_tools, s...)
}

// AppendedRequiredTools returns the list of values that were appended to the "required_tools" field in this mutation.
func (m *TaskRunMutation) AppendedRequiredTools() ([]string, bool) {
	if len(m.appendrequired_tools) == 0 {
		return nil, false
	}
	return m.appendrequired_tools, true
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (m *TaskRunMutation) ClearRequiredTools() {
	m.required_tools = nil
	m.appendrequired_tools = nil
	m.clearedFields[taskrun.FieldRequiredTools] = struct{}{}
}

// RequiredToolsCleared returns if the "required_tools" field was cleared in this mutation.
func (m *TaskRunMutation) RequiredToolsCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldRequiredTools]
	return ok
}

// ResetRequiredTools resets all changes to the "required_tools" field.
func (m *TaskRunMutation) ResetRequiredTools() {
	m.required_tools = nil
	m.appendrequired_tools = nil
	delete(m.clearedFields, taskrun.FieldRequiredTools)
}

// SetNumSteps sets the "num_steps" field.
func (m *TaskRunMutation) SetNumSteps(i int) {
	m.num_steps = &i
	m.addnum_steps = nil
}

// NumSteps returns the value of the "num_steps" field in the mutation.
func (m *TaskRunMutation) NumSteps() (r int, exists bool) {
	v := m.num_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldNumSteps returns the old "num_steps" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldNumSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumSteps: %w", err)
	}
	return oldValue.NumSteps, nil
}

// AddNumSteps adds i to the "num_steps" field.
func (m *TaskRunMutation) AddNumSteps(i int) {
	if m.addnum_steps != nil {
		*m.addnum_steps += i
	} else {
		m.addnum_steps = &i
	}
}

// AddedNumSteps returns the value that was added to the "num_steps" field in this mutation.
func (m *TaskRunMutation) AddedNumSteps() (r int, exists bool) {
	v := m.addnum_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumSteps resets all changes to the "num_steps" field.
func (m *TaskRunMutation) ResetNumSteps() {
	m.num_steps = nil
	m.addnum_steps = nil
}

// SetBatchSize sets the "batch_size" field.
func (m *TaskRunMutation) SetBatchSize(i int) {
	m.batch_size = &i
	m.addbatch_size = nil
}

// BatchSize returns the value of the "batch_size" field in the mutation.
func (m *TaskRunMutation) BatchSize() (r int, exists bool) {
	v := m.batch_size
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchSize returns the old "batch_size" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldBatchSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchSize: %w", err)
	}
	return oldValue.BatchSize, nil
}

// AddBatchSize adds i to the "batch_size" field.
func (m *TaskRunMutation) AddBatchSize(i int) {
	if m.addbatch_size != nil {
		*m.addbatch_size += i
	} else {
		m.addbatch_size = &i
	}
}

// AddedBatchSize returns the value that was added to the "batch_size" field in this mutation.
func (m *TaskRunMutation) AddedBatchSize() (r int, exists bool) {
	v := m.addbatch_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchSize resets all changes to the "batch_size" field.
func (m *TaskRunMutation) ResetBatchSize() {
	m.batch_size = nil
	m.addbatch_size = nil
}

// SetStatus sets the "status" field.
func (m *TaskRunMutation) SetStatus(t taskrun.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskRunMutation) Status() (r taskrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldStatus(ctx context.Context) (v taskrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskRunMutation) ResetStatus() {
	m.status = nil
}

// SetModelTier sets the "model_tier" field.
func (m *TaskRunMutation) SetModelTier(s string) {
	m.model_tier = &s
}

// ModelTier returns the value of the "model_tier" field in the mutation.
func (m *TaskRunMutation) ModelTier() (r string, exists bool) {
	v := m.model_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldModelTier returns the old "model_tier" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldModelTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelTier: %w", err)
	}
	return oldValue.ModelTier, nil
}

// ClearModelTier clears the value of the "model_tier" field.
func (m *TaskRunMutation) ClearModelTier() {
	m.model_tier = nil
	m.clearedFields[taskrun.FieldModelTier] = struct{}{}
}

// ModelTierCleared returns if the "model_tier" field was cleared in this mutation.
func (m *TaskRunMutation) ModelTierCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldModelTier]
	return ok
}

// ResetModelTier resets all changes to the "model_tier" field.
func (m *TaskRunMutation) ResetModelTier() {
	m.model_tier = nil
	delete(m.clearedFields, taskrun.FieldModelTier)
}

// SetDifficulty sets the "difficulty" field.
func (m *TaskRunMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *TaskRunMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ClearDifficulty clears the value of the "difficulty" field.
func (m *TaskRunMutation) ClearDifficulty() {
	m.difficulty = nil
	m.clearedFields[taskrun.FieldDifficulty] = struct{}{}
}

// DifficultyCleared returns if the "difficulty" field was cleared in this mutation.
func (m *TaskRunMutation) DifficultyCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldDifficulty]
	return ok
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *TaskRunMutation) ResetDifficulty() {
	m.difficulty = nil
	delete(m.clearedFields, taskrun.FieldDifficulty)
}

// SetEstimatedCost sets the "estimated_cost" field.
func (m *TaskRunMutation) SetEstimatedCost(f float64) {
	m.estimated_cost = &f
	m.addestimated_cost = nil
}

// EstimatedCost returns the value of the "estimated_cost" field in the mutation.
func (m *TaskRunMutation) EstimatedCost() (r float64, exists bool) {
	v := m.estimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCost returns the old "estimated_cost" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldEstimatedCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCost: %w", err)
	}
	return oldValue.EstimatedCost, nil
}

// AddEstimatedCost adds f to the "estimated_cost" field.
func (m *TaskRunMutation) AddEstimatedCost(f float64) {
	if m.addestimated_cost != nil {
		*m.addestimated_cost += f
	} else {
		m.addestimated_cost = &f
	}
}

// AddedEstimatedCost returns the value that was added to the "estimated_cost" field in this mutation.
func (m *TaskRunMutation) AddedEstimatedCost() (r float64, exists bool) {
	v := m.addestimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (m *TaskRunMutation) ClearEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
	m.clearedFields[taskrun.FieldEstimatedCost] = struct{}{}
}

// EstimatedCostCleared returns if the "estimated_cost" field was cleared in this mutation.
func (m *TaskRunMutation) EstimatedCostCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldEstimatedCost]
	return ok
}

// ResetEstimatedCost resets all changes to the "estimated_cost" field.
func (m *TaskRunMutation) ResetEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
	delete(m.clearedFields, taskrun.FieldEstimatedCost)
}

// SetAttempts sets the "attempts" field.
func (m *TaskRunMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskRunMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskRunMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskRunMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskRunMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetResult sets the "result" field.
func (m *TaskRunMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskRunMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskRunMutation) ClearResult() {
	m.result = nil
	m.clearedFields[taskrun.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskRunMutation) ResultCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskRunMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, taskrun.FieldResult)
}

// SetErrorKind sets the "error_kind" field.
func (m *TaskRunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *TaskRunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *TaskRunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[taskrun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *TaskRunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *TaskRunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, taskrun.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[taskrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, taskrun.FieldErrorMessage)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *TaskRunMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *TaskRunMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *TaskRunMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[taskrun.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *TaskRunMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *TaskRunMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, taskrun.FieldCorrelationID)
}

// SetPodID sets the "pod_id" field.
func (m *TaskRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[taskrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, taskrun.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[taskrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, taskrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[taskrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, taskrun.FieldCompletedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *TaskRunMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *TaskRunMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *TaskRunMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[taskrun.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *TaskRunMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *TaskRunMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, taskrun.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TaskRunMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TaskRunMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TaskRunMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[taskrun.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TaskRunMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TaskRunMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, taskrun.FieldDeletedAt)
}

// Where appends a list predicates to the TaskRunMutation builder.
func (m *TaskRunMutation) Where(ps ...predicate.TaskRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskRun).
func (m *TaskRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskRunMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.agent_name != nil {
		fields = append(fields, taskrun.FieldAgentName)
	}
	if m.user_id != nil {
		fields = append(fields, taskrun.FieldUserID)
	}
	if m.description != nil {
		fields = append(fields, taskrun.FieldDescription)
	}
	if m.task_type != nil {
		fields = append(fields, taskrun.FieldTaskType)
	}
	if m.priority != nil {
		fields = append(fields, taskrun.FieldPriority)
	}
	if m.required_tools != nil {
		fields = append(fields, taskrun.FieldRequiredTools)
	}
	if m.num_steps != nil {
		fields = append(fields, taskrun.FieldNumSteps)
	}
	if m.batch_size != nil {
		fields = append(fields, taskrun.FieldBatchSize)
	}
	if m.status != nil {
		fields = append(fields, taskrun.FieldStatus)
	}
	if m.model_tier != nil {
		fields = append(fields, taskrun.FieldModelTier)
	}
	if m.difficulty != nil {
		fields = append(fields, taskrun.FieldDifficulty)
	}
	if m.estimated_cost != nil {
		fields = append(fields, taskrun.FieldEstimatedCost)
	}
	if m.attempts != nil {
		fields = append(fields, taskrun.FieldAttempts)
	}
	if m.result != nil {
		fields = append(fields, taskrun.FieldResult)
	}
	if m.error_kind != nil {
		fields = append(fields, taskrun.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, taskrun.FieldErrorMessage)
	}
	if m.correlation_id != nil {
		fields = append(fields, taskrun.FieldCorrelationID)
	}
	if m.pod_id != nil {
		fields = append(fields, taskrun.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, taskrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, taskrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, taskrun.FieldCompletedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, taskrun.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, taskrun.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskrun.FieldAgentName:
		return m.AgentName()
	case taskrun.FieldUserID:
		return m.UserID()
	case taskrun.FieldDescription:
		return m.Description()
	case taskrun.FieldTaskType:
		return m.TaskType()
	case taskrun.FieldPriority:
		return m.Priority()
	case taskrun.FieldRequiredTools:
		return m.RequiredTools()
	case taskrun.FieldNumSteps:
		return m.NumSteps()
	case taskrun.FieldBatchSize:
		return m.BatchSize()
	case taskrun.FieldStatus:
		return m.Status()
	case taskrun.FieldModelTier:
		return m.ModelTier()
	case taskrun.FieldDifficulty:
		return m.Difficulty()
	case taskrun.FieldEstimatedCost:
		return m.EstimatedCost()
	case taskrun.FieldAttempts:
		return m.Attempts()
	case taskrun.FieldResult:
		return m.Result()
	case taskrun.FieldErrorKind:
		return m.ErrorKind()
	case taskrun.FieldErrorMessage:
		return m.ErrorMessage()
	case taskrun.FieldCorrelationID:
		return m.CorrelationID()
	case taskrun.FieldPodID:
		return m.PodID()
	case taskrun.FieldCreatedAt:
		return m.CreatedAt()
	case taskrun.FieldStartedAt:
		return m.StartedAt()
	case taskrun.FieldCompletedAt:
		return m.CompletedAt()
	case taskrun.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case taskrun.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskrun.FieldAgentName:
		return m.OldAgentName(ctx)
	case taskrun.FieldUserID:
		return m.OldUserID(ctx)
	case taskrun.FieldDescription:
		return m.OldDescription(ctx)
	case taskrun.FieldTaskType:
		return m.OldTaskType(ctx)
	case taskrun.FieldPriority:
		return m.OldPriority(ctx)
	case taskrun.FieldRequiredTools:
		return m.OldRequiredTools(ctx)
	case taskrun.FieldNumSteps:
		return m.OldNumSteps(ctx)
	case taskrun.FieldBatchSize:
		return m.OldBatchSize(ctx)
	case taskrun.FieldStatus:
		return m.OldStatus(ctx)
	case taskrun.FieldModelTier:
		return m.OldModelTier(ctx)
	case taskrun.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case taskrun.FieldEstimatedCost:
		return m.OldEstimatedCost(ctx)
	case taskrun.FieldAttempts:
		return m.OldAttempts(ctx)
	case taskrun.FieldResult:
		return m.OldResult(ctx)
	case taskrun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case taskrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case taskrun.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case taskrun.FieldPodID:
		return m.OldPodID(ctx)
	case taskrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case taskrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case taskrun.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case taskrun.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskrun.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case taskrun.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case taskrun.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case taskrun.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case taskrun.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case taskrun.FieldRequiredTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredTools(v)
		return nil
	case taskrun.FieldNumSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumSteps(v)
		return nil
	case taskrun.FieldBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchSize(v)
		return nil
	case taskrun.FieldStatus:
		v, ok := value.(taskrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskrun.FieldModelTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelTier(v)
		return nil
	case taskrun.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case taskrun.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCost(v)
		return nil
	case taskrun.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case taskrun.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case taskrun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case taskrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case taskrun.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case taskrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case taskrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case taskrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case taskrun.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case taskrun.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskRunMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, taskrun.FieldPriority)
	}
	if m.addnum_steps != nil {
		fields = append(fields, taskrun.FieldNumSteps)
	}
	if m.addbatch_size != nil {
		fields = append(fields, taskrun.FieldBatchSize)
	}
	if m.addestimated_cost != nil {
		fields = append(fields, taskrun.FieldEstimatedCost)
	}
	if m.addattempts != nil {
		fields = append(fields, taskrun.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskrun.FieldPriority:
		return m.AddedPriority()
	case taskrun.FieldNumSteps:
		return m.AddedNumSteps()
	case taskrun.FieldBatchSize:
		return m.AddedBatchSize()
	case taskrun.FieldEstimatedCost:
		return m.AddedEstimatedCost()
	case taskrun.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskrun.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case taskrun.FieldNumSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumSteps(v)
		return nil
	case taskrun.FieldBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchSize(v)
		return nil
	case taskrun.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCost(v)
		return nil
	case taskrun.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskrun.FieldTaskType) {
		fields = append(fields, taskrun.FieldTaskType)
	}
	if m.FieldCleared(taskrun.FieldRequiredTools) {
		fields = append(fields, taskrun.FieldRequiredTools)
	}
	if m.FieldCleared(taskrun.FieldModelTier) {
		fields = append(fields, taskrun.FieldModelTier)
	}
	if m.FieldCleared(taskrun.FieldDifficulty) {
		fields = append(fields, taskrun.FieldDifficulty)
	}
	if m.FieldCleared(taskrun.FieldEstimatedCost) {
		fields = append(fields, taskrun.FieldEstimatedCost)
	}
	if m.FieldCleared(taskrun.FieldResult) {
		fields = append(fields, taskrun.FieldResult)
	}
	if m.FieldCleared(taskrun.FieldErrorKind) {
		fields = append(fields, taskrun.FieldErrorKind)
	}
	if m.FieldCleared(taskrun.FieldErrorMessage) {
		fields = append(fields, taskrun.FieldErrorMessage)
	}
	if m.FieldCleared(taskrun.FieldCorrelationID) {
		fields = append(fields, taskrun.FieldCorrelationID)
	}
	if m.FieldCleared(taskrun.FieldPodID) {
		fields = append(fields, taskrun.FieldPodID)
	}
	if m.FieldCleared(taskrun.FieldStartedAt) {
		fields = append(fields, taskrun.FieldStartedAt)
	}
	if m.FieldCleared(taskrun.FieldCompletedAt) {
		fields = append(fields, taskrun.FieldCompletedAt)
	}
	if m.FieldCleared(taskrun.FieldLastInteractionAt) {
		fields = append(fields, taskrun.FieldLastInteractionAt)
	}
	if m.FieldCleared(taskrun.FieldDeletedAt) {
		fields = append(fields, taskrun.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskRunMutation) ClearField(name string) error {
	switch name {
	case taskrun.FieldTaskType:
		m.ClearTaskType()
		return nil
	case taskrun.FieldRequiredTools:
		m.ClearRequiredTools()
		return nil
	case taskrun.FieldModelTier:
		m.ClearModelTier()
		return nil
	case taskrun.FieldDifficulty:
		m.ClearDifficulty()
		return nil
	case taskrun.FieldEstimatedCost:
		m.ClearEstimatedCost()
		return nil
	case taskrun.FieldResult:
		m.ClearResult()
		return nil
	case taskrun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case taskrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case taskrun.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case taskrun.FieldPodID:
		m.ClearPodID()
		return nil
	case taskrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case taskrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case taskrun.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case taskrun.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskRunMutation) ResetField(name string) error {
	switch name {
	case taskrun.FieldAgentName:
		m.ResetAgentName()
		return nil
	case taskrun.FieldUserID:
		m.ResetUserID()
		return nil
	case taskrun.FieldDescription:
		m.ResetDescription()
		return nil
	case taskrun.FieldTaskType:
		m.ResetTaskType()
		return nil
	case taskrun.FieldPriority:
		m.ResetPriority()
		return nil
	case taskrun.FieldRequiredTools:
		m.ResetRequiredTools()
		return nil
	case taskrun.FieldNumSteps:
		m.ResetNumSteps()
		return nil
	case taskrun.FieldBatchSize:
		m.ResetBatchSize()
		return nil
	case taskrun.FieldStatus:
		m.ResetStatus()
		return nil
	case taskrun.FieldModelTier:
		m.ResetModelTier()
		return nil
	case taskrun.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case taskrun.FieldEstimatedCost:
		m.ResetEstimatedCost()
		return nil
	case taskrun.FieldAttempts:
		m.ResetAttempts()
		return nil
	case taskrun.FieldResult:
		m.ResetResult()
		return nil
	case taskrun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case taskrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case taskrun.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case taskrun.FieldPodID:
		m.ResetPodID()
		return nil
	case taskrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case taskrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case taskrun.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case taskrun.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskRun edge %s", name)
}

// TrajectoryMutation represents an operation that mutates the Trajectory nodes in the graph.
type TrajectoryMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent_id          *string
	task_description  *string
	task_type         *string
	initial_state     *string
	steps             *[]map[string]interface{}
	appendsteps       []map[string]interface{}
	final_outcome     *trajectory.FinalOutcome
	reward            *float64
	addreward         *float64
	duration_ms       *int64
	addduration_ms    *int64
	failure_rationale *string
	error_category    *string
	fix_applied       *string
	correlation_id    *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Trajectory, error)
	predicates        []predicate.Trajectory
}

var _ ent.Mutation = (*TrajectoryMutation)(nil)

// trajectoryOption allows management of the mutation configuration using functional options.
type trajectoryOption func(*TrajectoryMutation)

// newTrajectoryMutation creates new mutation for the Trajectory entity.
func newTrajectoryMutation(c config, op Op, opts ...trajectoryOption) *TrajectoryMutation {
	m := &TrajectoryMutation{
		config:        c,
		op:            op,
		typ:           TypeTrajectory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrajectoryID sets the ID field of the mutation.
func withTrajectoryID(id string) trajectoryOption {
	return func(m *TrajectoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Trajectory
		)
		m.oldValue = func(ctx context.Context) (*Trajectory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trajectory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrajectory sets the old Trajectory of the mutation.
func withTrajectory(node *Trajectory) trajectoryOption {
	return func(m *TrajectoryMutation) {
		m.oldValue = func(context.Context) (*Trajectory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrajectoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrajectoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trajectory entities.
func (m *TrajectoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrajectoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrajectoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trajectory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *TrajectoryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TrajectoryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TrajectoryMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *TrajectoryMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *TrajectoryMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *TrajectoryMutation) ResetTaskDescription() {
	m.task_description = nil
}

// SetTaskType sets the "task_type" field.
func (m *TrajectoryMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TrajectoryMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ClearTaskType clears the value of the "task_type" field.
func (m *TrajectoryMutation) ClearTaskType() {
	m.task_type = nil
	m.clearedFields[trajectory.FieldTaskType] = struct{}{}
}

// TaskTypeCleared returns if the "task_type" field was cleared in this mutation.
func (m *TrajectoryMutation) TaskTypeCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldTaskType]
	return ok
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TrajectoryMutation) ResetTaskType() {
	m.task_type = nil
	delete(m.clearedFields, trajectory.FieldTaskType)
}

// SetInitialState sets the "initial_state" field.
func (m *TrajectoryMutation) SetInitialState(s string) {
	m.initial_state = &s
}

// InitialState returns the value of the "initial_state" field in the mutation.
func (m *TrajectoryMutation) InitialState() (r string, exists bool) {
	v := m.initial_state
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialState returns the old "initial_state" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldInitialState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialState: %w", err)
	}
	return oldValue.InitialState, nil
}

// ClearInitialState clears the value of the "initial_state" field.
func (m *TrajectoryMutation) ClearInitialState() {
	m.initial_state = nil
	m.clearedFields[trajectory.FieldInitialState] = struct{}{}
}

// InitialStateCleared returns if the "initial_state" field was cleared in this mutation.
func (m *TrajectoryMutation) InitialStateCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldInitialState]
	return ok
}

// ResetInitialState resets all changes to the "initial_state" field.
func (m *TrajectoryMutation) ResetInitialState() {
	m.initial_state = nil
	delete(m.clearedFields, trajectory.FieldInitialState)
}

// SetSteps sets the "steps" field.
func (m *TrajectoryMutation) SetSteps(value []map[string]interface{}) {
	m.steps = &value
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *TrajectoryMutation) Steps() (r []map[string]interface{}, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldSteps(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds value to the "steps" field.
func (m *TrajectoryMutation) AppendSteps(value []map[string]interface{}) {
	m.appendsteps = append(m.appendsteps, value...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *TrajectoryMutation) AppendedSteps() ([]map[string]interface{}, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *TrajectoryMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetFinalOutcome sets the "final_outcome" field.
func (m *TrajectoryMutation) SetFinalOutcome(to trajectory.FinalOutcome) {
	m.final_outcome = &to
}

// FinalOutcome returns the value of the "final_outcome" field in the mutation.
func (m *TrajectoryMutation) FinalOutcome() (r trajectory.FinalOutcome, exists bool) {
	v := m.final_outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalOutcome returns the old "final_outcome" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldFinalOutcome(ctx context.Context) (v trajectory.FinalOutcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalOutcome: %w", err)
	}
	return oldValue.FinalOutcome, nil
}

// ResetFinalOutcome resets all changes to the "final_outcome" field.
func (m *TrajectoryMutation) ResetFinalOutcome() {
	m.final_outcome = nil
}

// SetReward sets the "reward" field.
func (m *TrajectoryMutation) SetReward(f float64) {
	m.reward = &f
	m.addreward = nil
}

// Reward returns the value of the "reward" field in the mutation.
func (m *TrajectoryMutation) Reward() (r float64, exists bool) {
	v := m.reward
	if v == nil {
		return
	}
	return *v, true
}

// OldReward returns the old "reward" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldReward(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReward: %w", err)
	}
	return oldValue.Reward, nil
}

// AddReward adds f to the "reward" field.
func (m *TrajectoryMutation) AddReward(f float64) {
	if m.addreward != nil {
		*m.addreward += f
	} else {
		m.addreward = &f
	}
}

// AddedReward returns the value that was added to the "reward" field in this mutation.
func (m *TrajectoryMutation) AddedReward() (r float64, exists bool) {
	v := m.addreward
	if v == nil {
		return
	}
	return *v, true
}

// ResetReward resets all changes to the "reward" field.
func (m *TrajectoryMutation) ResetReward() {
	m.reward = nil
	m.addreward = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *TrajectoryMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TrajectoryMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TrajectoryMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TrajectoryMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TrajectoryMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetFailureRationale sets the "failure_rationale" field.
func (m *TrajectoryMutation) SetFailureRationale(s string) {
	m.failure_rationale = &s
}

// FailureRationale returns the value of the "failure_rationale" field in the mutation.
func (m *TrajectoryMutation) FailureRationale() (r string, exists bool) {
	v := m.failure_rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureRationale returns the old "failure_rationale" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldFailureRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureRationale: %w", err)
	}
	return oldValue.FailureRationale, nil
}

// ClearFailureRationale clears the value of the "failure_rationale" field.
func (m *TrajectoryMutation) ClearFailureRationale() {
	m.failure_rationale = nil
	m.clearedFields[trajectory.FieldFailureRationale] = struct{}{}
}

// FailureRationaleCleared returns if the "failure_rationale" field was cleared in this mutation.
func (m *TrajectoryMutation) FailureRationaleCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldFailureRationale]
	return ok
}

// ResetFailureRationale resets all changes to the "failure_rationale" field.
func (m *TrajectoryMutation) ResetFailureRationale() {
	m.failure_rationale = nil
	delete(m.clearedFields, trajectory.FieldFailureRationale)
}

// SetErrorCategory sets the "error_category" field.
func (m *TrajectoryMutation) SetErrorCategory(s string) {
	m.error_category = &s
}

// ErrorCategory returns the value of the "error_category" field in the mutation.
func (m *TrajectoryMutation) ErrorCategory() (r string, exists bool) {
	v := m.error_category
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCategory returns the old "error_category" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldErrorCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCategory: %w", err)
	}
	return oldValue.ErrorCategory, nil
}

// ClearErrorCategory clears the value of the "error_category" field.
func (m *TrajectoryMutation) ClearErrorCategory() {
	m.error_category = nil
	m.clearedFields[trajectory.FieldErrorCategory] = struct{}{}
}

// ErrorCategoryCleared returns if the "error_category" field was cleared in this mutation.
func (m *TrajectoryMutation) ErrorCategoryCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldErrorCategory]
	return ok
}

// ResetErrorCategory resets all changes to the "error_category" field.
func (m *TrajectoryMutation) ResetErrorCategory() {
	m.error_category = nil
	delete(m.clearedFields, trajectory.FieldErrorCategory)
}

// SetFixApplied sets the "fix_applied" field.
func (m *TrajectoryMutation) SetFixApplied(s string) {
	m.fix_applied = &s
}

// FixApplied returns the value of the "fix_applied" field in the mutation.
func (m *TrajectoryMutation) FixApplied() (r string, exists bool) {
	v := m.fix_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldFixApplied returns the old "fix_applied" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldFixApplied(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixApplied: %w", err)
	}
	return oldValue.FixApplied, nil
}

// ClearFixApplied clears the value of the "fix_applied" field.
func (m *TrajectoryMutation) ClearFixApplied() {
	m.fix_applied = nil
	m.clearedFields[trajectory.FieldFixApplied] = struct{}{}
}

// FixAppliedCleared returns if the "fix_applied" field was cleared in this mutation.
func (m *TrajectoryMutation) FixAppliedCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldFixApplied]
	return ok
}

// ResetFixApplied resets all changes to the "fix_applied" field.
func (m *TrajectoryMutation) ResetFixApplied() {
	m.fix_applied = nil
	delete(m.clearedFields, trajectory.FieldFixApplied)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *TrajectoryMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *TrajectoryMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *TrajectoryMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[trajectory.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *TrajectoryMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *TrajectoryMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, trajectory.FieldCorrelationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrajectoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrajectoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrajectoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TrajectoryMutation builder.
func (m *TrajectoryMutation) Where(ps ...predicate.Trajectory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrajectoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrajectoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trajectory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrajectoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrajectoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trajectory).
func (m *TrajectoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrajectoryMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_id != nil {
		fields = append(fields, trajectory.FieldAgentID)
	}
	if m.task_description != nil {
		fields = append(fields, trajectory.FieldTaskDescription)
	}
	if m.task_type != nil {
		fields = append(fields, trajectory.FieldTaskType)
	}
	if m.initial_state != nil {
		fields = append(fields, trajectory.FieldInitialState)
	}
	if m.steps != nil {
		fields = append(fields, trajectory.FieldSteps)
	}
	if m.final_outcome != nil {
		fields = append(fields, trajectory.FieldFinalOutcome)
	}
	if m.reward != nil {
		fields = append(fields, trajectory.FieldReward)
	}
	if m.duration_ms != nil {
		fields = append(fields, trajectory.FieldDurationMs)
	}
	if m.failure_rationale != nil {
		fields = append(fields, trajectory.FieldFailureRationale)
	}
	if m.error_category != nil {
		fields = append(fields, trajectory.FieldErrorCategory)
	}
	if m.fix_applied != nil {
		fields = append(fields, trajectory.FieldFixApplied)
	}
	if m.correlation_id != nil {
		fields = append(fields, trajectory.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, trajectory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrajectoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trajectory.FieldAgentID:
		return m.AgentID()
	case trajectory.FieldTaskDescription:
		return m.TaskDescription()
	case trajectory.FieldTaskType:
		return m.TaskType()
	case trajectory.FieldInitialState:
		return m.InitialState()
	case trajectory.FieldSteps:
		return m.Steps()
	case trajectory.FieldFinalOutcome:
		return m.FinalOutcome()
	case trajectory.FieldReward:
		return m.Reward()
	case trajectory.FieldDurationMs:
		return m.DurationMs()
	case trajectory.FieldFailureRationale:
		return m.FailureRationale()
	case trajectory.FieldErrorCategory:
		return m.ErrorCategory()
	case trajectory.FieldFixApplied:
		return m.FixApplied()
	case trajectory.FieldCorrelationID:
		return m.CorrelationID()
	case trajectory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrajectoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trajectory.FieldAgentID:
		return m.OldAgentID(ctx)
	case trajectory.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case trajectory.FieldTaskType:
		return m.OldTaskType(ctx)
	case trajectory.FieldInitialState:
		return m.OldInitialState(ctx)
	case trajectory.FieldSteps:
		return m.OldSteps(ctx)
	case trajectory.FieldFinalOutcome:
		return m.OldFinalOutcome(ctx)
	case trajectory.FieldReward:
		return m.OldReward(ctx)
	case trajectory.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case trajectory.FieldFailureRationale:
		return m.OldFailureRationale(ctx)
	case trajectory.FieldErrorCategory:
		return m.OldErrorCategory(ctx)
	case trajectory.FieldFixApplied:
		return m.OldFixApplied(ctx)
	case trajectory.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case trajectory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trajectory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trajectory.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case trajectory.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case trajectory.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case trajectory.FieldInitialState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialState(v)
		return nil
	case trajectory.FieldSteps:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case trajectory.FieldFinalOutcome:
		v, ok := value.(trajectory.FinalOutcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalOutcome(v)
		return nil
	case trajectory.FieldReward:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReward(v)
		return nil
	case trajectory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case trajectory.FieldFailureRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureRationale(v)
		return nil
	case trajectory.FieldErrorCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCategory(v)
		return nil
	case trajectory.FieldFixApplied:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixApplied(v)
		return nil
	case trajectory.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case trajectory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trajectory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrajectoryMutation) AddedFields() []string {
	var fields []string
	if m.addreward != nil {
		fields = append(fields, trajectory.FieldReward)
	}
	if m.addduration_ms != nil {
		fields = append(fields, trajectory.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrajectoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trajectory.FieldReward:
		return m.AddedReward()
	case trajectory.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trajectory.FieldReward:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReward(v)
		return nil
	case trajectory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Trajectory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrajectoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trajectory.FieldTaskType) {
		fields = append(fields, trajectory.FieldTaskType)
	}
	if m.FieldCleared(trajectory.FieldInitialState) {
		fields = append(fields, trajectory.FieldInitialState)
	}
	if m.FieldCleared(trajectory.FieldFailureRationale) {
		fields = append(fields, trajectory.FieldFailureRationale)
	}
	if m.FieldCleared(trajectory.FieldErrorCategory) {
		fields = append(fields, trajectory.FieldErrorCategory)
	}
	if m.FieldCleared(trajectory.FieldFixApplied) {
		fields = append(fields, trajectory.FieldFixApplied)
	}
	if m.FieldCleared(trajectory.FieldCorrelationID) {
		fields = append(fields, trajectory.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrajectoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrajectoryMutation) ClearField(name string) error {
	switch name {
	case trajectory.FieldTaskType:
		m.ClearTaskType()
		return nil
	case trajectory.FieldInitialState:
		m.ClearInitialState()
		return nil
	case trajectory.FieldFailureRationale:
		m.ClearFailureRationale()
		return nil
	case trajectory.FieldErrorCategory:
		m.ClearErrorCategory()
		return nil
	case trajectory.FieldFixApplied:
		m.ClearFixApplied()
		return nil
	case trajectory.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown Trajectory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrajectoryMutation) ResetField(name string) error {
	switch name {
	case trajectory.FieldAgentID:
		m.ResetAgentID()
		return nil
	case trajectory.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case trajectory.FieldTaskType:
		m.ResetTaskType()
		return nil
	case trajectory.FieldInitialState:
		m.ResetInitialState()
		return nil
	case trajectory.FieldSteps:
		m.ResetSteps()
		return nil
	case trajectory.FieldFinalOutcome:
		m.ResetFinalOutcome()
		return nil
	case trajectory.FieldReward:
		m.ResetReward()
		return nil
	case trajectory.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case trajectory.FieldFailureRationale:
		m.ResetFailureRationale()
		return nil
	case trajectory.FieldErrorCategory:
		m.ResetErrorCategory()
		return nil
	case trajectory.FieldFixApplied:
		m.ResetFixApplied()
		return nil
	case trajectory.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case trajectory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trajectory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrajectoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrajectoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrajectoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrajectoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrajectoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrajectoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrajectoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Trajectory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrajectoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Trajectory edge %s", name)
}
