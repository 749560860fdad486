// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentfoundry/maestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfoundry/maestro/ent/auditentry"
	"github.com/agentfoundry/maestro/ent/budgetledger"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
	"github.com/agentfoundry/maestro/ent/memoryentry"
	"github.com/agentfoundry/maestro/ent/paymentreceipt"
	"github.com/agentfoundry/maestro/ent/taskrun"
	"github.com/agentfoundry/maestro/ent/trajectory"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// BudgetLedger is the client for interacting with the BudgetLedger builders.
	BudgetLedger *BudgetLedgerClient
	// EvolutionAttempt is the client for interacting with the EvolutionAttempt builders.
	EvolutionAttempt *EvolutionAttemptClient
	// EvolutionPattern is the client for interacting with the EvolutionPattern builders.
	EvolutionPattern *EvolutionPatternClient
	// MemoryEntry is the client for interacting with the MemoryEntry builders.
	MemoryEntry *MemoryEntryClient
	// PaymentReceipt is the client for interacting with the PaymentReceipt builders.
	PaymentReceipt *PaymentReceiptClient
	// TaskRun is the client for interacting with the TaskRun builders.
	TaskRun *TaskRunClient
	// Trajectory is the client for interacting with the Trajectory builders.
	Trajectory *TrajectoryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.BudgetLedger = NewBudgetLedgerClient(c.config)
	c.EvolutionAttempt = NewEvolutionAttemptClient(c.config)
	c.EvolutionPattern = NewEvolutionPatternClient(c.config)
	c.MemoryEntry = NewMemoryEntryClient(c.config)
	c.PaymentReceipt = NewPaymentReceiptClient(c.config)
	c.TaskRun = NewTaskRunClient(c.config)
	c.Trajectory = NewTrajectoryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AuditEntry:       NewAuditEntryClient(cfg),
		BudgetLedger:     NewBudgetLedgerClient(cfg),
		EvolutionAttempt: NewEvolutionAttemptClient(cfg),
		EvolutionPattern: NewEvolutionPatternClient(cfg),
		MemoryEntry:      NewMemoryEntryClient(cfg),
		PaymentReceipt:   NewPaymentReceiptClient(cfg),
		TaskRun:          NewTaskRunClient(cfg),
		Trajectory:       NewTrajectoryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AuditEntry:       NewAuditEntryClient(cfg),
		BudgetLedger:     NewBudgetLedgerClient(cfg),
		EvolutionAttempt: NewEvolutionAttemptClient(cfg),
		EvolutionPattern: NewEvolutionPatternClient(cfg),
		MemoryEntry:      NewMemoryEntryClient(cfg),
		PaymentReceipt:   NewPaymentReceiptClient(cfg),
		TaskRun:          NewTaskRunClient(cfg),
		Trajectory:       NewTrajectoryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEntry.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditEntry, c.BudgetLedger, c.EvolutionAttempt, c.EvolutionPattern,
		c.MemoryEntry, c.PaymentReceipt, c.TaskRun, c.Trajectory,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditEntry, c.BudgetLedger, c.EvolutionAttempt, c.EvolutionPattern,
		c.MemoryEntry, c.PaymentReceipt, c.TaskRun, c.Trajectory,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *BudgetLedgerMutation:
		return c.BudgetLedger.mutate(ctx, m)
	case *EvolutionAttemptMutation:
		return c.EvolutionAttempt.mutate(ctx, m)
	case *EvolutionPatternMutation:
		return c.EvolutionPattern.mutate(ctx, m)
	case *MemoryEntryMutation:
		return c.MemoryEntry.mutate(ctx, m)
	case *PaymentReceiptMutation:
		return c.PaymentReceipt.mutate(ctx, m)
	case *TaskRunMutation:
		return c.TaskRun.mutate(ctx, m)
	case *TrajectoryMutation:
		return c.Trajectory.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id string) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id string) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id string) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id string) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// BudgetLedgerClient is a client for the BudgetLedger schema.
type BudgetLedgerClient struct {
	config
}

// NewBudgetLedgerClient returns a client for the BudgetLedger from the given config.
func NewBudgetLedgerClient(c config) *BudgetLedgerClient {
	return &BudgetLedgerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `budgetledger.Hooks(f(g(h())))`.
func (c *BudgetLedgerClient) Use(hooks ...Hook) {
	c.hooks.BudgetLedger = append(c.hooks.BudgetLedger, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `budgetledger.Intercept(f(g(h())))`.
func (c *BudgetLedgerClient) Intercept(interceptors ...Interceptor) {
	c.inters.BudgetLedger = append(c.inters.BudgetLedger, interceptors...)
}

// Create returns a builder for creating a BudgetLedger entity.
func (c *BudgetLedgerClient) Create() *BudgetLedgerCreate {
	mutation := newBudgetLedgerMutation(c.config, OpCreate)
	return &BudgetLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BudgetLedger entities.
func (c *BudgetLedgerClient) CreateBulk(builders ...*BudgetLedgerCreate) *BudgetLedgerCreateBulk {
	return &BudgetLedgerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BudgetLedgerClient) MapCreateBulk(slice any, setFunc func(*BudgetLedgerCreate, int)) *BudgetLedgerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BudgetLedgerCreateBulk{err: fmt.Errorf("calling to BudgetLedgerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BudgetLedgerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BudgetLedgerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BudgetLedger.
func (c *BudgetLedgerClient) Update() *BudgetLedgerUpdate {
	mutation := newBudgetLedgerMutation(c.config, OpUpdate)
	return &BudgetLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BudgetLedgerClient) UpdateOne(_m *BudgetLedger) *BudgetLedgerUpdateOne {
	mutation := newBudgetLedgerMutation(c.config, OpUpdateOne, withBudgetLedger(_m))
	return &BudgetLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BudgetLedgerClient) UpdateOneID(id string) *BudgetLedgerUpdateOne {
	mutation := newBudgetLedgerMutation(c.config, OpUpdateOne, withBudgetLedgerID(id))
	return &BudgetLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BudgetLedger.
func (c *BudgetLedgerClient) Delete() *BudgetLedgerDelete {
	mutation := newBudgetLedgerMutation(c.config, OpDelete)
	return &BudgetLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BudgetLedgerClient) DeleteOne(_m *BudgetLedger) *BudgetLedgerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BudgetLedgerClient) DeleteOneID(id string) *BudgetLedgerDeleteOne {
	builder := c.Delete().Where(budgetledger.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BudgetLedgerDeleteOne{builder}
}

// Query returns a query builder for BudgetLedger.
func (c *BudgetLedgerClient) Query() *BudgetLedgerQuery {
	return &BudgetLedgerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBudgetLedger},
		inters: c.Interceptors(),
	}
}

// Get returns a BudgetLedger entity by its id.
func (c *BudgetLedgerClient) Get(ctx context.Context, id string) (*BudgetLedger, error) {
	return c.Query().Where(budgetledger.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BudgetLedgerClient) GetX(ctx context.Context, id string) *BudgetLedger {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BudgetLedgerClient) Hooks() []Hook {
	return c.hooks.BudgetLedger
}

// Interceptors returns the client interceptors.
func (c *BudgetLedgerClient) Interceptors() []Interceptor {
	return c.inters.BudgetLedger
}

func (c *BudgetLedgerClient) mutate(ctx context.Context, m *BudgetLedgerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BudgetLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BudgetLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BudgetLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BudgetLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BudgetLedger mutation op: %q", m.Op())
	}
}

// EvolutionAttemptClient is a client for the EvolutionAttempt schema.
type EvolutionAttemptClient struct {
	config
}

// NewEvolutionAttemptClient returns a client for the EvolutionAttempt from the given config.
func NewEvolutionAttemptClient(c config) *EvolutionAttemptClient {
	return &EvolutionAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evolutionattempt.Hooks(f(g(h())))`.
func (c *EvolutionAttemptClient) Use(hooks ...Hook) {
	c.hooks.EvolutionAttempt = append(c.hooks.EvolutionAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evolutionattempt.Intercept(f(g(h())))`.
func (c *EvolutionAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvolutionAttempt = append(c.inters.EvolutionAttempt, interceptors...)
}

// Create returns a builder for creating a EvolutionAttempt entity.
func (c *EvolutionAttemptClient) Create() *EvolutionAttemptCreate {
	mutation := newEvolutionAttemptMutation(c.config, OpCreate)
	return &EvolutionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvolutionAttempt entities.
func (c *EvolutionAttemptClient) CreateBulk(builders ...*EvolutionAttemptCreate) *EvolutionAttemptCreateBulk {
	return &EvolutionAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvolutionAttemptClient) MapCreateBulk(slice any, setFunc func(*EvolutionAttemptCreate, int)) *EvolutionAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvolutionAttemptCreateBulk{err: fmt.Errorf("calling to EvolutionAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvolutionAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvolutionAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvolutionAttempt.
func (c *EvolutionAttemptClient) Update() *EvolutionAttemptUpdate {
	mutation := newEvolutionAttemptMutation(c.config, OpUpdate)
	return &EvolutionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvolutionAttemptClient) UpdateOne(_m *EvolutionAttempt) *EvolutionAttemptUpdateOne {
	mutation := newEvolutionAttemptMutation(c.config, OpUpdateOne, withEvolutionAttempt(_m))
	return &EvolutionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvolutionAttemptClient) UpdateOneID(id string) *EvolutionAttemptUpdateOne {
	mutation := newEvolutionAttemptMutation(c.config, OpUpdateOne, withEvolutionAttemptID(id))
	return &EvolutionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvolutionAttempt.
func (c *EvolutionAttemptClient) Delete() *EvolutionAttemptDelete {
	mutation := newEvolutionAttemptMutation(c.config, OpDelete)
	return &EvolutionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvolutionAttemptClient) DeleteOne(_m *EvolutionAttempt) *EvolutionAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvolutionAttemptClient) DeleteOneID(id string) *EvolutionAttemptDeleteOne {
	builder := c.Delete().Where(evolutionattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvolutionAttemptDeleteOne{builder}
}

// Query returns a query builder for EvolutionAttempt.
func (c *EvolutionAttemptClient) Query() *EvolutionAttemptQuery {
	return &EvolutionAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvolutionAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a EvolutionAttempt entity by its id.
func (c *EvolutionAttemptClient) Get(ctx context.Context, id string) (*EvolutionAttempt, error) {
	return c.Query().Where(evolutionattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvolutionAttemptClient) GetX(ctx context.Context, id string) *EvolutionAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvolutionAttemptClient) Hooks() []Hook {
	return c.hooks.EvolutionAttempt
}

// Interceptors returns the client interceptors.
func (c *EvolutionAttemptClient) Interceptors() []Interceptor {
	return c.inters.EvolutionAttempt
}

func (c *EvolutionAttemptClient) mutate(ctx context.Context, m *EvolutionAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvolutionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvolutionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvolutionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvolutionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvolutionAttempt mutation op: %q", m.Op())
	}
}

// EvolutionPatternClient is a client for the EvolutionPattern schema.
type EvolutionPatternClient struct {
	config
}

// NewEvolutionPatternClient returns a client for the EvolutionPattern from the given config.
func NewEvolutionPatternClient(c config) *EvolutionPatternClient {
	return &EvolutionPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evolutionpattern.Hooks(f(g(h())))`.
func (c *EvolutionPatternClient) Use(hooks ...Hook) {
	c.hooks.EvolutionPattern = append(c.hooks.EvolutionPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evolutionpattern.Intercept(f(g(h())))`.
func (c *EvolutionPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvolutionPattern = append(c.inters.EvolutionPattern, interceptors...)
}

// Create returns a builder for creating a EvolutionPattern entity.
func (c *EvolutionPatternClient) Create() *EvolutionPatternCreate {
	mutation := newEvolutionPatternMutation(c.config, OpCreate)
	return &EvolutionPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvolutionPattern entities.
func (c *EvolutionPatternClient) CreateBulk(builders ...*EvolutionPatternCreate) *EvolutionPatternCreateBulk {
	return &EvolutionPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvolutionPatternClient) MapCreateBulk(slice any, setFunc func(*EvolutionPatternCreate, int)) *EvolutionPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvolutionPatternCreateBulk{err: fmt.Errorf("calling to EvolutionPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvolutionPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvolutionPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvolutionPattern.
func (c *EvolutionPatternClient) Update() *EvolutionPatternUpdate {
	mutation := newEvolutionPatternMutation(c.config, OpUpdate)
	return &EvolutionPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvolutionPatternClient) UpdateOne(_m *EvolutionPattern) *EvolutionPatternUpdateOne {
	mutation := newEvolutionPatternMutation(c.config, OpUpdateOne, withEvolutionPattern(_m))
	return &EvolutionPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvolutionPatternClient) UpdateOneID(id string) *EvolutionPatternUpdateOne {
	mutation := newEvolutionPatternMutation(c.config, OpUpdateOne, withEvolutionPatternID(id))
	return &EvolutionPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvolutionPattern.
func (c *EvolutionPatternClient) Delete() *EvolutionPatternDelete {
	mutation := newEvolutionPatternMutation(c.config, OpDelete)
	return &EvolutionPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvolutionPatternClient) DeleteOne(_m *EvolutionPattern) *EvolutionPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvolutionPatternClient) DeleteOneID(id string) *EvolutionPatternDeleteOne {
	builder := c.Delete().Where(evolutionpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvolutionPatternDeleteOne{builder}
}

// Query returns a query builder for EvolutionPattern.
func (c *EvolutionPatternClient) Query() *EvolutionPatternQuery {
	return &EvolutionPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvolutionPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a EvolutionPattern entity by its id.
func (c *EvolutionPatternClient) Get(ctx context.Context, id string) (*EvolutionPattern, error) {
	return c.Query().Where(evolutionpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvolutionPatternClient) GetX(ctx context.Context, id string) *EvolutionPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvolutionPatternClient) Hooks() []Hook {
	return c.hooks.EvolutionPattern
}

// Interceptors returns the client interceptors.
func (c *EvolutionPatternClient) Interceptors() []Interceptor {
	return c.inters.EvolutionPattern
}

func (c *EvolutionPatternClient) mutate(ctx context.Context, m *EvolutionPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvolutionPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvolutionPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvolutionPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvolutionPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvolutionPattern mutation op: %q", m.Op())
	}
}

// MemoryEntryClient is a client for the MemoryEntry schema.
type MemoryEntryClient struct {
	config
}

// NewMemoryEntryClient returns a client for the MemoryEntry from the given config.
func NewMemoryEntryClient(c config) *MemoryEntryClient {
	return &MemoryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryentry.Hooks(f(g(h())))`.
func (c *MemoryEntryClient) Use(hooks ...Hook) {
	c.hooks.MemoryEntry = append(c.hooks.MemoryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryentry.Intercept(f(g(h())))`.
func (c *MemoryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryEntry = append(c.inters.MemoryEntry, interceptors...)
}

// Create returns a builder for creating a MemoryEntry entity.
func (c *MemoryEntryClient) Create() *MemoryEntryCreate {
	mutation := newMemoryEntryMutation(c.config, OpCreate)
	return &MemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryEntry entities.
func (c *MemoryEntryClient) CreateBulk(builders ...*MemoryEntryCreate) *MemoryEntryCreateBulk {
	return &MemoryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryEntryClient) MapCreateBulk(slice any, setFunc func(*MemoryEntryCreate, int)) *MemoryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryEntryCreateBulk{err: fmt.Errorf("calling to MemoryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryEntry.
func (c *MemoryEntryClient) Update() *MemoryEntryUpdate {
	mutation := newMemoryEntryMutation(c.config, OpUpdate)
	return &MemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryEntryClient) UpdateOne(_m *MemoryEntry) *MemoryEntryUpdateOne {
	mutation := newMemoryEntryMutation(c.config, OpUpdateOne, withMemoryEntry(_m))
	return &MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryEntryClient) UpdateOneID(id string) *MemoryEntryUpdateOne {
	mutation := newMemoryEntryMutation(c.config, OpUpdateOne, withMemoryEntryID(id))
	return &MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryEntry.
func (c *MemoryEntryClient) Delete() *MemoryEntryDelete {
	mutation := newMemoryEntryMutation(c.config, OpDelete)
	return &MemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryEntryClient) DeleteOne(_m *MemoryEntry) *MemoryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryEntryClient) DeleteOneID(id string) *MemoryEntryDeleteOne {
	builder := c.Delete().Where(memoryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryEntryDeleteOne{builder}
}

// Query returns a query builder for MemoryEntry.
func (c *MemoryEntryClient) Query() *MemoryEntryQuery {
	return &MemoryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryEntry entity by its id.
func (c *MemoryEntryClient) Get(ctx context.Context, id string) (*MemoryEntry, error) {
	return c.Query().Where(memoryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryEntryClient) GetX(ctx context.Context, id string) *MemoryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryEntryClient) Hooks() []Hook {
	return c.hooks.MemoryEntry
}

// Interceptors returns the client interceptors.
func (c *MemoryEntryClient) Interceptors() []Interceptor {
	return c.inters.MemoryEntry
}

func (c *MemoryEntryClient) mutate(ctx context.Context, m *MemoryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryEntry mutation op: %q", m.Op())
	}
}

// PaymentReceiptClient is a client for the PaymentReceipt schema.
type PaymentReceiptClient struct {
	config
}

// NewPaymentReceiptClient returns a client for the PaymentReceipt from the given config.
func NewPaymentReceiptClient(c config) *PaymentReceiptClient {
	return &PaymentReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paymentreceipt.Hooks(f(g(h())))`.
func (c *PaymentReceiptClient) Use(hooks ...Hook) {
	c.hooks.PaymentReceipt = append(c.hooks.PaymentReceipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paymentreceipt.Intercept(f(g(h())))`.
func (c *PaymentReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaymentReceipt = append(c.inters.PaymentReceipt, interceptors...)
}

// Create returns a builder for creating a PaymentReceipt entity.
func (c *PaymentReceiptClient) Create() *PaymentReceiptCreate {
	mutation := newPaymentReceiptMutation(c.config, OpCreate)
	return &PaymentReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaymentReceipt entities.
func (c *PaymentReceiptClient) CreateBulk(builders ...*PaymentReceiptCreate) *PaymentReceiptCreateBulk {
	return &PaymentReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentReceiptClient) MapCreateBulk(slice any, setFunc func(*PaymentReceiptCreate, int)) *PaymentReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentReceiptCreateBulk{err: fmt.Errorf("calling to PaymentReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaymentReceipt.
func (c *PaymentReceiptClient) Update() *PaymentReceiptUpdate {
	mutation := newPaymentReceiptMutation(c.config, OpUpdate)
	return &PaymentReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentReceiptClient) UpdateOne(_m *PaymentReceipt) *PaymentReceiptUpdateOne {
	mutation := newPaymentReceiptMutation(c.config, OpUpdateOne, withPaymentReceipt(_m))
	return &PaymentReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentReceiptClient) UpdateOneID(id string) *PaymentReceiptUpdateOne {
	mutation := newPaymentReceiptMutation(c.config, OpUpdateOne, withPaymentReceiptID(id))
	return &PaymentReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaymentReceipt.
func (c *PaymentReceiptClient) Delete() *PaymentReceiptDelete {
	mutation := newPaymentReceiptMutation(c.config, OpDelete)
	return &PaymentReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentReceiptClient) DeleteOne(_m *PaymentReceipt) *PaymentReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentReceiptClient) DeleteOneID(id string) *PaymentReceiptDeleteOne {
	builder := c.Delete().Where(paymentreceipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentReceiptDeleteOne{builder}
}

// Query returns a query builder for PaymentReceipt.
func (c *PaymentReceiptClient) Query() *PaymentReceiptQuery {
	return &PaymentReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaymentReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a PaymentReceipt entity by its id.
func (c *PaymentReceiptClient) Get(ctx context.Context, id string) (*PaymentReceipt, error) {
	return c.Query().Where(paymentreceipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentReceiptClient) GetX(ctx context.Context, id string) *PaymentReceipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaymentReceiptClient) Hooks() []Hook {
	return c.hooks.PaymentReceipt
}

// Interceptors returns the client interceptors.
func (c *PaymentReceiptClient) Interceptors() []Interceptor {
	return c.inters.PaymentReceipt
}

func (c *PaymentReceiptClient) mutate(ctx context.Context, m *PaymentReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaymentReceipt mutation op: %q", m.Op())
	}
}

// TaskRunClient is a client for the TaskRun schema.
type TaskRunClient struct {
	config
}

// NewTaskRunClient returns a client for the TaskRun from the given config.
func NewTaskRunClient(c config) *TaskRunClient {
	return &TaskRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskrun.Hooks(f(g(h())))`.
func (c *TaskRunClient) Use(hooks ...Hook) {
	c.hooks.TaskRun = append(c.hooks.TaskRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskrun.Intercept(f(g(h())))`.
func (c *TaskRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskRun = append(c.inters.TaskRun, interceptors...)
}

// Create returns a builder for creating a TaskRun entity.
func (c *TaskRunClient) Create() *TaskRunCreate {
	mutation := newTaskRunMutation(c.config, OpCreate)
	return &TaskRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskRun entities.
func (c *TaskRunClient) CreateBulk(builders ...*TaskRunCreate) *TaskRunCreateBulk {
	return &TaskRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskRunClient) MapCreateBulk(slice any, setFunc func(*TaskRunCreate, int)) *TaskRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskRunCreateBulk{err: fmt.Errorf("calling to TaskRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskRun.
func (c *TaskRunClient) Update() *TaskRunUpdate {
	mutation := newTaskRunMutation(c.config, OpUpdate)
	return &TaskRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskRunClient) UpdateOne(_m *TaskRun) *TaskRunUpdateOne {
	mutation := newTaskRunMutation(c.config, OpUpdateOne, withTaskRun(_m))
	return &TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskRunClient) UpdateOneID(id string) *TaskRunUpdateOne {
	mutation := newTaskRunMutation(c.config, OpUpdateOne, withTaskRunID(id))
	return &TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskRun.
func (c *TaskRunClient) Delete() *TaskRunDelete {
	mutation := newTaskRunMutation(c.config, OpDelete)
	return &TaskRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskRunClient) DeleteOne(_m *TaskRun) *TaskRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskRunClient) DeleteOneID(id string) *TaskRunDeleteOne {
	builder := c.Delete().Where(taskrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskRunDeleteOne{builder}
}

// Query returns a query builder for TaskRun.
func (c *TaskRunClient) Query() *TaskRunQuery {
	return &TaskRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskRun},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskRun entity by its id.
func (c *TaskRunClient) Get(ctx context.Context, id string) (*TaskRun, error) {
	return c.Query().Where(taskrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskRunClient) GetX(ctx context.Context, id string) *TaskRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskRunClient) Hooks() []Hook {
	return c.hooks.TaskRun
}

// Interceptors returns the client interceptors.
func (c *TaskRunClient) Interceptors() []Interceptor {
	return c.inters.TaskRun
}

func (c *TaskRunClient) mutate(ctx context.Context, m *TaskRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskRun mutation op: %q", m.Op())
	}
}

// TrajectoryClient is a client for the Trajectory schema.
type TrajectoryClient struct {
	config
}

// NewTrajectoryClient returns a client for the Trajectory from the given config.
func NewTrajectoryClient(c config) *TrajectoryClient {
	return &TrajectoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trajectory.Hooks(f(g(h())))`.
func (c *TrajectoryClient) Use(hooks ...Hook) {
	c.hooks.Trajectory = append(c.hooks.Trajectory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trajectory.Intercept(f(g(h())))`.
func (c *TrajectoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Trajectory = append(c.inters.Trajectory, interceptors...)
}

// Create returns a builder for creating a Trajectory entity.
func (c *TrajectoryClient) Create() *TrajectoryCreate {
	mutation := newTrajectoryMutation(c.config, OpCreate)
	return &TrajectoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Trajectory entities.
func (c *TrajectoryClient) CreateBulk(builders ...*TrajectoryCreate) *TrajectoryCreateBulk {
	return &TrajectoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrajectoryClient) MapCreateBulk(slice any, setFunc func(*TrajectoryCreate, int)) *TrajectoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrajectoryCreateBulk{err: fmt.Errorf("calling to TrajectoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrajectoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrajectoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Trajectory.
func (c *TrajectoryClient) Update() *TrajectoryUpdate {
	mutation := newTrajectoryMutation(c.config, OpUpdate)
	return &TrajectoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrajectoryClient) UpdateOne(_m *Trajectory) *TrajectoryUpdateOne {
	mutation := newTrajectoryMutation(c.config, OpUpdateOne, withTrajectory(_m))
	return &TrajectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrajectoryClient) UpdateOneID(id string) *TrajectoryUpdateOne {
	mutation := newTrajectoryMutation(c.config, OpUpdateOne, withTrajectoryID(id))
	return &TrajectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Trajectory.
func (c *TrajectoryClient) Delete() *TrajectoryDelete {
	mutation := newTrajectoryMutation(c.config, OpDelete)
	return &TrajectoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrajectoryClient) DeleteOne(_m *Trajectory) *TrajectoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrajectoryClient) DeleteOneID(id string) *TrajectoryDeleteOne {
	builder := c.Delete().Where(trajectory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrajectoryDeleteOne{builder}
}

// Query returns a query builder for Trajectory.
func (c *TrajectoryClient) Query() *TrajectoryQuery {
	return &TrajectoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrajectory},
		inters: c.Interceptors(),
	}
}

// Get returns a Trajectory entity by its id.
func (c *TrajectoryClient) Get(ctx context.Context, id string) (*Trajectory, error) {
	return c.Query().Where(trajectory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrajectoryClient) GetX(ctx context.Context, id string) *Trajectory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrajectoryClient) Hooks() []Hook {
	return c.hooks.Trajectory
}

// Interceptors returns the client interceptors.
func (c *TrajectoryClient) Interceptors() []Interceptor {
	return c.inters.Trajectory
}

func (c *TrajectoryClient) mutate(ctx context.Context, m *TrajectoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrajectoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrajectoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrajectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrajectoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Trajectory mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEntry, BudgetLedger, EvolutionAttempt, EvolutionPattern, MemoryEntry,
		PaymentReceipt, TaskRun, Trajectory []ent.Hook
	}
	inters struct {
		AuditEntry, BudgetLedger, EvolutionAttempt, EvolutionPattern, MemoryEntry,
		PaymentReceipt, TaskRun, Trajectory []ent.Interceptor
	}
)
