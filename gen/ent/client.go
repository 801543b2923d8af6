// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/docledger/docledger/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/docledger/docledger/gen/ent/receipt"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Bill is the client for interacting with the Bill builders.
	Bill *BillClient
	// InboxItem is the client for interacting with the InboxItem builders.
	InboxItem *InboxItemClient
	// IncomingFile is the client for interacting with the IncomingFile builders.
	IncomingFile *IncomingFileClient
	// Receipt is the client for interacting with the Receipt builders.
	Receipt *ReceiptClient
	// ServiceProvider is the client for interacting with the ServiceProvider builders.
	ServiceProvider *ServiceProviderClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Bill = NewBillClient(c.config)
	c.InboxItem = NewInboxItemClient(c.config)
	c.IncomingFile = NewIncomingFileClient(c.config)
	c.Receipt = NewReceiptClient(c.config)
	c.ServiceProvider = NewServiceProviderClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Bill:            NewBillClient(cfg),
		InboxItem:       NewInboxItemClient(cfg),
		IncomingFile:    NewIncomingFileClient(cfg),
		Receipt:         NewReceiptClient(cfg),
		ServiceProvider: NewServiceProviderClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Bill:            NewBillClient(cfg),
		InboxItem:       NewInboxItemClient(cfg),
		IncomingFile:    NewIncomingFileClient(cfg),
		Receipt:         NewReceiptClient(cfg),
		ServiceProvider: NewServiceProviderClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Bill.
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
	c.Bill.Use(hooks...)
	c.InboxItem.Use(hooks...)
	c.IncomingFile.Use(hooks...)
	c.Receipt.Use(hooks...)
	c.ServiceProvider.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Bill.Intercept(interceptors...)
	c.InboxItem.Intercept(interceptors...)
	c.IncomingFile.Intercept(interceptors...)
	c.Receipt.Intercept(interceptors...)
	c.ServiceProvider.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BillMutation:
		return c.Bill.mutate(ctx, m)
	case *InboxItemMutation:
		return c.InboxItem.mutate(ctx, m)
	case *IncomingFileMutation:
		return c.IncomingFile.mutate(ctx, m)
	case *ReceiptMutation:
		return c.Receipt.mutate(ctx, m)
	case *ServiceProviderMutation:
		return c.ServiceProvider.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BillClient is a client for the Bill schema.
type BillClient struct {
	config
}

// NewBillClient returns a client for the Bill from the given config.
func NewBillClient(c config) *BillClient {
	return &BillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bill.Hooks(f(g(h())))`.
func (c *BillClient) Use(hooks ...Hook) {
	c.hooks.Bill = append(c.hooks.Bill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bill.Intercept(f(g(h())))`.
func (c *BillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Bill = append(c.inters.Bill, interceptors...)
}

// Create returns a builder for creating a Bill entity.
func (c *BillClient) Create() *BillCreate {
	mutation := newBillMutation(c.config, OpCreate)
	return &BillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Bill entities.
func (c *BillClient) CreateBulk(builders ...*BillCreate) *BillCreateBulk {
	return &BillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BillClient) MapCreateBulk(slice any, setFunc func(*BillCreate, int)) *BillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BillCreateBulk{err: fmt.Errorf("calling to BillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Bill.
func (c *BillClient) Update() *BillUpdate {
	mutation := newBillMutation(c.config, OpUpdate)
	return &BillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BillClient) UpdateOne(_m *Bill) *BillUpdateOne {
	mutation := newBillMutation(c.config, OpUpdateOne, withBill(_m))
	return &BillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BillClient) UpdateOneID(id uuid.UUID) *BillUpdateOne {
	mutation := newBillMutation(c.config, OpUpdateOne, withBillID(id))
	return &BillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Bill.
func (c *BillClient) Delete() *BillDelete {
	mutation := newBillMutation(c.config, OpDelete)
	return &BillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BillClient) DeleteOne(_m *Bill) *BillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BillClient) DeleteOneID(id uuid.UUID) *BillDeleteOne {
	builder := c.Delete().Where(bill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BillDeleteOne{builder}
}

// Query returns a query builder for Bill.
func (c *BillClient) Query() *BillQuery {
	return &BillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBill},
		inters: c.Interceptors(),
	}
}

// Get returns a Bill entity by its id.
func (c *BillClient) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return c.Query().Where(bill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BillClient) GetX(ctx context.Context, id uuid.UUID) *Bill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServiceProvider queries the service_provider edge of a Bill.
func (c *BillClient) QueryServiceProvider(_m *Bill) *ServiceProviderQuery {
	query := (&ServiceProviderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bill.Table, bill.FieldID, id),
			sqlgraph.To(serviceprovider.Table, serviceprovider.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bill.ServiceProviderTable, bill.ServiceProviderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BillClient) Hooks() []Hook {
	return c.hooks.Bill
}

// Interceptors returns the client interceptors.
func (c *BillClient) Interceptors() []Interceptor {
	return c.inters.Bill
}

func (c *BillClient) mutate(ctx context.Context, m *BillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Bill mutation op: %q", m.Op())
	}
}

// InboxItemClient is a client for the InboxItem schema.
type InboxItemClient struct {
	config
}

// NewInboxItemClient returns a client for the InboxItem from the given config.
func NewInboxItemClient(c config) *InboxItemClient {
	return &InboxItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboxitem.Hooks(f(g(h())))`.
func (c *InboxItemClient) Use(hooks ...Hook) {
	c.hooks.InboxItem = append(c.hooks.InboxItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboxitem.Intercept(f(g(h())))`.
func (c *InboxItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboxItem = append(c.inters.InboxItem, interceptors...)
}

// Create returns a builder for creating a InboxItem entity.
func (c *InboxItemClient) Create() *InboxItemCreate {
	mutation := newInboxItemMutation(c.config, OpCreate)
	return &InboxItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboxItem entities.
func (c *InboxItemClient) CreateBulk(builders ...*InboxItemCreate) *InboxItemCreateBulk {
	return &InboxItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboxItemClient) MapCreateBulk(slice any, setFunc func(*InboxItemCreate, int)) *InboxItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboxItemCreateBulk{err: fmt.Errorf("calling to InboxItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboxItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboxItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboxItem.
func (c *InboxItemClient) Update() *InboxItemUpdate {
	mutation := newInboxItemMutation(c.config, OpUpdate)
	return &InboxItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboxItemClient) UpdateOne(_m *InboxItem) *InboxItemUpdateOne {
	mutation := newInboxItemMutation(c.config, OpUpdateOne, withInboxItem(_m))
	return &InboxItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboxItemClient) UpdateOneID(id uuid.UUID) *InboxItemUpdateOne {
	mutation := newInboxItemMutation(c.config, OpUpdateOne, withInboxItemID(id))
	return &InboxItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboxItem.
func (c *InboxItemClient) Delete() *InboxItemDelete {
	mutation := newInboxItemMutation(c.config, OpDelete)
	return &InboxItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboxItemClient) DeleteOne(_m *InboxItem) *InboxItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboxItemClient) DeleteOneID(id uuid.UUID) *InboxItemDeleteOne {
	builder := c.Delete().Where(inboxitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboxItemDeleteOne{builder}
}

// Query returns a query builder for InboxItem.
func (c *InboxItemClient) Query() *InboxItemQuery {
	return &InboxItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboxItem},
		inters: c.Interceptors(),
	}
}

// Get returns a InboxItem entity by its id.
func (c *InboxItemClient) Get(ctx context.Context, id uuid.UUID) (*InboxItem, error) {
	return c.Query().Where(inboxitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboxItemClient) GetX(ctx context.Context, id uuid.UUID) *InboxItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a InboxItem.
func (c *InboxItemClient) QueryFile(_m *InboxItem) *IncomingFileQuery {
	query := (&IncomingFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inboxitem.Table, inboxitem.FieldID, id),
			sqlgraph.To(incomingfile.Table, incomingfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inboxitem.FileTable, inboxitem.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InboxItemClient) Hooks() []Hook {
	return c.hooks.InboxItem
}

// Interceptors returns the client interceptors.
func (c *InboxItemClient) Interceptors() []Interceptor {
	return c.inters.InboxItem
}

func (c *InboxItemClient) mutate(ctx context.Context, m *InboxItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboxItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboxItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboxItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboxItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboxItem mutation op: %q", m.Op())
	}
}

// IncomingFileClient is a client for the IncomingFile schema.
type IncomingFileClient struct {
	config
}

// NewIncomingFileClient returns a client for the IncomingFile from the given config.
func NewIncomingFileClient(c config) *IncomingFileClient {
	return &IncomingFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incomingfile.Hooks(f(g(h())))`.
func (c *IncomingFileClient) Use(hooks ...Hook) {
	c.hooks.IncomingFile = append(c.hooks.IncomingFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incomingfile.Intercept(f(g(h())))`.
func (c *IncomingFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.IncomingFile = append(c.inters.IncomingFile, interceptors...)
}

// Create returns a builder for creating a IncomingFile entity.
func (c *IncomingFileClient) Create() *IncomingFileCreate {
	mutation := newIncomingFileMutation(c.config, OpCreate)
	return &IncomingFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IncomingFile entities.
func (c *IncomingFileClient) CreateBulk(builders ...*IncomingFileCreate) *IncomingFileCreateBulk {
	return &IncomingFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncomingFileClient) MapCreateBulk(slice any, setFunc func(*IncomingFileCreate, int)) *IncomingFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncomingFileCreateBulk{err: fmt.Errorf("calling to IncomingFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncomingFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncomingFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IncomingFile.
func (c *IncomingFileClient) Update() *IncomingFileUpdate {
	mutation := newIncomingFileMutation(c.config, OpUpdate)
	return &IncomingFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncomingFileClient) UpdateOne(_m *IncomingFile) *IncomingFileUpdateOne {
	mutation := newIncomingFileMutation(c.config, OpUpdateOne, withIncomingFile(_m))
	return &IncomingFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncomingFileClient) UpdateOneID(id uuid.UUID) *IncomingFileUpdateOne {
	mutation := newIncomingFileMutation(c.config, OpUpdateOne, withIncomingFileID(id))
	return &IncomingFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IncomingFile.
func (c *IncomingFileClient) Delete() *IncomingFileDelete {
	mutation := newIncomingFileMutation(c.config, OpDelete)
	return &IncomingFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncomingFileClient) DeleteOne(_m *IncomingFile) *IncomingFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncomingFileClient) DeleteOneID(id uuid.UUID) *IncomingFileDeleteOne {
	builder := c.Delete().Where(incomingfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncomingFileDeleteOne{builder}
}

// Query returns a query builder for IncomingFile.
func (c *IncomingFileClient) Query() *IncomingFileQuery {
	return &IncomingFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncomingFile},
		inters: c.Interceptors(),
	}
}

// Get returns a IncomingFile entity by its id.
func (c *IncomingFileClient) Get(ctx context.Context, id uuid.UUID) (*IncomingFile, error) {
	return c.Query().Where(incomingfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncomingFileClient) GetX(ctx context.Context, id uuid.UUID) *IncomingFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInboxItems queries the inbox_items edge of a IncomingFile.
func (c *IncomingFileClient) QueryInboxItems(_m *IncomingFile) *InboxItemQuery {
	query := (&InboxItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incomingfile.Table, incomingfile.FieldID, id),
			sqlgraph.To(inboxitem.Table, inboxitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incomingfile.InboxItemsTable, incomingfile.InboxItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IncomingFileClient) Hooks() []Hook {
	return c.hooks.IncomingFile
}

// Interceptors returns the client interceptors.
func (c *IncomingFileClient) Interceptors() []Interceptor {
	return c.inters.IncomingFile
}

func (c *IncomingFileClient) mutate(ctx context.Context, m *IncomingFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncomingFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncomingFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncomingFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncomingFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IncomingFile mutation op: %q", m.Op())
	}
}

// ReceiptClient is a client for the Receipt schema.
type ReceiptClient struct {
	config
}

// NewReceiptClient returns a client for the Receipt from the given config.
func NewReceiptClient(c config) *ReceiptClient {
	return &ReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receipt.Hooks(f(g(h())))`.
func (c *ReceiptClient) Use(hooks ...Hook) {
	c.hooks.Receipt = append(c.hooks.Receipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receipt.Intercept(f(g(h())))`.
func (c *ReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Receipt = append(c.inters.Receipt, interceptors...)
}

// Create returns a builder for creating a Receipt entity.
func (c *ReceiptClient) Create() *ReceiptCreate {
	mutation := newReceiptMutation(c.config, OpCreate)
	return &ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Receipt entities.
func (c *ReceiptClient) CreateBulk(builders ...*ReceiptCreate) *ReceiptCreateBulk {
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptClient) MapCreateBulk(slice any, setFunc func(*ReceiptCreate, int)) *ReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptCreateBulk{err: fmt.Errorf("calling to ReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Receipt.
func (c *ReceiptClient) Update() *ReceiptUpdate {
	mutation := newReceiptMutation(c.config, OpUpdate)
	return &ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptClient) UpdateOne(_m *Receipt) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceipt(_m))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptClient) UpdateOneID(id uuid.UUID) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceiptID(id))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Receipt.
func (c *ReceiptClient) Delete() *ReceiptDelete {
	mutation := newReceiptMutation(c.config, OpDelete)
	return &ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptClient) DeleteOne(_m *Receipt) *ReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptClient) DeleteOneID(id uuid.UUID) *ReceiptDeleteOne {
	builder := c.Delete().Where(receipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptDeleteOne{builder}
}

// Query returns a query builder for Receipt.
func (c *ReceiptClient) Query() *ReceiptQuery {
	return &ReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a Receipt entity by its id.
func (c *ReceiptClient) Get(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return c.Query().Where(receipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptClient) GetX(ctx context.Context, id uuid.UUID) *Receipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServiceProvider queries the service_provider edge of a Receipt.
func (c *ReceiptClient) QueryServiceProvider(_m *Receipt) *ServiceProviderQuery {
	query := (&ServiceProviderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(serviceprovider.Table, serviceprovider.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receipt.ServiceProviderTable, receipt.ServiceProviderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptClient) Hooks() []Hook {
	return c.hooks.Receipt
}

// Interceptors returns the client interceptors.
func (c *ReceiptClient) Interceptors() []Interceptor {
	return c.inters.Receipt
}

func (c *ReceiptClient) mutate(ctx context.Context, m *ReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Receipt mutation op: %q", m.Op())
	}
}

// ServiceProviderClient is a client for the ServiceProvider schema.
type ServiceProviderClient struct {
	config
}

// NewServiceProviderClient returns a client for the ServiceProvider from the given config.
func NewServiceProviderClient(c config) *ServiceProviderClient {
	return &ServiceProviderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serviceprovider.Hooks(f(g(h())))`.
func (c *ServiceProviderClient) Use(hooks ...Hook) {
	c.hooks.ServiceProvider = append(c.hooks.ServiceProvider, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serviceprovider.Intercept(f(g(h())))`.
func (c *ServiceProviderClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceProvider = append(c.inters.ServiceProvider, interceptors...)
}

// Create returns a builder for creating a ServiceProvider entity.
func (c *ServiceProviderClient) Create() *ServiceProviderCreate {
	mutation := newServiceProviderMutation(c.config, OpCreate)
	return &ServiceProviderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceProvider entities.
func (c *ServiceProviderClient) CreateBulk(builders ...*ServiceProviderCreate) *ServiceProviderCreateBulk {
	return &ServiceProviderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceProviderClient) MapCreateBulk(slice any, setFunc func(*ServiceProviderCreate, int)) *ServiceProviderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceProviderCreateBulk{err: fmt.Errorf("calling to ServiceProviderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceProviderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceProviderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceProvider.
func (c *ServiceProviderClient) Update() *ServiceProviderUpdate {
	mutation := newServiceProviderMutation(c.config, OpUpdate)
	return &ServiceProviderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceProviderClient) UpdateOne(_m *ServiceProvider) *ServiceProviderUpdateOne {
	mutation := newServiceProviderMutation(c.config, OpUpdateOne, withServiceProvider(_m))
	return &ServiceProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceProviderClient) UpdateOneID(id uuid.UUID) *ServiceProviderUpdateOne {
	mutation := newServiceProviderMutation(c.config, OpUpdateOne, withServiceProviderID(id))
	return &ServiceProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceProvider.
func (c *ServiceProviderClient) Delete() *ServiceProviderDelete {
	mutation := newServiceProviderMutation(c.config, OpDelete)
	return &ServiceProviderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceProviderClient) DeleteOne(_m *ServiceProvider) *ServiceProviderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceProviderClient) DeleteOneID(id uuid.UUID) *ServiceProviderDeleteOne {
	builder := c.Delete().Where(serviceprovider.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceProviderDeleteOne{builder}
}

// Query returns a query builder for ServiceProvider.
func (c *ServiceProviderClient) Query() *ServiceProviderQuery {
	return &ServiceProviderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceProvider},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceProvider entity by its id.
func (c *ServiceProviderClient) Get(ctx context.Context, id uuid.UUID) (*ServiceProvider, error) {
	return c.Query().Where(serviceprovider.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceProviderClient) GetX(ctx context.Context, id uuid.UUID) *ServiceProvider {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBills queries the bills edge of a ServiceProvider.
func (c *ServiceProviderClient) QueryBills(_m *ServiceProvider) *BillQuery {
	query := (&BillClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(serviceprovider.Table, serviceprovider.FieldID, id),
			sqlgraph.To(bill.Table, bill.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, serviceprovider.BillsTable, serviceprovider.BillsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReceipts queries the receipts edge of a ServiceProvider.
func (c *ServiceProviderClient) QueryReceipts(_m *ServiceProvider) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(serviceprovider.Table, serviceprovider.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, serviceprovider.ReceiptsTable, serviceprovider.ReceiptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServiceProviderClient) Hooks() []Hook {
	return c.hooks.ServiceProvider
}

// Interceptors returns the client interceptors.
func (c *ServiceProviderClient) Interceptors() []Interceptor {
	return c.inters.ServiceProvider
}

func (c *ServiceProviderClient) mutate(ctx context.Context, m *ServiceProviderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceProviderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceProviderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceProviderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceProvider mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Bill, InboxItem, IncomingFile, Receipt, ServiceProvider []ent.Hook
	}
	inters struct {
		Bill, InboxItem, IncomingFile, Receipt, ServiceProvider []ent.Interceptor
	}
)
