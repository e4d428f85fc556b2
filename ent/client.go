// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cogniquest/cogniquest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/cogniquest/cogniquest/ent/historyitem"
	"github.com/cogniquest/cogniquest/ent/llmrequest"
	"github.com/cogniquest/cogniquest/ent/sessionstate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// HistoryItem is the client for interacting with the HistoryItem builders.
	HistoryItem *HistoryItemClient
	// LLMRequest is the client for interacting with the LLMRequest builders.
	LLMRequest *LLMRequestClient
	// SessionState is the client for interacting with the SessionState builders.
	SessionState *SessionStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.HistoryItem = NewHistoryItemClient(c.config)
	c.LLMRequest = NewLLMRequestClient(c.config)
	c.SessionState = NewSessionStateClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		HistoryItem:  NewHistoryItemClient(cfg),
		LLMRequest:   NewLLMRequestClient(cfg),
		SessionState: NewSessionStateClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		HistoryItem:  NewHistoryItemClient(cfg),
		LLMRequest:   NewLLMRequestClient(cfg),
		SessionState: NewSessionStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		HistoryItem.
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
	c.HistoryItem.Use(hooks...)
	c.LLMRequest.Use(hooks...)
	c.SessionState.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.HistoryItem.Intercept(interceptors...)
	c.LLMRequest.Intercept(interceptors...)
	c.SessionState.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *HistoryItemMutation:
		return c.HistoryItem.mutate(ctx, m)
	case *LLMRequestMutation:
		return c.LLMRequest.mutate(ctx, m)
	case *SessionStateMutation:
		return c.SessionState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// HistoryItemClient is a client for the HistoryItem schema.
type HistoryItemClient struct {
	config
}

// NewHistoryItemClient returns a client for the HistoryItem from the given config.
func NewHistoryItemClient(c config) *HistoryItemClient {
	return &HistoryItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `historyitem.Hooks(f(g(h())))`.
func (c *HistoryItemClient) Use(hooks ...Hook) {
	c.hooks.HistoryItem = append(c.hooks.HistoryItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `historyitem.Intercept(f(g(h())))`.
func (c *HistoryItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.HistoryItem = append(c.inters.HistoryItem, interceptors...)
}

// Create returns a builder for creating a HistoryItem entity.
func (c *HistoryItemClient) Create() *HistoryItemCreate {
	mutation := newHistoryItemMutation(c.config, OpCreate)
	return &HistoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HistoryItem entities.
func (c *HistoryItemClient) CreateBulk(builders ...*HistoryItemCreate) *HistoryItemCreateBulk {
	return &HistoryItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HistoryItemClient) MapCreateBulk(slice any, setFunc func(*HistoryItemCreate, int)) *HistoryItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HistoryItemCreateBulk{err: fmt.Errorf("calling to HistoryItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HistoryItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HistoryItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HistoryItem.
func (c *HistoryItemClient) Update() *HistoryItemUpdate {
	mutation := newHistoryItemMutation(c.config, OpUpdate)
	return &HistoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HistoryItemClient) UpdateOne(_m *HistoryItem) *HistoryItemUpdateOne {
	mutation := newHistoryItemMutation(c.config, OpUpdateOne, withHistoryItem(_m))
	return &HistoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HistoryItemClient) UpdateOneID(id int) *HistoryItemUpdateOne {
	mutation := newHistoryItemMutation(c.config, OpUpdateOne, withHistoryItemID(id))
	return &HistoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HistoryItem.
func (c *HistoryItemClient) Delete() *HistoryItemDelete {
	mutation := newHistoryItemMutation(c.config, OpDelete)
	return &HistoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HistoryItemClient) DeleteOne(_m *HistoryItem) *HistoryItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HistoryItemClient) DeleteOneID(id int) *HistoryItemDeleteOne {
	builder := c.Delete().Where(historyitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HistoryItemDeleteOne{builder}
}

// Query returns a query builder for HistoryItem.
func (c *HistoryItemClient) Query() *HistoryItemQuery {
	return &HistoryItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHistoryItem},
		inters: c.Interceptors(),
	}
}

// Get returns a HistoryItem entity by its id.
func (c *HistoryItemClient) Get(ctx context.Context, id int) (*HistoryItem, error) {
	return c.Query().Where(historyitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HistoryItemClient) GetX(ctx context.Context, id int) *HistoryItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HistoryItemClient) Hooks() []Hook {
	return c.hooks.HistoryItem
}

// Interceptors returns the client interceptors.
func (c *HistoryItemClient) Interceptors() []Interceptor {
	return c.inters.HistoryItem
}

func (c *HistoryItemClient) mutate(ctx context.Context, m *HistoryItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HistoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HistoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HistoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HistoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HistoryItem mutation op: %q", m.Op())
	}
}

// LLMRequestClient is a client for the LLMRequest schema.
type LLMRequestClient struct {
	config
}

// NewLLMRequestClient returns a client for the LLMRequest from the given config.
func NewLLMRequestClient(c config) *LLMRequestClient {
	return &LLMRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequest.Hooks(f(g(h())))`.
func (c *LLMRequestClient) Use(hooks ...Hook) {
	c.hooks.LLMRequest = append(c.hooks.LLMRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequest.Intercept(f(g(h())))`.
func (c *LLMRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequest = append(c.inters.LLMRequest, interceptors...)
}

// Create returns a builder for creating a LLMRequest entity.
func (c *LLMRequestClient) Create() *LLMRequestCreate {
	mutation := newLLMRequestMutation(c.config, OpCreate)
	return &LLMRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequest entities.
func (c *LLMRequestClient) CreateBulk(builders ...*LLMRequestCreate) *LLMRequestCreateBulk {
	return &LLMRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestClient) MapCreateBulk(slice any, setFunc func(*LLMRequestCreate, int)) *LLMRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestCreateBulk{err: fmt.Errorf("calling to LLMRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequest.
func (c *LLMRequestClient) Update() *LLMRequestUpdate {
	mutation := newLLMRequestMutation(c.config, OpUpdate)
	return &LLMRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestClient) UpdateOne(_m *LLMRequest) *LLMRequestUpdateOne {
	mutation := newLLMRequestMutation(c.config, OpUpdateOne, withLLMRequest(_m))
	return &LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestClient) UpdateOneID(id int) *LLMRequestUpdateOne {
	mutation := newLLMRequestMutation(c.config, OpUpdateOne, withLLMRequestID(id))
	return &LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequest.
func (c *LLMRequestClient) Delete() *LLMRequestDelete {
	mutation := newLLMRequestMutation(c.config, OpDelete)
	return &LLMRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestClient) DeleteOne(_m *LLMRequest) *LLMRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestClient) DeleteOneID(id int) *LLMRequestDeleteOne {
	builder := c.Delete().Where(llmrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestDeleteOne{builder}
}

// Query returns a query builder for LLMRequest.
func (c *LLMRequestClient) Query() *LLMRequestQuery {
	return &LLMRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequest entity by its id.
func (c *LLMRequestClient) Get(ctx context.Context, id int) (*LLMRequest, error) {
	return c.Query().Where(llmrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestClient) GetX(ctx context.Context, id int) *LLMRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestClient) Hooks() []Hook {
	return c.hooks.LLMRequest
}

// Interceptors returns the client interceptors.
func (c *LLMRequestClient) Interceptors() []Interceptor {
	return c.inters.LLMRequest
}

func (c *LLMRequestClient) mutate(ctx context.Context, m *LLMRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequest mutation op: %q", m.Op())
	}
}

// SessionStateClient is a client for the SessionState schema.
type SessionStateClient struct {
	config
}

// NewSessionStateClient returns a client for the SessionState from the given config.
func NewSessionStateClient(c config) *SessionStateClient {
	return &SessionStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionstate.Hooks(f(g(h())))`.
func (c *SessionStateClient) Use(hooks ...Hook) {
	c.hooks.SessionState = append(c.hooks.SessionState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionstate.Intercept(f(g(h())))`.
func (c *SessionStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionState = append(c.inters.SessionState, interceptors...)
}

// Create returns a builder for creating a SessionState entity.
func (c *SessionStateClient) Create() *SessionStateCreate {
	mutation := newSessionStateMutation(c.config, OpCreate)
	return &SessionStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionState entities.
func (c *SessionStateClient) CreateBulk(builders ...*SessionStateCreate) *SessionStateCreateBulk {
	return &SessionStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionStateClient) MapCreateBulk(slice any, setFunc func(*SessionStateCreate, int)) *SessionStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionStateCreateBulk{err: fmt.Errorf("calling to SessionStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionState.
func (c *SessionStateClient) Update() *SessionStateUpdate {
	mutation := newSessionStateMutation(c.config, OpUpdate)
	return &SessionStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionStateClient) UpdateOne(_m *SessionState) *SessionStateUpdateOne {
	mutation := newSessionStateMutation(c.config, OpUpdateOne, withSessionState(_m))
	return &SessionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionStateClient) UpdateOneID(id int) *SessionStateUpdateOne {
	mutation := newSessionStateMutation(c.config, OpUpdateOne, withSessionStateID(id))
	return &SessionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionState.
func (c *SessionStateClient) Delete() *SessionStateDelete {
	mutation := newSessionStateMutation(c.config, OpDelete)
	return &SessionStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionStateClient) DeleteOne(_m *SessionState) *SessionStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionStateClient) DeleteOneID(id int) *SessionStateDeleteOne {
	builder := c.Delete().Where(sessionstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionStateDeleteOne{builder}
}

// Query returns a query builder for SessionState.
func (c *SessionStateClient) Query() *SessionStateQuery {
	return &SessionStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionState},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionState entity by its id.
func (c *SessionStateClient) Get(ctx context.Context, id int) (*SessionState, error) {
	return c.Query().Where(sessionstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionStateClient) GetX(ctx context.Context, id int) *SessionState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionStateClient) Hooks() []Hook {
	return c.hooks.SessionState
}

// Interceptors returns the client interceptors.
func (c *SessionStateClient) Interceptors() []Interceptor {
	return c.inters.SessionState
}

func (c *SessionStateClient) mutate(ctx context.Context, m *SessionStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		HistoryItem, LLMRequest, SessionState []ent.Hook
	}
	inters struct {
		HistoryItem, LLMRequest, SessionState []ent.Interceptor
	}
)
