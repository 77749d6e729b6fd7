// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tablelift/tablelift/gen/ent/export"
	"github.com/tablelift/tablelift/gen/ent/extractiontask"
	"github.com/tablelift/tablelift/gen/ent/job"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/operation"
	"github.com/tablelift/tablelift/gen/ent/sourcefile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Export is the client for interacting with the Export builders.
	Export *ExportClient
	// ExtractionTask is the client for interacting with the ExtractionTask builders.
	ExtractionTask *ExtractionTaskClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobRun is the client for interacting with the JobRun builders.
	JobRun *JobRunClient
	// Operation is the client for interacting with the Operation builders.
	Operation *OperationClient
	// SourceFile is the client for interacting with the SourceFile builders.
	SourceFile *SourceFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Export = NewExportClient(c.config)
	c.ExtractionTask = NewExtractionTaskClient(c.config)
	c.Job = NewJobClient(c.config)
	c.JobRun = NewJobRunClient(c.config)
	c.Operation = NewOperationClient(c.config)
	c.SourceFile = NewSourceFileClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Export:         NewExportClient(cfg),
		ExtractionTask: NewExtractionTaskClient(cfg),
		Job:            NewJobClient(cfg),
		JobRun:         NewJobRunClient(cfg),
		Operation:      NewOperationClient(cfg),
		SourceFile:     NewSourceFileClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Export:         NewExportClient(cfg),
		ExtractionTask: NewExtractionTaskClient(cfg),
		Job:            NewJobClient(cfg),
		JobRun:         NewJobRunClient(cfg),
		Operation:      NewOperationClient(cfg),
		SourceFile:     NewSourceFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Export.
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
		c.Export, c.ExtractionTask, c.Job, c.JobRun, c.Operation, c.SourceFile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Export, c.ExtractionTask, c.Job, c.JobRun, c.Operation, c.SourceFile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExportMutation:
		return c.Export.mutate(ctx, m)
	case *ExtractionTaskMutation:
		return c.ExtractionTask.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobRunMutation:
		return c.JobRun.mutate(ctx, m)
	case *OperationMutation:
		return c.Operation.mutate(ctx, m)
	case *SourceFileMutation:
		return c.SourceFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExportClient is a client for the Export schema.
type ExportClient struct {
	config
}

// NewExportClient returns a client for the Export from the given config.
func NewExportClient(c config) *ExportClient {
	return &ExportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `export.Hooks(f(g(h())))`.
func (c *ExportClient) Use(hooks ...Hook) {
	c.hooks.Export = append(c.hooks.Export, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `export.Intercept(f(g(h())))`.
func (c *ExportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Export = append(c.inters.Export, interceptors...)
}

// Create returns a builder for creating a Export entity.
func (c *ExportClient) Create() *ExportCreate {
	mutation := newExportMutation(c.config, OpCreate)
	return &ExportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Export entities.
func (c *ExportClient) CreateBulk(builders ...*ExportCreate) *ExportCreateBulk {
	return &ExportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExportClient) MapCreateBulk(slice any, setFunc func(*ExportCreate, int)) *ExportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExportCreateBulk{err: fmt.Errorf("calling to ExportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Export.
func (c *ExportClient) Update() *ExportUpdate {
	mutation := newExportMutation(c.config, OpUpdate)
	return &ExportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExportClient) UpdateOne(_m *Export) *ExportUpdateOne {
	mutation := newExportMutation(c.config, OpUpdateOne, withExport(_m))
	return &ExportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExportClient) UpdateOneID(id uuid.UUID) *ExportUpdateOne {
	mutation := newExportMutation(c.config, OpUpdateOne, withExportID(id))
	return &ExportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Export.
func (c *ExportClient) Delete() *ExportDelete {
	mutation := newExportMutation(c.config, OpDelete)
	return &ExportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExportClient) DeleteOne(_m *Export) *ExportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExportClient) DeleteOneID(id uuid.UUID) *ExportDeleteOne {
	builder := c.Delete().Where(export.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExportDeleteOne{builder}
}

// Query returns a query builder for Export.
func (c *ExportClient) Query() *ExportQuery {
	return &ExportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExport},
		inters: c.Interceptors(),
	}
}

// Get returns a Export entity by its id.
func (c *ExportClient) Get(ctx context.Context, id uuid.UUID) (*Export, error) {
	return c.Query().Where(export.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExportClient) GetX(ctx context.Context, id uuid.UUID) *Export {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExportClient) Hooks() []Hook {
	return c.hooks.Export
}

// Interceptors returns the client interceptors.
func (c *ExportClient) Interceptors() []Interceptor {
	return c.inters.Export
}

func (c *ExportClient) mutate(ctx context.Context, m *ExportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Export mutation op: %q", m.Op())
	}
}

// ExtractionTaskClient is a client for the ExtractionTask schema.
type ExtractionTaskClient struct {
	config
}

// NewExtractionTaskClient returns a client for the ExtractionTask from the given config.
func NewExtractionTaskClient(c config) *ExtractionTaskClient {
	return &ExtractionTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractiontask.Hooks(f(g(h())))`.
func (c *ExtractionTaskClient) Use(hooks ...Hook) {
	c.hooks.ExtractionTask = append(c.hooks.ExtractionTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractiontask.Intercept(f(g(h())))`.
func (c *ExtractionTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionTask = append(c.inters.ExtractionTask, interceptors...)
}

// Create returns a builder for creating a ExtractionTask entity.
func (c *ExtractionTaskClient) Create() *ExtractionTaskCreate {
	mutation := newExtractionTaskMutation(c.config, OpCreate)
	return &ExtractionTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionTask entities.
func (c *ExtractionTaskClient) CreateBulk(builders ...*ExtractionTaskCreate) *ExtractionTaskCreateBulk {
	return &ExtractionTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionTaskClient) MapCreateBulk(slice any, setFunc func(*ExtractionTaskCreate, int)) *ExtractionTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionTaskCreateBulk{err: fmt.Errorf("calling to ExtractionTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionTask.
func (c *ExtractionTaskClient) Update() *ExtractionTaskUpdate {
	mutation := newExtractionTaskMutation(c.config, OpUpdate)
	return &ExtractionTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionTaskClient) UpdateOne(_m *ExtractionTask) *ExtractionTaskUpdateOne {
	mutation := newExtractionTaskMutation(c.config, OpUpdateOne, withExtractionTask(_m))
	return &ExtractionTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionTaskClient) UpdateOneID(id uuid.UUID) *ExtractionTaskUpdateOne {
	mutation := newExtractionTaskMutation(c.config, OpUpdateOne, withExtractionTaskID(id))
	return &ExtractionTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionTask.
func (c *ExtractionTaskClient) Delete() *ExtractionTaskDelete {
	mutation := newExtractionTaskMutation(c.config, OpDelete)
	return &ExtractionTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionTaskClient) DeleteOne(_m *ExtractionTask) *ExtractionTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionTaskClient) DeleteOneID(id uuid.UUID) *ExtractionTaskDeleteOne {
	builder := c.Delete().Where(extractiontask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionTaskDeleteOne{builder}
}

// Query returns a query builder for ExtractionTask.
func (c *ExtractionTaskClient) Query() *ExtractionTaskQuery {
	return &ExtractionTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionTask entity by its id.
func (c *ExtractionTaskClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionTask, error) {
	return c.Query().Where(extractiontask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionTaskClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ExtractionTask.
func (c *ExtractionTaskClient) QueryRun(_m *ExtractionTask) *JobRunQuery {
	query := (&JobRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractiontask.Table, extractiontask.FieldID, id),
			sqlgraph.To(jobrun.Table, jobrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractiontask.RunTable, extractiontask.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionTaskClient) Hooks() []Hook {
	return c.hooks.ExtractionTask
}

// Interceptors returns the client interceptors.
func (c *ExtractionTaskClient) Interceptors() []Interceptor {
	return c.inters.ExtractionTask
}

func (c *ExtractionTaskClient) mutate(ctx context.Context, m *ExtractionTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionTask mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id uuid.UUID) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id uuid.UUID) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id uuid.UUID) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRuns queries the runs edge of a Job.
func (c *JobClient) QueryRuns(_m *Job) *JobRunQuery {
	query := (&JobRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobrun.Table, jobrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.RunsTable, job.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobRunClient is a client for the JobRun schema.
type JobRunClient struct {
	config
}

// NewJobRunClient returns a client for the JobRun from the given config.
func NewJobRunClient(c config) *JobRunClient {
	return &JobRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobrun.Hooks(f(g(h())))`.
func (c *JobRunClient) Use(hooks ...Hook) {
	c.hooks.JobRun = append(c.hooks.JobRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobrun.Intercept(f(g(h())))`.
func (c *JobRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobRun = append(c.inters.JobRun, interceptors...)
}

// Create returns a builder for creating a JobRun entity.
func (c *JobRunClient) Create() *JobRunCreate {
	mutation := newJobRunMutation(c.config, OpCreate)
	return &JobRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobRun entities.
func (c *JobRunClient) CreateBulk(builders ...*JobRunCreate) *JobRunCreateBulk {
	return &JobRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobRunClient) MapCreateBulk(slice any, setFunc func(*JobRunCreate, int)) *JobRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobRunCreateBulk{err: fmt.Errorf("calling to JobRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobRun.
func (c *JobRunClient) Update() *JobRunUpdate {
	mutation := newJobRunMutation(c.config, OpUpdate)
	return &JobRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobRunClient) UpdateOne(_m *JobRun) *JobRunUpdateOne {
	mutation := newJobRunMutation(c.config, OpUpdateOne, withJobRun(_m))
	return &JobRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobRunClient) UpdateOneID(id uuid.UUID) *JobRunUpdateOne {
	mutation := newJobRunMutation(c.config, OpUpdateOne, withJobRunID(id))
	return &JobRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobRun.
func (c *JobRunClient) Delete() *JobRunDelete {
	mutation := newJobRunMutation(c.config, OpDelete)
	return &JobRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobRunClient) DeleteOne(_m *JobRun) *JobRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobRunClient) DeleteOneID(id uuid.UUID) *JobRunDeleteOne {
	builder := c.Delete().Where(jobrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobRunDeleteOne{builder}
}

// Query returns a query builder for JobRun.
func (c *JobRunClient) Query() *JobRunQuery {
	return &JobRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobRun},
		inters: c.Interceptors(),
	}
}

// Get returns a JobRun entity by its id.
func (c *JobRunClient) Get(ctx context.Context, id uuid.UUID) (*JobRun, error) {
	return c.Query().Where(jobrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobRunClient) GetX(ctx context.Context, id uuid.UUID) *JobRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobRun.
func (c *JobRunClient) QueryJob(_m *JobRun) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobrun.Table, jobrun.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobrun.JobTable, jobrun.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a JobRun.
func (c *JobRunClient) QueryFiles(_m *JobRun) *SourceFileQuery {
	query := (&SourceFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobrun.Table, jobrun.FieldID, id),
			sqlgraph.To(sourcefile.Table, sourcefile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobrun.FilesTable, jobrun.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a JobRun.
func (c *JobRunClient) QueryTasks(_m *JobRun) *ExtractionTaskQuery {
	query := (&ExtractionTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobrun.Table, jobrun.FieldID, id),
			sqlgraph.To(extractiontask.Table, extractiontask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobrun.TasksTable, jobrun.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobRunClient) Hooks() []Hook {
	return c.hooks.JobRun
}

// Interceptors returns the client interceptors.
func (c *JobRunClient) Interceptors() []Interceptor {
	return c.inters.JobRun
}

func (c *JobRunClient) mutate(ctx context.Context, m *JobRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobRun mutation op: %q", m.Op())
	}
}

// OperationClient is a client for the Operation schema.
type OperationClient struct {
	config
}

// NewOperationClient returns a client for the Operation from the given config.
func NewOperationClient(c config) *OperationClient {
	return &OperationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `operation.Hooks(f(g(h())))`.
func (c *OperationClient) Use(hooks ...Hook) {
	c.hooks.Operation = append(c.hooks.Operation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `operation.Intercept(f(g(h())))`.
func (c *OperationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Operation = append(c.inters.Operation, interceptors...)
}

// Create returns a builder for creating a Operation entity.
func (c *OperationClient) Create() *OperationCreate {
	mutation := newOperationMutation(c.config, OpCreate)
	return &OperationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Operation entities.
func (c *OperationClient) CreateBulk(builders ...*OperationCreate) *OperationCreateBulk {
	return &OperationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OperationClient) MapCreateBulk(slice any, setFunc func(*OperationCreate, int)) *OperationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OperationCreateBulk{err: fmt.Errorf("calling to OperationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OperationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OperationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Operation.
func (c *OperationClient) Update() *OperationUpdate {
	mutation := newOperationMutation(c.config, OpUpdate)
	return &OperationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OperationClient) UpdateOne(_m *Operation) *OperationUpdateOne {
	mutation := newOperationMutation(c.config, OpUpdateOne, withOperation(_m))
	return &OperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OperationClient) UpdateOneID(id uuid.UUID) *OperationUpdateOne {
	mutation := newOperationMutation(c.config, OpUpdateOne, withOperationID(id))
	return &OperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Operation.
func (c *OperationClient) Delete() *OperationDelete {
	mutation := newOperationMutation(c.config, OpDelete)
	return &OperationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OperationClient) DeleteOne(_m *Operation) *OperationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OperationClient) DeleteOneID(id uuid.UUID) *OperationDeleteOne {
	builder := c.Delete().Where(operation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OperationDeleteOne{builder}
}

// Query returns a query builder for Operation.
func (c *OperationClient) Query() *OperationQuery {
	return &OperationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOperation},
		inters: c.Interceptors(),
	}
}

// Get returns a Operation entity by its id.
func (c *OperationClient) Get(ctx context.Context, id uuid.UUID) (*Operation, error) {
	return c.Query().Where(operation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OperationClient) GetX(ctx context.Context, id uuid.UUID) *Operation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OperationClient) Hooks() []Hook {
	return c.hooks.Operation
}

// Interceptors returns the client interceptors.
func (c *OperationClient) Interceptors() []Interceptor {
	return c.inters.Operation
}

func (c *OperationClient) mutate(ctx context.Context, m *OperationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OperationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OperationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OperationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Operation mutation op: %q", m.Op())
	}
}

// SourceFileClient is a client for the SourceFile schema.
type SourceFileClient struct {
	config
}

// NewSourceFileClient returns a client for the SourceFile from the given config.
func NewSourceFileClient(c config) *SourceFileClient {
	return &SourceFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcefile.Hooks(f(g(h())))`.
func (c *SourceFileClient) Use(hooks ...Hook) {
	c.hooks.SourceFile = append(c.hooks.SourceFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcefile.Intercept(f(g(h())))`.
func (c *SourceFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceFile = append(c.inters.SourceFile, interceptors...)
}

// Create returns a builder for creating a SourceFile entity.
func (c *SourceFileClient) Create() *SourceFileCreate {
	mutation := newSourceFileMutation(c.config, OpCreate)
	return &SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceFile entities.
func (c *SourceFileClient) CreateBulk(builders ...*SourceFileCreate) *SourceFileCreateBulk {
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceFileClient) MapCreateBulk(slice any, setFunc func(*SourceFileCreate, int)) *SourceFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceFileCreateBulk{err: fmt.Errorf("calling to SourceFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceFile.
func (c *SourceFileClient) Update() *SourceFileUpdate {
	mutation := newSourceFileMutation(c.config, OpUpdate)
	return &SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceFileClient) UpdateOne(_m *SourceFile) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFile(_m))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceFileClient) UpdateOneID(id uuid.UUID) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFileID(id))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceFile.
func (c *SourceFileClient) Delete() *SourceFileDelete {
	mutation := newSourceFileMutation(c.config, OpDelete)
	return &SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceFileClient) DeleteOne(_m *SourceFile) *SourceFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceFileClient) DeleteOneID(id uuid.UUID) *SourceFileDeleteOne {
	builder := c.Delete().Where(sourcefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceFileDeleteOne{builder}
}

// Query returns a query builder for SourceFile.
func (c *SourceFileClient) Query() *SourceFileQuery {
	return &SourceFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceFile},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceFile entity by its id.
func (c *SourceFileClient) Get(ctx context.Context, id uuid.UUID) (*SourceFile, error) {
	return c.Query().Where(sourcefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceFileClient) GetX(ctx context.Context, id uuid.UUID) *SourceFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a SourceFile.
func (c *SourceFileClient) QueryRun(_m *SourceFile) *JobRunQuery {
	query := (&JobRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcefile.Table, sourcefile.FieldID, id),
			sqlgraph.To(jobrun.Table, jobrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcefile.RunTable, sourcefile.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceFileClient) Hooks() []Hook {
	return c.hooks.SourceFile
}

// Interceptors returns the client interceptors.
func (c *SourceFileClient) Interceptors() []Interceptor {
	return c.inters.SourceFile
}

func (c *SourceFileClient) mutate(ctx context.Context, m *SourceFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Export, ExtractionTask, Job, JobRun, Operation, SourceFile []ent.Hook
	}
	inters struct {
		Export, ExtractionTask, Job, JobRun, Operation, SourceFile []ent.Interceptor
	}
)
