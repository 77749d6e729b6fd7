// Code generated by ent, DO NOT EDIT.

package jobrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobrun type in the database.
	Label = "job_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConfigStep holds the string denoting the config_step field in the database.
	FieldConfigStep = "config_step"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldTaskDefs holds the string denoting the task_defs field in the database.
	FieldTaskDefs = "task_defs"
	// FieldFieldsChecksum holds the string denoting the fields_checksum field in the database.
	FieldFieldsChecksum = "fields_checksum"
	// FieldClonedFromID holds the string denoting the cloned_from_id field in the database.
	FieldClonedFromID = "cloned_from_id"
	// FieldTasksTotal holds the string denoting the tasks_total field in the database.
	FieldTasksTotal = "tasks_total"
	// FieldTasksCompleted holds the string denoting the tasks_completed field in the database.
	FieldTasksCompleted = "tasks_completed"
	// FieldTasksFailed holds the string denoting the tasks_failed field in the database.
	FieldTasksFailed = "tasks_failed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// Table holds the table name of the jobrun in the database.
	Table = "job_run"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_run"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "source_files"
	// FilesInverseTable is the table name for the SourceFile entity.
	// It exists in this package in order to avoid circular dependency with the "sourcefile" package.
	FilesInverseTable = "source_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "run_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "extraction_task"
	// TasksInverseTable is the table name for the ExtractionTask entity.
	// It exists in this package in order to avoid circular dependency with the "extractiontask" package.
	TasksInverseTable = "extraction_task"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "run_id"
)

// Columns holds all SQL columns for jobrun fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldStatus,
	FieldConfigStep,
	FieldVersion,
	FieldFields,
	FieldTaskDefs,
	FieldFieldsChecksum,
	FieldClonedFromID,
	FieldTasksTotal,
	FieldTasksCompleted,
	FieldTasksFailed,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultConfigStep holds the default value on creation for the "config_step" field.
	DefaultConfigStep string
	// ConfigStepValidator is a validator for the "config_step" field. It is called by the builders before save.
	ConfigStepValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int32
	// DefaultTasksTotal holds the default value on creation for the "tasks_total" field.
	DefaultTasksTotal int32
	// TasksTotalValidator is a validator for the "tasks_total" field. It is called by the builders before save.
	TasksTotalValidator func(int32) error
	// DefaultTasksCompleted holds the default value on creation for the "tasks_completed" field.
	DefaultTasksCompleted int32
	// TasksCompletedValidator is a validator for the "tasks_completed" field. It is called by the builders before save.
	TasksCompletedValidator func(int32) error
	// DefaultTasksFailed holds the default value on creation for the "tasks_failed" field.
	DefaultTasksFailed int32
	// TasksFailedValidator is a validator for the "tasks_failed" field. It is called by the builders before save.
	TasksFailedValidator func(int32) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConfigStep orders the results by the config_step field.
func ByConfigStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfigStep, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByFieldsChecksum orders the results by the fields_checksum field.
func ByFieldsChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldsChecksum, opts...).ToFunc()
}

// ByClonedFromID orders the results by the cloned_from_id field.
func ByClonedFromID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClonedFromID, opts...).ToFunc()
}

// ByTasksTotal orders the results by the tasks_total field.
func ByTasksTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksTotal, opts...).ToFunc()
}

// ByTasksCompleted orders the results by the tasks_completed field.
func ByTasksCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCompleted, opts...).ToFunc()
}

// ByTasksFailed orders the results by the tasks_failed field.
func ByTasksFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksFailed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
