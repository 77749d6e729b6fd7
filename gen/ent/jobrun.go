// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/job"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
)

// JobRun is the model entity for the JobRun schema.
type JobRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ConfigStep holds the value of the "config_step" field.
	ConfigStep string `json:"config_step,omitempty"`
	// Version holds the value of the "version" field.
	Version int32 `json:"version,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields json.RawMessage `json:"fields,omitempty"`
	// TaskDefs holds the value of the "task_defs" field.
	TaskDefs json.RawMessage `json:"task_defs,omitempty"`
	// FieldsChecksum holds the value of the "fields_checksum" field.
	FieldsChecksum string `json:"fields_checksum,omitempty"`
	// ClonedFromID holds the value of the "cloned_from_id" field.
	ClonedFromID *uuid.UUID `json:"cloned_from_id,omitempty"`
	// TasksTotal holds the value of the "tasks_total" field.
	TasksTotal int32 `json:"tasks_total,omitempty"`
	// TasksCompleted holds the value of the "tasks_completed" field.
	TasksCompleted int32 `json:"tasks_completed,omitempty"`
	// TasksFailed holds the value of the "tasks_failed" field.
	TasksFailed int32 `json:"tasks_failed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobRunQuery when eager-loading is set.
	Edges        JobRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobRunEdges holds the relations/edges for other nodes in the graph.
type JobRunEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Files holds the value of the files edge.
	Files []*SourceFile `json:"files,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*ExtractionTask `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobRunEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e JobRunEdges) FilesOrErr() ([]*SourceFile, error) {
	if e.loadedTypes[1] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e JobRunEdges) TasksOrErr() ([]*ExtractionTask, error) {
	if e.loadedTypes[2] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobrun.FieldClonedFromID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case jobrun.FieldFields, jobrun.FieldTaskDefs:
			values[i] = new([]byte)
		case jobrun.FieldVersion, jobrun.FieldTasksTotal, jobrun.FieldTasksCompleted, jobrun.FieldTasksFailed:
			values[i] = new(sql.NullInt64)
		case jobrun.FieldStatus, jobrun.FieldConfigStep, jobrun.FieldFieldsChecksum:
			values[i] = new(sql.NullString)
		case jobrun.FieldCreatedAt, jobrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case jobrun.FieldID, jobrun.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobRun fields.
func (_m *JobRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobrun.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case jobrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case jobrun.FieldConfigStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field config_step", values[i])
			} else if value.Valid {
				_m.ConfigStep = value.String
			}
		case jobrun.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int32(value.Int64)
			}
		case jobrun.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case jobrun.FieldTaskDefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field task_defs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaskDefs); err != nil {
					return fmt.Errorf("unmarshal field task_defs: %w", err)
				}
			}
		case jobrun.FieldFieldsChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fields_checksum", values[i])
			} else if value.Valid {
				_m.FieldsChecksum = value.String
			}
		case jobrun.FieldClonedFromID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cloned_from_id", values[i])
			} else if value.Valid {
				_m.ClonedFromID = new(uuid.UUID)
				*_m.ClonedFromID = *value.S.(*uuid.UUID)
			}
		case jobrun.FieldTasksTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_total", values[i])
			} else if value.Valid {
				_m.TasksTotal = int32(value.Int64)
			}
		case jobrun.FieldTasksCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_completed", values[i])
			} else if value.Valid {
				_m.TasksCompleted = int32(value.Int64)
			}
		case jobrun.FieldTasksFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_failed", values[i])
			} else if value.Valid {
				_m.TasksFailed = int32(value.Int64)
			}
		case jobrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case jobrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobRun.
// This includes values selected through modifiers, order, etc.
func (_m *JobRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobRun entity.
func (_m *JobRun) QueryJob() *JobQuery {
	return NewJobRunClient(_m.config).QueryJob(_m)
}

// QueryFiles queries the "files" edge of the JobRun entity.
func (_m *JobRun) QueryFiles() *SourceFileQuery {
	return NewJobRunClient(_m.config).QueryFiles(_m)
}

// QueryTasks queries the "tasks" edge of the JobRun entity.
func (_m *JobRun) QueryTasks() *ExtractionTaskQuery {
	return NewJobRunClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this JobRun.
// Note that you need to call JobRun.Unwrap() before calling this method if this JobRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobRun) Update() *JobRunUpdateOne {
	return NewJobRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobRun) Unwrap() *JobRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobRun) String() string {
	var builder strings.Builder
	builder.WriteString("JobRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("config_step=")
	builder.WriteString(_m.ConfigStep)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("task_defs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskDefs))
	builder.WriteString(", ")
	builder.WriteString("fields_checksum=")
	builder.WriteString(_m.FieldsChecksum)
	builder.WriteString(", ")
	if v := _m.ClonedFromID; v != nil {
		builder.WriteString("cloned_from_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tasks_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksTotal))
	builder.WriteString(", ")
	builder.WriteString("tasks_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCompleted))
	builder.WriteString(", ")
	builder.WriteString("tasks_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksFailed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// JobRuns is a parsable slice of JobRun.
type JobRuns []*JobRun
