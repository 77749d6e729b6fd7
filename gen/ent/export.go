// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/export"
)

// Export is the model entity for the Export schema.
type Export struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// OperationID holds the value of the "operation_id" field.
	OperationID uuid.UUID `json:"operation_id,omitempty"`
	// Destination holds the value of the "destination" field.
	Destination string `json:"destination,omitempty"`
	// FileKind holds the value of the "file_kind" field.
	FileKind string `json:"file_kind,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// ArtifactPath holds the value of the "artifact_path" field.
	ArtifactPath string `json:"artifact_path,omitempty"`
	// ExternalRef holds the value of the "external_ref" field.
	ExternalRef string `json:"external_ref,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Export) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case export.FieldDestination, export.FieldFileKind, export.FieldState, export.FieldArtifactPath, export.FieldExternalRef, export.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case export.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case export.FieldID, export.FieldRunID, export.FieldOperationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Export fields.
func (_m *Export) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case export.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case export.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case export.FieldOperationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field operation_id", values[i])
			} else if value != nil {
				_m.OperationID = *value
			}
		case export.FieldDestination:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destination", values[i])
			} else if value.Valid {
				_m.Destination = value.String
			}
		case export.FieldFileKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_kind", values[i])
			} else if value.Valid {
				_m.FileKind = value.String
			}
		case export.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case export.FieldArtifactPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_path", values[i])
			} else if value.Valid {
				_m.ArtifactPath = value.String
			}
		case export.FieldExternalRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_ref", values[i])
			} else if value.Valid {
				_m.ExternalRef = value.String
			}
		case export.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case export.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Export.
// This includes values selected through modifiers, order, etc.
func (_m *Export) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Export.
// Note that you need to call Export.Unwrap() before calling this method if this Export
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Export) Update() *ExportUpdateOne {
	return NewExportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Export entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Export) Unwrap() *Export {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Export is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Export) String() string {
	var builder strings.Builder
	builder.WriteString("Export(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("operation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperationID))
	builder.WriteString(", ")
	builder.WriteString("destination=")
	builder.WriteString(_m.Destination)
	builder.WriteString(", ")
	builder.WriteString("file_kind=")
	builder.WriteString(_m.FileKind)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("artifact_path=")
	builder.WriteString(_m.ArtifactPath)
	builder.WriteString(", ")
	builder.WriteString("external_ref=")
	builder.WriteString(_m.ExternalRef)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Exports is a parsable slice of Export.
type Exports []*Export
