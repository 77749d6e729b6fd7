// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/export"
	"github.com/tablelift/tablelift/gen/ent/extractiontask"
	"github.com/tablelift/tablelift/gen/ent/job"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/operation"
	"github.com/tablelift/tablelift/gen/ent/predicate"
	"github.com/tablelift/tablelift/gen/ent/sourcefile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExport         = "Export"
	TypeExtractionTask = "ExtractionTask"
	TypeJob            = "Job"
	TypeJobRun         = "JobRun"
	TypeOperation      = "Operation"
	TypeSourceFile     = "SourceFile"
)

// ExportMutation represents an operation that mutates the Export nodes in the graph.
type ExportMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	run_id        *uuid.UUID
	operation_id  *uuid.UUID
	destination   *string
	file_kind     *string
	state         *string
	artifact_path *string
	external_ref  *string
	error_message *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Export, error)
	predicates    []predicate.Export
}

var _ ent.Mutation = (*ExportMutation)(nil)

// exportOption allows management of the mutation configuration using functional options.
type exportOption func(*ExportMutation)

// newExportMutation creates new mutation for the Export entity.
func newExportMutation(c config, op Op, opts ...exportOption) *ExportMutation {
	m := &ExportMutation{
		config:        c,
		op:            op,
		typ:           TypeExport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExportID sets the ID field of the mutation.
func withExportID(id uuid.UUID) exportOption {
	return func(m *ExportMutation) {
		var (
			err   error
			once  sync.Once
			value *Export
		)
		m.oldValue = func(ctx context.Context) (*Export, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Export.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExport sets the old Export of the mutation.
func withExport(node *Export) exportOption {
	return func(m *ExportMutation) {
		m.oldValue = func(context.Context) (*Export, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Export entities.
func (m *ExportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Export.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ExportMutation) SetRunID(u uuid.UUID) {
	m.run_id = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ExportMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ExportMutation) ResetRunID() {
	m.run_id = nil
}

// SetOperationID sets the "operation_id" field.
func (m *ExportMutation) SetOperationID(u uuid.UUID) {
	m.operation_id = &u
}

// OperationID returns the value of the "operation_id" field in the mutation.
func (m *ExportMutation) OperationID() (r uuid.UUID, exists bool) {
	v := m.operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationID returns the old "operation_id" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldOperationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationID: %w", err)
	}
	return oldValue.OperationID, nil
}

// ResetOperationID resets all changes to the "operation_id" field.
func (m *ExportMutation) ResetOperationID() {
	m.operation_id = nil
}

// SetDestination sets the "destination" field.
func (m *ExportMutation) SetDestination(s string) {
	m.destination = &s
}

// Destination returns the value of the "destination" field in the mutation.
func (m *ExportMutation) Destination() (r string, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldDestination(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ResetDestination resets all changes to the "destination" field.
func (m *ExportMutation) ResetDestination() {
	m.destination = nil
}

// SetFileKind sets the "file_kind" field.
func (m *ExportMutation) SetFileKind(s string) {
	m.file_kind = &s
}

// FileKind returns the value of the "file_kind" field in the mutation.
func (m *ExportMutation) FileKind() (r string, exists bool) {
	v := m.file_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKind returns the old "file_kind" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldFileKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKind: %w", err)
	}
	return oldValue.FileKind, nil
}

// ResetFileKind resets all changes to the "file_kind" field.
func (m *ExportMutation) ResetFileKind() {
	m.file_kind = nil
}

// SetState sets the "state" field.
func (m *ExportMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ExportMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ExportMutation) ResetState() {
	m.state = nil
}

// SetArtifactPath sets the "artifact_path" field.
func (m *ExportMutation) SetArtifactPath(s string) {
	m.artifact_path = &s
}

// ArtifactPath returns the value of the "artifact_path" field in the mutation.
func (m *ExportMutation) ArtifactPath() (r string, exists bool) {
	v := m.artifact_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactPath returns the old "artifact_path" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldArtifactPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactPath: %w", err)
	}
	return oldValue.ArtifactPath, nil
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (m *ExportMutation) ClearArtifactPath() {
	m.artifact_path = nil
	m.clearedFields[export.FieldArtifactPath] = struct{}{}
}

// ArtifactPathCleared returns if the "artifact_path" field was cleared in this mutation.
func (m *ExportMutation) ArtifactPathCleared() bool {
	_, ok := m.clearedFields[export.FieldArtifactPath]
	return ok
}

// ResetArtifactPath resets all changes to the "artifact_path" field.
func (m *ExportMutation) ResetArtifactPath() {
	m.artifact_path = nil
	delete(m.clearedFields, export.FieldArtifactPath)
}

// SetExternalRef sets the "external_ref" field.
func (m *ExportMutation) SetExternalRef(s string) {
	m.external_ref = &s
}

// ExternalRef returns the value of the "external_ref" field in the mutation.
func (m *ExportMutation) ExternalRef() (r string, exists bool) {
	v := m.external_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalRef returns the old "external_ref" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldExternalRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalRef: %w", err)
	}
	return oldValue.ExternalRef, nil
}

// ClearExternalRef clears the value of the "external_ref" field.
func (m *ExportMutation) ClearExternalRef() {
	m.external_ref = nil
	m.clearedFields[export.FieldExternalRef] = struct{}{}
}

// ExternalRefCleared returns if the "external_ref" field was cleared in this mutation.
func (m *ExportMutation) ExternalRefCleared() bool {
	_, ok := m.clearedFields[export.FieldExternalRef]
	return ok
}

// ResetExternalRef resets all changes to the "external_ref" field.
func (m *ExportMutation) ResetExternalRef() {
	m.external_ref = nil
	delete(m.clearedFields, export.FieldExternalRef)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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
func (m *ExportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[export.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[export.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, export.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExportMutation builder.
func (m *ExportMutation) Where(ps ...predicate.Export) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Export, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Export).
func (m *ExportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExportMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run_id != nil {
		fields = append(fields, export.FieldRunID)
	}
	if m.operation_id != nil {
		fields = append(fields, export.FieldOperationID)
	}
	if m.destination != nil {
		fields = append(fields, export.FieldDestination)
	}
	if m.file_kind != nil {
		fields = append(fields, export.FieldFileKind)
	}
	if m.state != nil {
		fields = append(fields, export.FieldState)
	}
	if m.artifact_path != nil {
		fields = append(fields, export.FieldArtifactPath)
	}
	if m.external_ref != nil {
		fields = append(fields, export.FieldExternalRef)
	}
	if m.error_message != nil {
		fields = append(fields, export.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, export.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case export.FieldRunID:
		return m.RunID()
	case export.FieldOperationID:
		return m.OperationID()
	case export.FieldDestination:
		return m.Destination()
	case export.FieldFileKind:
		return m.FileKind()
	case export.FieldState:
		return m.State()
	case export.FieldArtifactPath:
		return m.ArtifactPath()
	case export.FieldExternalRef:
		return m.ExternalRef()
	case export.FieldErrorMessage:
		return m.ErrorMessage()
	case export.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case export.FieldRunID:
		return m.OldRunID(ctx)
	case export.FieldOperationID:
		return m.OldOperationID(ctx)
	case export.FieldDestination:
		return m.OldDestination(ctx)
	case export.FieldFileKind:
		return m.OldFileKind(ctx)
	case export.FieldState:
		return m.OldState(ctx)
	case export.FieldArtifactPath:
		return m.OldArtifactPath(ctx)
	case export.FieldExternalRef:
		return m.OldExternalRef(ctx)
	case export.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case export.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Export field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case export.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case export.FieldOperationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationID(v)
		return nil
	case export.FieldDestination:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	case export.FieldFileKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKind(v)
		return nil
	case export.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case export.FieldArtifactPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactPath(v)
		return nil
	case export.FieldExternalRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalRef(v)
		return nil
	case export.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case export.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Export field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Export numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(export.FieldArtifactPath) {
		fields = append(fields, export.FieldArtifactPath)
	}
	if m.FieldCleared(export.FieldExternalRef) {
		fields = append(fields, export.FieldExternalRef)
	}
	if m.FieldCleared(export.FieldErrorMessage) {
		fields = append(fields, export.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExportMutation) ClearField(name string) error {
	switch name {
	case export.FieldArtifactPath:
		m.ClearArtifactPath()
		return nil
	case export.FieldExternalRef:
		m.ClearExternalRef()
		return nil
	case export.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Export nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExportMutation) ResetField(name string) error {
	switch name {
	case export.FieldRunID:
		m.ResetRunID()
		return nil
	case export.FieldOperationID:
		m.ResetOperationID()
		return nil
	case export.FieldDestination:
		m.ResetDestination()
		return nil
	case export.FieldFileKind:
		m.ResetFileKind()
		return nil
	case export.FieldState:
		m.ResetState()
		return nil
	case export.FieldArtifactPath:
		m.ResetArtifactPath()
		return nil
	case export.FieldExternalRef:
		m.ResetExternalRef()
		return nil
	case export.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case export.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Export field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExportMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExportMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExportMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExportMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Export unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExportMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Export edge %s", name)
}

// ExtractionTaskMutation represents an operation that mutates the ExtractionTask nodes in the graph.
type ExtractionTaskMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	folder         *string
	mode           *string
	file_ids       *[]uuid.UUID
	appendfile_ids []uuid.UUID
	status         *string
	result         *json.RawMessage
	appendresult   json.RawMessage
	error_kind     *string
	error_message  *string
	carried_over   *bool
	created_at     *time.Time
	finished_at    *time.Time
	clearedFields  map[string]struct{}
	run            *uuid.UUID
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*ExtractionTask, error)
	predicates     []predicate.ExtractionTask
}

var _ ent.Mutation = (*ExtractionTaskMutation)(nil)

// extractiontaskOption allows management of the mutation configuration using functional options.
type extractiontaskOption func(*ExtractionTaskMutation)

// newExtractionTaskMutation creates new mutation for the ExtractionTask entity.
func newExtractionTaskMutation(c config, op Op, opts ...extractiontaskOption) *ExtractionTaskMutation {
	m := &ExtractionTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionTaskID sets the ID field of the mutation.
func withExtractionTaskID(id uuid.UUID) extractiontaskOption {
	return func(m *ExtractionTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionTask
		)
		m.oldValue = func(ctx context.Context) (*ExtractionTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionTask sets the old ExtractionTask of the mutation.
func withExtractionTask(node *ExtractionTask) extractiontaskOption {
	return func(m *ExtractionTaskMutation) {
		m.oldValue = func(context.Context) (*ExtractionTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionTask entities.
func (m *ExtractionTaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionTaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionTaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ExtractionTaskMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ExtractionTaskMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ExtractionTaskMutation) ResetRunID() {
	m.run = nil
}

// SetFolder sets the "folder" field.
func (m *ExtractionTaskMutation) SetFolder(s string) {
	m.folder = &s
}

// Folder returns the value of the "folder" field in the mutation.
func (m *ExtractionTaskMutation) Folder() (r string, exists bool) {
	v := m.folder
	if v == nil {
		return
	}
	return *v, true
}

// OldFolder returns the old "folder" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldFolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolder: %w", err)
	}
	return oldValue.Folder, nil
}

// ResetFolder resets all changes to the "folder" field.
func (m *ExtractionTaskMutation) ResetFolder() {
	m.folder = nil
}

// SetMode sets the "mode" field.
func (m *ExtractionTaskMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ExtractionTaskMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ExtractionTaskMutation) ResetMode() {
	m.mode = nil
}

// SetFileIds sets the "file_ids" field.
func (m *ExtractionTaskMutation) SetFileIds(u []uuid.UUID) {
	m.file_ids = &u
	m.appendfile_ids = nil
}

// FileIds returns the value of the "file_ids" field in the mutation.
func (m *ExtractionTaskMutation) FileIds() (r []uuid.UUID, exists bool) {
	v := m.file_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldFileIds returns the old "file_ids" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldFileIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileIds: %w", err)
	}
	return oldValue.FileIds, nil
}

// AppendFileIds adds u to the "file_ids" field.
func (m *ExtractionTaskMutation) AppendFileIds(u []uuid.UUID) {
	m.appendfile_ids = append(m.appendfile_ids, u...)
}

// AppendedFileIds returns the list of values that were appended to the "file_ids" field in this mutation.
func (m *ExtractionTaskMutation) AppendedFileIds() ([]uuid.UUID, bool) {
	if len(m.appendfile_ids) == 0 {
		return nil, false
	}
	return m.appendfile_ids, true
}

// ClearFileIds clears the value of the "file_ids" field.
func (m *ExtractionTaskMutation) ClearFileIds() {
	m.file_ids = nil
	m.appendfile_ids = nil
	m.clearedFields[extractiontask.FieldFileIds] = struct{}{}
}

// FileIdsCleared returns if the "file_ids" field was cleared in this mutation.
func (m *ExtractionTaskMutation) FileIdsCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldFileIds]
	return ok
}

// ResetFileIds resets all changes to the "file_ids" field.
func (m *ExtractionTaskMutation) ResetFileIds() {
	m.file_ids = nil
	m.appendfile_ids = nil
	delete(m.clearedFields, extractiontask.FieldFileIds)
}

// SetStatus sets the "status" field.
func (m *ExtractionTaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionTaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ExtractionTaskMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *ExtractionTaskMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ExtractionTaskMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
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

// AppendResult adds jm to the "result" field.
func (m *ExtractionTaskMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ExtractionTaskMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ExtractionTaskMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[extractiontask.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ExtractionTaskMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, extractiontask.FieldResult)
}

// SetErrorKind sets the "error_kind" field.
func (m *ExtractionTaskMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ExtractionTaskMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldErrorKind(ctx context.Context) (v string, err error) {
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
func (m *ExtractionTaskMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[extractiontask.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ExtractionTaskMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, extractiontask.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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
func (m *ExtractionTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractiontask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractiontask.FieldErrorMessage)
}

// SetCarriedOver sets the "carried_over" field.
func (m *ExtractionTaskMutation) SetCarriedOver(b bool) {
	m.carried_over = &b
}

// CarriedOver returns the value of the "carried_over" field in the mutation.
func (m *ExtractionTaskMutation) CarriedOver() (r bool, exists bool) {
	v := m.carried_over
	if v == nil {
		return
	}
	return *v, true
}

// OldCarriedOver returns the old "carried_over" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldCarriedOver(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarriedOver is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarriedOver requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarriedOver: %w", err)
	}
	return oldValue.CarriedOver, nil
}

// ResetCarriedOver resets all changes to the "carried_over" field.
func (m *ExtractionTaskMutation) ResetCarriedOver() {
	m.carried_over = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExtractionTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionTaskMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionTaskMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionTaskMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractiontask.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionTaskMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionTaskMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractiontask.FieldFinishedAt)
}

// ClearRun clears the "run" edge to the JobRun entity.
func (m *ExtractionTaskMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[extractiontask.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the JobRun entity was cleared.
func (m *ExtractionTaskMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ExtractionTaskMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ExtractionTaskMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ExtractionTaskMutation builder.
func (m *ExtractionTaskMutation) Where(ps ...predicate.ExtractionTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionTask).
func (m *ExtractionTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionTaskMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.run != nil {
		fields = append(fields, extractiontask.FieldRunID)
	}
	if m.folder != nil {
		fields = append(fields, extractiontask.FieldFolder)
	}
	if m.mode != nil {
		fields = append(fields, extractiontask.FieldMode)
	}
	if m.file_ids != nil {
		fields = append(fields, extractiontask.FieldFileIds)
	}
	if m.status != nil {
		fields = append(fields, extractiontask.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, extractiontask.FieldResult)
	}
	if m.error_kind != nil {
		fields = append(fields, extractiontask.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, extractiontask.FieldErrorMessage)
	}
	if m.carried_over != nil {
		fields = append(fields, extractiontask.FieldCarriedOver)
	}
	if m.created_at != nil {
		fields = append(fields, extractiontask.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractiontask.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractiontask.FieldRunID:
		return m.RunID()
	case extractiontask.FieldFolder:
		return m.Folder()
	case extractiontask.FieldMode:
		return m.Mode()
	case extractiontask.FieldFileIds:
		return m.FileIds()
	case extractiontask.FieldStatus:
		return m.Status()
	case extractiontask.FieldResult:
		return m.Result()
	case extractiontask.FieldErrorKind:
		return m.ErrorKind()
	case extractiontask.FieldErrorMessage:
		return m.ErrorMessage()
	case extractiontask.FieldCarriedOver:
		return m.CarriedOver()
	case extractiontask.FieldCreatedAt:
		return m.CreatedAt()
	case extractiontask.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractiontask.FieldRunID:
		return m.OldRunID(ctx)
	case extractiontask.FieldFolder:
		return m.OldFolder(ctx)
	case extractiontask.FieldMode:
		return m.OldMode(ctx)
	case extractiontask.FieldFileIds:
		return m.OldFileIds(ctx)
	case extractiontask.FieldStatus:
		return m.OldStatus(ctx)
	case extractiontask.FieldResult:
		return m.OldResult(ctx)
	case extractiontask.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case extractiontask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractiontask.FieldCarriedOver:
		return m.OldCarriedOver(ctx)
	case extractiontask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractiontask.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractiontask.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case extractiontask.FieldFolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolder(v)
		return nil
	case extractiontask.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case extractiontask.FieldFileIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileIds(v)
		return nil
	case extractiontask.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractiontask.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case extractiontask.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case extractiontask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractiontask.FieldCarriedOver:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarriedOver(v)
		return nil
	case extractiontask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractiontask.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractiontask.FieldFileIds) {
		fields = append(fields, extractiontask.FieldFileIds)
	}
	if m.FieldCleared(extractiontask.FieldResult) {
		fields = append(fields, extractiontask.FieldResult)
	}
	if m.FieldCleared(extractiontask.FieldErrorKind) {
		fields = append(fields, extractiontask.FieldErrorKind)
	}
	if m.FieldCleared(extractiontask.FieldErrorMessage) {
		fields = append(fields, extractiontask.FieldErrorMessage)
	}
	if m.FieldCleared(extractiontask.FieldFinishedAt) {
		fields = append(fields, extractiontask.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionTaskMutation) ClearField(name string) error {
	switch name {
	case extractiontask.FieldFileIds:
		m.ClearFileIds()
		return nil
	case extractiontask.FieldResult:
		m.ClearResult()
		return nil
	case extractiontask.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case extractiontask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractiontask.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionTaskMutation) ResetField(name string) error {
	switch name {
	case extractiontask.FieldRunID:
		m.ResetRunID()
		return nil
	case extractiontask.FieldFolder:
		m.ResetFolder()
		return nil
	case extractiontask.FieldMode:
		m.ResetMode()
		return nil
	case extractiontask.FieldFileIds:
		m.ResetFileIds()
		return nil
	case extractiontask.FieldStatus:
		m.ResetStatus()
		return nil
	case extractiontask.FieldResult:
		m.ResetResult()
		return nil
	case extractiontask.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case extractiontask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractiontask.FieldCarriedOver:
		m.ResetCarriedOver()
		return nil
	case extractiontask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractiontask.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, extractiontask.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractiontask.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, extractiontask.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case extractiontask.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionTaskMutation) ClearEdge(name string) error {
	switch name {
	case extractiontask.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionTaskMutation) ResetEdge(name string) error {
	switch name {
	case extractiontask.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	template_id   *uuid.UUID
	created_at    *time.Time
	clearedFields map[string]struct{}
	runs          map[uuid.UUID]struct{}
	removedruns   map[uuid.UUID]struct{}
	clearedruns   bool
	done          bool
	oldValue      func(context.Context) (*Job, error)
	predicates    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *JobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *JobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *JobMutation) ResetName() {
	m.name = nil
}

// SetTemplateID sets the "template_id" field.
func (m *JobMutation) SetTemplateID(u uuid.UUID) {
	m.template_id = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *JobMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *JobMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[job.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *JobMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[job.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *JobMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, job.FieldTemplateID)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRunIDs adds the "runs" edge to the JobRun entity by ids.
func (m *JobMutation) AddRunIDs(ids ...uuid.UUID) {
	if m.runs == nil {
		m.runs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the JobRun entity.
func (m *JobMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the JobRun entity was cleared.
func (m *JobMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the JobRun entity by IDs.
func (m *JobMutation) RemoveRunIDs(ids ...uuid.UUID) {
	if m.removedruns == nil {
		m.removedruns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the JobRun entity.
func (m *JobMutation) RemovedRunsIDs() (ids []uuid.UUID) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *JobMutation) RunsIDs() (ids []uuid.UUID) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *JobMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, job.FieldName)
	}
	if m.template_id != nil {
		fields = append(fields, job.FieldTemplateID)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldName:
		return m.Name()
	case job.FieldTemplateID:
		return m.TemplateID()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldName:
		return m.OldName(ctx)
	case job.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case job.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldTemplateID) {
		fields = append(fields, job.FieldTemplateID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldName:
		m.ResetName()
		return nil
	case job.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.runs != nil {
		edges = append(edges, job.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedruns != nil {
		edges = append(edges, job.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedruns {
		edges = append(edges, job.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobRunMutation represents an operation that mutates the JobRun nodes in the graph.
type JobRunMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	status             *string
	config_step        *string
	version            *int32
	addversion         *int32
	fields             *json.RawMessage
	appendfields       json.RawMessage
	task_defs          *json.RawMessage
	appendtask_defs    json.RawMessage
	fields_checksum    *string
	cloned_from_id     *uuid.UUID
	tasks_total        *int32
	addtasks_total     *int32
	tasks_completed    *int32
	addtasks_completed *int32
	tasks_failed       *int32
	addtasks_failed    *int32
	created_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	job                *uuid.UUID
	clearedjob         bool
	files              map[uuid.UUID]struct{}
	removedfiles       map[uuid.UUID]struct{}
	clearedfiles       bool
	tasks              map[uuid.UUID]struct{}
	removedtasks       map[uuid.UUID]struct{}
	clearedtasks       bool
	done               bool
	oldValue           func(context.Context) (*JobRun, error)
	predicates         []predicate.JobRun
}

var _ ent.Mutation = (*JobRunMutation)(nil)

// jobrunOption allows management of the mutation configuration using functional options.
type jobrunOption func(*JobRunMutation)

// newJobRunMutation creates new mutation for the JobRun entity.
func newJobRunMutation(c config, op Op, opts ...jobrunOption) *JobRunMutation {
	m := &JobRunMutation{
		config:        c,
		op:            op,
		typ:           TypeJobRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobRunID sets the ID field of the mutation.
func withJobRunID(id uuid.UUID) jobrunOption {
	return func(m *JobRunMutation) {
		var (
			err   error
			once  sync.Once
			value *JobRun
		)
		m.oldValue = func(ctx context.Context) (*JobRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobRun sets the old JobRun of the mutation.
func withJobRun(node *JobRun) jobrunOption {
	return func(m *JobRunMutation) {
		m.oldValue = func(context.Context) (*JobRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobRun entities.
func (m *JobRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobRunMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobRunMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobRunMutation) ResetJobID() {
	m.job = nil
}

// SetStatus sets the "status" field.
func (m *JobRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *JobRunMutation) ResetStatus() {
	m.status = nil
}

// SetConfigStep sets the "config_step" field.
func (m *JobRunMutation) SetConfigStep(s string) {
	m.config_step = &s
}

// ConfigStep returns the value of the "config_step" field in the mutation.
func (m *JobRunMutation) ConfigStep() (r string, exists bool) {
	v := m.config_step
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigStep returns the old "config_step" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldConfigStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigStep: %w", err)
	}
	return oldValue.ConfigStep, nil
}

// ResetConfigStep resets all changes to the "config_step" field.
func (m *JobRunMutation) ResetConfigStep() {
	m.config_step = nil
}

// SetVersion sets the "version" field.
func (m *JobRunMutation) SetVersion(i int32) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *JobRunMutation) Version() (r int32, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldVersion(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *JobRunMutation) AddVersion(i int32) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *JobRunMutation) AddedVersion() (r int32, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *JobRunMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetFields sets the "fields" field.
func (m *JobRunMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *JobRunMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *JobRunMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *JobRunMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *JobRunMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[jobrun.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *JobRunMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[jobrun.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *JobRunMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, jobrun.FieldFields)
}

// SetTaskDefs sets the "task_defs" field.
func (m *JobRunMutation) SetTaskDefs(jm json.RawMessage) {
	m.task_defs = &jm
	m.appendtask_defs = nil
}

// TaskDefs returns the value of the "task_defs" field in the mutation.
func (m *JobRunMutation) TaskDefs() (r json.RawMessage, exists bool) {
	v := m.task_defs
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDefs returns the old "task_defs" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldTaskDefs(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDefs: %w", err)
	}
	return oldValue.TaskDefs, nil
}

// AppendTaskDefs adds jm to the "task_defs" field.
func (m *JobRunMutation) AppendTaskDefs(jm json.RawMessage) {
	m.appendtask_defs = append(m.appendtask_defs, jm...)
}

// AppendedTaskDefs returns the list of values that were appended to the "task_defs" field in this mutation.
func (m *JobRunMutation) AppendedTaskDefs() (json.RawMessage, bool) {
	if len(m.appendtask_defs) == 0 {
		return nil, false
	}
	return m.appendtask_defs, true
}

// ClearTaskDefs clears the value of the "task_defs" field.
func (m *JobRunMutation) ClearTaskDefs() {
	m.task_defs = nil
	m.appendtask_defs = nil
	m.clearedFields[jobrun.FieldTaskDefs] = struct{}{}
}

// TaskDefsCleared returns if the "task_defs" field was cleared in this mutation.
func (m *JobRunMutation) TaskDefsCleared() bool {
	_, ok := m.clearedFields[jobrun.FieldTaskDefs]
	return ok
}

// ResetTaskDefs resets all changes to the "task_defs" field.
func (m *JobRunMutation) ResetTaskDefs() {
	m.task_defs = nil
	m.appendtask_defs = nil
	delete(m.clearedFields, jobrun.FieldTaskDefs)
}

// SetFieldsChecksum sets the "fields_checksum" field.
func (m *JobRunMutation) SetFieldsChecksum(s string) {
	m.fields_checksum = &s
}

// FieldsChecksum returns the value of the "fields_checksum" field in the mutation.
func (m *JobRunMutation) FieldsChecksum() (r string, exists bool) {
	v := m.fields_checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldsChecksum returns the old "fields_checksum" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldFieldsChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldsChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldsChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldsChecksum: %w", err)
	}
	return oldValue.FieldsChecksum, nil
}

// ClearFieldsChecksum clears the value of the "fields_checksum" field.
func (m *JobRunMutation) ClearFieldsChecksum() {
	m.fields_checksum = nil
	m.clearedFields[jobrun.FieldFieldsChecksum] = struct{}{}
}

// FieldsChecksumCleared returns if the "fields_checksum" field was cleared in this mutation.
func (m *JobRunMutation) FieldsChecksumCleared() bool {
	_, ok := m.clearedFields[jobrun.FieldFieldsChecksum]
	return ok
}

// ResetFieldsChecksum resets all changes to the "fields_checksum" field.
func (m *JobRunMutation) ResetFieldsChecksum() {
	m.fields_checksum = nil
	delete(m.clearedFields, jobrun.FieldFieldsChecksum)
}

// SetClonedFromID sets the "cloned_from_id" field.
func (m *JobRunMutation) SetClonedFromID(u uuid.UUID) {
	m.cloned_from_id = &u
}

// ClonedFromID returns the value of the "cloned_from_id" field in the mutation.
func (m *JobRunMutation) ClonedFromID() (r uuid.UUID, exists bool) {
	v := m.cloned_from_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClonedFromID returns the old "cloned_from_id" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldClonedFromID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClonedFromID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClonedFromID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClonedFromID: %w", err)
	}
	return oldValue.ClonedFromID, nil
}

// ClearClonedFromID clears the value of the "cloned_from_id" field.
func (m *JobRunMutation) ClearClonedFromID() {
	m.cloned_from_id = nil
	m.clearedFields[jobrun.FieldClonedFromID] = struct{}{}
}

// ClonedFromIDCleared returns if the "cloned_from_id" field was cleared in this mutation.
func (m *JobRunMutation) ClonedFromIDCleared() bool {
	_, ok := m.clearedFields[jobrun.FieldClonedFromID]
	return ok
}

// ResetClonedFromID resets all changes to the "cloned_from_id" field.
func (m *JobRunMutation) ResetClonedFromID() {
	m.cloned_from_id = nil
	delete(m.clearedFields, jobrun.FieldClonedFromID)
}

// SetTasksTotal sets the "tasks_total" field.
func (m *JobRunMutation) SetTasksTotal(i int32) {
	m.tasks_total = &i
	m.addtasks_total = nil
}

// TasksTotal returns the value of the "tasks_total" field in the mutation.
func (m *JobRunMutation) TasksTotal() (r int32, exists bool) {
	v := m.tasks_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksTotal returns the old "tasks_total" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldTasksTotal(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksTotal: %w", err)
	}
	return oldValue.TasksTotal, nil
}

// AddTasksTotal adds i to the "tasks_total" field.
func (m *JobRunMutation) AddTasksTotal(i int32) {
	if m.addtasks_total != nil {
		*m.addtasks_total += i
	} else {
		m.addtasks_total = &i
	}
}

// AddedTasksTotal returns the value that was added to the "tasks_total" field in this mutation.
func (m *JobRunMutation) AddedTasksTotal() (r int32, exists bool) {
	v := m.addtasks_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksTotal resets all changes to the "tasks_total" field.
func (m *JobRunMutation) ResetTasksTotal() {
	m.tasks_total = nil
	m.addtasks_total = nil
}

// SetTasksCompleted sets the "tasks_completed" field.
func (m *JobRunMutation) SetTasksCompleted(i int32) {
	m.tasks_completed = &i
	m.addtasks_completed = nil
}

// TasksCompleted returns the value of the "tasks_completed" field in the mutation.
func (m *JobRunMutation) TasksCompleted() (r int32, exists bool) {
	v := m.tasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCompleted returns the old "tasks_completed" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldTasksCompleted(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCompleted: %w", err)
	}
	return oldValue.TasksCompleted, nil
}

// AddTasksCompleted adds i to the "tasks_completed" field.
func (m *JobRunMutation) AddTasksCompleted(i int32) {
	if m.addtasks_completed != nil {
		*m.addtasks_completed += i
	} else {
		m.addtasks_completed = &i
	}
}

// AddedTasksCompleted returns the value that was added to the "tasks_completed" field in this mutation.
func (m *JobRunMutation) AddedTasksCompleted() (r int32, exists bool) {
	v := m.addtasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCompleted resets all changes to the "tasks_completed" field.
func (m *JobRunMutation) ResetTasksCompleted() {
	m.tasks_completed = nil
	m.addtasks_completed = nil
}

// SetTasksFailed sets the "tasks_failed" field.
func (m *JobRunMutation) SetTasksFailed(i int32) {
	m.tasks_failed = &i
	m.addtasks_failed = nil
}

// TasksFailed returns the value of the "tasks_failed" field in the mutation.
func (m *JobRunMutation) TasksFailed() (r int32, exists bool) {
	v := m.tasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksFailed returns the old "tasks_failed" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldTasksFailed(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksFailed: %w", err)
	}
	return oldValue.TasksFailed, nil
}

// AddTasksFailed adds i to the "tasks_failed" field.
func (m *JobRunMutation) AddTasksFailed(i int32) {
	if m.addtasks_failed != nil {
		*m.addtasks_failed += i
	} else {
		m.addtasks_failed = &i
	}
}

// AddedTasksFailed returns the value that was added to the "tasks_failed" field in this mutation.
func (m *JobRunMutation) AddedTasksFailed() (r int32, exists bool) {
	v := m.addtasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksFailed resets all changes to the "tasks_failed" field.
func (m *JobRunMutation) ResetTasksFailed() {
	m.tasks_failed = nil
	m.addtasks_failed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the JobRun entity.
// If the JobRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *JobRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[jobrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[jobrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, jobrun.FieldCompletedAt)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobRunMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobrun.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobRunMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobRunMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobRunMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddFileIDs adds the "files" edge to the SourceFile entity by ids.
func (m *JobRunMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the SourceFile entity.
func (m *JobRunMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the SourceFile entity was cleared.
func (m *JobRunMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the SourceFile entity by IDs.
func (m *JobRunMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the SourceFile entity.
func (m *JobRunMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *JobRunMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *JobRunMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by ids.
func (m *JobRunMutation) AddTaskIDs(ids ...uuid.UUID) {
	if m.tasks == nil {
		m.tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the ExtractionTask entity.
func (m *JobRunMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the ExtractionTask entity was cleared.
func (m *JobRunMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the ExtractionTask entity by IDs.
func (m *JobRunMutation) RemoveTaskIDs(ids ...uuid.UUID) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the ExtractionTask entity.
func (m *JobRunMutation) RemovedTasksIDs() (ids []uuid.UUID) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *JobRunMutation) TasksIDs() (ids []uuid.UUID) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *JobRunMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the JobRunMutation builder.
func (m *JobRunMutation) Where(ps ...predicate.JobRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobRun).
func (m *JobRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobRunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, jobrun.FieldJobID)
	}
	if m.status != nil {
		fields = append(fields, jobrun.FieldStatus)
	}
	if m.config_step != nil {
		fields = append(fields, jobrun.FieldConfigStep)
	}
	if m.version != nil {
		fields = append(fields, jobrun.FieldVersion)
	}
	if m.fields != nil {
		fields = append(fields, jobrun.FieldFields)
	}
	if m.task_defs != nil {
		fields = append(fields, jobrun.FieldTaskDefs)
	}
	if m.fields_checksum != nil {
		fields = append(fields, jobrun.FieldFieldsChecksum)
	}
	if m.cloned_from_id != nil {
		fields = append(fields, jobrun.FieldClonedFromID)
	}
	if m.tasks_total != nil {
		fields = append(fields, jobrun.FieldTasksTotal)
	}
	if m.tasks_completed != nil {
		fields = append(fields, jobrun.FieldTasksCompleted)
	}
	if m.tasks_failed != nil {
		fields = append(fields, jobrun.FieldTasksFailed)
	}
	if m.created_at != nil {
		fields = append(fields, jobrun.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, jobrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobrun.FieldJobID:
		return m.JobID()
	case jobrun.FieldStatus:
		return m.Status()
	case jobrun.FieldConfigStep:
		return m.ConfigStep()
	case jobrun.FieldVersion:
		return m.Version()
	case jobrun.FieldFields:
		return m.GetFields()
	case jobrun.FieldTaskDefs:
		return m.TaskDefs()
	case jobrun.FieldFieldsChecksum:
		return m.FieldsChecksum()
	case jobrun.FieldClonedFromID:
		return m.ClonedFromID()
	case jobrun.FieldTasksTotal:
		return m.TasksTotal()
	case jobrun.FieldTasksCompleted:
		return m.TasksCompleted()
	case jobrun.FieldTasksFailed:
		return m.TasksFailed()
	case jobrun.FieldCreatedAt:
		return m.CreatedAt()
	case jobrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobrun.FieldJobID:
		return m.OldJobID(ctx)
	case jobrun.FieldStatus:
		return m.OldStatus(ctx)
	case jobrun.FieldConfigStep:
		return m.OldConfigStep(ctx)
	case jobrun.FieldVersion:
		return m.OldVersion(ctx)
	case jobrun.FieldFields:
		return m.OldFields(ctx)
	case jobrun.FieldTaskDefs:
		return m.OldTaskDefs(ctx)
	case jobrun.FieldFieldsChecksum:
		return m.OldFieldsChecksum(ctx)
	case jobrun.FieldClonedFromID:
		return m.OldClonedFromID(ctx)
	case jobrun.FieldTasksTotal:
		return m.OldTasksTotal(ctx)
	case jobrun.FieldTasksCompleted:
		return m.OldTasksCompleted(ctx)
	case jobrun.FieldTasksFailed:
		return m.OldTasksFailed(ctx)
	case jobrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobrun.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobrun.FieldConfigStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigStep(v)
		return nil
	case jobrun.FieldVersion:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case jobrun.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case jobrun.FieldTaskDefs:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDefs(v)
		return nil
	case jobrun.FieldFieldsChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldsChecksum(v)
		return nil
	case jobrun.FieldClonedFromID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClonedFromID(v)
		return nil
	case jobrun.FieldTasksTotal:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksTotal(v)
		return nil
	case jobrun.FieldTasksCompleted:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCompleted(v)
		return nil
	case jobrun.FieldTasksFailed:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksFailed(v)
		return nil
	case jobrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobRunMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, jobrun.FieldVersion)
	}
	if m.addtasks_total != nil {
		fields = append(fields, jobrun.FieldTasksTotal)
	}
	if m.addtasks_completed != nil {
		fields = append(fields, jobrun.FieldTasksCompleted)
	}
	if m.addtasks_failed != nil {
		fields = append(fields, jobrun.FieldTasksFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobrun.FieldVersion:
		return m.AddedVersion()
	case jobrun.FieldTasksTotal:
		return m.AddedTasksTotal()
	case jobrun.FieldTasksCompleted:
		return m.AddedTasksCompleted()
	case jobrun.FieldTasksFailed:
		return m.AddedTasksFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobrun.FieldVersion:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case jobrun.FieldTasksTotal:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksTotal(v)
		return nil
	case jobrun.FieldTasksCompleted:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCompleted(v)
		return nil
	case jobrun.FieldTasksFailed:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksFailed(v)
		return nil
	}
	return fmt.Errorf("unknown JobRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobrun.FieldFields) {
		fields = append(fields, jobrun.FieldFields)
	}
	if m.FieldCleared(jobrun.FieldTaskDefs) {
		fields = append(fields, jobrun.FieldTaskDefs)
	}
	if m.FieldCleared(jobrun.FieldFieldsChecksum) {
		fields = append(fields, jobrun.FieldFieldsChecksum)
	}
	if m.FieldCleared(jobrun.FieldClonedFromID) {
		fields = append(fields, jobrun.FieldClonedFromID)
	}
	if m.FieldCleared(jobrun.FieldCompletedAt) {
		fields = append(fields, jobrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobRunMutation) ClearField(name string) error {
	switch name {
	case jobrun.FieldFields:
		m.ClearFields()
		return nil
	case jobrun.FieldTaskDefs:
		m.ClearTaskDefs()
		return nil
	case jobrun.FieldFieldsChecksum:
		m.ClearFieldsChecksum()
		return nil
	case jobrun.FieldClonedFromID:
		m.ClearClonedFromID()
		return nil
	case jobrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown JobRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobRunMutation) ResetField(name string) error {
	switch name {
	case jobrun.FieldJobID:
		m.ResetJobID()
		return nil
	case jobrun.FieldStatus:
		m.ResetStatus()
		return nil
	case jobrun.FieldConfigStep:
		m.ResetConfigStep()
		return nil
	case jobrun.FieldVersion:
		m.ResetVersion()
		return nil
	case jobrun.FieldFields:
		m.ResetFields()
		return nil
	case jobrun.FieldTaskDefs:
		m.ResetTaskDefs()
		return nil
	case jobrun.FieldFieldsChecksum:
		m.ResetFieldsChecksum()
		return nil
	case jobrun.FieldClonedFromID:
		m.ResetClonedFromID()
		return nil
	case jobrun.FieldTasksTotal:
		m.ResetTasksTotal()
		return nil
	case jobrun.FieldTasksCompleted:
		m.ResetTasksCompleted()
		return nil
	case jobrun.FieldTasksFailed:
		m.ResetTasksFailed()
		return nil
	case jobrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown JobRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.job != nil {
		edges = append(edges, jobrun.EdgeJob)
	}
	if m.files != nil {
		edges = append(edges, jobrun.EdgeFiles)
	}
	if m.tasks != nil {
		edges = append(edges, jobrun.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobrun.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case jobrun.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case jobrun.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfiles != nil {
		edges = append(edges, jobrun.EdgeFiles)
	}
	if m.removedtasks != nil {
		edges = append(edges, jobrun.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case jobrun.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case jobrun.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjob {
		edges = append(edges, jobrun.EdgeJob)
	}
	if m.clearedfiles {
		edges = append(edges, jobrun.EdgeFiles)
	}
	if m.clearedtasks {
		edges = append(edges, jobrun.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobRunMutation) EdgeCleared(name string) bool {
	switch name {
	case jobrun.EdgeJob:
		return m.clearedjob
	case jobrun.EdgeFiles:
		return m.clearedfiles
	case jobrun.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobRunMutation) ClearEdge(name string) error {
	switch name {
	case jobrun.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobRunMutation) ResetEdge(name string) error {
	switch name {
	case jobrun.EdgeJob:
		m.ResetJob()
		return nil
	case jobrun.EdgeFiles:
		m.ResetFiles()
		return nil
	case jobrun.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown JobRun edge %s", name)
}

// OperationMutation represents an operation that mutates the Operation nodes in the graph.
type OperationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	kind          *string
	run_id        *uuid.UUID
	state         *string
	total         *int
	addtotal      *int
	completed     *int
	addcompleted  *int
	failed        *int
	addfailed     *int
	result        *json.RawMessage
	appendresult  json.RawMessage
	error_message *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Operation, error)
	predicates    []predicate.Operation
}

var _ ent.Mutation = (*OperationMutation)(nil)

// operationOption allows management of the mutation configuration using functional options.
type operationOption func(*OperationMutation)

// newOperationMutation creates new mutation for the Operation entity.
func newOperationMutation(c config, op Op, opts ...operationOption) *OperationMutation {
	m := &OperationMutation{
		config:        c,
		op:            op,
		typ:           TypeOperation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOperationID sets the ID field of the mutation.
func withOperationID(id uuid.UUID) operationOption {
	return func(m *OperationMutation) {
		var (
			err   error
			once  sync.Once
			value *Operation
		)
		m.oldValue = func(ctx context.Context) (*Operation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Operation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOperation sets the old Operation of the mutation.
func withOperation(node *Operation) operationOption {
	return func(m *OperationMutation) {
		m.oldValue = func(context.Context) (*Operation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OperationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OperationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Operation entities.
func (m *OperationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OperationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OperationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Operation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *OperationMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OperationMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OperationMutation) ResetKind() {
	m.kind = nil
}

// SetRunID sets the "run_id" field.
func (m *OperationMutation) SetRunID(u uuid.UUID) {
	m.run_id = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *OperationMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *OperationMutation) ResetRunID() {
	m.run_id = nil
}

// SetState sets the "state" field.
func (m *OperationMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *OperationMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *OperationMutation) ResetState() {
	m.state = nil
}

// SetTotal sets the "total" field.
func (m *OperationMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *OperationMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *OperationMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *OperationMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *OperationMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetCompleted sets the "completed" field.
func (m *OperationMutation) SetCompleted(i int) {
	m.completed = &i
	m.addcompleted = nil
}

// Completed returns the value of the "completed" field in the mutation.
func (m *OperationMutation) Completed() (r int, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// AddCompleted adds i to the "completed" field.
func (m *OperationMutation) AddCompleted(i int) {
	if m.addcompleted != nil {
		*m.addcompleted += i
	} else {
		m.addcompleted = &i
	}
}

// AddedCompleted returns the value that was added to the "completed" field in this mutation.
func (m *OperationMutation) AddedCompleted() (r int, exists bool) {
	v := m.addcompleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleted resets all changes to the "completed" field.
func (m *OperationMutation) ResetCompleted() {
	m.completed = nil
	m.addcompleted = nil
}

// SetFailed sets the "failed" field.
func (m *OperationMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *OperationMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *OperationMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *OperationMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *OperationMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetResult sets the "result" field.
func (m *OperationMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *OperationMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
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

// AppendResult adds jm to the "result" field.
func (m *OperationMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *OperationMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *OperationMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[operation.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *OperationMutation) ResultCleared() bool {
	_, ok := m.clearedFields[operation.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *OperationMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, operation.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *OperationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OperationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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
func (m *OperationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[operation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *OperationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[operation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OperationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, operation.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *OperationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OperationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OperationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OperationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OperationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OperationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OperationMutation builder.
func (m *OperationMutation) Where(ps ...predicate.Operation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OperationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OperationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Operation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OperationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OperationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Operation).
func (m *OperationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OperationMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.kind != nil {
		fields = append(fields, operation.FieldKind)
	}
	if m.run_id != nil {
		fields = append(fields, operation.FieldRunID)
	}
	if m.state != nil {
		fields = append(fields, operation.FieldState)
	}
	if m.total != nil {
		fields = append(fields, operation.FieldTotal)
	}
	if m.completed != nil {
		fields = append(fields, operation.FieldCompleted)
	}
	if m.failed != nil {
		fields = append(fields, operation.FieldFailed)
	}
	if m.result != nil {
		fields = append(fields, operation.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, operation.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, operation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, operation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OperationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case operation.FieldKind:
		return m.Kind()
	case operation.FieldRunID:
		return m.RunID()
	case operation.FieldState:
		return m.State()
	case operation.FieldTotal:
		return m.Total()
	case operation.FieldCompleted:
		return m.Completed()
	case operation.FieldFailed:
		return m.Failed()
	case operation.FieldResult:
		return m.Result()
	case operation.FieldErrorMessage:
		return m.ErrorMessage()
	case operation.FieldCreatedAt:
		return m.CreatedAt()
	case operation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OperationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case operation.FieldKind:
		return m.OldKind(ctx)
	case operation.FieldRunID:
		return m.OldRunID(ctx)
	case operation.FieldState:
		return m.OldState(ctx)
	case operation.FieldTotal:
		return m.OldTotal(ctx)
	case operation.FieldCompleted:
		return m.OldCompleted(ctx)
	case operation.FieldFailed:
		return m.OldFailed(ctx)
	case operation.FieldResult:
		return m.OldResult(ctx)
	case operation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case operation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case operation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Operation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case operation.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case operation.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case operation.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case operation.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case operation.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case operation.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case operation.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case operation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case operation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case operation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Operation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OperationMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, operation.FieldTotal)
	}
	if m.addcompleted != nil {
		fields = append(fields, operation.FieldCompleted)
	}
	if m.addfailed != nil {
		fields = append(fields, operation.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OperationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case operation.FieldTotal:
		return m.AddedTotal()
	case operation.FieldCompleted:
		return m.AddedCompleted()
	case operation.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case operation.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case operation.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleted(v)
		return nil
	case operation.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown Operation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OperationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(operation.FieldResult) {
		fields = append(fields, operation.FieldResult)
	}
	if m.FieldCleared(operation.FieldErrorMessage) {
		fields = append(fields, operation.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OperationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OperationMutation) ClearField(name string) error {
	switch name {
	case operation.FieldResult:
		m.ClearResult()
		return nil
	case operation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Operation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OperationMutation) ResetField(name string) error {
	switch name {
	case operation.FieldKind:
		m.ResetKind()
		return nil
	case operation.FieldRunID:
		m.ResetRunID()
		return nil
	case operation.FieldState:
		m.ResetState()
		return nil
	case operation.FieldTotal:
		m.ResetTotal()
		return nil
	case operation.FieldCompleted:
		m.ResetCompleted()
		return nil
	case operation.FieldFailed:
		m.ResetFailed()
		return nil
	case operation.FieldResult:
		m.ResetResult()
		return nil
	case operation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case operation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case operation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Operation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OperationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OperationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OperationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OperationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OperationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OperationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OperationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Operation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OperationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Operation edge %s", name)
}

// SourceFileMutation represents an operation that mutates the SourceFile nodes in the graph.
type SourceFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	filename      *string
	file_ext      *string
	file_size     *int64
	addfile_size  *int64
	content_hash  *[]byte
	status        *string
	origin        *string
	parent_id     *uuid.UUID
	error_message *string
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	run           *uuid.UUID
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*SourceFile, error)
	predicates    []predicate.SourceFile
}

var _ ent.Mutation = (*SourceFileMutation)(nil)

// sourcefileOption allows management of the mutation configuration using functional options.
type sourcefileOption func(*SourceFileMutation)

// newSourceFileMutation creates new mutation for the SourceFile entity.
func newSourceFileMutation(c config, op Op, opts ...sourcefileOption) *SourceFileMutation {
	m := &SourceFileMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceFileID sets the ID field of the mutation.
func withSourceFileID(id uuid.UUID) sourcefileOption {
	return func(m *SourceFileMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceFile
		)
		m.oldValue = func(ctx context.Context) (*SourceFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceFile sets the old SourceFile of the mutation.
func withSourceFile(node *SourceFile) sourcefileOption {
	return func(m *SourceFileMutation) {
		m.oldValue = func(context.Context) (*SourceFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceFile entities.
func (m *SourceFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *SourceFileMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SourceFileMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SourceFileMutation) ResetRunID() {
	m.run = nil
}

// SetSourcePath sets the "source_path" field.
func (m *SourceFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *SourceFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *SourceFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFilename sets the "filename" field.
func (m *SourceFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SourceFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SourceFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *SourceFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *SourceFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ClearFileExt clears the value of the "file_ext" field.
func (m *SourceFileMutation) ClearFileExt() {
	m.file_ext = nil
	m.clearedFields[sourcefile.FieldFileExt] = struct{}{}
}

// FileExtCleared returns if the "file_ext" field was cleared in this mutation.
func (m *SourceFileMutation) FileExtCleared() bool {
	_, ok := m.clearedFields[sourcefile.FieldFileExt]
	return ok
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *SourceFileMutation) ResetFileExt() {
	m.file_ext = nil
	delete(m.clearedFields, sourcefile.FieldFileExt)
}

// SetFileSize sets the "file_size" field.
func (m *SourceFileMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *SourceFileMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *SourceFileMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *SourceFileMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *SourceFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *SourceFileMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[sourcefile.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *SourceFileMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[sourcefile.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceFileMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, sourcefile.FieldContentHash)
}

// SetStatus sets the "status" field.
func (m *SourceFileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SourceFileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *SourceFileMutation) ResetStatus() {
	m.status = nil
}

// SetOrigin sets the "origin" field.
func (m *SourceFileMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *SourceFileMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *SourceFileMutation) ResetOrigin() {
	m.origin = nil
}

// SetParentID sets the "parent_id" field.
func (m *SourceFileMutation) SetParentID(u uuid.UUID) {
	m.parent_id = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *SourceFileMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *SourceFileMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[sourcefile.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *SourceFileMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[sourcefile.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *SourceFileMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, sourcefile.FieldParentID)
}

// SetErrorMessage sets the "error_message" field.
func (m *SourceFileMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SourceFileMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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
func (m *SourceFileMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[sourcefile.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SourceFileMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[sourcefile.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SourceFileMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, sourcefile.FieldErrorMessage)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SourceFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SourceFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SourceFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearRun clears the "run" edge to the JobRun entity.
func (m *SourceFileMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[sourcefile.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the JobRun entity was cleared.
func (m *SourceFileMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *SourceFileMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *SourceFileMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the SourceFileMutation builder.
func (m *SourceFileMutation) Where(ps ...predicate.SourceFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceFile).
func (m *SourceFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceFileMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.run != nil {
		fields = append(fields, sourcefile.FieldRunID)
	}
	if m.source_path != nil {
		fields = append(fields, sourcefile.FieldSourcePath)
	}
	if m.filename != nil {
		fields = append(fields, sourcefile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, sourcefile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	if m.content_hash != nil {
		fields = append(fields, sourcefile.FieldContentHash)
	}
	if m.status != nil {
		fields = append(fields, sourcefile.FieldStatus)
	}
	if m.origin != nil {
		fields = append(fields, sourcefile.FieldOrigin)
	}
	if m.parent_id != nil {
		fields = append(fields, sourcefile.FieldParentID)
	}
	if m.error_message != nil {
		fields = append(fields, sourcefile.FieldErrorMessage)
	}
	if m.uploaded_at != nil {
		fields = append(fields, sourcefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldRunID:
		return m.RunID()
	case sourcefile.FieldSourcePath:
		return m.SourcePath()
	case sourcefile.FieldFilename:
		return m.Filename()
	case sourcefile.FieldFileExt:
		return m.FileExt()
	case sourcefile.FieldFileSize:
		return m.FileSize()
	case sourcefile.FieldContentHash:
		return m.ContentHash()
	case sourcefile.FieldStatus:
		return m.Status()
	case sourcefile.FieldOrigin:
		return m.Origin()
	case sourcefile.FieldParentID:
		return m.ParentID()
	case sourcefile.FieldErrorMessage:
		return m.ErrorMessage()
	case sourcefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcefile.FieldRunID:
		return m.OldRunID(ctx)
	case sourcefile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case sourcefile.FieldFilename:
		return m.OldFilename(ctx)
	case sourcefile.FieldFileExt:
		return m.OldFileExt(ctx)
	case sourcefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case sourcefile.FieldContentHash:
		return m.OldContentHash(ctx)
	case sourcefile.FieldStatus:
		return m.OldStatus(ctx)
	case sourcefile.FieldOrigin:
		return m.OldOrigin(ctx)
	case sourcefile.FieldParentID:
		return m.OldParentID(ctx)
	case sourcefile.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case sourcefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case sourcefile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case sourcefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case sourcefile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case sourcefile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case sourcefile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sourcefile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sourcefile.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case sourcefile.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case sourcefile.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case sourcefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sourcefile.FieldFileExt) {
		fields = append(fields, sourcefile.FieldFileExt)
	}
	if m.FieldCleared(sourcefile.FieldContentHash) {
		fields = append(fields, sourcefile.FieldContentHash)
	}
	if m.FieldCleared(sourcefile.FieldParentID) {
		fields = append(fields, sourcefile.FieldParentID)
	}
	if m.FieldCleared(sourcefile.FieldErrorMessage) {
		fields = append(fields, sourcefile.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceFileMutation) ClearField(name string) error {
	switch name {
	case sourcefile.FieldFileExt:
		m.ClearFileExt()
		return nil
	case sourcefile.FieldContentHash:
		m.ClearContentHash()
		return nil
	case sourcefile.FieldParentID:
		m.ClearParentID()
		return nil
	case sourcefile.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SourceFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceFileMutation) ResetField(name string) error {
	switch name {
	case sourcefile.FieldRunID:
		m.ResetRunID()
		return nil
	case sourcefile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case sourcefile.FieldFilename:
		m.ResetFilename()
		return nil
	case sourcefile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case sourcefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case sourcefile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sourcefile.FieldStatus:
		m.ResetStatus()
		return nil
	case sourcefile.FieldOrigin:
		m.ResetOrigin()
		return nil
	case sourcefile.FieldParentID:
		m.ResetParentID()
		return nil
	case sourcefile.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case sourcefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, sourcefile.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcefile.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, sourcefile.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceFileMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcefile.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceFileMutation) ClearEdge(name string) error {
	switch name {
	case sourcefile.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown SourceFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceFileMutation) ResetEdge(name string) error {
	switch name {
	case sourcefile.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown SourceFile edge %s", name)
}
