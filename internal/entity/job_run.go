package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
)

// FieldSpec is one column the user wants extracted from every document.
type FieldSpec struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Prompt string `json:"prompt,omitempty"`
}

// TaskDefinition maps a folder to the processing mode its files get at submission.
type TaskDefinition struct {
	Folder string                   `json:"folder"`
	Mode   constants.ProcessingMode `json:"mode"`
}

// JobRun represents one versioned attempt at processing a job's files.
// Version is the optimistic-concurrency guard: it increments on every
// mutation, and writers must supply the version they read.
type JobRun struct {
	ID             uuid.UUID            `json:"id"`
	JobID          uuid.UUID            `json:"job_id"`
	Status         constants.RunStatus  `json:"status"`
	ConfigStep     constants.ConfigStep `json:"config_step"`
	Version        int32                `json:"version"`
	Fields         []FieldSpec          `json:"fields,omitempty"`
	TaskDefs       []TaskDefinition     `json:"task_defs,omitempty"`
	FieldsChecksum string               `json:"fields_checksum,omitempty"`
	ClonedFromID   *uuid.UUID           `json:"cloned_from_id,omitempty"`
	TasksTotal     int32                `json:"tasks_total"`
	TasksCompleted int32                `json:"tasks_completed"`
	TasksFailed    int32                `json:"tasks_failed"`
	CreatedAt      time.Time            `json:"created_at"`
	CompletedAt    *time.Time           `json:"completed_at,omitempty"`
}

// Editable reports whether the run still accepts uploads and configuration.
func (r *JobRun) Editable() bool {
	return r.ConfigStep != constants.ConfigStepSubmitted &&
		!constants.IsTerminalRunStatus(r.Status)
}

// Clone returns a deep copy, so callers can mutate without aliasing slices.
func (r *JobRun) Clone() *JobRun {
	out := *r
	out.Fields = append([]FieldSpec(nil), r.Fields...)
	out.TaskDefs = append([]TaskDefinition(nil), r.TaskDefs...)
	if r.ClonedFromID != nil {
		id := *r.ClonedFromID
		out.ClonedFromID = &id
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	return &out
}
