package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
)

// ExtractionTask is one unit of extraction work derived at submission time.
// The task set for a run is frozen once created.
type ExtractionTask struct {
	ID           uuid.UUID                `json:"id"`
	RunID        uuid.UUID                `json:"run_id"`
	Folder       string                   `json:"folder"`
	Mode         constants.ProcessingMode `json:"mode"`
	FileIDs      []uuid.UUID              `json:"file_ids"`
	Status       constants.TaskStatus     `json:"status"`
	Result       json.RawMessage          `json:"result,omitempty"`
	ErrorKind    string                   `json:"error_kind,omitempty"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	CarriedOver  bool                     `json:"carried_over"` // cloned in from a prior run
	CreatedAt    time.Time                `json:"created_at"`
	FinishedAt   *time.Time               `json:"finished_at,omitempty"`
}
