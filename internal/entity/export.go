package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
)

// Export describes one output artifact produced from a run's results.
// Its lifecycle mirrors the operation that tracks it.
type Export struct {
	ID           uuid.UUID                   `json:"id"`
	RunID        uuid.UUID                   `json:"run_id"`
	OperationID  uuid.UUID                   `json:"operation_id"`
	Destination  constants.ExportDestination `json:"destination"`
	FileKind     constants.ExportFileKind    `json:"file_kind"`
	State        constants.OperationState    `json:"state"`
	ArtifactPath string                      `json:"artifact_path,omitempty"`
	ExternalRef  string                      `json:"external_ref,omitempty"` // remote file id once delivered
	ErrorMessage string                      `json:"error_message,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
}
