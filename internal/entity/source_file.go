package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
)

// SourceFile represents one unit of input bound to a job run.
type SourceFile struct {
	ID           uuid.UUID            `json:"id"`
	RunID        uuid.UUID            `json:"run_id"`
	SourcePath   string               `json:"source_path"`
	Filename     string               `json:"filename"`
	FileExt      string               `json:"file_ext"`
	FileSize     int64                `json:"file_size"`
	ContentHash  []byte               `json:"content_hash,omitempty"`
	Status       constants.FileStatus `json:"status"`
	Origin       constants.FileOrigin `json:"origin"`
	ParentID     *uuid.UUID           `json:"parent_id,omitempty"` // archive this member came from
	ErrorMessage string               `json:"error_message,omitempty"`
	UploadedAt   time.Time            `json:"uploaded_at"`
}
