package scheduler

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/entity"
)

// ExtractRequest is everything the extraction collaborator needs for one
// task: the files in scope, the field configuration and the JSON schema the
// result must satisfy.
type ExtractRequest struct {
	RunID  uuid.UUID
	TaskID uuid.UUID
	Folder string
	Mode   constants.ProcessingMode
	Files  []*entity.SourceFile
	Fields []entity.FieldSpec
	Schema map[string]any
}

// Extractor is the external extraction collaborator. Implementations must
// honor ctx cancellation; the scheduler applies the per-task timeout through
// the worker queue's context.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (json.RawMessage, error)
}
