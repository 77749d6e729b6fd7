package server

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	v1 "github.com/tablelift/tablelift/gen/proto/tablelift/v1"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/progress"
)

func parseUUID(field, value string) (uuid.UUID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func uuidPtrString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func toPBJob(j *entity.Job) *v1.Job {
	return &v1.Job{
		Id:         j.ID.String(),
		Name:       j.Name,
		TemplateId: uuidPtrString(j.TemplateID),
		CreatedAt:  formatTime(j.CreatedAt),
	}
}

func toPBRun(r *entity.JobRun) *v1.JobRun {
	fields := make([]*v1.FieldSpec, 0, len(r.Fields))
	for _, f := range r.Fields {
		fields = append(fields, &v1.FieldSpec{Name: f.Name, Type: f.Type, Prompt: f.Prompt})
	}
	defs := make([]*v1.TaskDefinition, 0, len(r.TaskDefs))
	for _, d := range r.TaskDefs {
		defs = append(defs, &v1.TaskDefinition{Folder: d.Folder, Mode: string(d.Mode)})
	}
	return &v1.JobRun{
		Id:             r.ID.String(),
		JobId:          r.JobID.String(),
		Status:         string(r.Status),
		ConfigStep:     string(r.ConfigStep),
		Version:        r.Version,
		Fields:         fields,
		TaskDefs:       defs,
		ClonedFromId:   uuidPtrString(r.ClonedFromID),
		TasksTotal:     r.TasksTotal,
		TasksCompleted: r.TasksCompleted,
		TasksFailed:    r.TasksFailed,
		CreatedAt:      formatTime(r.CreatedAt),
		CompletedAt:    formatTimePtr(r.CompletedAt),
	}
}

func fromPBFields(fields []*v1.FieldSpec) []entity.FieldSpec {
	out := make([]entity.FieldSpec, 0, len(fields))
	for _, f := range fields {
		out = append(out, entity.FieldSpec{Name: f.GetName(), Type: f.GetType(), Prompt: f.GetPrompt()})
	}
	return out
}

func fromPBTaskDefs(defs []*v1.TaskDefinition) []entity.TaskDefinition {
	out := make([]entity.TaskDefinition, 0, len(defs))
	for _, d := range defs {
		out = append(out, entity.TaskDefinition{
			Folder: d.GetFolder(),
			Mode:   constants.ProcessingMode(d.GetMode()),
		})
	}
	return out
}

func toPBFile(f *entity.SourceFile) *v1.SourceFile {
	return &v1.SourceFile{
		Id:             f.ID.String(),
		RunId:          f.RunID.String(),
		Filename:       f.Filename,
		FileExt:        f.FileExt,
		FileSize:       f.FileSize,
		ContentHashHex: hex.EncodeToString(f.ContentHash),
		Status:         string(f.Status),
		Origin:         string(f.Origin),
		ParentId:       uuidPtrString(f.ParentID),
		Error:          f.ErrorMessage,
		UploadedAt:     formatTime(f.UploadedAt),
	}
}

func toPBOperation(op *entity.Operation) *v1.Operation {
	return &v1.Operation{
		Id:          op.ID.String(),
		Kind:        string(op.Kind),
		RunId:       op.RunID.String(),
		State:       string(op.State),
		ProgressPct: int32(op.Progress()),
		Total:       int32(op.Total),
		Completed:   int32(op.Completed),
		Failed:      int32(op.Failed),
		ResultJson:  string(op.Result),
		Error:       op.ErrorMessage,
	}
}

func toPBExport(ex *entity.Export) *v1.Export {
	return &v1.Export{
		Id:          ex.ID.String(),
		RunId:       ex.RunID.String(),
		OperationId: ex.OperationID.String(),
		Destination: string(ex.Destination),
		FileKind:    string(ex.FileKind),
		State:       string(ex.State),
		ExternalRef: ex.ExternalRef,
		Error:       ex.ErrorMessage,
		CreatedAt:   formatTime(ex.CreatedAt),
	}
}

func toPBSnapshot(s progress.Snapshot) *v1.ProgressSnapshot {
	return &v1.ProgressSnapshot{
		RunId:     s.RunID.String(),
		Total:     int32(s.Total),
		Completed: int32(s.Completed),
		Failed:    int32(s.Failed),
		Terminal:  s.Terminal,
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}
