package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/gen/ent"
	entfile "github.com/tablelift/tablelift/gen/ent/sourcefile"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

type FileRepository interface {
	Create(ctx context.Context, f *entity.SourceFile) (*entity.SourceFile, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.SourceFile, error)
	// ListByRun excludes soft-deleted rows unless includeDeleted is set.
	ListByRun(ctx context.Context, runID uuid.UUID, includeDeleted bool) ([]*entity.SourceFile, error)
	ListByStatus(ctx context.Context, runID uuid.UUID, status constants.FileStatus) ([]*entity.SourceFile, error)
	// UpdateStatus applies a guarded transition: the row must currently be in
	// one of from, otherwise ErrStaleTransition. Keeps per-file transitions
	// strictly ordered under concurrent writers.
	UpdateStatus(ctx context.Context, id uuid.UUID, from []constants.FileStatus, to constants.FileStatus, errMsg string) (*entity.SourceFile, error)
	SetMeta(ctx context.Context, id uuid.UUID, size int64, hash []byte) error
}

type fileRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFileRepository(entc *ent.Client, log *slog.Logger) FileRepository {
	return &fileRepo{ent: entc, log: log}
}

func (r *fileRepo) Create(ctx context.Context, f *entity.SourceFile) (*entity.SourceFile, error) {
	create := r.ent.SourceFile.Create().
		SetRunID(f.RunID).
		SetSourcePath(f.SourcePath).
		SetFilename(f.Filename).
		SetFileExt(f.FileExt).
		SetFileSize(f.FileSize).
		SetStatus(string(f.Status)).
		SetOrigin(string(f.Origin))
	if len(f.ContentHash) > 0 {
		create = create.SetContentHash(f.ContentHash)
	}
	if f.ParentID != nil {
		create = create.SetParentID(*f.ParentID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("failed to create source file", "run_id", f.RunID, "filename", f.Filename, "error", err)
		return nil, err
	}
	return toEntityFile(row), nil
}

func (r *fileRepo) Get(ctx context.Context, id uuid.UUID) (*entity.SourceFile, error) {
	row, err := r.ent.SourceFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityFile(row), nil
}

func (r *fileRepo) ListByRun(ctx context.Context, runID uuid.UUID, includeDeleted bool) ([]*entity.SourceFile, error) {
	q := r.ent.SourceFile.Query().Where(entfile.RunID(runID))
	if !includeDeleted {
		q = q.Where(entfile.StatusNEQ(string(constants.FileStatusDeleted)))
	}
	rows, err := q.Order(ent.Asc(entfile.FieldUploadedAt)).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SourceFile, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityFile(row))
	}
	return out, nil
}

func (r *fileRepo) ListByStatus(ctx context.Context, runID uuid.UUID, status constants.FileStatus) ([]*entity.SourceFile, error) {
	rows, err := r.ent.SourceFile.Query().
		Where(entfile.RunID(runID), entfile.Status(string(status))).
		Order(ent.Asc(entfile.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SourceFile, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityFile(row))
	}
	return out, nil
}

func (r *fileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from []constants.FileStatus, to constants.FileStatus, errMsg string) (*entity.SourceFile, error) {
	allowed := make([]string, 0, len(from))
	for _, s := range from {
		allowed = append(allowed, string(s))
	}
	update := r.ent.SourceFile.UpdateOneID(id).
		Where(entfile.StatusIn(allowed...)).
		SetStatus(string(to))
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}
	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrStaleTransition
		}
		r.log.Error("failed to update file status", "file_id", id, "to", to, "error", err)
		return nil, err
	}
	return toEntityFile(row), nil
}

func (r *fileRepo) SetMeta(ctx context.Context, id uuid.UUID, size int64, hash []byte) error {
	_, err := r.ent.SourceFile.UpdateOneID(id).
		SetFileSize(size).
		SetContentHash(hash).
		Save(ctx)
	if err != nil {
		r.log.Error("failed to set file meta", "file_id", id, "error", err)
	}
	return err
}

func toEntityFile(row *ent.SourceFile) *entity.SourceFile {
	return &entity.SourceFile{
		ID:           row.ID,
		RunID:        row.RunID,
		SourcePath:   row.SourcePath,
		Filename:     row.Filename,
		FileExt:      row.FileExt,
		FileSize:     row.FileSize,
		ContentHash:  row.ContentHash,
		Status:       constants.FileStatus(row.Status),
		Origin:       constants.FileOrigin(row.Origin),
		ParentID:     row.ParentID,
		ErrorMessage: row.ErrorMessage,
		UploadedAt:   row.UploadedAt,
	}
}
