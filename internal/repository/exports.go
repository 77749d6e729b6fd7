package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/gen/ent"
	entexport "github.com/tablelift/tablelift/gen/ent/export"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

type ExportRepository interface {
	Create(ctx context.Context, ex *entity.Export) (*entity.Export, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Export, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(*entity.Export)) (*entity.Export, error)
	ListByRun(ctx context.Context, runID uuid.UUID) ([]*entity.Export, error)
}

type exportRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExportRepository(entc *ent.Client, log *slog.Logger) ExportRepository {
	return &exportRepo{ent: entc, log: log}
}

func (r *exportRepo) Create(ctx context.Context, ex *entity.Export) (*entity.Export, error) {
	row, err := r.ent.Export.Create().
		SetRunID(ex.RunID).
		SetOperationID(ex.OperationID).
		SetDestination(string(ex.Destination)).
		SetFileKind(string(ex.FileKind)).
		SetState(string(ex.State)).
		Save(ctx)
	if err != nil {
		r.log.Error("failed to create export", "run_id", ex.RunID, "error", err)
		return nil, err
	}
	return toEntityExport(row), nil
}

func (r *exportRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Export, error) {
	row, err := r.ent.Export.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityExport(row), nil
}

func (r *exportRepo) Update(ctx context.Context, id uuid.UUID, mutate func(*entity.Export)) (*entity.Export, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(cur)
	row, err := r.ent.Export.UpdateOneID(id).
		SetState(string(cur.State)).
		SetArtifactPath(cur.ArtifactPath).
		SetExternalRef(cur.ExternalRef).
		SetErrorMessage(cur.ErrorMessage).
		Save(ctx)
	if err != nil {
		r.log.Error("failed to update export", "export_id", id, "error", err)
		return nil, err
	}
	return toEntityExport(row), nil
}

func (r *exportRepo) ListByRun(ctx context.Context, runID uuid.UUID) ([]*entity.Export, error) {
	rows, err := r.ent.Export.Query().
		Where(entexport.RunID(runID)).
		Order(ent.Asc(entexport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Export, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityExport(row))
	}
	return out, nil
}

func toEntityExport(row *ent.Export) *entity.Export {
	return &entity.Export{
		ID:           row.ID,
		RunID:        row.RunID,
		OperationID:  row.OperationID,
		Destination:  constants.ExportDestination(row.Destination),
		FileKind:     constants.ExportFileKind(row.FileKind),
		State:        constants.OperationState(row.State),
		ArtifactPath: row.ArtifactPath,
		ExternalRef:  row.ExternalRef,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
	}
}
