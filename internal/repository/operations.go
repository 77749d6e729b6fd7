package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/gen/ent"
	entop "github.com/tablelift/tablelift/gen/ent/operation"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

type OperationRepository interface {
	Create(ctx context.Context, op *entity.Operation) (*entity.Operation, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Operation, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(*entity.Operation)) (*entity.Operation, error)
	// ListActiveByRun returns operations for a run that have not reached a
	// terminal state. Used to refuse run deletion while work is in flight.
	ListActiveByRun(ctx context.Context, runID uuid.UUID) ([]*entity.Operation, error)
}

type operationRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewOperationRepository(entc *ent.Client, log *slog.Logger) OperationRepository {
	return &operationRepo{ent: entc, log: log}
}

func (r *operationRepo) Create(ctx context.Context, op *entity.Operation) (*entity.Operation, error) {
	create := r.ent.Operation.Create().
		SetKind(string(op.Kind)).
		SetRunID(op.RunID).
		SetState(string(op.State)).
		SetTotal(op.Total)
	if len(op.Result) > 0 {
		create = create.SetResult(op.Result)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("failed to create operation", "kind", op.Kind, "run_id", op.RunID, "error", err)
		return nil, err
	}
	return toEntityOperation(row), nil
}

func (r *operationRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	row, err := r.ent.Operation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityOperation(row), nil
}

func (r *operationRepo) Update(ctx context.Context, id uuid.UUID, mutate func(*entity.Operation)) (*entity.Operation, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(cur)
	update := r.ent.Operation.UpdateOneID(id).
		SetState(string(cur.State)).
		SetTotal(cur.Total).
		SetCompleted(cur.Completed).
		SetFailed(cur.Failed).
		SetErrorMessage(cur.ErrorMessage)
	if len(cur.Result) > 0 {
		update = update.SetResult(cur.Result)
	}
	row, err := update.Save(ctx)
	if err != nil {
		r.log.Error("failed to update operation", "operation_id", id, "error", err)
		return nil, err
	}
	return toEntityOperation(row), nil
}

func (r *operationRepo) ListActiveByRun(ctx context.Context, runID uuid.UUID) ([]*entity.Operation, error) {
	rows, err := r.ent.Operation.Query().
		Where(
			entop.RunID(runID),
			entop.StateIn(
				string(constants.OperationAccepted),
				string(constants.OperationRunning),
			),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Operation, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityOperation(row))
	}
	return out, nil
}

func toEntityOperation(row *ent.Operation) *entity.Operation {
	return &entity.Operation{
		ID:           row.ID,
		Kind:         constants.OperationKind(row.Kind),
		RunID:        row.RunID,
		State:        constants.OperationState(row.State),
		Total:        row.Total,
		Completed:    row.Completed,
		Failed:       row.Failed,
		Result:       row.Result,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
