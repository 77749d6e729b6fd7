package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/gen/ent"
	enttask "github.com/tablelift/tablelift/gen/ent/extractiontask"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

type TaskRepository interface {
	CreateBatch(ctx context.Context, tasks []*entity.ExtractionTask) ([]*entity.ExtractionTask, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ExtractionTask, error)
	ListByRun(ctx context.Context, runID uuid.UUID) ([]*entity.ExtractionTask, error)
	ListCompletedByRun(ctx context.Context, runID uuid.UUID) ([]*entity.ExtractionTask, error)
	// MarkProcessing claims a pending task. Returns false when the task is no
	// longer pending, which makes redelivered work a no-op.
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	// Complete records a successful result. Returns false when the task
	// already reached a terminal status (duplicate delivery).
	Complete(ctx context.Context, id uuid.UUID, result json.RawMessage) (bool, error)
	Fail(ctx context.Context, id uuid.UUID, kind, message string) (bool, error)
	// Release returns a claimed-but-unfinished task to pending (cancel path).
	Release(ctx context.Context, id uuid.UUID) error
	DeleteCarried(ctx context.Context, runID uuid.UUID) (int, error)
}

type taskRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTaskRepository(entc *ent.Client, log *slog.Logger) TaskRepository {
	return &taskRepo{ent: entc, log: log}
}

func (r *taskRepo) CreateBatch(ctx context.Context, tasks []*entity.ExtractionTask) ([]*entity.ExtractionTask, error) {
	builders := make([]*ent.ExtractionTaskCreate, 0, len(tasks))
	for _, t := range tasks {
		create := r.ent.ExtractionTask.Create().
			SetRunID(t.RunID).
			SetFolder(t.Folder).
			SetMode(string(t.Mode)).
			SetFileIds(t.FileIDs).
			SetStatus(string(t.Status)).
			SetCarriedOver(t.CarriedOver)
		if len(t.Result) > 0 {
			create = create.SetResult(t.Result)
		}
		if t.FinishedAt != nil {
			create = create.SetFinishedAt(*t.FinishedAt)
		}
		builders = append(builders, create)
	}
	rows, err := r.ent.ExtractionTask.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.log.Error("failed to create task batch", "count", len(tasks), "error", err)
		return nil, err
	}
	out := make([]*entity.ExtractionTask, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityTask(row))
	}
	return out, nil
}

func (r *taskRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ExtractionTask, error) {
	row, err := r.ent.ExtractionTask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityTask(row), nil
}

func (r *taskRepo) ListByRun(ctx context.Context, runID uuid.UUID) ([]*entity.ExtractionTask, error) {
	rows, err := r.ent.ExtractionTask.Query().
		Where(enttask.RunID(runID)).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractionTask, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityTask(row))
	}
	return out, nil
}

func (r *taskRepo) ListCompletedByRun(ctx context.Context, runID uuid.UUID) ([]*entity.ExtractionTask, error) {
	rows, err := r.ent.ExtractionTask.Query().
		Where(enttask.RunID(runID), enttask.Status(string(constants.TaskStatusCompleted))).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractionTask, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityTask(row))
	}
	return out, nil
}

func (r *taskRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.ent.ExtractionTask.UpdateOneID(id).
		Where(enttask.Status(string(constants.TaskStatusPending))).
		SetStatus(string(constants.TaskStatusProcessing)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *taskRepo) Complete(ctx context.Context, id uuid.UUID, result json.RawMessage) (bool, error) {
	_, err := r.ent.ExtractionTask.UpdateOneID(id).
		Where(enttask.StatusIn(
			string(constants.TaskStatusPending),
			string(constants.TaskStatusProcessing),
		)).
		SetStatus(string(constants.TaskStatusCompleted)).
		SetResult(result).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		r.log.Error("failed to complete task", "task_id", id, "error", err)
		return false, err
	}
	return true, nil
}

func (r *taskRepo) Fail(ctx context.Context, id uuid.UUID, kind, message string) (bool, error) {
	_, err := r.ent.ExtractionTask.UpdateOneID(id).
		Where(enttask.StatusIn(
			string(constants.TaskStatusPending),
			string(constants.TaskStatusProcessing),
		)).
		SetStatus(string(constants.TaskStatusFailed)).
		SetErrorKind(kind).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		r.log.Error("failed to fail task", "task_id", id, "error", err)
		return false, err
	}
	return true, nil
}

func (r *taskRepo) Release(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.ExtractionTask.UpdateOneID(id).
		Where(enttask.Status(string(constants.TaskStatusProcessing))).
		SetStatus(string(constants.TaskStatusPending)).
		Save(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}
	return nil
}

func (r *taskRepo) DeleteCarried(ctx context.Context, runID uuid.UUID) (int, error) {
	n, err := r.ent.ExtractionTask.Delete().
		Where(enttask.RunID(runID), enttask.CarriedOver(true)).
		Exec(ctx)
	if err != nil {
		r.log.Error("failed to delete carried tasks", "run_id", runID, "error", err)
		return 0, err
	}
	return n, nil
}

func toEntityTask(row *ent.ExtractionTask) *entity.ExtractionTask {
	return &entity.ExtractionTask{
		ID:           row.ID,
		RunID:        row.RunID,
		Folder:       row.Folder,
		Mode:         constants.ProcessingMode(row.Mode),
		FileIDs:      row.FileIds,
		Status:       constants.TaskStatus(row.Status),
		Result:       row.Result,
		ErrorKind:    row.ErrorKind,
		ErrorMessage: row.ErrorMessage,
		CarriedOver:  row.CarriedOver,
		CreatedAt:    row.CreatedAt,
		FinishedAt:   row.FinishedAt,
	}
}
