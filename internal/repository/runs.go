package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/gen/ent"
	entrun "github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

type RunRepository interface {
	Create(ctx context.Context, run *entity.JobRun) (*entity.JobRun, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.JobRun, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobRun, error)
	// FindEditable returns the job's single run with config_step != submitted,
	// or common.ErrNotFound when every run is submitted/terminal.
	FindEditable(ctx context.Context, jobID uuid.UUID) (*entity.JobRun, error)
	// UpdateCAS applies mutate under the caller-supplied version; a mismatch
	// returns common.ErrVersionConflict and writes nothing.
	UpdateCAS(ctx context.Context, id uuid.UUID, expected int32, mutate func(*entity.JobRun) error) (*entity.JobRun, error)
	// Update re-reads the row and applies mutate under the current version.
	// Used by internal writers (scheduler counters, terminal status).
	Update(ctx context.Context, id uuid.UUID, mutate func(*entity.JobRun) error) (*entity.JobRun, error)
}

type runRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRunRepository(entc *ent.Client, log *slog.Logger) RunRepository {
	return &runRepo{ent: entc, log: log}
}

func (r *runRepo) Create(ctx context.Context, run *entity.JobRun) (*entity.JobRun, error) {
	fields, err := json.Marshal(run.Fields)
	if err != nil {
		return nil, err
	}
	defs, err := json.Marshal(run.TaskDefs)
	if err != nil {
		return nil, err
	}
	create := r.ent.JobRun.Create().
		SetJobID(run.JobID).
		SetStatus(string(run.Status)).
		SetConfigStep(string(run.ConfigStep)).
		SetFields(fields).
		SetTaskDefs(defs).
		SetFieldsChecksum(run.FieldsChecksum).
		SetTasksTotal(run.TasksTotal).
		SetTasksCompleted(run.TasksCompleted).
		SetTasksFailed(run.TasksFailed)
	if run.ClonedFromID != nil {
		create = create.SetClonedFromID(*run.ClonedFromID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("failed to create run", "job_id", run.JobID, "error", err)
		return nil, err
	}
	return toEntityRun(row)
}

func (r *runRepo) Get(ctx context.Context, id uuid.UUID) (*entity.JobRun, error) {
	row, err := r.ent.JobRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityRun(row)
}

func (r *runRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobRun, error) {
	rows, err := r.ent.JobRun.Query().
		Where(entrun.JobID(jobID)).
		Order(ent.Asc(entrun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.JobRun, 0, len(rows))
	for _, row := range rows {
		run, err := toEntityRun(row)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, nil
}

func (r *runRepo) FindEditable(ctx context.Context, jobID uuid.UUID) (*entity.JobRun, error) {
	row, err := r.ent.JobRun.Query().
		Where(
			entrun.JobID(jobID),
			entrun.ConfigStepNEQ(string(constants.ConfigStepSubmitted)),
			entrun.StatusNotIn(
				string(constants.RunStatusCompleted),
				string(constants.RunStatusPartiallyCompleted),
				string(constants.RunStatusFailed),
				string(constants.RunStatusCancelled),
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityRun(row)
}

func (r *runRepo) UpdateCAS(ctx context.Context, id uuid.UUID, expected int32, mutate func(*entity.JobRun) error) (*entity.JobRun, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Version != expected {
		return nil, common.VersionConflictError(expected, cur.Version)
	}
	return r.write(ctx, cur, expected, mutate)
}

func (r *runRepo) Update(ctx context.Context, id uuid.UUID, mutate func(*entity.JobRun) error) (*entity.JobRun, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.write(ctx, cur, cur.Version, mutate)
}

// write persists the mutated run guarded by a version predicate, so two
// concurrent writers cannot both land on the same version.
func (r *runRepo) write(ctx context.Context, cur *entity.JobRun, expected int32, mutate func(*entity.JobRun) error) (*entity.JobRun, error) {
	next := cur.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	fields, err := json.Marshal(next.Fields)
	if err != nil {
		return nil, err
	}
	defs, err := json.Marshal(next.TaskDefs)
	if err != nil {
		return nil, err
	}

	update := r.ent.JobRun.UpdateOneID(cur.ID).
		Where(entrun.Version(expected)).
		SetStatus(string(next.Status)).
		SetConfigStep(string(next.ConfigStep)).
		SetVersion(expected + 1).
		SetFields(fields).
		SetTaskDefs(defs).
		SetFieldsChecksum(next.FieldsChecksum).
		SetTasksTotal(next.TasksTotal).
		SetTasksCompleted(next.TasksCompleted).
		SetTasksFailed(next.TasksFailed)
	if next.CompletedAt != nil {
		update = update.SetCompletedAt(*next.CompletedAt)
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// row exists but the version predicate did not match
			return nil, common.VersionConflictError(expected, -1)
		}
		r.log.Error("failed to update run", "run_id", cur.ID, "error", err)
		return nil, err
	}
	return toEntityRun(row)
}

func toEntityRun(row *ent.JobRun) (*entity.JobRun, error) {
	run := &entity.JobRun{
		ID:             row.ID,
		JobID:          row.JobID,
		Status:         constants.RunStatus(row.Status),
		ConfigStep:     constants.ConfigStep(row.ConfigStep),
		Version:        row.Version,
		FieldsChecksum: row.FieldsChecksum,
		ClonedFromID:   row.ClonedFromID,
		TasksTotal:     row.TasksTotal,
		TasksCompleted: row.TasksCompleted,
		TasksFailed:    row.TasksFailed,
		CreatedAt:      row.CreatedAt,
		CompletedAt:    row.CompletedAt,
	}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &run.Fields); err != nil {
			return nil, err
		}
	}
	if len(row.TaskDefs) > 0 {
		if err := json.Unmarshal(row.TaskDefs, &run.TaskDefs); err != nil {
			return nil, err
		}
	}
	return run, nil
}
