package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/gen/ent"
	entjob "github.com/tablelift/tablelift/gen/ent/job"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

// ErrStaleTransition is returned by guarded status updates when the row is no
// longer in an expected prior status. Callers treat it as an out-of-order
// delivery and skip the write.
var ErrStaleTransition = errors.New("stale status transition")

type JobRepository interface {
	Create(ctx context.Context, name string, templateID *uuid.UUID) (*entity.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	List(ctx context.Context) ([]*entity.Job, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, name string, templateID *uuid.UUID) (*entity.Job, error) {
	create := r.ent.Job.Create().SetName(name)
	if templateID != nil {
		create = create.SetTemplateID(*templateID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("failed to create job", "name", name, "error", err)
		return nil, err
	}
	return toEntityJob(row), nil
}

func (r *jobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityJob(row), nil
}

func (r *jobRepo) List(ctx context.Context) ([]*entity.Job, error) {
	rows, err := r.ent.Job.Query().Order(ent.Desc(entjob.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityJob(row))
	}
	return out, nil
}

func (r *jobRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Job.Query().Where(entjob.ID(id)).Exist(ctx)
}

func (r *jobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.Job.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("failed to delete job", "job_id", id, "error", err)
		return err
	}
	return nil
}

func toEntityJob(row *ent.Job) *entity.Job {
	return &entity.Job{
		ID:         row.ID,
		Name:       row.Name,
		TemplateID: row.TemplateID,
		CreatedAt:  row.CreatedAt,
	}
}
