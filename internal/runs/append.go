package runs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/fieldspec"
	"github.com/tablelift/tablelift/internal/progress"
)

// CreateRunOptions controls how a new run is seeded.
type CreateRunOptions struct {
	// CloneFromRunID copies the source run's field configuration and task
	// definitions into the new run.
	CloneFromRunID *uuid.UUID
	// AppendResults additionally carries the source run's completed task
	// results over, so a later submit only processes newly added files.
	// Requires CloneFromRunID.
	AppendResults bool
	// Supersede cancels an existing editable run instead of failing on it.
	Supersede bool
}

// CreateRun creates a new editable run for the job. A job holds at most one
// editable run at a time; a second create fails with a conflict unless the
// caller asks to supersede the current one.
func (s *Service) CreateRun(ctx context.Context, jobID uuid.UUID, opts CreateRunOptions) (*entity.JobRun, error) {
	ok, err := s.jobs.Exists(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrNotFound
	}
	if opts.AppendResults && opts.CloneFromRunID == nil {
		return nil, common.ValidationErrorf("append requires a source run")
	}

	editable, err := s.runs.FindEditable(ctx, jobID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if editable != nil {
		if !opts.Supersede {
			return nil, common.ConflictErrorf("job %s already has editable run %s", jobID, editable.ID)
		}
		if err := s.archiveRun(ctx, editable); err != nil {
			return nil, err
		}
	}

	run := &entity.JobRun{
		ID:         uuid.New(),
		JobID:      jobID,
		Status:     constants.RunStatusPending,
		ConfigStep: constants.ConfigStepUpload,
		Version:    1,
	}

	var carried []*entity.ExtractionTask
	if opts.CloneFromRunID != nil {
		src, err := s.runs.Get(ctx, *opts.CloneFromRunID)
		if err != nil {
			return nil, err
		}
		if src.JobID != jobID {
			return nil, common.ValidationErrorf("run %s does not belong to job %s", src.ID, jobID)
		}
		clone := src.Clone()
		run.Fields = clone.Fields
		run.TaskDefs = clone.TaskDefs
		run.ClonedFromID = opts.CloneFromRunID
		if len(run.Fields) > 0 {
			run.FieldsChecksum = fieldspec.Checksum(run.Fields)
		}

		if opts.AppendResults {
			done, err := s.tasks.ListCompletedByRun(ctx, src.ID)
			if err != nil {
				return nil, err
			}
			for _, t := range done {
				carried = append(carried, &entity.ExtractionTask{
					ID:          uuid.New(),
					RunID:       run.ID,
					Folder:      t.Folder,
					Mode:        t.Mode,
					FileIDs:     append([]uuid.UUID(nil), t.FileIDs...),
					Status:      constants.TaskStatusCompleted,
					Result:      t.Result,
					CarriedOver: true,
				})
			}
			run.TasksTotal = int32(len(carried))
			run.TasksCompleted = int32(len(carried))
		}
	}

	created, err := s.runs.Create(ctx, run)
	if err != nil {
		return nil, err
	}
	if len(carried) > 0 {
		for _, t := range carried {
			t.RunID = created.ID
		}
		if carried, err = s.tasks.CreateBatch(ctx, carried); err != nil {
			return nil, err
		}
	}

	// Carried tasks are not published yet: field drift can still invalidate
	// them before submit, and the aggregate must never over-report.
	s.broadcaster.Open(created.ID)
	s.logger.Info("run created", "run_id", created.ID, "job_id", jobID,
		"carried_tasks", len(carried))
	return created, nil
}

// archiveRun retires the currently editable run so a new one can take its
// place.
func (s *Service) archiveRun(ctx context.Context, run *entity.JobRun) error {
	if s.sched != nil {
		s.sched.CancelRun(run.ID)
	}
	now := time.Now().UTC()
	_, err := s.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
		r.Status = constants.RunStatusCancelled
		r.CompletedAt = &now
		return nil
	})
	if err != nil {
		return err
	}
	s.broadcaster.Retire(run.ID)
	return nil
}

// publishCarried reports the surviving carried-over tasks to the progress
// aggregate. Runs on submit, after stale results had their chance to be
// invalidated; the broadcaster dedups, so a redelivered submit is harmless.
func (s *Service) publishCarried(ctx context.Context, run *entity.JobRun) error {
	if run.ClonedFromID == nil {
		return nil
	}
	done, err := s.tasks.ListCompletedByRun(ctx, run.ID)
	if err != nil {
		return err
	}
	for _, t := range done {
		if !t.CarriedOver {
			continue
		}
		s.broadcaster.Publish(progress.Event{
			RunID: run.ID, EntityID: t.ID,
			Kind: progress.KindTask, Register: true,
		})
		s.broadcaster.Publish(progress.Event{
			RunID: run.ID, EntityID: t.ID,
			Kind: progress.KindTask, Status: string(constants.TaskStatusCompleted),
		})
	}
	return nil
}

// invalidateStaleCarried drops carried-over results when the field
// configuration drifted since the clone: results produced under a different
// field set no longer match the schema the run promises.
func (s *Service) invalidateStaleCarried(ctx context.Context, run *entity.JobRun) error {
	if run.ClonedFromID == nil || run.FieldsChecksum == "" {
		return nil
	}
	current := fieldspec.Checksum(run.Fields)
	if current == run.FieldsChecksum {
		return nil
	}
	removed, err := s.tasks.DeleteCarried(ctx, run.ID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return nil
	}
	_, err = s.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
		r.TasksTotal -= int32(removed)
		r.TasksCompleted -= int32(removed)
		r.FieldsChecksum = current
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("carried results invalidated", "run_id", run.ID, "removed", removed)
	return nil
}
