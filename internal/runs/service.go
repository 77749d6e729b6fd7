// Package runs owns the job-run lifecycle state machine: the single-editable-
// run invariant, optimistic-concurrency on the run row, submission, append
// cloning, cancellation and terminal-status computation.
package runs

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/fieldspec"
	"github.com/tablelift/tablelift/internal/ops"
	"github.com/tablelift/tablelift/internal/progress"
	"github.com/tablelift/tablelift/internal/repository"
)

// Bootstrapper derives and dispatches the frozen task set for a submitted
// run. Implemented by the scheduler; injected after construction to avoid a
// circular build.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, runID uuid.UUID) error
	CancelRun(runID uuid.UUID)
}

type Service struct {
	jobs        repository.JobRepository
	runs        repository.RunRepository
	tasks       repository.TaskRepository
	opStore     *ops.Store
	broadcaster *progress.Broadcaster
	sched       Bootstrapper
	logger      *slog.Logger
}

func NewService(
	jobs repository.JobRepository,
	runs repository.RunRepository,
	tasks repository.TaskRepository,
	opStore *ops.Store,
	broadcaster *progress.Broadcaster,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		jobs:        jobs,
		runs:        runs,
		tasks:       tasks,
		opStore:     opStore,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// SetScheduler wires the task scheduler in. Must be called before Submit.
func (s *Service) SetScheduler(b Bootstrapper) { s.sched = b }

// CreateJob creates a job together with its first editable run.
func (s *Service) CreateJob(ctx context.Context, name string, templateID *uuid.UUID) (*entity.Job, *entity.JobRun, error) {
	if name == "" {
		return nil, nil, common.ValidationErrorf("name is required")
	}
	job, err := s.jobs.Create(ctx, name, templateID)
	if err != nil {
		return nil, nil, err
	}
	run, err := s.CreateRun(ctx, job.ID, CreateRunOptions{})
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("job created", "job_id", job.ID, "run_id", run.ID)
	return job, run, nil
}

func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	return s.jobs.Get(ctx, id)
}

func (s *Service) ListJobs(ctx context.Context) ([]*entity.Job, error) {
	return s.jobs.List(ctx)
}

// DeleteJob cancels every in-flight operation referencing the job's runs,
// then deletes the job; runs, files and tasks go with it.
func (s *Service) DeleteJob(ctx context.Context, id uuid.UUID) error {
	jobRuns, err := s.runs.ListByJob(ctx, id)
	if err != nil {
		return err
	}
	for _, run := range jobRuns {
		if _, err := s.opStore.CancelForRun(ctx, run.ID); err != nil {
			return err
		}
		if s.sched != nil {
			s.sched.CancelRun(run.ID)
		}
		s.broadcaster.Retire(run.ID)
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("job deleted", "job_id", id, "runs", len(jobRuns))
	return nil
}

func (s *Service) GetRun(ctx context.Context, id uuid.UUID) (*entity.JobRun, error) {
	return s.runs.Get(ctx, id)
}

func (s *Service) ListRuns(ctx context.Context, jobID uuid.UUID) ([]*entity.JobRun, error) {
	return s.runs.ListByJob(ctx, jobID)
}

// AdvanceConfigStep moves the run's wizard position forward. Backward moves
// and any move off a submitted run are rejected; a stale version is a
// VersionConflict the caller resolves by re-reading.
func (s *Service) AdvanceConfigStep(ctx context.Context, runID uuid.UUID, target constants.ConfigStep, expectedVersion int32) (*entity.JobRun, error) {
	targetIdx := constants.ConfigStepIndex(target)
	if targetIdx < 0 {
		return nil, common.ValidationErrorf("unknown config step %q", target)
	}
	if target == constants.ConfigStepSubmitted {
		return s.Submit(ctx, runID, expectedVersion)
	}
	return s.runs.UpdateCAS(ctx, runID, expectedVersion, func(run *entity.JobRun) error {
		if !run.Editable() {
			return common.RunNotEditableErrorf("run %s is %s/%s", run.ID, run.Status, run.ConfigStep)
		}
		if targetIdx < constants.ConfigStepIndex(run.ConfigStep) {
			return common.ValidationErrorf("cannot move config step backward from %s to %s", run.ConfigStep, target)
		}
		run.ConfigStep = target
		return nil
	})
}

// ConfigureFields replaces the run's field configuration and task
// definitions.
func (s *Service) ConfigureFields(ctx context.Context, runID uuid.UUID, expectedVersion int32, fields []entity.FieldSpec, defs []entity.TaskDefinition) (*entity.JobRun, error) {
	if err := fieldspec.Validate(fields); err != nil {
		return nil, err
	}
	for _, d := range defs {
		if d.Mode != constants.ModeIndividual && d.Mode != constants.ModeCombined {
			return nil, common.ValidationErrorf("folder %q: unknown processing mode %q", d.Folder, d.Mode)
		}
	}
	return s.runs.UpdateCAS(ctx, runID, expectedVersion, func(run *entity.JobRun) error {
		if !run.Editable() {
			return common.RunNotEditableErrorf("run %s is %s/%s", run.ID, run.Status, run.ConfigStep)
		}
		run.Fields = fields
		run.TaskDefs = defs
		return nil
	})
}

// Submit freezes the configuration and hands the run to the scheduler.
// Submitting an already-submitted run returns it unchanged so client retries
// are harmless.
func (s *Service) Submit(ctx context.Context, runID uuid.UUID, expectedVersion int32) (*entity.JobRun, error) {
	cur, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if cur.ConfigStep == constants.ConfigStepSubmitted {
		return cur, nil
	}
	if len(cur.Fields) == 0 {
		return nil, common.ValidationErrorf("run %s has no field configuration", runID)
	}

	run, err := s.runs.UpdateCAS(ctx, runID, expectedVersion, func(run *entity.JobRun) error {
		if !run.Editable() {
			return common.RunNotEditableErrorf("run %s is %s/%s", run.ID, run.Status, run.ConfigStep)
		}
		run.ConfigStep = constants.ConfigStepSubmitted
		run.Status = constants.RunStatusInProgress
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.invalidateStaleCarried(ctx, run); err != nil {
		return nil, err
	}
	if err := s.publishCarried(ctx, run); err != nil {
		return nil, err
	}

	if s.sched == nil {
		return nil, common.ErrInternal
	}
	if err := s.sched.Bootstrap(ctx, runID); err != nil {
		s.logger.Error("bootstrap failed", "run_id", runID, "error", err)
		now := time.Now().UTC()
		if _, ferr := s.runs.Update(ctx, runID, func(run *entity.JobRun) error {
			run.Status = constants.RunStatusFailed
			run.CompletedAt = &now
			return nil
		}); ferr != nil {
			s.logger.Error("failed to mark run failed after bootstrap error", "run_id", runID, "error", ferr)
		}
		s.broadcaster.Retire(runID)
		return nil, common.CollaboratorError("bootstrap", err)
	}

	s.logger.Info("run submitted", "run_id", runID)
	return s.runs.Get(ctx, runID)
}

// Cancel marks the run cancelled. Already-running tasks finish but their
// output is discarded; nothing new is dispatched.
func (s *Service) Cancel(ctx context.Context, runID uuid.UUID, expectedVersion int32) (*entity.JobRun, error) {
	cur, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if constants.IsTerminalRunStatus(cur.Status) {
		return cur, nil
	}
	now := time.Now().UTC()
	run, err := s.runs.UpdateCAS(ctx, runID, expectedVersion, func(run *entity.JobRun) error {
		run.Status = constants.RunStatusCancelled
		run.CompletedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	// only after the CAS landed: a rejected stale cancel must not stop
	// dispatch for a run that is still in progress
	if s.sched != nil {
		s.sched.CancelRun(runID)
	}
	s.broadcaster.Retire(runID)
	s.logger.Info("run cancelled", "run_id", runID)
	return run, nil
}

// FinalizeRun computes the terminal status once every task has a terminal
// outcome: completed with zero failures, failed when nothing succeeded,
// partially_completed otherwise. Called by the scheduler.
func (s *Service) FinalizeRun(ctx context.Context, runID uuid.UUID) error {
	cur, err := s.runs.Get(ctx, runID)
	if err != nil {
		return err
	}
	if constants.IsTerminalRunStatus(cur.Status) {
		return nil
	}
	if cur.TasksCompleted+cur.TasksFailed < cur.TasksTotal {
		return nil
	}

	status := constants.RunStatusCompleted
	switch {
	case cur.TasksFailed == 0:
		status = constants.RunStatusCompleted
	case cur.TasksCompleted == 0:
		status = constants.RunStatusFailed
	default:
		status = constants.RunStatusPartiallyCompleted
	}

	now := time.Now().UTC()
	_, err = s.runs.Update(ctx, runID, func(run *entity.JobRun) error {
		if constants.IsTerminalRunStatus(run.Status) {
			return nil
		}
		run.Status = status
		run.CompletedAt = &now
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrVersionConflict) {
			// another writer landed between read and write; retry once
			return s.FinalizeRun(ctx, runID)
		}
		return err
	}
	s.broadcaster.Retire(runID)
	s.logger.Info("run finalized", "run_id", runID, "status", status,
		"completed", cur.TasksCompleted, "failed", cur.TasksFailed)
	return nil
}
