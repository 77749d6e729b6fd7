// Package scheduler derives the frozen task set for a submitted run and
// drives each task through a bounded worker queue to the extractor.
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/fieldspec"
	"github.com/tablelift/tablelift/internal/progress"
	"github.com/tablelift/tablelift/internal/repository"
)

// Task failure kinds recorded on extraction_task.error_kind.
const (
	FailureExtraction = "EXTRACTION"
	FailureTimeout    = "TIMEOUT"
	FailureValidation = "VALIDATION"
)

// RunCompleter is notified once every task of a run holds a terminal status.
type RunCompleter interface {
	FinalizeRun(ctx context.Context, runID uuid.UUID) error
}

// Scheduler owns task derivation and dispatch. One instance serves all runs.
type Scheduler struct {
	runs        repository.RunRepository
	files       repository.FileRepository
	tasks       repository.TaskRepository
	extractor   Extractor
	queue       async.Queue
	broadcaster *progress.Broadcaster
	completer   RunCompleter
	logger      *slog.Logger

	mu        sync.Mutex
	cancelled map[uuid.UUID]struct{}
	inflight  map[uuid.UUID]int
}

func New(
	runs repository.RunRepository,
	files repository.FileRepository,
	tasks repository.TaskRepository,
	extractor Extractor,
	queue async.Queue,
	broadcaster *progress.Broadcaster,
	completer RunCompleter,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		runs:        runs,
		files:       files,
		tasks:       tasks,
		extractor:   extractor,
		queue:       queue,
		broadcaster: broadcaster,
		completer:   completer,
		logger:      logger,
		cancelled:   make(map[uuid.UUID]struct{}),
		inflight:    make(map[uuid.UUID]int),
	}
}

// Bootstrap derives the task set from the run's ready files and task
// definitions, records it, and enqueues every task. The set is frozen: a
// second call for the same run finds existing tasks and only re-enqueues the
// pending ones, so a redelivered submit never duplicates work.
func (s *Scheduler) Bootstrap(ctx context.Context, runID uuid.UUID) error {
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return err
	}

	existing, err := s.tasks.ListByRun(ctx, runID)
	if err != nil {
		return err
	}
	fresh := make([]*entity.ExtractionTask, 0, len(existing))
	for _, t := range existing {
		if !t.CarriedOver {
			fresh = append(fresh, t)
		}
	}
	if len(fresh) > 0 {
		var pending []*entity.ExtractionTask
		for _, t := range fresh {
			if t.Status == constants.TaskStatusPending {
				pending = append(pending, t)
			}
		}
		s.reserve(runID, len(pending))
		for _, t := range pending {
			s.dispatch(run, t)
		}
		return nil
	}

	ready, err := s.files.ListByStatus(ctx, runID, constants.FileStatusReady)
	if err != nil {
		return err
	}

	derived := deriveTasks(runID, ready, run.TaskDefs)
	if len(derived) == 0 {
		// nothing new to process; a pure append run completes immediately
		s.logger.Info("no tasks derived", "run_id", runID, "ready_files", len(ready))
		return s.completer.FinalizeRun(ctx, runID)
	}

	created, err := s.tasks.CreateBatch(ctx, derived)
	if err != nil {
		return err
	}
	_, err = s.runs.Update(ctx, runID, func(r *entity.JobRun) error {
		r.TasksTotal += int32(len(created))
		return nil
	})
	if err != nil {
		return err
	}

	for _, t := range created {
		s.broadcaster.Publish(progress.Event{
			RunID: runID, EntityID: t.ID,
			Kind: progress.KindTask, Register: true,
		})
	}
	run, err = s.runs.Get(ctx, runID)
	if err != nil {
		return err
	}
	s.reserve(runID, len(created))
	for _, t := range created {
		s.dispatch(run, t)
	}
	s.logger.Info("run bootstrapped", "run_id", runID, "tasks", len(created))
	return nil
}

// CancelRun stops further dispatch for a run. Pending tasks are dropped on
// pickup; a task already inside the extractor finishes but its outcome is
// discarded.
func (s *Scheduler) CancelRun(runID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[runID] == 0 {
		// nothing queued or running; the run row's terminal status already
		// blocks any later pickup
		return
	}
	s.cancelled[runID] = struct{}{}
}

func (s *Scheduler) isCancelled(runID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cancelled[runID]
	return ok
}

// reserve accounts for dispatches about to be enqueued for a run, so a
// cancel mark stays alive until the last of them drains.
func (s *Scheduler) reserve(runID uuid.UUID, n int) {
	if n == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[runID] += n
}

// dispatchDone releases one reservation. When the run has nothing left in
// flight its bookkeeping is dropped entirely.
func (s *Scheduler) dispatchDone(runID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[runID]--
	if s.inflight[runID] <= 0 {
		delete(s.inflight, runID)
		delete(s.cancelled, runID)
	}
}

// deriveTasks groups ready files by folder and maps each task definition to
// tasks: one per file for individual mode, one per folder for combined.
// Folders without a definition default to individual. A combined folder with
// zero ready files yields no task.
func deriveTasks(runID uuid.UUID, ready []*entity.SourceFile, defs []entity.TaskDefinition) []*entity.ExtractionTask {
	byFolder := make(map[string][]*entity.SourceFile)
	var order []string
	for _, f := range ready {
		folder := fileFolder(f)
		if _, ok := byFolder[folder]; !ok {
			order = append(order, folder)
		}
		byFolder[folder] = append(byFolder[folder], f)
	}

	mode := make(map[string]constants.ProcessingMode, len(defs))
	for _, d := range defs {
		mode[d.Folder] = d.Mode
	}

	var out []*entity.ExtractionTask
	for _, folder := range order {
		group := byFolder[folder]
		m, ok := mode[folder]
		if !ok {
			m = constants.ModeIndividual
		}
		switch m {
		case constants.ModeCombined:
			ids := make([]uuid.UUID, 0, len(group))
			for _, f := range group {
				ids = append(ids, f.ID)
			}
			out = append(out, &entity.ExtractionTask{
				RunID:   runID,
				Folder:  folder,
				Mode:    constants.ModeCombined,
				FileIDs: ids,
				Status:  constants.TaskStatusPending,
			})
		default:
			for _, f := range group {
				out = append(out, &entity.ExtractionTask{
					RunID:   runID,
					Folder:  folder,
					Mode:    constants.ModeIndividual,
					FileIDs: []uuid.UUID{f.ID},
					Status:  constants.TaskStatusPending,
				})
			}
		}
	}
	return out
}

// fileFolder derives the grouping key from the file's relative name. Files
// uploaded without a directory prefix share the root folder "".
func fileFolder(f *entity.SourceFile) string {
	for i := len(f.Filename) - 1; i >= 0; i-- {
		if f.Filename[i] == '/' {
			return f.Filename[:i]
		}
	}
	return ""
}

func (s *Scheduler) dispatch(run *entity.JobRun, task *entity.ExtractionTask) {
	runID := run.ID
	taskID := task.ID
	schema := fieldspec.BuildResultSchema(run.Fields)
	fields := run.Fields

	job := async.Job{
		Name: fmt.Sprintf("extract %s", taskID),
		Run: func(ctx context.Context) error {
			defer s.dispatchDone(runID)
			return s.execute(ctx, runID, taskID, fields, schema)
		},
	}
	if err := s.queue.Enqueue(context.Background(), job); err != nil {
		s.logger.Error("failed to enqueue task", "task_id", taskID, "error", err)
	}
}

// execute runs one task end to end. Delivery is at-least-once: the claim on
// the pending status makes a duplicate pickup a no-op, and terminal writes
// report whether they actually landed so counters move exactly once.
func (s *Scheduler) execute(ctx context.Context, runID, taskID uuid.UUID, fields []entity.FieldSpec, schema map[string]any) error {
	if s.isCancelled(runID) {
		return nil
	}
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	if constants.IsTerminalRunStatus(run.Status) {
		// the cancel may have landed before this task was ever marked
		return nil
	}
	claimed, err := s.tasks.MarkProcessing(ctx, taskID)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return err
	}
	taskFiles := make([]*entity.SourceFile, 0, len(task.FileIDs))
	for _, id := range task.FileIDs {
		f, err := s.files.Get(ctx, id)
		if err != nil {
			return s.fail(ctx, runID, taskID, FailureExtraction, fmt.Sprintf("file %s: %v", id, err))
		}
		taskFiles = append(taskFiles, f)
	}

	result, err := s.extractor.Extract(ctx, ExtractRequest{
		RunID:  runID,
		TaskID: taskID,
		Folder: task.Folder,
		Mode:   task.Mode,
		Files:  taskFiles,
		Fields: fields,
		Schema: schema,
	})

	if s.isCancelled(runID) {
		// run was cancelled while the extractor ran; discard the outcome
		return nil
	}

	if err != nil {
		kind := FailureExtraction
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, common.ErrTimeout) {
			kind = FailureTimeout
		}
		return s.fail(ctx, runID, taskID, kind, err.Error())
	}
	if err := fieldspec.ValidateResult(schema, result); err != nil {
		return s.fail(ctx, runID, taskID, FailureValidation, err.Error())
	}
	return s.complete(ctx, runID, taskID, result)
}

func (s *Scheduler) complete(ctx context.Context, runID, taskID uuid.UUID, result json.RawMessage) error {
	landed, err := s.tasks.Complete(ctx, taskID, result)
	if err != nil {
		return err
	}
	if !landed {
		return nil
	}
	return s.settle(ctx, runID, taskID, false)
}

func (s *Scheduler) fail(ctx context.Context, runID, taskID uuid.UUID, kind, message string) error {
	landed, err := s.tasks.Fail(ctx, taskID, kind, message)
	if err != nil {
		return err
	}
	if !landed {
		return nil
	}
	s.logger.Warn("task failed", "run_id", runID, "task_id", taskID, "kind", kind, "error", message)
	return s.settle(ctx, runID, taskID, true)
}

// settle moves the run counters for one freshly terminal task, publishes the
// transition and finalizes the run when nothing is outstanding.
func (s *Scheduler) settle(ctx context.Context, runID, taskID uuid.UUID, failed bool) error {
	status := constants.TaskStatusCompleted
	if failed {
		status = constants.TaskStatusFailed
	}
	run, err := s.runs.Update(ctx, runID, func(r *entity.JobRun) error {
		if failed {
			r.TasksFailed++
		} else {
			r.TasksCompleted++
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.broadcaster.Publish(progress.Event{
		RunID: runID, EntityID: taskID,
		Kind: progress.KindTask, Status: string(status), Failure: failed,
	})
	if run.TasksCompleted+run.TasksFailed >= run.TasksTotal {
		return s.completer.FinalizeRun(ctx, runID)
	}
	return nil
}
