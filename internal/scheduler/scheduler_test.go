package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/fieldspec"
	"github.com/tablelift/tablelift/internal/progress"
	"github.com/tablelift/tablelift/internal/repository/memory"
)

// inlineQueue executes jobs synchronously so tests observe every outcome
// without timing assumptions.
type inlineQueue struct{}

func (inlineQueue) Enqueue(ctx context.Context, job async.Job) error { return job.Run(ctx) }
func (inlineQueue) Shutdown(context.Context)                         {}

type stubExtractor struct {
	mu    sync.Mutex
	calls []ExtractRequest
	fn    func(req ExtractRequest) (json.RawMessage, error)
}

func (e *stubExtractor) Extract(_ context.Context, req ExtractRequest) (json.RawMessage, error) {
	e.mu.Lock()
	e.calls = append(e.calls, req)
	e.mu.Unlock()
	if e.fn != nil {
		return e.fn(req)
	}
	return json.RawMessage(`{"vendor":"acme","total":"10.00"}`), nil
}

func (e *stubExtractor) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

type stubCompleter struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (c *stubCompleter) FinalizeRun(_ context.Context, runID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, runID)
	return nil
}

func (c *stubCompleter) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

type fixture struct {
	sched     *Scheduler
	runs      *memory.Runs
	files     *memory.Files
	tasks     *memory.Tasks
	extractor *stubExtractor
	completer *stubCompleter
	bc        *progress.Broadcaster
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	runs := memory.NewRuns()
	files := memory.NewFiles()
	tasks := memory.NewTasks()
	extractor := &stubExtractor{}
	completer := &stubCompleter{}
	bc := progress.NewBroadcaster(logger, 64)
	t.Cleanup(bc.Close)
	sched := New(runs, files, tasks, extractor, inlineQueue{}, bc, completer, logger)
	return &fixture{
		sched: sched, runs: runs, files: files, tasks: tasks,
		extractor: extractor, completer: completer, bc: bc,
	}
}

func (f *fixture) seedRun(t *testing.T, defs []entity.TaskDefinition, filenames ...string) *entity.JobRun {
	t.Helper()
	ctx := context.Background()
	run, err := f.runs.Create(ctx, &entity.JobRun{
		JobID:      uuid.New(),
		Status:     constants.RunStatusInProgress,
		ConfigStep: constants.ConfigStepSubmitted,
		Fields: []entity.FieldSpec{
			{Name: "vendor", Type: "STRING", Prompt: "vendor"},
			{Name: "total", Type: "CURRENCY", Prompt: "total"},
		},
		TaskDefs: defs,
	})
	if err != nil {
		t.Fatalf("create run: %v", err)
	}
	f.bc.Open(run.ID)
	for _, name := range filenames {
		_, err := f.files.Create(ctx, &entity.SourceFile{
			RunID:    run.ID,
			Filename: name,
			FileExt:  ".pdf",
			Status:   constants.FileStatusReady,
			Origin:   constants.OriginDirect,
		})
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
	}
	return run
}

func TestBootstrapDerivesIndividualTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, nil, "a.pdf", "b.pdf", "c.pdf")

	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	tasks, err := f.tasks.ListByRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("ListByRun: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("tasks = %d, want 3 (one per file)", len(tasks))
	}
	for _, task := range tasks {
		if task.Status != constants.TaskStatusCompleted {
			t.Fatalf("task %s status = %s, want COMPLETED", task.ID, task.Status)
		}
		if len(task.FileIDs) != 1 {
			t.Fatalf("individual task has %d files, want 1", len(task.FileIDs))
		}
	}
	got, _ := f.runs.Get(ctx, run.ID)
	if got.TasksTotal != 3 || got.TasksCompleted != 3 || got.TasksFailed != 0 {
		t.Fatalf("counters = %d/%d/%d, want 3/3/0", got.TasksCompleted, got.TasksFailed, got.TasksTotal)
	}
	if f.completer.callCount() != 1 {
		t.Fatalf("finalize calls = %d, want 1", f.completer.callCount())
	}
}

func TestBootstrapDerivesCombinedFolderTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	defs := []entity.TaskDefinition{
		{Folder: "invoices", Mode: constants.ModeCombined},
	}
	run := f.seedRun(t, defs, "invoices/a.pdf", "invoices/b.pdf", "loose.pdf")

	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	tasks, _ := f.tasks.ListByRun(ctx, run.ID)
	if len(tasks) != 2 {
		t.Fatalf("tasks = %d, want 2 (combined folder + loose file)", len(tasks))
	}
	var combined, individual int
	for _, task := range tasks {
		switch task.Mode {
		case constants.ModeCombined:
			combined++
			if task.Folder != "invoices" || len(task.FileIDs) != 2 {
				t.Fatalf("combined task = folder %q, %d files; want invoices, 2", task.Folder, len(task.FileIDs))
			}
		case constants.ModeIndividual:
			individual++
			if task.Folder != "" {
				t.Fatalf("loose file folder = %q, want root", task.Folder)
			}
		}
	}
	if combined != 1 || individual != 1 {
		t.Fatalf("combined/individual = %d/%d, want 1/1", combined, individual)
	}
}

func TestBootstrapWithNoReadyFilesFinalizesImmediately(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, []entity.TaskDefinition{{Folder: "empty", Mode: constants.ModeCombined}})

	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	tasks, _ := f.tasks.ListByRun(ctx, run.ID)
	if len(tasks) != 0 {
		t.Fatalf("tasks = %d, want 0", len(tasks))
	}
	if f.completer.callCount() != 1 {
		t.Fatalf("finalize calls = %d, want 1", f.completer.callCount())
	}
	if f.extractor.callCount() != 0 {
		t.Fatalf("extractor calls = %d, want 0", f.extractor.callCount())
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, nil, "a.pdf", "b.pdf")

	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("first Bootstrap: %v", err)
	}
	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("second Bootstrap: %v", err)
	}

	tasks, _ := f.tasks.ListByRun(ctx, run.ID)
	if len(tasks) != 2 {
		t.Fatalf("tasks after double bootstrap = %d, want 2", len(tasks))
	}
	got, _ := f.runs.Get(ctx, run.ID)
	if got.TasksTotal != 2 {
		t.Fatalf("tasks_total = %d, want 2", got.TasksTotal)
	}
	// completed tasks are not re-extracted on the second pass
	if f.extractor.callCount() != 2 {
		t.Fatalf("extractor calls = %d, want 2", f.extractor.callCount())
	}
}

func TestFailureKindsAreDistinguished(t *testing.T) {
	tests := []struct {
		name     string
		result   json.RawMessage
		err      error
		wantKind string
	}{
		{"extractor error", nil, errors.New("model unavailable"), FailureExtraction},
		{"timeout", nil, context.DeadlineExceeded, FailureTimeout},
		{"schema violation", json.RawMessage(`{"vendor":"acme"}`), nil, FailureValidation},
		{"not json", json.RawMessage(`not json`), nil, FailureValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.extractor.fn = func(ExtractRequest) (json.RawMessage, error) {
				return tt.result, tt.err
			}
			run := f.seedRun(t, nil, "a.pdf")

			if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
				t.Fatalf("Bootstrap: %v", err)
			}
			tasks, _ := f.tasks.ListByRun(ctx, run.ID)
			if len(tasks) != 1 {
				t.Fatalf("tasks = %d, want 1", len(tasks))
			}
			if tasks[0].Status != constants.TaskStatusFailed {
				t.Fatalf("status = %s, want FAILED", tasks[0].Status)
			}
			if tasks[0].ErrorKind != tt.wantKind {
				t.Fatalf("error kind = %s, want %s", tasks[0].ErrorKind, tt.wantKind)
			}
			got, _ := f.runs.Get(ctx, run.ID)
			if got.TasksFailed != 1 {
				t.Fatalf("tasks_failed = %d, want 1", got.TasksFailed)
			}
		})
	}
}

func TestDuplicateDeliveryMovesCountersOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, nil, "a.pdf")
	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	tasks, _ := f.tasks.ListByRun(ctx, run.ID)
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}

	// simulate a redelivered message for an already-terminal task
	schema := fieldspec.BuildResultSchema([]entity.FieldSpec{
		{Name: "vendor", Type: "STRING"}, {Name: "total", Type: "CURRENCY"},
	})
	if err := f.sched.execute(ctx, run.ID, tasks[0].ID, nil, schema); err != nil {
		t.Fatalf("redelivered execute: %v", err)
	}

	got, _ := f.runs.Get(ctx, run.ID)
	if got.TasksCompleted != 1 {
		t.Fatalf("tasks_completed = %d, want 1 after duplicate delivery", got.TasksCompleted)
	}
	if f.extractor.callCount() != 1 {
		t.Fatalf("extractor calls = %d, want 1", f.extractor.callCount())
	}
	if f.completer.callCount() != 1 {
		t.Fatalf("finalize calls = %d, want 1", f.completer.callCount())
	}
}

func TestCancelledRunDropsPendingAndDiscardsRunning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, nil, "a.pdf", "b.pdf")

	var once sync.Once
	f.extractor.fn = func(req ExtractRequest) (json.RawMessage, error) {
		// cancel mid-flight on the first extraction
		once.Do(func() { f.sched.CancelRun(req.RunID) })
		return json.RawMessage(`{"vendor":"acme","total":"1.00"}`), nil
	}

	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	// first task's result is discarded, second is never extracted
	if f.extractor.callCount() != 1 {
		t.Fatalf("extractor calls = %d, want 1", f.extractor.callCount())
	}
	got, _ := f.runs.Get(ctx, run.ID)
	if got.TasksCompleted != 0 || got.TasksFailed != 0 {
		t.Fatalf("counters moved after cancel: %d/%d", got.TasksCompleted, got.TasksFailed)
	}
	if f.completer.callCount() != 0 {
		t.Fatalf("finalize calls = %d, want 0", f.completer.callCount())
	}
}

func TestCancelBookkeepingIsReleasedAfterDrain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, nil, "a.pdf", "b.pdf")

	var once sync.Once
	f.extractor.fn = func(req ExtractRequest) (json.RawMessage, error) {
		once.Do(func() { f.sched.CancelRun(req.RunID) })
		return json.RawMessage(`{"vendor":"acme","total":"1.00"}`), nil
	}
	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	f.sched.mu.Lock()
	tracked := len(f.sched.cancelled) + len(f.sched.inflight)
	f.sched.mu.Unlock()
	if tracked != 0 {
		t.Fatalf("scheduler still tracks %d entries after the run drained", tracked)
	}

	// cancelling a run with nothing in flight records nothing
	f.sched.CancelRun(uuid.New())
	f.sched.mu.Lock()
	tracked = len(f.sched.cancelled)
	f.sched.mu.Unlock()
	if tracked != 0 {
		t.Fatalf("idle cancel left %d entries behind", tracked)
	}
}

func TestProgressEventsReachBroadcaster(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, nil, "a.pdf", "b.pdf")
	f.extractor.fn = func(req ExtractRequest) (json.RawMessage, error) {
		if len(req.Files) == 1 && req.Files[0].Filename == "b.pdf" {
			return nil, fmt.Errorf("unreadable scan")
		}
		return json.RawMessage(`{"vendor":"acme","total":"3.00"}`), nil
	}

	if err := f.sched.Bootstrap(ctx, run.ID); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	snap := waitForSnapshot(t, f.bc, run.ID, func(s progress.Snapshot) bool {
		return s.Total == 2 && s.Completed == 1 && s.Failed == 1
	})
	if snap.Completed != 1 || snap.Failed != 1 {
		t.Fatalf("snapshot = %+v, want 1 completed, 1 failed", snap)
	}
}

func waitForSnapshot(t *testing.T, bc *progress.Broadcaster, runID uuid.UUID, ok func(progress.Snapshot) bool) progress.Snapshot {
	t.Helper()
	var last progress.Snapshot
	for i := 0; i < 200; i++ {
		snap, found := bc.Poll(runID)
		if found && ok(snap) {
			return snap
		}
		last = snap
		// the broadcaster applies events on its own goroutine
		waitTick()
	}
	t.Fatalf("snapshot never converged, last = %+v", last)
	return last
}

func waitTick() { time.Sleep(5 * time.Millisecond) }
