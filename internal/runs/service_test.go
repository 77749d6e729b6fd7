package runs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/ops"
	"github.com/tablelift/tablelift/internal/progress"
	"github.com/tablelift/tablelift/internal/repository/memory"
)

type stubScheduler struct {
	bootstraps int
	cancelled  []uuid.UUID
	fail       error
}

func (s *stubScheduler) Bootstrap(context.Context, uuid.UUID) error {
	s.bootstraps++
	return s.fail
}

func (s *stubScheduler) CancelRun(runID uuid.UUID) {
	s.cancelled = append(s.cancelled, runID)
}

type fixture struct {
	svc   *Service
	sched *stubScheduler
	jobs  *memory.Jobs
	runs  *memory.Runs
	tasks *memory.Tasks
	bc    *progress.Broadcaster
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	jobs := memory.NewJobs()
	runRepo := memory.NewRuns()
	tasks := memory.NewTasks()
	bc := progress.NewBroadcaster(logger, 16)
	t.Cleanup(bc.Close)
	svc := NewService(jobs, runRepo, tasks, ops.NewStore(memory.NewOperations(), logger), bc, logger)
	sched := &stubScheduler{}
	svc.SetScheduler(sched)
	return &fixture{svc: svc, sched: sched, jobs: jobs, runs: runRepo, tasks: tasks, bc: bc}
}

func testFields() []entity.FieldSpec {
	return []entity.FieldSpec{
		{Name: "vendor", Type: "STRING", Prompt: "vendor name"},
		{Name: "total", Type: "CURRENCY", Prompt: "grand total"},
	}
}

func (f *fixture) createConfiguredRun(t *testing.T) (*entity.Job, *entity.JobRun) {
	t.Helper()
	ctx := context.Background()
	job, run, err := f.svc.CreateJob(ctx, "invoices", nil)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	run, err = f.svc.ConfigureFields(ctx, run.ID, run.Version, testFields(), nil)
	if err != nil {
		t.Fatalf("ConfigureFields: %v", err)
	}
	return job, run
}

func TestCreateJobCreatesFirstEditableRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, run, err := f.svc.CreateJob(ctx, "invoices", nil)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if run.JobID != job.ID {
		t.Fatalf("run job id = %s, want %s", run.JobID, job.ID)
	}
	if run.Status != constants.RunStatusPending || run.ConfigStep != constants.ConfigStepUpload {
		t.Fatalf("new run is %s/%s, want PENDING/UPLOAD", run.Status, run.ConfigStep)
	}
	if run.Version != 1 {
		t.Fatalf("new run version = %d, want 1", run.Version)
	}
	if _, ok := f.bc.Poll(run.ID); !ok {
		t.Fatal("run not registered with broadcaster")
	}
}

func TestCreateRunEnforcesSingleEditableRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job, first, err := f.svc.CreateJob(ctx, "invoices", nil)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	_, err = f.svc.CreateRun(ctx, job.ID, CreateRunOptions{})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("second CreateRun error = %v, want ErrConflict", err)
	}

	// superseding cancels the prior editable run
	second, err := f.svc.CreateRun(ctx, job.ID, CreateRunOptions{Supersede: true})
	if err != nil {
		t.Fatalf("CreateRun(supersede): %v", err)
	}
	old, err := f.svc.GetRun(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if old.Status != constants.RunStatusCancelled {
		t.Fatalf("superseded run status = %s, want CANCELLED", old.Status)
	}
	if len(f.sched.cancelled) != 1 || f.sched.cancelled[0] != first.ID {
		t.Fatalf("scheduler cancel calls = %v, want [%s]", f.sched.cancelled, first.ID)
	}
	editable, err := f.runs.FindEditable(ctx, job.ID)
	if err != nil {
		t.Fatalf("FindEditable: %v", err)
	}
	if editable.ID != second.ID {
		t.Fatalf("editable run = %s, want %s", editable.ID, second.ID)
	}
}

func TestAdvanceConfigStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)

	run, err := f.svc.AdvanceConfigStep(ctx, run.ID, constants.ConfigStepFields, run.Version)
	if err != nil {
		t.Fatalf("advance to FIELDS: %v", err)
	}
	if run.ConfigStep != constants.ConfigStepFields {
		t.Fatalf("config step = %s, want FIELDS", run.ConfigStep)
	}

	if _, err := f.svc.AdvanceConfigStep(ctx, run.ID, constants.ConfigStepUpload, run.Version); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("backward move error = %v, want ErrValidation", err)
	}
	if _, err := f.svc.AdvanceConfigStep(ctx, run.ID, "SIDEWAYS", run.Version); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("unknown step error = %v, want ErrValidation", err)
	}
}

func TestStaleVersionIsRejectedAndRecoverable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)

	// writer A lands first
	updated, err := f.svc.AdvanceConfigStep(ctx, run.ID, constants.ConfigStepFields, run.Version)
	if err != nil {
		t.Fatalf("writer A: %v", err)
	}

	// writer B still holds the old version
	_, err = f.svc.AdvanceConfigStep(ctx, run.ID, constants.ConfigStepReview, run.Version)
	if !errors.Is(err, common.ErrVersionConflict) {
		t.Fatalf("writer B error = %v, want ErrVersionConflict", err)
	}

	// re-reading yields the current version and the retry succeeds
	run, err = f.svc.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.Version != updated.Version {
		t.Fatalf("re-read version = %d, want %d", run.Version, updated.Version)
	}
	if _, err := f.svc.AdvanceConfigStep(ctx, run.ID, constants.ConfigStepReview, run.Version); err != nil {
		t.Fatalf("retry after re-read: %v", err)
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)

	submitted, err := f.svc.Submit(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if submitted.ConfigStep != constants.ConfigStepSubmitted {
		t.Fatalf("config step = %s, want SUBMITTED", submitted.ConfigStep)
	}
	if submitted.Status != constants.RunStatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", submitted.Status)
	}

	// second submit with a stale version still returns the run unchanged
	again, err := f.svc.Submit(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if again.Version != submitted.Version {
		t.Fatalf("second submit version = %d, want %d", again.Version, submitted.Version)
	}
	if f.sched.bootstraps != 1 {
		t.Fatalf("bootstrap calls = %d, want 1", f.sched.bootstraps)
	}
}

func TestSubmitRequiresFieldConfiguration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run, err := f.svc.CreateJob(ctx, "invoices", nil)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if _, err := f.svc.Submit(ctx, run.ID, run.Version); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("Submit without fields error = %v, want ErrValidation", err)
	}
}

func TestSubmitBootstrapFailureFailsRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)
	f.sched.fail = errors.New("collaborator down")

	_, err := f.svc.Submit(ctx, run.ID, run.Version)
	if !errors.Is(err, common.ErrCollaborator) {
		t.Fatalf("Submit error = %v, want ErrCollaborator", err)
	}
	run, err = f.svc.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.Status != constants.RunStatusFailed {
		t.Fatalf("run status = %s, want FAILED", run.Status)
	}
}

func TestMutationsRejectedOnSubmittedRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)
	submitted, err := f.svc.Submit(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err = f.svc.ConfigureFields(ctx, run.ID, submitted.Version, testFields(), nil)
	if !errors.Is(err, common.ErrRunNotEditable) {
		t.Fatalf("ConfigureFields on submitted run error = %v, want ErrRunNotEditable", err)
	}
	_, err = f.svc.AdvanceConfigStep(ctx, run.ID, constants.ConfigStepReview, submitted.Version)
	if !errors.Is(err, common.ErrRunNotEditable) {
		t.Fatalf("AdvanceConfigStep on submitted run error = %v, want ErrRunNotEditable", err)
	}
}

func TestCancelRetiresRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)

	cancelled, err := f.svc.Cancel(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != constants.RunStatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", cancelled.Status)
	}
	if cancelled.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}

	// cancelling again is a no-op, not an error
	again, err := f.svc.Cancel(ctx, run.ID, cancelled.Version)
	if err != nil {
		t.Fatalf("second Cancel: %v", err)
	}
	if again.Version != cancelled.Version {
		t.Fatalf("second cancel bumped version to %d", again.Version)
	}
}

func TestCancelWithStaleVersionLeavesRunRunning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)
	if _, err := f.svc.Submit(ctx, run.ID, run.Version); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// run.Version predates the submit
	_, err := f.svc.Cancel(ctx, run.ID, run.Version)
	if !errors.Is(err, common.ErrVersionConflict) {
		t.Fatalf("stale cancel error = %v, want ErrVersionConflict", err)
	}
	if len(f.sched.cancelled) != 0 {
		t.Fatalf("rejected cancel still stopped dispatch: %v", f.sched.cancelled)
	}
	got, err := f.svc.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Status != constants.RunStatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS after rejected cancel", got.Status)
	}
}

func TestFinalizeRunStatusComputation(t *testing.T) {
	tests := []struct {
		name      string
		completed int32
		failed    int32
		total     int32
		want      constants.RunStatus
	}{
		{"all succeeded", 3, 0, 3, constants.RunStatusCompleted},
		{"mixed outcomes", 2, 1, 3, constants.RunStatusPartiallyCompleted},
		{"all failed", 0, 3, 3, constants.RunStatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_, run := f.createConfiguredRun(t)
			run, err := f.svc.Submit(ctx, run.ID, run.Version)
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			_, err = f.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
				r.TasksTotal = tt.total
				r.TasksCompleted = tt.completed
				r.TasksFailed = tt.failed
				return nil
			})
			if err != nil {
				t.Fatalf("seed counters: %v", err)
			}

			if err := f.svc.FinalizeRun(ctx, run.ID); err != nil {
				t.Fatalf("FinalizeRun: %v", err)
			}
			got, err := f.svc.GetRun(ctx, run.ID)
			if err != nil {
				t.Fatalf("GetRun: %v", err)
			}
			if got.Status != tt.want {
				t.Fatalf("status = %s, want %s", got.Status, tt.want)
			}
			if got.CompletedAt == nil {
				t.Fatal("completed_at not set")
			}
		})
	}
}

func TestFinalizeRunWaitsForOutstandingTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, run := f.createConfiguredRun(t)
	run, err := f.svc.Submit(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	_, err = f.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
		r.TasksTotal = 3
		r.TasksCompleted = 1
		return nil
	})
	if err != nil {
		t.Fatalf("seed counters: %v", err)
	}

	if err := f.svc.FinalizeRun(ctx, run.ID); err != nil {
		t.Fatalf("FinalizeRun: %v", err)
	}
	got, _ := f.svc.GetRun(ctx, run.ID)
	if got.Status != constants.RunStatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS while tasks outstanding", got.Status)
	}
}

func TestDeleteJobCancelsOperations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job, run := f.createConfiguredRun(t)

	op, err := f.svc.opStore.Begin(ctx, constants.OperationKindImport, run.ID, 5)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := f.svc.DeleteJob(ctx, job.ID); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}

	got, err := f.svc.opStore.Get(ctx, op.ID)
	if err != nil {
		t.Fatalf("Get operation: %v", err)
	}
	if got.State != constants.OperationCancelled {
		t.Fatalf("operation state = %s, want CANCELLED", got.State)
	}
	if _, err := f.svc.GetJob(ctx, job.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("GetJob after delete error = %v, want ErrNotFound", err)
	}
}

func TestAppendRunCarriesCompletedResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job, run := f.createConfiguredRun(t)
	run, err := f.svc.Submit(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	seeded, err := f.tasks.CreateBatch(ctx, []*entity.ExtractionTask{
		{RunID: run.ID, Folder: "a", Mode: constants.ModeIndividual, Status: constants.TaskStatusPending},
		{RunID: run.ID, Folder: "b", Mode: constants.ModeIndividual, Status: constants.TaskStatusPending},
	})
	if err != nil {
		t.Fatalf("seed tasks: %v", err)
	}
	result := json.RawMessage(`{"vendor":"acme","total":"12.50"}`)
	if _, err := f.tasks.Complete(ctx, seeded[0].ID, result); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, err := f.tasks.Fail(ctx, seeded[1].ID, "EXTRACTION", "boom"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	_, err = f.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
		r.TasksTotal, r.TasksCompleted, r.TasksFailed = 2, 1, 1
		return nil
	})
	if err != nil {
		t.Fatalf("seed counters: %v", err)
	}
	if err := f.svc.FinalizeRun(ctx, run.ID); err != nil {
		t.Fatalf("FinalizeRun: %v", err)
	}

	next, err := f.svc.CreateRun(ctx, job.ID, CreateRunOptions{
		CloneFromRunID: &run.ID,
		AppendResults:  true,
	})
	if err != nil {
		t.Fatalf("CreateRun(append): %v", err)
	}
	if len(next.Fields) != len(testFields()) {
		t.Fatalf("cloned fields = %d, want %d", len(next.Fields), len(testFields()))
	}
	if next.ClonedFromID == nil || *next.ClonedFromID != run.ID {
		t.Fatal("cloned_from not recorded")
	}
	if next.TasksTotal != 1 || next.TasksCompleted != 1 {
		t.Fatalf("carried counters = %d/%d, want 1/1", next.TasksCompleted, next.TasksTotal)
	}

	carried, err := f.tasks.ListByRun(ctx, next.ID)
	if err != nil {
		t.Fatalf("ListByRun: %v", err)
	}
	if len(carried) != 1 {
		t.Fatalf("carried tasks = %d, want 1 (only completed results carry over)", len(carried))
	}
	if !carried[0].CarriedOver || carried[0].Status != constants.TaskStatusCompleted {
		t.Fatalf("carried task = %+v, want carried_over COMPLETED", carried[0])
	}
	if string(carried[0].Result) != string(result) {
		t.Fatalf("carried result = %s, want %s", carried[0].Result, result)
	}
}

func TestSubmitInvalidatesCarriedResultsOnFieldDrift(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job, run := f.createConfiguredRun(t)
	run, err := f.svc.Submit(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	seeded, err := f.tasks.CreateBatch(ctx, []*entity.ExtractionTask{
		{RunID: run.ID, Folder: "a", Mode: constants.ModeIndividual, Status: constants.TaskStatusPending},
	})
	if err != nil {
		t.Fatalf("seed tasks: %v", err)
	}
	if _, err := f.tasks.Complete(ctx, seeded[0].ID, json.RawMessage(`{"vendor":"acme","total":"1"}`)); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	_, err = f.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
		r.TasksTotal, r.TasksCompleted = 1, 1
		return nil
	})
	if err != nil {
		t.Fatalf("seed counters: %v", err)
	}
	if err := f.svc.FinalizeRun(ctx, run.ID); err != nil {
		t.Fatalf("FinalizeRun: %v", err)
	}

	next, err := f.svc.CreateRun(ctx, job.ID, CreateRunOptions{CloneFromRunID: &run.ID, AppendResults: true})
	if err != nil {
		t.Fatalf("CreateRun(append): %v", err)
	}

	// change the field set before submitting the append run
	changed := append(testFields(), entity.FieldSpec{Name: "date", Type: "DATE", Prompt: "invoice date"})
	next, err = f.svc.ConfigureFields(ctx, next.ID, next.Version, changed, nil)
	if err != nil {
		t.Fatalf("ConfigureFields: %v", err)
	}
	next, err = f.svc.Submit(ctx, next.ID, next.Version)
	if err != nil {
		t.Fatalf("Submit append run: %v", err)
	}

	left, err := f.tasks.ListByRun(ctx, next.ID)
	if err != nil {
		t.Fatalf("ListByRun: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("carried tasks after drift = %d, want 0", len(left))
	}
	got, _ := f.svc.GetRun(ctx, next.ID)
	if got.TasksTotal != 0 || got.TasksCompleted != 0 {
		t.Fatalf("counters after invalidation = %d/%d, want 0/0", got.TasksCompleted, got.TasksTotal)
	}

	// the progress aggregate agrees with the run row
	waitTick()
	snap, ok := f.bc.Poll(next.ID)
	if !ok {
		t.Fatal("append run not registered with broadcaster")
	}
	if snap.Total != 0 || snap.Completed != 0 {
		t.Fatalf("snapshot after drift = %d/%d, want 0/0", snap.Completed, snap.Total)
	}
}

func TestCarriedProgressIsPublishedOnSubmit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job, run := f.createConfiguredRun(t)
	run, err := f.svc.Submit(ctx, run.ID, run.Version)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	seeded, err := f.tasks.CreateBatch(ctx, []*entity.ExtractionTask{
		{RunID: run.ID, Folder: "a", Mode: constants.ModeIndividual, Status: constants.TaskStatusPending},
	})
	if err != nil {
		t.Fatalf("seed tasks: %v", err)
	}
	if _, err := f.tasks.Complete(ctx, seeded[0].ID, json.RawMessage(`{"vendor":"acme","total":"1"}`)); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	_, err = f.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
		r.TasksTotal, r.TasksCompleted = 1, 1
		return nil
	})
	if err != nil {
		t.Fatalf("seed counters: %v", err)
	}
	if err := f.svc.FinalizeRun(ctx, run.ID); err != nil {
		t.Fatalf("FinalizeRun: %v", err)
	}

	next, err := f.svc.CreateRun(ctx, job.ID, CreateRunOptions{CloneFromRunID: &run.ID, AppendResults: true})
	if err != nil {
		t.Fatalf("CreateRun(append): %v", err)
	}
	// carried tasks are not reported until the run is submitted
	waitTick()
	snap, ok := f.bc.Poll(next.ID)
	if !ok {
		t.Fatal("append run not registered with broadcaster")
	}
	if snap.Total != 0 {
		t.Fatalf("total before submit = %d, want 0", snap.Total)
	}

	if _, err := f.svc.Submit(ctx, next.ID, next.Version); err != nil {
		t.Fatalf("Submit append run: %v", err)
	}
	got := waitForSnapshot(t, f.bc, next.ID, func(s progress.Snapshot) bool {
		return s.Total == 1 && s.Completed == 1
	})
	if got.Failed != 0 {
		t.Fatalf("snapshot = %+v, want 1/1 with no failures", got)
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
