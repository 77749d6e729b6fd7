package ops

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/repository/memory"
)

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewOperations(), nil)
	runID := uuid.New()

	op, err := store.Begin(ctx, constants.OperationKindImport, runID, 3)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if op.State != constants.OperationAccepted {
		t.Fatalf("state = %s, want ACCEPTED", op.State)
	}

	if err := store.SetRunning(ctx, op.ID); err != nil {
		t.Fatalf("SetRunning() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Step(ctx, op.ID, true); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
	if err := store.Step(ctx, op.ID, false); err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	got, _ := store.Get(ctx, op.ID)
	if got.Completed != 2 || got.Failed != 1 {
		t.Errorf("counters = (%d,%d), want (2,1)", got.Completed, got.Failed)
	}
	if got.Progress() != 100 {
		t.Errorf("Progress() = %d, want 100", got.Progress())
	}

	if err := store.Done(ctx, op.ID, map[string]int{"succeeded": 2, "failed": 1}); err != nil {
		t.Fatalf("Done() error = %v", err)
	}
	got, _ = store.Get(ctx, op.ID)
	if got.State != constants.OperationDone {
		t.Errorf("state = %s, want DONE", got.State)
	}
	if len(got.Result) == 0 {
		t.Error("missing result summary")
	}
}

func TestStore_FailDoesNotOverrideTerminal(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewOperations(), nil)

	op, _ := store.Begin(ctx, constants.OperationKindExport, uuid.New(), 1)
	if err := store.Done(ctx, op.ID, nil); err != nil {
		t.Fatalf("Done() error = %v", err)
	}
	if err := store.Fail(ctx, op.ID, "late failure"); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}

	got, _ := store.Get(ctx, op.ID)
	if got.State != constants.OperationDone {
		t.Errorf("state = %s, want DONE to stick", got.State)
	}
}

func TestStore_CancelForRun(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewOperations(), nil)
	runID := uuid.New()

	a, _ := store.Begin(ctx, constants.OperationKindImport, runID, 1)
	b, _ := store.Begin(ctx, constants.OperationKindExport, runID, 1)
	_ = store.Done(ctx, b.ID, nil)

	n, err := store.CancelForRun(ctx, runID)
	if err != nil {
		t.Fatalf("CancelForRun() error = %v", err)
	}
	if n != 1 {
		t.Errorf("cancelled %d operations, want 1", n)
	}
	got, _ := store.Get(ctx, a.ID)
	if got.State != constants.OperationCancelled {
		t.Errorf("state = %s, want CANCELLED", got.State)
	}
}
