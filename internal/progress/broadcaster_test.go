package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestBroadcaster_AppliesEventsExactlyOnce(t *testing.T) {
	b := NewBroadcaster(nil, 64)
	defer b.Close()

	runID := uuid.New()
	b.Open(runID)

	taskID := uuid.New()
	b.Publish(Event{RunID: runID, EntityID: taskID, Kind: KindTask, Register: true})
	b.Publish(Event{RunID: runID, EntityID: taskID, Kind: KindTask, Status: "COMPLETED"})
	// duplicate delivery of the same terminal transition
	b.Publish(Event{RunID: runID, EntityID: taskID, Kind: KindTask, Status: "COMPLETED"})

	waitFor(t, func() bool {
		snap, ok := b.Poll(runID)
		return ok && snap.Completed == 1
	})

	snap, _ := b.Poll(runID)
	if snap.Total != 1 || snap.Completed != 1 || snap.Failed != 0 {
		t.Errorf("snapshot = (%d,%d,%d), want (1,1,0)", snap.Total, snap.Completed, snap.Failed)
	}
}

func TestBroadcaster_PollNeverRegresses(t *testing.T) {
	b := NewBroadcaster(nil, 64)
	defer b.Close()

	runID := uuid.New()
	b.Open(runID)

	prev := 0
	for i := 0; i < 20; i++ {
		id := uuid.New()
		b.Publish(Event{RunID: runID, EntityID: id, Kind: KindFile, Register: true})
		b.Publish(Event{RunID: runID, EntityID: id, Kind: KindFile, Status: "READY"})

		snap, ok := b.Poll(runID)
		if !ok {
			t.Fatal("run not open")
		}
		if snap.Completed < prev {
			t.Fatalf("completed regressed: %d -> %d", prev, snap.Completed)
		}
		prev = snap.Completed
	}
	waitFor(t, func() bool {
		snap, _ := b.Poll(runID)
		return snap.Completed == 20
	})
}

func TestBroadcaster_SubscribeGetsSnapshotThenUpdates(t *testing.T) {
	b := NewBroadcaster(nil, 64)
	defer b.Close()

	runID := uuid.New()
	b.Open(runID)
	id := uuid.New()
	b.Publish(Event{RunID: runID, EntityID: id, Kind: KindTask, Register: true})
	waitFor(t, func() bool {
		snap, _ := b.Poll(runID)
		return snap.Total == 1
	})

	ch, cancel, ok := b.Subscribe(runID)
	if !ok {
		t.Fatal("Subscribe() failed")
	}
	defer cancel()

	first := <-ch
	if first.Total != 1 {
		t.Errorf("initial snapshot total = %d, want 1", first.Total)
	}

	b.Publish(Event{RunID: runID, EntityID: id, Kind: KindTask, Status: "FAILED", Failure: true})
	select {
	case snap := <-ch:
		if snap.Failed != 1 {
			t.Errorf("update failed = %d, want 1", snap.Failed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
	}
}

func TestBroadcaster_RetireClosesAndDropsLateEvents(t *testing.T) {
	b := NewBroadcaster(nil, 64)
	defer b.Close()

	runID := uuid.New()
	b.Open(runID)
	ch, cancel, _ := b.Subscribe(runID)
	defer cancel()
	<-ch // initial snapshot

	b.Retire(runID)

	waitFor(t, func() bool {
		for {
			snap, open := <-ch
			if !open {
				return true
			}
			if !snap.Terminal {
				t.Errorf("pre-close snapshot not terminal: %+v", snap)
			}
		}
	})

	// late duplicate after retirement must not reopen or count
	b.Publish(Event{RunID: runID, EntityID: uuid.New(), Kind: KindTask, Status: "COMPLETED"})
	time.Sleep(20 * time.Millisecond)
	snap, _ := b.Poll(runID)
	if snap.Completed != 0 {
		t.Errorf("late event applied after retirement: %+v", snap)
	}

	// a new subscriber still gets the terminal snapshot immediately
	ch2, _, ok := b.Subscribe(runID)
	if !ok {
		t.Fatal("Subscribe() after retire failed")
	}
	last := <-ch2
	if !last.Terminal {
		t.Error("post-retire subscriber did not get terminal snapshot")
	}
}
