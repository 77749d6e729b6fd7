// Package progress aggregates file and task terminal transitions into a
// single per-run counter tuple, served identically to pollers and
// subscribers. The aggregate is the only source of truth: the event stream is
// a read projection of state owned by the ingestion and scheduling
// components, never an independent writer.
package progress

import (
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// EntityKind tags which state machine an event came from.
type EntityKind string

const (
	KindFile EntityKind = "file"
	KindTask EntityKind = "task"
)

// Event is one registration or terminal transition of a file or task.
// Applying the same (entity, status) pair twice is a no-op.
type Event struct {
	RunID    uuid.UUID
	EntityID uuid.UUID
	Kind     EntityKind
	Status   string // terminal status reached; empty when Register is set
	Register bool   // registration: bumps total only
	Failure  bool   // terminal transition was a failure
}

// Snapshot is the aggregate view of one run. Counters never decrease.
type Snapshot struct {
	RunID     uuid.UUID `json:"run_id"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Failed    int       `json:"failed"`
	Terminal  bool      `json:"terminal"`
	UpdatedAt time.Time `json:"updated_at"`
}

type runState struct {
	snap    Snapshot
	applied map[string]struct{}
	subs    map[int]chan Snapshot
	nextSub int
	retired bool
}

// Broadcaster owns per-run aggregates with an explicitly injected lifetime:
// Open on run creation, Retire on terminal state, Close on shutdown.
type Broadcaster struct {
	logger *slog.Logger

	mu   sync.Mutex
	runs map[uuid.UUID]*runState

	events chan Event
	done   chan struct{}

	closeOnce sync.Once
}

func NewBroadcaster(logger *slog.Logger, buffer int) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	if buffer <= 0 {
		buffer = 256
	}
	b := &Broadcaster{
		logger: logger,
		runs:   make(map[uuid.UUID]*runState),
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go b.loop()
	return b
}

// Open registers a run with the broadcaster. Idempotent.
func (b *Broadcaster) Open(runID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.runs[runID]; !ok {
		b.runs[runID] = &runState{
			snap:    Snapshot{RunID: runID, UpdatedAt: time.Now().UTC()},
			applied: make(map[string]struct{}),
			subs:    make(map[int]chan Snapshot),
		}
	}
}

// Publish is fire-and-forget: producers never block on slow consumers. When
// the buffer is full the oldest queued event is dropped; the aggregate is
// idempotent and pollers always read the latest snapshot, so dropping an
// intermediate event loses nothing durable.
func (b *Broadcaster) Publish(ev Event) {
	for {
		select {
		case <-b.done:
			return
		case b.events <- ev:
			return
		default:
		}
		select {
		case old := <-b.events:
			b.logger.Debug("progress buffer full, dropping oldest event", "run_id", old.RunID)
		default:
		}
	}
}

// Poll returns the current aggregate for a run. Values from successive polls
// never regress.
func (b *Broadcaster) Poll(runID uuid.UUID) (Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.runs[runID]
	if !ok {
		return Snapshot{}, false
	}
	return st.snap, true
}

// Subscribe returns a channel that immediately yields the current snapshot
// and then every aggregate change until the run retires or cancel is called.
// The channel is latest-wins: a slow consumer sees the freshest value, not
// every intermediate one.
func (b *Broadcaster) Subscribe(runID uuid.UUID) (<-chan Snapshot, func(), bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.runs[runID]
	if !ok {
		return nil, nil, false
	}
	ch := make(chan Snapshot, 1)
	ch <- st.snap
	if st.retired {
		// terminal snapshot delivered, nothing more will come
		close(ch)
		return ch, func() {}, true
	}
	id := st.nextSub
	st.nextSub++
	st.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if cur, ok := b.runs[runID]; ok {
			if sub, live := cur.subs[id]; live {
				delete(cur.subs, id)
				close(sub)
			}
		}
	}
	return ch, cancel, true
}

// Retire closes a run's live channel. Late duplicate events arriving after
// retirement are dropped, never re-opened.
func (b *Broadcaster) Retire(runID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.runs[runID]
	if !ok || st.retired {
		return
	}
	st.retired = true
	st.snap.Terminal = true
	st.snap.UpdatedAt = time.Now().UTC()
	for id, ch := range st.subs {
		pushLatest(ch, st.snap)
		close(ch)
		delete(st.subs, id)
	}
}

// Close stops the apply loop. Pending buffered events are discarded.
func (b *Broadcaster) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *Broadcaster) loop() {
	for {
		select {
		case <-b.done:
			return
		case ev := <-b.events:
			b.apply(ev)
		}
	}
}

func (b *Broadcaster) apply(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.runs[ev.RunID]
	if !ok || st.retired {
		return
	}

	key := string(ev.Kind) + "|" + ev.EntityID.String() + "|" + ev.Status
	if ev.Register {
		key = string(ev.Kind) + "|" + ev.EntityID.String() + "|+"
	}
	if _, dup := st.applied[key]; dup {
		return
	}
	st.applied[key] = struct{}{}

	switch {
	case ev.Register:
		st.snap.Total++
	case ev.Failure:
		st.snap.Failed++
	default:
		st.snap.Completed++
	}
	st.snap.UpdatedAt = time.Now().UTC()

	for _, ch := range st.subs {
		pushLatest(ch, st.snap)
	}
}

// pushLatest replaces a stale buffered snapshot instead of blocking.
func pushLatest(ch chan Snapshot, snap Snapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
