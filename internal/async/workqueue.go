package async

import (
	"context"
	"sync"
	"time"

	"log/slog"
)

// WorkQueue is a bounded-concurrency pool consuming Jobs from a shared
// channel. The synchronous request boundary only ever enqueues; it never
// waits for job completion.
type WorkQueue struct {
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	handoff sync.WaitGroup
}

type Option func(*WorkQueue)

func WithWorkers(n int) Option {
	return func(q *WorkQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *WorkQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *WorkQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewWorkQueue(logger *slog.Logger, opts ...Option) *WorkQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &WorkQueue{
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WorkQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := job.Run(ctx)
					cancel()

					if err != nil {
						q.logger.Error("job failed", "worker_id", workerID, "job", job.Name, "error", err)
					} else {
						q.logger.Debug("job done", "worker_id", workerID, "job", job.Name)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue never blocks the caller. Workers enqueue follow-up jobs of their
// own, so waiting on a full channel from inside Enqueue would wedge the pool
// on its own queue; overflow is handed off to a goroutine that feeds the
// channel as workers drain it.
func (q *WorkQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "job", job.Name)
		return nil
	}
	select {
	case q.ch <- job:
		q.mu.Unlock()
		return nil
	default:
	}
	q.handoff.Add(1)
	q.mu.Unlock()

	q.logger.Warn("queue full, deferring enqueue", "job", job.Name)
	go func() {
		defer q.handoff.Done()
		q.ch <- job
	}()
	return nil
}

func (q *WorkQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	// deferred enqueues must land before the channel closes
	q.handoff.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
