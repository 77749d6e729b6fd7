package async

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkQueue_RunsAllJobs(t *testing.T) {
	q := NewWorkQueue(nil, WithWorkers(3), WithQueueSize(16))

	var n int64
	for i := 0; i < 10; i++ {
		err := q.Enqueue(context.Background(), Job{
			Name: "count",
			Run: func(ctx context.Context) error {
				atomic.AddInt64(&n, 1)
				return nil
			},
		})
		if err != nil {
			t.Fatalf("Enqueue() error = %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := atomic.LoadInt64(&n); got != 10 {
		t.Errorf("ran %d jobs, want 10", got)
	}
}

func TestWorkQueue_JobTimeout(t *testing.T) {
	q := NewWorkQueue(nil, WithWorkers(1), WithJobTimeout(20*time.Millisecond))

	var mu sync.Mutex
	var sawDeadline bool
	_ = q.Enqueue(context.Background(), Job{
		Name: "slow",
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			mu.Lock()
			sawDeadline = errors.Is(ctx.Err(), context.DeadlineExceeded)
			mu.Unlock()
			return ctx.Err()
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	mu.Lock()
	defer mu.Unlock()
	if !sawDeadline {
		t.Error("job context did not hit its deadline")
	}
}

func TestWorkQueue_WorkerEnqueueOnFullQueueDoesNotDeadlock(t *testing.T) {
	q := NewWorkQueue(nil, WithWorkers(1), WithQueueSize(1))

	var n int64
	done := make(chan struct{})
	inner := Job{Name: "inner", Run: func(context.Context) error {
		if atomic.AddInt64(&n, 1) == 3 {
			close(done)
		}
		return nil
	}}
	err := q.Enqueue(context.Background(), Job{
		Name: "outer",
		Run: func(ctx context.Context) error {
			atomic.AddInt64(&n, 1)
			// the sole worker is in here, so the second follow-up finds
			// the channel full
			if err := q.Enqueue(ctx, inner); err != nil {
				return err
			}
			return q.Enqueue(ctx, inner)
		},
	})
	if err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("follow-up jobs never ran; worker wedged on its own queue")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	if got := atomic.LoadInt64(&n); got != 3 {
		t.Errorf("ran %d jobs, want 3", got)
	}
}

func TestWorkQueue_EnqueueAfterShutdown(t *testing.T) {
	q := NewWorkQueue(nil, WithWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// must not panic on a closed channel
	if err := q.Enqueue(context.Background(), Job{Name: "late", Run: func(context.Context) error { return nil }}); err != nil {
		t.Errorf("Enqueue() after shutdown error = %v", err)
	}
}
