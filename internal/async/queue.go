package async

import "context"

// Job is one unit of background work. Extraction dispatch and archive
// expansion both submit through this.
type Job struct {
	Name string // for logging only
	Run  func(ctx context.Context) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
