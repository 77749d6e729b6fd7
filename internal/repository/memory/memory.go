// Package memory provides in-memory implementations of the repository
// interfaces. They preserve the same transition and version semantics as the
// ent-backed implementations and back the test suites and local development.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/repository"
)

// Jobs implements repository.JobRepository.
type Jobs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Job
}

func NewJobs() *Jobs {
	return &Jobs{rows: make(map[uuid.UUID]*entity.Job)}
}

func (r *Jobs) Create(_ context.Context, name string, templateID *uuid.UUID) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job := &entity.Job{
		ID:         uuid.New(),
		Name:       name,
		TemplateID: templateID,
		CreatedAt:  time.Now().UTC(),
	}
	r.rows[job.ID] = job
	out := *job
	return &out, nil
}

func (r *Jobs) Get(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *job
	return &out, nil
}

func (r *Jobs) List(_ context.Context) ([]*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Job, 0, len(r.rows))
	for _, job := range r.rows {
		j := *job
		out = append(out, &j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Jobs) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *Jobs) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// Runs implements repository.RunRepository.
type Runs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.JobRun
}

func NewRuns() *Runs {
	return &Runs{rows: make(map[uuid.UUID]*entity.JobRun)}
}

func (r *Runs) Create(_ context.Context, run *entity.JobRun) (*entity.JobRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := run.Clone()
	stored.ID = uuid.New()
	stored.Version = 1
	stored.CreatedAt = time.Now().UTC()
	r.rows[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *Runs) Get(_ context.Context, id uuid.UUID) (*entity.JobRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return run.Clone(), nil
}

func (r *Runs) ListByJob(_ context.Context, jobID uuid.UUID) ([]*entity.JobRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.JobRun
	for _, run := range r.rows {
		if run.JobID == jobID {
			out = append(out, run.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *Runs) FindEditable(_ context.Context, jobID uuid.UUID) (*entity.JobRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, run := range r.rows {
		if run.JobID == jobID && run.Editable() {
			return run.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *Runs) UpdateCAS(_ context.Context, id uuid.UUID, expected int32, mutate func(*entity.JobRun) error) (*entity.JobRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if run.Version != expected {
		return nil, common.VersionConflictError(expected, run.Version)
	}
	return r.write(run, mutate)
}

func (r *Runs) Update(_ context.Context, id uuid.UUID, mutate func(*entity.JobRun) error) (*entity.JobRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.write(run, mutate)
}

func (r *Runs) write(run *entity.JobRun, mutate func(*entity.JobRun) error) (*entity.JobRun, error) {
	next := run.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	next.Version = run.Version + 1
	r.rows[run.ID] = next
	return next.Clone(), nil
}

// Files implements repository.FileRepository.
type Files struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.SourceFile
}

func NewFiles() *Files {
	return &Files{rows: make(map[uuid.UUID]*entity.SourceFile)}
}

func (r *Files) Create(_ context.Context, f *entity.SourceFile) (*entity.SourceFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *f
	stored.ID = uuid.New()
	stored.UploadedAt = time.Now().UTC()
	r.rows[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *Files) Get(_ context.Context, id uuid.UUID) (*entity.SourceFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *f
	return &out, nil
}

func (r *Files) ListByRun(_ context.Context, runID uuid.UUID, includeDeleted bool) ([]*entity.SourceFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.SourceFile
	for _, f := range r.rows {
		if f.RunID != runID {
			continue
		}
		if !includeDeleted && f.Status == constants.FileStatusDeleted {
			continue
		}
		c := *f
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.Before(out[j].UploadedAt) })
	return out, nil
}

func (r *Files) ListByStatus(_ context.Context, runID uuid.UUID, status constants.FileStatus) ([]*entity.SourceFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.SourceFile
	for _, f := range r.rows {
		if f.RunID == runID && f.Status == status {
			c := *f
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.Before(out[j].UploadedAt) })
	return out, nil
}

func (r *Files) UpdateStatus(_ context.Context, id uuid.UUID, from []constants.FileStatus, to constants.FileStatus, errMsg string) (*entity.SourceFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	matched := false
	for _, s := range from {
		if f.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return nil, repository.ErrStaleTransition
	}
	f.Status = to
	if errMsg != "" {
		f.ErrorMessage = errMsg
	}
	out := *f
	return &out, nil
}

func (r *Files) SetMeta(_ context.Context, id uuid.UUID, size int64, hash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	f.FileSize = size
	f.ContentHash = hash
	return nil
}

// Tasks implements repository.TaskRepository.
type Tasks struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.ExtractionTask
	seq  int
	ord  map[uuid.UUID]int
}

func NewTasks() *Tasks {
	return &Tasks{
		rows: make(map[uuid.UUID]*entity.ExtractionTask),
		ord:  make(map[uuid.UUID]int),
	}
}

func (r *Tasks) CreateBatch(_ context.Context, tasks []*entity.ExtractionTask) ([]*entity.ExtractionTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ExtractionTask, 0, len(tasks))
	for _, t := range tasks {
		stored := *t
		stored.ID = uuid.New()
		stored.CreatedAt = time.Now().UTC()
		stored.FileIDs = append([]uuid.UUID(nil), t.FileIDs...)
		r.rows[stored.ID] = &stored
		r.seq++
		r.ord[stored.ID] = r.seq
		c := stored
		out = append(out, &c)
	}
	return out, nil
}

func (r *Tasks) Get(_ context.Context, id uuid.UUID) (*entity.ExtractionTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *t
	return &out, nil
}

func (r *Tasks) ListByRun(_ context.Context, runID uuid.UUID) ([]*entity.ExtractionTask, error) {
	return r.list(runID, func(*entity.ExtractionTask) bool { return true })
}

func (r *Tasks) ListCompletedByRun(_ context.Context, runID uuid.UUID) ([]*entity.ExtractionTask, error) {
	return r.list(runID, func(t *entity.ExtractionTask) bool {
		return t.Status == constants.TaskStatusCompleted
	})
}

func (r *Tasks) list(runID uuid.UUID, keep func(*entity.ExtractionTask) bool) ([]*entity.ExtractionTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ExtractionTask
	for _, t := range r.rows {
		if t.RunID == runID && keep(t) {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.ord[out[i].ID] < r.ord[out[j].ID] })
	return out, nil
}

func (r *Tasks) MarkProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok || t.Status != constants.TaskStatusPending {
		return false, nil
	}
	t.Status = constants.TaskStatusProcessing
	return true, nil
}

func (r *Tasks) Complete(_ context.Context, id uuid.UUID, result json.RawMessage) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok || constants.IsTerminalTaskStatus(t.Status) {
		return false, nil
	}
	now := time.Now().UTC()
	t.Status = constants.TaskStatusCompleted
	t.Result = result
	t.FinishedAt = &now
	return true, nil
}

func (r *Tasks) Fail(_ context.Context, id uuid.UUID, kind, message string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok || constants.IsTerminalTaskStatus(t.Status) {
		return false, nil
	}
	now := time.Now().UTC()
	t.Status = constants.TaskStatusFailed
	t.ErrorKind = kind
	t.ErrorMessage = message
	t.FinishedAt = &now
	return true, nil
}

func (r *Tasks) Release(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.rows[id]; ok && t.Status == constants.TaskStatusProcessing {
		t.Status = constants.TaskStatusPending
	}
	return nil
}

func (r *Tasks) DeleteCarried(_ context.Context, runID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, t := range r.rows {
		if t.RunID == runID && t.CarriedOver {
			delete(r.rows, id)
			delete(r.ord, id)
			n++
		}
	}
	return n, nil
}

// Operations implements repository.OperationRepository.
type Operations struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Operation
}

func NewOperations() *Operations {
	return &Operations{rows: make(map[uuid.UUID]*entity.Operation)}
}

func (r *Operations) Create(_ context.Context, op *entity.Operation) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *op
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.rows[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *Operations) Get(_ context.Context, id uuid.UUID) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *op
	return &out, nil
}

func (r *Operations) Update(_ context.Context, id uuid.UUID, mutate func(*entity.Operation)) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	mutate(op)
	op.UpdatedAt = time.Now().UTC()
	out := *op
	return &out, nil
}

func (r *Operations) ListActiveByRun(_ context.Context, runID uuid.UUID) ([]*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Operation
	for _, op := range r.rows {
		if op.RunID == runID && !constants.IsTerminalOperationState(op.State) {
			c := *op
			out = append(out, &c)
		}
	}
	return out, nil
}

// Exports implements repository.ExportRepository.
type Exports struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Export
}

func NewExports() *Exports {
	return &Exports{rows: make(map[uuid.UUID]*entity.Export)}
}

func (r *Exports) Create(_ context.Context, ex *entity.Export) (*entity.Export, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *ex
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	r.rows[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *Exports) Get(_ context.Context, id uuid.UUID) (*entity.Export, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *ex
	return &out, nil
}

func (r *Exports) Update(_ context.Context, id uuid.UUID, mutate func(*entity.Export)) (*entity.Export, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	mutate(ex)
	out := *ex
	return &out, nil
}

func (r *Exports) ListByRun(_ context.Context, runID uuid.UUID) ([]*entity.Export, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Export
	for _, ex := range r.rows {
		if ex.RunID == runID {
			c := *ex
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
