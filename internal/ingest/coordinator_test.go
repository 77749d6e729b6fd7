package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/ops"
	"github.com/tablelift/tablelift/internal/progress"
	"github.com/tablelift/tablelift/internal/repository"
	"github.com/tablelift/tablelift/internal/repository/memory"
)

type inlineQueue struct{}

func (inlineQueue) Enqueue(ctx context.Context, job async.Job) error { return job.Run(ctx) }
func (inlineQueue) Shutdown(context.Context)                         {}

type stubFetcher struct {
	docs map[string]string // ref -> contents; missing ref fails
}

func (s *stubFetcher) Fetch(_ context.Context, ref string) (string, io.ReadCloser, error) {
	contents, ok := s.docs[ref]
	if !ok {
		return "", nil, errors.New("remote document unavailable")
	}
	return ref, io.NopCloser(strings.NewReader(contents)), nil
}

type fixture struct {
	coord   *Coordinator
	runs    *memory.Runs
	files   *memory.Files
	opStore *ops.Store
	bc      *progress.Broadcaster
	dir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	runs := memory.NewRuns()
	files := memory.NewFiles()
	opStore := ops.NewStore(memory.NewOperations(), logger)
	bc := progress.NewBroadcaster(logger, 64)
	t.Cleanup(bc.Close)
	dir := t.TempDir()
	coord := NewCoordinator(runs, files, opStore, inlineQueue{}, bc, dir, logger)
	return &fixture{coord: coord, runs: runs, files: files, opStore: opStore, bc: bc, dir: dir}
}

func (f *fixture) seedRun(t *testing.T, editable bool) *entity.JobRun {
	t.Helper()
	run := &entity.JobRun{
		JobID:      uuid.New(),
		Status:     constants.RunStatusPending,
		ConfigStep: constants.ConfigStepUpload,
	}
	if !editable {
		run.Status = constants.RunStatusInProgress
		run.ConfigStep = constants.ConfigStepSubmitted
	}
	created, err := f.runs.Create(context.Background(), run)
	if err != nil {
		t.Fatalf("create run: %v", err)
	}
	f.bc.Open(created.ID)
	return created
}

func TestBeginUploadValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	run := f.seedRun(t, true)
	if _, err := f.coord.BeginUpload(ctx, run.ID, []string{"virus.exe"}); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("bad extension error = %v, want ErrValidation", err)
	}
	if _, err := f.coord.BeginUpload(ctx, run.ID, nil); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("empty batch error = %v, want ErrValidation", err)
	}

	submitted := f.seedRun(t, false)
	_, err := f.coord.BeginUpload(ctx, submitted.ID, []string{"a.pdf"})
	if !errors.Is(err, common.ErrRunNotEditable) {
		t.Fatalf("submitted run error = %v, want ErrRunNotEditable", err)
	}
}

func TestUploadLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)

	targets, err := f.coord.BeginUpload(ctx, run.ID, []string{"invoice.pdf"})
	if err != nil {
		t.Fatalf("BeginUpload: %v", err)
	}
	if len(targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(targets))
	}
	if targets[0].File.Status != constants.FileStatusUploading {
		t.Fatalf("status = %s, want UPLOADING", targets[0].File.Status)
	}

	payload := []byte("%PDF-1.4 fake invoice")
	if err := os.MkdirAll(filepath.Dir(targets[0].Path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(targets[0].Path, payload, 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	file, err := f.coord.ConfirmUpload(ctx, targets[0].File.ID)
	if err != nil {
		t.Fatalf("ConfirmUpload: %v", err)
	}
	if file.Status != constants.FileStatusReady {
		t.Fatalf("status = %s, want READY", file.Status)
	}
	stored, _ := f.files.Get(ctx, file.ID)
	if stored.FileSize != int64(len(payload)) {
		t.Fatalf("size = %d, want %d", stored.FileSize, len(payload))
	}
	if len(stored.ContentHash) == 0 {
		t.Fatal("content hash not recorded")
	}

	// confirming again leaves the file untouched
	again, err := f.coord.ConfirmUpload(ctx, file.ID)
	if err != nil {
		t.Fatalf("second ConfirmUpload: %v", err)
	}
	if again.Status != constants.FileStatusReady {
		t.Fatalf("status after duplicate confirm = %s, want READY", again.Status)
	}
}

func TestConfirmUploadWithoutBytesFailsFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)
	targets, err := f.coord.BeginUpload(ctx, run.ID, []string{"missing.pdf"})
	if err != nil {
		t.Fatalf("BeginUpload: %v", err)
	}

	file, err := f.coord.ConfirmUpload(ctx, targets[0].File.ID)
	if err != nil {
		t.Fatalf("ConfirmUpload: %v", err)
	}
	if file.Status != constants.FileStatusFailed {
		t.Fatalf("status = %s, want FAILED", file.Status)
	}
	if file.ErrorMessage == "" {
		t.Fatal("failure reason not recorded")
	}
}

func TestRemoveFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)
	targets, err := f.coord.BeginUpload(ctx, run.ID, []string{"a.pdf"})
	if err != nil {
		t.Fatalf("BeginUpload: %v", err)
	}
	fileID := targets[0].File.ID

	if err := f.coord.RemoveFile(ctx, fileID); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	got, _ := f.files.Get(ctx, fileID)
	if got.Status != constants.FileStatusDeleted {
		t.Fatalf("status = %s, want DELETED", got.Status)
	}

	// removing again is a no-op
	if err := f.coord.RemoveFile(ctx, fileID); err != nil {
		t.Fatalf("second RemoveFile: %v", err)
	}

	listed, err := f.coord.ListFiles(ctx, run.ID, false)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("listed files = %d, want 0 after delete", len(listed))
	}
}

func TestRemoveFileAfterSubmitIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)
	targets, err := f.coord.BeginUpload(ctx, run.ID, []string{"a.pdf"})
	if err != nil {
		t.Fatalf("BeginUpload: %v", err)
	}
	_, err = f.runs.Update(ctx, run.ID, func(r *entity.JobRun) error {
		r.ConfigStep = constants.ConfigStepSubmitted
		r.Status = constants.RunStatusInProgress
		return nil
	})
	if err != nil {
		t.Fatalf("submit run: %v", err)
	}

	if err := f.coord.RemoveFile(ctx, targets[0].File.ID); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	got, _ := f.files.Get(ctx, targets[0].File.ID)
	if got.Status == constants.FileStatusDeleted {
		t.Fatal("file deleted from a submitted run")
	}
}

func TestImportFromSource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)
	f.coord.RegisterFetcher(constants.OriginExternalDrive, &stubFetcher{docs: map[string]string{
		"statement.pdf": "doc one",
		"receipt.png":   "doc two",
	}})

	op, err := f.coord.ImportFromSource(ctx, run.ID, constants.OriginExternalDrive,
		[]string{"statement.pdf", "receipt.png", "gone.pdf"})
	if err != nil {
		t.Fatalf("ImportFromSource: %v", err)
	}

	got, err := f.opStore.Get(ctx, op.ID)
	if err != nil {
		t.Fatalf("Get operation: %v", err)
	}
	if got.State != constants.OperationDone {
		t.Fatalf("operation state = %s, want DONE", got.State)
	}
	if got.Completed != 2 || got.Failed != 1 {
		t.Fatalf("operation counters = %d/%d, want 2/1", got.Completed, got.Failed)
	}

	files, _ := f.coord.ListFiles(ctx, run.ID, false)
	ready := 0
	for _, file := range files {
		if file.Status == constants.FileStatusReady {
			ready++
			if file.Origin != constants.OriginExternalDrive {
				t.Fatalf("origin = %s, want EXTERNAL_DRIVE", file.Origin)
			}
		}
	}
	if ready != 2 {
		t.Fatalf("ready files = %d, want 2", ready)
	}
}

func TestImportAllFailuresFailsOperation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)
	f.coord.RegisterFetcher(constants.OriginExternalMail, &stubFetcher{})

	op, err := f.coord.ImportFromSource(ctx, run.ID, constants.OriginExternalMail, []string{"a.pdf", "b.pdf"})
	if err != nil {
		t.Fatalf("ImportFromSource: %v", err)
	}
	got, _ := f.opStore.Get(ctx, op.ID)
	if got.State != constants.OperationError {
		t.Fatalf("operation state = %s, want ERROR", got.State)
	}
	if got.ErrorMessage == "" {
		t.Fatal("error reason not recorded")
	}
}

func TestImportRequiresRegisteredFetcher(t *testing.T) {
	f := newFixture(t)
	run := f.seedRun(t, true)
	_, err := f.coord.ImportFromSource(context.Background(), run.ID, constants.OriginExternalDrive, []string{"a.pdf"})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestArchiveExpansion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)

	targets, err := f.coord.BeginUpload(ctx, run.ID, []string{"batch.zip"})
	if err != nil {
		t.Fatalf("BeginUpload: %v", err)
	}
	writeZip(t, targets[0].Path, map[string]string{
		"scans/a.pdf": "first",
		"scans/b.pdf": "second",
		"notes.md":    "unsupported, skipped",
	})

	parent, err := f.coord.ConfirmUpload(ctx, targets[0].File.ID)
	if err != nil {
		t.Fatalf("ConfirmUpload: %v", err)
	}
	// the inline queue ran the expansion synchronously
	parent, err = f.files.Get(ctx, parent.ID)
	if err != nil {
		t.Fatalf("Get parent: %v", err)
	}
	if parent.Status != constants.FileStatusUnpacked {
		t.Fatalf("parent status = %s, want UNPACKED", parent.Status)
	}

	files, _ := f.coord.ListFiles(ctx, run.ID, false)
	var members []*entity.SourceFile
	for _, file := range files {
		if file.Origin == constants.OriginArchiveMember {
			members = append(members, file)
		}
	}
	if len(members) != 2 {
		t.Fatalf("members = %d, want 2 (unsupported entry skipped)", len(members))
	}
	for _, m := range members {
		if m.Status != constants.FileStatusReady {
			t.Fatalf("member %s status = %s, want READY", m.Filename, m.Status)
		}
		if m.ParentID == nil || *m.ParentID != parent.ID {
			t.Fatalf("member %s not linked to parent", m.Filename)
		}
		if !strings.HasPrefix(m.Filename, "batch/") {
			t.Fatalf("member name = %q, want batch/ prefix", m.Filename)
		}
	}
}

func TestCorruptArchiveFailsParentWithoutMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)

	targets, err := f.coord.BeginUpload(ctx, run.ID, []string{"broken.zip"})
	if err != nil {
		t.Fatalf("BeginUpload: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(targets[0].Path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(targets[0].Path, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := f.coord.ConfirmUpload(ctx, targets[0].File.ID); err != nil {
		t.Fatalf("ConfirmUpload: %v", err)
	}
	parent, _ := f.files.Get(ctx, targets[0].File.ID)
	if parent.Status != constants.FileStatusFailed {
		t.Fatalf("parent status = %s, want FAILED", parent.Status)
	}
	files, _ := f.coord.ListFiles(ctx, run.ID, false)
	for _, file := range files {
		if file.Origin == constants.OriginArchiveMember {
			t.Fatalf("member %s registered from a corrupt archive", file.Filename)
		}
	}
}

// flakyFiles fails Create once its budget is used up.
type flakyFiles struct {
	repository.FileRepository
	mu        sync.Mutex
	remaining int
}

func (f *flakyFiles) Create(ctx context.Context, file *entity.SourceFile) (*entity.SourceFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.remaining == 0 {
		return nil, errors.New("storage unavailable")
	}
	f.remaining--
	return f.FileRepository.Create(ctx, file)
}

func TestExpansionErrorFailsParentAndRetractsMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRun(t, true)

	targets, err := f.coord.BeginUpload(ctx, run.ID, []string{"batch.zip"})
	if err != nil {
		t.Fatalf("BeginUpload: %v", err)
	}
	writeZip(t, targets[0].Path, map[string]string{
		"scans/a.pdf": "first",
		"scans/b.pdf": "second",
	})

	// registering the second member fails mid-expansion
	flaky := &flakyFiles{FileRepository: f.files, remaining: 1}
	coord := NewCoordinator(f.runs, flaky, f.opStore, inlineQueue{}, f.bc, f.dir, slog.Default())

	if _, err := coord.ConfirmUpload(ctx, targets[0].File.ID); err != nil {
		t.Fatalf("ConfirmUpload: %v", err)
	}
	parent, err := f.files.Get(ctx, targets[0].File.ID)
	if err != nil {
		t.Fatalf("Get parent: %v", err)
	}
	if parent.Status != constants.FileStatusFailed {
		t.Fatalf("parent status = %s, want FAILED", parent.Status)
	}
	files, _ := f.coord.ListFiles(ctx, run.ID, false)
	for _, file := range files {
		if file.Origin == constants.OriginArchiveMember {
			t.Fatalf("member %s left visible after failed expansion", file.Filename)
		}
	}
}

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, contents := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := entry.Write([]byte(contents)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write zip: %v", err)
	}
}
