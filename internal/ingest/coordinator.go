// Package ingest binds source files to an editable run: direct uploads,
// archive expansion and operation-tracked imports from external sources.
package ingest

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/ops"
	"github.com/tablelift/tablelift/internal/progress"
	"github.com/tablelift/tablelift/internal/repository"
)

// SourceFetcher pulls one external document down. One implementation per
// external origin (drive, mail), registered at wiring time.
type SourceFetcher interface {
	Fetch(ctx context.Context, ref string) (filename string, contents io.ReadCloser, err error)
}

// UploadTarget tells the client where to put the bytes for a declared file.
type UploadTarget struct {
	File *entity.SourceFile
	Path string
}

type Coordinator struct {
	runs        repository.RunRepository
	files       repository.FileRepository
	opStore     *ops.Store
	queue       async.Queue
	broadcaster *progress.Broadcaster
	fetchers    map[constants.FileOrigin]SourceFetcher
	uploadDir   string
	logger      *slog.Logger
}

func NewCoordinator(
	runs repository.RunRepository,
	files repository.FileRepository,
	opStore *ops.Store,
	queue async.Queue,
	broadcaster *progress.Broadcaster,
	uploadDir string,
	logger *slog.Logger,
) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		runs:        runs,
		files:       files,
		opStore:     opStore,
		queue:       queue,
		broadcaster: broadcaster,
		fetchers:    make(map[constants.FileOrigin]SourceFetcher),
		uploadDir:   uploadDir,
		logger:      logger,
	}
}

// RegisterFetcher wires a collaborator for one external origin.
func (c *Coordinator) RegisterFetcher(origin constants.FileOrigin, f SourceFetcher) {
	c.fetchers[origin] = f
}

// BeginUpload declares files for an editable run and returns where to write
// their bytes. The run must not be submitted or terminal.
func (c *Coordinator) BeginUpload(ctx context.Context, runID uuid.UUID, filenames []string) ([]UploadTarget, error) {
	if len(filenames) == 0 {
		return nil, common.ValidationErrorf("no files declared")
	}
	if err := c.requireEditable(ctx, runID); err != nil {
		return nil, err
	}

	targets := make([]UploadTarget, 0, len(filenames))
	for _, name := range filenames {
		ext := filepath.Ext(name)
		if !constants.AllowedExt(ext) {
			return nil, common.ValidationErrorf("file %q: extension %q is not allowed", name, ext)
		}
		path := filepath.Join(c.uploadDir, runID.String(), uuid.NewString(), filepath.Base(name))
		file, err := c.files.Create(ctx, &entity.SourceFile{
			RunID:      runID,
			SourcePath: path,
			Filename:   name,
			FileExt:    constants.NormalizeExt(ext),
			Status:     constants.FileStatusUploading,
			Origin:     constants.OriginDirect,
		})
		if err != nil {
			return nil, err
		}
		c.broadcaster.Publish(progress.Event{
			RunID: runID, EntityID: file.ID,
			Kind: progress.KindFile, Register: true,
		})
		targets = append(targets, UploadTarget{File: file, Path: path})
	}
	c.logger.Info("upload started", "run_id", runID, "files", len(targets))
	return targets, nil
}

// ConfirmUpload records size and content hash once the bytes are on disk,
// then routes the file: archives go to background expansion, everything else
// becomes ready for task derivation. Confirming twice is a no-op.
func (c *Coordinator) ConfirmUpload(ctx context.Context, fileID uuid.UUID) (*entity.SourceFile, error) {
	file, err := c.files.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file.Status != constants.FileStatusUploading {
		return file, nil
	}

	size, hash, err := hashFile(file.SourcePath)
	if err != nil {
		failed, ferr := c.markFileFailed(ctx, file, fmt.Sprintf("upload incomplete: %v", err))
		if ferr != nil {
			return nil, ferr
		}
		return failed, nil
	}
	if err := c.files.SetMeta(ctx, fileID, size, hash); err != nil {
		return nil, err
	}

	if constants.IsArchive(file.Filename) {
		file, err = c.files.UpdateStatus(ctx, fileID,
			[]constants.FileStatus{constants.FileStatusUploading},
			constants.FileStatusUnpacking, "")
		if err != nil {
			return nil, err
		}
		c.enqueueExpansion(file)
		return file, nil
	}

	file, err = c.files.UpdateStatus(ctx, fileID,
		[]constants.FileStatus{constants.FileStatusUploading},
		constants.FileStatusReady, "")
	if err != nil {
		return nil, err
	}
	c.broadcaster.Publish(progress.Event{
		RunID: file.RunID, EntityID: file.ID,
		Kind: progress.KindFile, Status: string(constants.FileStatusReady),
	})
	return file, nil
}

// ImportFromSource fetches a batch of external documents under one pollable
// operation. Individual fetch failures mark their file failed and the batch
// keeps going; the operation reaches a terminal state only when every
// reference has been resolved one way or the other.
func (c *Coordinator) ImportFromSource(ctx context.Context, runID uuid.UUID, origin constants.FileOrigin, refs []string) (*entity.Operation, error) {
	if len(refs) == 0 {
		return nil, common.ValidationErrorf("no references to import")
	}
	fetcher, ok := c.fetchers[origin]
	if !ok {
		return nil, common.ValidationErrorf("no fetcher registered for origin %s", origin)
	}
	if err := c.requireEditable(ctx, runID); err != nil {
		return nil, err
	}

	op, err := c.opStore.Begin(ctx, constants.OperationKindImport, runID, len(refs))
	if err != nil {
		return nil, err
	}

	job := async.Job{
		Name: fmt.Sprintf("import %s", op.ID),
		Run: func(jctx context.Context) error {
			return c.runImport(jctx, op.ID, runID, origin, fetcher, refs)
		},
	}
	if err := c.queue.Enqueue(ctx, job); err != nil {
		if ferr := c.opStore.Fail(ctx, op.ID, "import could not be scheduled"); ferr != nil {
			c.logger.Error("failed to fail operation", "operation_id", op.ID, "error", ferr)
		}
		return nil, err
	}
	return op, nil
}

func (c *Coordinator) runImport(ctx context.Context, opID, runID uuid.UUID, origin constants.FileOrigin, fetcher SourceFetcher, refs []string) error {
	if err := c.opStore.SetRunning(ctx, opID); err != nil {
		return err
	}
	var imported, failed int
	for _, ref := range refs {
		err := c.importOne(ctx, runID, origin, fetcher, ref)
		if err != nil {
			failed++
			c.logger.Warn("import failed", "run_id", runID, "ref", ref, "error", err)
		} else {
			imported++
		}
		if serr := c.opStore.Step(ctx, opID, err == nil); serr != nil {
			return serr
		}
	}
	summary := map[string]int{"imported": imported, "failed": failed}
	if imported == 0 {
		if err := c.opStore.Fail(ctx, opID, fmt.Sprintf("all %d imports failed", failed)); err != nil {
			return err
		}
		return nil
	}
	return c.opStore.Done(ctx, opID, summary)
}

func (c *Coordinator) importOne(ctx context.Context, runID uuid.UUID, origin constants.FileOrigin, fetcher SourceFetcher, ref string) error {
	name, contents, err := fetcher.Fetch(ctx, ref)
	if err != nil {
		return common.CollaboratorError("fetch", err)
	}
	defer contents.Close()

	ext := filepath.Ext(name)
	if !constants.AllowedExt(ext) {
		return common.ValidationErrorf("ref %q: extension %q is not allowed", ref, ext)
	}
	path := filepath.Join(c.uploadDir, runID.String(), uuid.NewString(), filepath.Base(name))
	file, err := c.files.Create(ctx, &entity.SourceFile{
		RunID:      runID,
		SourcePath: path,
		Filename:   name,
		FileExt:    constants.NormalizeExt(ext),
		Status:     constants.FileStatusUploading,
		Origin:     origin,
	})
	if err != nil {
		return err
	}
	c.broadcaster.Publish(progress.Event{
		RunID: runID, EntityID: file.ID,
		Kind: progress.KindFile, Register: true,
	})

	if err := writeFile(path, contents); err != nil {
		if _, ferr := c.markFileFailed(ctx, file, err.Error()); ferr != nil {
			return ferr
		}
		return err
	}
	if _, err := c.ConfirmUpload(ctx, file.ID); err != nil {
		return err
	}
	return nil
}

// RemoveFile soft-deletes a file from an editable run. Removing a file that
// is already deleted, or whose run has been submitted, is a no-op: the task
// set is frozen and never retroactively shrunk.
func (c *Coordinator) RemoveFile(ctx context.Context, fileID uuid.UUID) error {
	file, err := c.files.Get(ctx, fileID)
	if err != nil {
		return err
	}
	if file.Status == constants.FileStatusDeleted {
		return nil
	}
	run, err := c.runs.Get(ctx, file.RunID)
	if err != nil {
		return err
	}
	if !run.Editable() {
		return nil
	}
	_, err = c.files.UpdateStatus(ctx, fileID, []constants.FileStatus{
		constants.FileStatusUploading,
		constants.FileStatusUploaded,
		constants.FileStatusUnpacking,
		constants.FileStatusUnpacked,
		constants.FileStatusReady,
		constants.FileStatusFailed,
	}, constants.FileStatusDeleted, "")
	if errors.Is(err, repository.ErrStaleTransition) {
		return nil
	}
	if err != nil {
		return err
	}
	if file.SourcePath != "" {
		if rerr := os.Remove(file.SourcePath); rerr != nil && !os.IsNotExist(rerr) {
			c.logger.Warn("could not remove file from disk", "path", file.SourcePath, "error", rerr)
		}
	}
	c.logger.Info("file removed", "file_id", fileID, "run_id", file.RunID)
	return nil
}

func (c *Coordinator) ListFiles(ctx context.Context, runID uuid.UUID, includeDeleted bool) ([]*entity.SourceFile, error) {
	return c.files.ListByRun(ctx, runID, includeDeleted)
}

func (c *Coordinator) requireEditable(ctx context.Context, runID uuid.UUID) error {
	run, err := c.runs.Get(ctx, runID)
	if err != nil {
		return err
	}
	if !run.Editable() {
		return common.RunNotEditableErrorf("run %s is %s/%s", runID, run.Status, run.ConfigStep)
	}
	return nil
}

func (c *Coordinator) markFileFailed(ctx context.Context, file *entity.SourceFile, message string) (*entity.SourceFile, error) {
	failed, err := c.files.UpdateStatus(ctx, file.ID,
		[]constants.FileStatus{
			constants.FileStatusUploading,
			constants.FileStatusUploaded,
			constants.FileStatusUnpacking,
		},
		constants.FileStatusFailed, message)
	if err != nil {
		return nil, err
	}
	c.broadcaster.Publish(progress.Event{
		RunID: file.RunID, EntityID: file.ID,
		Kind: progress.KindFile, Status: string(constants.FileStatusFailed), Failure: true,
	})
	return failed, nil
}

func hashFile(path string) (int64, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()
	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return 0, nil, err
	}
	return size, h.Sum(nil), nil
}

func writeFile(path string, contents io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, contents); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
