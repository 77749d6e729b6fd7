package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/ops"
	"github.com/tablelift/tablelift/internal/repository"
)

// Failure reasons recorded on the operation so callers can tell a run with
// nothing to export from a broken artifact or a broken delivery.
const (
	ReasonNoResults      = "NO_RESULTS"
	ReasonArtifactFailed = "ARTIFACT_BUILD_FAILED"
	ReasonDeliveryFailed = "DELIVERY_FAILED"
)

// Deliverer pushes a finished artifact to one external destination and
// returns the remote reference.
type Deliverer interface {
	Deliver(ctx context.Context, ex *entity.Export, artifactPath string) (string, error)
}

type Coordinator struct {
	runs       repository.RunRepository
	tasks      repository.TaskRepository
	exports    repository.ExportRepository
	opStore    *ops.Store
	queue      async.Queue
	deliverers map[constants.ExportDestination]Deliverer
	exportDir  string
	logger     *slog.Logger
}

func NewCoordinator(
	runs repository.RunRepository,
	tasks repository.TaskRepository,
	exports repository.ExportRepository,
	opStore *ops.Store,
	queue async.Queue,
	exportDir string,
	logger *slog.Logger,
) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		runs:       runs,
		tasks:      tasks,
		exports:    exports,
		opStore:    opStore,
		queue:      queue,
		deliverers: make(map[constants.ExportDestination]Deliverer),
		exportDir:  exportDir,
		logger:     logger,
	}
}

// RegisterDeliverer wires a collaborator for one external destination.
// Direct download needs none.
func (c *Coordinator) RegisterDeliverer(dest constants.ExportDestination, d Deliverer) {
	c.deliverers[dest] = d
}

// RequestExport starts an operation-tracked export of the run's completed
// results. A run with zero results yields an operation that is already in
// error state with a NO_RESULTS reason, so the caller learns why from the
// same polling surface as every other failure.
func (c *Coordinator) RequestExport(ctx context.Context, runID uuid.UUID, kind constants.ExportFileKind, dest constants.ExportDestination) (*entity.Export, error) {
	run, err := c.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if dest != constants.DestinationDownload {
		if _, ok := c.deliverers[dest]; !ok {
			return nil, common.ValidationErrorf("no deliverer registered for destination %s", dest)
		}
	}

	results, err := c.tasks.ListCompletedByRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	op, err := c.opStore.Begin(ctx, constants.OperationKindExport, runID, 1)
	if err != nil {
		return nil, err
	}
	ex, err := c.exports.Create(ctx, &entity.Export{
		RunID:       runID,
		OperationID: op.ID,
		Destination: dest,
		FileKind:    kind,
		State:       constants.OperationAccepted,
	})
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return c.failExport(ctx, ex, ReasonNoResults,
			fmt.Sprintf("run %s has no completed results", runID))
	}

	fields := run.Fields
	job := async.Job{
		Name: fmt.Sprintf("export %s", ex.ID),
		Run: func(jctx context.Context) error {
			return c.runExport(jctx, ex.ID, fields, results)
		},
	}
	if err := c.queue.Enqueue(ctx, job); err != nil {
		return c.failExport(ctx, ex, ReasonArtifactFailed, "export could not be scheduled")
	}
	return ex, nil
}

func (c *Coordinator) GetExport(ctx context.Context, id uuid.UUID) (*entity.Export, error) {
	return c.exports.Get(ctx, id)
}

func (c *Coordinator) ListExports(ctx context.Context, runID uuid.UUID) ([]*entity.Export, error) {
	return c.exports.ListByRun(ctx, runID)
}

// GetDownloadTarget returns the local artifact path for a finished direct
// download export.
func (c *Coordinator) GetDownloadTarget(ctx context.Context, id uuid.UUID) (string, error) {
	ex, err := c.exports.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if ex.Destination != constants.DestinationDownload {
		return "", common.ValidationErrorf("export %s is delivered to %s, not downloadable", id, ex.Destination)
	}
	if ex.State != constants.OperationDone || ex.ArtifactPath == "" {
		return "", common.ValidationErrorf("export %s is not ready (state %s)", id, ex.State)
	}
	return ex.ArtifactPath, nil
}

func (c *Coordinator) runExport(ctx context.Context, exportID uuid.UUID, fields []entity.FieldSpec, results []*entity.ExtractionTask) error {
	ex, err := c.exports.Get(ctx, exportID)
	if err != nil {
		return err
	}
	if err := c.opStore.SetRunning(ctx, ex.OperationID); err != nil {
		return err
	}

	artifact, err := BuildArtifact(ex.FileKind, fields, results)
	if err != nil {
		_, ferr := c.failExport(ctx, ex, ReasonArtifactFailed, err.Error())
		return ferr
	}
	path := filepath.Join(c.exportDir, exportID.String()+artifactExt(ex.FileKind))
	if err := os.MkdirAll(c.exportDir, 0o755); err != nil {
		_, ferr := c.failExport(ctx, ex, ReasonArtifactFailed, err.Error())
		return ferr
	}
	if err := os.WriteFile(path, artifact, 0o644); err != nil {
		_, ferr := c.failExport(ctx, ex, ReasonArtifactFailed, err.Error())
		return ferr
	}
	ex, err = c.exports.Update(ctx, exportID, func(e *entity.Export) {
		e.ArtifactPath = path
	})
	if err != nil {
		return err
	}

	externalRef := ""
	if ex.Destination != constants.DestinationDownload {
		deliverer := c.deliverers[ex.Destination]
		externalRef, err = deliverer.Deliver(ctx, ex, path)
		if err != nil {
			// artifact stays on disk so a retry can skip the rebuild
			_, ferr := c.failExport(ctx, ex, ReasonDeliveryFailed, err.Error())
			return ferr
		}
	}

	_, err = c.exports.Update(ctx, exportID, func(e *entity.Export) {
		e.State = constants.OperationDone
		e.ExternalRef = externalRef
	})
	if err != nil {
		return err
	}
	if err := c.opStore.Step(ctx, ex.OperationID, true); err != nil {
		return err
	}
	if err := c.opStore.Done(ctx, ex.OperationID, map[string]any{
		"export_id": exportID,
		"rows":      len(results),
	}); err != nil {
		return err
	}
	c.logger.Info("export finished", "export_id", exportID, "rows", len(results),
		"destination", ex.Destination)
	return nil
}

func (c *Coordinator) failExport(ctx context.Context, ex *entity.Export, reason, message string) (*entity.Export, error) {
	full := reason + ": " + message
	updated, err := c.exports.Update(ctx, ex.ID, func(e *entity.Export) {
		e.State = constants.OperationError
		e.ErrorMessage = full
	})
	if err != nil {
		return nil, err
	}
	if err := c.opStore.Fail(ctx, ex.OperationID, full); err != nil {
		return nil, err
	}
	c.logger.Warn("export failed", "export_id", ex.ID, "reason", reason, "error", message)
	return updated, nil
}
