// Package ops is the pollable-operation ledger. Every async boundary (import
// batches, exports) registers an operation here and drives it to a terminal
// state; clients poll by id and stop once done/error.
package ops

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/repository"
)

type Store struct {
	repo repository.OperationRepository
	log  *slog.Logger
}

func NewStore(repo repository.OperationRepository, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{repo: repo, log: log}
}

// Begin registers a new operation in the accepted state.
func (s *Store) Begin(ctx context.Context, kind constants.OperationKind, runID uuid.UUID, total int) (*entity.Operation, error) {
	op, err := s.repo.Create(ctx, &entity.Operation{
		Kind:  kind,
		RunID: runID,
		State: constants.OperationAccepted,
		Total: total,
	})
	if err != nil {
		s.log.Error("operation begin failed", "kind", kind, "run_id", runID, "error", err)
		return nil, err
	}
	s.log.Info("operation started", "operation_id", op.ID, "kind", kind, "run_id", runID)
	return op, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Store) SetRunning(ctx context.Context, id uuid.UUID) error {
	_, err := s.update(ctx, id, func(op *entity.Operation) {
		if op.State == constants.OperationAccepted {
			op.State = constants.OperationRunning
		}
	})
	return err
}

// Step records per-item outcomes of a batch operation.
func (s *Store) Step(ctx context.Context, id uuid.UUID, succeeded bool) error {
	_, err := s.update(ctx, id, func(op *entity.Operation) {
		if succeeded {
			op.Completed++
		} else {
			op.Failed++
		}
	})
	return err
}

// Done marks the operation terminal with a result summary. Per-item failures
// inside the batch do not flip the operation to error; they live in the
// summary.
func (s *Store) Done(ctx context.Context, id uuid.UUID, result any) error {
	var payload json.RawMessage
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return err
		}
		payload = b
	}
	_, err := s.update(ctx, id, func(op *entity.Operation) {
		if constants.IsTerminalOperationState(op.State) {
			return
		}
		op.State = constants.OperationDone
		op.Result = payload
	})
	if err == nil {
		s.log.Info("operation done", "operation_id", id)
	}
	return err
}

func (s *Store) Fail(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := s.update(ctx, id, func(op *entity.Operation) {
		if constants.IsTerminalOperationState(op.State) {
			return
		}
		op.State = constants.OperationError
		op.ErrorMessage = reason
	})
	if err == nil {
		s.log.Warn("operation failed", "operation_id", id, "reason", reason)
	}
	return err
}

// Cancel marks a non-terminal operation cancelled. Terminal operations are
// left untouched.
func (s *Store) Cancel(ctx context.Context, id uuid.UUID) error {
	_, err := s.update(ctx, id, func(op *entity.Operation) {
		if constants.IsTerminalOperationState(op.State) {
			return
		}
		op.State = constants.OperationCancelled
	})
	return err
}

// CancelForRun cancels every in-flight operation referencing a run. Run
// deletion requires this first so operations are never silently orphaned.
func (s *Store) CancelForRun(ctx context.Context, runID uuid.UUID) (int, error) {
	active, err := s.repo.ListActiveByRun(ctx, runID)
	if err != nil {
		return 0, err
	}
	for _, op := range active {
		if err := s.Cancel(ctx, op.ID); err != nil {
			return 0, err
		}
	}
	return len(active), nil
}

// ActiveForRun reports how many operations for the run are still in flight.
func (s *Store) ActiveForRun(ctx context.Context, runID uuid.UUID) (int, error) {
	active, err := s.repo.ListActiveByRun(ctx, runID)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}

func (s *Store) update(ctx context.Context, id uuid.UUID, mutate func(*entity.Operation)) (*entity.Operation, error) {
	op, err := s.repo.Update(ctx, id, mutate)
	if err != nil {
		s.log.Error("operation update failed", "operation_id", id, "error", err)
		return nil, err
	}
	return op, nil
}
