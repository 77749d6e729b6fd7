package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors for the orchestration taxonomy. Callers branch on these
// with errors.Is; the server layer maps them to gRPC codes via ToStatus.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflicting active run")
	ErrVersionConflict = errors.New("stale version")
	ErrRunNotEditable  = errors.New("run is not editable")
	ErrCollaborator    = errors.New("external collaborator failed")
	ErrTimeout         = fmt.Errorf("%w: timed out", ErrCollaborator)
	ErrInternal        = errors.New("internal error")
)

// AppError carries a stable code and an underlying cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Error constructors for the taxonomy.

func ValidationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func ConflictErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func VersionConflictError(expected, actual int32) error {
	return fmt.Errorf("%w: expected version %d, have %d", ErrVersionConflict, expected, actual)
}

func RunNotEditableErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRunNotEditable, fmt.Sprintf(format, args...))
}

func CollaboratorError(kind string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrCollaborator, kind, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ToStatus maps taxonomy errors to gRPC status errors. VersionConflict and
// RunNotEditable get codes distinguishable from plain validation so clients
// can auto-recover (re-read, or create an append run).
func ToStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, ErrRunNotEditable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// gRPC error helpers for request validation in the server layer.

func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func InvalidArgumentErrorf(format string, args ...any) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}
