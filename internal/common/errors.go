package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docledger/docledger/constants"
)

// AppError represents application-specific errors
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

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// NewAppError creates an AppError with a stable code for boundary mapping.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// DuplicateFileError reports an upload whose content checksum already exists
// for the same user. User-correctable; no new record is created.
type DuplicateFileError struct {
	UserID   string
	Checksum string
	FileID   string // the existing record
}

func (e *DuplicateFileError) Error() string {
	return fmt.Sprintf("duplicate upload: checksum %s already registered for user %s (file %s)", e.Checksum, e.UserID, e.FileID)
}

// IllegalStateError reports a transition attempted from a state that forbids
// it. Indicates a client bug or stale data; surfaced generically at the API.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

func NewIllegalStateError(format string, args ...any) *IllegalStateError {
	return &IllegalStateError{Message: fmt.Sprintf(format, args...)}
}

// IllegalArgumentError reports a validation failure on caller input.
// Always user-correctable; the message is surfaced as-is.
type IllegalArgumentError struct {
	Message string
}

func (e *IllegalArgumentError) Error() string {
	return e.Message
}

func NewIllegalArgumentError(format string, args ...any) *IllegalArgumentError {
	return &IllegalArgumentError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing referenced record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ToStatusError translates domain errors into gRPC status errors at the
// server boundary. Validation and state-machine failures never bubble out
// as bare internal errors.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	var (
		dup      *DuplicateFileError
		illState *IllegalStateError
		illArg   *IllegalArgumentError
		notFound *NotFoundError
		unknown  *constants.UnknownStatusError
	)
	switch {
	case errors.As(err, &dup):
		return status.Error(codes.AlreadyExists, dup.Error())
	case errors.As(err, &illArg):
		return status.Error(codes.InvalidArgument, illArg.Message)
	case errors.As(err, &illState):
		return status.Error(codes.FailedPrecondition, "cannot perform this action now")
	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, notFound.Error())
	case errors.As(err, &unknown):
		return status.Error(codes.Internal, unknown.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	}
	return status.Error(codes.Internal, "internal error")
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
