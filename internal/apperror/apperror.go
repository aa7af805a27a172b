// Package apperror defines the error kinds shared by every layer.
//
// Each kind is a sentinel (ErrValidation, ErrNotFound, ...) wrapped by an
// *AppError that carries the client-facing message. Handlers classify with
// errors.Is and read the message with errors.As.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage error")
)

type AppError struct {
	Err     error  // sentinel kind
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
	Cause   error  // Optional: underlying driver error (storage errors only)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes both the sentinel and the underlying cause, so
// errors.Is(err, ErrStorage) and errors.Is(err, context.Canceled) both work.
func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Conflict(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s conflict with id %d", resource, id),
	}
}

// Storage wraps a failure reported by the data store. op names the
// operation ("sqlite: listing advice") and shows up in logs, never in
// responses.
func Storage(op string, err error) *AppError {
	return &AppError{
		Err:     ErrStorage,
		Message: op,
		Cause:   err,
	}
}
