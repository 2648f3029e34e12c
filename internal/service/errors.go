package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/domain/plan"
)

// Common service errors. The API layer maps these to status codes.
var (
	// ErrNoTasks is returned when a plan is requested but no tasks are stored.
	// It wraps plan.ErrNoTasks.
	ErrNoTasks = fmt.Errorf("%w: add some tasks first", plan.ErrNoTasks)
)

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "list_tasks")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError wraps err with operation context.
// Validation errors are returned unchanged so callers see them directly.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
