package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/studyplan/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Tasks are append-only: there is no update or delete.
type TaskStore interface {
	// Create validates and inserts a new task.
	// Returns domain validation errors wrapped in ErrInvalidEntity if the task
	// is invalid, and ErrDuplicate if its ID is already stored.
	Create(ctx context.Context, task *domain.Task) error

	// List returns every stored task ordered by due date text, then by
	// creation time. Returns an empty slice when the table is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// WithTx returns a TaskStore that runs its queries on tx.
	WithTx(tx *sql.Tx) TaskStore
}
