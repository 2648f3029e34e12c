package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/platform/logger"
	"github.com/phrazzld/studyplan/internal/store"
)

// createdAtLayout is fixed-width so text ordering matches time ordering.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// TaskStore implements store.TaskStore on SQLite.
type TaskStore struct {
	db     store.Querier
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore on db, which may be a *sql.DB or *sql.Tx.
// If logger is nil, slog.Default() is used.
func NewTaskStore(db store.Querier, logger *slog.Logger) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse is a programming error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	const query = `
		INSERT INTO tasks (id, title, subject, due_date, importance, duration_hours, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		task.ID.String(),
		task.Title,
		task.Subject,
		task.DueDate,
		task.Importance,
		task.DurationHours,
		task.Notes,
		task.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return store.NewStoreError("task", "create", "insert failed", MapError(err))
	}

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	return nil
}

// List implements store.TaskStore.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	const query = `
		SELECT id, title, subject, due_date, importance, duration_hours, notes, created_at
		FROM tasks
		ORDER BY due_date, created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var (
			t         domain.Task
			createdAt string
		)
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Subject,
			&t.DueDate,
			&t.Importance,
			&t.DurationHours,
			&t.Notes,
			&createdAt,
		); err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}

		t.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
		if err != nil {
			return nil, store.NewStoreError("task", "list", "bad created_at", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "row iteration failed", MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// WithTx implements store.TaskStore.
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{db: tx, logger: s.logger}
}
