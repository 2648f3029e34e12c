package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/platform/logger"
	"github.com/phrazzld/studyplan/internal/store"
)

// PostgresTaskStore implements store.TaskStore on PostgreSQL.
type PostgresTaskStore struct {
	db     store.Querier
	logger *slog.Logger
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a PostgresTaskStore on a connection or transaction.
// If logger is nil, slog.Default() is used.
func NewPostgresTaskStore(db store.Querier, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse is a programming error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Create implements store.TaskStore.Create.
// Returns store.ErrInvalidEntity for invalid tasks and store.ErrDuplicate for a reused ID.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, title, subject, due_date, importance, duration_hours, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Subject,
		task.DueDate,
		task.Importance,
		task.DurationHours,
		task.Notes,
		task.CreatedAt.UTC(),
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

// List implements store.TaskStore.List.
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
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
		var t domain.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Subject,
			&t.DueDate,
			&t.Importance,
			&t.DurationHours,
			&t.Notes,
			&t.CreatedAt,
		); err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "row iteration failed", MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// WithTx implements store.TaskStore.WithTx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}
