package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/platform/logger"
	"github.com/phrazzld/studyplan/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask validates input and stores a new task.
	// Returns a *domain.ValidationError when the title is empty.
	CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error)

	// CreateTasks validates every input before storing any, then inserts
	// them in one transaction. Either all tasks are created or none are.
	CreateTasks(ctx context.Context, inputs []domain.TaskInput) ([]*domain.Task, error)

	// ListTasks returns every task in store order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)
}

type taskServiceImpl struct {
	repo   TaskRepository
	logger *slog.Logger
}

// NewTaskService creates a TaskService.
// It returns an error if repo is nil.
func NewTaskService(repo TaskRepository, logger *slog.Logger) (TaskService, error) {
	if repo == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "repo cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		repo:   repo,
		logger: logger.With("component", "task_service"),
	}, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(in)
	if err != nil {
		log.Debug("rejected task input", "error", err)
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	if err := s.repo.Create(ctx, task); err != nil {
		log.Error("failed to store task", "error", err, "task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", task.ID, "due_date", task.DueDate)
	return task, nil
}

// CreateTasks implements TaskService.
func (s *taskServiceImpl) CreateTasks(ctx context.Context, inputs []domain.TaskInput) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(inputs) == 0 {
		return nil, domain.NewValidationError("tasks", "at least one task is required", nil)
	}

	tasks := make([]*domain.Task, 0, len(inputs))
	for i, in := range inputs {
		task, err := domain.NewTask(in)
		if err != nil {
			log.Debug("rejected task batch", "index", i, "error", err)
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		tasks = append(tasks, task)
	}

	err := store.RunInTransaction(ctx, s.repo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.repo.WithTx(tx)
		for _, task := range tasks {
			if err := txRepo.Create(ctx, task); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to store task batch", "error", err, "count", len(tasks))
		return nil, NewTaskServiceError("create_tasks", "failed to save tasks", err)
	}

	log.Info("task batch created", "count", len(tasks))
	return tasks, nil
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to load tasks", err)
	}
	return tasks, nil
}
