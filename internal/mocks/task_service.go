package mocks

import (
	"context"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	CreateTaskFn  func(ctx context.Context, in domain.TaskInput) (*domain.Task, error)
	CreateTasksFn func(ctx context.Context, inputs []domain.TaskInput) ([]*domain.Task, error)
	ListTasksFn   func(ctx context.Context) ([]*domain.Task, error)

	// Default values used when functions aren't explicitly defined
	Tasks []*domain.Task
	Err   error
}

var _ service.TaskService = (*MockTaskService)(nil)

// CreateTask implements service.TaskService
func (m *MockTaskService) CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, in)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return domain.NewTask(in)
}

// CreateTasks implements service.TaskService
func (m *MockTaskService) CreateTasks(ctx context.Context, inputs []domain.TaskInput) ([]*domain.Task, error) {
	if m.CreateTasksFn != nil {
		return m.CreateTasksFn(ctx, inputs)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*domain.Task, 0, len(inputs))
	for _, in := range inputs {
		t, err := domain.NewTask(in)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ListTasks implements service.TaskService
func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.Err
}
