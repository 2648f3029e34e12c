package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskLister mocks the TaskLister interface
type MockTaskLister struct {
	mock.Mock
}

func (m *MockTaskLister) List(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

// failingTaskStore wraps a real store and fails the nth Create call
// (1-based) made through it or any store derived with WithTx.
type failingTaskStore struct {
	store.TaskStore
	failOn int
	calls  *int
}

var errInjected = errors.New("injected failure")

func (f *failingTaskStore) Create(ctx context.Context, task *domain.Task) error {
	*f.calls++
	if *f.calls == f.failOn {
		return errInjected
	}
	return f.TaskStore.Create(ctx, task)
}

func (f *failingTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &failingTaskStore{TaskStore: f.TaskStore.WithTx(tx), failOn: f.failOn, calls: f.calls}
}
