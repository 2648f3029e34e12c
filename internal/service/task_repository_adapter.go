package service

import (
	"database/sql"

	"github.com/phrazzld/studyplan/internal/store"
)

// TaskRepository is the persistence the task service needs: the store
// operations plus the connection used to start transactions.
type TaskRepository interface {
	store.TaskStore

	// DB returns the underlying database connection
	DB() *sql.DB
}

// TaskRepositoryAdapter pairs a store.TaskStore with its *sql.DB.
type TaskRepositoryAdapter struct {
	store.TaskStore
	db *sql.DB
}

// NewTaskRepositoryAdapter creates a TaskRepository from a store and the
// connection the store was built on.
func NewTaskRepositoryAdapter(taskStore store.TaskStore, db *sql.DB) *TaskRepositoryAdapter {
	return &TaskRepositoryAdapter{
		TaskStore: taskStore,
		db:        db,
	}
}

// DB implements TaskRepository.
func (a *TaskRepositoryAdapter) DB() *sql.DB {
	return a.db
}

// Verify that TaskRepositoryAdapter implements service.TaskRepository
var _ TaskRepository = (*TaskRepositoryAdapter)(nil)
