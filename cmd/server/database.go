package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studyplan/internal/config"
	"github.com/phrazzld/studyplan/internal/platform/migrate"
	"github.com/phrazzld/studyplan/internal/platform/postgres"
	"github.com/phrazzld/studyplan/internal/platform/sqlite"
	"github.com/phrazzld/studyplan/internal/store"
)

// backend is the configured database together with its migrations and task
// store.
type backend struct {
	driver     string
	db         *sql.DB
	migrations migrate.Source
	tasks      store.TaskStore
}

// openBackend connects to the database named by cfg.Driver.
func openBackend(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*backend, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		logger.Info("database connection established", "driver", cfg.Driver)
		return &backend{
			driver:     cfg.Driver,
			db:         db,
			migrations: sqlite.Migrations(),
			tasks:      sqlite.NewTaskStore(db, logger),
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		logger.Info("database connection established", "driver", cfg.Driver)
		return &backend{
			driver:     cfg.Driver,
			db:         db,
			migrations: postgres.Migrations(),
			tasks:      postgres.NewPostgresTaskStore(db, logger),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (b *backend) close(logger *slog.Logger) {
	if err := b.db.Close(); err != nil {
		logger.Error("error closing database connection", "error", err)
	}
}
