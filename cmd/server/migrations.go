package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studyplan/internal/platform/migrate"
)

// runMigrations executes a single migration command against the backend.
func runMigrations(ctx context.Context, b *backend, command string, logger *slog.Logger) error {
	if err := migrate.New(b.db, b.migrations, logger).Run(ctx, command); err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}

	logger.Info("migration command completed", "command", command, "driver", b.driver)
	return nil
}
