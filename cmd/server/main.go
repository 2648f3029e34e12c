// Package main implements the study planner HTTP server. It serves the JSON
// API and the browser UI, and with -migrate runs a single schema migration
// command and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/studyplan/internal/config"
	"github.com/phrazzld/studyplan/internal/platform/logger"
	"github.com/phrazzld/studyplan/internal/platform/migrate"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default: ./config.yaml when present)")
	migrateCmd := flag.String("migrate", "",
		fmt.Sprintf("run a migration command and exit: %s, %s, %s or %s",
			migrate.CommandUp, migrate.CommandDown, migrate.CommandStatus, migrate.CommandVersion))
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *migrateCmd); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, opens the database and then
// either runs one migration command or serves HTTP until ctx is cancelled.
func run(ctx context.Context, configPath, migrateCmd string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"auth_enabled", cfg.Auth.Enabled(),
		"timezone", cfg.Planner.Timezone)

	backend, err := openBackend(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer backend.close(log)

	if migrateCmd != "" {
		return runMigrations(ctx, backend, migrateCmd, log)
	}

	if err := migrate.New(backend.db, backend.migrations, log).Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, log, backend)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
