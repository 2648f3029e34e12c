package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/phrazzld/studyplan/internal/platform/migrate"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations returns the PostgreSQL migration source.
func Migrations() migrate.Source {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		// ALLOW-PANIC: the embedded directory is fixed at build time
		panic(fmt.Sprintf("postgres migrations: %v", err))
	}
	return migrate.Source{Dialect: "postgres", FS: sub}
}

// Open connects to url, configures the pool, and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return migrate.New(db, Migrations(), logger).Up(ctx)
}
