package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

// TableName is the goose version table.
const TableName = "schema_migrations"

// Supported commands for Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// ErrUnknownCommand is returned by Run for anything other than the Command* values.
var ErrUnknownCommand = errors.New("unknown migration command")

// goose keeps its dialect, base FS, and logger in package globals.
var gooseMu sync.Mutex

// Source describes one dialect's migrations.
type Source struct {
	// Dialect is the goose dialect name, e.g. "sqlite3" or "postgres".
	Dialect string
	// FS holds the .sql files at its root.
	FS fs.FS
}

// Migrator runs goose commands against a database.
type Migrator struct {
	db     *sql.DB
	source Source
	logger *slog.Logger
}

// New creates a Migrator. If logger is nil, slog.Default() is used.
func New(db *sql.DB, source Source, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		db:     db,
		source: source,
		logger: logger.With(slog.String("component", "migrations"), slog.String("dialect", source.Dialect)),
	}
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	return m.with(func() error { return goose.UpContext(ctx, m.db, ".") })
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.with(func() error { return goose.DownContext(ctx, m.db, ".") })
}

// Status logs the applied/pending state of each migration.
func (m *Migrator) Status(ctx context.Context) error {
	return m.with(func() error { return goose.StatusContext(ctx, m.db, ".") })
}

// Version returns the current schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	var version int64
	err := m.with(func() error {
		v, err := goose.GetDBVersionContext(ctx, m.db)
		version = v
		return err
	})
	return version, err
}

// Run dispatches a command name to the matching method.
func (m *Migrator) Run(ctx context.Context, command string) error {
	m.logger.Info("running migration command", slog.String("command", command))

	var err error
	switch command {
	case CommandUp:
		err = m.Up(ctx)
	case CommandDown:
		err = m.Down(ctx)
	case CommandStatus:
		err = m.Status(ctx)
	case CommandVersion:
		var v int64
		if v, err = m.Version(ctx); err == nil {
			m.logger.Info("current schema version", slog.Int64("version", v))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}

func (m *Migrator) with(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(m.source.FS)
	defer goose.SetBaseFS(nil)
	goose.SetTableName(TableName)
	goose.SetLogger(&slogGooseLogger{logger: m.logger})
	if err := goose.SetDialect(m.source.Dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	return fn()
}

// slogGooseLogger adapts goose.Logger to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level and does not exit; the error is returned to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
