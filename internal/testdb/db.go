package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/studyplan/internal/platform/postgres"
	"github.com/phrazzld/studyplan/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// quietLogger discards migration chatter.
var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// OpenSQLite returns a migrated in-memory SQLite database that is closed
// when the test ends.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err, "failed to open in-memory sqlite")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.Migrate(ctx, db, quietLogger), "failed to migrate sqlite")
	return db
}

// OpenPostgres returns a migrated Postgres connection pool, or skips the
// test when no database URL is configured.
func OpenPostgres(t testing.TB) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("DATABASE_URL not set - skipping postgres test")
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, DatabaseURL())
	require.NoError(t, err, "failed to connect to postgres")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db, quietLogger), "failed to migrate postgres")
	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
