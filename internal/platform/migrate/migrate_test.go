package migrate

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testSource() Source {
	return Source{
		Dialect: "sqlite3",
		FS: fstest.MapFS{
			"00001_create_notes.sql": {Data: []byte(`-- +goose Up
CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT NOT NULL);

-- +goose Down
DROP TABLE notes;
`)},
			"00002_add_flag.sql": {Data: []byte(`-- +goose Up
ALTER TABLE notes ADD COLUMN flagged INTEGER NOT NULL DEFAULT 0;

-- +goose Down
ALTER TABLE notes DROP COLUMN flagged;
`)},
		},
	}
}

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestMigrator_UpDownVersion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openMemoryDB(t)
	m := New(db, testSource(), nil)

	require.NoError(t, m.Up(ctx))
	assert.True(t, tableExists(t, db, "notes"))
	assert.True(t, tableExists(t, db, TableName), "version table should use the configured name")

	v, err := m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	require.NoError(t, m.Down(ctx))
	v, err = m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	// Up is idempotent once everything is applied.
	require.NoError(t, m.Up(ctx))
	require.NoError(t, m.Up(ctx))
}

func TestMigrator_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := context.Background()
	m := New(openMemoryDB(t), testSource(), log)

	for _, cmd := range []string{CommandUp, CommandStatus, CommandVersion} {
		assert.NoError(t, m.Run(ctx, cmd), "command %s", cmd)
	}
	assert.Contains(t, buf.String(), `"component":"migrations"`)

	err := m.Run(ctx, "sideways")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestMigrator_BadDialect(t *testing.T) {
	t.Parallel()

	m := New(openMemoryDB(t), Source{Dialect: "not-a-dialect", FS: fstest.MapFS{}}, nil)
	assert.Error(t, m.Up(context.Background()))
}
