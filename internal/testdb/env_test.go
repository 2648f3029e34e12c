package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseURL(t *testing.T) {
	t.Setenv("STUDYPLAN_TEST_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")
	assert.Equal(t, "", DatabaseURL())
	assert.True(t, ShouldSkipDatabaseTest())

	t.Setenv("DATABASE_URL", "postgres://fallback")
	assert.Equal(t, "postgres://fallback", DatabaseURL())

	t.Setenv("STUDYPLAN_TEST_DATABASE_URL", "postgres://preferred")
	assert.Equal(t, "postgres://preferred", DatabaseURL())
	assert.False(t, ShouldSkipDatabaseTest())
}

func TestOpenSQLite(t *testing.T) {
	db := OpenSQLite(t)

	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n)
	assert.NoError(t, err)
	assert.Zero(t, n)
}
