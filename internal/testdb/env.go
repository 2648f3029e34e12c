package testdb

import "os"

// databaseURLVars are checked in order by DatabaseURL.
var databaseURLVars = []string{"STUDYPLAN_TEST_DATABASE_URL", "DATABASE_URL"}

// DatabaseURL returns the Postgres URL configured for integration tests,
// or "" if none is set.
func DatabaseURL() string {
	for _, name := range databaseURLVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether Postgres integration tests should be skipped.
func ShouldSkipDatabaseTest() bool {
	return DatabaseURL() == ""
}
