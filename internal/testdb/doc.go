// Package testdb provides database helpers for tests.
//
// OpenSQLite returns a fresh, fully migrated in-memory SQLite database per
// call, so tests using it can run in parallel without sharing state.
//
// OpenPostgres connects to the database named by DATABASE_URL (or
// STUDYPLAN_TEST_DATABASE_URL), applies migrations, and skips the test when
// neither variable is set. Use WithTx to isolate Postgres tests: the
// transaction is always rolled back.
//
//	func TestSomething(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.OpenSQLite(t)
//	    tasks := sqlite.NewTaskStore(db, nil)
//	    ...
//	}
package testdb
