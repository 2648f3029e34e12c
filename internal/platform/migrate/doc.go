// Package migrate applies the embedded goose migrations for a SQL dialect
// and reports migration status through the application logger.
package migrate
