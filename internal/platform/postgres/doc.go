// Package postgres implements the store interfaces on PostgreSQL through the
// pgx database/sql driver, maps PostgreSQL error codes onto store errors, and
// embeds the PostgreSQL schema migrations.
package postgres
