// Package sqlite implements the store interfaces on SQLite using the pure-Go
// modernc.org/sqlite driver, and embeds the SQLite schema migrations.
//
// SQLite allows a single writer, so Open limits the pool to one connection.
package sqlite
