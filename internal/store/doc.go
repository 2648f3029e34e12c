// Package store defines the persistence interfaces used by the services,
// the Querier abstraction shared by the SQL implementations, transaction
// helpers, and the store-level error sentinels that dialect drivers map
// their constraint failures onto.
//
// Implementations live under internal/platform (sqlite, postgres).
package store
