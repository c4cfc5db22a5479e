// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - ShownStore: Anti-repetition ledger persistence
//   - JournalStore: Journal entry persistence
//   - SchedulerStore: Background task state persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory as .up.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.mysky/data/mysky.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode. Concurrent MarkShown calls for different items cannot
// lose updates: each is a single-row upsert keyed by item id.
package sqlite
