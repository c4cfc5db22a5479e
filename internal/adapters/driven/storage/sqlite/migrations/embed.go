// Package migrations embeds the versioned schema files for the mysky
// SQLite store.
package migrations

import "embed"

// FS holds every *.up.sql migration, embedded at compile time so the
// binary can initialise a fresh database on first run.
//
//go:embed *.sql
var FS embed.FS
