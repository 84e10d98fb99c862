// Package migrations holds the ledger schema as numbered SQL files.
package migrations

import "embed"

// FS holds the NNN_name.up.sql and NNN_name.down.sql pairs. The store
// applies up files in version order.
//
//go:embed *.sql
var FS embed.FS
