// Package migrations embeds the schema migration files so they compile into
// the binary alongside the sqlite driver.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
