// Package migrations embeds the goose SQL migration files for the server
// database schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
