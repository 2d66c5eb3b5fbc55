// Package migrations holds the goose SQL migrations, embedded so the bot can migrate on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
