// Package migrations embeds the SQL schema migrations applied by goose at start-up.
// The statements are kept portable between SQLite and PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
