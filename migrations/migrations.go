// Package migrations embeds the SQL schema so the server can migrate at
// boot without shipping the directory alongside the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
