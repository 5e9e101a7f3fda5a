// Package migrations embeds the schema files so tests and tooling apply the
// same SQL a deployment does.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
