// Package db carries the versioned SQL schema. The migration files are
// embedded so a deployed binary needs no migrations directory on disk.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
