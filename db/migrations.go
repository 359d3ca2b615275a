// Package db holds the schema migrations and the generated query layer.
package db

import "embed"

// Migrations contains the golang-migrate SQL files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
