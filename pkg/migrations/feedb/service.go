// Package feedb holds all the migrations for the fee database
package feedb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the fee database
var Migrations = migrate.NewMigrations()
