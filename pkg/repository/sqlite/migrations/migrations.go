// Package migrations holds the schema of the SQLite repository.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Run applies all pending migrations to db.
func Run(db *sql.DB) error {
	goose.SetBaseFS(FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return goerr.Wrap(err, "failed to set migration dialect")
	}
	if err := goose.Up(db, "."); err != nil {
		return goerr.Wrap(err, "failed to run migrations")
	}
	return nil
}
