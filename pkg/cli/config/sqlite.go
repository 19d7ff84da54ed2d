package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/repository"
	"github.com/urfave/cli/v3"
)

type SQLite struct {
	path string
}

func (c *SQLite) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "Path of the SQLite database file (used when Firestore is not configured)",
			Destination: &c.path,
			Category:    "SQLite",
			Sources:     cli.EnvVars("ALERTPOST_SQLITE_PATH"),
		},
	}
}

func (c SQLite) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", c.path),
	)
}

func (c *SQLite) Configure() (*repository.SQLite, error) {
	if c.path == "" {
		return nil, goerr.New("sqlite-path is required")
	}
	return repository.NewSQLite(c.path)
}

func (c *SQLite) IsConfigured() bool {
	return c.path != ""
}
