package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/auth"
	"github.com/urfave/cli/v3"
)

// Admin holds the operator credentials of the settings pages.
type Admin struct {
	user     string
	password string
}

func (x *Admin) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "admin-user",
			Usage:       "Username for the settings pages (pages are disabled when empty)",
			Category:    "Admin",
			Sources:     cli.EnvVars("ALERTPOST_ADMIN_USER"),
			Destination: &x.user,
		},
		&cli.StringFlag{
			Name:        "admin-password",
			Usage:       "Password for the settings pages",
			Category:    "Admin",
			Sources:     cli.EnvVars("ALERTPOST_ADMIN_PASSWORD"),
			Destination: &x.password,
		},
	}
}

func (x Admin) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user", x.user),
		slog.Bool("password_set", x.password != ""),
	)
}

// Configure returns nil when the admin surface is disabled.
func (x *Admin) Configure() (*auth.Credentials, error) {
	if x.user == "" && x.password == "" {
		return nil, nil
	}
	if x.user == "" || x.password == "" {
		return nil, goerr.New("both admin-user and admin-password are required",
			goerr.V("user", x.user))
	}

	return &auth.Credentials{
		Username: x.user,
		Password: x.password,
	}, nil
}
