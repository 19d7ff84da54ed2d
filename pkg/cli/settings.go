package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/cli/config"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/usecase"
	"github.com/secmon-lab/alertpost/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdSettings() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Show or update the notification credentials and post author",
		Commands: []*cli.Command{
			cmdSettingsShow(),
			cmdSettingsSet(),
		},
	}
}

func cmdSettingsShow() *cli.Command {
	var (
		repoCfg      config.Repository
		showPassword bool
	)

	return &cli.Command{
		Name:  "show",
		Usage: "Show current settings",
		Flags: append(repoCfg.Flags(),
			&cli.BoolFlag{
				Name:        "show-password",
				Usage:       "Print the password instead of masking it",
				Destination: &showPassword,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			cfg, err := usecase.New(usecase.WithRepository(repo)).GetSettings(ctx)
			if err != nil {
				return err
			}

			displaySettings(os.Stdout, cfg, showPassword)
			return nil
		},
	}
}

func cmdSettingsSet() *cli.Command {
	var (
		repoCfg  config.Repository
		username string
		password string
		authorID string
	)

	return &cli.Command{
		Name:  "set",
		Usage: "Update settings. Omitted values keep their current value",
		Flags: append(repoCfg.Flags(),
			&cli.StringFlag{
				Name:        "username",
				Usage:       "Username the notification service sends",
				Sources:     cli.EnvVars("ALERTPOST_USERNAME"),
				Destination: &username,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "Password the notification service sends",
				Sources:     cli.EnvVars("ALERTPOST_PASSWORD"),
				Destination: &password,
			},
			&cli.StringFlag{
				Name:        "author-id",
				Usage:       "Author ID of created posts",
				Destination: &authorID,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(usecase.WithRepository(repo))
			current, err := uc.GetSettings(ctx)
			if err != nil {
				return err
			}

			input, err := mergeSettingsInput(current,
				optionalFlag(c, "username", username),
				optionalFlag(c, "password", password),
				optionalFlag(c, "author-id", authorID),
			)
			if err != nil {
				return err
			}

			saved, err := uc.SaveSettings(ctx, input)
			if err != nil {
				return err
			}

			displaySettings(os.Stdout, saved, false)
			return nil
		},
	}
}

func optionalFlag(c *cli.Command, name, value string) *string {
	if !c.IsSet(name) {
		return nil
	}
	return &value
}

// mergeSettingsInput builds the input of the sanitize hook from the current
// settings and the values given on the command line.
func mergeSettingsInput(current *setting.Config, username, password, authorID *string) (map[string]string, error) {
	input := map[string]string{
		setting.FieldUsername: current.Username,
		setting.FieldPassword: current.Password,
		setting.FieldAuthorID: strconv.FormatInt(int64(current.AuthorID), 10),
	}

	if username == nil && password == nil && authorID == nil {
		return nil, goerr.New("at least one of --username, --password or --author-id is required")
	}

	if username != nil {
		input[setting.FieldUsername] = *username
	}
	if password != nil {
		input[setting.FieldPassword] = *password
	}
	if authorID != nil {
		if _, err := strconv.ParseInt(strings.TrimSpace(*authorID), 10, 64); err != nil {
			return nil, goerr.Wrap(err, "author-id must be an integer", goerr.V("author_id", *authorID))
		}
		input[setting.FieldAuthorID] = *authorID
	}

	return input, nil
}

func displaySettings(w io.Writer, cfg *setting.Config, showPassword bool) {
	password := strings.Repeat("*", len(cfg.Password))
	if showPassword {
		password = cfg.Password
	}
	if cfg.Password == "" {
		password = "(not set)"
	}
	username := cfg.Username
	if username == "" {
		username = "(not set)"
	}

	updated := "never"
	if !cfg.UpdatedAt.IsZero() {
		updated = humanize.Time(cfg.UpdatedAt)
	}

	fmt.Fprintf(w, "Option:      %s\n", setting.OptionName)
	fmt.Fprintf(w, "Username:    %s\n", username)
	fmt.Fprintf(w, "Password:    %s\n", password)
	fmt.Fprintf(w, "Author ID:   %d\n", cfg.AuthorID)
	fmt.Fprintf(w, "Last saved:  %s\n", updated)
}
