package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/cli/config"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/usecase"
	"github.com/secmon-lab/alertpost/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// cmdNotify creates an alert post from a notification document without going
// through the HTTP endpoint. Credentials are not checked.
func cmdNotify() *cli.Command {
	var (
		repoCfg   config.Repository
		inputFile string
	)

	return &cli.Command{
		Name:  "notify",
		Usage: "Create an alert post from a notification JSON document",
		Flags: append(repoCfg.Flags(),
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Input file path (default: stdin)",
				Destination: &inputFile,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			n, err := readNotification(inputFile)
			if err != nil {
				return goerr.Wrap(err, "failed to read notification")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(usecase.WithRepository(repo))
			cfg, err := uc.GetSettings(ctx)
			if err != nil {
				return err
			}

			created, err := uc.HandleNotification(ctx, *cfg, *n)
			if err != nil {
				return err
			}

			fmt.Printf("Created post %s\n", created.ID)
			return nil
		},
	}
}

func readNotification(inputFile string) (*post.Notification, error) {
	var reader io.Reader

	if inputFile != "" {
		// #nosec G304 -- This is a CLI tool that intentionally reads user-specified files
		file, err := os.Open(inputFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open input file")
		}
		defer safe.Close(context.Background(), file)
		reader = file
	} else {
		reader = os.Stdin
	}

	var n post.Notification
	if err := json.NewDecoder(reader).Decode(&n); err != nil {
		return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("input", inputFile))
	}

	return &n, nil
}
