package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/cli/config"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/usecase"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
	"github.com/secmon-lab/alertpost/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdSetup() *cli.Command {
	var (
		repoCfg    config.Repository
		categories []string
		authorID   int64
		authorName string
		authorRole string
	)

	return &cli.Command{
		Name:  "setup",
		Usage: "Register alert categories and post authors",
		Flags: append(repoCfg.Flags(),
			&cli.StringSliceFlag{
				Name:        "category",
				Usage:       "Category as name:id. Required for alertsu and alert",
				Destination: &categories,
			},
			&cli.Int64Flag{
				Name:        "author-id",
				Usage:       "ID of the author to register (skipped when 0)",
				Destination: &authorID,
			},
			&cli.StringFlag{
				Name:        "author-name",
				Usage:       "Display name of the author",
				Destination: &authorName,
			},
			&cli.StringFlag{
				Name:        "author-role",
				Usage:       "Role of the author [administrator|editor|author]",
				Value:       string(types.RoleAdministrator),
				Destination: &authorRole,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			parsed, authors, err := buildSetupInput(categories, authorID, authorName, authorRole)
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			if err := usecase.New(usecase.WithRepository(repo)).Setup(ctx, parsed, authors); err != nil {
				return err
			}

			logging.From(ctx).Info("setup completed", "categories", len(parsed), "authors", len(authors))
			return nil
		},
	}
}

func buildSetupInput(categories []string, authorID int64, authorName, authorRole string) ([]post.Category, []author.Author, error) {
	var parsed []post.Category
	for _, s := range categories {
		category, err := parseCategory(s)
		if err != nil {
			return nil, nil, err
		}
		parsed = append(parsed, category)
	}

	var authors []author.Author
	if authorID != 0 {
		if authorID < 0 {
			return nil, nil, goerr.New("author-id must be positive", goerr.V("author_id", authorID))
		}
		role := types.Role(authorRole)
		if err := role.Validate(); err != nil {
			return nil, nil, err
		}
		authors = append(authors, author.Author{
			ID:          types.AuthorID(authorID),
			DisplayName: authorName,
			Role:        role,
		})
	}

	if len(parsed) == 0 && len(authors) == 0 {
		return nil, nil, goerr.New("nothing to set up, give --category or --author-id")
	}

	return parsed, authors, nil
}
