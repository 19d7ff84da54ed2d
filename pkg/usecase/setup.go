package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/utils/errutil"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
)

// Setup registers categories that do not exist yet and stores the authors.
// Existing categories keep their IDs.
func (uc *UseCases) Setup(ctx context.Context, categories []post.Category, authors []author.Author) error {
	logger := logging.From(ctx)

	for _, category := range categories {
		existing, err := uc.repository.GetCategoryByName(ctx, category.Name)
		if err != nil {
			return goerr.Wrap(err, "failed to look up category", goerr.TV(errutil.CategoryNameKey, category.Name))
		}
		if existing != nil {
			logger.Info("category already exists", "name", existing.Name, "id", existing.ID)
			continue
		}

		if err := uc.repository.PutCategory(ctx, category); err != nil {
			return goerr.Wrap(err, "failed to put category", goerr.TV(errutil.CategoryNameKey, category.Name))
		}
		logger.Info("category created", "name", category.Name, "id", category.ID)
	}

	for _, a := range authors {
		if err := uc.repository.PutAuthor(ctx, a); err != nil {
			return goerr.Wrap(err, "failed to put author", goerr.TV(errutil.AuthorIDKey, a.ID))
		}
		logger.Info("author stored", "id", a.ID, "name", a.DisplayName, "role", a.Role)
	}

	return nil
}
