package usecase

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/auth"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/utils/errutil"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
)

// VerifyCredentials loads the configuration once for the request and checks
// cred against it. The returned configuration is used for the rest of the
// request.
func (uc *UseCases) VerifyCredentials(ctx context.Context, cred auth.Credentials) (*setting.Config, error) {
	cfg, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if err := auth.Verify(cred, cfg.Credentials()); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HandleNotification creates a published post from the notification. Category
// resolution never fails the request: an unresolved category is stored as
// types.CategoryNotFound.
func (uc *UseCases) HandleNotification(ctx context.Context, cfg setting.Config, n post.Notification) (*post.Post, error) {
	logger := logging.From(ctx)

	categories := make([]types.CategoryID, 0, len(uc.categoryNames))
	for _, name := range uc.categoryNames {
		categories = append(categories, uc.resolveCategory(ctx, name))
	}

	newPost := post.NewAlert(ctx, n, cfg.AuthorID, categories)

	postID, err := uc.repository.CreatePost(ctx, newPost)
	if err != nil {
		if _, ok := errs.AsAPIError(err); ok {
			return nil, goerr.Wrap(err, "failed to create post",
				goerr.TV(errutil.PostIDKey, newPost.ID),
				goerr.T(errs.TagDatabase))
		}

		apiErr := errs.NewAPIError(errs.CodeInsertFailed, "Could not insert post into the database", http.StatusInternalServerError)
		return nil, goerr.Wrap(apiErr, "failed to create post",
			goerr.TV(errutil.PostIDKey, newPost.ID),
			goerr.V("cause", err),
			goerr.T(errs.TagDatabase))
	}
	newPost.ID = postID

	logger.Info("alert post created",
		"post_id", newPost.ID,
		"title", newPost.Title,
		"author_id", newPost.AuthorID,
		"categories", newPost.Categories,
	)

	return &newPost, nil
}

func (uc *UseCases) resolveCategory(ctx context.Context, name string) types.CategoryID {
	logger := logging.From(ctx)

	category, err := uc.repository.GetCategoryByName(ctx, name)
	if err != nil {
		logger.Warn("failed to resolve category", "name", name, logging.ErrAttr(err))
		return types.CategoryNotFound
	}
	if category == nil {
		logger.Warn("category not found", "name", name)
		return types.CategoryNotFound
	}

	return category.ID
}
