package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/utils/clock"
	"github.com/secmon-lab/alertpost/pkg/utils/errutil"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
)

// GetSettings returns the stored configuration, or the default one when it
// has never been saved.
func (uc *UseCases) GetSettings(ctx context.Context) (*setting.Config, error) {
	cfg, err := uc.repository.GetConfig(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get settings", goerr.TV(errutil.OptionNameKey, setting.OptionName))
	}
	if cfg == nil {
		def := setting.Default()
		return &def, nil
	}
	return cfg, nil
}

// SaveSettings sanitizes input and overwrites the stored configuration.
func (uc *UseCases) SaveSettings(ctx context.Context, input map[string]string) (*setting.Config, error) {
	cfg := setting.Sanitize(input)
	cfg.UpdatedAt = clock.Now(ctx)

	if err := uc.repository.PutConfig(ctx, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to save settings", goerr.TV(errutil.OptionNameKey, setting.OptionName))
	}

	logging.From(ctx).Info("settings saved", "config", cfg)
	return &cfg, nil
}

func (uc *UseCases) ListEligibleAuthors(ctx context.Context) ([]*author.Author, error) {
	authors, err := uc.repository.ListAuthors(ctx, author.EligibleRoles())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list authors")
	}
	return authors, nil
}

// ListRecentAlerts returns the latest published posts. A non-positive limit
// uses the default.
func (uc *UseCases) ListRecentAlerts(ctx context.Context, limit int) ([]*post.Post, error) {
	if limit <= 0 {
		limit = uc.recentLimit
	}

	posts, err := uc.repository.ListPosts(ctx, types.PostStatusPublish, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list posts", goerr.TV(errutil.LimitKey, limit))
	}
	return posts, nil
}
