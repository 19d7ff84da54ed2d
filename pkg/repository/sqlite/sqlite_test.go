package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/repository/sqlite"
)

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "alertpost.db")

	repo, err := sqlite.New(path)
	gt.NoError(t, err).Required()

	gt.NoError(t, repo.PutConfig(ctx, setting.Config{Username: "everbridge", Password: "pass", AuthorID: 3}))
	gt.NoError(t, repo.PutCategory(ctx, post.Category{ID: 2, Name: "alertsu"}))
	p := post.NewAlert(ctx, post.Notification{Title: "Evac"}, 3, []types.CategoryID{2})
	_, err = repo.CreatePost(ctx, p)
	gt.NoError(t, err)
	gt.NoError(t, repo.Close())

	// Migrations run again on an existing database.
	repo, err = sqlite.New(path)
	gt.NoError(t, err).Required()
	defer func() { _ = repo.Close() }()

	cfg, err := repo.GetConfig(ctx)
	gt.NoError(t, err)
	gt.NotNil(t, cfg)
	gt.Equal(t, cfg.Password, "pass")

	category, err := repo.GetCategoryByName(ctx, "alertsu")
	gt.NoError(t, err)
	gt.NotNil(t, category)
	gt.Equal(t, category.ID, types.CategoryID(2))

	got, err := repo.GetPost(ctx, p.ID)
	gt.NoError(t, err)
	gt.NotNil(t, got)
	gt.Equal(t, got.Title, "Evac")
	gt.True(t, got.CreatedAt.Equal(p.CreatedAt))
}

func TestPutCategoryReplacesName(t *testing.T) {
	ctx := context.Background()
	repo, err := sqlite.New(":memory:")
	gt.NoError(t, err).Required()
	defer func() { _ = repo.Close() }()

	gt.NoError(t, repo.PutCategory(ctx, post.Category{ID: 2, Name: "alert"}))
	gt.NoError(t, repo.PutCategory(ctx, post.Category{ID: 5, Name: "alert"}))

	category, err := repo.GetCategoryByName(ctx, "alert")
	gt.NoError(t, err)
	gt.NotNil(t, category)
	gt.Equal(t, category.ID, types.CategoryID(5))
}
