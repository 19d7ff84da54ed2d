package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/repository"
	"github.com/secmon-lab/alertpost/pkg/usecase"
	"github.com/secmon-lab/alertpost/pkg/utils/clock"
)

func TestGetSettingsDefault(t *testing.T) {
	uc := usecase.New(usecase.WithRepository(repository.NewMemory()))

	cfg, err := uc.GetSettings(context.Background())
	gt.NoError(t, err)
	gt.Equal(t, *cfg, setting.Default())
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return now })
	uc := usecase.New(usecase.WithRepository(repository.NewMemory()))

	saved, err := uc.SaveSettings(ctx, map[string]string{
		setting.FieldUsername: " everbridge ",
		setting.FieldPassword: "secret",
		setting.FieldAuthorID: "7",
	})
	gt.NoError(t, err)
	gt.Equal(t, saved.AuthorID, types.AuthorID(7))

	got, err := uc.GetSettings(ctx)
	gt.NoError(t, err)
	gt.Equal(t, got.AuthorID, types.AuthorID(7))
	gt.Equal(t, got.Username, "everbridge")
	gt.Equal(t, got.Password, "secret")
	gt.Equal(t, got.UpdatedAt, now)
}

func TestListEligibleAuthors(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(usecase.WithRepository(repository.NewMemory()))
	gt.NoError(t, uc.Setup(ctx, nil, []author.Author{
		{ID: 3, DisplayName: "Writer", Role: types.RoleAuthor},
		{ID: 2, DisplayName: "Editor", Role: types.RoleEditor},
		{ID: 1, DisplayName: "Admin", Role: types.RoleAdministrator},
	}))

	authors, err := uc.ListEligibleAuthors(ctx)
	gt.NoError(t, err)
	gt.A(t, authors).Length(2)
	gt.Equal(t, authors[0].ID, types.AuthorID(1))
	gt.Equal(t, authors[1].ID, types.AuthorID(2))
}

func TestListRecentAlerts(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := repository.NewMemory()
	uc := usecase.New(usecase.WithRepository(repo))
	cfg := setting.Default()

	for i := 0; i < 12; i++ {
		ctx := clock.With(context.Background(), func() time.Time { return base.Add(time.Duration(i) * time.Minute) })
		_, err := uc.HandleNotification(ctx, cfg, post.Notification{Title: "alert"})
		gt.NoError(t, err).Required()
	}

	posts, err := uc.ListRecentAlerts(context.Background(), 0)
	gt.NoError(t, err)
	gt.A(t, posts).Length(10)
	gt.Equal(t, posts[0].CreatedAt, base.Add(11*time.Minute))

	posts, err = uc.ListRecentAlerts(context.Background(), 3)
	gt.NoError(t, err)
	gt.A(t, posts).Length(3)
}

func TestSetupKeepsExistingCategory(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	gt.NoError(t, repo.PutCategory(ctx, post.Category{ID: 40, Name: "alert"}))

	uc := usecase.New(usecase.WithRepository(repo))
	gt.NoError(t, uc.Setup(ctx, []post.Category{{ID: 2, Name: "alertsu"}, {ID: 3, Name: "alert"}}, nil))

	alert, err := repo.GetCategoryByName(ctx, "alert")
	gt.NoError(t, err)
	gt.Equal(t, alert.ID, types.CategoryID(40))

	alertsu, err := repo.GetCategoryByName(ctx, "alertsu")
	gt.NoError(t, err)
	gt.Equal(t, alertsu.ID, types.CategoryID(2))
}
