package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/cli"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/repository"
	"github.com/secmon-lab/alertpost/pkg/usecase"
)

func TestGenerateBaseURL(t *testing.T) {
	testCases := []struct {
		addr     string
		expected string
	}{
		{addr: "127.0.0.1:8080", expected: "http://127.0.0.1:8080"},
		{addr: ":8080", expected: "http://localhost:8080"},
		{addr: "0.0.0.0:9000", expected: "http://localhost:9000"},
		{addr: "[::]:8080", expected: "http://localhost:8080"},
		{addr: "example.com", expected: "http://example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.addr, func(t *testing.T) {
			gt.Equal(t, cli.GenerateBaseURL(tc.addr), tc.expected)
		})
	}
}

func TestServeCommand_AdminValidation(t *testing.T) {
	ctx := context.Background()

	err := cli.Run(ctx, []string{
		"alertpost", "serve",
		"--admin-user", "admin",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("admin-password")
}

func TestSeedMemory(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.New(usecase.WithRepository(repo))

	gt.NoError(t, cli.SeedMemory(ctx, uc)).Required()

	for _, name := range post.AlertCategoryNames() {
		category, err := repo.GetCategoryByName(ctx, name)
		gt.NoError(t, err)
		gt.NotNil(t, category)
		gt.V(t, category.ID).NotEqual(types.CategoryNotFound)
	}

	authors, err := uc.ListEligibleAuthors(ctx)
	gt.NoError(t, err)
	gt.A(t, authors).Length(1)
	gt.Equal(t, authors[0].ID, types.DefaultAuthorID)
}
