package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/alertpost/pkg/cli/config"
	"github.com/secmon-lab/alertpost/pkg/repository"
)

func TestRepository_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing configured", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("", "").Configure(ctx)
		gt.Error(t, err)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alertpost.db")
		repo, err := config.NewRepositoryForTest("", path).Configure(ctx)
		gt.NoError(t, err).Required()
		defer func() { _ = repo.Close() }()

		_, ok := repo.(*repository.SQLite)
		gt.True(t, ok)
	})
}

func TestRepository_ConfigureOrMemory(t *testing.T) {
	repo, err := config.NewRepositoryForTest("", "").ConfigureOrMemory(context.Background())
	gt.NoError(t, err)
	_, ok := repo.(*repository.Memory)
	gt.True(t, ok)
}
