package config

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/interfaces"
	"github.com/secmon-lab/alertpost/pkg/repository"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository selects the host store: Firestore when a project is given,
// otherwise SQLite when a path is given.
type Repository struct {
	firestore Firestore
	sqlite    SQLite
}

// ClosableRepository is a repository holding a connection.
type ClosableRepository interface {
	interfaces.Repository
	io.Closer
}

func (x *Repository) Flags() []cli.Flag {
	return append(x.firestore.Flags(), x.sqlite.Flags()...)
}

func (x Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("firestore", x.firestore),
		slog.Any("sqlite", x.sqlite),
	)
}

// Configure returns the persistent repository. It fails when neither
// Firestore nor SQLite is configured.
func (x *Repository) Configure(ctx context.Context) (ClosableRepository, error) {
	switch {
	case x.firestore.IsConfigured():
		repo, err := x.firestore.Configure(ctx)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case x.sqlite.IsConfigured():
		repo, err := x.sqlite.Configure()
		if err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return nil, goerr.New("either firestore-project-id or sqlite-path is required")
	}
}

// ConfigureOrMemory is Configure falling back to an in-memory repository,
// which loses everything on exit.
func (x *Repository) ConfigureOrMemory(ctx context.Context) (interfaces.Repository, error) {
	if !x.firestore.IsConfigured() && !x.sqlite.IsConfigured() {
		logging.Default().Warn("No persistent repository is configured, using in-memory repository")
		return repository.NewMemory(), nil
	}
	return x.Configure(ctx)
}
