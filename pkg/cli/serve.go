package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/secmon-lab/alertpost/pkg/cli/config"
	server "github.com/secmon-lab/alertpost/pkg/controller/http"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/repository"
	"github.com/secmon-lab/alertpost/pkg/usecase"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// generateBaseURL generates the public base URL from the server address
func generateBaseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		// This could be an address without a port, or just a port like ":8080".
		if strings.HasPrefix(addr, ":") {
			return fmt.Sprintf("http://localhost%s", addr)
		}
		return fmt.Sprintf("http://%s", addr)
	}

	// If host is empty (e.g. from ":8080"), "0.0.0.0", or "::" (unspecified IPv6), replace with localhost.
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	return fmt.Sprintf("http://%s", net.JoinHostPort(host, port))
}

// seedMemory registers the alert categories and a default author so that an
// in-memory server is usable right away.
func seedMemory(ctx context.Context, uc *usecase.UseCases) error {
	var categories []post.Category
	for i, name := range post.AlertCategoryNames() {
		categories = append(categories, post.Category{ID: types.CategoryID(i + 1), Name: name})
	}
	authors := []author.Author{
		{ID: types.DefaultAuthorID, DisplayName: "admin", Role: types.RoleAdministrator},
	}
	return uc.Setup(ctx, categories, authors)
}

func cmdServe() *cli.Command {
	var (
		addr      string
		baseURL   string
		adminCfg  config.Admin
		sentryCfg config.Sentry
		repoCfg   config.Repository
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("ALERTPOST_ADDR"),
				Usage:       "Listen address (default: 127.0.0.1:8080)",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "base-url",
				Sources:     cli.EnvVars("ALERTPOST_BASE_URL"),
				Usage:       "Public base URL shown on the settings page",
				Destination: &baseURL,
			},
		},
		adminCfg.Flags(),
		sentryCfg.Flags(),
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if baseURL == "" {
				baseURL = generateBaseURL(addr)
				logging.Default().Warn("Base URL is automatically set",
					"auto-generated-url", baseURL,
					"recommendation", "For production use, please explicitly set --base-url")
			}

			logging.Default().Info("starting server",
				"addr", addr,
				"base_url", baseURL,
				"admin", adminCfg,
				"sentry", sentryCfg,
				"repository", repoCfg,
			)

			adminCred, err := adminCfg.Configure()
			if err != nil {
				return err
			}

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			repo, err := repoCfg.ConfigureOrMemory(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(usecase.WithRepository(repo))
			if _, ok := repo.(*repository.Memory); ok {
				if err := seedMemory(ctx, uc); err != nil {
					return err
				}
			}

			serverOptions := []server.Options{
				server.WithBaseURL(baseURL),
			}
			if adminCred != nil {
				serverOptions = append(serverOptions, server.WithAdminCredentials(adminCred))
			} else {
				logging.Default().Warn("Settings pages are disabled",
					"recommendation", "Set --admin-user and --admin-password, or use the settings command")
			}

			return runServer(ctx, addr, server.New(uc, serverOptions...))
		},
	}
}

func runServer(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := httpServer.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	}
}
