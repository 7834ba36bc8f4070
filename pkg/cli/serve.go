package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/cli/config"
	controller "github.com/m-mizutani/relabel/pkg/controller/http"
	"github.com/m-mizutani/relabel/pkg/domain/interfaces"
	"github.com/m-mizutani/relabel/pkg/usecase"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		githubCfg  config.GitHub
		releaseCfg config.Release
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			logger.Info("Starting relabel server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("github", githubCfg),
				slog.String("config", releaseCfg.ConfigPath),
			)

			releaseConfig, err := usecase.NewConfig().Load(ctx, releaseCfg.ConfigPath)
			if err != nil {
				return err
			}

			// Create use cases
			var webhookUC interfaces.WebhookUseCase
			if githubCfg.Enabled() {
				webhookUC = usecase.NewWebhook()
			} else {
				logger.Info("GitHub webhook disabled, no secret configured")
			}

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				webhookUC,
				usecase.NewLabel(),
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
				controller.WithReleaseConfig(releaseConfig),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
