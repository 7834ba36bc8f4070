package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/relabel/pkg/cli/config"
	"github.com/m-mizutani/relabel/pkg/domain/types"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return newApp(os.Stdout).Run(ctx, args)
}

// app keeps state shared by the root command and its subcommands
type app struct {
	loggerCfg config.Logger
	sentryCfg config.Sentry
	logger    *slog.Logger
	stdout    io.Writer
}

func newApp(stdout io.Writer) *app {
	return &app{stdout: stdout}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    types.ServiceName,
		Usage:   "Pre-release label resolver for release pipelines",
		Version: types.Version,
		Flags:   append(a.loggerCfg.Flags(), a.sentryCfg.Flags()...),
		Writer:  a.stdout,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			a.logger, err = a.loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(a.logger)
			ctx = logging.With(ctx, a.logger)

			if err := a.sentryCfg.Configure(); err != nil {
				return nil, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdVersion(a.stdout),
			cmdTag(a.stdout),
			cmdChannel(a.stdout),
			cmdConfig(a.stdout),
			cmdServe(),
		},
	}
}

// Run executes args and logs and reports a failure once
func (a *app) Run(ctx context.Context, args []string) error {
	if err := a.command().Run(ctx, args); err != nil {
		logger := a.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		a.sentryCfg.Report(err)
		return err
	}

	return nil
}
