package cli

import (
	"context"
	"io"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/cli/config"
	"github.com/m-mizutani/relabel/pkg/domain/interfaces"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdConfig(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print static configuration for external release tools",
		Commands: []*cli.Command{
			cmdConfigPart(w, "changelog", "Print the conventional-changelog preset", func(cfg *model.ReleaseConfig) any {
				return cfg.Changelog
			}),
			cmdConfigPart(w, "commitlint", "Print the commitlint configuration", func(cfg *model.ReleaseConfig) any {
				return cfg.Commitlint
			}),
		},
	}
}

func cmdConfigPart(w io.Writer, name, usage string, pick func(cfg *model.ReleaseConfig) any) *cli.Command {
	var (
		releaseCfg config.Release
		format     string
	)

	flags := append(releaseCfg.Flags(), &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "Output format (json, yaml, toml)",
		Value:       string(model.FormatJSON),
		Destination: &format,
	})

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !slices.Contains(model.Formats(), model.Format(format)) {
				return goerr.New("unsupported format", goerr.V("format", format))
			}

			var uc interfaces.ConfigUseCase = usecase.NewConfig()
			cfg, err := uc.Load(ctx, releaseCfg.ConfigPath)
			if err != nil {
				return err
			}

			return uc.Render(w, pick(cfg), model.Format(format))
		},
	}
}
