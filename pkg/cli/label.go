package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/cli/config"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdVersion(w io.Writer) *cli.Command {
	return cmdLabel(w, model.LabelKindVersion, "Print the semantic version to publish for the current ref")
}

func cmdTag(w io.Writer) *cli.Command {
	return cmdLabel(w, model.LabelKindTag, "Print the git tag name to create for the current ref")
}

func cmdLabel(w io.Writer, kind model.LabelKind, usage string) *cli.Command {
	var refCfg config.Ref

	return &cli.Command{
		Name:      string(kind),
		Usage:     usage,
		ArgsUsage: "<candidate>",
		Flags:     refCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one candidate is required", goerr.V("kind", kind), goerr.V("args", c.Args().Len()))
			}

			result, err := usecase.NewLabel().Resolve(ctx, kind, c.Args().First(), refCfg.RefContext())
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(w, result.Label); err != nil {
				return goerr.Wrap(err, "failed to write label")
			}
			return nil
		},
	}
}

func cmdChannel(w io.Writer) *cli.Command {
	var refCfg config.Ref

	return &cli.Command{
		Name:  "channel",
		Usage: "Print the release channel (release or beta) of the current ref",
		Flags: refCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			channel := refCfg.RefContext().Channel()

			printer := color.New(color.FgYellow)
			if channel == model.ChannelRelease {
				printer = color.New(color.FgGreen, color.Bold)
			}

			if _, err := printer.Fprintln(w, channel); err != nil {
				return goerr.Wrap(err, "failed to write channel")
			}
			return nil
		},
	}
}
