package config

import (
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Ref holds the ref a command resolves labels for
type Ref struct {
	Value string
}

// Flags returns CLI flags for the current ref. GITHUB_REF wins over
// RELABEL_REF; when neither is set the ref is empty and treated as non-release.
func (c *Ref) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Git ref of the current build, e.g. refs/heads/master",
			Destination: &c.Value,
			Sources:     cli.EnvVars("GITHUB_REF", "RELABEL_REF"),
		},
	}
}

// RefContext returns the configured ref as-is
func (c *Ref) RefContext() model.RefContext {
	return model.RefContext(c.Value)
}

// Release holds the release config file location
type Release struct {
	ConfigPath string
}

// Flags returns CLI flags for release config
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file overriding the changelog and commitlint presets",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("RELABEL_CONFIG"),
		},
	}
}
