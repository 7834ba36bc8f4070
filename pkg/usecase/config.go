package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"maps"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/domain/interfaces"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Render for an unknown output format
var ErrUnsupportedFormat = goerr.New("unsupported format")

// configFile is the TOML layout of a release config override file
type configFile struct {
	Changelog struct {
		Types []model.ChangelogType `toml:"types"`
	} `toml:"changelog"`
	Commitlint struct {
		Extends []string                  `toml:"extends"`
		Rules   map[string]model.LintRule `toml:"rules"`
	} `toml:"commitlint"`
}

type configUseCase struct{}

var _ interfaces.ConfigUseCase = (*configUseCase)(nil)

// NewConfig creates a new instance of ConfigUseCase
func NewConfig() *configUseCase {
	return &configUseCase{}
}

// Load returns the default release config, overridden by the TOML file at path.
// Changelog types and commitlint extends replace the defaults when present,
// commitlint rules are merged by name on top of the default rules.
func (uc *configUseCase) Load(ctx context.Context, path string) (*model.ReleaseConfig, error) {
	cfg := model.DefaultReleaseConfig()
	if path == "" {
		return cfg, nil
	}

	logger := logging.From(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read release config", goerr.V("path", path))
	}

	var file configFile
	decoder := toml.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, goerr.Wrap(err, "failed to decode release config", goerr.V("path", path))
	}

	if len(file.Changelog.Types) > 0 {
		cfg.Changelog.Types = file.Changelog.Types
	}
	if len(file.Commitlint.Extends) > 0 {
		cfg.Commitlint.Extends = file.Commitlint.Extends
	}
	maps.Copy(cfg.Commitlint.Rules, file.Commitlint.Rules)

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "release config is invalid", goerr.V("path", path))
	}

	logger.Debug("Loaded release config",
		"path", path,
		"changelog_types", len(cfg.Changelog.Types),
		"commitlint_rules", len(cfg.Commitlint.Rules),
	)

	return cfg, nil
}

// Render writes v to w as JSON, YAML or TOML
func (uc *configUseCase) Render(w io.Writer, v any, format model.Format) error {
	switch format {
	case model.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return goerr.Wrap(err, "failed to encode JSON")
		}

	case model.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return goerr.Wrap(err, "failed to encode YAML")
		}
		if err := encoder.Close(); err != nil {
			return goerr.Wrap(err, "failed to flush YAML")
		}

	case model.FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return goerr.Wrap(err, "failed to encode TOML")
		}

	default:
		return goerr.Wrap(ErrUnsupportedFormat, "cannot render config", goerr.V("format", format))
	}

	return nil
}
