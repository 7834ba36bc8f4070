package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// ReleaseConfig bundles the static configuration handed to external release tools
type ReleaseConfig struct {
	Changelog  ChangelogPreset  `json:"changelog" yaml:"changelog" toml:"changelog"`
	Commitlint CommitlintConfig `json:"commitlint" yaml:"commitlint" toml:"commitlint"`
}

// Validate checks both halves of the config
func (c *ReleaseConfig) Validate() error {
	if err := c.Changelog.Validate(); err != nil {
		return goerr.Wrap(err, "invalid changelog preset")
	}
	if err := c.Commitlint.Validate(); err != nil {
		return goerr.Wrap(err, "invalid commitlint config")
	}
	return nil
}

// ChangelogPreset maps conventional commit types to changelog sections.
// It is the "types" option of conventional-changelog-conventionalcommits.
type ChangelogPreset struct {
	Types []ChangelogType `json:"types" yaml:"types" toml:"types"`
}

// ChangelogType is one commit type entry of a changelog preset
type ChangelogType struct {
	Type    string `json:"type" yaml:"type" toml:"type"`
	Section string `json:"section" yaml:"section" toml:"section"`
	Hidden  bool   `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// SectionFor returns the changelog section title for a commit type
func (p *ChangelogPreset) SectionFor(commitType string) (string, bool) {
	for _, t := range p.Types {
		if t.Type == commitType {
			return t.Section, true
		}
	}
	return "", false
}

// Validate rejects empty entries and duplicated commit types
func (p *ChangelogPreset) Validate() error {
	if len(p.Types) == 0 {
		return goerr.New("changelog preset has no types")
	}

	seen := make(map[string]struct{}, len(p.Types))
	for i, t := range p.Types {
		if t.Type == "" {
			return goerr.New("commit type is empty", goerr.V("index", i))
		}
		if t.Section == "" {
			return goerr.New("changelog section is empty", goerr.V("type", t.Type))
		}
		if _, ok := seen[t.Type]; ok {
			return goerr.New("duplicated commit type", goerr.V("type", t.Type))
		}
		seen[t.Type] = struct{}{}
	}
	return nil
}

// RuleLevel is the commitlint severity of a rule
type RuleLevel int

const (
	RuleLevelDisabled RuleLevel = 0
	RuleLevelWarning  RuleLevel = 1
	RuleLevelError    RuleLevel = 2
)

// CommitlintConfig is a commit-message lint rule set extending shared presets
type CommitlintConfig struct {
	Extends []string            `json:"extends" yaml:"extends" toml:"extends"`
	Rules   map[string]LintRule `json:"rules" yaml:"rules" toml:"rules"`
}

// LintRule is a commitlint rule. It is written as a table in TOML and as
// commitlint's [level, applicable, value] tuple in JSON and YAML.
// A disabled rule may omit applicable, which renders as [0].
type LintRule struct {
	Level      RuleLevel `toml:"level"`
	Applicable string    `toml:"applicable,omitempty"`
	Value      any       `toml:"value,omitempty"`
}

func (r LintRule) tuple() []any {
	t := []any{int(r.Level)}
	if r.Applicable == "" && r.Value == nil {
		return t
	}
	t = append(t, r.Applicable)
	if r.Value != nil {
		t = append(t, r.Value)
	}
	return t
}

// MarshalJSON implements json.Marshaler
func (r LintRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.tuple())
}

// MarshalYAML implements yaml.Marshaler
func (r LintRule) MarshalYAML() (any, error) {
	return r.tuple(), nil
}

// Validate checks level, applicability and rule names
func (c *CommitlintConfig) Validate() error {
	for name, rule := range c.Rules {
		if name == "" {
			return goerr.New("rule name is empty")
		}
		if rule.Level < RuleLevelDisabled || rule.Level > RuleLevelError {
			return goerr.New("rule level must be 0, 1 or 2",
				goerr.V("rule", name),
				goerr.V("level", rule.Level))
		}
		if rule.Applicable == "" && rule.Level == RuleLevelDisabled {
			continue
		}
		if rule.Applicable != "always" && rule.Applicable != "never" {
			return goerr.New("rule applicable must be always or never",
				goerr.V("rule", name),
				goerr.V("applicable", rule.Applicable))
		}
	}
	return nil
}

// DefaultReleaseConfig returns the preset shipped with relabel
func DefaultReleaseConfig() *ReleaseConfig {
	return &ReleaseConfig{
		Changelog: ChangelogPreset{
			Types: []ChangelogType{
				{Type: "feat", Section: "Features"},
				{Type: "fix", Section: "Bug Fixes"},
				{Type: "docs", Section: "Documentation"},
				{Type: "chore", Section: "Other Changes"},
				{Type: "style", Section: "Other Changes"},
				{Type: "refactor", Section: "Other Changes"},
				{Type: "perf", Section: "Other Changes"},
				{Type: "test", Section: "Other Changes"},
			},
		},
		Commitlint: CommitlintConfig{
			Extends: []string{"@commitlint/config-conventional"},
			Rules: map[string]LintRule{
				// overrides config-conventional's limit of 100
				"body-max-line-length": {Level: RuleLevelError, Applicable: "always", Value: 200},
			},
		},
	}
}

// Format is an output encoding of the release config
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists supported output formats
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}
