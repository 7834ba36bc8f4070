package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relabel/pkg/domain/model"
)

func TestDefaultReleaseConfig(t *testing.T) {
	cfg := model.DefaultReleaseConfig()
	gt.NoError(t, cfg.Validate())

	sections := map[string]string{
		"feat":     "Features",
		"fix":      "Bug Fixes",
		"docs":     "Documentation",
		"chore":    "Other Changes",
		"style":    "Other Changes",
		"refactor": "Other Changes",
		"perf":     "Other Changes",
		"test":     "Other Changes",
	}
	for commitType, want := range sections {
		got, ok := cfg.Changelog.SectionFor(commitType)
		gt.True(t, ok)
		gt.String(t, got).Equal(want)
	}

	_, ok := cfg.Changelog.SectionFor("build")
	gt.False(t, ok)

	gt.A(t, cfg.Commitlint.Extends).Length(1)
	gt.String(t, cfg.Commitlint.Extends[0]).Equal("@commitlint/config-conventional")

	rule, ok := cfg.Commitlint.Rules["body-max-line-length"]
	gt.True(t, ok)
	gt.Value(t, rule.Level).Equal(model.RuleLevelError)
	gt.String(t, rule.Applicable).Equal("always")
	gt.Value(t, rule.Value).Equal(any(200))
}

func TestDefaultReleaseConfig_Independent(t *testing.T) {
	a := model.DefaultReleaseConfig()
	a.Changelog.Types[0].Section = "Changed"
	a.Commitlint.Rules["header-max-length"] = model.LintRule{Level: 1, Applicable: "always", Value: 72}

	b := model.DefaultReleaseConfig()
	gt.String(t, b.Changelog.Types[0].Section).Equal("Features")
	_, ok := b.Commitlint.Rules["header-max-length"]
	gt.False(t, ok)
}

func TestLintRule_MarshalJSON(t *testing.T) {
	cfg := model.DefaultReleaseConfig()
	raw, err := json.Marshal(cfg.Commitlint)
	gt.NoError(t, err)
	gt.String(t, string(raw)).Equal(`{"extends":["@commitlint/config-conventional"],"rules":{"body-max-line-length":[2,"always",200]}}`)

	noValue, err := json.Marshal(model.LintRule{Level: model.RuleLevelDisabled, Applicable: "never"})
	gt.NoError(t, err)
	gt.String(t, string(noValue)).Equal(`[0,"never"]`)

	disabled, err := json.Marshal(model.LintRule{Level: model.RuleLevelDisabled})
	gt.NoError(t, err)
	gt.String(t, string(disabled)).Equal(`[0]`)
}

func TestChangelogPreset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		types   []model.ChangelogType
		wantErr bool
	}{
		{
			name:  "valid",
			types: []model.ChangelogType{{Type: "feat", Section: "Features"}},
		},
		{
			name:    "empty list",
			types:   nil,
			wantErr: true,
		},
		{
			name:    "empty type",
			types:   []model.ChangelogType{{Type: "", Section: "Features"}},
			wantErr: true,
		},
		{
			name:    "empty section",
			types:   []model.ChangelogType{{Type: "feat", Section: ""}},
			wantErr: true,
		},
		{
			name: "duplicated type",
			types: []model.ChangelogType{
				{Type: "feat", Section: "Features"},
				{Type: "feat", Section: "New"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.ChangelogPreset{Types: tt.types}
			err := p.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestCommitlintConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rules   map[string]model.LintRule
		wantErr bool
	}{
		{
			name:  "no rules",
			rules: nil,
		},
		{
			name:  "warning never",
			rules: map[string]model.LintRule{"subject-case": {Level: 1, Applicable: "never", Value: []string{"upper-case"}}},
		},
		{
			name:    "level out of range",
			rules:   map[string]model.LintRule{"body-max-line-length": {Level: 3, Applicable: "always", Value: 200}},
			wantErr: true,
		},
		{
			name:    "negative level",
			rules:   map[string]model.LintRule{"body-max-line-length": {Level: -1, Applicable: "always"}},
			wantErr: true,
		},
		{
			name:  "disabled without applicable",
			rules: map[string]model.LintRule{"body-max-line-length": {Level: 0}},
		},
		{
			name:    "enabled without applicable",
			rules:   map[string]model.LintRule{"body-max-line-length": {Level: 2}},
			wantErr: true,
		},
		{
			name:    "disabled with unknown applicable",
			rules:   map[string]model.LintRule{"body-max-line-length": {Level: 0, Applicable: "sometimes"}},
			wantErr: true,
		},
		{
			name:    "unknown applicable",
			rules:   map[string]model.LintRule{"body-max-line-length": {Level: 2, Applicable: "sometimes"}},
			wantErr: true,
		},
		{
			name:    "empty rule name",
			rules:   map[string]model.LintRule{"": {Level: 2, Applicable: "always"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &model.CommitlintConfig{Rules: tt.rules}
			err := c.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
