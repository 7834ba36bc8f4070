package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
)

// runApp runs the CLI with logs silenced and returns stdout
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GITHUB_REF", "")
	t.Setenv("RELABEL_REF", "")
	t.Setenv("RELABEL_CONFIG", "")
	t.Setenv("RELABEL_SENTRY_DSN", "")

	var stdout bytes.Buffer
	a := newApp(&stdout)
	a.loggerCfg.Output = &bytes.Buffer{}

	err := a.Run(context.Background(), append([]string{"relabel", "--log-level", "error"}, args...))
	return stdout.String(), err
}

func TestLabelCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "version on master",
			args: []string{"version", "--ref", "refs/heads/master", "1.2.3"},
			want: "1.2.3",
		},
		{
			name: "version on develop",
			args: []string{"version", "--ref", "refs/heads/develop", "1.2.3"},
			want: "1.2.3-beta",
		},
		{
			name: "version without ref",
			args: []string{"version", "1.2.3"},
			want: "1.2.3-beta",
		},
		{
			name: "tag on master",
			args: []string{"tag", "--ref", "refs/heads/master", "v1.2.3"},
			want: "v1.2.3",
		},
		{
			name: "tag on pull request",
			args: []string{"tag", "--ref", "refs/pull/42/merge", "v1.2.3"},
			want: "v1.2.3-beta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			gt.NoError(t, err)
			gt.String(t, out).Equal(tt.want + "\n")
		})
	}
}

func TestLabelCommands_RefFromEnvironment(t *testing.T) {
	var stdout bytes.Buffer
	t.Setenv("RELABEL_REF", "")
	t.Setenv("GITHUB_REF", "refs/heads/master")

	a := newApp(&stdout)
	a.loggerCfg.Output = &bytes.Buffer{}

	gt.NoError(t, a.Run(context.Background(), []string{"relabel", "version", "2.0.0"}))
	gt.String(t, stdout.String()).Equal("2.0.0\n")

	stdout.Reset()
	t.Setenv("GITHUB_REF", "refs/heads/develop")
	a = newApp(&stdout)
	a.loggerCfg.Output = &bytes.Buffer{}

	gt.NoError(t, a.Run(context.Background(), []string{"relabel", "tag", "v2.0.0"}))
	gt.String(t, stdout.String()).Equal("v2.0.0-beta\n")
}

func TestLabelCommands_MissingCandidate(t *testing.T) {
	_, err := runApp(t, "version")
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("exactly one candidate is required")

	_, err = runApp(t, "tag", "a", "b")
	gt.Error(t, err)
}

func TestChannelCommand(t *testing.T) {
	out, err := runApp(t, "channel", "--ref", "refs/heads/master")
	gt.NoError(t, err)
	gt.String(t, out).Contains("release")

	out, err = runApp(t, "channel")
	gt.NoError(t, err)
	gt.String(t, out).Contains("beta")
}

func TestConfigCommands(t *testing.T) {
	t.Run("changelog json", func(t *testing.T) {
		out, err := runApp(t, "config", "changelog")
		gt.NoError(t, err)

		var preset struct {
			Types []struct {
				Type    string `json:"type"`
				Section string `json:"section"`
			} `json:"types"`
		}
		gt.NoError(t, json.Unmarshal([]byte(out), &preset))
		gt.A(t, preset.Types).Length(8)
		gt.String(t, preset.Types[1].Section).Equal("Bug Fixes")
	})

	t.Run("commitlint yaml", func(t *testing.T) {
		out, err := runApp(t, "config", "commitlint", "--format", "yaml")
		gt.NoError(t, err)
		gt.String(t, out).Contains("body-max-line-length")
		gt.String(t, out).Contains("@commitlint/config-conventional")
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "relabel.toml")
		gt.NoError(t, os.WriteFile(path, []byte("[[changelog.types]]\ntype = \"feat\"\nsection = \"Added\"\n"), 0600))

		out, err := runApp(t, "config", "changelog", "--config", path, "--format", "toml")
		gt.NoError(t, err)
		gt.String(t, out).Contains("Added")
		gt.False(t, strings.Contains(out, "Bug Fixes"))
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := runApp(t, "config", "changelog", "--format", "xml")
		gt.Error(t, err)
	})

	t.Run("invalid override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "relabel.toml")
		gt.NoError(t, os.WriteFile(path, []byte("[unknown]\n"), 0600))

		_, err := runApp(t, "config", "commitlint", "--config", path)
		gt.Error(t, err)
	})
}

func TestInvalidLogLevel(t *testing.T) {
	var stdout bytes.Buffer
	a := newApp(&stdout)
	a.loggerCfg.Output = &bytes.Buffer{}

	err := a.Run(context.Background(), []string{"relabel", "--log-level", "verbose", "channel"})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("invalid log level")
}
