package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub webhook configuration. The webhook endpoint is only
// served when a secret is set.
type GitHub struct {
	WebhookSecret string `masq:"secret"`
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret, enables POST /hooks/github",
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("RELABEL_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

// Enabled reports whether the webhook endpoint should be served
func (c *GitHub) Enabled() bool {
	return c.WebhookSecret != ""
}
