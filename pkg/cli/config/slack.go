package config

import "github.com/urfave/cli/v3"

// Slack holds the optional announcement channel configuration
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook",
			Usage:       "Slack incoming webhook for release announcements (disabled when empty)",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("TUGBOAT_SLACK_WEBHOOK"),
		},
	}
}
