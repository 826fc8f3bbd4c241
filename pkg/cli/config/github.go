package config

import "github.com/urfave/cli/v3"

// GitHub holds release-hosting credentials
type GitHub struct {
	Token string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token with release permissions",
			Destination: &c.Token,
			Sources:     cli.EnvVars("TUGBOAT_GITHUB_TOKEN"),
		},
	}
}
