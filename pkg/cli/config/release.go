package config

import "github.com/urfave/cli/v3"

// Release holds the operator-tunable release parameters. Every field has
// a default and an environment override.
type Release struct {
	GitHubUser   string
	RegistryUser string
	DisplayName  string
	Description  string
	SudoPrefix   string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-user",
			Usage:       "Hosting namespace the release is published under",
			Value:       "tugboatctl",
			Destination: &c.GitHubUser,
			Sources:     cli.EnvVars("TUGBOAT_GITHUB_USER"),
		},
		&cli.StringFlag{
			Name:        "registry-user",
			Usage:       "Container registry user for image naming",
			Value:       "tugboatctl",
			Destination: &c.RegistryUser,
			Sources:     cli.EnvVars("TUGBOAT_REGISTRY_USER"),
		},
		&cli.StringFlag{
			Name:        "release-name",
			Usage:       "Display name prefixing hosted release titles",
			Value:       "Tugboat",
			Destination: &c.DisplayName,
			Sources:     cli.EnvVars("TUGBOAT_RELEASE_NAME"),
		},
		&cli.StringFlag{
			Name:        "release-description",
			Usage:       "Body text of the hosted release record",
			Value:       "See the changelog for what changed in this release.",
			Destination: &c.Description,
			Sources:     cli.EnvVars("TUGBOAT_RELEASE_DESCRIPTION"),
		},
		&cli.StringFlag{
			Name:        "sudo",
			Usage:       "Privilege-escalation prefix passed to the build toolchain",
			Value:       "",
			Destination: &c.SudoPrefix,
			Sources:     cli.EnvVars("TUGBOAT_SUDO"),
		},
	}
}
