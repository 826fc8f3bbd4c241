package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

// Project holds the path of the per-project release configuration file.
type Project struct {
	ConfigPath string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Project release configuration file (TOML)",
			Value:       "release.toml",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("TUGBOAT_CONFIG"),
		},
	}
}

// Load reads the TOML project file over the built-in defaults. A missing
// file at the default path is fine; an explicitly configured path must
// exist.
func (c *Project) Load() (model.Project, error) {
	project := model.DefaultProject()

	data, err := os.ReadFile(c.ConfigPath)
	if os.IsNotExist(err) {
		return project, nil
	}
	if err != nil {
		return project, goerr.Wrap(err, "failed to read project config", goerr.V("path", c.ConfigPath))
	}

	if err := toml.Unmarshal(data, &project); err != nil {
		return project, goerr.Wrap(err, "failed to parse project config", goerr.V("path", c.ConfigPath))
	}
	return project, nil
}
