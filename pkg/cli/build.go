package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/tugboatctl/tugboat/pkg/cli/config"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
	"github.com/tugboatctl/tugboat/pkg/usecase"
)

func cmdBuild() *cli.Command {
	var (
		projectCfg config.Project
		githubCfg  config.GitHub
		releaseCfg config.Release
	)

	flags := append(projectCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)

	return &cli.Command{
		Name:  "build",
		Usage: "Check out the candidate tag, build, test, and verify the artifacts",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := noArgs(c); err != nil {
				return err
			}

			deps, err := newPhaseDeps(&projectCfg, &githubCfg, &releaseCfg, nil)
			if err != nil {
				return err
			}

			uc := usecase.NewBuild(deps.resolver, deps.git, deps.toolchain, deps.project,
				model.BuildParams{
					RegistryUser: releaseCfg.RegistryUser,
					SudoPrefix:   releaseCfg.SudoPrefix,
				})

			rel, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Build ready for draft",
				slog.String("tag", rel.Tag),
				slog.String("dir", rel.BuildDir),
			)
			return nil
		},
	}
}
