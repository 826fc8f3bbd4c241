package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/tugboatctl/tugboat/pkg/cli/config"
	"github.com/tugboatctl/tugboat/pkg/usecase"
)

func cmdDraft() *cli.Command {
	var (
		projectCfg config.Project
		githubCfg  config.GitHub
		releaseCfg config.Release
	)

	flags := append(projectCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)

	return &cli.Command{
		Name:  "draft",
		Usage: "Create the draft release record and upload the built artifacts",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := noArgs(c); err != nil {
				return err
			}
			if err := requireToken(&githubCfg); err != nil {
				return err
			}

			deps, err := newPhaseDeps(&projectCfg, &githubCfg, &releaseCfg, nil)
			if err != nil {
				return err
			}

			uc := usecase.NewDraft(deps.resolver, deps.host, deps.project, deps.text)
			rel, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Draft release created",
				slog.String("tag", rel.Tag),
				slog.String("kind", string(rel.Kind)),
			)
			return nil
		},
	}
}
