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

func cmdPublish() *cli.Command {
	var (
		projectCfg config.Project
		githubCfg  config.GitHub
		releaseCfg config.Release
		slackCfg   config.Slack
	)

	flags := append(projectCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:  "publish",
		Usage: "Promote the draft to public and push images; non-prerelease also re-points latest",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := noArgs(c); err != nil {
				return err
			}
			if err := requireToken(&githubCfg); err != nil {
				return err
			}

			deps, err := newPhaseDeps(&projectCfg, &githubCfg, &releaseCfg, &slackCfg)
			if err != nil {
				return err
			}

			uc := usecase.NewPublish(
				deps.resolver, deps.git, deps.host, deps.toolchain, deps.notifier,
				deps.project, deps.text,
				model.PublishParams{
					RegistryUser: releaseCfg.RegistryUser,
					SudoPrefix:   releaseCfg.SudoPrefix,
				})

			rel, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Release published",
				slog.String("tag", rel.Tag),
				slog.String("kind", string(rel.Kind)),
				slog.String("version", rel.Version),
			)
			return nil
		},
	}
}
