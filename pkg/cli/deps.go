package cli

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/cli/config"
	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
	gitinfra "github.com/tugboatctl/tugboat/pkg/infra/git"
	githubinfra "github.com/tugboatctl/tugboat/pkg/infra/github"
	"github.com/tugboatctl/tugboat/pkg/infra/notify"
	"github.com/tugboatctl/tugboat/pkg/infra/toolchain"
	"github.com/tugboatctl/tugboat/pkg/usecase"
)

// phaseDeps is the collaborator set a phase command wires up. Each command
// constructs it fresh; nothing is shared between invocations.
type phaseDeps struct {
	resolver  interfaces.Resolver
	git       interfaces.GitClient
	host      interfaces.ReleaseHost
	toolchain interfaces.Toolchain
	notifier  interfaces.Notifier
	project   model.Project
	text      usecase.ReleaseText
}

func newPhaseDeps(
	projectCfg *config.Project,
	githubCfg *config.GitHub,
	releaseCfg *config.Release,
	slackCfg *config.Slack,
) (*phaseDeps, error) {
	project, err := projectCfg.Load()
	if err != nil {
		return nil, err
	}

	git := gitinfra.NewClient(project.RepoPath)

	host, err := githubinfra.NewClient(githubCfg.Token, releaseCfg.GitHubUser, project.Repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release host client")
	}

	var notifier interfaces.Notifier
	if slackCfg != nil && slackCfg.WebhookURL != "" {
		notifier = notify.NewSlack(slackCfg.WebhookURL, releaseCfg.DisplayName)
	}

	return &phaseDeps{
		resolver:  usecase.NewResolver(git, project.ReleaseRoot),
		git:       git,
		host:      host,
		toolchain: toolchain.NewMake(),
		notifier:  notifier,
		project:   project,
		text: usecase.ReleaseText{
			DisplayName: releaseCfg.DisplayName,
			Description: releaseCfg.Description,
		},
	}, nil
}

// requireToken guards the host-mutating commands; build runs without one.
func requireToken(githubCfg *config.GitHub) error {
	if githubCfg.Token == "" {
		return goerr.New("a GitHub token is required for this command",
			goerr.V("hint", "set TUGBOAT_GITHUB_TOKEN or pass --github-token"))
	}
	return nil
}
