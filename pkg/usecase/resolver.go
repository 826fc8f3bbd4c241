package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
	"github.com/tugboatctl/tugboat/pkg/domain/types"
)

type resolver struct {
	git         interfaces.GitClient
	releaseRoot string
}

// NewResolver creates the resolver that derives release state from the
// tags at HEAD. Resolution is a read-only inspection with no side effects.
func NewResolver(git interfaces.GitClient, releaseRoot string) interfaces.Resolver {
	return &resolver{
		git:         git,
		releaseRoot: releaseRoot,
	}
}

// Resolve determines the single release-candidate tag at HEAD and
// classifies it. The floating latest_release marker never counts as a
// candidate.
func (r *resolver) Resolve(ctx context.Context) (*model.ResolvedRelease, error) {
	logger := ctxlog.From(ctx)

	tags, err := r.git.TagsPointingAtHead(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tags at HEAD")
	}

	var candidates []model.TagRef
	markerAtHead := false
	for _, tag := range tags {
		if tag.Name == model.LatestMarkerTag {
			markerAtHead = true
			continue
		}
		candidates = append(candidates, tag)
	}

	switch len(candidates) {
	case 0:
		if markerAtHead {
			return nil, goerr.Wrap(types.ErrAmbiguousVersion,
				"no release tag at HEAD, only the floating marker",
				goerr.V("marker", model.LatestMarkerTag),
				goerr.V("hint", "check out the commit of the version you want to release"),
			)
		}
		return nil, goerr.Wrap(types.ErrNoVersionTag,
			"HEAD carries no annotated tag",
			goerr.V("hint", "tag the release commit first: git tag -a v<major>.<minor>.<patch>"),
		)

	case 1:
		rel := model.NewResolvedRelease(candidates[0], r.releaseRoot)
		logger.Info("Resolved release candidate",
			"tag", rel.Tag,
			"kind", rel.Kind,
			"version", rel.Version,
			"commit", rel.CommitID,
			"build_dir", rel.BuildDir,
		)
		return rel, nil

	default:
		names := make([]string, 0, len(candidates))
		for _, tag := range candidates {
			names = append(names, tag.Name)
		}
		return nil, goerr.Wrap(types.ErrAmbiguousVersion,
			"multiple release tags point at HEAD",
			goerr.V("tags", strings.Join(names, ", ")),
			goerr.V("hint", "remove the tags that should not be released"),
		)
	}
}
