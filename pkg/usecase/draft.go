package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
	"github.com/tugboatctl/tugboat/pkg/domain/types"
)

// ReleaseText is the operator-configurable naming of hosted releases.
type ReleaseText struct {
	// DisplayName prefixes the release title, e.g. "Tugboat 3.0.0".
	DisplayName string
	// Description is the release body for versioned releases.
	Description string
}

type draftUseCase struct {
	resolver interfaces.Resolver
	host     interfaces.ReleaseHost
	project  model.Project
	text     ReleaseText
}

// NewDraft creates the draft phase.
func NewDraft(
	resolver interfaces.Resolver,
	host interfaces.ReleaseHost,
	project model.Project,
	text ReleaseText,
) interfaces.DraftUseCase {
	return &draftUseCase{
		resolver: resolver,
		host:     host,
		project:  project,
		text:     text,
	}
}

// Run validates the candidate tag is pushed and unreleased, then creates a
// draft release record and uploads the artifacts. All sanity checks run
// before the first host mutation; a partial asset upload after creation is
// not rolled back and must be resolved by the operator.
func (uc *draftUseCase) Run(ctx context.Context) (*model.ResolvedRelease, error) {
	logger := ctxlog.From(ctx)

	rel, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(rel.BuildDir); err != nil {
		return nil, goerr.Wrap(err, "build directory not found, run build first",
			goerr.V("dir", rel.BuildDir))
	}

	if err := uc.checkTagPushed(ctx, rel); err != nil {
		return nil, err
	}

	existing, err := uc.host.GetReleaseByTag(ctx, rel.Tag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query hosted release", goerr.V("tag", rel.Tag))
	}
	if existing != nil {
		return nil, goerr.Wrap(types.ErrReleaseAlreadyExists,
			"refusing to draft over an existing release",
			goerr.V("tag", rel.Tag),
			goerr.V("url", existing.HTMLURL),
		)
	}

	req := &model.ReleaseRequest{
		TagName:    rel.Tag,
		Name:       fmt.Sprintf("%s %s", uc.text.DisplayName, rel.Version),
		Body:       uc.text.Description,
		Draft:      true,
		Prerelease: rel.Kind == model.KindPrerelease,
	}

	logger.Info("Creating draft release", "tag", rel.Tag, "prerelease", req.Prerelease)
	created, err := uc.host.CreateRelease(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create draft release", goerr.V("tag", rel.Tag))
	}

	for _, asset := range uc.project.AssetPaths(rel.BuildDir) {
		logger.Info("Uploading asset", "name", asset.Name, "path", asset.Path)
		if err := uc.host.UploadAsset(ctx, created.ID, asset.Name, asset.Path); err != nil {
			return nil, goerr.Wrap(err, "failed to upload release asset",
				goerr.V("asset", asset.Name),
				goerr.V("hint", "delete the draft on the host and re-run draft"),
			)
		}
	}

	logger.Info("Draft phase complete", "tag", rel.Tag, "release_id", created.ID)
	return rel, nil
}

// checkTagPushed confirms the remote host sees the candidate tag under the
// same tag object id as the local repository.
func (uc *draftUseCase) checkTagPushed(ctx context.Context, rel *model.ResolvedRelease) error {
	remoteSHA, err := uc.host.RemoteTagObjectSHA(ctx, rel.Tag)
	if err != nil {
		return goerr.Wrap(err, "failed to query remote tag", goerr.V("tag", rel.Tag))
	}
	if remoteSHA != rel.TagObjectID {
		return goerr.Wrap(types.ErrTagNotPushed,
			"remote host does not have this tag object",
			goerr.V("tag", rel.Tag),
			goerr.V("local", rel.TagObjectID),
			goerr.V("remote", remoteSHA),
			goerr.V("hint", fmt.Sprintf("push the tag first: git push origin %s", rel.Tag)),
		)
	}
	return nil
}
