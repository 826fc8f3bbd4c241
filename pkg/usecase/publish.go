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

type publishUseCase struct {
	resolver  interfaces.Resolver
	git       interfaces.GitClient
	host      interfaces.ReleaseHost
	toolchain interfaces.Toolchain
	notifier  interfaces.Notifier
	project   model.Project
	text      ReleaseText
	params    model.PublishParams
}

// NewPublish creates the publish phase. notifier may be nil when no
// announcement channel is configured. params.Version, UpdateLatest and
// PublishVersionDB are derived per run from the resolved release.
func NewPublish(
	resolver interfaces.Resolver,
	git interfaces.GitClient,
	host interfaces.ReleaseHost,
	toolchain interfaces.Toolchain,
	notifier interfaces.Notifier,
	project model.Project,
	text ReleaseText,
	params model.PublishParams,
) interfaces.PublishUseCase {
	return &publishUseCase{
		resolver:  resolver,
		git:       git,
		host:      host,
		toolchain: toolchain,
		notifier:  notifier,
		project:   project,
		text:      text,
		params:    params,
	}
}

// Run promotes the draft release to public. For mainline and branch
// releases it additionally validates the pre-moved latest_release marker
// and re-creates the marker's hosted release record.
func (uc *publishUseCase) Run(ctx context.Context) (*model.ResolvedRelease, error) {
	logger := ctxlog.From(ctx)

	rel, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(rel.BuildDir); err != nil {
		return nil, goerr.Wrap(err, "build directory not found, run build first",
			goerr.V("dir", rel.BuildDir))
	}

	draft, err := uc.host.GetReleaseByTag(ctx, rel.Tag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query hosted release", goerr.V("tag", rel.Tag))
	}
	if draft == nil {
		return nil, goerr.New("no draft release exists for this tag, run draft first",
			goerr.V("tag", rel.Tag))
	}

	if rel.Kind.UpdatesLatestMarker() {
		if err := uc.checkMarker(ctx, rel); err != nil {
			return nil, err
		}
	}

	params := uc.params
	params.Version = rel.Version
	params.UpdateLatest = rel.Kind.UpdatesLatestMarker()
	params.PublishVersionDB = rel.Kind == model.KindMainline

	logger.Info("Publishing images",
		"version", rel.Version,
		"update_latest", params.UpdateLatest,
		"publish_version_db", params.PublishVersionDB,
	)
	if err := uc.toolchain.Publish(ctx, rel.BuildDir, params); err != nil {
		return nil, goerr.Wrap(err, "image publish failed", goerr.V("version", rel.Version))
	}

	logger.Info("Publishing release record", "tag", rel.Tag, "release_id", draft.ID)
	if err := uc.host.PublishRelease(ctx, draft.ID); err != nil {
		return nil, goerr.Wrap(err, "failed to publish release record", goerr.V("tag", rel.Tag))
	}

	if rel.Kind.UpdatesLatestMarker() {
		if err := uc.republishMarkerRecord(ctx, rel); err != nil {
			return nil, err
		}
	}

	uc.announce(ctx, rel, draft.HTMLURL)

	logger.Info("Publish phase complete", "tag", rel.Tag, "kind", rel.Kind)
	return rel, nil
}

// checkMarker validates the operator already moved and pushed the
// latest_release marker to the release commit. Moving the marker is a
// deliberate human step; this phase only verifies it happened.
func (uc *publishUseCase) checkMarker(ctx context.Context, rel *model.ResolvedRelease) error {
	marker, err := uc.git.ResolveTag(ctx, model.LatestMarkerTag)
	if err != nil {
		return goerr.Wrap(types.ErrLatestMarkerStale,
			"could not resolve the latest_release marker locally",
			goerr.V("cause", err.Error()),
			goerr.V("hint", fmt.Sprintf("co-tag the release: git tag -af %s %s", model.LatestMarkerTag, rel.Tag)),
		)
	}
	if marker.CommitID != rel.CommitID {
		return goerr.Wrap(types.ErrLatestMarkerStale,
			"latest_release points at a different commit than the release tag",
			goerr.V("marker_commit", marker.CommitID),
			goerr.V("release_commit", rel.CommitID),
			goerr.V("hint", fmt.Sprintf("re-point it: git tag -af %s %s", model.LatestMarkerTag, rel.Tag)),
		)
	}

	remoteSHA, err := uc.host.RemoteTagObjectSHA(ctx, model.LatestMarkerTag)
	if err != nil {
		return goerr.Wrap(err, "failed to query remote marker tag")
	}
	if remoteSHA != marker.TagObjectID {
		return goerr.Wrap(types.ErrMarkerNotPushed,
			"remote host does not have the current marker object",
			goerr.V("local", marker.TagObjectID),
			goerr.V("remote", remoteSHA),
			goerr.V("hint", fmt.Sprintf("push it: git push -f origin %s", model.LatestMarkerTag)),
		)
	}
	return nil
}

// republishMarkerRecord deletes the hosted release bound to the marker tag
// and creates a fresh published one with the same assets. Delete tolerates
// an absent record, so a crash between delete and recreate is recoverable
// by re-running publish.
func (uc *publishUseCase) republishMarkerRecord(ctx context.Context, rel *model.ResolvedRelease) error {
	logger := ctxlog.From(ctx)

	existing, err := uc.host.GetReleaseByTag(ctx, model.LatestMarkerTag)
	if err != nil {
		return goerr.Wrap(err, "failed to query marker release record")
	}
	if existing != nil {
		logger.Info("Deleting previous marker release record", "release_id", existing.ID)
		if err := uc.host.DeleteRelease(ctx, existing.ID); err != nil {
			return goerr.Wrap(err, "failed to delete marker release record")
		}
	}

	req := &model.ReleaseRequest{
		TagName: model.LatestMarkerTag,
		Name:    fmt.Sprintf("%s latest (%s)", uc.text.DisplayName, rel.Version),
		Body:    fmt.Sprintf("Tracks the most recent release, currently %s %s (tag %s).", uc.text.DisplayName, rel.Version, rel.Tag),
	}

	created, err := uc.host.CreateRelease(ctx, req)
	if err != nil {
		return goerr.Wrap(err, "failed to recreate marker release record",
			goerr.V("hint", "re-run publish; a missing marker record is recoverable"))
	}

	for _, asset := range uc.project.AssetPaths(rel.BuildDir) {
		if err := uc.host.UploadAsset(ctx, created.ID, asset.Name, asset.Path); err != nil {
			return goerr.Wrap(err, "failed to upload marker release asset",
				goerr.V("asset", asset.Name))
		}
	}

	logger.Info("Marker release record republished", "release_id", created.ID)
	return nil
}

// announce posts the release to the configured channel. Best effort only;
// the release is already public when this runs.
func (uc *publishUseCase) announce(ctx context.Context, rel *model.ResolvedRelease, url string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Announce(ctx, rel, url); err != nil {
		ctxlog.From(ctx).Warn("Failed to announce release", "error", err)
	}
}
