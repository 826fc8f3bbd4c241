package interfaces

import (
	"context"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

// ReleaseHost defines operations against the release-hosting service.
type ReleaseHost interface {
	// RemoteTagObjectSHA returns the object id the host's tag ref points
	// at, or "" when the tag does not exist on the host.
	RemoteTagObjectSHA(ctx context.Context, tag string) (string, error)

	// GetReleaseByTag returns the release record bound to the tag, or nil
	// when no record exists.
	GetReleaseByTag(ctx context.Context, tag string) (*model.HostedRelease, error)

	// CreateRelease creates a release record as described by the request.
	CreateRelease(ctx context.Context, req *model.ReleaseRequest) (*model.HostedRelease, error)

	// UploadAsset attaches the file at path to the release as a named asset.
	UploadAsset(ctx context.Context, releaseID int64, name, path string) error

	// PublishRelease transitions a draft record to published.
	PublishRelease(ctx context.Context, releaseID int64) error

	// DeleteRelease removes a release record. The underlying tag is left
	// untouched.
	DeleteRelease(ctx context.Context, releaseID int64) error
}
