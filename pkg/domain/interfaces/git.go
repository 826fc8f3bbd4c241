package interfaces

import (
	"context"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

// GitClient defines the version-control operations the workflow consumes.
// All methods are read-only except CloneTag.
type GitClient interface {
	// TagsPointingAtHead lists the tags whose target commit is the current
	// HEAD commit, with both the commit id and the tag object id resolved.
	TagsPointingAtHead(ctx context.Context) ([]model.TagRef, error)

	// ResolveTag resolves a tag name to its commit id and tag object id.
	ResolveTag(ctx context.Context, name string) (model.TagRef, error)

	// CloneTag creates an isolated checkout of the repository at exactly
	// the given tag into destDir. The checkout reflects only that tag's
	// tree, not arbitrary branch history.
	CloneTag(ctx context.Context, tag, destDir string) error
}
