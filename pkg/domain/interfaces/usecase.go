package interfaces

import (
	"context"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

// Resolver derives the release state from repository tag topology. Every
// phase calls it fresh at entry; resolved state is never cached between
// phase invocations.
type Resolver interface {
	Resolve(ctx context.Context) (*model.ResolvedRelease, error)
}

// BuildUseCase materializes and validates the release build.
type BuildUseCase interface {
	Run(ctx context.Context) (*model.ResolvedRelease, error)
}

// DraftUseCase creates the draft release record with uploaded assets.
type DraftUseCase interface {
	Run(ctx context.Context) (*model.ResolvedRelease, error)
}

// PublishUseCase promotes the draft to public and manages the
// latest_release marker record for non-prerelease kinds.
type PublishUseCase interface {
	Run(ctx context.Context) (*model.ResolvedRelease, error)
}
