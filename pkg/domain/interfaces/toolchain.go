package interfaces

import (
	"context"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

// Toolchain wraps the project's external build/test tooling. The workflow
// passes parameters through opaquely and only interprets success/failure.
type Toolchain interface {
	// Build compiles the project inside dir.
	Build(ctx context.Context, dir string, params model.BuildParams) error

	// Test runs the project test suite inside dir.
	Test(ctx context.Context, dir string) error

	// Publish pushes the built container images according to params.
	Publish(ctx context.Context, dir string, params model.PublishParams) error

	// ReportedVersion runs the built executable's version command and
	// returns the version token it prints.
	ReportedVersion(ctx context.Context, dir, executable string) (string, error)
}

// Notifier announces a published release. Announcement failures are
// logged, never fatal.
type Notifier interface {
	Announce(ctx context.Context, rel *model.ResolvedRelease, releaseURL string) error
}
