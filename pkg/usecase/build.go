package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
	"github.com/tugboatctl/tugboat/pkg/domain/types"
	"github.com/tugboatctl/tugboat/pkg/utils/changelog"
)

type buildUseCase struct {
	resolver  interfaces.Resolver
	git       interfaces.GitClient
	toolchain interfaces.Toolchain
	project   model.Project
	params    model.BuildParams
}

// NewBuild creates the build phase. params.Version is derived per run from
// the resolved release and does not need to be set by the caller.
func NewBuild(
	resolver interfaces.Resolver,
	git interfaces.GitClient,
	toolchain interfaces.Toolchain,
	project model.Project,
	params model.BuildParams,
) interfaces.BuildUseCase {
	return &buildUseCase{
		resolver:  resolver,
		git:       git,
		toolchain: toolchain,
		project:   project,
		params:    params,
	}
}

// Run materializes an isolated checkout of the candidate tag, stamps
// version metadata, builds and tests it, and verifies the built executable
// reports the expected version.
func (uc *buildUseCase) Run(ctx context.Context) (*model.ResolvedRelease, error) {
	logger := ctxlog.From(ctx)

	rel, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	// A leftover build directory means a previous attempt; mixing its
	// artifacts with a new build is never safe, so the operator must
	// remove it explicitly.
	if _, err := os.Stat(rel.BuildDir); err == nil {
		return nil, goerr.Wrap(types.ErrStaleBuildDirectory,
			"refusing to reuse an existing build directory",
			goerr.V("dir", rel.BuildDir),
			goerr.V("hint", fmt.Sprintf("remove it first: rm -rf %s", rel.BuildDir)),
		)
	} else if !os.IsNotExist(err) {
		return nil, goerr.Wrap(err, "failed to stat build directory", goerr.V("dir", rel.BuildDir))
	}

	logger.Info("Creating release checkout", "tag", rel.Tag, "dir", rel.BuildDir)
	if err := uc.git.CloneTag(ctx, rel.Tag, rel.BuildDir); err != nil {
		return nil, goerr.Wrap(err, "failed to check out release tag",
			goerr.V("tag", rel.Tag), goerr.V("dir", rel.BuildDir))
	}

	if err := uc.checkChangelog(rel); err != nil {
		return nil, err
	}

	if err := stampVersion(rel.BuildDir, uc.project, rel.Version); err != nil {
		return nil, err
	}

	params := uc.params
	params.Version = rel.Version

	logger.Info("Invoking build toolchain", "version", rel.Version)
	if err := uc.toolchain.Build(ctx, rel.BuildDir, params); err != nil {
		return nil, goerr.Wrap(err, "build toolchain failed", goerr.V("version", rel.Version))
	}

	logger.Info("Running test suite")
	if err := uc.toolchain.Test(ctx, rel.BuildDir); err != nil {
		return nil, goerr.Wrap(types.ErrTestsFailed,
			"release build did not pass the test suite",
			goerr.V("cause", err.Error()),
			goerr.V("hint", "fix the failures and cut a new tag; do not draft this build"),
		)
	}

	reported, err := uc.toolchain.ReportedVersion(ctx, rel.BuildDir, uc.project.Executable)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read built executable version")
	}
	if reported != rel.Version {
		return nil, goerr.Wrap(types.ErrVersionMismatch,
			"version stamping did not take effect",
			goerr.V("expected", rel.Version),
			goerr.V("reported", reported),
		)
	}

	logger.Info("Build phase complete", "tag", rel.Tag, "dir", rel.BuildDir)
	return rel, nil
}

// checkChangelog verifies the most recent change-log entry names the
// version being released. This catches a tag cut against the wrong commit:
// the human edits the changelog before tagging, so a stale head entry
// means the tag and the tree disagree.
func (uc *buildUseCase) checkChangelog(rel *model.ResolvedRelease) error {
	path := filepath.Join(rel.BuildDir, uc.project.Changelog)
	head, err := changelog.HeadVersion(path)
	if err != nil {
		return goerr.Wrap(types.ErrChangelogMismatch,
			"could not read a release entry from the changelog",
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}
	if head != rel.Version {
		return goerr.Wrap(types.ErrChangelogMismatch,
			"changelog head entry disagrees with the release version",
			goerr.V("changelog", head),
			goerr.V("version", rel.Version),
			goerr.V("hint", "update the changelog and re-cut the tag on the right commit"),
		)
	}
	return nil
}
