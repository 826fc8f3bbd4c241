package types

import "github.com/m-mizutani/goerr/v2"

// Workflow errors. Every precondition violation maps to exactly one of
// these sentinels so callers and tests can match with errors.Is. Wrapped
// instances carry the concrete values (tag names, paths, hashes) and a
// "hint" value with the corrective command for the operator.
var (
	// ErrNoVersionTag is returned when no tag points at the current HEAD.
	ErrNoVersionTag = goerr.New("no release tag points at HEAD")

	// ErrAmbiguousVersion is returned when HEAD does not carry exactly one
	// release tag, either because several tags point at it or because only
	// the floating latest_release marker does.
	ErrAmbiguousVersion = goerr.New("cannot determine a single release tag at HEAD")

	// ErrStaleBuildDirectory is returned when the build directory for the
	// candidate tag already exists from a previous attempt.
	ErrStaleBuildDirectory = goerr.New("build directory already exists")

	// ErrChangelogMismatch is returned when the changelog's most recent
	// entry does not name the version being released.
	ErrChangelogMismatch = goerr.New("changelog head entry does not match release version")

	// ErrTestsFailed is returned when the project test suite fails against
	// the release build.
	ErrTestsFailed = goerr.New("test suite failed for release build")

	// ErrVersionMismatch is returned when the built executable reports a
	// version other than the one being released.
	ErrVersionMismatch = goerr.New("built executable reports unexpected version")

	// ErrTagNotPushed is returned when the candidate tag is not visible on
	// the remote host under its local tag object id.
	ErrTagNotPushed = goerr.New("release tag is not visible on the remote host")

	// ErrReleaseAlreadyExists is returned when the host already has a
	// release record for the candidate tag.
	ErrReleaseAlreadyExists = goerr.New("a release already exists for this tag")

	// ErrLatestMarkerStale is returned when the latest_release marker does
	// not point at the same commit as the candidate tag.
	ErrLatestMarkerStale = goerr.New("latest_release marker does not point at the release commit")

	// ErrMarkerNotPushed is returned when the latest_release marker is not
	// visible on the remote host under its local tag object id.
	ErrMarkerNotPushed = goerr.New("latest_release marker is not visible on the remote host")
)
