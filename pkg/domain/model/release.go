package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// LatestMarkerTag is the floating tag that tracks the most recently
// published non-prerelease version. It is force-moved by the operator,
// never created by this workflow.
const LatestMarkerTag = "latest_release"

// ReleaseKind classifies what track a version belongs to.
type ReleaseKind string

const (
	// KindMainline is a major.minor.0 release cut from the main line.
	KindMainline ReleaseKind = "mainline"
	// KindBranch is a patch release cut from a point branch.
	KindBranch ReleaseKind = "branch"
	// KindPrerelease is anything else: release candidates, betas, and
	// other non-numeric tags.
	KindPrerelease ReleaseKind = "prerelease"
)

// UpdatesLatestMarker reports whether publishing this kind re-points the
// latest_release marker and its hosted release record.
func (k ReleaseKind) UpdatesLatestMarker() bool {
	return k == KindMainline || k == KindBranch
}

var (
	mainlinePattern = regexp.MustCompile(`^v\d+\.\d+\.0+$`)
	branchPattern   = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)
)

// kindRules is evaluated top to bottom; the first matching rule wins and
// anything unmatched is a prerelease.
var kindRules = []struct {
	match func(string) bool
	kind  ReleaseKind
}{
	{mainlinePattern.MatchString, KindMainline},
	{branchPattern.MatchString, KindBranch},
}

// ClassifyTag determines the release kind of a tag name and the version
// string used downstream. Mainline and branch versions drop the leading
// "v"; prerelease tags are kept verbatim so they stay distinguishable from
// numeric versions in file and image names.
func ClassifyTag(tag string) (ReleaseKind, string) {
	for _, rule := range kindRules {
		if rule.match(tag) {
			return rule.kind, strings.TrimPrefix(tag, "v")
		}
	}
	return KindPrerelease, tag
}

// TagRef identifies a tag in the local repository. For annotated tags the
// tag object and the commit it points at have distinct hashes; both are
// tracked so local and remote state can be compared precisely.
type TagRef struct {
	Name        string
	CommitID    string
	TagObjectID string
}

// ResolvedRelease is the full release state derived fresh at every phase
// entry. It is constructed by the resolver and passed explicitly; phases
// never cache one across invocations, so repository changes between phase
// invocations are always picked up.
type ResolvedRelease struct {
	Tag         string
	CommitID    string
	TagObjectID string
	Kind        ReleaseKind
	Version     string
	BuildDir    string
}

// NewResolvedRelease classifies the tag and derives the deterministic
// build directory under releaseRoot.
func NewResolvedRelease(tag TagRef, releaseRoot string) *ResolvedRelease {
	kind, version := ClassifyTag(tag.Name)
	return &ResolvedRelease{
		Tag:         tag.Name,
		CommitID:    tag.CommitID,
		TagObjectID: tag.TagObjectID,
		Kind:        kind,
		Version:     version,
		BuildDir:    filepath.Join(releaseRoot, tag.Name),
	}
}

// HostedRelease is a release record on the hosting side.
type HostedRelease struct {
	ID         int64
	TagName    string
	Name       string
	Body       string
	Draft      bool
	Prerelease bool
	HTMLURL    string
}

// ReleaseRequest carries the fields needed to create a hosted release.
type ReleaseRequest struct {
	TagName    string
	Name       string
	Body       string
	Draft      bool
	Prerelease bool
}

// BuildParams are the opaque parameters handed to the build toolchain.
type BuildParams struct {
	Version      string
	RegistryUser string
	SudoPrefix   string
}

// PublishParams control the toolchain's image publish step. UpdateLatest
// re-tags the pushed images as "latest"; PublishVersionDB additionally
// publishes the version-tracking database image and is set only for
// mainline releases.
type PublishParams struct {
	Version          string
	RegistryUser     string
	SudoPrefix       string
	UpdateLatest     bool
	PublishVersionDB bool
}
