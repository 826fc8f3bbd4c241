package model

import "path/filepath"

// Project describes the repository being released: where it lives, which
// files carry version stamps, and which artifacts get uploaded. Loaded
// from release.toml with these defaults.
type Project struct {
	// Repo is the repository name on the hosting side. The owning
	// namespace comes from the CLI configuration, not this file.
	Repo string `toml:"repo"`
	// RepoPath is the local checkout the tag resolver inspects.
	RepoPath string `toml:"repo_path"`
	// ReleaseRoot is the directory build checkouts are created under.
	ReleaseRoot string `toml:"release_root"`
	// Executable is the name of the primary built binary, relative to the
	// build directory, uploaded as the main release asset.
	Executable string `toml:"executable"`
	// VersionFile is the source file carrying the embedded version
	// placeholder that build stamps with the concrete version.
	VersionFile string `toml:"version_file"`
	// Manifests are the deployment manifest templates, relative to the
	// build directory. Both are stamped and uploaded as assets.
	Manifests []string `toml:"manifests"`
	// Changelog is the change-log document checked against the version.
	Changelog string `toml:"changelog"`
}

// DefaultProject returns the settings used when release.toml is absent.
func DefaultProject() Project {
	return Project{
		Repo:        "tugboat",
		RepoPath:    ".",
		ReleaseRoot: "releases",
		Executable:  "tugboat",
		VersionFile: "pkg/domain/types/version.go",
		Manifests: []string{
			"deploy/tugboat-daemonset.yaml",
			"deploy/tugboat-deployment.yaml",
		},
		Changelog: "CHANGELOG.md",
	}
}

// AssetPaths returns the files uploaded to a hosted release, as absolute
// paths inside the build directory paired with their asset names.
func (p Project) AssetPaths(buildDir string) []Asset {
	assets := []Asset{{
		Name: p.Executable,
		Path: filepath.Join(buildDir, p.Executable),
	}}
	for _, m := range p.Manifests {
		assets = append(assets, Asset{
			Name: filepath.Base(m),
			Path: filepath.Join(buildDir, m),
		})
	}
	return assets
}

// Asset is a named file attached to a hosted release.
type Asset struct {
	Name string
	Path string
}
