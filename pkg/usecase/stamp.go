package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

const (
	versionPlaceholder = `"latest"`
	latestImageSuffix  = ":latest"
	alwaysPullPolicy   = "imagePullPolicy: Always"
)

// stampVersion pins the checkout to the concrete version: the executable's
// embedded version placeholder is replaced, manifest image references drop
// the floating "latest" tag, and the always-pull policy annotation is
// stripped so deployments stay pinned to this release.
func stampVersion(buildDir string, project model.Project, version string) error {
	versionFile := filepath.Join(buildDir, project.VersionFile)
	if err := replaceInFile(versionFile, versionPlaceholder, `"`+version+`"`); err != nil {
		return err
	}

	for _, manifest := range project.Manifests {
		if err := stampManifest(filepath.Join(buildDir, manifest), version); err != nil {
			return err
		}
	}
	return nil
}

func replaceInFile(path, old, replacement string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read file for version stamping", goerr.V("path", path))
	}
	stamped := strings.ReplaceAll(string(data), old, replacement)
	if err := os.WriteFile(path, []byte(stamped), 0644); err != nil {
		return goerr.Wrap(err, "failed to write stamped file", goerr.V("path", path))
	}
	return nil
}

func stampManifest(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read manifest for version stamping", goerr.V("path", path))
	}

	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, alwaysPullPolicy) {
			continue
		}
		out = append(out, strings.ReplaceAll(line, latestImageSuffix, ":"+version))
	}

	if err := os.WriteFile(path, []byte(strings.Join(out, "\n")), 0644); err != nil {
		return goerr.Wrap(err, "failed to write stamped manifest", goerr.V("path", path))
	}
	return nil
}
