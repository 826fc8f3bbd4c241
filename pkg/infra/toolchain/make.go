package toolchain

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

type makeDriver struct{}

// NewMake creates a Toolchain that drives the project's makefile. Build,
// test, and publish run the targets of those names inside the build
// directory; parameters pass through as make variables.
func NewMake() interfaces.Toolchain {
	return &makeDriver{}
}

func (d *makeDriver) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "make", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "make failed",
			goerr.V("dir", dir), goerr.V("args", strings.Join(args, " ")))
	}
	return nil
}

func (d *makeDriver) Build(ctx context.Context, dir string, params model.BuildParams) error {
	return d.run(ctx, dir, buildArgs(params)...)
}

func (d *makeDriver) Test(ctx context.Context, dir string) error {
	return d.run(ctx, dir, "test")
}

func (d *makeDriver) Publish(ctx context.Context, dir string, params model.PublishParams) error {
	return d.run(ctx, dir, publishArgs(params)...)
}

// ReportedVersion runs the built executable's version command and returns
// the version token, the last whitespace-separated field of its output.
func (d *makeDriver) ReportedVersion(ctx context.Context, dir, executable string) (string, error) {
	path := filepath.Join(dir, executable)
	cmd := exec.CommandContext(ctx, path, "version")
	out, err := cmd.Output()
	if err != nil {
		return "", goerr.Wrap(err, "failed to run version command", goerr.V("path", path))
	}
	return versionToken(string(out))
}

func buildArgs(params model.BuildParams) []string {
	return []string{
		"build",
		"VERSION=" + params.Version,
		"REGISTRY_USER=" + params.RegistryUser,
		"SUDO=" + params.SudoPrefix,
	}
}

func publishArgs(params model.PublishParams) []string {
	return []string{
		"publish",
		"VERSION=" + params.Version,
		"REGISTRY_USER=" + params.RegistryUser,
		"SUDO=" + params.SudoPrefix,
		"UPDATE_LATEST=" + strconv.FormatBool(params.UpdateLatest),
		"PUBLISH_VERSION_DB=" + strconv.FormatBool(params.PublishVersionDB),
	}
}

func versionToken(output string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) == 0 {
		return "", goerr.New("version command printed nothing")
	}
	return fields[len(fields)-1], nil
}
