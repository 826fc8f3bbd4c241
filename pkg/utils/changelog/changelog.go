package changelog

import (
	"bufio"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// entryPrefix heads every release entry in the change-log document.
const entryPrefix = "## Release "

// HeadVersion returns the version token of the most recent entry in the
// change-log document at path. The most recent entry is the first line
// starting with "## Release"; everything after the prefix is the token.
func HeadVersion(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open changelog", goerr.V("path", path))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, entryPrefix); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", goerr.Wrap(err, "failed to read changelog", goerr.V("path", path))
	}

	return "", goerr.New("changelog has no release entry", goerr.V("path", path))
}
