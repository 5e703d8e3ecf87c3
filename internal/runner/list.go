package runner

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

var (
	// ErrSourceMissing is returned when the source directory does not exist.
	ErrSourceMissing = errors.New("source directory does not exist")

	// ErrSourceEmpty is returned when the source directory holds nothing
	// worth backing up.
	ErrSourceEmpty = errors.New("source directory has nothing to back up")
)

// systemArtifacts are well-known OS metadata entries that are never worth
// backing up.
var systemArtifacts = []string{
	"$RECYCLE.BIN",
	"Thumbs.db",
	".DS_Store",
	".Spotlight-V100",
	".Trashes",
	"System Volume Information",
}

// ListSourceEntries returns the top-level entries of the source directory,
// minus OS artifacts and the caller's extra excludes. Missing and empty
// directories are distinct errors so callers can report them apart.
func ListSourceEntries(fs afero.Fs, dir string, extraExcludes []string) ([]string, error) {
	info, err := fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, dir)
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", dir, err)
	}

	excluded := append(append([]string{}, systemArtifacts...), extraExcludes...)
	names := lo.FilterMap(entries, func(entry os.FileInfo, _ int) (string, bool) {
		name := entry.Name()
		return name, !lo.Contains(excluded, name)
	})

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceEmpty, dir)
	}
	return names, nil
}
