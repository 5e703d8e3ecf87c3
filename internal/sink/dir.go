package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrArchiveExists is returned when the destination already holds a file
// with the archive's name. Existing backups are never overwritten.
var ErrArchiveExists = errors.New("archive already exists")

// DirSink stores archives in a local directory.
type DirSink struct {
	fs afero.Fs
}

func NewDirSink(fs afero.Fs) *DirSink {
	return &DirSink{fs: fs}
}

func NewDirSinkFromPath(path string) (*DirSink, error) {
	cleanPath := filepath.Clean(path)

	if err := os.MkdirAll(cleanPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory %s: %w", cleanPath, err)
	}

	return NewDirSink(afero.NewBasePathFs(afero.NewOsFs(), cleanPath)), nil
}

func (s *DirSink) Name() string {
	return fmt.Sprintf("dir(%s)", s.fs.Name())
}

func (s *DirSink) Kind() string {
	return "dir"
}

func (s *DirSink) Write(ctx context.Context, filename string, data io.Reader) (err error) {
	if exists, _ := afero.Exists(s.fs, filename); exists {
		return fmt.Errorf("%w: %s", ErrArchiveExists, filename)
	}

	f, err := s.fs.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if _, err = io.Copy(f, data); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	return nil
}

func (s *DirSink) Close(ctx context.Context) error {
	return nil
}
