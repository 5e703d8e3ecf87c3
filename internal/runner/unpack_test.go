package runner

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dirpack/dirpack/internal/archiver"
)

func TestUnpacker_Run(t *testing.T) {
	logger := zap.NewNop()

	t.Run("backend is inferred from the archive suffix", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		installPrograms(t, fs, "/usr/bin", "7z", "zip", "unzip")
		require.NoError(t, afero.WriteFile(fs, "/backups/docs.zip", []byte("zip bytes"), 0o644))

		runner := &fakeRunner{fs: fs, archiveIndex: -1}
		detector := archiver.NewDetector(logger, fs, searchPath("/usr/bin"), false)
		unpacker := NewUnpacker(logger, fs, detector, runner.run)

		err := unpacker.Run(t.Context(), UnpackRequest{
			ArchivePath: "/backups/docs.zip",
			DestDir:     "/restore",
		})
		require.NoError(t, err)

		require.Len(t, runner.invocations, 1)
		assert.Equal(t, "unzip /backups/docs.zip -d /restore", runner.invocations[0].Line)
	})

	t.Run("explicit backend request wins over the suffix", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		installPrograms(t, fs, "/usr/bin", "7z", "zip", "unzip")
		require.NoError(t, afero.WriteFile(fs, "/backups/docs.zip", []byte("zip bytes"), 0o644))

		runner := &fakeRunner{fs: fs, archiveIndex: -1}
		detector := archiver.NewDetector(logger, fs, searchPath("/usr/bin"), false)
		unpacker := NewUnpacker(logger, fs, detector, runner.run)

		err := unpacker.Run(t.Context(), UnpackRequest{
			ArchivePath: "/backups/docs.zip",
			DestDir:     "/restore",
			ArchiverID:  "7z",
		})
		require.NoError(t, err)

		require.Len(t, runner.invocations, 1)
		assert.Equal(t, "7z", runner.invocations[0].Args[0])
	})

	t.Run("missing archive", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		runner := &fakeRunner{fs: fs, archiveIndex: -1}
		detector := archiver.NewDetector(logger, fs, "", false)
		unpacker := NewUnpacker(logger, fs, detector, runner.run)

		err := unpacker.Run(t.Context(), UnpackRequest{
			ArchivePath: "/backups/docs.zip",
			DestDir:     "/restore",
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "archive does not exist")
		assert.Empty(t, runner.invocations)
	})

	t.Run("no archiver installed", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/backups/docs.zip", []byte("zip bytes"), 0o644))

		runner := &fakeRunner{fs: fs, archiveIndex: -1}
		detector := archiver.NewDetector(logger, fs, "", false)
		unpacker := NewUnpacker(logger, fs, detector, runner.run)

		err := unpacker.Run(t.Context(), UnpackRequest{
			ArchivePath: "/backups/docs.zip",
			DestDir:     "/restore",
		})
		require.Error(t, err)
		assert.ErrorAs(t, err, new(*archiver.NoArchiverAvailableError))
	})
}
