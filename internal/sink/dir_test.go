package sink

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSink_Write(t *testing.T) {
	t.Run("stores the archive under its name", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		s := NewDirSink(fs)

		err := s.Write(t.Context(), "docs.7z", bytes.NewBufferString("archive bytes"))
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "docs.7z")
		require.NoError(t, err)
		assert.Equal(t, "archive bytes", string(data))

		require.NoError(t, s.Close(t.Context()))
	})

	t.Run("refuses to overwrite an existing archive", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "docs.7z", []byte("old backup"), 0o644))

		s := NewDirSink(fs)
		err := s.Write(t.Context(), "docs.7z", bytes.NewBufferString("new backup"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrArchiveExists)

		data, err := afero.ReadFile(fs, "docs.7z")
		require.NoError(t, err)
		assert.Equal(t, "old backup", string(data), "existing backup must stay intact")
	})
}

func TestDirSink_Kind(t *testing.T) {
	assert.Equal(t, "dir", NewDirSink(afero.NewMemMapFs()).Kind())
}
