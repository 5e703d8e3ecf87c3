package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/dirpack/dirpack/apis/v1"
	"github.com/dirpack/dirpack/internal/sink"
)

func TestParseProfile(t *testing.T) {
	t.Run("valid profile with s3 destination", func(t *testing.T) {
		profile, err := ParseProfile([]byte(`
kind: BackupProfile
metadata:
  name: workstation-docs
spec:
  sourceDir: /home/user/docs
  archiver: gzip
  exclude:
    - node_modules
  output:
    name: docs.tar.gz
    destination:
      s3:
        bucket: my-backups
        region: eu-west-1
        prefix: hosts/workstation
`))
		require.NoError(t, err)
		assert.Equal(t, "workstation-docs", profile.Metadata.Name)
		assert.Equal(t, "/home/user/docs", profile.Spec.SourceDir)
		assert.Equal(t, "gzip", profile.Spec.Archiver)
		assert.Equal(t, []string{"node_modules"}, profile.Spec.Exclude)
		require.NotNil(t, profile.Spec.Output)
		require.NotNil(t, profile.Spec.Output.Destination.S3)
		assert.Equal(t, "my-backups", profile.Spec.Output.Destination.S3.Bucket)
	})

	t.Run("minimal profile", func(t *testing.T) {
		profile, err := ParseProfile([]byte(`
kind: BackupProfile
metadata:
  name: minimal
spec:
  sourceDir: /srv/data
`))
		require.NoError(t, err)
		assert.Empty(t, profile.Spec.Archiver)
		assert.Nil(t, profile.Spec.Output)
	})

	t.Run("missing sourceDir fails validation", func(t *testing.T) {
		_, err := ParseProfile([]byte(`
kind: BackupProfile
metadata:
  name: broken
spec:
  archiver: zip
`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to validate profile")
	})

	t.Run("unknown archiver id fails validation", func(t *testing.T) {
		_, err := ParseProfile([]byte(`
kind: BackupProfile
metadata:
  name: broken
spec:
  sourceDir: /srv/data
  archiver: rar
`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to validate profile")
	})

	t.Run("wrong kind fails validation", func(t *testing.T) {
		_, err := ParseProfile([]byte(`
kind: RestoreProfile
metadata:
  name: broken
spec:
  sourceDir: /srv/data
`))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseProfile([]byte(`kind: [`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to unmarshal profile")
	})
}

func TestBuildSink(t *testing.T) {
	t.Run("defaults to a directory sink", func(t *testing.T) {
		s, err := BuildSink(t.Context(), nil, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "dir", s.Kind())
	})

	t.Run("folder destination", func(t *testing.T) {
		out := &v1.OutputSpec{Destination: &v1.DestinationSpec{
			Folder: &v1.FolderSpec{Path: t.TempDir()},
		}}
		s, err := BuildSink(t.Context(), out, ".")
		require.NoError(t, err)
		assert.Equal(t, "dir", s.Kind())
		assert.IsType(t, &sink.DirSink{}, s)
	})

	t.Run("destination without a type is rejected", func(t *testing.T) {
		out := &v1.OutputSpec{Destination: &v1.DestinationSpec{}}
		_, err := BuildSink(t.Context(), out, ".")
		require.Error(t, err)
		assert.ErrorContains(t, err, "no type specified")
	})
}
