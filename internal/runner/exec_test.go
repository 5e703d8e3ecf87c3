package runner

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dirpack/dirpack/internal/archiver"
)

func shInvocation(script string) archiver.Invocation {
	return archiver.Invocation{
		Line: "sh -c " + script,
		Args: []string{"sh", "-c", script},
	}
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping on Windows")
	}
	run := ExecRunner(zap.NewNop())

	t.Run("successful command reports exit 0", func(t *testing.T) {
		exitCode, err := run(t.Context(), shInvocation("true"))
		require.NoError(t, err)
		assert.Equal(t, 0, exitCode)
	})

	t.Run("non-zero exit surfaces the code", func(t *testing.T) {
		exitCode, err := run(t.Context(), shInvocation("exit 3"))
		require.Error(t, err)
		assert.Equal(t, 3, exitCode)
		assert.ErrorContains(t, err, "archiver failed")
	})

	t.Run("stderr is folded into the error", func(t *testing.T) {
		_, err := run(t.Context(), shInvocation("echo 'disk full' >&2; exit 1"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
		defer cancel()

		_, err := run(ctx, shInvocation("sleep 10"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "timed out")
	})

	t.Run("missing program", func(t *testing.T) {
		_, err := run(t.Context(), archiver.Invocation{
			Line: "nonexistent-archiver-xyz a out.7z docs",
			Args: []string{"nonexistent-archiver-xyz", "a", "out.7z", "docs"},
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "archiver failed")
	})

	t.Run("empty invocation", func(t *testing.T) {
		exitCode, err := run(t.Context(), archiver.Invocation{})
		require.Error(t, err)
		assert.Equal(t, -1, exitCode)
	})
}
