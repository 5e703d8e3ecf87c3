package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dirpack/dirpack/internal/archiver"
)

// DefaultTimeout bounds a single archiver invocation. Large directories can
// take a while; the bound exists so a wedged tool does not hang a backup
// run forever.
const DefaultTimeout = 30 * time.Minute

// CommandRunner executes a materialized archiver invocation and returns the
// subprocess exit code. The exit code is reported even when err is non-nil,
// -1 when the process never started.
type CommandRunner func(ctx context.Context, inv archiver.Invocation) (int, error)

// ExecRunner returns a CommandRunner backed by os/exec. Stderr is captured
// and folded into the returned error so archiver diagnostics surface in
// logs.
func ExecRunner(logger *zap.Logger) CommandRunner {
	return func(ctx context.Context, inv archiver.Invocation) (int, error) {
		if len(inv.Args) == 0 {
			return -1, fmt.Errorf("empty archiver invocation")
		}

		cmd := exec.CommandContext(ctx, inv.Args[0], inv.Args[1:]...)

		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		logger.Debug("invoking archiver", zap.String("command", inv.Line))
		start := time.Now()
		err := cmd.Run()
		duration := time.Since(start)

		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		logger.Debug("archiver finished",
			zap.Int("exit_code", exitCode),
			zap.Duration("duration", duration),
		)

		if err != nil {
			stderrStr := strings.TrimSpace(stderr.String())
			if ctx.Err() == context.DeadlineExceeded {
				return exitCode, fmt.Errorf("archiver timed out: %s", stderrStr)
			}
			if stderrStr != "" {
				return exitCode, fmt.Errorf("archiver failed: %w: %s", err, stderrStr)
			}
			return exitCode, fmt.Errorf("archiver failed: %w", err)
		}

		return exitCode, nil
	}
}
