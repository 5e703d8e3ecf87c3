package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/dirpack/dirpack/internal/archiver"
)

// UnpackRequest describes one restore run.
type UnpackRequest struct {
	ArchivePath string
	DestDir     string
	ArchiverID  string        // optional; inferred from the archive suffix when empty
	Timeout     time.Duration // bound on the archiver subprocess, DefaultTimeout when zero
}

// Unpacker extracts an archive with the matching installed tool.
type Unpacker struct {
	logger   *zap.Logger
	fs       afero.Fs
	registry *archiver.Registry
	detector *archiver.Detector
	run      CommandRunner
}

func NewUnpacker(logger *zap.Logger, fs afero.Fs, detector *archiver.Detector, run CommandRunner) *Unpacker {
	return &Unpacker{
		logger:   logger,
		fs:       fs,
		registry: archiver.NewRegistry(),
		detector: detector,
		run:      run,
	}
}

func (u *Unpacker) Run(ctx context.Context, req UnpackRequest) error {
	info, err := u.fs.Stat(req.ArchivePath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("archive does not exist: %s", req.ArchivePath)
	}

	requested := req.ArchiverID
	if requested == "" {
		if f, ok := u.registry.FormatForPath(req.ArchivePath); ok {
			requested = u.registry.Spec(f).ID
			u.logger.Debug("archiver inferred from archive suffix",
				zap.String("archive", req.ArchivePath),
				zap.String("format", requested),
			)
		}
	}

	avail := u.detector.Detect(u.registry)
	format, err := archiver.Resolve(u.logger, u.registry, avail, requested)
	if err != nil {
		return err
	}
	spec := u.registry.Spec(format)

	if err := u.fs.MkdirAll(req.DestDir, 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", req.DestDir, err)
	}

	inv := archiver.UnpackCommand(spec, req.ArchivePath, req.DestDir)

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	exitCode, err := u.run(runCtx, inv)
	if err != nil {
		return fmt.Errorf("unpacking %s with %s: %w", req.ArchivePath, spec.DisplayName, err)
	}
	if exitCode != 0 {
		return fmt.Errorf("unpacking %s: %s exited with code %d", req.ArchivePath, spec.DisplayName, exitCode)
	}

	u.logger.Info("restore complete",
		zap.String("archive", req.ArchivePath),
		zap.String("dest", req.DestDir),
		zap.String("format", spec.ID),
	)
	return nil
}
