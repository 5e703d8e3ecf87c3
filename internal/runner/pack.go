package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/dirpack/dirpack/internal/archiver"
	"github.com/dirpack/dirpack/internal/sink"
)

// TimestampFormat is a URL-safe timestamp without colons, used in generated
// archive names so they sort and upload cleanly.
const TimestampFormat = "20060102T150405Z"

// PackRequest describes one backup run.
type PackRequest struct {
	SourceDir   string
	ArchiveName string        // optional; generated from source name + timestamp when empty
	ArchiverID  string        // optional preferred backend id
	Exclude     []string      // extra top-level names to skip
	Timeout     time.Duration // bound on the archiver subprocess, DefaultTimeout when zero
}

// Packer archives a directory with the best installed tool and delivers the
// result to a sink.
type Packer struct {
	logger   *zap.Logger
	fs       afero.Fs
	registry *archiver.Registry
	detector *archiver.Detector
	sink     sink.Sink
	run      CommandRunner
}

func NewPacker(logger *zap.Logger, fs afero.Fs, detector *archiver.Detector, s sink.Sink, run CommandRunner) *Packer {
	return &Packer{
		logger:   logger,
		fs:       fs,
		registry: archiver.NewRegistry(),
		detector: detector,
		sink:     s,
		run:      run,
	}
}

// Run enumerates the source, resolves the backend, invokes it and delivers
// the archive. It returns the archive filename written to the sink.
func (p *Packer) Run(ctx context.Context, req PackRequest) (string, error) {
	entries, err := ListSourceEntries(p.fs, req.SourceDir, req.Exclude)
	if err != nil {
		return "", err
	}
	p.logger.Info("source directory enumerated",
		zap.String("dir", req.SourceDir),
		zap.Int("entries", len(entries)),
	)

	avail := p.detector.Detect(p.registry)
	format, err := archiver.Resolve(p.logger, p.registry, avail, req.ArchiverID)
	if err != nil {
		return "", err
	}
	spec := p.registry.Spec(format)

	name := req.ArchiveName
	if name == "" {
		base := filepath.Base(filepath.Clean(req.SourceDir))
		name = fmt.Sprintf("%s_%s%s", base, time.Now().UTC().Format(TimestampFormat), spec.Extension)
	}

	stagingDir, err := afero.TempDir(p.fs, "", "dirpack")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() {
		_ = p.fs.RemoveAll(stagingDir)
	}()

	archivePath := filepath.Join(stagingDir, name)
	inv := archiver.PackCommand(spec, archivePath, req.SourceDir)

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	exitCode, err := p.run(runCtx, inv)
	if err != nil {
		return "", fmt.Errorf("packing %s with %s: %w", req.SourceDir, spec.DisplayName, err)
	}
	if exitCode != 0 {
		return "", fmt.Errorf("packing %s: %s exited with code %d", req.SourceDir, spec.DisplayName, exitCode)
	}

	f, err := p.fs.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("archiver reported success but produced no archive at %s: %w", archivePath, err)
	}
	defer f.Close()

	if err := p.sink.Write(ctx, name, f); err != nil {
		return "", err
	}
	if err := p.sink.Close(ctx); err != nil {
		return "", fmt.Errorf("failed to close sink: %w", err)
	}

	p.logger.Info("backup complete",
		zap.String("archive", name),
		zap.String("format", spec.ID),
		zap.String("sink", p.sink.Name()),
	)
	return name, nil
}
