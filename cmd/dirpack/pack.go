package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	v1 "github.com/dirpack/dirpack/apis/v1"
	"github.com/dirpack/dirpack/internal/archiver"
	"github.com/dirpack/dirpack/internal/runner"
	"github.com/dirpack/dirpack/internal/sink"
)

var packCommand = &cli.Command{
	Name:  "pack",
	Usage: "Archive a directory with the best installed tool",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "Backup profile file",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Archive filename (default: <source>_<timestamp><ext>)",
		},
		&cli.StringFlag{
			Name:    "archiver",
			Aliases: []string{"a"},
			Usage:   "Preferred archiver id (7z, bz2, gzip, zip)",
		},
		&cli.StringFlag{
			Name:  "dest",
			Value: ".",
			Usage: "Destination directory for the archive",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Top-level names to skip (can be repeated)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Bound on the archiver subprocess",
		},
	},
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      "source",
			UsageText: "The directory to archive",
		},
	},
	Action: func(ctx context.Context, command *cli.Command) error {
		logger := getLogger(ctx)

		req := runner.PackRequest{
			SourceDir:   command.StringArg("source"),
			ArchiveName: command.String("output"),
			ArchiverID:  command.String("archiver"),
			Exclude:     command.StringSlice("exclude"),
			Timeout:     command.Duration("timeout"),
		}

		var output *v1.OutputSpec
		if profilePath := command.String("profile"); profilePath != "" {
			data, err := os.ReadFile(profilePath)
			if err != nil {
				return fmt.Errorf("failed to read profile '%s': %w", profilePath, err)
			}
			profile, err := runner.ParseProfile(data)
			if err != nil {
				return fmt.Errorf("failed to parse profile '%s': %w", profilePath, err)
			}

			if req.SourceDir == "" {
				req.SourceDir = profile.Spec.SourceDir
			}
			if req.ArchiverID == "" {
				req.ArchiverID = profile.Spec.Archiver
			}
			req.Exclude = append(req.Exclude, profile.Spec.Exclude...)
			output = profile.Spec.Output
			if req.ArchiveName == "" && output != nil {
				req.ArchiveName = output.Name
			}
		}

		if req.SourceDir == "" {
			return fmt.Errorf("no source directory provided")
		}

		// An explicit --dest wins over the profile's destination.
		var (
			s   sink.Sink
			err error
		)
		if command.IsSet("dest") {
			s, err = sink.NewDirSinkFromPath(command.String("dest"))
		} else {
			s, err = runner.BuildSink(ctx, output, command.String("dest"))
		}
		if err != nil {
			return fmt.Errorf("failed to build destination: %w", err)
		}

		packer := runner.NewPacker(
			logger.Named("pack"),
			afero.NewOsFs(),
			archiver.HostDetector(logger.Named("detect")),
			s,
			runner.ExecRunner(logger.Named("exec")),
		)

		name, err := packer.Run(ctx, req)
		if err != nil {
			return err
		}

		fmt.Printf("✓ wrote %s to %s\n", name, s.Name())
		return nil
	},
}
