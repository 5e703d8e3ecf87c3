package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/dirpack/dirpack/internal/archiver"
	"github.com/dirpack/dirpack/internal/runner"
)

var unpackCommand = &cli.Command{
	Name:  "unpack",
	Usage: "Extract an archive with the matching installed tool",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "dest",
			Value: ".",
			Usage: "Directory to extract into",
		},
		&cli.StringFlag{
			Name:    "archiver",
			Aliases: []string{"a"},
			Usage:   "Archiver id to use (default: inferred from the archive suffix)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Bound on the archiver subprocess",
		},
	},
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      "archive",
			UsageText: "The archive file to extract",
		},
	},
	Action: func(ctx context.Context, command *cli.Command) error {
		logger := getLogger(ctx)

		archivePath := command.StringArg("archive")
		if archivePath == "" {
			return fmt.Errorf("no archive provided")
		}

		unpacker := runner.NewUnpacker(
			logger.Named("unpack"),
			afero.NewOsFs(),
			archiver.HostDetector(logger.Named("detect")),
			runner.ExecRunner(logger.Named("exec")),
		)

		if err := unpacker.Run(ctx, runner.UnpackRequest{
			ArchivePath: archivePath,
			DestDir:     command.String("dest"),
			ArchiverID:  command.String("archiver"),
			Timeout:     command.Duration("timeout"),
		}); err != nil {
			return err
		}

		fmt.Printf("✓ extracted %s to %s\n", archivePath, command.String("dest"))
		return nil
	},
}
