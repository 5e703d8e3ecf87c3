package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dirpack/dirpack/internal/archiver"
)

var checkCommand = &cli.Command{
	Name:  "check",
	Usage: "Report which archive tools are installed",
	Action: func(ctx context.Context, command *cli.Command) error {
		logger := getLogger(ctx)

		reg := archiver.NewRegistry()
		avail := archiver.HostDetector(logger.Named("detect")).Detect(reg)

		pretty := isInteractiveEnvironment()
		for _, f := range reg.All() {
			spec := reg.Spec(f)
			if pretty {
				mark := "✗"
				if avail[f] {
					mark = "✓"
				}
				fmt.Printf("%s %-5s %s\n", mark, spec.ID, spec.DisplayName)
			} else {
				fmt.Printf("%s available=%t\n", spec.ID, avail[f])
			}
		}

		if _, ok := archiver.MostPreferred(reg, avail); !ok {
			fmt.Println("no supported archiver found; install 7z, tar with gzip or bzip2, or zip and unzip")
		}
		return nil
	},
}
