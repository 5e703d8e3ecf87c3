package archiver

import (
	"fmt"
	"strings"
)

// Invocation is a materialized archiver command.
type Invocation struct {
	// Line is the literal command line after positional substitution, as
	// the backend expects it. No quoting or escaping is applied.
	Line string

	// Args is Line split on whitespace, in argv form for process start.
	Args []string
}

// PackCommand substitutes the archive path and the content path into the
// backend's pack template, in that order.
func PackCommand(spec Spec, archivePath, contentPath string) Invocation {
	return materialize(spec.PackTemplate, archivePath, contentPath)
}

// UnpackCommand substitutes the archive path and the destination directory
// into the backend's unpack template, in that order.
func UnpackCommand(spec Spec, archivePath, destDir string) Invocation {
	return materialize(spec.UnpackTemplate, archivePath, destDir)
}

func materialize(template, first, second string) Invocation {
	line := fmt.Sprintf(template, first, second)
	return Invocation{Line: line, Args: strings.Fields(line)}
}
