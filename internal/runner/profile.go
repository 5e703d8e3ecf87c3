// Package runner wires the archiver capability model to the host: it loads
// backup profiles, enumerates source directories, runs the chosen archiver
// as a subprocess and delivers the result to a sink.
package runner

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	v1 "github.com/dirpack/dirpack/apis/v1"
	"github.com/dirpack/dirpack/internal/sink"
)

var defaultValidator = validator.New(validator.WithRequiredStructEnabled())

// ParseProfile parses a YAML backup profile and validates it against the
// constraints declared on the v1.BackupProfile struct.
func ParseProfile(data []byte) (v1.BackupProfile, error) {
	var profile v1.BackupProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return v1.BackupProfile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	if err := defaultValidator.Struct(profile); err != nil {
		return v1.BackupProfile{}, fmt.Errorf("failed to validate profile: %w", err)
	}

	return profile, nil
}

// BuildSink constructs the delivery sink for an output spec. A nil spec or
// a spec without a destination delivers into defaultDir.
func BuildSink(ctx context.Context, out *v1.OutputSpec, defaultDir string) (sink.Sink, error) {
	if out == nil || out.Destination == nil {
		return sink.NewDirSinkFromPath(defaultDir)
	}

	dest := out.Destination
	switch {
	case dest.Folder != nil:
		return sink.NewDirSinkFromPath(dest.Folder.Path)
	case dest.S3 != nil:
		return sink.NewS3Sink(ctx, sink.S3Config{
			Bucket:          dest.S3.Bucket,
			Region:          dest.S3.Region,
			Endpoint:        dest.S3.Endpoint,
			Prefix:          dest.S3.Prefix,
			AccessKeyID:     dest.S3.AccessKeyID,
			SecretAccessKey: dest.S3.SecretAccessKey,
			ForcePathStyle:  dest.S3.ForcePathStyle,
		})
	default:
		return nil, fmt.Errorf("output destination has no type specified")
	}
}
