// Package sink delivers finished archives to their destination: a local
// directory or S3-compatible object storage.
package sink

import (
	"context"
	"io"
)

// Sink receives a finished archive file.
type Sink interface {
	Name() string
	Kind() string

	// Write stores the archive under the given filename.
	Write(ctx context.Context, filename string, data io.Reader) error

	Close(ctx context.Context) error
}
