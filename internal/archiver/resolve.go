package archiver

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultFormatID is the backend requested when the caller supplies nothing.
const DefaultFormatID = "7z"

// NoArchiverAvailableError is returned when no registered backend is usable
// on the host. It is fatal for packing and unpacking: no archiver will
// appear without the user installing one.
type NoArchiverAvailableError struct {
	Checked []string // ids probed during detection
}

func (e *NoArchiverAvailableError) Error() string {
	return fmt.Sprintf("no supported archiver is installed on this host (checked: %s)",
		strings.Join(e.Checked, ", "))
}

// MostPreferred returns the first available format in priority order, or
// ok=false when the snapshot holds none.
func MostPreferred(reg *Registry, avail Availability) (Format, bool) {
	for _, f := range reg.All() {
		if avail[f] {
			return f, true
		}
	}
	return 0, false
}

// Resolve turns a requested format id into a usable one. An explicit request
// is honored when the id is registered and available; anything else falls
// back to the most preferred available backend. An unknown id behaves
// exactly like an unavailable one. The decision is logged so overrides are
// observable.
func Resolve(logger *zap.Logger, reg *Registry, avail Availability, requested string) (Format, error) {
	if requested == "" {
		requested = DefaultFormatID
	}
	if f, err := reg.Lookup(requested); err == nil {
		if avail[f] {
			logger.Debug("archiver request honored", zap.String("format", requested))
			return f, nil
		}
	} else {
		logger.Warn("unknown archiver requested",
			zap.String("requested", requested),
			zap.Strings("known", reg.IDs()),
		)
	}

	f, ok := MostPreferred(reg, avail)
	if !ok {
		return 0, &NoArchiverAvailableError{Checked: reg.IDs()}
	}
	logger.Info("requested archiver not usable, falling back",
		zap.String("requested", requested),
		zap.String("chosen", reg.Spec(f).ID),
	)
	return f, nil
}
