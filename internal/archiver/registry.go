package archiver

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// UnknownFormatError is returned when a format id is not registered.
type UnknownFormatError struct {
	ID    string   // the requested id
	Known []string // registered ids
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown archive format %q (known: %v)", e.ID, e.Known)
}

// Registry holds the catalogue of supported formats. It is immutable after
// construction; availability is tracked separately (see Detector), never on
// the registry itself.
type Registry struct {
	specs [formatCount]Spec
}

func NewRegistry() *Registry {
	return &Registry{specs: specs}
}

// All returns every format in ascending priority order.
func (r *Registry) All() []Format {
	all := make([]Format, 0, formatCount)
	for f := Format(0); f < formatCount; f++ {
		all = append(all, f)
	}
	return all
}

// Spec returns the backend description for a format.
func (r *Registry) Spec(f Format) Spec {
	return r.specs[f]
}

// IDs returns the short ids of every registered format in priority order.
func (r *Registry) IDs() []string {
	return lo.Map(r.All(), func(f Format, _ int) string {
		return r.specs[f].ID
	})
}

// Lookup resolves a short id to its format.
func (r *Registry) Lookup(id string) (Format, error) {
	for _, f := range r.All() {
		if r.specs[f].ID == id {
			return f, nil
		}
	}
	return 0, &UnknownFormatError{ID: id, Known: r.IDs()}
}

// FormatForPath infers the format from an archive filename by its suffix.
// The longest matching extension wins, so "backup.tar.gz" resolves to the
// gzip backend rather than matching nothing on ".gz".
func (r *Registry) FormatForPath(name string) (Format, bool) {
	lower := strings.ToLower(name)
	best, found := Format(0), false
	bestLen := 0
	for _, f := range r.All() {
		ext := r.specs[f].Extension
		if strings.HasSuffix(lower, ext) && len(ext) > bestLen {
			best, found, bestLen = f, true, len(ext)
		}
	}
	return best, found
}
