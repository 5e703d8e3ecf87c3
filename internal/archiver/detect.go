package archiver

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Availability is the result of one detection pass: a snapshot of which
// formats are usable on the host. Each pass produces a fresh snapshot; the
// registry itself is never mutated.
type Availability map[Format]bool

// Summary renders the snapshot for logging, naming each found backend.
func (a Availability) Summary(reg *Registry) string {
	found := lo.Filter(reg.All(), func(f Format, _ int) bool {
		return a[f]
	})
	if len(found) == 0 {
		return "no archiver found"
	}
	names := lo.Map(found, func(f Format, _ int) string {
		return reg.Spec(f).DisplayName
	})
	return strings.Join(names, ", ") + " found"
}

// Detector probes the host's executable search path for the programs each
// backend needs. Detection is existence-only: a program counts as present
// when a regular file with its name sits in a search path directory. The
// archivers are never spawned.
type Detector struct {
	logger    *zap.Logger
	fs        afero.Fs
	dirs      []string
	exeSuffix bool
}

// NewDetector builds a detector over an explicit filesystem and search path
// list (the PATH format of the host). exeSuffix additionally probes the
// ".exe" suffixed name, for hosts using the Windows naming convention.
func NewDetector(logger *zap.Logger, fs afero.Fs, pathList string, exeSuffix bool) *Detector {
	return &Detector{
		logger:    logger,
		fs:        fs,
		dirs:      filepath.SplitList(pathList),
		exeSuffix: exeSuffix,
	}
}

// HostDetector builds a detector over the real filesystem and the ambient
// PATH. An unset PATH is treated as an empty search path, not an error.
func HostDetector(logger *zap.Logger) *Detector {
	return NewDetector(logger, afero.NewOsFs(), os.Getenv("PATH"), runtime.GOOS == "windows")
}

// Detect probes every format in the registry and returns a fresh
// availability snapshot. It is idempotent and never fails: unreadable search
// path entries count as "program not found there".
func (d *Detector) Detect(reg *Registry) Availability {
	avail := make(Availability, formatCount)
	for _, f := range reg.All() {
		spec := reg.Spec(f)
		ok := d.allPresent(spec.PackPrograms) && d.allPresent(spec.UnpackPrograms)
		avail[f] = ok
		d.logger.Debug("archiver probe",
			zap.String("format", spec.ID),
			zap.Strings("pack_programs", spec.PackPrograms),
			zap.Strings("unpack_programs", spec.UnpackPrograms),
			zap.Bool("available", ok),
		)
	}
	d.logger.Info("archiver detection finished", zap.String("summary", avail.Summary(reg)))
	return avail
}

func (d *Detector) allPresent(programs []string) bool {
	for _, program := range programs {
		if !d.present(program) {
			return false
		}
	}
	return true
}

func (d *Detector) present(program string) bool {
	names := []string{program}
	if d.exeSuffix {
		names = append(names, program+".exe")
	}
	for _, dir := range d.dirs {
		for _, name := range names {
			info, err := d.fs.Stat(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			if info.Mode().IsRegular() {
				return true
			}
		}
	}
	return false
}
