// Package archiver models the external archiving tools dirpack can drive:
// which formats exist, how they are detected on the host, and which one is
// picked for a given request. It never runs the tools itself; callers take
// the materialized command line and execute it.
package archiver

// Format identifies one supported archiving backend. The declaration order
// is the selection priority: Zip7 is the most preferred backend, Zip the
// least.
type Format uint8

const (
	Zip7 Format = iota
	TarBz2
	TarGz
	Zip

	formatCount
)

// Spec describes how one backend is probed and invoked. Command templates
// carry two positional slots: %[1]s is the archive path, %[2]s is the
// content path when packing or the destination directory when unpacking.
type Spec struct {
	ID             string
	DisplayName    string
	Extension      string
	PackTemplate   string
	UnpackTemplate string

	// Programs that must be present on the search path for the backend to
	// be usable. Pack and unpack are checked independently; a backend whose
	// archives could not be unpacked again is treated as not usable.
	PackPrograms   []string
	UnpackPrograms []string
}

var specs = [formatCount]Spec{
	Zip7: {
		ID:             "7z",
		DisplayName:    "7-Zip",
		Extension:      ".7z",
		PackTemplate:   "7z a -y %[1]s %[2]s",
		UnpackTemplate: "7z x -y %[1]s -o%[2]s -r",
		PackPrograms:   []string{"7z"},
		UnpackPrograms: []string{"7z"},
	},
	TarBz2: {
		ID:             "bz2",
		DisplayName:    "tar with bzip2",
		Extension:      ".tar.bz2",
		PackTemplate:   "tar -jcvf %[1]s %[2]s",
		UnpackTemplate: "tar -jxvf %[1]s -C %[2]s",
		PackPrograms:   []string{"tar", "bzip2"},
		UnpackPrograms: []string{"tar", "bzip2"},
	},
	TarGz: {
		ID:             "gzip",
		DisplayName:    "tar with gzip",
		Extension:      ".tar.gz",
		PackTemplate:   "tar -zcvf %[1]s %[2]s",
		UnpackTemplate: "tar -zxvf %[1]s -C %[2]s",
		PackPrograms:   []string{"tar", "gzip"},
		UnpackPrograms: []string{"tar", "gzip"},
	},
	Zip: {
		ID:             "zip",
		DisplayName:    "Info-ZIP",
		Extension:      ".zip",
		PackTemplate:   "zip -r -9 %[1]s %[2]s",
		UnpackTemplate: "unzip %[1]s -d %[2]s",
		PackPrograms:   []string{"zip"},
		UnpackPrograms: []string{"unzip"},
	},
}

// Priority returns the selection rank of the format, lower is preferred.
func (f Format) Priority() int {
	return int(f)
}

// String returns the short id of the format ("7z", "bz2", "gzip", "zip").
func (f Format) String() string {
	if f >= formatCount {
		return "unknown"
	}
	return specs[f].ID
}
