package v1

type BackupProfile struct {
	Kind     string     `yaml:"kind" json:"kind" validate:"required,eq=BackupProfile"`
	Metadata Metadata   `yaml:"metadata" json:"metadata"`
	Spec     BackupSpec `yaml:"spec" json:"spec"`
}

type Metadata struct {
	Name string `yaml:"name" json:"name" validate:"required"`
}

type BackupSpec struct {
	// SourceDir is the directory whose contents are archived.
	SourceDir string `yaml:"sourceDir" json:"sourceDir" validate:"required"`

	// Archiver is the preferred backend id. Empty selects the default;
	// an unavailable backend falls back to the best installed one.
	Archiver string `yaml:"archiver,omitempty" json:"archiver,omitempty" validate:"omitempty,oneof=7z bz2 gzip zip"`

	// Exclude lists additional top-level entry names to skip, merged with
	// the built-in OS artifact list.
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`

	Output *OutputSpec `yaml:"output,omitempty" json:"output,omitempty"`
}

// OutputSpec configures where the finished archive goes.
type OutputSpec struct {
	// Name overrides the generated archive filename. The backend's
	// canonical extension is used when Name is empty.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Destination configures delivery (default: current directory).
	Destination *DestinationSpec `yaml:"destination,omitempty" json:"destination,omitempty"`
}

// DestinationSpec configures the delivery target (one of the fields should be set).
type DestinationSpec struct {
	Folder *FolderSpec `yaml:"folder,omitempty" json:"folder,omitempty"`
	S3     *S3Spec     `yaml:"s3,omitempty" json:"s3,omitempty"`
}

// FolderSpec delivers the archive into a local directory.
type FolderSpec struct {
	Path string `yaml:"path" json:"path" validate:"required"`
}

// S3Spec delivers the archive to S3-compatible object storage.
type S3Spec struct {
	Bucket          string `yaml:"bucket" json:"bucket" validate:"required"`
	Region          string `yaml:"region,omitempty" json:"region,omitempty"`
	Endpoint        string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	Prefix          string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	AccessKeyID     string `yaml:"accessKeyId,omitempty" json:"accessKeyId,omitempty"`
	SecretAccessKey string `yaml:"secretAccessKey,omitempty" json:"secretAccessKey,omitempty"`
	ForcePathStyle  bool   `yaml:"forcePathStyle,omitempty" json:"forcePathStyle,omitempty"`
}
