package hdfs

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBlockSize is the HDFS block size applied when the client does not
// request one (128 MB).
const DefaultBlockSize = 134217728

// DefaultReplication is the replication factor applied when the client does
// not request one.
const DefaultReplication = 3

// FileStatus describes a single path on the storage cluster.
type FileStatus struct {
	Path             string
	Length           int64
	BlockSize        int64
	Replication      int
	Type             string
	Owner            string
	Group            string
	Permission       string
	ModificationTime time.Time
}

// IsDirectory reports whether the status describes a directory entry.
func (f *FileStatus) IsDirectory() bool {
	return strings.EqualFold(f.Type, "DIRECTORY")
}

// UploadOptions carries the tunables of a WebHDFS CREATE operation.
type UploadOptions struct {
	Overwrite   bool
	Replication int   `validate:"omitempty,min=1,max=10"`
	BlockSize   int64 `validate:"omitempty,min=1048576"`
}

// Validate checks the upload options against the bounds the gateway accepts.
func (o *UploadOptions) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid upload options: %w", err)
	}
	return nil
}

// ApplyDefaults fills unset options with the cluster defaults.
func (o *UploadOptions) ApplyDefaults() {
	if o.Replication == 0 {
		o.Replication = DefaultReplication
	}
	if o.BlockSize == 0 {
		o.BlockSize = DefaultBlockSize
	}
}

// ValidatePath checks that an HDFS path is absolute and non-empty.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("hdfs path must not be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("hdfs path %q must be absolute", path)
	}
	return nil
}
