package hdfs

import "context"

// FileService defines the gateway-facing operations on cluster storage.
type FileService interface {
	// Upload writes content to the given HDFS path and returns the
	// resulting file status.
	Upload(ctx context.Context, path string, content []byte, opts UploadOptions) (*FileStatus, error)

	// Download retrieves the content of the file at the given path.
	Download(ctx context.Context, path string) ([]byte, error)

	// Delete removes a path, recursively when requested.
	Delete(ctx context.Context, path string, recursive bool) error

	// List returns the status of every entry directly under the given directory.
	List(ctx context.Context, path string) ([]*FileStatus, error)

	// Mkdir creates a directory including missing parents.
	Mkdir(ctx context.Context, path string) error

	// Rename moves a path to a new destination.
	Rename(ctx context.Context, src, dst string) error

	// Status returns the file status of a single path.
	Status(ctx context.Context, path string) (*FileStatus, error)
}

// Connector is the wire-level WebHDFS client contract. It mirrors
// FileService so the service layer can stay transport-agnostic.
type Connector interface {
	Upload(ctx context.Context, path string, content []byte, opts UploadOptions) (*FileStatus, error)
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string, recursive bool) error
	List(ctx context.Context, path string) ([]*FileStatus, error)
	Mkdir(ctx context.Context, path string) error
	Rename(ctx context.Context, src, dst string) error
	Status(ctx context.Context, path string) (*FileStatus, error)
}
