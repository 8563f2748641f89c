package hdfs

import "errors"

// Sentinel errors mapped to gateway response codes by the REST layer.
var (
	// ErrPathNotFound indicates the requested path does not exist on the cluster.
	ErrPathNotFound = errors.New("hdfs path not found")

	// ErrPathExists indicates a create collided with an existing path.
	ErrPathExists = errors.New("hdfs path already exists")
)
