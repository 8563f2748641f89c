package cluster

import "errors"

// ErrContainerNotFound indicates the named container is unknown to the engine.
var ErrContainerNotFound = errors.New("container not found")
