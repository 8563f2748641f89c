// Package cluster defines the entities and contracts for managing the
// backend containers through the Docker Engine API.
package cluster

import "context"

// ManagementService defines the gateway-facing container operations.
type ManagementService interface {
	// Ping verifies connectivity with the container engine.
	Ping(ctx context.Context) error

	// ListContainers lists cluster containers, including stopped ones when
	// all is set.
	ListContainers(ctx context.Context, all bool) ([]*Container, error)

	// RestartContainer restarts a container by name or ID.
	RestartContainer(ctx context.Context, name string) error

	// ContainerLogs returns the last tail lines of a container's output.
	ContainerLogs(ctx context.Context, name string, tail int) (string, error)
}

// Connector is the wire-level client contract against the Docker Engine API.
type Connector interface {
	Ping(ctx context.Context) error
	ListContainers(ctx context.Context, all bool) ([]*Container, error)
	RestartContainer(ctx context.Context, name string) error
	ContainerLogs(ctx context.Context, name string, tail int) (string, error)
}
