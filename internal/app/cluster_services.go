package app

import (
	"context"
	"fmt"

	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
	"github.com/jack0rich/BigdataServer/internal/pkg/metrics"
)

// clusterManagementService implements cluster.ManagementService on top of the
// container-engine connector.
type clusterManagementService struct {
	connector cluster.Connector
	logger    logger.Logger
}

// NewClusterManagementService creates the container management service.
func NewClusterManagementService(connector cluster.Connector, logger logger.Logger) (cluster.ManagementService, error) {
	if connector == nil {
		return nil, fmt.Errorf("connector must not be nil")
	}
	return &clusterManagementService{
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *clusterManagementService) Ping(ctx context.Context) error {
	err := s.connector.Ping(ctx)
	metrics.ObserveBackend(config.BackendDocker, "ping", err)
	if err != nil {
		s.logger.Error("Container engine unreachable: ", err)
	}
	return err
}

func (s *clusterManagementService) ListContainers(ctx context.Context, all bool) ([]*cluster.Container, error) {
	containers, err := s.connector.ListContainers(ctx, all)
	metrics.ObserveBackend(config.BackendDocker, "list_containers", err)
	if err != nil {
		s.logger.Error("Failed to list containers: ", err)
		return nil, err
	}
	return containers, nil
}

func (s *clusterManagementService) RestartContainer(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("container name must not be empty")
	}

	err := s.connector.RestartContainer(ctx, name)
	metrics.ObserveBackend(config.BackendDocker, "restart_container", err)
	if err != nil {
		s.logger.Error("Failed to restart container ", name, ": ", err)
	}
	return err
}

func (s *clusterManagementService) ContainerLogs(ctx context.Context, name string, tail int) (string, error) {
	if name == "" {
		return "", fmt.Errorf("container name must not be empty")
	}

	logs, err := s.connector.ContainerLogs(ctx, name, tail)
	metrics.ObserveBackend(config.BackendDocker, "container_logs", err)
	if err != nil {
		s.logger.Error("Failed to fetch logs of container ", name, ": ", err)
		return "", err
	}
	return logs, nil
}
