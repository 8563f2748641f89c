package app

import (
	"context"
	"fmt"

	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
	"github.com/jack0rich/BigdataServer/internal/pkg/metrics"
)

// mlflowTrackingService implements mlflow.TrackingService on top of the
// tracking-server connector.
type mlflowTrackingService struct {
	connector mlflow.Connector
	logger    logger.Logger
}

// NewMLflowTrackingService creates the model-tracking relay service.
func NewMLflowTrackingService(connector mlflow.Connector, logger logger.Logger) (mlflow.TrackingService, error) {
	if connector == nil {
		return nil, fmt.Errorf("connector must not be nil")
	}
	return &mlflowTrackingService{
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *mlflowTrackingService) CreateExperiment(ctx context.Context, name string, tags map[string]string) (*mlflow.Experiment, error) {
	if name == "" {
		return nil, fmt.Errorf("experiment name must not be empty")
	}

	experiment, err := s.connector.CreateExperiment(ctx, name, tags)
	metrics.ObserveBackend(config.BackendMLflow, "create_experiment", err)
	if err != nil {
		s.logger.Error("Failed to create experiment ", name, ": ", err)
		return nil, err
	}
	return experiment, nil
}

func (s *mlflowTrackingService) GetExperiment(ctx context.Context, experimentID string) (*mlflow.Experiment, error) {
	if experimentID == "" {
		return nil, fmt.Errorf("experiment id must not be empty")
	}

	experiment, err := s.connector.GetExperiment(ctx, experimentID)
	metrics.ObserveBackend(config.BackendMLflow, "get_experiment", err)
	if err != nil {
		s.logger.Error("Failed to get experiment ", experimentID, ": ", err)
		return nil, err
	}
	return experiment, nil
}

func (s *mlflowTrackingService) RegisterModel(ctx context.Context, runID, modelName string) (*mlflow.ModelVersion, error) {
	if runID == "" {
		return nil, fmt.Errorf("run id must not be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name must not be empty")
	}

	version, err := s.connector.RegisterModel(ctx, runID, modelName)
	metrics.ObserveBackend(config.BackendMLflow, "register_model", err)
	if err != nil {
		s.logger.Error("Failed to register model ", modelName, " from run ", runID, ": ", err)
		return nil, err
	}
	return version, nil
}

func (s *mlflowTrackingService) TransitionModelStage(ctx context.Context, modelName, version, stage string) (*mlflow.ModelVersion, error) {
	if modelName == "" {
		return nil, fmt.Errorf("model name must not be empty")
	}
	if version == "" {
		return nil, fmt.Errorf("model version must not be empty")
	}

	canonicalStage, err := mlflow.NormalizeStage(stage)
	if err != nil {
		return nil, err
	}

	modelVersion, err := s.connector.TransitionModelStage(ctx, modelName, version, canonicalStage)
	metrics.ObserveBackend(config.BackendMLflow, "transition_stage", err)
	if err != nil {
		s.logger.Error("Failed to transition model ", modelName, " version ", version, ": ", err)
		return nil, err
	}
	return modelVersion, nil
}

func (s *mlflowTrackingService) SearchModelVersions(ctx context.Context, modelName, filter string) ([]*mlflow.ModelVersion, error) {
	if filter == "" && modelName != "" {
		filter = fmt.Sprintf("name='%s'", modelName)
	}

	versions, err := s.connector.SearchModelVersions(ctx, filter, mlflow.DefaultSearchMaxResults)
	metrics.ObserveBackend(config.BackendMLflow, "search_versions", err)
	if err != nil {
		s.logger.Error("Failed to search model versions: ", err)
		return nil, err
	}
	return versions, nil
}
