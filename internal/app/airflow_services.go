package app

import (
	"context"
	"fmt"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
	"github.com/jack0rich/BigdataServer/internal/pkg/metrics"
)

// defaultDAGPageSize bounds DAG listings relayed to the orchestrator.
const defaultDAGPageSize = 100

// airflowWorkflowService implements airflow.WorkflowService on top of the
// orchestrator connector.
type airflowWorkflowService struct {
	connector airflow.Connector
	logger    logger.Logger
}

// NewAirflowWorkflowService creates the orchestration relay service.
func NewAirflowWorkflowService(connector airflow.Connector, logger logger.Logger) (airflow.WorkflowService, error) {
	if connector == nil {
		return nil, fmt.Errorf("connector must not be nil")
	}
	return &airflowWorkflowService{
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *airflowWorkflowService) TriggerDAG(ctx context.Context, dagID string, conf map[string]interface{}) (*airflow.DAGRun, error) {
	if dagID == "" {
		return nil, fmt.Errorf("dag id must not be empty")
	}

	run, err := s.connector.TriggerDAG(ctx, dagID, conf)
	metrics.ObserveBackend(config.BackendAirflow, "trigger_dag", err)
	if err != nil {
		s.logger.Error("Failed to trigger dag ", dagID, ": ", err)
		return nil, err
	}
	return run, nil
}

func (s *airflowWorkflowService) ListDAGs(ctx context.Context, limit, offset int) ([]*airflow.DAG, error) {
	if limit <= 0 {
		limit = defaultDAGPageSize
	}
	if offset < 0 {
		offset = 0
	}

	dags, err := s.connector.ListDAGs(ctx, limit, offset)
	metrics.ObserveBackend(config.BackendAirflow, "list_dags", err)
	if err != nil {
		s.logger.Error("Failed to list dags: ", err)
		return nil, err
	}
	return dags, nil
}

func (s *airflowWorkflowService) GetDAG(ctx context.Context, dagID string) (*airflow.DAG, error) {
	if dagID == "" {
		return nil, fmt.Errorf("dag id must not be empty")
	}

	dag, err := s.connector.GetDAG(ctx, dagID)
	metrics.ObserveBackend(config.BackendAirflow, "get_dag", err)
	if err != nil {
		s.logger.Error("Failed to get dag ", dagID, ": ", err)
		return nil, err
	}
	return dag, nil
}

func (s *airflowWorkflowService) SetPaused(ctx context.Context, dagID string, paused bool) (*airflow.DAG, error) {
	if dagID == "" {
		return nil, fmt.Errorf("dag id must not be empty")
	}

	dag, err := s.connector.SetPaused(ctx, dagID, paused)
	metrics.ObserveBackend(config.BackendAirflow, "set_paused", err)
	if err != nil {
		s.logger.Error("Failed to set paused on dag ", dagID, ": ", err)
		return nil, err
	}
	return dag, nil
}

func (s *airflowWorkflowService) ListDAGRuns(ctx context.Context, dagID string) ([]*airflow.DAGRun, error) {
	if dagID == "" {
		return nil, fmt.Errorf("dag id must not be empty")
	}

	runs, err := s.connector.ListDAGRuns(ctx, dagID)
	metrics.ObserveBackend(config.BackendAirflow, "list_dag_runs", err)
	if err != nil {
		s.logger.Error("Failed to list runs of dag ", dagID, ": ", err)
		return nil, err
	}
	return runs, nil
}

func (s *airflowWorkflowService) GetDAGRun(ctx context.Context, dagID, runID string) (*airflow.DAGRun, error) {
	if dagID == "" || runID == "" {
		return nil, fmt.Errorf("dag id and run id must not be empty")
	}

	run, err := s.connector.GetDAGRun(ctx, dagID, runID)
	metrics.ObserveBackend(config.BackendAirflow, "get_dag_run", err)
	if err != nil {
		s.logger.Error("Failed to get run ", runID, " of dag ", dagID, ": ", err)
		return nil, err
	}
	return run, nil
}

func (s *airflowWorkflowService) DeleteDAGRun(ctx context.Context, dagID, runID string) error {
	if dagID == "" || runID == "" {
		return fmt.Errorf("dag id and run id must not be empty")
	}

	err := s.connector.DeleteDAGRun(ctx, dagID, runID)
	metrics.ObserveBackend(config.BackendAirflow, "delete_dag_run", err)
	if err != nil {
		s.logger.Error("Failed to delete run ", runID, " of dag ", dagID, ": ", err)
	}
	return err
}
