//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
)

func TestAirflowWorkflowService_TriggerRequiresDAGID(t *testing.T) {
	connector := &mockAirflowConnector{}
	service, err := NewAirflowWorkflowService(connector, testLogger())
	require.NoError(t, err)

	_, err = service.TriggerDAG(context.Background(), "", nil)
	require.Error(t, err)
	connector.AssertNotCalled(t, "TriggerDAG", mock.Anything, mock.Anything, mock.Anything)
}

func TestAirflowWorkflowService_TriggerPropagatesConflict(t *testing.T) {
	connector := &mockAirflowConnector{}
	service, err := NewAirflowWorkflowService(connector, testLogger())
	require.NoError(t, err)

	connector.
		On("TriggerDAG", mock.Anything, "etl_daily", map[string]interface{}{"ds": "2024-01-01"}).
		Return(nil, airflow.ErrDAGAlreadyRunning)

	_, err = service.TriggerDAG(context.Background(), "etl_daily", map[string]interface{}{"ds": "2024-01-01"})
	require.ErrorIs(t, err, airflow.ErrDAGAlreadyRunning)
}

func TestAirflowWorkflowService_ListDAGsAppliesPagingDefaults(t *testing.T) {
	connector := &mockAirflowConnector{}
	service, err := NewAirflowWorkflowService(connector, testLogger())
	require.NoError(t, err)

	connector.
		On("ListDAGs", mock.Anything, defaultDAGPageSize, 0).
		Return([]*airflow.DAG{{ID: "etl_daily"}}, nil)

	dags, err := service.ListDAGs(context.Background(), 0, -5)
	require.NoError(t, err)
	require.Len(t, dags, 1)
	assert.Equal(t, "etl_daily", dags[0].ID)
	connector.AssertExpectations(t)
}

func TestAirflowWorkflowService_SetPaused(t *testing.T) {
	connector := &mockAirflowConnector{}
	service, err := NewAirflowWorkflowService(connector, testLogger())
	require.NoError(t, err)

	connector.On("SetPaused", mock.Anything, "etl_daily", true).Return(&airflow.DAG{ID: "etl_daily", IsPaused: true}, nil)

	dag, err := service.SetPaused(context.Background(), "etl_daily", true)
	require.NoError(t, err)
	assert.True(t, dag.IsPaused)
}

func TestAirflowWorkflowService_RunOperationsRequireIDs(t *testing.T) {
	connector := &mockAirflowConnector{}
	service, err := NewAirflowWorkflowService(connector, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = service.GetDAGRun(ctx, "etl_daily", "")
	require.Error(t, err)

	require.Error(t, service.DeleteDAGRun(ctx, "", "run-1"))

	connector.On("DeleteDAGRun", mock.Anything, "etl_daily", "run-1").Return(nil)
	require.NoError(t, service.DeleteDAGRun(ctx, "etl_daily", "run-1"))
	connector.AssertExpectations(t)
}
