//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
)

func TestAirflowHandler_ListDAGs_Success(t *testing.T) {
	mockService := new(MockWorkflowService)
	handler := NewAirflowHandler(mockService)

	mockService.
		On("ListDAGs", mock.Anything, 25, 50).
		Return([]*airflow.DAG{{ID: "etl_daily", IsActive: true}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/airflow/dags?limit=25&offset=50", nil)
	require.NoError(t, err)
	c.Request = req

	handler.ListDAGs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var responses []DAGResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responses))
	require.Len(t, responses, 1)
	assert.Equal(t, "etl_daily", responses[0].ID)
}

func TestAirflowHandler_GetDAG_NotFound(t *testing.T) {
	mockService := new(MockWorkflowService)
	handler := NewAirflowHandler(mockService)

	mockService.On("GetDAG", mock.Anything, "missing").Return(nil, airflow.ErrDAGNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/airflow/dags/missing", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetDAG(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, CodeDAGNotFound, response.Code)
}

func TestAirflowHandler_SetPaused_RequiresField(t *testing.T) {
	handler := NewAirflowHandler(new(MockWorkflowService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPatch, "/airflow/dags/etl_daily", strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "etl_daily"}}

	handler.SetPaused(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAirflowHandler_SetPaused_Success(t *testing.T) {
	mockService := new(MockWorkflowService)
	handler := NewAirflowHandler(mockService)

	mockService.
		On("SetPaused", mock.Anything, "etl_daily", true).
		Return(&airflow.DAG{ID: "etl_daily", IsPaused: true}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPatch, "/airflow/dags/etl_daily",
		strings.NewReader(`{"is_paused":true}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "etl_daily"}}

	handler.SetPaused(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response DAGResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.IsPaused)
}

func TestAirflowHandler_TriggerDAG_Success(t *testing.T) {
	mockService := new(MockWorkflowService)
	handler := NewAirflowHandler(mockService)

	mockService.
		On("TriggerDAG", mock.Anything, "etl_daily", map[string]interface{}{"ds": "2024-01-01"}).
		Return(&airflow.DAGRun{DAGID: "etl_daily", RunID: "manual__2024-01-01", State: "queued"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/airflow/dags/etl_daily/runs",
		strings.NewReader(`{"conf":{"ds":"2024-01-01"}}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "etl_daily"}}

	handler.TriggerDAG(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response DAGRunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "manual__2024-01-01", response.RunID)
}

func TestAirflowHandler_TriggerDAG_Conflict(t *testing.T) {
	mockService := new(MockWorkflowService)
	handler := NewAirflowHandler(mockService)

	mockService.
		On("TriggerDAG", mock.Anything, "etl_daily", mock.Anything).
		Return(nil, airflow.ErrDAGAlreadyRunning)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/airflow/dags/etl_daily/runs", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "etl_daily"}}

	handler.TriggerDAG(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, CodeDAGAlreadyRunning, response.Code)
}

func TestAirflowHandler_DeleteDAGRun_Success(t *testing.T) {
	mockService := new(MockWorkflowService)
	handler := NewAirflowHandler(mockService)

	mockService.On("DeleteDAGRun", mock.Anything, "etl_daily", "run-1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodDelete, "/airflow/dags/etl_daily/runs/run-1", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "etl_daily"}, {Key: "runID", Value: "run-1"}}

	handler.DeleteDAGRun(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
