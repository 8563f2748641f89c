//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
)

func TestSystemHandler_Health(t *testing.T) {
	handler := NewSystemHandler(new(MockManagementService), "1.2.3")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)
	c.Request = req

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "1.2.3", response.Version)
	assert.False(t, response.Timestamp.IsZero())
}

func TestSystemHandler_ListContainers_Success(t *testing.T) {
	mockService := new(MockManagementService)
	handler := NewSystemHandler(mockService, "1.2.3")

	mockService.
		On("ListContainers", mock.Anything, true).
		Return([]*cluster.Container{{ID: "abc123", Names: []string{"namenode"}, State: "running"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/system/containers?all=true", nil)
	require.NoError(t, err)
	c.Request = req

	handler.ListContainers(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var responses []ContainerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responses))
	require.Len(t, responses, 1)
	assert.Equal(t, []string{"namenode"}, responses[0].Names)
}

func TestSystemHandler_RestartContainer_NotFound(t *testing.T) {
	mockService := new(MockManagementService)
	handler := NewSystemHandler(mockService, "1.2.3")

	mockService.On("RestartContainer", mock.Anything, "missing").Return(cluster.ErrContainerNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/system/containers/missing/restart", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "name", Value: "missing"}}

	handler.RestartContainer(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, CodeContainerNotFound, response.Code)
}

func TestSystemHandler_ContainerLogs_Success(t *testing.T) {
	mockService := new(MockManagementService)
	handler := NewSystemHandler(mockService, "1.2.3")

	mockService.On("ContainerLogs", mock.Anything, "namenode", 50).Return("starting namenode\n", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/system/containers/namenode/logs?tail=50", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "name", Value: "namenode"}}

	handler.ContainerLogs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ContainerLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "namenode", response.Name)
	assert.Equal(t, "starting namenode\n", response.Logs)
}
