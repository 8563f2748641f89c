//go:build unit
// +build unit

package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
)

func newMLflowConnector(t *testing.T, baseURL string) mlflow.Connector {
	t.Helper()
	connector, err := NewMLflowConnector(&config.MLflowSettings{
		BaseURL: baseURL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, testLogger())
	require.NoError(t, err)
	return connector
}

func TestMLflowConnector_CreateExperiment(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/api/2.0/mlflow/experiments/create", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var payload struct {
			Name string `json:"name"`
			Tags []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"tags"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "churn-model", payload.Name)
		require.Len(t, payload.Tags, 1)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"experiment_id":"42"}`))
	})
	mux.HandleFunc("/api/2.0/mlflow/experiments/get", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("experiment_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"experiment":{"experiment_id":"42","name":"churn-model","artifact_location":"s3://mlflow/42","lifecycle_stage":"active"}}`))
	})

	connector := newMLflowConnector(t, server.URL)

	experiment, err := connector.CreateExperiment(context.Background(), "churn-model", map[string]string{"team": "ml"})
	require.NoError(t, err)
	assert.Equal(t, "42", experiment.ID)
	assert.Equal(t, "s3://mlflow/42", experiment.ArtifactLocation)
}

func TestMLflowConnector_RegisterModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/2.0/mlflow/model-versions/create", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "runs:/run-1/model", payload["source"])
		assert.Equal(t, "run-1", payload["run_id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model_version":{"name":"churn","version":"1","current_stage":"None","run_id":"run-1","source":"runs:/run-1/model","status":"READY"}}`))
	}))
	defer server.Close()

	connector := newMLflowConnector(t, server.URL)

	version, err := connector.RegisterModel(context.Background(), "run-1", "churn")
	require.NoError(t, err)
	assert.Equal(t, "1", version.Version)
	assert.Equal(t, mlflow.StageNone, version.Stage)
}

func TestMLflowConnector_TransitionModelStage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/2.0/mlflow/model-versions/transition-stage", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Production", payload["stage"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model_version":{"name":"churn","version":"1","current_stage":"Production"}}`))
	}))
	defer server.Close()

	connector := newMLflowConnector(t, server.URL)

	version, err := connector.TransitionModelStage(context.Background(), "churn", "1", mlflow.StageProduction)
	require.NoError(t, err)
	assert.Equal(t, mlflow.StageProduction, version.Stage)
}

func TestMLflowConnector_SearchModelVersions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `name='churn'`, r.URL.Query().Get("filter"))
		assert.Equal(t, "100", r.URL.Query().Get("max_results"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model_versions":[{"name":"churn","version":"1"},{"name":"churn","version":"2"}]}`))
	}))
	defer server.Close()

	connector := newMLflowConnector(t, server.URL)

	versions, err := connector.SearchModelVersions(context.Background(), `name='churn'`, 0)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "2", versions[1].Version)
}

func TestMLflowConnector_MapsResourceDoesNotExist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error_code":"RESOURCE_DOES_NOT_EXIST","message":"no experiment 99"}`))
	}))
	defer server.Close()

	connector := newMLflowConnector(t, server.URL)

	_, err := connector.GetExperiment(context.Background(), "99")
	require.ErrorIs(t, err, mlflow.ErrNotFound)
}

func TestMLflowConnector_MapsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	connector := newMLflowConnector(t, server.URL)

	_, err := connector.GetExperiment(context.Background(), "1")
	require.ErrorIs(t, err, mlflow.ErrUnauthorized)
}
