package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// mlflowAPIPrefix is the REST root of the MLflow tracking server.
const mlflowAPIPrefix = "/api/2.0/mlflow"

// mlflowConnector implements mlflow.Connector against a tracking server.
type mlflowConnector struct {
	client *resty.Client
	logger logger.Logger
}

// NewMLflowConnector creates an MLflow REST client from the configured settings.
func NewMLflowConnector(settings *config.MLflowSettings, logger logger.Logger) (mlflow.Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(settings.BaseURL).
		SetTimeout(settings.Timeout)
	if settings.Token != "" {
		client.SetAuthToken(settings.Token)
	}

	return &mlflowConnector{
		client: client,
		logger: logger,
	}, nil
}

// wire types

type mlflowTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type mlflowExperiment struct {
	ExperimentID     string `json:"experiment_id"`
	Name             string `json:"name"`
	ArtifactLocation string `json:"artifact_location"`
	LifecycleStage   string `json:"lifecycle_stage"`
}

type mlflowModelVersion struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	CurrentStage string `json:"current_stage"`
	RunID        string `json:"run_id"`
	Source       string `json:"source"`
	Status       string `json:"status"`
}

type mlflowErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func (c *mlflowConnector) CreateExperiment(ctx context.Context, name string, tags map[string]string) (*mlflow.Experiment, error) {
	payload := map[string]interface{}{"name": name}
	if len(tags) > 0 {
		wireTags := make([]mlflowTag, 0, len(tags))
		for key, value := range tags {
			wireTags = append(wireTags, mlflowTag{Key: key, Value: value})
		}
		payload["tags"] = wireTags
	}

	var result struct {
		ExperimentID string `json:"experiment_id"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(mlflowAPIPrefix + "/experiments/create")
	if err != nil {
		return nil, fmt.Errorf("mlflow create experiment request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.logger.Info("Created mlflow experiment ", name, " with id ", result.ExperimentID)
	return c.GetExperiment(ctx, result.ExperimentID)
}

func (c *mlflowConnector) GetExperiment(ctx context.Context, experimentID string) (*mlflow.Experiment, error) {
	var result struct {
		Experiment mlflowExperiment `json:"experiment"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("experiment_id", experimentID).
		SetResult(&result).
		Get(mlflowAPIPrefix + "/experiments/get")
	if err != nil {
		return nil, fmt.Errorf("mlflow get experiment request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	return result.Experiment.toDomain(), nil
}

func (c *mlflowConnector) RegisterModel(ctx context.Context, runID, modelName string) (*mlflow.ModelVersion, error) {
	var result struct {
		ModelVersion mlflowModelVersion `json:"model_version"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"name":   modelName,
			"source": mlflow.RunModelSource(runID),
			"run_id": runID,
		}).
		SetResult(&result).
		Post(mlflowAPIPrefix + "/model-versions/create")
	if err != nil {
		return nil, fmt.Errorf("mlflow register model request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.logger.Info("Registered model ", modelName, " version ", result.ModelVersion.Version, " from run ", runID)
	return result.ModelVersion.toDomain(), nil
}

func (c *mlflowConnector) TransitionModelStage(ctx context.Context, modelName, version, stage string) (*mlflow.ModelVersion, error) {
	var result struct {
		ModelVersion mlflowModelVersion `json:"model_version"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"name":    modelName,
			"version": version,
			"stage":   stage,
		}).
		SetResult(&result).
		Post(mlflowAPIPrefix + "/model-versions/transition-stage")
	if err != nil {
		return nil, fmt.Errorf("mlflow transition stage request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.logger.Info("Transitioned model ", modelName, " version ", version, " to stage ", stage)
	return result.ModelVersion.toDomain(), nil
}

func (c *mlflowConnector) SearchModelVersions(ctx context.Context, filter string, maxResults int) ([]*mlflow.ModelVersion, error) {
	if maxResults <= 0 {
		maxResults = mlflow.DefaultSearchMaxResults
	}

	var result struct {
		ModelVersions []mlflowModelVersion `json:"model_versions"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"filter":      filter,
			"max_results": fmt.Sprintf("%d", maxResults),
		}).
		SetResult(&result).
		Get(mlflowAPIPrefix + "/model-versions/search")
	if err != nil {
		return nil, fmt.Errorf("mlflow search model versions request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	versions := make([]*mlflow.ModelVersion, 0, len(result.ModelVersions))
	for _, entry := range result.ModelVersions {
		versions = append(versions, entry.toDomain())
	}
	return versions, nil
}

// apiError maps an MLflow error response to the gateway's sentinel errors.
func (c *mlflowConnector) apiError(resp *resty.Response) error {
	var apiErr mlflowErrorResponse
	_ = decodeJSON(resp.Body(), &apiErr)

	c.logger.Error("MLflow API error: status ", resp.StatusCode(), " code ", apiErr.ErrorCode)

	message := apiErr.Message
	if message == "" {
		message = resp.Status()
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound || apiErr.ErrorCode == "RESOURCE_DOES_NOT_EXIST":
		return fmt.Errorf("%w: %s", mlflow.ErrNotFound, message)
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", mlflow.ErrUnauthorized, message)
	default:
		return fmt.Errorf("mlflow operation failed: %s", message)
	}
}

func (e mlflowExperiment) toDomain() *mlflow.Experiment {
	return &mlflow.Experiment{
		ID:               e.ExperimentID,
		Name:             e.Name,
		ArtifactLocation: e.ArtifactLocation,
		LifecycleStage:   e.LifecycleStage,
	}
}

func (v mlflowModelVersion) toDomain() *mlflow.ModelVersion {
	return &mlflow.ModelVersion{
		Name:    v.Name,
		Version: v.Version,
		Stage:   v.CurrentStage,
		RunID:   v.RunID,
		Source:  v.Source,
		Status:  v.Status,
	}
}
