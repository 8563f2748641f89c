package connector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// airflowAPIPrefix is the REST root of the Airflow webserver.
const airflowAPIPrefix = "/api/v1"

// airflowConnector implements airflow.Connector against a webserver.
type airflowConnector struct {
	client *resty.Client
	logger logger.Logger
}

// NewAirflowConnector creates an Airflow REST client from the configured settings.
func NewAirflowConnector(settings *config.AirflowSettings, logger logger.Logger) (airflow.Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(settings.BaseURL).
		SetTimeout(settings.Timeout).
		SetBasicAuth(settings.Username, settings.Password)

	return &airflowConnector{
		client: client,
		logger: logger,
	}, nil
}

// wire types

type airflowDAG struct {
	DAGID       string `json:"dag_id"`
	Description string `json:"description"`
	IsPaused    bool   `json:"is_paused"`
	IsActive    bool   `json:"is_active"`
	Owners      []string `json:"owners"`
	Tags        []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

type airflowDAGRun struct {
	DAGRunID    string                 `json:"dag_run_id"`
	DAGID       string                 `json:"dag_id"`
	State       string                 `json:"state"`
	LogicalDate string                 `json:"logical_date"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Conf        map[string]interface{} `json:"conf"`
	Note        string                 `json:"note"`
}

type airflowErrorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

func (c *airflowConnector) TriggerDAG(ctx context.Context, dagID string, conf map[string]interface{}) (*airflow.DAGRun, error) {
	if conf == nil {
		conf = map[string]interface{}{}
	}

	var result airflowDAGRun
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"conf": conf,
			"note": airflow.TriggerNote,
		}).
		SetResult(&result).
		Post(airflowAPIPrefix + "/dags/" + dagID + "/dagRuns")
	if err != nil {
		return nil, fmt.Errorf("airflow trigger request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.logger.Info("Triggered dag ", dagID, " run ", result.DAGRunID)
	return result.toDomain(), nil
}

func (c *airflowConnector) ListDAGs(ctx context.Context, limit, offset int) ([]*airflow.DAG, error) {
	var result struct {
		DAGs []airflowDAG `json:"dags"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"limit":  fmt.Sprintf("%d", limit),
			"offset": fmt.Sprintf("%d", offset),
		}).
		SetResult(&result).
		Get(airflowAPIPrefix + "/dags")
	if err != nil {
		return nil, fmt.Errorf("airflow list dags request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	dags := make([]*airflow.DAG, 0, len(result.DAGs))
	for _, entry := range result.DAGs {
		dags = append(dags, entry.toDomain())
	}
	return dags, nil
}

func (c *airflowConnector) GetDAG(ctx context.Context, dagID string) (*airflow.DAG, error) {
	var result airflowDAG
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(airflowAPIPrefix + "/dags/" + dagID)
	if err != nil {
		return nil, fmt.Errorf("airflow get dag request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	return result.toDomain(), nil
}

func (c *airflowConnector) SetPaused(ctx context.Context, dagID string, paused bool) (*airflow.DAG, error) {
	var result airflowDAG
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("update_mask", "is_paused").
		SetBody(map[string]bool{"is_paused": paused}).
		SetResult(&result).
		Patch(airflowAPIPrefix + "/dags/" + dagID)
	if err != nil {
		return nil, fmt.Errorf("airflow set paused request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.logger.Info("Set dag ", dagID, " paused=", paused)
	return result.toDomain(), nil
}

func (c *airflowConnector) ListDAGRuns(ctx context.Context, dagID string) ([]*airflow.DAGRun, error) {
	var result struct {
		DAGRuns []airflowDAGRun `json:"dag_runs"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("order_by", "-logical_date").
		SetResult(&result).
		Get(airflowAPIPrefix + "/dags/" + dagID + "/dagRuns")
	if err != nil {
		return nil, fmt.Errorf("airflow list dag runs request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	runs := make([]*airflow.DAGRun, 0, len(result.DAGRuns))
	for _, entry := range result.DAGRuns {
		runs = append(runs, entry.toDomain())
	}
	return runs, nil
}

func (c *airflowConnector) GetDAGRun(ctx context.Context, dagID, runID string) (*airflow.DAGRun, error) {
	var result airflowDAGRun
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(airflowAPIPrefix + "/dags/" + dagID + "/dagRuns/" + runID)
	if err != nil {
		return nil, fmt.Errorf("airflow get dag run request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	return result.toDomain(), nil
}

func (c *airflowConnector) DeleteDAGRun(ctx context.Context, dagID, runID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(airflowAPIPrefix + "/dags/" + dagID + "/dagRuns/" + runID)
	if err != nil {
		return fmt.Errorf("airflow delete dag run request failed: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}

	c.logger.Info("Deleted dag run ", runID, " of dag ", dagID)
	return nil
}

// apiError maps an Airflow error response to the gateway's sentinel errors.
func (c *airflowConnector) apiError(resp *resty.Response) error {
	var apiErr airflowErrorResponse
	_ = decodeJSON(resp.Body(), &apiErr)

	c.logger.Error("Airflow API error: status ", resp.StatusCode(), " title ", apiErr.Title)

	message := apiErr.Detail
	if message == "" {
		message = apiErr.Title
	}
	if message == "" {
		message = resp.Status()
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", airflow.ErrDAGNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", airflow.ErrDAGAlreadyRunning, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", airflow.ErrUnauthorized, message)
	default:
		return fmt.Errorf("airflow operation failed: %s", message)
	}
}

func (d airflowDAG) toDomain() *airflow.DAG {
	tags := make([]string, 0, len(d.Tags))
	for _, tag := range d.Tags {
		tags = append(tags, tag.Name)
	}

	return &airflow.DAG{
		ID:          d.DAGID,
		Description: d.Description,
		IsPaused:    d.IsPaused,
		IsActive:    d.IsActive,
		Owners:      d.Owners,
		Tags:        tags,
	}
}

func (r airflowDAGRun) toDomain() *airflow.DAGRun {
	return &airflow.DAGRun{
		DAGID:       r.DAGID,
		RunID:       r.DAGRunID,
		State:       r.State,
		LogicalDate: parseAirflowTime(r.LogicalDate),
		StartDate:   parseAirflowTime(r.StartDate),
		EndDate:     parseAirflowTime(r.EndDate),
		Conf:        r.Conf,
		Note:        r.Note,
	}
}

func parseAirflowTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
