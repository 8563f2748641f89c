package connector

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// dockerConnector implements cluster.Connector against the Docker Engine API
// exposed over plain HTTP.
type dockerConnector struct {
	client *resty.Client
	logger logger.Logger
}

// NewDockerConnector creates a Docker Engine API client from the configured settings.
func NewDockerConnector(settings *config.DockerSettings, logger logger.Logger) (cluster.Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(settings.APIURL).
		SetTimeout(settings.Timeout)

	return &dockerConnector{
		client: client,
		logger: logger,
	}, nil
}

// wire types

type dockerContainer struct {
	ID     string   `json:"Id"`
	Names  []string `json:"Names"`
	Image  string   `json:"Image"`
	State  string   `json:"State"`
	Status string   `json:"Status"`
}

type dockerErrorResponse struct {
	Message string `json:"message"`
}

func (c *dockerConnector) Ping(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/_ping")
	if err != nil {
		return fmt.Errorf("docker ping request failed: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

func (c *dockerConnector) ListContainers(ctx context.Context, all bool) ([]*cluster.Container, error) {
	var result []dockerContainer
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("all", strconv.FormatBool(all)).
		SetResult(&result).
		Get("/containers/json")
	if err != nil {
		return nil, fmt.Errorf("docker list containers request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	containers := make([]*cluster.Container, 0, len(result))
	for _, entry := range result {
		containers = append(containers, entry.toDomain())
	}
	return containers, nil
}

func (c *dockerConnector) RestartContainer(ctx context.Context, name string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Post("/containers/" + name + "/restart")
	if err != nil {
		return fmt.Errorf("docker restart request failed: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}

	c.logger.Info("Restarted container ", name)
	return nil
}

func (c *dockerConnector) ContainerLogs(ctx context.Context, name string, tail int) (string, error) {
	if tail <= 0 {
		tail = cluster.DefaultLogTail
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"stdout": "1",
			"stderr": "1",
			"tail":   strconv.Itoa(tail),
		}).
		Get("/containers/" + name + "/logs")
	if err != nil {
		return "", fmt.Errorf("docker logs request failed: %w", err)
	}
	if resp.IsError() {
		return "", c.apiError(resp)
	}

	return demuxDockerLogs(resp.Body()), nil
}

// apiError maps a Docker Engine error response to the gateway's sentinel errors.
func (c *dockerConnector) apiError(resp *resty.Response) error {
	var apiErr dockerErrorResponse
	_ = decodeJSON(resp.Body(), &apiErr)

	c.logger.Error("Docker API error: status ", resp.StatusCode())

	message := apiErr.Message
	if message == "" {
		message = resp.Status()
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", cluster.ErrContainerNotFound, message)
	}
	return fmt.Errorf("docker operation failed: %s", message)
}

// demuxDockerLogs strips the 8-byte stream framing the engine uses for
// containers without a TTY. Raw TTY output is returned as-is.
func demuxDockerLogs(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if raw[0] > 2 {
		return string(raw)
	}

	var sb strings.Builder
	for len(raw) >= 8 {
		size := binary.BigEndian.Uint32(raw[4:8])
		raw = raw[8:]
		if uint32(len(raw)) < size {
			sb.Write(raw)
			break
		}
		sb.Write(raw[:size])
		raw = raw[size:]
	}
	return sb.String()
}

func (d dockerContainer) toDomain() *cluster.Container {
	names := make([]string, 0, len(d.Names))
	for _, name := range d.Names {
		names = append(names, strings.TrimPrefix(name, "/"))
	}

	return &cluster.Container{
		ID:     d.ID,
		Names:  names,
		Image:  d.Image,
		State:  d.State,
		Status: d.Status,
	}
}
