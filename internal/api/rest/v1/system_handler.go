package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/pkg/strutil"
)

// SystemHandler defines the interface for health and container operations
type SystemHandler interface {
	Health(ctx *gin.Context)
	ListContainers(ctx *gin.Context)
	RestartContainer(ctx *gin.Context)
	ContainerLogs(ctx *gin.Context)
}

type systemHandler struct {
	managementService cluster.ManagementService
	version           string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(managementService cluster.ManagementService, version string) SystemHandler {
	return &systemHandler{
		managementService: managementService,
		version:           version,
	}
}

// Health reports gateway liveness
func (handler *systemHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   handler.version,
		Timestamp: time.Now().UTC(),
	})
}

// ListContainers lists cluster containers
func (handler *systemHandler) ListContainers(ctx *gin.Context) {
	all := false
	if value := ctx.Query("all"); len(value) > 0 {
		all = strutil.ConvertToBool(value)
	}

	containers, err := handler.managementService.ListContainers(ctx, all)
	if err != nil {
		respondClusterError(ctx, err)
		return
	}

	responses := make([]ContainerResponse, 0, len(containers))
	for _, container := range containers {
		responses = append(responses, newContainerResponse(container))
	}
	ctx.JSON(http.StatusOK, responses)
}

// RestartContainer restarts a container by name or ID
func (handler *systemHandler) RestartContainer(ctx *gin.Context) {
	if err := handler.managementService.RestartContainer(ctx, ctx.Param("name")); err != nil {
		respondClusterError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "container restarted"})
}

// ContainerLogs returns the recent output of a container
func (handler *systemHandler) ContainerLogs(ctx *gin.Context) {
	tail := 0
	if value := ctx.Query("tail"); len(value) > 0 {
		tail = strutil.ConvertToInt(value)
	}

	name := ctx.Param("name")
	logs, err := handler.managementService.ContainerLogs(ctx, name, tail)
	if err != nil {
		respondClusterError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ContainerLogsResponse{Name: name, Logs: logs})
}
