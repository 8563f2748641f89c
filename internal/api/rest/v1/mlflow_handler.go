package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
)

// MLflowHandler defines the interface for handling model-tracking operations
type MLflowHandler interface {
	CreateExperiment(ctx *gin.Context)
	GetExperiment(ctx *gin.Context)
	RegisterModel(ctx *gin.Context)
	TransitionStage(ctx *gin.Context)
	ListModelVersions(ctx *gin.Context)
}

type mlflowHandler struct {
	trackingService mlflow.TrackingService
}

// NewMLflowHandler creates a new MLflowHandler
func NewMLflowHandler(trackingService mlflow.TrackingService) MLflowHandler {
	return &mlflowHandler{trackingService: trackingService}
}

// CreateExperiment creates a tracking experiment with optional tags
func (handler *mlflowHandler) CreateExperiment(ctx *gin.Context) {
	var request CreateExperimentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	experiment, err := handler.trackingService.CreateExperiment(ctx, request.Name, request.Tags)
	if err != nil {
		respondMLflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newExperimentResponse(experiment))
}

// GetExperiment fetches a tracking experiment by ID
func (handler *mlflowHandler) GetExperiment(ctx *gin.Context) {
	experiment, err := handler.trackingService.GetExperiment(ctx, ctx.Param("id"))
	if err != nil {
		respondMLflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newExperimentResponse(experiment))
}

// RegisterModel registers a run's model artifact in the registry
func (handler *mlflowHandler) RegisterModel(ctx *gin.Context) {
	var request RegisterModelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	version, err := handler.trackingService.RegisterModel(ctx, request.RunID, request.Name)
	if err != nil {
		respondMLflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newModelVersionResponse(version))
}

// TransitionStage moves a model version to a new registry stage
func (handler *mlflowHandler) TransitionStage(ctx *gin.Context) {
	var request TransitionStageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	if _, err := mlflow.NormalizeStage(request.Stage); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	version, err := handler.trackingService.TransitionModelStage(ctx, ctx.Param("name"), ctx.Param("version"), request.Stage)
	if err != nil {
		respondMLflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newModelVersionResponse(version))
}

// ListModelVersions lists registry versions of a model, optionally filtered
func (handler *mlflowHandler) ListModelVersions(ctx *gin.Context) {
	versions, err := handler.trackingService.SearchModelVersions(ctx, ctx.Param("name"), ctx.Query("filter"))
	if err != nil {
		respondMLflowError(ctx, err)
		return
	}

	responses := make([]ModelVersionResponse, 0, len(versions))
	for _, version := range versions {
		responses = append(responses, newModelVersionResponse(version))
	}
	ctx.JSON(http.StatusOK, responses)
}
