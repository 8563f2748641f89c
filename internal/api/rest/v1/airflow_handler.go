package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/pkg/strutil"
)

// AirflowHandler defines the interface for handling orchestration operations
type AirflowHandler interface {
	ListDAGs(ctx *gin.Context)
	GetDAG(ctx *gin.Context)
	SetPaused(ctx *gin.Context)
	TriggerDAG(ctx *gin.Context)
	ListDAGRuns(ctx *gin.Context)
	GetDAGRun(ctx *gin.Context)
	DeleteDAGRun(ctx *gin.Context)
}

type airflowHandler struct {
	workflowService airflow.WorkflowService
}

// NewAirflowHandler creates a new AirflowHandler
func NewAirflowHandler(workflowService airflow.WorkflowService) AirflowHandler {
	return &airflowHandler{workflowService: workflowService}
}

// ListDAGs pages through the DAGs registered with the orchestrator
func (handler *airflowHandler) ListDAGs(ctx *gin.Context) {
	var limit, offset int
	if value := ctx.Query("limit"); len(value) > 0 {
		limit = strutil.ConvertToInt(value)
	}
	if value := ctx.Query("offset"); len(value) > 0 {
		offset = strutil.ConvertToInt(value)
	}

	dags, err := handler.workflowService.ListDAGs(ctx, limit, offset)
	if err != nil {
		respondAirflowError(ctx, err)
		return
	}

	responses := make([]DAGResponse, 0, len(dags))
	for _, dag := range dags {
		responses = append(responses, newDAGResponse(dag))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetDAG fetches a single DAG
func (handler *airflowHandler) GetDAG(ctx *gin.Context) {
	dag, err := handler.workflowService.GetDAG(ctx, ctx.Param("id"))
	if err != nil {
		respondAirflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newDAGResponse(dag))
}

// SetPaused pauses or resumes scheduling for a DAG
func (handler *airflowHandler) SetPaused(ctx *gin.Context) {
	var request SetPausedRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	dag, err := handler.workflowService.SetPaused(ctx, ctx.Param("id"), *request.IsPaused)
	if err != nil {
		respondAirflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newDAGResponse(dag))
}

// TriggerDAG starts a new run of a DAG
func (handler *airflowHandler) TriggerDAG(ctx *gin.Context) {
	var request TriggerDAGRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
			return
		}
	}

	run, err := handler.workflowService.TriggerDAG(ctx, ctx.Param("id"), request.Conf)
	if err != nil {
		respondAirflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newDAGRunResponse(run))
}

// ListDAGRuns lists the runs recorded for a DAG
func (handler *airflowHandler) ListDAGRuns(ctx *gin.Context) {
	runs, err := handler.workflowService.ListDAGRuns(ctx, ctx.Param("id"))
	if err != nil {
		respondAirflowError(ctx, err)
		return
	}

	responses := make([]DAGRunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, newDAGRunResponse(run))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetDAGRun fetches a single DAG run
func (handler *airflowHandler) GetDAGRun(ctx *gin.Context) {
	run, err := handler.workflowService.GetDAGRun(ctx, ctx.Param("id"), ctx.Param("runID"))
	if err != nil {
		respondAirflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newDAGRunResponse(run))
}

// DeleteDAGRun removes a DAG run record
func (handler *airflowHandler) DeleteDAGRun(ctx *gin.Context) {
	if err := handler.workflowService.DeleteDAGRun(ctx, ctx.Param("id"), ctx.Param("runID")); err != nil {
		respondAirflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "dag run deleted"})
}
