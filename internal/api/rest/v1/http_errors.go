package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// Error codes returned in ErrorResponse payloads.
const (
	CodeInvalidRequest = "INVALID_REQUEST"

	CodeHDFSPathNotFound    = "HDFS_PATH_NOT_FOUND"
	CodeHDFSPathExists      = "HDFS_PATH_EXISTS"
	CodeHDFSOperationFailed = "HDFS_OPERATION_FAILED"

	CodeMLflowNotFound        = "MLFLOW_NOT_FOUND"
	CodeMLflowUnauthorized    = "MLFLOW_UNAUTHORIZED"
	CodeMLflowOperationFailed = "MLFLOW_OPERATION_FAILED"

	CodeDAGNotFound            = "AIRFLOW_DAG_NOT_FOUND"
	CodeDAGAlreadyRunning      = "AIRFLOW_DAG_ALREADY_RUNNING"
	CodeAirflowUnauthorized    = "AIRFLOW_UNAUTHORIZED"
	CodeAirflowOperationFailed = "AIRFLOW_OPERATION_FAILED"

	CodeContainerNotFound     = "CONTAINER_NOT_FOUND"
	CodeDockerOperationFailed = "DOCKER_OPERATION_FAILED"

	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserStoreFailed    = "USER_STORE_FAILED"
)

func writeError(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, ErrorResponse{Code: code, Message: message})
}

func respondHDFSError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, hdfs.ErrPathNotFound):
		writeError(ctx, http.StatusNotFound, CodeHDFSPathNotFound, err.Error())
	case errors.Is(err, hdfs.ErrPathExists):
		writeError(ctx, http.StatusConflict, CodeHDFSPathExists, err.Error())
	default:
		writeError(ctx, http.StatusInternalServerError, CodeHDFSOperationFailed, err.Error())
	}
}

func respondMLflowError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, mlflow.ErrNotFound):
		writeError(ctx, http.StatusNotFound, CodeMLflowNotFound, err.Error())
	case errors.Is(err, mlflow.ErrUnauthorized):
		writeError(ctx, http.StatusBadGateway, CodeMLflowUnauthorized, err.Error())
	default:
		writeError(ctx, http.StatusInternalServerError, CodeMLflowOperationFailed, err.Error())
	}
}

func respondAirflowError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, airflow.ErrDAGNotFound):
		writeError(ctx, http.StatusNotFound, CodeDAGNotFound, err.Error())
	case errors.Is(err, airflow.ErrDAGAlreadyRunning):
		writeError(ctx, http.StatusConflict, CodeDAGAlreadyRunning, err.Error())
	case errors.Is(err, airflow.ErrUnauthorized):
		writeError(ctx, http.StatusBadGateway, CodeAirflowUnauthorized, err.Error())
	default:
		writeError(ctx, http.StatusInternalServerError, CodeAirflowOperationFailed, err.Error())
	}
}

func respondClusterError(ctx *gin.Context, err error) {
	if errors.Is(err, cluster.ErrContainerNotFound) {
		writeError(ctx, http.StatusNotFound, CodeContainerNotFound, err.Error())
		return
	}
	writeError(ctx, http.StatusInternalServerError, CodeDockerOperationFailed, err.Error())
}

func respondUserError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		writeError(ctx, http.StatusNotFound, CodeUserNotFound, err.Error())
	case errors.Is(err, users.ErrUsernameTaken):
		writeError(ctx, http.StatusConflict, CodeUsernameTaken, err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		writeError(ctx, http.StatusUnauthorized, CodeInvalidCredentials, err.Error())
	default:
		writeError(ctx, http.StatusInternalServerError, CodeUserStoreFailed, err.Error())
	}
}
