package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// SetupRoutes sets up all the API routes for version 1. Relay routes are
// guarded by apiKeyAuth; user-management routes by bearerAuth.
func SetupRoutes(r *gin.Engine,
	fileService hdfs.FileService,
	trackingService mlflow.TrackingService,
	workflowService airflow.WorkflowService,
	managementService cluster.ManagementService,
	userService users.UserService,
	apiKeyAuth gin.HandlerFunc,
	bearerAuth gin.HandlerFunc,
	version string) {

	systemHandler := NewSystemHandler(managementService, version)
	r.GET("/health", systemHandler.Health)

	v1 := r.Group(BasePath)

	// Credential routes
	userHandler := NewUserHandler(userService)
	v1.POST("/auth/login", userHandler.Login)
	v1.POST("/users", userHandler.Register)

	userRoutes := v1.Group("/users", bearerAuth)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.DELETE("/:id", userHandler.DeleteByID)
	userRoutes.PATCH("/:id/password", userHandler.UpdatePassword)
	userRoutes.POST("/:id/api-key", userHandler.RotateAPIKey)

	relay := v1.Group("", apiKeyAuth)

	// Storage routes
	hdfsHandler := NewHDFSHandler(fileService)
	relay.POST("/hdfs/files", hdfsHandler.UploadFile)
	relay.GET("/hdfs/files/content", hdfsHandler.DownloadFile)
	relay.GET("/hdfs/directories", hdfsHandler.ListDirectory)
	relay.POST("/hdfs/directories", hdfsHandler.CreateDirectory)
	relay.PUT("/hdfs/paths/rename", hdfsHandler.RenamePath)
	relay.GET("/hdfs/paths/status", hdfsHandler.GetStatus)
	relay.DELETE("/hdfs/paths", hdfsHandler.DeletePath)

	// Model tracking routes
	mlflowHandler := NewMLflowHandler(trackingService)
	relay.POST("/mlflow/experiments", mlflowHandler.CreateExperiment)
	relay.GET("/mlflow/experiments/:id", mlflowHandler.GetExperiment)
	relay.POST("/mlflow/models", mlflowHandler.RegisterModel)
	relay.POST("/mlflow/models/:name/versions/:version/stage", mlflowHandler.TransitionStage)
	relay.GET("/mlflow/models/:name/versions", mlflowHandler.ListModelVersions)

	// Orchestration routes
	airflowHandler := NewAirflowHandler(workflowService)
	relay.GET("/airflow/dags", airflowHandler.ListDAGs)
	relay.GET("/airflow/dags/:id", airflowHandler.GetDAG)
	relay.PATCH("/airflow/dags/:id", airflowHandler.SetPaused)
	relay.POST("/airflow/dags/:id/runs", airflowHandler.TriggerDAG)
	relay.GET("/airflow/dags/:id/runs", airflowHandler.ListDAGRuns)
	relay.GET("/airflow/dags/:id/runs/:runID", airflowHandler.GetDAGRun)
	relay.DELETE("/airflow/dags/:id/runs/:runID", airflowHandler.DeleteDAGRun)

	// Container routes
	relay.GET("/system/containers", systemHandler.ListContainers)
	relay.POST("/system/containers/:name/restart", systemHandler.RestartContainer)
	relay.GET("/system/containers/:name/logs", systemHandler.ContainerLogs)
}
