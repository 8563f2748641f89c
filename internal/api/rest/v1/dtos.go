package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// ErrorResponse is the error payload of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InfoResponse acknowledges an operation that returns no entity.
type InfoResponse struct {
	Message string `json:"message"`
}

var validate = validator.New()

// CreateDirectoryRequest asks for a new directory on the storage cluster.
type CreateDirectoryRequest struct {
	Path string `json:"path" validate:"required"`
}

// Validate validates the CreateDirectoryRequest
func (r *CreateDirectoryRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// RenamePathRequest moves a storage path to a new destination.
type RenamePathRequest struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

// Validate validates the RenamePathRequest
func (r *RenamePathRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// CreateExperimentRequest creates a tracking experiment.
type CreateExperimentRequest struct {
	Name string            `json:"name" validate:"required"`
	Tags map[string]string `json:"tags"`
}

// Validate validates the CreateExperimentRequest
func (r *CreateExperimentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// RegisterModelRequest registers a run's model artifact in the registry.
type RegisterModelRequest struct {
	RunID string `json:"run_id" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

// Validate validates the RegisterModelRequest
func (r *RegisterModelRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// TransitionStageRequest moves a model version to a new registry stage.
type TransitionStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// Validate validates the TransitionStageRequest
func (r *TransitionStageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// TriggerDAGRequest starts a DAG run with an optional conf payload.
type TriggerDAGRequest struct {
	Conf map[string]interface{} `json:"conf"`
}

// SetPausedRequest pauses or resumes DAG scheduling.
type SetPausedRequest struct {
	IsPaused *bool `json:"is_paused" validate:"required"`
}

// Validate validates the SetPausedRequest
func (r *SetPausedRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// RegisterUserRequest creates a gateway user.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate validates the RegisterUserRequest
func (r *RegisterUserRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// UpdatePasswordRequest replaces a user's password.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// Validate validates the UpdatePasswordRequest
func (r *UpdatePasswordRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// FileStatusResponse describes one storage path.
type FileStatusResponse struct {
	Path             string    `json:"path"`
	Length           int64     `json:"length"`
	BlockSize        int64     `json:"block_size"`
	Replication      int       `json:"replication"`
	Type             string    `json:"type"`
	Owner            string    `json:"owner"`
	Group            string    `json:"group"`
	Permission       string    `json:"permission"`
	ModificationTime time.Time `json:"modification_time"`
}

func newFileStatusResponse(status *hdfs.FileStatus) FileStatusResponse {
	return FileStatusResponse{
		Path:             status.Path,
		Length:           status.Length,
		BlockSize:        status.BlockSize,
		Replication:      status.Replication,
		Type:             status.Type,
		Owner:            status.Owner,
		Group:            status.Group,
		Permission:       status.Permission,
		ModificationTime: status.ModificationTime,
	}
}

// ExperimentResponse describes a tracking experiment.
type ExperimentResponse struct {
	ID               string `json:"experiment_id"`
	Name             string `json:"name"`
	ArtifactLocation string `json:"artifact_location"`
	LifecycleStage   string `json:"lifecycle_stage"`
}

func newExperimentResponse(experiment *mlflow.Experiment) ExperimentResponse {
	return ExperimentResponse{
		ID:               experiment.ID,
		Name:             experiment.Name,
		ArtifactLocation: experiment.ArtifactLocation,
		LifecycleStage:   experiment.LifecycleStage,
	}
}

// ModelVersionResponse describes one registered model version.
type ModelVersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Stage   string `json:"stage"`
	RunID   string `json:"run_id"`
	Source  string `json:"source"`
	Status  string `json:"status"`
}

func newModelVersionResponse(version *mlflow.ModelVersion) ModelVersionResponse {
	return ModelVersionResponse{
		Name:    version.Name,
		Version: version.Version,
		Stage:   version.Stage,
		RunID:   version.RunID,
		Source:  version.Source,
		Status:  version.Status,
	}
}

// DAGResponse describes one orchestrator DAG.
type DAGResponse struct {
	ID          string   `json:"dag_id"`
	Description string   `json:"description"`
	IsPaused    bool     `json:"is_paused"`
	IsActive    bool     `json:"is_active"`
	Owners      []string `json:"owners"`
	Tags        []string `json:"tags"`
}

func newDAGResponse(dag *airflow.DAG) DAGResponse {
	return DAGResponse{
		ID:          dag.ID,
		Description: dag.Description,
		IsPaused:    dag.IsPaused,
		IsActive:    dag.IsActive,
		Owners:      dag.Owners,
		Tags:        dag.Tags,
	}
}

// DAGRunResponse describes one DAG run.
type DAGRunResponse struct {
	DAGID       string                 `json:"dag_id"`
	RunID       string                 `json:"dag_run_id"`
	State       string                 `json:"state"`
	LogicalDate time.Time              `json:"logical_date"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     time.Time              `json:"end_date"`
	Conf        map[string]interface{} `json:"conf"`
	Note        string                 `json:"note"`
}

func newDAGRunResponse(run *airflow.DAGRun) DAGRunResponse {
	return DAGRunResponse{
		DAGID:       run.DAGID,
		RunID:       run.RunID,
		State:       run.State,
		LogicalDate: run.LogicalDate,
		StartDate:   run.StartDate,
		EndDate:     run.EndDate,
		Conf:        run.Conf,
		Note:        run.Note,
	}
}

// ContainerResponse describes one cluster container.
type ContainerResponse struct {
	ID     string   `json:"id"`
	Names  []string `json:"names"`
	Image  string   `json:"image"`
	State  string   `json:"state"`
	Status string   `json:"status"`
}

func newContainerResponse(container *cluster.Container) ContainerResponse {
	return ContainerResponse{
		ID:     container.ID,
		Names:  container.Names,
		Image:  container.Image,
		State:  container.State,
		Status: container.Status,
	}
}

// ContainerLogsResponse carries a container's recent output.
type ContainerLogsResponse struct {
	Name string `json:"name"`
	Logs string `json:"logs"`
}

// UserResponse describes a gateway user without credential material.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// RegisterUserResponse returns the created user and its one-time API key.
type RegisterUserResponse struct {
	User   UserResponse `json:"user"`
	APIKey string       `json:"api_key"`
}

// APIKeyResponse returns a freshly rotated one-time API key.
type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}

// SessionResponse returns a signed session token.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HealthResponse reports gateway liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
