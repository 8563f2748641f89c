//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// MockFileService is a mock implementation of hdfs.FileService
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, path string, content []byte, opts hdfs.UploadOptions) (*hdfs.FileStatus, error) {
	args := m.Called(ctx, path, content, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hdfs.FileStatus), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, path string, recursive bool) error {
	args := m.Called(ctx, path, recursive)
	return args.Error(0)
}

func (m *MockFileService) List(ctx context.Context, path string) ([]*hdfs.FileStatus, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hdfs.FileStatus), args.Error(1)
}

func (m *MockFileService) Mkdir(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockFileService) Rename(ctx context.Context, src, dst string) error {
	args := m.Called(ctx, src, dst)
	return args.Error(0)
}

func (m *MockFileService) Status(ctx context.Context, path string) (*hdfs.FileStatus, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hdfs.FileStatus), args.Error(1)
}

// MockTrackingService is a mock implementation of mlflow.TrackingService
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) CreateExperiment(ctx context.Context, name string, tags map[string]string) (*mlflow.Experiment, error) {
	args := m.Called(ctx, name, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mlflow.Experiment), args.Error(1)
}

func (m *MockTrackingService) GetExperiment(ctx context.Context, experimentID string) (*mlflow.Experiment, error) {
	args := m.Called(ctx, experimentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mlflow.Experiment), args.Error(1)
}

func (m *MockTrackingService) RegisterModel(ctx context.Context, runID, modelName string) (*mlflow.ModelVersion, error) {
	args := m.Called(ctx, runID, modelName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mlflow.ModelVersion), args.Error(1)
}

func (m *MockTrackingService) TransitionModelStage(ctx context.Context, modelName, version, stage string) (*mlflow.ModelVersion, error) {
	args := m.Called(ctx, modelName, version, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mlflow.ModelVersion), args.Error(1)
}

func (m *MockTrackingService) SearchModelVersions(ctx context.Context, modelName, filter string) ([]*mlflow.ModelVersion, error) {
	args := m.Called(ctx, modelName, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mlflow.ModelVersion), args.Error(1)
}

// MockWorkflowService is a mock implementation of airflow.WorkflowService
type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) TriggerDAG(ctx context.Context, dagID string, conf map[string]interface{}) (*airflow.DAGRun, error) {
	args := m.Called(ctx, dagID, conf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airflow.DAGRun), args.Error(1)
}

func (m *MockWorkflowService) ListDAGs(ctx context.Context, limit, offset int) ([]*airflow.DAG, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*airflow.DAG), args.Error(1)
}

func (m *MockWorkflowService) GetDAG(ctx context.Context, dagID string) (*airflow.DAG, error) {
	args := m.Called(ctx, dagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airflow.DAG), args.Error(1)
}

func (m *MockWorkflowService) SetPaused(ctx context.Context, dagID string, paused bool) (*airflow.DAG, error) {
	args := m.Called(ctx, dagID, paused)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airflow.DAG), args.Error(1)
}

func (m *MockWorkflowService) ListDAGRuns(ctx context.Context, dagID string) ([]*airflow.DAGRun, error) {
	args := m.Called(ctx, dagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*airflow.DAGRun), args.Error(1)
}

func (m *MockWorkflowService) GetDAGRun(ctx context.Context, dagID, runID string) (*airflow.DAGRun, error) {
	args := m.Called(ctx, dagID, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airflow.DAGRun), args.Error(1)
}

func (m *MockWorkflowService) DeleteDAGRun(ctx context.Context, dagID, runID string) error {
	args := m.Called(ctx, dagID, runID)
	return args.Error(0)
}

// MockManagementService is a mock implementation of cluster.ManagementService
type MockManagementService struct {
	mock.Mock
}

func (m *MockManagementService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManagementService) ListContainers(ctx context.Context, all bool) ([]*cluster.Container, error) {
	args := m.Called(ctx, all)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cluster.Container), args.Error(1)
}

func (m *MockManagementService) RestartContainer(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockManagementService) ContainerLogs(ctx context.Context, name string, tail int) (string, error) {
	args := m.Called(ctx, name, tail)
	return args.String(0), args.Error(1)
}

// MockUserService is a mock implementation of users.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password string) (*users.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*users.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (*users.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockUserService) VerifyAPIKey(ctx context.Context, apiKey string) (*users.User, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) RotateAPIKey(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
