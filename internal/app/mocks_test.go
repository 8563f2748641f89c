//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.NewConsoleLogger(config.LogLevelError)
}

type mockHDFSConnector struct {
	mock.Mock
}

func (m *mockHDFSConnector) Upload(ctx context.Context, path string, content []byte, opts hdfs.UploadOptions) (*hdfs.FileStatus, error) {
	args := m.Called(ctx, path, content, opts)
	status, _ := args.Get(0).(*hdfs.FileStatus)
	return status, args.Error(1)
}

func (m *mockHDFSConnector) Download(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *mockHDFSConnector) Delete(ctx context.Context, path string, recursive bool) error {
	return m.Called(ctx, path, recursive).Error(0)
}

func (m *mockHDFSConnector) List(ctx context.Context, path string) ([]*hdfs.FileStatus, error) {
	args := m.Called(ctx, path)
	statuses, _ := args.Get(0).([]*hdfs.FileStatus)
	return statuses, args.Error(1)
}

func (m *mockHDFSConnector) Mkdir(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *mockHDFSConnector) Rename(ctx context.Context, src, dst string) error {
	return m.Called(ctx, src, dst).Error(0)
}

func (m *mockHDFSConnector) Status(ctx context.Context, path string) (*hdfs.FileStatus, error) {
	args := m.Called(ctx, path)
	status, _ := args.Get(0).(*hdfs.FileStatus)
	return status, args.Error(1)
}

type mockMLflowConnector struct {
	mock.Mock
}

func (m *mockMLflowConnector) CreateExperiment(ctx context.Context, name string, tags map[string]string) (*mlflow.Experiment, error) {
	args := m.Called(ctx, name, tags)
	experiment, _ := args.Get(0).(*mlflow.Experiment)
	return experiment, args.Error(1)
}

func (m *mockMLflowConnector) GetExperiment(ctx context.Context, experimentID string) (*mlflow.Experiment, error) {
	args := m.Called(ctx, experimentID)
	experiment, _ := args.Get(0).(*mlflow.Experiment)
	return experiment, args.Error(1)
}

func (m *mockMLflowConnector) RegisterModel(ctx context.Context, runID, modelName string) (*mlflow.ModelVersion, error) {
	args := m.Called(ctx, runID, modelName)
	version, _ := args.Get(0).(*mlflow.ModelVersion)
	return version, args.Error(1)
}

func (m *mockMLflowConnector) TransitionModelStage(ctx context.Context, modelName, version, stage string) (*mlflow.ModelVersion, error) {
	args := m.Called(ctx, modelName, version, stage)
	modelVersion, _ := args.Get(0).(*mlflow.ModelVersion)
	return modelVersion, args.Error(1)
}

func (m *mockMLflowConnector) SearchModelVersions(ctx context.Context, filter string, maxResults int) ([]*mlflow.ModelVersion, error) {
	args := m.Called(ctx, filter, maxResults)
	versions, _ := args.Get(0).([]*mlflow.ModelVersion)
	return versions, args.Error(1)
}

type mockAirflowConnector struct {
	mock.Mock
}

func (m *mockAirflowConnector) TriggerDAG(ctx context.Context, dagID string, conf map[string]interface{}) (*airflow.DAGRun, error) {
	args := m.Called(ctx, dagID, conf)
	run, _ := args.Get(0).(*airflow.DAGRun)
	return run, args.Error(1)
}

func (m *mockAirflowConnector) ListDAGs(ctx context.Context, limit, offset int) ([]*airflow.DAG, error) {
	args := m.Called(ctx, limit, offset)
	dags, _ := args.Get(0).([]*airflow.DAG)
	return dags, args.Error(1)
}

func (m *mockAirflowConnector) GetDAG(ctx context.Context, dagID string) (*airflow.DAG, error) {
	args := m.Called(ctx, dagID)
	dag, _ := args.Get(0).(*airflow.DAG)
	return dag, args.Error(1)
}

func (m *mockAirflowConnector) SetPaused(ctx context.Context, dagID string, paused bool) (*airflow.DAG, error) {
	args := m.Called(ctx, dagID, paused)
	dag, _ := args.Get(0).(*airflow.DAG)
	return dag, args.Error(1)
}

func (m *mockAirflowConnector) ListDAGRuns(ctx context.Context, dagID string) ([]*airflow.DAGRun, error) {
	args := m.Called(ctx, dagID)
	runs, _ := args.Get(0).([]*airflow.DAGRun)
	return runs, args.Error(1)
}

func (m *mockAirflowConnector) GetDAGRun(ctx context.Context, dagID, runID string) (*airflow.DAGRun, error) {
	args := m.Called(ctx, dagID, runID)
	run, _ := args.Get(0).(*airflow.DAGRun)
	return run, args.Error(1)
}

func (m *mockAirflowConnector) DeleteDAGRun(ctx context.Context, dagID, runID string) error {
	return m.Called(ctx, dagID, runID).Error(0)
}

type mockClusterConnector struct {
	mock.Mock
}

func (m *mockClusterConnector) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockClusterConnector) ListContainers(ctx context.Context, all bool) ([]*cluster.Container, error) {
	args := m.Called(ctx, all)
	containers, _ := args.Get(0).([]*cluster.Container)
	return containers, args.Error(1)
}

func (m *mockClusterConnector) RestartContainer(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockClusterConnector) ContainerLogs(ctx context.Context, name string, tail int) (string, error) {
	args := m.Called(ctx, name, tail)
	return args.String(0), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByAPIKeyHash(ctx context.Context, keyHash string) (*users.User, error) {
	args := m.Called(ctx, keyHash)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
