//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
)

func TestHDFSFileService_UploadAppliesValidation(t *testing.T) {
	connector := &mockHDFSConnector{}
	service, err := NewHDFSFileService(connector, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = service.Upload(ctx, "relative/path", []byte("x"), hdfs.UploadOptions{})
	require.Error(t, err)

	_, err = service.Upload(ctx, "/data/input.csv", []byte("x"), hdfs.UploadOptions{Replication: 99})
	require.Error(t, err)

	connector.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHDFSFileService_UploadRelaysToConnector(t *testing.T) {
	connector := &mockHDFSConnector{}
	service, err := NewHDFSFileService(connector, testLogger())
	require.NoError(t, err)

	expected := &hdfs.FileStatus{Path: "/data/input.csv", Length: 11}
	connector.
		On("Upload", mock.Anything, "/data/input.csv", []byte("hello,world"), hdfs.UploadOptions{Overwrite: true}).
		Return(expected, nil)

	status, err := service.Upload(context.Background(), "/data/input.csv", []byte("hello,world"), hdfs.UploadOptions{Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, expected, status)
	connector.AssertExpectations(t)
}

func TestHDFSFileService_DownloadPropagatesNotFound(t *testing.T) {
	connector := &mockHDFSConnector{}
	service, err := NewHDFSFileService(connector, testLogger())
	require.NoError(t, err)

	connector.On("Download", mock.Anything, "/missing").Return(nil, hdfs.ErrPathNotFound)

	_, err = service.Download(context.Background(), "/missing")
	require.ErrorIs(t, err, hdfs.ErrPathNotFound)
}

func TestHDFSFileService_RenameValidatesBothPaths(t *testing.T) {
	connector := &mockHDFSConnector{}
	service, err := NewHDFSFileService(connector, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	require.Error(t, service.Rename(ctx, "/data/old", "new"))
	require.Error(t, service.Rename(ctx, "", "/data/new"))

	connector.On("Rename", mock.Anything, "/data/old", "/data/new").Return(nil)
	require.NoError(t, service.Rename(ctx, "/data/old", "/data/new"))
	connector.AssertExpectations(t)
}

func TestNewHDFSFileService_RequiresConnector(t *testing.T) {
	_, err := NewHDFSFileService(nil, testLogger())
	require.Error(t, err)
}
