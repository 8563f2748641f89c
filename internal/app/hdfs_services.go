package app

import (
	"context"
	"fmt"

	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
	"github.com/jack0rich/BigdataServer/internal/pkg/metrics"
)

// hdfsFileService implements hdfs.FileService on top of a WebHDFS connector.
type hdfsFileService struct {
	connector hdfs.Connector
	logger    logger.Logger
}

// NewHDFSFileService creates the storage relay service.
func NewHDFSFileService(connector hdfs.Connector, logger logger.Logger) (hdfs.FileService, error) {
	if connector == nil {
		return nil, fmt.Errorf("connector must not be nil")
	}
	return &hdfsFileService{
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *hdfsFileService) Upload(ctx context.Context, path string, content []byte, opts hdfs.UploadOptions) (*hdfs.FileStatus, error) {
	if err := hdfs.ValidatePath(path); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	status, err := s.connector.Upload(ctx, path, content, opts)
	metrics.ObserveBackend(config.BackendHDFS, "upload", err)
	if err != nil {
		s.logger.Error("Failed to upload to hdfs path ", path, ": ", err)
		return nil, err
	}
	return status, nil
}

func (s *hdfsFileService) Download(ctx context.Context, path string) ([]byte, error) {
	if err := hdfs.ValidatePath(path); err != nil {
		return nil, err
	}

	content, err := s.connector.Download(ctx, path)
	metrics.ObserveBackend(config.BackendHDFS, "download", err)
	if err != nil {
		s.logger.Error("Failed to download hdfs path ", path, ": ", err)
		return nil, err
	}
	return content, nil
}

func (s *hdfsFileService) Delete(ctx context.Context, path string, recursive bool) error {
	if err := hdfs.ValidatePath(path); err != nil {
		return err
	}

	err := s.connector.Delete(ctx, path, recursive)
	metrics.ObserveBackend(config.BackendHDFS, "delete", err)
	if err != nil {
		s.logger.Error("Failed to delete hdfs path ", path, ": ", err)
	}
	return err
}

func (s *hdfsFileService) List(ctx context.Context, path string) ([]*hdfs.FileStatus, error) {
	if err := hdfs.ValidatePath(path); err != nil {
		return nil, err
	}

	statuses, err := s.connector.List(ctx, path)
	metrics.ObserveBackend(config.BackendHDFS, "list", err)
	if err != nil {
		s.logger.Error("Failed to list hdfs path ", path, ": ", err)
		return nil, err
	}
	return statuses, nil
}

func (s *hdfsFileService) Mkdir(ctx context.Context, path string) error {
	if err := hdfs.ValidatePath(path); err != nil {
		return err
	}

	err := s.connector.Mkdir(ctx, path)
	metrics.ObserveBackend(config.BackendHDFS, "mkdir", err)
	if err != nil {
		s.logger.Error("Failed to create hdfs directory ", path, ": ", err)
	}
	return err
}

func (s *hdfsFileService) Rename(ctx context.Context, src, dst string) error {
	if err := hdfs.ValidatePath(src); err != nil {
		return err
	}
	if err := hdfs.ValidatePath(dst); err != nil {
		return err
	}

	err := s.connector.Rename(ctx, src, dst)
	metrics.ObserveBackend(config.BackendHDFS, "rename", err)
	if err != nil {
		s.logger.Error("Failed to rename hdfs path ", src, ": ", err)
	}
	return err
}

func (s *hdfsFileService) Status(ctx context.Context, path string) (*hdfs.FileStatus, error) {
	if err := hdfs.ValidatePath(path); err != nil {
		return nil, err
	}

	status, err := s.connector.Status(ctx, path)
	metrics.ObserveBackend(config.BackendHDFS, "status", err)
	if err != nil {
		s.logger.Error("Failed to stat hdfs path ", path, ": ", err)
		return nil, err
	}
	return status, nil
}
