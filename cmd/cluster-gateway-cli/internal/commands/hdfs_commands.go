package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jack0rich/BigdataServer/internal/app"
	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/connector"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// HDFSCommandHandler encapsulates logic for storage operations via CLI.
type HDFSCommandHandler struct {
	fileService hdfs.FileService
	logger      logger.Logger
}

// NewHDFSCommandHandler initializes and returns an HDFSCommandHandler with a
// WebHDFS connector built from environment settings.
func NewHDFSCommandHandler() (*HDFSCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	hdfsConnector, err := connector.NewWebHDFSConnector(hdfsSettingsFromEnv(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhdfs connector: %w", err)
	}

	fileService, err := app.NewHDFSFileService(hdfsConnector, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create file service: %w", err)
	}

	return &HDFSCommandHandler{
		fileService: fileService,
		logger:      loggerInstance,
	}, nil
}

// UploadFileCmd uploads a local file to a storage path
func (commandHandler *HDFSCommandHandler) UploadFileCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	remotePath, err := cmd.Flags().GetString("path")
	if err != nil {
		commandHandler.logger.Error("invalid path flag ", err)
		return
	}
	overwrite, err := cmd.Flags().GetBool("overwrite")
	if err != nil {
		commandHandler.logger.Error("invalid overwrite flag ", err)
		return
	}

	content, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	status, err := commandHandler.fileService.Upload(ctx, remotePath, content, hdfs.UploadOptions{Overwrite: overwrite})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Uploaded ", status.Path, " (", status.Length, " bytes)")
}

// DownloadFileCmd downloads a storage path to a local file
func (commandHandler *HDFSCommandHandler) DownloadFileCmd(cmd *cobra.Command, _ []string) {
	remotePath, err := cmd.Flags().GetString("path")
	if err != nil {
		commandHandler.logger.Error("invalid path flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	content, err := commandHandler.fileService.Download(ctx, remotePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, content, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Downloaded ", remotePath, " to ", outputFilePath)
}

// ListDirectoryCmd lists the entries under a storage directory
func (commandHandler *HDFSCommandHandler) ListDirectoryCmd(cmd *cobra.Command, _ []string) {
	remotePath, err := cmd.Flags().GetString("path")
	if err != nil {
		commandHandler.logger.Error("invalid path flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	entries, err := commandHandler.fileService.List(ctx, remotePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, entry := range entries {
		fmt.Printf("%-10s %12d %s\n", entry.Type, entry.Length, entry.Path)
	}
	commandHandler.logger.Info("Listed ", len(entries), " entries under ", remotePath)
}

// MkdirCmd creates a storage directory including missing parents
func (commandHandler *HDFSCommandHandler) MkdirCmd(cmd *cobra.Command, _ []string) {
	remotePath, err := cmd.Flags().GetString("path")
	if err != nil {
		commandHandler.logger.Error("invalid path flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := commandHandler.fileService.Mkdir(ctx, remotePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created directory ", remotePath)
}

// DeletePathCmd removes a storage path
func (commandHandler *HDFSCommandHandler) DeletePathCmd(cmd *cobra.Command, _ []string) {
	remotePath, err := cmd.Flags().GetString("path")
	if err != nil {
		commandHandler.logger.Error("invalid path flag ", err)
		return
	}
	recursive, err := cmd.Flags().GetBool("recursive")
	if err != nil {
		commandHandler.logger.Error("invalid recursive flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := commandHandler.fileService.Delete(ctx, remotePath, recursive); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deleted ", remotePath)
}

// InitHDFSCommands registers storage-related commands
func InitHDFSCommands(rootCmd *cobra.Command) error {
	handler, err := NewHDFSCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create HDFS command handler %w", err)
	}

	var uploadFileCmd = &cobra.Command{
		Use:   "upload-file",
		Short: "Upload a local file to cluster storage",
		Run:   handler.UploadFileCmd,
	}
	uploadFileCmd.Flags().StringP("input-file", "", "", "Path to the local file to upload")
	uploadFileCmd.Flags().StringP("path", "", "", "Destination path on cluster storage")
	uploadFileCmd.Flags().BoolP("overwrite", "", false, "Overwrite the destination if it exists")
	rootCmd.AddCommand(uploadFileCmd)

	var downloadFileCmd = &cobra.Command{
		Use:   "download-file",
		Short: "Download a file from cluster storage",
		Run:   handler.DownloadFileCmd,
	}
	downloadFileCmd.Flags().StringP("path", "", "", "Path on cluster storage to download")
	downloadFileCmd.Flags().StringP("output-file", "", "", "Local path to write the file to")
	rootCmd.AddCommand(downloadFileCmd)

	var listDirectoryCmd = &cobra.Command{
		Use:   "list-dir",
		Short: "List the entries under a storage directory",
		Run:   handler.ListDirectoryCmd,
	}
	listDirectoryCmd.Flags().StringP("path", "", "/", "Directory to list")
	rootCmd.AddCommand(listDirectoryCmd)

	var mkdirCmd = &cobra.Command{
		Use:   "mkdir",
		Short: "Create a storage directory",
		Run:   handler.MkdirCmd,
	}
	mkdirCmd.Flags().StringP("path", "", "", "Directory to create")
	rootCmd.AddCommand(mkdirCmd)

	var deletePathCmd = &cobra.Command{
		Use:   "delete-path",
		Short: "Delete a storage path",
		Run:   handler.DeletePathCmd,
	}
	deletePathCmd.Flags().StringP("path", "", "", "Path to delete")
	deletePathCmd.Flags().BoolP("recursive", "", false, "Delete directories recursively")
	rootCmd.AddCommand(deletePathCmd)

	return nil
}
