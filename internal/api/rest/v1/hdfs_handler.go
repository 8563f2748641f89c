package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/pkg/strutil"
)

// HDFSHandler defines the interface for handling storage-relay operations
type HDFSHandler interface {
	UploadFile(ctx *gin.Context)
	DownloadFile(ctx *gin.Context)
	ListDirectory(ctx *gin.Context)
	CreateDirectory(ctx *gin.Context)
	RenamePath(ctx *gin.Context)
	GetStatus(ctx *gin.Context)
	DeletePath(ctx *gin.Context)
}

type hdfsHandler struct {
	fileService hdfs.FileService
}

// NewHDFSHandler creates a new HDFSHandler
func NewHDFSHandler(fileService hdfs.FileService) HDFSHandler {
	return &hdfsHandler{fileService: fileService}
}

// UploadFile uploads a multipart file to the storage cluster
func (handler *hdfsHandler) UploadFile(ctx *gin.Context) {
	path := ctx.PostForm("path")
	if path == "" {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "form field path is required")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "form field file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "failed to open uploaded file")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "failed to read uploaded file")
		return
	}

	opts := hdfs.UploadOptions{}
	if overwrite := ctx.PostForm("overwrite"); len(overwrite) > 0 {
		opts.Overwrite = strutil.ConvertToBool(overwrite)
	}
	if replication := ctx.PostForm("replication"); len(replication) > 0 {
		opts.Replication = strutil.ConvertToInt(replication)
	}
	if blockSize := ctx.PostForm("blocksize"); len(blockSize) > 0 {
		opts.BlockSize = strutil.ConvertToInt64(blockSize)
	}
	if err := opts.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	status, err := handler.fileService.Upload(ctx, path, content, opts)
	if err != nil {
		respondHDFSError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newFileStatusResponse(status))
}

// DownloadFile streams the content of a storage path
func (handler *hdfsHandler) DownloadFile(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "query parameter path is required")
		return
	}

	content, err := handler.fileService.Download(ctx, path)
	if err != nil {
		respondHDFSError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/octet-stream", content)
}

// ListDirectory lists the entries directly under a storage directory
func (handler *hdfsHandler) ListDirectory(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "query parameter path is required")
		return
	}

	statuses, err := handler.fileService.List(ctx, path)
	if err != nil {
		respondHDFSError(ctx, err)
		return
	}

	responses := make([]FileStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		responses = append(responses, newFileStatusResponse(status))
	}
	ctx.JSON(http.StatusOK, responses)
}

// CreateDirectory creates a directory including missing parents
func (handler *hdfsHandler) CreateDirectory(ctx *gin.Context) {
	var request CreateDirectoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	if err := handler.fileService.Mkdir(ctx, request.Path); err != nil {
		respondHDFSError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, InfoResponse{Message: "directory created"})
}

// RenamePath moves a storage path to a new destination
func (handler *hdfsHandler) RenamePath(ctx *gin.Context) {
	var request RenamePathRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	if err := handler.fileService.Rename(ctx, request.Source, request.Destination); err != nil {
		respondHDFSError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "path renamed"})
}

// GetStatus returns the file status of a single storage path
func (handler *hdfsHandler) GetStatus(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "query parameter path is required")
		return
	}

	status, err := handler.fileService.Status(ctx, path)
	if err != nil {
		respondHDFSError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newFileStatusResponse(status))
}

// DeletePath removes a storage path, recursively when requested
func (handler *hdfsHandler) DeletePath(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "query parameter path is required")
		return
	}

	recursive := false
	if value := ctx.Query("recursive"); len(value) > 0 {
		recursive = strutil.ConvertToBool(value)
	}

	if err := handler.fileService.Delete(ctx, path, recursive); err != nil {
		respondHDFSError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "path deleted"})
}
