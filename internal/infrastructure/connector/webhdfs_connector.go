package connector

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// webhdfsPathPrefix is the REST root of the namenode's WebHDFS interface.
const webhdfsPathPrefix = "/webhdfs/v1"

// webHDFSConnector implements hdfs.Connector against a namenode.
type webHDFSConnector struct {
	client *resty.Client
	user   string
	logger logger.Logger
}

// NewWebHDFSConnector creates a WebHDFS client for the configured namenode.
func NewWebHDFSConnector(settings *config.HDFSSettings, logger logger.Logger) (hdfs.Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(settings.NamenodeURL).
		SetTimeout(settings.Timeout)

	// CREATE and OPEN redirect to a datanode; the redirect must be followed
	// manually so the upload body is only sent to the datanode.
	client.GetClient().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &webHDFSConnector{
		client: client,
		user:   settings.User,
		logger: logger,
	}, nil
}

// wire types

type webhdfsFileStatus struct {
	PathSuffix       string `json:"pathSuffix"`
	Length           int64  `json:"length"`
	BlockSize        int64  `json:"blockSize"`
	Replication      int    `json:"replication"`
	Type             string `json:"type"`
	Owner            string `json:"owner"`
	Group            string `json:"group"`
	Permission       string `json:"permission"`
	ModificationTime int64  `json:"modificationTime"`
}

type webhdfsStatusResponse struct {
	FileStatus webhdfsFileStatus `json:"FileStatus"`
}

type webhdfsListResponse struct {
	FileStatuses struct {
		FileStatus []webhdfsFileStatus `json:"FileStatus"`
	} `json:"FileStatuses"`
}

type webhdfsBooleanResponse struct {
	Boolean bool `json:"boolean"`
}

type webhdfsRemoteException struct {
	RemoteException struct {
		Exception string `json:"exception"`
		Message   string `json:"message"`
	} `json:"RemoteException"`
}

func (c *webHDFSConnector) Upload(ctx context.Context, path string, content []byte, opts hdfs.UploadOptions) (*hdfs.FileStatus, error) {
	opts.ApplyDefaults()

	createResp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"op":          "CREATE",
			"user.name":   c.user,
			"overwrite":   strconv.FormatBool(opts.Overwrite),
			"replication": strconv.Itoa(opts.Replication),
			"blocksize":   strconv.FormatInt(opts.BlockSize, 10),
		}).
		Put(webhdfsPathPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("webhdfs create request failed: %w", err)
	}

	switch {
	case createResp.StatusCode() == http.StatusTemporaryRedirect:
		location := createResp.Header().Get("Location")
		if location == "" {
			return nil, fmt.Errorf("webhdfs create redirect missing Location header")
		}

		uploadResp, err := c.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/octet-stream").
			SetBody(content).
			Put(location)
		if err != nil {
			return nil, fmt.Errorf("webhdfs upload to datanode failed: %w", err)
		}
		if uploadResp.IsError() {
			return nil, c.remoteError(uploadResp)
		}

	case createResp.IsError():
		return nil, c.remoteError(createResp)
	}

	c.logger.Info("Uploaded ", len(content), " bytes to hdfs path ", path)
	return c.Status(ctx, path)
}

func (c *webHDFSConnector) Download(ctx context.Context, path string) ([]byte, error) {
	openResp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"op": "OPEN", "user.name": c.user}).
		Get(webhdfsPathPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("webhdfs open request failed: %w", err)
	}

	if openResp.StatusCode() == http.StatusTemporaryRedirect {
		location := openResp.Header().Get("Location")
		if location == "" {
			return nil, fmt.Errorf("webhdfs open redirect missing Location header")
		}

		dataResp, err := c.client.R().SetContext(ctx).Get(location)
		if err != nil {
			return nil, fmt.Errorf("webhdfs download from datanode failed: %w", err)
		}
		if dataResp.IsError() {
			return nil, c.remoteError(dataResp)
		}
		return dataResp.Body(), nil
	}

	if openResp.IsError() {
		return nil, c.remoteError(openResp)
	}
	return openResp.Body(), nil
}

func (c *webHDFSConnector) Delete(ctx context.Context, path string, recursive bool) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"op":        "DELETE",
			"user.name": c.user,
			"recursive": strconv.FormatBool(recursive),
		}).
		Delete(webhdfsPathPrefix + path)
	if err != nil {
		return fmt.Errorf("webhdfs delete request failed: %w", err)
	}
	if resp.IsError() {
		return c.remoteError(resp)
	}

	c.logger.Info("Deleted hdfs path ", path)
	return nil
}

func (c *webHDFSConnector) List(ctx context.Context, path string) ([]*hdfs.FileStatus, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"op": "LISTSTATUS", "user.name": c.user}).
		SetResult(&webhdfsListResponse{}).
		Get(webhdfsPathPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("webhdfs list request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.remoteError(resp)
	}

	listResp, ok := resp.Result().(*webhdfsListResponse)
	if !ok {
		return nil, fmt.Errorf("webhdfs list returned unexpected payload")
	}

	statuses := make([]*hdfs.FileStatus, 0, len(listResp.FileStatuses.FileStatus))
	for _, entry := range listResp.FileStatuses.FileStatus {
		statuses = append(statuses, entry.toDomain(path))
	}
	return statuses, nil
}

func (c *webHDFSConnector) Mkdir(ctx context.Context, path string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"op": "MKDIRS", "user.name": c.user}).
		SetResult(&webhdfsBooleanResponse{}).
		Put(webhdfsPathPrefix + path)
	if err != nil {
		return fmt.Errorf("webhdfs mkdirs request failed: %w", err)
	}
	if resp.IsError() {
		return c.remoteError(resp)
	}

	result, ok := resp.Result().(*webhdfsBooleanResponse)
	if ok && !result.Boolean {
		return fmt.Errorf("webhdfs refused to create directory %s", path)
	}

	c.logger.Info("Created hdfs directory ", path)
	return nil
}

func (c *webHDFSConnector) Rename(ctx context.Context, src, dst string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"op":          "RENAME",
			"user.name":   c.user,
			"destination": dst,
		}).
		SetResult(&webhdfsBooleanResponse{}).
		Put(webhdfsPathPrefix + src)
	if err != nil {
		return fmt.Errorf("webhdfs rename request failed: %w", err)
	}
	if resp.IsError() {
		return c.remoteError(resp)
	}

	result, ok := resp.Result().(*webhdfsBooleanResponse)
	if ok && !result.Boolean {
		return fmt.Errorf("webhdfs refused to rename %s to %s", src, dst)
	}

	c.logger.Info("Renamed hdfs path ", src, " to ", dst)
	return nil
}

func (c *webHDFSConnector) Status(ctx context.Context, path string) (*hdfs.FileStatus, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"op": "GETFILESTATUS", "user.name": c.user}).
		SetResult(&webhdfsStatusResponse{}).
		Get(webhdfsPathPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("webhdfs status request failed: %w", err)
	}
	if resp.IsError() {
		return nil, c.remoteError(resp)
	}

	statusResp, ok := resp.Result().(*webhdfsStatusResponse)
	if !ok {
		return nil, fmt.Errorf("webhdfs status returned unexpected payload")
	}

	status := statusResp.FileStatus.toDomain(path)
	status.Path = path
	return status, nil
}

// remoteError maps a WebHDFS error response to the gateway's sentinel errors.
func (c *webHDFSConnector) remoteError(resp *resty.Response) error {
	var remote webhdfsRemoteException
	_ = decodeJSON(resp.Body(), &remote)

	exception := remote.RemoteException.Exception
	message := remote.RemoteException.Message
	c.logger.Error("Hadoop API error: status ", resp.StatusCode(), " exception ", exception)

	switch {
	case resp.StatusCode() == http.StatusNotFound || exception == "FileNotFoundException":
		return fmt.Errorf("%w: %s", hdfs.ErrPathNotFound, message)
	case resp.StatusCode() == http.StatusConflict || exception == "FileAlreadyExistsException":
		return fmt.Errorf("%w: %s", hdfs.ErrPathExists, message)
	default:
		if message == "" {
			message = resp.Status()
		}
		return fmt.Errorf("webhdfs operation failed: %s", message)
	}
}

func (s webhdfsFileStatus) toDomain(parent string) *hdfs.FileStatus {
	path := parent
	if s.PathSuffix != "" {
		if parent == "/" {
			path = "/" + s.PathSuffix
		} else {
			path = parent + "/" + s.PathSuffix
		}
	}

	return &hdfs.FileStatus{
		Path:             path,
		Length:           s.Length,
		BlockSize:        s.BlockSize,
		Replication:      s.Replication,
		Type:             s.Type,
		Owner:            s.Owner,
		Group:            s.Group,
		Permission:       s.Permission,
		ModificationTime: time.UnixMilli(s.ModificationTime).UTC(),
	}
}
