package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateUploadForm builds a multipart body with a single file part plus extra
// form fields, returning the encoded body and its content type.
func CreateUploadForm(t *testing.T, fileName string, fileContent []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fileWriter, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fileWriter.Write(fileContent)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}
