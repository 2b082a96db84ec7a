// internal/services/multipart.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// buildMultipart assembles a multipart form body from plain fields and an
// optional file, for forwarding image uploads to the backend when S3 staging
// is not configured.
func buildMultipart(fields map[string]string, fileField string, file multipart.File, header *multipart.FileHeader) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	if file != nil && header != nil {
		part, err := writer.CreateFormFile(fileField, header.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", fmt.Errorf("failed to copy file into form: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
