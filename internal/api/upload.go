package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/toxctl/toxctl/internal/common"
	"github.com/toxctl/toxctl/internal/model"
)

// Upload sends a batch file for line-by-line analysis. The body is
// multipart form data rather than JSON, so the request is built by hand;
// the bearer-auth convention is the same as for every other call. The
// caller supplies the reader so it can layer progress reporting on top.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*model.UploadBatchResult, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	// The form is streamed through a pipe so the caller's reader is
	// consumed as the request body is sent, not buffered up front.
	bodyReader, bodyWriter := io.Pipe()
	writer := multipart.NewWriter(bodyWriter)
	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			bodyWriter.CloseWithError(fmt.Errorf("failed to build upload form: %w", err))
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			bodyWriter.CloseWithError(fmt.Errorf("failed to read upload file: %w", err))
			return
		}
		bodyWriter.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", bodyReader)
	if err != nil {
		// Unblock the writing goroutine.
		_ = bodyReader.Close()
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	token := c.tokens.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Info("Uploading file for batch analysis", "filename", filename)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.NewUserError("Error uploading file", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewUserError("Invalid server response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleFailure(resp.StatusCode, data, token != "")
	}

	var result model.UploadBatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, common.NewUserError("Upload failed", err)
	}

	c.logger.Info("Upload analyzed",
		"filename", result.Filename,
		"lines", result.AnalyzedLines,
		"toxic", result.ToxicCount)

	return &result, nil
}
