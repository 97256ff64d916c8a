package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"

	"discheck/internal/domain"
	"discheck/internal/port"
)

// Analyze submits a PDF for compliance analysis via POST /api/analyze/.
// The file travels as multipart form field "file"; a jurisdiction hint, when
// set, travels as a query parameter. Exactly one request is sent per call.
func (c *Client) Analyze(ctx context.Context, input port.AnalyzeInput) (*domain.AnalysisResponse, error) {
	if !strings.HasSuffix(strings.ToLower(input.Filename), ".pdf") {
		return nil, domain.ErrNotPDF
	}
	if len(input.FileBytes) == 0 {
		return nil, domain.ErrEmptyFile
	}
	if c.maxFileBytes > 0 && int64(len(input.FileBytes)) > c.maxFileBytes {
		return nil, domain.ErrFileTooLarge
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", path.Base(input.Filename))
	if err != nil {
		return nil, fmt.Errorf("building multipart form: %w", err)
	}
	if _, err := part.Write(input.FileBytes); err != nil {
		return nil, fmt.Errorf("writing file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart form: %w", err)
	}

	var query url.Values
	if input.Jurisdiction != "" {
		query = url.Values{"jurisdiction": {string(input.Jurisdiction)}}
	}

	req, requestID, err := c.newRequest(ctx, http.MethodPost, "/api/analyze/", query, body, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var resp domain.AnalysisResponse
	if err := c.do(req, requestID, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAnalysis fetches a stored analysis by ID via GET /api/analyze/{id}.
func (c *Client) GetAnalysis(ctx context.Context, analysisID string) (*domain.AnalysisResponse, error) {
	if analysisID == "" {
		return nil, fmt.Errorf("analysis ID must not be empty")
	}
	var resp domain.AnalysisResponse
	if err := c.get(ctx, "/api/analyze/"+url.PathEscape(analysisID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
