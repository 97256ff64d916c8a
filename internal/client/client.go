// Package client is a typed HTTP client for the Marketing Disclaimer
// Checker API. One call maps to one request; nothing is retried and no
// result outlives the call that produced it.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"discheck/internal/config"
	"discheck/internal/domain"
	"discheck/internal/port"
)

// Client talks to one disclaimer checker deployment.
type Client struct {
	baseURL      string
	maxFileBytes int64
	httpClient   *http.Client
}

var _ port.AnalysisAPI = (*Client)(nil)

// New creates a Client from API configuration. The base URL is fixed for
// the client's lifetime; build a new Client to target another deployment.
func New(cfg *config.APIConfig) *Client {
	timeout := cfg.Timeout()
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:      trimSlash(cfg.BaseURL),
		maxFileBytes: cfg.MaxFileSizeMB * 1024 * 1024,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient creates a Client with an injected http.Client (for testing).
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    trimSlash(baseURL),
		httpClient: hc,
	}
}

// Health fetches GET /health. The service replies 200 even when degraded;
// inspect HealthStatus.Healthy for the real state.
func (c *Client) Health(ctx context.Context) (*domain.HealthStatus, error) {
	var status domain.HealthStatus
	if err := c.get(ctx, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Info fetches GET /, the service's name, version, and endpoint map.
func (c *Client) Info(ctx context.Context) (*domain.APIInfo, error) {
	var info domain.APIInfo
	if err := c.get(ctx, "/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, requestID, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, requestID, out)
}

// newRequest builds a request against the configured base URL with the
// standard headers. Every request carries a fresh X-Request-ID so failures
// can be correlated with server logs.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, string, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, requestID, nil
}

// do executes the request, maps non-2xx replies to *APIError, and decodes
// a JSON success body into out when out is non-nil.
func (c *Client) do(req *http.Request, requestID string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewAPIError(resp.StatusCode, decodeDetail(respBody), requestID)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w (raw: %s)", err, truncate(string(respBody), 500))
	}
	return nil
}

// decodeDetail extracts the service's error message from a FastAPI-style
// {"detail": "..."} body. Validation errors ship detail as an array; those
// and undecodable bodies fall back to the raw text.
func decodeDetail(body []byte) string {
	var eb struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		return eb.Detail
	}
	return truncate(string(body), 500)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
