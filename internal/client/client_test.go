package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discheck/internal/client"
	"discheck/internal/config"
	"discheck/internal/domain"
	"discheck/internal/port"
)

func newTestClient(serverURL string) *client.Client {
	return client.NewWithHTTPClient(serverURL, &http.Client{})
}

func analysisResponseBody(approved bool, risk, explanation string) map[string]interface{} {
	return map[string]interface{}{
		"analysis_id": "67a1b2c3d4e5f60718293a4b",
		"timestamp":   "2025-03-12T09:30:00Z",
		"result": map[string]interface{}{
			"is_approved": approved,
			"risk_level":  risk,
			"explanation": explanation,
		},
	}
}

func TestAnalyze_Success(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 test content")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analyze/", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("jurisdiction"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "brochure.pdf", header.Filename)

		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, pdfBytes, uploaded)

		w.WriteHeader(http.StatusOK)
		err = json.NewEncoder(w).Encode(analysisResponseBody(true, "LOW", "All requirements met."))
		if err != nil {
			return
		}
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "brochure.pdf",
		FileBytes: pdfBytes,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "67a1b2c3d4e5f60718293a4b", resp.AnalysisID)
	assert.True(t, resp.Result.IsApproved)
	assert.Equal(t, domain.RiskLow, resp.Result.RiskLevel)
	assert.Equal(t, "All requirements met.", resp.Result.Explanation)
}

func TestAnalyze_JurisdictionHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "UAE", r.URL.Query().Get("jurisdiction"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(analysisResponseBody(false, "MEDIUM", "One phrase missing."))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:     "brochure.pdf",
		FileBytes:    []byte("%PDF-1.4 test"),
		Jurisdiction: domain.JurisdictionUAE,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RiskMedium, resp.Result.RiskLevel)
}

func TestAnalyze_BaseURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(analysisResponseBody(true, "LOW", "ok"))
	}))
	defer server.Close()

	c := newTestClient(server.URL + "/")

	_, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "a.pdf",
		FileBytes: []byte("%PDF-1.4"),
	})
	require.NoError(t, err)
}

func TestAnalyze_RejectsNonPDF_BeforeRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "report.docx",
		FileBytes: []byte("content"),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotPDF)
	assert.False(t, called, "no request should be sent for a non-PDF name")
}

func TestAnalyze_RejectsEmptyFile_BeforeRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "empty.pdf",
		FileBytes: nil,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
	assert.False(t, called, "no request should be sent for an empty payload")
}

func TestAnalyze_RejectsOversizedFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be sent for an oversized payload")
	}))
	defer server.Close()

	cfg := &config.APIConfig{BaseURL: server.URL, TimeoutSecs: 30, MaxFileSizeMB: 1}
	c := client.New(cfg)

	big := make([]byte, 2*1024*1024)
	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "big.pdf",
		FileBytes: big,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestAnalyze_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "File must be a PDF"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "tricky.pdf",
		FileBytes: []byte("not really a pdf"),
	})

	assert.Nil(t, resp)
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "File must be a PDF", apiErr.Detail)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.Contains(t, err.Error(), "File must be a PDF")
}

func TestAnalyze_ServerError_RawBodyDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "a.pdf",
		FileBytes: []byte("%PDF-1.4"),
	})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Detail)
}

func TestAnalyze_InvalidJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("this is not JSON"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "a.pdf",
		FileBytes: []byte("%PDF-1.4"),
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestAnalyze_ConnectionRefused(t *testing.T) {
	c := newTestClient("http://localhost:1")

	resp, err := c.Analyze(context.Background(), port.AnalyzeInput{
		Filename:  "a.pdf",
		FileBytes: []byte("%PDF-1.4"),
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling POST /api/analyze/")

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestGetAnalysis_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/analyze/67a1b2c3d4e5f60718293a4b", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(analysisResponseBody(true, "LOW", "ok"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.GetAnalysis(context.Background(), "67a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	assert.Equal(t, "67a1b2c3d4e5f60718293a4b", resp.AnalysisID)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Analysis not found"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.GetAnalysis(context.Background(), "missing-id")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAnalysis_EmptyID(t *testing.T) {
	c := newTestClient("http://unused")

	resp, err := c.GetAnalysis(context.Background(), "")
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		healthy bool
	}{
		{"healthy", `{"status": "healthy", "database": "connected"}`, true},
		{"degraded", `{"status": "unhealthy", "database": "disconnected", "error": "timeout"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := newTestClient(server.URL)

			status, err := c.Health(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.healthy, status.Healthy())
		})
	}
}

func TestInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"message": "Marketing Disclaimer Checker API",
			"version": "1.0.0",
			"endpoints": {"analyze": "/api/analyze/", "approved": "/api/approved/"}
		}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	info, err := c.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Marketing Disclaimer Checker API", info.Message)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "/api/analyze/", info.Endpoints["analyze"])
}
