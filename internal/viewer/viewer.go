// Package viewer serves a single analysis result as a local web page.
package viewer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/browser"

	"discheck/internal/config"
	"discheck/internal/domain"
)

// Viewer holds one analysis result and serves it over HTTP.
type Viewer struct {
	resp       *domain.AnalysisResponse
	sourceName string
	annotated  []byte
	cfg        *config.ViewerConfig
}

// New creates a Viewer for the given analysis response. sourceName is the
// uploaded file name shown as the page title. The annotated PDF, when the
// service returned one, is decoded up front.
func New(resp *domain.AnalysisResponse, sourceName string, cfg *config.ViewerConfig) (*Viewer, error) {
	v := &Viewer{resp: resp, sourceName: sourceName, cfg: cfg}
	if resp.AnnotatedPDFBase64 != "" {
		pdf, err := base64.StdEncoding.DecodeString(resp.AnnotatedPDFBase64)
		if err != nil {
			return nil, fmt.Errorf("decoding annotated pdf: %w", err)
		}
		v.annotated = pdf
	}
	return v, nil
}

// Routes configures the Gin engine with the viewer's routes and middleware.
func (v *Viewer) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(v.sourceName))

	r.SetHTMLTemplate(resultTemplate)

	r.GET("/", v.showResult)
	r.GET("/api/result", v.getResult)
	r.GET("/annotated.pdf", v.getAnnotatedPDF)
	r.GET("/healthz", v.liveness)

	return r
}

// Serve listens on the configured address and blocks until ctx is cancelled
// or the server fails. With port 0 the OS picks a free port; the resolved
// URL is logged and opened in the default browser unless disabled.
func (v *Viewer) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", v.cfg.Addr())
	if err != nil {
		return fmt.Errorf("viewer listen on %s: %w", v.cfg.Addr(), err)
	}

	url := fmt.Sprintf("http://%s/", ln.Addr().String())
	log.Printf("Result viewer on %s (Ctrl+C to stop)", url)

	srv := &http.Server{Handler: v.Routes()}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	if v.cfg.OpenBrowser {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("failed to open browser: %v", err)
		}
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("viewer shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("viewer server: %w", err)
	}
}

// showResult handles GET /
func (v *Viewer) showResult(c *gin.Context) {
	verdict := "Not approved"
	if v.resp.Result.IsApproved {
		verdict = "Approved"
	}
	c.HTML(http.StatusOK, "result", gin.H{
		"Resp":         v.resp,
		"Result":       &v.resp.Result,
		"SourceName":   v.sourceName,
		"Verdict":      verdict,
		"RiskClass":    strings.ToLower(string(v.resp.Result.RiskLevel)),
		"HasAnnotated": len(v.annotated) > 0,
	})
}

// getResult handles GET /api/result
func (v *Viewer) getResult(c *gin.Context) {
	RespondOK(c, v.resp)
}

// getAnnotatedPDF handles GET /annotated.pdf
func (v *Viewer) getAnnotatedPDF(c *gin.Context) {
	if len(v.annotated) == 0 {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "no annotated PDF in this result")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", annotatedName(v.sourceName)))
	c.Data(http.StatusOK, "application/pdf", v.annotated)
}

// liveness handles GET /healthz
func (v *Viewer) liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func annotatedName(sourceName string) string {
	base := sourceName
	if strings.EqualFold(path.Ext(sourceName), ".pdf") {
		base = sourceName[:len(sourceName)-len(".pdf")]
	}
	if base == "" {
		base = "result"
	}
	return base + "_annotated.pdf"
}
