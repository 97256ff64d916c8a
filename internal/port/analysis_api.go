package port

import (
	"context"

	"discheck/internal/domain"
)

// AnalyzeInput carries the data for a compliance analysis submission.
type AnalyzeInput struct {
	Filename     string
	FileBytes    []byte
	Jurisdiction domain.Jurisdiction // optional hint, empty means let the service detect
}

// AnalysisAPI abstracts the disclaimer checker service.
type AnalysisAPI interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResponse, error)
	GetAnalysis(ctx context.Context, analysisID string) (*domain.AnalysisResponse, error)
	ListApproved(ctx context.Context, jurisdiction domain.Jurisdiction) ([]domain.ApprovedDisclaimer, error)
	GetApproved(ctx context.Context, id string) (*domain.ApprovedDisclaimer, error)
	CreateApproved(ctx context.Context, disclaimer *domain.ApprovedDisclaimer) (*domain.ApprovedDisclaimer, error)
	UpdateApproved(ctx context.Context, id string, disclaimer *domain.ApprovedDisclaimer) (*domain.ApprovedDisclaimer, error)
	DeleteApproved(ctx context.Context, id string) error
	Health(ctx context.Context) (*domain.HealthStatus, error)
	Info(ctx context.Context) (*domain.APIInfo, error)
}
