package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"discheck/internal/domain"
	"discheck/internal/port"
)

// MockAnalysisAPI is a mock implementation of port.AnalysisAPI.
type MockAnalysisAPI struct {
	mock.Mock
}

func (m *MockAnalysisAPI) Analyze(ctx context.Context, input port.AnalyzeInput) (*domain.AnalysisResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResponse), args.Error(1)
}

func (m *MockAnalysisAPI) GetAnalysis(ctx context.Context, analysisID string) (*domain.AnalysisResponse, error) {
	args := m.Called(ctx, analysisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResponse), args.Error(1)
}

func (m *MockAnalysisAPI) ListApproved(ctx context.Context, jurisdiction domain.Jurisdiction) ([]domain.ApprovedDisclaimer, error) {
	args := m.Called(ctx, jurisdiction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovedDisclaimer), args.Error(1)
}

func (m *MockAnalysisAPI) GetApproved(ctx context.Context, id string) (*domain.ApprovedDisclaimer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovedDisclaimer), args.Error(1)
}

func (m *MockAnalysisAPI) CreateApproved(ctx context.Context, disclaimer *domain.ApprovedDisclaimer) (*domain.ApprovedDisclaimer, error) {
	args := m.Called(ctx, disclaimer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovedDisclaimer), args.Error(1)
}

func (m *MockAnalysisAPI) UpdateApproved(ctx context.Context, id string, disclaimer *domain.ApprovedDisclaimer) (*domain.ApprovedDisclaimer, error) {
	args := m.Called(ctx, id, disclaimer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovedDisclaimer), args.Error(1)
}

func (m *MockAnalysisAPI) DeleteApproved(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnalysisAPI) Health(ctx context.Context) (*domain.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthStatus), args.Error(1)
}

func (m *MockAnalysisAPI) Info(ctx context.Context) (*domain.APIInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIInfo), args.Error(1)
}
