package port

import (
	"context"

	"crackTimeBackend/internal/core/domain"
)

type AnalysisService interface {
	AnalyzePassword(ctx context.Context, password string) (*domain.AnalysisResponse, error)
	AnalyzeBatch(ctx context.Context, passwords []string) ([]domain.BatchResult, error)
	GetReport(ctx context.Context, reportID string) (*domain.AnalysisReport, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]domain.AnalysisReport, error)
	SessionMetrics() domain.SessionMetrics
}

// Repository persists anonymized analysis reports. Implementations must
// never receive or store password material.
type Repository interface {
	SaveReport(ctx context.Context, report *domain.AnalysisReport) error
	GetReport(ctx context.Context, reportID string) (*domain.AnalysisReport, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]domain.AnalysisReport, error)
}

type ReportFilter struct {
	Level     domain.StrengthLevel
	MinScore  int
	MaxScore  int
	StartDate int64
	EndDate   int64
	Limit     int
	Offset    int
}
