package service

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"crackTimeBackend/internal/core/advisor"
	"crackTimeBackend/internal/core/analyzer"
	"crackTimeBackend/internal/core/domain"
	"crackTimeBackend/internal/pkg/concurrency"
	"crackTimeBackend/internal/pkg/metrics"
	"crackTimeBackend/internal/port"
)

const (
	MaxBatchWorkers       = 6
	MetricsUpdateInterval = time.Second
	sessionID             = "analysis"

	// zxcvbn slows down sharply on long inputs; cross-check the head only.
	maxCrossCheckLen = 50
)

// AnalysisService orchestrates the pure analyzer and advisor, attaches a
// request ID and a zxcvbn cross-check, and records anonymized audit rows.
type AnalysisService struct {
	repo      port.Repository
	analyzer  *analyzer.Analyzer
	advisor   *advisor.Advisor
	collector *metrics.Collector
	reporter  *metrics.Reporter
}

// NewAnalysisService wires the service. repo and reporter may be nil; the
// service then analyzes without persistence or metric logging.
func NewAnalysisService(
	repo port.Repository,
	engine *analyzer.Analyzer,
	adv *advisor.Advisor,
	reporter *metrics.Reporter,
) *AnalysisService {
	collector := metrics.NewCollector(MetricsUpdateInterval)
	collector.StartCollection(sessionID)

	return &AnalysisService{
		repo:      repo,
		analyzer:  engine,
		advisor:   adv,
		collector: collector,
		reporter:  reporter,
	}
}

func (s *AnalysisService) AnalyzePassword(ctx context.Context, password string) (*domain.AnalysisResponse, error) {
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}

	var record domain.AnalysisRecord
	perf := metrics.CapturePerformance(func() {
		record = s.analyzer.Analyze(password)
	})
	s.collector.RecordAnalysis(sessionID, perf.Duration)

	response := &domain.AnalysisResponse{
		RequestID:        uuid.NewString(),
		Analysis:         record,
		Warnings:         s.advisor.GetWarnings(password, &record),
		Suggestions:      s.advisor.GetSuggestions(password, &record),
		CommonMistakes:   s.advisor.AnalyzeCommonMistakes(password),
		DictionaryAttack: s.analyzer.EstimateDictionaryAttack(password),
		CrossCheckScore:  crossCheckScore(password),
	}

	s.persistReport(ctx, response)

	return response, nil
}

// AnalyzeBatch fans the passwords across a worker pool and returns one
// result per input, addressed by index.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, passwords []string) ([]domain.BatchResult, error) {
	if len(passwords) == 0 {
		return nil, nil
	}

	workers := runtime.NumCPU()
	if workers > MaxBatchWorkers {
		workers = MaxBatchWorkers
	}
	if workers > len(passwords) {
		workers = len(passwords)
	}

	pool := concurrency.NewWorkerPool(workers, len(passwords), s.AnalyzePassword)
	pool.Start(ctx)

	for i, password := range passwords {
		pool.Submit(concurrency.Task{Index: i, Password: password})
	}
	go pool.Shutdown()

	results := make([]domain.BatchResult, len(passwords))
	for result := range pool.Results() {
		entry := domain.BatchResult{Index: result.Index, Response: result.Response}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}
		results[result.Index] = entry
	}

	return results, ctx.Err()
}

func (s *AnalysisService) GetReport(ctx context.Context, reportID string) (*domain.AnalysisReport, error) {
	if s.repo == nil {
		return nil, domain.ErrReportNotFound
	}
	return s.repo.GetReport(ctx, reportID)
}

func (s *AnalysisService) ListReports(ctx context.Context, filter port.ReportFilter) ([]domain.AnalysisReport, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListReports(ctx, filter)
}

func (s *AnalysisService) SessionMetrics() domain.SessionMetrics {
	return s.collector.GetMetrics(sessionID)
}

// Close stops collection and flushes any buffered metric entries.
func (s *AnalysisService) Close() error {
	s.collector.StopCollection(sessionID)
	if s.reporter != nil {
		return s.reporter.Close()
	}
	return nil
}

// persistReport saves the anonymized audit row. Persistence failures degrade
// to a metric entry; the analysis itself already succeeded.
func (s *AnalysisService) persistReport(ctx context.Context, response *domain.AnalysisResponse) {
	if s.repo == nil {
		return
	}

	report := &domain.AnalysisReport{
		ID:            response.RequestID,
		AnalyzedAt:    time.Now(),
		Length:        response.Analysis.Length,
		CharsetSize:   response.Analysis.CharsetSize,
		EntropyBits:   response.Analysis.EntropyBits,
		StrengthScore: response.Analysis.StrengthScore,
		StrengthLevel: response.Analysis.StrengthLevel,
		IssueCount:    len(response.Analysis.PatternIssues),
		CommonMatch:   response.Analysis.IsCommonPassword,
	}

	if err := s.repo.SaveReport(ctx, report); err != nil && s.reporter != nil {
		s.reporter.Record("repository_error", err.Error())
	}
}

func crossCheckScore(password string) int {
	checkPass := password
	if len(checkPass) > maxCrossCheckLen {
		checkPass = checkPass[:maxCrossCheckLen]
	}
	return zxcvbn.PasswordStrength(checkPass, nil).Score
}
