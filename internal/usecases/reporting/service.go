//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/internal/usecases/narrating"
	"github.com/vfg2006/cashpulse-api/pkg/log"
)

type Analyzer interface {
	Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error)
}

type Service struct {
	narrator narrating.Narrator
	now      func() time.Time
}

func NewService(narrator narrating.Narrator) Analyzer {
	return &Service{
		narrator: narrator,
		now:      time.Now,
	}
}

func (s *Service) Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if req == nil || req.Company == nil {
		return nil, ErrCompanyRequired
	}
	if req.Current == nil {
		return nil, ErrCurrentPeriodRequired
	}

	company := req.Company.WithDefaults()
	company.Industry = NormalizeIndustry(company.Industry)

	metrics := CalculateMetrics(*req.Current, req.Previous)
	benchmark := BenchmarksFor(company.Industry)

	log.ForContext(ctx).WithFields(log.Fields{
		"industry":       company.Industry,
		"has_previous":   req.Previous != nil,
		"gross_margin":   metrics.GrossMargin,
		"cash_runway":    metrics.CashRunwayMonths,
		"cash_cycle_day": metrics.CashConversionCycle,
	}).Debug("reporting: metrics calculated")

	analysis := s.narrator.Generate(ctx, narrating.Input{
		Company:   company,
		Current:   *req.Current,
		Previous:  req.Previous,
		Metrics:   metrics,
		Benchmark: benchmark,
	})

	return &domain.AnalyzeResponse{
		Company:     company,
		Current:     *req.Current,
		Previous:    req.Previous,
		Metrics:     metrics,
		Benchmarks:  benchmark,
		Analysis:    analysis,
		GeneratedAt: s.now().UTC(),
	}, nil
}
