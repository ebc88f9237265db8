//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

package narrating

import (
	"context"

	"github.com/vfg2006/cashpulse-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/pkg/log"
)

// Input is everything the narrative is written from.
type Input struct {
	Company   domain.Company
	Current   domain.FinancialPeriod
	Previous  *domain.FinancialPeriod
	Metrics   domain.MetricsResult
	Benchmark domain.IndustryBenchmark
}

type Narrator interface {
	Generate(ctx context.Context, in Input) domain.AnalysisResult
}

type Service struct {
	generator gemini.TextGenerator
}

func NewService(generator gemini.TextGenerator) Narrator {
	return &Service{
		generator: generator,
	}
}

// Generate asks the text generation service for the analysis and falls back to
// the template generator when the call fails or the reply is incomplete. The
// caller cannot tell which path produced the result.
func (s *Service) Generate(ctx context.Context, in Input) domain.AnalysisResult {
	logger := log.ForContext(ctx).WithField("industry", in.Company.Industry)

	if s.generator == nil {
		logger.Warn("narrating: no text generator wired, using template analysis")
		return Fallback(in.Company, in.Current, in.Metrics)
	}

	reply, err := s.generator.GenerateText(ctx, SystemPrompt, BuildPrompt(in))
	if err != nil {
		logger.WithError(err).Warn("narrating: text generation failed, using template analysis")
		return Fallback(in.Company, in.Current, in.Metrics)
	}

	analysis, ok := ParseResponse(reply)
	if !ok {
		logger.WithField("reply_length", len(reply)).Warn("narrating: reply missing required keys, using template analysis")
		return Fallback(in.Company, in.Current, in.Metrics)
	}

	logger.Debug("narrating: analysis generated by text generation service")
	return analysis
}
