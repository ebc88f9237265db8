package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
	"google.golang.org/genai"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// contentGenerator is the part of the genai SDK this integrator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	cfg    config.Gemini
	models contentGenerator
}

// New builds the integrator. Without an API key it is still returned, but
// every call fails with domain.ErrNotConfigured.
func New(ctx context.Context, cfg *config.Config) (TextGenerator, error) {
	service := &GeminiService{cfg: cfg.Gemini}

	if cfg.Gemini.APIKey == "" {
		logrus.Warn("gemini: GEMINI_API_KEY not set, narratives will use templates")
		return service, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "gemini: creating client")
	}
	service.models = client.Models

	return service, nil
}

func (s *GeminiService) GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error) {
	if s.models == nil {
		return "", errors.Wrap(domain.ErrNotConfigured, "gemini: missing API key")
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	generationConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(s.cfg.Temperature),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	start := time.Now()
	result, err := s.models.GenerateContent(ctx, s.cfg.Model, genai.Text(prompt), generationConfig)
	if err != nil {
		return "", errors.Wrapf(domain.ErrUpstream, "gemini: generate content: %v", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.Wrap(domain.ErrUpstream, "gemini: empty response")
	}

	logrus.WithFields(logrus.Fields{
		"model":       s.cfg.Model,
		"duration_ms": time.Since(start).Milliseconds(),
		"chars":       len(text),
	}).Debug("gemini: content generated")

	return text, nil
}
