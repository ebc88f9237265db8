package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
	"google.golang.org/genai"
)

type fakeModels struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = cfg
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func TestGenerateText_NotConfigured(t *testing.T) {
	service, err := New(context.Background(), &config.Config{})
	require.NoError(t, err)

	_, err = service.GenerateText(context.Background(), "system", "prompt")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestGenerateText_Success(t *testing.T) {
	models := &fakeModels{resp: textResponse("  HERO_SUMMARY: ok  ")}
	service := &GeminiService{
		cfg:    config.Gemini{Model: "gemini-2.0-flash", Temperature: 0.4},
		models: models,
	}

	text, err := service.GenerateText(context.Background(), "be plain", "numbers here")
	require.NoError(t, err)

	assert.Equal(t, "HERO_SUMMARY: ok", text)
	assert.Equal(t, "gemini-2.0-flash", models.model)
	require.NotNil(t, models.config.SystemInstruction)
	assert.Equal(t, "be plain", models.config.SystemInstruction.Parts[0].Text)
	require.Len(t, models.contents, 1)
	assert.Equal(t, "numbers here", models.contents[0].Parts[0].Text)
}

func TestGenerateText_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		models *fakeModels
	}{
		{name: "api error", models: &fakeModels{err: errors.New("status 503")}},
		{name: "empty reply", models: &fakeModels{resp: textResponse("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &GeminiService{cfg: config.Gemini{Model: "m"}, models: tt.models}

			_, err := service.GenerateText(context.Background(), "s", "p")
			assert.ErrorIs(t, err, domain.ErrUpstream)
		})
	}
}
