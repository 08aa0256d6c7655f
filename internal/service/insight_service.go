package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/ntloc/EduPulse/config"
	"github.com/ntloc/EduPulse/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Placeholder values for the degraded synthesis paths. A stats response never
// carries an empty summary or an empty improvement-area list.
const (
	summaryNotEnoughData = "Not enough feedback has been collected yet to generate insights."
	summaryNotConfigured = "AI insights are unavailable because the generation service is not configured."
	summaryMissing       = "The generation service returned no summary."

	areaNotEnoughData = "Collect more feedback to unlock AI-generated insights."
	areaNotConfigured = "Set GEMINI_API_KEY to enable AI-generated insights."
	areaNone          = "No specific improvement areas were identified."
)

const insightTimeout = 30 * time.Second

// TextGenerator is the text-in/text-out contract against the generation
// service. The only production implementation talks to Gemini; tests inject
// fakes and count calls.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

// InsightService turns a batch of feedback texts into a summary plus
// improvement areas. Every failure mode degrades to a well-formed placeholder
// result; it never returns an error to the caller.
type InsightService interface {
	Synthesize(ctx context.Context, texts []string, scopeName string) dto.InsightDTO
}

type insightService struct {
	generator TextGenerator
	timeout   time.Duration
}

func NewInsightService(cfg *config.Config) (InsightService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Insight synthesis will return placeholder results.")
		return &insightService{timeout: insightTimeout}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetTemperature(float32(cfg.Gemini.Temperature))
	model.SetMaxOutputTokens(int32(cfg.Gemini.MaxTokens))

	return &insightService{
		generator: &geminiGenerator{model: model},
		timeout:   insightTimeout,
	}, nil
}

func (s *insightService) Synthesize(ctx context.Context, texts []string, scopeName string) dto.InsightDTO {
	if len(texts) == 0 {
		return dto.InsightDTO{
			Summary:          summaryNotEnoughData,
			ImprovementAreas: []string{areaNotEnoughData},
		}
	}

	if s.generator == nil {
		log.Warn().Str("scope", scopeName).Msg("Insight synthesis skipped: generation service not configured")
		return dto.InsightDTO{
			Summary:          summaryNotConfigured,
			ImprovementAreas: []string{areaNotConfigured},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.Generate(ctx, buildInsightPrompt(texts, scopeName))
	if err != nil {
		log.Error().Err(err).Str("scope", scopeName).Msg("Insight generation failed")
		return dto.InsightDTO{
			Summary:          fmt.Sprintf("AI insight generation failed: %s", err.Error()),
			ImprovementAreas: []string{areaNone},
		}
	}

	return parseInsightResponse(raw)
}

func buildInsightPrompt(texts []string, scopeName string) string {
	var sb strings.Builder
	sb.WriteString("You are an academic quality analyst reviewing structured feedback collected about ")
	sb.WriteString(scopeName)
	sb.WriteString(".\n\nFeedback entries:\n")
	for i, text := range texts {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}
	sb.WriteString("\nWrite a concise prose summary of the overall feedback, and a small ordered list of short, actionable improvement areas grounded only in the entries above.\n")
	sb.WriteString("If all feedback is positive, still provide improvement areas, phrased as growth suggestions rather than deficiencies.\n\n")
	sb.WriteString("Respond with a single well-formed JSON object and nothing else: no prose around it, no markdown fences.\n")
	sb.WriteString("The object must have exactly two fields:\n")
	sb.WriteString("  \"summary\": string\n")
	sb.WriteString("  \"improvementAreas\": array of strings\n")
	return sb.String()
}
