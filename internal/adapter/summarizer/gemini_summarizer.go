package summarizer

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/domain"
	"career-compass/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// geminiSummarizer implements domain.Summarizer using the Gemini API via
// langchaingo.
type geminiSummarizer struct {
	llm *googleai.GoogleAI
}

// NewGeminiSummarizer creates a new Gemini-backed summarizer.
func NewGeminiSummarizer(ctx context.Context, apiKey string, modelName string) (domain.Summarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
	}
	return &geminiSummarizer{llm: llm}, nil
}

// Summarize asks the model for a short counselor-voice summary of the
// assessment. Any error is returned as-is; callers decide how to degrade.
func (s *geminiSummarizer) Summarize(ctx context.Context, req domain.SummaryRequest) (string, error) {
	l := logger.Get()

	prompt := buildSummaryPrompt(req)
	l.Debug("Requesting AI summary", zap.String("prompt", prompt))

	response, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("gemini summary generation failed: %w", err)
	}

	summary := cleanSummary(response)
	if summary == "" {
		return "", fmt.Errorf("gemini returned an empty summary")
	}
	return summary, nil
}

// buildSummaryPrompt renders the counselor prompt from the assessment slice.
func buildSummaryPrompt(req domain.SummaryRequest) string {
	strengths := make([]string, 0, len(req.TopStrengths))
	for _, s := range req.TopStrengths {
		strengths = append(strengths, fmt.Sprintf("%s (%d%%)", strings.Replace(s.Tag, "-", " ", 1), s.Score))
	}

	topStreamLine := "N/A"
	if req.TopStream != nil {
		topStreamLine = fmt.Sprintf("%s with a %d%% match.", req.TopStream.Stream, req.TopStream.Score)
	}

	return fmt.Sprintf(`You are a career guidance counselor. Based on the following assessment data, provide a concise, two-to-three-sentence summary of the user's career aptitude and suggest a suitable course as well.

User Strengths: %s
Top Recommended Stream: %s

Start the summary with a sentence like "You are well-suited for..."`,
		strings.Join(strengths, ", "), topStreamLine)
}

// cleanSummary strips markdown fences and surrounding whitespace the model
// sometimes wraps its answer in.
func cleanSummary(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```markdown")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
