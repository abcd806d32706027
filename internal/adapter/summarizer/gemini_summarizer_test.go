package summarizer

import (
	"context"
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewGeminiSummarizer_RequiresAPIKeyAndModel(t *testing.T) {
	_, err := NewGeminiSummarizer(context.Background(), "", "gemini-2.5-flash")
	assert.Error(t, err)

	_, err = NewGeminiSummarizer(context.Background(), "key", "")
	assert.Error(t, err)
}

func TestBuildSummaryPrompt(t *testing.T) {
	req := domain.SummaryRequest{
		TopStrengths: []domain.TagScore{
			{Tag: "logical-thinking", Score: 85},
			{Tag: "problem-solving", Score: 72},
		},
		TopStream: &domain.StreamRecommendation{Stream: domain.StreamScience, Score: 91},
	}

	prompt := buildSummaryPrompt(req)

	assert.Contains(t, prompt, "You are a career guidance counselor.")
	assert.Contains(t, prompt, "logical thinking (85%)")
	assert.Contains(t, prompt, "problem solving (72%)")
	assert.Contains(t, prompt, "Science with a 91% match.")
	assert.Contains(t, prompt, `"You are well-suited for..."`)
}

func TestBuildSummaryPrompt_NoTopStream(t *testing.T) {
	prompt := buildSummaryPrompt(domain.SummaryRequest{})

	assert.Contains(t, prompt, "Top Recommended Stream: N/A")
}

func TestCleanSummary(t *testing.T) {
	assert.Equal(t, "You are well-suited for analytical work.",
		cleanSummary("```markdown\nYou are well-suited for analytical work.\n```"))
	assert.Equal(t, "plain text", cleanSummary("  plain text  "))
	assert.Equal(t, "", cleanSummary("```\n\n```"))
}
