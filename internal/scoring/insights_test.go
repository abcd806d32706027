package scoring

import (
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDeriveInsights_TopFiveStrengths(t *testing.T) {
	scores := []domain.TagScore{
		{Tag: "a", Score: 90},
		{Tag: "b", Score: 85},
		{Tag: "c", Score: 80},
		{Tag: "d", Score: 75},
		{Tag: "e", Score: 72},
		{Tag: "f", Score: 71},
	}

	insights := DeriveInsights(scores)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, insights.TopStrengths)
}

func TestDeriveInsights_ExplorationBandIsHalfOpen(t *testing.T) {
	scores := []domain.TagScore{
		{Tag: "at-seventy", Score: 70},
		{Tag: "just-under", Score: 69},
		{Tag: "at-fifty", Score: 50},
		{Tag: "below", Score: 49},
	}

	insights := DeriveInsights(scores)

	assert.Equal(t, []string{"just-under", "at-fifty"}, insights.AreasForExploration)
}

func TestDeriveInsights_PersonalityTraitsIntersection(t *testing.T) {
	scores := []domain.TagScore{
		{Tag: "leadership", Score: 88},
		{Tag: "logical-thinking", Score: 75},
		{Tag: "teamwork", Score: 42},
	}

	insights := DeriveInsights(scores)

	assert.Equal(t, []string{"leadership", "teamwork"}, insights.PersonalityTraits)
}

func TestDetermineLearningStyle(t *testing.T) {
	cases := []struct {
		name   string
		scores []domain.TagScore
		want   string
	}{
		{
			name: "visual wins strictly",
			scores: []domain.TagScore{
				{Tag: "visual-skills", Score: 80},
				{Tag: "communication", Score: 50},
				{Tag: "hands-on-learning", Score: 40},
			},
			want: domain.LearningStyleVisual,
		},
		{
			name: "auditory beats kinesthetic",
			scores: []domain.TagScore{
				{Tag: "communication", Score: 60},
				{Tag: "hands-on-learning", Score: 50},
			},
			want: domain.LearningStyleAuditory,
		},
		{
			name: "kinesthetic when only style present",
			scores: []domain.TagScore{
				{Tag: "practical-skills", Score: 30},
			},
			want: domain.LearningStyleKinesthetic,
		},
		{
			name:   "mixed when no style tags scored",
			scores: []domain.TagScore{{Tag: "logical-thinking", Score: 95}},
			want:   domain.LearningStyleMixed,
		},
		{
			name:   "mixed on empty input",
			scores: nil,
			want:   domain.LearningStyleMixed,
		},
		{
			name: "visual-auditory tie falls through to auditory",
			scores: []domain.TagScore{
				{Tag: "visual-skills", Score: 50},
				{Tag: "communication", Score: 50},
			},
			want: domain.LearningStyleAuditory,
		},
		{
			name: "group sums combine multiple tags",
			scores: []domain.TagScore{
				{Tag: "design-thinking", Score: 30},
				{Tag: "creativity", Score: 30},
				{Tag: "communication", Score: 55},
			},
			want: domain.LearningStyleVisual,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, determineLearningStyle(tc.scores))
		})
	}
}
