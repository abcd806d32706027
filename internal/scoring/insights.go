package scoring

import "career-compass/internal/domain"

// DeriveInsights reads the qualitative profile out of normalized tag
// scores. Expects the input sorted score-descending, as Normalize returns
// it.
func DeriveInsights(scores []domain.TagScore) domain.Insights {
	topStrengths := make([]string, 0, 5)
	for _, s := range scores {
		if len(topStrengths) == 5 {
			break
		}
		topStrengths = append(topStrengths, s.Tag)
	}

	exploration := make([]string, 0)
	traits := make([]string, 0)
	for _, s := range scores {
		if s.Score >= 50 && s.Score < 70 {
			exploration = append(exploration, s.Tag)
		}
		if personalityTraitTags[s.Tag] {
			traits = append(traits, s.Tag)
		}
	}

	return domain.Insights{
		TopStrengths:        topStrengths,
		AreasForExploration: exploration,
		PersonalityTraits:   traits,
		LearningStyle:       determineLearningStyle(scores),
	}
}

// determineLearningStyle sums scores per style tag group and picks the
// strictly highest. Precedence on equal sums is visual, then auditory, then
// kinesthetic; all-zero sums mean "mixed".
func determineLearningStyle(scores []domain.TagScore) string {
	visual := sumGroup(scores, visualStyleTags)
	auditory := sumGroup(scores, auditoryStyleTags)
	kinesthetic := sumGroup(scores, kinestheticStyleTags)

	if visual > auditory && visual > kinesthetic {
		return domain.LearningStyleVisual
	}
	if auditory > kinesthetic {
		return domain.LearningStyleAuditory
	}
	if kinesthetic > 0 {
		return domain.LearningStyleKinesthetic
	}
	return domain.LearningStyleMixed
}

func sumGroup(scores []domain.TagScore, group []string) int {
	member := make(map[string]bool, len(group))
	for _, tag := range group {
		member[tag] = true
	}
	sum := 0
	for _, s := range scores {
		if member[s.Tag] {
			sum += s.Score
		}
	}
	return sum
}
