package scoring

import (
	"math"
	"sort"

	"career-compass/internal/domain"
)

// RecommendStreams maps normalized tag scores onto the educational stream
// taxonomy. Every stream appears in the output: streams with no matched
// required tag carry score 0. The list is sorted by score descending with
// ties kept in taxonomy order.
//
// score = round(matchedTagCount / totalScore * 400 * streamScoreFactor),
// where totalScore sums the user's scores on the stream's matched required
// tags. The formula is a pure function of its inputs; re-running the same
// submission always yields the same ranking.
func RecommendStreams(scores []domain.TagScore) []domain.StreamRecommendation {
	index := scoreIndex(scores)

	recommendations := make([]domain.StreamRecommendation, 0, len(streamOrder))
	for _, stream := range streamOrder {
		required := streamTags[stream]

		totalScore := 0
		matched := 0
		contributions := make([]domain.TagContribution, 0, len(required))
		for _, tag := range required {
			if score, ok := index[tag]; ok {
				totalScore += score
				matched++
				contributions = append(contributions, domain.TagContribution{Tag: tag, Contribution: score})
			}
		}

		score := 0
		if matched > 0 && totalScore > 0 {
			score = int(math.Round(float64(matched) / float64(totalScore) * 400 * streamScoreFactor))
		}

		sort.SliceStable(contributions, func(i, j int) bool {
			return contributions[i].Contribution > contributions[j].Contribution
		})
		if len(contributions) > 3 {
			contributions = contributions[:3]
		}

		recommendations = append(recommendations, domain.StreamRecommendation{
			Stream:              stream,
			Score:               score,
			TopContributingTags: contributions,
			RecommendedCourses:  CoursesForStream(stream),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	return recommendations
}
