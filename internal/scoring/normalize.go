package scoring

import (
	"math"
	"sort"

	"career-compass/internal/domain"
)

// Normalize converts raw per-tag accumulators into bounded percentage
// scores: score = min(100, round(contributingCount / totalWeight * 400)).
//
// The count/totalWeight direction means scores rise as the average option
// weight falls. That reads inverted, but it is the documented formula the
// stored results were produced with, so it is kept verbatim for
// compatibility (see DESIGN.md). A zero total weight yields score 0 rather
// than dividing by zero.
//
// Output is sorted by score descending, ties by tag name ascending, so two
// runs over the same accumulator are byte-identical. Tags with zero
// contributions are absent, not zero.
func Normalize(accum TagAccumulator) []domain.TagScore {
	scores := make([]domain.TagScore, 0, len(accum))
	for tag, entry := range accum {
		if entry.ContributingCount == 0 {
			continue
		}
		score := 0
		if entry.TotalWeight > 0 {
			score = int(math.Round(float64(entry.ContributingCount) / entry.TotalWeight * 400))
			if score > 100 {
				score = 100
			}
		}
		scores = append(scores, domain.TagScore{
			Tag:               tag,
			Score:             score,
			ContributingCount: entry.ContributingCount,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Tag < scores[j].Tag
	})
	return scores
}

// scoreIndex builds a tag -> score lookup for the scorers.
func scoreIndex(scores []domain.TagScore) map[string]int {
	index := make(map[string]int, len(scores))
	for _, s := range scores {
		index[s.Tag] = s.Score
	}
	return index
}

// Compatibility is the plain matched-tag average used by career scoring and
// detailed career paths: round(totalScore / matchedTagCount), 0 when no
// required tag matched.
func Compatibility(requiredTags []string, scores []domain.TagScore) int {
	index := scoreIndex(scores)
	totalScore := 0
	matched := 0
	for _, tag := range requiredTags {
		if score, ok := index[tag]; ok {
			totalScore += score
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return int(math.Round(float64(totalScore) / float64(matched)))
}
