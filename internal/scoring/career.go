package scoring

import (
	"sort"

	"career-compass/internal/domain"
)

// RecommendCareers maps normalized tag scores onto the career field
// taxonomy. compatibility = round(totalScore / matchedTagCount), the plain
// average of the user's scores on the field's matched required tags.
// Fields with zero compatibility are dropped. matchingTags lists the
// required tags the user scored above 60 on. Sorted by compatibility
// descending, ties kept in taxonomy order.
func RecommendCareers(scores []domain.TagScore) []domain.CareerCompatibility {
	index := scoreIndex(scores)

	compatibilities := make([]domain.CareerCompatibility, 0, len(careerOrder))
	for _, field := range careerOrder {
		required := careerTags[field]

		compatibility := Compatibility(required, scores)
		if compatibility == 0 {
			continue
		}

		matchingTags := make([]string, 0, len(required))
		for _, tag := range required {
			if score, ok := index[tag]; ok && score > matchedTagThreshold {
				matchingTags = append(matchingTags, tag)
			}
		}

		compatibilities = append(compatibilities, domain.CareerCompatibility{
			Field:          field,
			Compatibility:  compatibility,
			MatchingTags:   matchingTags,
			SuggestedRoles: RolesForField(field),
		})
	}

	sort.SliceStable(compatibilities, func(i, j int) bool {
		return compatibilities[i].Compatibility > compatibilities[j].Compatibility
	})
	return compatibilities
}
