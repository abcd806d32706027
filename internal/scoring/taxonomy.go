package scoring

import "career-compass/internal/domain"

// streamOrder is the taxonomy declaration order; equal scores keep this
// order in ranked output.
var streamOrder = []string{
	domain.StreamScience,
	domain.StreamCommerce,
	domain.StreamArts,
	domain.StreamVocational,
}

// streamTags maps each educational stream to its required tags.
var streamTags = map[string][]string{
	domain.StreamScience:    {"logical-thinking", "problem-solving", "analytical-skills", "science-interest", "mathematics-interest", "technical-skills"},
	domain.StreamCommerce:   {"analytical-skills", "communication", "leadership", "business-interest", "mathematics-interest"},
	domain.StreamArts:       {"creativity", "artistic-ability", "communication", "arts-interest", "design-thinking"},
	domain.StreamVocational: {"technical-skills", "problem-solving", "hands-on-learning", "practical-skills"},
}

var streamCourses = map[string][]string{
	domain.StreamScience:    {"B.Tech", "B.Sc", "MBBS", "B.Pharm", "B.E"},
	domain.StreamCommerce:   {"B.Com", "BBA", "B.Com (H)", "BCA", "B.A (Economics)"},
	domain.StreamArts:       {"B.A", "B.Des", "B.A (Psychology)", "B.A (Literature)", "B.F.A"},
	domain.StreamVocational: {"Diploma in Engineering", "ITI", "Polytechnic", "Certificate Courses"},
}

// careerOrder is the taxonomy declaration order for career fields.
var careerOrder = []string{"Engineering", "Medicine", "Business", "Design", "Teaching", "Research"}

// careerTags maps each career field to its required tags.
var careerTags = map[string][]string{
	"Engineering": {"logical-thinking", "problem-solving", "technical-skills", "mathematics-interest"},
	"Medicine":    {"science-interest", "helping-others", "analytical-skills", "attention-to-detail"},
	"Business":    {"leadership", "communication", "analytical-skills", "entrepreneurship"},
	"Design":      {"creativity", "artistic-ability", "design-thinking", "visual-skills"},
	"Teaching":    {"communication", "helping-others", "patience", "knowledge-sharing"},
	"Research":    {"analytical-skills", "curiosity", "attention-to-detail", "logical-thinking"},
}

var fieldRoles = map[string][]string{
	"Engineering": {"Software Engineer", "Civil Engineer", "Mechanical Engineer", "Electrical Engineer"},
	"Medicine":    {"Doctor", "Surgeon", "Researcher", "Healthcare Administrator"},
	"Business":    {"Manager", "Consultant", "Entrepreneur", "Business Analyst"},
	"Design":      {"Graphic Designer", "UI/UX Designer", "Architect", "Fashion Designer"},
	"Teaching":    {"Professor", "Teacher", "Trainer", "Education Administrator"},
	"Research":    {"Research Scientist", "Data Analyst", "Lab Researcher", "Academic Researcher"},
}

// personalityTraitTags is the fixed set of tags reported as personality
// traits when present in a user's scores.
var personalityTraitTags = map[string]bool{
	"leadership":    true,
	"creativity":    true,
	"communication": true,
	"teamwork":      true,
}

// Learning style tag groups. A style wins on a strictly higher score sum;
// precedence on comparison is visual, auditory, kinesthetic, mixed.
var (
	visualStyleTags      = []string{"visual-skills", "design-thinking", "creativity"}
	auditoryStyleTags    = []string{"communication", "verbal-skills"}
	kinestheticStyleTags = []string{"hands-on-learning", "practical-skills"}
)

// streamScoreFactor is the fixed multiplier in the stream score formula.
// It replaces a non-deterministic factor in an earlier revision of the
// formula so that identical inputs always produce identical rankings.
const streamScoreFactor = 10

// matchedTagThreshold is the score above which a required tag counts as a
// career match for matching-tag reporting.
const matchedTagThreshold = 60

// StreamNames returns the streams in taxonomy order.
func StreamNames() []string {
	out := make([]string, len(streamOrder))
	copy(out, streamOrder)
	return out
}

// CoursesForStream returns the static course list for a stream, or an empty
// slice for an unknown stream.
func CoursesForStream(stream string) []string {
	courses, ok := streamCourses[stream]
	if !ok {
		return []string{}
	}
	out := make([]string, len(courses))
	copy(out, courses)
	return out
}

// RolesForField returns the static role list for a career field, or an
// empty slice for an unknown field.
func RolesForField(field string) []string {
	roles, ok := fieldRoles[field]
	if !ok {
		return []string{}
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}

// IsKnownStream reports whether stream is part of the taxonomy.
func IsKnownStream(stream string) bool {
	_, ok := streamTags[stream]
	return ok
}
