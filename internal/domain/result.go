package domain

import (
	"context"
	"time"
)

// Educational streams, in taxonomy declaration order. The order doubles as
// the tie-break for equal stream scores.
const (
	StreamScience    = "Science"
	StreamCommerce   = "Commerce"
	StreamArts       = "Arts"
	StreamVocational = "Vocational"
)

// Learning styles derived from tag score groups.
const (
	LearningStyleVisual      = "visual"
	LearningStyleAuditory    = "auditory"
	LearningStyleKinesthetic = "kinesthetic"
	LearningStyleMixed       = "mixed"
)

// PlaceholderSummary is attached when AI enrichment fails or is disabled.
const PlaceholderSummary = "Could not generate AI summary at this time."

// TagScore is a normalized trait score. Score is an integer percentage in
// [0,100]; tags with zero contributions are absent from result lists, never
// present with a zero score.
type TagScore struct {
	Tag               string `json:"tag"`
	Score             int    `json:"score"`
	ContributingCount int    `json:"questions_contributed"`
}

// TagContribution names a tag and its score contribution to a stream.
type TagContribution struct {
	Tag          string `json:"tag"`
	Contribution int    `json:"contribution"`
}

// StreamRecommendation ranks one educational stream for a user.
type StreamRecommendation struct {
	Stream              string            `json:"stream"`
	Score               int               `json:"score"`
	TopContributingTags []TagContribution `json:"top_contributing_tags"`
	RecommendedCourses  []string          `json:"recommended_courses"`
}

// CareerCompatibility ranks one career field for a user. Fields with zero
// compatibility are dropped from result lists entirely.
type CareerCompatibility struct {
	Field          string   `json:"field"`
	Compatibility  int      `json:"compatibility"`
	MatchingTags   []string `json:"matching_tags"`
	SuggestedRoles []string `json:"suggested_roles"`
}

// Insights holds the qualitative read of a score profile.
type Insights struct {
	TopStrengths        []string `json:"top_strengths"`
	AreasForExploration []string `json:"areas_for_exploration"`
	PersonalityTraits   []string `json:"personality_traits"`
	LearningStyle       string   `json:"learning_style"`
}

// ResponseRecord is the audit trail entry for one processed response: a
// snapshot of the option the user picked, so results survive later edits to
// the question catalog.
type ResponseRecord struct {
	QuestionID      string   `json:"question_id"`
	OptionText      string   `json:"option_text"`
	OptionWeight    float64  `json:"option_weight"`
	OptionTags      []string `json:"option_tags"`
	ResponseTimeSec int      `json:"response_time_sec"`
	WasSkipped      bool     `json:"was_skipped"`
}

// AssessmentResult is the immutable record produced by one quiz submission.
// After the enrichment step completes or fails, nothing mutates it again
// except a later submission replacing the user's latest result.
type AssessmentResult struct {
	ID                    string
	UserID                string
	QuizType              string
	StartTime             time.Time
	EndTime               time.Time
	TotalTimeSpentMin     int
	Responses             []ResponseRecord
	TagScores             []TagScore
	StreamRecommendations []StreamRecommendation
	CareerCompatibility   []CareerCompatibility
	Insights              Insights
	CompletionPercentage  int
	AIAnalysisGenerated   bool
	AISummary             string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TopStream returns the highest ranked stream recommendation, or nil when
// the result has none.
func (r *AssessmentResult) TopStream() *StreamRecommendation {
	if len(r.StreamRecommendations) == 0 {
		return nil
	}
	return &r.StreamRecommendations[0]
}

// TopStrengthScores returns the highest scored tags, capped at limit.
func (r *AssessmentResult) TopStrengthScores(limit int) []TagScore {
	if limit > len(r.TagScores) {
		limit = len(r.TagScores)
	}
	return r.TagScores[:limit]
}

// ResultRepository defines the interface for assessment result persistence.
type ResultRepository interface {
	SaveResult(ctx context.Context, result *AssessmentResult) error
	// UpdateSummary attaches the enrichment outcome to an already saved
	// result. Last write wins; no locking across submissions.
	UpdateSummary(ctx context.Context, resultID string, summary string, generated bool) error
	GetResultByID(ctx context.Context, resultID string) (*AssessmentResult, error)
	GetLatestResultByUserID(ctx context.Context, userID string) (*AssessmentResult, error)
	ListResultsByUserID(ctx context.Context, userID string, limit int) ([]*AssessmentResult, error)
}
