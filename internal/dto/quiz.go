package dto

import (
	"time"

	"career-compass/internal/domain"
)

// OptionResponse represents a question option in the API response.
type OptionResponse struct {
	Text   string   `json:"text"`
	Weight float64  `json:"weight"`
	Tags   []string `json:"tags"`
}

// QuestionResponse represents a question in the API response.
// @Description Assessment question with scored options
type QuestionResponse struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Type     string           `json:"type"`
	Options  []OptionResponse `json:"options"`
	Category string           `json:"category"`
}

// QuestionsResponse is the response for a balanced question set.
type QuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Count     int                `json:"count"`
}

// QuizResponseItem is one answered (or skipped) question in a submission.
type QuizResponseItem struct {
	QuestionID      string  `json:"question_id" validate:"required"`
	SelectedOption  *string `json:"selected_option"` // nil means skipped
	ResponseTimeSec int     `json:"response_time_sec"`
}

// SubmitQuizRequest represents a quiz submission in the API request.
// @Description Request body for submitting a completed quiz
type SubmitQuizRequest struct {
	QuizType  string             `json:"quiz_type"`
	StartTime time.Time          `json:"start_time"`
	EndTime   time.Time          `json:"end_time"`
	Responses []QuizResponseItem `json:"responses" validate:"required"`
}

// AssessmentResultResponse represents a scored assessment in the API response.
// @Description Full scored assessment result
type AssessmentResultResponse struct {
	ID                    string                        `json:"id"`
	QuizType              string                        `json:"quiz_type"`
	TagScores             []domain.TagScore             `json:"tag_scores"`
	StreamRecommendations []domain.StreamRecommendation `json:"stream_recommendations"`
	CareerCompatibility   []domain.CareerCompatibility  `json:"career_compatibility"`
	Insights              domain.Insights               `json:"insights"`
	CompletionPercentage  int                           `json:"completion_percentage"`
	TotalTimeSpentMin     int                           `json:"total_time_spent_min"`
	AIAnalysisGenerated   bool                          `json:"ai_analysis_generated"`
	AISummary             string                        `json:"ai_summary"`
	CreatedAt             time.Time                     `json:"created_at"`
}

// ResultHistoryItem is a condensed past result in a history listing.
type ResultHistoryItem struct {
	ID                   string    `json:"id"`
	QuizType             string    `json:"quiz_type"`
	TopStream            string    `json:"top_stream,omitempty"`
	TopStreamScore       int       `json:"top_stream_score,omitempty"`
	CompletionPercentage int       `json:"completion_percentage"`
	CreatedAt            time.Time `json:"created_at"`
}

// ResultHistoryResponse is the response for a user's assessment history.
type ResultHistoryResponse struct {
	Results []ResultHistoryItem `json:"results"`
	Count   int                 `json:"count"`
}

// StreamComparisonItem describes one stream in a side-by-side comparison,
// built from the user's latest result plus static market data.
type StreamComparisonItem struct {
	Stream             string                   `json:"stream"`
	Score              int                      `json:"score"`
	Strengths          []domain.TagContribution `json:"strengths"`
	Challenges         []domain.TagContribution `json:"challenges"`
	RecommendedCourses []string                 `json:"recommended_courses"`
	CareerProspects    []string                 `json:"career_prospects"`
	AverageSalaryRange string                   `json:"average_salary_range"`
	JobMarketTrend     string                   `json:"job_market_trend"`
}

// StreamComparisonResponse is the response for comparing streams side by side.
type StreamComparisonResponse struct {
	StreamComparison  []StreamComparisonItem `json:"stream_comparison"`
	TopRecommendation *StreamComparisonItem  `json:"top_recommendation,omitempty"`
	UserStrengths     []string               `json:"user_strengths"`
}

// CareerPathDetail is one detailed education-to-career path within a stream.
type CareerPathDetail struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	EducationPath  []string `json:"education_path"`
	AverageSalary  string   `json:"average_salary"`
	JobRoles       []string `json:"job_roles"`
	Compatibility  int      `json:"compatibility"`
}

// CareerPathsResponse is the detailed career path listing for a stream.
type CareerPathsResponse struct {
	Stream      string             `json:"stream"`
	CareerPaths []CareerPathDetail `json:"career_paths"`
	TotalPaths  int                `json:"total_paths"`
}

// RecommendationsResponse is the cached recommendation projection for a
// user, together with the insights from their latest assessment.
type RecommendationsResponse struct {
	InterestTags   []domain.InterestTag              `json:"interest_tags"`
	Courses        []domain.CourseRecommendation     `json:"recommended_courses"`
	CareerPaths    []domain.CareerPathRecommendation `json:"career_paths"`
	LatestInsights *domain.Insights                  `json:"latest_insights,omitempty"`
	AISummary      string                            `json:"ai_summary,omitempty"`
	UpdatedAt      *time.Time                        `json:"updated_at,omitempty"`
}

// ErrorResponse represents an error in the API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAssessmentResultResponse builds the API view of a scored result.
func NewAssessmentResultResponse(result *domain.AssessmentResult) *AssessmentResultResponse {
	return &AssessmentResultResponse{
		ID:                    result.ID,
		QuizType:              result.QuizType,
		TagScores:             result.TagScores,
		StreamRecommendations: result.StreamRecommendations,
		CareerCompatibility:   result.CareerCompatibility,
		Insights:              result.Insights,
		CompletionPercentage:  result.CompletionPercentage,
		TotalTimeSpentMin:     result.TotalTimeSpentMin,
		AIAnalysisGenerated:   result.AIAnalysisGenerated,
		AISummary:             result.AISummary,
		CreatedAt:             result.CreatedAt,
	}
}

// NewResultHistoryItem builds the condensed history view of a result.
func NewResultHistoryItem(result *domain.AssessmentResult) ResultHistoryItem {
	item := ResultHistoryItem{
		ID:                   result.ID,
		QuizType:             result.QuizType,
		CompletionPercentage: result.CompletionPercentage,
		CreatedAt:            result.CreatedAt,
	}
	if top := result.TopStream(); top != nil {
		item.TopStream = top.Stream
		item.TopStreamScore = top.Score
	}
	return item
}
