package models

import (
	"database/sql"
	"time"
)

// QuizResult represents a row in the quiz_results table. The scored payloads
// are JSON documents stored in CLOB columns so a result is read back exactly
// as it was computed.
type QuizResult struct {
	ID                    string                    `db:"ID"` // ULID
	UserID                string                    `db:"USER_ID"`
	QuizType              string                    `db:"QUIZ_TYPE"`
	StartTime             sql.NullTime              `db:"START_TIME"`
	EndTime               sql.NullTime              `db:"END_TIME"`
	TotalTimeSpentMin     int                       `db:"TOTAL_TIME_SPENT_MIN"`
	Responses             ResponseRecordSlice       `db:"RESPONSES"`
	TagScores             TagScoreSlice             `db:"TAG_SCORES"`
	StreamRecommendations StreamRecommendationSlice `db:"STREAM_RECOMMENDATIONS"`
	CareerCompatibility   CareerCompatibilitySlice  `db:"CAREER_COMPATIBILITY"`
	Insights              InsightsJSON              `db:"INSIGHTS"`
	CompletionPercentage  int                       `db:"COMPLETION_PERCENTAGE"`
	AIAnalysisGenerated   int                       `db:"AI_ANALYSIS_GENERATED"` // Oracle NUMBER(1) boolean
	AISummary             sql.NullString            `db:"AI_SUMMARY"`
	CreatedAt             time.Time                 `db:"CREATED_AT"`
	UpdatedAt             time.Time                 `db:"UPDATED_AT"`
}
