package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/repository/models"
	"career-compass/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxResultRepository implements domain.ResultRepository using sqlx.
type sqlxResultRepository struct {
	db *sqlx.DB
}

// NewSQLXResultRepository creates a new instance of sqlxResultRepository.
func NewSQLXResultRepository(db *sqlx.DB) domain.ResultRepository {
	return &sqlxResultRepository{db: db}
}

func (r *sqlxResultRepository) SaveResult(ctx context.Context, result *domain.AssessmentResult) error {
	row := fromDomainResult(result)
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt

	query := `INSERT INTO quiz_results (id, user_id, quiz_type, start_time, end_time, total_time_spent_min, responses, tag_scores, stream_recommendations, career_compatibility, insights, completion_percentage, ai_analysis_generated, ai_summary, created_at, updated_at)
	          VALUES (:ID, :USER_ID, :QUIZ_TYPE, :START_TIME, :END_TIME, :TOTAL_TIME_SPENT_MIN, :RESPONSES, :TAG_SCORES, :STREAM_RECOMMENDATIONS, :CAREER_COMPATIBILITY, :INSIGHTS, :COMPLETION_PERCENTAGE, :AI_ANALYSIS_GENERATED, :AI_SUMMARY, :CREATED_AT, :UPDATED_AT)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	result.CreatedAt = row.CreatedAt
	result.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *sqlxResultRepository) UpdateSummary(ctx context.Context, resultID string, summary string, generated bool) error {
	generatedFlag := 0
	if generated {
		generatedFlag = 1
	}

	query := `UPDATE quiz_results SET ai_summary = :ai_summary, ai_analysis_generated = :ai_analysis_generated, updated_at = :updated_at WHERE id = :id`
	args := map[string]interface{}{
		"ai_summary":            summary,
		"ai_analysis_generated": generatedFlag,
		"updated_at":            time.Now(),
		"id":                    resultID,
	}

	res, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update result summary: %w", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxResultRepository) GetResultByID(ctx context.Context, resultID string) (*domain.AssessmentResult, error) {
	var row models.QuizResult
	query := `SELECT * FROM quiz_results WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetResultByID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &row, map[string]interface{}{"id": resultID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}
	return toDomainResult(&row), nil
}

func (r *sqlxResultRepository) GetLatestResultByUserID(ctx context.Context, userID string) (*domain.AssessmentResult, error) {
	var row models.QuizResult
	query := `SELECT * FROM quiz_results WHERE user_id = :user_id ORDER BY created_at DESC FETCH FIRST 1 ROWS ONLY`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetLatestResultByUserID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &row, map[string]interface{}{"user_id": userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest result by user id: %w", err)
	}
	return toDomainResult(&row), nil
}

func (r *sqlxResultRepository) ListResultsByUserID(ctx context.Context, userID string, limit int) ([]*domain.AssessmentResult, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT * FROM quiz_results WHERE user_id = :user_id ORDER BY created_at DESC FETCH FIRST :row_limit ROWS ONLY`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for ListResultsByUserID: %w", err)
	}
	defer stmt.Close()

	var rows []models.QuizResult
	args := map[string]interface{}{"user_id": userID, "row_limit": limit}
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to list results by user id: %w", err)
	}

	results := make([]*domain.AssessmentResult, len(rows))
	for i := range rows {
		results[i] = toDomainResult(&rows[i])
	}
	return results, nil
}

// --- Converters ---

func toDomainResult(m *models.QuizResult) *domain.AssessmentResult {
	if m == nil {
		return nil
	}
	result := &domain.AssessmentResult{
		ID:                    m.ID,
		UserID:                m.UserID,
		QuizType:              m.QuizType,
		TotalTimeSpentMin:     m.TotalTimeSpentMin,
		Responses:             m.Responses,
		TagScores:             m.TagScores,
		StreamRecommendations: m.StreamRecommendations,
		CareerCompatibility:   m.CareerCompatibility,
		Insights:              domain.Insights(m.Insights),
		CompletionPercentage:  m.CompletionPercentage,
		AIAnalysisGenerated:   m.AIAnalysisGenerated == 1,
		AISummary:             m.AISummary.String,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if m.StartTime.Valid {
		result.StartTime = m.StartTime.Time
	}
	if m.EndTime.Valid {
		result.EndTime = m.EndTime.Time
	}
	return result
}

func fromDomainResult(r *domain.AssessmentResult) *models.QuizResult {
	if r == nil {
		return nil
	}
	generated := 0
	if r.AIAnalysisGenerated {
		generated = 1
	}
	return &models.QuizResult{
		ID:                    r.ID,
		UserID:                r.UserID,
		QuizType:              r.QuizType,
		StartTime:             util.TimeToNullTime(r.StartTime),
		EndTime:               util.TimeToNullTime(r.EndTime),
		TotalTimeSpentMin:     r.TotalTimeSpentMin,
		Responses:             r.Responses,
		TagScores:             r.TagScores,
		StreamRecommendations: r.StreamRecommendations,
		CareerCompatibility:   r.CareerCompatibility,
		Insights:              models.InsightsJSON(r.Insights),
		CompletionPercentage:  r.CompletionPercentage,
		AIAnalysisGenerated:   generated,
		AISummary:             util.StringToNullString(r.AISummary),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}
