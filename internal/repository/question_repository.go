package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxQuestionRepository implements domain.QuestionRepository using sqlx.
type sqlxQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a new instance of sqlxQuestionRepository.
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func (r *sqlxQuestionRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Question, error) {
	if len(ids) == 0 {
		return []*domain.Question{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM questions WHERE id IN (?) AND deleted_at IS NULL`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build query for GetByIDs: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []models.Question
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get questions by ids: %w", err)
	}
	return toDomainQuestions(rows), nil
}

func (r *sqlxQuestionRepository) GetByFilter(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	var conditions []string
	args := map[string]interface{}{}

	conditions = append(conditions, "is_active = 1", "deleted_at IS NULL")
	if filter.Category != "" {
		conditions = append(conditions, "category = :category")
		args["category"] = filter.Category
	}
	if filter.Difficulty != "" {
		conditions = append(conditions, "difficulty = :difficulty")
		args["difficulty"] = filter.Difficulty
	}

	query := `SELECT * FROM questions WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY times_used ASC, id ASC`
	if filter.Limit > 0 {
		query += ` FETCH FIRST :row_limit ROWS ONLY`
		args["row_limit"] = filter.Limit
	}

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetByFilter: %w", err)
	}
	defer stmt.Close()

	var rows []models.Question
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to get questions by filter: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// GetBalanced selects the least-used active questions per category so quiz
// composition stays even and the catalog rotates over time.
func (r *sqlxQuestionRepository) GetBalanced(ctx context.Context, categories []string, perCategory int) ([]*domain.Question, error) {
	query := `SELECT * FROM questions
	          WHERE category = :category AND is_active = 1 AND deleted_at IS NULL
	          ORDER BY times_used ASC, id ASC
	          FETCH FIRST :row_limit ROWS ONLY`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetBalanced: %w", err)
	}
	defer stmt.Close()

	var questions []*domain.Question
	for _, category := range categories {
		var rows []models.Question
		args := map[string]interface{}{"category": category, "row_limit": perCategory}
		if err := stmt.SelectContext(ctx, &rows, args); err != nil {
			return nil, fmt.Errorf("failed to get balanced questions for category %s: %w", category, err)
		}
		questions = append(questions, toDomainQuestions(rows)...)
	}
	return questions, nil
}

func (r *sqlxQuestionRepository) IncrementTimesUsed(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE questions SET times_used = times_used + 1, updated_at = ? WHERE id IN (?)`, time.Now(), ids)
	if err != nil {
		return fmt.Errorf("failed to build query for IncrementTimesUsed: %w", err)
	}
	query = r.db.Rebind(query)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to increment times_used: %w", err)
	}
	return nil
}

func (r *sqlxQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	row := fromDomainQuestion(question)
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt

	query := `INSERT INTO questions (id, text, question_type, options, primary_tags, category, difficulty, times_used, is_active, created_at, updated_at)
	          VALUES (:ID, :TEXT, :QUESTION_TYPE, :OPTIONS, :PRIMARY_TAGS, :CATEGORY, :DIFFICULTY, :TIMES_USED, :IS_ACTIVE, :CREATED_AT, :UPDATED_AT)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

func (r *sqlxQuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions WHERE deleted_at IS NULL`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// --- Converters ---

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	options := make([]domain.Option, len(m.Options))
	for i, o := range m.Options {
		options[i] = domain.Option{Text: o.Text, Weight: o.Weight, Tags: o.Tags}
	}
	return &domain.Question{
		ID:          m.ID,
		Text:        m.Text,
		Type:        m.Type,
		Options:     options,
		PrimaryTags: m.PrimaryTags,
		Category:    m.Category,
		Difficulty:  m.Difficulty,
		TimesUsed:   m.TimesUsed,
		IsActive:    m.IsActive == 1,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	options := make(models.OptionSlice, len(q.Options))
	for i, o := range q.Options {
		options[i] = models.Option{Text: o.Text, Weight: o.Weight, Tags: o.Tags}
	}
	isActive := 0
	if q.IsActive {
		isActive = 1
	}
	return &models.Question{
		ID:          q.ID,
		Text:        q.Text,
		Type:        q.Type,
		Options:     options,
		PrimaryTags: models.StringSlice(q.PrimaryTags),
		Category:    q.Category,
		Difficulty:  q.Difficulty,
		TimesUsed:   q.TimesUsed,
		IsActive:    isActive,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
