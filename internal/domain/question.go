package domain

import (
	"context"
	"time"
)

// Question categories, matching the balanced-quiz selection buckets.
const (
	CategoryAptitude    = "aptitude"
	CategoryInterest    = "interest"
	CategoryPersonality = "personality"
	CategoryValues      = "values"
	CategorySkills      = "skills"
)

// Option is a single selectable answer on a question. Picking it credits
// every tag it carries with the option's weight.
type Option struct {
	Text   string
	Weight float64
	Tags   []string
}

// Question represents an assessment question with its scored options.
type Question struct {
	ID          string
	Text        string
	Type        string // multiple-choice, rating, scenario
	Options     []Option
	PrimaryTags []string
	Category    string
	Difficulty  string
	TimesUsed   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(text, questionType, category, difficulty string, options []Option, primaryTags []string) *Question {
	now := time.Now()
	return &Question{
		Text:        text,
		Type:        questionType,
		Options:     options,
		PrimaryTags: primaryTags,
		Category:    category,
		Difficulty:  difficulty,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FindOption resolves an option by exact text match. Returns nil when the
// text matches no option on this question.
func (q *Question) FindOption(text string) *Option {
	for i := range q.Options {
		if q.Options[i].Text == text {
			return &q.Options[i]
		}
	}
	return nil
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewValidationError("question text is required")
	}
	if len(q.PrimaryTags) == 0 {
		return NewValidationError("question must have at least one primary tag")
	}
	if q.Type == "multiple-choice" && len(q.Options) < 2 {
		return NewValidationError("multiple choice questions must have at least 2 options")
	}
	return nil
}

// QuestionFilter narrows question catalog listings.
type QuestionFilter struct {
	Category   string
	Difficulty string
	Limit      int
}

// QuestionRepository defines the interface for question catalog persistence.
type QuestionRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*Question, error)
	GetByFilter(ctx context.Context, filter QuestionFilter) ([]*Question, error)
	// GetBalanced returns up to perCategory active questions from each of the
	// given categories, preserving category order.
	GetBalanced(ctx context.Context, categories []string, perCategory int) ([]*Question, error)
	IncrementTimesUsed(ctx context.Context, ids []string) error
	SaveQuestion(ctx context.Context, question *Question) error
	CountQuestions(ctx context.Context) (int, error)
}
