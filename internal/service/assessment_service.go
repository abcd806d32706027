package service

import (
	"context"
	"math"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/scoring"
	"career-compass/internal/util"

	"go.uber.org/zap"
)

// quizCategories is the category rotation for balanced question sets.
var quizCategories = []string{
	domain.CategoryAptitude,
	domain.CategoryInterest,
	domain.CategoryPersonality,
	domain.CategoryValues,
	domain.CategorySkills,
}

const (
	defaultQuestionsPerCategory = 4
	defaultQuestionLimit        = 20
)

// AssessmentService defines the interface for quiz assessment operations.
type AssessmentService interface {
	GetQuestions(ctx context.Context, filter domain.QuestionFilter, perCategory int) (*dto.QuestionsResponse, error)
	SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.AssessmentResultResponse, error)
	GetResult(ctx context.Context, userID string, resultID string) (*dto.AssessmentResultResponse, error)
	GetHistory(ctx context.Context, userID string, limit int) (*dto.ResultHistoryResponse, error)
}

// assessmentService implements AssessmentService.
type assessmentService struct {
	questionRepo domain.QuestionRepository
	resultRepo   domain.ResultRepository
	userRepo     domain.UserRepository
	resultCache  ResultCacheService
	summarizer   domain.Summarizer // nil disables AI enrichment
	cfg          *config.Config
}

// NewAssessmentService creates a new instance of assessmentService.
func NewAssessmentService(
	questionRepo domain.QuestionRepository,
	resultRepo domain.ResultRepository,
	userRepo domain.UserRepository,
	resultCache ResultCacheService,
	summarizer domain.Summarizer,
	cfg *config.Config,
) AssessmentService {
	return &assessmentService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		userRepo:     userRepo,
		resultCache:  resultCache,
		summarizer:   summarizer,
		cfg:          cfg,
	}
}

// GetQuestions returns a question set. Without filters the set is balanced
// across all categories; a category or difficulty filter switches to a plain
// catalog listing capped at the requested limit.
func (s *assessmentService) GetQuestions(ctx context.Context, filter domain.QuestionFilter, perCategory int) (*dto.QuestionsResponse, error) {
	var (
		questions []*domain.Question
		err       error
	)
	if filter.Category != "" || filter.Difficulty != "" {
		if filter.Limit <= 0 {
			filter.Limit = defaultQuestionLimit
		}
		questions, err = s.questionRepo.GetByFilter(ctx, filter)
	} else {
		if perCategory <= 0 {
			perCategory = defaultQuestionsPerCategory
		}
		questions, err = s.questionRepo.GetBalanced(ctx, quizCategories, perCategory)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to load questions", err)
	}

	response := &dto.QuestionsResponse{Questions: make([]dto.QuestionResponse, 0, len(questions))}
	for _, q := range questions {
		options := make([]dto.OptionResponse, len(q.Options))
		for i, o := range q.Options {
			options[i] = dto.OptionResponse{Text: o.Text, Weight: o.Weight, Tags: o.Tags}
		}
		response.Questions = append(response.Questions, dto.QuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Type:     q.Type,
			Options:  options,
			Category: q.Category,
		})
	}
	response.Count = len(response.Questions)
	return response, nil
}

// SubmitQuiz scores a submission, persists the result, refreshes the user's
// recommendation projection, and then attempts AI enrichment. The result is
// saved before enrichment so a slow or failing AI call never loses a
// submission.
func (s *assessmentService) SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.AssessmentResultResponse, error) {
	l := logger.Get()

	if req == nil || len(req.Responses) == 0 {
		return nil, domain.NewInvalidInputError("at least one response is required")
	}

	questionIDs := make([]string, 0, len(req.Responses))
	seen := make(map[string]bool, len(req.Responses))
	for _, r := range req.Responses {
		if r.QuestionID == "" {
			return nil, domain.NewInvalidInputError("every response must name a question_id")
		}
		if !seen[r.QuestionID] {
			seen[r.QuestionID] = true
			questionIDs = append(questionIDs, r.QuestionID)
		}
	}

	questions, err := s.questionRepo.GetByIDs(ctx, questionIDs)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load questions for scoring", err)
	}
	catalog := make(map[string]*domain.Question, len(questions))
	for _, q := range questions {
		catalog[q.ID] = q
	}

	responses := make([]scoring.Response, len(req.Responses))
	for i, r := range req.Responses {
		responses[i] = scoring.Response{
			QuestionID:      r.QuestionID,
			SelectedOption:  r.SelectedOption,
			ResponseTimeSec: r.ResponseTimeSec,
		}
	}

	accum, records := scoring.Aggregate(catalog, responses)
	tagScores := scoring.Normalize(accum)
	streams := scoring.RecommendStreams(tagScores)
	careers := scoring.RecommendCareers(tagScores)
	insights := scoring.DeriveInsights(tagScores)

	quizType := req.QuizType
	if quizType == "" {
		quizType = "career-assessment"
	}

	result := &domain.AssessmentResult{
		ID:                    util.NewULID(),
		UserID:                userID,
		QuizType:              quizType,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		TotalTimeSpentMin:     elapsedMinutes(req.StartTime, req.EndTime),
		Responses:             records,
		TagScores:             tagScores,
		StreamRecommendations: streams,
		CareerCompatibility:   careers,
		Insights:              insights,
		CompletionPercentage:  completionPercentage(len(records), len(questions)),
		AIAnalysisGenerated:   false,
		AISummary:             "",
	}

	if err := s.resultRepo.SaveResult(ctx, result); err != nil {
		return nil, domain.NewInternalError("Failed to save assessment result", err)
	}

	// Bookkeeping after the save is best-effort.
	if err := s.questionRepo.IncrementTimesUsed(ctx, questionIDs); err != nil {
		l.Warn("Failed to increment question usage counters", zap.Error(err))
	}
	if err := s.userRepo.UpdateRecommendations(ctx, userID, buildProjection(result)); err != nil {
		l.Warn("Failed to refresh user recommendation projection", zap.String("user_id", userID), zap.Error(err))
	}

	s.enrich(ctx, result)

	s.resultCache.PutResult(ctx, result)
	s.resultCache.PutLatest(ctx, result)

	return dto.NewAssessmentResultResponse(result), nil
}

// GetResult returns a single result, serving from cache when possible.
// Results are private to their owner.
func (s *assessmentService) GetResult(ctx context.Context, userID string, resultID string) (*dto.AssessmentResultResponse, error) {
	result, err := s.resultCache.GetResult(ctx, resultID)
	if err != nil {
		result, err = s.resultRepo.GetResultByID(ctx, resultID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to load assessment result", err)
		}
		if result == nil {
			return nil, domain.NewResultNotFoundError(resultID)
		}
		s.resultCache.PutResult(ctx, result)
	}

	if result.UserID != userID {
		return nil, domain.NewForbiddenError("Access denied")
	}
	return dto.NewAssessmentResultResponse(result), nil
}

// GetHistory lists the user's past results, newest first.
func (s *assessmentService) GetHistory(ctx context.Context, userID string, limit int) (*dto.ResultHistoryResponse, error) {
	results, err := s.resultRepo.ListResultsByUserID(ctx, userID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load assessment history", err)
	}

	response := &dto.ResultHistoryResponse{Results: make([]dto.ResultHistoryItem, 0, len(results))}
	for _, r := range results {
		response.Results = append(response.Results, dto.NewResultHistoryItem(r))
	}
	response.Count = len(response.Results)
	return response, nil
}

// enrich asks the AI counselor for a summary and attaches the outcome to the
// saved result. Every failure path degrades to the placeholder summary; the
// submission itself has already succeeded.
func (s *assessmentService) enrich(ctx context.Context, result *domain.AssessmentResult) {
	l := logger.Get()

	if s.summarizer == nil {
		result.AISummary = domain.PlaceholderSummary
		result.AIAnalysisGenerated = false
		if err := s.resultRepo.UpdateSummary(ctx, result.ID, result.AISummary, false); err != nil {
			l.Warn("Failed to record placeholder summary", zap.String("result_id", result.ID), zap.Error(err))
		}
		return
	}

	timeout := s.cfg.Gemini.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	enrichCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	summary, err := s.summarizer.Summarize(enrichCtx, domain.SummaryRequest{
		TopStrengths: result.TopStrengthScores(3),
		TopStream:    result.TopStream(),
	})
	if err != nil {
		l.Warn("AI summary generation failed, using placeholder", zap.String("result_id", result.ID), zap.Error(err))
		summary = domain.PlaceholderSummary
		result.AIAnalysisGenerated = false
	} else {
		result.AIAnalysisGenerated = true
	}
	result.AISummary = summary

	if err := s.resultRepo.UpdateSummary(ctx, result.ID, result.AISummary, result.AIAnalysisGenerated); err != nil {
		l.Warn("Failed to persist AI summary", zap.String("result_id", result.ID), zap.Error(err))
	}
}

// buildProjection denormalizes the top slice of a result onto the user
// profile: every scored tag, the top three streams as course suggestions,
// and the top five career fields.
func buildProjection(result *domain.AssessmentResult) domain.RecommendationProjection {
	now := time.Now()

	tags := make([]domain.InterestTag, len(result.TagScores))
	for i, ts := range result.TagScores {
		tags[i] = domain.InterestTag{Tag: ts.Tag, Score: ts.Score, LastUpdated: now}
	}

	streamLimit := 3
	if streamLimit > len(result.StreamRecommendations) {
		streamLimit = len(result.StreamRecommendations)
	}
	courses := make([]domain.CourseRecommendation, 0, streamLimit)
	for _, stream := range result.StreamRecommendations[:streamLimit] {
		if len(stream.RecommendedCourses) == 0 {
			continue
		}
		courses = append(courses, domain.CourseRecommendation{
			Course:      stream.RecommendedCourses[0],
			Stream:      stream.Stream,
			Confidence:  stream.Score,
			Reasons:     []string{"Updated based on recent assessment results"},
			AISuggested: false,
		})
	}

	careerLimit := 5
	if careerLimit > len(result.CareerCompatibility) {
		careerLimit = len(result.CareerCompatibility)
	}
	careerPaths := make([]domain.CareerPathRecommendation, 0, careerLimit)
	for _, career := range result.CareerCompatibility[:careerLimit] {
		careerPaths = append(careerPaths, domain.CareerPathRecommendation{
			Career:        career.Field,
			Industry:      career.Field,
			Compatibility: career.Compatibility,
			EducationPath: []string{"Bachelor's degree in " + career.Field, "Relevant internships", "Professional certification"},
			Analysis:      "Based on your latest aptitude assessment.",
		})
	}

	return domain.RecommendationProjection{
		InterestTags: tags,
		Courses:      courses,
		CareerPaths:  careerPaths,
		UpdatedAt:    now,
	}
}

// elapsedMinutes rounds the submission window to whole minutes. Missing or
// inverted timestamps count as zero.
func elapsedMinutes(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return int(math.Round(end.Sub(start).Minutes()))
}

// completionPercentage is the share of resolvable questions that produced a
// scored response.
func completionPercentage(processed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(processed) / float64(total) * 100))
}
