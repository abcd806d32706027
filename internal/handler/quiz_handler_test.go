package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/handler"
	"career-compass/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// --- Manual Mocks ---

// MockAssessmentService
type MockAssessmentService struct {
	GetQuestionsFunc func(ctx context.Context, filter domain.QuestionFilter, perCategory int) (*dto.QuestionsResponse, error)
	SubmitQuizFunc   func(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.AssessmentResultResponse, error)
	GetResultFunc    func(ctx context.Context, userID string, resultID string) (*dto.AssessmentResultResponse, error)
	GetHistoryFunc   func(ctx context.Context, userID string, limit int) (*dto.ResultHistoryResponse, error)
}

func (m *MockAssessmentService) GetQuestions(ctx context.Context, filter domain.QuestionFilter, perCategory int) (*dto.QuestionsResponse, error) {
	if m.GetQuestionsFunc != nil {
		return m.GetQuestionsFunc(ctx, filter, perCategory)
	}
	panic("MockAssessmentService.GetQuestionsFunc not implemented")
}
func (m *MockAssessmentService) SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.AssessmentResultResponse, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, userID, req)
	}
	panic("MockAssessmentService.SubmitQuizFunc not implemented")
}
func (m *MockAssessmentService) GetResult(ctx context.Context, userID string, resultID string) (*dto.AssessmentResultResponse, error) {
	if m.GetResultFunc != nil {
		return m.GetResultFunc(ctx, userID, resultID)
	}
	panic("MockAssessmentService.GetResultFunc not implemented")
}
func (m *MockAssessmentService) GetHistory(ctx context.Context, userID string, limit int) (*dto.ResultHistoryResponse, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, userID, limit)
	}
	panic("MockAssessmentService.GetHistoryFunc not implemented")
}

func newQuizTestApp(svc *MockAssessmentService, userID string) *fiber.App {
	quizHandler := handler.NewQuizHandler(svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	withUser := func(h fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			if userID != "" {
				c.Locals(middleware.UserIDKey, userID)
			}
			return h(c)
		}
	}
	app.Get("/quiz/questions", quizHandler.GetQuestions)
	app.Post("/quiz/submit", withUser(quizHandler.SubmitQuiz))
	app.Get("/quiz/results", withUser(quizHandler.GetHistory))
	app.Get("/quiz/results/:id", withUser(quizHandler.GetResult))
	return app
}

func TestQuizHandler_GetQuestions(t *testing.T) {
	mockSvc := &MockAssessmentService{}
	var capturedFilter domain.QuestionFilter
	var capturedPerCategory int
	mockSvc.GetQuestionsFunc = func(ctx context.Context, filter domain.QuestionFilter, perCategory int) (*dto.QuestionsResponse, error) {
		capturedFilter = filter
		capturedPerCategory = perCategory
		return &dto.QuestionsResponse{
			Questions: []dto.QuestionResponse{{ID: "q1", Text: "How do you approach a problem?", Category: "aptitude"}},
			Count:     1,
		}, nil
	}
	app := newQuizTestApp(mockSvc, "")

	req := httptest.NewRequest("GET", "/quiz/questions?per_category=2", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, capturedPerCategory)
	assert.Equal(t, domain.QuestionFilter{}, capturedFilter)

	var body dto.QuestionsResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "q1", body.Questions[0].ID)

	req = httptest.NewRequest("GET", "/quiz/questions?category=interest&difficulty=easy&limit=5", nil)
	resp, err = app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.QuestionFilter{Category: "interest", Difficulty: "easy", Limit: 5}, capturedFilter)
}

func TestQuizHandler_SubmitQuiz(t *testing.T) {
	option := "Break it into smaller parts"
	submission := dto.SubmitQuizRequest{
		StartTime: time.Now().Add(-10 * time.Minute),
		EndTime:   time.Now(),
		Responses: []dto.QuizResponseItem{{QuestionID: "q1", SelectedOption: &option}},
	}

	t.Run("Authenticated User", func(t *testing.T) {
		mockSvc := &MockAssessmentService{}
		var capturedUserID string
		mockSvc.SubmitQuizFunc = func(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.AssessmentResultResponse, error) {
			capturedUserID = userID
			assert.Len(t, req.Responses, 1)
			return &dto.AssessmentResultResponse{ID: "res1", QuizType: "career-assessment"}, nil
		}
		app := newQuizTestApp(mockSvc, "user1")

		reqBody, _ := json.Marshal(submission)
		req := httptest.NewRequest("POST", "/quiz/submit", bytes.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "user1", capturedUserID)
	})

	t.Run("Anonymous User", func(t *testing.T) {
		mockSvc := &MockAssessmentService{}
		app := newQuizTestApp(mockSvc, "")

		reqBody, _ := json.Marshal(submission)
		req := httptest.NewRequest("POST", "/quiz/submit", bytes.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		mockSvc := &MockAssessmentService{}
		app := newQuizTestApp(mockSvc, "user1")

		req := httptest.NewRequest("POST", "/quiz/submit", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Empty Submission", func(t *testing.T) {
		mockSvc := &MockAssessmentService{}
		mockSvc.SubmitQuizFunc = func(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.AssessmentResultResponse, error) {
			return nil, domain.NewInvalidInputError("at least one response is required")
		}
		app := newQuizTestApp(mockSvc, "user1")

		reqBody, _ := json.Marshal(dto.SubmitQuizRequest{})
		req := httptest.NewRequest("POST", "/quiz/submit", bytes.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body middleware.ErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, string(domain.CodeInvalidInput), body.Code)
	})
}

func TestQuizHandler_GetResult(t *testing.T) {
	t.Run("Owned Result", func(t *testing.T) {
		mockSvc := &MockAssessmentService{}
		mockSvc.GetResultFunc = func(ctx context.Context, userID string, resultID string) (*dto.AssessmentResultResponse, error) {
			assert.Equal(t, "user1", userID)
			assert.Equal(t, "res1", resultID)
			return &dto.AssessmentResultResponse{ID: "res1"}, nil
		}
		app := newQuizTestApp(mockSvc, "user1")

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz/results/res1", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Foreign Result", func(t *testing.T) {
		mockSvc := &MockAssessmentService{}
		mockSvc.GetResultFunc = func(ctx context.Context, userID string, resultID string) (*dto.AssessmentResultResponse, error) {
			return nil, domain.NewForbiddenError("Access denied")
		}
		app := newQuizTestApp(mockSvc, "user1")

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz/results/res2", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("Unknown Result", func(t *testing.T) {
		mockSvc := &MockAssessmentService{}
		mockSvc.GetResultFunc = func(ctx context.Context, userID string, resultID string) (*dto.AssessmentResultResponse, error) {
			return nil, domain.NewResultNotFoundError(resultID)
		}
		app := newQuizTestApp(mockSvc, "user1")

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz/results/ghost", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestQuizHandler_GetHistory(t *testing.T) {
	mockSvc := &MockAssessmentService{}
	mockSvc.GetHistoryFunc = func(ctx context.Context, userID string, limit int) (*dto.ResultHistoryResponse, error) {
		assert.Equal(t, 5, limit)
		return &dto.ResultHistoryResponse{
			Results: []dto.ResultHistoryItem{{ID: "res1", TopStream: "Science", TopStreamScore: 91}},
			Count:   1,
		}, nil
	}
	app := newQuizTestApp(mockSvc, "user1")

	resp, err := app.Test(httptest.NewRequest("GET", "/quiz/results?limit=5", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ResultHistoryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Science", body.Results[0].TopStream)
}
