package handler

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/middleware"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles assessment quiz HTTP requests
type QuizHandler struct {
	service service.AssessmentService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.AssessmentService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GetQuestions godoc
// @Summary Get a question set
// @Description Returns assessment questions, balanced across all categories unless a category or difficulty filter is given
// @Tags quiz
// @Accept json
// @Produce json
// @Param category query string false "Restrict to one category"
// @Param difficulty query string false "Restrict to one difficulty"
// @Param limit query int false "Maximum questions for a filtered listing (default 20)"
// @Param per_category query int false "Questions per category for the balanced set (default 4)"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/questions [get]
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	filter := domain.QuestionFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Limit:      c.QueryInt("limit", 0),
	}
	perCategory := c.QueryInt("per_category", 0)

	questions, err := h.service.GetQuestions(c.Context(), filter, perCategory)
	if err != nil {
		logger.Get().Error("Failed to get questions", zap.Error(err))
		return err
	}
	return c.JSON(questions)
}

// SubmitQuiz godoc
// @Summary Submit a completed quiz
// @Description Scores the submission and returns the full assessment result
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SubmitQuizRequest true "Quiz submission"
// @Success 201 {object} dto.AssessmentResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not identified")
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	result, err := h.service.SubmitQuiz(c.Context(), userID, &req)
	if err != nil {
		logger.Get().Error("Failed to submit quiz",
			zap.Error(err),
			zap.String("userID", userID),
		)
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetResult godoc
// @Summary Get an assessment result
// @Description Returns a single assessment result owned by the caller
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Result ID"
// @Success 200 {object} dto.AssessmentResultResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/results/{id} [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not identified")
	}

	resultID := c.Params("id")
	if resultID == "" {
		return domain.NewInvalidInputError("result id is required")
	}

	result, err := h.service.GetResult(c.Context(), userID, resultID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetHistory godoc
// @Summary Get assessment history
// @Description Lists the caller's past assessment results, newest first
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of results (default 10)"
// @Success 200 {object} dto.ResultHistoryResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/results [get]
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not identified")
	}

	limit := c.QueryInt("limit", 0)

	history, err := h.service.GetHistory(c.Context(), userID, limit)
	if err != nil {
		logger.Get().Error("Failed to get assessment history",
			zap.Error(err),
			zap.String("userID", userID),
		)
		return err
	}
	return c.JSON(history)
}
