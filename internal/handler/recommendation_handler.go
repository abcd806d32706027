package handler

import (
	"career-compass/internal/domain"
	"career-compass/internal/logger"
	"career-compass/internal/middleware"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecommendationHandler handles recommendation HTTP requests
type RecommendationHandler struct {
	service service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler instance
func NewRecommendationHandler(service service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
	}
}

// GetRecommendations godoc
// @Summary Get personalized recommendations
// @Description Returns the caller's interest tags, course and career recommendations
// @Tags recommendations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not identified")
	}

	recommendations, err := h.service.GetRecommendations(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(recommendations)
}

// RefreshRecommendations godoc
// @Summary Refresh recommendations
// @Description Rebuilds the caller's recommendations from their latest assessment
// @Tags recommendations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /recommendations/refresh [post]
func (h *RecommendationHandler) RefreshRecommendations(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not identified")
	}

	recommendations, err := h.service.RefreshRecommendations(c.Context(), userID)
	if err != nil {
		logger.Get().Error("Failed to refresh recommendations",
			zap.Error(err),
			zap.String("userID", userID),
		)
		return err
	}
	return c.JSON(recommendations)
}

// CompareStreams godoc
// @Summary Compare academic streams
// @Description Compares the caller's recommended streams with strengths, challenges and market data
// @Tags recommendations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.StreamComparisonResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /recommendations/compare-streams [get]
func (h *RecommendationHandler) CompareStreams(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not identified")
	}

	comparison, err := h.service.CompareStreams(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(comparison)
}

// GetCareerPaths godoc
// @Summary Get career paths for a stream
// @Description Returns detailed career paths within a stream with compatibility scores
// @Tags recommendations
// @Produce json
// @Security ApiKeyAuth
// @Param stream path string true "Academic stream" Enums(Science, Commerce, Arts, Vocational)
// @Success 200 {object} dto.CareerPathsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /recommendations/career-paths/{stream} [get]
func (h *RecommendationHandler) GetCareerPaths(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not identified")
	}

	stream := c.Params("stream")

	paths, err := h.service.GetCareerPaths(c.Context(), userID, stream)
	if err != nil {
		return err
	}
	return c.JSON(paths)
}
