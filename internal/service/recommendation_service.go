package service

import (
	"context"
	"fmt"
	"math"

	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/scoring"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Thresholds for reading strengths and challenges out of a stream's
// contributing tags.
const (
	strengthContributionFloor = 70
	challengeContributionCeil = 50
	strongTagScoreFloor       = 70
)

// RecommendationService defines the interface for personalized guidance
// built on top of stored assessment results.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID string) (*dto.RecommendationsResponse, error)
	RefreshRecommendations(ctx context.Context, userID string) (*dto.RecommendationsResponse, error)
	CompareStreams(ctx context.Context, userID string) (*dto.StreamComparisonResponse, error)
	GetCareerPaths(ctx context.Context, userID string, stream string) (*dto.CareerPathsResponse, error)
}

// recommendationService implements RecommendationService.
type recommendationService struct {
	userRepo    domain.UserRepository
	resultRepo  domain.ResultRepository
	resultCache ResultCacheService
	sfGroup     singleflight.Group
}

// NewRecommendationService creates a new instance of recommendationService.
func NewRecommendationService(
	userRepo domain.UserRepository,
	resultRepo domain.ResultRepository,
	resultCache ResultCacheService,
) RecommendationService {
	return &recommendationService{
		userRepo:    userRepo,
		resultRepo:  resultRepo,
		resultCache: resultCache,
	}
}

// GetRecommendations returns the user's cached recommendation projection
// plus insights from their latest assessment, if any.
func (s *recommendationService) GetRecommendations(ctx context.Context, userID string) (*dto.RecommendationsResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	response := &dto.RecommendationsResponse{
		InterestTags: user.InterestTags,
		Courses:      user.RecommendedCourses,
		CareerPaths:  user.CareerPaths,
		UpdatedAt:    user.RecommendationsUpdatedAt,
	}

	latest, err := s.latestResult(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		insights := latest.Insights
		response.LatestInsights = &insights
		response.AISummary = latest.AISummary
	}
	return response, nil
}

// RefreshRecommendations rebuilds the user's projection from their latest
// result. Concurrent refreshes for the same user collapse into one rebuild.
func (s *recommendationService) RefreshRecommendations(ctx context.Context, userID string) (*dto.RecommendationsResponse, error) {
	result, err, _ := s.sfGroup.Do("refresh:"+userID, func() (interface{}, error) {
		return s.refresh(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	response, ok := result.(*dto.RecommendationsResponse)
	if !ok {
		return nil, domain.NewInternalError(fmt.Sprintf("unexpected refresh result type %T", result), nil)
	}
	return response, nil
}

func (s *recommendationService) refresh(ctx context.Context, userID string) (*dto.RecommendationsResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	latest, err := s.latestResult(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, domain.NewNoAssessmentError()
	}

	projection := buildProjection(latest)
	if err := s.userRepo.UpdateRecommendations(ctx, userID, projection); err != nil {
		return nil, domain.NewInternalError("Failed to store refreshed recommendations", err)
	}

	logger.Get().Info("Refreshed user recommendations",
		zap.String("user_id", userID),
		zap.String("result_id", latest.ID))

	updatedAt := projection.UpdatedAt
	insights := latest.Insights
	return &dto.RecommendationsResponse{
		InterestTags:   projection.InterestTags,
		Courses:        projection.Courses,
		CareerPaths:    projection.CareerPaths,
		LatestInsights: &insights,
		AISummary:      latest.AISummary,
		UpdatedAt:      &updatedAt,
	}, nil
}

// CompareStreams lays the user's latest stream rankings side by side with
// static market data.
func (s *recommendationService) CompareStreams(ctx context.Context, userID string) (*dto.StreamComparisonResponse, error) {
	latest, err := s.latestResult(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, domain.NewNoAssessmentError()
	}

	comparison := make([]dto.StreamComparisonItem, 0, len(latest.StreamRecommendations))
	for _, stream := range latest.StreamRecommendations {
		strengths := make([]domain.TagContribution, 0, len(stream.TopContributingTags))
		challenges := make([]domain.TagContribution, 0, len(stream.TopContributingTags))
		for _, tag := range stream.TopContributingTags {
			if tag.Contribution > strengthContributionFloor {
				strengths = append(strengths, tag)
			}
			if tag.Contribution < challengeContributionCeil {
				challenges = append(challenges, tag)
			}
		}

		comparison = append(comparison, dto.StreamComparisonItem{
			Stream:             stream.Stream,
			Score:              stream.Score,
			Strengths:          strengths,
			Challenges:         challenges,
			RecommendedCourses: stream.RecommendedCourses,
			CareerProspects:    streamCareerProspects[stream.Stream],
			AverageSalaryRange: streamSalaryRanges[stream.Stream],
			JobMarketTrend:     streamJobMarketTrends[stream.Stream],
		})
	}

	userStrengths := make([]string, 0)
	for _, tag := range latest.TagScores {
		if tag.Score > strongTagScoreFloor {
			userStrengths = append(userStrengths, tag.Tag)
		}
	}

	response := &dto.StreamComparisonResponse{
		StreamComparison: comparison,
		UserStrengths:    userStrengths,
	}
	if len(comparison) > 0 {
		response.TopRecommendation = &comparison[0]
	}
	return response, nil
}

// GetCareerPaths returns the detailed education-to-career paths for one
// stream, scored against the user's interest tags.
func (s *recommendationService) GetCareerPaths(ctx context.Context, userID string, stream string) (*dto.CareerPathsResponse, error) {
	if !scoring.IsKnownStream(stream) {
		return nil, domain.NewInvalidStreamError(stream)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	templates := streamCareerPaths[stream]
	paths := make([]dto.CareerPathDetail, 0, len(templates))
	for _, tpl := range templates {
		paths = append(paths, dto.CareerPathDetail{
			Title:          tpl.Title,
			Description:    tpl.Description,
			RequiredSkills: tpl.RequiredSkills,
			EducationPath:  tpl.EducationPath,
			AverageSalary:  tpl.AverageSalary,
			JobRoles:       tpl.JobRoles,
			Compatibility:  pathCompatibility(tpl.RequiredTags, user.InterestTags),
		})
	}

	return &dto.CareerPathsResponse{
		Stream:      stream,
		CareerPaths: paths,
		TotalPaths:  len(paths),
	}, nil
}

// latestResult fetches the user's newest result, cache first. A missing
// result returns (nil, nil).
func (s *recommendationService) latestResult(ctx context.Context, userID string) (*domain.AssessmentResult, error) {
	if cached, err := s.resultCache.GetLatest(ctx, userID); err == nil {
		return cached, nil
	}

	latest, err := s.resultRepo.GetLatestResultByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load latest result", err)
	}
	if latest != nil {
		s.resultCache.PutLatest(ctx, latest)
	}
	return latest, nil
}

// pathCompatibility averages the user's scores on a path's required tags.
func pathCompatibility(requiredTags []string, userTags []domain.InterestTag) int {
	if len(userTags) == 0 {
		return 0
	}

	index := make(map[string]int, len(userTags))
	for _, tag := range userTags {
		index[tag.Tag] = tag.Score
	}

	total := 0
	matched := 0
	for _, required := range requiredTags {
		if score, ok := index[required]; ok {
			total += score
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(matched)))
}
