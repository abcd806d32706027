package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-compass/internal/cache"
	"career-compass/internal/domain"
	"career-compass/internal/logger"

	"go.uber.org/zap"
)

// ResultCacheService caches scored assessment results so repeated reads of
// a result skip the database. Failures are logged and swallowed; the cache
// is never load-bearing.
type ResultCacheService interface {
	GetResult(ctx context.Context, resultID string) (*domain.AssessmentResult, error)
	PutResult(ctx context.Context, result *domain.AssessmentResult)
	GetLatest(ctx context.Context, userID string) (*domain.AssessmentResult, error)
	PutLatest(ctx context.Context, result *domain.AssessmentResult)
	InvalidateResult(ctx context.Context, resultID string)
}

type resultCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultCacheService creates a new ResultCacheService.
func NewResultCacheService(cacheClient domain.Cache, ttl time.Duration) ResultCacheService {
	return &resultCacheService{cache: cacheClient, ttl: ttl}
}

func resultCacheKey(resultID string) string {
	return cache.GenerateCacheKey("assessment", "result", resultID)
}

func latestResultCacheKey(userID string) string {
	return cache.GenerateCacheKey("assessment", "latest", userID)
}

func (s *resultCacheService) GetResult(ctx context.Context, resultID string) (*domain.AssessmentResult, error) {
	return s.get(ctx, resultCacheKey(resultID))
}

func (s *resultCacheService) PutResult(ctx context.Context, result *domain.AssessmentResult) {
	s.put(ctx, resultCacheKey(result.ID), result)
}

func (s *resultCacheService) GetLatest(ctx context.Context, userID string) (*domain.AssessmentResult, error) {
	return s.get(ctx, latestResultCacheKey(userID))
}

func (s *resultCacheService) PutLatest(ctx context.Context, result *domain.AssessmentResult) {
	s.put(ctx, latestResultCacheKey(result.UserID), result)
}

func (s *resultCacheService) InvalidateResult(ctx context.Context, resultID string) {
	if err := s.cache.Delete(ctx, resultCacheKey(resultID)); err != nil {
		logger.Get().Warn("Failed to invalidate cached result", zap.String("result_id", resultID), zap.Error(err))
	}
}

func (s *resultCacheService) get(ctx context.Context, key string) (*domain.AssessmentResult, error) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrCacheMiss
		}
		logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return nil, domain.ErrCacheMiss
	}

	var result domain.AssessmentResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Get().Warn("Failed to unmarshal cached result, dropping entry", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return nil, domain.ErrCacheMiss
	}
	return &result, nil
}

func (s *resultCacheService) put(ctx context.Context, key string, result *domain.AssessmentResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		logger.Get().Warn("Failed to marshal result for caching", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
		logger.Get().Warn("Failed to cache result", zap.String("key", key), zap.Error(err))
	}
}
