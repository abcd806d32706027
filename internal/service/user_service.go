package service

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/domain"
	"career-compass/internal/dto"
)

// UserService defines the interface for user profile operations.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.ProfileRequest) (*dto.UserProfileResponse, error)
}

type userServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}
	return profileResponse(user), nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.ProfileRequest) (*dto.UserProfileResponse, error) {
	if req.Age < 0 || req.Age > 120 {
		return nil, domain.NewValidationError("age is out of range")
	}

	profile := domain.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Gender:    req.Gender,
		Class:     req.Class,
		State:     req.State,
		City:      req.City,
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewUserNotFoundError(userID)
		}
		return nil, domain.NewInternalError("Failed to update profile", err)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to reload user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}
	return profileResponse(user), nil
}

func profileResponse(user *domain.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.Profile.FirstName,
		LastName:  user.Profile.LastName,
		Age:       user.Profile.Age,
		Gender:    user.Profile.Gender,
		Class:     user.Profile.Class,
		State:     user.Profile.State,
		City:      user.Profile.City,
	}
}
