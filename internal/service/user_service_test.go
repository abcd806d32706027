package service

import (
	"context"
	"database/sql"
	"testing"

	"career-compass/internal/domain"
	"career-compass/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByID", mock.Anything, "u1").Return(&domain.User{
		ID:    "u1",
		Email: "user@example.com",
		Profile: domain.Profile{
			FirstName: "Asha",
			LastName:  "Patel",
			Age:       16,
			Class:     "11th",
			State:     "Gujarat",
			City:      "Ahmedabad",
		},
	}, nil)

	svc := NewUserService(userRepo)

	resp, err := svc.GetProfile(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", resp.Email)
	assert.Equal(t, "Asha", resp.FirstName)
	assert.Equal(t, 16, resp.Age)
	assert.Equal(t, "Ahmedabad", resp.City)
}

func TestGetProfile_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByID", mock.Anything, "missing").Return(nil, nil)

	svc := NewUserService(userRepo)

	_, err := svc.GetProfile(context.Background(), "missing")

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUserNotFound, domainErr.Code)
}

func TestUpdateProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("UpdateProfile", mock.Anything, "u1", domain.Profile{
		FirstName: "Asha",
		Age:       17,
		Class:     "12th",
	}).Return(nil)
	userRepo.On("GetUserByID", mock.Anything, "u1").Return(&domain.User{
		ID:    "u1",
		Email: "user@example.com",
		Profile: domain.Profile{
			FirstName: "Asha",
			Age:       17,
			Class:     "12th",
		},
	}, nil)

	svc := NewUserService(userRepo)

	resp, err := svc.UpdateProfile(context.Background(), "u1", &dto.ProfileRequest{
		FirstName: "Asha",
		Age:       17,
		Class:     "12th",
	})

	assert.NoError(t, err)
	assert.Equal(t, 17, resp.Age)
	assert.Equal(t, "12th", resp.Class)
	userRepo.AssertExpectations(t)
}

func TestUpdateProfile_AgeOutOfRange(t *testing.T) {
	svc := NewUserService(new(MockUserRepository))

	_, err := svc.UpdateProfile(context.Background(), "u1", &dto.ProfileRequest{Age: 130})

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
}

func TestUpdateProfile_UserMissing(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("UpdateProfile", mock.Anything, "missing", mock.Anything).Return(sql.ErrNoRows)

	svc := NewUserService(userRepo)

	_, err := svc.UpdateProfile(context.Background(), "missing", &dto.ProfileRequest{FirstName: "X"})

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUserNotFound, domainErr.Code)
}
