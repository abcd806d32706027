package service

import (
	"context"
	"testing"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/domain"
	"career-compass/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "0123456789abcdef0123456789abcdef",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
		GoogleOAuth: config.GoogleOAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost:8080/api/auth/google/callback",
		},
	}
}

func newAuthServiceForTest(t *testing.T, userRepo domain.UserRepository) AuthService {
	t.Helper()
	svc, err := NewAuthService(userRepo, authTestConfig())
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_ShortSecretRejected(t *testing.T) {
	cfg := authTestConfig()
	cfg.JWT.SecretKey = "too-short"

	_, err := NewAuthService(new(MockUserRepository), cfg)

	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash != "" && u.PasswordHash != "password123"
	})).Return(nil)

	svc := newAuthServiceForTest(t, userRepo)

	user, tokens, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "Asha",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Asha", user.FirstName)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	userRepo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

	svc := newAuthServiceForTest(t, userRepo)

	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "taken@example.com", Password: "password123"})

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeEmailTaken, domainErr.Code)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newAuthServiceForTest(t, new(MockUserRepository))

	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "short"})

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := newAuthServiceForTest(t, userRepo)

	user, tokens, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := newAuthServiceForTest(t, userRepo)

	_, _, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: "wrong"})

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidCredentials, domainErr.Code)
}

func TestLogin_GoogleOnlyAccount(t *testing.T) {
	// Accounts created through OAuth have no password hash; a password
	// login against them must not succeed or reveal the account exists.
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "oauth@example.com").Return(&domain.User{
		ID:       "u2",
		Email:    "oauth@example.com",
		GoogleID: "google-123",
	}, nil)

	svc := newAuthServiceForTest(t, userRepo)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "oauth@example.com", Password: "anything"})

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidCredentials, domainErr.Code)
}

func TestGetGoogleLoginURL(t *testing.T) {
	svc := newAuthServiceForTest(t, new(MockUserRepository))

	url := svc.GetGoogleLoginURL("state-token")

	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "state=state-token")
	assert.Contains(t, url, "client-id")
}

func TestHandleGoogleCallback_StateMismatch(t *testing.T) {
	svc := newAuthServiceForTest(t, new(MockUserRepository))

	_, _, err := svc.HandleGoogleCallback(context.Background(), "code", "bad-state", "expected-state")

	assert.ErrorIs(t, err, ErrInvalidAuthState)
}

func TestValidateJWT_RoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := newAuthServiceForTest(t, userRepo)

	_, tokens, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: "password123"})
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(context.Background(), tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "access", claims.TokenType)

	refreshClaims, err := svc.ValidateJWT(context.Background(), tokens.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestValidateJWT_Garbage(t *testing.T) {
	svc := newAuthServiceForTest(t, new(MockUserRepository))

	_, err := svc.ValidateJWT(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestRefreshToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)
	userRepo.On("GetUserByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "user@example.com"}, nil)

	svc := newAuthServiceForTest(t, userRepo)

	_, tokens, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: "password123"})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := newAuthServiceForTest(t, userRepo)

	_, tokens, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), tokens.AccessToken)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUnauthorized, domainErr.Code)
}
