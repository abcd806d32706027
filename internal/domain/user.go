package domain

import (
	"context"
	"time"
)

// InterestTag is the denormalized per-tag score cached on the user profile
// after each assessment.
type InterestTag struct {
	Tag         string    `json:"tag"`
	Score       int       `json:"score"`
	LastUpdated time.Time `json:"last_updated"`
}

// CourseRecommendation is a denormalized course suggestion cached on the
// user profile (top streams projection).
type CourseRecommendation struct {
	Course      string   `json:"course"`
	Stream      string   `json:"stream"`
	Confidence  int      `json:"confidence"`
	Reasons     []string `json:"reasons"`
	AISuggested bool     `json:"ai_suggested"`
}

// CareerPathRecommendation is a denormalized career suggestion cached on the
// user profile (top careers projection).
type CareerPathRecommendation struct {
	Career        string   `json:"career"`
	Industry      string   `json:"industry"`
	Compatibility int      `json:"compatibility"`
	EducationPath []string `json:"education_path"`
	Analysis      string   `json:"analysis"`
}

// Profile holds the personalization fields a user can edit.
type Profile struct {
	FirstName string
	LastName  string
	Age       int
	Gender    string
	Class     string
	State     string
	City      string
}

// User represents a platform user. GoogleID is set for OAuth accounts,
// PasswordHash for local accounts; either may be empty but not both.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	GoogleID     string
	Profile      Profile

	InterestTags             []InterestTag
	RecommendedCourses       []CourseRecommendation
	CareerPaths              []CareerPathRecommendation
	RecommendationsUpdatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewUser creates a new User instance
func NewUser(email string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	if u.PasswordHash == "" && u.GoogleID == "" {
		return NewValidationError("either a password or a google account is required")
	}
	return nil
}

// RecommendationProjection is the denormalized slice of a user's latest
// assessment handed to the profile store after each submission.
type RecommendationProjection struct {
	InterestTags []InterestTag
	Courses      []CourseRecommendation
	CareerPaths  []CareerPathRecommendation
	UpdatedAt    time.Time
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, profile Profile) error
	UpdateRecommendations(ctx context.Context, userID string, projection RecommendationProjection) error
}
