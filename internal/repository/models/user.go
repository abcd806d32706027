package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table. The recommendation projection
// columns are JSON documents in CLOBs, refreshed after each assessment.
type User struct {
	ID           string         `db:"ID"` // ULID
	Email        string         `db:"EMAIL"`
	PasswordHash sql.NullString `db:"PASSWORD_HASH"`
	GoogleID     sql.NullString `db:"GOOGLE_ID"`

	FirstName sql.NullString `db:"FIRST_NAME"`
	LastName  sql.NullString `db:"LAST_NAME"`
	Age       sql.NullInt64  `db:"AGE"`
	Gender    sql.NullString `db:"GENDER"`
	Class     sql.NullString `db:"CLASS"`
	State     sql.NullString `db:"STATE"`
	City      sql.NullString `db:"CITY"`

	InterestTags             InterestTagSlice          `db:"INTEREST_TAGS"`
	RecommendedCourses       CourseRecommendationSlice `db:"RECOMMENDED_COURSES"`
	CareerPaths              CareerPathSlice           `db:"CAREER_PATHS"`
	RecommendationsUpdatedAt sql.NullTime              `db:"RECOMMENDATIONS_UPDATED_AT"`

	CreatedAt time.Time    `db:"CREATED_AT"`
	UpdatedAt time.Time    `db:"UPDATED_AT"`
	DeletedAt sql.NullTime `db:"DELETED_AT"`
}
