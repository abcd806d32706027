package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/repository/models"
	"career-compass/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	row := fromDomainUser(user)
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt

	query := `INSERT INTO users (id, email, password_hash, google_id, first_name, last_name, age, gender, class, state, city, interest_tags, recommended_courses, career_paths, created_at, updated_at)
	          VALUES (:ID, :EMAIL, :PASSWORD_HASH, :GOOGLE_ID, :FIRST_NAME, :LAST_NAME, :AGE, :GENDER, :CLASS, :STATE, :CITY, :INTEREST_TAGS, :RECOMMENDED_COURSES, :CAREER_PATHS, :CREATED_AT, :UPDATED_AT)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUserBy(ctx, "id = :arg", userID)
}

func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserBy(ctx, "email = :arg", email)
}

func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getUserBy(ctx, "google_id = :arg", googleID)
}

func (r *sqlxUserRepository) getUserBy(ctx context.Context, condition string, arg string) (*domain.User, error) {
	var row models.User
	query := `SELECT * FROM users WHERE ` + condition + ` AND deleted_at IS NULL`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare user lookup: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &row, map[string]interface{}{"arg": arg})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&row), nil
}

func (r *sqlxUserRepository) UpdateProfile(ctx context.Context, userID string, profile domain.Profile) error {
	query := `UPDATE users SET
	            first_name = :first_name,
	            last_name = :last_name,
	            age = :age,
	            gender = :gender,
	            class = :class,
	            state = :state,
	            city = :city,
	            updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`

	args := map[string]interface{}{
		"first_name": util.StringToNullString(profile.FirstName),
		"last_name":  util.StringToNullString(profile.LastName),
		"age":        intToNullInt64(profile.Age),
		"gender":     util.StringToNullString(profile.Gender),
		"class":      util.StringToNullString(profile.Class),
		"state":      util.StringToNullString(profile.State),
		"city":       util.StringToNullString(profile.City),
		"updated_at": time.Now(),
		"id":         userID,
	}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxUserRepository) UpdateRecommendations(ctx context.Context, userID string, projection domain.RecommendationProjection) error {
	query := `UPDATE users SET
	            interest_tags = :interest_tags,
	            recommended_courses = :recommended_courses,
	            career_paths = :career_paths,
	            recommendations_updated_at = :recommendations_updated_at,
	            updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`

	args := map[string]interface{}{
		"interest_tags":              models.InterestTagSlice(projection.InterestTags),
		"recommended_courses":        models.CourseRecommendationSlice(projection.Courses),
		"career_paths":               models.CareerPathSlice(projection.CareerPaths),
		"recommendations_updated_at": util.TimeToNullTime(projection.UpdatedAt),
		"updated_at":                 time.Now(),
		"id":                         userID,
	}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update recommendations: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func intToNullInt64(v int) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(v), Valid: true}
}

// --- Converters ---

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash.String,
		GoogleID:     m.GoogleID.String,
		Profile: domain.Profile{
			FirstName: m.FirstName.String,
			LastName:  m.LastName.String,
			Age:       int(m.Age.Int64),
			Gender:    m.Gender.String,
			Class:     m.Class.String,
			State:     m.State.String,
			City:      m.City.String,
		},
		InterestTags:             m.InterestTags,
		RecommendedCourses:       m.RecommendedCourses,
		CareerPaths:              m.CareerPaths,
		RecommendationsUpdatedAt: util.NullTimeToTimePtr(m.RecommendationsUpdatedAt),
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
		DeletedAt:                util.NullTimeToTimePtr(m.DeletedAt),
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:                       u.ID,
		Email:                    u.Email,
		PasswordHash:             util.StringToNullString(u.PasswordHash),
		GoogleID:                 util.StringToNullString(u.GoogleID),
		FirstName:                util.StringToNullString(u.Profile.FirstName),
		LastName:                 util.StringToNullString(u.Profile.LastName),
		Age:                      intToNullInt64(u.Profile.Age),
		Gender:                   util.StringToNullString(u.Profile.Gender),
		Class:                    util.StringToNullString(u.Profile.Class),
		State:                    util.StringToNullString(u.Profile.State),
		City:                     util.StringToNullString(u.Profile.City),
		InterestTags:             models.InterestTagSlice(u.InterestTags),
		RecommendedCourses:       models.CourseRecommendationSlice(u.RecommendedCourses),
		CareerPaths:              models.CareerPathSlice(u.CareerPaths),
		RecommendationsUpdatedAt: util.TimePtrToNullTime(u.RecommendationsUpdatedAt),
		CreatedAt:                u.CreatedAt,
		UpdatedAt:                u.UpdatedAt,
		DeletedAt:                util.TimePtrToNullTime(u.DeletedAt),
	}
}
