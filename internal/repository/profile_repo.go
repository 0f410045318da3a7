package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rezan-m/NutriPlanBack/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type UpsertProfileInput struct {
	Age           *int
	Gender        *string
	Weight        *float64
	HeightCM      *float64
	HeightFeet    *int
	HeightInches  *float64
	BodyFatPct    *float64
	ActivityLevel *string
	UseMetric     bool
}

func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, input UpsertProfileInput) (*models.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (user_id, age, gender, weight, height_cm, height_feet, height_inches,
			body_fat_percentage, activity_level, use_metric)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE
		SET age = COALESCE($2, user_profiles.age),
			gender = COALESCE($3, user_profiles.gender),
			weight = COALESCE($4, user_profiles.weight),
			height_cm = COALESCE($5, user_profiles.height_cm),
			height_feet = COALESCE($6, user_profiles.height_feet),
			height_inches = COALESCE($7, user_profiles.height_inches),
			body_fat_percentage = COALESCE($8, user_profiles.body_fat_percentage),
			activity_level = COALESCE($9, user_profiles.activity_level),
			use_metric = $10,
			updated_at = NOW()
		RETURNING id, user_id, age, gender, weight, height_cm, height_feet, height_inches,
				  body_fat_percentage, activity_level, use_metric, created_at, updated_at
	`
	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query,
		userID,
		input.Age,
		input.Gender,
		input.Weight,
		input.HeightCM,
		input.HeightFeet,
		input.HeightInches,
		input.BodyFatPct,
		input.ActivityLevel,
		input.UseMetric,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Age,
		&profile.Gender,
		&profile.Weight,
		&profile.HeightCM,
		&profile.HeightFeet,
		&profile.HeightInches,
		&profile.BodyFatPct,
		&profile.ActivityLevel,
		&profile.UseMetric,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, age, gender, weight, height_cm, height_feet, height_inches,
			   body_fat_percentage, activity_level, use_metric, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`
	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Age,
		&profile.Gender,
		&profile.Weight,
		&profile.HeightCM,
		&profile.HeightFeet,
		&profile.HeightInches,
		&profile.BodyFatPct,
		&profile.ActivityLevel,
		&profile.UseMetric,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
