package repository

import (
	"context"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

type TargetsRepository struct {
	db DBTX
}

func NewTargetsRepository(db DBTX) *TargetsRepository {
	return &TargetsRepository{db: db}
}

func (r *TargetsRepository) GetByUserID(ctx context.Context, userID int64) (*models.DailyTargets, error) {
	query := `
		SELECT user_id, tdee, daily_calories, is_weight_gain, high_surplus_warning,
			   has_macros, protein_g, carbs_g, fats_g, updated_at
		FROM daily_targets
		WHERE user_id = $1
	`
	var targets models.DailyTargets
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&targets.UserID,
		&targets.TDEE,
		&targets.DailyCalories,
		&targets.IsWeightGain,
		&targets.HighSurplusWarning,
		&targets.HasMacros,
		&targets.ProteinG,
		&targets.CarbsG,
		&targets.FatsG,
		&targets.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &targets, nil
}

func (r *TargetsRepository) Upsert(ctx context.Context, targets *models.DailyTargets) error {
	query := `
		INSERT INTO daily_targets (user_id, tdee, daily_calories, is_weight_gain,
			high_surplus_warning, has_macros, protein_g, carbs_g, fats_g)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE
		SET tdee = $2,
			daily_calories = $3,
			is_weight_gain = $4,
			high_surplus_warning = $5,
			has_macros = $6,
			protein_g = $7,
			carbs_g = $8,
			fats_g = $9,
			updated_at = NOW()
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query,
		targets.UserID,
		targets.TDEE,
		targets.DailyCalories,
		targets.IsWeightGain,
		targets.HighSurplusWarning,
		targets.HasMacros,
		targets.ProteinG,
		targets.CarbsG,
		targets.FatsG,
	).Scan(&targets.UpdatedAt)
}
