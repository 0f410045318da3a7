package repository

import (
	"context"
	"time"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

type GoalRepository struct {
	db DBTX
}

func NewGoalRepository(db DBTX) *GoalRepository {
	return &GoalRepository{db: db}
}

type UpsertGoalInput struct {
	GoalType  string
	GoalValue float64
	GoalDate  time.Time
	GoalPace  string
}

func (r *GoalRepository) Upsert(ctx context.Context, userID int64, input UpsertGoalInput) (*models.Goal, error) {
	query := `
		INSERT INTO goals (user_id, goal_type, goal_value, goal_date, goal_pace)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET goal_type = $2,
			goal_value = $3,
			goal_date = $4,
			goal_pace = $5,
			updated_at = NOW()
		RETURNING id, user_id, goal_type, goal_value, goal_date, goal_pace, created_at, updated_at
	`
	var goal models.Goal
	err := r.db.QueryRow(ctx, query, userID, input.GoalType, input.GoalValue, input.GoalDate, input.GoalPace).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.GoalType,
		&goal.GoalValue,
		&goal.GoalDate,
		&goal.GoalPace,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) GetByUserID(ctx context.Context, userID int64) (*models.Goal, error) {
	query := `
		SELECT id, user_id, goal_type, goal_value, goal_date, goal_pace, created_at, updated_at
		FROM goals
		WHERE user_id = $1
	`
	var goal models.Goal
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.GoalType,
		&goal.GoalValue,
		&goal.GoalDate,
		&goal.GoalPace,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM goals WHERE user_id = $1`, userID)
	return err
}
