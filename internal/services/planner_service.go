package services

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

var ErrEmptyFoodPool = errors.New("food pool is empty")

const maxPlanMealCount = 8

type foodReader interface {
	GetByIDs(ctx context.Context, ids []string) ([]models.FoodItem, error)
}

// PlannerService turns a curated food pool plus the stored daily targets
// into a meal plan. The random source is injected so regeneration variety
// stays testable.
type PlannerService struct {
	foodRepo foodReader
	targets  targetsStore
	rng      *rand.Rand
}

func NewPlannerService(foodRepo foodReader, targets targetsStore, rng *rand.Rand) *PlannerService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlannerService{foodRepo: foodRepo, targets: targets, rng: rng}
}

type GeneratePlanInput struct {
	FoodIDs         []string
	MealCount       int
	IncludeFreeMeal bool
}

func (s *PlannerService) GeneratePlan(ctx context.Context, userID int64, input GeneratePlanInput) (*models.MealPlan, error) {
	if userID <= 0 || len(input.FoodIDs) == 0 {
		return nil, ErrInvalidInput
	}
	if input.MealCount < 0 || input.MealCount > maxPlanMealCount {
		return nil, ErrInvalidInput
	}

	targets, err := s.targets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !targets.HasMacros {
		return nil, ErrProfileIncomplete
	}

	foods, err := s.foodRepo.GetByIDs(ctx, input.FoodIDs)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, ErrEmptyFoodPool
	}

	return BuildPlan(foods, targets, input.MealCount, input.IncludeFreeMeal, s.rng), nil
}

func (s *PlannerService) RegenerateMeal(ctx context.Context, plan *models.MealPlan, mealID string, foodIDs []string) (*models.MealPlan, error) {
	if plan == nil || mealID == "" || len(foodIDs) == 0 {
		return nil, ErrInvalidInput
	}

	foods, err := s.foodRepo.GetByIDs(ctx, foodIDs)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, ErrEmptyFoodPool
	}

	return RegenerateMeal(plan, mealID, foods, s.rng), nil
}
