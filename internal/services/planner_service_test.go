package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rezan-m/NutriPlanBack/internal/models"
)

type stubFoodRepo struct {
	foods []models.FoodItem
	err   error
}

func (s *stubFoodRepo) GetByIDs(ctx context.Context, ids []string) ([]models.FoodItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	byID := map[string]models.FoodItem{}
	for _, food := range s.foods {
		byID[food.ID] = food
	}
	var out []models.FoodItem
	for _, id := range ids {
		if food, ok := byID[id]; ok {
			out = append(out, food)
		}
	}
	return out, nil
}

func poolIDs(foods []models.FoodItem) []string {
	ids := make([]string, len(foods))
	for i, food := range foods {
		ids[i] = food.ID
	}
	return ids
}

func newPlannerForTest(foods []models.FoodItem, targets *models.DailyTargets) *PlannerService {
	return NewPlannerService(
		&stubFoodRepo{foods: foods},
		&stubTargetsRepo{stored: targets},
		rand.New(rand.NewSource(1)),
	)
}

func TestGeneratePlan(t *testing.T) {
	pool := planPool()
	svc := newPlannerForTest(pool, planTargets())

	plan, err := svc.GeneratePlan(context.Background(), 1, GeneratePlanInput{
		FoodIDs:         poolIDs(pool),
		MealCount:       3,
		IncludeFreeMeal: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Meals) != 4 {
		t.Errorf("expected 3 meals plus a free meal, got %d", len(plan.Meals))
	}
	if plan.TotalCalories <= 0 {
		t.Errorf("empty plan: %+v", plan)
	}
}

func TestGeneratePlanValidation(t *testing.T) {
	pool := planPool()
	svc := newPlannerForTest(pool, planTargets())
	ids := poolIDs(pool)

	cases := []struct {
		name   string
		userID int64
		input  GeneratePlanInput
	}{
		{"zero user", 0, GeneratePlanInput{FoodIDs: ids, MealCount: 3}},
		{"no foods", 1, GeneratePlanInput{MealCount: 3}},
		{"negative meal count", 1, GeneratePlanInput{FoodIDs: ids, MealCount: -1}},
		{"excessive meal count", 1, GeneratePlanInput{FoodIDs: ids, MealCount: maxPlanMealCount + 1}},
	}
	for _, tc := range cases {
		if _, err := svc.GeneratePlan(context.Background(), tc.userID, tc.input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestGeneratePlanRequiresComputedTargets(t *testing.T) {
	pool := planPool()

	// TDEE-only targets cannot drive a plan
	svc := newPlannerForTest(pool, &models.DailyTargets{UserID: 1, TDEE: 2200})
	_, err := svc.GeneratePlan(context.Background(), 1, GeneratePlanInput{FoodIDs: poolIDs(pool), MealCount: 3})
	if !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("expected ErrProfileIncomplete, got %v", err)
	}

	// no stored targets at all
	svc = NewPlannerService(&stubFoodRepo{foods: pool}, &stubTargetsRepo{}, rand.New(rand.NewSource(1)))
	_, err = svc.GeneratePlan(context.Background(), 1, GeneratePlanInput{FoodIDs: poolIDs(pool), MealCount: 3})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestGeneratePlanUnknownFoodIDs(t *testing.T) {
	svc := newPlannerForTest(planPool(), planTargets())
	_, err := svc.GeneratePlan(context.Background(), 1, GeneratePlanInput{
		FoodIDs:   []string{"no-such-food"},
		MealCount: 3,
	})
	if !errors.Is(err, ErrEmptyFoodPool) {
		t.Errorf("expected ErrEmptyFoodPool, got %v", err)
	}
}

func TestPlannerRegenerateMeal(t *testing.T) {
	pool := planPool()
	svc := newPlannerForTest(pool, planTargets())

	plan, err := svc.GeneratePlan(context.Background(), 1, GeneratePlanInput{FoodIDs: poolIDs(pool), MealCount: 3})
	if err != nil {
		t.Fatal(err)
	}

	regenerated, err := svc.RegenerateMeal(context.Background(), plan, "meal-1", poolIDs(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regenerated.Meals) != 3 {
		t.Errorf("meal count changed: %d", len(regenerated.Meals))
	}

	if _, err := svc.RegenerateMeal(context.Background(), nil, "meal-1", poolIDs(pool)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil plan, got %v", err)
	}
	if _, err := svc.RegenerateMeal(context.Background(), plan, "", poolIDs(pool)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty meal id, got %v", err)
	}
	if _, err := svc.RegenerateMeal(context.Background(), plan, "meal-1", []string{"no-such-food"}); !errors.Is(err, ErrEmptyFoodPool) {
		t.Errorf("expected ErrEmptyFoodPool, got %v", err)
	}
}
