package services

import (
	"fmt"
	"math/rand"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

const (
	defaultMealCount = 3

	// stop filling a meal once it holds this share of its calorie target;
	// the adjustment pass closes the remaining gap
	greedyFillShare = 0.8
)

var defaultMealNames = []string{"Breakfast", "Lunch", "Dinner"}

// BuildPlan assembles a day of meals from a caller-curated food pool. The
// pool is shuffled with the provided source (seedable for tests), split into
// contiguous slices of roughly equal size, and each slice is greedily filled
// and then rebalanced against its share of the daily targets. When
// includeFreeMeal is set an empty free meal is appended and the daily budget
// is split across the generated meals only.
func BuildPlan(foods []models.FoodItem, targets *models.DailyTargets, mealCount int, includeFreeMeal bool, rng *rand.Rand) *models.MealPlan {
	if mealCount <= 0 {
		mealCount = defaultMealCount
	}

	pool := shuffledPool(foods, rng)
	calShare := float64(targets.DailyCalories) / float64(mealCount)
	protShare := float64(targets.ProteinG) / float64(mealCount)

	plan := &models.MealPlan{Meals: make([]models.Meal, 0, mealCount+1)}
	for i := 0; i < mealCount; i++ {
		start := i * len(pool) / mealCount
		end := (i + 1) * len(pool) / mealCount
		meal := assembleMeal(mealID(i), mealName(i, mealCount), pool[start:end], calShare, protShare)
		plan.Meals = append(plan.Meals, meal)
	}
	if includeFreeMeal {
		plan.Meals = append(plan.Meals, models.Meal{
			ID:         mealID(mealCount),
			Name:       "Free meal",
			IsFreeMeal: true,
		})
	}

	recalcPlanTotals(plan)
	return plan
}

// RegenerateMeal rebuilds a single meal from a fresh shuffle of the pool,
// keeping its stored targets and leaving every other meal untouched. Free
// meals and unknown ids leave the plan as-is.
func RegenerateMeal(plan *models.MealPlan, mealID string, foods []models.FoodItem, rng *rand.Rand) *models.MealPlan {
	if plan == nil {
		return nil
	}
	for i := range plan.Meals {
		meal := &plan.Meals[i]
		if meal.ID != mealID || meal.IsFreeMeal {
			continue
		}
		pool := shuffledPool(foods, rng)
		slice := pool
		if generated := generatedMealCount(plan); generated > 1 && len(pool) > 0 {
			end := (len(pool) + generated - 1) / generated
			slice = pool[:end]
		}
		*meal = assembleMeal(meal.ID, meal.Name, slice, meal.TargetCalories, meal.TargetProtein)
		break
	}
	recalcPlanTotals(plan)
	return plan
}

func assembleMeal(id, name string, pool []models.FoodItem, targetCalories, targetProtein float64) models.Meal {
	meal := models.Meal{
		ID:             id,
		Name:           name,
		TargetCalories: targetCalories,
		TargetProtein:  targetProtein,
		Foods:          make([]models.FoodItem, 0, len(pool)),
	}

	accumulated := 0.0
	for _, food := range pool {
		if accumulated >= greedyFillShare*targetCalories {
			break
		}
		item := food
		applyServings(&item, initialServings(item, targetCalories, targetProtein))
		meal.Foods = append(meal.Foods, item)
		accumulated += item.Nutrients.Calories
	}

	meal.Foods = AdjustServingsForTarget(meal.Foods, targetCalories, targetProtein, defaultTolerance)
	recalcMealTotals(&meal)
	return meal
}

// initialServings picks a starting serving count: protein foods aim for a
// third of the meal's protein share, the rest aim for a third of its
// calories. The clamps keep single foods from dominating before adjustment.
func initialServings(food models.FoodItem, targetCalories, targetProtein float64) float64 {
	if food.PerServing.Protein > 0 {
		return clamp(targetProtein/3/food.PerServing.Protein, 0.5, 3)
	}
	if food.PerServing.Calories > 0 {
		return clamp(targetCalories/3/food.PerServing.Calories, 0.5, 2)
	}
	return 1
}

func shuffledPool(foods []models.FoodItem, rng *rand.Rand) []models.FoodItem {
	pool := make([]models.FoodItem, len(foods))
	copy(pool, foods)
	for i := range pool {
		if pool[i].Servings <= 0 {
			applyServings(&pool[i], 1)
		}
	}
	rng.Shuffle(len(pool), func(a, b int) {
		pool[a], pool[b] = pool[b], pool[a]
	})
	return pool
}

func recalcMealTotals(meal *models.Meal) {
	meal.TotalCalories = 0
	meal.TotalProtein = 0
	meal.TotalCarbs = 0
	meal.TotalFats = 0
	for i := range meal.Foods {
		meal.TotalCalories += meal.Foods[i].Nutrients.Calories
		meal.TotalProtein += meal.Foods[i].Nutrients.Protein
		meal.TotalCarbs += meal.Foods[i].Nutrients.Carbs
		meal.TotalFats += meal.Foods[i].Nutrients.Fats
	}
}

func recalcPlanTotals(plan *models.MealPlan) {
	plan.TotalCalories = 0
	plan.TotalProtein = 0
	plan.TotalCarbs = 0
	plan.TotalFats = 0
	for i := range plan.Meals {
		plan.TotalCalories += plan.Meals[i].TotalCalories
		plan.TotalProtein += plan.Meals[i].TotalProtein
		plan.TotalCarbs += plan.Meals[i].TotalCarbs
		plan.TotalFats += plan.Meals[i].TotalFats
	}
}

func generatedMealCount(plan *models.MealPlan) int {
	count := 0
	for i := range plan.Meals {
		if !plan.Meals[i].IsFreeMeal {
			count++
		}
	}
	return count
}

func mealID(index int) string {
	return fmt.Sprintf("meal-%d", index+1)
}

func mealName(index, mealCount int) string {
	if mealCount <= len(defaultMealNames) && index < len(defaultMealNames) {
		return defaultMealNames[index]
	}
	return fmt.Sprintf("Meal %d", index+1)
}
