package services

import (
	"math"
	"testing"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

func adjFood(id string, calories, protein, carbs, fats, fiber float64) models.FoodItem {
	food := models.FoodItem{
		ID:   id,
		Name: id,
		PerServing: models.Nutrients{
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fats:     fats,
			Fiber:    fiber,
		},
	}
	applyServings(&food, 1)
	return food
}

func adjChicken() models.FoodItem { return adjFood("chicken", 165, 31, 0, 3.6, 0) }
func adjRice() models.FoodItem    { return adjFood("rice", 205, 4.3, 45, 0.4, 0.6) }
func adjOil() models.FoodItem     { return adjFood("oil", 119, 0, 0, 13.5, 0) }

func TestApplyServingsRecomputesFromBase(t *testing.T) {
	food := adjRice()
	base := food.PerServing

	applyServings(&food, 3)
	applyServings(&food, 0.5)
	applyServings(&food, 1)

	if food.Nutrients.Calories != base.Calories {
		t.Errorf("calories drifted: %v != %v", food.Nutrients.Calories, base.Calories)
	}
	if food.Nutrients.Protein != base.Protein {
		t.Errorf("protein drifted: %v != %v", food.Nutrients.Protein, base.Protein)
	}
	if food.Nutrients.Fiber != base.Fiber {
		t.Errorf("fiber drifted: %v != %v", food.Nutrients.Fiber, base.Fiber)
	}
}

func TestApplyServingsNetCarbs(t *testing.T) {
	food := adjFood("bran", 50, 3, 10, 1, 12)
	applyServings(&food, 2)
	if food.Nutrients.NetCarbs != 8 {
		t.Errorf("expected net carbs 8, got %v", food.Nutrients.NetCarbs)
	}

	// fiber above carbs clamps to zero instead of going negative
	food = adjFood("fiber-bomb", 30, 2, 3, 0, 9)
	if food.Nutrients.NetCarbs != 0 {
		t.Errorf("expected net carbs 0, got %v", food.Nutrients.NetCarbs)
	}
}

func TestProteinPriorityOrder(t *testing.T) {
	foods := []models.FoodItem{adjOil(), adjRice(), adjChicken()}
	order := proteinPriorityOrder(foods)
	if foods[order[0]].ID != "chicken" || foods[order[1]].ID != "rice" || foods[order[2]].ID != "oil" {
		t.Errorf("unexpected priority order: %s, %s, %s",
			foods[order[0]].ID, foods[order[1]].ID, foods[order[2]].ID)
	}
}

func TestRaiseProteinBumpsBestSource(t *testing.T) {
	foods := []models.FoodItem{adjChicken(), adjRice(), adjOil()}
	order := proteinPriorityOrder(foods)

	raiseProtein(foods, order, 15.5)
	if foods[0].Servings != 1.5 {
		t.Errorf("expected chicken at 1.5 servings, got %v", foods[0].Servings)
	}
	if foods[1].Servings != 1 || foods[2].Servings != 1 {
		t.Errorf("only the best source should move, got rice %v oil %v",
			foods[1].Servings, foods[2].Servings)
	}
}

func TestRaiseProteinCapsSingleBump(t *testing.T) {
	foods := []models.FoodItem{adjChicken()}
	raiseProtein(foods, proteinPriorityOrder(foods), 31)
	if foods[0].Servings != 1.75 {
		t.Errorf("expected bump capped at +0.75, got servings %v", foods[0].Servings)
	}
}

func TestRaiseProteinSpreadsSmallIncrements(t *testing.T) {
	egg := adjFood("egg", 70, 6, 0.4, 5, 0)
	foods := []models.FoodItem{adjChicken(), egg, adjRice()}
	order := proteinPriorityOrder(foods)

	// needed/per is under the single-bump threshold for every food, so the
	// fix spreads half a serving across the two significant protein sources
	raiseProtein(foods, order, 0.5)
	if foods[0].Servings != 1.5 {
		t.Errorf("expected chicken at 1.5, got %v", foods[0].Servings)
	}
	if foods[1].Servings != 1.5 {
		t.Errorf("expected egg at 1.5, got %v", foods[1].Servings)
	}
	if foods[2].Servings != 1 {
		t.Errorf("rice is not a protein source, got %v", foods[2].Servings)
	}
}

func TestRaiseCaloriesPrefersCarbLeaningFoods(t *testing.T) {
	foods := []models.FoodItem{adjChicken(), adjOil()}
	order := proteinPriorityOrder(foods)

	raiseCalories(foods, order, 100)
	if foods[0].Servings != 1 {
		t.Errorf("chicken should be untouched, got %v", foods[0].Servings)
	}
	if foods[1].Servings != 1.5 {
		t.Errorf("expected oil bumped to 1.5 (capped at +0.5), got %v", foods[1].Servings)
	}
}

func TestRaiseCaloriesFallsBackToProteinSources(t *testing.T) {
	foods := []models.FoodItem{adjChicken()}
	raiseCalories(foods, proteinPriorityOrder(foods), 100)
	if foods[0].Servings != 1.5 {
		t.Errorf("expected chicken bumped as last resort, got %v", foods[0].Servings)
	}
}

func TestLowerProteinRespectsServingFloor(t *testing.T) {
	foods := []models.FoodItem{adjChicken()}
	applyServings(&foods[0], 0.3)
	order := proteinPriorityOrder(foods)

	lowerProtein(foods, order, 31)
	if foods[0].Servings != minServings {
		t.Errorf("expected floor %v, got %v", minServings, foods[0].Servings)
	}

	// at the floor the food is skipped entirely
	lowerProtein(foods, order, 31)
	if foods[0].Servings != minServings {
		t.Errorf("food at floor must not shrink further, got %v", foods[0].Servings)
	}
}

func TestAdjustServingsProteinOutranksCalories(t *testing.T) {
	chicken := adjChicken()
	applyServings(&chicken, 0.75)
	foods := []models.FoodItem{chicken, adjOil()}

	// both metrics start below target; the protein source must move first
	// and the carb/fat side must never be raised to chase calories past it
	foods = AdjustServingsForTarget(foods, 350, 40, 0.25)

	_, protein := foodTotals(foods)
	if protein < 29.9 {
		t.Errorf("protein shortfall not fixed: %v", protein)
	}
	if foods[0].Servings <= 0.75 {
		t.Errorf("expected chicken raised, got %v", foods[0].Servings)
	}
	if foods[1].Servings > 1 {
		t.Errorf("oil should not be raised while protein is short, got %v", foods[1].Servings)
	}
	calories, _ := foodTotals(foods)
	if calories > 350*1.25+0.1 {
		t.Errorf("calories overshot the band: %v", calories)
	}
}

func TestAdjustServingsShrinksOvershoot(t *testing.T) {
	foods := []models.FoodItem{adjChicken(), adjRice(), adjOil()}

	foods = AdjustServingsForTarget(foods, 400, 30, 0.1)

	calories, protein := foodTotals(foods)
	if calories < 360 || calories > 440 {
		t.Errorf("calories outside band: %v", calories)
	}
	if protein < 27 || protein > 33.01 {
		t.Errorf("protein outside band: %v", protein)
	}
	for _, food := range foods {
		if food.Servings < minServings-1e-9 {
			t.Errorf("%s below serving floor: %v", food.ID, food.Servings)
		}
	}
}

func TestAdjustServingsHandlesDegeneratePools(t *testing.T) {
	if got := AdjustServingsForTarget(nil, 500, 40, 0.05); got != nil {
		t.Errorf("expected nil passthrough, got %v", got)
	}

	// an all-zero pool terminates with servings untouched
	foods := []models.FoodItem{adjFood("water", 0, 0, 0, 0, 0), adjFood("tea", 0, 0, 0, 0, 0)}
	foods = AdjustServingsForTarget(foods, 500, 40, 0.05)
	for _, food := range foods {
		if food.Servings != 1 {
			t.Errorf("%s moved despite zero nutrients: %v", food.ID, food.Servings)
		}
	}
}

func TestAdjustServingsImpossibleTargetIsBestEffort(t *testing.T) {
	foods := []models.FoodItem{adjChicken(), adjOil()}
	start, _ := foodTotals(foods)

	foods = AdjustServingsForTarget(foods, 10000, 1000, 0.05)

	calories, protein := foodTotals(foods)
	if calories <= start {
		t.Errorf("expected best-effort increase, calories still %v", calories)
	}
	if protein >= 1000*0.95 {
		t.Errorf("pool cannot actually reach the target, got %v", protein)
	}
	for _, food := range foods {
		if math.IsNaN(food.Servings) || math.IsInf(food.Servings, 0) || food.Servings < minServings {
			t.Errorf("%s has invalid servings %v", food.ID, food.Servings)
		}
	}
}

func TestCorrectionPassScalesDownJointOvershoot(t *testing.T) {
	chicken, rice := adjChicken(), adjRice()
	applyServings(&chicken, 3)
	applyServings(&rice, 3)
	foods := []models.FoodItem{chicken, rice}
	order := proteinPriorityOrder(foods)

	correctionPass(foods, order, 400, 600, 30, 60)

	calories, protein := foodTotals(foods)
	if calories > 600.01 {
		t.Errorf("calories still over after scale-down: %v", calories)
	}
	if protein > 60.01 {
		t.Errorf("protein still over after scale-down: %v", protein)
	}
	// proportional shrink keeps the meal's composition
	if math.Abs(foods[0].Servings-foods[1].Servings) > 1e-9 {
		t.Errorf("scale-down lost proportions: %v vs %v", foods[0].Servings, foods[1].Servings)
	}
}

func TestBoostBestProteinSourceLimit(t *testing.T) {
	foods := []models.FoodItem{adjChicken(), adjOil()}
	order := proteinPriorityOrder(foods)

	boostBestProteinSource(foods, order, 62, 1.25)
	if foods[0].Servings != 2.25 {
		t.Errorf("expected boost capped at +1.25, got %v", foods[0].Servings)
	}
	if foods[1].Servings != 1 {
		t.Errorf("oil carries no protein and should be skipped, got %v", foods[1].Servings)
	}
}
