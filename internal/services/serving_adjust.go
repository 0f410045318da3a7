package services

import (
	"math"
	"sort"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

const (
	defaultTolerance    = 0.05
	maxAdjustIterations = 10
	minServings         = 0.25

	// a food with more than this much protein per serving counts as a
	// protein source for spreads and calorie fallbacks
	significantProteinG = 5
)

// applyServings sets a food's serving count and rescales every nutrient from
// its per-serving base. Scaling always restarts from the base so repeated
// adjustments cannot accumulate drift.
func applyServings(food *models.FoodItem, servings float64) {
	food.Servings = servings
	base := food.PerServing
	food.Nutrients = models.Nutrients{
		Calories:     base.Calories * servings,
		Protein:      base.Protein * servings,
		Carbs:        base.Carbs * servings,
		Fats:         base.Fats * servings,
		Fiber:        base.Fiber * servings,
		Sugars:       base.Sugars * servings,
		SaturatedFat: base.SaturatedFat * servings,
		TransFat:     base.TransFat * servings,
		Cholesterol:  base.Cholesterol * servings,
		Sodium:       base.Sodium * servings,
		Calcium:      base.Calcium * servings,
		Iron:         base.Iron * servings,
		Potassium:    base.Potassium * servings,
		Zinc:         base.Zinc * servings,
		VitaminA:     base.VitaminA * servings,
		VitaminC:     base.VitaminC * servings,
		VitaminD:     base.VitaminD * servings,
	}
	food.Nutrients.NetCarbs = math.Max(0, food.Nutrients.Carbs-food.Nutrients.Fiber)
}

func foodTotals(foods []models.FoodItem) (calories, protein float64) {
	for i := range foods {
		calories += foods[i].Nutrients.Calories
		protein += foods[i].Nutrients.Protein
	}
	return calories, protein
}

// proteinPriorityOrder returns food indexes sorted by protein density,
// best sources first. Protein fixes walk the order forward; calorie fixes
// walk it backward so carb/fat-leaning foods are touched first.
func proteinPriorityOrder(foods []models.FoodItem) []int {
	order := make([]int, len(foods))
	for i := range order {
		order[i] = i
	}
	ratio := func(i int) float64 {
		per := foods[i].PerServing
		if per.Calories > 0 {
			return per.Protein / per.Calories
		}
		return per.Protein
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ratio(order[a]) > ratio(order[b])
	})
	return order
}

// AdjustServingsForTarget nudges serving sizes until the foods' combined
// calories and protein both land inside the tolerance band around their
// targets, or the iteration budget runs out. One food changes per iteration;
// protein shortfalls always outrank calorie shortfalls. The result is
// best-effort: pathological pools can finish outside tolerance and that is
// accepted, never an error.
func AdjustServingsForTarget(foods []models.FoodItem, targetCalories, targetProtein, tolerance float64) []models.FoodItem {
	if len(foods) == 0 {
		return foods
	}
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	minCal := targetCalories * (1 - tolerance)
	maxCal := targetCalories * (1 + tolerance)
	minProt := targetProtein * (1 - tolerance)
	maxProt := targetProtein * (1 + tolerance)

	order := proteinPriorityOrder(foods)

	for iter := 0; iter < maxAdjustIterations; iter++ {
		calories, protein := foodTotals(foods)
		if calories >= minCal && calories <= maxCal && protein >= minProt && protein <= maxProt {
			break
		}
		switch {
		case protein < minProt:
			raiseProtein(foods, order, minProt-protein)
		case calories < minCal:
			raiseCalories(foods, order, minCal-calories)
		case protein > maxProt:
			lowerProtein(foods, order, protein-maxProt)
		default:
			lowerCalories(foods, order, calories-maxCal)
		}
	}

	correctionPass(foods, order, minCal, maxCal, minProt, maxProt)

	// last resort: protein satisfaction outranks calorie precision
	if _, protein := foodTotals(foods); protein < minProt {
		boostBestProteinSource(foods, order, minProt-protein, 1.25)
	}

	return foods
}

// raiseProtein bumps the single best protein source. When no single food is
// worth bumping, a smaller increment is spread across up to two significant
// protein sources instead.
func raiseProtein(foods []models.FoodItem, order []int, needed float64) {
	for _, idx := range order {
		per := foods[idx].PerServing.Protein
		if per <= 0 {
			continue
		}
		additional := needed / per
		if additional > 0.1 {
			applyServings(&foods[idx], foods[idx].Servings+math.Min(additional, 0.75))
			return
		}
	}

	spread := 0
	for _, idx := range order {
		if spread >= 2 {
			return
		}
		per := foods[idx].PerServing.Protein
		if per <= significantProteinG {
			continue
		}
		increment := math.Max(0.5, math.Min(0.75, needed/per))
		applyServings(&foods[idx], foods[idx].Servings+increment)
		spread++
	}
}

// raiseCalories prefers carb/fat-leaning foods so a calorie fix does not
// blow past the protein ceiling, falling back to protein sources when the
// meal has nothing else.
func raiseCalories(foods []models.FoodItem, order []int, needed float64) {
	for i := len(order) - 1; i >= 0; i-- {
		food := &foods[order[i]]
		if food.PerServing.Calories <= 0 || food.PerServing.Protein > significantProteinG {
			continue
		}
		if bumpCalories(food, needed) {
			return
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		food := &foods[order[i]]
		if food.PerServing.Calories <= 0 {
			continue
		}
		if bumpCalories(food, needed) {
			return
		}
	}
}

func bumpCalories(food *models.FoodItem, needed float64) bool {
	additional := needed / food.PerServing.Calories
	if additional <= 0.1 {
		return false
	}
	applyServings(food, food.Servings+math.Min(additional, 0.5))
	return true
}

func lowerProtein(foods []models.FoodItem, order []int, excess float64) {
	for i := len(order) - 1; i >= 0; i-- {
		food := &foods[order[i]]
		per := food.PerServing.Protein
		if per <= 0 || food.Servings <= minServings {
			continue
		}
		reduction := math.Min(excess/per, 0.25)
		applyServings(food, math.Max(minServings, food.Servings-reduction))
		return
	}
}

func lowerCalories(foods []models.FoodItem, order []int, excess float64) {
	for i := len(order) - 1; i >= 0; i-- {
		food := &foods[order[i]]
		per := food.PerServing.Calories
		if per <= 0 || food.Servings <= minServings {
			continue
		}
		reduction := math.Min(excess/per, 0.25)
		applyServings(food, math.Max(minServings, food.Servings-reduction))
		return
	}
}

// correctionPass runs once after the iteration budget: a final protein
// boost, a proportional scale-up when calories are still short, and a
// proportional scale-down when both metrics overshot together.
func correctionPass(foods []models.FoodItem, order []int, minCal, maxCal, minProt, maxProt float64) {
	if _, protein := foodTotals(foods); protein < minProt {
		boostBestProteinSource(foods, order, minProt-protein, 1.0)
	}

	calories, protein := foodTotals(foods)
	if calories > 0 && calories < minCal {
		ratio := minCal / calories
		if protein < minProt {
			for i := range foods {
				if foods[i].PerServing.Protein <= significantProteinG {
					continue
				}
				scaled := math.Min(foods[i].Servings*ratio, foods[i].Servings+1.0)
				applyServings(&foods[i], scaled)
			}
		} else {
			for i := range foods {
				scaled := math.Min(foods[i].Servings*ratio, foods[i].Servings+0.5)
				applyServings(&foods[i], scaled)
			}
		}
	}

	calories, protein = foodTotals(foods)
	if calories > maxCal && protein > maxProt {
		ratio := math.Min(maxCal/calories, maxProt/protein)
		for i := range foods {
			applyServings(&foods[i], math.Max(minServings, foods[i].Servings*ratio))
		}
	}
}

func boostBestProteinSource(foods []models.FoodItem, order []int, needed, limit float64) {
	for _, idx := range order {
		per := foods[idx].PerServing.Protein
		if per <= 0 {
			continue
		}
		additional := math.Min(needed/per, limit)
		if additional <= 0 {
			return
		}
		applyServings(&foods[idx], foods[idx].Servings+additional)
		return
	}
}
