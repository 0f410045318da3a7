package models

// Meal is an ordered list of foods plus derived totals. Targets are the
// per-meal share of the daily budget the assembler aimed for; they are kept
// on the meal so a single meal can be regenerated without the original
// DailyTargets at hand.
type Meal struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	IsFreeMeal     bool       `json:"is_free_meal"`
	Foods          []FoodItem `json:"foods"`
	TargetCalories float64    `json:"target_calories"`
	TargetProtein  float64    `json:"target_protein"`
	TotalCalories  float64    `json:"total_calories"`
	TotalProtein   float64    `json:"total_protein"`
	TotalCarbs     float64    `json:"total_carbs"`
	TotalFats      float64    `json:"total_fats"`
}

// MealPlan is one generated day. It is never persisted server-side; callers
// own its lifecycle and send it back whole when regenerating a meal.
type MealPlan struct {
	Meals         []Meal  `json:"meals"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFats     float64 `json:"total_fats"`
}
