package models

// Nutrients is one serving's worth of tracked nutrition. The same struct is
// reused for scaled totals, where every field is the per-serving value
// multiplied by the current serving count.
type Nutrients struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	Fiber        float64 `json:"fiber"`
	Sugars       float64 `json:"sugars"`
	SaturatedFat float64 `json:"saturated_fat"`
	TransFat     float64 `json:"trans_fat"`
	Cholesterol  float64 `json:"cholesterol"`
	Sodium       float64 `json:"sodium"`
	Calcium      float64 `json:"calcium"`
	Iron         float64 `json:"iron"`
	Potassium    float64 `json:"potassium"`
	Zinc         float64 `json:"zinc"`
	VitaminA     float64 `json:"vitamin_a"`
	VitaminC     float64 `json:"vitamin_c"`
	VitaminD     float64 `json:"vitamin_d"`
	NetCarbs     float64 `json:"net_carbs"`
}

// FoodItem is one entry of a meal: a catalog food plus a serving multiplier.
// PerServing is the immutable base; Nutrients carries the scaled values and
// is always recomputed from PerServing, never incrementally.
type FoodItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Servings   float64   `json:"servings"`
	PerServing Nutrients `json:"per_serving"`
	Nutrients  Nutrients `json:"nutrients"`
}
