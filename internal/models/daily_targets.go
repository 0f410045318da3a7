package models

import "time"

// DailyTargets is the calculator's output: energy expenditure, a daily
// calorie budget, and the macro split that budget is built from. When the
// user has no goal yet only TDEE is populated and HasMacros is false.
//
// Invariant: when HasMacros, DailyCalories == 4*ProteinG + 4*CarbsG + 9*FatsG.
type DailyTargets struct {
	UserID             int64     `json:"user_id"`
	TDEE               int       `json:"tdee"`
	DailyCalories      int       `json:"daily_calories"`
	IsWeightGain       bool      `json:"is_weight_gain"`
	HighSurplusWarning bool      `json:"high_surplus_warning"`
	HasMacros          bool      `json:"has_macros"`
	ProteinG           int       `json:"protein_g"`
	CarbsG             int       `json:"carbs_g"`
	FatsG              int       `json:"fats_g"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Equal reports whether two target sets carry the same computed values.
// UpdatedAt is ignored; it is storage metadata, not a computed field.
func (t *DailyTargets) Equal(other *DailyTargets) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.TDEE == other.TDEE &&
		t.DailyCalories == other.DailyCalories &&
		t.IsWeightGain == other.IsWeightGain &&
		t.HighSurplusWarning == other.HighSurplusWarning &&
		t.HasMacros == other.HasMacros &&
		t.ProteinG == other.ProteinG &&
		t.CarbsG == other.CarbsG &&
		t.FatsG == other.FatsG
}

// SurplusPercent is the whole-percent surplus of the calorie target over
// TDEE. Zero for deficits and goal-less targets.
func (t *DailyTargets) SurplusPercent() int {
	if t == nil || !t.IsWeightGain || t.TDEE <= 0 || t.DailyCalories <= t.TDEE {
		return 0
	}
	return (t.DailyCalories - t.TDEE) * 100 / t.TDEE
}
