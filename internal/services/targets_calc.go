package services

import (
	"math"
	"time"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"extreme":   1.9,
}

const (
	defaultActivityMultiplier = 1.2
	lossCalorieFloor          = 1200
	caloriesPerKG             = 7700
	caloriesPerLB             = 3500
	lbPerKG                   = 2.20462
	cmPerInch                 = 2.54
)

// minimum absolute daily surplus (kcal) for weight gain, by pace
var minSurplusByPace = map[string]float64{
	models.PaceAggressive:   500,
	models.PaceModerate:     300,
	models.PaceConservative: 150,
}

const defaultMinSurplus = 200

// ComputeDailyTargets derives TDEE, a daily calorie budget, and a macro split
// from a profile and its goal. Returns nil when the profile is missing age,
// weight, height, or activity level; callers gate on completeness and treat a
// nil result as "nothing to store". Without a goal only TDEE is populated.
func ComputeDailyTargets(profile *models.UserProfile, goal *models.Goal, now time.Time) *models.DailyTargets {
	if profile == nil || profile.Age == nil || profile.Weight == nil ||
		profile.ActivityLevel == nil || !hasHeight(profile) {
		return nil
	}

	weightKG := weightInKG(profile)
	heightCM := heightInCM(profile)

	var bmr float64
	if profile.BodyFatPct != nil {
		// Katch-McArdle when body composition is known
		lean := weightKG * (1 - *profile.BodyFatPct/100)
		bmr = 370 + 21.6*lean
	} else {
		// Mifflin-St Jeor
		bmr = 10*weightKG + 6.25*heightCM - 5*float64(*profile.Age) + 5
		if genderOf(profile) == models.GenderFemale {
			bmr -= 161
		}
	}

	multiplier, ok := activityMultipliers[*profile.ActivityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	tdee := int(math.Round(bmr * multiplier))

	targets := &models.DailyTargets{UserID: profile.UserID, TDEE: tdee}
	if goal == nil || goal.GoalType == "" || goal.GoalValue <= 0 || goal.GoalDate.IsZero() {
		return targets
	}

	currentWeight := *profile.Weight
	targetWeight := goalTargetWeight(profile, goal, currentWeight)
	isGain := targetWeight > currentWeight
	targets.IsWeightGain = isGain

	daysUntilGoal := math.Floor(goal.GoalDate.Sub(now).Hours() / 24)
	if daysUntilGoal < 1 {
		daysUntilGoal = 1
	}
	weightDiff := math.Abs(targetWeight - currentWeight)
	caloriesPerUnit := float64(caloriesPerLB)
	if profile.UseMetric {
		caloriesPerUnit = caloriesPerKG
	}
	dailyAdjustment := weightDiff * caloriesPerUnit / daysUntilGoal

	pace := goal.GoalPace
	minPct, maxPct := adjustmentBounds(profile, isGain, pace)

	var pct float64
	if isGain {
		minSurplus, ok := minSurplusByPace[pace]
		if !ok {
			minSurplus = defaultMinSurplus
		}
		pct = dailyAdjustment / float64(tdee)
		if float64(tdee)*pct < minSurplus {
			pct = minSurplus / float64(tdee)
		}
		if weightDiff < 0.5 {
			// near-maintenance goal: keep a token surplus instead of the
			// full pace minimum
			pct = math.Min(minSurplus, float64(tdee)*0.05) / float64(tdee)
		}
	} else {
		pct = dailyAdjustment / float64(tdee)
	}
	pct = clamp(pct, minPct, maxPct)

	var dailyCalories int
	if isGain {
		dailyCalories = int(math.Round(float64(tdee) * (1 + pct)))
	} else {
		dailyCalories = int(math.Round(float64(tdee) * (1 - pct)))
		if dailyCalories < lossCalorieFloor {
			dailyCalories = lossCalorieFloor
		}
	}

	bodyFat := macroBodyFat(profile)
	lean := weightKG * (1 - bodyFat/100)
	proteinG := int(math.Round(lean * proteinPerKGLean(genderOf(profile), bodyFat, isGain)))

	fatShare := 0.25
	if isGain {
		fatShare = 0.30
	}
	fatsG := int(math.Round(float64(dailyCalories) * fatShare / 9))

	// Carbs absorb the remainder, rounded up so the macro identity
	// dailyCalories == 4p + 4c + 9f holds exactly without dropping the
	// budget below the loss floor or the gain minimum surplus.
	carbCalories := dailyCalories - proteinG*4 - fatsG*9
	carbsG := 0
	if carbCalories > 0 {
		carbsG = (carbCalories + 3) / 4
	}
	dailyCalories = proteinG*4 + carbsG*4 + fatsG*9

	targets.DailyCalories = dailyCalories
	targets.HasMacros = true
	targets.ProteinG = proteinG
	targets.CarbsG = carbsG
	targets.FatsG = fatsG
	targets.HighSurplusWarning = isGain && targets.SurplusPercent() >= 21

	return targets
}

// goalTargetWeight resolves the goal into a target weight in the profile's
// display unit. A body-fat goal keeps lean mass constant and solves for the
// weight that produces the goal percentage.
func goalTargetWeight(profile *models.UserProfile, goal *models.Goal, currentWeight float64) float64 {
	if goal.GoalType != models.GoalTypeBodyFat {
		return goal.GoalValue
	}
	currentBF := boundsDefaultBodyFat
	if profile.BodyFatPct != nil {
		currentBF = *profile.BodyFatPct
	}
	if goal.GoalValue >= 100 {
		return currentWeight
	}
	lean := currentWeight * (1 - currentBF/100)
	return lean / (1 - goal.GoalValue/100)
}

const boundsDefaultBodyFat = 20.0

// adjustmentBounds returns the allowed surplus/deficit window as fractions of
// TDEE. Loss bounds default body fat to 20 when unknown and shift with pace;
// gain bounds use the gender macro default and a pace-dependent ceiling.
func adjustmentBounds(profile *models.UserProfile, isGain bool, pace string) (float64, float64) {
	gender := genderOf(profile)

	if !isGain {
		bodyFat := boundsDefaultBodyFat
		if profile.BodyFatPct != nil {
			bodyFat = *profile.BodyFatPct
		}
		minPct, maxPct := 0.10, 0.25
		switch {
		case (gender == models.GenderMale && bodyFat > 25) ||
			(gender == models.GenderFemale && bodyFat > 32):
			maxPct = 0.30
		case (gender == models.GenderMale && bodyFat < 12) ||
			(gender == models.GenderFemale && bodyFat < 18):
			maxPct = 0.20
		}
		switch pace {
		case models.PaceAggressive:
			minPct += 0.05
			maxPct += 0.05
		case models.PaceConservative:
			minPct -= 0.05
			maxPct -= 0.05
		}
		return minPct, maxPct
	}

	bodyFat := macroBodyFat(profile)
	minPct := 0.05
	var maxPct float64
	switch pace {
	case models.PaceAggressive:
		maxPct = 0.35
	case models.PaceConservative:
		maxPct = 0.15
	default:
		maxPct = 0.25
	}
	switch {
	case (gender == models.GenderMale && bodyFat > 20) ||
		(gender == models.GenderFemale && bodyFat > 28):
		maxPct = math.Min(maxPct, 0.20)
	case (gender == models.GenderMale && bodyFat < 10) ||
		(gender == models.GenderFemale && bodyFat < 18):
		maxPct = math.Min(maxPct+0.05, 0.35)
	}
	return minPct, maxPct
}

// proteinPerKGLean is the grams-of-protein-per-kg-lean-mass lookup, tiered by
// gender and body fat, with separate tables for bulking and cutting.
func proteinPerKGLean(gender string, bodyFat float64, isGain bool) float64 {
	if isGain {
		if gender == models.GenderFemale {
			switch {
			case bodyFat > 28:
				return 1.8
			case bodyFat > 20:
				return 2.0
			default:
				return 2.2
			}
		}
		switch {
		case bodyFat > 20:
			return 1.8
		case bodyFat > 12:
			return 2.0
		default:
			return 2.2
		}
	}
	if gender == models.GenderFemale {
		switch {
		case bodyFat > 32:
			return 1.8
		case bodyFat > 23:
			return 2.2
		default:
			return 2.4
		}
	}
	switch {
	case bodyFat > 25:
		return 1.8
	case bodyFat > 15:
		return 2.2
	default:
		return 2.4
	}
}

// macroBodyFat is the body fat used for lean-mass math: the measured value
// when present, otherwise 15 for men and 25 for women.
func macroBodyFat(profile *models.UserProfile) float64 {
	if profile.BodyFatPct != nil {
		return *profile.BodyFatPct
	}
	if genderOf(profile) == models.GenderFemale {
		return 25
	}
	return 15
}

func genderOf(profile *models.UserProfile) string {
	if profile.Gender != nil && *profile.Gender == models.GenderFemale {
		return models.GenderFemale
	}
	return models.GenderMale
}

func hasHeight(profile *models.UserProfile) bool {
	if profile.UseMetric {
		return profile.HeightCM != nil
	}
	return profile.HeightCM != nil || profile.HeightFeet != nil
}

func heightInCM(profile *models.UserProfile) float64 {
	if profile.HeightCM != nil {
		return *profile.HeightCM
	}
	inches := float64(intValue(profile.HeightFeet)) * 12
	if profile.HeightInches != nil {
		inches += *profile.HeightInches
	}
	return inches * cmPerInch
}

func weightInKG(profile *models.UserProfile) float64 {
	if profile.UseMetric {
		return *profile.Weight
	}
	return *profile.Weight / lbPerKG
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func intValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
