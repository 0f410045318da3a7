package handlers

import (
	"time"

	"github.com/rezan-m/NutriPlanBack/internal/models"
)

var validActivityLevels = map[string]struct{}{
	"sedentary": {},
	"light":     {},
	"moderate":  {},
	"active":    {},
	"extreme":   {},
}

var validPaces = map[string]struct{}{
	models.PaceConservative: {},
	models.PaceModerate:     {},
	models.PaceAggressive:   {},
}

func validateProfileRequest(req upsertProfileRequest) string {
	if req.Age != nil && (*req.Age <= 0 || *req.Age > 130) {
		return "age must be between 1 and 130"
	}
	if req.Gender != nil && *req.Gender != models.GenderMale && *req.Gender != models.GenderFemale {
		return "gender must be male or female"
	}
	if req.Weight != nil && *req.Weight <= 0 {
		return "weight must be positive"
	}
	if req.HeightCM != nil && *req.HeightCM <= 0 {
		return "height_cm must be positive"
	}
	if req.HeightFeet != nil && *req.HeightFeet < 0 {
		return "height_feet must not be negative"
	}
	if req.HeightInches != nil && (*req.HeightInches < 0 || *req.HeightInches >= 12) {
		return "height_inches must be in [0, 12)"
	}
	if req.BodyFatPct != nil && (*req.BodyFatPct < 0 || *req.BodyFatPct > 100) {
		return "body_fat_percentage must be between 0 and 100"
	}
	if req.ActivityLevel != nil {
		if _, ok := validActivityLevels[*req.ActivityLevel]; !ok {
			return "activity_level must be one of sedentary, light, moderate, active, extreme"
		}
	}
	return ""
}

func validateGoalRequest(req upsertGoalRequest, now time.Time) string {
	if req.GoalType != models.GoalTypeWeight && req.GoalType != models.GoalTypeBodyFat {
		return "goal_type must be weight or bodyFat"
	}
	if req.GoalValue <= 0 {
		return "goal_value must be positive"
	}
	if req.GoalType == models.GoalTypeBodyFat && req.GoalValue >= 100 {
		return "goal_value must be below 100 for a body fat goal"
	}
	if req.GoalDate.IsZero() || !req.GoalDate.After(now) {
		return "goal_date must be in the future"
	}
	if req.GoalPace != "" {
		if _, ok := validPaces[req.GoalPace]; !ok {
			return "goal_pace must be conservative, moderate, or aggressive"
		}
	}
	return ""
}
