package models

import "time"

// UserProfile holds the onboarding data the target calculator works from.
// Weight is stored in the user's display unit (kg when UseMetric, lb
// otherwise); height is either HeightCM or HeightFeet/HeightInches.
type UserProfile struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Age           *int      `json:"age"`
	Gender        *string   `json:"gender"`
	Weight        *float64  `json:"weight"`
	HeightCM      *float64  `json:"height_cm"`
	HeightFeet    *int      `json:"height_feet"`
	HeightInches  *float64  `json:"height_inches"`
	BodyFatPct    *float64  `json:"body_fat_percentage"`
	ActivityLevel *string   `json:"activity_level"`
	UseMetric     bool      `json:"use_metric"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	GoalTypeWeight  = "weight"
	GoalTypeBodyFat = "bodyFat"
)

const (
	PaceConservative = "conservative"
	PaceModerate     = "moderate"
	PaceAggressive   = "aggressive"
)

// Goal is the user's single active target: a goal weight or a goal body-fat
// percentage, to be reached by GoalDate at the chosen pace.
type Goal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	GoalType  string    `json:"goal_type"`
	GoalValue float64   `json:"goal_value"`
	GoalDate  time.Time `json:"goal_date"`
	GoalPace  string    `json:"goal_pace"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
