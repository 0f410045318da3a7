package models

import (
	"testing"
	"time"
)

func TestDailyTargetsEqualIgnoresUpdatedAt(t *testing.T) {
	a := &DailyTargets{UserID: 1, TDEE: 2556, DailyCalories: 2987, IsWeightGain: true,
		HasMacros: true, ProteinG: 119, CarbsG: 405, FatsG: 99, UpdatedAt: time.Now()}
	b := &DailyTargets{UserID: 1, TDEE: 2556, DailyCalories: 2987, IsWeightGain: true,
		HasMacros: true, ProteinG: 119, CarbsG: 405, FatsG: 99, UpdatedAt: time.Now().Add(time.Hour)}

	if !a.Equal(b) {
		t.Error("targets differing only in UpdatedAt must be equal")
	}

	b.CarbsG = 416
	if a.Equal(b) {
		t.Error("differing macros must not be equal")
	}

	var nilTargets *DailyTargets
	if a.Equal(nilTargets) || nilTargets.Equal(a) {
		t.Error("nil never equals a concrete value")
	}
	if !nilTargets.Equal(nil) {
		t.Error("nil equals nil")
	}
}

func TestSurplusPercent(t *testing.T) {
	cases := []struct {
		name    string
		targets DailyTargets
		want    int
	}{
		{"gain", DailyTargets{TDEE: 2556, DailyCalories: 2987, IsWeightGain: true}, 16},
		{"rounds down", DailyTargets{TDEE: 2000, DailyCalories: 2419, IsWeightGain: true}, 20},
		{"deficit", DailyTargets{TDEE: 2000, DailyCalories: 1600, IsWeightGain: false}, 0},
		{"no goal", DailyTargets{TDEE: 2000}, 0},
		{"zero tdee", DailyTargets{DailyCalories: 100, IsWeightGain: true}, 0},
	}
	for _, tc := range cases {
		if got := tc.targets.SurplusPercent(); got != tc.want {
			t.Errorf("%s: expected %d%%, got %d%%", tc.name, tc.want, got)
		}
	}
}
