// ABOUTME: Tests for TDEE and macro target calculations.
package analytics

import (
	"testing"

	"github.com/bmonteiro/ferro/internal/models"
)

func TestTDEE(t *testing.T) {
	p := &models.Profile{
		Weight: 80, Height: 180, Age: 30,
		Gender: "male", ActivityLevel: "moderate",
	}

	// BMR 1780, x1.55
	if got := TDEE(p); got != 2759 {
		t.Errorf("TDEE = %d, want 2759", got)
	}
}

func TestTDEEDefaults(t *testing.T) {
	// A fresh profile with no body data still gets a usable estimate.
	got := TDEE(&models.Profile{})
	if got < 2000 || got > 3500 {
		t.Errorf("TDEE with defaults = %d, out of plausible range", got)
	}
}

func TestTDEEFemaleLower(t *testing.T) {
	base := models.Profile{Weight: 70, Height: 170, Age: 28, ActivityLevel: "moderate"}

	male := base
	male.Gender = "male"
	female := base
	female.Gender = "female"

	if TDEE(&female) >= TDEE(&male) {
		t.Error("Female BMR constant should yield a lower TDEE")
	}
}

func TestTDEEUnknownActivityFallsBack(t *testing.T) {
	p := &models.Profile{Weight: 80, Height: 180, Age: 30, ActivityLevel: "couch"}
	q := &models.Profile{Weight: 80, Height: 180, Age: 30, ActivityLevel: "moderate"}

	if TDEE(p) != TDEE(q) {
		t.Error("Unknown activity level should fall back to moderate")
	}
}

func TestTargetsHypertrophy(t *testing.T) {
	p := &models.Profile{
		Weight: 80, Height: 180, Age: 30,
		Gender: "male", ActivityLevel: "moderate",
		Goal: models.GoalHypertrophy,
	}

	targets := Targets(p)

	if targets.Calories != 3059 { // TDEE + 300 surplus
		t.Errorf("Calories = %d, want 3059", targets.Calories)
	}
	if targets.Protein != 176 { // 2.2 g/kg
		t.Errorf("Protein = %d, want 176", targets.Protein)
	}
	if targets.Fat != 64 { // 0.8 g/kg
		t.Errorf("Fat = %d, want 64", targets.Fat)
	}
	if targets.Carbs != 444 { // remaining calories / 4
		t.Errorf("Carbs = %d, want 444", targets.Carbs)
	}
}

func TestTargetsWeightLoss(t *testing.T) {
	p := &models.Profile{
		Weight: 80, Height: 180, Age: 30,
		Gender: "male", ActivityLevel: "moderate",
		Goal: models.GoalWeightLoss,
	}

	targets := Targets(p)

	if targets.Calories != 2359 { // TDEE - 400 deficit
		t.Errorf("Calories = %d, want 2359", targets.Calories)
	}
	if targets.Protein != 192 { // 2.4 g/kg
		t.Errorf("Protein = %d, want 192", targets.Protein)
	}
	if targets.Fat != 48 { // 0.6 g/kg
		t.Errorf("Fat = %d, want 48", targets.Fat)
	}
}

func TestDayTotals(t *testing.T) {
	meals := []models.MealEntry{
		{Calories: 600.4, Macros: models.Macros{Protein: 40.2, Carbs: 70, Fat: 15}},
		{Calories: 450, Macros: models.Macros{Protein: 25, Carbs: 10.6, Fat: 30}},
	}

	totals := DayTotals(meals)

	if totals.Calories != 1050 {
		t.Errorf("Calories = %d, want 1050", totals.Calories)
	}
	if totals.Protein != 65 {
		t.Errorf("Protein = %d, want 65", totals.Protein)
	}
	if totals.Carbs != 81 {
		t.Errorf("Carbs = %d, want 81", totals.Carbs)
	}
	if totals.Fat != 45 {
		t.Errorf("Fat = %d, want 45", totals.Fat)
	}
}

func TestDayTotalsEmpty(t *testing.T) {
	totals := DayTotals(nil)
	if totals != (MacroTargets{}) {
		t.Errorf("Expected zero totals, got %+v", totals)
	}
}
