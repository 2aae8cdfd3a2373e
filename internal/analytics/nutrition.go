// ABOUTME: Energy expenditure and macro target calculations from the profile.
// ABOUTME: Mifflin-St Jeor BMR, activity-scaled TDEE, goal-adjusted macros.
package analytics

import "github.com/bmonteiro/ferro/internal/models"

var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"athlete":   1.9,
}

// MacroTargets are the daily calorie and macro goals derived from the
// profile. Fields are grams except Calories.
type MacroTargets struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// TDEE estimates total daily energy expenditure. Missing profile fields
// fall back to sensible defaults so a fresh install still gets targets.
func TDEE(p *models.Profile) int {
	weight := p.Weight
	if weight == 0 {
		weight = 75
	}
	height := p.Height
	if height == 0 {
		height = 175
	}
	age := float64(p.Age)
	if age == 0 {
		age = 25
	}

	// Mifflin-St Jeor
	bmr := 10*weight + 6.25*height - 5*age
	if p.Gender == "female" {
		bmr -= 161
	} else {
		bmr += 5
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers["moderate"]
	}
	return int(bmr*mult + 0.5)
}

// Targets computes daily macro targets: calorie surplus or deficit by goal,
// protein and fat in g/kg, carbs from the calories that remain.
func Targets(p *models.Profile) MacroTargets {
	weight := p.Weight
	if weight == 0 {
		weight = 75
	}

	calories := TDEE(p)
	proteinPerKg := 2.0
	fatPerKg := 0.8

	switch p.Goal {
	case models.GoalHypertrophy, models.GoalStrength:
		calories += 300
		proteinPerKg = 2.2
	case models.GoalWeightLoss:
		calories -= 400
		proteinPerKg = 2.4
		fatPerKg = 0.6
	}

	protein := int(weight*proteinPerKg + 0.5)
	fat := int(weight*fatPerKg + 0.5)

	carbCals := calories - protein*4 - fat*9
	if carbCals < 0 {
		carbCals = 0
	}

	return MacroTargets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbCals / 4,
		Fat:      fat,
	}
}

// DayTotals sums normalized meals into consumed totals for a day.
func DayTotals(meals []models.MealEntry) MacroTargets {
	var t MacroTargets
	for _, m := range meals {
		t.Calories += int(m.Calories + 0.5)
		t.Protein += int(m.Macros.Protein + 0.5)
		t.Carbs += int(m.Macros.Carbs + 0.5)
		t.Fat += int(m.Macros.Fat + 0.5)
	}
	return t
}
