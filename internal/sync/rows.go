// ABOUTME: Wire row shapes for the cloud tables and their local mappings.
// ABOUTME: Cloud columns are snake_case; local records are the models types.
package sync

import (
	"time"

	"github.com/bmonteiro/ferro/internal/models"
)

// Cloud table names, one per synced collection.
const (
	tableProfiles      = "profiles"
	tableWorkouts      = "workouts"
	tableLogs          = "workout_logs"
	tableWeightHistory = "weight_history"
	tableNutrition     = "nutrition_logs"
)

type profileRow struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	Goal          string  `json:"goal,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Age           int     `json:"age,omitempty"`
	ActivityLevel string  `json:"activity_level,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	IsPro         bool    `json:"is_pro,omitempty"`
}

func (r profileRow) toLocal() *models.Profile {
	return &models.Profile{
		ID:            models.ProfileID,
		Name:          r.FullName,
		Goal:          models.Goal(r.Goal),
		Height:        r.Height,
		Weight:        r.Weight,
		Age:           r.Age,
		ActivityLevel: r.ActivityLevel,
		Gender:        r.Gender,
		IsPro:         r.IsPro,
	}
}

// profilePushRow deliberately has no is_pro column: the subscription flag
// is owned by the backend and must not be overwritten from a device.
type profilePushRow struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	Goal          string  `json:"goal"`
	Height        float64 `json:"height,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Age           int     `json:"age,omitempty"`
	ActivityLevel string  `json:"activity_level,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	UpdatedAt     string  `json:"updated_at"`
}

func profileToRow(userID string, p *models.Profile) profilePushRow {
	goal := string(p.Goal)
	if goal == "" {
		goal = string(models.GoalHypertrophy)
	}
	return profilePushRow{
		ID:            userID,
		FullName:      p.Name,
		Goal:          goal,
		Height:        p.Height,
		Weight:        p.Weight,
		Age:           p.Age,
		ActivityLevel: p.ActivityLevel,
		Gender:        p.Gender,
		UpdatedAt:     nowRFC3339(),
	}
}

// workoutRow stores the full template JSON in a data column, so the cloud
// schema never lags behind the template shape.
type workoutRow struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Name      string         `json:"name"`
	Data      models.Workout `json:"data"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}

type logRow struct {
	ID          string                        `json:"id"`
	UserID      string                        `json:"user_id"`
	Date        string                        `json:"date"`
	WorkoutID   string                        `json:"workout_id"`
	WorkoutName string                        `json:"workout_name"`
	Duration    string                        `json:"duration"`
	LogData     map[string]models.ExerciseLog `json:"log_data"`
	CreatedAt   string                        `json:"created_at,omitempty"`
}

func (r logRow) toLocal() *models.Log {
	return &models.Log{
		ID:          r.ID,
		Date:        r.Date,
		WorkoutID:   r.WorkoutID,
		WorkoutName: r.WorkoutName,
		Duration:    r.Duration,
		Data:        r.LogData,
	}
}

type weightRow struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type nutritionRow struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Date      string            `json:"date"`
	MealName  string            `json:"meal_name"`
	Calories  float64           `json:"calories"`
	Macros    *models.Macros    `json:"macros,omitempty"`
	Items     []models.FoodItem `json:"items"`
	CreatedAt string            `json:"created_at,omitempty"`
}

func (r nutritionRow) toLocal() *models.NutritionLog {
	return &models.NutritionLog{
		ID:       r.ID,
		Date:     r.Date,
		Meal:     r.MealName,
		Calories: r.Calories,
		Macros:   r.Macros,
		Items:    r.Items,
	}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
