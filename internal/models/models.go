// ABOUTME: Core record types for workouts, session logs, gyms, and profile.
// ABOUTME: All records are keyed by an application-generated string ID.
package models

// WorkoutType distinguishes gym templates from BJJ session templates.
type WorkoutType string

const (
	WorkoutGym WorkoutType = "gym"
	WorkoutBJJ WorkoutType = "bjj"
)

// Exercise is one planned movement inside a workout template.
// Reps is free-form ("8-12", "Falha") and is never parsed by the store.
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// Workout is a reusable workout template.
type Workout struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            WorkoutType `json:"type"`
	Exercises       []Exercise  `json:"exercises,omitempty"`
	Fields          []string    `json:"fields,omitempty"` // free-text fields for BJJ templates
	NextSessionTips string      `json:"nextSessionTips,omitempty"`
}

// NewWorkout creates a workout template with a generated ID.
func NewWorkout(name string, workoutType WorkoutType) *Workout {
	return &Workout{
		ID:   NewID(),
		Name: name,
		Type: workoutType,
	}
}

// SetEntry is one performed set. Weight and reps arrive as user-typed
// strings; consumers parse them defensively and default to zero.
type SetEntry struct {
	Weight string `json:"weight"`
	Reps   string `json:"reps"`
}

// ExerciseLog holds what was performed for a single exercise in a session.
type ExerciseLog struct {
	Sets      []SetEntry `json:"sets,omitempty"`
	Note      string     `json:"note,omitempty"`
	Intensity string     `json:"intensity,omitempty"`
}

// Log records one completed training session.
type Log struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date"` // ISO-8601
	WorkoutID   string                 `json:"workoutId"`
	WorkoutName string                 `json:"workoutName"`
	Duration    string                 `json:"duration"` // mm:ss
	Data        map[string]ExerciseLog `json:"data,omitempty"`
}

// Gym is a simple lookup entry for where a session happened.
type Gym struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Goal is the user's training goal.
type Goal string

const (
	GoalHypertrophy Goal = "hypertrophy"
	GoalStrength    Goal = "strength"
	GoalEndurance   Goal = "endurance"
	GoalWeightLoss  Goal = "weight_loss"
)

// ProfileID is the fixed key of the singleton profile record.
const ProfileID = "user"

// Profile is the per-device user profile. Exactly one record exists, keyed
// by ProfileID; readers must tolerate a fresh install where it is absent.
type Profile struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Goal          Goal    `json:"goal"`
	Level         string  `json:"level,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
	IsPro         bool    `json:"isPro,omitempty"`
}

// DefaultProfile returns the profile synthesized on first access.
func DefaultProfile() *Profile {
	return &Profile{ID: ProfileID, Name: "Atleta", Goal: GoalHypertrophy}
}

// DailyStats tracks per-day counters. Keyed by calendar date, not by a
// generated ID.
type DailyStats struct {
	Date  string `json:"date"` // YYYY-MM-DD, natural key
	Water int    `json:"water"`
}

// WeightEntry is one point in the append-only body weight series.
type WeightEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// Photo is a progress photo. Image holds a data-URI encoded payload and can
// be large; photos never leave the device.
type Photo struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Image string `json:"image"`
}
