// ABOUTME: MCP tool implementations over the training store.
// ABOUTME: Session logging, meals, water, weight, and progress stats.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bmonteiro/ferro/internal/analytics"
	"github.com/bmonteiro/ferro/internal/models"
)

func (s *Server) registerTools() {
	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workout templates with their planned exercises",
	}, s.handleListWorkouts)

	// log_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Record a completed training session with sets per exercise",
	}, s.handleLogSession)

	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Record a meal with calories and macros",
	}, s.handleLogMeal)

	// add_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_water",
		Description: "Add water intake in ml to today's counter",
	}, s.handleAddWater)

	// log_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Append a body weight entry in kg",
	}, s.handleLogWeight)

	// nutrition_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "nutrition_today",
		Description: "Get today's meals, water, and consumed macros against targets",
	}, s.handleNutritionToday)

	// progress_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "progress_stats",
		Description: "Get streak, XP level, and weekly muscle volume",
	}, s.handleProgressStats)
}

// Tool input/output types

type listWorkoutsInput struct {
	Type string `json:"type,omitempty" jsonschema:"Filter by template type (gym or bjj)"`
}

type logSessionInput struct {
	WorkoutID string               `json:"workout_id" jsonschema:"Template ID the session followed"`
	Date      string               `json:"date,omitempty" jsonschema:"Session date (ISO 8601), defaults to now"`
	Duration  string               `json:"duration,omitempty" jsonschema:"Session duration as mm:ss"`
	Exercises map[string][]setItem `json:"exercises" jsonschema:"Performed sets keyed by exercise name"`
}

type setItem struct {
	Weight string `json:"weight" jsonschema:"Weight used, free text (e.g. 60 or 60kg)"`
	Reps   string `json:"reps" jsonschema:"Reps performed, free text"`
}

type logMealInput struct {
	Meal     string   `json:"meal,omitempty" jsonschema:"Meal label (café, almoço, jantar, lanche)"`
	Calories float64  `json:"calories" jsonschema:"Total kcal"`
	Protein  float64  `json:"protein,omitempty" jsonschema:"Protein grams"`
	Carbs    float64  `json:"carbs,omitempty" jsonschema:"Carb grams"`
	Fat      float64  `json:"fat,omitempty" jsonschema:"Fat grams"`
	Foods    []string `json:"foods,omitempty" jsonschema:"Foods in the meal"`
}

type addWaterInput struct {
	ML int `json:"ml" jsonschema:"Milliliters to add"`
}

type logWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"Body weight in kg"`
	Date   string  `json:"date,omitempty" jsonschema:"Entry date (YYYY-MM-DD), defaults to today"`
}

type nutritionTodayInput struct{}

type progressStatsInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	workouts, err := s.store.Workouts()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if input.Type != "" {
		filtered := workouts[:0]
		for _, w := range workouts {
			if string(w.Type) == input.Type {
				filtered = append(filtered, w)
			}
		}
		workouts = filtered
	}

	if len(workouts) == 0 {
		return nil, map[string]any{"message": "No workouts found."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.store.Workout(input.WorkoutID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load workout: %w", err)
	}
	if w == nil {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.WorkoutID)
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	}

	data := make(map[string]models.ExerciseLog, len(input.Exercises))
	for name, sets := range input.Exercises {
		entry := models.ExerciseLog{}
		for _, set := range sets {
			entry.Sets = append(entry.Sets, models.SetEntry{Weight: set.Weight, Reps: set.Reps})
		}
		data[name] = entry
	}

	log := &models.Log{
		ID:          models.NewID(),
		Date:        date,
		WorkoutID:   w.ID,
		WorkoutName: w.Name,
		Duration:    input.Duration,
		Data:        data,
	}
	if err := s.store.SaveLog(log); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save session: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s session (ID: %s)", w.Name, log.ID),
	}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	n := &models.NutritionLog{
		ID:       models.NewID(),
		Date:     time.Now().Format(time.RFC3339),
		Meal:     input.Meal,
		Calories: input.Calories,
		Foods:    input.Foods,
		Macros: &models.Macros{
			Protein: input.Protein,
			Carbs:   input.Carbs,
			Fat:     input.Fat,
		},
	}
	if err := s.store.SaveNutritionLog(n); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged meal: %.0f kcal (ID: %s)", input.Calories, n.ID),
	}, nil
}

func (s *Server) handleAddWater(ctx context.Context, req *mcp.CallToolRequest, input addWaterInput) (*mcp.CallToolResult, simpleOutput, error) {
	today := time.Now().Format("2006-01-02")
	d, err := s.store.AddWater(today, input.ML)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add water: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Water today: %d ml", d.Water),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	e := &models.WeightEntry{Date: date, Weight: input.Weight}
	if err := s.store.AddWeight(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log weight: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.1f kg on %s", input.Weight, date),
	}, nil
}

func (s *Server) handleNutritionToday(ctx context.Context, req *mcp.CallToolRequest, input nutritionTodayInput) (*mcp.CallToolResult, any, error) {
	today := time.Now().Format("2006-01-02")

	meals, err := s.store.MealsOn(today)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meals: %w", err)
	}
	stats, err := s.store.DailyStats(today)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read daily stats: %w", err)
	}
	profile, err := s.store.Profile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read profile: %w", err)
	}

	return nil, map[string]any{
		"date":     today,
		"meals":    meals,
		"water_ml": stats.Water,
		"consumed": analytics.DayTotals(meals),
		"targets":  analytics.Targets(profile),
	}, nil
}

func (s *Server) handleProgressStats(ctx context.Context, req *mcp.CallToolRequest, input progressStatsInput) (*mcp.CallToolResult, any, error) {
	logs, err := s.store.Logs()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	now := time.Now()
	xp := analytics.XP(logs)
	level := analytics.Level(xp)

	volume := make(map[string]int)
	for group, sets := range analytics.MuscleVolume(logs, now) {
		volume[string(group)] = sets
	}

	return nil, map[string]any{
		"sessions":      len(logs),
		"streak_days":   analytics.Streak(logs, now),
		"xp":            xp,
		"level":         level.Name,
		"next_level_at": level.NextAt,
		"weekly_volume": volume,
	}, nil
}
