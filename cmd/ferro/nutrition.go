// ABOUTME: CLI commands for meals and daily water intake.
// ABOUTME: Meals take manual macros or an AI estimate from free text.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/advice"
	"github.com/bmonteiro/ferro/internal/analytics"
	"github.com/bmonteiro/ferro/internal/models"
)

var (
	mealLabel    string
	mealCalories float64
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealManual   bool
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review meals",
	Long: `Log meals and review the day against your macro targets.

By default 'meal add' sends the description to the configured AI endpoint
and stores the estimated macros. Use --manual with explicit values to skip
the AI call.

EXAMPLES:

  ferro meal add "200g arroz, 150g frango grelhado"
  ferro meal add "shake de whey" --manual --calories 180 --protein 30
  ferro meal today`,
}

var mealAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Log a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := &models.NutritionLog{
			ID:   models.NewID(),
			Date: time.Now().Format(time.RFC3339),
			Meal: mealLabel,
		}

		if mealManual {
			n.Calories = mealCalories
			n.Foods = []string{args[0]}
			n.Macros = &models.Macros{Protein: mealProtein, Carbs: mealCarbs, Fat: mealFat}
		} else {
			client, err := advice.NewClient(advice.Config{
				BaseURL: cfg.AdviceURL,
				APIKey:  cfg.AdviceAPIKey(),
				Model:   cfg.AdviceModel,
			})
			if err != nil {
				return fmt.Errorf("AI estimation unavailable (%v); use --manual with explicit macros", err)
			}

			est, err := client.ParseMeal(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to estimate meal: %w", err)
			}
			n.Calories = est.Calories
			n.Foods = est.Foods
			n.Macros = &models.Macros{Protein: est.Protein, Carbs: est.Carbs, Fat: est.Fats}
		}

		if err := db.SaveNutritionLog(n); err != nil {
			return fmt.Errorf("failed to save meal: %w", err)
		}

		color.Green("✓ Logged meal")
		fmt.Printf("  %s %.0f kcal  P %.0fg  C %.0fg  G %.0fg\n",
			color.New(color.Faint).Sprint(n.ID),
			n.Calories, n.Macros.Protein, n.Macros.Carbs, n.Macros.Fat)

		return nil
	},
}

var mealTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's meals against macro targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		today := time.Now().Format("2006-01-02")

		meals, err := db.MealsOn(today)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}
		profile, err := db.Profile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		stats, err := db.DailyStats(today)
		if err != nil {
			return fmt.Errorf("failed to read daily stats: %w", err)
		}

		consumed := analytics.DayTotals(meals)
		targets := analytics.Targets(profile)

		faint := color.New(color.Faint)
		for _, m := range meals {
			label := m.Meal
			if label == "" {
				label = "refeição"
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(m.ID),
				padRight(label, 12),
				faint.Sprintf("%.0f kcal", m.Calories))
		}
		if len(meals) > 0 {
			fmt.Println()
		}

		fmt.Printf("Calorias  %d / %d kcal\n", consumed.Calories, targets.Calories)
		fmt.Printf("Proteína  %d / %d g\n", consumed.Protein, targets.Protein)
		fmt.Printf("Carbos    %d / %d g\n", consumed.Carbs, targets.Carbs)
		fmt.Printf("Gordura   %d / %d g\n", consumed.Fat, targets.Fat)
		fmt.Printf("Água      %d ml\n", stats.Water)

		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a meal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.DeleteNutritionLog(args[0]); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Green("✓ Deleted meal %s", args[0])
		return nil
	},
}

var waterCmd = &cobra.Command{
	Use:   "water <ml>",
	Short: "Add water intake for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ml int
		if _, err := fmt.Sscanf(args[0], "%d", &ml); err != nil || ml <= 0 {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		today := time.Now().Format("2006-01-02")
		d, err := db.AddWater(today, ml)
		if err != nil {
			return fmt.Errorf("failed to add water: %w", err)
		}

		color.Green("✓ Added %d ml", ml)
		fmt.Printf("  Today: %d ml\n", d.Water)

		return nil
	},
}

func init() {
	mealAddCmd.Flags().StringVar(&mealLabel, "meal", "", "meal label (café, almoço, jantar, lanche)")
	mealAddCmd.Flags().BoolVar(&mealManual, "manual", false, "skip AI estimation and use explicit macros")
	mealAddCmd.Flags().Float64Var(&mealCalories, "calories", 0, "total kcal (with --manual)")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "protein grams (with --manual)")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "carb grams (with --manual)")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "fat grams (with --manual)")

	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealTodayCmd)
	mealCmd.AddCommand(mealDeleteCmd)

	rootCmd.AddCommand(mealCmd)
	rootCmd.AddCommand(waterCmd)
}
