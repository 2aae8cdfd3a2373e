// ABOUTME: CLI command for AI coaching before a session.
// ABOUTME: Suggests loading for an exercise from goal and weight history.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/advice"
)

var coachCmd = &cobra.Command{
	Use:   "coach <exercise>",
	Short: "Get an AI loading suggestion for an exercise",
	Long: `Ask the AI coach what to lift today for a given exercise, based on your
goal and recent body weight history.

Requires FERRO_AI_KEY in the environment (or a .env file).

Example:
  ferro coach "Supino Reto"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := advice.NewClient(advice.Config{
			BaseURL: cfg.AdviceURL,
			APIKey:  cfg.AdviceAPIKey(),
			Model:   cfg.AdviceModel,
		})
		if err != nil {
			return err
		}

		profile, err := db.Profile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		history, err := db.WeightHistory()
		if err != nil {
			return fmt.Errorf("failed to read weight history: %w", err)
		}
		if len(history) > 10 {
			history = history[len(history)-10:]
		}

		adv, err := client.CoachAdvice(context.Background(), advice.CoachRequest{
			ExerciseName: args[0],
			Goal:         profile.Goal,
			History:      history,
		})
		if err != nil {
			return fmt.Errorf("failed to get advice: %w", err)
		}

		bold := color.New(color.Bold)
		fmt.Printf("%s\n", bold.Sprint(args[0]))
		if adv.PreviousWeight != "" {
			fmt.Printf("  Último peso  %s\n", adv.PreviousWeight)
		}
		if adv.SuggestedIncrease != "" {
			fmt.Printf("  Aumento      %s\n", adv.SuggestedIncrease)
		}
		if adv.TargetWeight != "" {
			fmt.Printf("  Meta de hoje %s\n", adv.TargetWeight)
		}
		if adv.Tip != "" {
			fmt.Printf("\n  %s\n", adv.Tip)
		}
		if adv.Motivation != "" {
			color.Green("\n  %s", adv.Motivation)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
}
