// ABOUTME: CLI commands for the singleton user profile.
// ABOUTME: Shows current values and applies partial updates via flags.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/analytics"
	"github.com/bmonteiro/ferro/internal/models"
)

var (
	profileName     string
	profileGoal     string
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileGender   string
	profileActivity string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Long: `Show the profile and the macro targets derived from it, or update
fields with flags.

Examples:
  ferro profile
  ferro profile set --weight 82.5 --goal hypertrophy
  ferro profile set --age 29 --height 178 --activity moderate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := db.Profile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}

		targets := analytics.Targets(p)
		faint := color.New(color.Faint)

		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(p.Name), faint.Sprintf("(%s)", p.Goal))
		if p.Weight > 0 {
			fmt.Printf("  Peso      %.1f kg\n", p.Weight)
		}
		if p.Height > 0 {
			fmt.Printf("  Altura    %.0f cm\n", p.Height)
		}
		if p.Age > 0 {
			fmt.Printf("  Idade     %d\n", p.Age)
		}
		if p.ActivityLevel != "" {
			fmt.Printf("  Atividade %s\n", p.ActivityLevel)
		}

		fmt.Printf("\n%s\n", color.New(color.Bold).Sprint("Metas diárias"))
		fmt.Printf("  %d kcal  P %dg  C %dg  G %dg\n",
			targets.Calories, targets.Protein, targets.Carbs, targets.Fat)

		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := db.Profile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}

		if profileName != "" {
			p.Name = profileName
		}
		if profileGoal != "" {
			goal := models.Goal(profileGoal)
			switch goal {
			case models.GoalHypertrophy, models.GoalStrength, models.GoalEndurance, models.GoalWeightLoss:
				p.Goal = goal
			default:
				return fmt.Errorf("unknown goal: %s (use hypertrophy, strength, endurance, or weight_loss)", profileGoal)
			}
		}
		if profileWeight > 0 {
			p.Weight = profileWeight
		}
		if profileHeight > 0 {
			p.Height = profileHeight
		}
		if profileAge > 0 {
			p.Age = profileAge
		}
		if profileGender != "" {
			p.Gender = profileGender
		}
		if profileActivity != "" {
			p.ActivityLevel = profileActivity
		}

		if err := db.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile updated")
		fmt.Printf("  %s, goal %s, %s kg\n", p.Name, p.Goal, strconv.FormatFloat(p.Weight, 'f', -1, 64))

		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "training goal (hypertrophy, strength, endurance, weight_loss)")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "body weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "gender (male or female)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level (sedentary, light, moderate, active, athlete)")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
