// ABOUTME: CLI commands for workout templates and gyms.
// ABOUTME: Supports list, show, add, delete, and the gym lookup list.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/models"
)

var (
	workoutType      string
	workoutExercises []string
	workoutFields    []string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout templates",
	Long: `Manage reusable workout templates.

A template lists planned exercises (gym) or free-text fields (bjj).
Logged sessions reference a template but keep their own copy of the name,
so deleting a template never breaks history.

EXAMPLES:

  ferro workout list
  ferro workout show <id>
  ferro workout add "Push A" --exercise "Supino Reto:4:8-12"
  ferro workout add "Drilling" --type bjj --field "Técnicas"
  ferro workout delete <id>`,
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := db.Workouts()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			detail := fmt.Sprintf("%d exercises", len(w.Exercises))
			if w.Type == models.WorkoutBJJ {
				detail = fmt.Sprintf("bjj, %d fields", len(w.Fields))
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(w.ID),
				padRight(w.Name, 24),
				faint.Sprintf("(%s)", detail))
		}

		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := db.Workout(args[0])
		if err != nil {
			return fmt.Errorf("failed to load workout: %w", err)
		}
		if w == nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(w.Name), faint.Sprintf("(%s)", w.Type))
		for _, e := range w.Exercises {
			fmt.Printf("  %s %s\n", padRight(e.Name, 28), faint.Sprintf("%dx%s", e.Sets, e.Reps))
		}
		for _, f := range w.Fields {
			fmt.Printf("  %s\n", f)
		}
		if w.NextSessionTips != "" {
			fmt.Printf("\n%s %s\n", faint.Sprint("tips:"), w.NextSessionTips)
		}

		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a workout template",
	Long: `Add a workout template.

Each --exercise is "name:sets:reps"; reps is free text ("8-12", "Falha").
BJJ templates take --field entries instead of exercises.

Examples:
  ferro workout add "Push A" --exercise "Supino Reto:4:8-12" --exercise "Tríceps Polia:3:12"
  ferro workout add "Sparring" --type bjj --field "Rounds" --field "Parceiros"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wt := models.WorkoutType(workoutType)
		if wt != models.WorkoutGym && wt != models.WorkoutBJJ {
			return fmt.Errorf("unknown workout type: %s (use gym or bjj)", workoutType)
		}

		w := models.NewWorkout(args[0], wt)
		for _, spec := range workoutExercises {
			ex, err := parseExercise(spec)
			if err != nil {
				return err
			}
			w.Exercises = append(w.Exercises, ex)
		}
		w.Fields = workoutFields

		if err := db.AddWorkout(w); err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		color.Green("✓ Added %s", w.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(w.ID))

		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout template",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.DeleteWorkout(args[0]); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted workout %s", args[0])
		fmt.Println("  Logged sessions that referenced it are kept.")

		return nil
	},
}

var gymCmd = &cobra.Command{
	Use:   "gym",
	Short: "Manage the gym lookup list",
}

var gymListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List gyms",
	RunE: func(cmd *cobra.Command, args []string) error {
		gyms, err := db.Gyms()
		if err != nil {
			return fmt.Errorf("failed to list gyms: %w", err)
		}

		faint := color.New(color.Faint)
		for _, g := range gyms {
			fmt.Printf("%s %s\n", faint.Sprint(g.ID), g.Name)
		}

		return nil
	},
}

var gymAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a gym",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := &models.Gym{ID: models.NewID(), Name: args[0]}
		if err := db.AddGym(g); err != nil {
			return fmt.Errorf("failed to add gym: %w", err)
		}

		color.Green("✓ Added gym %s", g.Name)
		return nil
	},
}

// parseExercise parses "name:sets:reps" flag values.
func parseExercise(spec string) (models.Exercise, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q (use name:sets:reps)", spec)
	}
	sets, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Exercise{}, fmt.Errorf("invalid set count in %q", spec)
	}
	return models.Exercise{Name: parts[0], Sets: sets, Reps: parts[2]}, nil
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	workoutAddCmd.Flags().StringVarP(&workoutType, "type", "t", "gym", "template type (gym or bjj)")
	workoutAddCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "exercise as name:sets:reps (repeatable)")
	workoutAddCmd.Flags().StringArrayVar(&workoutFields, "field", nil, "free-text field for bjj templates (repeatable)")

	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)

	gymCmd.AddCommand(gymListCmd)
	gymCmd.AddCommand(gymAddCmd)

	rootCmd.AddCommand(workoutCmd)
	rootCmd.AddCommand(gymCmd)
}
