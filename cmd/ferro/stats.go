// ABOUTME: CLI commands for derived progress stats.
// ABOUTME: Streak, XP level, weekly muscle volume, and 1RM estimates.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress stats",
	Long: `Show training progress derived from your session logs:

  - current streak of consecutive training days
  - XP total and level (1 kg-rep = 1 XP)
  - sets per muscle group over the last 7 days

Use 'ferro stats 1rm <exercise>' for a one-rep max estimate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := db.Logs()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		now := time.Now()
		xp := analytics.XP(logs)
		level := analytics.Level(xp)
		streak := analytics.Streak(logs, now)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		fmt.Printf("%s  %d sessions, %d day streak\n", bold.Sprint("Treinos"), len(logs), streak)
		fmt.Printf("%s  %d XP %s\n", bold.Sprint("Nível  "), xp,
			faint.Sprintf("(%s, próximo em %d)", level.Name, level.NextAt))

		fmt.Printf("\n%s\n", bold.Sprint("Volume semanal (sets)"))
		volume := analytics.MuscleVolume(logs, now)
		for _, group := range analytics.AllMuscleGroups {
			sets := volume[group]
			bar := strings.Repeat("█", sets)
			fmt.Printf("  %s %s %d\n", padRight(string(group), 12), bar, sets)
		}

		return nil
	},
}

var statsOneRMCmd = &cobra.Command{
	Use:   "1rm <exercise>",
	Short: "Estimate a one-rep max",
	Long: `Estimate the one-rep max for an exercise from logged sets, using the
Brzycki formula. Matches by dictionary key (bench_press) or name substring
(Supino).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := db.Logs()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		best := analytics.Best1RM(logs, args[0])
		if best == 0 {
			fmt.Printf("No logged sets found for %q.\n", args[0])
			return nil
		}

		fmt.Printf("1RM estimado: %.0f kg\n", best)
		return nil
	},
}

func init() {
	statsCmd.AddCommand(statsOneRMCmd)
	rootCmd.AddCommand(statsCmd)
}
