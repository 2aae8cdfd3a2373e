// ABOUTME: CLI commands for completed training sessions.
// ABOUTME: Supports logging with per-exercise sets, listing, and deletion.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/models"
)

var (
	sessionSets     []string
	sessionNotes    []string
	sessionDate     string
	sessionDuration string
	sessionLimit    int
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage training sessions",
	Long: `Log and review completed training sessions.

Each --set is "exercise:weight:reps"; weight and reps are free text and
stored exactly as typed ("60", "60kg", "Falha" all work).

EXAMPLES:

  ferro session log <workout-id> --set "Supino Reto:60:10" --set "Supino Reto:60:8"
  ferro session log <workout-id> --duration 52:30 --note "Supino Reto:pegada fechada"
  ferro session list
  ferro session delete <id>`,
}

var sessionLogCmd = &cobra.Command{
	Use:   "log <workout-id>",
	Short: "Log a completed session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := db.Workout(args[0])
		if err != nil {
			return fmt.Errorf("failed to load workout: %w", err)
		}
		if w == nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		date := sessionDate
		if date == "" {
			date = time.Now().Format(time.RFC3339)
		}

		data := make(map[string]models.ExerciseLog)
		for _, spec := range sessionSets {
			parts := strings.SplitN(spec, ":", 3)
			if len(parts) != 3 {
				return fmt.Errorf("invalid set %q (use exercise:weight:reps)", spec)
			}
			entry := data[parts[0]]
			entry.Sets = append(entry.Sets, models.SetEntry{Weight: parts[1], Reps: parts[2]})
			data[parts[0]] = entry
		}
		for _, spec := range sessionNotes {
			parts := strings.SplitN(spec, ":", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid note %q (use exercise:text)", spec)
			}
			entry := data[parts[0]]
			entry.Note = parts[1]
			data[parts[0]] = entry
		}

		log := &models.Log{
			ID:          models.NewID(),
			Date:        date,
			WorkoutID:   w.ID,
			WorkoutName: w.Name,
			Duration:    sessionDuration,
			Data:        data,
		}
		if err := db.SaveLog(log); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		totalSets := 0
		for _, entry := range data {
			totalSets += len(entry.Sets)
		}

		color.Green("✓ Logged %s", w.Name)
		fmt.Printf("  %s %d exercises, %d sets\n",
			color.New(color.Faint).Sprint(log.ID),
			len(data), totalSets)

		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := db.Logs()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}
		if sessionLimit > 0 && len(logs) > sessionLimit {
			logs = logs[:sessionLimit]
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			date := l.Date
			if len(date) > 10 {
				date = date[:10]
			}
			duration := ""
			if l.Duration != "" {
				duration = faint.Sprintf(" %s", l.Duration)
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(l.ID),
				faint.Sprint(date),
				padRight(l.WorkoutName, 24),
				duration)
		}

		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session with its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := db.Log(args[0])
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if l == nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(l.WorkoutName), faint.Sprint(l.Date))
		for name, entry := range l.Data {
			fmt.Printf("  %s\n", name)
			for _, set := range entry.Sets {
				fmt.Printf("    %s x %s\n", set.Weight, set.Reps)
			}
			if entry.Note != "" {
				fmt.Printf("    %s\n", faint.Sprint(entry.Note))
			}
		}

		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.DeleteLog(args[0]); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		color.Green("✓ Deleted session %s", args[0])
		return nil
	},
}

func init() {
	sessionLogCmd.Flags().StringArrayVar(&sessionSets, "set", nil, "performed set as exercise:weight:reps (repeatable)")
	sessionLogCmd.Flags().StringArrayVar(&sessionNotes, "note", nil, "exercise note as exercise:text (repeatable)")
	sessionLogCmd.Flags().StringVar(&sessionDate, "date", "", "session date (ISO 8601, default: now)")
	sessionLogCmd.Flags().StringVar(&sessionDuration, "duration", "", "session duration as mm:ss")
	sessionListCmd.Flags().IntVarP(&sessionLimit, "limit", "n", 20, "max number of results")

	sessionCmd.AddCommand(sessionLogCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)

	rootCmd.AddCommand(sessionCmd)
}
