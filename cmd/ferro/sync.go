// ABOUTME: CLI commands for cloud sync.
// ABOUTME: Supports login, logout, status, and running a full sync.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bmonteiro/ferro/internal/remote"
	ferrosync "github.com/bmonteiro/ferro/internal/sync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync data across devices",
	Long: `Sync training data across devices through your configured cloud account.

The store works fully offline; sync is explicit. A run pulls remote
changes first (remote wins for records sharing an ID), then pushes local
state. Photos, gyms, and daily water stats never leave the device.

GETTING STARTED:

  1. Point ferro at your backend (once per machine):
     export FERRO_SERVER=https://your-project.example.com
     export FERRO_ANON_KEY=...

  2. Sign in on this device:
     ferro sync login you@email.com

  3. Sync whenever you want:
     ferro sync now

COMMANDS:

  login       Sign in and store a session on this device
  logout      Remove the stored session (local data is kept)
  status      Show session info and local record counts
  now         Run a full pull-then-push sync`,
}

var syncLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in on this device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Server == "" || cfg.AnonKey == "" {
			return fmt.Errorf("no backend configured; set FERRO_SERVER and FERRO_ANON_KEY")
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		client := remote.New(cfg.Server, cfg.AnonKey, "")
		session, err := client.SignIn(context.Background(), args[0], string(password))
		if err != nil {
			return fmt.Errorf("sign in failed: %w", err)
		}

		if err := remote.SaveSession(session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		color.Green("✓ Signed in as %s", session.Email)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("device %s", session.DeviceID))

		return nil
	},
}

var syncLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	Long: `Remove the stored session from this device.

This does not delete your local data. You can sign in again later with
'ferro sync login'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := remote.ClearSession(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		color.Green("✓ Signed out")
		fmt.Println("Your local data is preserved.")

		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := remote.LoadSession()
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		if !session.IsConfigured() {
			color.Yellow("Not signed in")
			fmt.Println("\nRun 'ferro sync login <email>' to connect.")
			return nil
		}

		fmt.Println("Account:", session.Email)
		fmt.Println("Server: ", session.Server)
		fmt.Println("Device: ", session.DeviceID)
		fmt.Println()

		workouts, _ := db.Workouts()
		logs, _ := db.Logs()
		meals, _ := db.NutritionLogs()
		weights, _ := db.WeightHistory()

		color.Green("✓ Session stored")
		fmt.Printf("  Workouts:  %d\n", len(workouts))
		fmt.Printf("  Sessions:  %d\n", len(logs))
		fmt.Printf("  Meals:     %d\n", len(meals))
		fmt.Printf("  Weights:   %d\n", len(weights))

		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Run a full sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := remote.LoadSession()
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if !session.IsConfigured() {
			color.Yellow("Not signed in; nothing to sync.")
			fmt.Println("\nRun 'ferro sync login <email>' to connect.")
			return nil
		}

		client := remote.New(session.Server, session.AnonKey, session.AccessToken)
		engine := ferrosync.New(db, client, appLog)

		report, err := engine.Run(context.Background())
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		if report.Skipped {
			color.Yellow("Session expired; run 'ferro sync login' again.")
			return nil
		}

		for _, f := range report.Failures {
			color.Red("  ✗ %s", f.Error())
		}
		if len(report.Failures) > 0 {
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("sync finished with %d failed collections", len(report.Failures))
		}

		color.Green("✓ Sync complete")
		for coll, n := range report.Pulled {
			fmt.Printf("  pulled %-16s %d\n", coll, n)
		}
		for coll, n := range report.Pushed {
			fmt.Printf("  pushed %-16s %d\n", coll, n)
		}

		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLoginCmd)
	syncCmd.AddCommand(syncLogoutCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)

	rootCmd.AddCommand(syncCmd)
}
