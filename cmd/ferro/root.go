// ABOUTME: Root Cobra command for ferro CLI.
// ABOUTME: Handles config loading and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/config"
	"github.com/bmonteiro/ferro/internal/logger"
	"github.com/bmonteiro/ferro/internal/store"
)

var (
	cfg    *config.Config
	db     *store.Store
	appLog *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ferro",
	Short: "Personal training and nutrition tracker",
	Long: `Ferro is a CLI tool for tracking gym and BJJ training, nutrition, and progress.

WHAT IT TRACKS:

  Training    workout templates, completed sessions with sets and weights
  Nutrition   meals with macros, daily water intake
  Progress    body weight, streaks, XP levels, weekly muscle volume, 1RM

QUICK START:

  $ ferro workout list                  # See your workout templates
  $ ferro session log <workout-id> \
      --set "Supino Reto:60:10"         # Log a completed session
  $ ferro meal add "arroz com frango"   # Log a meal (AI-estimated macros)
  $ ferro water 500                     # Log 500ml of water
  $ ferro stats                         # Streak, level, weekly volume

SYNC:

  Sync data across devices through your configured cloud account.

  $ ferro sync login you@email.com    # Sign in on this device
  $ ferro sync now                    # Pull remote changes, push local ones
  $ ferro sync status                 # Check session and data counts

MCP INTEGRATION:

  Run 'ferro mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "ferro": { "command": "ferro", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records are stored locally at ~/.local/share/ferro. The store works fully
  offline; sync is explicit and optional.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		appLog = logger.Init()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
