// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the local store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Add it to an MCP-compatible
client config:

  {
    "mcpServers": {
      "ferro": {
        "command": "ferro",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_workouts    List workout templates
  log_session      Record a completed training session
  log_meal         Record a meal with macros
  add_water        Add water intake to today's counter
  log_weight       Append a body weight entry
  progress_stats   Streak, XP level, and weekly muscle volume

AVAILABLE RESOURCES:

  ferro://today      Today's meals, water, and macro targets
  ferro://summary    Progress dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
