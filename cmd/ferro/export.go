// ABOUTME: CLI commands for exporting and importing the full store.
// ABOUTME: JSON backups that round-trip through Import without duplicates.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/store"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every collection as a single JSON document.

The dump is suitable for backup and restore; importing it into a seeded
store upserts and never duplicates.

EXAMPLES:

  ferro export                    # Print to stdout
  ferro export -o backup.json     # Save to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, err := db.ExportAll()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON backup",
	Long: `Import records from a previously exported JSON file.

Records are upserted by ID; existing records with the same ID are
replaced, everything else is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var dump store.ExportData
		if err := json.Unmarshal(data, &dump); err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		if err := db.Import(&dump); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
