// ABOUTME: CLI commands for the body weight series and progress photos.
package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bmonteiro/ferro/internal/models"
)

var weightDate string

var weightCmd = &cobra.Command{
	Use:   "weight [kg]",
	Short: "Log or list body weight",
	Long: `Log a body weight entry, or list the series when called without a value.

Examples:
  ferro weight 82.5
  ferro weight 81.9 --date 2026-08-20
  ferro weight`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listWeights()
		}

		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		date := weightDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		e := &models.WeightEntry{Date: date, Weight: kg}
		if err := db.AddWeight(e); err != nil {
			return fmt.Errorf("failed to log weight: %w", err)
		}

		color.Green("✓ Logged %.1f kg", kg)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(e.ID), date)

		return nil
	},
}

func listWeights() error {
	entries, err := db.WeightHistory()
	if err != nil {
		return fmt.Errorf("failed to list weight history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No weight entries found.")
		return nil
	}

	faint := color.New(color.Faint)
	for _, e := range entries {
		fmt.Printf("%s %s %.1f kg\n", faint.Sprint(e.ID), e.Date, e.Weight)
	}

	return nil
}

// encodePhoto wraps raw image bytes in a data URI, the shape the store keeps.
func encodePhoto(data []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage progress photos",
	Long:  "Progress photos are stored locally only and never synced.",
}

var photoAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Store a progress photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		p := &models.Photo{
			Date:  time.Now().Format("2006-01-02"),
			Image: encodePhoto(data),
		}
		if err := db.AddPhoto(p); err != nil {
			return fmt.Errorf("failed to store photo: %w", err)
		}

		color.Green("✓ Stored photo %s", p.ID)
		return nil
	},
}

var photoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List progress photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		photos, err := db.Photos()
		if err != nil {
			return fmt.Errorf("failed to list photos: %w", err)
		}

		faint := color.New(color.Faint)
		for _, p := range photos {
			fmt.Printf("%s %s %s\n", faint.Sprint(p.ID), p.Date, faint.Sprintf("%d bytes", len(p.Image)))
		}

		return nil
	},
}

var photoDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a progress photo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.DeletePhoto(args[0]); err != nil {
			return fmt.Errorf("failed to delete photo: %w", err)
		}

		color.Green("✓ Deleted photo %s", args[0])
		return nil
	},
}

func init() {
	weightCmd.Flags().StringVar(&weightDate, "date", "", "entry date (YYYY-MM-DD, default: today)")

	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoListCmd)
	photoCmd.AddCommand(photoDeleteCmd)

	rootCmd.AddCommand(weightCmd)
	rootCmd.AddCommand(photoCmd)
}
