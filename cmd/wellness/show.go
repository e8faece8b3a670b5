// ABOUTME: CLI command for showing a single day's entry.
// ABOUTME: Renders stored fields grouped by schema block plus derived scores.
package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the entry for a day",
	Long: `Show the wellness entry for a day, grouped by schema block.

Defaults to today. Derived scores (activity score, subjective average)
are computed from the stored values.

EXAMPLES:

  wellness show                 # Today's entry
  wellness show 2024-06-14      # A specific day`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().Format(models.DateFormat)
		if len(args) == 1 {
			date = args[0]
		}
		if !models.ValidDate(date) {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
		}

		e, err := store.Get(date)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("No entry for %s.\n", date)
				return nil
			}
			return fmt.Errorf("failed to load entry: %w", err)
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)

		bold.Println(e.Date)
		now := time.Now()
		for _, b := range formDoc.Blocks {
			shown := false
			for _, f := range b.Fields {
				raw, ok := e.Get(f.Name)
				if !ok {
					continue
				}
				if !shown {
					fmt.Println()
					faint.Println(b.Title)
					shown = true
				}
				fmt.Printf("  %s %s\n", padRight(f.Label, 22), f.Initial(raw, true, now).Display())
			}
		}

		fmt.Println()
		faint.Println("Scores")
		fmt.Printf("  %s %.0f\n", padRight("Activity score", 22), e.ActivityScore())
		if avg := e.SubjectiveAverage(); !math.IsNaN(avg) {
			fmt.Printf("  %s %.1f\n", padRight("Subjective average", 22), avg)
		} else {
			fmt.Printf("  %s -\n", padRight("Subjective average", 22))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
