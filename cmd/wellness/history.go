// ABOUTME: CLI command for listing recent wellness entries.
// ABOUTME: Supports limiting results and filtering to a single metric column.
package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyMetric string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls", "list"},
	Short:   "List recent entries",
	Long: `List recent wellness entries, newest first.

OUTPUT FORMAT:

  Each line shows: DATE  ACTIVITY  SUBJECTIVE  FIELDS

  ACTIVITY is the computed activity score, SUBJECTIVE the averaged
  self-rating for the day ("-" when the sliders weren't filled in).

FILTERING:

  Use --metric to show one column instead of the field summary:

EXAMPLES:

  wellness history                     # Last 20 entries
  wellness history -n 50               # Last 50 entries
  wellness history --metric sleep_hours`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyMetric != "" {
			if _, ok := formDoc.Field(historyMetric); !ok {
				return fmt.Errorf("unknown field: %s", historyMetric)
			}
		}

		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		models.SortEntries(entries)
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		faint := color.New(color.Faint)
		now := time.Now()
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]

			if historyMetric != "" {
				f, _ := formDoc.Field(historyMetric)
				raw, ok := e.Get(historyMetric)
				if !ok {
					continue
				}
				fmt.Printf("%s  %s\n", faint.Sprint(e.Date), f.Initial(raw, true, now).Display())
				continue
			}

			subjective := "-"
			if avg := e.SubjectiveAverage(); !math.IsNaN(avg) {
				subjective = fmt.Sprintf("%.1f", avg)
			}
			fmt.Printf("%s  act %s  subj %s  %s\n",
				faint.Sprint(e.Date),
				padRight(fmt.Sprintf("%.0f", e.ActivityScore()), 3),
				padRight(subjective, 4),
				faint.Sprint(truncate(fieldSummary(e), 60)))
		}

		return nil
	},
}

// fieldSummary renders the stored field names of an entry for the one-line view.
func fieldSummary(e *models.Entry) string {
	names := e.FieldNames()
	return strings.Join(names, ",")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	historyCmd.Flags().StringVarP(&historyMetric, "metric", "m", "", "show a single field column")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(historyCmd)
}
