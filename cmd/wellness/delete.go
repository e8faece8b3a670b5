// ABOUTME: CLI command for deleting wellness entries.
// ABOUTME: Deletes the single entry stored for a date.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a day's entry",
	Long: `Delete the wellness entry for a date.

EXAMPLES:

  wellness delete 2024-06-14
  wellness rm 2024-06-14

CAUTION:

  This permanently deletes the whole entry for the day, every field.
  There is no undo. To clear a single field, log over it instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]
		if !models.ValidDate(date) {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
		}

		e, err := store.Get(date)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no entry for %s", date)
			}
			return err
		}

		if err := store.Delete(date); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		color.Yellow("✗ Deleted %s", date)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("%d field(s) removed", len(e.Fields)))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
