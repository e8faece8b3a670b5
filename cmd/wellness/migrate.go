// ABOUTME: CLI command for migrating CSV data to SQLite.
// ABOUTME: One-time migration tool for users switching storage backends.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate CSV data to SQLite",
	Long: `Migrate wellness data from the CSV backend to SQLite.

The CSV file stays untouched; entries are copied into the SQLite
database, merging with anything already there date by date. After a
successful migration, switch backends in the config:

  ~/.config/wellness/config.json  →  {"backend": "sqlite"}

USAGE:

  wellness migrate --dry-run   # Preview what would be migrated
  wellness migrate             # Perform the migration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := cfg.GetDataDir()

		csvStore, err := storage.NewCSVStore(filepath.Join(dataDir, "wellness_data.csv"))
		if err != nil {
			return fmt.Errorf("failed to open CSV store: %w", err)
		}
		defer csvStore.Close()

		entries, err := csvStore.Load()
		if err != nil {
			return fmt.Errorf("failed to read CSV data: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No CSV entries to migrate.")
			return nil
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			fmt.Printf("Would migrate %d entries:\n", len(entries))
			for _, e := range entries {
				fmt.Printf("  %s (%d fields)\n", e.Date, len(e.Fields))
			}
			return nil
		}

		db, err := storage.Open(filepath.Join(dataDir, "wellness.db"))
		if err != nil {
			return fmt.Errorf("failed to open SQLite database: %w", err)
		}
		defer db.Close()

		data, err := csvStore.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to collect CSV data: %w", err)
		}
		if err := db.ImportData(data); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d entries to SQLite", len(entries))
		fmt.Println()
		fmt.Println("To switch to the SQLite backend, set in ~/.config/wellness/config.json:")
		fmt.Println(`  {"backend": "sqlite"}`)

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
