// ABOUTME: CLI commands for exporting and importing wellness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export wellness data",
	Long: `Export wellness data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Long-format Markdown table (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include entries since this date (YYYY-MM-DD)

EXAMPLES:

  wellness export json                        # Export all data as JSON
  wellness export json -o backup.json         # Save to file
  wellness export yaml                        # Export as YAML
  wellness export markdown --since 2024-01-01 # Entries from 2024 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var since *time.Time
		if exportSince != "" {
			t, err := time.Parse("2006-01-02", exportSince)
			if err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
			}
			since = &t
		}

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(store, since)
		case "yaml":
			data, err = storage.ExportYAML(store, since)
		case "markdown":
			var md string
			md, err = storage.ExportMarkdown(store, since)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

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
	Short: "Import wellness data from JSON",
	Long: `Import wellness data from a JSON backup file.

Imported entries merge into existing ones date by date: fields in the
backup overwrite stored fields of the same name, everything else is kept.

EXAMPLES:

  wellness import backup.json               # Import from file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := storage.ImportJSON(store, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include entries since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
