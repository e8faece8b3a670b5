// ABOUTME: Root Cobra command for wellness CLI.
// ABOUTME: Opens config, storage backend, and form schema via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/wellness/internal/config"
	"github.com/harperreed/wellness/internal/schema"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	store   storage.Store
	formDoc *schema.Document
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Daily wellness log",
	Long: `Wellness is a CLI tool for logging daily wellness data, one entry per day.

WHAT IT TRACKS (default schema):

  Sleep      sleep_hours, sleep_quality, wake_time, hrv, fasting_glucose
  Activity   gym, morning_exercise, run_km, walking_steps, meditation
  Mind       motivation, mental_clarity, mood_content, productivity,
             fatigue, stress, overstimulation
  Habits     compulsive_behavior, cannabis, caffeine, notes

QUICK START:

  $ wellness log sleep_hours=7.5 gym=1        # Log today's values
  $ wellness log hrv=48 --date 2024-06-14     # Log a past day
  $ wellness show                              # Today's entry with scores
  $ wellness history                           # Recent entries
  $ wellness chart sleep_hours --period month  # Metric trend
  $ wellness calendar gym                      # Activity calendar

STORAGE BACKENDS:

  csv (default)  Single CSV file at ~/.local/share/wellness/wellness_data.csv
  sqlite         SQLite database at ~/.local/share/wellness/wellness.db
  charm          E2E-encrypted Charm KV, synced across devices

  Select via config.json:
    ~/.config/wellness/config.json  →  {"backend": "sqlite"}

FORM SCHEMA:

  The tracked fields come from a YAML schema. The built-in default works
  out of the box; point "schema_path" in config.json at your own file to
  customize fields, blocks, and charts.

MCP INTEGRATION:

  Run 'wellness mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "wellness": { "command": "wellness", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "install-skill" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		formDoc, err = schema.LoadOrDefault(cfg.GetSchemaPath())
		if err != nil {
			return fmt.Errorf("failed to load schema: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			err := store.Close()
			store = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
