// ABOUTME: CLI command for logging wellness entries.
// ABOUTME: Parses field=value args, coerces them through the schema, and upserts.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/spf13/cobra"
)

var logDate string

var logCmd = &cobra.Command{
	Use:     "log <field>=<value> [field=value ...]",
	Aliases: []string{"l"},
	Short:   "Log wellness values for a day",
	Long: `Log wellness values for a day. Each argument is a field=value pair.

Values are coerced through the form schema: checkboxes accept 1/true/yes,
sliders clamp to whole numbers, times accept HH:MM:SS or "now". Logging
the same date twice overwrites the named fields and keeps the rest.

Examples:
  wellness log sleep_hours=7.5 gym=1
  wellness log wake_time=now meditation=yes
  wellness log hrv=48 --date 2024-06-14
  wellness log caffeine="morning only" notes="slow start"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := logDate
		if date == "" {
			date = time.Now().Format(models.DateFormat)
		}
		if !models.ValidDate(date) {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
		}

		now := time.Now()
		fields := make(map[string]string, len(args))
		for _, arg := range args {
			name, raw, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid argument: %s (use field=value)", arg)
			}
			f, found := formDoc.Field(name)
			if !found {
				return fmt.Errorf("unknown field: %s\nKnown fields: %s", name, strings.Join(formDoc.FieldNames(), ", "))
			}
			fields[name] = f.Normalize(raw, now)
		}

		e, err := store.Upsert(date, fields)
		if err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		color.Green("✓ Logged %s", e.Date)
		faint := color.New(color.Faint)
		for _, name := range formDoc.FieldNames() {
			if v, ok := fields[name]; ok {
				f, _ := formDoc.Field(name)
				fmt.Printf("  %s %s\n", faint.Sprint(padRight(name, 20)), f.Initial(v, true, now).Display())
			}
		}

		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(logCmd)
}
