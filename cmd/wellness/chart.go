// ABOUTME: CLI command for rendering a metric's time-series in the terminal.
// ABOUTME: Prints the interpolated daily sequence as a scaled bar chart.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/chart"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/spf13/cobra"
)

var (
	chartPeriod string
	chartZoom   float64
)

const chartBarWidth = 40

var chartCmd = &cobra.Command{
	Use:   "chart <metric>",
	Short: "Chart a metric over time",
	Long: `Chart a metric's daily values over a rolling window.

Days between measurements are linearly interpolated and shown faint;
measured days are shown solid. The window looks back from today:
week = 7 days, month = 30 days, year = 365 days.

The metric is a schema field name, or "subjective_average" for the
derived daily self-rating.

EXAMPLES:

  wellness chart sleep_hours
  wellness chart hrv --period year
  wellness chart subjective_average --period week
  wellness chart run_km --zoom 0.5        # Zoom in on the y-axis`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := args[0]
		period := stats.Period(chartPeriod)
		if !period.Valid() {
			return fmt.Errorf("unknown period: %s (use week, month, or year)", chartPeriod)
		}

		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		fig := chart.TimeSeries(entries, metric, period, time.Now(), chart.SeriesOptions{Zoom: chartZoom})
		renderTimeSeries(fig)
		return nil
	},
}

// renderTimeSeries prints a figure's line trace as horizontal bars.
// Measured dates come from the marker trace; everything else is faint.
func renderTimeSeries(fig *chart.Figure) {
	color.New(color.Bold).Println(fig.Title)

	if fig.Empty() {
		fmt.Println(fig.Annotation)
		return
	}

	measured := make(map[string]bool)
	var line chart.Trace
	for _, tr := range fig.Traces {
		switch tr.Mode {
		case "markers":
			for _, p := range tr.Points {
				measured[p.X.Format(models.DateFormat)] = true
			}
		case "lines":
			line = tr
		}
	}

	lo, hi := 0.0, 1.0
	if fig.YRange != nil {
		lo, hi = fig.YRange[0], fig.YRange[1]
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	faint := color.New(color.Faint)
	for _, p := range line.Points {
		frac := (p.Y - lo) / span
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		bar := strings.Repeat("█", int(frac*chartBarWidth))

		date := p.X.Format(models.DateFormat)
		if measured[date] {
			fmt.Printf("%s %7.2f %s\n", date, p.Y, bar)
		} else {
			faint.Printf("%s %7.2f %s\n", date, p.Y, bar)
		}
	}

	faint.Printf("y: [%.2f, %.2f]\n", lo, hi)
}

func init() {
	chartCmd.Flags().StringVarP(&chartPeriod, "period", "p", "month", "window: week, month, or year")
	chartCmd.Flags().Float64Var(&chartZoom, "zoom", 1.0, "y-axis zoom factor (smaller is closer)")
	rootCmd.AddCommand(chartCmd)
}
