// ABOUTME: CLI command for rendering activity calendars in the terminal.
// ABOUTME: Month and week grids are Monday-start; the year view is a heatmap.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/calendar"
	"github.com/harperreed/wellness/internal/chart"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/spf13/cobra"
)

var (
	calendarPeriod  string
	calendarBack    int
	calendarForward int
)

var calendarCmd = &cobra.Command{
	Use:     "calendar <metric>",
	Aliases: []string{"cal"},
	Short:   "Show an activity calendar for a metric",
	Long: `Show which days a metric was active on a calendar grid.

A day counts as active when the stored value is truthy (1/true/yes) or
a non-zero number. Grids start on Monday. The year view lays days out
by ISO week column and weekday row, like a contribution graph.

NAVIGATION:

  --back and --forward step the view by whole periods: months for the
  month view, weeks for the week view, years for the year view.

EXAMPLES:

  wellness calendar gym                    # This month
  wellness calendar meditation -p week     # This week
  wellness cal gym -p year                 # Year heatmap
  wellness cal gym --back 2                # Two months ago`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := args[0]
		period := stats.Period(calendarPeriod)
		if !period.Valid() {
			return fmt.Errorf("unknown period: %s (use week, month, or year)", calendarPeriod)
		}

		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		nav := calendar.CurrentNav(time.Now()).Step(period, calendarForward-calendarBack)
		fig := chart.Calendar(entries, metric, period, nav, "")
		renderCalendar(fig, period)
		return nil
	},
}

// renderCalendar prints a calendar figure as a character grid.
func renderCalendar(fig *chart.Figure, period stats.Period) {
	color.New(color.Bold).Println(fig.Title)

	if fig.Empty() {
		fmt.Println(fig.Annotation)
		return
	}

	rows := 0
	cols := 0
	grid := make(map[[2]int]chart.CellMark)
	for _, c := range fig.Cells {
		grid[[2]int{c.Row, c.Col}] = c
		if c.Row >= rows {
			rows = c.Row + 1
		}
		if c.Col >= cols {
			cols = c.Col + 1
		}
	}

	green := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	if period == stats.PeriodYear {
		// Contribution-graph layout: weekday rows, week columns.
		for r := 0; r < rows; r++ {
			fmt.Printf("%s ", calendar.DayNames[r])
			for c := 0; c < cols; c++ {
				cell, ok := grid[[2]int{r, c}]
				switch {
				case !ok:
					fmt.Print("  ")
				case cell.Active:
					green.Print("■ ")
				default:
					faint.Print("· ")
				}
			}
			fmt.Println()
		}
		return
	}

	for _, name := range calendar.DayNames {
		faint.Printf("%s ", name)
	}
	fmt.Println()
	for r := 0; r < rows; r++ {
		for c := 0; c < 7; c++ {
			cell, ok := grid[[2]int{r, c}]
			switch {
			case !ok:
				fmt.Print("    ")
			case cell.Active:
				green.Printf("%s  ", cell.Label)
			default:
				faint.Printf("%s  ", cell.Label)
			}
		}
		fmt.Println()
	}
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarPeriod, "period", "p", "month", "layout: week, month, or year")
	calendarCmd.Flags().IntVar(&calendarBack, "back", 0, "step back this many periods")
	calendarCmd.Flags().IntVar(&calendarForward, "forward", 0, "step forward this many periods")
	rootCmd.AddCommand(calendarCmd)
}
