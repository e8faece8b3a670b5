// ABOUTME: Calendar figure construction for week, month, and year grids.
// ABOUTME: Cells carry colors and hover text; layout comes from calendar.
package chart

import (
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/calendar"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

// dayTicks labels columns Mon..Sun for week and month layouts.
func dayTicks() []Tick {
	ticks := make([]Tick, 7)
	for i, name := range calendar.DayNames {
		ticks[i] = Tick{Pos: i, Label: name}
	}
	return ticks
}

func markCells(cells []calendar.Cell, labelDays bool) []CellMark {
	marks := make([]CellMark, len(cells))
	for i, c := range cells {
		m := CellMark{
			Row:    c.Row,
			Col:    c.Col,
			Active: c.Active,
			Date:   c.Date,
			Color:  ColorInactive,
		}
		if c.Active {
			m.Color = ColorActive
		}
		if labelDays {
			m.Label = fmt.Sprintf("%02d", c.Date.Day())
		}
		yes := "No"
		if c.Active {
			yes = "Yes"
		}
		m.Hover = fmt.Sprintf("%s: %s", c.Date.Format(models.DateFormat), yes)
		marks[i] = m
	}
	return marks
}

// Calendar builds the grid figure for one boolean metric at the given
// navigation anchor. An all-false activity map still renders a full grid
// of inactive cells; an empty table or a metric no entry stores yields
// the annotated placeholder instead.
func Calendar(entries []*models.Entry, metric string, period stats.Period, nav calendar.Nav, title string) *Figure {
	if title == "" {
		title = fmt.Sprintf("%s calendar", metric)
	}
	if len(entries) == 0 {
		return noData(title, "No data available")
	}

	active, found := calendar.Activities(entries, metric)
	if !found {
		return noData(title, "No data available")
	}

	fig := &Figure{
		Title:  fmt.Sprintf("%s - %s", title, nav.Title(period)),
		Height: 400,
	}

	switch period {
	case stats.PeriodWeek:
		fig.Cells = markCells(calendar.WeekGrid(nav.WeekStart, active), true)
		fig.XTicks = dayTicks()
		fig.Height = 250
	case stats.PeriodYear:
		fig.Cells = markCells(calendar.YearGrid(nav.Year, active), false)
		fig.XLabel = "Week Number"
		for _, wk := range []int{1, 13, 26, 39, 52} {
			fig.XTicks = append(fig.XTicks, Tick{Pos: wk, Label: fmt.Sprintf("%d", wk)})
		}
		for i, name := range calendar.DayNames {
			fig.YTicks = append(fig.YTicks, Tick{Pos: i, Label: name})
		}
		fig.Height = 500
	default:
		fig.Cells = markCells(calendar.MonthGrid(nav.Year, nav.Month, active), true)
		fig.XTicks = dayTicks()
	}

	return fig
}

// CalendarMonth is a convenience wrapper for the month view.
func CalendarMonth(entries []*models.Entry, metric string, year int, month time.Month, title string) *Figure {
	nav := calendar.Nav{Year: year, Month: month}
	return Calendar(entries, metric, stats.PeriodMonth, nav, title)
}

// CalendarWeek is a convenience wrapper for the week view anchored at
// the Monday of the week containing anchor.
func CalendarWeek(entries []*models.Entry, metric string, anchor time.Time, title string) *Figure {
	nav := calendar.Nav{WeekStart: calendar.WeekStart(anchor)}
	return Calendar(entries, metric, stats.PeriodWeek, nav, title)
}

// CalendarYear is a convenience wrapper for the year heatmap view.
func CalendarYear(entries []*models.Entry, metric string, year int, title string) *Figure {
	nav := calendar.Nav{Year: year}
	return Calendar(entries, metric, stats.PeriodYear, nav, title)
}
