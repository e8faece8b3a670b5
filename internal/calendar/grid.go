// ABOUTME: Calendar grid layout for week, month, and year activity views.
// ABOUTME: Emits cells with (row, column) positions and activity booleans.
package calendar

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
)

// DayNames are the column labels for Monday-start layouts.
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Cell is one day in a calendar grid.
type Cell struct {
	Date   time.Time
	Row    int
	Col    int
	Active bool
}

// ActivityMap records whether each date (YYYY-MM-DD) counts as active.
type ActivityMap map[string]bool

// Active reports the activity flag for a date, defaulting to false.
func (m ActivityMap) Active(d time.Time) bool {
	return m[d.Format(models.DateFormat)]
}

// Activities builds the activity map for a metric across entries.
// Boolean spellings and non-zero numeric values both count as active.
// The second return reports whether any entry stores the metric at all,
// so callers can tell an unknown metric from an all-inactive one.
func Activities(entries []*models.Entry, metric string) (ActivityMap, bool) {
	am := ActivityMap{}
	found := false
	for _, e := range entries {
		if !models.ValidDate(e.Date) {
			continue
		}
		raw, ok := e.Get(metric)
		if !ok {
			am[e.Date] = false
			continue
		}
		found = true
		am[e.Date] = activityTruthy(raw)
	}
	return am, found
}

func activityTruthy(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "true", "1", "yes":
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && f != 0
}

// mondayIndex maps time.Weekday onto Monday-start columns (Mon=0 .. Sun=6).
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// WeekStart returns the Monday of the week containing t, at midnight.
func WeekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -mondayIndex(d.Weekday()))
}

// MonthGrid lays out a Monday-start month: one cell per day-of-month at
// (Row = week-of-month, Col = weekday).
func MonthGrid(year int, month time.Month, active ActivityMap) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := mondayIndex(first.Weekday())
	daysIn := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, daysIn)
	for day := 1; day <= daysIn; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		slot := offset + day - 1
		cells = append(cells, Cell{
			Date:   d,
			Row:    slot / 7,
			Col:    slot % 7,
			Active: active.Active(d),
		})
	}
	return cells
}

// WeekGrid lays out exactly 7 cells for the week starting at monday,
// columns 0..6 = Mon..Sun. The anchor is snapped to its Monday first.
func WeekGrid(monday time.Time, active ActivityMap) []Cell {
	start := WeekStart(monday)
	cells := make([]Cell, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		cells[i] = Cell{Date: d, Row: 0, Col: i, Active: active.Active(d)}
	}
	return cells
}

// YearGrid lays out one cell per day of the year at
// (Col = ISO week number, Row = weekday), suitable for a heatmap.
func YearGrid(year int, active ActivityMap) []Cell {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var cells []Cell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		_, week := d.ISOWeek()
		cells = append(cells, Cell{
			Date:   d,
			Row:    mondayIndex(d.Weekday()),
			Col:    week,
			Active: active.Active(d),
		})
	}
	return cells
}

// Rows returns the number of rows a grid occupies.
func Rows(cells []Cell) int {
	max := 0
	for _, c := range cells {
		if c.Row > max {
			max = c.Row
		}
	}
	return max + 1
}
