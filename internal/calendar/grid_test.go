// ABOUTME: Tests for calendar grid layouts.
// ABOUTME: Validates month positions, week columns, and year cell counts.
package calendar

import (
	"testing"
	"time"

	"github.com/harperreed/wellness/internal/models"
)

func TestMonthGridJune2024(t *testing.T) {
	// June 2024 starts on a Saturday and has 30 days.
	cells := MonthGrid(2024, time.June, nil)

	if len(cells) != 30 {
		t.Fatalf("len = %d, want 30", len(cells))
	}

	first := cells[0]
	if first.Row != 0 || first.Col != 5 {
		t.Errorf("June 1 at (%d,%d), want (0,5) Saturday", first.Row, first.Col)
	}

	// June 3 is the first Monday, opening the second row.
	third := cells[2]
	if third.Row != 1 || third.Col != 0 {
		t.Errorf("June 3 at (%d,%d), want (1,0)", third.Row, third.Col)
	}

	last := cells[29]
	if last.Row != 4 || last.Col != 6 {
		t.Errorf("June 30 at (%d,%d), want (4,6) Sunday", last.Row, last.Col)
	}
}

func TestMonthGridActivity(t *testing.T) {
	active := ActivityMap{"2024-06-03": true}
	cells := MonthGrid(2024, time.June, active)

	for _, c := range cells {
		want := c.Date.Day() == 3
		if c.Active != want {
			t.Errorf("day %d Active = %v, want %v", c.Date.Day(), c.Active, want)
		}
	}
}

func TestWeekGrid(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	cells := WeekGrid(monday, ActivityMap{"2024-06-12": true})

	if len(cells) != 7 {
		t.Fatalf("len = %d, want exactly 7", len(cells))
	}
	for i, c := range cells {
		if c.Col != i || c.Row != 0 {
			t.Errorf("cell %d at (%d,%d), want (0,%d)", i, c.Row, c.Col, i)
		}
	}
	if cells[0].Date.Weekday() != time.Monday {
		t.Errorf("first column = %s, want Monday", cells[0].Date.Weekday())
	}
	if !cells[2].Active {
		t.Error("Wednesday should be active")
	}
}

func TestWeekGridSnapsToMonday(t *testing.T) {
	thursday := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	cells := WeekGrid(thursday, nil)
	if cells[0].Date.Format(models.DateFormat) != "2024-06-10" {
		t.Errorf("week start = %s, want 2024-06-10", cells[0].Date.Format(models.DateFormat))
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-10", "2024-06-10"}, // Monday maps to itself
		{"2024-06-13", "2024-06-10"},
		{"2024-06-16", "2024-06-10"}, // Sunday belongs to the preceding Monday
		{"2024-01-01", "2024-01-01"},
	}
	for _, tt := range tests {
		in, _ := time.Parse(models.DateFormat, tt.in)
		if got := WeekStart(in).Format(models.DateFormat); got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestYearGridLeapYear(t *testing.T) {
	cells := YearGrid(2024, nil)
	if len(cells) != 366 {
		t.Errorf("2024 cells = %d, want 366", len(cells))
	}

	cells = YearGrid(2023, nil)
	if len(cells) != 365 {
		t.Errorf("2023 cells = %d, want 365", len(cells))
	}
}

func TestYearGridISOWeekColumns(t *testing.T) {
	cells := YearGrid(2024, nil)

	// 2024-01-01 is a Monday opening ISO week 1.
	if cells[0].Col != 1 || cells[0].Row != 0 {
		t.Errorf("Jan 1 at (row %d, col %d), want (0, 1)", cells[0].Row, cells[0].Col)
	}

	for _, c := range cells {
		if c.Row < 0 || c.Row > 6 {
			t.Errorf("%s row %d out of range", c.Date.Format(models.DateFormat), c.Row)
		}
		_, wantWeek := c.Date.ISOWeek()
		if c.Col != wantWeek {
			t.Errorf("%s col = %d, want ISO week %d", c.Date.Format(models.DateFormat), c.Col, wantWeek)
		}
	}
}

func TestActivities(t *testing.T) {
	mk := func(date, metric, val string) *models.Entry {
		e := models.NewEntry(date)
		if metric != "" {
			e.Set(metric, val)
		}
		return e
	}

	entries := []*models.Entry{
		mk("2024-06-10", "gym", "true"),
		mk("2024-06-11", "gym", "0"),
		mk("2024-06-12", "gym", "1"),
		mk("2024-06-13", "gym", "2.5"),
		mk("2024-06-14", "", ""),
	}

	am, found := Activities(entries, "gym")
	if !found {
		t.Fatal("Activities() found = false for a stored metric")
	}

	want := map[string]bool{
		"2024-06-10": true,
		"2024-06-11": false,
		"2024-06-12": true,
		"2024-06-13": true, // non-zero numeric counts
		"2024-06-14": false,
	}
	for date, w := range want {
		if am[date] != w {
			t.Errorf("am[%s] = %v, want %v", date, am[date], w)
		}
	}
}

func TestActivitiesMissingMetric(t *testing.T) {
	e := models.NewEntry("2024-06-10")
	e.Set("gym", "1")

	am, found := Activities([]*models.Entry{e}, "swimming")
	if found {
		t.Error("Activities() found = true for a metric no entry stores")
	}
	if am["2024-06-10"] {
		t.Error("missing metric should map dates to inactive")
	}
}

func TestRows(t *testing.T) {
	if got := Rows(MonthGrid(2024, time.June, nil)); got != 5 {
		t.Errorf("June 2024 rows = %d, want 5", got)
	}
	if got := Rows(WeekGrid(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), nil)); got != 1 {
		t.Errorf("week rows = %d, want 1", got)
	}
}
