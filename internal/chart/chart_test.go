// ABOUTME: Tests for figure construction from entries.
// ABOUTME: Covers no-data placeholders, zoom ranges, and calendar cells.
package chart

import (
	"testing"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

var today = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func entryOn(date string, fields map[string]string) *models.Entry {
	e := models.NewEntry(date)
	for k, v := range fields {
		e.Set(k, v)
	}
	return e
}

func TestTimeSeriesNoData(t *testing.T) {
	fig := TimeSeries(nil, "hrv", stats.PeriodWeek, today, SeriesOptions{})
	if !fig.Empty() {
		t.Fatal("empty table should yield an annotated figure")
	}
	if fig.Annotation != "No data for the last week" {
		t.Errorf("Annotation = %q", fig.Annotation)
	}
	if len(fig.Traces) != 0 {
		t.Error("placeholder figure must carry no traces")
	}
}

func TestTimeSeriesTraces(t *testing.T) {
	entries := []*models.Entry{
		entryOn("2024-06-10", map[string]string{"hrv": "10"}),
		entryOn("2024-06-14", map[string]string{"hrv": "20"}),
	}

	fig := TimeSeries(entries, "hrv", stats.PeriodWeek, today, SeriesOptions{})
	if fig.Empty() {
		t.Fatalf("unexpected empty figure: %s", fig.Annotation)
	}
	if len(fig.Traces) != 2 {
		t.Fatalf("traces = %d, want measured + interpolated", len(fig.Traces))
	}

	measured, line := fig.Traces[0], fig.Traces[1]
	if measured.Mode != "markers" || len(measured.Points) != 2 {
		t.Errorf("measured trace = %s/%d points", measured.Mode, len(measured.Points))
	}
	if line.Mode != "lines" || len(line.Points) != 5 {
		t.Errorf("line trace = %s/%d points, want 5 daily points", line.Mode, len(line.Points))
	}
	if line.Points[2].Y != 15.0 {
		t.Errorf("interpolated midpoint = %v, want 15.0", line.Points[2].Y)
	}
}

func TestTimeSeriesWeekendBands(t *testing.T) {
	entries := []*models.Entry{
		entryOn("2024-06-10", map[string]string{"hrv": "10"}), // Monday
		entryOn("2024-06-16", map[string]string{"hrv": "20"}), // Sunday
	}

	fig := TimeSeries(entries, "hrv", stats.PeriodWeek, today, SeriesOptions{})
	// Window covers Mon 10th .. Sun 16th: Saturday 15th and Sunday 16th.
	if len(fig.Bands) != 2 {
		t.Errorf("bands = %d, want 2 weekend days", len(fig.Bands))
	}
}

func TestTimeSeriesZoomRange(t *testing.T) {
	entries := []*models.Entry{
		entryOn("2024-06-10", map[string]string{"hrv": "10"}),
		entryOn("2024-06-14", map[string]string{"hrv": "20"}),
	}

	def := TimeSeries(entries, "hrv", stats.PeriodWeek, today, SeriesOptions{})
	if def.YRange == nil {
		t.Fatal("expected a y-range")
	}
	// span 10, padded 12, centered at 15 -> [9, 21].
	if def.YRange[0] != 9 || def.YRange[1] != 21 {
		t.Errorf("default range = %v, want [9 21]", *def.YRange)
	}

	out := TimeSeries(entries, "hrv", stats.PeriodWeek, today, SeriesOptions{Zoom: 2.0})
	if out.YRange[0] != 3 || out.YRange[1] != 27 {
		t.Errorf("zoomed-out range = %v, want [3 27]", *out.YRange)
	}

	in := TimeSeries(entries, "hrv", stats.PeriodWeek, today, SeriesOptions{Zoom: 0.5})
	if in.YRange[0] != 12 || in.YRange[1] != 18 {
		t.Errorf("zoomed-in range = %v, want [12 18]", *in.YRange)
	}
}

func TestCalendarMonthFigure(t *testing.T) {
	entries := []*models.Entry{
		entryOn("2024-06-03", map[string]string{"gym": "1"}),
		entryOn("2024-06-04", map[string]string{"gym": "0"}),
	}

	fig := CalendarMonth(entries, "gym", 2024, time.June, "Gym")
	if fig.Empty() {
		t.Fatalf("unexpected empty figure: %s", fig.Annotation)
	}
	if len(fig.Cells) != 30 {
		t.Fatalf("cells = %d, want 30", len(fig.Cells))
	}

	var active, inactive int
	for _, c := range fig.Cells {
		if c.Active {
			active++
			if c.Color != ColorActive {
				t.Errorf("active cell color = %s", c.Color)
			}
		} else {
			inactive++
			if c.Color != ColorInactive {
				t.Errorf("inactive cell color = %s", c.Color)
			}
		}
	}
	if active != 1 || inactive != 29 {
		t.Errorf("active/inactive = %d/%d, want 1/29", active, inactive)
	}
	if fig.Title != "Gym - June 2024" {
		t.Errorf("Title = %q", fig.Title)
	}
}

func TestCalendarWeekFigure(t *testing.T) {
	entries := []*models.Entry{
		entryOn("2024-06-12", map[string]string{"meditation": "true"}),
	}

	fig := CalendarWeek(entries, "meditation", time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), "")
	if len(fig.Cells) != 7 {
		t.Fatalf("cells = %d, want 7", len(fig.Cells))
	}
	if !fig.Cells[2].Active {
		t.Error("Wednesday cell should be active")
	}
	if len(fig.XTicks) != 7 || fig.XTicks[0].Label != "Mon" {
		t.Errorf("x ticks = %v", fig.XTicks)
	}
}

func TestCalendarYearFigure(t *testing.T) {
	entries := []*models.Entry{
		entryOn("2024-02-29", map[string]string{"gym": "yes"}),
	}

	fig := CalendarYear(entries, "gym", 2024, "")
	if len(fig.Cells) != 366 {
		t.Fatalf("cells = %d, want 366 for the leap year", len(fig.Cells))
	}

	var leapDay *CellMark
	for i := range fig.Cells {
		if fig.Cells[i].Date.Month() == time.February && fig.Cells[i].Date.Day() == 29 {
			leapDay = &fig.Cells[i]
		}
	}
	if leapDay == nil || !leapDay.Active {
		t.Error("leap day cell should exist and be active")
	}
}

func TestCalendarEmptyTable(t *testing.T) {
	fig := CalendarMonth(nil, "gym", 2024, time.June, "")
	if !fig.Empty() {
		t.Error("empty table should yield an annotated figure")
	}
	if fig.Annotation != "No data available" {
		t.Errorf("Annotation = %q", fig.Annotation)
	}
}

func TestCalendarMissingMetric(t *testing.T) {
	e := models.NewEntry("2024-06-10")
	e.Set("gym", "1")

	fig := CalendarMonth([]*models.Entry{e}, "swimming", 2024, time.June, "")
	if !fig.Empty() {
		t.Errorf("metric no entry stores should yield an annotated figure, got %d cells", len(fig.Cells))
	}
	if fig.Annotation != "No data available" {
		t.Errorf("Annotation = %q", fig.Annotation)
	}
}
