// ABOUTME: Time-series figure construction over the windowed metric view.
// ABOUTME: One parameterized implementation; zoom and title are options.
package chart

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

// SeriesOptions tunes the time-series figure.
type SeriesOptions struct {
	// Title overrides the default "<metric> - Last <period>" heading.
	Title string
	// Zoom scales the padded y-range around its center: 1.0 is the
	// default, 0.5 is 2x zoomed in, 2.0 is 2x zoomed out. Zero means 1.0.
	Zoom float64
}

// TimeSeries builds the line/marker figure for one metric over the
// period's rolling window. Empty data yields an annotated placeholder
// figure, never an error.
func TimeSeries(entries []*models.Entry, metric string, period stats.Period, today time.Time, opts SeriesOptions) *Figure {
	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s - Last %s", metric, period)
	}

	series, err := stats.BuildSeries(entries, metric, period, today)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			return noData(title, fmt.Sprintf("No data for the last %s", period))
		}
		return noData(title, "No data available")
	}

	fig := &Figure{
		Title:  title,
		XLabel: "Date",
		YLabel: metric,
		Height: 400,
	}

	measured := Trace{Name: "Measured", Mode: "markers", Color: ColorMeasured}
	for _, m := range series.Measured {
		measured.Points = append(measured.Points, Point{X: m.Date, Y: m.Value})
	}

	line := Trace{Name: "Interpolated", Mode: "lines", Color: ColorInterpolated}
	for _, d := range series.Daily {
		if d.Known {
			line.Points = append(line.Points, Point{X: d.Date, Y: d.Value})
		}
	}
	fig.Traces = []Trace{measured, line}

	fig.Bands = weekendBands(series.Daily)
	fig.YRange = yRange(series, opts.Zoom)

	return fig
}

// yRange computes the padded, zoom-scaled y-axis range around the center
// of the measured values.
func yRange(s *stats.Series, zoom float64) *[2]float64 {
	lo, hi, ok := s.Range()
	if !ok {
		return nil
	}
	if zoom <= 0 {
		zoom = 1.0
	}

	span := hi - lo
	if span <= 0 {
		span = 1
	}
	center := (lo + hi) / 2
	padded := span * 1.2 // 10% of the span added on each side
	half := padded * zoom / 2

	return &[2]float64{center - half, center + half}
}

// weekendBands shades Saturdays and Sundays across the day sequence.
func weekendBands(days []stats.DayPoint) []Band {
	var bands []Band
	for _, d := range days {
		switch d.Date.Weekday() {
		case time.Saturday, time.Sunday:
			bands = append(bands, Band{
				From:  d.Date,
				To:    d.Date.AddDate(0, 0, 1),
				Color: ColorWeekendBand,
			})
		}
	}
	return bands
}
