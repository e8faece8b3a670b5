// ABOUTME: Rolling-window series extraction with linear interpolation.
// ABOUTME: Filters entries by period lookback and fills interior day gaps.
package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
)

// Period selects the rolling lookback for the series view.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ErrNoData marks an empty view: nothing matched the requested window or
// metric. Callers detect it with errors.Is and render a "no data" state
// instead of failing.
var ErrNoData = errors.New("no data")

// LookbackDays returns the rolling window size in days.
// Unknown periods fall back to the month window.
func (p Period) LookbackDays() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// Valid reports whether p is a recognized period.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// SubjectiveAverageMetric is the derived metric name resolved through
// Entry.SubjectiveAverage instead of a stored column.
const SubjectiveAverageMetric = "subjective_average"

// Sample is one measured value on a calendar date.
type Sample struct {
	Date  time.Time
	Value float64
}

// DayPoint is one day of the complete daily sequence. Known days carry a
// measured or interpolated value; unknown days have no value at all.
type DayPoint struct {
	Date         time.Time
	Value        float64
	Known        bool
	Interpolated bool
}

// Series is the windowed view of one metric.
type Series struct {
	Metric   string
	Period   Period
	Measured []Sample   // actual samples, ascending by date
	Daily    []DayPoint // complete day sequence spanning the window's min/max
}

// metricValue extracts the metric from an entry, handling the derived
// subjective-average column. Returns false for missing or non-numeric values.
func metricValue(e *models.Entry, metric string) (float64, bool) {
	if metric == SubjectiveAverageMetric {
		v := e.SubjectiveAverage()
		if math.IsNaN(v) {
			return 0, false
		}
		return v, true
	}
	raw, ok := e.Get(metric)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// BuildSeries filters entries to the period's rolling lookback from today,
// sorts them ascending, and builds the complete daily sequence spanning the
// filtered min/max dates with linear interpolation of interior gaps. Values
// are never extrapolated beyond the first and last measured samples.
// Returns ErrNoData (wrapped) when the table is empty or nothing survives
// the window.
func BuildSeries(entries []*models.Entry, metric string, period Period, today time.Time) (*Series, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrNoData)
	}

	start := today.AddDate(0, 0, -period.LookbackDays())
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	// Filter to the window, keeping every row with a parseable date so the
	// day sequence spans the full min/max range even when the metric is
	// missing at the edges of it.
	type row struct {
		date  time.Time
		value float64
		known bool
	}
	var rows []row
	for _, e := range entries {
		d, err := time.Parse(models.DateFormat, e.Date)
		if err != nil {
			continue
		}
		if d.Before(startDay) {
			continue
		}
		v, ok := metricValue(e, metric)
		rows = append(rows, row{date: d, value: v, known: ok})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for the last %s", ErrNoData, period)
	}

	s := &Series{Metric: metric, Period: period}

	minDate, maxDate := rows[0].date, rows[0].date
	byDay := map[string]row{}
	for _, r := range rows {
		if r.date.Before(minDate) {
			minDate = r.date
		}
		if r.date.After(maxDate) {
			maxDate = r.date
		}
		// Last writer wins on duplicate dates; the store guarantees at
		// most one entry per date anyway.
		byDay[r.date.Format(models.DateFormat)] = r
	}

	// Complete daily sequence, left-joining the metric.
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		p := DayPoint{Date: d}
		if r, ok := byDay[d.Format(models.DateFormat)]; ok && r.known {
			p.Value = r.value
			p.Known = true
			s.Measured = append(s.Measured, Sample{Date: d, Value: r.value})
		}
		s.Daily = append(s.Daily, p)
	}
	if len(s.Measured) == 0 {
		return nil, fmt.Errorf("%w: no %s values in window", ErrNoData, metric)
	}

	interpolate(s.Daily)
	return s, nil
}

// interpolate fills gaps between measured days linearly. Days before the
// first or after the last measured sample stay unknown.
func interpolate(days []DayPoint) {
	prev := -1
	for i := range days {
		if !days[i].Known {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			span := float64(i - prev)
			step := (days[i].Value - days[prev].Value) / span
			for j := prev + 1; j < i; j++ {
				days[j].Value = days[prev].Value + step*float64(j-prev)
				days[j].Known = true
				days[j].Interpolated = true
			}
		}
		prev = i
	}
}

// Range returns the min and max of the measured values.
// Returns ok=false when the series has no measured samples.
func (s *Series) Range() (lo, hi float64, ok bool) {
	if len(s.Measured) == 0 {
		return 0, 0, false
	}
	lo, hi = s.Measured[0].Value, s.Measured[0].Value
	for _, m := range s.Measured[1:] {
		if m.Value < lo {
			lo = m.Value
		}
		if m.Value > hi {
			hi = m.Value
		}
	}
	return lo, hi, true
}
