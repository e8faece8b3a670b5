// ABOUTME: Calendar navigation state stepped one unit per call.
// ABOUTME: Explicit value type threaded through view calls, no globals.
package calendar

import (
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/stats"
)

// Nav is the calendar view anchor: which year, month, and week the grid
// views currently point at. It is an explicit parameter so the layout
// functions stay pure and testable.
type Nav struct {
	Year      int
	Month     time.Month
	WeekStart time.Time
}

// CurrentNav anchors navigation at today's year, month, and week.
func CurrentNav(today time.Time) Nav {
	return Nav{
		Year:      today.Year(),
		Month:     today.Month(),
		WeekStart: WeekStart(today),
	}
}

// Prev steps the anchor backward by one unit of the period: one month
// (wrapping January to December of the previous year), seven days, or
// one year.
func (n Nav) Prev(p stats.Period) Nav {
	switch p {
	case stats.PeriodMonth:
		if n.Month == time.January {
			n.Month = time.December
			n.Year--
		} else {
			n.Month--
		}
	case stats.PeriodWeek:
		n.WeekStart = n.WeekStart.AddDate(0, 0, -7)
	case stats.PeriodYear:
		n.Year--
	}
	return n
}

// Next steps the anchor forward by one unit of the period, wrapping
// December to January of the following year.
func (n Nav) Next(p stats.Period) Nav {
	switch p {
	case stats.PeriodMonth:
		if n.Month == time.December {
			n.Month = time.January
			n.Year++
		} else {
			n.Month++
		}
	case stats.PeriodWeek:
		n.WeekStart = n.WeekStart.AddDate(0, 0, 7)
	case stats.PeriodYear:
		n.Year++
	}
	return n
}

// Step applies delta navigation units (negative steps backward).
func (n Nav) Step(p stats.Period, delta int) Nav {
	for ; delta > 0; delta-- {
		n = n.Next(p)
	}
	for ; delta < 0; delta++ {
		n = n.Prev(p)
	}
	return n
}

// Title renders the period heading for the current anchor, e.g.
// "June 2024", "Week 24 2024", or "2024".
func (n Nav) Title(p stats.Period) string {
	switch p {
	case stats.PeriodWeek:
		year, week := n.WeekStart.ISOWeek()
		return fmt.Sprintf("Week %d %d", week, year)
	case stats.PeriodYear:
		return fmt.Sprintf("%d", n.Year)
	default:
		return fmt.Sprintf("%s %d", n.Month, n.Year)
	}
}
