// Package calendar builds month grids for a 7-column calendar view.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/questnote/pkg/datekey"
)

const layoutMonth = "2006-01"

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d datekey.Day) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// ParseMonth reads a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(layoutMonth, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("parse month: %w", err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) First() datekey.Day {
	return datekey.Day{Year: m.Year, Month: m.Month, Day: 1}
}

func (m Month) Last() datekey.Day {
	return datekey.Day{Year: m.Year, Month: m.Month, Day: m.Days()}
}

// Days is the number of days in m.
func (m Month) Days() int {
	return DaysIn(m.Year, m.Month)
}

// Add moves m by n months.
func (m Month) Add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Next() Month { return m.Add(1) }
func (m Month) Prev() Month { return m.Add(-1) }

// Contains reports whether d falls in m.
func (m Month) Contains(d datekey.Day) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Key is the YYYY-MM form accepted by ParseMonth.
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// DaysIn returns the length of the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftMonths moves ref by n calendar months. The day of month is clamped to
// the length of the target month, so Jan 31 +1 is Feb 28 (or 29).
func ShiftMonths(ref datekey.Day, n int) datekey.Day {
	target := MonthOf(ref).Add(n)
	day := ref.Day
	if days := target.Days(); day > days {
		day = days
	}
	return datekey.Day{Year: target.Year, Month: target.Month, Day: day}
}

// ParseWeekday reads a weekday name such as "sunday" or "Mon".
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
