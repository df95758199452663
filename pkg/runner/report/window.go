package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultWindow is used when no --last value is given.
const DefaultWindow = "1w"

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var windowUnits = map[string]time.Duration{
	"w": week, "wk": week, "week": week, "weeks": week,
	"d": day, "day": day, "days": day,
	"h": time.Hour, "hr": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"m": time.Minute, "min": time.Minute, "minute": time.Minute, "minutes": time.Minute,
}

// ParseWindow reads spans such as "3d", "1w2d" or "36h" and returns the
// duration together with its compact label.
func ParseWindow(s string) (time.Duration, string, error) {
	v := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if v == "" {
		v = DefaultWindow
	}

	var total time.Duration
	for v != "" {
		digits := strings.IndexFunc(v, func(r rune) bool { return !unicode.IsDigit(r) })
		if digits <= 0 {
			return 0, "", fmt.Errorf("invalid window %q: expected a number", s)
		}
		n, err := strconv.Atoi(v[:digits])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window %q: %w", s, err)
		}
		v = v[digits:]

		unitEnd := strings.IndexFunc(v, unicode.IsDigit)
		if unitEnd < 0 {
			unitEnd = len(v)
		}
		unit, ok := windowUnits[v[:unitEnd]]
		if !ok {
			return 0, "", fmt.Errorf("invalid window %q: unknown unit %q", s, v[:unitEnd])
		}
		v = v[unitEnd:]
		if time.Duration(n) > (math.MaxInt64-total)/unit {
			return 0, "", fmt.Errorf("invalid window %q: too large", s)
		}
		total += time.Duration(n) * unit
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("invalid window %q: must be positive", s)
	}
	return total, FormatWindow(total), nil
}

// FormatWindow is the inverse of ParseWindow, down to the minute.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range []struct {
		label string
		size  time.Duration
	}{{"w", week}, {"d", day}, {"h", time.Hour}, {"m", time.Minute}} {
		if n := d / u.size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.label)
			d -= n * u.size
		}
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}
