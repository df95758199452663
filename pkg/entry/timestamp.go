package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the persisted form of an entry date: medium date, short time.
const DateLayout = "Jan 2, 2006 at 3:04 PM"

// ErrBadDate wraps every date string that cannot be parsed.
var ErrBadDate = errors.New("entry: unparsable date")

// ParseDate turns a stored date string into a time in loc. DateLayout is tried
// first, then RFC3339 for entries written by other tools.
func ParseDate(v string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrBadDate)
	}
	if t, err := time.ParseInLocation(DateLayout, v, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, v)
}

// FormatDate renders t in DateLayout using t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
