package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/questnote/pkg/datekey"
)

func allWeekStarts() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

func TestBuildShapeForEveryMonth(t *testing.T) {
	for _, ws := range allWeekStarts() {
		b := Builder{WeekStart: ws}
		for m := (Month{Year: 2023, Month: time.January}); m.Year < 2026; m = m.Next() {
			cells := b.Build(m)

			require.NotEmpty(t, cells, "%s start %s", m, ws)
			require.Zero(t, len(cells)%7, "%s start %s: %d cells", m, ws, len(cells))
			require.LessOrEqual(t, len(cells), 42)
			require.Equal(t, ws, cells[0].Date.Weekday(), "%s first column", m)

			seen := make(map[int]int)
			for i, c := range cells {
				if i > 0 {
					require.Equal(t, cells[i-1].Date.AddDays(1), c.Date, "%s gap at %d", m, i)
				}
				require.Equal(t, m.Contains(c.Date), c.InCurrentMonth)
				if c.InCurrentMonth {
					seen[c.Date.Day]++
				}
			}
			require.Len(t, seen, m.Days(), "%s in-month days", m)
			for day, n := range seen {
				require.Equal(t, 1, n, "%s day %d", m, day)
			}
		}
	}
}

func TestBuildJune2025(t *testing.T) {
	// June 1 2025 is a Sunday and June 30 a Monday.
	cells := Builder{}.Build(Month{Year: 2025, Month: time.June})
	require.Len(t, cells, 35)
	assert.Equal(t, datekey.Day{Year: 2025, Month: time.June, Day: 1}, cells[0].Date)
	assert.Equal(t, datekey.Day{Year: 2025, Month: time.July, Day: 5}, cells[len(cells)-1].Date)
	assert.False(t, cells[len(cells)-1].InCurrentMonth)

	monday := Builder{WeekStart: time.Monday}.Build(Month{Year: 2025, Month: time.June})
	require.Len(t, monday, 42)
	assert.Equal(t, datekey.Day{Year: 2025, Month: time.May, Day: 26}, monday[0].Date)
	assert.Equal(t, datekey.Day{Year: 2025, Month: time.July, Day: 6}, monday[len(monday)-1].Date)
}

func TestBuildFebruaryFourWeeks(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days.
	cells := Builder{}.Build(Month{Year: 2026, Month: time.February})
	assert.Len(t, cells, 28)
	for _, c := range cells {
		assert.True(t, c.InCurrentMonth)
	}
}

func TestMonthRoundTrip(t *testing.T) {
	b := Builder{}
	for m := (Month{Year: 2024, Month: time.January}); m.Year < 2025; m = m.Next() {
		assert.Equal(t, b.Build(m), b.Build(m.Next().Prev()))
		assert.Equal(t, m, m.Prev().Next())
	}
	assert.Equal(t, Month{Year: 2025, Month: time.January}, Month{Year: 2024, Month: time.December}.Next())
	assert.Equal(t, Month{Year: 2023, Month: time.December}, Month{Year: 2024, Month: time.January}.Prev())
}

func TestShiftMonthsClamps(t *testing.T) {
	cases := []struct {
		ref  datekey.Day
		n    int
		want datekey.Day
	}{
		{datekey.Day{Year: 2025, Month: time.January, Day: 31}, 1, datekey.Day{Year: 2025, Month: time.February, Day: 28}},
		{datekey.Day{Year: 2024, Month: time.January, Day: 31}, 1, datekey.Day{Year: 2024, Month: time.February, Day: 29}},
		{datekey.Day{Year: 2025, Month: time.March, Day: 31}, -1, datekey.Day{Year: 2025, Month: time.February, Day: 28}},
		{datekey.Day{Year: 2025, Month: time.December, Day: 15}, 1, datekey.Day{Year: 2026, Month: time.January, Day: 15}},
		{datekey.Day{Year: 2025, Month: time.May, Day: 31}, 1, datekey.Day{Year: 2025, Month: time.June, Day: 30}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShiftMonths(tc.ref, tc.n), "%s %+d", tc.ref, tc.n)
	}

	// Round trips keep the month but not a clamped day.
	jan31 := datekey.Day{Year: 2025, Month: time.January, Day: 31}
	back := ShiftMonths(ShiftMonths(jan31, 1), -1)
	assert.Equal(t, MonthOf(jan31), MonthOf(back))
	assert.Equal(t, 28, back.Day)
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"":        time.Sunday,
		"sunday":  time.Sunday,
		"Monday":  time.Monday,
		" sat ":   time.Saturday,
		"THU":     time.Thursday,
	} {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseWeekday("someday")
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2025, Month: time.June}, m)
	assert.Equal(t, "June 2025", m.String())
	assert.Equal(t, "2025-06", m.Key())

	_, err = ParseMonth("June")
	assert.Error(t, err)
}

func TestWeekdaysFollowStart(t *testing.T) {
	assert.Equal(t, time.Monday, Builder{WeekStart: time.Monday}.Weekdays()[0])
	assert.Equal(t, time.Sunday, Builder{WeekStart: time.Monday}.Weekdays()[6])
	assert.Equal(t, time.Sunday, Builder{WeekStart: time.Weekday(9)}.Weekdays()[0])
}

func TestRenderListsDays(t *testing.T) {
	b := Builder{WeekStart: time.Monday}
	m := Month{Year: 2025, Month: time.June}
	marked := datekey.Day{Year: 2025, Month: time.June, Day: 1}

	out := b.Render(b.Build(m), func(d datekey.Day) bool { return d == marked }, DefaultOptions())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 1+6)
	assert.Contains(t, lines[0], "Mo Tu We Th Fr Sa Su")
	assert.Contains(t, out, "30")
	assert.NotContains(t, lines[1], "26", "out-of-month days are hidden by default")
}
