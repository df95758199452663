package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/questnote/pkg/entry"
)

func at(y int, m time.Month, d, hh, mm int) string {
	return entry.FormatDate(time.Date(y, m, d, hh, mm, 0, 0, time.UTC))
}

func TestBuildCollapsesSameDay(t *testing.T) {
	entries := []entry.DiaryEntry{
		{ID: "a", Game: "Zelda", Date: at(2025, time.January, 5, 9, 0)},
		{ID: "b", Game: "Zelda", Date: at(2025, time.January, 5, 22, 15)},
		{ID: "c", Game: "Hades", Date: at(2025, time.January, 6, 8, 0)},
	}

	idx := Build(entries, time.UTC)

	require.Equal(t, 2, idx.Len())
	assert.True(t, idx.HasEntry(Day{2025, time.January, 5}))
	assert.True(t, idx.HasEntry(Day{2025, time.January, 6}))
	assert.False(t, idx.HasEntry(Day{2025, time.January, 7}))
	assert.Equal(t, []Day{{2025, time.January, 5}, {2025, time.January, 6}}, idx.Days())
}

func TestBuildUsesLocation(t *testing.T) {
	// 23:30 UTC on Jan 5 is already Jan 6 two hours east.
	east := time.FixedZone("east", 2*3600)
	entries := []entry.DiaryEntry{
		{ID: "a", Date: "2025-01-05T23:30:00Z"},
	}

	idx := Build(entries, east)
	assert.True(t, idx.HasEntry(Day{2025, time.January, 6}))
	assert.False(t, idx.HasEntry(Day{2025, time.January, 5}))
}

func TestBuildLogsMalformedDates(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	entries := []entry.DiaryEntry{
		{ID: "good", Date: at(2025, time.March, 1, 12, 0)},
		{ID: "bad", Game: "Celeste", Date: "not a date"},
	}

	idx := Build(entries, time.UTC, WithLogger(zap.New(core)))

	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, []string{"bad"}, idx.Skipped())
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "bad", fields["id"])
	assert.Equal(t, "not a date", fields["date"])
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	assert.False(t, idx.HasEntry(Day{2025, time.January, 1}))
	assert.Zero(t, idx.Len())
	assert.Empty(t, idx.Days())
}

func TestDayArithmetic(t *testing.T) {
	d := Day{2024, time.February, 28}
	assert.Equal(t, Day{2024, time.February, 29}, d.AddDays(1))
	assert.Equal(t, Day{2024, time.March, 1}, d.AddDays(2))
	assert.Equal(t, Day{2023, time.December, 31}, Day{2024, time.January, 1}.AddDays(-1))
	assert.Equal(t, time.Thursday, Day{2024, time.February, 29}.Weekday())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.Equal(t, 0, d.Compare(d))
	assert.Equal(t, "2024-02-28", d.String())

	parsed, err := ParseDay("2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDay("28/02/2024")
	assert.Error(t, err)
}
