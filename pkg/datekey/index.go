package datekey

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/questnote/pkg/entry"
)

// Index is the set of days that have at least one entry.
type Index struct {
	days    map[Day]struct{}
	skipped []string
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger *zap.Logger
}

// WithLogger reports entries whose date cannot be parsed.
func WithLogger(l *zap.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build derives the day set from entries. Each timestamp is truncated to its
// day in loc. Entries with unparsable dates are left out of the set, logged,
// and listed by Skipped.
func Build(entries []entry.DiaryEntry, loc *time.Location, opts ...Option) *Index {
	o := buildOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{days: make(map[Day]struct{}, len(entries))}
	for _, e := range entries {
		t, err := entry.ParseDate(e.Date, loc)
		if err != nil {
			idx.skipped = append(idx.skipped, e.ID)
			o.logger.Warn("excluding entry with malformed date from calendar",
				zap.String("id", e.ID),
				zap.String("game", e.Game),
				zap.String("date", e.Date),
				zap.Error(err))
			continue
		}
		idx.days[DayOf(t, loc)] = struct{}{}
	}
	return idx
}

// HasEntry reports whether day has at least one entry.
func (i *Index) HasEntry(day Day) bool {
	if i == nil {
		return false
	}
	_, ok := i.days[day]
	return ok
}

func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.days)
}

// Days returns the indexed days in ascending order.
func (i *Index) Days() []Day {
	if i == nil {
		return nil
	}
	out := make([]Day, 0, len(i.days))
	for d := range i.days {
		out = append(out, d)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Before(out[b]) })
	return out
}

// Skipped lists the IDs of entries excluded for a malformed date.
func (i *Index) Skipped() []string {
	if i == nil {
		return nil
	}
	return append([]string(nil), i.skipped...)
}
