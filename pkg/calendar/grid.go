package calendar

import (
	"time"

	"tableflip.dev/questnote/pkg/datekey"
)

// Cell is one slot of a month grid.
type Cell struct {
	Date           datekey.Day
	InCurrentMonth bool
}

// Builder produces month grids. The zero value starts weeks on Sunday.
type Builder struct {
	WeekStart time.Weekday
}

// Build returns the cells covering m, padded back to the start of the first
// week and forward to the end of the last week. The result is ascending,
// gapless, and its length is a multiple of 7.
func (b Builder) Build(m Month) []Cell {
	first := m.First()
	last := m.Last()

	start := first.AddDays(-b.offset(first.Weekday()))
	end := last.AddDays(6 - b.offset(last.Weekday()))

	cells := make([]Cell, 0, 42)
	for d := start; !end.Before(d); d = d.AddDays(1) {
		cells = append(cells, Cell{Date: d, InCurrentMonth: m.Contains(d)})
	}
	return cells
}

// Weekdays lists the column headers in display order.
func (b Builder) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = (b.start() + time.Weekday(i)) % 7
	}
	return out
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+6)/7)
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[i:end])
	}
	return rows
}

// offset is the column of wd relative to the week start.
func (b Builder) offset(wd time.Weekday) int {
	return (int(wd) - int(b.start()) + 7) % 7
}

func (b Builder) start() time.Weekday {
	if b.WeekStart < time.Sunday || b.WeekStart > time.Saturday {
		return time.Sunday
	}
	return b.WeekStart
}
