package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/questnote/pkg/datekey"
)

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	OutsideStyle  lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
	ShowOutside   bool

	Today    datekey.Day
	Selected datekey.Day
}

// DefaultOptions marks entry days bold, today underlined, the selection reversed.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Faint(true),
		EmptyStyle:    lipgloss.NewStyle(),
		OutsideStyle:  lipgloss.NewStyle().Faint(true),
		EntryStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
}

// Render produces a multi-line calendar string for a grid built by b.
// marked may be nil.
func (b Builder) Render(cells []Cell, marked func(datekey.Day) bool, opts Options) string {
	if len(cells) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		var names []string
		for _, wd := range b.Weekdays() {
			names = append(names, weekdayAbbrev(wd))
		}
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(names, " ")))
	}

	for _, week := range Weeks(cells) {
		parts := make([]string, 0, len(week))
		for _, c := range week {
			parts = append(parts, renderCell(c, marked, opts))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, marked func(datekey.Day) bool, opts Options) string {
	if !c.InCurrentMonth {
		if !opts.ShowOutside {
			return opts.EmptyStyle.Render("  ")
		}
		return opts.OutsideStyle.Render(fmt.Sprintf("%2d", c.Date.Day))
	}

	style := opts.EmptyStyle
	if marked != nil && marked(c.Date) {
		style = opts.EntryStyle
	}
	if !opts.Today.IsZero() && c.Date == opts.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if !opts.Selected.IsZero() && c.Date == opts.Selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", c.Date.Day))
}

func weekdayAbbrev(wd time.Weekday) string {
	return wd.String()[:2]
}
