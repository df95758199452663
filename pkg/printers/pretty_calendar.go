package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the grid of view. Days with entries are bold, today is
// underlined, days of the neighbouring months are left blank.
func (pp *PrettyPrint) Month(b calendar.Builder, view app.MonthView, today datekey.Day) {
	tf := color.New(color.FgWhite, color.Italic)

	m := view.Month.String()
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)

	h := color.New(color.Faint)
	var names []string
	for _, wd := range b.Weekdays() {
		names = append(names, wd.String()[:2])
	}
	_, _ = h.Fprintln(pp.out(), strings.Join(names, " "))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	l3 := color.New(color.Bold, color.FgHiWhite, color.Underline)
	lt := color.New(color.Underline)

	for _, week := range calendar.Weeks(view.Cells) {
		for i, c := range week {
			if i > 0 {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
			if !c.InCurrentMonth {
				_, _ = fmt.Fprint(pp.out(), "  ")
				continue
			}
			printer := l1
			switch {
			case view.Marked(c.Date) && c.Date == today:
				printer = l3
			case view.Marked(c.Date):
				printer = l2
			case c.Date == today:
				printer = lt
			}
			_, _ = printer.Fprintf(pp.out(), "%2d", c.Date.Day)
		}
		_, _ = fmt.Fprint(pp.out(), "\n")
	}
	_, _ = fmt.Fprint(pp.out(), "\n")
}

// MonthLong prints every day of m on its own line followed by the entries
// recorded that day.
func (pp *PrettyPrint) MonthLong(m calendar.Month, today datekey.Day, entriesOn func(datekey.Day) []entry.DiaryEntry) {
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)
	g := color.New(color.FgHiYellow, color.Faint)

	pp.Title(m.String())
	for d := m.First(); m.Contains(d); d = d.AddDays(1) {
		printer := p
		if d == today {
			printer = b
		}
		if d.Weekday() == time.Sunday {
			printer = s
			if d == today {
				printer = bs
			}
		}
		_, _ = printer.Fprintf(pp.out(), "%2d %s", d.Day, d.Weekday().String()[0:1])

		found := false
		for _, e := range entriesOn(d) {
			if found {
				_, _ = p.Fprint(pp.out(), "      ")
			} else {
				_, _ = p.Fprint(pp.out(), "  ")
			}
			found = true
			_, _ = g.Fprintf(pp.out(), "%s ", e.Game)
			_, _, text := e.Row()
			_, _ = p.Fprintln(pp.out(), text)
		}
		if !found {
			_, _ = p.Fprintln(pp.out(), "")
		}
	}
	_, _ = p.Fprintln(pp.out(), "")
}
