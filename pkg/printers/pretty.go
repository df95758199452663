package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("8e3a5f1c-8d5b-4b36-9b1e-2f0c7a4d9e61  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Games lists game names with their entry counts.
func (pp *PrettyPrint) Games(names []string, counts map[string]int) {
	pp.Title("Games")
	if len(names) == 0 {
		pp.none()
		return
	}
	t := color.New()
	c := color.New(color.Faint)
	for _, n := range names {
		_, _ = t.Fprintf(pp.out(), "  %s", n)
		_, _ = c.Fprintf(pp.out(), " (%d)\n", counts[n])
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Entries prints full entry bodies under their dates.
func (pp *PrettyPrint) Entries(entries ...entry.DiaryEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	d := color.New(color.Bold)
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), e.ID)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(1, len(spacing)-len(e.ID))))
		}
		_, _ = d.Fprint(pp.out(), e.Date)
		if e.Game != "" {
			_, _ = y.Fprintf(pp.out(), "  %s", e.Game)
		}
		_, _ = t.Fprintln(pp.out(), "")
		_, _ = t.Fprintln(pp.out(), indent.String(strings.TrimRight(e.Text, "\n"), 4))
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Report prints the sessions of a report window grouped by game.
func (pp *PrettyPrint) Report(res app.ReportResult) {
	h := color.New(color.Faint)
	_, _ = h.Fprintf(pp.out(), "%s - %s\n\n",
		entry.FormatDate(res.Since), entry.FormatDate(res.Until))

	if len(res.Sections) == 0 {
		pp.none()
		return
	}
	for _, sec := range res.Sections {
		pp.TitleWithCount(sec.Game, len(sec.Entries))
		pp.Entries(sec.Entries...)
	}
}
