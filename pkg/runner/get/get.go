package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/entry"
	"tableflip.dev/questnote/pkg/printers"
)

type Get struct {
	ShowID bool
	Game   string
	// Day limits the listing to one day, as 2006-01-02.
	Day string
	// Table prints one aligned row per entry instead of grouped bodies.
	Table bool

	Service *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()

	if n.Day != "" {
		day, err := datekey.ParseDay(n.Day)
		if err != nil {
			return err
		}
		all := n.Filter(n.Service.EntriesOn(day))
		n.print(pp, day.String(), all)
		return nil
	}

	if n.Game != "" {
		n.print(pp, n.Game, n.Service.EntriesForGame(n.Game))
		return nil
	}

	if n.Table {
		entry.PrettyPrintTable(n.Out, n.Service.Entries()...)
		return nil
	}
	for _, g := range n.Service.Games() {
		n.print(pp, g, n.Service.EntriesForGame(g))
	}
	return nil
}

func (n *Get) print(pp printers.PrettyPrint, title string, all []entry.DiaryEntry) {
	if n.Table {
		entry.PrettyPrintTable(n.Out, all...)
		return
	}
	pp.TitleWithCount(title, len(all))
	pp.Entries(all...)
}

// Filter keeps the entries of Game, or all of them when Game is empty.
func (n *Get) Filter(all []entry.DiaryEntry) []entry.DiaryEntry {
	if n.Game == "" {
		return all
	}
	c := make([]entry.DiaryEntry, 0, len(all))
	for _, a := range all {
		if a.Game == n.Game {
			c = append(c, a)
		}
	}
	return c
}
