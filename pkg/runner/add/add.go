package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/entry"
	"tableflip.dev/questnote/pkg/printers"
)

type Add struct {
	Game string
	Text string

	// Accomplished and Goal build a session-style body when Text is empty.
	Accomplished string
	Goal         string

	ShowID  bool
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	text := n.Text
	if text == "" {
		var err error
		if text, err = entry.SessionText(n.Accomplished, n.Goal); err != nil {
			return err
		}
	}

	e, err := n.Service.AddEntry(n.Game, text)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	all := n.Service.EntriesForGame(e.Game)
	pp.TitleWithCount(e.Game, len(all))
	pp.Entries(all...)
	return nil
}
