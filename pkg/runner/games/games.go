package games

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/printers"
)

// Games lists the known games, most recently played first.
type Games struct {
	Service *app.Service
	Out     io.Writer
}

func (n *Games) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list games, no service")
	}
	names := n.Service.Games()
	counts := make(map[string]int, len(names))
	for _, e := range n.Service.Entries() {
		counts[e.Game]++
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Games(names, counts)
	return nil
}

// Add records a new game.
type Add struct {
	Name    string
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add game, no service")
	}
	added, err := n.Service.AddGame(n.Name)
	if err != nil {
		return err
	}
	if !added {
		_, _ = fmt.Fprintf(out(n.Out), "%s is already tracked\n", n.Name)
		return nil
	}
	return (&Games{Service: n.Service, Out: n.Out}).Do(ctx)
}

func out(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return os.Stdout
}
