package rm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/questnote/pkg/app"
)

// Confirm asks the user before something is deleted.
type Confirm func(label string) (bool, error)

// Game removes a game from the list. Its entries stay in the diary.
type Game struct {
	Name    string
	Yes     bool
	Confirm Confirm
	Service *app.Service
	Out     io.Writer
}

func (n *Game) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove game, no service")
	}
	ok, err := confirm(n.Yes, n.Confirm, fmt.Sprintf("Remove game %q", n.Name))
	if err != nil || !ok {
		return err
	}
	removed, err := n.Service.RemoveGame(n.Name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no game named %q", n.Name)
	}
	_, _ = fmt.Fprintf(out(n.Out), "removed %s\n", n.Name)
	return nil
}

// Entry deletes a single diary entry.
type Entry struct {
	ID      string
	Yes     bool
	Confirm Confirm
	Service *app.Service
	Out     io.Writer
}

func (n *Entry) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove entry, no service")
	}
	e, err := n.Service.Entry(n.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", err, n.ID)
	}
	ok, err := confirm(n.Yes, n.Confirm, fmt.Sprintf("Delete %s entry from %s", e.Game, e.Date))
	if err != nil || !ok {
		return err
	}
	if _, err := n.Service.DeleteEntry(n.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(n.Out), "deleted %s\n", n.ID)
	return nil
}

func confirm(yes bool, c Confirm, label string) (bool, error) {
	if yes || c == nil {
		return true, nil
	}
	return c(label)
}

func out(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return os.Stdout
}
