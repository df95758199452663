package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tr "tableflip.dev/questnote/pkg/translate"
)

// Translate performs a single translation and prints the result. Failures
// print the fallback text and are returned so the process exits non-zero.
type Translate struct {
	Text string
	From string
	To   string

	Client *tr.Client
	Out    io.Writer
}

func (n *Translate) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not translate, no client")
	}
	w := n.Out
	if w == nil {
		w = os.Stdout
	}
	out, err := n.Client.Translate(ctx, n.Text, n.From, n.To)
	if err != nil {
		_, _ = fmt.Fprintln(w, tr.Describe(err))
		return err
	}
	_, _ = fmt.Fprintln(w, out)
	return nil
}
