package report

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/printers"
)

// Report prints the entries recorded in the last Window, grouped by game.
type Report struct {
	Window time.Duration
	Until  time.Time
	ShowID bool

	Service *app.Service
	Out     io.Writer
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	until := n.Until
	if until.IsZero() {
		until = time.Now()
	}
	window := n.Window
	if window <= 0 {
		window = 7 * 24 * time.Hour
	}
	res := n.Service.Report(until.Add(-window), until)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Report(res)
	return nil
}
