package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/questnote/pkg/app"
	cal "tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/printers"
)

// Calendar prints a month, or browses months interactively.
type Calendar struct {
	// Month is 2006-01; empty means the current month.
	Month       string
	Long        bool
	Interactive bool

	Service *app.Service
	Logger  *zap.Logger
	Out     io.Writer
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	today := n.Service.Today()
	start := today
	if n.Month != "" {
		m, err := cal.ParseMonth(n.Month)
		if err != nil {
			return err
		}
		if !m.Contains(today) {
			start = m.First()
		}
	}

	if n.Interactive {
		return n.run(ctx, start)
	}

	m := cal.MonthOf(start)
	pp := printers.PrettyPrint{Out: n.Out}
	if n.Long {
		pp.MonthLong(m, today, n.Service.EntriesOn)
		return nil
	}
	view := n.Service.Month(m)
	pp.Month(n.Service.Builder(), view, today)
	if skipped := view.Index.Skipped(); len(skipped) > 0 {
		pp.TitleWithCount("Entries with unreadable dates", len(skipped))
	}
	return nil
}

func (n *Calendar) run(ctx context.Context, start datekey.Day) error {
	logger := n.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := n.Service.Watch(watchCtx)
	if err != nil {
		// Browsing still works without live reload.
		logger.Warn("store watch unavailable", zap.Error(err))
		events = nil
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if n.Out != nil {
		opts = append(opts, tea.WithOutput(n.Out))
	}
	p := tea.NewProgram(New(ctx, n.Service, start, events, logger), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("calendar: %w", err)
	}
	return nil
}
