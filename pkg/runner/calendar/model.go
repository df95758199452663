package calendar

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/questnote/pkg/app"
	cal "tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/entry"
	"tableflip.dev/questnote/pkg/store"
	"tableflip.dev/questnote/pkg/theme"
)

var (
	styles      = theme.Default()
	titleStyle  = styles.Diary.Title
	dateStyle   = styles.Diary.Date
	gameStyle   = styles.Diary.Game
	statusStyle = styles.Diary.Status
	errStyle    = styles.Diary.Error
)

const helpLine = "arrows/hjkl move, [ ] month, t today, enter show day, q quit"

// Model is the interactive month browser.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	logger *zap.Logger
	events <-chan store.Event

	cursor datekey.Day
	view   app.MonthView

	shown    datekey.Day
	entries  []entry.DiaryEntry
	status   string
	err      error
	width    int
	quitting bool
}

// New builds a model positioned on start.
func New(ctx context.Context, svc *app.Service, start datekey.Day, events <-chan store.Event, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		svc:    svc,
		ctx:    ctx,
		logger: logger,
		events: events,
		cursor: start,
		status: helpLine,
		width:  80,
	}
	m.rebuild()
	return m
}

type storeChangedMsg struct{ ev store.Event }
type watchClosedMsg struct{}

func waitForChange(events <-chan store.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{ev}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case storeChangedMsg:
		if err := m.svc.Reload(m.ctx); err != nil {
			m.err = err
			m.logger.Warn("reload after store change failed", zap.Error(err))
		} else {
			m.err = nil
			m.rebuild()
			if !m.shown.IsZero() {
				m.entries = m.svc.EntriesOn(m.shown)
			}
			m.status = "reloaded " + msg.ev.Key
		}
		return m, waitForChange(m.events)

	case watchClosedMsg:
		m.events = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.move(m.cursor.AddDays(-1))
	case "right", "l":
		m.move(m.cursor.AddDays(1))
	case "up", "k":
		m.move(m.cursor.AddDays(-7))
	case "down", "j":
		m.move(m.cursor.AddDays(7))
	case "[", "pgup", "p":
		m.move(cal.ShiftMonths(m.cursor, -1))
	case "]", "pgdown", "n":
		m.move(cal.ShiftMonths(m.cursor, 1))
	case "t":
		m.move(m.svc.Today())
	case "enter", " ":
		m.show(m.cursor)
	}
	return m, nil
}

func (m *Model) move(to datekey.Day) {
	before := m.view.Month
	m.cursor = to
	if cal.MonthOf(to) != before {
		m.rebuild()
	}
	m.status = helpLine
}

// show lists the entries of day. Days without entries only update the status.
func (m *Model) show(day datekey.Day) {
	if !m.view.Marked(day) {
		m.status = "no entries on " + day.String()
		return
	}
	m.shown = day
	m.entries = m.svc.EntriesOn(day)
	m.status = fmt.Sprintf("%d entries on %s", len(m.entries), day)
}

func (m *Model) rebuild() {
	m.view = m.svc.Month(cal.MonthOf(m.cursor))
}

// Cursor is the focused day.
func (m Model) Cursor() datekey.Day {
	return m.cursor
}

// Shown lists the entries of the last day opened with enter.
func (m Model) Shown() []entry.DiaryEntry {
	return m.entries
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.view.Month.String()))
	b.WriteString("\n\n")

	opts := cal.DefaultOptions()
	opts.ShowOutside = true
	opts.Today = m.svc.Today()
	opts.Selected = m.cursor
	b.WriteString(m.svc.Builder().Render(m.view.Cells, m.view.Marked, opts))
	b.WriteString("\n\n")

	if !m.shown.IsZero() {
		wrap := m.width - 4
		if wrap < 20 {
			wrap = 20
		}
		for _, e := range m.entries {
			b.WriteString(dateStyle.Render(e.Date))
			b.WriteString("  ")
			b.WriteString(gameStyle.Render(e.Game))
			b.WriteString("\n")
			for _, line := range strings.Split(wordwrap.String(e.Text, wrap), "\n") {
				b.WriteString("    ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}
