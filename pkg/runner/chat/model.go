package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/questnote/pkg/chat"
	"tableflip.dev/questnote/pkg/theme"
	"tableflip.dev/questnote/pkg/translate"
)

// Translator is the part of translate.Client the chat needs.
type Translator interface {
	Translate(ctx context.Context, text, sl, dl string) (string, error)
}

var (
	styles     = theme.Default()
	titleStyle = styles.Chat.Title
	userStyle  = styles.Chat.User
	botStyle   = styles.Chat.Bot
	popupStyle = styles.Chat.Popup
	helpStyle  = styles.Help
)

const helpLine = "enter send, ↑/↓ pick message, tab translate, esc close, ctrl+c quit"

// Model is the SpanishChat conversation screen.
type Model struct {
	ctx        context.Context
	session    *chat.Session
	translator Translator
	gen        *translate.Generation
	logger     *zap.Logger

	input    textinput.Model
	cursor   int
	width    int
	quitting bool
}

// New starts a conversation; the first question is asked by Init.
func New(ctx context.Context, session *chat.Session, translator Translator, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Escribe tu mensaje..."
	ti.CharLimit = 280
	ti.Focus()

	return Model{
		ctx:        ctx,
		session:    session,
		translator: translator,
		gen:        &translate.Generation{},
		logger:     logger,
		input:      ti,
		cursor:     -1,
		width:      60,
	}
}

type askMsg struct{}

// youSaidMsg carries the English reading of a user message.
type youSaidMsg struct {
	text string
	err  error
}

// alternativeMsg carries the Spanish back-translation.
type alternativeMsg struct {
	text string
	err  error
}

// selectionMsg carries the translation of a selected message.
type selectionMsg struct {
	token uint64
	id    uuid.UUID
	text  string
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return askMsg{} })
}

func (m Model) translate(text, sl, dl string, wrap func(string, error) tea.Msg) tea.Cmd {
	ctx, tr := m.ctx, m.translator
	return func() tea.Msg {
		out, err := tr.Translate(ctx, text, sl, dl)
		return wrap(out, err)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case askMsg:
		m.session.Ask()
		return m, nil

	case youSaidMsg:
		if msg.err != nil {
			m.logger.Debug("translation of user message failed", zap.Error(msg.err))
			m.session.Reply(chat.PrefixYouSaid + translate.Describe(msg.err))
			m.session.Ask()
			return m, nil
		}
		m.session.Reply(chat.PrefixYouSaid + msg.text)
		return m, m.translate(msg.text, translate.English, translate.Spanish, func(s string, err error) tea.Msg {
			return alternativeMsg{text: s, err: err}
		})

	case alternativeMsg:
		text := msg.text
		if msg.err != nil {
			m.logger.Debug("back-translation failed", zap.Error(msg.err))
			text = translate.Describe(msg.err)
		}
		m.session.Reply(chat.PrefixAlternative + text)
		m.session.Ask()
		return m, nil

	case selectionMsg:
		if !m.gen.IsCurrent(msg.token) {
			m.logger.Debug("dropping stale translation", zap.Uint64("token", msg.token))
			return m, nil
		}
		m.session.SetTranslation(msg.id, msg.text)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.send()

	case tea.KeyUp:
		n := len(m.session.Messages())
		if n == 0 {
			return m, nil
		}
		if m.cursor < 0 {
			m.cursor = n - 1
		} else if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		n := len(m.session.Messages())
		if m.cursor >= 0 && m.cursor < n-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyTab:
		return m.toggle()

	case tea.KeyEsc:
		m.session.Deselect()
		m.gen.Invalidate()
		m.cursor = -1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send() (tea.Model, tea.Cmd) {
	um, err := m.session.Say(m.input.Value())
	if err != nil {
		return m, nil
	}
	m.input.Reset()
	m.cursor = -1
	return m, m.translate(um.Text, translate.Spanish, translate.English, func(s string, err error) tea.Msg {
		return youSaidMsg{text: s, err: err}
	})
}

// toggle selects the highlighted message and fetches its English reading, or
// closes the popup when it is already selected.
func (m Model) toggle() (tea.Model, tea.Cmd) {
	msgs := m.session.Messages()
	if m.cursor < 0 || m.cursor >= len(msgs) {
		return m, nil
	}
	target := msgs[m.cursor]
	fetch, err := m.session.Select(target.ID)
	if err != nil || !fetch {
		m.gen.Invalidate()
		return m, nil
	}
	tok := m.gen.Next()
	return m, m.translate(target.Text, translate.Spanish, translate.English, func(s string, err error) tea.Msg {
		if err != nil {
			s = translate.Describe(err)
		}
		return selectionMsg{token: tok, id: target.ID, text: s}
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("SpanishChat · " + m.session.Topic().Name))
	b.WriteString("\n")

	if sel, text, translated, ok := m.session.Selected(); ok {
		if !translated {
			text = "…"
		}
		b.WriteString(popupStyle.Render(wordwrap.String(sel.Text+"\n"+text, m.bubbleWidth())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, msg := range m.session.Messages() {
		bubble := wordwrap.String(msg.Text, m.bubbleWidth())
		marker := "  "
		if i == m.cursor {
			marker = "▸ "
		}
		if msg.FromUser {
			rendered := userStyle.Render(bubble)
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, marker+rendered))
		} else {
			b.WriteString(marker + botStyle.Render(bubble))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}

func (m Model) bubbleWidth() int {
	w := m.width * 2 / 3
	if w < 20 {
		w = 20
	}
	return w
}

// Session exposes the conversation for callers that inspect the final state.
func (m Model) Session() *chat.Session {
	return m.session
}
