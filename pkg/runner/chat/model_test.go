package chat

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/questnote/pkg/chat"
	"tableflip.dev/questnote/pkg/translate"
)

type fakeTranslator struct {
	answers map[string]string
	calls   []string
}

func (f *fakeTranslator) Translate(_ context.Context, text, sl, dl string) (string, error) {
	f.calls = append(f.calls, sl+">"+dl+":"+text)
	out, ok := f.answers[sl+">"+dl+":"+text]
	if !ok {
		return "", &translate.Error{Kind: translate.ErrNoData}
	}
	return out, nil
}

func newModel(tr Translator) Model {
	topic := chat.Topic{Name: "Food", Questions: []string{"¿Te gusta cocinar?"}}
	s := chat.NewSession(topic, chat.WithRand(rand.New(rand.NewPCG(1, 1))))
	return New(context.Background(), s, tr, nil)
}

// run applies msg and then every command it produces, depth first.
func run(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	m = next.(Model)
	for cmd != nil {
		out := cmd()
		if out == nil {
			return m
		}
		if _, isBatch := out.(tea.BatchMsg); isBatch {
			return m
		}
		next, cmd = m.Update(out)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func texts(m Model) []string {
	var out []string
	for _, msg := range m.Session().Messages() {
		out = append(out, msg.Text)
	}
	return out
}

func TestSendFlow(t *testing.T) {
	tr := &fakeTranslator{answers: map[string]string{
		"es>en:Sí, me gusta": "Yes, I like it",
		"en>es:Yes, I like it": "Sí, me gusta",
	}}
	m := newModel(tr)
	m = run(m, askMsg{})

	m = typeText(m, "Sí, me gusta")
	m = run(m, tea.KeyMsg{Type: tea.KeyEnter})

	want := []string{
		"¿Te gusta cocinar?",
		"Sí, me gusta",
		"You said: Yes, I like it",
		"Alternative way: Sí, me gusta",
		"¿Te gusta cocinar?",
	}
	if got := texts(m); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected conversation:\n got %q\nwant %q", got, want)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input to be cleared, got %q", m.input.Value())
	}
}

func TestSendFailureRendersFallback(t *testing.T) {
	m := newModel(&fakeTranslator{})
	m = run(m, askMsg{})
	m = typeText(m, "Hola")
	m = run(m, tea.KeyMsg{Type: tea.KeyEnter})

	got := texts(m)
	if len(got) != 4 || got[2] != "You said: No data received" {
		t.Fatalf("expected fallback reply followed by next question, got %q", got)
	}
}

func TestBlankSendIgnored(t *testing.T) {
	tr := &fakeTranslator{}
	m := newModel(tr)
	m = typeText(m, "   ")
	m = run(m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.Session().Messages()) != 0 || len(tr.calls) != 0 {
		t.Fatalf("expected nothing to happen for blank input")
	}
}

func TestSelectionTranslationAndStaleDrop(t *testing.T) {
	tr := &fakeTranslator{answers: map[string]string{
		"es>en:¿Te gusta cocinar?": "Do you like to cook?",
	}}
	m := newModel(tr)
	m = run(m, askMsg{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	m = run(m, tea.KeyMsg{Type: tea.KeyTab})

	_, text, translated, ok := m.Session().Selected()
	if !ok || !translated || text != "Do you like to cook?" {
		t.Fatalf("expected selection translation, got %q translated=%v ok=%v", text, translated, ok)
	}
	if !strings.Contains(m.View(), "Do you like to cook?") {
		t.Fatalf("expected popup in view")
	}

	// Re-select to get a pending request, then invalidate it before it lands.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab}) // deselect
	m = next.(Model)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab}) // select again
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("expected translation request")
	}
	late := cmd()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	next, _ = m.Update(late)
	m = next.(Model)
	if _, _, _, ok := m.Session().Selected(); ok {
		t.Fatalf("expected no selection after esc")
	}

	sel := late.(selectionMsg)
	if m.gen.IsCurrent(sel.token) {
		t.Fatalf("expected token to be stale")
	}
}

func TestStaleSelectionIgnored(t *testing.T) {
	m := newModel(&fakeTranslator{answers: map[string]string{}})
	m = run(m, askMsg{})
	msg := m.Session().Messages()[0]
	if _, err := m.Session().Select(msg.ID); err != nil {
		t.Fatalf("select: %v", err)
	}
	old := m.gen.Next()
	m.gen.Next()

	next, _ := m.Update(selectionMsg{token: old, id: msg.ID, text: "stale"})
	m = next.(Model)
	if _, _, translated, _ := m.Session().Selected(); translated {
		t.Fatalf("expected stale translation to be dropped")
	}
}

func TestDescribeUsedForSelectionFailure(t *testing.T) {
	if got := translate.Describe(&translate.Error{Kind: translate.ErrMalformed}); got != "Invalid response format" {
		t.Fatalf("unexpected describe %q", got)
	}
	if !errors.Is(&translate.Error{Kind: translate.ErrNoData}, translate.ErrNoData) {
		t.Fatalf("expected kind match")
	}
}
