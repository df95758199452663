package chat

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/questnote/pkg/chat"
)

// Chat runs one conversation on Topic.
type Chat struct {
	Topic      chat.Topic
	Translator Translator
	Logger     *zap.Logger
}

func (n *Chat) Do(ctx context.Context) error {
	if n.Translator == nil {
		return errors.New("can not chat, no translator")
	}
	if len(n.Topic.Questions) == 0 {
		return fmt.Errorf("topic %q has no questions", n.Topic.Name)
	}
	model := New(ctx, chat.NewSession(n.Topic), n.Translator, n.Logger)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}
