package chat

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reply prefixes for the two translations of a user message.
const (
	PrefixYouSaid     = "You said: "
	PrefixAlternative = "Alternative way: "
)

var (
	ErrBlankMessage   = errors.New("chat: message is blank")
	ErrUnknownMessage = errors.New("chat: no such message")
)

// Message is one chat bubble.
type Message struct {
	ID       uuid.UUID
	Text     string
	FromUser bool
}

// Session is a single conversation on one topic. It is not safe for
// concurrent use.
type Session struct {
	topic    Topic
	rnd      *rand.Rand
	messages []Message

	selected    uuid.UUID
	translation string
	translated  bool
}

// SessionOption configures NewSession.
type SessionOption func(*Session)

// WithRand sets the source used to pick questions.
func WithRand(r *rand.Rand) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.rnd = r
		}
	}
}

// NewSession starts an empty conversation on topic.
func NewSession(topic Topic, opts ...SessionOption) *Session {
	seed := uint64(time.Now().UnixNano())
	s := &Session{
		topic: topic,
		rnd:   rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Topic() Topic {
	return s.topic
}

// Ask appends a random question from the topic.
func (s *Session) Ask() Message {
	q := s.topic.Questions[s.rnd.IntN(len(s.topic.Questions))]
	return s.push(q, false)
}

// Say appends a user message. Surrounding whitespace is dropped.
func (s *Session) Say(text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrBlankMessage
	}
	return s.push(text, true), nil
}

// Reply appends a message from the app side.
func (s *Session) Reply(text string) Message {
	return s.push(text, false)
}

func (s *Session) push(text string, fromUser bool) Message {
	m := Message{ID: uuid.New(), Text: text, FromUser: fromUser}
	s.messages = append(s.messages, m)
	return m
}

// Messages returns the conversation in order.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Message looks a message up by id.
func (s *Session) Message(id uuid.UUID) (Message, bool) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// Select toggles the selection of id. It reports true when the message became
// selected and its translation has to be fetched.
func (s *Session) Select(id uuid.UUID) (bool, error) {
	if _, ok := s.Message(id); !ok {
		return false, ErrUnknownMessage
	}
	if s.selected == id {
		s.clearSelection()
		return false, nil
	}
	s.selected = id
	s.translation = ""
	s.translated = false
	return true, nil
}

// Deselect clears any selection.
func (s *Session) Deselect() {
	s.clearSelection()
}

func (s *Session) clearSelection() {
	s.selected = uuid.Nil
	s.translation = ""
	s.translated = false
}

// SetTranslation records text for id. It is ignored unless id is still the
// selected message.
func (s *Session) SetTranslation(id uuid.UUID, text string) bool {
	if s.selected == uuid.Nil || s.selected != id {
		return false
	}
	s.translation = text
	s.translated = true
	return true
}

// Selected returns the selected message and its translation. translated is
// false while the translation is still pending.
func (s *Session) Selected() (m Message, translation string, translated bool, ok bool) {
	if s.selected == uuid.Nil {
		return Message{}, "", false, false
	}
	m, ok = s.Message(s.selected)
	if !ok {
		return Message{}, "", false, false
	}
	return m, s.translation, s.translated, true
}
