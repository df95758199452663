package chat

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)
	require.Equal(t, []string{
		"Introductions", "Food", "Travel", "Feelings",
		"Daily Routine", "Hobbies", "Technology", "Movies",
	}, bank.Names())
	for _, topic := range bank.Topics {
		require.Len(t, topic.Questions, 20, topic.Name)
	}
	require.Equal(t, "¿Cómo te llamas?", bank.Topics[0].Questions[0])
}

func TestBankFind(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	topic, err := bank.Find("daily routine")
	require.NoError(t, err)
	require.Equal(t, "Daily Routine", topic.Name)

	topic, err = bank.Find("2")
	require.NoError(t, err)
	require.Equal(t, "Food", topic.Name)

	_, err = bank.Find("9")
	require.ErrorIs(t, err, ErrUnknownTopic)
	_, err = bank.Find("Sports")
	require.ErrorIs(t, err, ErrUnknownTopic)
}

func TestParseBankRejectsEmptyTopic(t *testing.T) {
	_, err := ParseBank([]byte("topics:\n  - name: Empty\n"))
	require.Error(t, err)
	_, err = ParseBank([]byte("topics: ["))
	require.Error(t, err)
}

func newTestSession() *Session {
	topic := Topic{Name: "Food", Questions: []string{"¿Te gusta cocinar?", "¿Comes comida rápida?"}}
	return NewSession(topic, WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestSessionFlowOrder(t *testing.T) {
	s := newTestSession()

	q := s.Ask()
	require.False(t, q.FromUser)
	require.Contains(t, s.Topic().Questions, q.Text)

	_, err := s.Say("   ")
	require.True(t, errors.Is(err, ErrBlankMessage))

	u, err := s.Say("  Sí, me gusta  ")
	require.NoError(t, err)
	require.Equal(t, "Sí, me gusta", u.Text)
	require.True(t, u.FromUser)

	s.Reply(PrefixYouSaid + "Yes, I like it")
	s.Reply(PrefixAlternative + "Sí, me gusta")
	s.Ask()

	msgs := s.Messages()
	require.Len(t, msgs, 5)
	require.Equal(t, []bool{false, true, false, false, false}, []bool{
		msgs[0].FromUser, msgs[1].FromUser, msgs[2].FromUser, msgs[3].FromUser, msgs[4].FromUser,
	})
	require.Equal(t, "You said: Yes, I like it", msgs[2].Text)
	require.Equal(t, "Alternative way: Sí, me gusta", msgs[3].Text)
}

func TestSelectToggles(t *testing.T) {
	s := newTestSession()
	a := s.Ask()
	b := s.Ask()

	fetch, err := s.Select(a.ID)
	require.NoError(t, err)
	require.True(t, fetch)

	_, _, translated, ok := s.Selected()
	require.True(t, ok)
	require.False(t, translated)

	require.True(t, s.SetTranslation(a.ID, "Do you like to cook?"))
	m, text, translated, ok := s.Selected()
	require.True(t, ok)
	require.True(t, translated)
	require.Equal(t, a.ID, m.ID)
	require.Equal(t, "Do you like to cook?", text)

	// Switching selection drops the old translation and ignores late results.
	fetch, err = s.Select(b.ID)
	require.NoError(t, err)
	require.True(t, fetch)
	require.False(t, s.SetTranslation(a.ID, "late"))

	// Selecting again deselects.
	fetch, err = s.Select(b.ID)
	require.NoError(t, err)
	require.False(t, fetch)
	_, _, _, ok = s.Selected()
	require.False(t, ok)

	_, err = s.Select(uuid.New())
	require.ErrorIs(t, err, ErrUnknownMessage)
}
