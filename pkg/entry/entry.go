// Package entry defines the diary entry record and its date codec.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyText is returned when a session body is missing one of its parts.
var ErrEmptyText = errors.New("entry: accomplished and goal text are required")

// DiaryEntry is a single note recorded against a game.
type DiaryEntry struct {
	ID   string `json:"id"`
	Game string `json:"game"`
	Date string `json:"date"`
	Text string `json:"text"`
}

// New creates an entry for game stamped with now.
func New(game, text string, now time.Time) DiaryEntry {
	return DiaryEntry{
		ID:   uuid.NewString(),
		Game: game,
		Date: FormatDate(now),
		Text: text,
	}
}

// Time parses the stored date string in loc.
func (e DiaryEntry) Time(loc *time.Location) (time.Time, error) {
	return ParseDate(e.Date, loc)
}

func (e DiaryEntry) Title() string {
	return e.Game
}

// Row is the table form used by the printers.
func (e DiaryEntry) Row() (string, string, string) {
	return e.ID, e.Date, firstLine(e.Text)
}

func (e DiaryEntry) String() string {
	return fmt.Sprintf("%s  %s", e.Date, firstLine(e.Text))
}

// SessionText builds the body recorded after a play session.
func SessionText(accomplished, goal string) (string, error) {
	accomplished = strings.TrimSpace(accomplished)
	goal = strings.TrimSpace(goal)
	if accomplished == "" || goal == "" {
		return "", ErrEmptyText
	}
	return "This session: \n" + accomplished + "\n\nNext Session Goal(s):\n" + goal, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + " …"
	}
	return s
}
