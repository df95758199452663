package journal

import (
	"errors"
	"strings"
)

// ErrBlankName is returned when a game name is empty after trimming.
var ErrBlankName = errors.New("journal: game name is blank")

// PersistGames is called with the full list after every mutation.
type PersistGames func([]string) error

// GameList is an ordered list of distinct game names, most recently used
// first. It is not safe for concurrent use.
type GameList struct {
	names   []string
	persist PersistGames
}

// NewGameList wraps names, dropping blanks and later duplicates.
func NewGameList(names []string, persist PersistGames) *GameList {
	g := &GameList{persist: persist}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || g.indexOf(n) >= 0 {
			continue
		}
		g.names = append(g.names, n)
	}
	return g
}

// Add appends name if it is not already present. It reports whether the list
// changed.
func (g *GameList) Add(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrBlankName
	}
	if g.indexOf(name) >= 0 {
		return false, nil
	}
	prev := g.names
	g.names = append(append([]string(nil), prev...), name)
	if err := g.save(); err != nil {
		g.names = prev
		return false, err
	}
	return true, nil
}

// Touch moves name to the front, inserting it if needed.
func (g *GameList) Touch(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	prev := g.names
	next := make([]string, 0, len(prev)+1)
	next = append(next, name)
	for _, n := range prev {
		if n != name {
			next = append(next, n)
		}
	}
	g.names = next
	if err := g.save(); err != nil {
		g.names = prev
		return err
	}
	return nil
}

// Remove deletes name. It reports false, with no error, when name is absent.
func (g *GameList) Remove(name string) (bool, error) {
	idx := g.indexOf(strings.TrimSpace(name))
	if idx < 0 {
		return false, nil
	}
	prev := g.names
	next := make([]string, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	g.names = next
	if err := g.save(); err != nil {
		g.names = prev
		return false, err
	}
	return true, nil
}

func (g *GameList) Contains(name string) bool {
	return g.indexOf(strings.TrimSpace(name)) >= 0
}

// Names returns a copy of the list.
func (g *GameList) Names() []string {
	return append([]string(nil), g.names...)
}

func (g *GameList) Len() int {
	return len(g.names)
}

func (g *GameList) indexOf(name string) int {
	for i, n := range g.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (g *GameList) save() error {
	if g.persist == nil {
		return nil
	}
	return g.persist(g.Names())
}
