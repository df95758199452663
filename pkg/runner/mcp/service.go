// Package mcp provides the Model Context Protocol server integration for questnote.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/entry"
	"tableflip.dev/questnote/pkg/translate"
)

// Translator is the translation backend used by the translate tool.
type Translator interface {
	Translate(ctx context.Context, text, sl, dl string) (string, error)
}

// Service serializes access to the diary for concurrent MCP requests.
type Service struct {
	mu         sync.Mutex
	app        *app.Service
	translator Translator
}

// GameSummary describes a game and basic aggregate metadata.
type GameSummary struct {
	Name        string `json:"name"`
	EntryCount  int    `json:"entryCount"`
	LastPlayed  string `json:"lastPlayed,omitempty"`
	LatestEntry string `json:"latestEntry,omitempty"`
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID       string `json:"id"`
	Game     string `json:"game"`
	Date     string `json:"date"`
	Text     string `json:"text"`
	DateISO  string `json:"dateISO,omitempty"`
	Readable bool   `json:"dateReadable"`
}

// DayDTO is one calendar cell.
type DayDTO struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	InMonth bool   `json:"inMonth"`
	Marked  bool   `json:"marked"`
}

// MonthDTO is a month grid split into weeks.
type MonthDTO struct {
	Month      string     `json:"month"`
	Key        string     `json:"key"`
	WeekStart  string     `json:"weekStart"`
	Weeks      [][]DayDTO `json:"weeks"`
	MarkedDays []string   `json:"markedDays"`
}

// NewService wraps svc. translator may be nil, which disables translation.
func NewService(svc *app.Service, translator Translator) *Service {
	return &Service{app: svc, translator: translator}
}

// lock takes the service mutex and rereads the store, so that a mutation
// never writes back collections that another process has since changed.
func (s *Service) lock(ctx context.Context) (func(), error) {
	if s.app == nil {
		return nil, errors.New("diary is not configured")
	}
	s.mu.Lock()
	if err := s.app.Reload(ctx); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("reload diary: %w", err)
	}
	return s.mu.Unlock, nil
}

// ListGames returns summaries for every tracked game.
func (s *Service) ListGames(ctx context.Context) ([]GameSummary, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	names := s.app.Games()
	out := make([]GameSummary, 0, len(names))
	for _, n := range names {
		sum := GameSummary{Name: n}
		entries := s.app.EntriesForGame(n)
		sum.EntryCount = len(entries)
		if len(entries) > 0 {
			sum.LastPlayed = entries[0].Date
			_, _, sum.LatestEntry = entries[0].Row()
		}
		out = append(out, sum)
	}
	return out, nil
}

func (s *Service) AddGame(ctx context.Context, name string) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()
	return s.app.AddGame(name)
}

func (s *Service) RemoveGame(ctx context.Context, name string) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()
	return s.app.RemoveGame(name)
}

func (s *Service) AddEntry(ctx context.Context, game, text string) (*EntryDTO, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	e, err := s.app.AddEntry(game, text)
	if err != nil {
		return nil, err
	}
	return s.toDTO(e), nil
}

func (s *Service) DeleteEntry(ctx context.Context, id string) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()
	return s.app.DeleteEntry(id)
}

// ListEntries returns the entries of game newest first, or every entry in
// store order when game is empty.
func (s *Service) ListEntries(ctx context.Context, game string) ([]EntryDTO, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var entries []entry.DiaryEntry
	if strings.TrimSpace(game) == "" {
		entries = s.app.Entries()
	} else {
		entries = s.app.EntriesForGame(game)
	}
	return s.toDTOs(entries), nil
}

// EntriesOnDay lists the entries recorded on day (2006-01-02).
func (s *Service) EntriesOnDay(ctx context.Context, day string) ([]EntryDTO, error) {
	d, err := datekey.ParseDay(day)
	if err != nil {
		return nil, err
	}
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.toDTOs(s.app.EntriesOn(d)), nil
}

// Month builds the grid for month (2006-01); empty means the current month.
func (s *Service) Month(ctx context.Context, month string) (*MonthDTO, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	m := calendar.MonthOf(s.app.Today())
	if strings.TrimSpace(month) != "" {
		if m, err = calendar.ParseMonth(month); err != nil {
			return nil, err
		}
	}

	view := s.app.Month(m)
	out := &MonthDTO{
		Month:     m.String(),
		Key:       m.Key(),
		WeekStart: s.app.Builder().Weekdays()[0].String(),
	}
	for _, week := range calendar.Weeks(view.Cells) {
		row := make([]DayDTO, 0, len(week))
		for _, c := range week {
			row = append(row, DayDTO{
				Date:    c.Date.String(),
				Day:     c.Date.Day,
				InMonth: c.InCurrentMonth,
				Marked:  view.Marked(c.Date),
			})
		}
		out.Weeks = append(out.Weeks, row)
	}
	out.MarkedDays = []string{}
	for _, d := range view.MarkedDays() {
		out.MarkedDays = append(out.MarkedDays, d.String())
	}
	return out, nil
}

// Translate runs one translation. Failures are reported as errors carrying
// the fallback text.
func (s *Service) Translate(ctx context.Context, text, sl, dl string) (string, error) {
	if s.translator == nil {
		return "", errors.New("translation is not configured")
	}
	out, err := s.translator.Translate(ctx, text, sl, dl)
	if err != nil {
		return "", fmt.Errorf("%s: %w", translate.Describe(err), err)
	}
	return out, nil
}

func (s *Service) toDTOs(entries []entry.DiaryEntry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, *s.toDTO(e))
	}
	return out
}

func (s *Service) toDTO(e entry.DiaryEntry) *EntryDTO {
	dto := &EntryDTO{ID: e.ID, Game: e.Game, Date: e.Date, Text: e.Text}
	if t, err := e.Time(s.app.Location()); err == nil {
		dto.DateISO = t.Format(time.RFC3339)
		dto.Readable = true
	}
	return dto
}
