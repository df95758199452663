package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/entry"
	"tableflip.dev/questnote/pkg/journal"
	"tableflip.dev/questnote/pkg/store"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrEmptyEntry    = errors.New("app: entry text is empty")
	ErrNotFound      = errors.New("app: entry not found")
)

// Service owns the games and entries collections. Both are loaded once from
// persistence and written back synchronously on every mutation, so UIs and
// CLIs can share logic. It is not safe for concurrent use.
type Service struct {
	persistence store.Persistence
	logger      *zap.Logger
	now         func() time.Time
	loc         *time.Location
	builder     calendar.Builder

	games   *journal.GameList
	entries *journal.EntryStore
}

// Option configures New.
type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for new entries and for Today.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone used to bucket entries into days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithWeekStart(wd time.Weekday) Option {
	return func(s *Service) {
		s.builder.WeekStart = wd
	}
}

// New loads games and entries from p.
func New(ctx context.Context, p store.Persistence, opts ...Option) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	s := &Service{
		persistence: p,
		logger:      zap.NewNop(),
		now:         time.Now,
		loc:         time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload discards in-memory state and reads both collections again.
func (s *Service) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	gamesBlob, err := s.load(store.KeyGames)
	if err != nil {
		return err
	}
	names, err := journal.DecodeGames(gamesBlob)
	if err != nil {
		names = nil
		s.quarantine(store.KeyGames, gamesBlob, err)
	}

	entriesBlob, err := s.load(store.KeyEntries)
	if err != nil {
		return err
	}
	entries, err := journal.DecodeEntries(entriesBlob)
	if err != nil {
		entries = nil
		s.quarantine(store.KeyEntries, entriesBlob, err)
	}

	s.games = journal.NewGameList(names, s.saveGames)
	s.entries = journal.NewEntryStore(entries, s.saveEntries)
	s.logger.Debug("loaded journal",
		zap.Int("games", s.games.Len()),
		zap.Int("entries", s.entries.Len()))
	return nil
}

func (s *Service) load(key string) ([]byte, error) {
	blob, _, err := s.persistence.Get(key)
	if err != nil {
		return nil, fmt.Errorf("app: load %s: %w", key, err)
	}
	return blob, nil
}

// quarantine keeps a copy of an undecodable blob next to the original key.
func (s *Service) quarantine(key string, blob []byte, cause error) {
	backup := key + ".corrupt"
	fields := []zap.Field{zap.String("key", key), zap.String("backup", backup), zap.Error(cause)}
	if err := s.persistence.Set(backup, blob); err != nil {
		s.logger.Error("failed to back up corrupt data", append(fields, zap.NamedError("backup_error", err))...)
		return
	}
	s.logger.Warn("stored data is corrupt, starting empty", fields...)
}

func (s *Service) saveGames(names []string) error {
	b, err := journal.EncodeGames(names)
	if err != nil {
		return err
	}
	return s.persistence.Set(store.KeyGames, b)
}

func (s *Service) saveEntries(entries []entry.DiaryEntry) error {
	b, err := journal.EncodeEntries(entries)
	if err != nil {
		return err
	}
	return s.persistence.Set(store.KeyEntries, b)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.persistence.Watch(ctx)
}

// Location is the zone entries are bucketed in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Today is the current day in the service location.
func (s *Service) Today() datekey.Day {
	return datekey.DayOf(s.now(), s.loc)
}

// Games lists game names, most recently used first.
func (s *Service) Games() []string {
	return s.games.Names()
}

// AddGame records a new game. Adding an existing name is a no-op.
func (s *Service) AddGame(name string) (bool, error) {
	return s.games.Add(name)
}

// RemoveGame deletes the game name. Entries recorded against it are kept.
func (s *Service) RemoveGame(name string) (bool, error) {
	return s.games.Remove(name)
}

// AddEntry stamps text with the current time, stores it and moves game to
// the front of the games list.
func (s *Service) AddEntry(game, text string) (entry.DiaryEntry, error) {
	game = strings.TrimSpace(game)
	if game == "" {
		return entry.DiaryEntry{}, journal.ErrBlankName
	}
	if strings.TrimSpace(text) == "" {
		return entry.DiaryEntry{}, ErrEmptyEntry
	}
	e := entry.New(game, text, s.now().In(s.loc))
	if err := s.entries.Append(e); err != nil {
		return entry.DiaryEntry{}, fmt.Errorf("app: save entry: %w", err)
	}
	if err := s.games.Touch(game); err != nil {
		return e, fmt.Errorf("app: save games: %w", err)
	}
	return e, nil
}

// DeleteEntry removes the entry with id. A missing id reports false.
func (s *Service) DeleteEntry(id string) (bool, error) {
	return s.entries.Delete(id)
}

// Entry looks up a single entry.
func (s *Service) Entry(id string) (entry.DiaryEntry, error) {
	e, ok := s.entries.Get(id)
	if !ok {
		return entry.DiaryEntry{}, ErrNotFound
	}
	return e, nil
}

// Entries returns every entry in store order.
func (s *Service) Entries() []entry.DiaryEntry {
	return s.entries.All()
}

// EntriesForGame lists the entries of game, newest first.
func (s *Service) EntriesForGame(game string) []entry.DiaryEntry {
	return s.entries.Filter(journal.ByGame(game), journal.NewestFirst(s.loc))
}

// EntriesOn lists the entries recorded on day, in store order.
func (s *Service) EntriesOn(day datekey.Day) []entry.DiaryEntry {
	return s.entries.Filter(journal.OnDay(day, s.loc), nil)
}

// Index builds the day index over the current entries.
func (s *Service) Index() *datekey.Index {
	return datekey.Build(s.entries.All(), s.loc, datekey.WithLogger(s.logger))
}

// Builder is the grid builder configured for this service.
func (s *Service) Builder() calendar.Builder {
	return s.builder
}

// MonthView is a month grid with its entry marks.
type MonthView struct {
	Month calendar.Month
	Cells []calendar.Cell
	Index *datekey.Index
}

// Marked reports whether day has entries.
func (v MonthView) Marked(day datekey.Day) bool {
	return v.Index.HasEntry(day)
}

// MarkedDays lists the marked days that fall inside the month.
func (v MonthView) MarkedDays() []datekey.Day {
	var out []datekey.Day
	for _, c := range v.Cells {
		if c.InCurrentMonth && v.Marked(c.Date) {
			out = append(out, c.Date)
		}
	}
	return out
}

// Month builds the grid for m and marks days with entries.
func (s *Service) Month(m calendar.Month) MonthView {
	return MonthView{
		Month: m,
		Cells: s.builder.Build(m),
		Index: s.Index(),
	}
}
