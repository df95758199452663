// Package journal holds the in-memory diary collections: the ordered entry
// store and the most-recently-used game list.
package journal

import (
	"sort"
	"time"

	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/entry"
)

// PersistEntries is called with the full collection after every mutation.
type PersistEntries func([]entry.DiaryEntry) error

// Predicate selects entries in Filter.
type Predicate func(entry.DiaryEntry) bool

// Order sorts a filtered result in place.
type Order func([]entry.DiaryEntry)

// EntryStore is an ordered collection of diary entries. It is not safe for
// concurrent use.
type EntryStore struct {
	entries []entry.DiaryEntry
	persist PersistEntries
}

// NewEntryStore wraps entries, in store order. persist may be nil.
func NewEntryStore(entries []entry.DiaryEntry, persist PersistEntries) *EntryStore {
	return &EntryStore{
		entries: append([]entry.DiaryEntry(nil), entries...),
		persist: persist,
	}
}

// Append inserts e at the end. If persisting fails the store is left
// unchanged and the error is returned.
func (s *EntryStore) Append(e entry.DiaryEntry) error {
	s.entries = append(s.entries, e)
	if err := s.save(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return err
	}
	return nil
}

// Delete removes the entry with id. It reports false, with no error, when no
// such entry exists.
func (s *EntryStore) Delete(id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	prev := s.entries
	next := make([]entry.DiaryEntry, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	s.entries = next
	if err := s.save(); err != nil {
		s.entries = prev
		return false, err
	}
	return true, nil
}

// Filter returns the entries matching pred, sorted by order. A nil pred
// matches everything; a nil order keeps store order.
func (s *EntryStore) Filter(pred Predicate, order Order) []entry.DiaryEntry {
	out := make([]entry.DiaryEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if pred == nil || pred(e) {
			out = append(out, e)
		}
	}
	if order != nil {
		order(out)
	}
	return out
}

// All returns a copy of the collection in store order.
func (s *EntryStore) All() []entry.DiaryEntry {
	return append([]entry.DiaryEntry(nil), s.entries...)
}

func (s *EntryStore) Len() int {
	return len(s.entries)
}

// Get looks up an entry by id.
func (s *EntryStore) Get(id string) (entry.DiaryEntry, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.entries[idx], true
	}
	return entry.DiaryEntry{}, false
}

func (s *EntryStore) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *EntryStore) save() error {
	if s.persist == nil {
		return nil
	}
	return s.persist(s.All())
}

// ByGame matches entries recorded against game.
func ByGame(game string) Predicate {
	return func(e entry.DiaryEntry) bool {
		return e.Game == game
	}
}

// OnDay matches entries whose date falls on day in loc. Entries with
// unparsable dates never match.
func OnDay(day datekey.Day, loc *time.Location) Predicate {
	return func(e entry.DiaryEntry) bool {
		t, err := e.Time(loc)
		if err != nil {
			return false
		}
		return datekey.DayOf(t, loc) == day
	}
}

// NewestFirst orders entries by descending timestamp. Entries whose date does
// not parse go last, keeping their relative order.
func NewestFirst(loc *time.Location) Order {
	return func(entries []entry.DiaryEntry) {
		keys := make(map[string]time.Time, len(entries))
		bad := make(map[string]bool)
		for _, e := range entries {
			t, err := e.Time(loc)
			if err != nil {
				bad[e.ID] = true
				continue
			}
			keys[e.ID] = t
		}
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if bad[a.ID] || bad[b.ID] {
				return !bad[a.ID] && bad[b.ID]
			}
			return keys[a.ID].After(keys[b.ID])
		})
	}
}
