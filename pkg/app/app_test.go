package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/datekey"
	"tableflip.dev/questnote/pkg/journal"
	"tableflip.dev/questnote/pkg/store"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newService(t *testing.T, p store.Persistence, opts ...Option) (*Service, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(c.now), WithLocation(time.UTC)}, opts...)
	svc, err := New(context.Background(), p, opts...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, c
}

func TestZeldaScenario(t *testing.T) {
	mem := store.NewMemory()
	svc, _ := newService(t, mem)

	e, err := svc.AddEntry("Zelda", "Beat first dungeon")
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if e.Date != "Jun 1, 2025 at 10:00 AM" {
		t.Fatalf("unexpected date %q", e.Date)
	}

	day := datekey.Day{Year: 2025, Month: time.June, Day: 1}
	got := svc.EntriesOn(day)
	if len(got) != 1 || got[0].ID != e.ID {
		t.Fatalf("expected only the new entry on Jun 1, got %+v", got)
	}
	if !svc.Index().HasEntry(day) {
		t.Fatalf("expected Jun 1 to be marked")
	}

	if ok, err := svc.DeleteEntry(e.ID); err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if got := svc.EntriesOn(day); len(got) != 0 {
		t.Fatalf("expected no entries after delete, got %d", len(got))
	}
}

func TestMutationsPersistAndReload(t *testing.T) {
	mem := store.NewMemory()
	svc, c := newService(t, mem)

	if _, err := svc.AddGame("Celeste"); err != nil {
		t.Fatalf("add game: %v", err)
	}
	if _, err := svc.AddGame("Hades"); err != nil {
		t.Fatalf("add game: %v", err)
	}
	c.advance(time.Hour)
	if _, err := svc.AddEntry("Hades", "Reached Elysium"); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	again, _ := newService(t, mem)
	games := again.Games()
	if strings.Join(games, ",") != "Hades,Celeste" {
		t.Fatalf("expected Hades moved to front, got %v", games)
	}
	if n := len(again.Entries()); n != 1 {
		t.Fatalf("expected 1 persisted entry, got %d", n)
	}
}

func TestAddEntryForNewGameAddsIt(t *testing.T) {
	svc, _ := newService(t, store.NewMemory())
	if _, err := svc.AddEntry("Outer Wilds", "Found the museum"); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if games := svc.Games(); len(games) != 1 || games[0] != "Outer Wilds" {
		t.Fatalf("expected game to be recorded, got %v", games)
	}
}

func TestAddEntryValidates(t *testing.T) {
	svc, _ := newService(t, store.NewMemory())
	if _, err := svc.AddEntry(" ", "text"); !errors.Is(err, journal.ErrBlankName) {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}
	if _, err := svc.AddEntry("Zelda", "  \n"); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
}

func TestEntriesForGameNewestFirst(t *testing.T) {
	svc, c := newService(t, store.NewMemory())
	for _, text := range []string{"first", "second", "third"} {
		if _, err := svc.AddEntry("Zelda", text); err != nil {
			t.Fatalf("add entry: %v", err)
		}
		if _, err := svc.AddEntry("Celeste", "noise"); err != nil {
			t.Fatalf("add entry: %v", err)
		}
		c.advance(24 * time.Hour)
	}
	got := svc.EntriesForGame("Zelda")
	if len(got) != 3 {
		t.Fatalf("expected 3 Zelda entries, got %d", len(got))
	}
	for i, want := range []string{"third", "second", "first"} {
		if got[i].Text != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].Text)
		}
	}
}

func TestRemoveGameKeepsEntries(t *testing.T) {
	svc, _ := newService(t, store.NewMemory())
	if _, err := svc.AddEntry("Zelda", "x"); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if ok, err := svc.RemoveGame("Zelda"); err != nil || !ok {
		t.Fatalf("remove: ok=%v err=%v", ok, err)
	}
	if len(svc.Games()) != 0 {
		t.Fatalf("expected no games")
	}
	if len(svc.EntriesForGame("Zelda")) != 1 {
		t.Fatalf("expected entry to survive game removal")
	}
}

func TestCorruptBlobIsQuarantined(t *testing.T) {
	mem := store.NewMemory()
	if err := mem.Set(store.KeyEntries, []byte(`{not json`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mem.Set(store.KeyGames, []byte(`["Zelda"]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	core, logs := observer.New(zap.WarnLevel)
	svc, _ := newService(t, mem, WithLogger(zap.New(core)))

	if n := len(svc.Entries()); n != 0 {
		t.Fatalf("expected empty entries, got %d", n)
	}
	if games := svc.Games(); len(games) != 1 {
		t.Fatalf("expected games to load, got %v", games)
	}
	backup, ok, err := mem.Get(store.KeyEntries + ".corrupt")
	if err != nil || !ok || string(backup) != `{not json` {
		t.Fatalf("expected backup of corrupt blob, got %q ok=%v err=%v", backup, ok, err)
	}
	if logs.FilterMessage("stored data is corrupt, starting empty").Len() != 1 {
		t.Fatalf("expected corrupt data warning, got %v", logs.All())
	}
}

func TestMonthMarksEntryDays(t *testing.T) {
	svc, c := newService(t, store.NewMemory(), WithWeekStart(time.Monday))
	if _, err := svc.AddEntry("Zelda", "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	c.advance(4 * 24 * time.Hour)
	if _, err := svc.AddEntry("Zelda", "b"); err != nil {
		t.Fatalf("add: %v", err)
	}

	view := svc.Month(calendar.Month{Year: 2025, Month: time.June})
	if len(view.Cells) != 42 {
		t.Fatalf("expected 42 cells for a Monday-start June 2025, got %d", len(view.Cells))
	}
	marked := view.MarkedDays()
	if len(marked) != 2 || marked[0].Day != 1 || marked[1].Day != 5 {
		t.Fatalf("expected Jun 1 and Jun 5 marked, got %v", marked)
	}
	if today := svc.Today(); today.Day != 5 {
		t.Fatalf("expected today to follow the clock, got %v", today)
	}
}

func TestReportGroupsByGame(t *testing.T) {
	svc, c := newService(t, store.NewMemory())
	start := c.now()
	mustAdd := func(game, text string) {
		t.Helper()
		if _, err := svc.AddEntry(game, text); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	mustAdd("Zelda", "z1")
	c.advance(time.Hour)
	mustAdd("Celeste", "c1")
	c.advance(time.Hour)
	mustAdd("Zelda", "z2")
	c.advance(48 * time.Hour)
	mustAdd("Hades", "outside window")

	res := svc.Report(start.Add(3*time.Hour), start)
	if res.Total != 3 {
		t.Fatalf("expected 3 entries in window, got %d", res.Total)
	}
	if len(res.Sections) != 2 || res.Sections[0].Game != "Zelda" {
		t.Fatalf("expected Zelda section first, got %+v", res.Sections)
	}
	if res.Sections[0].Entries[0].Text != "z2" {
		t.Fatalf("expected newest Zelda entry first, got %q", res.Sections[0].Entries[0].Text)
	}
}

func TestNewRequiresPersistence(t *testing.T) {
	if _, err := New(context.Background(), nil); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}
