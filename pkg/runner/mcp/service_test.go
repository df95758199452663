package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/store"
	"tableflip.dev/questnote/pkg/translate"
)

type stubTranslator struct {
	out string
	err error
}

func (s stubTranslator) Translate(context.Context, string, string, string) (string, error) {
	return s.out, s.err
}

func newTestService(t *testing.T, tr Translator) *Service {
	t.Helper()
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	svc, err := app.New(context.Background(), store.NewMemory(),
		app.WithClock(func() time.Time { return now }),
		app.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return NewService(svc, tr)
}

func TestServiceGamesAndEntries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	if _, err := svc.AddGame(ctx, "Celeste"); err != nil {
		t.Fatalf("add game: %v", err)
	}
	dto, err := svc.AddEntry(ctx, "Zelda", "Beat first dungeon")
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if !dto.Readable || dto.DateISO != "2025-06-01T10:00:00Z" {
		t.Fatalf("unexpected dto %+v", dto)
	}

	games, err := svc.ListGames(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 2 || games[0].Name != "Zelda" || games[0].EntryCount != 1 {
		t.Fatalf("expected Zelda first with one entry, got %+v", games)
	}
	if games[0].LatestEntry != "Beat first dungeon" {
		t.Fatalf("unexpected latest entry %q", games[0].LatestEntry)
	}

	day, err := svc.EntriesOnDay(ctx, "2025-06-01")
	if err != nil || len(day) != 1 {
		t.Fatalf("expected one entry on day, got %v %v", day, err)
	}
	if _, err := svc.EntriesOnDay(ctx, "June 1"); err == nil {
		t.Fatalf("expected bad day to fail")
	}

	deleted, err := svc.DeleteEntry(ctx, dto.ID)
	if err != nil || !deleted {
		t.Fatalf("delete: %v %v", deleted, err)
	}
	deleted, err = svc.DeleteEntry(ctx, dto.ID)
	if err != nil || deleted {
		t.Fatalf("second delete should be a no-op, got %v %v", deleted, err)
	}
}

func TestServiceKeepsWritesFromOtherProcesses(t *testing.T) {
	ctx := context.Background()
	p := store.NewMemory()
	clock := app.WithClock(func() time.Time { return time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC) })

	cli, err := app.New(ctx, p, clock, app.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("new cli app: %v", err)
	}
	server, err := app.New(ctx, p, clock, app.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("new server app: %v", err)
	}
	svc := NewService(server, nil)

	if _, err := cli.AddEntry("Zelda", "from the command line"); err != nil {
		t.Fatalf("cli add: %v", err)
	}
	games, err := svc.ListGames(ctx)
	if err != nil || len(games) != 1 || games[0].Name != "Zelda" {
		t.Fatalf("expected the cli write to be visible, got %+v %v", games, err)
	}
	if _, err := svc.AddEntry(ctx, "Hades", "from mcp"); err != nil {
		t.Fatalf("mcp add: %v", err)
	}

	fresh, err := app.New(ctx, p, app.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := len(fresh.Entries()); got != 2 {
		t.Fatalf("expected both entries persisted, got %d", got)
	}
	if got := strings.Join(fresh.Games(), ","); got != "Hades,Zelda" {
		t.Fatalf("unexpected games %q", got)
	}
}

func TestServiceMonth(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	if _, err := svc.AddEntry(ctx, "Zelda", "x"); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	month, err := svc.Month(ctx, "")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if month.Key != "2025-06" || len(month.Weeks) != 5 || month.WeekStart != "Sunday" {
		t.Fatalf("unexpected month %+v", month)
	}
	if !month.Weeks[0][0].Marked || month.Weeks[0][0].Date != "2025-06-01" {
		t.Fatalf("expected Jun 1 marked in first cell, got %+v", month.Weeks[0][0])
	}
	if strings.Join(month.MarkedDays, ",") != "2025-06-01" {
		t.Fatalf("unexpected marked days %v", month.MarkedDays)
	}

	if _, err := svc.Month(ctx, "2025-13"); err == nil {
		t.Fatalf("expected invalid month to fail")
	}
}

func TestServiceTranslate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, stubTranslator{out: "Hello"})
	out, err := svc.Translate(ctx, "Hola", translate.Spanish, translate.English)
	if err != nil || out != "Hello" {
		t.Fatalf("expected Hello, got %q %v", out, err)
	}

	svc = newTestService(t, stubTranslator{err: &translate.Error{Kind: translate.ErrMalformed}})
	_, err = svc.Translate(ctx, "Hola", translate.Spanish, translate.English)
	if err == nil || !strings.HasPrefix(err.Error(), "Invalid response format") {
		t.Fatalf("expected fallback text in error, got %v", err)
	}

	svc = newTestService(t, nil)
	if _, err := svc.Translate(ctx, "Hola", "es", "en"); err == nil {
		t.Fatalf("expected error without translator")
	}
}

func TestServiceConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.AddEntry(ctx, "Zelda", "run"); err != nil {
				t.Errorf("add entry: %v", err)
			}
		}()
	}
	wg.Wait()

	entries, err := svc.ListEntries(ctx, "Zelda")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(entries))
	}
}

func TestServerListsTools(t *testing.T) {
	srv := NewServer("questnote", "test", newTestService(t, nil))
	resp := srv.HandleMessage(context.Background(), json.RawMessage(
		`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, name := range []string{
		"list_games", "add_game", "remove_game", "add_entry", "delete_entry",
		"list_entries", "entries_on_day", "calendar_month", "translate",
	} {
		if !strings.Contains(string(b), `"`+name+`"`) {
			t.Fatalf("expected tool %s in %s", name, b)
		}
	}
}
