package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiskvGetSet(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok, err := p.Get(KeyGames); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := p.Set(KeyGames, []byte(`["Zelda"]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := p.Get(KeyGames)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `["Zelda"]` {
		t.Fatalf("expected stored blob, got %q", got)
	}

	if _, err := os.Stat(filepath.Join(base, KeyGames)); err != nil {
		t.Fatalf("expected flat file for key: %v", err)
	}

	// A second store over the same directory sees the data.
	again, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok, err = again.Get(KeyGames)
	if err != nil || !ok || string(got) != `["Zelda"]` {
		t.Fatalf("expected persisted blob, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestDiskvEraseAndKeys(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, k := range []string{KeyGames, KeyEntries} {
		if err := p.Set(k, []byte(`[]`)); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	keys := p.Keys(context.Background())
	sort.Strings(keys)
	if diff := cmp.Diff([]string{KeyEntries, KeyGames}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	if err := p.Erase(KeyGames); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase(KeyGames); err != nil {
		t.Fatalf("erase of missing key should be a no-op: %v", err)
	}
	if _, ok, _ := p.Get(KeyGames); ok {
		t.Fatalf("expected key to be gone")
	}
}

func TestInvalidKeys(t *testing.T) {
	m := NewMemory()
	for _, k := range []string{"", "a/b", `a\b`, ".hidden"} {
		if err := m.Set(k, nil); err == nil {
			t.Fatalf("expected error for key %q", k)
		}
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	p, err := Load(testConfig{path: "~/journal"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Set(KeyEntries, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "journal", KeyEntries)); err != nil {
		t.Fatalf("expected store under home: %v", err)
	}
}
