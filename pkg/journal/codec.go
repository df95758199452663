package journal

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/questnote/pkg/entry"
)

// EncodeEntries serializes entries as a JSON array.
func EncodeEntries(entries []entry.DiaryEntry) ([]byte, error) {
	if entries == nil {
		entries = []entry.DiaryEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("journal: encode entries: %w", err)
	}
	return b, nil
}

// DecodeEntries parses a blob written by EncodeEntries. An empty blob is an
// empty collection.
func DecodeEntries(blob []byte) ([]entry.DiaryEntry, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	var out []entry.DiaryEntry
	if err := json.Unmarshal(blob, &out); err != nil {
		return nil, fmt.Errorf("journal: decode entries: %w", err)
	}
	return out, nil
}

// EncodeGames serializes game names as a JSON array.
func EncodeGames(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	b, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("journal: encode games: %w", err)
	}
	return b, nil
}

// DecodeGames parses a blob written by EncodeGames.
func DecodeGames(blob []byte) ([]string, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(blob, &out); err != nil {
		return nil, fmt.Errorf("journal: decode games: %w", err)
	}
	return out, nil
}
