package app

import (
	"sort"
	"time"

	"tableflip.dev/questnote/pkg/entry"
	"tableflip.dev/questnote/pkg/journal"
)

// ReportSection groups the entries of one game, newest first.
type ReportSection struct {
	Game    string
	Entries []entry.DiaryEntry
	Last    time.Time
}

// ReportResult summarizes play sessions recorded in a time window.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	Total    int
}

// Report returns entries recorded between since and until grouped by game.
// Sections are ordered by their most recent entry. Entries with unparsable
// dates are left out.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}

	grouped := make(map[string]*ReportSection)
	total := 0
	for _, e := range s.entries.All() {
		at, err := e.Time(s.loc)
		if err != nil {
			continue
		}
		if at.Before(since) || at.After(until) {
			continue
		}
		sec := grouped[e.Game]
		if sec == nil {
			sec = &ReportSection{Game: e.Game}
			grouped[e.Game] = sec
		}
		sec.Entries = append(sec.Entries, e)
		if at.After(sec.Last) {
			sec.Last = at
		}
		total++
	}

	sections := make([]ReportSection, 0, len(grouped))
	for _, sec := range grouped {
		journal.NewestFirst(s.loc)(sec.Entries)
		sections = append(sections, *sec)
	}
	sort.SliceStable(sections, func(i, j int) bool {
		if !sections[i].Last.Equal(sections[j].Last) {
			return sections[i].Last.After(sections[j].Last)
		}
		return sections[i].Game < sections[j].Game
	})

	return ReportResult{
		Since:    since,
		Until:    until,
		Sections: sections,
		Total:    total,
	}
}
