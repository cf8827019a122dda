package callout

import (
	"strings"
	"time"

	"github.com/feileberlin/krwl.in-sub005/pkg/event"
)

// Entry is one unique event within a group after deduplication. Duplicates
// holds every absorbed original including the representative itself, so
// DuplicateCount == len(Duplicates) and is at least 1.
type Entry struct {
	Event          event.Event   `json:"event"`
	DuplicateCount int           `json:"duplicate_count"`
	Duplicates     []event.Event `json:"-"`
}

// Dedupe collapses events within one group that share a normalized title and
// the exact same start time. The first occurrence becomes the representative;
// output preserves first-occurrence order. A group of size 1 yields one entry
// with DuplicateCount 1.
func Dedupe(group []event.Event) []Entry {
	entries := make([]Entry, 0, len(group))
	byKey := make(map[string]int, len(group))

	for _, e := range group {
		key := dedupeKey(e.Title, e.Start)
		if i, ok := byKey[key]; ok {
			entries[i].DuplicateCount++
			entries[i].Duplicates = append(entries[i].Duplicates, e)
			continue
		}
		byKey[key] = len(entries)
		entries = append(entries, Entry{
			Event:          e,
			DuplicateCount: 1,
			Duplicates:     []event.Event{e},
		})
	}
	return entries
}

// dedupeKey normalizes the title (whitespace and case insensitive) and pins
// the exact start instant, not just the date.
func dedupeKey(title string, start time.Time) string {
	norm := strings.ToLower(strings.TrimSpace(title))
	return norm + "|" + start.UTC().Format(time.RFC3339Nano)
}
