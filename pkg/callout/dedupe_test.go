package callout

import (
	"testing"
	"time"

	"github.com/feileberlin/krwl.in-sub005/pkg/event"
)

func TestDedupe_TitleNormalizationAndTime(t *testing.T) {
	start := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	later := start.Add(time.Hour)

	group := []event.Event{
		{ID: "a", Title: "Concert", Start: start},
		{ID: "b", Title: "concert ", Start: start},
		{ID: "c", Title: "Concert", Start: later},
	}

	entries := Dedupe(group)

	if len(entries) != 2 {
		t.Fatalf("Dedupe() returned %d entries, want 2", len(entries))
	}
	if entries[0].Event.ID != "a" {
		t.Errorf("representative = %s, want a (first occurrence)", entries[0].Event.ID)
	}
	if entries[0].DuplicateCount != 2 {
		t.Errorf("entries[0].DuplicateCount = %d, want 2", entries[0].DuplicateCount)
	}
	if entries[1].DuplicateCount != 1 {
		t.Errorf("entries[1].DuplicateCount = %d, want 1", entries[1].DuplicateCount)
	}
}

func TestDedupe_CountMatchesDuplicatesLength(t *testing.T) {
	start := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	group := []event.Event{
		{ID: "a", Title: "Show", Start: start},
		{ID: "b", Title: "show", Start: start},
		{ID: "c", Title: "SHOW", Start: start},
		{ID: "d", Title: "Other", Start: start},
	}

	for _, entry := range Dedupe(group) {
		if entry.DuplicateCount != len(entry.Duplicates) {
			t.Errorf("entry %s: DuplicateCount = %d, len(Duplicates) = %d",
				entry.Event.ID, entry.DuplicateCount, len(entry.Duplicates))
		}
		if entry.DuplicateCount < 1 {
			t.Errorf("entry %s: DuplicateCount = %d, want >= 1", entry.Event.ID, entry.DuplicateCount)
		}
	}
}

func TestDedupe_SingleEventGroup(t *testing.T) {
	group := []event.Event{{ID: "a", Title: "Solo", Start: time.Now()}}

	entries := Dedupe(group)

	if len(entries) != 1 {
		t.Fatalf("Dedupe() returned %d entries, want 1", len(entries))
	}
	if entries[0].DuplicateCount != 1 {
		t.Errorf("DuplicateCount = %d, want 1", entries[0].DuplicateCount)
	}
	if len(entries[0].Duplicates) != 1 || entries[0].Duplicates[0].ID != "a" {
		t.Errorf("Duplicates = %v, want the representative itself", entries[0].Duplicates)
	}
}

func TestDedupe_DifferentTimezonesSameInstant(t *testing.T) {
	utc := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	berlin := utc.In(time.FixedZone("CEST", 2*3600))

	group := []event.Event{
		{ID: "a", Title: "Open Air", Start: utc},
		{ID: "b", Title: "Open Air", Start: berlin},
	}

	entries := Dedupe(group)

	if len(entries) != 1 {
		t.Fatalf("Dedupe() returned %d entries, want 1 (same instant)", len(entries))
	}
	if entries[0].DuplicateCount != 2 {
		t.Errorf("DuplicateCount = %d, want 2", entries[0].DuplicateCount)
	}
}

func TestDedupe_PreservesFirstOccurrenceOrder(t *testing.T) {
	start := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	group := []event.Event{
		{ID: "a", Title: "Third", Start: start},
		{ID: "b", Title: "First", Start: start},
		{ID: "c", Title: "third", Start: start},
	}

	entries := Dedupe(group)

	if len(entries) != 2 {
		t.Fatalf("Dedupe() returned %d entries, want 2", len(entries))
	}
	if entries[0].Event.ID != "a" || entries[1].Event.ID != "b" {
		t.Errorf("order = [%s, %s], want [a, b]", entries[0].Event.ID, entries[1].Event.ID)
	}
}
