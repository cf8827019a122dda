// Package event defines the visible-item model consumed by the callout
// placement engine. Events are produced by the filtering/map stage and are
// immutable for the duration of one placement pass.
package event

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

// Event is one visible marker on the map. Anchor is the marker's resolved
// screen position, not a geographic coordinate.
type Event struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Start      time.Time  `json:"start"`
	Venue      string     `json:"venue"`
	DistanceKm float64    `json:"distance_km,omitempty"`
	Anchor     geom.Point `json:"anchor"`
}

// SortByDistance orders events by ascending distance from the reference
// location. This order is significant: it determines placement priority.
func SortByDistance(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})
}

// ReadFile loads an event list from a JSON file.
func ReadFile(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}
	return events, nil
}

// WriteFile writes an event list to a JSON file.
func WriteFile(events []Event, path string) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
