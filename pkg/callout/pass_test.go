package callout

import (
	"testing"
	"time"

	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

func TestPass_EmptyInput(t *testing.T) {
	pass := NewPass(DefaultConfig(), 42)

	if got := pass.Run(nil, geom.Viewport{Width: 1280, Height: 800}); got != nil {
		t.Errorf("Run(nil) = %v, want nil", got)
	}
}

func TestPass_OneCalloutPerUniqueEntry(t *testing.T) {
	start := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	shared := geom.Point{X: 640, Y: 400}

	events := []event.Event{
		{ID: "a", Title: "Concert", Start: start, Anchor: shared},
		{ID: "b", Title: "concert", Start: start, Anchor: shared},
		{ID: "c", Title: "Reading", Start: start, Anchor: shared},
		{ID: "d", Title: "Market", Start: start, Anchor: geom.Point{X: 200, Y: 200}},
	}

	placements := NewPass(DefaultConfig(), 42).Run(events, geom.Viewport{Width: 1280, Height: 800})

	if len(placements) != 3 {
		t.Fatalf("Run() produced %d placements, want 3", len(placements))
	}
	if placements[0].Event.ID != "a" || placements[0].DuplicateCount != 2 {
		t.Errorf("placements[0] = %s count %d, want a with count 2", placements[0].Event.ID, placements[0].DuplicateCount)
	}
	if placements[1].Event.ID != "c" {
		t.Errorf("placements[1] = %s, want c (group order before next group)", placements[1].Event.ID)
	}
	if placements[2].Event.ID != "d" {
		t.Errorf("placements[2] = %s, want d", placements[2].Event.ID)
	}
}

func TestPass_EveryPlacementHasStrategy(t *testing.T) {
	events := []event.Event{
		{ID: "a", Title: "One", Anchor: geom.Point{X: 100, Y: 100}},
		{ID: "b", Title: "Two", Anchor: geom.Point{X: 700, Y: 500}},
	}

	placements := NewPass(DefaultConfig(), 42).Run(events, geom.Viewport{Width: 1280, Height: 800})

	for i, p := range placements {
		switch p.Strategy {
		case StrategyPolar, StrategySpiral, StrategyLattice:
		default:
			t.Errorf("placements[%d].Strategy = %q, want a known strategy", i, p.Strategy)
		}
	}
}

func TestPass_ResetsCollisionStateBetweenRuns(t *testing.T) {
	events := []event.Event{
		{ID: "a", Title: "One", Anchor: geom.Point{X: 400, Y: 300}},
		{ID: "b", Title: "Two", Anchor: geom.Point{X: 800, Y: 500}},
	}
	vp := geom.Viewport{Width: 1280, Height: 800}

	pass := NewPass(DefaultConfig(), 42)
	pass.Run(events, vp)
	if pass.Index().Len() != 2 {
		t.Fatalf("index holds %d boxes after first run, want 2", pass.Index().Len())
	}

	pass.Run(events, vp)
	if pass.Index().Len() != 2 {
		t.Errorf("index holds %d boxes after second run, want 2 (stale state leaked)", pass.Index().Len())
	}
}

func TestPass_BoxesUseConfiguredSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CalloutWidth = 180
	cfg.CalloutHeight = 90

	events := []event.Event{{ID: "a", Title: "One", Anchor: geom.Point{X: 400, Y: 300}}}
	placements := NewPass(cfg, 42).Run(events, geom.Viewport{Width: 1280, Height: 800})

	if len(placements) != 1 {
		t.Fatalf("Run() produced %d placements, want 1", len(placements))
	}
	if placements[0].Box.W != 180 || placements[0].Box.H != 90 {
		t.Errorf("box size = %gx%g, want 180x90", placements[0].Box.W, placements[0].Box.H)
	}
}
