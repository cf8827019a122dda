package callout

import (
	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

// Placement is one rendered callout: the unique entry, its realized box and
// the strategy that produced it. Positions are recomputed from scratch on
// every pass; only the event ID correlates a callout back to click and
// bookmark state.
type Placement struct {
	Entry
	Box      geom.Rect `json:"box"`
	Strategy string    `json:"strategy"`
}

// Pass runs complete placement passes. A Pass owns its CollisionIndex and
// resets it at the start of every run, so no collision state survives
// between passes.
type Pass struct {
	cfg    Config
	placer *Placer
	index  *CollisionIndex
}

// NewPass creates a pass runner with the standard strategy chain.
func NewPass(cfg Config, seed uint64) *Pass {
	return &Pass{
		cfg:    cfg,
		placer: NewPlacer(cfg, seed),
		index:  NewCollisionIndex(cfg.Padding),
	}
}

// Run groups, dedupes and places the visible events against the viewport.
// Events are consumed in input order (ascending distance); groups are placed
// in first-seen order, entries within a group in arrival order. Empty input
// yields no placements.
func (p *Pass) Run(events []event.Event, vp geom.Viewport) []Placement {
	p.index.Reset()
	if len(events) == 0 {
		return nil
	}

	size := geom.Size{W: p.cfg.CalloutWidth, H: p.cfg.CalloutHeight}
	groups := GroupByAnchor(events)

	var placements []Placement
	displayIndex := 0
	for _, key := range groups.Keys() {
		for _, entry := range Dedupe(groups.Group(key)) {
			box, strategy := p.placer.Place(entry.Event.Anchor, displayIndex, size, vp, p.index)
			placements = append(placements, Placement{
				Entry:    entry,
				Box:      box,
				Strategy: strategy,
			})
			displayIndex++
		}
	}
	return placements
}

// Index exposes the collision index, for diagnostics and tests.
func (p *Pass) Index() *CollisionIndex { return p.index }
