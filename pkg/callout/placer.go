package callout

import (
	"math/rand/v2"

	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
	"github.com/feileberlin/krwl.in-sub005/pkg/observability"
)

// Placer places one callout per unique entry by trying an ordered chain of
// strategies until one succeeds. The lattice tail of the chain guarantees
// termination, so Place always returns a box.
type Placer struct {
	cfg        Config
	strategies []Strategy
}

// NewPlacer builds the standard polar → spiral → lattice chain with a seeded
// generator. Identical seeds reproduce identical passes, which is what the
// property tests rely on; production callers pass an entropy-derived seed.
func NewPlacer(cfg Config, seed uint64) *Placer {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	return NewPlacerWithRand(cfg, rng)
}

// NewPlacerWithRand builds the standard chain around an injected generator.
func NewPlacerWithRand(cfg Config, rng *rand.Rand) *Placer {
	return &Placer{
		cfg: cfg,
		strategies: []Strategy{
			&polarStrategy{cfg: cfg, rng: rng},
			&spiralStrategy{cfg: cfg, rng: rng},
			&latticeStrategy{cfg: cfg},
		},
	}
}

// Place computes a position for the entry at the given display index and
// commits the winning box to idx before returning, so the next call sees it.
// The returned strategy name identifies which stage of the chain won.
func (p *Placer) Place(anchor geom.Point, index int, size geom.Size, vp geom.Viewport, idx *CollisionIndex) (geom.Rect, string) {
	req := Request{Anchor: anchor, Index: index, Size: size, Viewport: vp}

	for _, s := range p.strategies {
		pos, ok := s.Place(req, idx)
		if !ok {
			observability.Pass().OnFallback(s.Name(), index)
			continue
		}
		box := geom.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
		idx.Commit(box)
		return box, s.Name()
	}

	// Unreachable with the standard chain; kept so a custom chain without a
	// terminal strategy still returns a clamped position.
	pos := geom.ClampRect(anchor, size, vp, p.cfg.Margin)
	box := geom.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
	idx.Commit(box)
	return box, ""
}
