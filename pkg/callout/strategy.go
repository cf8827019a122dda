package callout

import (
	"math"
	"math/rand/v2"

	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

// Strategy names reported by the Placer. Lattice placements are the
// guaranteed-termination floor and may visually overlap under extreme
// density; callers flag them accordingly.
const (
	StrategyPolar   = "polar"
	StrategySpiral  = "spiral"
	StrategyLattice = "lattice"
)

// Golden-angle spiral parameters. The 0.618 turn fraction is the golden
// angle (~137.5°), which distributes successive candidates with minimal
// clustering as the radius grows.
const (
	spiralBaseRadius = 80.0
	spiralStep       = 30.0
	goldenTurn       = 0.618
	spiralJitter     = 0.25 // radians, ~±14°
)

// Lattice cell slack beyond box size + padding.
const (
	latticeSlackX = 15.0
	latticeSlackY = 5.0
)

// Request carries everything a strategy needs to propose a position for one
// entry. Index is the 0-based position in the overall display order; it only
// biases angle selection so successive entries fan out differently.
type Request struct {
	Anchor   geom.Point
	Index    int
	Size     geom.Size
	Viewport geom.Viewport
}

// Strategy proposes a top-left position for one callout. Implementations do
// not commit to the index; the Placer does that once a strategy succeeds.
// The chain is an explicit ordered list so a fourth strategy can be added
// without growing branching complexity.
type Strategy interface {
	Name() string
	Place(req Request, idx *CollisionIndex) (geom.Point, bool)
}

// polarStrategy draws random polar offsets around the anchor. The uniform
// angle term supplies per-load variety; the index term adds a repeatable
// angular offset per entry.
type polarStrategy struct {
	cfg Config
	rng *rand.Rand
}

func (s *polarStrategy) Name() string { return StrategyPolar }

func (s *polarStrategy) Place(req Request, idx *CollisionIndex) (geom.Point, bool) {
	for try := 0; try < s.cfg.PolarAttempts; try++ {
		dist := s.cfg.MinDistance + s.rng.Float64()*(s.cfg.MaxDistance-s.cfg.MinDistance)
		angle := s.rng.Float64()*2*math.Pi + float64(req.Index)*0.5

		p := geom.Point{
			X: req.Anchor.X + math.Cos(angle)*dist,
			Y: req.Anchor.Y + math.Sin(angle)*dist,
		}
		p = geom.ClampRect(p, req.Size, req.Viewport, s.cfg.Margin)

		box := geom.Rect{X: p.X, Y: p.Y, W: req.Size.W, H: req.Size.H}
		if !idx.Overlaps(box) {
			return p, true
		}
	}
	return geom.Point{}, false
}

// spiralStrategy walks a golden-angle spiral outward from the anchor with a
// small random jitter per step.
type spiralStrategy struct {
	cfg Config
	rng *rand.Rand
}

func (s *spiralStrategy) Name() string { return StrategySpiral }

func (s *spiralStrategy) Place(req Request, idx *CollisionIndex) (geom.Point, bool) {
	for i := 0; i < s.cfg.SpiralAttempts; i++ {
		radius := spiralBaseRadius + spiralStep*float64(i)
		jitter := (s.rng.Float64()*2 - 1) * spiralJitter
		angle := float64(req.Index+i)*goldenTurn*2*math.Pi + jitter

		p := geom.Point{
			X: req.Anchor.X + math.Cos(angle)*radius,
			Y: req.Anchor.Y + math.Sin(angle)*radius,
		}
		p = geom.ClampRect(p, req.Size, req.Viewport, s.cfg.Margin)

		box := geom.Rect{X: p.X, Y: p.Y, W: req.Size.W, H: req.Size.H}
		if !idx.Overlaps(box) {
			return p, true
		}
	}
	return geom.Point{}, false
}

// latticeStrategy tiles the viewport into fixed cells indexed by display
// order. It is fully deterministic given index and viewport size, never
// fails, and intentionally skips the collision re-check: it is the
// termination floor, not a quality guarantee.
type latticeStrategy struct {
	cfg Config
}

func (s *latticeStrategy) Name() string { return StrategyLattice }

func (s *latticeStrategy) Place(req Request, idx *CollisionIndex) (geom.Point, bool) {
	cellW := req.Size.W + s.cfg.Padding + latticeSlackX
	cellH := req.Size.H + s.cfg.Padding + latticeSlackY

	cols := int((req.Viewport.Width - 2*s.cfg.Margin) / cellW)
	if cols < 1 {
		cols = 1
	}

	col := req.Index % cols
	row := req.Index / cols

	p := geom.Point{
		X: float64(col)*cellW + s.cfg.Margin,
		Y: float64(row)*cellH + s.cfg.Margin,
	}
	return geom.ClampRect(p, req.Size, req.Viewport, s.cfg.Margin), true
}
