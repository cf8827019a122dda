package callout

import "github.com/feileberlin/krwl.in-sub005/pkg/geom"

// Edge identifies a viewport edge for hover callout placement.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// EdgePlacement is the resolved position of a hover callout pinned to a
// viewport edge. At most one hover callout is live at a time, so this
// variant needs no collision index.
type EdgePlacement struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
	Edge Edge    `json:"edge"`
}

// Box returns the callout rectangle implied by the placement.
func (p EdgePlacement) Box(size geom.Size) geom.Rect {
	return geom.Rect{X: p.Left, Y: p.Top, W: size.W, H: size.H}
}

// PlaceAtEdge pins a hover callout to the viewport edge nearest the anchor,
// flush against it with the configured edge margin, centering the other axis
// on the anchor and clamping within bounds. Top-edge placement additionally
// reserves cfg.HeaderOffset to clear the fixed header overlay.
//
// Ties between clearances resolve in left, right, top, bottom order. A
// non-positive viewport degrades to margin-clamped positions rather than
// producing negative regions.
func PlaceAtEdge(anchor geom.Point, size geom.Size, vp geom.Viewport, cfg Config) EdgePlacement {
	distLeft := anchor.X
	distRight := vp.Width - anchor.X
	distTop := anchor.Y
	distBottom := vp.Height - anchor.Y

	edge := EdgeLeft
	best := distLeft
	if distRight < best {
		edge, best = EdgeRight, distRight
	}
	if distTop < best {
		edge, best = EdgeTop, distTop
	}
	if distBottom < best {
		edge = EdgeBottom
	}

	centeredX := geom.ClampAxis(anchor.X-size.W/2, cfg.Margin, vp.Width-size.W-cfg.Margin)
	centeredY := geom.ClampAxis(anchor.Y-size.H/2, cfg.Margin, vp.Height-size.H-cfg.Margin)

	var top, left float64
	switch edge {
	case EdgeLeft:
		left = cfg.EdgeMargin
		top = centeredY
	case EdgeRight:
		left = geom.ClampAxis(vp.Width-size.W-cfg.EdgeMargin, cfg.Margin, vp.Width-size.W)
		top = centeredY
	case EdgeTop:
		top = geom.ClampAxis(cfg.HeaderOffset+cfg.EdgeMargin, cfg.Margin, vp.Height-size.H)
		left = centeredX
	case EdgeBottom:
		top = geom.ClampAxis(vp.Height-size.H-cfg.EdgeMargin, cfg.Margin, vp.Height-size.H)
		left = centeredX
	}

	return EdgePlacement{Top: top, Left: left, Edge: edge}
}
