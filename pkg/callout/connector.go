package callout

import (
	"math"

	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

// arrowheadSize is the edge length of the connector arrowhead triangle.
const arrowheadSize = 8.0

// Connector is the routed indicator line from a marker anchor to a hover
// callout: a single-control-point quadratic curve plus an arrowhead
// terminating at the callout. Ephemeral; recomputed every time a hover
// callout is shown.
type Connector struct {
	Start     geom.Point    `json:"start"`
	End       geom.Point    `json:"end"`
	Control   geom.Point    `json:"control"`
	Arrowhead [3]geom.Point `json:"arrowhead"`
}

// Route computes the connector from anchor to the callout box. The
// connection point is the midpoint of whichever box edge faces the anchor,
// decided by comparing |dx| against |dy| between box center and anchor. The
// control point is the midpoint between anchor and connection point.
//
// Route always produces a path. For degenerate input (anchor at the box
// center of a zero-sized box) the curve direction defaults to pointing
// downward instead of evaluating atan2(0, 0).
func Route(anchor geom.Point, box geom.Rect) Connector {
	center := box.Center()
	dx := anchor.X - center.X
	dy := anchor.Y - center.Y

	var end geom.Point
	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			end = geom.Point{X: box.X, Y: center.Y}
		} else {
			end = geom.Point{X: box.Right(), Y: center.Y}
		}
	} else {
		if dy < 0 {
			end = geom.Point{X: center.X, Y: box.Y}
		} else {
			end = geom.Point{X: center.X, Y: box.Bottom()}
		}
	}

	control := geom.Point{
		X: (anchor.X + end.X) / 2,
		Y: (anchor.Y + end.Y) / 2,
	}

	return Connector{
		Start:     anchor,
		End:       end,
		Control:   control,
		Arrowhead: arrowhead(control, end),
	}
}

// arrowhead builds an isoceles triangle whose apex is the connection point
// and whose base is perpendicular to the local curve direction there.
func arrowhead(control, end geom.Point) [3]geom.Point {
	angle := math.Pi / 2 // downward default for a degenerate curve
	if control.X != end.X || control.Y != end.Y {
		angle = math.Atan2(end.Y-control.Y, end.X-control.X)
	}

	dirX, dirY := math.Cos(angle), math.Sin(angle)
	perpX, perpY := -dirY, dirX

	baseX := end.X - dirX*arrowheadSize
	baseY := end.Y - dirY*arrowheadSize
	half := arrowheadSize / 2

	return [3]geom.Point{
		end,
		{X: baseX + perpX*half, Y: baseY + perpY*half},
		{X: baseX - perpX*half, Y: baseY - perpY*half},
	}
}
