// Package geom provides the screen-space primitives used by the callout
// placement engine. All coordinates are in container pixels; the
// geographic-to-screen projection happens upstream in the map layer.
package geom

// Point is a position in container pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the pixel dimensions of a callout box.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Viewport is the current container size, passed explicitly into every
// placement call so the engine has no hidden dependency on a rendering
// runtime.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ClampAxis pulls v into [lo, hi]. When the interval is inverted (hi < lo,
// e.g. a viewport smaller than the box), lo wins so callers always get a
// usable coordinate instead of a negative region.
func ClampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampRect clamps the top-left corner of a box of the given size into the
// viewport, keeping margin clearance on every side.
func ClampRect(p Point, size Size, vp Viewport, margin float64) Point {
	return Point{
		X: ClampAxis(p.X, margin, vp.Width-size.W-margin),
		Y: ClampAxis(p.Y, margin, vp.Height-size.H-margin),
	}
}
