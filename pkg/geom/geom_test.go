package geom

import "testing"

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 50, 10, 100, 50},
		{"below", 5, 10, 100, 10},
		{"above", 150, 10, 100, 100},
		{"at lower bound", 10, 10, 100, 10},
		{"at upper bound", 100, 10, 100, 100},
		{"inverted interval", 50, 100, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampAxis(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("ClampAxis(%g, %g, %g) = %g, want %g", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampRect_InsideViewport(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	size := Size{W: 220, H: 140}

	got := ClampRect(Point{X: 300, Y: 200}, size, vp, 10)
	if got.X != 300 || got.Y != 200 {
		t.Errorf("ClampRect() = %+v, want unchanged (300, 200)", got)
	}
}

func TestClampRect_NegativeCoordinates(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	size := Size{W: 220, H: 140}

	got := ClampRect(Point{X: -500, Y: -500}, size, vp, 10)
	if got.X != 10 || got.Y != 10 {
		t.Errorf("ClampRect() = %+v, want (10, 10)", got)
	}
}

func TestClampRect_BeyondViewport(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	size := Size{W: 220, H: 140}

	got := ClampRect(Point{X: 5000, Y: 5000}, size, vp, 10)
	if got.X != 800-220-10 || got.Y != 600-140-10 {
		t.Errorf("ClampRect() = %+v, want (570, 450)", got)
	}
}

func TestClampRect_ViewportSmallerThanBox(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	size := Size{W: 220, H: 140}

	got := ClampRect(Point{X: 50, Y: 50}, size, vp, 10)
	if got.X != 10 || got.Y != 10 {
		t.Errorf("ClampRect() = %+v, want margin position (10, 10)", got)
	}
}

func TestRect_Accessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	if got := r.Right(); got != 110 {
		t.Errorf("Right() = %g, want 110", got)
	}
	if got := r.Bottom(); got != 70 {
		t.Errorf("Bottom() = %g, want 70", got)
	}
	if got := r.Center(); got.X != 60 || got.Y != 45 {
		t.Errorf("Center() = %+v, want (60, 45)", got)
	}
}
