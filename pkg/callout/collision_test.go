package callout

import (
	"testing"

	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

func TestCollisionIndex_EmptyNeverOverlaps(t *testing.T) {
	idx := NewCollisionIndex(15)

	if idx.Overlaps(geom.Rect{X: 0, Y: 0, W: 220, H: 140}) {
		t.Error("Overlaps() on empty index = true, want false")
	}
}

func TestCollisionIndex_PaddedOverlap(t *testing.T) {
	idx := NewCollisionIndex(15)
	idx.Commit(geom.Rect{X: 100, Y: 100, W: 100, H: 100})

	tests := []struct {
		name      string
		candidate geom.Rect
		want      bool
	}{
		{"direct overlap", geom.Rect{X: 150, Y: 150, W: 100, H: 100}, true},
		{"touching edges", geom.Rect{X: 200, Y: 100, W: 100, H: 100}, true},
		{"inside padding", geom.Rect{X: 210, Y: 100, W: 100, H: 100}, true},
		{"exactly at padding", geom.Rect{X: 215, Y: 100, W: 100, H: 100}, true},
		{"beyond padding", geom.Rect{X: 216, Y: 100, W: 100, H: 100}, false},
		{"far away", geom.Rect{X: 500, Y: 500, W: 100, H: 100}, false},
		{"separated vertically only", geom.Rect{X: 100, Y: 216, W: 100, H: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.Overlaps(tt.candidate); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestCollisionIndex_CommitIsVisible(t *testing.T) {
	idx := NewCollisionIndex(10)
	box := geom.Rect{X: 50, Y: 50, W: 200, H: 100}

	if idx.Overlaps(box) {
		t.Fatal("Overlaps() before Commit = true, want false")
	}
	idx.Commit(box)
	if !idx.Overlaps(box) {
		t.Error("Overlaps() after Commit = false, want true")
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
}

func TestCollisionIndex_ResetClearsState(t *testing.T) {
	idx := NewCollisionIndex(10)
	box := geom.Rect{X: 50, Y: 50, W: 200, H: 100}

	idx.Commit(box)
	idx.Commit(geom.Rect{X: 400, Y: 400, W: 200, H: 100})
	idx.Reset()

	if idx.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", idx.Len())
	}
	if idx.Overlaps(box) {
		t.Error("Overlaps() after Reset = true, want false")
	}
}

func TestCollisionIndex_BoxesReturnsCopy(t *testing.T) {
	idx := NewCollisionIndex(10)
	idx.Commit(geom.Rect{X: 1, Y: 2, W: 3, H: 4})

	boxes := idx.Boxes()
	boxes[0].X = 999

	if idx.Boxes()[0].X != 1 {
		t.Error("mutating Boxes() result changed the index")
	}
}
