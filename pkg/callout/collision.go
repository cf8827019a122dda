package callout

import "github.com/feileberlin/krwl.in-sub005/pkg/geom"

// CollisionIndex tracks the boxes committed during one placement pass and
// answers padded axis-aligned overlap queries. Queries are O(n) over the
// committed set, which is acceptable because n is bounded by the external
// max-callouts cap.
//
// The index must be Reset before every pass; stale boxes from a previous
// pass must never leak into the next one.
type CollisionIndex struct {
	padding float64
	boxes   []geom.Rect
}

// NewCollisionIndex creates an index enforcing the given clearance between
// boxes.
func NewCollisionIndex(padding float64) *CollisionIndex {
	return &CollisionIndex{padding: padding}
}

// Overlaps reports whether candidate comes within the padding clearance of
// any committed box. Two boxes overlap iff they are not fully separated with
// the padding on every side.
func (c *CollisionIndex) Overlaps(candidate geom.Rect) bool {
	for _, b := range c.boxes {
		separated := candidate.Right()+c.padding < b.X ||
			b.Right()+c.padding < candidate.X ||
			candidate.Bottom()+c.padding < b.Y ||
			b.Bottom()+c.padding < candidate.Y
		if !separated {
			return true
		}
	}
	return false
}

// Commit registers a placed box so subsequent queries see it.
func (c *CollisionIndex) Commit(box geom.Rect) {
	c.boxes = append(c.boxes, box)
}

// Reset clears all committed boxes. Called once per placement pass before
// the first entry is placed.
func (c *CollisionIndex) Reset() {
	c.boxes = c.boxes[:0]
}

// Len returns the number of committed boxes.
func (c *CollisionIndex) Len() int { return len(c.boxes) }

// Boxes returns a copy of the committed boxes, for diagnostics and tests.
func (c *CollisionIndex) Boxes() []geom.Rect {
	out := make([]geom.Rect, len(c.boxes))
	copy(out, c.boxes)
	return out
}
