package callout

import (
	"strconv"

	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

// anchorKeyPrecision is the number of decimal places an anchor coordinate is
// quantized to when building a group key. Markers whose anchors agree to this
// precision are visually indistinguishable and share one group.
const anchorKeyPrecision = 4

// GroupIndex buckets events by quantized anchor coordinate, preserving the
// first-seen order of groups. The input order within each group is preserved
// as well; together they determine placement priority.
type GroupIndex struct {
	keys   []string
	groups map[string][]event.Event
}

// GroupByAnchor builds a GroupIndex from the visible-event list. The input
// is expected to be ordered by ascending distance from the reference
// location. Pure: the input slice is not modified. An empty input yields an
// empty index.
func GroupByAnchor(events []event.Event) *GroupIndex {
	idx := &GroupIndex{groups: make(map[string][]event.Event, len(events))}
	for _, e := range events {
		key := AnchorKey(e.Anchor)
		if _, ok := idx.groups[key]; !ok {
			idx.keys = append(idx.keys, key)
		}
		idx.groups[key] = append(idx.groups[key], e)
	}
	return idx
}

// Keys returns the group keys in first-seen order.
func (g *GroupIndex) Keys() []string { return g.keys }

// Group returns the events bucketed under key, in input order.
func (g *GroupIndex) Group(key string) []event.Event { return g.groups[key] }

// Len returns the number of distinct groups.
func (g *GroupIndex) Len() int { return len(g.keys) }

// AnchorKey quantizes an anchor point to a stable string key.
func AnchorKey(p geom.Point) string {
	x := strconv.FormatFloat(p.X, 'f', anchorKeyPrecision, 64)
	y := strconv.FormatFloat(p.Y, 'f', anchorKeyPrecision, 64)
	return x + "|" + y
}
