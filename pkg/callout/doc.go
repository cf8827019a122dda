// Package callout implements the annotation placement engine for the event
// map: grouping of markers that share a quantized anchor point, per-group
// deduplication, randomized collision-tested placement of one callout per
// unique event, and the deterministic edge-anchored hover variant with its
// routed connector curve.
//
// # Placement pass
//
// A pass is triggered by a filter change or viewport resize and recomputes
// every position from scratch; nothing is persisted between passes. The flow
// is
//
//	events → GroupByAnchor → Dedupe (per group) → Placer → []Placement
//
// The Placer tries an ordered chain of strategies for each entry: randomized
// polar attempts around the anchor, then a golden-angle spiral, then a fixed
// lattice that always terminates. Every winning box is committed to the
// CollisionIndex before the next entry is placed.
//
// # Hover callouts
//
// Hover placement bypasses grouping and deduplication: exactly one hover
// callout is live at a time, pinned to the viewport edge nearest the anchor
// and connected to it by a quadratic curve with an arrowhead.
//
// # Randomness
//
// Strategies draw from an injected seeded generator so property tests can
// assert the no-overlap invariant deterministically across many seeds.
// Production callers seed from entropy to get per-load variety.
package callout
