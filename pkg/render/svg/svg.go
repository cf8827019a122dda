// Package svg renders placement passes as standalone SVG documents, used by
// the CLI for visual inspection and by the preview server.
package svg

import (
	"bytes"
	"fmt"
	"html"

	"github.com/feileberlin/krwl.in-sub005/pkg/callout"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

const calloutCSS = `
    .callout { fill: #fffef7; stroke: #2b2b2b; stroke-width: 1.5; rx: 6; }
    .callout.lattice { stroke-dasharray: 4 3; }
    .callout-title { font: 13px sans-serif; fill: #2b2b2b; }
    .callout-meta { font: 11px sans-serif; fill: #6b6b6b; }
    .badge { fill: #d64545; }
    .badge-text { font: bold 10px sans-serif; fill: #ffffff; text-anchor: middle; }
    .bookmark { fill: #e8b931; }
    .marker { fill: #3a6ea5; stroke: #ffffff; stroke-width: 1.5; }
    .connector { fill: none; stroke: #2b2b2b; stroke-width: 1.5; }
    .arrowhead { fill: #2b2b2b; }`

type Option func(*renderer)

type renderer struct {
	bookmarks map[string]bool
	hover     *hover
	anchors   bool
}

type hover struct {
	box       geom.Rect
	connector callout.Connector
	title     string
}

// WithBookmarks marks placements whose event ID is in the set with a
// bookmark glyph. Badge state only; geometry is untouched.
func WithBookmarks(set map[string]bool) Option {
	return func(r *renderer) { r.bookmarks = set }
}

// WithHover overlays a hover callout and its routed connector.
func WithHover(box geom.Rect, conn callout.Connector, title string) Option {
	return func(r *renderer) { r.hover = &hover{box: box, connector: conn, title: title} }
}

// WithoutAnchors suppresses the marker dots.
func WithoutAnchors() Option {
	return func(r *renderer) { r.anchors = false }
}

// Render produces a standalone SVG document for one placement pass.
func Render(vp geom.Viewport, placements []callout.Placement, opts ...Option) []byte {
	r := renderer{anchors: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.Width, vp.Height, vp.Width, vp.Height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", calloutCSS)

	if r.anchors {
		for _, p := range placements {
			renderMarker(&buf, p.Event.Anchor)
		}
	}

	for _, p := range placements {
		renderCallout(&buf, &r, p)
	}

	if r.hover != nil {
		renderHover(&buf, r.hover)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderMarker(buf *bytes.Buffer, anchor geom.Point) {
	fmt.Fprintf(buf, `  <circle class="marker" cx="%.1f" cy="%.1f" r="5"/>`+"\n", anchor.X, anchor.Y)
}

func renderCallout(buf *bytes.Buffer, r *renderer, p callout.Placement) {
	class := "callout"
	if p.Strategy == callout.StrategyLattice {
		class += " lattice"
	}

	fmt.Fprintf(buf, `  <g id="callout-%s">`+"\n", html.EscapeString(p.Event.ID))
	fmt.Fprintf(buf, `    <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		class, p.Box.X, p.Box.Y, p.Box.W, p.Box.H)
	fmt.Fprintf(buf, `    <text class="callout-title" x="%.1f" y="%.1f">%s</text>`+"\n",
		p.Box.X+10, p.Box.Y+22, html.EscapeString(p.Event.Title))
	fmt.Fprintf(buf, `    <text class="callout-meta" x="%.1f" y="%.1f">%s</text>`+"\n",
		p.Box.X+10, p.Box.Y+40, html.EscapeString(p.Event.Venue))

	if p.DuplicateCount > 1 {
		renderBadge(buf, p)
	}
	if r.bookmarks[p.Event.ID] {
		renderBookmark(buf, p.Box)
	}
	buf.WriteString("  </g>\n")
}

// renderBadge draws the duplicate-count badge in the top-right corner.
func renderBadge(buf *bytes.Buffer, p callout.Placement) {
	cx, cy := p.Box.Right()-4, p.Box.Y+4
	fmt.Fprintf(buf, `    <circle class="badge" cx="%.1f" cy="%.1f" r="10"/>`+"\n", cx, cy)
	fmt.Fprintf(buf, `    <text class="badge-text" x="%.1f" y="%.1f">%d</text>`+"\n", cx, cy+3.5, p.DuplicateCount)
}

// renderBookmark draws a small star next to the title.
func renderBookmark(buf *bytes.Buffer, box geom.Rect) {
	x, y := box.X+box.W-24, box.Y+14
	fmt.Fprintf(buf, `    <path class="bookmark" d="M%.1f %.1f l2.4 4.8 5.3 .8 -3.8 3.7 .9 5.3 -4.8 -2.5 -4.8 2.5 .9 -5.3 -3.8 -3.7 5.3 -.8 z"/>`+"\n", x, y)
}

func renderHover(buf *bytes.Buffer, h *hover) {
	c := h.connector
	fmt.Fprintf(buf, `  <path class="connector" d="M%.1f %.1f Q%.1f %.1f %.1f %.1f"/>`+"\n",
		c.Start.X, c.Start.Y, c.Control.X, c.Control.Y, c.End.X, c.End.Y)
	fmt.Fprintf(buf, `  <polygon class="arrowhead" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f"/>`+"\n",
		c.Arrowhead[0].X, c.Arrowhead[0].Y, c.Arrowhead[1].X, c.Arrowhead[1].Y, c.Arrowhead[2].X, c.Arrowhead[2].Y)
	fmt.Fprintf(buf, `  <rect class="callout" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		h.box.X, h.box.Y, h.box.W, h.box.H)
	fmt.Fprintf(buf, `  <text class="callout-title" x="%.1f" y="%.1f">%s</text>`+"\n",
		h.box.X+10, h.box.Y+22, html.EscapeString(h.title))
}
