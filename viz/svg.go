package viz

import (
	"bytes"
	"math"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/vizgraph/core"
)

// Rendering defaults, used when a node's data bag carries no layout.
const (
	defaultRadius     = 12.0
	defaultCanvasSize = 640
	arrowLength       = 8.0
	arrowSpreadRad    = math.Pi / 7
)

const (
	nodeStyle  = "fill:white;stroke:black;stroke-width:2"
	edgeStyle  = "stroke:black;stroke-width:1.5"
	labelStyle = "text-anchor:middle;dominant-baseline:central;font-size:11px"
)

// SVG renders a graph into an in-memory SVG document. Positions come from
// each node's data bag (KeyX/KeyY/KeyRadius); edge segments are trimmed by
// the endpoint radii so lines meet circle borders, and directed edges get an
// arrowhead at the target side.
//
// The document is rebuilt from scratch on every Draw/Refresh, so Refresh is
// idempotent: an unchanged graph produces byte-identical output.
type SVG struct {
	graph         *core.Graph
	width, height int
	buf           bytes.Buffer
}

// NewSVG creates an SVG renderer with the given canvas size; non-positive
// dimensions fall back to a square default canvas.
// Returns ErrNilGraph if g is nil.
func NewSVG(g *core.Graph, width, height int) (*SVG, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if width <= 0 {
		width = defaultCanvasSize
	}
	if height <= 0 {
		height = defaultCanvasSize
	}

	return &SVG{graph: g, width: width, height: height}, nil
}

// Draw renders the current graph state into the internal buffer.
// Complexity: O(V log V + E log E).
func (r *SVG) Draw() error {
	return r.render()
}

// Refresh discards the previous document and renders again.
func (r *SVG) Refresh() error {
	return r.render()
}

// Bytes returns the SVG document produced by the last Draw/Refresh.
func (r *SVG) Bytes() []byte {
	return r.buf.Bytes()
}

func (r *SVG) render() error {
	r.buf.Reset()
	canvas := svg.New(&r.buf)
	canvas.Start(r.width, r.height)

	// Edges first so node circles paint over the line ends.
	type segment struct {
		e              *core.Edge
		x1, y1, x2, y2 float64
	}
	segs := make([]segment, 0, r.graph.EdgeCount())
	for _, e := range r.graph.Edges() {
		if e.IsLoop() {
			continue // loops have no meaningful straight segment
		}
		sx, sy, sr := nodeGeometry(e.Source())
		tx, ty, tr := nodeGeometry(e.Target())
		x1, y1, x2, y2 := trimSegment(sx, sy, tx, ty, sr, tr)
		segs = append(segs, segment{e: e, x1: x1, y1: y1, x2: x2, y2: y2})
	}
	// UUID order is not reproducible across runs; sort by endpoint IDs.
	sort.Slice(segs, func(i, j int) bool {
		a, b := segs[i].e, segs[j].e
		if a.Source().ID() != b.Source().ID() {
			return a.Source().ID() < b.Source().ID()
		}

		return a.Target().ID() < b.Target().ID()
	})
	for _, s := range segs {
		canvas.Line(round(s.x1), round(s.y1), round(s.x2), round(s.y2), edgeStyle)
		if s.e.Directed() {
			r.arrowhead(canvas, s.x1, s.y1, s.x2, s.y2)
		}
	}

	for _, id := range r.graph.Nodes() {
		n, _ := r.graph.Node(id)
		x, y, rad := nodeGeometry(n)
		canvas.Circle(round(x), round(y), round(rad), nodeStyle)
		canvas.Text(round(x), round(y), id, labelStyle)
	}

	canvas.End()

	return nil
}

// arrowhead draws two barbs at the trimmed target end of a directed edge.
func (r *SVG) arrowhead(canvas *svg.SVG, x1, y1, x2, y2 float64) {
	theta := math.Atan2(y1-y2, x1-x2)
	for _, spread := range [2]float64{arrowSpreadRad, -arrowSpreadRad} {
		bx := x2 + arrowLength*math.Cos(theta+spread)
		by := y2 + arrowLength*math.Sin(theta+spread)
		canvas.Line(round(x2), round(y2), round(bx), round(by), edgeStyle)
	}
}

// nodeGeometry reads a node's center and radius from its data bag.
func nodeGeometry(n *core.Node) (x, y, radius float64) {
	data := n.Data()
	x = bagFloat(data, KeyX, 0)
	y = bagFloat(data, KeyY, 0)
	radius = bagFloat(data, KeyRadius, defaultRadius)

	return x, y, radius
}

// trimSegment shortens the segment between two centers by each endpoint's
// radius, so edges touch circle borders instead of centers. Degenerate
// (coincident-center) segments are returned untrimmed.
func trimSegment(x1, y1, x2, y2, r1, r2 float64) (ax, ay, bx, by float64) {
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return x1, y1, x2, y2
	}
	ux, uy := dx/dist, dy/dist

	return x1 + ux*r1, y1 + uy*r1, x2 - ux*r2, y2 - uy*r2
}

func round(v float64) int {
	return int(math.Round(v))
}
