// Package core: central type declarations.
//
// This file declares Direction, Graph, GraphOption, EdgeOption, and the
// NewGraph constructor. Node, Edge and EdgeConnection live in their own files.

package core

import "github.com/katalvlaran/vizgraph/bag"

// Direction is the graph-wide orientation mode.
//
// It governs whether individual edges may carry their own directed flag
// (Mixed) or are forced to a uniform value (Undirected → false,
// Directed → true).
type Direction uint8

const (
	// Undirected forces every edge to be bidirectional.
	Undirected Direction = iota
	// Directed forces every edge to be one-way.
	Directed
	// Mixed lets each edge choose its own orientation.
	Mixed
)

// Valid reports whether d is one of the declared modes.
func (d Direction) Valid() bool {
	return d <= Mixed
}

// String returns the mode name, or "Invalid" for out-of-range values.
func (d Direction) String() string {
	switch d {
	case Undirected:
		return "Undirected"
	case Directed:
		return "Directed"
	case Mixed:
		return "Mixed"
	default:
		return "Invalid"
	}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirection sets the graph's orientation mode (default Undirected).
// Out-of-range values surface as ErrInvalidDirection from NewGraph.
func WithDirection(d Direction) GraphOption {
	return func(g *Graph) { g.direction = d }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithOverride lets AddNode/AttachNode replace an existing node under the
// same ID instead of failing with ErrDuplicateID.
func WithOverride() GraphOption {
	return func(g *Graph) { g.override = true }
}

// EdgeOption configures properties of an individual edge at Connect time.
type EdgeOption func(e *Edge)

// WithEdgeDirected requests a specific orientation for one edge.
// Effective only when the graph's mode is Mixed; in Undirected or Directed
// mode the graph-wide value wins silently.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.directed = directed }
}

// Graph is the in-memory labeled graph and the sole entry point for all
// structural mutation. Nodes and edges expose convenience methods, but those
// delegate back into their owning Graph.
//
// Not safe for concurrent use; see doc.go for the exclusive-access contract.
type Graph struct {
	// Policy. direction gates per-edge orientation; the booleans gate future
	// mutations only and have no retroactive effect when toggled.
	direction  Direction
	allowMulti bool
	allowLoops bool
	override   bool

	// Storage. nodes maps ID → handle; edges groups every edge under its
	// pair key, unique per edge ID.
	nodes map[string]*Node
	edges *bag.Bag[*Edge]
}

// NewGraph creates an empty Graph.
// Defaults: Undirected, no multi-edges, no loops, no override.
// Returns ErrInvalidDirection if WithDirection supplied an out-of-range mode.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) (*Graph, error) {
	g := &Graph{nodes: make(map[string]*Node)}
	for _, opt := range opts {
		opt(g)
	}
	if !g.direction.Valid() {
		return nil, ErrInvalidDirection
	}

	// Extractor error is impossible here: both funcs are statically non-nil.
	g.edges, _ = bag.New[*Edge](
		func(e *Edge) string { return e.pairKey },
		func(e *Edge) string { return e.id },
	)

	return g, nil
}
