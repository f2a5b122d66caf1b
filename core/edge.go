// Package core: Edge and EdgeConnection.
//
// An Edge owns exactly two EdgeConnections: the source-side view (stored in
// the source node's adjacency bag) and the target-side view (stored in the
// target node's bag only while the edge is undirected and not a self-loop).
// The connections share the edge's user data bag by reference. Nodes hold
// non-owning references; removal flows from Graph/Edge out to the nodes.

package core

// EdgeConnection is a directional adjacency-list entry binding an edge to one
// of its endpoint nodes. Users never construct one; they are created with
// their Edge and handed out through Node.Edges.
type EdgeConnection struct {
	edge     *Edge
	neighbor *Node
	data     map[string]any
}

// Edge returns the edge this connection belongs to.
func (c *EdgeConnection) Edge() *Edge {
	return c.edge
}

// Neighbor returns the node on the other end of the connection.
func (c *EdgeConnection) Neighbor() *Node {
	return c.neighbor
}

// Data returns the user data bag, shared by reference with the edge and the
// edge's other connection.
func (c *EdgeConnection) Data() map[string]any {
	return c.data
}

// Edge is a connection between two nodes, undirected or directed according to
// its flag and the owning graph's Direction mode.
type Edge struct {
	id      string
	pairKey string

	source *Node
	target *Node

	directed bool
	data     map[string]any

	// graph back-reference; nil before attachment and after removal.
	graph *Graph

	srcConn *EdgeConnection
	tgtConn *EdgeConnection
}

// newEdge builds an Edge between two attached node handles, with both of its
// EdgeConnections. Duplicate-edge and multigraph constraints are NOT checked
// here: Graph.Connect is the only public path to edge creation and owns them.
func newEdge(source, target *Node, directed bool) *Edge {
	e := &Edge{
		id:       newEdgeID(),
		pairKey:  pairKey(source.id, target.id),
		source:   source,
		target:   target,
		directed: directed,
		data:     make(map[string]any),
	}
	e.srcConn = &EdgeConnection{edge: e, neighbor: target, data: e.data}
	e.tgtConn = &EdgeConnection{edge: e, neighbor: source, data: e.data}

	return e
}

// ID returns the edge's globally-unique identifier.
func (e *Edge) ID() string {
	return e.id
}

// PairKey returns the grouping key derived from the endpoint IDs in call
// order. The reverse pair key is a distinct string.
func (e *Edge) PairKey() string {
	return e.pairKey
}

// Source returns the source node. Stable for the edge's lifetime.
func (e *Edge) Source() *Node {
	return e.source
}

// Target returns the target node. Stable for the edge's lifetime.
func (e *Edge) Target() *Node {
	return e.target
}

// Directed reports the edge's current orientation.
func (e *Edge) Directed() bool {
	return e.directed
}

// IsLoop reports whether source and target are the same node.
func (e *Edge) IsLoop() bool {
	return e.source == e.target
}

// Data returns the edge's live user data bag.
func (e *Edge) Data() map[string]any {
	return e.data
}

// Graph returns the owning graph, or nil while the edge is detached.
func (e *Edge) Graph() *Graph {
	return e.graph
}

// SetDirected changes the edge's orientation and corrects the target-side
// adjacency bag: flipping false→true removes the target-side connection
// (directed edges are one-way in adjacency), flipping true→false re-adds it.
// Self-loops keep their single adjacency entry either way.
//
// Fails with ErrNotAttached on a detached edge, and with
// ErrMixedEdgesNotAllowed unless the owning graph's mode is Mixed.
// Setting the current value is a no-op.
// Complexity: O(1).
func (e *Edge) SetDirected(directed bool) error {
	if e.graph == nil {
		return ErrNotAttached
	}
	if e.graph.direction != Mixed {
		return ErrMixedEdgesNotAllowed
	}
	if e.directed == directed {
		return nil
	}
	e.flipDirected(directed)

	return nil
}

// flipDirected performs the orientation change and adjacency repair without
// mode gating. Graph.SetDirection reuses it when forcing a uniform mode.
func (e *Edge) flipDirected(directed bool) {
	if !e.IsLoop() {
		if directed {
			e.target.unregisterConn(e.tgtConn)
		} else {
			e.target.registerConn(e.tgtConn)
		}
	}
	e.directed = directed
}

// RemoveFromGraph removes this one edge from its owning graph, unregistering
// both adjacency sides. Fails with ErrNotAttached on a detached edge.
// Distinct from Graph.Detach, which bulk-removes every edge between two nodes.
// Complexity: O(1).
func (e *Edge) RemoveFromGraph() error {
	if e.graph == nil {
		return ErrNotAttached
	}
	e.graph.removeEdge(e)

	return nil
}
