// Package core: Node lifecycle and adjacency registration.
//
// A Node owns a user data bag and an adjacency multi-bag of EdgeConnections,
// grouped by the neighbor's ID and unique per edge ID. Registration and
// unregistration of connections is internal: only Graph and Edge call it, so
// the adjacency view can never drift from the global edge catalog.

package core

import "github.com/katalvlaran/vizgraph/bag"

// Node is a uniquely-identified graph vertex.
//
// A Node is created detached; it belongs to at most one Graph at a time, and
// its ID is immutable for its lifetime. The data bag is live (not copied):
// renderers and hosts read and write it freely, e.g. for 2-D positions.
type Node struct {
	id   string
	data map[string]any

	// graph is a back-reference to the owner; nil while detached.
	// It conveys membership only, never ownership: removal always flows from
	// the Graph down into nodes, never the reverse.
	graph *Graph

	// adj holds one EdgeConnection per incident edge side, grouped by the
	// neighbor's ID so "all edges toward X" resolves in O(1).
	adj *bag.Bag[*EdgeConnection]
}

// NewNode creates a detached node with the given ID and an empty data bag.
// Returns ErrEmptyNodeID if id is empty.
// Complexity: O(1).
func NewNode(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	n := &Node{
		id:   id,
		data: make(map[string]any),
	}
	n.adj, _ = bag.New[*EdgeConnection](
		func(c *EdgeConnection) string { return c.neighbor.id },
		func(c *EdgeConnection) string { return c.edge.id },
	)

	return n, nil
}

// ID returns the node's identifier.
func (n *Node) ID() string {
	return n.id
}

// Data returns the node's live user data bag. Writes are visible to every
// holder of the handle; the graph core itself never reads or writes it.
func (n *Node) Data() map[string]any {
	return n.data
}

// Graph returns the owning graph, or nil while the node is detached.
func (n *Node) Graph() *Graph {
	return n.graph
}

// AddTo attaches the node to g. Fails with ErrAlreadyAttached if the node
// already belongs to any graph, and with g's AttachNode failures otherwise.
// Complexity: as AttachNode.
func (n *Node) AddTo(g *Graph) error {
	if n.graph != nil {
		return ErrAlreadyAttached
	}

	return g.AttachNode(n)
}

// RemoveFromGraph detaches the node from its owning graph, stripping all
// incident edges. Fails with ErrNotAttached when detached, or with
// ErrNodeNotFound if the owner's mapping holds a different handle under this
// ID (possible after an override replacement).
// Complexity: as Graph.RemoveNode.
func (n *Node) RemoveFromGraph() error {
	if n.graph == nil {
		return ErrNotAttached
	}
	if n.graph.nodes[n.id] != n {
		return ErrNodeNotFound
	}

	return n.graph.RemoveNode(n.id)
}

// Connect creates an edge from this node to the node with ID toID, delegating
// to the owning graph's Connect. Fails with ErrNotAttached when detached.
// Complexity: as Graph.Connect.
func (n *Node) Connect(toID string, opts ...EdgeOption) (*Edge, error) {
	if n.graph == nil {
		return nil, ErrNotAttached
	}

	return n.graph.Connect(n.id, toID, opts...)
}

// Detach removes every edge between this node and the node with ID toID,
// in both pair-key orders, delegating to the owning graph's Detach.
// Fails with ErrNotAttached when detached.
// Complexity: as Graph.Detach.
func (n *Node) Detach(toID string) error {
	if n.graph == nil {
		return ErrNotAttached
	}

	return n.graph.Detach(n.id, toID)
}

// Edges returns a snapshot of the EdgeConnections incident to this node.
// Mutating the returned slice does not affect the node. Order is unspecified.
// Complexity: O(deg(n)).
func (n *Node) Edges() []*EdgeConnection {
	return n.adj.Values()
}

// Degree returns the number of adjacency entries on this node: one per
// undirected or outgoing incident edge side (self-loops count once).
// Complexity: O(1).
func (n *Node) Degree() int {
	return n.adj.Len()
}

// registerConn and unregisterConn are the only mutation paths into the
// adjacency bag; Graph and Edge call them while updating the edge catalog.

func (n *Node) registerConn(c *EdgeConnection) {
	n.adj.Add(c)
}

func (n *Node) unregisterConn(c *EdgeConnection) {
	n.adj.Remove(c)
}
