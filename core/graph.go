// Package core: Graph mutation and query implementations.
//
// Every structural change enters through this file. The edge catalog is a
// multi-bag grouped by pair key (unique per edge ID); each node's adjacency
// bag is kept in lockstep with it. All preconditions are validated before the
// first state write, so a failed call leaves the graph untouched.

package core

import "sort"

// AddNode creates a fresh node for id and attaches it.
// Returns ErrEmptyNodeID for an empty id and ErrDuplicateID when a node with
// that id exists and override is disabled. With override enabled, the old
// node is cascade-cleaned (incident edges stripped, handle detached) before
// the replacement is installed, so no edge can dangle toward a node that is
// no longer in the mapping.
// Complexity: O(1), plus O(|edges|) when override replaces a live node.
func (g *Graph) AddNode(id string) (*Node, error) {
	n, err := NewNode(id)
	if err != nil {
		return nil, err
	}
	if err = g.AttachNode(n); err != nil {
		return nil, err
	}

	return n, nil
}

// AttachNode attaches an existing detached node handle.
// Returns ErrNilNode, ErrAlreadyAttached (the handle belongs to some graph,
// this one included), or ErrDuplicateID as for AddNode. Override replacement
// behaves exactly as in AddNode.
// Complexity: as AddNode.
func (g *Graph) AttachNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.graph != nil {
		return ErrAlreadyAttached
	}
	if old, exists := g.nodes[n.id]; exists {
		if !g.override {
			return ErrDuplicateID
		}
		// Cascade-clean the node being replaced.
		g.stripIncident(old)
		old.adj.Clear()
		old.graph = nil
	}
	g.nodes[n.id] = n
	n.graph = g

	return nil
}

// RemoveNode detaches the node with the given id, removing every incident
// edge: each such edge leaves the global catalog and its connection entries
// leave both endpoints' adjacency bags (self-loops are unregistered once).
// Returns ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(|edges|) scan; incoming directed edges leave no trace in the
// target's adjacency bag, so a pure degree-walk would miss them.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}

	g.stripIncident(n)
	n.adj.Clear()
	n.graph = nil
	delete(g.nodes, id)

	return nil
}

// stripIncident removes every edge touching n. Operates on a snapshot of the
// edge catalog; removeEdge mutates it underneath.
func (g *Graph) stripIncident(n *Node) {
	for _, e := range g.edges.Values() {
		if e.source == n || e.target == n {
			g.removeEdge(e)
		}
	}
}

// Node returns the node mapped under id, or (nil, false) if absent.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Connect creates an edge from one node to another.
//
// Steps:
//  1. Both IDs must resolve: ErrNodeNotFound otherwise.
//  2. Outside multigraph mode, the pair key from→to must be free, and the
//     reverse pair key to→from must hold no *undirected* edge (a directed
//     edge stored under the reverse key is a different, legal relationship):
//     ErrDuplicateEdge otherwise.
//  3. from == to requires the loops policy: ErrLoopNotAllowed otherwise.
//  4. The directed flag follows the graph mode: Undirected forces false,
//     Directed forces true, Mixed honors WithEdgeDirected (default false).
//  5. The edge joins the global catalog and the source node's adjacency bag;
//     the target-side connection is registered only for non-loop undirected
//     edges (self-loops keep a single adjacency entry).
//
// Complexity: O(1) amortized; the reverse-order duplicate check is O(group).
func (g *Graph) Connect(from, to string, opts ...EdgeOption) (*Edge, error) {
	source, ok := g.nodes[from]
	if !ok {
		return nil, ErrNodeNotFound
	}
	target, ok := g.nodes[to]
	if !ok {
		return nil, ErrNodeNotFound
	}

	if !g.allowMulti {
		if g.edges.Contains(pairKey(from, to)) {
			return nil, ErrDuplicateEdge
		}
		for _, e := range g.edges.Group(pairKey(to, from)) {
			if !e.directed {
				return nil, ErrDuplicateEdge
			}
		}
	}

	if from == to && !g.allowLoops {
		return nil, ErrLoopNotAllowed
	}

	e := newEdge(source, target, g.direction == Directed)
	if g.direction == Mixed {
		for _, opt := range opts {
			opt(e)
		}
	}

	// Add can only report false on a duplicate edge ID within this pair
	// group; IDs are UUIDs, whose collision probability keys.go treats as
	// negligible, so a fresh edge always inserts.
	g.edges.Add(e)
	e.graph = g
	source.registerConn(e.srcConn)
	if !e.directed && !e.IsLoop() {
		target.registerConn(e.tgtConn)
	}

	return e, nil
}

// Detach removes ALL edges between the two nodes, under both pair-key orders
// and regardless of direction. This is the coarse bulk counterpart of
// Edge.RemoveFromGraph. Removing zero edges is not an error.
// Returns ErrNodeNotFound if either id is absent.
// Complexity: O(edges between the pair).
func (g *Graph) Detach(from, to string) error {
	if !g.HasNode(from) || !g.HasNode(to) {
		return ErrNodeNotFound
	}
	for _, e := range g.edges.Group(pairKey(from, to)) {
		g.removeEdge(e)
	}
	for _, e := range g.edges.Group(pairKey(to, from)) {
		g.removeEdge(e)
	}

	return nil
}

// RemoveEdge removes one specific edge from this graph.
// Returns ErrNotAttached for nil, foreign, or already-removed edges.
// Complexity: O(1).
func (g *Graph) RemoveEdge(e *Edge) error {
	if e == nil || e.graph != g {
		return ErrNotAttached
	}
	g.removeEdge(e)

	return nil
}

// removeEdge is the single internal edge-removal routine: catalog first, then
// both adjacency sides, then the back-reference. Callers validated membership.
func (g *Graph) removeEdge(e *Edge) {
	g.edges.Remove(e)
	e.source.unregisterConn(e.srcConn)
	if !e.directed && !e.IsLoop() {
		e.target.unregisterConn(e.tgtConn)
	}
	e.graph = nil
}

// HasEdge reports whether at least one connection from→to exists: an edge
// stored under that pair key, or an undirected edge stored under the reverse.
// Complexity: O(1) for the forward probe, O(reverse group) otherwise.
func (g *Graph) HasEdge(from, to string) bool {
	if g.edges.Contains(pairKey(from, to)) {
		return true
	}
	for _, e := range g.edges.Group(pairKey(to, from)) {
		if !e.directed {
			return true
		}
	}

	return false
}

// Direction returns the graph's orientation mode.
func (g *Graph) Direction() Direction {
	return g.direction
}

// SetDirection switches the orientation mode.
//
// Setting the current mode is a no-op. Switching to Undirected or Directed
// walks every edge and re-orients disagreeing ones, repairing the target-side
// adjacency exactly as Edge.SetDirected does. Switching to or from Mixed
// touches no existing edge, only the gate for future per-edge changes.
// Returns ErrInvalidDirection for out-of-range values.
// Complexity: O(1) for Mixed, O(|edges|) for the uniform modes.
func (g *Graph) SetDirection(d Direction) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}
	if d == g.direction {
		return nil
	}
	if d != Mixed {
		uniform := d == Directed
		for _, e := range g.edges.Values() {
			if e.directed != uniform {
				e.flipDirected(uniform)
			}
		}
	}
	g.direction = d

	return nil
}

// Multigraph reports whether parallel edges are currently permitted.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// SetMultigraph toggles the parallel-edge policy. Disabling it does not
// retroactively delete existing duplicates, only blocks future Connect calls;
// call Normalize for cleanup. Returns g for chaining.
func (g *Graph) SetMultigraph(v bool) *Graph {
	g.allowMulti = v

	return g
}

// Looped reports whether self-loops are currently permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// SetLooped toggles the self-loop policy for future Connect calls.
// No retroactive effect. Returns g for chaining.
func (g *Graph) SetLooped(v bool) *Graph {
	g.allowLoops = v

	return g
}

// Override reports whether AddNode/AttachNode may replace an existing node.
func (g *Graph) Override() bool {
	return g.override
}

// SetOverride toggles the node-replacement policy for future AddNode and
// AttachNode calls. No retroactive effect. Returns g for chaining.
func (g *Graph) SetOverride(v bool) *Graph {
	g.override = v

	return g
}

// Normalize collapses parallel edges left behind by a multigraph downgrade:
// within every pair-key group, the edge with the smallest ID survives and the
// rest are removed through the regular removal path, keeping adjacency
// consistent. Lossy and intentional; the smallest-ID rule is deterministic.
// Complexity: O(E log E).
func (g *Graph) Normalize() {
	for _, gk := range g.edges.GroupKeys() {
		group := g.edges.Group(gk)
		if len(group) <= 1 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].id < group[j].id })
		for _, e := range group[1:] {
			g.removeEdge(e)
		}
	}
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodesMap returns a shallow snapshot of the node mapping. Mutating the
// returned map does not affect the graph.
// Complexity: O(V).
func (g *Graph) NodesMap() map[string]*Node {
	out := make(map[string]*Node, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n
	}

	return out
}

// Edges returns a snapshot of all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := g.edges.Values()
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	return g.edges.Len()
}

// Clear detaches every node and edge and resets the graph to empty,
// preserving policy flags. Surviving handles read as detached.
// Complexity: O(V + E).
func (g *Graph) Clear() {
	for _, e := range g.edges.Values() {
		g.removeEdge(e)
	}
	for _, n := range g.nodes {
		n.adj.Clear()
		n.graph = nil
	}
	g.nodes = make(map[string]*Node)
}
