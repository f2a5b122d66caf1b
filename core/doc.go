// Package core provides the in-memory labeled graph: Graph, Node, Edge and
// EdgeConnection, with undirected, directed and mixed orientation, multigraph
// and self-loop policy, and strict invariant-preserving mutations.
//
// The Graph G = (V,E) is the sole entry point for structural change:
//
//   - Nodes carry a unique string ID, a live user data bag, and an adjacency
//     multi-bag of EdgeConnections grouped by neighbor ID (unique per edge ID,
//     so parallel edges coexist under multigraph mode).
//   - Edges carry a UUID, a pair key derived from the endpoint IDs in call
//     order, a directed flag, and a data bag shared by reference with both of
//     their EdgeConnections.
//   - EdgeConnections are the adjacency-list elements: one-directional views
//     binding an edge to one endpoint, answering "which edges touch node X,
//     and who is on the other end" without re-deriving it from the edge.
//
// Invariants, always:
//
//  1. Every node in the mapping has this graph as its owner; a node belongs
//     to at most one graph.
//  2. Every cataloged edge has both endpoints in the node mapping.
//  3. An undirected edge appears in both endpoints' adjacency bags; a
//     directed edge only in the source's.
//  4. Outside multigraph mode, at most one edge per unordered pair of
//     distinct IDs (both pair-key orders are checked).
//  5. Self-loops exist only under the loops policy, with exactly one
//     adjacency entry.
//  6. Undirected mode ⇒ every edge flag false; Directed ⇒ true; Mixed ⇒ free
//     per edge, and only in Mixed mode mutable after creation.
//
// Configuration Options (GraphOption):
//
//	– WithDirection(d)    orientation mode: Undirected | Directed | Mixed
//	– WithMultiEdges()    permit parallel edges between the same endpoints
//	– WithLoops()         permit self-loops
//	– WithOverride()      let AddNode replace an existing ID (cascade-cleans)
//
// The mode and policies are also toggleable at runtime (SetDirection,
// SetMultigraph, SetLooped, SetOverride); toggles gate future mutations and
// never rewrite history, except SetDirection to a uniform mode, which
// re-orients every disagreeing edge and repairs adjacency.
//
// Error policy: sentinel errors only, matched with errors.Is. Every public
// mutation validates all preconditions before its first state write; a failed
// call leaves the graph exactly as it was.
//
// Concurrency: none. The core is single-threaded and synchronous, with no
// internal locking. Mutation of one node's adjacency can be triggered
// transitively through another node's methods, so a concurrent host must
// wrap the Graph and all of its nodes and edges behind one exclusive lock.
// Interleaving traversal of snapshots with RemoveNode/Detach on the *live*
// structures during that traversal is safe only because all iteration APIs
// (Nodes, Edges, Node.Edges, Values) return defensive copies; iterating the
// internal maps directly is not supported.
package core
