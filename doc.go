// Package vizgraph is an in-memory labeled graph with pluggable visualization.
//
// 🚀 What is vizgraph?
//
//	A small, composable library for modeling node/edge structures and
//	projecting them onto any rendering surface:
//		• Core primitives: nodes with user data bags, uniquely-identified edges,
//		  undirected / directed / mixed orientation per graph
//		• Multigraph & self-loop policy, toggleable at runtime
//		• Multi-bag adjacency: every node knows its incident connections in O(1)
//		• Renderer contract: Draw()/Refresh() over a strictly read-only surface,
//		  with console and SVG renderers included
//
// ✨ Why choose vizgraph?
//
//   - One graph type, one mutation surface – every structural change goes
//     through Graph, so adjacency can never drift from the edge catalog
//   - Loud failures – sentinel errors for every precondition, nothing silent
//   - Pure single-threaded core – no hidden locks, no magic goroutines
//   - Renderer-agnostic – implement viz.Renderer and point it at any Graph
//
// Everything is organized under three subpackages:
//
//	bag/  — generic multi-bag container (group key → uniquely-keyed set)
//	core/ — Graph, Node, Edge, EdgeConnection types and all mutations
//	viz/  — Renderer contract plus console & SVG implementations
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C──▶D
//
//	g, _ := core.NewGraph(core.WithDirection(core.Mixed))
//	g.AddNode("A") // ... then Connect("C", "D", core.WithEdgeDirected(true))
//
// The core assumes exclusive single-threaded access; wrap the whole Graph in
// one external lock if a concurrent host needs it. See core's doc.go for the
// full contract.
//
//	go get github.com/katalvlaran/vizgraph
package vizgraph
