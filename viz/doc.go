// Package viz defines the rendering contract for a core.Graph and ships two
// implementations: a console text dump and an SVG renderer.
//
// The contract is two operations:
//
//	Draw()    — initial rendering, invoked once against a populated graph
//	Refresh() — idempotent re-rendering after positional or structural change
//
// Renderers consume the graph strictly read-only: the node mapping, each
// node's user data bag (expected to carry a 2-D position and a radius when
// spatial layout is wanted, under KeyX/KeyY/KeyRadius), the edge collection,
// and each edge's Source/Target/Directed. They never call Graph mutation
// methods and never see internal adjacency representation. Position updates
// (e.g. from user interaction) are written straight into a node's data bag by
// the host; the renderer recomputes derived geometry, such as trimming an
// edge's endpoints by the endpoint radii, on the next Refresh.
package viz
