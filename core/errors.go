// Package core: sentinel errors for graph operations.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context with %w at the call site.
//   - Every failure here is a precondition violation (programmer error), not an
//     expected runtime condition: operations surface them immediately and make
//     no state change on the failure path.

package core

import "errors"

var (
	// ErrEmptyNodeID indicates a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNilNode indicates a nil *Node handle was passed where one is required.
	ErrNilNode = errors.New("core: nil node")

	// ErrInvalidDirection indicates a Direction value outside Undirected/Directed/Mixed.
	ErrInvalidDirection = errors.New("core: invalid direction mode")

	// ErrDuplicateID indicates an AddNode/AttachNode collision while override is disabled.
	ErrDuplicateID = errors.New("core: duplicate node ID")

	// ErrAlreadyAttached indicates a node handle that already belongs to a graph.
	ErrAlreadyAttached = errors.New("core: node already attached to a graph")

	// ErrNotAttached indicates a node or edge operation that requires graph membership.
	ErrNotAttached = errors.New("core: not attached to a graph")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates a parallel edge was attempted while multigraph is disabled.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted while loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge directedness change outside Mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: per-edge direction requires Mixed mode")
)
