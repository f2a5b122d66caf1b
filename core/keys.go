// Package core: identifier and key utilities.
//
// Edge IDs must be collision-free across graphs and process restarts (edges
// migrate between graphs only by removal + reconnect, but their IDs leak into
// adjacency bags, pair-key groups and renderer output), so a UUID-class
// generator is used rather than a per-graph counter.

package core

import "github.com/google/uuid"

// pairKeySep joins the two endpoint IDs of a pair key. IDs are arbitrary user
// strings, so a raw concatenation would be ambiguous ("ab"+"c" == "a"+"bc");
// the unit separator keeps distinct pairs distinct while preserving call
// order. pairKey(a,b) and pairKey(b,a) are different strings; the
// duplicate-edge check probes both orders.
const pairKeySep = "\x1f"

// newEdgeID returns a fresh globally-unique edge identifier.
func newEdgeID() string {
	return uuid.NewString()
}

// pairKey derives the grouping key for all edges between from and to,
// in that call order.
func pairKey(from, to string) string {
	return from + pairKeySep + to
}
