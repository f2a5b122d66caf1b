// Package bag provides a generic multi-bag: a mapping from a group key to a
// set of values sharing that key, where every value also carries a unique key
// distinguishing it within its group.
//
// The shape generalizes the nested-map adjacency bookkeeping common to graph
// cores (group = "all edges between these endpoints", unique = edge ID) into a
// reusable container:
//
//	groups[groupKey][uniqueKey] = value
//
// Both keys are derived from the value itself via extractor functions supplied
// at construction, so callers never pass keys explicitly and the two views can
// never drift apart.
//
// Complexity: key lookups are O(1) amortized; group-scoped operations are
// O(group size). Iteration order is unspecified — across groups and within a
// group alike. Callers must not depend on it.
//
// Concurrency: none. A Bag assumes exclusive single-threaded access, matching
// the core graph it serves.
package bag
