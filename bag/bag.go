package bag

import "errors"

// ErrNilKeyFunc indicates a Bag was constructed without both key extractors.
var ErrNilKeyFunc = errors.New("bag: nil key extractor")

// KeyFunc derives a string key from a value.
type KeyFunc[V any] func(V) string

// Bag maps a group key to a set of values sharing it, each value uniquely
// keyed within its group. The zero Bag is not usable; construct via New.
type Bag[V any] struct {
	groupKey  KeyFunc[V]
	uniqueKey KeyFunc[V]

	// groups[groupKey][uniqueKey] = value
	groups map[string]map[string]V
	size   int
}

// New creates an empty Bag using the given extractors.
// Returns ErrNilKeyFunc if either extractor is nil.
// Complexity: O(1).
func New[V any](groupKey, uniqueKey KeyFunc[V]) (*Bag[V], error) {
	if groupKey == nil || uniqueKey == nil {
		return nil, ErrNilKeyFunc
	}

	return &Bag[V]{
		groupKey:  groupKey,
		uniqueKey: uniqueKey,
		groups:    make(map[string]map[string]V),
	}, nil
}

// Add inserts v, creating its group if absent.
// Returns false if a value with the same unique key already occupies the group
// (the bag is left unchanged), true on insertion.
// Complexity: O(1) amortized.
func (b *Bag[V]) Add(v V) bool {
	gk := b.groupKey(v)
	uk := b.uniqueKey(v)

	group, ok := b.groups[gk]
	if !ok {
		group = make(map[string]V)
		b.groups[gk] = group
	}
	if _, dup := group[uk]; dup {
		return false
	}
	group[uk] = v
	b.size++

	return true
}

// Remove deletes the value matching v's unique key from v's group, pruning the
// group entry if it becomes empty. Returns whether anything was removed.
// Complexity: O(1) amortized.
func (b *Bag[V]) Remove(v V) bool {
	gk := b.groupKey(v)
	uk := b.uniqueKey(v)

	group, ok := b.groups[gk]
	if !ok {
		return false
	}
	if _, ok = group[uk]; !ok {
		return false
	}
	delete(group, uk)
	if len(group) == 0 {
		delete(b.groups, gk)
	}
	b.size--

	return true
}

// Contains reports whether a non-empty group exists for groupKey.
// Complexity: O(1).
func (b *Bag[V]) Contains(groupKey string) bool {
	return len(b.groups[groupKey]) > 0
}

// Group returns a snapshot of the values grouped under groupKey.
// Mutating the returned slice does not affect the bag.
// Complexity: O(group size).
func (b *Bag[V]) Group(groupKey string) []V {
	group, ok := b.groups[groupKey]
	if !ok {
		return nil
	}
	out := make([]V, 0, len(group))
	for _, v := range group {
		out = append(out, v)
	}

	return out
}

// RemoveGroup deletes an entire group and returns whether anything was removed.
// Complexity: O(1).
func (b *Bag[V]) RemoveGroup(groupKey string) bool {
	group, ok := b.groups[groupKey]
	if !ok || len(group) == 0 {
		return false
	}
	b.size -= len(group)
	delete(b.groups, groupKey)

	return true
}

// ForEach invokes fn for every value in the bag, in unspecified order.
// fn must not mutate the bag; interleaving traversal with Add/Remove is
// undefined behavior (snapshot via Values first when in doubt).
// Complexity: O(n).
func (b *Bag[V]) ForEach(fn func(V)) {
	for _, group := range b.groups {
		for _, v := range group {
			fn(v)
		}
	}
}

// Len returns the total number of values across all groups.
// Complexity: O(1).
func (b *Bag[V]) Len() int {
	return b.size
}

// Values returns a snapshot slice of every value in the bag.
// Complexity: O(n).
func (b *Bag[V]) Values() []V {
	out := make([]V, 0, b.size)
	for _, group := range b.groups {
		for _, v := range group {
			out = append(out, v)
		}
	}

	return out
}

// Normalize collapses every group to a single representative: the value with
// the lexicographically smallest unique key. All other values are dropped.
//
// This is lossy and intentional — it exists to shed redundant structure after
// a mode change (e.g. re-enabling a single-edge restriction). The smallest-key
// rule makes the surviving representative deterministic.
// Complexity: O(n).
func (b *Bag[V]) Normalize() {
	for gk, group := range b.groups {
		if len(group) <= 1 {
			continue
		}
		keep := ""
		first := true
		for uk := range group {
			if first || uk < keep {
				keep = uk
				first = false
			}
		}
		for uk := range group {
			if uk != keep {
				delete(group, uk)
				b.size--
			}
		}
		b.groups[gk] = group
	}
}

// Clear removes every value and group.
// Complexity: O(1) (old maps are released to the collector).
func (b *Bag[V]) Clear() {
	b.groups = make(map[string]map[string]V)
	b.size = 0
}

// GroupKeys returns a snapshot of the keys of all non-empty groups,
// in unspecified order.
// Complexity: O(groups).
func (b *Bag[V]) GroupKeys() []string {
	out := make([]string, 0, len(b.groups))
	for gk := range b.groups {
		out = append(out, gk)
	}

	return out
}
