package frozen

// internal_helpers.go holds the small sort/dedup/reorder plumbing every
// facade constructor shares: normalizing caller-supplied entries into the
// sorted, deduplicated, internal-package form the container layouts expect.
//
// © 2025 frozen authors.

import "github.com/Voskan/frozen/internal/containers"

func toContainerEntries[K comparable, V any](in []Entry[K, V]) []containers.Entry[K, V] {
	out := make([]containers.Entry[K, V], len(in))
	for i, e := range in {
		out[i] = containers.Entry[K, V]{Key: e.Key, Value: e.Value}
	}
	return out
}

// dedupSortedKeepLast collapses runs of equal keys in a slice already
// sorted by key, keeping the last occurrence of each run. Every facade
// constructor resolves duplicate input keys this way: the last entry in
// caller-supplied order wins.
func dedupSortedKeepLast[K comparable, V any](sorted []Entry[K, V], equal func(a, b K) bool) []Entry[K, V] {
	if len(sorted) == 0 {
		return sorted
	}
	out := make([]Entry[K, V], 0, len(sorted))
	out = append(out, sorted[0])
	for _, e := range sorted[1:] {
		if equal(out[len(out)-1].Key, e.Key) {
			out[len(out)-1] = e
		} else {
			out = append(out, e)
		}
	}
	return out
}

// reorder applies a hashtable.Built permutation (order[i] is the original
// index of the entry now belonging at position i) to a container entry
// slice.
func reorder[K comparable, V any](entries []containers.Entry[K, V], order []int) []containers.Entry[K, V] {
	out := make([]containers.Entry[K, V], len(order))
	for i, idx := range order {
		out[i] = entries[idx]
	}
	return out
}
