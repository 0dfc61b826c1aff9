// Package containers holds the seven specialized map layouts the
// specification calls for (dense-scalar, sparse-scalar, hash with and
// without collisions, binary-search, Eytzinger-search, scan, ordered-scan)
// plus the shared machinery (GetManyMut's duplicate-borrow detection, entry
// storage) they all build on. Sets are a thin wrapper elsewhere; every
// algorithmic decision lives here.
//
// © 2025 frozen authors.
package containers

// Entry is the internal (key, value) pair every container stores. It is a
// distinct type from the public frozen.Entry so this package never needs to
// import the root package (which would create an import cycle, since the
// root package imports this one).
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// GetManyMut implements the shared duplicate/aliasing contract every
// layout's GetManyMut method uses: given a small number of keys, resolve
// each to a slot in entries (via lookup) and fail the whole call if any
// key is missing or if two requested keys are equal. The O(len(keys)^2)
// duplicate scan is intentional: this API is for small, fixed-size
// batches, not bulk access.
func GetManyMut[K comparable, V any](entries []Entry[K, V], keys []K, lookup func(K) (int, bool)) ([]*V, bool) {
	indices := make([]int, len(keys))
	for i, k := range keys {
		idx, ok := lookup(k)
		if !ok {
			return nil, false
		}
		indices[i] = idx
	}

	for i := range indices {
		for j := i + 1; j < len(indices); j++ {
			if indices[i] == indices[j] {
				return nil, false
			}
		}
	}

	out := make([]*V, len(keys))
	for i, idx := range indices {
		out[i] = &entries[idx].Value
	}
	return out, true
}
