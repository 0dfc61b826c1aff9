package frozen

// map.go declares the uniform read contract every frozen map facade
// implements. Sets reuse the same contract with V fixed to unitValue
// internally and a values-free surface on top (see set.go).
//
// © 2025 frozen authors.

import "github.com/Voskan/frozen/internal/containers"

// Map is the read contract shared by every frozen map facade. Values may be
// mutated through GetMut/GetManyMut; the key set itself never changes.
type Map[K comparable, V any] interface {
	// Get returns the value for key, or the zero value and false if absent.
	Get(key K) (V, bool)
	// GetKeyValue returns the stored key and its value.
	GetKeyValue(key K) (K, V, bool)
	// GetMut returns a pointer to the value for key, or nil and false.
	GetMut(key K) (*V, bool)
	// GetManyMut resolves each of keys to a pointer into the map's storage
	// in a single call. It returns false if any key is absent or if two
	// requested keys are equal — duplicate-borrow detection runs in
	// O(len(keys)^2), which is fine for the handful of keys this API is
	// meant for, and guarantees the returned pointers never alias.
	GetManyMut(keys []K) ([]*V, bool)
	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool
	// Len returns the number of entries.
	Len() int
	// At returns the value for key, panicking if key is absent: an
	// index-operator-equivalent accessor for callers who've decided a miss
	// is a programming error.
	At(key K) V
	// Entries returns a snapshot slice of the map's (key, value) pairs.
	// Iteration order follows the underlying layout: ascending key order
	// for sorted layouts, insertion order for scan layouts, and an
	// unspecified but deterministic (for a fixed seed) slot/entry order for
	// hash layouts.
	Entries() []Entry[K, V]
	// Keys returns a snapshot slice of the map's keys, in the same order
	// as Entries.
	Keys() []K
	// Values returns a snapshot slice of the map's values, in the same
	// order as Entries.
	Values() []V
}

// convertEntries adapts the internal container package's entry slices to
// the public Entry type. Every facade's Entries()/Keys()/Values() routes
// through this.
func convertEntries[K comparable, V any](in []containers.Entry[K, V]) []Entry[K, V] {
	out := make([]Entry[K, V], len(in))
	for i, e := range in {
		out[i] = Entry[K, V]{Key: e.Key, Value: e.Value}
	}
	return out
}

func keysFrom[K comparable, V any](in []containers.Entry[K, V]) []K {
	out := make([]K, len(in))
	for i, e := range in {
		out[i] = e.Key
	}
	return out
}

func valuesFrom[K comparable, V any](in []containers.Entry[K, V]) []V {
	out := make([]V, len(in))
	for i, e := range in {
		out[i] = e.Value
	}
	return out
}
