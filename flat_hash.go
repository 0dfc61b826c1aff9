package frozen

// flat_hash.go exposes the hash-table-backed layout directly, with no
// surrounding tag: building the slot table is the same per-entry work
// whether or not a tag wraps the result, so this type only saves the tag
// for callers who already know a hash table is what they want. cmd/frozengen
// does not emit it: its hash-table branches call the tagged
// HashMap/StringMap/ScalarMap/IntMap constructors (see internal/emit).
//
// © 2025 frozen authors.

import (
	"github.com/Voskan/frozen/internal/containers"
	"github.com/Voskan/frozen/internal/hashtable"
)

// FlatHashMap wraps the general hash layout directly, with a
// caller-supplied hash function and equality test — no analyzer, no tag,
// no scan fallback.
type FlatHashMap[K comparable, V any] struct {
	inner *containers.HashMap[K, V, uint32]
}

// NewFlatHashMap builds a hash map directly from entries, using hash and
// keyEqual exactly as NewHashMap's internal hash branch would, but without
// the preceding scan-threshold check or the tag it would otherwise carry.
// Duplicate keys are the caller's responsibility: unlike the tagged
// facades, entries are not deduplicated here, since this constructor is
// meant for callers that already resolved duplicates themselves.
func NewFlatHashMap[K comparable, V any](entries []Entry[K, V], hash func(K) uint64, keyEqual func(a, b K) bool) (*FlatHashMap[K, V], error) {
	internalEntries := toContainerEntries(entries)
	hashes := make([]uint64, len(entries))
	for i, e := range entries {
		hashes[i] = hash(e.Key)
	}

	built, err := hashtable.Build[uint32](hashes)
	if err != nil {
		return nil, ErrHashTableBuildFailed
	}
	reordered := reorder(internalEntries, built.Order)
	return &FlatHashMap[K, V]{inner: containers.NewHashMap[K, V, uint32](reordered, hash, built, keyEqual)}, nil
}

func (m *FlatHashMap[K, V]) Get(key K) (V, bool)            { return m.inner.Get(key) }
func (m *FlatHashMap[K, V]) GetKeyValue(key K) (K, V, bool) { return m.inner.GetKeyValue(key) }
func (m *FlatHashMap[K, V]) GetMut(key K) (*V, bool)        { return m.inner.GetMut(key) }
func (m *FlatHashMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(keys)
}
func (m *FlatHashMap[K, V]) ContainsKey(key K) bool { return m.inner.ContainsKey(key) }
func (m *FlatHashMap[K, V]) Len() int               { return m.inner.Len() }
func (m *FlatHashMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in FlatHashMap")
	}
	return v
}
func (m *FlatHashMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.inner.Entries()) }
func (m *FlatHashMap[K, V]) Keys() []K              { return keysFrom(m.inner.Entries()) }
func (m *FlatHashMap[K, V]) Values() []V            { return valuesFrom(m.inner.Entries()) }

var _ Map[int, string] = (*FlatHashMap[int, string])(nil)

// FlatHashSet is the set-shaped counterpart to FlatHashMap.
type FlatHashSet[T comparable] struct {
	m *FlatHashMap[T, unitValue]
}

// NewFlatHashSet builds a hash set directly from values.
func NewFlatHashSet[T comparable](values []T, hash func(T) uint64, keyEqual func(a, b T) bool) (*FlatHashSet[T], error) {
	m, err := NewFlatHashMap(setEntries(values), hash, keyEqual)
	if err != nil {
		return nil, err
	}
	return &FlatHashSet[T]{m: m}, nil
}

func (s *FlatHashSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *FlatHashSet[T]) Len() int             { return s.m.Len() }
func (s *FlatHashSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[int] = (*FlatHashSet[int])(nil)
