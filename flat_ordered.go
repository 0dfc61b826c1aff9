package frozen

// flat_ordered.go exposes the four ordered-facade layouts directly, with no
// tag and no dispatch: cmd/frozengen picks one of these at generation time
// (the same thresholds OrderedMap's constructor uses, evaluated once over
// the manifest's literal entries) instead of emitting a call into the
// tagged OrderedMap constructor. Direct callers can reach for these too
// when they already know which layout a fixed key set needs and want to
// skip NewOrderedMap's threshold check.
//
// © 2025 frozen authors.

import (
	"cmp"

	"github.com/Voskan/frozen/internal/containers"
)

// FlatScanMap wraps the scan layout with no surrounding tag. entries may be
// in any order; Get scans linearly.
type FlatScanMap[K comparable, V any] struct {
	inner *containers.ScanMap[K, V]
}

// NewFlatScanMap builds a scan map directly from entries, with no threshold
// check and no alternative layout to fall back to.
func NewFlatScanMap[K comparable, V any](entries []Entry[K, V], keyEqual func(a, b K) bool) *FlatScanMap[K, V] {
	return &FlatScanMap[K, V]{inner: containers.NewScanMap(toContainerEntries(entries), keyEqual)}
}

func (m *FlatScanMap[K, V]) Get(key K) (V, bool)              { return m.inner.Get(key) }
func (m *FlatScanMap[K, V]) GetKeyValue(key K) (K, V, bool)    { return m.inner.GetKeyValue(key) }
func (m *FlatScanMap[K, V]) GetMut(key K) (*V, bool)           { return m.inner.GetMut(key) }
func (m *FlatScanMap[K, V]) GetManyMut(keys []K) ([]*V, bool)  { return m.inner.GetManyMut(keys) }
func (m *FlatScanMap[K, V]) ContainsKey(key K) bool            { return m.inner.ContainsKey(key) }
func (m *FlatScanMap[K, V]) Len() int                          { return m.inner.Len() }
func (m *FlatScanMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in FlatScanMap")
	}
	return v
}
func (m *FlatScanMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.inner.Entries()) }
func (m *FlatScanMap[K, V]) Keys() []K              { return keysFrom(m.inner.Entries()) }
func (m *FlatScanMap[K, V]) Values() []V            { return valuesFrom(m.inner.Entries()) }

var _ Map[int, string] = (*FlatScanMap[int, string])(nil)

// FlatScanSet is the set-shaped counterpart to FlatScanMap.
type FlatScanSet[T comparable] struct {
	m *FlatScanMap[T, unitValue]
}

// NewFlatScanSet builds a scan set directly from values.
func NewFlatScanSet[T comparable](values []T, keyEqual func(a, b T) bool) *FlatScanSet[T] {
	return &FlatScanSet[T]{m: NewFlatScanMap(setEntries(values), keyEqual)}
}

func (s *FlatScanSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *FlatScanSet[T]) Len() int             { return s.m.Len() }
func (s *FlatScanSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[int] = (*FlatScanSet[int])(nil)

// FlatOrderedScanMap wraps the ordered-scan layout with no surrounding tag.
// entries must already be sorted ascending by less.
type FlatOrderedScanMap[K cmp.Ordered, V any] struct {
	inner *containers.OrderedScanMap[K, V]
}

// NewFlatOrderedScanMap builds an ordered-scan map directly from entries
// already sorted ascending by key.
func NewFlatOrderedScanMap[K cmp.Ordered, V any](sortedEntries []Entry[K, V]) *FlatOrderedScanMap[K, V] {
	less := func(a, b K) bool { return a < b }
	return &FlatOrderedScanMap[K, V]{inner: containers.NewOrderedScanMap(toContainerEntries(sortedEntries), less)}
}

func (m *FlatOrderedScanMap[K, V]) Get(key K) (V, bool)             { return m.inner.Get(key) }
func (m *FlatOrderedScanMap[K, V]) GetKeyValue(key K) (K, V, bool)  { return m.inner.GetKeyValue(key) }
func (m *FlatOrderedScanMap[K, V]) GetMut(key K) (*V, bool)         { return m.inner.GetMut(key) }
func (m *FlatOrderedScanMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(keys)
}
func (m *FlatOrderedScanMap[K, V]) ContainsKey(key K) bool { return m.inner.ContainsKey(key) }
func (m *FlatOrderedScanMap[K, V]) Len() int               { return m.inner.Len() }
func (m *FlatOrderedScanMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in FlatOrderedScanMap")
	}
	return v
}
func (m *FlatOrderedScanMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.inner.Entries()) }
func (m *FlatOrderedScanMap[K, V]) Keys() []K              { return keysFrom(m.inner.Entries()) }
func (m *FlatOrderedScanMap[K, V]) Values() []V            { return valuesFrom(m.inner.Entries()) }

var _ Map[int, string] = (*FlatOrderedScanMap[int, string])(nil)

// FlatOrderedScanSet is the set-shaped counterpart to FlatOrderedScanMap.
type FlatOrderedScanSet[T cmp.Ordered] struct {
	m *FlatOrderedScanMap[T, unitValue]
}

// NewFlatOrderedScanSet builds an ordered-scan set from values already
// sorted ascending.
func NewFlatOrderedScanSet[T cmp.Ordered](sortedValues []T) *FlatOrderedScanSet[T] {
	return &FlatOrderedScanSet[T]{m: NewFlatOrderedScanMap(setEntries(sortedValues))}
}

func (s *FlatOrderedScanSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *FlatOrderedScanSet[T]) Len() int             { return s.m.Len() }
func (s *FlatOrderedScanSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[int] = (*FlatOrderedScanSet[int])(nil)

// FlatBinarySearchMap wraps the binary-search layout with no surrounding
// tag. entries must already be sorted ascending by key.
type FlatBinarySearchMap[K cmp.Ordered, V any] struct {
	inner *containers.BinarySearchMap[K, V]
}

// NewFlatBinarySearchMap builds a binary-search map directly from entries
// already sorted ascending by key.
func NewFlatBinarySearchMap[K cmp.Ordered, V any](sortedEntries []Entry[K, V]) *FlatBinarySearchMap[K, V] {
	less := func(a, b K) bool { return a < b }
	return &FlatBinarySearchMap[K, V]{inner: containers.NewBinarySearchMap(toContainerEntries(sortedEntries), less)}
}

func (m *FlatBinarySearchMap[K, V]) Get(key K) (V, bool)            { return m.inner.Get(key) }
func (m *FlatBinarySearchMap[K, V]) GetKeyValue(key K) (K, V, bool) { return m.inner.GetKeyValue(key) }
func (m *FlatBinarySearchMap[K, V]) GetMut(key K) (*V, bool)        { return m.inner.GetMut(key) }
func (m *FlatBinarySearchMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(keys)
}
func (m *FlatBinarySearchMap[K, V]) ContainsKey(key K) bool { return m.inner.ContainsKey(key) }
func (m *FlatBinarySearchMap[K, V]) Len() int               { return m.inner.Len() }
func (m *FlatBinarySearchMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in FlatBinarySearchMap")
	}
	return v
}
func (m *FlatBinarySearchMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.inner.Entries()) }
func (m *FlatBinarySearchMap[K, V]) Keys() []K              { return keysFrom(m.inner.Entries()) }
func (m *FlatBinarySearchMap[K, V]) Values() []V            { return valuesFrom(m.inner.Entries()) }

var _ Map[int, string] = (*FlatBinarySearchMap[int, string])(nil)

// FlatBinarySearchSet is the set-shaped counterpart to FlatBinarySearchMap.
type FlatBinarySearchSet[T cmp.Ordered] struct {
	m *FlatBinarySearchMap[T, unitValue]
}

// NewFlatBinarySearchSet builds a binary-search set from values already
// sorted ascending.
func NewFlatBinarySearchSet[T cmp.Ordered](sortedValues []T) *FlatBinarySearchSet[T] {
	return &FlatBinarySearchSet[T]{m: NewFlatBinarySearchMap(setEntries(sortedValues))}
}

func (s *FlatBinarySearchSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *FlatBinarySearchSet[T]) Len() int             { return s.m.Len() }
func (s *FlatBinarySearchSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[int] = (*FlatBinarySearchSet[int])(nil)

// FlatEytzingerMap wraps the Eytzinger layout with no surrounding tag.
// sortedEntries must already be sorted ascending by key; the constructor
// performs the sorted-to-Eytzinger permutation itself.
type FlatEytzingerMap[K cmp.Ordered, V any] struct {
	inner *containers.EytzingerMap[K, V]
}

// NewFlatEytzingerMap builds an Eytzinger map directly from entries already
// sorted ascending by key.
func NewFlatEytzingerMap[K cmp.Ordered, V any](sortedEntries []Entry[K, V]) *FlatEytzingerMap[K, V] {
	less := func(a, b K) bool { return a < b }
	return &FlatEytzingerMap[K, V]{inner: containers.NewEytzingerMap(toContainerEntries(sortedEntries), less)}
}

func (m *FlatEytzingerMap[K, V]) Get(key K) (V, bool)            { return m.inner.Get(key) }
func (m *FlatEytzingerMap[K, V]) GetKeyValue(key K) (K, V, bool) { return m.inner.GetKeyValue(key) }
func (m *FlatEytzingerMap[K, V]) GetMut(key K) (*V, bool)        { return m.inner.GetMut(key) }
func (m *FlatEytzingerMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(keys)
}
func (m *FlatEytzingerMap[K, V]) ContainsKey(key K) bool { return m.inner.ContainsKey(key) }
func (m *FlatEytzingerMap[K, V]) Len() int               { return m.inner.Len() }
func (m *FlatEytzingerMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in FlatEytzingerMap")
	}
	return v
}
func (m *FlatEytzingerMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.inner.Entries()) }
func (m *FlatEytzingerMap[K, V]) Keys() []K              { return keysFrom(m.inner.Entries()) }
func (m *FlatEytzingerMap[K, V]) Values() []V            { return valuesFrom(m.inner.Entries()) }

var _ Map[int, string] = (*FlatEytzingerMap[int, string])(nil)

// FlatEytzingerSet is the set-shaped counterpart to FlatEytzingerMap.
type FlatEytzingerSet[T cmp.Ordered] struct {
	m *FlatEytzingerMap[T, unitValue]
}

// NewFlatEytzingerSet builds an Eytzinger set from values already sorted
// ascending.
func NewFlatEytzingerSet[T cmp.Ordered](sortedValues []T) *FlatEytzingerSet[T] {
	return &FlatEytzingerSet[T]{m: NewFlatEytzingerMap(setEntries(sortedValues))}
}

func (s *FlatEytzingerSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *FlatEytzingerSet[T]) Len() int             { return s.m.Len() }
func (s *FlatEytzingerSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[int] = (*FlatEytzingerSet[int])(nil)
