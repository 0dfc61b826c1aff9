package frozen

// flat_scalar.go exposes the scalar facade's dense-range and sparse-range
// layouts directly, with no surrounding tag and no analysis step:
// cmd/frozengen runs the scalar analyzer itself at generation time (over
// the manifest's literal key indices) and, when the verdict is dense or
// sparse, emits a call into one of these constructors instead of the
// tagged ScalarMap/IntMap constructor. The emitted declaration (a plain
// package-level var, or a sync.OnceValue accessor when the declaration is
// not static) then has a concrete, monomorphic type — no tag field, no
// runtime dispatch, no re-run of the analyzer.
//
// The hash/pass-through branch has no flat counterpart here: building its
// slot table is real per-entry work regardless of whether a tag wraps it,
// so cmd/frozengen still emits a call into the tagged constructor for that
// branch (see internal/emit.EmitScalar).
//
// © 2025 frozen authors.

import "github.com/Voskan/frozen/internal/containers"

// DenseScalarMap wraps the dense-range layout directly. entries must
// already be sorted ascending by Index() and deduplicated; min and max
// must be the first and last entry's Index().
type DenseScalarMap[K Scalar, V any] struct {
	inner *containers.DenseScalarMap[K, V]
}

// NewDenseScalarMap builds a dense-range scalar map with no analysis step.
func NewDenseScalarMap[K Scalar, V any](entries []Entry[K, V], min, max uint64) *DenseScalarMap[K, V] {
	indexOf := func(k K) uint64 { return k.Index() }
	return &DenseScalarMap[K, V]{inner: containers.NewDenseScalarMap(toContainerEntries(entries), indexOf, min, max)}
}

func (m *DenseScalarMap[K, V]) Get(key K) (V, bool)            { return m.inner.Get(key) }
func (m *DenseScalarMap[K, V]) GetKeyValue(key K) (K, V, bool) { return m.inner.GetKeyValue(key) }
func (m *DenseScalarMap[K, V]) GetMut(key K) (*V, bool)        { return m.inner.GetMut(key) }
func (m *DenseScalarMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(keys)
}
func (m *DenseScalarMap[K, V]) ContainsKey(key K) bool { return m.inner.ContainsKey(key) }
func (m *DenseScalarMap[K, V]) Len() int               { return m.inner.Len() }
func (m *DenseScalarMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in DenseScalarMap")
	}
	return v
}
func (m *DenseScalarMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.inner.Entries()) }
func (m *DenseScalarMap[K, V]) Keys() []K              { return keysFrom(m.inner.Entries()) }
func (m *DenseScalarMap[K, V]) Values() []V            { return valuesFrom(m.inner.Entries()) }

var _ Map[scalarAdapter[int], string] = (*DenseScalarMap[scalarAdapter[int], string])(nil)

// DenseScalarSet is the set-shaped counterpart to DenseScalarMap.
type DenseScalarSet[T Scalar] struct {
	m *DenseScalarMap[T, unitValue]
}

// NewDenseScalarSet builds a dense-range scalar set with no analysis step.
func NewDenseScalarSet[T Scalar](values []T, min, max uint64) *DenseScalarSet[T] {
	return &DenseScalarSet[T]{m: NewDenseScalarMap(setEntries(values), min, max)}
}

func (s *DenseScalarSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *DenseScalarSet[T]) Len() int             { return s.m.Len() }
func (s *DenseScalarSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[scalarAdapter[int]] = (*DenseScalarSet[scalarAdapter[int]])(nil)

// SparseScalarMap wraps the sparse-range layout directly. entries must
// already be sorted ascending by Index() and deduplicated; min is the
// first entry's Index() and span is max-min+1.
type SparseScalarMap[K Scalar, V any] struct {
	inner *containers.SparseScalarMap[K, V]
}

// NewSparseScalarMap builds a sparse-range scalar map with no analysis
// step.
func NewSparseScalarMap[K Scalar, V any](entries []Entry[K, V], min uint64, span int) *SparseScalarMap[K, V] {
	indexOf := func(k K) uint64 { return k.Index() }
	return &SparseScalarMap[K, V]{inner: containers.NewSparseScalarMap(toContainerEntries(entries), indexOf, min, span)}
}

func (m *SparseScalarMap[K, V]) Get(key K) (V, bool)            { return m.inner.Get(key) }
func (m *SparseScalarMap[K, V]) GetKeyValue(key K) (K, V, bool) { return m.inner.GetKeyValue(key) }
func (m *SparseScalarMap[K, V]) GetMut(key K) (*V, bool)        { return m.inner.GetMut(key) }
func (m *SparseScalarMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(keys)
}
func (m *SparseScalarMap[K, V]) ContainsKey(key K) bool { return m.inner.ContainsKey(key) }
func (m *SparseScalarMap[K, V]) Len() int               { return m.inner.Len() }
func (m *SparseScalarMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in SparseScalarMap")
	}
	return v
}
func (m *SparseScalarMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.inner.Entries()) }
func (m *SparseScalarMap[K, V]) Keys() []K              { return keysFrom(m.inner.Entries()) }
func (m *SparseScalarMap[K, V]) Values() []V            { return valuesFrom(m.inner.Entries()) }

var _ Map[scalarAdapter[int], string] = (*SparseScalarMap[scalarAdapter[int], string])(nil)

// SparseScalarSet is the set-shaped counterpart to SparseScalarMap.
type SparseScalarSet[T Scalar] struct {
	m *SparseScalarMap[T, unitValue]
}

// NewSparseScalarSet builds a sparse-range scalar set with no analysis
// step.
func NewSparseScalarSet[T Scalar](values []T, min uint64, span int) *SparseScalarSet[T] {
	return &SparseScalarSet[T]{m: NewSparseScalarMap(setEntries(values), min, span)}
}

func (s *SparseScalarSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *SparseScalarSet[T]) Len() int             { return s.m.Len() }
func (s *SparseScalarSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[scalarAdapter[int]] = (*SparseScalarSet[scalarAdapter[int]])(nil)

// DenseIntMap is DenseScalarMap's bare-integer-key convenience counterpart,
// mirroring how IntMap relates to ScalarMap.
type DenseIntMap[K Integer, V any] struct {
	inner *DenseScalarMap[scalarAdapter[K], V]
}

// NewDenseIntMap builds a dense-range integer-keyed map with no analysis
// step.
func NewDenseIntMap[K Integer, V any](entries []Entry[K, V], min, max uint64) *DenseIntMap[K, V] {
	return &DenseIntMap[K, V]{inner: NewDenseScalarMap(wrapScalarAdapterEntries(entries), min, max)}
}

func (m *DenseIntMap[K, V]) Get(key K) (V, bool) { return m.inner.Get(scalarAdapter[K]{v: key}) }
func (m *DenseIntMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	k, v, ok := m.inner.GetKeyValue(scalarAdapter[K]{v: key})
	return k.v, v, ok
}
func (m *DenseIntMap[K, V]) GetMut(key K) (*V, bool) { return m.inner.GetMut(scalarAdapter[K]{v: key}) }
func (m *DenseIntMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(wrapScalarAdapterValues(keys))
}
func (m *DenseIntMap[K, V]) ContainsKey(key K) bool {
	return m.inner.ContainsKey(scalarAdapter[K]{v: key})
}
func (m *DenseIntMap[K, V]) Len() int { return m.inner.Len() }
func (m *DenseIntMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in DenseIntMap")
	}
	return v
}
func (m *DenseIntMap[K, V]) Entries() []Entry[K, V] { return unwrapScalarAdapterEntries(m.inner.Entries()) }
func (m *DenseIntMap[K, V]) Keys() []K              { return unwrapScalarAdapterKeys(m.inner.Keys()) }
func (m *DenseIntMap[K, V]) Values() []V            { return m.inner.Values() }

var _ Map[int, string] = (*DenseIntMap[int, string])(nil)

// DenseIntSet is the set-shaped counterpart to DenseIntMap.
type DenseIntSet[T Integer] struct {
	inner *DenseScalarSet[scalarAdapter[T]]
}

// NewDenseIntSet builds a dense-range integer-keyed set with no analysis
// step.
func NewDenseIntSet[T Integer](values []T, min, max uint64) *DenseIntSet[T] {
	wrapped := make([]scalarAdapter[T], len(values))
	for i, v := range values {
		wrapped[i] = scalarAdapter[T]{v: v}
	}
	return &DenseIntSet[T]{inner: NewDenseScalarSet(wrapped, min, max)}
}

func (s *DenseIntSet[T]) Contains(item T) bool { return s.inner.Contains(scalarAdapter[T]{v: item}) }
func (s *DenseIntSet[T]) Len() int             { return s.inner.Len() }
func (s *DenseIntSet[T]) Items() []T {
	src := s.inner.Items()
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = v.v
	}
	return out
}

var _ Set[int] = (*DenseIntSet[int])(nil)

// SparseIntMap is SparseScalarMap's bare-integer-key convenience
// counterpart.
type SparseIntMap[K Integer, V any] struct {
	inner *SparseScalarMap[scalarAdapter[K], V]
}

// NewSparseIntMap builds a sparse-range integer-keyed map with no analysis
// step.
func NewSparseIntMap[K Integer, V any](entries []Entry[K, V], min uint64, span int) *SparseIntMap[K, V] {
	return &SparseIntMap[K, V]{inner: NewSparseScalarMap(wrapScalarAdapterEntries(entries), min, span)}
}

func (m *SparseIntMap[K, V]) Get(key K) (V, bool) { return m.inner.Get(scalarAdapter[K]{v: key}) }
func (m *SparseIntMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	k, v, ok := m.inner.GetKeyValue(scalarAdapter[K]{v: key})
	return k.v, v, ok
}
func (m *SparseIntMap[K, V]) GetMut(key K) (*V, bool) {
	return m.inner.GetMut(scalarAdapter[K]{v: key})
}
func (m *SparseIntMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return m.inner.GetManyMut(wrapScalarAdapterValues(keys))
}
func (m *SparseIntMap[K, V]) ContainsKey(key K) bool {
	return m.inner.ContainsKey(scalarAdapter[K]{v: key})
}
func (m *SparseIntMap[K, V]) Len() int { return m.inner.Len() }
func (m *SparseIntMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in SparseIntMap")
	}
	return v
}
func (m *SparseIntMap[K, V]) Entries() []Entry[K, V] {
	return unwrapScalarAdapterEntries(m.inner.Entries())
}
func (m *SparseIntMap[K, V]) Keys() []K   { return unwrapScalarAdapterKeys(m.inner.Keys()) }
func (m *SparseIntMap[K, V]) Values() []V { return m.inner.Values() }

var _ Map[int, string] = (*SparseIntMap[int, string])(nil)

// SparseIntSet is the set-shaped counterpart to SparseIntMap.
type SparseIntSet[T Integer] struct {
	inner *SparseScalarSet[scalarAdapter[T]]
}

// NewSparseIntSet builds a sparse-range integer-keyed set with no analysis
// step.
func NewSparseIntSet[T Integer](values []T, min uint64, span int) *SparseIntSet[T] {
	wrapped := make([]scalarAdapter[T], len(values))
	for i, v := range values {
		wrapped[i] = scalarAdapter[T]{v: v}
	}
	return &SparseIntSet[T]{inner: NewSparseScalarSet(wrapped, min, span)}
}

func (s *SparseIntSet[T]) Contains(item T) bool { return s.inner.Contains(scalarAdapter[T]{v: item}) }
func (s *SparseIntSet[T]) Len() int             { return s.inner.Len() }
func (s *SparseIntSet[T]) Items() []T {
	src := s.inner.Items()
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = v.v
	}
	return out
}

var _ Set[int] = (*SparseIntSet[int])(nil)

func wrapScalarAdapterEntries[K Integer, V any](entries []Entry[K, V]) []Entry[scalarAdapter[K], V] {
	out := make([]Entry[scalarAdapter[K], V], len(entries))
	for i, e := range entries {
		out[i] = Entry[scalarAdapter[K], V]{Key: scalarAdapter[K]{v: e.Key}, Value: e.Value}
	}
	return out
}

func wrapScalarAdapterValues[K Integer](keys []K) []scalarAdapter[K] {
	out := make([]scalarAdapter[K], len(keys))
	for i, k := range keys {
		out[i] = scalarAdapter[K]{v: k}
	}
	return out
}

func unwrapScalarAdapterEntries[K Integer, V any](entries []Entry[scalarAdapter[K], V]) []Entry[K, V] {
	out := make([]Entry[K, V], len(entries))
	for i, e := range entries {
		out[i] = Entry[K, V]{Key: e.Key.v, Value: e.Value}
	}
	return out
}

func unwrapScalarAdapterKeys[K Integer](keys []scalarAdapter[K]) []K {
	out := make([]K, len(keys))
	for i, k := range keys {
		out[i] = k.v
	}
	return out
}
