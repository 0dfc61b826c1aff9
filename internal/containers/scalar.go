package containers

// DenseScalarMap implements the dense-range layout: entries sorted by key
// index, no auxiliary table, lookup is one range check plus one indexed
// load. Construction precondition (enforced by the caller,
// frozen.NewScalarMap, via the scalar analyzer): the key indices form an
// unbroken range.
type DenseScalarMap[K comparable, V any] struct {
	entries []Entry[K, V]
	indexOf func(K) uint64
	min     uint64
	max     uint64
}

// NewDenseScalarMap builds a dense-range map. entries must already be
// sorted by indexOf(Key) and deduplicated; min/max are the index of the
// first/last entry.
func NewDenseScalarMap[K comparable, V any](entries []Entry[K, V], indexOf func(K) uint64, min, max uint64) *DenseScalarMap[K, V] {
	return &DenseScalarMap[K, V]{entries: entries, indexOf: indexOf, min: min, max: max}
}

func (m *DenseScalarMap[K, V]) Len() int { return len(m.entries) }

func (m *DenseScalarMap[K, V]) slot(key K) (int, bool) {
	i := m.indexOf(key)
	if i < m.min || i > m.max {
		return 0, false
	}
	return int(i - m.min), true
}

func (m *DenseScalarMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *DenseScalarMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

func (m *DenseScalarMap[K, V]) GetMut(key K) (*V, bool) {
	if i, ok := m.slot(key); ok {
		return &m.entries[i].Value, true
	}
	return nil, false
}

func (m *DenseScalarMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.slot(key)
	return ok
}

func (m *DenseScalarMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return GetManyMut(m.entries, keys, m.slot)
}

func (m *DenseScalarMap[K, V]) Entries() []Entry[K, V] { return m.entries }

// SparseScalarMap implements the sparse-range layout: entries remain dense
// (sorted, no holes), but lookup goes through an auxiliary 1-based
// presence table sized to the key indices' span.
type SparseScalarMap[K comparable, V any] struct {
	entries []Entry[K, V]
	indexOf func(K) uint64
	min     uint64
	// lookup[i] is 0 (absent) or one-based index into entries for the key
	// whose index is min+i.
	lookup []int32
}

// NewSparseScalarMap builds a sparse-range map. entries must already be
// sorted by indexOf(Key) and deduplicated; min is the index of the first
// entry and span is max-min+1.
func NewSparseScalarMap[K comparable, V any](entries []Entry[K, V], indexOf func(K) uint64, min uint64, span int) *SparseScalarMap[K, V] {
	lookup := make([]int32, span)
	for i, e := range entries {
		offset := indexOf(e.Key) - min
		lookup[offset] = int32(i + 1)
	}
	return &SparseScalarMap[K, V]{entries: entries, indexOf: indexOf, min: min, lookup: lookup}
}

func (m *SparseScalarMap[K, V]) Len() int { return len(m.entries) }

func (m *SparseScalarMap[K, V]) slot(key K) (int, bool) {
	i := m.indexOf(key)
	if i < m.min {
		return 0, false
	}
	offset := i - m.min
	if offset >= uint64(len(m.lookup)) {
		return 0, false
	}
	j := m.lookup[offset]
	if j == 0 {
		return 0, false
	}
	return int(j - 1), true
}

func (m *SparseScalarMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *SparseScalarMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

func (m *SparseScalarMap[K, V]) GetMut(key K) (*V, bool) {
	if i, ok := m.slot(key); ok {
		return &m.entries[i].Value, true
	}
	return nil, false
}

func (m *SparseScalarMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.slot(key)
	return ok
}

func (m *SparseScalarMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return GetManyMut(m.entries, keys, m.slot)
}

func (m *SparseScalarMap[K, V]) Entries() []Entry[K, V] { return m.entries }
