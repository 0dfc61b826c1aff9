package containers

// ScanMap implements the scan layout: entries kept in insertion order,
// searched linearly. Used below a small N threshold where branch
// prediction and prefetch beat any fancier structure's setup cost.
type ScanMap[K comparable, V any] struct {
	entries  []Entry[K, V]
	keyEqual func(a, b K) bool
}

func NewScanMap[K comparable, V any](entries []Entry[K, V], keyEqual func(a, b K) bool) *ScanMap[K, V] {
	return &ScanMap[K, V]{entries: entries, keyEqual: keyEqual}
}

func (m *ScanMap[K, V]) Len() int { return len(m.entries) }

func (m *ScanMap[K, V]) slot(key K) (int, bool) {
	for i := range m.entries {
		if m.keyEqual(m.entries[i].Key, key) {
			return i, true
		}
	}
	return 0, false
}

func (m *ScanMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *ScanMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

func (m *ScanMap[K, V]) GetMut(key K) (*V, bool) {
	if i, ok := m.slot(key); ok {
		return &m.entries[i].Value, true
	}
	return nil, false
}

func (m *ScanMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.slot(key)
	return ok
}

func (m *ScanMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return GetManyMut(m.entries, keys, m.slot)
}

func (m *ScanMap[K, V]) Entries() []Entry[K, V] { return m.entries }

// OrderedScanMap implements the ordered-scan layout: like ScanMap, but
// entries are kept sorted and the scan short-circuits as soon as it passes
// the target key, saving the remainder of the scan on a miss.
type OrderedScanMap[K comparable, V any] struct {
	entries []Entry[K, V]
	less    func(a, b K) bool
}

// NewOrderedScanMap builds an ordered-scan map from entries already sorted
// ascending by less.
func NewOrderedScanMap[K comparable, V any](entries []Entry[K, V], less func(a, b K) bool) *OrderedScanMap[K, V] {
	return &OrderedScanMap[K, V]{entries: entries, less: less}
}

func (m *OrderedScanMap[K, V]) Len() int { return len(m.entries) }

func (m *OrderedScanMap[K, V]) slot(key K) (int, bool) {
	for i := range m.entries {
		k := m.entries[i].Key
		if m.less(key, k) {
			return 0, false
		}
		if !m.less(k, key) {
			return i, true
		}
	}
	return 0, false
}

func (m *OrderedScanMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *OrderedScanMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

func (m *OrderedScanMap[K, V]) GetMut(key K) (*V, bool) {
	if i, ok := m.slot(key); ok {
		return &m.entries[i].Value, true
	}
	return nil, false
}

func (m *OrderedScanMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.slot(key)
	return ok
}

func (m *OrderedScanMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return GetManyMut(m.entries, keys, m.slot)
}

func (m *OrderedScanMap[K, V]) Entries() []Entry[K, V] { return m.entries }
