package containers

// BinarySearchMap implements the ordered layout: entries sorted by key,
// located by classic binary search. Used as the fallback for
// totally-ordered, non-scalar keys.
type BinarySearchMap[K comparable, V any] struct {
	entries []Entry[K, V]
	less    func(a, b K) bool
}

// NewBinarySearchMap builds a binary-search map. entries must already be
// sorted ascending by less.
func NewBinarySearchMap[K comparable, V any](entries []Entry[K, V], less func(a, b K) bool) *BinarySearchMap[K, V] {
	return &BinarySearchMap[K, V]{entries: entries, less: less}
}

func (m *BinarySearchMap[K, V]) Len() int { return len(m.entries) }

func (m *BinarySearchMap[K, V]) slot(key K) (int, bool) {
	lo, hi := 0, len(m.entries)
	for lo < hi {
		mid := lo + (hi-lo)/2
		k := m.entries[mid].Key
		switch {
		case m.less(k, key):
			lo = mid + 1
		case m.less(key, k):
			hi = mid
		default:
			return mid, true
		}
	}
	return 0, false
}

func (m *BinarySearchMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *BinarySearchMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

func (m *BinarySearchMap[K, V]) GetMut(key K) (*V, bool) {
	if i, ok := m.slot(key); ok {
		return &m.entries[i].Value, true
	}
	return nil, false
}

func (m *BinarySearchMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.slot(key)
	return ok
}

func (m *BinarySearchMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return GetManyMut(m.entries, keys, m.slot)
}

func (m *BinarySearchMap[K, V]) Entries() []Entry[K, V] { return m.entries }

// EytzingerMap implements the Eytzinger-ordered layout: entries permuted
// into the level-order of a complete binary search tree, improving cache
// behaviour for larger N relative to plain binary search. The permutation
// is computed once at construction and used only by Get/GetMut/
// ContainsKey; Entries() keeps a separate ascending-by-key copy so it
// honors the same "ascending key order for sorted layouts" contract
// BinarySearchMap does, independent of N.
type EytzingerMap[K comparable, V any] struct {
	entries []Entry[K, V] // Eytzinger order, 1-indexed conceptually (entries[0] is node 1)
	sorted  []Entry[K, V] // ascending key order, for Entries/Keys/Values
	less    func(a, b K) bool
}

// NewEytzingerMap builds an Eytzinger map from entries sorted ascending by
// less; the constructor performs the sorted-to-Eytzinger permutation.
func NewEytzingerMap[K comparable, V any](sortedEntries []Entry[K, V], less func(a, b K) bool) *EytzingerMap[K, V] {
	n := len(sortedEntries)
	out := make([]Entry[K, V], n)
	pos := 0
	var build func(k int)
	build = func(k int) {
		if k > n {
			return
		}
		build(2 * k)
		out[k-1] = sortedEntries[pos]
		pos++
		build(2*k + 1)
	}
	build(1)

	sorted := make([]Entry[K, V], n)
	copy(sorted, sortedEntries)
	return &EytzingerMap[K, V]{entries: out, sorted: sorted, less: less}
}

func (m *EytzingerMap[K, V]) Len() int { return len(m.entries) }

func (m *EytzingerMap[K, V]) slot(key K) (int, bool) {
	n := len(m.entries)
	k := 1
	for k <= n {
		node := m.entries[k-1].Key
		switch {
		case m.less(key, node):
			k = 2 * k
		case m.less(node, key):
			k = 2*k + 1
		default:
			return k - 1, true
		}
	}
	return 0, false
}

func (m *EytzingerMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *EytzingerMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

func (m *EytzingerMap[K, V]) GetMut(key K) (*V, bool) {
	if i, ok := m.slot(key); ok {
		return &m.entries[i].Value, true
	}
	return nil, false
}

func (m *EytzingerMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.slot(key)
	return ok
}

func (m *EytzingerMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	return GetManyMut(m.entries, keys, m.slot)
}

func (m *EytzingerMap[K, V]) Entries() []Entry[K, V] { return m.sorted }
