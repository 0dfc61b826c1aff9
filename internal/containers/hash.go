package containers

import "github.com/Voskan/frozen/internal/hashtable"

// HashMap implements the hash-table-backed layout. When the hash-table
// builder detected zero bucket collisions, slots store
// a single optional entry index (noCollisions == true) instead of a range,
// avoiding the second comparison most lookups would otherwise pay for.
type HashMap[K comparable, V any, S hashtable.Magnitude] struct {
	entries      []Entry[K, V]
	hash         func(K) uint64
	numSlots     uint32
	slotStart    []S // range form
	slotEnd      []S
	slotIndex    []S // no-collision form: 0 = empty, else one-based index
	noCollisions bool
	keyEqual     func(a, b K) bool
}

// NewHashMap builds a hash map from entries already reordered to match a
// hashtable.Built layout (see internal/hashtable), plus the hash function
// used to compute that layout. keyEqual resolves collisions within a
// bucket; for comparable K callers normally pass a plain ==.
func NewHashMap[K comparable, V any, S hashtable.Magnitude](
	entries []Entry[K, V],
	hash func(K) uint64,
	built hashtable.Built[S],
	keyEqual func(a, b K) bool,
) *HashMap[K, V, S] {
	m := &HashMap[K, V, S]{
		entries:      entries,
		hash:         hash,
		numSlots:     built.NumSlots,
		slotStart:    built.SlotStart,
		slotEnd:      built.SlotEnd,
		noCollisions: built.NoCollisions,
		keyEqual:     keyEqual,
	}
	if m.noCollisions {
		m.slotIndex = make([]S, built.NumSlots)
		for b := range built.SlotStart {
			if built.SlotEnd[b] > built.SlotStart[b] {
				m.slotIndex[b] = built.SlotStart[b] + 1
			}
		}
	}
	return m
}

func (m *HashMap[K, V, S]) Len() int { return len(m.entries) }

func (m *HashMap[K, V, S]) bucket(key K) uint64 {
	return m.hash(key) & uint64(m.numSlots-1)
}

func (m *HashMap[K, V, S]) slot(key K) (int, bool) {
	b := m.bucket(key)
	if m.noCollisions {
		j := m.slotIndex[b]
		if j == 0 {
			return 0, false
		}
		idx := int(j - 1)
		if m.keyEqual(m.entries[idx].Key, key) {
			return idx, true
		}
		return 0, false
	}

	start, end := int(m.slotStart[b]), int(m.slotEnd[b])
	for i := start; i < end; i++ {
		if m.keyEqual(m.entries[i].Key, key) {
			return i, true
		}
	}
	return 0, false
}

func (m *HashMap[K, V, S]) Get(key K) (V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *HashMap[K, V, S]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.slot(key); ok {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

func (m *HashMap[K, V, S]) GetMut(key K) (*V, bool) {
	if i, ok := m.slot(key); ok {
		return &m.entries[i].Value, true
	}
	return nil, false
}

func (m *HashMap[K, V, S]) ContainsKey(key K) bool {
	_, ok := m.slot(key)
	return ok
}

func (m *HashMap[K, V, S]) GetManyMut(keys []K) ([]*V, bool) {
	return GetManyMut(m.entries, keys, m.slot)
}

func (m *HashMap[K, V, S]) Entries() []Entry[K, V] { return m.entries }

// NoCollisions reports whether this instance is using the single-index slot
// representation. Exposed for tests asserting dispatch behaviour and for
// telemetry describing which concrete variant a facade picked.
func (m *HashMap[K, V, S]) NoCollisions() bool { return m.noCollisions }
