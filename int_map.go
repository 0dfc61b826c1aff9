package frozen

// int_map.go supplies NewIntMap/NewIntSet: convenience entry points for
// plain integer keys that skip hand-implementing Scalar, wrapping each key
// in scalarAdapter internally and unwrapping it back out at every facade
// method. Bare integer keys are the overwhelmingly common case for the
// scalar facade, and forcing callers to define a one-line Index() method
// for that case would be pure friction.
//
// © 2025 frozen authors.

// IntMap is the frozen map facade for keys of any built-in (or named)
// integer type, dispatched through the same dense/sparse/hash analysis as
// ScalarMap.
type IntMap[K Integer, V any] struct {
	inner *ScalarMap[scalarAdapter[K], V]
}

// NewIntMap builds a frozen map over integer keys without requiring K to
// implement Scalar by hand.
func NewIntMap[K Integer, V any](entries []Entry[K, V], opts ...Option[scalarAdapter[K]]) (*IntMap[K, V], error) {
	wrapped := make([]Entry[scalarAdapter[K], V], len(entries))
	for i, e := range entries {
		wrapped[i] = Entry[scalarAdapter[K], V]{Key: scalarAdapter[K]{v: e.Key}, Value: e.Value}
	}
	inner, err := NewScalarMap(wrapped, opts...)
	if err != nil {
		return nil, err
	}
	return &IntMap[K, V]{inner: inner}, nil
}

func (m *IntMap[K, V]) Get(key K) (V, bool) { return m.inner.Get(scalarAdapter[K]{v: key}) }

func (m *IntMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	k, v, ok := m.inner.GetKeyValue(scalarAdapter[K]{v: key})
	return k.v, v, ok
}

func (m *IntMap[K, V]) GetMut(key K) (*V, bool) { return m.inner.GetMut(scalarAdapter[K]{v: key}) }

func (m *IntMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	wrapped := make([]scalarAdapter[K], len(keys))
	for i, k := range keys {
		wrapped[i] = scalarAdapter[K]{v: k}
	}
	return m.inner.GetManyMut(wrapped)
}

func (m *IntMap[K, V]) ContainsKey(key K) bool { return m.inner.ContainsKey(scalarAdapter[K]{v: key}) }
func (m *IntMap[K, V]) Len() int               { return m.inner.Len() }

func (m *IntMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in IntMap")
	}
	return v
}

func (m *IntMap[K, V]) Entries() []Entry[K, V] {
	src := m.inner.Entries()
	out := make([]Entry[K, V], len(src))
	for i, e := range src {
		out[i] = Entry[K, V]{Key: e.Key.v, Value: e.Value}
	}
	return out
}

func (m *IntMap[K, V]) Keys() []K {
	src := m.inner.Keys()
	out := make([]K, len(src))
	for i, k := range src {
		out[i] = k.v
	}
	return out
}

func (m *IntMap[K, V]) Values() []V { return m.inner.Values() }

var _ Map[int, string] = (*IntMap[int, string])(nil)
