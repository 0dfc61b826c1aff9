package frozen

// hash_set.go wraps HashMap with a unit value.
//
// © 2025 frozen authors.

// HashSet is the frozen set facade for opaque comparable keys.
type HashSet[T comparable] struct {
	m *HashMap[T, unitValue]
}

// NewHashSet builds a frozen opaque-key set from values.
func NewHashSet[T comparable](values []T, opts ...Option[T]) (*HashSet[T], error) {
	m, err := NewHashMap(setEntries(values), opts...)
	if err != nil {
		return nil, err
	}
	return &HashSet[T]{m: m}, nil
}

func (s *HashSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *HashSet[T]) Len() int             { return s.m.Len() }
func (s *HashSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[int] = (*HashSet[int])(nil)
