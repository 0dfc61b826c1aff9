package frozen

// ordered_set.go wraps OrderedMap with a unit value.
//
// © 2025 frozen authors.

import "cmp"

// OrderedSet is the frozen set facade for totally-ordered keys.
type OrderedSet[T cmp.Ordered] struct {
	m *OrderedMap[T, unitValue]
}

// NewOrderedSet builds a frozen ordered set from values.
func NewOrderedSet[T cmp.Ordered](values []T, opts ...Option[T]) (*OrderedSet[T], error) {
	m, err := NewOrderedMap(setEntries(values), opts...)
	if err != nil {
		return nil, err
	}
	return &OrderedSet[T]{m: m}, nil
}

func (s *OrderedSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *OrderedSet[T]) Len() int             { return s.m.Len() }
func (s *OrderedSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[int] = (*OrderedSet[int])(nil)
