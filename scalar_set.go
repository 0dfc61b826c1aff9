package frozen

// scalar_set.go wraps ScalarMap with a unit value: a set is represented as a
// map whose values carry no information.
//
// © 2025 frozen authors.

// ScalarSet is the frozen set facade for keys satisfying Scalar.
type ScalarSet[T Scalar] struct {
	m *ScalarMap[T, unitValue]
}

// NewScalarSet builds a frozen scalar set from values, deduplicating by
// Index() (last occurrence order is irrelevant for a set: every duplicate
// carries the same unit value).
func NewScalarSet[T Scalar](values []T, opts ...Option[T]) (*ScalarSet[T], error) {
	m, err := NewScalarMap(setEntries(values), opts...)
	if err != nil {
		return nil, err
	}
	return &ScalarSet[T]{m: m}, nil
}

func (s *ScalarSet[T]) Contains(item T) bool { return s.m.ContainsKey(item) }
func (s *ScalarSet[T]) Len() int             { return s.m.Len() }
func (s *ScalarSet[T]) Items() []T           { return s.m.Keys() }

var _ Set[scalarAdapter[int]] = (*ScalarSet[scalarAdapter[int]])(nil)
