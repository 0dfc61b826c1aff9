package frozen

// int_set.go supplies NewIntSet, the set-shaped counterpart to NewIntMap.
//
// © 2025 frozen authors.

// IntSet is the frozen set facade for keys of any built-in (or named)
// integer type.
type IntSet[T Integer] struct {
	inner *ScalarSet[scalarAdapter[T]]
}

// NewIntSet builds a frozen set over integer values without requiring T to
// implement Scalar by hand.
func NewIntSet[T Integer](values []T, opts ...Option[scalarAdapter[T]]) (*IntSet[T], error) {
	wrapped := make([]scalarAdapter[T], len(values))
	for i, v := range values {
		wrapped[i] = scalarAdapter[T]{v: v}
	}
	inner, err := NewScalarSet(wrapped, opts...)
	if err != nil {
		return nil, err
	}
	return &IntSet[T]{inner: inner}, nil
}

func (s *IntSet[T]) Contains(item T) bool { return s.inner.Contains(scalarAdapter[T]{v: item}) }
func (s *IntSet[T]) Len() int             { return s.inner.Len() }

func (s *IntSet[T]) Items() []T {
	src := s.inner.Items()
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = v.v
	}
	return out
}

var _ Set[int] = (*IntSet[int])(nil)
