package frozen

// string_set.go wraps StringMap with a unit value.
//
// © 2025 frozen authors.

// StringSet is the frozen set facade for string keys.
type StringSet struct {
	m *StringMap[unitValue]
}

// NewStringSet builds a frozen string set from values.
func NewStringSet(values []string, opts ...Option[string]) (*StringSet, error) {
	m, err := NewStringMap(setEntries(values), opts...)
	if err != nil {
		return nil, err
	}
	return &StringSet{m: m}, nil
}

func (s *StringSet) Contains(item string) bool { return s.m.ContainsKey(item) }
func (s *StringSet) Len() int                  { return s.m.Len() }
func (s *StringSet) Items() []string           { return s.m.Keys() }

var _ Set[string] = (*StringSet)(nil)
