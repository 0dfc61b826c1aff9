package frozen

// dispatch.go implements the fully-generic entry points: NewMap, NewSet,
// and NewMapWithHasher, usable for any comparable key without the caller
// first deciding which specialized facade fits.
//
// Go's type system resolves a generic function's instantiation at compile
// time, so NewMap cannot itself branch to ScalarMap/StringMap/OrderedMap
// for an arbitrary comparable K: those require K to satisfy Scalar, be
// string/[]byte, or satisfy cmp.Ordered respectively, none of which a bare
// `comparable` constraint implies. NewMap therefore always builds the hash
// facade (scan below a small N, general hash table above it); callers who
// know their key shape ahead of time should call
// NewScalarMap/NewStringMap/NewOrderedMap/NewHashMap directly to get the
// more specialized layout.
//
// © 2025 frozen authors.

import "github.com/Voskan/frozen/internal/frozenhash"

// NewMap builds a frozen map over an arbitrary comparable key type.
func NewMap[K comparable, V any](entries []Entry[K, V], opts ...Option[K]) (Map[K, V], error) {
	return NewHashMap(entries, opts...)
}

// NewMapWithHasher builds a frozen map using a caller-supplied hasher
// instead of the default bridge hasher.
func NewMapWithHasher[K comparable, V any](entries []Entry[K, V], h frozenhash.Hasher[K], opts ...Option[K]) (Map[K, V], error) {
	return NewHashMapWithHasher(entries, h, opts...)
}

// NewSet builds a frozen set over an arbitrary comparable value type.
func NewSet[T comparable](values []T, opts ...Option[T]) (Set[T], error) {
	return NewHashSet(values, opts...)
}
