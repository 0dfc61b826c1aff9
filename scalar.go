package frozen

// scalar.go defines the capability contract used by the scalar-optimized
// containers (dense-range, sparse-range, pass-through hash): a total order,
// equality, and a monotone mapping to a dense unsigned index. Built-in
// numeric widths get this for free through scalarAdapter; user enum-like
// types implement Scalar directly by enumerating their variants.
//
// © 2025 frozen authors.

// Scalar is implemented by key types with a total order, equality, and a
// dense index mapping such that Index(a) < Index(b) iff a < b, and
// Index(a) == Index(b) iff a == b.
type Scalar interface {
	comparable
	Index() uint64
}

// Integer is satisfied by every built-in integer type and any named type
// derived from one. NewIntMap and NewIntSet accept keys of this shape
// directly, without requiring the caller to implement Scalar by hand.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// scalarAdapter wraps a plain integer key so it satisfies Scalar. It is
// comparable because Integer types are comparable and a single-field struct
// over a comparable field is itself comparable.
type scalarAdapter[K Integer] struct{ v K }

func (a scalarAdapter[K]) Index() uint64 { return integerIndex(a.v) }

// integerIndex computes the unsigned-reinterpretation index of an integer
// key, offset so ordering is preserved: for signed widths we flip the sign
// bit so the two's-complement ordering of negative-then-positive values maps
// to the natural ordering of the unsigned reinterpretation.
func integerIndex[K Integer](k K) uint64 {
	switch v := any(k).(type) {
	case int:
		return flipSign64(int64(v))
	case int8:
		return flipSign8(v)
	case int16:
		return flipSign16(v)
	case int32:
		return flipSign32(v)
	case int64:
		return flipSign64(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case uintptr:
		return uint64(v)
	default:
		// Named integer types (type MyID int32, ...) fall through the type
		// switch above because `any(k)` carries the defined type, not its
		// underlying kind. Recover the underlying kind via a second
		// conversion through the widest signed/unsigned representation.
		return reflectIntegerIndex(k)
	}
}

func flipSign8(v int8) uint64   { return uint64(uint8(v) ^ 0x80) }
func flipSign16(v int16) uint64 { return uint64(uint16(v) ^ 0x8000) }
func flipSign32(v int32) uint64 { return uint64(uint32(v) ^ 0x80000000) }
func flipSign64(v int64) uint64 { return uint64(v) ^ 0x8000000000000000 }

// reflectIntegerIndex handles named integer types by routing through
// reflect, since a Go type switch only matches exact (possibly named) types,
// not underlying kinds. This path is cold: it only runs during construction
// and lookup for keys that aren't one of the eleven predeclared integer types.
func reflectIntegerIndex[K Integer](k K) uint64 {
	return reflectKindIndex(reflectValueOf(k))
}
