// Package frozenhash provides the small, keyset-specialized hashers used by
// the hash-table-backed containers: a pass-through hasher for scalar keys,
// a bridge hasher for opaque comparable keys, and left/right sub-slice and
// length hashers for byte-sliceable keys (strings, []byte).
//
// Every hasher here is stateless besides its seed. The seed is chosen once
// per container: NewSeed draws from process randomness unless the caller
// pins a fixed Seed (frozen.WithSeed). The build-time emitter writes no
// seed into generated code; generated hash-backed declarations draw theirs
// when they are constructed at run time.
//
// The byte-level building block is github.com/cespare/xxhash/v2, adopted
// because it is already a transitive dependency of this corpus's caching
// and ledger-indexing repositories (it backs raw byte hashing in several of
// them) and is materially faster than FNV or maphash for the short,
// sub-slice-sized inputs this package hashes most often.
//
// © 2025 frozen authors.
package frozenhash

import (
	"math/rand/v2"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/Voskan/frozen/internal/unsafehelpers"
)

// Hasher computes a 64-bit hash code for a key of type K. Implementations
// are stateless besides the seed captured at construction.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// Seed is the per-container hash seed, drawn from process randomness
// (NewSeed) unless the caller supplies a fixed value.
type Seed uint64

// NewSeed draws a fresh seed. Every call returns a different value; callers
// needing determinism (tests, in particular) should use a fixed Seed value
// instead of calling this.
func NewSeed() Seed {
	return Seed(rand.Uint64())
}

// HashBytes computes the seeded xxhash of b. Exposed so callers that need a
// one-off byte hash under the same seed a container's hasher uses — the
// slice-key analyzer's sub-slice uniqueness probe, in particular — don't
// have to stand up a full Hasher for it.
func HashBytes(seed Seed, b []byte) uint64 {
	d := xxhash.New()
	var seedBuf [8]byte
	putUint64(seedBuf[:], uint64(seed))
	_, _ = d.Write(seedBuf[:])
	_, _ = d.Write(b)
	return d.Sum64()
}

func hashBytes(seed Seed, b []byte) uint64 { return HashBytes(seed, b) }

func putUint64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// PassthroughHasher hashes scalar keys by returning their dense index
// unchanged: hash(k) = k.Index(). Used by the scalar facade's general-hash
// fallback, where the key set didn't qualify for dense or sparse range
// lookup.
type PassthroughHasher[K interface {
	comparable
	Index() uint64
}] struct{}

// NewPassthroughHasher constructs a PassthroughHasher. It takes no seed: the
// index mapping is already injective over the key's declared range, so
// there is nothing to randomize.
func NewPassthroughHasher[K interface {
	comparable
	Index() uint64
}]() PassthroughHasher[K] {
	return PassthroughHasher[K]{}
}

func (PassthroughHasher[K]) Hash(key K) uint64 { return key.Index() }

// BridgeHasher hashes an arbitrary comparable key by hashing its raw memory
// representation, falling back to type-specific handling for string and
// []byte so their contents (not their headers) are hashed. It type-switches
// on `any(key)` to special-case string/[]byte before falling back to an
// unsafe byte view of the value.
type BridgeHasher[K comparable] struct {
	seed Seed
}

// NewBridgeHasher constructs a BridgeHasher seeded with seed.
func NewBridgeHasher[K comparable](seed Seed) BridgeHasher[K] {
	return BridgeHasher[K]{seed: seed}
}

func (h BridgeHasher[K]) Hash(key K) uint64 {
	switch v := any(key).(type) {
	case string:
		return hashBytes(h.seed, unsafeStringBytes(v))
	case []byte:
		return hashBytes(h.seed, v)
	default:
		return hashBytes(h.seed, rawBytesOf(&key))
	}
}

// unsafeStringBytes views a string's bytes without copying. The returned
// slice must never be mutated or retained past the call: it aliases the
// string's immutable backing array.
func unsafeStringBytes(s string) []byte {
	return unsafehelpers.StringToBytes(s)
}

// rawBytesOf returns a byte view of *p's memory. Used only for fixed-size,
// non-pointer-containing key types (ints, small structs of them): hashing
// the bits of such a value is equivalent to hashing its logical content.
func rawBytesOf[K any](p *K) []byte {
	return unsafehelpers.ByteSliceFrom(unsafe.Pointer(p), unsafe.Sizeof(*p))
}

// LeftSubSliceHasher hashes the left-anchored byte range [lo, hi) of a
// string key. Precondition (checked by the slice-key analyzer before this
// hasher is ever selected): every key has length >= hi.
type LeftSubSliceHasher struct {
	seed   Seed
	lo, hi int
}

func NewLeftSubSliceHasher(seed Seed, lo, hi int) LeftSubSliceHasher {
	return LeftSubSliceHasher{seed: seed, lo: lo, hi: hi}
}

func (h LeftSubSliceHasher) Hash(key string) uint64 {
	return hashBytes(h.seed, unsafeStringBytes(key)[h.lo:h.hi])
}

// RightSubSliceHasher hashes the right-anchored byte range
// [len-hi, len-lo) of a string key: symmetric to LeftSubSliceHasher but
// measured from the end, so keys of differing lengths that share a common
// suffix still collapse to the same sub-slice bytes.
type RightSubSliceHasher struct {
	seed   Seed
	lo, hi int
}

func NewRightSubSliceHasher(seed Seed, lo, hi int) RightSubSliceHasher {
	return RightSubSliceHasher{seed: seed, lo: lo, hi: hi}
}

func (h RightSubSliceHasher) Hash(key string) uint64 {
	b := unsafeStringBytes(key)
	n := len(b)
	return hashBytes(h.seed, b[n-h.hi:n-h.lo])
}

// LengthHasher hashes a string key by its length alone. Valid only once the
// slice-key analyzer has confirmed lengths are sufficiently unique across
// the key set.
type LengthHasher struct{}

func NewLengthHasher() LengthHasher { return LengthHasher{} }

func (LengthHasher) Hash(key string) uint64 { return uint64(len(key)) }
