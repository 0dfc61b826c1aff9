// Package hashtable builds the inline slot/entry layout shared by every
// hash-based frozen container: given precomputed hashes for N entries, it
// chooses a power-of-two bucket count, packs colliding entries into
// contiguous runs, and reports whether any bucket actually collided (which
// lets the caller pick the lighter single-index slot representation
// instead of a full range per bucket).
//
// © 2025 frozen authors.
package hashtable

import (
	"github.com/pkg/errors"

	"github.com/Voskan/frozen/internal/unsafehelpers"
)

// Magnitude is the set of integer widths usable to store a bucket's entry
// index. Picking the narrowest width that fits N shrinks the slot array
// for small and medium collections.
type Magnitude interface {
	~uint8 | ~uint16 | ~uint32
}

// maxDoublings bounds how many times Build will double the bucket count
// before giving up. 32 doublings of a starting power of two already exceeds
// any collection this library is meant for; it exists purely as a
// termination guarantee for the pathological-hash-function case.
const maxDoublings = 32

// thresholdFor returns the maximum tolerated bucket size before Build
// doubles num_slots and retries, by magnitude class. Larger magnitudes
// imply larger collections, where a bigger per-bucket budget trades a
// larger table for fewer doubling rounds; the exact values are tuned by
// measurement, not derived.
func thresholdFor[S Magnitude]() int {
	var zero S
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	default:
		return 32
	}
}

// Built is the result of Build: entries reordered so that every bucket's
// members are contiguous, plus the [start, end) range of each bucket in
// slotStart/slotEnd.
type Built[S Magnitude] struct {
	NumSlots     uint32
	SlotStart    []S
	SlotEnd      []S
	Order        []int // Order[i] is the original index of the entry now at position i
	NoCollisions bool
}

// Build computes the bucket layout for entries identified only by their
// precomputed hash codes (hashes[i] is the hash of the i-th logical entry).
// It returns the permutation needed to reorder the caller's entry slice to
// match the bucket layout; the caller is responsible for applying it, since
// this package knows nothing about the entry/value types.
func Build[S Magnitude](hashes []uint64) (Built[S], error) {
	n := len(hashes)
	numSlots := nextPowerOfTwo(maxInt(n, 1))
	threshold := thresholdFor[S]()

	for doubling := 0; doubling < maxDoublings; doubling++ {
		mask := uint64(numSlots - 1)
		buckets := make([][]int, numSlots)
		maxBucket := 0
		for i, h := range hashes {
			b := h & mask
			buckets[b] = append(buckets[b], i)
			if len(buckets[b]) > maxBucket {
				maxBucket = len(buckets[b])
			}
		}

		if maxBucket <= threshold || n == 0 {
			return pack[S](numSlots, buckets), nil
		}

		numSlots *= 2
	}

	return Built[S]{}, errors.Wrapf(
		errHashTableBuildFailed,
		"no bucket count within %d doublings kept every bucket under %d entries (n=%d)",
		maxDoublings, threshold, n,
	)
}

var errHashTableBuildFailed = errors.New("hash table build failed")

// ErrBuildFailed is the sentinel Build's error wraps. The public frozen
// package does not match on it: its facades turn any Build error into
// frozen.ErrHashTableBuildFailed.
var ErrBuildFailed = errHashTableBuildFailed

func pack[S Magnitude](numSlots int, buckets [][]int) Built[S] {
	n := 0
	for _, b := range buckets {
		n += len(b)
	}

	order := make([]int, 0, n)
	slotStart := make([]S, numSlots)
	slotEnd := make([]S, numSlots)
	noCollisions := true

	pos := 0
	for b, members := range buckets {
		slotStart[b] = S(pos)
		if len(members) > 1 {
			noCollisions = false
		}
		order = append(order, members...)
		pos += len(members)
		slotEnd[b] = S(pos)
	}

	return Built[S]{
		NumSlots:     uint32(numSlots),
		SlotStart:    slotStart,
		SlotEnd:      slotEnd,
		Order:        order,
		NoCollisions: noCollisions,
	}
}

func nextPowerOfTwo(n int) int {
	if unsafehelpers.IsPowerOfTwo(uintptr(n)) {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
