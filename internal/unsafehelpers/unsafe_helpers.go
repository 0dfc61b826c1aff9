// Package unsafehelpers centralizes every unavoidable use of the `unsafe`
// package so the rest of this module stays ordinary Go and easier to audit.
//
// These helpers deliberately step outside the memory-safety model for the
// sake of zero-allocation conversions. They back the bridge hasher's raw
// byte views of string and scalar keys and the hash-table builder's
// power-of-two slot sizing; none of it is part of the public API.
//
// © 2025 frozen authors.
package unsafehelpers

import "unsafe"

// StringToBytes reinterprets string data as a byte slice without copying.
// The result must never be mutated: writing to it corrupts the string's
// immutable backing array.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ByteSliceFrom returns a []byte view of raw memory starting at ptr with the
// given length. Caller must ensure the memory block is at least length
// bytes and outlives the returned slice. Used for hashing fixed-size scalar
// keys by their bit representation.
func ByteSliceFrom(ptr unsafe.Pointer, length uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), length)
}

// IsPowerOfTwo reports whether x is a power of two (exactly one bit set).
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && (x&(x-1)) == 0
}
