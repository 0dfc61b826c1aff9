package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_NoCollisions(t *testing.T) {
	hashes := []uint64{0, 1, 2, 3, 4, 5, 6, 7}
	built, err := Build[uint8](hashes)
	require.NoError(t, err)
	require.True(t, built.NoCollisions)
	require.Equal(t, len(hashes), len(built.Order))

	seen := make(map[int]bool)
	for _, idx := range built.Order {
		require.False(t, seen[idx], "duplicate original index in Order")
		seen[idx] = true
	}
}

func TestBuild_PreservesEveryIndex(t *testing.T) {
	hashes := []uint64{5, 5, 5, 1, 2, 9, 9, 100}
	built, err := Build[uint16](hashes)
	require.NoError(t, err)

	present := make([]bool, len(hashes))
	for _, idx := range built.Order {
		present[idx] = true
	}
	for i, ok := range present {
		require.True(t, ok, "index %d missing from Order", i)
	}
}

func TestBuild_BucketContiguity(t *testing.T) {
	hashes := make([]uint64, 50)
	for i := range hashes {
		hashes[i] = uint64(i % 4) // force heavy collisions into 4 buckets
	}
	built, err := Build[uint32](hashes)
	require.NoError(t, err)
	require.False(t, built.NoCollisions)

	for b := 0; b < int(built.NumSlots); b++ {
		start, end := int(built.SlotStart[b]), int(built.SlotEnd[b])
		require.LessOrEqual(t, start, end)
	}
}
