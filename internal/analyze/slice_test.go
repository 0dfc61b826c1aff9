package analyze

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHasher(b []byte) uint64 { return xxhash.Sum64(b) }

func TestSlice_Length(t *testing.T) {
	keys := []string{"a", "bb", "ccc"}
	r := Slice(keys, testHasher)
	require.Equal(t, SliceLength, r.Kind)
}

func TestSlice_LeftSub(t *testing.T) {
	// Four keys of one length: more than maxIdenticalLengths, so the length
	// pass gives up and the sub-slice search runs.
	keys := []string{"aaaaaaaaaaaaaaaaaaaax", "aaaaaaaaaaaaaaaaaaaay", "aaaaaaaaaaaaaaaaaaaaz", "aaaaaaaaaaaaaaaaaaaaw"}
	r := Slice(keys, testHasher)
	assert.Equal(t, SliceLeftSub, r.Kind)
	assert.Equal(t, 20, r.Index)
	assert.Equal(t, 1, r.Len)
}

func TestSlice_General(t *testing.T) {
	keys := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		keys = append(keys, string(rune('a'+i%26))+string(rune('A'+i%26)))
	}
	r := Slice(keys, testHasher)
	assert.Equal(t, SliceGeneral, r.Kind)
}
