package frozen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

// TestMap_Uniformity exercises every facade through the shared Map[K, V]
// interface to confirm they agree on behavior regardless of internal
// layout.
func TestMap_Uniformity(t *testing.T) {
	intMap, err := frozen.NewIntMap([]frozen.Entry[int, string]{
		{Key: 1, Value: "one"}, {Key: 2, Value: "two"},
	})
	require.NoError(t, err)

	strMap, err := frozen.NewStringMap([]frozen.Entry[string, string]{
		{Key: "a", Value: "one"}, {Key: "b", Value: "two"},
	})
	require.NoError(t, err)

	hashMap, err := frozen.NewHashMap([]frozen.Entry[point, string]{
		{Key: point{0, 0}, Value: "one"}, {Key: point{1, 1}, Value: "two"},
	})
	require.NoError(t, err)

	orderedMap, err := frozen.NewOrderedMap([]frozen.Entry[int, string]{
		{Key: 1, Value: "one"}, {Key: 2, Value: "two"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, intMap.Len())
	assert.Equal(t, 2, strMap.Len())
	assert.Equal(t, 2, hashMap.Len())
	assert.Equal(t, 2, orderedMap.Len())

	assertHasEntries(t, intMap, 2)
	assertHasEntries(t, strMap, 2)
	assertHasEntries(t, hashMap, 2)
	assertHasEntries(t, orderedMap, 2)
}

func assertHasEntries[K comparable, V any](t *testing.T, m frozen.Map[K, V], want int) {
	t.Helper()
	assert.Len(t, m.Entries(), want)
	assert.Len(t, m.Keys(), want)
	assert.Len(t, m.Values(), want)
}
