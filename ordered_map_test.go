package frozen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

func buildOrderedEntries(n int) []frozen.Entry[int, int] {
	entries := make([]frozen.Entry[int, int], 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, frozen.Entry[int, int]{Key: i, Value: i * i})
	}
	return entries
}

func TestOrderedMap_Scan(t *testing.T) {
	m, err := frozen.NewOrderedMap(buildOrderedEntries(3))
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestOrderedMap_OrderedScan(t *testing.T) {
	m, err := frozen.NewOrderedMap(buildOrderedEntries(5))
	require.NoError(t, err)
	require.Equal(t, 5, m.Len())

	v, ok := m.Get(4)
	require.True(t, ok)
	assert.Equal(t, 16, v)

	_, ok = m.Get(5)
	assert.False(t, ok)
}

func TestOrderedMap_BinarySearch(t *testing.T) {
	m, err := frozen.NewOrderedMap(buildOrderedEntries(20))
	require.NoError(t, err)
	require.Equal(t, 20, m.Len())

	v, ok := m.Get(19)
	require.True(t, ok)
	assert.Equal(t, 361, v)

	_, ok = m.Get(20)
	assert.False(t, ok)
}

func TestOrderedMap_Eytzinger(t *testing.T) {
	m, err := frozen.NewOrderedMap(buildOrderedEntries(70))
	require.NoError(t, err)
	require.Equal(t, 70, m.Len())

	for _, k := range []int{0, 1, 35, 69} {
		v, ok := m.Get(k)
		require.True(t, ok)
		assert.Equal(t, k*k, v)
	}

	_, ok := m.Get(70)
	assert.False(t, ok, "lookup one past the maximum key must miss")

	keys := m.Keys()
	require.Len(t, keys, 70)
	seen := make(map[int]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	for i := 0; i < 70; i++ {
		assert.True(t, seen[i], "key %d missing from Keys()", i)
	}
}

func TestOrderedMap_Eytzinger_EntriesAscending(t *testing.T) {
	m, err := frozen.NewOrderedMap(buildOrderedEntries(70))
	require.NoError(t, err)

	entries := m.Entries()
	require.Len(t, entries, 70)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Key, entries[i].Key, "Entries() must iterate in ascending key order regardless of N")
	}
}

func TestOrderedMap_DuplicateKeepsLast(t *testing.T) {
	entries := []frozen.Entry[int, string]{
		{Key: 1, Value: "first"},
		{Key: 1, Value: "second"},
		{Key: 2, Value: "two"},
	}
	m, err := frozen.NewOrderedMap(entries)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	v, _ := m.Get(1)
	assert.Equal(t, "second", v)
}

func TestOrderedSet(t *testing.T) {
	s, err := frozen.NewOrderedSet([]int{5, 3, 1, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
}
