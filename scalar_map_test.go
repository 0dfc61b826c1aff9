package frozen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

func TestIntMap_DenseRange(t *testing.T) {
	entries := []frozen.Entry[int, string]{
		{Key: 0, Value: "zero"},
		{Key: 1, Value: "one"},
		{Key: 2, Value: "two"},
		{Key: 3, Value: "three"},
	}
	m, err := frozen.NewIntMap(entries)
	require.NoError(t, err)
	require.Equal(t, 4, m.Len())

	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok = m.Get(99)
	assert.False(t, ok)
}

func TestIntMap_SparseRange(t *testing.T) {
	entries := []frozen.Entry[int, int]{
		{Key: 0, Value: 0},
		{Key: 1, Value: 1},
		{Key: 2, Value: 2},
		{Key: 3, Value: 3},
		{Key: 6, Value: 6},
	}
	m, err := frozen.NewIntMap(entries)
	require.NoError(t, err)

	v, ok := m.Get(6)
	require.True(t, ok)
	assert.Equal(t, 6, v)

	_, ok = m.Get(4)
	assert.False(t, ok)
}

func TestIntMap_HashFallback(t *testing.T) {
	entries := []frozen.Entry[int, int]{
		{Key: 0, Value: 0},
		{Key: 1000000, Value: 1},
	}
	m, err := frozen.NewIntMap(entries)
	require.NoError(t, err)

	v, ok := m.Get(1000000)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestIntMap_DuplicateKeepsLast(t *testing.T) {
	entries := []frozen.Entry[int, string]{
		{Key: 1, Value: "first"},
		{Key: 1, Value: "second"},
	}
	m, err := frozen.NewIntMap(entries)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestIntMap_GetManyMut(t *testing.T) {
	entries := []frozen.Entry[int, int]{
		{Key: 0, Value: 10},
		{Key: 1, Value: 20},
		{Key: 2, Value: 30},
	}
	m, err := frozen.NewIntMap(entries)
	require.NoError(t, err)

	ptrs, ok := m.GetManyMut([]int{0, 2})
	require.True(t, ok)
	*ptrs[0] += 5
	*ptrs[1] += 5

	v0, _ := m.Get(0)
	v2, _ := m.Get(2)
	assert.Equal(t, 15, v0)
	assert.Equal(t, 35, v2)

	_, ok = m.GetManyMut([]int{0, 0})
	assert.False(t, ok, "aliased keys must be rejected")
}

func TestIntSet(t *testing.T) {
	s, err := frozen.NewIntSet([]int{1, 2, 3, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
}
