package frozen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

type point struct{ x, y int }

func TestHashMap_Scan(t *testing.T) {
	entries := []frozen.Entry[point, string]{
		{Key: point{0, 0}, Value: "origin"},
		{Key: point{1, 1}, Value: "diag"},
	}
	m, err := frozen.NewHashMap(entries)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	v, ok := m.Get(point{1, 1})
	require.True(t, ok)
	assert.Equal(t, "diag", v)
}

func TestHashMap_Hash(t *testing.T) {
	entries := make([]frozen.Entry[point, int], 0, 50)
	for i := 0; i < 50; i++ {
		entries = append(entries, frozen.Entry[point, int]{Key: point{i, i * 2}, Value: i})
	}
	m, err := frozen.NewHashMap(entries)
	require.NoError(t, err)
	require.Equal(t, 50, m.Len())

	for i := 0; i < 50; i++ {
		v, ok := m.Get(point{i, i * 2})
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := m.Get(point{-1, -1})
	assert.False(t, ok)
}

func TestHashMap_DuplicateKeepsLast(t *testing.T) {
	entries := []frozen.Entry[point, string]{
		{Key: point{0, 0}, Value: "first"},
		{Key: point{0, 0}, Value: "second"},
	}
	m, err := frozen.NewHashMap(entries)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	v, _ := m.Get(point{0, 0})
	assert.Equal(t, "second", v)
}

func TestHashSet(t *testing.T) {
	s, err := frozen.NewHashSet([]point{{0, 0}, {1, 1}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(point{1, 1}))
	assert.False(t, s.Contains(point{9, 9}))
}

func TestNewMap_DispatchesToHash(t *testing.T) {
	entries := []frozen.Entry[point, int]{
		{Key: point{1, 2}, Value: 3},
	}
	m, err := frozen.NewMap[point, int](entries)
	require.NoError(t, err)

	v, ok := m.Get(point{1, 2})
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestNewSet_DispatchesToHash(t *testing.T) {
	s, err := frozen.NewSet([]point{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}
